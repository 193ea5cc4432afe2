package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// BindBody decodes the JSON body into obj and collects its field violations.
// A body that cannot be decoded yields an apperrors.ErrMalformedInput error.
func BindBody(c *gin.Context, obj interface{}) (validation.Errors, error) {
	if err := c.ShouldBindJSON(obj); err != nil {
		return nil, apperrors.NewMalformedInputError(err)
	}
	return validation.Struct(obj), nil
}
