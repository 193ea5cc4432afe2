package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/dberrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// MalformedInputDiagnostic is the payload returned for bodies and keys that cannot be decoded
const MalformedInputDiagnostic = "Cannot parse input data, please check input data format"

var messages atomic.Pointer[config.Messages]

func init() {
	defaults := config.DefaultMessages()
	messages.Store(&defaults)
}

// SetMessages replaces the message catalog used for error responses
func SetMessages(m config.Messages) {
	messages.Store(&m)
}

// --- Central Error Handling Middleware/Function ---

// HandleAPIError classifies errors that escaped the services and renders the envelope
func HandleAPIError(c *gin.Context, err error) {
	msgs := messages.Load()

	switch {
	case apperrors.Is(err, apperrors.ErrMalformedInput):
		logger.Debug().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("Malformed request input")
		c.JSON(http.StatusBadRequest, dto.NewEnvelope(msgs.InvalidInput, MalformedInputDiagnostic))
	case apperrors.Is(err, apperrors.ErrResourceNotFound, pgx.ErrNoRows):
		c.JSON(http.StatusNotFound, dto.NewEnvelope(msgs.NotFound, dto.EmptyBody))
	case dberrors.IsIntegrityViolation(err):
		logger.Warn().Err(err).
			Str("constraint", dberrors.ConstraintName(err)).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Integrity constraint violated")
		c.JSON(http.StatusBadRequest, dto.NewEnvelope(msgs.Duplicate, dto.EmptyBody))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewEnvelope(msgs.InternalError, dto.EmptyBody))
	}
}

// Recovery turns panics into the internal error envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewEnvelope(messages.Load().InternalError, dto.EmptyBody))
	})
}
