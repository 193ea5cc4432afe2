package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// KeyParser converts the :id path segment into a lookup key
type KeyParser[K comparable] func(raw string) (K, error)

// ParseIDKey parses surrogate id keys
func ParseIDKey(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// ParseCodeKey accepts natural string keys such as semester codes and logins
func ParseCodeKey(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("empty key")
	}
	return raw, nil
}

// RecordController exposes a record service over REST
type RecordController[D any, K comparable] struct {
	service  services.RecordService[D, K]
	parseKey KeyParser[K]
}

// NewRecordController creates a new RecordController
func NewRecordController[D any, K comparable](service services.RecordService[D, K], parseKey KeyParser[K]) *RecordController[D, K] {
	return &RecordController[D, K]{
		service:  service,
		parseKey: parseKey,
	}
}

// GetAll lists every record
func (ctrl *RecordController[D, K]) GetAll(c *gin.Context) {
	result, err := ctrl.service.ListAll(c.Request.Context())
	ctrl.respond(c, result, err)
}

// GetByKey returns one record
func (ctrl *RecordController[D, K]) GetByKey(c *gin.Context) {
	key, ok := ctrl.key(c)
	if !ok {
		return
	}
	result, err := ctrl.service.Get(c.Request.Context(), key)
	ctrl.respond(c, result, err)
}

// Create adds a record from the request body
func (ctrl *RecordController[D, K]) Create(c *gin.Context) {
	var body D
	violations, err := middleware.BindBody(c, &body)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	result, err := ctrl.service.Add(c.Request.Context(), body, violations)
	ctrl.respond(c, result, err)
}

// Update replaces a record with the request body
func (ctrl *RecordController[D, K]) Update(c *gin.Context) {
	var body D
	violations, err := middleware.BindBody(c, &body)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	result, err := ctrl.service.Update(c.Request.Context(), body, violations)
	ctrl.respond(c, result, err)
}

// Delete removes one record
func (ctrl *RecordController[D, K]) Delete(c *gin.Context) {
	key, ok := ctrl.key(c)
	if !ok {
		return
	}
	result, err := ctrl.service.Delete(c.Request.Context(), key)
	ctrl.respond(c, result, err)
}

// Search matches records against the param query value
func (ctrl *RecordController[D, K]) Search(c *gin.Context) {
	result, err := ctrl.service.Search(c.Request.Context(), c.Query("param"))
	ctrl.respond(c, result, err)
}

func (ctrl *RecordController[D, K]) key(c *gin.Context) (K, bool) {
	key, err := ctrl.parseKey(c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewMalformedInputError(err))
		return key, false
	}
	return key, true
}

func (ctrl *RecordController[D, K]) respond(c *gin.Context, result dto.Result, err error) {
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(result.Status, result.Envelope())
}
