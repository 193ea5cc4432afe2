package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Message      string      `json:"message"`
	TimeStamp    int64       `json:"timeStamp"`
	ResponseBody interface{} `json:"responseBody"`
}

func handle(t *testing.T, err error) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/ranks", nil)

	HandleAPIError(c, err)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestHandleAPIErrorClassification(t *testing.T) {
	msgs := config.DefaultMessages()
	duplicate := &pgconn.PgError{Code: "23505", ConstraintName: "academic_ranks_numeric_rank_key"}
	missingParent := &pgconn.PgError{Code: "23503", ConstraintName: "lecturers_numeric_academic_rank_fkey"}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		body    interface{}
	}{
		{"malformed input", apperrors.NewMalformedInputError(errors.New("unexpected EOF")), http.StatusBadRequest, msgs.InvalidInput, MalformedInputDiagnostic},
		{"not found", fmt.Errorf("lookup: %w", apperrors.ErrResourceNotFound), http.StatusNotFound, msgs.NotFound, ""},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound, msgs.NotFound, ""},
		{"duplicate key", fmt.Errorf("failed to add record: %w", duplicate), http.StatusBadRequest, msgs.Duplicate, ""},
		{"foreign key", fmt.Errorf("failed to add record: %w", missingParent), http.StatusBadRequest, msgs.Duplicate, ""},
		{"no generated id", fmt.Errorf("failed to add record: %w", apperrors.ErrNoGeneratedID), http.StatusInternalServerError, msgs.InternalError, ""},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, msgs.InternalError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := handle(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, env.Message)
			assert.Equal(t, tt.body, env.ResponseBody)
			assert.NotZero(t, env.TimeStamp)
		})
	}
}

func TestHandleAPIErrorUsesConfiguredMessages(t *testing.T) {
	defer SetMessages(config.DefaultMessages())

	custom := config.DefaultMessages()
	custom.NotFound = "No such record"
	SetMessages(custom)

	_, env := handle(t, apperrors.ErrResourceNotFound)
	assert.Equal(t, "No such record", env.Message)
}

func TestRecoveryRendersInternalError(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("nil map write")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, config.DefaultMessages().InternalError, env.Message)
	assert.Equal(t, "", env.ResponseBody)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Logger())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", requestIDMaxLen+1))
	router.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

type bindTarget struct {
	Name string `json:"name" validate:"required,max=45,alphanum_space"`
	Rank *int   `json:"rank" validate:"required"`
}

func bindRequest(body string) (*gin.Context, *bindTarget) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, &bindTarget{}
}

func TestBindBody(t *testing.T) {
	c, target := bindRequest(`{"name":"Professor","rank":1}`)
	violations, err := BindBody(c, target)
	require.NoError(t, err)
	assert.False(t, violations.HasErrors())
	assert.Equal(t, "Professor", target.Name)

	c, target = bindRequest(`{"name":""}`)
	violations, err = BindBody(c, target)
	require.NoError(t, err)
	assert.Equal(t, []string{"name cannot be empty", "rank cannot be null"}, []string(violations))

	c, target = bindRequest(`{"name": 12`)
	_, err = BindBody(c, target)
	assert.ErrorIs(t, err, apperrors.ErrMalformedInput)

	c, target = bindRequest(`{"rank":"one"}`)
	_, err = BindBody(c, target)
	assert.ErrorIs(t, err, apperrors.ErrMalformedInput)
}
