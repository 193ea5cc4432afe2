package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockRankService records its inputs and returns canned results
type mockRankService struct {
	result     dto.Result
	err        error
	calls      []string
	key        int64
	criterion  string
	body       dto.AcademicRankDTO
	violations validation.Errors
}

func (m *mockRankService) ListAll(ctx context.Context) (dto.Result, error) {
	m.calls = append(m.calls, "ListAll")
	return m.result, m.err
}

func (m *mockRankService) Get(ctx context.Context, key int64) (dto.Result, error) {
	m.calls = append(m.calls, "Get")
	m.key = key
	return m.result, m.err
}

func (m *mockRankService) Add(ctx context.Context, d dto.AcademicRankDTO, violations validation.Errors) (dto.Result, error) {
	m.calls = append(m.calls, "Add")
	m.body, m.violations = d, violations
	return m.result, m.err
}

func (m *mockRankService) Update(ctx context.Context, d dto.AcademicRankDTO, violations validation.Errors) (dto.Result, error) {
	m.calls = append(m.calls, "Update")
	m.body, m.violations = d, violations
	return m.result, m.err
}

func (m *mockRankService) Delete(ctx context.Context, key int64) (dto.Result, error) {
	m.calls = append(m.calls, "Delete")
	m.key = key
	return m.result, m.err
}

func (m *mockRankService) Search(ctx context.Context, criterion string) (dto.Result, error) {
	m.calls = append(m.calls, "Search")
	m.criterion = criterion
	return m.result, m.err
}

type envelope struct {
	Message      string          `json:"message"`
	TimeStamp    int64           `json:"timeStamp"`
	ResponseBody json.RawMessage `json:"responseBody"`
}

func setupTestRankRouter(svc *mockRankService) *gin.Engine {
	ctrl := NewRecordController[dto.AcademicRankDTO, int64](svc, ParseIDKey)
	router := gin.New()
	router.Use(middleware.Recovery())
	ranks := router.Group("/api/ranks")
	ranks.GET("", ctrl.GetAll)
	ranks.GET("/search", ctrl.Search)
	ranks.GET("/:id", ctrl.GetByKey)
	ranks.POST("", ctrl.Create)
	ranks.PUT("", ctrl.Update)
	ranks.DELETE("/:id", ctrl.Delete)
	return router
}

func perform(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateRendersEnvelope(t *testing.T) {
	rank := 1
	svc := &mockRankService{result: dto.NewResult(http.StatusCreated, "Entity added successfully",
		dto.AcademicRankDTO{RankID: 10, NumericRank: &rank, RankName: "Professor"})}
	router := setupTestRankRouter(svc)

	w, env := perform(t, router, http.MethodPost, "/api/ranks", `{"numericRank":1,"rankName":"Professor"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Entity added successfully", env.Message)
	assert.NotZero(t, env.TimeStamp)
	assert.JSONEq(t, `{"rankId":10,"numericRank":1,"rankName":"Professor"}`, string(env.ResponseBody))
	assert.Equal(t, "Professor", svc.body.RankName)
	assert.Empty(t, svc.violations)
}

func TestCreatePassesViolationsToService(t *testing.T) {
	svc := &mockRankService{result: dto.NewResult(http.StatusBadRequest, "Invalid input", []string{"numericRank cannot be null"})}
	router := setupTestRankRouter(svc)

	w, env := perform(t, router, http.MethodPost, "/api/ranks", `{"rankName":"Professor"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, validation.Errors{"numericRank cannot be null"}, svc.violations)
	assert.JSONEq(t, `["numericRank cannot be null"]`, string(env.ResponseBody))
}

func TestCreateDuplicateRank(t *testing.T) {
	svc := &mockRankService{err: fmt.Errorf("failed to add record: %w",
		&pgconn.PgError{Code: "23505", ConstraintName: "academic_ranks_numeric_rank_key"})}
	router := setupTestRankRouter(svc)

	w, env := perform(t, router, http.MethodPost, "/api/ranks", `{"numericRank":1,"rankName":"Professor"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Duplicate entry", env.Message)
	assert.JSONEq(t, `""`, string(env.ResponseBody))
}

func TestMalformedBodyNeverReachesService(t *testing.T) {
	svc := &mockRankService{}
	router := setupTestRankRouter(svc)

	for _, body := range []string{`{"numericRank":"first"}`, `{"rankName":`, `[]`} {
		w, env := perform(t, router, http.MethodPut, "/api/ranks", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `"Cannot parse input data, please check input data format"`, string(env.ResponseBody))
	}
	assert.Empty(t, svc.calls)
}

func TestUnparsableKey(t *testing.T) {
	svc := &mockRankService{}
	router := setupTestRankRouter(svc)

	w, _ := perform(t, router, http.MethodGet, "/api/ranks/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = perform(t, router, http.MethodDelete, "/api/ranks/1.5", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.calls)
}

func TestGetAndDeleteByKey(t *testing.T) {
	svc := &mockRankService{result: dto.NewResult(http.StatusNotFound, "Entity not found", dto.EmptyBody)}
	router := setupTestRankRouter(svc)

	w, env := perform(t, router, http.MethodGet, "/api/ranks/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(7), svc.key)
	assert.JSONEq(t, `""`, string(env.ResponseBody))

	svc.result = dto.NewResult(http.StatusOK, "Entity deleted successfully", dto.EmptyBody)
	w, _ = perform(t, router, http.MethodDelete, "/api/ranks/8", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(8), svc.key)
}

func TestSearchPassesCriterion(t *testing.T) {
	svc := &mockRankService{result: dto.NewResult(http.StatusOK, "Search completed successfully", []dto.AcademicRankDTO{})}
	router := setupTestRankRouter(svc)

	w, env := perform(t, router, http.MethodGet, "/api/ranks/search?param=Room%20A1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Room A1", svc.criterion)
	assert.JSONEq(t, `[]`, string(env.ResponseBody))
	assert.Equal(t, []string{"Search"}, svc.calls)
}

func TestWarningsAreJoinedIntoMessage(t *testing.T) {
	svc := &mockRankService{result: dto.NewResult(http.StatusOK, "Entity updated successfully", dto.AcademicRankDTO{}).
		WithWarnings("Student is not registered as a user!")}
	router := setupTestRankRouter(svc)

	w, env := perform(t, router, http.MethodPut, "/api/ranks", `{"rankId":1,"numericRank":1,"rankName":"Dean"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Entity updated successfully WARNING: Student is not registered as a user!", env.Message)
}

func TestNaturalKeyParser(t *testing.T) {
	key, err := ParseCodeKey("2031F")
	require.NoError(t, err)
	assert.Equal(t, "2031F", key)

	_, err = ParseCodeKey("")
	assert.Error(t, err)
}
