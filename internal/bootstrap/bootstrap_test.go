package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/db"
)

func TestSetupRouterRegistersRoutes(t *testing.T) {
	cfg, err := config.LoadConfig("does-not-exist.yaml")
	assert.NoError(t, err)
	cfg.Server.Mode = "production"

	deps := BuildDependencies(cfg, &db.PostgresDB{}, zerolog.Nop())
	router := SetupRouter(cfg, deps, zerolog.Nop())

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, resource := range []string{"ranks", "courses", "lecturers", "semesters", "students", "users", "schedules"} {
		assert.True(t, registered["GET /api/"+resource], resource)
		assert.True(t, registered["GET /api/"+resource+"/search"], resource)
		assert.True(t, registered["GET /api/"+resource+"/:id"], resource)
		assert.True(t, registered["POST /api/"+resource], resource)
		assert.True(t, registered["PUT /api/"+resource], resource)
		assert.True(t, registered["DELETE /api/"+resource+"/:id"], resource)
	}
	assert.True(t, registered["GET /swagger/*any"])

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/ranks"`)
	assert.Contains(t, w.Body.String(), "localhost:8080")
}
