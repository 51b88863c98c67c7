package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/smoothie-orders/backend/internal/mocks"
	"github.com/pageza/smoothie-orders/backend/internal/types"
)

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/health", "/api/health"} {
		w := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "healthy")
	}
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	env := newTestEnv(t)
	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "unhealthy", resp["status"])
	assert.NotEmpty(t, resp["error"])
}

func TestListFruits(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/fruits", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decode[types.FruitsResponse](t, w)
	assert.Len(t, resp.Fruits, len(testFruits))
	assert.Equal(t, "Apples", resp.Fruits[0].FruitName)
	assert.Empty(t, resp.Error)
}

func TestListFruitsCatalogFailure(t *testing.T) {
	catalog := new(mocks.MockCatalogService)
	catalog.On("LoadCatalog", mock.Anything).Return(nil, errors.New("failed to load fruit options: no such table"))

	router := gin.New()
	RegisterRoutes(router, Services{Catalog: catalog})
	env := &testEnv{router: router}

	w := env.do(t, http.MethodGet, "/api/v1/fruits", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fruits":[],"error":"Error fetching data from the catalog: failed to load fruit options: no such table"}`, w.Body.String())
}
