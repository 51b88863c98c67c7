package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/pageza/smoothie-orders/backend/internal/middleware"
	"github.com/pageza/smoothie-orders/backend/internal/model"
	"github.com/pageza/smoothie-orders/backend/internal/service"
	"github.com/pageza/smoothie-orders/backend/internal/testhelpers"
	"github.com/pageza/smoothie-orders/backend/internal/workflow"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testFruits = []model.FruitOption{
	{FruitName: "Apples", SearchOn: "Apple"},
	{FruitName: "Banana", SearchOn: "Banana"},
	{FruitName: "Kiwi", SearchOn: "Kiwi"},
	{FruitName: "Mango", SearchOn: "Mango"},
	{FruitName: "Peach", SearchOn: "Peach"},
	{FruitName: "Ximenia", SearchOn: "Sea Lemon"},
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	svc    Services
}

// newTestEnv wires real services over sqlite and a stand-in Fruityvice that
// only knows Mango.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fruityvice := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/fruit/mango" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"name":"Mango","family":"Anacardiaceae"}`))
	}))
	t.Cleanup(fruityvice.Close)

	logger := zaptest.NewLogger(t)
	db := testhelpers.NewSeededSQLiteDB(t, testFruits...)
	svc := Services{
		Catalog:   service.NewCatalogService(db, logger),
		Nutrition: service.NewNutritionService(service.NewFruityviceClient(fruityvice.URL, time.Second), logger),
		Orders:    service.NewOrderService(db, logger),
		Sessions:  workflow.NewMemoryStore(time.Hour),
		DB:        db,
		Logger:    logger,
	}

	router := gin.New()
	router.Use(middleware.Recovery(logger))
	RegisterRoutes(router, svc)
	return &testEnv{router: router, db: db, svc: svc}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return out
}
