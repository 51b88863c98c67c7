package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordersIncrementCounters(t *testing.T) {
	before := testutil.ToFloat64(nutritionLookups.WithLabelValues(OutcomeNotFound))
	RecordNutritionLookup(OutcomeNotFound, 20*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(nutritionLookups.WithLabelValues(OutcomeNotFound)))

	before = testutil.ToFloat64(orderSubmissions.WithLabelValues(OutcomeSuccess))
	RecordOrderSubmission(OutcomeSuccess)
	assert.Equal(t, before+1, testutil.ToFloat64(orderSubmissions.WithLabelValues(OutcomeSuccess)))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/metrics", gin.WrapH(Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `smoothie_http_requests_total{method="GET",path="/ping",status="200"}`)
}
