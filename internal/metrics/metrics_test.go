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

func TestInitIsIdempotent(t *testing.T) {
	Init("brick_manager_test")
	Init("brick_manager_test")

	before := testutil.ToFloat64(OrdersCreatedCounter)
	RecordOrderCreated("b1", 100)
	assert.Equal(t, before+1, testutil.ToFloat64(OrdersCreatedCounter))
	assert.Equal(t, float64(100), testutil.ToFloat64(BricksDispatchedCounter.WithLabelValues("b1")))

	RecordOrderFailure("insufficient_stock")
	assert.Equal(t, float64(1), testutil.ToFloat64(OrderFailuresCounter.WithLabelValues("insufficient_stock")))

	TrackStoreOperation("create_order")(time.Now())
}

func TestMiddlewareCountsErrors(t *testing.T) {
	Init("brick_manager_test")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware())
	r.GET("/missing/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(APIErrorCounter.WithLabelValues(http.MethodGet, "/missing/:id", "404")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "brick_manager_test_api_requests_total")
}
