package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-tickets/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(metrics.PrometheusMiddleware("test-service"))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/ping", "418", "test-service")
	before := testutil.ToFloat64(counter)

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
