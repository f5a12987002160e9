package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(rate, burst float64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(rate, burst).RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doRequest(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitAllowsBurstThenRejects(t *testing.T) {
	r := newLimitedRouter(1, 3)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1"), "request %d within burst", i+1)
	}
	require.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1"))
}

func TestRateLimitIsolatesClients(t *testing.T) {
	r := newLimitedRouter(1, 1)

	require.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1"))
	require.Equal(t, http.StatusOK, doRequest(r, "10.0.0.2"),
		"one client's exhaustion must not affect another")
}
