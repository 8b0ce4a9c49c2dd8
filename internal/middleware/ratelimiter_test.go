package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"fitboard/internal/infrastructure/kv"
)

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	limiter := NewRateLimiter(kv.NewMemory())
	r.GET("/ping", limiter.Limit("ping", 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hit := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, hit())
	require.Equal(t, http.StatusOK, hit())
	require.Equal(t, http.StatusTooManyRequests, hit())
}

func TestRateLimiterIsPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	limiter := NewRateLimiter(kv.NewMemory())
	r.GET("/ping", limiter.Limit("ping", 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, hit("10.0.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:1234"))
	require.Equal(t, http.StatusOK, hit("10.0.0.2:1234"))
}
