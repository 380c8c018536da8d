package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r http.Handler, path, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BlocksAboveLimit(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }
	r := newLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.1:1234").Code)

	w := get(r, "/ping", "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")

	// other clients have their own window
	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.2:1234").Code)

	// the window resets
	now = now.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, get(r, "/ping", "10.0.0.1:1234").Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, time.Minute)
	rl.now = func() time.Time { return now }
	r := newLimitedRouter(rl)

	get(r, "/ping", "10.0.0.1:1234")
	get(r, "/ping", "10.0.0.2:1234")
	assert.Len(t, rl.requests, 2)

	now = now.Add(2 * time.Minute)
	rl.cleanup()
	assert.Empty(t, rl.requests)
}
