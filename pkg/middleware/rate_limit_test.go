package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"social-vault/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitRouter(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set(ContextUserID, id)
		}
		c.Next()
	})
	router.Use(RateLimitMiddleware(client, limit, time.Minute, logger.NewWithWriter(io.Discard, "error")))
	router.GET("/content", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/creators", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, mr
}

func request(router *gin.Engine, path, user string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	router, mr := setupRateLimitRouter(t, 2)

	first := request(router, "/content", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, request(router, "/content", "").Code)

	blocked := request(router, "/content", "")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, blocked.Body.String())

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, request(router, "/content", "").Code)
}

func TestRateLimit_SeparateBuckets(t *testing.T) {
	router, mr := setupRateLimitRouter(t, 1)

	assert.Equal(t, http.StatusOK, request(router, "/content", "").Code)
	assert.Equal(t, http.StatusOK, request(router, "/creators", "").Code)
	assert.Equal(t, http.StatusOK, request(router, "/content", "viewer-1").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(router, "/content", "viewer-1").Code)

	assert.True(t, mr.Exists("rate_limit:/content:viewer-1"))
	ttl := mr.TTL("rate_limit:/content:viewer-1")
	assert.Equal(t, time.Minute, ttl)
}

func TestRateLimit_FailsOpenWhenRedisIsDown(t *testing.T) {
	router, mr := setupRateLimitRouter(t, 1)
	mr.Close()

	w := request(router, "/content", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}
