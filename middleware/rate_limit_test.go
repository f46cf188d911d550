package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yultimate/services/logger"
)

func newLimitedRouter(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.POST("/login", RateLimiter(rdb, "login", limit, time.Minute, logger.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, mr
}

func postLogin(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "192.0.2.1:4711"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	r, mr := newLimitedRouter(t, 2)

	var codes []int
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = postLogin(r)
		codes = append(codes, last.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Too many login attempts, try again later","code":"RATE_LIMITED"}`, last.Body.String())
	assert.Equal(t, time.Minute, mr.TTL("ratelimit:login:192.0.2.1"))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, postLogin(r).Code)
}

func TestRateLimiterRestoresMissingExpiry(t *testing.T) {
	r, mr := newLimitedRouter(t, 5)
	require.NoError(t, mr.Set("ratelimit:login:192.0.2.1", "5"))
	assert.Equal(t, time.Duration(0), mr.TTL("ratelimit:login:192.0.2.1"))

	w := postLogin(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, time.Minute, mr.TTL("ratelimit:login:192.0.2.1"))
}

func TestRateLimiterRedisDownPassesThrough(t *testing.T) {
	r, mr := newLimitedRouter(t, 1)
	mr.Close()

	assert.Equal(t, http.StatusOK, postLogin(r).Code)
	assert.Equal(t, http.StatusOK, postLogin(r).Code)
}
