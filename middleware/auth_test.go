package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yultimate/models"
	"yultimate/services"
	"yultimate/services/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(tokens *services.TokenService, roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/private", AuthMiddleware(tokens, roles...), func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, id)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	coach, err := tokens.Generate(&models.User{ID: 3, Email: "coach@yultimate.com", Role: "coach"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		roles  []string
		header string
		want   int
	}{
		{"no header", nil, "", http.StatusUnauthorized},
		{"bad scheme", nil, "Basic abc", http.StatusUnauthorized},
		{"invalid token", nil, "Bearer nope", http.StatusUnauthorized},
		{"any role", nil, "Bearer " + coach, http.StatusOK},
		{"lower-case scheme", nil, "bearer " + coach, http.StatusOK},
		{"allowed role", []string{"admin", "coach"}, "Bearer " + coach, http.StatusOK},
		{"forbidden role", []string{"admin", "manager"}, "Bearer " + coach, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(tokens, tt.roles...)
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"userId":3,"email":"coach@yultimate.com","role":"coach"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	coach, err := tokens.Generate(&models.User{ID: 3, Email: "coach@yultimate.com", Role: "coach"})
	require.NoError(t, err)
	manager, err := tokens.Generate(&models.User{ID: 2, Email: "manager@yultimate.com", Role: "manager"})
	require.NoError(t, err)

	r := gin.New()
	group := r.Group("/visits", AuthMiddleware(tokens))
	group.GET("/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	group.DELETE("/:id", RoleMiddleware("admin", "manager"), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.DELETE("/bare", RoleMiddleware("admin"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	send := func(method, path, token string) int {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/visits/1", coach))
	assert.Equal(t, http.StatusForbidden, send(http.MethodDelete, "/visits/1", coach))
	assert.Equal(t, http.StatusNoContent, send(http.MethodDelete, "/visits/1", manager))
	assert.Equal(t, http.StatusUnauthorized, send(http.MethodDelete, "/bare", ""))
}

func TestAuthMiddlewareWebsocketQueryToken(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	token, err := tokens.Generate(&models.User{ID: 1, Email: "a@yultimate.com", Role: "admin"})
	require.NoError(t, err)
	r := newAuthRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/private?access_token="+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/private?access_token="+token, nil)
	req.Header.Set("Connection", "upgrade")
	req.Header.Set("Upgrade", "websocket")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestErrorLoggerWritesFallback(t *testing.T) {
	r := gin.New()
	r.Use(ErrorLogger(logger.NewNop()))
	r.GET("/", func(c *gin.Context) { _ = c.Error(assert.AnError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRateLimiterWithoutRedisPassesThrough(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimiter(nil, "login", 1, time.Minute, logger.NewNop()), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}
