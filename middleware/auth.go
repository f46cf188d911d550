package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"yultimate/errors"
	"yultimate/response"
	"yultimate/services/logger"
	"yultimate/types"
)

const identityKey = "identity"

// TokenParser turns a raw bearer token into the caller identity.
type TokenParser interface {
	Parse(raw string) (*types.Identity, error)
}

// AuthMiddleware verifies the bearer token and, when roles are given, the caller's role.
func AuthMiddleware(parser TokenParser, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			response.Unauthorized(c, errors.ErrMissingToken.Message)
			return
		}

		identity, err := parser.Parse(raw)
		if err != nil {
			response.Unauthorized(c, errors.ErrInvalidToken.Message)
			return
		}

		if !identity.HasRole(roles...) {
			response.Forbidden(c)
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

// RoleMiddleware narrows an authenticated group to roles.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			response.Unauthorized(c, errors.ErrMissingToken.Message)
			return
		}
		if !identity.HasRole(roles...) {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (types.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return types.Identity{}, false
	}
	identity, ok := v.(types.Identity)
	return identity, ok
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	// Browsers cannot set headers on a websocket upgrade.
	if c.IsWebsocket() {
		return c.Query("access_token")
	}
	return ""
}

// ErrorLogger logs errors attached to the context and answers 500 if no response was written.
func ErrorLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			if appErr := errors.GetAppError(e.Err); appErr != nil && appErr.Status() < 500 {
				log.Debug("%s %s: %v", c.Request.Method, c.FullPath(), e.Err)
				continue
			}
			log.Error("%s %s: %v", c.Request.Method, c.FullPath(), e.Err)
		}
		if !c.Writer.Written() {
			response.ServerError(c)
		}
	}
}
