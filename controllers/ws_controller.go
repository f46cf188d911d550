package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"yultimate/middleware"
	"yultimate/services/logger"
)

// LiveFeed godoc
// @Summary   Websocket feed of attendance events
// @Tags      live
// @Security  BearerAuth
// @Param     access_token  query  string  false  "token for browsers that cannot set headers"
// @Router    /api/ws [get]
func LiveFeed(m *melody.Melody, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := middleware.CurrentIdentity(c)
		keys := map[string]interface{}{"userId": identity.UserID, "role": identity.Role}
		if err := m.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
			log.Warn("websocket upgrade failed: %v", err)
		}
	}
}
