package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yultimate/response"
	"yultimate/services"
)

type SiteController struct {
	sites *services.SiteService
}

func NewSiteController(sites *services.SiteService) SiteController {
	return SiteController{sites: sites}
}

// GetSites godoc
// @Summary   List sites
// @Tags      sites
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  models.Site
// @Router    /api/sites [get]
func (ctrl SiteController) GetSites(c *gin.Context) {
	sites, err := ctrl.sites.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "Failed to fetch sites")
		return
	}
	response.Success(c, sites)
}

// Health godoc
// @Summary  Liveness check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Y-Ultimate API is running"})
}
