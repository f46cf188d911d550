package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"yultimate/middleware"
	"yultimate/services/logger"
	"yultimate/validator"
)

// NewRouter builds the gin engine with the global middleware chain.
func NewRouter(cfg *Config, z *zap.Logger) *gin.Engine {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.UseJSONNames(binding.Validator.Engine())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(z))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	router.Use(middleware.ErrorLogger(logger.Wrap(z)))

	_ = router.SetTrustedProxies(nil)
	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	c.AddExposeHeaders("Content-Disposition", middleware.RequestIDHeader)
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
