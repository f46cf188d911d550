package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"yultimate/constants"
	"yultimate/controllers"
	_ "yultimate/docs"
	"yultimate/middleware"
	"yultimate/services"
	"yultimate/services/logger"
	"yultimate/services/notification"
)

// Dependencies are the shared components the routes are built from.
type Dependencies struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Cache          services.Cache
	Tokens         *services.TokenService
	Melody         *melody.Melody
	Notifier       notification.Service
	Archiver       services.Archiver
	Logger         logger.Logger
	GoogleClientID string
	LoginRateLimit int
	ImportMaxBytes int64
	ImportWorkers  int
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	if deps.Cache == nil {
		deps.Cache = services.NopCache{}
	}
	if deps.Archiver == nil {
		deps.Archiver = services.NopArchiver{}
	}
	if deps.Notifier == nil {
		deps.Notifier = notification.Nop{}
	}

	authService := services.NewAuthService(services.AuthServiceOptions{
		DB:             deps.DB,
		Tokens:         deps.Tokens,
		Logger:         deps.Logger,
		GoogleClientID: deps.GoogleClientID,
	})
	childService := services.NewChildService(services.ChildServiceOptions{DB: deps.DB, Cache: deps.Cache, Logger: deps.Logger})
	siteService := services.NewSiteService(services.SiteServiceOptions{DB: deps.DB, Cache: deps.Cache, Logger: deps.Logger})
	sessionService := services.NewSessionService(services.SessionServiceOptions{DB: deps.DB, Notifier: deps.Notifier, Logger: deps.Logger})
	importService := services.NewImportService(services.ImportServiceOptions{
		DB:       deps.DB,
		Cache:    deps.Cache,
		Archiver: deps.Archiver,
		Logger:   deps.Logger,
		Workers:  deps.ImportWorkers,
	})

	authController := controllers.NewAuthController(authService)
	childController := controllers.NewChildController(childService, importService, deps.ImportMaxBytes)
	siteController := controllers.NewSiteController(siteService)
	sessionController := controllers.NewSessionController(sessionService)
	reportController := controllers.NewReportController(services.NewReportService(deps.DB))
	visitController := controllers.NewHomeVisitController(services.NewHomeVisitService(services.HomeVisitServiceOptions{
		DB:       deps.DB,
		Notifier: deps.Notifier,
		Logger:   deps.Logger,
	}))
	assessmentController := controllers.NewAssessmentController(services.NewAssessmentService(services.AssessmentServiceOptions{
		DB:       deps.DB,
		Notifier: deps.Notifier,
		Logger:   deps.Logger,
	}))

	admin := []string{constants.RoleAdmin}
	staff := []string{constants.RoleAdmin, constants.RoleManager}
	everyone := constants.Roles

	router.GET("/health", controllers.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", middleware.RateLimiter(deps.Redis, "login", deps.LoginRateLimit, time.Minute, deps.Logger), authController.Login)
	auth.POST("/google", authController.GoogleLogin)
	auth.GET("/me", middleware.AuthMiddleware(deps.Tokens), authController.Me)

	api.GET("/sites", middleware.AuthMiddleware(deps.Tokens), siteController.GetSites)

	children := api.Group("/children")
	children.GET("", middleware.AuthMiddleware(deps.Tokens), childController.GetChildren)
	children.POST("", middleware.AuthMiddleware(deps.Tokens, staff...), childController.CreateChild)
	children.POST("/import", middleware.AuthMiddleware(deps.Tokens, admin...), childController.ImportChildren)
	children.GET("/imports", middleware.AuthMiddleware(deps.Tokens, admin...), childController.GetImports)
	children.GET("/:id/progress", middleware.AuthMiddleware(deps.Tokens), assessmentController.GetChildProgress)

	sessions := api.Group("/sessions")
	sessions.GET("", middleware.AuthMiddleware(deps.Tokens), sessionController.GetSessions)
	sessions.GET("/:id", middleware.AuthMiddleware(deps.Tokens), sessionController.GetSession)
	sessions.POST("", middleware.AuthMiddleware(deps.Tokens, staff...), sessionController.CreateSession)
	sessions.POST("/:id/attendance", middleware.AuthMiddleware(deps.Tokens, everyone...), sessionController.SaveAttendance)

	visits := api.Group("/home-visits", middleware.AuthMiddleware(deps.Tokens, everyone...))
	visits.GET("", visitController.GetHomeVisits)
	visits.GET("/:id", visitController.GetHomeVisit)
	visits.POST("", visitController.CreateHomeVisit)
	visits.PUT("/:id", visitController.UpdateHomeVisit)
	visits.DELETE("/:id", middleware.RoleMiddleware(staff...), visitController.DeleteHomeVisit)

	assessments := api.Group("/assessments", middleware.AuthMiddleware(deps.Tokens, everyone...))
	assessments.GET("", assessmentController.GetAssessments)
	assessments.GET("/:id", assessmentController.GetAssessment)
	assessments.POST("", assessmentController.CreateAssessment)
	assessments.PUT("/:id", assessmentController.UpdateAssessment)
	assessments.DELETE("/:id", middleware.RoleMiddleware(staff...), assessmentController.DeleteAssessment)

	api.GET("/reports/attendance", middleware.AuthMiddleware(deps.Tokens, staff...), reportController.AttendanceReport)

	if deps.Melody != nil {
		api.GET("/ws", middleware.AuthMiddleware(deps.Tokens), controllers.LiveFeed(deps.Melody, deps.Logger))
	}
}
