package router

import (
	"github.com/gin-gonic/gin"
	"github.com/koperasi/backend/internal/infrastructure/auth"
	"github.com/koperasi/backend/internal/infrastructure/logger"
	"github.com/koperasi/backend/internal/interfaces/http/handler"
	"github.com/koperasi/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Config wires the handlers and cross-cutting middleware into a router
type Config struct {
	Logger        *zap.Logger
	JWTService    *auth.JWTService
	ReportHandler *handler.ReportHandler
	SystemHandler *handler.SystemHandler
	CORS          *middleware.CORSConfig
	Debug         bool
}

// Setup builds the gin engine with all routes registered
func Setup(cfg Config) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware(cfg.Logger))
	r.Use(logger.Recovery(cfg.Logger))
	r.Use(middleware.Secure())
	if cfg.CORS != nil {
		r.Use(middleware.CORSWithConfig(*cfg.CORS))
	} else {
		r.Use(middleware.CORS())
	}

	r.GET("/health", cfg.SystemHandler.Health)
	r.GET("/ready", cfg.SystemHandler.Ready)

	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: cfg.JWTService,
		Logger:     cfg.Logger,
	}))

	reports := api.Group("/reports")
	{
		reports.POST("/validate", cfg.ReportHandler.ValidateReport)
		reports.POST("", cfg.ReportHandler.CreateReport)
		reports.GET("", cfg.ReportHandler.ListReports)
		reports.GET("/:id", cfg.ReportHandler.GetReport)
		reports.PUT("/:id", cfg.ReportHandler.UpdateReport)
		reports.DELETE("/:id", cfg.ReportHandler.DeleteReport)
		reports.POST("/:id/submit", cfg.ReportHandler.SubmitReport)
		reports.POST("/:id/approve", cfg.ReportHandler.ApproveReport)
		reports.POST("/:id/reject", cfg.ReportHandler.RejectReport)
	}

	return r
}
