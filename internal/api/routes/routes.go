package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"talentscout/internal/api/handlers"
	"talentscout/internal/api/middleware"
	"talentscout/internal/config"
	"talentscout/internal/interview"
	"talentscout/internal/llm"
	"talentscout/web"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, sessionManager *interview.Manager, llmManager *llm.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Chat turns may block on text-generation calls, so they get a longer
	// timeout than everything else.
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(sessionManager, llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", handlers.CreateSessionHandler(sessionManager))
			sessions.GET("/:id", handlers.GetSessionHandler(sessionManager))
			sessions.POST("/:id/messages", handlers.ChatHandler(sessionManager))
			sessions.GET("/:id/reports/:format", handlers.ReportHandler(sessionManager))
		}
	}

	// Chat page
	e.GET("/", func(c echo.Context) error {
		page, err := web.FS.ReadFile("index.html")
		if err != nil {
			return echo.ErrNotFound
		}
		return c.HTMLBlob(200, page)
	})
}
