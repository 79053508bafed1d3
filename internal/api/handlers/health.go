package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"talentscout/internal/interview"
	"talentscout/internal/llm"
	"talentscout/internal/logging"
	"talentscout/pkg/models"
	"talentscout/pkg/utils"
)

var startTime = time.Now()

const serviceVersion = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests
func ReadinessHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api": "ok",
			"llm": "ok",
		}
		status := "ready"
		code := http.StatusOK

		if !llmManager.IsHealthy() {
			checks["llm"] = "unavailable"
			status = "degraded"
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}
		return c.JSON(code, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
	}
	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(sessionManager *interview.Manager, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service":       "TalentScout Screening Assistant",
			"version":       serviceVersion,
			"status":        "running",
			"uptime":        utils.FormatDuration(time.Since(startTime)),
			"live_sessions": sessionManager.Count(),
			"llm_provider":  llmManager.GetProviderName(),
			"llm_healthy":   llmManager.IsHealthy(),
		})
	}
}
