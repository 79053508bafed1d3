package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"talentscout/internal/interview"
	"talentscout/internal/logging"
	"talentscout/pkg/models"
	"talentscout/pkg/utils"
)

var chatValidator = validator.New()

// CreateSessionHandler handles POST /api/v1/sessions
func CreateSessionHandler(sessionManager *interview.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		response := sessionManager.Create()

		logger.Info("Session created via API", map[string]interface{}{
			"request_id": requestID,
			"session_id": response.SessionID,
		})

		return c.JSON(http.StatusCreated, response)
	}
}

// GetSessionHandler handles GET /api/v1/sessions/:id
func GetSessionHandler(sessionManager *interview.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		response, err := sessionManager.Get(c.Param("id"))
		if err != nil {
			return sessionNotFound(c)
		}
		return c.JSON(http.StatusOK, response)
	}
}

// ChatHandler handles POST /api/v1/sessions/:id/messages: one user turn
// through the screening state machine.
func ChatHandler(sessionManager *interview.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		sessionID := c.Param("id")

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request body: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := chatValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		response, err := sessionManager.HandleMessage(c.Request().Context(), sessionID, req.Message)
		if err != nil {
			return sessionNotFound(c)
		}

		logger.Debug("Chat turn processed", map[string]interface{}{
			"request_id": requestID,
			"session_id": sessionID,
			"stage":      response.Stage,
		})

		return c.JSON(http.StatusOK, response)
	}
}

func sessionNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:     "session_not_found",
		Message:   "Unknown or expired session",
		RequestID: utils.GenerateRequestID(),
		Timestamp: time.Now(),
	})
}
