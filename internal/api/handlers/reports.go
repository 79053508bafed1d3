package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"talentscout/internal/interview"
	"talentscout/pkg/models"
	"talentscout/pkg/utils"
)

// ReportHandler handles GET /api/v1/sessions/:id/reports/:format, serving
// the exported JSON or PDF report once the session is complete.
func ReportHandler(sessionManager *interview.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Param("id")
		format := c.Param("format")

		jsonPath, pdfPath, ready, err := sessionManager.ReportPaths(sessionID)
		if err != nil {
			return sessionNotFound(c)
		}
		if !ready {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:     "reports_not_ready",
				Message:   "Reports are available once the screening is complete",
				RequestID: utils.GenerateRequestID(),
				Timestamp: time.Now(),
			})
		}

		var path string
		switch format {
		case "json":
			path = jsonPath
		case "pdf":
			path = pdfPath
		default:
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "unsupported_format",
				Message:   "Report format must be json or pdf",
				RequestID: utils.GenerateRequestID(),
				Timestamp: time.Now(),
			})
		}

		if _, err := os.Stat(path); err != nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "report_missing",
				Message:   "Report file no longer exists on disk",
				RequestID: utils.GenerateRequestID(),
				Timestamp: time.Now(),
			})
		}

		return c.Attachment(path, filepath.Base(path))
	}
}
