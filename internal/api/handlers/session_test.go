package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentscout/internal/exporter"
	"talentscout/internal/interview"
	"talentscout/pkg/models"
)

type staticHR struct{ question string }

func (s staticHR) Pick(string, string) (string, error) { return s.question, nil }

type staticTech struct{ questions []string }

func (s staticTech) ForTechnology(context.Context, string, string) ([]string, error) {
	return s.questions, nil
}

type staticEvaluator struct{ evaluation, decision string }

func (s staticEvaluator) Evaluate(context.Context, *models.CandidateRecord) (string, error) {
	return s.evaluation, nil
}

func (s staticEvaluator) Decide(context.Context, string) (string, error) {
	return s.decision, nil
}

func newTestSessionManager(t *testing.T) *interview.Manager {
	t.Helper()
	controller := interview.NewController(
		staticHR{question: "Tell me about yourself."},
		staticTech{questions: []string{"What is a goroutine?"}},
		staticEvaluator{evaluation: "solid", decision: "PROCEED"},
		exporter.New(t.TempDir()),
		1, 5,
	)
	return interview.NewManager(controller, time.Hour, time.Minute)
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func setupTestRoutes(t *testing.T) (*echo.Echo, *interview.Manager) {
	t.Helper()
	manager := newTestSessionManager(t)
	e := echo.New()
	e.POST("/api/v1/sessions", CreateSessionHandler(manager))
	e.GET("/api/v1/sessions/:id", GetSessionHandler(manager))
	e.POST("/api/v1/sessions/:id/messages", ChatHandler(manager))
	e.GET("/api/v1/sessions/:id/reports/:format", ReportHandler(manager))
	return e, manager
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) models.SessionResponse {
	t.Helper()
	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateSessionHandler(t *testing.T) {
	e, _ := setupTestRoutes(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeSession(t, rec)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "collect_info", resp.Stage)
	assert.Len(t, resp.Messages, 2)
	assert.False(t, resp.ReportsReady)
}

func TestGetSessionHandler(t *testing.T) {
	e, _ := setupTestRoutes(t)
	created := decodeSession(t, doJSON(e, http.MethodPost, "/api/v1/sessions", ""))

	t.Run("existing session", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/sessions/"+created.SessionID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.SessionID, decodeSession(t, rec).SessionID)
	})

	t.Run("unknown session", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/sessions/nope", "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var errResp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "session_not_found", errResp.Error)
	})
}

func TestChatHandler(t *testing.T) {
	e, _ := setupTestRoutes(t)
	created := decodeSession(t, doJSON(e, http.MethodPost, "/api/v1/sessions", ""))
	messagesURL := "/api/v1/sessions/" + created.SessionID + "/messages"

	t.Run("processes a turn", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, messagesURL, `{"message":"Jane Doe"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeSession(t, rec)
		require.Len(t, resp.Messages, 4)
		assert.Equal(t, "Jane Doe", resp.Messages[2].Content)
		assert.Contains(t, resp.Messages[3].Content, "email")
	})

	t.Run("rejects empty message", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, messagesURL, `{"message":""}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "validation_failed", errResp.Error)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, messagesURL, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/sessions/nope/messages", `{"message":"hi"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReportHandler(t *testing.T) {
	e, _ := setupTestRoutes(t)
	created := decodeSession(t, doJSON(e, http.MethodPost, "/api/v1/sessions", ""))
	base := "/api/v1/sessions/" + created.SessionID

	t.Run("conflict before completion", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, base+"/reports/json", "")
		require.Equal(t, http.StatusConflict, rec.Code)

		var errResp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "reports_not_ready", errResp.Error)
	})

	// Complete the session by exiting; the exporter writes real files.
	rec := doJSON(e, http.MethodPost, base+"/messages", `{"message":"exit"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decodeSession(t, rec).ReportsReady)

	t.Run("serves json report", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, base+"/reports/json", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), ".json")
	})

	t.Run("serves pdf report", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, base+"/reports/pdf", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "%PDF", rec.Body.String()[:4])
	})

	t.Run("unsupported format", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, base+"/reports/xml", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/sessions/nope/reports/json", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthHandlers(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthHandler)
	e.GET("/health/live", LivenessHandler)

	t.Run("health", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "ok", resp.Checks["api"])
	})

	t.Run("liveness", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/health/live", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "alive", resp.Status)
	})
}
