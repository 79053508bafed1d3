package models

import "time"

// Chat message roles as they appear in the transcript.
const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// ChatMessage is a single transcript entry. The transcript is append-only;
// entries are never revised once added.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is the body of POST /api/v1/sessions/:id/messages.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

// SessionResponse is returned by the session endpoints. Progress mirrors the
// sidebar of the chat page: one entry per stage in order, flagged done or
// current.
type SessionResponse struct {
	SessionID    string          `json:"session_id"`
	Stage        string          `json:"stage"`
	Messages     []ChatMessage   `json:"messages"`
	Progress     []StageProgress `json:"progress"`
	ReportsReady bool            `json:"reports_ready"`
}

// StageProgress describes one stage of the screening pipeline.
type StageProgress struct {
	Stage   string `json:"stage"`
	Label   string `json:"label"`
	Done    bool   `json:"done"`
	Current bool   `json:"current"`
}
