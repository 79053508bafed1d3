package interview

import (
	"sync"
	"time"

	"talentscout/internal/exporter"
	"talentscout/pkg/models"
	"talentscout/pkg/utils"
)

// Greeting messages appended to every new session.
const (
	welcomeMessage = "Welcome to TalentScout! I'm your AI Hiring Assistant. " +
		"I'll conduct an initial screening to assess your fit for technical roles. " +
		"Let's begin with some basic information. You can type 'exit' anytime to end the session."
	askNameMessage = "May I have your full name?"
)

// TechQuestion is one queued technology question, labeled with the
// technology it belongs to.
type TechQuestion struct {
	Technology string `json:"technology"`
	Question   string `json:"question"`
}

// Session holds the complete conversational state for one candidate. All
// mutation happens inside a single HandleTurn call while the session lock is
// held, so the turn-taking protocol itself is the concurrency control.
type Session struct {
	ID               string
	Stage            Stage
	Candidate        models.CandidateRecord
	Transcript       []models.ChatMessage
	CurrentQuestion  string
	HRQuestionsAsked int
	TechQueue        []TechQuestion
	TechGenerated    bool
	Reports          exporter.Paths
	CreatedAt        time.Time
	LastActivity     time.Time

	mu sync.Mutex
}

// NewSession creates an empty session in the collect-info stage with the
// greeting transcript.
func NewSession() *Session {
	now := time.Now()
	s := &Session{
		ID:           utils.GenerateSessionID(),
		Stage:        StageCollectInfo,
		CreatedAt:    now,
		LastActivity: now,
	}
	s.AppendAssistant(welcomeMessage)
	s.AppendAssistant(askNameMessage)
	return s
}

// Lock acquires the session's turn lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session's turn lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// AppendAssistant appends an assistant message to the transcript.
func (s *Session) AppendAssistant(content string) {
	s.Transcript = append(s.Transcript, models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// AppendUser appends a user message to the transcript.
func (s *Session) AppendUser(content string) {
	s.Transcript = append(s.Transcript, models.ChatMessage{
		Role:      models.RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// ReportsReady reports whether the session has exported report files.
func (s *Session) ReportsReady() bool {
	return s.Stage == StageComplete && s.Reports.JSON != "" && s.Reports.PDF != ""
}

// Response builds the API view of the session. Callers must hold the
// session lock.
func (s *Session) Response() models.SessionResponse {
	messages := make([]models.ChatMessage, len(s.Transcript))
	copy(messages, s.Transcript)

	current := s.Stage.Index()
	progress := make([]models.StageProgress, 0, len(Stages))
	for i, stage := range Stages {
		progress = append(progress, models.StageProgress{
			Stage:   stage.String(),
			Label:   stage.Label(),
			Done:    i < current || (stage == StageComplete && s.Stage == StageComplete),
			Current: i == current,
		})
	}

	return models.SessionResponse{
		SessionID:    s.ID,
		Stage:        s.Stage.String(),
		Messages:     messages,
		Progress:     progress,
		ReportsReady: s.ReportsReady(),
	}
}
