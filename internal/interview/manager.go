package interview

import (
	"context"
	"fmt"
	"sync"
	"time"

	"talentscout/internal/logging"
	"talentscout/pkg/models"
)

// Manager is the in-memory session registry. Sessions never touch disk;
// idle ones are evicted by a background janitor. Each session's turn lock
// serializes turns, so concurrent requests against the same session queue up
// instead of interleaving.
type Manager struct {
	sessions        map[string]*Session
	controller      *Controller
	idleTTL         time.Duration
	cleanupInterval time.Duration
	logger          logging.Logger
	mu              sync.RWMutex
	stopCh          chan struct{}
	stopOnce        sync.Once
}

// NewManager creates a session manager around the given controller.
func NewManager(controller *Controller, idleTTL, cleanupInterval time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = time.Hour
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &Manager{
		sessions:        make(map[string]*Session),
		controller:      controller,
		idleTTL:         idleTTL,
		cleanupInterval: cleanupInterval,
		logger:          logging.GetGlobalLogger(),
		stopCh:          make(chan struct{}),
	}
}

// Create registers a new session and returns its API view.
func (m *Manager) Create() models.SessionResponse {
	session := NewSession()

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.Info("Screening session created", map[string]interface{}{
		"session_id": session.ID,
	})

	session.Lock()
	defer session.Unlock()
	return session.Response()
}

// Get returns the API view of a session.
func (m *Manager) Get(id string) (models.SessionResponse, error) {
	session, err := m.lookup(id)
	if err != nil {
		return models.SessionResponse{}, err
	}

	session.Lock()
	defer session.Unlock()
	return session.Response(), nil
}

// HandleMessage runs one turn against the session and returns the updated
// view. Turns are serialized per session by the session lock.
func (m *Manager) HandleMessage(ctx context.Context, id, message string) (models.SessionResponse, error) {
	session, err := m.lookup(id)
	if err != nil {
		return models.SessionResponse{}, err
	}

	session.Lock()
	defer session.Unlock()

	m.controller.HandleTurn(ctx, session, message)
	session.LastActivity = time.Now()
	return session.Response(), nil
}

// ReportPaths returns the exported report locations for a completed session.
func (m *Manager) ReportPaths(id string) (jsonPath, pdfPath string, ready bool, err error) {
	session, lookupErr := m.lookup(id)
	if lookupErr != nil {
		return "", "", false, lookupErr
	}

	session.Lock()
	defer session.Unlock()
	return session.Reports.JSON, session.Reports.PDF, session.ReportsReady(), nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Start launches the idle-session janitor.
func (m *Manager) Start() {
	go m.cleanupLoop()
}

// Stop terminates the janitor.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
}

func (m *Manager) lookup(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return session, nil
}

func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle()
		case <-m.stopCh:
			return
		}
	}
}

// evictIdle drops sessions with no activity inside the idle TTL. Abandoned
// mid-screening sessions lose their in-memory state; reports already written
// to disk are untouched.
func (m *Manager) evictIdle() {
	cutoff := time.Now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, session := range m.sessions {
		if session.LastActivity.Before(cutoff) {
			delete(m.sessions, id)
			m.logger.Info("Idle session evicted", map[string]interface{}{
				"session_id": id,
				"stage":      session.Stage.String(),
			})
		}
	}
}
