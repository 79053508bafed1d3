package llm

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"talentscout/internal/config"
	"talentscout/internal/logging"
	"talentscout/pkg/models"
	"talentscout/pkg/utils"
)

// Manager manages the text-generation provider and its lifecycle. Outbound
// calls share a single rate limiter so a burst of sessions cannot exhaust
// the upstream quota.
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	limiter  *rate.Limiter
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	perSecond := rate.Limit(float64(cfg.LLM.RateLimit) / 60.0)
	if cfg.LLM.RateLimit <= 0 {
		perSecond = rate.Inf
	}

	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		limiter: rate.NewLimiter(perSecond, cfg.LLM.RateLimit),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
		"model":    m.config.LLM.Model,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}
	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
			"error":    err.Error(),
		})
		m.healthy = false
		// The server still starts; failed generation calls surface as
		// chat content per the screening flow's error policy.
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// Generate performs a single text-generation call through the configured
// provider. The request is gated by the shared rate limiter; there are no
// retries.
func (m *Manager) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return "", fmt.Errorf("LLM manager not started or provider not available")
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	if req.MaxTokens <= 0 {
		req.MaxTokens = m.config.LLM.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)
	defer cancel()

	result, err := provider.Generate(ctx, req)
	if err != nil {
		return "", utils.NewLLMError(err.Error())
	}
	return result, nil
}

// IsHealthy reports whether the manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
