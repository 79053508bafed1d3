package logging

import (
	"fmt"
	"sync"

	"talentscout/internal/logging/adapters"
)

// Manager manages the logging system initialization and configuration
type Manager struct {
	factory *AdapterFactory
	logger  *MultiLogger
}

// NewManager creates a new logging manager
func NewManager() *Manager {
	return &Manager{
		factory: NewAdapterFactory(),
		logger:  NewMultiLogger(),
	}
}

// Initialize initializes the logging system from configuration. When no
// adapters are configured a stdout adapter is installed so log output is
// never silently dropped.
func (m *Manager) Initialize(level, format string, adapterConfigs []AdapterConfig) error {
	m.logger.SetLevel(ParseLogLevel(level))

	installed := 0
	for _, adapterConfig := range adapterConfigs {
		if !adapterConfig.Enabled {
			continue
		}

		adapter, err := m.factory.CreateAdapter(adapterConfig)
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", adapterConfig.Name, err)
		}
		if err := m.logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add adapter %s: %w", adapterConfig.Name, err)
		}
		installed++
	}

	if installed == 0 {
		stdout := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{Format: format})
		if err := m.logger.AddAdapter(stdout); err != nil {
			return fmt.Errorf("failed to add stdout adapter: %w", err)
		}
	}
	return nil
}

// GetLogger returns the initialized logger
func (m *Manager) GetLogger() Logger {
	return m.logger
}

// Close closes the logging system
func (m *Manager) Close() error {
	if m.logger != nil {
		return m.logger.Close()
	}
	return nil
}

var (
	globalManager *Manager
	globalMu      sync.Mutex
)

// InitializeLogging initializes the global logging system
func InitializeLogging(level, format string, adapterConfigs []AdapterConfig) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalManager = NewManager()
	return globalManager.Initialize(level, format, adapterConfigs)
}

// GetGlobalLogger returns the global logger instance. A basic stdout logger
// is installed when logging has not been initialized yet.
func GetGlobalLogger() Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		globalManager = NewManager()
		stdout := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{Format: "json"})
		globalManager.logger.AddAdapter(stdout)
	}
	return globalManager.GetLogger()
}
