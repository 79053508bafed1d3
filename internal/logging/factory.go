package logging

import (
	"fmt"
	"os"

	"talentscout/internal/logging/adapters"
	"talentscout/internal/logging/types"
)

// AdapterFactory creates logging adapters based on configuration
type AdapterFactory struct{}

// NewAdapterFactory creates a new adapter factory
func NewAdapterFactory() *AdapterFactory {
	return &AdapterFactory{}
}

// CreateAdapter creates a logging adapter based on the provided configuration
func (f *AdapterFactory) CreateAdapter(adapterConfig types.AdapterConfig) (types.LogAdapter, error) {
	switch adapterConfig.Type {
	case "stdout":
		return f.createStdoutAdapter(adapterConfig)
	case "file":
		return f.createFileAdapter(adapterConfig)
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", adapterConfig.Type)
	}
}

func (f *AdapterFactory) createStdoutAdapter(adapterConfig types.AdapterConfig) (types.LogAdapter, error) {
	config := adapters.StdoutConfig{
		Format: getStringOption(adapterConfig.Options, "format", "json"),
	}
	return adapters.NewStdoutAdapter(adapterConfig.Name, config), nil
}

func (f *AdapterFactory) createFileAdapter(adapterConfig types.AdapterConfig) (types.LogAdapter, error) {
	config := adapters.FileConfig{
		FilePath:   getStringOption(adapterConfig.Options, "file_path", ""),
		Format:     getStringOption(adapterConfig.Options, "format", "json"),
		MaxSize:    getInt64Option(adapterConfig.Options, "max_size", 0),
		CreateDirs: getBoolOption(adapterConfig.Options, "create_dirs", true),
		FileMode:   os.FileMode(0644),
	}
	return adapters.NewFileAdapter(adapterConfig.Name, config)
}

func getStringOption(options map[string]interface{}, key, defaultValue string) string {
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return defaultValue
}

func getBoolOption(options map[string]interface{}, key string, defaultValue bool) bool {
	if v, ok := options[key].(bool); ok {
		return v
	}
	return defaultValue
}

func getInt64Option(options map[string]interface{}, key string, defaultValue int64) int64 {
	switch v := options[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return defaultValue
	}
}
