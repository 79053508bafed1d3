package llm

import (
	"context"

	"talentscout/pkg/models"
)

// Provider defines the interface for text-generation providers
type Provider interface {
	// Generate returns the generated text for the request
	Generate(ctx context.Context, req models.GenerateRequest) (string, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
