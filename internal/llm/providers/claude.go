package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"talentscout/internal/config"
	"talentscout/internal/logging"
	"talentscout/pkg/models"
)

// ClaudeProvider implements the provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Generate performs a single message completion call using Claude
func (cp *ClaudeProvider) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	startTime := time.Now()

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.model()),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: req.Prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	}
	if req.SystemRole != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemRole}}
	}

	response, err := cp.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}
	if responseText == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	cp.logger.Debug("Claude generation completed", map[string]interface{}{
		"model":           cp.model(),
		"processing_time": time.Since(startTime).String(),
	})

	return strings.TrimSpace(responseText), nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.model()),
		MaxTokens: 10,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}
	return nil
}

// GetProviderName returns the name of the provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}

func (cp *ClaudeProvider) model() string {
	if cp.config.LLM.Model != "" && cp.config.LLM.Provider == "claude" {
		return cp.config.LLM.Model
	}
	return string(anthropic.ModelClaude3_7SonnetLatest)
}
