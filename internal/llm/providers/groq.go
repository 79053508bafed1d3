package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"talentscout/internal/config"
	"talentscout/internal/logging"
	"talentscout/pkg/models"
)

// GroqProvider talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqProvider struct {
	config  *config.Config
	client  *http.Client
	baseURL string
	logger  logging.Logger
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewGroqProvider creates a new Groq provider instance
func NewGroqProvider(cfg *config.Config) *GroqProvider {
	return &GroqProvider{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.LLM.Timeout,
		},
		baseURL: strings.TrimRight(cfg.LLM.BaseURL, "/"),
		logger:  logging.GetGlobalLogger(),
	}
}

// Generate performs a single chat completion call
func (gp *GroqProvider) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	startTime := time.Now()

	reqBody := chatRequest{
		Model: gp.config.LLM.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemRole},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		gp.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+gp.config.LLM.APIKey)

	resp, err := gp.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("error unmarshaling response: %w", err)
	}

	if completion.Error != nil {
		return "", fmt.Errorf("groq API error: %s", completion.Error.Message)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from groq API")
	}

	gp.logger.Debug("Groq generation completed", map[string]interface{}{
		"model":           gp.config.LLM.Model,
		"total_tokens":    completion.Usage.TotalTokens,
		"processing_time": time.Since(startTime).String(),
	})

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// IsHealthy checks if the Groq API is reachable with the configured key
func (gp *GroqProvider) IsHealthy(ctx context.Context) error {
	if gp.config.LLM.APIKey == "" {
		return fmt.Errorf("groq API key not configured - set GROQ_API_KEY environment variable")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, gp.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("error creating health check request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+gp.config.LLM.APIKey)

	resp, err := gp.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("groq API health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("groq API health check failed: status %d", resp.StatusCode)
	}
	return nil
}

// GetProviderName returns the name of the provider
func (gp *GroqProvider) GetProviderName() string {
	return "groq"
}
