package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentscout/internal/config"
	"talentscout/pkg/models"
)

func groqConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = "groq"
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = baseURL
	cfg.LLM.Model = "llama3-70b-8192"
	cfg.LLM.Timeout = 5 * time.Second
	return cfg
}

func TestGroqGenerate(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Index        int         `json:"index"`
				Message      chatMessage `json:"message"`
				FinishReason string      `json:"finish_reason"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "  generated text \n"}},
			},
		})
	}))
	defer server.Close()

	provider := NewGroqProvider(groqConfig(server.URL))
	result, err := provider.Generate(context.Background(), models.GenerateRequest{
		SystemRole:  "You are an interviewer.",
		Prompt:      "Ask one question.",
		Temperature: 0.3,
		MaxTokens:   256,
	})
	require.NoError(t, err)

	assert.Equal(t, "generated text", result)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "llama3-70b-8192", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "You are an interviewer.", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, 256, gotReq.MaxTokens)
}

func TestGroqGenerateErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"message":"rate limit exceeded"}}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		provider := NewGroqProvider(groqConfig(server.URL))
		_, err := provider.Generate(context.Background(), models.GenerateRequest{Prompt: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(chatResponse{})
		}))
		defer server.Close()

		provider := NewGroqProvider(groqConfig(server.URL))
		_, err := provider.Generate(context.Background(), models.GenerateRequest{Prompt: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})

	t.Run("unreachable server", func(t *testing.T) {
		provider := NewGroqProvider(groqConfig("http://127.0.0.1:1"))
		_, err := provider.Generate(context.Background(), models.GenerateRequest{Prompt: "x"})
		assert.Error(t, err)
	})
}

func TestGroqIsHealthy(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		provider := NewGroqProvider(groqConfig(server.URL))
		assert.NoError(t, provider.IsHealthy(context.Background()))
	})

	t.Run("bad status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		provider := NewGroqProvider(groqConfig(server.URL))
		assert.Error(t, provider.IsHealthy(context.Background()))
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := groqConfig("http://127.0.0.1:1")
		cfg.LLM.APIKey = ""
		provider := NewGroqProvider(cfg)
		assert.Error(t, provider.IsHealthy(context.Background()))
	})
}

func TestGroqProviderName(t *testing.T) {
	assert.Equal(t, "groq", NewGroqProvider(groqConfig("http://x")).GetProviderName())
}
