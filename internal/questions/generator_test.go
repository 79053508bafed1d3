package questions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentscout/pkg/models"
)

type generateFunc func(ctx context.Context, req models.GenerateRequest) (string, error)

func (f generateFunc) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	return f(ctx, req)
}

func TestCleanLines(t *testing.T) {
	t.Run("strips numbering and bullets", func(t *testing.T) {
		text := "1. What is a goroutine?\n2) Explain channels.\n- Describe select.\n* What is a mutex?\n• How does GC work?"
		lines := CleanLines(text)
		require.Len(t, lines, 5)
		assert.Equal(t, "What is a goroutine?", lines[0])
		assert.Equal(t, "Explain channels.", lines[1])
		assert.Equal(t, "Describe select.", lines[2])
		assert.Equal(t, "What is a mutex?", lines[3])
		assert.Equal(t, "How does GC work?", lines[4])
	})

	t.Run("drops blank lines", func(t *testing.T) {
		lines := CleanLines("\n\nFirst question\n\n  \nSecond question\n")
		assert.Equal(t, []string{"First question", "Second question"}, lines)
	})

	t.Run("plain text passes through", func(t *testing.T) {
		lines := CleanLines("No numbering here")
		assert.Equal(t, []string{"No numbering here"}, lines)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, CleanLines(""))
	})
}

func TestGeneratorForTechnology(t *testing.T) {
	t.Run("cleans and caps the response", func(t *testing.T) {
		var captured models.GenerateRequest
		gen := NewGenerator(generateFunc(func(_ context.Context, req models.GenerateRequest) (string, error) {
			captured = req
			return "1. q1\n2. q2\n3. q3\n4. q4\n5. q5\n6. q6\n7. q7", nil
		}), 0.3, 512, 5)

		lines, err := gen.ForTechnology(context.Background(), "Python", "4 years")
		require.NoError(t, err)
		assert.Equal(t, []string{"q1", "q2", "q3", "q4", "q5"}, lines)
		assert.Contains(t, captured.Prompt, "Python")
		assert.Contains(t, captured.Prompt, "4 years")
		assert.NotEmpty(t, captured.SystemRole)
	})

	t.Run("propagates generation errors", func(t *testing.T) {
		gen := NewGenerator(generateFunc(func(context.Context, models.GenerateRequest) (string, error) {
			return "", errors.New("rate limited")
		}), 0.3, 512, 5)

		lines, err := gen.ForTechnology(context.Background(), "SQL", "2")
		require.Error(t, err)
		assert.Nil(t, lines)
	})

	t.Run("short responses are kept whole", func(t *testing.T) {
		gen := NewGenerator(generateFunc(func(context.Context, models.GenerateRequest) (string, error) {
			return "- only one", nil
		}), 0.3, 512, 5)

		lines, err := gen.ForTechnology(context.Background(), "Go", "1")
		require.NoError(t, err)
		assert.Equal(t, []string{"only one"}, lines)
	})
}
