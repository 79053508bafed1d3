package questions

import (
	"context"
	"regexp"
	"strings"

	"talentscout/internal/logging"
	"talentscout/internal/prompts"
	"talentscout/pkg/models"
)

// TextGenerator is the narrow slice of the LLM manager the generator needs.
type TextGenerator interface {
	Generate(ctx context.Context, req models.GenerateRequest) (string, error)
}

// Generator produces technology-specific interview questions through the
// text-generation service, one call per technology.
type Generator struct {
	llm              TextGenerator
	temperature      float64
	maxTokens        int
	maxPerTechnology int
	logger           logging.Logger
}

// NewGenerator creates a technical question generator.
func NewGenerator(llm TextGenerator, temperature float64, maxTokens, maxPerTechnology int) *Generator {
	if maxPerTechnology <= 0 {
		maxPerTechnology = 5
	}
	return &Generator{
		llm:              llm,
		temperature:      temperature,
		maxTokens:        maxTokens,
		maxPerTechnology: maxPerTechnology,
		logger:           logging.GetGlobalLogger(),
	}
}

// ForTechnology requests 3-5 questions for one technology and returns them
// cleaned and capped. The error is returned alongside nothing else; the
// caller decides whether to substitute the error text into the conversation.
func (g *Generator) ForTechnology(ctx context.Context, technology, experience string) ([]string, error) {
	response, err := g.llm.Generate(ctx, models.GenerateRequest{
		SystemRole:  prompts.TechnicalRole,
		Prompt:      prompts.TechQuestions(technology, experience),
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		g.logger.Warn("Technical question generation failed", map[string]interface{}{
			"technology": technology,
			"error":      err.Error(),
		})
		return nil, err
	}

	cleaned := CleanLines(response)
	if len(cleaned) > g.maxPerTechnology {
		cleaned = cleaned[:g.maxPerTechnology]
	}
	return cleaned, nil
}

var linePrefix = regexp.MustCompile(`^(\d+[.)]|[-*•])\s*`)

// CleanLines splits generated text into lines, dropping blanks and stripping
// any leading "N." / "N)" numbering or bullet token from each line.
func CleanLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(linePrefix.ReplaceAllString(line, "")))
	}
	return lines
}
