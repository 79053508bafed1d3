// Package evaluator turns the accumulated interview record into a free-text
// assessment and a structured screening decision via the text-generation
// service. Both results are opaque text; nothing here parses or validates
// their structure.
package evaluator

import (
	"context"

	"talentscout/internal/logging"
	"talentscout/internal/prompts"
	"talentscout/pkg/models"
)

// TextGenerator is the narrow slice of the LLM manager the evaluator needs.
type TextGenerator interface {
	Generate(ctx context.Context, req models.GenerateRequest) (string, error)
}

// Evaluator requests candidate evaluations and screening decisions.
type Evaluator struct {
	llm         TextGenerator
	temperature float64
	maxTokens   int
	logger      logging.Logger
}

// New creates an evaluator.
func New(llm TextGenerator, temperature float64, maxTokens int) *Evaluator {
	return &Evaluator{
		llm:         llm,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logging.GetGlobalLogger(),
	}
}

// Evaluate requests the full free-text assessment: a 1-10 rating, strengths
// and weaknesses, a recommendation, justification, and next steps.
func (e *Evaluator) Evaluate(ctx context.Context, candidate *models.CandidateRecord) (string, error) {
	evaluation, err := e.llm.Generate(ctx, models.GenerateRequest{
		SystemRole:  prompts.EvaluationRole,
		Prompt:      prompts.Evaluation(candidate),
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		e.logger.Warn("Candidate evaluation failed", map[string]interface{}{
			"position": candidate.Position,
			"error":    err.Error(),
		})
		return "", err
	}
	return evaluation, nil
}

// Decide compresses an evaluation into the three-line screening decision
// (recommendation, confidence, one-sentence summary).
func (e *Evaluator) Decide(ctx context.Context, evaluation string) (string, error) {
	decision, err := e.llm.Generate(ctx, models.GenerateRequest{
		SystemRole:  prompts.EvaluationRole,
		Prompt:      prompts.Decision(evaluation),
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		e.logger.Warn("Screening decision failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", err
	}
	return decision, nil
}
