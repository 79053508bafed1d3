package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talentscout/pkg/models"
)

func TestTechQuestions(t *testing.T) {
	prompt := TechQuestions("Python", "4")
	assert.Contains(t, prompt, "Technology: Python")
	assert.Contains(t, prompt, "Experience: 4 years")
	assert.Contains(t, prompt, "Match 4 years experience level")
	assert.Contains(t, prompt, "one per line")
}

func TestEvaluation(t *testing.T) {
	candidate := &models.CandidateRecord{
		Position:   "Backend Engineer",
		Experience: "4",
		TechStack:  []string{"Go", "SQL"},
		Responses: []models.QA{
			{Question: "Why this role?", Answer: "Growth."},
			{Question: "What is a goroutine?", Answer: "A lightweight thread."},
		},
	}

	prompt := Evaluation(candidate)
	assert.Contains(t, prompt, "Position: Backend Engineer")
	assert.Contains(t, prompt, "Tech Stack: Go, SQL")
	assert.Contains(t, prompt, "Q: Why this role?\nA: Growth.")
	assert.Contains(t, prompt, "Q: What is a goroutine?\nA: A lightweight thread.")
	assert.Contains(t, prompt, "Technical Competence (70%)")
}

func TestDecision(t *testing.T) {
	prompt := Decision("strong candidate overall")
	assert.Contains(t, prompt, "strong candidate overall")
	assert.Contains(t, prompt, "Recommendation: [Strong Yes/Yes/No/Strong No]")
	assert.Contains(t, prompt, "Confidence: [High/Medium/Low]")
}

func TestFormatResponses(t *testing.T) {
	assert.Empty(t, FormatResponses(nil, "\n"))

	out := FormatResponses([]models.QA{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
	}, "\n\n")
	assert.Equal(t, "Q: q1\nA: a1\n\nQ: q2\nA: a2", out)
}
