// Package prompts holds the system role descriptions and prompt builders
// used for every call to the text-generation service.
package prompts

import (
	"fmt"
	"strings"

	"talentscout/pkg/models"
)

// System role descriptions for the three call types.
const (
	ScreeningRole = "You're an experienced HR screening assistant for TalentScout. Conduct initial candidate screenings by:" +
		"\n1. Collecting essential candidate information professionally" +
		"\n2. Asking relevant HR questions from the provided dataset" +
		"\n3. Maintaining friendly yet professional tone" +
		"\n4. Validating inputs where necessary" +
		"\n\nAlways maintain context and conversation flow."

	TechnicalRole = "Generate technical interview questions based on these rules:" +
		"\n- Create 3-5 questions per technology" +
		"\n- Questions should assess practical knowledge" +
		"\n- Include 1 scenario-based question per technology" +
		"\n- Difficulty should match candidate's experience level" +
		"\n- Cover both theoretical and practical aspects"

	EvaluationRole = "Evaluate candidates based on:" +
		"\n1. Technical competence (70% weight)" +
		"\n2. Communication skills (20% weight)" +
		"\n3. Cultural fit (10% weight)" +
		"\n\nProvide:" +
		"\n- Strengths and weaknesses" +
		"\n- Recommendation (Strong Yes/Yes/No/Strong No)" +
		"\n- Justification for recommendation" +
		"\n- Suggested next steps"
)

// TechQuestions builds the per-technology question generation prompt.
func TechQuestions(technology, experience string) string {
	return fmt.Sprintf(`Candidate Profile:
- Technology: %s
- Experience: %s years

Generate 3-5 technical questions that:
1. Assess core concepts
2. Include one real-world scenario
3. Cover best practices
4. Match %s years experience level

Return only the questions, one per line.`, technology, experience, experience)
}

// Evaluation builds the full candidate evaluation prompt from the
// accumulated record.
func Evaluation(candidate *models.CandidateRecord) string {
	return fmt.Sprintf(`**Candidate Evaluation**
Position: %s
Experience: %s years
Tech Stack: %s

**Interview Responses:**
%s

**Evaluation Criteria:**
- Technical Competence (70%%)
- Communication Skills (20%%)
- Cultural Fit (10%%)

Provide:
1. Overall assessment (1-10 rating)
2. Key strengths and weaknesses
3. Recommendation (Strong Yes/Yes/No/Strong No)
4. Detailed justification
5. Suggested next steps`,
		candidate.Position,
		candidate.Experience,
		strings.Join(candidate.TechStack, ", "),
		FormatResponses(candidate.Responses, "\n"))
}

// Decision builds the prompt that compresses an evaluation into the
// three-line screening decision.
func Decision(evaluation string) string {
	return fmt.Sprintf(`Based on this evaluation:
%s

Provide a final screening decision in this format:
Recommendation: [Strong Yes/Yes/No/Strong No]
Confidence: [High/Medium/Low]
Summary: [One-sentence summary]`, evaluation)
}

// FormatResponses renders question/answer pairs as "Q: ...\nA: ..." blocks
// separated by sep, preserving asked order.
func FormatResponses(responses []models.QA, sep string) string {
	parts := make([]string, 0, len(responses))
	for _, qa := range responses {
		parts = append(parts, fmt.Sprintf("Q: %s\nA: %s", qa.Question, qa.Answer))
	}
	return strings.Join(parts, sep)
}
