package interview

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"talentscout/internal/exporter"
	"talentscout/internal/logging"
	"talentscout/internal/validators"
	"talentscout/pkg/models"
)

// Fixed assistant prompts for the collect-info walk and stage transitions.
const (
	askEmailMessage      = "What's your professional email address?"
	askPhoneMessage      = "Please share your phone number (international format: +[country code][number])"
	askPositionMessage   = "What specific position are you applying for?"
	askExperienceMessage = "How many years of relevant experience do you have in this field?"
	askLocationMessage   = "Where are you currently located (city, country)?"
	askTechStackMessage  = "Please list your technical skills (comma-separated):"

	invalidEmailMessage      = "Please enter a valid email address (e.g., name@company.com)"
	invalidPhoneMessage      = "Please enter a valid phone number (e.g., +1234567890)"
	invalidExperienceMessage = "Please enter valid years of experience (e.g., 3)"

	hrIntroMessage       = "Great! Let's start with some general questions."
	techIntroMessage     = "Now let's move to technical questions."
	evaluatingMessage    = "Thank you for your responses! I'm now evaluating your answers..."
	completedMessage     = "Thank you for completing the screening! Your information has been securely stored. Our recruitment team will contact you about next steps within 3 business days. You can now close this window."
	exitMessage          = "Thank you for your time. Your information has been saved. We'll contact you about next steps."
	sessionClosedMessage = "This screening session is complete. You can download your reports from the sidebar."
)

// exitCommands force an immediate jump to the complete stage from anywhere.
var exitCommands = map[string]struct{}{
	"exit": {}, "quit": {}, "bye": {}, "goodbye": {}, "stop": {}, "end": {},
}

// HRQuestionSource picks one HR question from the static dataset matching
// the candidate's position and experience band. An empty question means the
// filtered set was empty.
type HRQuestionSource interface {
	Pick(position, experience string) (string, error)
}

// TechQuestionSource generates cleaned, capped questions for a single
// technology.
type TechQuestionSource interface {
	ForTechnology(ctx context.Context, technology, experience string) ([]string, error)
}

// CandidateEvaluator produces the free-text evaluation and the structured
// screening decision.
type CandidateEvaluator interface {
	Evaluate(ctx context.Context, candidate *models.CandidateRecord) (string, error)
	Decide(ctx context.Context, evaluation string) (string, error)
}

// ReportExporter persists a candidate record to report files.
type ReportExporter interface {
	Export(candidate *models.CandidateRecord) (exporter.Paths, error)
}

// Controller drives the screening state machine. It holds no per-session
// state: every turn takes the session in, mutates it, and returns.
type Controller struct {
	hr              HRQuestionSource
	tech            TechQuestionSource
	evaluator       CandidateEvaluator
	exporter        ReportExporter
	hrQuestionLimit int
	maxTechnologies int
	logger          logging.Logger
}

// NewController wires the controller's collaborators.
func NewController(hr HRQuestionSource, tech TechQuestionSource, eval CandidateEvaluator, exp ReportExporter, hrQuestionLimit, maxTechnologies int) *Controller {
	if hrQuestionLimit <= 0 {
		hrQuestionLimit = 3
	}
	if maxTechnologies <= 0 {
		maxTechnologies = 5
	}
	return &Controller{
		hr:              hr,
		tech:            tech,
		evaluator:       eval,
		exporter:        exp,
		hrQuestionLimit: hrQuestionLimit,
		maxTechnologies: maxTechnologies,
		logger:          logging.GetGlobalLogger(),
	}
}

// HandleTurn processes one user message: it appends the message to the
// transcript, runs the current stage's logic, and appends the assistant's
// reply. Callers must hold the session lock.
func (c *Controller) HandleTurn(ctx context.Context, s *Session, input string) {
	s.AppendUser(input)

	if isExitCommand(input) {
		s.AppendAssistant(exitMessage)
		c.persist(s)
		s.Stage = StageComplete
		return
	}

	switch s.Stage {
	case StageCollectInfo:
		c.collectInfo(s, input)
	case StageHRQuestions:
		c.hrQuestions(s, input)
	case StageTechQuestions:
		c.techQuestions(ctx, s, input)
	case StageEvaluation:
		c.evaluate(ctx, s, input)
	case StageComplete:
		s.AppendAssistant(sessionClosedMessage)
	}
}

func isExitCommand(input string) bool {
	_, ok := exitCommands[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

// collectInfo walks the candidate fields in fixed order. Invalid input stays
// in the transcript but is never stored; the same field is re-prompted.
func (c *Controller) collectInfo(s *Session, input string) {
	candidate := &s.Candidate

	switch {
	case candidate.Name == "":
		candidate.Name = input
		s.AppendAssistant(askEmailMessage)

	case candidate.Email == "":
		if validators.IsValidEmail(input) {
			candidate.Email = input
			s.AppendAssistant(askPhoneMessage)
		} else {
			s.AppendAssistant(invalidEmailMessage)
		}

	case candidate.Phone == "":
		if validators.IsValidPhone(input) {
			candidate.Phone = input
			s.AppendAssistant(askPositionMessage)
		} else {
			s.AppendAssistant(invalidPhoneMessage)
		}

	case candidate.Position == "":
		candidate.Position = input
		s.AppendAssistant(askExperienceMessage)

	case candidate.Experience == "":
		if validators.IsValidExperience(input) {
			candidate.Experience = input
			s.AppendAssistant(askLocationMessage)
		} else {
			s.AppendAssistant(invalidExperienceMessage)
		}

	case candidate.Location == "":
		candidate.Location = input
		s.AppendAssistant(askTechStackMessage)

	case len(candidate.TechStack) == 0:
		if stack := validators.ParseTechStack(input); len(stack) > 0 {
			candidate.TechStack = stack
			s.Stage = StageHRQuestions
			s.AppendAssistant(hrIntroMessage)
		} else {
			s.AppendAssistant(askTechStackMessage)
		}
	}
}

// hrQuestions stores any pending answer, then asks the next dataset question
// until the limit is reached. An empty or failed filter skips straight to
// technical questions.
func (c *Controller) hrQuestions(s *Session, input string) {
	c.resolvePending(s, input)

	if s.HRQuestionsAsked >= c.hrQuestionLimit {
		s.Stage = StageTechQuestions
		s.AppendAssistant(techIntroMessage)
		return
	}

	question, err := c.hr.Pick(s.Candidate.Position, s.Candidate.Experience)
	if err != nil || question == "" {
		if err != nil {
			c.logger.Warn("HR question selection failed", map[string]interface{}{
				"session_id": s.ID,
				"error":      err.Error(),
			})
		}
		s.Stage = StageTechQuestions
		s.AppendAssistant(techIntroMessage)
		return
	}

	s.CurrentQuestion = question
	s.HRQuestionsAsked++
	s.AppendAssistant(question)
}

// techQuestions stores any pending answer, generates the question queue on
// first entry, and pops one question per turn until the queue is drained.
func (c *Controller) techQuestions(ctx context.Context, s *Session, input string) {
	c.resolvePending(s, input)

	if !s.TechGenerated {
		c.generateTechQueue(ctx, s)
	}

	if len(s.TechQueue) > 0 {
		next := s.TechQueue[0]
		s.TechQueue = s.TechQueue[1:]
		s.CurrentQuestion = fmt.Sprintf("**%s**: %s", next.Technology, next.Question)
		s.AppendAssistant(s.CurrentQuestion)
		return
	}

	s.Stage = StageEvaluation
	s.AppendAssistant(evaluatingMessage)
}

// generateTechQueue requests questions for the first technologies on the
// stack, flattens them into one queue, and shuffles it once. A failed
// generation call contributes its error text as the question content; the
// conversation advances either way.
func (c *Controller) generateTechQueue(ctx context.Context, s *Session) {
	technologies := s.Candidate.TechStack
	if len(technologies) > c.maxTechnologies {
		technologies = technologies[:c.maxTechnologies]
	}

	for _, tech := range technologies {
		lines, err := c.tech.ForTechnology(ctx, tech, s.Candidate.Experience)
		if err != nil {
			lines = []string{err.Error()}
		}
		for _, q := range lines {
			s.TechQueue = append(s.TechQueue, TechQuestion{Technology: tech, Question: q})
		}
	}

	rand.Shuffle(len(s.TechQueue), func(i, j int) {
		s.TechQueue[i], s.TechQueue[j] = s.TechQueue[j], s.TechQueue[i]
	})
	s.TechGenerated = true

	c.logger.Info("Technical question queue generated", map[string]interface{}{
		"session_id":   s.ID,
		"technologies": len(technologies),
		"queue_length": len(s.TechQueue),
	})
}

// evaluate runs exactly once per session: it requests the free-text
// evaluation and the structured decision, persists the record, and closes
// the session. Failed generation calls substitute their error text.
func (c *Controller) evaluate(ctx context.Context, s *Session, input string) {
	c.resolvePending(s, input)

	evaluation, err := c.evaluator.Evaluate(ctx, &s.Candidate)
	if err != nil {
		evaluation = err.Error()
	}
	s.Candidate.Evaluation = evaluation

	decision, err := c.evaluator.Decide(ctx, evaluation)
	if err != nil {
		decision = err.Error()
	}
	s.Candidate.ScreeningResult = decision

	s.AppendAssistant(fmt.Sprintf("## Evaluation Complete\n\n%s\n\n**Decision**:\n%s", evaluation, decision))

	c.persist(s)
	s.AppendAssistant(completedMessage)
	s.Stage = StageComplete
}

// persist exports whatever has been collected so far. Export happens at most
// once per session: on evaluation completion or on explicit exit.
func (c *Controller) persist(s *Session) {
	if s.Reports.JSON != "" || s.Reports.PDF != "" {
		return
	}

	paths, err := c.exporter.Export(&s.Candidate)
	if err != nil {
		c.logger.Error("Failed to export candidate report", map[string]interface{}{
			"session_id": s.ID,
			"error":      err.Error(),
		})
		return
	}
	s.Reports = paths
	s.Candidate.ReportPath = paths.PDF
}

// resolvePending stores the answer to the currently pending question, if
// any, keyed by the exact question text.
func (c *Controller) resolvePending(s *Session, input string) {
	if s.CurrentQuestion == "" {
		return
	}
	s.Candidate.SetResponse(s.CurrentQuestion, input)
	s.CurrentQuestion = ""
}
