package models

// QA is a single asked question and the candidate's answer. Responses keep
// insertion order, so the record serializes questions in the order they
// were asked.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CandidateRecord holds everything collected about a candidate during one
// screening session. Fields are populated strictly in the order name ->
// email -> phone -> position -> experience -> location -> tech stack; a
// later field is never set while an earlier one is still empty.
type CandidateRecord struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Position        string   `json:"position"`
	Experience      string   `json:"experience"`
	Location        string   `json:"location"`
	TechStack       []string `json:"tech_stack"`
	Responses       []QA     `json:"responses"`
	Evaluation      string   `json:"evaluation"`
	ScreeningResult string   `json:"screening_result"`
	ReportPath      string   `json:"report_path,omitempty"`
}

// SetResponse records an answer for the given question, appending it in
// asked order. Re-answering an already stored question overwrites the
// previous answer.
func (c *CandidateRecord) SetResponse(question, answer string) {
	for i := range c.Responses {
		if c.Responses[i].Question == question {
			c.Responses[i].Answer = answer
			return
		}
	}
	c.Responses = append(c.Responses, QA{Question: question, Answer: answer})
}

// ResponseFor returns the stored answer for a question and whether one exists.
func (c *CandidateRecord) ResponseFor(question string) (string, bool) {
	for _, qa := range c.Responses {
		if qa.Question == question {
			return qa.Answer, true
		}
	}
	return "", false
}

// InfoComplete reports whether every collect-info field has been captured.
func (c *CandidateRecord) InfoComplete() bool {
	return c.Name != "" && c.Email != "" && c.Phone != "" &&
		c.Position != "" && c.Experience != "" && c.Location != "" &&
		len(c.TechStack) > 0
}
