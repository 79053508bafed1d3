package models

// GenerateRequest is a single synchronous text-generation call: a system
// role description, a user prompt, and sampling parameters.
type GenerateRequest struct {
	SystemRole  string  `json:"system_role"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}
