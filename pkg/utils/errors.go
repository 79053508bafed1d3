package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// NewLLMError wraps a failure from the text-generation service. Its Error
// text is what gets substituted into the conversation when a generation
// call fails.
func NewLLMError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "LLM processing failed",
		Detail:  detail,
	}
}
