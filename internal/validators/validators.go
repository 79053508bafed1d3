// Package validators checks the candidate-supplied contact and experience
// fields during the collect-info stage.
package validators

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	digits       = regexp.MustCompile(`\D`)
)

// IsValidEmail reports whether s looks like an email address: a local part,
// exactly one @, and a dot-separated domain suffix.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s is an international phone number: an
// optional leading + followed by 2-15 digits, first digit nonzero.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidExperience reports whether s contains a parseable, non-negative
// number of years once every non-digit character is stripped.
func IsValidExperience(s string) bool {
	_, ok := ParseYears(s)
	return ok
}

// ParseYears strips all non-digit characters from s and parses the rest as
// a non-negative integer. Returns false for inputs with no digits.
func ParseYears(s string) (int, bool) {
	stripped := digits.ReplaceAllString(s, "")
	if stripped == "" {
		return 0, false
	}
	years, err := strconv.Atoi(stripped)
	if err != nil || years < 0 {
		return 0, false
	}
	return years, true
}

// ParseTechStack splits a comma-separated technology list, trimming
// whitespace and dropping blank entries.
func ParseTechStack(s string) []string {
	var stack []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			stack = append(stack, t)
		}
	}
	return stack
}
