// Package questions supplies interview questions from two sources: a static
// HR dataset loaded at startup and per-technology questions generated by the
// text-generation service.
package questions

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"talentscout/internal/validators"
)

// Experience bands used to match dataset entries against a candidate's
// stated years of experience.
const (
	LevelEntry  = "Entry"
	LevelMid    = "Mid"
	LevelSenior = "Senior"
)

// Entry is one record of the HR question dataset.
type Entry struct {
	Role       string `json:"role"`
	Experience string `json:"experience"`
	Question   string `json:"question"`
}

// Store holds the static HR question dataset, loaded once at startup.
type Store struct {
	entries []Entry
}

// LoadStore reads the dataset file. Any failure here is startup-fatal for
// the caller.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read HR questions dataset %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse HR questions dataset %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("HR questions dataset %s is empty", path)
	}

	return &Store{entries: entries}, nil
}

// NewStore wraps an in-memory entry list, used by tests and embedded defaults.
func NewStore(entries []Entry) *Store {
	return &Store{entries: entries}
}

// Len returns the number of dataset entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// ExperienceLevel derives the experience band from a free-text years value:
// under 3 is Entry, under 6 is Mid, everything else Senior. Unparseable
// input counts as zero years.
func ExperienceLevel(experience string) string {
	years, ok := validators.ParseYears(experience)
	if !ok {
		years = 0
	}
	switch {
	case years < 3:
		return LevelEntry
	case years < 6:
		return LevelMid
	default:
		return LevelSenior
	}
}

// Filter returns the dataset entries matching the candidate's position and
// experience band: the position must appear case-insensitively in the entry
// role (or the role must be General), and the band must appear in the entry
// experience field.
func (s *Store) Filter(position, experience string) []Entry {
	level := ExperienceLevel(experience)
	lowered := strings.ToLower(position)

	var filtered []Entry
	for _, e := range s.entries {
		roleMatch := strings.Contains(strings.ToLower(e.Role), lowered) ||
			strings.Contains(e.Role, "General")
		if roleMatch && strings.Contains(e.Experience, level) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Pick filters the dataset and returns one matching question chosen
// uniformly at random. The filter is recomputed on every call, so repeats
// across turns are possible. An empty string means nothing matched.
func (s *Store) Pick(position, experience string) (string, error) {
	filtered := s.Filter(position, experience)
	if len(filtered) == 0 {
		return "", nil
	}
	return filtered[rand.Intn(len(filtered))].Question, nil
}
