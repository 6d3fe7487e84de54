// Package config provides configuration structures for the rhyme engine.
// It defines the rhymer settings persisted with a trained index and the
// application configuration loaded from YAML and environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/go-rhyme-engine/model"
)

// DefaultMaxAttempts is the number of scheme assignment attempts made when the
// caller does not choose one.
const DefaultMaxAttempts = 20

// RhymerSettings contains the options of a rhyme index.
// They are stored together with the trained index, so a loaded index answers
// queries exactly like the one that was trained.
//
// IMPORTANT: Strictness order matters! Scheme assignment cycles through the
// levels in order, one level per attempt, so the first entries should be the
// strictest and the last the loosest. Rhyme suggestions take the union over
// all levels.
type RhymerSettings struct {
	Strictness     []model.Strictness `json:"strictness" yaml:"strictness"`           // Matching levels, strictest first
	MaxAttempts    int                `json:"max_attempts" yaml:"max_attempts"`       // Default attempt bound for scheme assignment (e.g., 20)
	StressPhonemes []string           `json:"stress_phonemes" yaml:"stress_phonemes"` // Phoneme symbols marking a stressed vowel
	CacheSize      int                `json:"cache_size" yaml:"cache_size"`           // Rhyme lookups kept in the LRU cache, 0 disables it
}

// DefaultRhymerSettings returns settings with every default applied.
func DefaultRhymerSettings() RhymerSettings {
	var settings RhymerSettings
	settings.ApplyDefaults()
	return settings
}

// ApplyDefaults applies default values to the rhymer settings
func (settings *RhymerSettings) ApplyDefaults() {
	if len(settings.Strictness) == 0 {
		settings.Strictness = model.DefaultStrictness()
	}
	if settings.MaxAttempts == 0 {
		settings.MaxAttempts = DefaultMaxAttempts
	}
	if len(settings.StressPhonemes) == 0 {
		settings.StressPhonemes = []string{
			"U0", "O0", "A0", "E0", "Y0", "I0",
			"U0l", "O0l", "A0l", "E0l", "Y0l", "I0l",
		}
	}
	if settings.CacheSize < 0 {
		settings.CacheSize = 0
	}
}

// Validate checks the settings and returns one message per problem found
func (settings *RhymerSettings) Validate() []string {
	var problems []string

	if len(settings.Strictness) == 0 {
		problems = append(problems, "At least one strictness level is required")
	}
	for i, s := range settings.Strictness {
		if s.MinMatches.Left < 1 || s.MinMatches.Right < 1 {
			problems = append(problems, fmt.Sprintf("Strictness level %d must require at least 1 match on each side", i))
		}
		if s.MaxSkips.Left < 0 || s.MaxSkips.Right < 0 {
			problems = append(problems, fmt.Sprintf("Strictness level %d cannot allow a negative number of skips", i))
		}
	}

	if settings.MaxAttempts < 1 {
		problems = append(problems, "max_attempts must be at least 1")
	}

	problems = append(problems, checkDuplicates("stress_phonemes", settings.StressPhonemes)...)
	for _, p := range settings.StressPhonemes {
		if strings.TrimSpace(p) == "" {
			problems = append(problems, "Stress phoneme cannot be empty or whitespace-only")
		}
	}

	return problems
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, values []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, v := range values {
		if seen[v] {
			errors = append(errors, "Duplicate value '"+v+"' found in "+fieldName)
		}
		seen[v] = true
	}

	return errors
}
