// Package api provides the HTTP interface of the rhyme engine.
package api

import (
	"fmt"
	"strings"
)

// maxSchemeLength bounds the number of lines a single scheme request may fill.
const maxSchemeLength = 64

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateWordForm validates a single word form parameter
func ValidateWordForm(field, form string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if form == "" {
		result.AddError(field, "Word is required")
		return result
	}

	if strings.TrimSpace(form) != form {
		result.AddError(field, "Word cannot have leading or trailing whitespace")
		return result
	}

	if strings.ContainsAny(form, " \t\n") {
		result.AddError(field, "Word must be a single token")
	}

	return result
}

// ValidateRhymeRequest validates a rhyme query
func ValidateRhymeRequest(req *RhymeRequest) *ValidationResult {
	result := ValidateWordForm("word", req.Word)

	if req.MinMatches == nil && req.MaxSkips == nil {
		return result
	}
	if req.MinMatches == nil || req.MaxSkips == nil {
		result.AddError("strictness", "min_matches and max_skips must be given together")
		return result
	}

	bounds := []struct {
		field string
		value int
	}{
		{"min_matches.left", req.MinMatches.Left},
		{"min_matches.right", req.MinMatches.Right},
		{"max_skips.left", req.MaxSkips.Left},
		{"max_skips.right", req.MaxSkips.Right},
	}
	for _, b := range bounds {
		if b.value < 0 {
			result.AddError(b.field, "Value must be non-negative")
		}
	}

	return result
}

// ValidateSchemeRequest validates a scheme assignment request
func ValidateSchemeRequest(req *SchemeRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(req.Scheme) == 0 {
		result.AddError("scheme", "Scheme must contain at least one label")
	}
	if len(req.Scheme) > maxSchemeLength {
		result.AddError("scheme", fmt.Sprintf("Scheme cannot have more than %d labels", maxSchemeLength))
	}
	for i, label := range req.Scheme {
		if strings.TrimSpace(label) == "" {
			result.AddError(fmt.Sprintf("scheme[%d]", i), "Label cannot be empty")
		}
	}
	if req.MaxAttempts < 0 {
		result.AddError("max_attempts", "Max attempts must be non-negative")
	}

	return result
}

// ValidateSuggestRequest validates a suggestion request
func ValidateSuggestRequest(req *SuggestRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for i, form := range req.Context {
		field := fmt.Sprintf("context[%d]", i)
		for _, e := range ValidateWordForm(field, form).Errors {
			result.AddError(e.Field, e.Message)
		}
	}

	return result
}

// ValidateTrainRequest validates a training request
func ValidateTrainRequest(req *TrainRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(req.CorpusPath) == "" {
		result.AddError("corpus_path", "Corpus path is required")
	}

	return result
}
