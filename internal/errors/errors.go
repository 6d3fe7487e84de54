package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// ErrNotStressed is returned when an orthographic form carries no stress marker
	ErrNotStressed = errors.New("word is not stressed")

	// ErrAmbiguousStress is returned when a form carries more than one stress marker
	ErrAmbiguousStress = errors.New("word stress is ambiguous")

	// ErrHyphenated is returned for compound forms written with a hyphen
	ErrHyphenated = errors.New("hyphenated words are not supported")

	// ErrNoStressPhoneme is returned when a phoneme sequence has no stressed vowel
	ErrNoStressPhoneme = errors.New("stress phoneme is missing")

	// ErrUnknownWord is returned when a word is neither in the corpus nor phonemizable
	ErrUnknownWord = errors.New("unknown word")

	// ErrSchemeUnsatisfied is returned when no attempt could fill a rhyme scheme
	ErrSchemeUnsatisfied = errors.New("rhyme scheme cannot be satisfied")

	// ErrEmptyCorpus is returned when a query needs at least one indexed word
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrAlreadyTrained is returned when training an index a second time
	ErrAlreadyTrained = errors.New("index is already trained")

	// ErrIndexNotReady is returned when no trained index has been loaded yet
	ErrIndexNotReady = errors.New("index is not ready")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// NotStressedError represents a word form without a stress marker
type NotStressedError struct {
	Form string
}

func (e *NotStressedError) Error() string {
	return fmt.Sprintf("word '%s' is not stressed: a '+' marker must be present", e.Form)
}

func (e *NotStressedError) Is(target error) bool {
	return target == ErrNotStressed
}

// NewNotStressedError creates a new NotStressedError
func NewNotStressedError(form string) *NotStressedError {
	return &NotStressedError{Form: form}
}

// NoStressPhonemeError carries the phoneme sequence that lacks a stressed vowel
type NoStressPhonemeError struct {
	Phonemes []string
}

func (e *NoStressPhonemeError) Error() string {
	return fmt.Sprintf("stress phoneme is missing: [%s]", strings.Join(e.Phonemes, " "))
}

func (e *NoStressPhonemeError) Is(target error) bool {
	return target == ErrNoStressPhoneme
}

// NewNoStressPhonemeError creates a new NoStressPhonemeError
func NewNoStressPhonemeError(phonemes []string) *NoStressPhonemeError {
	return &NoStressPhonemeError{Phonemes: append([]string(nil), phonemes...)}
}

// UnknownWordError represents a query word that cannot be phonemized
type UnknownWordError struct {
	Form string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("word '%s' is not in the corpus and no phonemizer is configured", e.Form)
}

func (e *UnknownWordError) Is(target error) bool {
	return target == ErrUnknownWord
}

// NewUnknownWordError creates a new UnknownWordError
func NewUnknownWordError(form string) *UnknownWordError {
	return &UnknownWordError{Form: form}
}

// SchemeUnsatisfiedError reports how many attempts were spent on a scheme
type SchemeUnsatisfiedError struct {
	Scheme   []string
	Attempts int
}

func (e *SchemeUnsatisfiedError) Error() string {
	return fmt.Sprintf("can't find enough rhymes for scheme '%s' in %d attempts, try to increase max attempts",
		strings.Join(e.Scheme, ""), e.Attempts)
}

func (e *SchemeUnsatisfiedError) Is(target error) bool {
	return target == ErrSchemeUnsatisfied
}

// NewSchemeUnsatisfiedError creates a new SchemeUnsatisfiedError
func NewSchemeUnsatisfiedError(scheme []string, attempts int) *SchemeUnsatisfiedError {
	return &SchemeUnsatisfiedError{Scheme: append([]string(nil), scheme...), Attempts: attempts}
}

// RecordError points at the corpus line that aborted a training pass
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("corpus record at line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError
func NewRecordError(line int, err error) *RecordError {
	return &RecordError{Line: line, Err: err}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
