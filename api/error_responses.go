package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidJSON       ErrorCode = "INVALID_JSON"
	ErrorCodeInvalidWord       ErrorCode = "INVALID_WORD"
	ErrorCodeUnknownWord       ErrorCode = "UNKNOWN_WORD"
	ErrorCodeJobNotFound       ErrorCode = "JOB_NOT_FOUND"
	ErrorCodeSchemeUnsatisfied ErrorCode = "SCHEME_UNSATISFIED"
	ErrorCodeRequestCancelled  ErrorCode = "REQUEST_CANCELLED"

	// Server Error Codes (5xx)
	ErrorCodeInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrorCodeIndexNotReady      ErrorCode = "INDEX_NOT_READY"
	ErrorCodeJobExecutionFailed ErrorCode = "JOB_EXECUTION_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendJobNotFoundError sends a standardized job not found error
func SendJobNotFoundError(c *gin.Context, jobID string) {
	SendError(c, http.StatusNotFound, ErrorCodeJobNotFound,
		"Job '"+jobID+"' not found")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendJobExecutionError sends a standardized job execution error
func SendJobExecutionError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeJobExecutionFailed,
		"Failed to start "+operation+" job: "+err.Error())
}

// SendServiceError maps an error returned by the rhyme service to a response.
func SendServiceError(c *gin.Context, operation string, err error) {
	var validationErr *internalErrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed",
			ErrorDetail{Field: validationErr.Field, Message: validationErr.Message, Code: "VALIDATION_ERROR"})
	case errors.Is(err, internalErrors.ErrNotStressed),
		errors.Is(err, internalErrors.ErrAmbiguousStress),
		errors.Is(err, internalErrors.ErrHyphenated),
		errors.Is(err, internalErrors.ErrNoStressPhoneme):
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidWord, err.Error())
	case errors.Is(err, internalErrors.ErrInvalidInput):
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, internalErrors.ErrUnknownWord):
		SendError(c, http.StatusNotFound, ErrorCodeUnknownWord, err.Error())
	case errors.Is(err, internalErrors.ErrJobNotFound):
		SendError(c, http.StatusNotFound, ErrorCodeJobNotFound, err.Error())
	case errors.Is(err, internalErrors.ErrSchemeUnsatisfied):
		SendError(c, http.StatusUnprocessableEntity, ErrorCodeSchemeUnsatisfied, err.Error())
	case errors.Is(err, internalErrors.ErrIndexNotReady),
		errors.Is(err, internalErrors.ErrEmptyCorpus):
		SendError(c, http.StatusServiceUnavailable, ErrorCodeIndexNotReady, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		SendError(c, http.StatusRequestTimeout, ErrorCodeRequestCancelled, err.Error())
	default:
		SendInternalError(c, operation, err)
	}
}
