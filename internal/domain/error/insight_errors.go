// Package error defines domain-specific errors for the Pulso application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightUnavailable is returned when the AI service is not configured.
	ErrInsightUnavailable = errors.New("insight service is not available")

	// ErrInsightGenerationFailed is returned when the AI service fails to produce a summary.
	ErrInsightGenerationFailed = errors.New("failed to generate insight")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	ErrCodeInsightUnavailable      InsightErrorCode = "INS-010001"
	ErrCodeInsightGenerationFailed InsightErrorCode = "INS-990001"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
