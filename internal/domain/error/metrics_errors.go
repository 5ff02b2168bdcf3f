// Package error defines domain-specific errors for the Pulso application.
package error

import "errors"

// Metrics domain errors.
var (
	// ErrInvalidPeriodKey is returned when a period key is not YYYY-MM.
	ErrInvalidPeriodKey = errors.New("invalid period key, expected YYYY-MM")

	// ErrWorkspaceNotFound is returned when the requested workspace does not exist.
	ErrWorkspaceNotFound = errors.New("workspace not found")
)

// MetricsErrorCode defines error codes for metrics errors.
// Format: MET-XXYYYY where XX is category and YYYY is specific error.
type MetricsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriodKey  MetricsErrorCode = "MET-010001"
	ErrCodeWorkspaceNotFound MetricsErrorCode = "MET-010002"

	// Internal errors (99XXXX)
	ErrCodeMetricsInternalError MetricsErrorCode = "MET-990001"
)

// MetricsError represents a metrics error with code and message.
type MetricsError struct {
	Code    MetricsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MetricsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MetricsError) Unwrap() error {
	return e.Err
}

// NewMetricsError creates a new MetricsError with the given code and message.
func NewMetricsError(code MetricsErrorCode, message string, err error) *MetricsError {
	return &MetricsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
