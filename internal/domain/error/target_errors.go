// Package error defines domain-specific errors for the Pulso application.
package error

import "errors"

// Monthly target domain errors.
var (
	// ErrInvalidSalesTarget is returned when the sales target is zero or negative.
	ErrInvalidSalesTarget = errors.New("sales target must be greater than zero")

	// ErrInvalidCollectionTarget is returned when the collection target is negative.
	ErrInvalidCollectionTarget = errors.New("collection target must not be negative")

	// ErrTooManyTargets is returned when a bulk save exceeds twelve months.
	ErrTooManyTargets = errors.New("bulk save accepts at most twelve targets")

	// ErrTargetNotFound is returned when no target resolves for a period.
	ErrTargetNotFound = errors.New("monthly target not found")
)

// TargetErrorCode defines error codes for target errors.
// Format: TGT-XXYYYY where XX is category and YYYY is specific error.
type TargetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSalesTarget      TargetErrorCode = "TGT-010001"
	ErrCodeInvalidCollectionTarget TargetErrorCode = "TGT-010002"
	ErrCodeTooManyTargets          TargetErrorCode = "TGT-010003"

	// Lookup errors (02XXXX)
	ErrCodeTargetNotFound TargetErrorCode = "TGT-020001"

	// Internal errors (99XXXX)
	ErrCodeTargetInternalError TargetErrorCode = "TGT-990001"
)

// TargetError represents a target error with code and message.
type TargetError struct {
	Code    TargetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TargetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TargetError) Unwrap() error {
	return e.Err
}

// NewTargetError creates a new TargetError with the given code and message.
func NewTargetError(code TargetErrorCode, message string, err error) *TargetError {
	return &TargetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
