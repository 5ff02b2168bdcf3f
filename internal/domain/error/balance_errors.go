// Package error defines domain-specific errors for the Pulso application.
package error

import "errors"

// Balance recording domain errors.
var (
	// ErrInvalidBalanceAmount is returned when the recorded balance is zero or negative.
	ErrInvalidBalanceAmount = errors.New("balance amount must be greater than zero")

	// ErrSnapshotNotFound is returned when no balance snapshot exists for a workspace.
	ErrSnapshotNotFound = errors.New("balance snapshot not found")

	// ErrStreakNotFound is returned when no streak row exists for a workspace.
	ErrStreakNotFound = errors.New("reconciliation streak not found")
)

// BalanceErrorCode defines error codes for balance errors.
// Format: BAL-XXYYYY where XX is category and YYYY is specific error.
type BalanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBalanceAmount BalanceErrorCode = "BAL-010001"

	// Lookup errors (02XXXX)
	ErrCodeSnapshotNotFound BalanceErrorCode = "BAL-020001"
	ErrCodeStreakNotFound   BalanceErrorCode = "BAL-020002"

	// Internal errors (99XXXX)
	ErrCodeBalanceInternalError BalanceErrorCode = "BAL-990001"
)

// BalanceError represents a balance error with code and message.
type BalanceError struct {
	Code    BalanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BalanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// NewBalanceError creates a new BalanceError with the given code and message.
func NewBalanceError(code BalanceErrorCode, message string, err error) *BalanceError {
	return &BalanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
