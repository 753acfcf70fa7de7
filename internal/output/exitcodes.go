package output

import "errors"

// Exit codes. Every failure kind (bad name, unsafe directory, stage failure)
// maps to the same non-zero status.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
	// Reported is true when the failure was already printed in full
	// (itemized reasons, conflict list, rollback log).
	Reported bool
}

// Error implements the error interface. Unreported errors include the cause
// so the top-level handler prints something actionable.
func (e *ExitError) Error() string {
	if e.Cause != nil && !e.Reported {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewFailure creates an exit-code-1 error.
func NewFailure(message string) *ExitError {
	return &ExitError{Code: ExitFailure, Message: message}
}

// NewFailureWithCause creates an exit-code-1 error wrapping cause.
func NewFailureWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitFailure, Message: message, Cause: cause}
}

// NewReported creates an exit-code-1 error whose details were already printed.
func NewReported(message string, cause error) *ExitError {
	return &ExitError{Code: ExitFailure, Message: message, Cause: cause, Reported: true}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether err carries details that were already printed.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}
