package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the `is` binary. Shell callers that only test zero vs
// non-zero see the documented true/false contract; the 1-vs-2 split is an
// additive refinement for callers that want to tell a false predicate from
// a malformed invocation.
const (
	ExitTrue  = 0 // Predicate evaluated true
	ExitFalse = 1 // Predicate evaluated false
	ExitUsage = 2 // Usage error (unknown predicate, bad operand) or runtime fault
)

// ExitError represents an error with a specific exit code.
// Commands return it from RunE; Execute maps it to the process status.
type ExitError struct {
	Code    int    // Exit code (ExitFalse or ExitUsage)
	Message string // Error message; empty for a silent false result
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that carry no
// code - cobra's own usage errors among them - are command errors, not
// false results, so the default is ExitUsage.
func GetExitCode(err error) int {
	if err == nil {
		return ExitTrue
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
