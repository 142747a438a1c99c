package predicate

import (
	"errors"
	"fmt"
	"strings"
)

// UsageCode categorizes usage errors.
type UsageCode string

const (
	// CodeUnknownCategory indicates the first token named no category.
	CodeUnknownCategory UsageCode = "UNKNOWN_CATEGORY"

	// CodeUnknownPredicate indicates the category has no such predicate.
	CodeUnknownPredicate UsageCode = "UNKNOWN_PREDICATE"

	// CodeWrongArity indicates the operand count doesn't match the spec.
	CodeWrongArity UsageCode = "WRONG_ARITY"

	// CodeBadOperand indicates an operand failed typed parsing.
	CodeBadOperand UsageCode = "BAD_OPERAND"

	// CodeBadPattern indicates a regex or glob pattern failed to compile.
	CodeBadPattern UsageCode = "BAD_PATTERN"
)

// UsageError represents malformed input: an unknown category or predicate,
// a wrong operand count, or an operand that failed typed parsing. Usage
// errors are distinct from a predicate evaluating to false and map to exit
// code 2 at the CLI boundary.
type UsageError struct {
	// Code identifies the error category.
	Code UsageCode

	// Message is a human-readable description of what was malformed.
	Message string

	// Valid enumerates the accepted names, for unknown-category and
	// unknown-predicate errors.
	Valid []string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if len(e.Valid) > 0 {
		return fmt.Sprintf("%s (valid: %s)", e.Message, strings.Join(e.Valid, ", "))
	}
	return e.Message
}

// IsUsage reports whether err is (or wraps) a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// NewBadPattern creates a UsageError for a regex or glob pattern that
// failed to compile. Evaluators use this so that a broken pattern is
// reported as malformed input rather than a false result.
func NewBadPattern(pattern string, err error) *UsageError {
	return &UsageError{
		Code:    CodeBadPattern,
		Message: fmt.Sprintf("invalid pattern %q: %v", pattern, err),
	}
}

func newUnknownCategory(name string, valid []string) *UsageError {
	return &UsageError{
		Code:    CodeUnknownCategory,
		Message: fmt.Sprintf("unknown category %q", name),
		Valid:   valid,
	}
}

func newUnknownPredicate(category, name string, valid []string) *UsageError {
	return &UsageError{
		Code:    CodeUnknownPredicate,
		Message: fmt.Sprintf("unknown predicate %q in category %q", name, category),
		Valid:   valid,
	}
}

func newWrongArity(category, name string, want, got int) *UsageError {
	return &UsageError{
		Code:    CodeWrongArity,
		Message: fmt.Sprintf("%s %s takes %d operand(s), got %d", category, name, want, got),
	}
}

func newBadOperand(kind Kind, raw string) *UsageError {
	return &UsageError{
		Code:    CodeBadOperand,
		Message: fmt.Sprintf("operand %q is not %s", raw, kind.shape()),
	}
}
