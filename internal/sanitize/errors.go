package sanitize

import "fmt"

// ValidationError indicates malformed, oversized, or unparsable input.
// It is recoverable: callers surface it as a user-facing error entry.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// SecurityError indicates a detected injection signature. Recoverable like
// ValidationError, but callers must distinguish it in telemetry since it
// signals a potential attack rather than user error.
type SecurityError struct {
	Msg string
}

func (e *SecurityError) Error() string { return e.Msg }
