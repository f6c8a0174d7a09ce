package toolresp

import "github.com/bhairavmehta/MathTeacherAgent/internal/sanitize"

// Method identifies the interactive tool that produced a completion message.
type Method string

const (
	MethodNumberLine Method = "number_line"
	MethodPractice   Method = "practice"
	MethodCalculator Method = "calculator"
	MethodUnknown    Method = "unknown"
)

// ParseMethod maps a method string to its enum value. Unrecognized names
// fall back to MethodUnknown; lenient by design, callers attach a warning
// rather than failing the message.
func ParseMethod(s string) Method {
	switch Method(s) {
	case MethodNumberLine, MethodPractice, MethodCalculator:
		return Method(s)
	default:
		return MethodUnknown
	}
}

// Record is a validated and sanitized tool-completion message. It is
// consumed immediately by the caller and never persisted by the core.
type Record struct {
	Method           Method          `json:"tool_used"`
	Problem          string          `json:"completed_problem"`
	Answer           sanitize.Number `json:"student_answer"`
	Success          bool            `json:"success"`
	StructuredFormat bool            `json:"structured_format"`
}

// Outcome is the result of a tool-response validation attempt.
// IsValid is true iff Data is non-nil and Errors is empty.
type Outcome struct {
	IsValid  bool     `json:"is_valid"`
	Data     *Record  `json:"data,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`

	// Security marks outcomes where an injection signature was detected.
	// Telemetry must separate these from ordinary validation failures.
	Security bool `json:"security,omitempty"`
}

// invalid builds a failed Outcome from error strings.
func invalid(errs ...string) Outcome {
	return Outcome{IsValid: false, Errors: errs}
}
