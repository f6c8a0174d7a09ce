package toolresp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bhairavmehta/MathTeacherAgent/internal/store"
)

// LoggingValidator is a decorator that records every validation attempt as
// an event, including the security flag required for attack telemetry.
type LoggingValidator struct {
	inner  ResponseValidator
	events store.EventRepo
}

// WithLogging wraps a ResponseValidator with event logging.
func WithLogging(v ResponseValidator, repo store.EventRepo) ResponseValidator {
	return &LoggingValidator{inner: v, events: repo}
}

func (l *LoggingValidator) ValidateResponse(msg Message, sessionID string) Outcome {
	out := l.inner.ValidateResponse(msg, sessionID)

	data := store.ValidationEventData{
		SessionID: sessionOrDefault(sessionID),
		Method:    string(MethodUnknown),
		Valid:     out.IsValid,
		Security:  out.Security,
		ErrorText: strings.Join(out.Errors, "; "),
	}
	if out.Data != nil {
		data.Method = string(out.Data.Method)
		data.Structured = out.Data.StructuredFormat
		data.Problem = out.Data.Problem
		data.Answer = out.Data.Answer.String()
	}

	// Log the event but don't fail the validation if logging fails.
	if err := l.events.AppendValidation(context.Background(), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log validation event: %v\n", err)
	}

	return out
}
