package stepcheck

import (
	"context"
	"fmt"
	"os"

	"github.com/bhairavmehta/MathTeacherAgent/internal/store"
)

// StepValidator is the learning-step entry point the orchestration layer
// calls whenever a front end reports an intermediate action.
type StepValidator interface {
	ValidateLearningStep(req Request) Response
}

// LoggingValidator is a decorator that records every step validation as an
// event for mistake-frequency insights.
type LoggingValidator struct {
	inner  StepValidator
	events store.EventRepo
}

// WithLogging wraps a StepValidator with event logging.
func WithLogging(v StepValidator, repo store.EventRepo) StepValidator {
	return &LoggingValidator{inner: v, events: repo}
}

func (l *LoggingValidator) ValidateLearningStep(req Request) Response {
	resp := l.inner.ValidateLearningStep(req)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "default"
	}
	data := store.StepEventData{
		SessionID:     sessionID,
		ToolType:      string(req.ToolType),
		Problem:       req.Problem,
		Result:        string(resp.ValidationResult.Result),
		Correct:       resp.ValidationResult.IsCorrect,
		MistakeType:   string(resp.ValidationResult.MistakeType),
		GuidanceLevel: string(resp.ValidationResult.GuidanceLevel),
	}

	// Log the event but don't fail the validation if logging fails.
	if err := l.events.AppendStep(context.Background(), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log step event: %v\n", err)
	}

	return resp
}
