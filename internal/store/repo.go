package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	After     int64  // sequence > After
	Before    int64  // sequence < Before
	SessionID string // restrict to one session (empty = all)
}

// ValidationEventData captures one tool-response validation attempt.
type ValidationEventData struct {
	SessionID  string
	Method     string
	Valid      bool
	Structured bool
	Security   bool
	Problem    string
	Answer     string
	ErrorText  string
}

// ValidationEventRecord is a queried validation event.
type ValidationEventRecord struct {
	ValidationEventData
	Sequence  int64
	Timestamp time.Time
}

// StepEventData captures one learning-step validation.
type StepEventData struct {
	SessionID     string
	ToolType      string
	Problem       string
	Result        string
	Correct       bool
	MistakeType   string
	GuidanceLevel string
}

// StepEventRecord is a queried step event.
type StepEventRecord struct {
	StepEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the diagnostic event log.
type EventRepo interface {
	// AppendValidation records a tool-response validation attempt.
	AppendValidation(ctx context.Context, data ValidationEventData) error

	// AppendStep records a learning-step validation.
	AppendStep(ctx context.Context, data StepEventData) error

	// QueryValidationEvents returns validation events, newest first.
	QueryValidationEvents(ctx context.Context, opts QueryOpts) ([]ValidationEventRecord, error)

	// QueryStepEvents returns step events, newest first.
	QueryStepEvents(ctx context.Context, opts QueryOpts) ([]StepEventRecord, error)

	// MistakeFrequency counts step events per non-empty mistake type.
	MistakeFrequency(ctx context.Context) (map[string]int, error)

	// SecurityEventCount counts validation events flagged as security
	// detections.
	SecurityEventCount(ctx context.Context) (int, error)
}
