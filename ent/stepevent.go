// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bhairavmehta/MathTeacherAgent/ent/stepevent"
)

// StepEvent is the model entity for the StepEvent schema.
type StepEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ToolType holds the value of the "tool_type" field.
	ToolType string `json:"tool_type,omitempty"`
	// Problem holds the value of the "problem" field.
	Problem string `json:"problem,omitempty"`
	// Result holds the value of the "result" field.
	Result string `json:"result,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// MistakeType holds the value of the "mistake_type" field.
	MistakeType string `json:"mistake_type,omitempty"`
	// GuidanceLevel holds the value of the "guidance_level" field.
	GuidanceLevel string `json:"guidance_level,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case stepevent.FieldID, stepevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case stepevent.FieldSessionID, stepevent.FieldToolType, stepevent.FieldProblem, stepevent.FieldResult, stepevent.FieldMistakeType, stepevent.FieldGuidanceLevel:
			values[i] = new(sql.NullString)
		case stepevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepEvent fields.
func (_m *StepEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stepevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case stepevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case stepevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case stepevent.FieldToolType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_type", values[i])
			} else if value.Valid {
				_m.ToolType = value.String
			}
		case stepevent.FieldProblem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem", values[i])
			} else if value.Valid {
				_m.Problem = value.String
			}
		case stepevent.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = value.String
			}
		case stepevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case stepevent.FieldMistakeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mistake_type", values[i])
			} else if value.Valid {
				_m.MistakeType = value.String
			}
		case stepevent.FieldGuidanceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guidance_level", values[i])
			} else if value.Valid {
				_m.GuidanceLevel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StepEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StepEvent.
// Note that you need to call StepEvent.Unwrap() before calling this method if this StepEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepEvent) Update() *StepEventUpdateOne {
	return NewStepEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepEvent) Unwrap() *StepEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StepEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("tool_type=")
	builder.WriteString(_m.ToolType)
	builder.WriteString(", ")
	builder.WriteString("problem=")
	builder.WriteString(_m.Problem)
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(_m.Result)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("mistake_type=")
	builder.WriteString(_m.MistakeType)
	builder.WriteString(", ")
	builder.WriteString("guidance_level=")
	builder.WriteString(_m.GuidanceLevel)
	builder.WriteByte(')')
	return builder.String()
}

// StepEvents is a parsable slice of StepEvent.
type StepEvents []*StepEvent
