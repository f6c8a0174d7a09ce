// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bhairavmehta/MathTeacherAgent/ent/validationevent"
)

// ValidationEvent is the model entity for the ValidationEvent schema.
type ValidationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// Valid holds the value of the "valid" field.
	Valid bool `json:"valid,omitempty"`
	// Structured holds the value of the "structured" field.
	Structured bool `json:"structured,omitempty"`
	// Security holds the value of the "security" field.
	Security bool `json:"security,omitempty"`
	// Problem holds the value of the "problem" field.
	Problem string `json:"problem,omitempty"`
	// Answer holds the value of the "answer" field.
	Answer string `json:"answer,omitempty"`
	// ErrorText holds the value of the "error_text" field.
	ErrorText    string `json:"error_text,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationevent.FieldValid, validationevent.FieldStructured, validationevent.FieldSecurity:
			values[i] = new(sql.NullBool)
		case validationevent.FieldID, validationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case validationevent.FieldSessionID, validationevent.FieldMethod, validationevent.FieldProblem, validationevent.FieldAnswer, validationevent.FieldErrorText:
			values[i] = new(sql.NullString)
		case validationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationEvent fields.
func (_m *ValidationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case validationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case validationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case validationevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case validationevent.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		case validationevent.FieldValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field valid", values[i])
			} else if value.Valid {
				_m.Valid = value.Bool
			}
		case validationevent.FieldStructured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field structured", values[i])
			} else if value.Valid {
				_m.Structured = value.Bool
			}
		case validationevent.FieldSecurity:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field security", values[i])
			} else if value.Valid {
				_m.Security = value.Bool
			}
		case validationevent.FieldProblem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem", values[i])
			} else if value.Valid {
				_m.Problem = value.String
			}
		case validationevent.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case validationevent.FieldErrorText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_text", values[i])
			} else if value.Valid {
				_m.ErrorText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ValidationEvent.
// Note that you need to call ValidationEvent.Unwrap() before calling this method if this ValidationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationEvent) Update() *ValidationEventUpdateOne {
	return NewValidationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationEvent) Unwrap() *ValidationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationEvent(")
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
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteString(", ")
	builder.WriteString("valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Valid))
	builder.WriteString(", ")
	builder.WriteString("structured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Structured))
	builder.WriteString(", ")
	builder.WriteString("security=")
	builder.WriteString(fmt.Sprintf("%v", _m.Security))
	builder.WriteString(", ")
	builder.WriteString("problem=")
	builder.WriteString(_m.Problem)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("error_text=")
	builder.WriteString(_m.ErrorText)
	builder.WriteByte(')')
	return builder.String()
}

// ValidationEvents is a parsable slice of ValidationEvent.
type ValidationEvents []*ValidationEvent
