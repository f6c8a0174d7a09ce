// Code generated by ent, DO NOT EDIT.

package validationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the validationevent type in the database.
	Label = "validation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldValid holds the string denoting the valid field in the database.
	FieldValid = "valid"
	// FieldStructured holds the string denoting the structured field in the database.
	FieldStructured = "structured"
	// FieldSecurity holds the string denoting the security field in the database.
	FieldSecurity = "security"
	// FieldProblem holds the string denoting the problem field in the database.
	FieldProblem = "problem"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldErrorText holds the string denoting the error_text field in the database.
	FieldErrorText = "error_text"
	// Table holds the table name of the validationevent in the database.
	Table = "validation_events"
)

// Columns holds all SQL columns for validationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldMethod,
	FieldValid,
	FieldStructured,
	FieldSecurity,
	FieldProblem,
	FieldAnswer,
	FieldErrorText,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultMethod holds the default value on creation for the "method" field.
	DefaultMethod string
	// DefaultStructured holds the default value on creation for the "structured" field.
	DefaultStructured bool
	// DefaultSecurity holds the default value on creation for the "security" field.
	DefaultSecurity bool
	// DefaultProblem holds the default value on creation for the "problem" field.
	DefaultProblem string
	// DefaultAnswer holds the default value on creation for the "answer" field.
	DefaultAnswer string
	// DefaultErrorText holds the default value on creation for the "error_text" field.
	DefaultErrorText string
)

// OrderOption defines the ordering options for the ValidationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByValid orders the results by the valid field.
func ByValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValid, opts...).ToFunc()
}

// ByStructured orders the results by the structured field.
func ByStructured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStructured, opts...).ToFunc()
}

// BySecurity orders the results by the security field.
func BySecurity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecurity, opts...).ToFunc()
}

// ByProblem orders the results by the problem field.
func ByProblem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblem, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByErrorText orders the results by the error_text field.
func ByErrorText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorText, opts...).ToFunc()
}
