// Code generated by ent, DO NOT EDIT.

package stepevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stepevent type in the database.
	Label = "step_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldToolType holds the string denoting the tool_type field in the database.
	FieldToolType = "tool_type"
	// FieldProblem holds the string denoting the problem field in the database.
	FieldProblem = "problem"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldMistakeType holds the string denoting the mistake_type field in the database.
	FieldMistakeType = "mistake_type"
	// FieldGuidanceLevel holds the string denoting the guidance_level field in the database.
	FieldGuidanceLevel = "guidance_level"
	// Table holds the table name of the stepevent in the database.
	Table = "step_events"
)

// Columns holds all SQL columns for stepevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldToolType,
	FieldProblem,
	FieldResult,
	FieldCorrect,
	FieldMistakeType,
	FieldGuidanceLevel,
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
	// ToolTypeValidator is a validator for the "tool_type" field. It is called by the builders before save.
	ToolTypeValidator func(string) error
	// DefaultProblem holds the default value on creation for the "problem" field.
	DefaultProblem string
	// ResultValidator is a validator for the "result" field. It is called by the builders before save.
	ResultValidator func(string) error
	// DefaultMistakeType holds the default value on creation for the "mistake_type" field.
	DefaultMistakeType string
	// DefaultGuidanceLevel holds the default value on creation for the "guidance_level" field.
	DefaultGuidanceLevel string
)

// OrderOption defines the ordering options for the StepEvent queries.
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

// ByToolType orders the results by the tool_type field.
func ByToolType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolType, opts...).ToFunc()
}

// ByProblem orders the results by the problem field.
func ByProblem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblem, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByMistakeType orders the results by the mistake_type field.
func ByMistakeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMistakeType, opts...).ToFunc()
}

// ByGuidanceLevel orders the results by the guidance_level field.
func ByGuidanceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuidanceLevel, opts...).ToFunc()
}
