// Code generated by ent, DO NOT EDIT.

package stepevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bhairavmehta/MathTeacherAgent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSessionID, v))
}

// ToolType applies equality check predicate on the "tool_type" field. It's identical to ToolTypeEQ.
func ToolType(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldToolType, v))
}

// Problem applies equality check predicate on the "problem" field. It's identical to ProblemEQ.
func Problem(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldProblem, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldResult, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldCorrect, v))
}

// MistakeType applies equality check predicate on the "mistake_type" field. It's identical to MistakeTypeEQ.
func MistakeType(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldMistakeType, v))
}

// GuidanceLevel applies equality check predicate on the "guidance_level" field. It's identical to GuidanceLevelEQ.
func GuidanceLevel(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldGuidanceLevel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ToolTypeEQ applies the EQ predicate on the "tool_type" field.
func ToolTypeEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldToolType, v))
}

// ToolTypeNEQ applies the NEQ predicate on the "tool_type" field.
func ToolTypeNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldToolType, v))
}

// ToolTypeIn applies the In predicate on the "tool_type" field.
func ToolTypeIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldToolType, vs...))
}

// ToolTypeNotIn applies the NotIn predicate on the "tool_type" field.
func ToolTypeNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldToolType, vs...))
}

// ToolTypeGT applies the GT predicate on the "tool_type" field.
func ToolTypeGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldToolType, v))
}

// ToolTypeGTE applies the GTE predicate on the "tool_type" field.
func ToolTypeGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldToolType, v))
}

// ToolTypeLT applies the LT predicate on the "tool_type" field.
func ToolTypeLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldToolType, v))
}

// ToolTypeLTE applies the LTE predicate on the "tool_type" field.
func ToolTypeLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldToolType, v))
}

// ToolTypeContains applies the Contains predicate on the "tool_type" field.
func ToolTypeContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldToolType, v))
}

// ToolTypeHasPrefix applies the HasPrefix predicate on the "tool_type" field.
func ToolTypeHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldToolType, v))
}

// ToolTypeHasSuffix applies the HasSuffix predicate on the "tool_type" field.
func ToolTypeHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldToolType, v))
}

// ToolTypeEqualFold applies the EqualFold predicate on the "tool_type" field.
func ToolTypeEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldToolType, v))
}

// ToolTypeContainsFold applies the ContainsFold predicate on the "tool_type" field.
func ToolTypeContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldToolType, v))
}

// ProblemEQ applies the EQ predicate on the "problem" field.
func ProblemEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldProblem, v))
}

// ProblemNEQ applies the NEQ predicate on the "problem" field.
func ProblemNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldProblem, v))
}

// ProblemIn applies the In predicate on the "problem" field.
func ProblemIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldProblem, vs...))
}

// ProblemNotIn applies the NotIn predicate on the "problem" field.
func ProblemNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldProblem, vs...))
}

// ProblemGT applies the GT predicate on the "problem" field.
func ProblemGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldProblem, v))
}

// ProblemGTE applies the GTE predicate on the "problem" field.
func ProblemGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldProblem, v))
}

// ProblemLT applies the LT predicate on the "problem" field.
func ProblemLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldProblem, v))
}

// ProblemLTE applies the LTE predicate on the "problem" field.
func ProblemLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldProblem, v))
}

// ProblemContains applies the Contains predicate on the "problem" field.
func ProblemContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldProblem, v))
}

// ProblemHasPrefix applies the HasPrefix predicate on the "problem" field.
func ProblemHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldProblem, v))
}

// ProblemHasSuffix applies the HasSuffix predicate on the "problem" field.
func ProblemHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldProblem, v))
}

// ProblemIsNil applies the IsNil predicate on the "problem" field.
func ProblemIsNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIsNull(FieldProblem))
}

// ProblemNotNil applies the NotNil predicate on the "problem" field.
func ProblemNotNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotNull(FieldProblem))
}

// ProblemEqualFold applies the EqualFold predicate on the "problem" field.
func ProblemEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldProblem, v))
}

// ProblemContainsFold applies the ContainsFold predicate on the "problem" field.
func ProblemContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldProblem, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldResult, v))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldResult, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldCorrect, v))
}

// MistakeTypeEQ applies the EQ predicate on the "mistake_type" field.
func MistakeTypeEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldMistakeType, v))
}

// MistakeTypeNEQ applies the NEQ predicate on the "mistake_type" field.
func MistakeTypeNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldMistakeType, v))
}

// MistakeTypeIn applies the In predicate on the "mistake_type" field.
func MistakeTypeIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldMistakeType, vs...))
}

// MistakeTypeNotIn applies the NotIn predicate on the "mistake_type" field.
func MistakeTypeNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldMistakeType, vs...))
}

// MistakeTypeGT applies the GT predicate on the "mistake_type" field.
func MistakeTypeGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldMistakeType, v))
}

// MistakeTypeGTE applies the GTE predicate on the "mistake_type" field.
func MistakeTypeGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldMistakeType, v))
}

// MistakeTypeLT applies the LT predicate on the "mistake_type" field.
func MistakeTypeLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldMistakeType, v))
}

// MistakeTypeLTE applies the LTE predicate on the "mistake_type" field.
func MistakeTypeLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldMistakeType, v))
}

// MistakeTypeContains applies the Contains predicate on the "mistake_type" field.
func MistakeTypeContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldMistakeType, v))
}

// MistakeTypeHasPrefix applies the HasPrefix predicate on the "mistake_type" field.
func MistakeTypeHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldMistakeType, v))
}

// MistakeTypeHasSuffix applies the HasSuffix predicate on the "mistake_type" field.
func MistakeTypeHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldMistakeType, v))
}

// MistakeTypeIsNil applies the IsNil predicate on the "mistake_type" field.
func MistakeTypeIsNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIsNull(FieldMistakeType))
}

// MistakeTypeNotNil applies the NotNil predicate on the "mistake_type" field.
func MistakeTypeNotNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotNull(FieldMistakeType))
}

// MistakeTypeEqualFold applies the EqualFold predicate on the "mistake_type" field.
func MistakeTypeEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldMistakeType, v))
}

// MistakeTypeContainsFold applies the ContainsFold predicate on the "mistake_type" field.
func MistakeTypeContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldMistakeType, v))
}

// GuidanceLevelEQ applies the EQ predicate on the "guidance_level" field.
func GuidanceLevelEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldGuidanceLevel, v))
}

// GuidanceLevelNEQ applies the NEQ predicate on the "guidance_level" field.
func GuidanceLevelNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldGuidanceLevel, v))
}

// GuidanceLevelIn applies the In predicate on the "guidance_level" field.
func GuidanceLevelIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldGuidanceLevel, vs...))
}

// GuidanceLevelNotIn applies the NotIn predicate on the "guidance_level" field.
func GuidanceLevelNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldGuidanceLevel, vs...))
}

// GuidanceLevelGT applies the GT predicate on the "guidance_level" field.
func GuidanceLevelGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldGuidanceLevel, v))
}

// GuidanceLevelGTE applies the GTE predicate on the "guidance_level" field.
func GuidanceLevelGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldGuidanceLevel, v))
}

// GuidanceLevelLT applies the LT predicate on the "guidance_level" field.
func GuidanceLevelLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldGuidanceLevel, v))
}

// GuidanceLevelLTE applies the LTE predicate on the "guidance_level" field.
func GuidanceLevelLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldGuidanceLevel, v))
}

// GuidanceLevelContains applies the Contains predicate on the "guidance_level" field.
func GuidanceLevelContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldGuidanceLevel, v))
}

// GuidanceLevelHasPrefix applies the HasPrefix predicate on the "guidance_level" field.
func GuidanceLevelHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldGuidanceLevel, v))
}

// GuidanceLevelHasSuffix applies the HasSuffix predicate on the "guidance_level" field.
func GuidanceLevelHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldGuidanceLevel, v))
}

// GuidanceLevelIsNil applies the IsNil predicate on the "guidance_level" field.
func GuidanceLevelIsNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIsNull(FieldGuidanceLevel))
}

// GuidanceLevelNotNil applies the NotNil predicate on the "guidance_level" field.
func GuidanceLevelNotNil() predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotNull(FieldGuidanceLevel))
}

// GuidanceLevelEqualFold applies the EqualFold predicate on the "guidance_level" field.
func GuidanceLevelEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldGuidanceLevel, v))
}

// GuidanceLevelContainsFold applies the ContainsFold predicate on the "guidance_level" field.
func GuidanceLevelContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldGuidanceLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.NotPredicates(p))
}
