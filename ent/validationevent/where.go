// Code generated by ent, DO NOT EDIT.

package validationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bhairavmehta/MathTeacherAgent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSessionID, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldMethod, v))
}

// Valid applies equality check predicate on the "valid" field. It's identical to ValidEQ.
func Valid(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldValid, v))
}

// Structured applies equality check predicate on the "structured" field. It's identical to StructuredEQ.
func Structured(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldStructured, v))
}

// Security applies equality check predicate on the "security" field. It's identical to SecurityEQ.
func Security(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSecurity, v))
}

// Problem applies equality check predicate on the "problem" field. It's identical to ProblemEQ.
func Problem(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldProblem, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldAnswer, v))
}

// ErrorText applies equality check predicate on the "error_text" field. It's identical to ErrorTextEQ.
func ErrorText(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldErrorText, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldMethod, v))
}

// ValidEQ applies the EQ predicate on the "valid" field.
func ValidEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldValid, v))
}

// ValidNEQ applies the NEQ predicate on the "valid" field.
func ValidNEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldValid, v))
}

// StructuredEQ applies the EQ predicate on the "structured" field.
func StructuredEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldStructured, v))
}

// StructuredNEQ applies the NEQ predicate on the "structured" field.
func StructuredNEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldStructured, v))
}

// SecurityEQ applies the EQ predicate on the "security" field.
func SecurityEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSecurity, v))
}

// SecurityNEQ applies the NEQ predicate on the "security" field.
func SecurityNEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldSecurity, v))
}

// ProblemEQ applies the EQ predicate on the "problem" field.
func ProblemEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldProblem, v))
}

// ProblemNEQ applies the NEQ predicate on the "problem" field.
func ProblemNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldProblem, v))
}

// ProblemIn applies the In predicate on the "problem" field.
func ProblemIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldProblem, vs...))
}

// ProblemNotIn applies the NotIn predicate on the "problem" field.
func ProblemNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldProblem, vs...))
}

// ProblemGT applies the GT predicate on the "problem" field.
func ProblemGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldProblem, v))
}

// ProblemGTE applies the GTE predicate on the "problem" field.
func ProblemGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldProblem, v))
}

// ProblemLT applies the LT predicate on the "problem" field.
func ProblemLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldProblem, v))
}

// ProblemLTE applies the LTE predicate on the "problem" field.
func ProblemLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldProblem, v))
}

// ProblemContains applies the Contains predicate on the "problem" field.
func ProblemContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldProblem, v))
}

// ProblemHasPrefix applies the HasPrefix predicate on the "problem" field.
func ProblemHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldProblem, v))
}

// ProblemHasSuffix applies the HasSuffix predicate on the "problem" field.
func ProblemHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldProblem, v))
}

// ProblemIsNil applies the IsNil predicate on the "problem" field.
func ProblemIsNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIsNull(FieldProblem))
}

// ProblemNotNil applies the NotNil predicate on the "problem" field.
func ProblemNotNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotNull(FieldProblem))
}

// ProblemEqualFold applies the EqualFold predicate on the "problem" field.
func ProblemEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldProblem, v))
}

// ProblemContainsFold applies the ContainsFold predicate on the "problem" field.
func ProblemContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldProblem, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerIsNil applies the IsNil predicate on the "answer" field.
func AnswerIsNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIsNull(FieldAnswer))
}

// AnswerNotNil applies the NotNil predicate on the "answer" field.
func AnswerNotNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotNull(FieldAnswer))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldAnswer, v))
}

// ErrorTextEQ applies the EQ predicate on the "error_text" field.
func ErrorTextEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldErrorText, v))
}

// ErrorTextNEQ applies the NEQ predicate on the "error_text" field.
func ErrorTextNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldErrorText, v))
}

// ErrorTextIn applies the In predicate on the "error_text" field.
func ErrorTextIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldErrorText, vs...))
}

// ErrorTextNotIn applies the NotIn predicate on the "error_text" field.
func ErrorTextNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldErrorText, vs...))
}

// ErrorTextGT applies the GT predicate on the "error_text" field.
func ErrorTextGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldErrorText, v))
}

// ErrorTextGTE applies the GTE predicate on the "error_text" field.
func ErrorTextGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldErrorText, v))
}

// ErrorTextLT applies the LT predicate on the "error_text" field.
func ErrorTextLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldErrorText, v))
}

// ErrorTextLTE applies the LTE predicate on the "error_text" field.
func ErrorTextLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldErrorText, v))
}

// ErrorTextContains applies the Contains predicate on the "error_text" field.
func ErrorTextContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldErrorText, v))
}

// ErrorTextHasPrefix applies the HasPrefix predicate on the "error_text" field.
func ErrorTextHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldErrorText, v))
}

// ErrorTextHasSuffix applies the HasSuffix predicate on the "error_text" field.
func ErrorTextHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldErrorText, v))
}

// ErrorTextIsNil applies the IsNil predicate on the "error_text" field.
func ErrorTextIsNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIsNull(FieldErrorText))
}

// ErrorTextNotNil applies the NotNil predicate on the "error_text" field.
func ErrorTextNotNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotNull(FieldErrorText))
}

// ErrorTextEqualFold applies the EqualFold predicate on the "error_text" field.
func ErrorTextEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldErrorText, v))
}

// ErrorTextContainsFold applies the ContainsFold predicate on the "error_text" field.
func ErrorTextContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldErrorText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.NotPredicates(p))
}
