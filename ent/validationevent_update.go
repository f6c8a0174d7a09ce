// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bhairavmehta/MathTeacherAgent/ent/predicate"
	"github.com/bhairavmehta/MathTeacherAgent/ent/validationevent"
)

// ValidationEventUpdate is the builder for updating ValidationEvent entities.
type ValidationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationEventMutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdate) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ValidationEventUpdate) SetSessionID(v string) *ValidationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableSessionID(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *ValidationEventUpdate) SetMethod(v string) *ValidationEventUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableMethod(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetValid sets the "valid" field.
func (_u *ValidationEventUpdate) SetValid(v bool) *ValidationEventUpdate {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableValid(v *bool) *ValidationEventUpdate {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetStructured sets the "structured" field.
func (_u *ValidationEventUpdate) SetStructured(v bool) *ValidationEventUpdate {
	_u.mutation.SetStructured(v)
	return _u
}

// SetNillableStructured sets the "structured" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableStructured(v *bool) *ValidationEventUpdate {
	if v != nil {
		_u.SetStructured(*v)
	}
	return _u
}

// SetSecurity sets the "security" field.
func (_u *ValidationEventUpdate) SetSecurity(v bool) *ValidationEventUpdate {
	_u.mutation.SetSecurity(v)
	return _u
}

// SetNillableSecurity sets the "security" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableSecurity(v *bool) *ValidationEventUpdate {
	if v != nil {
		_u.SetSecurity(*v)
	}
	return _u
}

// SetProblem sets the "problem" field.
func (_u *ValidationEventUpdate) SetProblem(v string) *ValidationEventUpdate {
	_u.mutation.SetProblem(v)
	return _u
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableProblem(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetProblem(*v)
	}
	return _u
}

// ClearProblem clears the value of the "problem" field.
func (_u *ValidationEventUpdate) ClearProblem() *ValidationEventUpdate {
	_u.mutation.ClearProblem()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ValidationEventUpdate) SetAnswer(v string) *ValidationEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableAnswer(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *ValidationEventUpdate) ClearAnswer() *ValidationEventUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *ValidationEventUpdate) SetErrorText(v string) *ValidationEventUpdate {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableErrorText(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// ClearErrorText clears the value of the "error_text" field.
func (_u *ValidationEventUpdate) ClearErrorText() *ValidationEventUpdate {
	_u.mutation.ClearErrorText()
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdate) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := validationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(validationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(validationevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(validationevent.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Structured(); ok {
		_spec.SetField(validationevent.FieldStructured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Security(); ok {
		_spec.SetField(validationevent.FieldSecurity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Problem(); ok {
		_spec.SetField(validationevent.FieldProblem, field.TypeString, value)
	}
	if _u.mutation.ProblemCleared() {
		_spec.ClearField(validationevent.FieldProblem, field.TypeString)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(validationevent.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(validationevent.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(validationevent.FieldErrorText, field.TypeString, value)
	}
	if _u.mutation.ErrorTextCleared() {
		_spec.ClearField(validationevent.FieldErrorText, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationEventUpdateOne is the builder for updating a single ValidationEvent entity.
type ValidationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ValidationEventUpdateOne) SetSessionID(v string) *ValidationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableSessionID(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *ValidationEventUpdateOne) SetMethod(v string) *ValidationEventUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableMethod(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetValid sets the "valid" field.
func (_u *ValidationEventUpdateOne) SetValid(v bool) *ValidationEventUpdateOne {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableValid(v *bool) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetStructured sets the "structured" field.
func (_u *ValidationEventUpdateOne) SetStructured(v bool) *ValidationEventUpdateOne {
	_u.mutation.SetStructured(v)
	return _u
}

// SetNillableStructured sets the "structured" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableStructured(v *bool) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetStructured(*v)
	}
	return _u
}

// SetSecurity sets the "security" field.
func (_u *ValidationEventUpdateOne) SetSecurity(v bool) *ValidationEventUpdateOne {
	_u.mutation.SetSecurity(v)
	return _u
}

// SetNillableSecurity sets the "security" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableSecurity(v *bool) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetSecurity(*v)
	}
	return _u
}

// SetProblem sets the "problem" field.
func (_u *ValidationEventUpdateOne) SetProblem(v string) *ValidationEventUpdateOne {
	_u.mutation.SetProblem(v)
	return _u
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableProblem(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetProblem(*v)
	}
	return _u
}

// ClearProblem clears the value of the "problem" field.
func (_u *ValidationEventUpdateOne) ClearProblem() *ValidationEventUpdateOne {
	_u.mutation.ClearProblem()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ValidationEventUpdateOne) SetAnswer(v string) *ValidationEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableAnswer(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *ValidationEventUpdateOne) ClearAnswer() *ValidationEventUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *ValidationEventUpdateOne) SetErrorText(v string) *ValidationEventUpdateOne {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableErrorText(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// ClearErrorText clears the value of the "error_text" field.
func (_u *ValidationEventUpdateOne) ClearErrorText() *ValidationEventUpdateOne {
	_u.mutation.ClearErrorText()
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdateOne) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdateOne) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationEventUpdateOne) Select(field string, fields ...string) *ValidationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationEvent entity.
func (_u *ValidationEventUpdateOne) Save(ctx context.Context) (*ValidationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) SaveX(ctx context.Context) *ValidationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := validationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationEventUpdateOne) sqlSave(ctx context.Context) (_node *ValidationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationevent.FieldID)
		for _, f := range fields {
			if !validationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(validationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(validationevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(validationevent.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Structured(); ok {
		_spec.SetField(validationevent.FieldStructured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Security(); ok {
		_spec.SetField(validationevent.FieldSecurity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Problem(); ok {
		_spec.SetField(validationevent.FieldProblem, field.TypeString, value)
	}
	if _u.mutation.ProblemCleared() {
		_spec.ClearField(validationevent.FieldProblem, field.TypeString)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(validationevent.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(validationevent.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(validationevent.FieldErrorText, field.TypeString, value)
	}
	if _u.mutation.ErrorTextCleared() {
		_spec.ClearField(validationevent.FieldErrorText, field.TypeString)
	}
	_node = &ValidationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
