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
	"github.com/bhairavmehta/MathTeacherAgent/ent/stepevent"
)

// StepEventUpdate is the builder for updating StepEvent entities.
type StepEventUpdate struct {
	config
	hooks    []Hook
	mutation *StepEventMutation
}

// Where appends a list predicates to the StepEventUpdate builder.
func (_u *StepEventUpdate) Where(ps ...predicate.StepEvent) *StepEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StepEventUpdate) SetSessionID(v string) *StepEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableSessionID(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetToolType sets the "tool_type" field.
func (_u *StepEventUpdate) SetToolType(v string) *StepEventUpdate {
	_u.mutation.SetToolType(v)
	return _u
}

// SetNillableToolType sets the "tool_type" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableToolType(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetToolType(*v)
	}
	return _u
}

// SetProblem sets the "problem" field.
func (_u *StepEventUpdate) SetProblem(v string) *StepEventUpdate {
	_u.mutation.SetProblem(v)
	return _u
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableProblem(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetProblem(*v)
	}
	return _u
}

// ClearProblem clears the value of the "problem" field.
func (_u *StepEventUpdate) ClearProblem() *StepEventUpdate {
	_u.mutation.ClearProblem()
	return _u
}

// SetResult sets the "result" field.
func (_u *StepEventUpdate) SetResult(v string) *StepEventUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableResult(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *StepEventUpdate) SetCorrect(v bool) *StepEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableCorrect(v *bool) *StepEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMistakeType sets the "mistake_type" field.
func (_u *StepEventUpdate) SetMistakeType(v string) *StepEventUpdate {
	_u.mutation.SetMistakeType(v)
	return _u
}

// SetNillableMistakeType sets the "mistake_type" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableMistakeType(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetMistakeType(*v)
	}
	return _u
}

// ClearMistakeType clears the value of the "mistake_type" field.
func (_u *StepEventUpdate) ClearMistakeType() *StepEventUpdate {
	_u.mutation.ClearMistakeType()
	return _u
}

// SetGuidanceLevel sets the "guidance_level" field.
func (_u *StepEventUpdate) SetGuidanceLevel(v string) *StepEventUpdate {
	_u.mutation.SetGuidanceLevel(v)
	return _u
}

// SetNillableGuidanceLevel sets the "guidance_level" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableGuidanceLevel(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetGuidanceLevel(*v)
	}
	return _u
}

// ClearGuidanceLevel clears the value of the "guidance_level" field.
func (_u *StepEventUpdate) ClearGuidanceLevel() *StepEventUpdate {
	_u.mutation.ClearGuidanceLevel()
	return _u
}

// Mutation returns the StepEventMutation object of the builder.
func (_u *StepEventUpdate) Mutation() *StepEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := stepevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StepEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToolType(); ok {
		if err := stepevent.ToolTypeValidator(v); err != nil {
			return &ValidationError{Name: "tool_type", err: fmt.Errorf(`ent: validator failed for field "StepEvent.tool_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := stepevent.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "StepEvent.result": %w`, err)}
		}
	}
	return nil
}

func (_u *StepEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepevent.Table, stepevent.Columns, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(stepevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolType(); ok {
		_spec.SetField(stepevent.FieldToolType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Problem(); ok {
		_spec.SetField(stepevent.FieldProblem, field.TypeString, value)
	}
	if _u.mutation.ProblemCleared() {
		_spec.ClearField(stepevent.FieldProblem, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(stepevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(stepevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MistakeType(); ok {
		_spec.SetField(stepevent.FieldMistakeType, field.TypeString, value)
	}
	if _u.mutation.MistakeTypeCleared() {
		_spec.ClearField(stepevent.FieldMistakeType, field.TypeString)
	}
	if value, ok := _u.mutation.GuidanceLevel(); ok {
		_spec.SetField(stepevent.FieldGuidanceLevel, field.TypeString, value)
	}
	if _u.mutation.GuidanceLevelCleared() {
		_spec.ClearField(stepevent.FieldGuidanceLevel, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepEventUpdateOne is the builder for updating a single StepEvent entity.
type StepEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StepEventUpdateOne) SetSessionID(v string) *StepEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableSessionID(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetToolType sets the "tool_type" field.
func (_u *StepEventUpdateOne) SetToolType(v string) *StepEventUpdateOne {
	_u.mutation.SetToolType(v)
	return _u
}

// SetNillableToolType sets the "tool_type" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableToolType(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetToolType(*v)
	}
	return _u
}

// SetProblem sets the "problem" field.
func (_u *StepEventUpdateOne) SetProblem(v string) *StepEventUpdateOne {
	_u.mutation.SetProblem(v)
	return _u
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableProblem(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetProblem(*v)
	}
	return _u
}

// ClearProblem clears the value of the "problem" field.
func (_u *StepEventUpdateOne) ClearProblem() *StepEventUpdateOne {
	_u.mutation.ClearProblem()
	return _u
}

// SetResult sets the "result" field.
func (_u *StepEventUpdateOne) SetResult(v string) *StepEventUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableResult(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *StepEventUpdateOne) SetCorrect(v bool) *StepEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableCorrect(v *bool) *StepEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMistakeType sets the "mistake_type" field.
func (_u *StepEventUpdateOne) SetMistakeType(v string) *StepEventUpdateOne {
	_u.mutation.SetMistakeType(v)
	return _u
}

// SetNillableMistakeType sets the "mistake_type" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableMistakeType(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetMistakeType(*v)
	}
	return _u
}

// ClearMistakeType clears the value of the "mistake_type" field.
func (_u *StepEventUpdateOne) ClearMistakeType() *StepEventUpdateOne {
	_u.mutation.ClearMistakeType()
	return _u
}

// SetGuidanceLevel sets the "guidance_level" field.
func (_u *StepEventUpdateOne) SetGuidanceLevel(v string) *StepEventUpdateOne {
	_u.mutation.SetGuidanceLevel(v)
	return _u
}

// SetNillableGuidanceLevel sets the "guidance_level" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableGuidanceLevel(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetGuidanceLevel(*v)
	}
	return _u
}

// ClearGuidanceLevel clears the value of the "guidance_level" field.
func (_u *StepEventUpdateOne) ClearGuidanceLevel() *StepEventUpdateOne {
	_u.mutation.ClearGuidanceLevel()
	return _u
}

// Mutation returns the StepEventMutation object of the builder.
func (_u *StepEventUpdateOne) Mutation() *StepEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepEventUpdate builder.
func (_u *StepEventUpdateOne) Where(ps ...predicate.StepEvent) *StepEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepEventUpdateOne) Select(field string, fields ...string) *StepEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepEvent entity.
func (_u *StepEventUpdateOne) Save(ctx context.Context) (*StepEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepEventUpdateOne) SaveX(ctx context.Context) *StepEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := stepevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StepEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToolType(); ok {
		if err := stepevent.ToolTypeValidator(v); err != nil {
			return &ValidationError{Name: "tool_type", err: fmt.Errorf(`ent: validator failed for field "StepEvent.tool_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := stepevent.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "StepEvent.result": %w`, err)}
		}
	}
	return nil
}

func (_u *StepEventUpdateOne) sqlSave(ctx context.Context) (_node *StepEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepevent.Table, stepevent.Columns, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepevent.FieldID)
		for _, f := range fields {
			if !stepevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepevent.FieldID {
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
		_spec.SetField(stepevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolType(); ok {
		_spec.SetField(stepevent.FieldToolType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Problem(); ok {
		_spec.SetField(stepevent.FieldProblem, field.TypeString, value)
	}
	if _u.mutation.ProblemCleared() {
		_spec.ClearField(stepevent.FieldProblem, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(stepevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(stepevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MistakeType(); ok {
		_spec.SetField(stepevent.FieldMistakeType, field.TypeString, value)
	}
	if _u.mutation.MistakeTypeCleared() {
		_spec.ClearField(stepevent.FieldMistakeType, field.TypeString)
	}
	if value, ok := _u.mutation.GuidanceLevel(); ok {
		_spec.SetField(stepevent.FieldGuidanceLevel, field.TypeString, value)
	}
	if _u.mutation.GuidanceLevelCleared() {
		_spec.ClearField(stepevent.FieldGuidanceLevel, field.TypeString)
	}
	_node = &StepEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
