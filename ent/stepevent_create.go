// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bhairavmehta/MathTeacherAgent/ent/stepevent"
)

// StepEventCreate is the builder for creating a StepEvent entity.
type StepEventCreate struct {
	config
	mutation *StepEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StepEventCreate) SetSequence(v int64) *StepEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StepEventCreate) SetTimestamp(v time.Time) *StepEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableTimestamp(v *time.Time) *StepEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *StepEventCreate) SetSessionID(v string) *StepEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetToolType sets the "tool_type" field.
func (_c *StepEventCreate) SetToolType(v string) *StepEventCreate {
	_c.mutation.SetToolType(v)
	return _c
}

// SetProblem sets the "problem" field.
func (_c *StepEventCreate) SetProblem(v string) *StepEventCreate {
	_c.mutation.SetProblem(v)
	return _c
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableProblem(v *string) *StepEventCreate {
	if v != nil {
		_c.SetProblem(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *StepEventCreate) SetResult(v string) *StepEventCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *StepEventCreate) SetCorrect(v bool) *StepEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetMistakeType sets the "mistake_type" field.
func (_c *StepEventCreate) SetMistakeType(v string) *StepEventCreate {
	_c.mutation.SetMistakeType(v)
	return _c
}

// SetNillableMistakeType sets the "mistake_type" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableMistakeType(v *string) *StepEventCreate {
	if v != nil {
		_c.SetMistakeType(*v)
	}
	return _c
}

// SetGuidanceLevel sets the "guidance_level" field.
func (_c *StepEventCreate) SetGuidanceLevel(v string) *StepEventCreate {
	_c.mutation.SetGuidanceLevel(v)
	return _c
}

// SetNillableGuidanceLevel sets the "guidance_level" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableGuidanceLevel(v *string) *StepEventCreate {
	if v != nil {
		_c.SetGuidanceLevel(*v)
	}
	return _c
}

// Mutation returns the StepEventMutation object of the builder.
func (_c *StepEventCreate) Mutation() *StepEventMutation {
	return _c.mutation
}

// Save creates the StepEvent in the database.
func (_c *StepEventCreate) Save(ctx context.Context) (*StepEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepEventCreate) SaveX(ctx context.Context) *StepEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := stepevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Problem(); !ok {
		v := stepevent.DefaultProblem
		_c.mutation.SetProblem(v)
	}
	if _, ok := _c.mutation.MistakeType(); !ok {
		v := stepevent.DefaultMistakeType
		_c.mutation.SetMistakeType(v)
	}
	if _, ok := _c.mutation.GuidanceLevel(); !ok {
		v := stepevent.DefaultGuidanceLevel
		_c.mutation.SetGuidanceLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StepEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StepEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StepEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := stepevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StepEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToolType(); !ok {
		return &ValidationError{Name: "tool_type", err: errors.New(`ent: missing required field "StepEvent.tool_type"`)}
	}
	if v, ok := _c.mutation.ToolType(); ok {
		if err := stepevent.ToolTypeValidator(v); err != nil {
			return &ValidationError{Name: "tool_type", err: fmt.Errorf(`ent: validator failed for field "StepEvent.tool_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "StepEvent.result"`)}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := stepevent.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "StepEvent.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "StepEvent.correct"`)}
	}
	return nil
}

func (_c *StepEventCreate) sqlSave(ctx context.Context) (*StepEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepEventCreate) createSpec() (*StepEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StepEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepevent.Table, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(stepevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(stepevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(stepevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ToolType(); ok {
		_spec.SetField(stepevent.FieldToolType, field.TypeString, value)
		_node.ToolType = value
	}
	if value, ok := _c.mutation.Problem(); ok {
		_spec.SetField(stepevent.FieldProblem, field.TypeString, value)
		_node.Problem = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(stepevent.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(stepevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.MistakeType(); ok {
		_spec.SetField(stepevent.FieldMistakeType, field.TypeString, value)
		_node.MistakeType = value
	}
	if value, ok := _c.mutation.GuidanceLevel(); ok {
		_spec.SetField(stepevent.FieldGuidanceLevel, field.TypeString, value)
		_node.GuidanceLevel = value
	}
	return _node, _spec
}

// StepEventCreateBulk is the builder for creating many StepEvent entities in bulk.
type StepEventCreateBulk struct {
	config
	err      error
	builders []*StepEventCreate
}

// Save creates the StepEvent entities in the database.
func (_c *StepEventCreateBulk) Save(ctx context.Context) ([]*StepEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StepEventCreateBulk) SaveX(ctx context.Context) []*StepEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
