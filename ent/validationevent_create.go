// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bhairavmehta/MathTeacherAgent/ent/validationevent"
)

// ValidationEventCreate is the builder for creating a ValidationEvent entity.
type ValidationEventCreate struct {
	config
	mutation *ValidationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ValidationEventCreate) SetSequence(v int64) *ValidationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ValidationEventCreate) SetTimestamp(v time.Time) *ValidationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableTimestamp(v *time.Time) *ValidationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ValidationEventCreate) SetSessionID(v string) *ValidationEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *ValidationEventCreate) SetMethod(v string) *ValidationEventCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableMethod(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// SetValid sets the "valid" field.
func (_c *ValidationEventCreate) SetValid(v bool) *ValidationEventCreate {
	_c.mutation.SetValid(v)
	return _c
}

// SetStructured sets the "structured" field.
func (_c *ValidationEventCreate) SetStructured(v bool) *ValidationEventCreate {
	_c.mutation.SetStructured(v)
	return _c
}

// SetNillableStructured sets the "structured" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableStructured(v *bool) *ValidationEventCreate {
	if v != nil {
		_c.SetStructured(*v)
	}
	return _c
}

// SetSecurity sets the "security" field.
func (_c *ValidationEventCreate) SetSecurity(v bool) *ValidationEventCreate {
	_c.mutation.SetSecurity(v)
	return _c
}

// SetNillableSecurity sets the "security" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableSecurity(v *bool) *ValidationEventCreate {
	if v != nil {
		_c.SetSecurity(*v)
	}
	return _c
}

// SetProblem sets the "problem" field.
func (_c *ValidationEventCreate) SetProblem(v string) *ValidationEventCreate {
	_c.mutation.SetProblem(v)
	return _c
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableProblem(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetProblem(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ValidationEventCreate) SetAnswer(v string) *ValidationEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableAnswer(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetErrorText sets the "error_text" field.
func (_c *ValidationEventCreate) SetErrorText(v string) *ValidationEventCreate {
	_c.mutation.SetErrorText(v)
	return _c
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableErrorText(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetErrorText(*v)
	}
	return _c
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_c *ValidationEventCreate) Mutation() *ValidationEventMutation {
	return _c.mutation
}

// Save creates the ValidationEvent in the database.
func (_c *ValidationEventCreate) Save(ctx context.Context) (*ValidationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationEventCreate) SaveX(ctx context.Context) *ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := validationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Method(); !ok {
		v := validationevent.DefaultMethod
		_c.mutation.SetMethod(v)
	}
	if _, ok := _c.mutation.Structured(); !ok {
		v := validationevent.DefaultStructured
		_c.mutation.SetStructured(v)
	}
	if _, ok := _c.mutation.Security(); !ok {
		v := validationevent.DefaultSecurity
		_c.mutation.SetSecurity(v)
	}
	if _, ok := _c.mutation.Problem(); !ok {
		v := validationevent.DefaultProblem
		_c.mutation.SetProblem(v)
	}
	if _, ok := _c.mutation.Answer(); !ok {
		v := validationevent.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
	if _, ok := _c.mutation.ErrorText(); !ok {
		v := validationevent.DefaultErrorText
		_c.mutation.SetErrorText(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ValidationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ValidationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ValidationEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := validationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "ValidationEvent.method"`)}
	}
	if _, ok := _c.mutation.Valid(); !ok {
		return &ValidationError{Name: "valid", err: errors.New(`ent: missing required field "ValidationEvent.valid"`)}
	}
	if _, ok := _c.mutation.Structured(); !ok {
		return &ValidationError{Name: "structured", err: errors.New(`ent: missing required field "ValidationEvent.structured"`)}
	}
	if _, ok := _c.mutation.Security(); !ok {
		return &ValidationError{Name: "security", err: errors.New(`ent: missing required field "ValidationEvent.security"`)}
	}
	return nil
}

func (_c *ValidationEventCreate) sqlSave(ctx context.Context) (*ValidationEvent, error) {
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

func (_c *ValidationEventCreate) createSpec() (*ValidationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationevent.Table, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(validationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(validationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(validationevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(validationevent.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Valid(); ok {
		_spec.SetField(validationevent.FieldValid, field.TypeBool, value)
		_node.Valid = value
	}
	if value, ok := _c.mutation.Structured(); ok {
		_spec.SetField(validationevent.FieldStructured, field.TypeBool, value)
		_node.Structured = value
	}
	if value, ok := _c.mutation.Security(); ok {
		_spec.SetField(validationevent.FieldSecurity, field.TypeBool, value)
		_node.Security = value
	}
	if value, ok := _c.mutation.Problem(); ok {
		_spec.SetField(validationevent.FieldProblem, field.TypeString, value)
		_node.Problem = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(validationevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.ErrorText(); ok {
		_spec.SetField(validationevent.FieldErrorText, field.TypeString, value)
		_node.ErrorText = value
	}
	return _node, _spec
}

// ValidationEventCreateBulk is the builder for creating many ValidationEvent entities in bulk.
type ValidationEventCreateBulk struct {
	config
	err      error
	builders []*ValidationEventCreate
}

// Save creates the ValidationEvent entities in the database.
func (_c *ValidationEventCreateBulk) Save(ctx context.Context) ([]*ValidationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationEventMutation)
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
func (_c *ValidationEventCreateBulk) SaveX(ctx context.Context) []*ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
