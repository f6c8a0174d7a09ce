// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bhairavmehta/MathTeacherAgent/ent/predicate"
	"github.com/bhairavmehta/MathTeacherAgent/ent/stepevent"
	"github.com/bhairavmehta/MathTeacherAgent/ent/validationevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeStepEvent       = "StepEvent"
	TypeValidationEvent = "ValidationEvent"
)

// StepEventMutation represents an operation that mutates the StepEvent nodes in the graph.
type StepEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	session_id     *string
	tool_type      *string
	problem        *string
	result         *string
	correct        *bool
	mistake_type   *string
	guidance_level *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StepEvent, error)
	predicates     []predicate.StepEvent
}

var _ ent.Mutation = (*StepEventMutation)(nil)

// stepeventOption allows management of the mutation configuration using functional options.
type stepeventOption func(*StepEventMutation)

// newStepEventMutation creates new mutation for the StepEvent entity.
func newStepEventMutation(c config, op Op, opts ...stepeventOption) *StepEventMutation {
	m := &StepEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStepEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepEventID sets the ID field of the mutation.
func withStepEventID(id int) stepeventOption {
	return func(m *StepEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StepEvent
		)
		m.oldValue = func(ctx context.Context) (*StepEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepEvent sets the old StepEvent of the mutation.
func withStepEvent(node *StepEvent) stepeventOption {
	return func(m *StepEventMutation) {
		m.oldValue = func(context.Context) (*StepEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *StepEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *StepEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *StepEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *StepEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *StepEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *StepEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *StepEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *StepEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *StepEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StepEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StepEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetToolType sets the "tool_type" field.
func (m *StepEventMutation) SetToolType(s string) {
	m.tool_type = &s
}

// ToolType returns the value of the "tool_type" field in the mutation.
func (m *StepEventMutation) ToolType() (r string, exists bool) {
	v := m.tool_type
	if v == nil {
		return
	}
	return *v, true
}

// OldToolType returns the old "tool_type" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldToolType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolType: %w", err)
	}
	return oldValue.ToolType, nil
}

// ResetToolType resets all changes to the "tool_type" field.
func (m *StepEventMutation) ResetToolType() {
	m.tool_type = nil
}

// SetProblem sets the "problem" field.
func (m *StepEventMutation) SetProblem(s string) {
	m.problem = &s
}

// Problem returns the value of the "problem" field in the mutation.
func (m *StepEventMutation) Problem() (r string, exists bool) {
	v := m.problem
	if v == nil {
		return
	}
	return *v, true
}

// OldProblem returns the old "problem" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldProblem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblem: %w", err)
	}
	return oldValue.Problem, nil
}

// ClearProblem clears the value of the "problem" field.
func (m *StepEventMutation) ClearProblem() {
	m.problem = nil
	m.clearedFields[stepevent.FieldProblem] = struct{}{}
}

// ProblemCleared returns if the "problem" field was cleared in this mutation.
func (m *StepEventMutation) ProblemCleared() bool {
	_, ok := m.clearedFields[stepevent.FieldProblem]
	return ok
}

// ResetProblem resets all changes to the "problem" field.
func (m *StepEventMutation) ResetProblem() {
	m.problem = nil
	delete(m.clearedFields, stepevent.FieldProblem)
}

// SetResult sets the "result" field.
func (m *StepEventMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *StepEventMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *StepEventMutation) ResetResult() {
	m.result = nil
}

// SetCorrect sets the "correct" field.
func (m *StepEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *StepEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *StepEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetMistakeType sets the "mistake_type" field.
func (m *StepEventMutation) SetMistakeType(s string) {
	m.mistake_type = &s
}

// MistakeType returns the value of the "mistake_type" field in the mutation.
func (m *StepEventMutation) MistakeType() (r string, exists bool) {
	v := m.mistake_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMistakeType returns the old "mistake_type" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldMistakeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMistakeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMistakeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMistakeType: %w", err)
	}
	return oldValue.MistakeType, nil
}

// ClearMistakeType clears the value of the "mistake_type" field.
func (m *StepEventMutation) ClearMistakeType() {
	m.mistake_type = nil
	m.clearedFields[stepevent.FieldMistakeType] = struct{}{}
}

// MistakeTypeCleared returns if the "mistake_type" field was cleared in this mutation.
func (m *StepEventMutation) MistakeTypeCleared() bool {
	_, ok := m.clearedFields[stepevent.FieldMistakeType]
	return ok
}

// ResetMistakeType resets all changes to the "mistake_type" field.
func (m *StepEventMutation) ResetMistakeType() {
	m.mistake_type = nil
	delete(m.clearedFields, stepevent.FieldMistakeType)
}

// SetGuidanceLevel sets the "guidance_level" field.
func (m *StepEventMutation) SetGuidanceLevel(s string) {
	m.guidance_level = &s
}

// GuidanceLevel returns the value of the "guidance_level" field in the mutation.
func (m *StepEventMutation) GuidanceLevel() (r string, exists bool) {
	v := m.guidance_level
	if v == nil {
		return
	}
	return *v, true
}

// OldGuidanceLevel returns the old "guidance_level" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldGuidanceLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuidanceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuidanceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuidanceLevel: %w", err)
	}
	return oldValue.GuidanceLevel, nil
}

// ClearGuidanceLevel clears the value of the "guidance_level" field.
func (m *StepEventMutation) ClearGuidanceLevel() {
	m.guidance_level = nil
	m.clearedFields[stepevent.FieldGuidanceLevel] = struct{}{}
}

// GuidanceLevelCleared returns if the "guidance_level" field was cleared in this mutation.
func (m *StepEventMutation) GuidanceLevelCleared() bool {
	_, ok := m.clearedFields[stepevent.FieldGuidanceLevel]
	return ok
}

// ResetGuidanceLevel resets all changes to the "guidance_level" field.
func (m *StepEventMutation) ResetGuidanceLevel() {
	m.guidance_level = nil
	delete(m.clearedFields, stepevent.FieldGuidanceLevel)
}

// Where appends a list predicates to the StepEventMutation builder.
func (m *StepEventMutation) Where(ps ...predicate.StepEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepEvent).
func (m *StepEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, stepevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, stepevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, stepevent.FieldSessionID)
	}
	if m.tool_type != nil {
		fields = append(fields, stepevent.FieldToolType)
	}
	if m.problem != nil {
		fields = append(fields, stepevent.FieldProblem)
	}
	if m.result != nil {
		fields = append(fields, stepevent.FieldResult)
	}
	if m.correct != nil {
		fields = append(fields, stepevent.FieldCorrect)
	}
	if m.mistake_type != nil {
		fields = append(fields, stepevent.FieldMistakeType)
	}
	if m.guidance_level != nil {
		fields = append(fields, stepevent.FieldGuidanceLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepevent.FieldSequence:
		return m.Sequence()
	case stepevent.FieldTimestamp:
		return m.Timestamp()
	case stepevent.FieldSessionID:
		return m.SessionID()
	case stepevent.FieldToolType:
		return m.ToolType()
	case stepevent.FieldProblem:
		return m.Problem()
	case stepevent.FieldResult:
		return m.Result()
	case stepevent.FieldCorrect:
		return m.Correct()
	case stepevent.FieldMistakeType:
		return m.MistakeType()
	case stepevent.FieldGuidanceLevel:
		return m.GuidanceLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepevent.FieldSequence:
		return m.OldSequence(ctx)
	case stepevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case stepevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case stepevent.FieldToolType:
		return m.OldToolType(ctx)
	case stepevent.FieldProblem:
		return m.OldProblem(ctx)
	case stepevent.FieldResult:
		return m.OldResult(ctx)
	case stepevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case stepevent.FieldMistakeType:
		return m.OldMistakeType(ctx)
	case stepevent.FieldGuidanceLevel:
		return m.OldGuidanceLevel(ctx)
	}
	return nil, fmt.Errorf("unknown StepEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case stepevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case stepevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case stepevent.FieldToolType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolType(v)
		return nil
	case stepevent.FieldProblem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblem(v)
		return nil
	case stepevent.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case stepevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case stepevent.FieldMistakeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMistakeType(v)
		return nil
	case stepevent.FieldGuidanceLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuidanceLevel(v)
		return nil
	}
	return fmt.Errorf("unknown StepEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, stepevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown StepEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stepevent.FieldProblem) {
		fields = append(fields, stepevent.FieldProblem)
	}
	if m.FieldCleared(stepevent.FieldMistakeType) {
		fields = append(fields, stepevent.FieldMistakeType)
	}
	if m.FieldCleared(stepevent.FieldGuidanceLevel) {
		fields = append(fields, stepevent.FieldGuidanceLevel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepEventMutation) ClearField(name string) error {
	switch name {
	case stepevent.FieldProblem:
		m.ClearProblem()
		return nil
	case stepevent.FieldMistakeType:
		m.ClearMistakeType()
		return nil
	case stepevent.FieldGuidanceLevel:
		m.ClearGuidanceLevel()
		return nil
	}
	return fmt.Errorf("unknown StepEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepEventMutation) ResetField(name string) error {
	switch name {
	case stepevent.FieldSequence:
		m.ResetSequence()
		return nil
	case stepevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case stepevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case stepevent.FieldToolType:
		m.ResetToolType()
		return nil
	case stepevent.FieldProblem:
		m.ResetProblem()
		return nil
	case stepevent.FieldResult:
		m.ResetResult()
		return nil
	case stepevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case stepevent.FieldMistakeType:
		m.ResetMistakeType()
		return nil
	case stepevent.FieldGuidanceLevel:
		m.ResetGuidanceLevel()
		return nil
	}
	return fmt.Errorf("unknown StepEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StepEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StepEvent edge %s", name)
}

// ValidationEventMutation represents an operation that mutates the ValidationEvent nodes in the graph.
type ValidationEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	session_id    *string
	method        *string
	valid         *bool
	structured    *bool
	security      *bool
	problem       *string
	answer        *string
	error_text    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ValidationEvent, error)
	predicates    []predicate.ValidationEvent
}

var _ ent.Mutation = (*ValidationEventMutation)(nil)

// validationeventOption allows management of the mutation configuration using functional options.
type validationeventOption func(*ValidationEventMutation)

// newValidationEventMutation creates new mutation for the ValidationEvent entity.
func newValidationEventMutation(c config, op Op, opts ...validationeventOption) *ValidationEventMutation {
	m := &ValidationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationEventID sets the ID field of the mutation.
func withValidationEventID(id int) validationeventOption {
	return func(m *ValidationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationEvent
		)
		m.oldValue = func(ctx context.Context) (*ValidationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationEvent sets the old ValidationEvent of the mutation.
func withValidationEvent(node *ValidationEvent) validationeventOption {
	return func(m *ValidationEventMutation) {
		m.oldValue = func(context.Context) (*ValidationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ValidationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ValidationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ValidationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ValidationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ValidationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ValidationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ValidationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ValidationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ValidationEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ValidationEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ValidationEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetMethod sets the "method" field.
func (m *ValidationEventMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ValidationEventMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *ValidationEventMutation) ResetMethod() {
	m.method = nil
}

// SetValid sets the "valid" field.
func (m *ValidationEventMutation) SetValid(b bool) {
	m.valid = &b
}

// Valid returns the value of the "valid" field in the mutation.
func (m *ValidationEventMutation) Valid() (r bool, exists bool) {
	v := m.valid
	if v == nil {
		return
	}
	return *v, true
}

// OldValid returns the old "valid" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValid: %w", err)
	}
	return oldValue.Valid, nil
}

// ResetValid resets all changes to the "valid" field.
func (m *ValidationEventMutation) ResetValid() {
	m.valid = nil
}

// SetStructured sets the "structured" field.
func (m *ValidationEventMutation) SetStructured(b bool) {
	m.structured = &b
}

// Structured returns the value of the "structured" field in the mutation.
func (m *ValidationEventMutation) Structured() (r bool, exists bool) {
	v := m.structured
	if v == nil {
		return
	}
	return *v, true
}

// OldStructured returns the old "structured" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldStructured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructured: %w", err)
	}
	return oldValue.Structured, nil
}

// ResetStructured resets all changes to the "structured" field.
func (m *ValidationEventMutation) ResetStructured() {
	m.structured = nil
}

// SetSecurity sets the "security" field.
func (m *ValidationEventMutation) SetSecurity(b bool) {
	m.security = &b
}

// Security returns the value of the "security" field in the mutation.
func (m *ValidationEventMutation) Security() (r bool, exists bool) {
	v := m.security
	if v == nil {
		return
	}
	return *v, true
}

// OldSecurity returns the old "security" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldSecurity(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecurity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecurity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecurity: %w", err)
	}
	return oldValue.Security, nil
}

// ResetSecurity resets all changes to the "security" field.
func (m *ValidationEventMutation) ResetSecurity() {
	m.security = nil
}

// SetProblem sets the "problem" field.
func (m *ValidationEventMutation) SetProblem(s string) {
	m.problem = &s
}

// Problem returns the value of the "problem" field in the mutation.
func (m *ValidationEventMutation) Problem() (r string, exists bool) {
	v := m.problem
	if v == nil {
		return
	}
	return *v, true
}

// OldProblem returns the old "problem" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldProblem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblem: %w", err)
	}
	return oldValue.Problem, nil
}

// ClearProblem clears the value of the "problem" field.
func (m *ValidationEventMutation) ClearProblem() {
	m.problem = nil
	m.clearedFields[validationevent.FieldProblem] = struct{}{}
}

// ProblemCleared returns if the "problem" field was cleared in this mutation.
func (m *ValidationEventMutation) ProblemCleared() bool {
	_, ok := m.clearedFields[validationevent.FieldProblem]
	return ok
}

// ResetProblem resets all changes to the "problem" field.
func (m *ValidationEventMutation) ResetProblem() {
	m.problem = nil
	delete(m.clearedFields, validationevent.FieldProblem)
}

// SetAnswer sets the "answer" field.
func (m *ValidationEventMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *ValidationEventMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ClearAnswer clears the value of the "answer" field.
func (m *ValidationEventMutation) ClearAnswer() {
	m.answer = nil
	m.clearedFields[validationevent.FieldAnswer] = struct{}{}
}

// AnswerCleared returns if the "answer" field was cleared in this mutation.
func (m *ValidationEventMutation) AnswerCleared() bool {
	_, ok := m.clearedFields[validationevent.FieldAnswer]
	return ok
}

// ResetAnswer resets all changes to the "answer" field.
func (m *ValidationEventMutation) ResetAnswer() {
	m.answer = nil
	delete(m.clearedFields, validationevent.FieldAnswer)
}

// SetErrorText sets the "error_text" field.
func (m *ValidationEventMutation) SetErrorText(s string) {
	m.error_text = &s
}

// ErrorText returns the value of the "error_text" field in the mutation.
func (m *ValidationEventMutation) ErrorText() (r string, exists bool) {
	v := m.error_text
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorText returns the old "error_text" field's value of the ValidationEvent entity.
// If the ValidationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationEventMutation) OldErrorText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorText: %w", err)
	}
	return oldValue.ErrorText, nil
}

// ClearErrorText clears the value of the "error_text" field.
func (m *ValidationEventMutation) ClearErrorText() {
	m.error_text = nil
	m.clearedFields[validationevent.FieldErrorText] = struct{}{}
}

// ErrorTextCleared returns if the "error_text" field was cleared in this mutation.
func (m *ValidationEventMutation) ErrorTextCleared() bool {
	_, ok := m.clearedFields[validationevent.FieldErrorText]
	return ok
}

// ResetErrorText resets all changes to the "error_text" field.
func (m *ValidationEventMutation) ResetErrorText() {
	m.error_text = nil
	delete(m.clearedFields, validationevent.FieldErrorText)
}

// Where appends a list predicates to the ValidationEventMutation builder.
func (m *ValidationEventMutation) Where(ps ...predicate.ValidationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationEvent).
func (m *ValidationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, validationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, validationevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, validationevent.FieldSessionID)
	}
	if m.method != nil {
		fields = append(fields, validationevent.FieldMethod)
	}
	if m.valid != nil {
		fields = append(fields, validationevent.FieldValid)
	}
	if m.structured != nil {
		fields = append(fields, validationevent.FieldStructured)
	}
	if m.security != nil {
		fields = append(fields, validationevent.FieldSecurity)
	}
	if m.problem != nil {
		fields = append(fields, validationevent.FieldProblem)
	}
	if m.answer != nil {
		fields = append(fields, validationevent.FieldAnswer)
	}
	if m.error_text != nil {
		fields = append(fields, validationevent.FieldErrorText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationevent.FieldSequence:
		return m.Sequence()
	case validationevent.FieldTimestamp:
		return m.Timestamp()
	case validationevent.FieldSessionID:
		return m.SessionID()
	case validationevent.FieldMethod:
		return m.Method()
	case validationevent.FieldValid:
		return m.Valid()
	case validationevent.FieldStructured:
		return m.Structured()
	case validationevent.FieldSecurity:
		return m.Security()
	case validationevent.FieldProblem:
		return m.Problem()
	case validationevent.FieldAnswer:
		return m.Answer()
	case validationevent.FieldErrorText:
		return m.ErrorText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationevent.FieldSequence:
		return m.OldSequence(ctx)
	case validationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case validationevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case validationevent.FieldMethod:
		return m.OldMethod(ctx)
	case validationevent.FieldValid:
		return m.OldValid(ctx)
	case validationevent.FieldStructured:
		return m.OldStructured(ctx)
	case validationevent.FieldSecurity:
		return m.OldSecurity(ctx)
	case validationevent.FieldProblem:
		return m.OldProblem(ctx)
	case validationevent.FieldAnswer:
		return m.OldAnswer(ctx)
	case validationevent.FieldErrorText:
		return m.OldErrorText(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case validationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case validationevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case validationevent.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case validationevent.FieldValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValid(v)
		return nil
	case validationevent.FieldStructured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructured(v)
		return nil
	case validationevent.FieldSecurity:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecurity(v)
		return nil
	case validationevent.FieldProblem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblem(v)
		return nil
	case validationevent.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case validationevent.FieldErrorText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorText(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, validationevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case validationevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case validationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(validationevent.FieldProblem) {
		fields = append(fields, validationevent.FieldProblem)
	}
	if m.FieldCleared(validationevent.FieldAnswer) {
		fields = append(fields, validationevent.FieldAnswer)
	}
	if m.FieldCleared(validationevent.FieldErrorText) {
		fields = append(fields, validationevent.FieldErrorText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationEventMutation) ClearField(name string) error {
	switch name {
	case validationevent.FieldProblem:
		m.ClearProblem()
		return nil
	case validationevent.FieldAnswer:
		m.ClearAnswer()
		return nil
	case validationevent.FieldErrorText:
		m.ClearErrorText()
		return nil
	}
	return fmt.Errorf("unknown ValidationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationEventMutation) ResetField(name string) error {
	switch name {
	case validationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case validationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case validationevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case validationevent.FieldMethod:
		m.ResetMethod()
		return nil
	case validationevent.FieldValid:
		m.ResetValid()
		return nil
	case validationevent.FieldStructured:
		m.ResetStructured()
		return nil
	case validationevent.FieldSecurity:
		m.ResetSecurity()
		return nil
	case validationevent.FieldProblem:
		m.ResetProblem()
		return nil
	case validationevent.FieldAnswer:
		m.ResetAnswer()
		return nil
	case validationevent.FieldErrorText:
		m.ResetErrorText()
		return nil
	}
	return fmt.Errorf("unknown ValidationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ValidationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ValidationEvent edge %s", name)
}
