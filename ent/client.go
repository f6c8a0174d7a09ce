// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/bhairavmehta/MathTeacherAgent/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/bhairavmehta/MathTeacherAgent/ent/stepevent"
	"github.com/bhairavmehta/MathTeacherAgent/ent/validationevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// StepEvent is the client for interacting with the StepEvent builders.
	StepEvent *StepEventClient
	// ValidationEvent is the client for interacting with the ValidationEvent builders.
	ValidationEvent *ValidationEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.StepEvent = NewStepEventClient(c.config)
	c.ValidationEvent = NewValidationEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		StepEvent:       NewStepEventClient(cfg),
		ValidationEvent: NewValidationEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		StepEvent:       NewStepEventClient(cfg),
		ValidationEvent: NewValidationEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		StepEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.StepEvent.Use(hooks...)
	c.ValidationEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.StepEvent.Intercept(interceptors...)
	c.ValidationEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *StepEventMutation:
		return c.StepEvent.mutate(ctx, m)
	case *ValidationEventMutation:
		return c.ValidationEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// StepEventClient is a client for the StepEvent schema.
type StepEventClient struct {
	config
}

// NewStepEventClient returns a client for the StepEvent from the given config.
func NewStepEventClient(c config) *StepEventClient {
	return &StepEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepevent.Hooks(f(g(h())))`.
func (c *StepEventClient) Use(hooks ...Hook) {
	c.hooks.StepEvent = append(c.hooks.StepEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepevent.Intercept(f(g(h())))`.
func (c *StepEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepEvent = append(c.inters.StepEvent, interceptors...)
}

// Create returns a builder for creating a StepEvent entity.
func (c *StepEventClient) Create() *StepEventCreate {
	mutation := newStepEventMutation(c.config, OpCreate)
	return &StepEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepEvent entities.
func (c *StepEventClient) CreateBulk(builders ...*StepEventCreate) *StepEventCreateBulk {
	return &StepEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepEventClient) MapCreateBulk(slice any, setFunc func(*StepEventCreate, int)) *StepEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepEventCreateBulk{err: fmt.Errorf("calling to StepEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepEvent.
func (c *StepEventClient) Update() *StepEventUpdate {
	mutation := newStepEventMutation(c.config, OpUpdate)
	return &StepEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepEventClient) UpdateOne(_m *StepEvent) *StepEventUpdateOne {
	mutation := newStepEventMutation(c.config, OpUpdateOne, withStepEvent(_m))
	return &StepEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepEventClient) UpdateOneID(id int) *StepEventUpdateOne {
	mutation := newStepEventMutation(c.config, OpUpdateOne, withStepEventID(id))
	return &StepEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepEvent.
func (c *StepEventClient) Delete() *StepEventDelete {
	mutation := newStepEventMutation(c.config, OpDelete)
	return &StepEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepEventClient) DeleteOne(_m *StepEvent) *StepEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepEventClient) DeleteOneID(id int) *StepEventDeleteOne {
	builder := c.Delete().Where(stepevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepEventDeleteOne{builder}
}

// Query returns a query builder for StepEvent.
func (c *StepEventClient) Query() *StepEventQuery {
	return &StepEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StepEvent entity by its id.
func (c *StepEventClient) Get(ctx context.Context, id int) (*StepEvent, error) {
	return c.Query().Where(stepevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepEventClient) GetX(ctx context.Context, id int) *StepEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StepEventClient) Hooks() []Hook {
	return c.hooks.StepEvent
}

// Interceptors returns the client interceptors.
func (c *StepEventClient) Interceptors() []Interceptor {
	return c.inters.StepEvent
}

func (c *StepEventClient) mutate(ctx context.Context, m *StepEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepEvent mutation op: %q", m.Op())
	}
}

// ValidationEventClient is a client for the ValidationEvent schema.
type ValidationEventClient struct {
	config
}

// NewValidationEventClient returns a client for the ValidationEvent from the given config.
func NewValidationEventClient(c config) *ValidationEventClient {
	return &ValidationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationevent.Hooks(f(g(h())))`.
func (c *ValidationEventClient) Use(hooks ...Hook) {
	c.hooks.ValidationEvent = append(c.hooks.ValidationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationevent.Intercept(f(g(h())))`.
func (c *ValidationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationEvent = append(c.inters.ValidationEvent, interceptors...)
}

// Create returns a builder for creating a ValidationEvent entity.
func (c *ValidationEventClient) Create() *ValidationEventCreate {
	mutation := newValidationEventMutation(c.config, OpCreate)
	return &ValidationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationEvent entities.
func (c *ValidationEventClient) CreateBulk(builders ...*ValidationEventCreate) *ValidationEventCreateBulk {
	return &ValidationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationEventClient) MapCreateBulk(slice any, setFunc func(*ValidationEventCreate, int)) *ValidationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationEventCreateBulk{err: fmt.Errorf("calling to ValidationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationEvent.
func (c *ValidationEventClient) Update() *ValidationEventUpdate {
	mutation := newValidationEventMutation(c.config, OpUpdate)
	return &ValidationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationEventClient) UpdateOne(_m *ValidationEvent) *ValidationEventUpdateOne {
	mutation := newValidationEventMutation(c.config, OpUpdateOne, withValidationEvent(_m))
	return &ValidationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationEventClient) UpdateOneID(id int) *ValidationEventUpdateOne {
	mutation := newValidationEventMutation(c.config, OpUpdateOne, withValidationEventID(id))
	return &ValidationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationEvent.
func (c *ValidationEventClient) Delete() *ValidationEventDelete {
	mutation := newValidationEventMutation(c.config, OpDelete)
	return &ValidationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationEventClient) DeleteOne(_m *ValidationEvent) *ValidationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationEventClient) DeleteOneID(id int) *ValidationEventDeleteOne {
	builder := c.Delete().Where(validationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationEventDeleteOne{builder}
}

// Query returns a query builder for ValidationEvent.
func (c *ValidationEventClient) Query() *ValidationEventQuery {
	return &ValidationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationEvent entity by its id.
func (c *ValidationEventClient) Get(ctx context.Context, id int) (*ValidationEvent, error) {
	return c.Query().Where(validationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationEventClient) GetX(ctx context.Context, id int) *ValidationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ValidationEventClient) Hooks() []Hook {
	return c.hooks.ValidationEvent
}

// Interceptors returns the client interceptors.
func (c *ValidationEventClient) Interceptors() []Interceptor {
	return c.inters.ValidationEvent
}

func (c *ValidationEventClient) mutate(ctx context.Context, m *ValidationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		StepEvent, ValidationEvent []ent.Hook
	}
	inters struct {
		StepEvent, ValidationEvent []ent.Interceptor
	}
)
