// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/prepmap/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmap/ent/generationevent"
	"github.com/abhisek/prepmap/ent/learner"
	"github.com/abhisek/prepmap/ent/roadmap"
	"github.com/abhisek/prepmap/ent/studysession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GenerationEvent is the client for interacting with the GenerationEvent builders.
	GenerationEvent *GenerationEventClient
	// Learner is the client for interacting with the Learner builders.
	Learner *LearnerClient
	// Roadmap is the client for interacting with the Roadmap builders.
	Roadmap *RoadmapClient
	// StudySession is the client for interacting with the StudySession builders.
	StudySession *StudySessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GenerationEvent = NewGenerationEventClient(c.config)
	c.Learner = NewLearnerClient(c.config)
	c.Roadmap = NewRoadmapClient(c.config)
	c.StudySession = NewStudySessionClient(c.config)
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
		GenerationEvent: NewGenerationEventClient(cfg),
		Learner:         NewLearnerClient(cfg),
		Roadmap:         NewRoadmapClient(cfg),
		StudySession:    NewStudySessionClient(cfg),
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
		GenerationEvent: NewGenerationEventClient(cfg),
		Learner:         NewLearnerClient(cfg),
		Roadmap:         NewRoadmapClient(cfg),
		StudySession:    NewStudySessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GenerationEvent.
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
	c.GenerationEvent.Use(hooks...)
	c.Learner.Use(hooks...)
	c.Roadmap.Use(hooks...)
	c.StudySession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GenerationEvent.Intercept(interceptors...)
	c.Learner.Intercept(interceptors...)
	c.Roadmap.Intercept(interceptors...)
	c.StudySession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GenerationEventMutation:
		return c.GenerationEvent.mutate(ctx, m)
	case *LearnerMutation:
		return c.Learner.mutate(ctx, m)
	case *RoadmapMutation:
		return c.Roadmap.mutate(ctx, m)
	case *StudySessionMutation:
		return c.StudySession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GenerationEventClient is a client for the GenerationEvent schema.
type GenerationEventClient struct {
	config
}

// NewGenerationEventClient returns a client for the GenerationEvent from the given config.
func NewGenerationEventClient(c config) *GenerationEventClient {
	return &GenerationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationevent.Hooks(f(g(h())))`.
func (c *GenerationEventClient) Use(hooks ...Hook) {
	c.hooks.GenerationEvent = append(c.hooks.GenerationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationevent.Intercept(f(g(h())))`.
func (c *GenerationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationEvent = append(c.inters.GenerationEvent, interceptors...)
}

// Create returns a builder for creating a GenerationEvent entity.
func (c *GenerationEventClient) Create() *GenerationEventCreate {
	mutation := newGenerationEventMutation(c.config, OpCreate)
	return &GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationEvent entities.
func (c *GenerationEventClient) CreateBulk(builders ...*GenerationEventCreate) *GenerationEventCreateBulk {
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationEventClient) MapCreateBulk(slice any, setFunc func(*GenerationEventCreate, int)) *GenerationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationEventCreateBulk{err: fmt.Errorf("calling to GenerationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationEvent.
func (c *GenerationEventClient) Update() *GenerationEventUpdate {
	mutation := newGenerationEventMutation(c.config, OpUpdate)
	return &GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationEventClient) UpdateOne(_m *GenerationEvent) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEvent(_m))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationEventClient) UpdateOneID(id int) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEventID(id))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationEvent.
func (c *GenerationEventClient) Delete() *GenerationEventDelete {
	mutation := newGenerationEventMutation(c.config, OpDelete)
	return &GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationEventClient) DeleteOne(_m *GenerationEvent) *GenerationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationEventClient) DeleteOneID(id int) *GenerationEventDeleteOne {
	builder := c.Delete().Where(generationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationEventDeleteOne{builder}
}

// Query returns a query builder for GenerationEvent.
func (c *GenerationEventClient) Query() *GenerationEventQuery {
	return &GenerationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationEvent entity by its id.
func (c *GenerationEventClient) Get(ctx context.Context, id int) (*GenerationEvent, error) {
	return c.Query().Where(generationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationEventClient) GetX(ctx context.Context, id int) *GenerationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationEventClient) Hooks() []Hook {
	return c.hooks.GenerationEvent
}

// Interceptors returns the client interceptors.
func (c *GenerationEventClient) Interceptors() []Interceptor {
	return c.inters.GenerationEvent
}

func (c *GenerationEventClient) mutate(ctx context.Context, m *GenerationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationEvent mutation op: %q", m.Op())
	}
}

// LearnerClient is a client for the Learner schema.
type LearnerClient struct {
	config
}

// NewLearnerClient returns a client for the Learner from the given config.
func NewLearnerClient(c config) *LearnerClient {
	return &LearnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learner.Hooks(f(g(h())))`.
func (c *LearnerClient) Use(hooks ...Hook) {
	c.hooks.Learner = append(c.hooks.Learner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learner.Intercept(f(g(h())))`.
func (c *LearnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Learner = append(c.inters.Learner, interceptors...)
}

// Create returns a builder for creating a Learner entity.
func (c *LearnerClient) Create() *LearnerCreate {
	mutation := newLearnerMutation(c.config, OpCreate)
	return &LearnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Learner entities.
func (c *LearnerClient) CreateBulk(builders ...*LearnerCreate) *LearnerCreateBulk {
	return &LearnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerClient) MapCreateBulk(slice any, setFunc func(*LearnerCreate, int)) *LearnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerCreateBulk{err: fmt.Errorf("calling to LearnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Learner.
func (c *LearnerClient) Update() *LearnerUpdate {
	mutation := newLearnerMutation(c.config, OpUpdate)
	return &LearnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerClient) UpdateOne(_m *Learner) *LearnerUpdateOne {
	mutation := newLearnerMutation(c.config, OpUpdateOne, withLearner(_m))
	return &LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerClient) UpdateOneID(id int) *LearnerUpdateOne {
	mutation := newLearnerMutation(c.config, OpUpdateOne, withLearnerID(id))
	return &LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Learner.
func (c *LearnerClient) Delete() *LearnerDelete {
	mutation := newLearnerMutation(c.config, OpDelete)
	return &LearnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerClient) DeleteOne(_m *Learner) *LearnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerClient) DeleteOneID(id int) *LearnerDeleteOne {
	builder := c.Delete().Where(learner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerDeleteOne{builder}
}

// Query returns a query builder for Learner.
func (c *LearnerClient) Query() *LearnerQuery {
	return &LearnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearner},
		inters: c.Interceptors(),
	}
}

// Get returns a Learner entity by its id.
func (c *LearnerClient) Get(ctx context.Context, id int) (*Learner, error) {
	return c.Query().Where(learner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerClient) GetX(ctx context.Context, id int) *Learner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerClient) Hooks() []Hook {
	return c.hooks.Learner
}

// Interceptors returns the client interceptors.
func (c *LearnerClient) Interceptors() []Interceptor {
	return c.inters.Learner
}

func (c *LearnerClient) mutate(ctx context.Context, m *LearnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Learner mutation op: %q", m.Op())
	}
}

// RoadmapClient is a client for the Roadmap schema.
type RoadmapClient struct {
	config
}

// NewRoadmapClient returns a client for the Roadmap from the given config.
func NewRoadmapClient(c config) *RoadmapClient {
	return &RoadmapClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `roadmap.Hooks(f(g(h())))`.
func (c *RoadmapClient) Use(hooks ...Hook) {
	c.hooks.Roadmap = append(c.hooks.Roadmap, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `roadmap.Intercept(f(g(h())))`.
func (c *RoadmapClient) Intercept(interceptors ...Interceptor) {
	c.inters.Roadmap = append(c.inters.Roadmap, interceptors...)
}

// Create returns a builder for creating a Roadmap entity.
func (c *RoadmapClient) Create() *RoadmapCreate {
	mutation := newRoadmapMutation(c.config, OpCreate)
	return &RoadmapCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Roadmap entities.
func (c *RoadmapClient) CreateBulk(builders ...*RoadmapCreate) *RoadmapCreateBulk {
	return &RoadmapCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoadmapClient) MapCreateBulk(slice any, setFunc func(*RoadmapCreate, int)) *RoadmapCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoadmapCreateBulk{err: fmt.Errorf("calling to RoadmapClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoadmapCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoadmapCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Roadmap.
func (c *RoadmapClient) Update() *RoadmapUpdate {
	mutation := newRoadmapMutation(c.config, OpUpdate)
	return &RoadmapUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoadmapClient) UpdateOne(_m *Roadmap) *RoadmapUpdateOne {
	mutation := newRoadmapMutation(c.config, OpUpdateOne, withRoadmap(_m))
	return &RoadmapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoadmapClient) UpdateOneID(id int) *RoadmapUpdateOne {
	mutation := newRoadmapMutation(c.config, OpUpdateOne, withRoadmapID(id))
	return &RoadmapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Roadmap.
func (c *RoadmapClient) Delete() *RoadmapDelete {
	mutation := newRoadmapMutation(c.config, OpDelete)
	return &RoadmapDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoadmapClient) DeleteOne(_m *Roadmap) *RoadmapDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoadmapClient) DeleteOneID(id int) *RoadmapDeleteOne {
	builder := c.Delete().Where(roadmap.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoadmapDeleteOne{builder}
}

// Query returns a query builder for Roadmap.
func (c *RoadmapClient) Query() *RoadmapQuery {
	return &RoadmapQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoadmap},
		inters: c.Interceptors(),
	}
}

// Get returns a Roadmap entity by its id.
func (c *RoadmapClient) Get(ctx context.Context, id int) (*Roadmap, error) {
	return c.Query().Where(roadmap.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoadmapClient) GetX(ctx context.Context, id int) *Roadmap {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoadmapClient) Hooks() []Hook {
	return c.hooks.Roadmap
}

// Interceptors returns the client interceptors.
func (c *RoadmapClient) Interceptors() []Interceptor {
	return c.inters.Roadmap
}

func (c *RoadmapClient) mutate(ctx context.Context, m *RoadmapMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoadmapCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoadmapUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoadmapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoadmapDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Roadmap mutation op: %q", m.Op())
	}
}

// StudySessionClient is a client for the StudySession schema.
type StudySessionClient struct {
	config
}

// NewStudySessionClient returns a client for the StudySession from the given config.
func NewStudySessionClient(c config) *StudySessionClient {
	return &StudySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studysession.Hooks(f(g(h())))`.
func (c *StudySessionClient) Use(hooks ...Hook) {
	c.hooks.StudySession = append(c.hooks.StudySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studysession.Intercept(f(g(h())))`.
func (c *StudySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudySession = append(c.inters.StudySession, interceptors...)
}

// Create returns a builder for creating a StudySession entity.
func (c *StudySessionClient) Create() *StudySessionCreate {
	mutation := newStudySessionMutation(c.config, OpCreate)
	return &StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudySession entities.
func (c *StudySessionClient) CreateBulk(builders ...*StudySessionCreate) *StudySessionCreateBulk {
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudySessionClient) MapCreateBulk(slice any, setFunc func(*StudySessionCreate, int)) *StudySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudySessionCreateBulk{err: fmt.Errorf("calling to StudySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudySession.
func (c *StudySessionClient) Update() *StudySessionUpdate {
	mutation := newStudySessionMutation(c.config, OpUpdate)
	return &StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudySessionClient) UpdateOne(_m *StudySession) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySession(_m))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudySessionClient) UpdateOneID(id int) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySessionID(id))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudySession.
func (c *StudySessionClient) Delete() *StudySessionDelete {
	mutation := newStudySessionMutation(c.config, OpDelete)
	return &StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudySessionClient) DeleteOne(_m *StudySession) *StudySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudySessionClient) DeleteOneID(id int) *StudySessionDeleteOne {
	builder := c.Delete().Where(studysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudySessionDeleteOne{builder}
}

// Query returns a query builder for StudySession.
func (c *StudySessionClient) Query() *StudySessionQuery {
	return &StudySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudySession},
		inters: c.Interceptors(),
	}
}

// Get returns a StudySession entity by its id.
func (c *StudySessionClient) Get(ctx context.Context, id int) (*StudySession, error) {
	return c.Query().Where(studysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudySessionClient) GetX(ctx context.Context, id int) *StudySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudySessionClient) Hooks() []Hook {
	return c.hooks.StudySession
}

// Interceptors returns the client interceptors.
func (c *StudySessionClient) Interceptors() []Interceptor {
	return c.inters.StudySession
}

func (c *StudySessionClient) mutate(ctx context.Context, m *StudySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudySession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GenerationEvent, Learner, Roadmap, StudySession []ent.Hook
	}
	inters struct {
		GenerationEvent, Learner, Roadmap, StudySession []ent.Interceptor
	}
)
