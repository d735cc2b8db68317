// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/lmdrew96/chaoslimba/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/contentitem"
	"github.com/lmdrew96/chaoslimba/ent/errorpattern"
	"github.com/lmdrew96/chaoslimba/ent/exposureevent"
	"github.com/lmdrew96/chaoslimba/ent/grammarfeature"
	"github.com/lmdrew96/chaoslimba/ent/llmrequestevent"
	"github.com/lmdrew96/chaoslimba/ent/proficiencyrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ContentItem is the client for interacting with the ContentItem builders.
	ContentItem *ContentItemClient
	// ErrorPattern is the client for interacting with the ErrorPattern builders.
	ErrorPattern *ErrorPatternClient
	// ExposureEvent is the client for interacting with the ExposureEvent builders.
	ExposureEvent *ExposureEventClient
	// GrammarFeature is the client for interacting with the GrammarFeature builders.
	GrammarFeature *GrammarFeatureClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// ProficiencyRecord is the client for interacting with the ProficiencyRecord builders.
	ProficiencyRecord *ProficiencyRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ContentItem = NewContentItemClient(c.config)
	c.ErrorPattern = NewErrorPatternClient(c.config)
	c.ExposureEvent = NewExposureEventClient(c.config)
	c.GrammarFeature = NewGrammarFeatureClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.ProficiencyRecord = NewProficiencyRecordClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		ContentItem:       NewContentItemClient(cfg),
		ErrorPattern:      NewErrorPatternClient(cfg),
		ExposureEvent:     NewExposureEventClient(cfg),
		GrammarFeature:    NewGrammarFeatureClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		ProficiencyRecord: NewProficiencyRecordClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		ContentItem:       NewContentItemClient(cfg),
		ErrorPattern:      NewErrorPatternClient(cfg),
		ExposureEvent:     NewExposureEventClient(cfg),
		GrammarFeature:    NewGrammarFeatureClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		ProficiencyRecord: NewProficiencyRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ContentItem.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ContentItem, c.ErrorPattern, c.ExposureEvent, c.GrammarFeature,
		c.LLMRequestEvent, c.ProficiencyRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ContentItem, c.ErrorPattern, c.ExposureEvent, c.GrammarFeature,
		c.LLMRequestEvent, c.ProficiencyRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContentItemMutation:
		return c.ContentItem.mutate(ctx, m)
	case *ErrorPatternMutation:
		return c.ErrorPattern.mutate(ctx, m)
	case *ExposureEventMutation:
		return c.ExposureEvent.mutate(ctx, m)
	case *GrammarFeatureMutation:
		return c.GrammarFeature.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *ProficiencyRecordMutation:
		return c.ProficiencyRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContentItemClient is a client for the ContentItem schema.
type ContentItemClient struct {
	config
}

// NewContentItemClient returns a client for the ContentItem from the given config.
func NewContentItemClient(c config) *ContentItemClient {
	return &ContentItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentitem.Hooks(f(g(h())))`.
func (c *ContentItemClient) Use(hooks ...Hook) {
	c.hooks.ContentItem = append(c.hooks.ContentItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentitem.Intercept(f(g(h())))`.
func (c *ContentItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentItem = append(c.inters.ContentItem, interceptors...)
}

// Create returns a builder for creating a ContentItem entity.
func (c *ContentItemClient) Create() *ContentItemCreate {
	mutation := newContentItemMutation(c.config, OpCreate)
	return &ContentItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentItem entities.
func (c *ContentItemClient) CreateBulk(builders ...*ContentItemCreate) *ContentItemCreateBulk {
	return &ContentItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentItemClient) MapCreateBulk(slice any, setFunc func(*ContentItemCreate, int)) *ContentItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentItemCreateBulk{err: fmt.Errorf("calling to ContentItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentItem.
func (c *ContentItemClient) Update() *ContentItemUpdate {
	mutation := newContentItemMutation(c.config, OpUpdate)
	return &ContentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentItemClient) UpdateOne(_m *ContentItem) *ContentItemUpdateOne {
	mutation := newContentItemMutation(c.config, OpUpdateOne, withContentItem(_m))
	return &ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentItemClient) UpdateOneID(id int) *ContentItemUpdateOne {
	mutation := newContentItemMutation(c.config, OpUpdateOne, withContentItemID(id))
	return &ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentItem.
func (c *ContentItemClient) Delete() *ContentItemDelete {
	mutation := newContentItemMutation(c.config, OpDelete)
	return &ContentItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentItemClient) DeleteOne(_m *ContentItem) *ContentItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentItemClient) DeleteOneID(id int) *ContentItemDeleteOne {
	builder := c.Delete().Where(contentitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentItemDeleteOne{builder}
}

// Query returns a query builder for ContentItem.
func (c *ContentItemClient) Query() *ContentItemQuery {
	return &ContentItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentItem entity by its id.
func (c *ContentItemClient) Get(ctx context.Context, id int) (*ContentItem, error) {
	return c.Query().Where(contentitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentItemClient) GetX(ctx context.Context, id int) *ContentItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentItemClient) Hooks() []Hook {
	return c.hooks.ContentItem
}

// Interceptors returns the client interceptors.
func (c *ContentItemClient) Interceptors() []Interceptor {
	return c.inters.ContentItem
}

func (c *ContentItemClient) mutate(ctx context.Context, m *ContentItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentItem mutation op: %q", m.Op())
	}
}

// ErrorPatternClient is a client for the ErrorPattern schema.
type ErrorPatternClient struct {
	config
}

// NewErrorPatternClient returns a client for the ErrorPattern from the given config.
func NewErrorPatternClient(c config) *ErrorPatternClient {
	return &ErrorPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `errorpattern.Hooks(f(g(h())))`.
func (c *ErrorPatternClient) Use(hooks ...Hook) {
	c.hooks.ErrorPattern = append(c.hooks.ErrorPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `errorpattern.Intercept(f(g(h())))`.
func (c *ErrorPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.ErrorPattern = append(c.inters.ErrorPattern, interceptors...)
}

// Create returns a builder for creating a ErrorPattern entity.
func (c *ErrorPatternClient) Create() *ErrorPatternCreate {
	mutation := newErrorPatternMutation(c.config, OpCreate)
	return &ErrorPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ErrorPattern entities.
func (c *ErrorPatternClient) CreateBulk(builders ...*ErrorPatternCreate) *ErrorPatternCreateBulk {
	return &ErrorPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ErrorPatternClient) MapCreateBulk(slice any, setFunc func(*ErrorPatternCreate, int)) *ErrorPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ErrorPatternCreateBulk{err: fmt.Errorf("calling to ErrorPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ErrorPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ErrorPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ErrorPattern.
func (c *ErrorPatternClient) Update() *ErrorPatternUpdate {
	mutation := newErrorPatternMutation(c.config, OpUpdate)
	return &ErrorPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ErrorPatternClient) UpdateOne(_m *ErrorPattern) *ErrorPatternUpdateOne {
	mutation := newErrorPatternMutation(c.config, OpUpdateOne, withErrorPattern(_m))
	return &ErrorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ErrorPatternClient) UpdateOneID(id int) *ErrorPatternUpdateOne {
	mutation := newErrorPatternMutation(c.config, OpUpdateOne, withErrorPatternID(id))
	return &ErrorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ErrorPattern.
func (c *ErrorPatternClient) Delete() *ErrorPatternDelete {
	mutation := newErrorPatternMutation(c.config, OpDelete)
	return &ErrorPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ErrorPatternClient) DeleteOne(_m *ErrorPattern) *ErrorPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ErrorPatternClient) DeleteOneID(id int) *ErrorPatternDeleteOne {
	builder := c.Delete().Where(errorpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ErrorPatternDeleteOne{builder}
}

// Query returns a query builder for ErrorPattern.
func (c *ErrorPatternClient) Query() *ErrorPatternQuery {
	return &ErrorPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeErrorPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a ErrorPattern entity by its id.
func (c *ErrorPatternClient) Get(ctx context.Context, id int) (*ErrorPattern, error) {
	return c.Query().Where(errorpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ErrorPatternClient) GetX(ctx context.Context, id int) *ErrorPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ErrorPatternClient) Hooks() []Hook {
	return c.hooks.ErrorPattern
}

// Interceptors returns the client interceptors.
func (c *ErrorPatternClient) Interceptors() []Interceptor {
	return c.inters.ErrorPattern
}

func (c *ErrorPatternClient) mutate(ctx context.Context, m *ErrorPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ErrorPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ErrorPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ErrorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ErrorPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ErrorPattern mutation op: %q", m.Op())
	}
}

// ExposureEventClient is a client for the ExposureEvent schema.
type ExposureEventClient struct {
	config
}

// NewExposureEventClient returns a client for the ExposureEvent from the given config.
func NewExposureEventClient(c config) *ExposureEventClient {
	return &ExposureEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exposureevent.Hooks(f(g(h())))`.
func (c *ExposureEventClient) Use(hooks ...Hook) {
	c.hooks.ExposureEvent = append(c.hooks.ExposureEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exposureevent.Intercept(f(g(h())))`.
func (c *ExposureEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExposureEvent = append(c.inters.ExposureEvent, interceptors...)
}

// Create returns a builder for creating a ExposureEvent entity.
func (c *ExposureEventClient) Create() *ExposureEventCreate {
	mutation := newExposureEventMutation(c.config, OpCreate)
	return &ExposureEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExposureEvent entities.
func (c *ExposureEventClient) CreateBulk(builders ...*ExposureEventCreate) *ExposureEventCreateBulk {
	return &ExposureEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExposureEventClient) MapCreateBulk(slice any, setFunc func(*ExposureEventCreate, int)) *ExposureEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExposureEventCreateBulk{err: fmt.Errorf("calling to ExposureEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExposureEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExposureEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExposureEvent.
func (c *ExposureEventClient) Update() *ExposureEventUpdate {
	mutation := newExposureEventMutation(c.config, OpUpdate)
	return &ExposureEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExposureEventClient) UpdateOne(_m *ExposureEvent) *ExposureEventUpdateOne {
	mutation := newExposureEventMutation(c.config, OpUpdateOne, withExposureEvent(_m))
	return &ExposureEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExposureEventClient) UpdateOneID(id int) *ExposureEventUpdateOne {
	mutation := newExposureEventMutation(c.config, OpUpdateOne, withExposureEventID(id))
	return &ExposureEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExposureEvent.
func (c *ExposureEventClient) Delete() *ExposureEventDelete {
	mutation := newExposureEventMutation(c.config, OpDelete)
	return &ExposureEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExposureEventClient) DeleteOne(_m *ExposureEvent) *ExposureEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExposureEventClient) DeleteOneID(id int) *ExposureEventDeleteOne {
	builder := c.Delete().Where(exposureevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExposureEventDeleteOne{builder}
}

// Query returns a query builder for ExposureEvent.
func (c *ExposureEventClient) Query() *ExposureEventQuery {
	return &ExposureEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExposureEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExposureEvent entity by its id.
func (c *ExposureEventClient) Get(ctx context.Context, id int) (*ExposureEvent, error) {
	return c.Query().Where(exposureevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExposureEventClient) GetX(ctx context.Context, id int) *ExposureEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExposureEventClient) Hooks() []Hook {
	return c.hooks.ExposureEvent
}

// Interceptors returns the client interceptors.
func (c *ExposureEventClient) Interceptors() []Interceptor {
	return c.inters.ExposureEvent
}

func (c *ExposureEventClient) mutate(ctx context.Context, m *ExposureEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExposureEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExposureEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExposureEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExposureEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExposureEvent mutation op: %q", m.Op())
	}
}

// GrammarFeatureClient is a client for the GrammarFeature schema.
type GrammarFeatureClient struct {
	config
}

// NewGrammarFeatureClient returns a client for the GrammarFeature from the given config.
func NewGrammarFeatureClient(c config) *GrammarFeatureClient {
	return &GrammarFeatureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `grammarfeature.Hooks(f(g(h())))`.
func (c *GrammarFeatureClient) Use(hooks ...Hook) {
	c.hooks.GrammarFeature = append(c.hooks.GrammarFeature, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `grammarfeature.Intercept(f(g(h())))`.
func (c *GrammarFeatureClient) Intercept(interceptors ...Interceptor) {
	c.inters.GrammarFeature = append(c.inters.GrammarFeature, interceptors...)
}

// Create returns a builder for creating a GrammarFeature entity.
func (c *GrammarFeatureClient) Create() *GrammarFeatureCreate {
	mutation := newGrammarFeatureMutation(c.config, OpCreate)
	return &GrammarFeatureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GrammarFeature entities.
func (c *GrammarFeatureClient) CreateBulk(builders ...*GrammarFeatureCreate) *GrammarFeatureCreateBulk {
	return &GrammarFeatureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GrammarFeatureClient) MapCreateBulk(slice any, setFunc func(*GrammarFeatureCreate, int)) *GrammarFeatureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GrammarFeatureCreateBulk{err: fmt.Errorf("calling to GrammarFeatureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GrammarFeatureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GrammarFeatureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GrammarFeature.
func (c *GrammarFeatureClient) Update() *GrammarFeatureUpdate {
	mutation := newGrammarFeatureMutation(c.config, OpUpdate)
	return &GrammarFeatureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GrammarFeatureClient) UpdateOne(_m *GrammarFeature) *GrammarFeatureUpdateOne {
	mutation := newGrammarFeatureMutation(c.config, OpUpdateOne, withGrammarFeature(_m))
	return &GrammarFeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GrammarFeatureClient) UpdateOneID(id int) *GrammarFeatureUpdateOne {
	mutation := newGrammarFeatureMutation(c.config, OpUpdateOne, withGrammarFeatureID(id))
	return &GrammarFeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GrammarFeature.
func (c *GrammarFeatureClient) Delete() *GrammarFeatureDelete {
	mutation := newGrammarFeatureMutation(c.config, OpDelete)
	return &GrammarFeatureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GrammarFeatureClient) DeleteOne(_m *GrammarFeature) *GrammarFeatureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GrammarFeatureClient) DeleteOneID(id int) *GrammarFeatureDeleteOne {
	builder := c.Delete().Where(grammarfeature.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GrammarFeatureDeleteOne{builder}
}

// Query returns a query builder for GrammarFeature.
func (c *GrammarFeatureClient) Query() *GrammarFeatureQuery {
	return &GrammarFeatureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGrammarFeature},
		inters: c.Interceptors(),
	}
}

// Get returns a GrammarFeature entity by its id.
func (c *GrammarFeatureClient) Get(ctx context.Context, id int) (*GrammarFeature, error) {
	return c.Query().Where(grammarfeature.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GrammarFeatureClient) GetX(ctx context.Context, id int) *GrammarFeature {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GrammarFeatureClient) Hooks() []Hook {
	return c.hooks.GrammarFeature
}

// Interceptors returns the client interceptors.
func (c *GrammarFeatureClient) Interceptors() []Interceptor {
	return c.inters.GrammarFeature
}

func (c *GrammarFeatureClient) mutate(ctx context.Context, m *GrammarFeatureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GrammarFeatureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GrammarFeatureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GrammarFeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GrammarFeatureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GrammarFeature mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// ProficiencyRecordClient is a client for the ProficiencyRecord schema.
type ProficiencyRecordClient struct {
	config
}

// NewProficiencyRecordClient returns a client for the ProficiencyRecord from the given config.
func NewProficiencyRecordClient(c config) *ProficiencyRecordClient {
	return &ProficiencyRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proficiencyrecord.Hooks(f(g(h())))`.
func (c *ProficiencyRecordClient) Use(hooks ...Hook) {
	c.hooks.ProficiencyRecord = append(c.hooks.ProficiencyRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proficiencyrecord.Intercept(f(g(h())))`.
func (c *ProficiencyRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProficiencyRecord = append(c.inters.ProficiencyRecord, interceptors...)
}

// Create returns a builder for creating a ProficiencyRecord entity.
func (c *ProficiencyRecordClient) Create() *ProficiencyRecordCreate {
	mutation := newProficiencyRecordMutation(c.config, OpCreate)
	return &ProficiencyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProficiencyRecord entities.
func (c *ProficiencyRecordClient) CreateBulk(builders ...*ProficiencyRecordCreate) *ProficiencyRecordCreateBulk {
	return &ProficiencyRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProficiencyRecordClient) MapCreateBulk(slice any, setFunc func(*ProficiencyRecordCreate, int)) *ProficiencyRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProficiencyRecordCreateBulk{err: fmt.Errorf("calling to ProficiencyRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProficiencyRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProficiencyRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProficiencyRecord.
func (c *ProficiencyRecordClient) Update() *ProficiencyRecordUpdate {
	mutation := newProficiencyRecordMutation(c.config, OpUpdate)
	return &ProficiencyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProficiencyRecordClient) UpdateOne(_m *ProficiencyRecord) *ProficiencyRecordUpdateOne {
	mutation := newProficiencyRecordMutation(c.config, OpUpdateOne, withProficiencyRecord(_m))
	return &ProficiencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProficiencyRecordClient) UpdateOneID(id int) *ProficiencyRecordUpdateOne {
	mutation := newProficiencyRecordMutation(c.config, OpUpdateOne, withProficiencyRecordID(id))
	return &ProficiencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProficiencyRecord.
func (c *ProficiencyRecordClient) Delete() *ProficiencyRecordDelete {
	mutation := newProficiencyRecordMutation(c.config, OpDelete)
	return &ProficiencyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProficiencyRecordClient) DeleteOne(_m *ProficiencyRecord) *ProficiencyRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProficiencyRecordClient) DeleteOneID(id int) *ProficiencyRecordDeleteOne {
	builder := c.Delete().Where(proficiencyrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProficiencyRecordDeleteOne{builder}
}

// Query returns a query builder for ProficiencyRecord.
func (c *ProficiencyRecordClient) Query() *ProficiencyRecordQuery {
	return &ProficiencyRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProficiencyRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ProficiencyRecord entity by its id.
func (c *ProficiencyRecordClient) Get(ctx context.Context, id int) (*ProficiencyRecord, error) {
	return c.Query().Where(proficiencyrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProficiencyRecordClient) GetX(ctx context.Context, id int) *ProficiencyRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProficiencyRecordClient) Hooks() []Hook {
	return c.hooks.ProficiencyRecord
}

// Interceptors returns the client interceptors.
func (c *ProficiencyRecordClient) Interceptors() []Interceptor {
	return c.inters.ProficiencyRecord
}

func (c *ProficiencyRecordClient) mutate(ctx context.Context, m *ProficiencyRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProficiencyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProficiencyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProficiencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProficiencyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProficiencyRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ContentItem, ErrorPattern, ExposureEvent, GrammarFeature, LLMRequestEvent,
		ProficiencyRecord []ent.Hook
	}
	inters struct {
		ContentItem, ErrorPattern, ExposureEvent, GrammarFeature, LLMRequestEvent,
		ProficiencyRecord []ent.Interceptor
	}
)
