// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/catalogitem"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/exactmapping"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/extractionlog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CatalogItem is the client for interacting with the CatalogItem builders.
	CatalogItem *CatalogItemClient
	// ExactMapping is the client for interacting with the ExactMapping builders.
	ExactMapping *ExactMappingClient
	// ExtractionLog is the client for interacting with the ExtractionLog builders.
	ExtractionLog *ExtractionLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CatalogItem = NewCatalogItemClient(c.config)
	c.ExactMapping = NewExactMappingClient(c.config)
	c.ExtractionLog = NewExtractionLogClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		CatalogItem:   NewCatalogItemClient(cfg),
		ExactMapping:  NewExactMappingClient(cfg),
		ExtractionLog: NewExtractionLogClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		CatalogItem:   NewCatalogItemClient(cfg),
		ExactMapping:  NewExactMappingClient(cfg),
		ExtractionLog: NewExtractionLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CatalogItem.
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
	c.CatalogItem.Use(hooks...)
	c.ExactMapping.Use(hooks...)
	c.ExtractionLog.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CatalogItem.Intercept(interceptors...)
	c.ExactMapping.Intercept(interceptors...)
	c.ExtractionLog.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CatalogItemMutation:
		return c.CatalogItem.mutate(ctx, m)
	case *ExactMappingMutation:
		return c.ExactMapping.mutate(ctx, m)
	case *ExtractionLogMutation:
		return c.ExtractionLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CatalogItemClient is a client for the CatalogItem schema.
type CatalogItemClient struct {
	config
}

// NewCatalogItemClient returns a client for the CatalogItem from the given config.
func NewCatalogItemClient(c config) *CatalogItemClient {
	return &CatalogItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `catalogitem.Hooks(f(g(h())))`.
func (c *CatalogItemClient) Use(hooks ...Hook) {
	c.hooks.CatalogItem = append(c.hooks.CatalogItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `catalogitem.Intercept(f(g(h())))`.
func (c *CatalogItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.CatalogItem = append(c.inters.CatalogItem, interceptors...)
}

// Create returns a builder for creating a CatalogItem entity.
func (c *CatalogItemClient) Create() *CatalogItemCreate {
	mutation := newCatalogItemMutation(c.config, OpCreate)
	return &CatalogItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CatalogItem entities.
func (c *CatalogItemClient) CreateBulk(builders ...*CatalogItemCreate) *CatalogItemCreateBulk {
	return &CatalogItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CatalogItemClient) MapCreateBulk(slice any, setFunc func(*CatalogItemCreate, int)) *CatalogItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CatalogItemCreateBulk{err: fmt.Errorf("calling to CatalogItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CatalogItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CatalogItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CatalogItem.
func (c *CatalogItemClient) Update() *CatalogItemUpdate {
	mutation := newCatalogItemMutation(c.config, OpUpdate)
	return &CatalogItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CatalogItemClient) UpdateOne(_m *CatalogItem) *CatalogItemUpdateOne {
	mutation := newCatalogItemMutation(c.config, OpUpdateOne, withCatalogItem(_m))
	return &CatalogItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CatalogItemClient) UpdateOneID(id int) *CatalogItemUpdateOne {
	mutation := newCatalogItemMutation(c.config, OpUpdateOne, withCatalogItemID(id))
	return &CatalogItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CatalogItem.
func (c *CatalogItemClient) Delete() *CatalogItemDelete {
	mutation := newCatalogItemMutation(c.config, OpDelete)
	return &CatalogItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CatalogItemClient) DeleteOne(_m *CatalogItem) *CatalogItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CatalogItemClient) DeleteOneID(id int) *CatalogItemDeleteOne {
	builder := c.Delete().Where(catalogitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CatalogItemDeleteOne{builder}
}

// Query returns a query builder for CatalogItem.
func (c *CatalogItemClient) Query() *CatalogItemQuery {
	return &CatalogItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCatalogItem},
		inters: c.Interceptors(),
	}
}

// Get returns a CatalogItem entity by its id.
func (c *CatalogItemClient) Get(ctx context.Context, id int) (*CatalogItem, error) {
	return c.Query().Where(catalogitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CatalogItemClient) GetX(ctx context.Context, id int) *CatalogItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CatalogItemClient) Hooks() []Hook {
	return c.hooks.CatalogItem
}

// Interceptors returns the client interceptors.
func (c *CatalogItemClient) Interceptors() []Interceptor {
	return c.inters.CatalogItem
}

func (c *CatalogItemClient) mutate(ctx context.Context, m *CatalogItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CatalogItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CatalogItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CatalogItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CatalogItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CatalogItem mutation op: %q", m.Op())
	}
}

// ExactMappingClient is a client for the ExactMapping schema.
type ExactMappingClient struct {
	config
}

// NewExactMappingClient returns a client for the ExactMapping from the given config.
func NewExactMappingClient(c config) *ExactMappingClient {
	return &ExactMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exactmapping.Hooks(f(g(h())))`.
func (c *ExactMappingClient) Use(hooks ...Hook) {
	c.hooks.ExactMapping = append(c.hooks.ExactMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exactmapping.Intercept(f(g(h())))`.
func (c *ExactMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExactMapping = append(c.inters.ExactMapping, interceptors...)
}

// Create returns a builder for creating a ExactMapping entity.
func (c *ExactMappingClient) Create() *ExactMappingCreate {
	mutation := newExactMappingMutation(c.config, OpCreate)
	return &ExactMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExactMapping entities.
func (c *ExactMappingClient) CreateBulk(builders ...*ExactMappingCreate) *ExactMappingCreateBulk {
	return &ExactMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExactMappingClient) MapCreateBulk(slice any, setFunc func(*ExactMappingCreate, int)) *ExactMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExactMappingCreateBulk{err: fmt.Errorf("calling to ExactMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExactMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExactMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExactMapping.
func (c *ExactMappingClient) Update() *ExactMappingUpdate {
	mutation := newExactMappingMutation(c.config, OpUpdate)
	return &ExactMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExactMappingClient) UpdateOne(_m *ExactMapping) *ExactMappingUpdateOne {
	mutation := newExactMappingMutation(c.config, OpUpdateOne, withExactMapping(_m))
	return &ExactMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExactMappingClient) UpdateOneID(id int) *ExactMappingUpdateOne {
	mutation := newExactMappingMutation(c.config, OpUpdateOne, withExactMappingID(id))
	return &ExactMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExactMapping.
func (c *ExactMappingClient) Delete() *ExactMappingDelete {
	mutation := newExactMappingMutation(c.config, OpDelete)
	return &ExactMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExactMappingClient) DeleteOne(_m *ExactMapping) *ExactMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExactMappingClient) DeleteOneID(id int) *ExactMappingDeleteOne {
	builder := c.Delete().Where(exactmapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExactMappingDeleteOne{builder}
}

// Query returns a query builder for ExactMapping.
func (c *ExactMappingClient) Query() *ExactMappingQuery {
	return &ExactMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExactMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a ExactMapping entity by its id.
func (c *ExactMappingClient) Get(ctx context.Context, id int) (*ExactMapping, error) {
	return c.Query().Where(exactmapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExactMappingClient) GetX(ctx context.Context, id int) *ExactMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExactMappingClient) Hooks() []Hook {
	return c.hooks.ExactMapping
}

// Interceptors returns the client interceptors.
func (c *ExactMappingClient) Interceptors() []Interceptor {
	return c.inters.ExactMapping
}

func (c *ExactMappingClient) mutate(ctx context.Context, m *ExactMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExactMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExactMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExactMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExactMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExactMapping mutation op: %q", m.Op())
	}
}

// ExtractionLogClient is a client for the ExtractionLog schema.
type ExtractionLogClient struct {
	config
}

// NewExtractionLogClient returns a client for the ExtractionLog from the given config.
func NewExtractionLogClient(c config) *ExtractionLogClient {
	return &ExtractionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionlog.Hooks(f(g(h())))`.
func (c *ExtractionLogClient) Use(hooks ...Hook) {
	c.hooks.ExtractionLog = append(c.hooks.ExtractionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionlog.Intercept(f(g(h())))`.
func (c *ExtractionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionLog = append(c.inters.ExtractionLog, interceptors...)
}

// Create returns a builder for creating a ExtractionLog entity.
func (c *ExtractionLogClient) Create() *ExtractionLogCreate {
	mutation := newExtractionLogMutation(c.config, OpCreate)
	return &ExtractionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionLog entities.
func (c *ExtractionLogClient) CreateBulk(builders ...*ExtractionLogCreate) *ExtractionLogCreateBulk {
	return &ExtractionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionLogClient) MapCreateBulk(slice any, setFunc func(*ExtractionLogCreate, int)) *ExtractionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionLogCreateBulk{err: fmt.Errorf("calling to ExtractionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionLog.
func (c *ExtractionLogClient) Update() *ExtractionLogUpdate {
	mutation := newExtractionLogMutation(c.config, OpUpdate)
	return &ExtractionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionLogClient) UpdateOne(_m *ExtractionLog) *ExtractionLogUpdateOne {
	mutation := newExtractionLogMutation(c.config, OpUpdateOne, withExtractionLog(_m))
	return &ExtractionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionLogClient) UpdateOneID(id uuid.UUID) *ExtractionLogUpdateOne {
	mutation := newExtractionLogMutation(c.config, OpUpdateOne, withExtractionLogID(id))
	return &ExtractionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionLog.
func (c *ExtractionLogClient) Delete() *ExtractionLogDelete {
	mutation := newExtractionLogMutation(c.config, OpDelete)
	return &ExtractionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionLogClient) DeleteOne(_m *ExtractionLog) *ExtractionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionLogClient) DeleteOneID(id uuid.UUID) *ExtractionLogDeleteOne {
	builder := c.Delete().Where(extractionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionLogDeleteOne{builder}
}

// Query returns a query builder for ExtractionLog.
func (c *ExtractionLogClient) Query() *ExtractionLogQuery {
	return &ExtractionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionLog entity by its id.
func (c *ExtractionLogClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionLog, error) {
	return c.Query().Where(extractionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionLogClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractionLogClient) Hooks() []Hook {
	return c.hooks.ExtractionLog
}

// Interceptors returns the client interceptors.
func (c *ExtractionLogClient) Interceptors() []Interceptor {
	return c.inters.ExtractionLog
}

func (c *ExtractionLogClient) mutate(ctx context.Context, m *ExtractionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CatalogItem, ExactMapping, ExtractionLog []ent.Hook
	}
	inters struct {
		CatalogItem, ExactMapping, ExtractionLog []ent.Interceptor
	}
)
