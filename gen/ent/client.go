// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/gen/ent/document"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApplicantProfile is the client for interacting with the ApplicantProfile builders.
	ApplicantProfile *ApplicantProfileClient
	// ApplicationStatusLog is the client for interacting with the ApplicationStatusLog builders.
	ApplicationStatusLog *ApplicationStatusLogClient
	// BursaryApplication is the client for interacting with the BursaryApplication builders.
	BursaryApplication *BursaryApplicationClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApplicantProfile = NewApplicantProfileClient(c.config)
	c.ApplicationStatusLog = NewApplicationStatusLogClient(c.config)
	c.BursaryApplication = NewBursaryApplicationClient(c.config)
	c.Document = NewDocumentClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		ApplicantProfile:     NewApplicantProfileClient(cfg),
		ApplicationStatusLog: NewApplicationStatusLogClient(cfg),
		BursaryApplication:   NewBursaryApplicationClient(cfg),
		Document:             NewDocumentClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		ApplicantProfile:     NewApplicantProfileClient(cfg),
		ApplicationStatusLog: NewApplicationStatusLogClient(cfg),
		BursaryApplication:   NewBursaryApplicationClient(cfg),
		Document:             NewDocumentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApplicantProfile.
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
	c.ApplicantProfile.Use(hooks...)
	c.ApplicationStatusLog.Use(hooks...)
	c.BursaryApplication.Use(hooks...)
	c.Document.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ApplicantProfile.Intercept(interceptors...)
	c.ApplicationStatusLog.Intercept(interceptors...)
	c.BursaryApplication.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApplicantProfileMutation:
		return c.ApplicantProfile.mutate(ctx, m)
	case *ApplicationStatusLogMutation:
		return c.ApplicationStatusLog.mutate(ctx, m)
	case *BursaryApplicationMutation:
		return c.BursaryApplication.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApplicantProfileClient is a client for the ApplicantProfile schema.
type ApplicantProfileClient struct {
	config
}

// NewApplicantProfileClient returns a client for the ApplicantProfile from the given config.
func NewApplicantProfileClient(c config) *ApplicantProfileClient {
	return &ApplicantProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `applicantprofile.Hooks(f(g(h())))`.
func (c *ApplicantProfileClient) Use(hooks ...Hook) {
	c.hooks.ApplicantProfile = append(c.hooks.ApplicantProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `applicantprofile.Intercept(f(g(h())))`.
func (c *ApplicantProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApplicantProfile = append(c.inters.ApplicantProfile, interceptors...)
}

// Create returns a builder for creating a ApplicantProfile entity.
func (c *ApplicantProfileClient) Create() *ApplicantProfileCreate {
	mutation := newApplicantProfileMutation(c.config, OpCreate)
	return &ApplicantProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApplicantProfile entities.
func (c *ApplicantProfileClient) CreateBulk(builders ...*ApplicantProfileCreate) *ApplicantProfileCreateBulk {
	return &ApplicantProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicantProfileClient) MapCreateBulk(slice any, setFunc func(*ApplicantProfileCreate, int)) *ApplicantProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicantProfileCreateBulk{err: fmt.Errorf("calling to ApplicantProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicantProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicantProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApplicantProfile.
func (c *ApplicantProfileClient) Update() *ApplicantProfileUpdate {
	mutation := newApplicantProfileMutation(c.config, OpUpdate)
	return &ApplicantProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicantProfileClient) UpdateOne(_m *ApplicantProfile) *ApplicantProfileUpdateOne {
	mutation := newApplicantProfileMutation(c.config, OpUpdateOne, withApplicantProfile(_m))
	return &ApplicantProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicantProfileClient) UpdateOneID(id uuid.UUID) *ApplicantProfileUpdateOne {
	mutation := newApplicantProfileMutation(c.config, OpUpdateOne, withApplicantProfileID(id))
	return &ApplicantProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApplicantProfile.
func (c *ApplicantProfileClient) Delete() *ApplicantProfileDelete {
	mutation := newApplicantProfileMutation(c.config, OpDelete)
	return &ApplicantProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicantProfileClient) DeleteOne(_m *ApplicantProfile) *ApplicantProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicantProfileClient) DeleteOneID(id uuid.UUID) *ApplicantProfileDeleteOne {
	builder := c.Delete().Where(applicantprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicantProfileDeleteOne{builder}
}

// Query returns a query builder for ApplicantProfile.
func (c *ApplicantProfileClient) Query() *ApplicantProfileQuery {
	return &ApplicantProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplicantProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a ApplicantProfile entity by its id.
func (c *ApplicantProfileClient) Get(ctx context.Context, id uuid.UUID) (*ApplicantProfile, error) {
	return c.Query().Where(applicantprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicantProfileClient) GetX(ctx context.Context, id uuid.UUID) *ApplicantProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplications queries the applications edge of a ApplicantProfile.
func (c *ApplicantProfileClient) QueryApplications(_m *ApplicantProfile) *BursaryApplicationQuery {
	query := (&BursaryApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(applicantprofile.Table, applicantprofile.FieldID, id),
			sqlgraph.To(bursaryapplication.Table, bursaryapplication.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, applicantprofile.ApplicationsTable, applicantprofile.ApplicationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApplicantProfileClient) Hooks() []Hook {
	return c.hooks.ApplicantProfile
}

// Interceptors returns the client interceptors.
func (c *ApplicantProfileClient) Interceptors() []Interceptor {
	return c.inters.ApplicantProfile
}

func (c *ApplicantProfileClient) mutate(ctx context.Context, m *ApplicantProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicantProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicantProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicantProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicantProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApplicantProfile mutation op: %q", m.Op())
	}
}

// ApplicationStatusLogClient is a client for the ApplicationStatusLog schema.
type ApplicationStatusLogClient struct {
	config
}

// NewApplicationStatusLogClient returns a client for the ApplicationStatusLog from the given config.
func NewApplicationStatusLogClient(c config) *ApplicationStatusLogClient {
	return &ApplicationStatusLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `applicationstatuslog.Hooks(f(g(h())))`.
func (c *ApplicationStatusLogClient) Use(hooks ...Hook) {
	c.hooks.ApplicationStatusLog = append(c.hooks.ApplicationStatusLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `applicationstatuslog.Intercept(f(g(h())))`.
func (c *ApplicationStatusLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApplicationStatusLog = append(c.inters.ApplicationStatusLog, interceptors...)
}

// Create returns a builder for creating a ApplicationStatusLog entity.
func (c *ApplicationStatusLogClient) Create() *ApplicationStatusLogCreate {
	mutation := newApplicationStatusLogMutation(c.config, OpCreate)
	return &ApplicationStatusLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApplicationStatusLog entities.
func (c *ApplicationStatusLogClient) CreateBulk(builders ...*ApplicationStatusLogCreate) *ApplicationStatusLogCreateBulk {
	return &ApplicationStatusLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationStatusLogClient) MapCreateBulk(slice any, setFunc func(*ApplicationStatusLogCreate, int)) *ApplicationStatusLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationStatusLogCreateBulk{err: fmt.Errorf("calling to ApplicationStatusLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationStatusLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationStatusLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApplicationStatusLog.
func (c *ApplicationStatusLogClient) Update() *ApplicationStatusLogUpdate {
	mutation := newApplicationStatusLogMutation(c.config, OpUpdate)
	return &ApplicationStatusLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationStatusLogClient) UpdateOne(_m *ApplicationStatusLog) *ApplicationStatusLogUpdateOne {
	mutation := newApplicationStatusLogMutation(c.config, OpUpdateOne, withApplicationStatusLog(_m))
	return &ApplicationStatusLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationStatusLogClient) UpdateOneID(id uuid.UUID) *ApplicationStatusLogUpdateOne {
	mutation := newApplicationStatusLogMutation(c.config, OpUpdateOne, withApplicationStatusLogID(id))
	return &ApplicationStatusLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApplicationStatusLog.
func (c *ApplicationStatusLogClient) Delete() *ApplicationStatusLogDelete {
	mutation := newApplicationStatusLogMutation(c.config, OpDelete)
	return &ApplicationStatusLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationStatusLogClient) DeleteOne(_m *ApplicationStatusLog) *ApplicationStatusLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationStatusLogClient) DeleteOneID(id uuid.UUID) *ApplicationStatusLogDeleteOne {
	builder := c.Delete().Where(applicationstatuslog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationStatusLogDeleteOne{builder}
}

// Query returns a query builder for ApplicationStatusLog.
func (c *ApplicationStatusLogClient) Query() *ApplicationStatusLogQuery {
	return &ApplicationStatusLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplicationStatusLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ApplicationStatusLog entity by its id.
func (c *ApplicationStatusLogClient) Get(ctx context.Context, id uuid.UUID) (*ApplicationStatusLog, error) {
	return c.Query().Where(applicationstatuslog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationStatusLogClient) GetX(ctx context.Context, id uuid.UUID) *ApplicationStatusLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a ApplicationStatusLog.
func (c *ApplicationStatusLogClient) QueryApplication(_m *ApplicationStatusLog) *BursaryApplicationQuery {
	query := (&BursaryApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(applicationstatuslog.Table, applicationstatuslog.FieldID, id),
			sqlgraph.To(bursaryapplication.Table, bursaryapplication.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, applicationstatuslog.ApplicationTable, applicationstatuslog.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApplicationStatusLogClient) Hooks() []Hook {
	return c.hooks.ApplicationStatusLog
}

// Interceptors returns the client interceptors.
func (c *ApplicationStatusLogClient) Interceptors() []Interceptor {
	return c.inters.ApplicationStatusLog
}

func (c *ApplicationStatusLogClient) mutate(ctx context.Context, m *ApplicationStatusLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationStatusLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationStatusLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationStatusLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationStatusLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApplicationStatusLog mutation op: %q", m.Op())
	}
}

// BursaryApplicationClient is a client for the BursaryApplication schema.
type BursaryApplicationClient struct {
	config
}

// NewBursaryApplicationClient returns a client for the BursaryApplication from the given config.
func NewBursaryApplicationClient(c config) *BursaryApplicationClient {
	return &BursaryApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bursaryapplication.Hooks(f(g(h())))`.
func (c *BursaryApplicationClient) Use(hooks ...Hook) {
	c.hooks.BursaryApplication = append(c.hooks.BursaryApplication, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bursaryapplication.Intercept(f(g(h())))`.
func (c *BursaryApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.BursaryApplication = append(c.inters.BursaryApplication, interceptors...)
}

// Create returns a builder for creating a BursaryApplication entity.
func (c *BursaryApplicationClient) Create() *BursaryApplicationCreate {
	mutation := newBursaryApplicationMutation(c.config, OpCreate)
	return &BursaryApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BursaryApplication entities.
func (c *BursaryApplicationClient) CreateBulk(builders ...*BursaryApplicationCreate) *BursaryApplicationCreateBulk {
	return &BursaryApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BursaryApplicationClient) MapCreateBulk(slice any, setFunc func(*BursaryApplicationCreate, int)) *BursaryApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BursaryApplicationCreateBulk{err: fmt.Errorf("calling to BursaryApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BursaryApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BursaryApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BursaryApplication.
func (c *BursaryApplicationClient) Update() *BursaryApplicationUpdate {
	mutation := newBursaryApplicationMutation(c.config, OpUpdate)
	return &BursaryApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BursaryApplicationClient) UpdateOne(_m *BursaryApplication) *BursaryApplicationUpdateOne {
	mutation := newBursaryApplicationMutation(c.config, OpUpdateOne, withBursaryApplication(_m))
	return &BursaryApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BursaryApplicationClient) UpdateOneID(id uuid.UUID) *BursaryApplicationUpdateOne {
	mutation := newBursaryApplicationMutation(c.config, OpUpdateOne, withBursaryApplicationID(id))
	return &BursaryApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BursaryApplication.
func (c *BursaryApplicationClient) Delete() *BursaryApplicationDelete {
	mutation := newBursaryApplicationMutation(c.config, OpDelete)
	return &BursaryApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BursaryApplicationClient) DeleteOne(_m *BursaryApplication) *BursaryApplicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BursaryApplicationClient) DeleteOneID(id uuid.UUID) *BursaryApplicationDeleteOne {
	builder := c.Delete().Where(bursaryapplication.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BursaryApplicationDeleteOne{builder}
}

// Query returns a query builder for BursaryApplication.
func (c *BursaryApplicationClient) Query() *BursaryApplicationQuery {
	return &BursaryApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBursaryApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a BursaryApplication entity by its id.
func (c *BursaryApplicationClient) Get(ctx context.Context, id uuid.UUID) (*BursaryApplication, error) {
	return c.Query().Where(bursaryapplication.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BursaryApplicationClient) GetX(ctx context.Context, id uuid.UUID) *BursaryApplication {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a BursaryApplication.
func (c *BursaryApplicationClient) QueryProfile(_m *BursaryApplication) *ApplicantProfileQuery {
	query := (&ApplicantProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bursaryapplication.Table, bursaryapplication.FieldID, id),
			sqlgraph.To(applicantprofile.Table, applicantprofile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bursaryapplication.ProfileTable, bursaryapplication.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a BursaryApplication.
func (c *BursaryApplicationClient) QueryDocuments(_m *BursaryApplication) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bursaryapplication.Table, bursaryapplication.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bursaryapplication.DocumentsTable, bursaryapplication.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStatusLogs queries the status_logs edge of a BursaryApplication.
func (c *BursaryApplicationClient) QueryStatusLogs(_m *BursaryApplication) *ApplicationStatusLogQuery {
	query := (&ApplicationStatusLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bursaryapplication.Table, bursaryapplication.FieldID, id),
			sqlgraph.To(applicationstatuslog.Table, applicationstatuslog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bursaryapplication.StatusLogsTable, bursaryapplication.StatusLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BursaryApplicationClient) Hooks() []Hook {
	return c.hooks.BursaryApplication
}

// Interceptors returns the client interceptors.
func (c *BursaryApplicationClient) Interceptors() []Interceptor {
	return c.inters.BursaryApplication
}

func (c *BursaryApplicationClient) mutate(ctx context.Context, m *BursaryApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BursaryApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BursaryApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BursaryApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BursaryApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BursaryApplication mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a Document.
func (c *DocumentClient) QueryApplication(_m *Document) *BursaryApplicationQuery {
	query := (&BursaryApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(bursaryapplication.Table, bursaryapplication.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.ApplicationTable, document.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApplicantProfile, ApplicationStatusLog, BursaryApplication, Document []ent.Hook
	}
	inters struct {
		ApplicantProfile, ApplicationStatusLog, BursaryApplication,
		Document []ent.Interceptor
	}
)
