// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/gen/ent/document"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// BursaryApplicationQuery is the builder for querying BursaryApplication entities.
type BursaryApplicationQuery struct {
	config
	ctx            *QueryContext
	order          []bursaryapplication.OrderOption
	inters         []Interceptor
	predicates     []predicate.BursaryApplication
	withProfile    *ApplicantProfileQuery
	withDocuments  *DocumentQuery
	withStatusLogs *ApplicationStatusLogQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BursaryApplicationQuery builder.
func (_q *BursaryApplicationQuery) Where(ps ...predicate.BursaryApplication) *BursaryApplicationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BursaryApplicationQuery) Limit(limit int) *BursaryApplicationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BursaryApplicationQuery) Offset(offset int) *BursaryApplicationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BursaryApplicationQuery) Unique(unique bool) *BursaryApplicationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BursaryApplicationQuery) Order(o ...bursaryapplication.OrderOption) *BursaryApplicationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProfile chains the current query on the "profile" edge.
func (_q *BursaryApplicationQuery) QueryProfile() *ApplicantProfileQuery {
	query := (&ApplicantProfileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(bursaryapplication.Table, bursaryapplication.FieldID, selector),
			sqlgraph.To(applicantprofile.Table, applicantprofile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bursaryapplication.ProfileTable, bursaryapplication.ProfileColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocuments chains the current query on the "documents" edge.
func (_q *BursaryApplicationQuery) QueryDocuments() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(bursaryapplication.Table, bursaryapplication.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bursaryapplication.DocumentsTable, bursaryapplication.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStatusLogs chains the current query on the "status_logs" edge.
func (_q *BursaryApplicationQuery) QueryStatusLogs() *ApplicationStatusLogQuery {
	query := (&ApplicationStatusLogClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(bursaryapplication.Table, bursaryapplication.FieldID, selector),
			sqlgraph.To(applicationstatuslog.Table, applicationstatuslog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bursaryapplication.StatusLogsTable, bursaryapplication.StatusLogsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BursaryApplication entity from the query.
// Returns a *NotFoundError when no BursaryApplication was found.
func (_q *BursaryApplicationQuery) First(ctx context.Context) (*BursaryApplication, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{bursaryapplication.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BursaryApplicationQuery) FirstX(ctx context.Context) *BursaryApplication {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BursaryApplication ID from the query.
// Returns a *NotFoundError when no BursaryApplication ID was found.
func (_q *BursaryApplicationQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{bursaryapplication.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BursaryApplicationQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BursaryApplication entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BursaryApplication entity is found.
// Returns a *NotFoundError when no BursaryApplication entities are found.
func (_q *BursaryApplicationQuery) Only(ctx context.Context) (*BursaryApplication, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{bursaryapplication.Label}
	default:
		return nil, &NotSingularError{bursaryapplication.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BursaryApplicationQuery) OnlyX(ctx context.Context) *BursaryApplication {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BursaryApplication ID in the query.
// Returns a *NotSingularError when more than one BursaryApplication ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BursaryApplicationQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{bursaryapplication.Label}
	default:
		err = &NotSingularError{bursaryapplication.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BursaryApplicationQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BursaryApplications.
func (_q *BursaryApplicationQuery) All(ctx context.Context) ([]*BursaryApplication, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BursaryApplication, *BursaryApplicationQuery]()
	return withInterceptors[[]*BursaryApplication](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BursaryApplicationQuery) AllX(ctx context.Context) []*BursaryApplication {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BursaryApplication IDs.
func (_q *BursaryApplicationQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(bursaryapplication.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BursaryApplicationQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BursaryApplicationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BursaryApplicationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BursaryApplicationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BursaryApplicationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *BursaryApplicationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BursaryApplicationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BursaryApplicationQuery) Clone() *BursaryApplicationQuery {
	if _q == nil {
		return nil
	}
	return &BursaryApplicationQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]bursaryapplication.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.BursaryApplication{}, _q.predicates...),
		withProfile:    _q.withProfile.Clone(),
		withDocuments:  _q.withDocuments.Clone(),
		withStatusLogs: _q.withStatusLogs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProfile tells the query-builder to eager-load the nodes that are connected to
// the "profile" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BursaryApplicationQuery) WithProfile(opts ...func(*ApplicantProfileQuery)) *BursaryApplicationQuery {
	query := (&ApplicantProfileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProfile = query
	return _q
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BursaryApplicationQuery) WithDocuments(opts ...func(*DocumentQuery)) *BursaryApplicationQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocuments = query
	return _q
}

// WithStatusLogs tells the query-builder to eager-load the nodes that are connected to
// the "status_logs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BursaryApplicationQuery) WithStatusLogs(opts ...func(*ApplicationStatusLogQuery)) *BursaryApplicationQuery {
	query := (&ApplicationStatusLogClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStatusLogs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProfileID uuid.UUID `json:"profile_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BursaryApplication.Query().
//		GroupBy(bursaryapplication.FieldProfileID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BursaryApplicationQuery) GroupBy(field string, fields ...string) *BursaryApplicationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BursaryApplicationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = bursaryapplication.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProfileID uuid.UUID `json:"profile_id,omitempty"`
//	}
//
//	client.BursaryApplication.Query().
//		Select(bursaryapplication.FieldProfileID).
//		Scan(ctx, &v)
func (_q *BursaryApplicationQuery) Select(fields ...string) *BursaryApplicationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BursaryApplicationSelect{BursaryApplicationQuery: _q}
	sbuild.label = bursaryapplication.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BursaryApplicationSelect configured with the given aggregations.
func (_q *BursaryApplicationQuery) Aggregate(fns ...AggregateFunc) *BursaryApplicationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BursaryApplicationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !bursaryapplication.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *BursaryApplicationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BursaryApplication, error) {
	var (
		nodes       = []*BursaryApplication{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withProfile != nil,
			_q.withDocuments != nil,
			_q.withStatusLogs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BursaryApplication).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BursaryApplication{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withProfile; query != nil {
		if err := _q.loadProfile(ctx, query, nodes, nil,
			func(n *BursaryApplication, e *ApplicantProfile) { n.Edges.Profile = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocuments; query != nil {
		if err := _q.loadDocuments(ctx, query, nodes,
			func(n *BursaryApplication) { n.Edges.Documents = []*Document{} },
			func(n *BursaryApplication, e *Document) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStatusLogs; query != nil {
		if err := _q.loadStatusLogs(ctx, query, nodes,
			func(n *BursaryApplication) { n.Edges.StatusLogs = []*ApplicationStatusLog{} },
			func(n *BursaryApplication, e *ApplicationStatusLog) {
				n.Edges.StatusLogs = append(n.Edges.StatusLogs, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BursaryApplicationQuery) loadProfile(ctx context.Context, query *ApplicantProfileQuery, nodes []*BursaryApplication, init func(*BursaryApplication), assign func(*BursaryApplication, *ApplicantProfile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*BursaryApplication)
	for i := range nodes {
		fk := nodes[i].ProfileID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(applicantprofile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "profile_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BursaryApplicationQuery) loadDocuments(ctx context.Context, query *DocumentQuery, nodes []*BursaryApplication, init func(*BursaryApplication), assign func(*BursaryApplication, *Document)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*BursaryApplication)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(document.FieldApplicationID)
	}
	query.Where(predicate.Document(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(bursaryapplication.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ApplicationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "application_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BursaryApplicationQuery) loadStatusLogs(ctx context.Context, query *ApplicationStatusLogQuery, nodes []*BursaryApplication, init func(*BursaryApplication), assign func(*BursaryApplication, *ApplicationStatusLog)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*BursaryApplication)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(applicationstatuslog.FieldApplicationID)
	}
	query.Where(predicate.ApplicationStatusLog(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(bursaryapplication.StatusLogsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ApplicationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "application_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BursaryApplicationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BursaryApplicationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(bursaryapplication.Table, bursaryapplication.Columns, sqlgraph.NewFieldSpec(bursaryapplication.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bursaryapplication.FieldID)
		for i := range fields {
			if fields[i] != bursaryapplication.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProfile != nil {
			_spec.Node.AddColumnOnce(bursaryapplication.FieldProfileID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *BursaryApplicationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(bursaryapplication.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = bursaryapplication.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BursaryApplicationGroupBy is the group-by builder for BursaryApplication entities.
type BursaryApplicationGroupBy struct {
	selector
	build *BursaryApplicationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BursaryApplicationGroupBy) Aggregate(fns ...AggregateFunc) *BursaryApplicationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BursaryApplicationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BursaryApplicationQuery, *BursaryApplicationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BursaryApplicationGroupBy) sqlScan(ctx context.Context, root *BursaryApplicationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BursaryApplicationSelect is the builder for selecting fields of BursaryApplication entities.
type BursaryApplicationSelect struct {
	*BursaryApplicationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BursaryApplicationSelect) Aggregate(fns ...AggregateFunc) *BursaryApplicationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BursaryApplicationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BursaryApplicationQuery, *BursaryApplicationSelect](ctx, _s.BursaryApplicationQuery, _s, _s.inters, v)
}

func (_s *BursaryApplicationSelect) sqlScan(ctx context.Context, root *BursaryApplicationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
