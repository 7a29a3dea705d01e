// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/predicate"
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportlike"
	"BalaghAPI/ent/user"
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportLikeQuery is the builder for querying ReportLike entities.
type ReportLikeQuery struct {
	config
	ctx        *QueryContext
	order      []reportlike.OrderOption
	inters     []Interceptor
	predicates []predicate.ReportLike
	withReport *ReportQuery
	withUser   *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReportLikeQuery builder.
func (rlq *ReportLikeQuery) Where(ps ...predicate.ReportLike) *ReportLikeQuery {
	rlq.predicates = append(rlq.predicates, ps...)
	return rlq
}

// Limit the number of records to be returned by this query.
func (rlq *ReportLikeQuery) Limit(limit int) *ReportLikeQuery {
	rlq.ctx.Limit = &limit
	return rlq
}

// Offset to start from.
func (rlq *ReportLikeQuery) Offset(offset int) *ReportLikeQuery {
	rlq.ctx.Offset = &offset
	return rlq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (rlq *ReportLikeQuery) Unique(unique bool) *ReportLikeQuery {
	rlq.ctx.Unique = &unique
	return rlq
}

// Order specifies how the records should be ordered.
func (rlq *ReportLikeQuery) Order(o ...reportlike.OrderOption) *ReportLikeQuery {
	rlq.order = append(rlq.order, o...)
	return rlq
}

// QueryReport chains the current query on the "report" edge.
func (rlq *ReportLikeQuery) QueryReport() *ReportQuery {
	query := (&ReportClient{config: rlq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := rlq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := rlq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reportlike.Table, reportlike.FieldID, selector),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportlike.ReportTable, reportlike.ReportColumn),
		)
		fromU = sqlgraph.SetNeighbors(rlq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUser chains the current query on the "user" edge.
func (rlq *ReportLikeQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: rlq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := rlq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := rlq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reportlike.Table, reportlike.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportlike.UserTable, reportlike.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(rlq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ReportLike entity from the query.
// Returns a *NotFoundError when no ReportLike was found.
func (rlq *ReportLikeQuery) First(ctx context.Context) (*ReportLike, error) {
	nodes, err := rlq.Limit(1).All(setContextOp(ctx, rlq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{reportlike.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (rlq *ReportLikeQuery) FirstX(ctx context.Context) *ReportLike {
	node, err := rlq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReportLike ID from the query.
// Returns a *NotFoundError when no ReportLike ID was found.
func (rlq *ReportLikeQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rlq.Limit(1).IDs(setContextOp(ctx, rlq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{reportlike.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (rlq *ReportLikeQuery) FirstIDX(ctx context.Context) int {
	id, err := rlq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReportLike entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReportLike entity is found.
// Returns a *NotFoundError when no ReportLike entities are found.
func (rlq *ReportLikeQuery) Only(ctx context.Context) (*ReportLike, error) {
	nodes, err := rlq.Limit(2).All(setContextOp(ctx, rlq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{reportlike.Label}
	default:
		return nil, &NotSingularError{reportlike.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (rlq *ReportLikeQuery) OnlyX(ctx context.Context) *ReportLike {
	node, err := rlq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReportLike ID in the query.
// Returns a *NotSingularError when more than one ReportLike ID is found.
// Returns a *NotFoundError when no entities are found.
func (rlq *ReportLikeQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rlq.Limit(2).IDs(setContextOp(ctx, rlq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{reportlike.Label}
	default:
		err = &NotSingularError{reportlike.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (rlq *ReportLikeQuery) OnlyIDX(ctx context.Context) int {
	id, err := rlq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReportLikes.
func (rlq *ReportLikeQuery) All(ctx context.Context) ([]*ReportLike, error) {
	ctx = setContextOp(ctx, rlq.ctx, "All")
	if err := rlq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReportLike, *ReportLikeQuery]()
	return withInterceptors[[]*ReportLike](ctx, rlq, qr, rlq.inters)
}

// AllX is like All, but panics if an error occurs.
func (rlq *ReportLikeQuery) AllX(ctx context.Context) []*ReportLike {
	nodes, err := rlq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReportLike IDs.
func (rlq *ReportLikeQuery) IDs(ctx context.Context) (ids []int, err error) {
	if rlq.ctx.Unique == nil && rlq.path != nil {
		rlq.Unique(true)
	}
	ctx = setContextOp(ctx, rlq.ctx, "IDs")
	if err = rlq.Select(reportlike.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (rlq *ReportLikeQuery) IDsX(ctx context.Context) []int {
	ids, err := rlq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (rlq *ReportLikeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, rlq.ctx, "Count")
	if err := rlq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, rlq, querierCount[*ReportLikeQuery](), rlq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (rlq *ReportLikeQuery) CountX(ctx context.Context) int {
	count, err := rlq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (rlq *ReportLikeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, rlq.ctx, "Exist")
	switch _, err := rlq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (rlq *ReportLikeQuery) ExistX(ctx context.Context) bool {
	exist, err := rlq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReportLikeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (rlq *ReportLikeQuery) Clone() *ReportLikeQuery {
	if rlq == nil {
		return nil
	}
	return &ReportLikeQuery{
		config:     rlq.config,
		ctx:        rlq.ctx.Clone(),
		order:      append([]reportlike.OrderOption{}, rlq.order...),
		inters:     append([]Interceptor{}, rlq.inters...),
		predicates: append([]predicate.ReportLike{}, rlq.predicates...),
		withReport: rlq.withReport.Clone(),
		withUser:   rlq.withUser.Clone(),
		// clone intermediate query.
		sql:  rlq.sql.Clone(),
		path: rlq.path,
	}
}

// WithReport tells the query-builder to eager-load the nodes that are connected to
// the "report" edge. The optional arguments are used to configure the query builder of the edge.
func (rlq *ReportLikeQuery) WithReport(opts ...func(*ReportQuery)) *ReportLikeQuery {
	query := (&ReportClient{config: rlq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	rlq.withReport = query
	return rlq
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (rlq *ReportLikeQuery) WithUser(opts ...func(*UserQuery)) *ReportLikeQuery {
	query := (&UserClient{config: rlq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	rlq.withUser = query
	return rlq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReportLike.Query().
//		GroupBy(reportlike.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (rlq *ReportLikeQuery) GroupBy(field string, fields ...string) *ReportLikeGroupBy {
	rlq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReportLikeGroupBy{build: rlq}
	grbuild.flds = &rlq.ctx.Fields
	grbuild.label = reportlike.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.ReportLike.Query().
//		Select(reportlike.FieldCreatedAt).
//		Scan(ctx, &v)
func (rlq *ReportLikeQuery) Select(fields ...string) *ReportLikeSelect {
	rlq.ctx.Fields = append(rlq.ctx.Fields, fields...)
	sbuild := &ReportLikeSelect{ReportLikeQuery: rlq}
	sbuild.label = reportlike.Label
	sbuild.flds, sbuild.scan = &rlq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReportLikeSelect configured with the given aggregations.
func (rlq *ReportLikeQuery) Aggregate(fns ...AggregateFunc) *ReportLikeSelect {
	return rlq.Select().Aggregate(fns...)
}

func (rlq *ReportLikeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range rlq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, rlq); err != nil {
				return err
			}
		}
	}
	for _, f := range rlq.ctx.Fields {
		if !reportlike.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if rlq.path != nil {
		prev, err := rlq.path(ctx)
		if err != nil {
			return err
		}
		rlq.sql = prev
	}
	return nil
}

func (rlq *ReportLikeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReportLike, error) {
	var (
		nodes       = []*ReportLike{}
		_spec       = rlq.querySpec()
		loadedTypes = [2]bool{
			rlq.withReport != nil,
			rlq.withUser != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReportLike).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReportLike{config: rlq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, rlq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := rlq.withReport; query != nil {
		if err := rlq.loadReport(ctx, query, nodes, nil,
			func(n *ReportLike, e *Report) { n.Edges.Report = e }); err != nil {
			return nil, err
		}
	}
	if query := rlq.withUser; query != nil {
		if err := rlq.loadUser(ctx, query, nodes, nil,
			func(n *ReportLike, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (rlq *ReportLikeQuery) loadReport(ctx context.Context, query *ReportQuery, nodes []*ReportLike, init func(*ReportLike), assign func(*ReportLike, *Report)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ReportLike)
	for i := range nodes {
		fk := nodes[i].ReportID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(report.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "report_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (rlq *ReportLikeQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*ReportLike, init func(*ReportLike), assign func(*ReportLike, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ReportLike)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (rlq *ReportLikeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := rlq.querySpec()
	_spec.Node.Columns = rlq.ctx.Fields
	if len(rlq.ctx.Fields) > 0 {
		_spec.Unique = rlq.ctx.Unique != nil && *rlq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, rlq.driver, _spec)
}

func (rlq *ReportLikeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(reportlike.Table, reportlike.Columns, sqlgraph.NewFieldSpec(reportlike.FieldID, field.TypeInt))
	_spec.From = rlq.sql
	if unique := rlq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if rlq.path != nil {
		_spec.Unique = true
	}
	if fields := rlq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportlike.FieldID)
		for i := range fields {
			if fields[i] != reportlike.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if rlq.withReport != nil {
			_spec.Node.AddColumnOnce(reportlike.FieldReportID)
		}
		if rlq.withUser != nil {
			_spec.Node.AddColumnOnce(reportlike.FieldUserID)
		}
	}
	if ps := rlq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := rlq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := rlq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := rlq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (rlq *ReportLikeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(rlq.driver.Dialect())
	t1 := builder.Table(reportlike.Table)
	columns := rlq.ctx.Fields
	if len(columns) == 0 {
		columns = reportlike.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if rlq.sql != nil {
		selector = rlq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if rlq.ctx.Unique != nil && *rlq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range rlq.predicates {
		p(selector)
	}
	for _, p := range rlq.order {
		p(selector)
	}
	if offset := rlq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := rlq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ReportLikeGroupBy is the group-by builder for ReportLike entities.
type ReportLikeGroupBy struct {
	selector
	build *ReportLikeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (rlgb *ReportLikeGroupBy) Aggregate(fns ...AggregateFunc) *ReportLikeGroupBy {
	rlgb.fns = append(rlgb.fns, fns...)
	return rlgb
}

// Scan applies the selector query and scans the result into the given value.
func (rlgb *ReportLikeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rlgb.build.ctx, "GroupBy")
	if err := rlgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportLikeQuery, *ReportLikeGroupBy](ctx, rlgb.build, rlgb, rlgb.build.inters, v)
}

func (rlgb *ReportLikeGroupBy) sqlScan(ctx context.Context, root *ReportLikeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(rlgb.fns))
	for _, fn := range rlgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*rlgb.flds)+len(rlgb.fns))
		for _, f := range *rlgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*rlgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rlgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ReportLikeSelect is the builder for selecting fields of ReportLike entities.
type ReportLikeSelect struct {
	*ReportLikeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (rls *ReportLikeSelect) Aggregate(fns ...AggregateFunc) *ReportLikeSelect {
	rls.fns = append(rls.fns, fns...)
	return rls
}

// Scan applies the selector query and scans the result into the given value.
func (rls *ReportLikeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rls.ctx, "Select")
	if err := rls.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportLikeQuery, *ReportLikeSelect](ctx, rls.ReportLikeQuery, rls, rls.inters, v)
}

func (rls *ReportLikeSelect) sqlScan(ctx context.Context, root *ReportLikeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(rls.fns))
	for _, fn := range rls.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*rls.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rls.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
