// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/predicate"
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportview"
	"BalaghAPI/ent/user"
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportViewQuery is the builder for querying ReportView entities.
type ReportViewQuery struct {
	config
	ctx        *QueryContext
	order      []reportview.OrderOption
	inters     []Interceptor
	predicates []predicate.ReportView
	withReport *ReportQuery
	withViewer *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReportViewQuery builder.
func (rvq *ReportViewQuery) Where(ps ...predicate.ReportView) *ReportViewQuery {
	rvq.predicates = append(rvq.predicates, ps...)
	return rvq
}

// Limit the number of records to be returned by this query.
func (rvq *ReportViewQuery) Limit(limit int) *ReportViewQuery {
	rvq.ctx.Limit = &limit
	return rvq
}

// Offset to start from.
func (rvq *ReportViewQuery) Offset(offset int) *ReportViewQuery {
	rvq.ctx.Offset = &offset
	return rvq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (rvq *ReportViewQuery) Unique(unique bool) *ReportViewQuery {
	rvq.ctx.Unique = &unique
	return rvq
}

// Order specifies how the records should be ordered.
func (rvq *ReportViewQuery) Order(o ...reportview.OrderOption) *ReportViewQuery {
	rvq.order = append(rvq.order, o...)
	return rvq
}

// QueryReport chains the current query on the "report" edge.
func (rvq *ReportViewQuery) QueryReport() *ReportQuery {
	query := (&ReportClient{config: rvq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := rvq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := rvq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reportview.Table, reportview.FieldID, selector),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportview.ReportTable, reportview.ReportColumn),
		)
		fromU = sqlgraph.SetNeighbors(rvq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryViewer chains the current query on the "viewer" edge.
func (rvq *ReportViewQuery) QueryViewer() *UserQuery {
	query := (&UserClient{config: rvq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := rvq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := rvq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reportview.Table, reportview.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportview.ViewerTable, reportview.ViewerColumn),
		)
		fromU = sqlgraph.SetNeighbors(rvq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ReportView entity from the query.
// Returns a *NotFoundError when no ReportView was found.
func (rvq *ReportViewQuery) First(ctx context.Context) (*ReportView, error) {
	nodes, err := rvq.Limit(1).All(setContextOp(ctx, rvq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{reportview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (rvq *ReportViewQuery) FirstX(ctx context.Context) *ReportView {
	node, err := rvq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReportView ID from the query.
// Returns a *NotFoundError when no ReportView ID was found.
func (rvq *ReportViewQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rvq.Limit(1).IDs(setContextOp(ctx, rvq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{reportview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (rvq *ReportViewQuery) FirstIDX(ctx context.Context) int {
	id, err := rvq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReportView entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReportView entity is found.
// Returns a *NotFoundError when no ReportView entities are found.
func (rvq *ReportViewQuery) Only(ctx context.Context) (*ReportView, error) {
	nodes, err := rvq.Limit(2).All(setContextOp(ctx, rvq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{reportview.Label}
	default:
		return nil, &NotSingularError{reportview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (rvq *ReportViewQuery) OnlyX(ctx context.Context) *ReportView {
	node, err := rvq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReportView ID in the query.
// Returns a *NotSingularError when more than one ReportView ID is found.
// Returns a *NotFoundError when no entities are found.
func (rvq *ReportViewQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rvq.Limit(2).IDs(setContextOp(ctx, rvq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{reportview.Label}
	default:
		err = &NotSingularError{reportview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (rvq *ReportViewQuery) OnlyIDX(ctx context.Context) int {
	id, err := rvq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReportViews.
func (rvq *ReportViewQuery) All(ctx context.Context) ([]*ReportView, error) {
	ctx = setContextOp(ctx, rvq.ctx, "All")
	if err := rvq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReportView, *ReportViewQuery]()
	return withInterceptors[[]*ReportView](ctx, rvq, qr, rvq.inters)
}

// AllX is like All, but panics if an error occurs.
func (rvq *ReportViewQuery) AllX(ctx context.Context) []*ReportView {
	nodes, err := rvq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReportView IDs.
func (rvq *ReportViewQuery) IDs(ctx context.Context) (ids []int, err error) {
	if rvq.ctx.Unique == nil && rvq.path != nil {
		rvq.Unique(true)
	}
	ctx = setContextOp(ctx, rvq.ctx, "IDs")
	if err = rvq.Select(reportview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (rvq *ReportViewQuery) IDsX(ctx context.Context) []int {
	ids, err := rvq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (rvq *ReportViewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, rvq.ctx, "Count")
	if err := rvq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, rvq, querierCount[*ReportViewQuery](), rvq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (rvq *ReportViewQuery) CountX(ctx context.Context) int {
	count, err := rvq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (rvq *ReportViewQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, rvq.ctx, "Exist")
	switch _, err := rvq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (rvq *ReportViewQuery) ExistX(ctx context.Context) bool {
	exist, err := rvq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReportViewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (rvq *ReportViewQuery) Clone() *ReportViewQuery {
	if rvq == nil {
		return nil
	}
	return &ReportViewQuery{
		config:     rvq.config,
		ctx:        rvq.ctx.Clone(),
		order:      append([]reportview.OrderOption{}, rvq.order...),
		inters:     append([]Interceptor{}, rvq.inters...),
		predicates: append([]predicate.ReportView{}, rvq.predicates...),
		withReport: rvq.withReport.Clone(),
		withViewer: rvq.withViewer.Clone(),
		// clone intermediate query.
		sql:  rvq.sql.Clone(),
		path: rvq.path,
	}
}

// WithReport tells the query-builder to eager-load the nodes that are connected to
// the "report" edge. The optional arguments are used to configure the query builder of the edge.
func (rvq *ReportViewQuery) WithReport(opts ...func(*ReportQuery)) *ReportViewQuery {
	query := (&ReportClient{config: rvq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	rvq.withReport = query
	return rvq
}

// WithViewer tells the query-builder to eager-load the nodes that are connected to
// the "viewer" edge. The optional arguments are used to configure the query builder of the edge.
func (rvq *ReportViewQuery) WithViewer(opts ...func(*UserQuery)) *ReportViewQuery {
	query := (&UserClient{config: rvq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	rvq.withViewer = query
	return rvq
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
//	client.ReportView.Query().
//		GroupBy(reportview.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (rvq *ReportViewQuery) GroupBy(field string, fields ...string) *ReportViewGroupBy {
	rvq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReportViewGroupBy{build: rvq}
	grbuild.flds = &rvq.ctx.Fields
	grbuild.label = reportview.Label
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
//	client.ReportView.Query().
//		Select(reportview.FieldCreatedAt).
//		Scan(ctx, &v)
func (rvq *ReportViewQuery) Select(fields ...string) *ReportViewSelect {
	rvq.ctx.Fields = append(rvq.ctx.Fields, fields...)
	sbuild := &ReportViewSelect{ReportViewQuery: rvq}
	sbuild.label = reportview.Label
	sbuild.flds, sbuild.scan = &rvq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReportViewSelect configured with the given aggregations.
func (rvq *ReportViewQuery) Aggregate(fns ...AggregateFunc) *ReportViewSelect {
	return rvq.Select().Aggregate(fns...)
}

func (rvq *ReportViewQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range rvq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, rvq); err != nil {
				return err
			}
		}
	}
	for _, f := range rvq.ctx.Fields {
		if !reportview.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if rvq.path != nil {
		prev, err := rvq.path(ctx)
		if err != nil {
			return err
		}
		rvq.sql = prev
	}
	return nil
}

func (rvq *ReportViewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReportView, error) {
	var (
		nodes       = []*ReportView{}
		_spec       = rvq.querySpec()
		loadedTypes = [2]bool{
			rvq.withReport != nil,
			rvq.withViewer != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReportView).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReportView{config: rvq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, rvq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := rvq.withReport; query != nil {
		if err := rvq.loadReport(ctx, query, nodes, nil,
			func(n *ReportView, e *Report) { n.Edges.Report = e }); err != nil {
			return nil, err
		}
	}
	if query := rvq.withViewer; query != nil {
		if err := rvq.loadViewer(ctx, query, nodes, nil,
			func(n *ReportView, e *User) { n.Edges.Viewer = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (rvq *ReportViewQuery) loadReport(ctx context.Context, query *ReportQuery, nodes []*ReportView, init func(*ReportView), assign func(*ReportView, *Report)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ReportView)
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
func (rvq *ReportViewQuery) loadViewer(ctx context.Context, query *UserQuery, nodes []*ReportView, init func(*ReportView), assign func(*ReportView, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ReportView)
	for i := range nodes {
		if nodes[i].UserID == nil {
			continue
		}
		fk := *nodes[i].UserID
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

func (rvq *ReportViewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := rvq.querySpec()
	_spec.Node.Columns = rvq.ctx.Fields
	if len(rvq.ctx.Fields) > 0 {
		_spec.Unique = rvq.ctx.Unique != nil && *rvq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, rvq.driver, _spec)
}

func (rvq *ReportViewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(reportview.Table, reportview.Columns, sqlgraph.NewFieldSpec(reportview.FieldID, field.TypeInt))
	_spec.From = rvq.sql
	if unique := rvq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if rvq.path != nil {
		_spec.Unique = true
	}
	if fields := rvq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportview.FieldID)
		for i := range fields {
			if fields[i] != reportview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if rvq.withReport != nil {
			_spec.Node.AddColumnOnce(reportview.FieldReportID)
		}
		if rvq.withViewer != nil {
			_spec.Node.AddColumnOnce(reportview.FieldUserID)
		}
	}
	if ps := rvq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := rvq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := rvq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := rvq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (rvq *ReportViewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(rvq.driver.Dialect())
	t1 := builder.Table(reportview.Table)
	columns := rvq.ctx.Fields
	if len(columns) == 0 {
		columns = reportview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if rvq.sql != nil {
		selector = rvq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if rvq.ctx.Unique != nil && *rvq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range rvq.predicates {
		p(selector)
	}
	for _, p := range rvq.order {
		p(selector)
	}
	if offset := rvq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := rvq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ReportViewGroupBy is the group-by builder for ReportView entities.
type ReportViewGroupBy struct {
	selector
	build *ReportViewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (rvgb *ReportViewGroupBy) Aggregate(fns ...AggregateFunc) *ReportViewGroupBy {
	rvgb.fns = append(rvgb.fns, fns...)
	return rvgb
}

// Scan applies the selector query and scans the result into the given value.
func (rvgb *ReportViewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rvgb.build.ctx, "GroupBy")
	if err := rvgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportViewQuery, *ReportViewGroupBy](ctx, rvgb.build, rvgb, rvgb.build.inters, v)
}

func (rvgb *ReportViewGroupBy) sqlScan(ctx context.Context, root *ReportViewQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(rvgb.fns))
	for _, fn := range rvgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*rvgb.flds)+len(rvgb.fns))
		for _, f := range *rvgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*rvgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rvgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ReportViewSelect is the builder for selecting fields of ReportView entities.
type ReportViewSelect struct {
	*ReportViewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (rvs *ReportViewSelect) Aggregate(fns ...AggregateFunc) *ReportViewSelect {
	rvs.fns = append(rvs.fns, fns...)
	return rvs
}

// Scan applies the selector query and scans the result into the given value.
func (rvs *ReportViewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rvs.ctx, "Select")
	if err := rvs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportViewQuery, *ReportViewSelect](ctx, rvs.ReportViewQuery, rvs, rvs.inters, v)
}

func (rvs *ReportViewSelect) sqlScan(ctx context.Context, root *ReportViewQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(rvs.fns))
	for _, fn := range rvs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*rvs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rvs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
