// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/predicate"
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportview"
	"BalaghAPI/ent/user"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportViewUpdate is the builder for updating ReportView entities.
type ReportViewUpdate struct {
	config
	hooks    []Hook
	mutation *ReportViewMutation
}

// Where appends a list predicates to the ReportViewUpdate builder.
func (rvu *ReportViewUpdate) Where(ps ...predicate.ReportView) *ReportViewUpdate {
	rvu.mutation.Where(ps...)
	return rvu
}

// SetReportID sets the "report_id" field.
func (rvu *ReportViewUpdate) SetReportID(u uuid.UUID) *ReportViewUpdate {
	rvu.mutation.SetReportID(u)
	return rvu
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (rvu *ReportViewUpdate) SetNillableReportID(u *uuid.UUID) *ReportViewUpdate {
	if u != nil {
		rvu.SetReportID(*u)
	}
	return rvu
}

// SetUserID sets the "user_id" field.
func (rvu *ReportViewUpdate) SetUserID(u uuid.UUID) *ReportViewUpdate {
	rvu.mutation.SetUserID(u)
	return rvu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rvu *ReportViewUpdate) SetNillableUserID(u *uuid.UUID) *ReportViewUpdate {
	if u != nil {
		rvu.SetUserID(*u)
	}
	return rvu
}

// ClearUserID clears the value of the "user_id" field.
func (rvu *ReportViewUpdate) ClearUserID() *ReportViewUpdate {
	rvu.mutation.ClearUserID()
	return rvu
}

// SetReport sets the "report" edge to the Report entity.
func (rvu *ReportViewUpdate) SetReport(r *Report) *ReportViewUpdate {
	return rvu.SetReportID(r.ID)
}

// SetViewerID sets the "viewer" edge to the User entity by ID.
func (rvu *ReportViewUpdate) SetViewerID(id uuid.UUID) *ReportViewUpdate {
	rvu.mutation.SetViewerID(id)
	return rvu
}

// SetNillableViewerID sets the "viewer" edge to the User entity by ID if the given value is not nil.
func (rvu *ReportViewUpdate) SetNillableViewerID(id *uuid.UUID) *ReportViewUpdate {
	if id != nil {
		rvu = rvu.SetViewerID(*id)
	}
	return rvu
}

// SetViewer sets the "viewer" edge to the User entity.
func (rvu *ReportViewUpdate) SetViewer(u *User) *ReportViewUpdate {
	return rvu.SetViewerID(u.ID)
}

// Mutation returns the ReportViewMutation object of the builder.
func (rvu *ReportViewUpdate) Mutation() *ReportViewMutation {
	return rvu.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (rvu *ReportViewUpdate) ClearReport() *ReportViewUpdate {
	rvu.mutation.ClearReport()
	return rvu
}

// ClearViewer clears the "viewer" edge to the User entity.
func (rvu *ReportViewUpdate) ClearViewer() *ReportViewUpdate {
	rvu.mutation.ClearViewer()
	return rvu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rvu *ReportViewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, rvu.sqlSave, rvu.mutation, rvu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rvu *ReportViewUpdate) SaveX(ctx context.Context) int {
	affected, err := rvu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rvu *ReportViewUpdate) Exec(ctx context.Context) error {
	_, err := rvu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rvu *ReportViewUpdate) ExecX(ctx context.Context) {
	if err := rvu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rvu *ReportViewUpdate) check() error {
	if _, ok := rvu.mutation.ReportID(); rvu.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReportView.report"`)
	}
	return nil
}

func (rvu *ReportViewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := rvu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportview.Table, reportview.Columns, sqlgraph.NewFieldSpec(reportview.FieldID, field.TypeInt))
	if ps := rvu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if rvu.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportview.ReportTable,
			Columns: []string{reportview.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rvu.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportview.ReportTable,
			Columns: []string{reportview.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if rvu.mutation.ViewerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportview.ViewerTable,
			Columns: []string{reportview.ViewerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rvu.mutation.ViewerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportview.ViewerTable,
			Columns: []string{reportview.ViewerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, rvu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rvu.mutation.done = true
	return n, nil
}

// ReportViewUpdateOne is the builder for updating a single ReportView entity.
type ReportViewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportViewMutation
}

// SetReportID sets the "report_id" field.
func (rvuo *ReportViewUpdateOne) SetReportID(u uuid.UUID) *ReportViewUpdateOne {
	rvuo.mutation.SetReportID(u)
	return rvuo
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (rvuo *ReportViewUpdateOne) SetNillableReportID(u *uuid.UUID) *ReportViewUpdateOne {
	if u != nil {
		rvuo.SetReportID(*u)
	}
	return rvuo
}

// SetUserID sets the "user_id" field.
func (rvuo *ReportViewUpdateOne) SetUserID(u uuid.UUID) *ReportViewUpdateOne {
	rvuo.mutation.SetUserID(u)
	return rvuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rvuo *ReportViewUpdateOne) SetNillableUserID(u *uuid.UUID) *ReportViewUpdateOne {
	if u != nil {
		rvuo.SetUserID(*u)
	}
	return rvuo
}

// ClearUserID clears the value of the "user_id" field.
func (rvuo *ReportViewUpdateOne) ClearUserID() *ReportViewUpdateOne {
	rvuo.mutation.ClearUserID()
	return rvuo
}

// SetReport sets the "report" edge to the Report entity.
func (rvuo *ReportViewUpdateOne) SetReport(r *Report) *ReportViewUpdateOne {
	return rvuo.SetReportID(r.ID)
}

// SetViewerID sets the "viewer" edge to the User entity by ID.
func (rvuo *ReportViewUpdateOne) SetViewerID(id uuid.UUID) *ReportViewUpdateOne {
	rvuo.mutation.SetViewerID(id)
	return rvuo
}

// SetNillableViewerID sets the "viewer" edge to the User entity by ID if the given value is not nil.
func (rvuo *ReportViewUpdateOne) SetNillableViewerID(id *uuid.UUID) *ReportViewUpdateOne {
	if id != nil {
		rvuo = rvuo.SetViewerID(*id)
	}
	return rvuo
}

// SetViewer sets the "viewer" edge to the User entity.
func (rvuo *ReportViewUpdateOne) SetViewer(u *User) *ReportViewUpdateOne {
	return rvuo.SetViewerID(u.ID)
}

// Mutation returns the ReportViewMutation object of the builder.
func (rvuo *ReportViewUpdateOne) Mutation() *ReportViewMutation {
	return rvuo.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (rvuo *ReportViewUpdateOne) ClearReport() *ReportViewUpdateOne {
	rvuo.mutation.ClearReport()
	return rvuo
}

// ClearViewer clears the "viewer" edge to the User entity.
func (rvuo *ReportViewUpdateOne) ClearViewer() *ReportViewUpdateOne {
	rvuo.mutation.ClearViewer()
	return rvuo
}

// Where appends a list predicates to the ReportViewUpdate builder.
func (rvuo *ReportViewUpdateOne) Where(ps ...predicate.ReportView) *ReportViewUpdateOne {
	rvuo.mutation.Where(ps...)
	return rvuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rvuo *ReportViewUpdateOne) Select(field string, fields ...string) *ReportViewUpdateOne {
	rvuo.fields = append([]string{field}, fields...)
	return rvuo
}

// Save executes the query and returns the updated ReportView entity.
func (rvuo *ReportViewUpdateOne) Save(ctx context.Context) (*ReportView, error) {
	return withHooks(ctx, rvuo.sqlSave, rvuo.mutation, rvuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rvuo *ReportViewUpdateOne) SaveX(ctx context.Context) *ReportView {
	node, err := rvuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rvuo *ReportViewUpdateOne) Exec(ctx context.Context) error {
	_, err := rvuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rvuo *ReportViewUpdateOne) ExecX(ctx context.Context) {
	if err := rvuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rvuo *ReportViewUpdateOne) check() error {
	if _, ok := rvuo.mutation.ReportID(); rvuo.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReportView.report"`)
	}
	return nil
}

func (rvuo *ReportViewUpdateOne) sqlSave(ctx context.Context) (_node *ReportView, err error) {
	if err := rvuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportview.Table, reportview.Columns, sqlgraph.NewFieldSpec(reportview.FieldID, field.TypeInt))
	id, ok := rvuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportView.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rvuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportview.FieldID)
		for _, f := range fields {
			if !reportview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rvuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if rvuo.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportview.ReportTable,
			Columns: []string{reportview.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rvuo.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportview.ReportTable,
			Columns: []string{reportview.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if rvuo.mutation.ViewerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportview.ViewerTable,
			Columns: []string{reportview.ViewerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rvuo.mutation.ViewerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportview.ViewerTable,
			Columns: []string{reportview.ViewerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReportView{config: rvuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rvuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rvuo.mutation.done = true
	return _node, nil
}
