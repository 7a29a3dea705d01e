// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/predicate"
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportlike"
	"BalaghAPI/ent/user"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportLikeUpdate is the builder for updating ReportLike entities.
type ReportLikeUpdate struct {
	config
	hooks    []Hook
	mutation *ReportLikeMutation
}

// Where appends a list predicates to the ReportLikeUpdate builder.
func (rlu *ReportLikeUpdate) Where(ps ...predicate.ReportLike) *ReportLikeUpdate {
	rlu.mutation.Where(ps...)
	return rlu
}

// SetReportID sets the "report_id" field.
func (rlu *ReportLikeUpdate) SetReportID(u uuid.UUID) *ReportLikeUpdate {
	rlu.mutation.SetReportID(u)
	return rlu
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (rlu *ReportLikeUpdate) SetNillableReportID(u *uuid.UUID) *ReportLikeUpdate {
	if u != nil {
		rlu.SetReportID(*u)
	}
	return rlu
}

// SetUserID sets the "user_id" field.
func (rlu *ReportLikeUpdate) SetUserID(u uuid.UUID) *ReportLikeUpdate {
	rlu.mutation.SetUserID(u)
	return rlu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rlu *ReportLikeUpdate) SetNillableUserID(u *uuid.UUID) *ReportLikeUpdate {
	if u != nil {
		rlu.SetUserID(*u)
	}
	return rlu
}

// SetReport sets the "report" edge to the Report entity.
func (rlu *ReportLikeUpdate) SetReport(r *Report) *ReportLikeUpdate {
	return rlu.SetReportID(r.ID)
}

// SetUser sets the "user" edge to the User entity.
func (rlu *ReportLikeUpdate) SetUser(u *User) *ReportLikeUpdate {
	return rlu.SetUserID(u.ID)
}

// Mutation returns the ReportLikeMutation object of the builder.
func (rlu *ReportLikeUpdate) Mutation() *ReportLikeMutation {
	return rlu.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (rlu *ReportLikeUpdate) ClearReport() *ReportLikeUpdate {
	rlu.mutation.ClearReport()
	return rlu
}

// ClearUser clears the "user" edge to the User entity.
func (rlu *ReportLikeUpdate) ClearUser() *ReportLikeUpdate {
	rlu.mutation.ClearUser()
	return rlu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rlu *ReportLikeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, rlu.sqlSave, rlu.mutation, rlu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rlu *ReportLikeUpdate) SaveX(ctx context.Context) int {
	affected, err := rlu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rlu *ReportLikeUpdate) Exec(ctx context.Context) error {
	_, err := rlu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rlu *ReportLikeUpdate) ExecX(ctx context.Context) {
	if err := rlu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rlu *ReportLikeUpdate) check() error {
	if _, ok := rlu.mutation.ReportID(); rlu.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReportLike.report"`)
	}
	if _, ok := rlu.mutation.UserID(); rlu.mutation.UserCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReportLike.user"`)
	}
	return nil
}

func (rlu *ReportLikeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := rlu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportlike.Table, reportlike.Columns, sqlgraph.NewFieldSpec(reportlike.FieldID, field.TypeInt))
	if ps := rlu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if rlu.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportlike.ReportTable,
			Columns: []string{reportlike.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rlu.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportlike.ReportTable,
			Columns: []string{reportlike.ReportColumn},
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
	if rlu.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportlike.UserTable,
			Columns: []string{reportlike.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rlu.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportlike.UserTable,
			Columns: []string{reportlike.UserColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, rlu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportlike.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rlu.mutation.done = true
	return n, nil
}

// ReportLikeUpdateOne is the builder for updating a single ReportLike entity.
type ReportLikeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportLikeMutation
}

// SetReportID sets the "report_id" field.
func (rluo *ReportLikeUpdateOne) SetReportID(u uuid.UUID) *ReportLikeUpdateOne {
	rluo.mutation.SetReportID(u)
	return rluo
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (rluo *ReportLikeUpdateOne) SetNillableReportID(u *uuid.UUID) *ReportLikeUpdateOne {
	if u != nil {
		rluo.SetReportID(*u)
	}
	return rluo
}

// SetUserID sets the "user_id" field.
func (rluo *ReportLikeUpdateOne) SetUserID(u uuid.UUID) *ReportLikeUpdateOne {
	rluo.mutation.SetUserID(u)
	return rluo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rluo *ReportLikeUpdateOne) SetNillableUserID(u *uuid.UUID) *ReportLikeUpdateOne {
	if u != nil {
		rluo.SetUserID(*u)
	}
	return rluo
}

// SetReport sets the "report" edge to the Report entity.
func (rluo *ReportLikeUpdateOne) SetReport(r *Report) *ReportLikeUpdateOne {
	return rluo.SetReportID(r.ID)
}

// SetUser sets the "user" edge to the User entity.
func (rluo *ReportLikeUpdateOne) SetUser(u *User) *ReportLikeUpdateOne {
	return rluo.SetUserID(u.ID)
}

// Mutation returns the ReportLikeMutation object of the builder.
func (rluo *ReportLikeUpdateOne) Mutation() *ReportLikeMutation {
	return rluo.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (rluo *ReportLikeUpdateOne) ClearReport() *ReportLikeUpdateOne {
	rluo.mutation.ClearReport()
	return rluo
}

// ClearUser clears the "user" edge to the User entity.
func (rluo *ReportLikeUpdateOne) ClearUser() *ReportLikeUpdateOne {
	rluo.mutation.ClearUser()
	return rluo
}

// Where appends a list predicates to the ReportLikeUpdate builder.
func (rluo *ReportLikeUpdateOne) Where(ps ...predicate.ReportLike) *ReportLikeUpdateOne {
	rluo.mutation.Where(ps...)
	return rluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rluo *ReportLikeUpdateOne) Select(field string, fields ...string) *ReportLikeUpdateOne {
	rluo.fields = append([]string{field}, fields...)
	return rluo
}

// Save executes the query and returns the updated ReportLike entity.
func (rluo *ReportLikeUpdateOne) Save(ctx context.Context) (*ReportLike, error) {
	return withHooks(ctx, rluo.sqlSave, rluo.mutation, rluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rluo *ReportLikeUpdateOne) SaveX(ctx context.Context) *ReportLike {
	node, err := rluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rluo *ReportLikeUpdateOne) Exec(ctx context.Context) error {
	_, err := rluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rluo *ReportLikeUpdateOne) ExecX(ctx context.Context) {
	if err := rluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rluo *ReportLikeUpdateOne) check() error {
	if _, ok := rluo.mutation.ReportID(); rluo.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReportLike.report"`)
	}
	if _, ok := rluo.mutation.UserID(); rluo.mutation.UserCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReportLike.user"`)
	}
	return nil
}

func (rluo *ReportLikeUpdateOne) sqlSave(ctx context.Context) (_node *ReportLike, err error) {
	if err := rluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportlike.Table, reportlike.Columns, sqlgraph.NewFieldSpec(reportlike.FieldID, field.TypeInt))
	id, ok := rluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportLike.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportlike.FieldID)
		for _, f := range fields {
			if !reportlike.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportlike.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if rluo.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportlike.ReportTable,
			Columns: []string{reportlike.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rluo.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportlike.ReportTable,
			Columns: []string{reportlike.ReportColumn},
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
	if rluo.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportlike.UserTable,
			Columns: []string{reportlike.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rluo.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportlike.UserTable,
			Columns: []string{reportlike.UserColumn},
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
	_node = &ReportLike{config: rluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportlike.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rluo.mutation.done = true
	return _node, nil
}
