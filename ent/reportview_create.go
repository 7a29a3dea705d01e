// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportview"
	"BalaghAPI/ent/user"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportViewCreate is the builder for creating a ReportView entity.
type ReportViewCreate struct {
	config
	mutation *ReportViewMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (rvc *ReportViewCreate) SetCreatedAt(t time.Time) *ReportViewCreate {
	rvc.mutation.SetCreatedAt(t)
	return rvc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rvc *ReportViewCreate) SetNillableCreatedAt(t *time.Time) *ReportViewCreate {
	if t != nil {
		rvc.SetCreatedAt(*t)
	}
	return rvc
}

// SetReportID sets the "report_id" field.
func (rvc *ReportViewCreate) SetReportID(u uuid.UUID) *ReportViewCreate {
	rvc.mutation.SetReportID(u)
	return rvc
}

// SetUserID sets the "user_id" field.
func (rvc *ReportViewCreate) SetUserID(u uuid.UUID) *ReportViewCreate {
	rvc.mutation.SetUserID(u)
	return rvc
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rvc *ReportViewCreate) SetNillableUserID(u *uuid.UUID) *ReportViewCreate {
	if u != nil {
		rvc.SetUserID(*u)
	}
	return rvc
}

// SetReport sets the "report" edge to the Report entity.
func (rvc *ReportViewCreate) SetReport(r *Report) *ReportViewCreate {
	return rvc.SetReportID(r.ID)
}

// SetViewerID sets the "viewer" edge to the User entity by ID.
func (rvc *ReportViewCreate) SetViewerID(id uuid.UUID) *ReportViewCreate {
	rvc.mutation.SetViewerID(id)
	return rvc
}

// SetNillableViewerID sets the "viewer" edge to the User entity by ID if the given value is not nil.
func (rvc *ReportViewCreate) SetNillableViewerID(id *uuid.UUID) *ReportViewCreate {
	if id != nil {
		rvc = rvc.SetViewerID(*id)
	}
	return rvc
}

// SetViewer sets the "viewer" edge to the User entity.
func (rvc *ReportViewCreate) SetViewer(u *User) *ReportViewCreate {
	return rvc.SetViewerID(u.ID)
}

// Mutation returns the ReportViewMutation object of the builder.
func (rvc *ReportViewCreate) Mutation() *ReportViewMutation {
	return rvc.mutation
}

// Save creates the ReportView in the database.
func (rvc *ReportViewCreate) Save(ctx context.Context) (*ReportView, error) {
	rvc.defaults()
	return withHooks(ctx, rvc.sqlSave, rvc.mutation, rvc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rvc *ReportViewCreate) SaveX(ctx context.Context) *ReportView {
	v, err := rvc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rvc *ReportViewCreate) Exec(ctx context.Context) error {
	_, err := rvc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rvc *ReportViewCreate) ExecX(ctx context.Context) {
	if err := rvc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rvc *ReportViewCreate) defaults() {
	if _, ok := rvc.mutation.CreatedAt(); !ok {
		v := reportview.DefaultCreatedAt()
		rvc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rvc *ReportViewCreate) check() error {
	if _, ok := rvc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReportView.created_at"`)}
	}
	if _, ok := rvc.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ReportView.report_id"`)}
	}
	if _, ok := rvc.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "ReportView.report"`)}
	}
	return nil
}

func (rvc *ReportViewCreate) sqlSave(ctx context.Context) (*ReportView, error) {
	if err := rvc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rvc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rvc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rvc.mutation.id = &_node.ID
	rvc.mutation.done = true
	return _node, nil
}

func (rvc *ReportViewCreate) createSpec() (*ReportView, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportView{config: rvc.config}
		_spec = sqlgraph.NewCreateSpec(reportview.Table, sqlgraph.NewFieldSpec(reportview.FieldID, field.TypeInt))
	)
	if value, ok := rvc.mutation.CreatedAt(); ok {
		_spec.SetField(reportview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := rvc.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := rvc.mutation.ViewerIDs(); len(nodes) > 0 {
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
		_node.UserID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReportViewCreateBulk is the builder for creating many ReportView entities in bulk.
type ReportViewCreateBulk struct {
	config
	err      error
	builders []*ReportViewCreate
}

// Save creates the ReportView entities in the database.
func (rvcb *ReportViewCreateBulk) Save(ctx context.Context) ([]*ReportView, error) {
	if rvcb.err != nil {
		return nil, rvcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rvcb.builders))
	nodes := make([]*ReportView, len(rvcb.builders))
	mutators := make([]Mutator, len(rvcb.builders))
	for i := range rvcb.builders {
		func(i int, root context.Context) {
			builder := rvcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportViewMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, rvcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rvcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, rvcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rvcb *ReportViewCreateBulk) SaveX(ctx context.Context) []*ReportView {
	v, err := rvcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rvcb *ReportViewCreateBulk) Exec(ctx context.Context) error {
	_, err := rvcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rvcb *ReportViewCreateBulk) ExecX(ctx context.Context) {
	if err := rvcb.Exec(ctx); err != nil {
		panic(err)
	}
}
