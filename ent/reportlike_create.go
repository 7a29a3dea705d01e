// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportlike"
	"BalaghAPI/ent/user"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportLikeCreate is the builder for creating a ReportLike entity.
type ReportLikeCreate struct {
	config
	mutation *ReportLikeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (rlc *ReportLikeCreate) SetCreatedAt(t time.Time) *ReportLikeCreate {
	rlc.mutation.SetCreatedAt(t)
	return rlc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rlc *ReportLikeCreate) SetNillableCreatedAt(t *time.Time) *ReportLikeCreate {
	if t != nil {
		rlc.SetCreatedAt(*t)
	}
	return rlc
}

// SetReportID sets the "report_id" field.
func (rlc *ReportLikeCreate) SetReportID(u uuid.UUID) *ReportLikeCreate {
	rlc.mutation.SetReportID(u)
	return rlc
}

// SetUserID sets the "user_id" field.
func (rlc *ReportLikeCreate) SetUserID(u uuid.UUID) *ReportLikeCreate {
	rlc.mutation.SetUserID(u)
	return rlc
}

// SetReport sets the "report" edge to the Report entity.
func (rlc *ReportLikeCreate) SetReport(r *Report) *ReportLikeCreate {
	return rlc.SetReportID(r.ID)
}

// SetUser sets the "user" edge to the User entity.
func (rlc *ReportLikeCreate) SetUser(u *User) *ReportLikeCreate {
	return rlc.SetUserID(u.ID)
}

// Mutation returns the ReportLikeMutation object of the builder.
func (rlc *ReportLikeCreate) Mutation() *ReportLikeMutation {
	return rlc.mutation
}

// Save creates the ReportLike in the database.
func (rlc *ReportLikeCreate) Save(ctx context.Context) (*ReportLike, error) {
	rlc.defaults()
	return withHooks(ctx, rlc.sqlSave, rlc.mutation, rlc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rlc *ReportLikeCreate) SaveX(ctx context.Context) *ReportLike {
	v, err := rlc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rlc *ReportLikeCreate) Exec(ctx context.Context) error {
	_, err := rlc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rlc *ReportLikeCreate) ExecX(ctx context.Context) {
	if err := rlc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rlc *ReportLikeCreate) defaults() {
	if _, ok := rlc.mutation.CreatedAt(); !ok {
		v := reportlike.DefaultCreatedAt()
		rlc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rlc *ReportLikeCreate) check() error {
	if _, ok := rlc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReportLike.created_at"`)}
	}
	if _, ok := rlc.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ReportLike.report_id"`)}
	}
	if _, ok := rlc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReportLike.user_id"`)}
	}
	if _, ok := rlc.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "ReportLike.report"`)}
	}
	if _, ok := rlc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "ReportLike.user"`)}
	}
	return nil
}

func (rlc *ReportLikeCreate) sqlSave(ctx context.Context) (*ReportLike, error) {
	if err := rlc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rlc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rlc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rlc.mutation.id = &_node.ID
	rlc.mutation.done = true
	return _node, nil
}

func (rlc *ReportLikeCreate) createSpec() (*ReportLike, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportLike{config: rlc.config}
		_spec = sqlgraph.NewCreateSpec(reportlike.Table, sqlgraph.NewFieldSpec(reportlike.FieldID, field.TypeInt))
	)
	if value, ok := rlc.mutation.CreatedAt(); ok {
		_spec.SetField(reportlike.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := rlc.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := rlc.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReportLikeCreateBulk is the builder for creating many ReportLike entities in bulk.
type ReportLikeCreateBulk struct {
	config
	err      error
	builders []*ReportLikeCreate
}

// Save creates the ReportLike entities in the database.
func (rlcb *ReportLikeCreateBulk) Save(ctx context.Context) ([]*ReportLike, error) {
	if rlcb.err != nil {
		return nil, rlcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rlcb.builders))
	nodes := make([]*ReportLike, len(rlcb.builders))
	mutators := make([]Mutator, len(rlcb.builders))
	for i := range rlcb.builders {
		func(i int, root context.Context) {
			builder := rlcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportLikeMutation)
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
					_, err = mutators[i+1].Mutate(root, rlcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rlcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rlcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rlcb *ReportLikeCreateBulk) SaveX(ctx context.Context) []*ReportLike {
	v, err := rlcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rlcb *ReportLikeCreateBulk) Exec(ctx context.Context) error {
	_, err := rlcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rlcb *ReportLikeCreateBulk) ExecX(ctx context.Context) {
	if err := rlcb.Exec(ctx); err != nil {
		panic(err)
	}
}
