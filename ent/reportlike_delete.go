// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/predicate"
	"BalaghAPI/ent/reportlike"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ReportLikeDelete is the builder for deleting a ReportLike entity.
type ReportLikeDelete struct {
	config
	hooks    []Hook
	mutation *ReportLikeMutation
}

// Where appends a list predicates to the ReportLikeDelete builder.
func (rld *ReportLikeDelete) Where(ps ...predicate.ReportLike) *ReportLikeDelete {
	rld.mutation.Where(ps...)
	return rld
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (rld *ReportLikeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, rld.sqlExec, rld.mutation, rld.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (rld *ReportLikeDelete) ExecX(ctx context.Context) int {
	n, err := rld.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (rld *ReportLikeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reportlike.Table, sqlgraph.NewFieldSpec(reportlike.FieldID, field.TypeInt))
	if ps := rld.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, rld.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	rld.mutation.done = true
	return affected, err
}

// ReportLikeDeleteOne is the builder for deleting a single ReportLike entity.
type ReportLikeDeleteOne struct {
	rld *ReportLikeDelete
}

// Where appends a list predicates to the ReportLikeDelete builder.
func (rldo *ReportLikeDeleteOne) Where(ps ...predicate.ReportLike) *ReportLikeDeleteOne {
	rldo.rld.mutation.Where(ps...)
	return rldo
}

// Exec executes the deletion query.
func (rldo *ReportLikeDeleteOne) Exec(ctx context.Context) error {
	n, err := rldo.rld.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reportlike.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rldo *ReportLikeDeleteOne) ExecX(ctx context.Context) {
	if err := rldo.Exec(ctx); err != nil {
		panic(err)
	}
}
