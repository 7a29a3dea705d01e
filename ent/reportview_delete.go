// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/predicate"
	"BalaghAPI/ent/reportview"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ReportViewDelete is the builder for deleting a ReportView entity.
type ReportViewDelete struct {
	config
	hooks    []Hook
	mutation *ReportViewMutation
}

// Where appends a list predicates to the ReportViewDelete builder.
func (rvd *ReportViewDelete) Where(ps ...predicate.ReportView) *ReportViewDelete {
	rvd.mutation.Where(ps...)
	return rvd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (rvd *ReportViewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, rvd.sqlExec, rvd.mutation, rvd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (rvd *ReportViewDelete) ExecX(ctx context.Context) int {
	n, err := rvd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (rvd *ReportViewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reportview.Table, sqlgraph.NewFieldSpec(reportview.FieldID, field.TypeInt))
	if ps := rvd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, rvd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	rvd.mutation.done = true
	return affected, err
}

// ReportViewDeleteOne is the builder for deleting a single ReportView entity.
type ReportViewDeleteOne struct {
	rvd *ReportViewDelete
}

// Where appends a list predicates to the ReportViewDelete builder.
func (rvdo *ReportViewDeleteOne) Where(ps ...predicate.ReportView) *ReportViewDeleteOne {
	rvdo.rvd.mutation.Where(ps...)
	return rvdo
}

// Exec executes the deletion query.
func (rvdo *ReportViewDeleteOne) Exec(ctx context.Context) error {
	n, err := rvdo.rvd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reportview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rvdo *ReportViewDeleteOne) ExecX(ctx context.Context) {
	if err := rvdo.Exec(ctx); err != nil {
		panic(err)
	}
}
