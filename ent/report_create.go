// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportlike"
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

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (rc *ReportCreate) SetCreatedAt(t time.Time) *ReportCreate {
	rc.mutation.SetCreatedAt(t)
	return rc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rc *ReportCreate) SetNillableCreatedAt(t *time.Time) *ReportCreate {
	if t != nil {
		rc.SetCreatedAt(*t)
	}
	return rc
}

// SetUpdatedAt sets the "updated_at" field.
func (rc *ReportCreate) SetUpdatedAt(t time.Time) *ReportCreate {
	rc.mutation.SetUpdatedAt(t)
	return rc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (rc *ReportCreate) SetNillableUpdatedAt(t *time.Time) *ReportCreate {
	if t != nil {
		rc.SetUpdatedAt(*t)
	}
	return rc
}

// SetTitle sets the "title" field.
func (rc *ReportCreate) SetTitle(s string) *ReportCreate {
	rc.mutation.SetTitle(s)
	return rc
}

// SetDescription sets the "description" field.
func (rc *ReportCreate) SetDescription(s string) *ReportCreate {
	rc.mutation.SetDescription(s)
	return rc
}

// SetCategory sets the "category" field.
func (rc *ReportCreate) SetCategory(r report.Category) *ReportCreate {
	rc.mutation.SetCategory(r)
	return rc
}

// SetLocation sets the "location" field.
func (rc *ReportCreate) SetLocation(s string) *ReportCreate {
	rc.mutation.SetLocation(s)
	return rc
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (rc *ReportCreate) SetNillableLocation(s *string) *ReportCreate {
	if s != nil {
		rc.SetLocation(*s)
	}
	return rc
}

// SetLatitude sets the "latitude" field.
func (rc *ReportCreate) SetLatitude(f float64) *ReportCreate {
	rc.mutation.SetLatitude(f)
	return rc
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (rc *ReportCreate) SetNillableLatitude(f *float64) *ReportCreate {
	if f != nil {
		rc.SetLatitude(*f)
	}
	return rc
}

// SetLongitude sets the "longitude" field.
func (rc *ReportCreate) SetLongitude(f float64) *ReportCreate {
	rc.mutation.SetLongitude(f)
	return rc
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (rc *ReportCreate) SetNillableLongitude(f *float64) *ReportCreate {
	if f != nil {
		rc.SetLongitude(*f)
	}
	return rc
}

// SetRegion sets the "region" field.
func (rc *ReportCreate) SetRegion(s string) *ReportCreate {
	rc.mutation.SetRegion(s)
	return rc
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (rc *ReportCreate) SetNillableRegion(s *string) *ReportCreate {
	if s != nil {
		rc.SetRegion(*s)
	}
	return rc
}

// SetPriority sets the "priority" field.
func (rc *ReportCreate) SetPriority(r report.Priority) *ReportCreate {
	rc.mutation.SetPriority(r)
	return rc
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (rc *ReportCreate) SetNillablePriority(r *report.Priority) *ReportCreate {
	if r != nil {
		rc.SetPriority(*r)
	}
	return rc
}

// SetIsAnonymous sets the "is_anonymous" field.
func (rc *ReportCreate) SetIsAnonymous(b bool) *ReportCreate {
	rc.mutation.SetIsAnonymous(b)
	return rc
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (rc *ReportCreate) SetNillableIsAnonymous(b *bool) *ReportCreate {
	if b != nil {
		rc.SetIsAnonymous(*b)
	}
	return rc
}

// SetUserID sets the "user_id" field.
func (rc *ReportCreate) SetUserID(u uuid.UUID) *ReportCreate {
	rc.mutation.SetUserID(u)
	return rc
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rc *ReportCreate) SetNillableUserID(u *uuid.UUID) *ReportCreate {
	if u != nil {
		rc.SetUserID(*u)
	}
	return rc
}

// SetStatus sets the "status" field.
func (rc *ReportCreate) SetStatus(r report.Status) *ReportCreate {
	rc.mutation.SetStatus(r)
	return rc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (rc *ReportCreate) SetNillableStatus(r *report.Status) *ReportCreate {
	if r != nil {
		rc.SetStatus(*r)
	}
	return rc
}

// SetMedia sets the "media" field.
func (rc *ReportCreate) SetMedia(s []string) *ReportCreate {
	rc.mutation.SetMedia(s)
	return rc
}

// SetID sets the "id" field.
func (rc *ReportCreate) SetID(u uuid.UUID) *ReportCreate {
	rc.mutation.SetID(u)
	return rc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (rc *ReportCreate) SetNillableID(u *uuid.UUID) *ReportCreate {
	if u != nil {
		rc.SetID(*u)
	}
	return rc
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (rc *ReportCreate) SetOwnerID(id uuid.UUID) *ReportCreate {
	rc.mutation.SetOwnerID(id)
	return rc
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (rc *ReportCreate) SetNillableOwnerID(id *uuid.UUID) *ReportCreate {
	if id != nil {
		rc = rc.SetOwnerID(*id)
	}
	return rc
}

// SetOwner sets the "owner" edge to the User entity.
func (rc *ReportCreate) SetOwner(u *User) *ReportCreate {
	return rc.SetOwnerID(u.ID)
}

// AddViewIDs adds the "views" edge to the ReportView entity by IDs.
func (rc *ReportCreate) AddViewIDs(ids ...int) *ReportCreate {
	rc.mutation.AddViewIDs(ids...)
	return rc
}

// AddViews adds the "views" edges to the ReportView entity.
func (rc *ReportCreate) AddViews(r ...*ReportView) *ReportCreate {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return rc.AddViewIDs(ids...)
}

// AddLikeIDs adds the "likes" edge to the ReportLike entity by IDs.
func (rc *ReportCreate) AddLikeIDs(ids ...int) *ReportCreate {
	rc.mutation.AddLikeIDs(ids...)
	return rc
}

// AddLikes adds the "likes" edges to the ReportLike entity.
func (rc *ReportCreate) AddLikes(r ...*ReportLike) *ReportCreate {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return rc.AddLikeIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (rc *ReportCreate) Mutation() *ReportMutation {
	return rc.mutation
}

// Save creates the Report in the database.
func (rc *ReportCreate) Save(ctx context.Context) (*Report, error) {
	rc.defaults()
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *ReportCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *ReportCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rc *ReportCreate) defaults() {
	if _, ok := rc.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		rc.mutation.SetCreatedAt(v)
	}
	if _, ok := rc.mutation.UpdatedAt(); !ok {
		v := report.DefaultUpdatedAt()
		rc.mutation.SetUpdatedAt(v)
	}
	if _, ok := rc.mutation.Location(); !ok {
		v := report.DefaultLocation
		rc.mutation.SetLocation(v)
	}
	if _, ok := rc.mutation.Priority(); !ok {
		v := report.DefaultPriority
		rc.mutation.SetPriority(v)
	}
	if _, ok := rc.mutation.IsAnonymous(); !ok {
		v := report.DefaultIsAnonymous
		rc.mutation.SetIsAnonymous(v)
	}
	if _, ok := rc.mutation.Status(); !ok {
		v := report.DefaultStatus
		rc.mutation.SetStatus(v)
	}
	if _, ok := rc.mutation.ID(); !ok {
		v := report.DefaultID()
		rc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *ReportCreate) check() error {
	if _, ok := rc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Report.created_at"`)}
	}
	if _, ok := rc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Report.updated_at"`)}
	}
	if _, ok := rc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Report.title"`)}
	}
	if v, ok := rc.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if _, ok := rc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Report.description"`)}
	}
	if v, ok := rc.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if _, ok := rc.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Report.category"`)}
	}
	if v, ok := rc.mutation.Category(); ok {
		if err := report.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Report.category": %w`, err)}
		}
	}
	if _, ok := rc.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "Report.location"`)}
	}
	if _, ok := rc.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Report.priority"`)}
	}
	if v, ok := rc.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if _, ok := rc.mutation.IsAnonymous(); !ok {
		return &ValidationError{Name: "is_anonymous", err: errors.New(`ent: missing required field "Report.is_anonymous"`)}
	}
	if _, ok := rc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Report.status"`)}
	}
	if v, ok := rc.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	return nil
}

func (rc *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	)
	if id, ok := rc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := rc.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := rc.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := rc.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := rc.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := rc.mutation.Category(); ok {
		_spec.SetField(report.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := rc.mutation.Location(); ok {
		_spec.SetField(report.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := rc.mutation.Latitude(); ok {
		_spec.SetField(report.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = &value
	}
	if value, ok := rc.mutation.Longitude(); ok {
		_spec.SetField(report.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = &value
	}
	if value, ok := rc.mutation.Region(); ok {
		_spec.SetField(report.FieldRegion, field.TypeString, value)
		_node.Region = &value
	}
	if value, ok := rc.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := rc.mutation.IsAnonymous(); ok {
		_spec.SetField(report.FieldIsAnonymous, field.TypeBool, value)
		_node.IsAnonymous = value
	}
	if value, ok := rc.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := rc.mutation.Media(); ok {
		_spec.SetField(report.FieldMedia, field.TypeJSON, value)
		_node.Media = value
	}
	if nodes := rc.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.OwnerTable,
			Columns: []string{report.OwnerColumn},
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
	if nodes := rc.mutation.ViewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ViewsTable,
			Columns: []string{report.ViewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportview.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := rc.mutation.LikesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.LikesTable,
			Columns: []string{report.LikesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportlike.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
}

// Save creates the Report entities in the database.
func (rcb *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if rcb.err != nil {
		return nil, rcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Report, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
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
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}
