// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/predicate"
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportlike"
	"BalaghAPI/ent/reportview"
	"BalaghAPI/ent/user"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (ru *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetUpdatedAt sets the "updated_at" field.
func (ru *ReportUpdate) SetUpdatedAt(t time.Time) *ReportUpdate {
	ru.mutation.SetUpdatedAt(t)
	return ru
}

// SetTitle sets the "title" field.
func (ru *ReportUpdate) SetTitle(s string) *ReportUpdate {
	ru.mutation.SetTitle(s)
	return ru
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ru *ReportUpdate) SetNillableTitle(s *string) *ReportUpdate {
	if s != nil {
		ru.SetTitle(*s)
	}
	return ru
}

// SetDescription sets the "description" field.
func (ru *ReportUpdate) SetDescription(s string) *ReportUpdate {
	ru.mutation.SetDescription(s)
	return ru
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ru *ReportUpdate) SetNillableDescription(s *string) *ReportUpdate {
	if s != nil {
		ru.SetDescription(*s)
	}
	return ru
}

// SetCategory sets the "category" field.
func (ru *ReportUpdate) SetCategory(r report.Category) *ReportUpdate {
	ru.mutation.SetCategory(r)
	return ru
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (ru *ReportUpdate) SetNillableCategory(r *report.Category) *ReportUpdate {
	if r != nil {
		ru.SetCategory(*r)
	}
	return ru
}

// SetLocation sets the "location" field.
func (ru *ReportUpdate) SetLocation(s string) *ReportUpdate {
	ru.mutation.SetLocation(s)
	return ru
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (ru *ReportUpdate) SetNillableLocation(s *string) *ReportUpdate {
	if s != nil {
		ru.SetLocation(*s)
	}
	return ru
}

// SetLatitude sets the "latitude" field.
func (ru *ReportUpdate) SetLatitude(f float64) *ReportUpdate {
	ru.mutation.ResetLatitude()
	ru.mutation.SetLatitude(f)
	return ru
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (ru *ReportUpdate) SetNillableLatitude(f *float64) *ReportUpdate {
	if f != nil {
		ru.SetLatitude(*f)
	}
	return ru
}

// AddLatitude adds f to the "latitude" field.
func (ru *ReportUpdate) AddLatitude(f float64) *ReportUpdate {
	ru.mutation.AddLatitude(f)
	return ru
}

// ClearLatitude clears the value of the "latitude" field.
func (ru *ReportUpdate) ClearLatitude() *ReportUpdate {
	ru.mutation.ClearLatitude()
	return ru
}

// SetLongitude sets the "longitude" field.
func (ru *ReportUpdate) SetLongitude(f float64) *ReportUpdate {
	ru.mutation.ResetLongitude()
	ru.mutation.SetLongitude(f)
	return ru
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (ru *ReportUpdate) SetNillableLongitude(f *float64) *ReportUpdate {
	if f != nil {
		ru.SetLongitude(*f)
	}
	return ru
}

// AddLongitude adds f to the "longitude" field.
func (ru *ReportUpdate) AddLongitude(f float64) *ReportUpdate {
	ru.mutation.AddLongitude(f)
	return ru
}

// ClearLongitude clears the value of the "longitude" field.
func (ru *ReportUpdate) ClearLongitude() *ReportUpdate {
	ru.mutation.ClearLongitude()
	return ru
}

// SetRegion sets the "region" field.
func (ru *ReportUpdate) SetRegion(s string) *ReportUpdate {
	ru.mutation.SetRegion(s)
	return ru
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (ru *ReportUpdate) SetNillableRegion(s *string) *ReportUpdate {
	if s != nil {
		ru.SetRegion(*s)
	}
	return ru
}

// ClearRegion clears the value of the "region" field.
func (ru *ReportUpdate) ClearRegion() *ReportUpdate {
	ru.mutation.ClearRegion()
	return ru
}

// SetPriority sets the "priority" field.
func (ru *ReportUpdate) SetPriority(r report.Priority) *ReportUpdate {
	ru.mutation.SetPriority(r)
	return ru
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (ru *ReportUpdate) SetNillablePriority(r *report.Priority) *ReportUpdate {
	if r != nil {
		ru.SetPriority(*r)
	}
	return ru
}

// SetUserID sets the "user_id" field.
func (ru *ReportUpdate) SetUserID(u uuid.UUID) *ReportUpdate {
	ru.mutation.SetUserID(u)
	return ru
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ru *ReportUpdate) SetNillableUserID(u *uuid.UUID) *ReportUpdate {
	if u != nil {
		ru.SetUserID(*u)
	}
	return ru
}

// ClearUserID clears the value of the "user_id" field.
func (ru *ReportUpdate) ClearUserID() *ReportUpdate {
	ru.mutation.ClearUserID()
	return ru
}

// SetStatus sets the "status" field.
func (ru *ReportUpdate) SetStatus(r report.Status) *ReportUpdate {
	ru.mutation.SetStatus(r)
	return ru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ru *ReportUpdate) SetNillableStatus(r *report.Status) *ReportUpdate {
	if r != nil {
		ru.SetStatus(*r)
	}
	return ru
}

// SetMedia sets the "media" field.
func (ru *ReportUpdate) SetMedia(s []string) *ReportUpdate {
	ru.mutation.SetMedia(s)
	return ru
}

// AppendMedia appends s to the "media" field.
func (ru *ReportUpdate) AppendMedia(s []string) *ReportUpdate {
	ru.mutation.AppendMedia(s)
	return ru
}

// ClearMedia clears the value of the "media" field.
func (ru *ReportUpdate) ClearMedia() *ReportUpdate {
	ru.mutation.ClearMedia()
	return ru
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (ru *ReportUpdate) SetOwnerID(id uuid.UUID) *ReportUpdate {
	ru.mutation.SetOwnerID(id)
	return ru
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (ru *ReportUpdate) SetNillableOwnerID(id *uuid.UUID) *ReportUpdate {
	if id != nil {
		ru = ru.SetOwnerID(*id)
	}
	return ru
}

// SetOwner sets the "owner" edge to the User entity.
func (ru *ReportUpdate) SetOwner(u *User) *ReportUpdate {
	return ru.SetOwnerID(u.ID)
}

// AddViewIDs adds the "views" edge to the ReportView entity by IDs.
func (ru *ReportUpdate) AddViewIDs(ids ...int) *ReportUpdate {
	ru.mutation.AddViewIDs(ids...)
	return ru
}

// AddViews adds the "views" edges to the ReportView entity.
func (ru *ReportUpdate) AddViews(r ...*ReportView) *ReportUpdate {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ru.AddViewIDs(ids...)
}

// AddLikeIDs adds the "likes" edge to the ReportLike entity by IDs.
func (ru *ReportUpdate) AddLikeIDs(ids ...int) *ReportUpdate {
	ru.mutation.AddLikeIDs(ids...)
	return ru
}

// AddLikes adds the "likes" edges to the ReportLike entity.
func (ru *ReportUpdate) AddLikes(r ...*ReportLike) *ReportUpdate {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ru.AddLikeIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (ru *ReportUpdate) Mutation() *ReportMutation {
	return ru.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (ru *ReportUpdate) ClearOwner() *ReportUpdate {
	ru.mutation.ClearOwner()
	return ru
}

// ClearViews clears all "views" edges to the ReportView entity.
func (ru *ReportUpdate) ClearViews() *ReportUpdate {
	ru.mutation.ClearViews()
	return ru
}

// RemoveViewIDs removes the "views" edge to ReportView entities by IDs.
func (ru *ReportUpdate) RemoveViewIDs(ids ...int) *ReportUpdate {
	ru.mutation.RemoveViewIDs(ids...)
	return ru
}

// RemoveViews removes "views" edges to ReportView entities.
func (ru *ReportUpdate) RemoveViews(r ...*ReportView) *ReportUpdate {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ru.RemoveViewIDs(ids...)
}

// ClearLikes clears all "likes" edges to the ReportLike entity.
func (ru *ReportUpdate) ClearLikes() *ReportUpdate {
	ru.mutation.ClearLikes()
	return ru
}

// RemoveLikeIDs removes the "likes" edge to ReportLike entities by IDs.
func (ru *ReportUpdate) RemoveLikeIDs(ids ...int) *ReportUpdate {
	ru.mutation.RemoveLikeIDs(ids...)
	return ru
}

// RemoveLikes removes "likes" edges to ReportLike entities.
func (ru *ReportUpdate) RemoveLikes(r ...*ReportLike) *ReportUpdate {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ru.RemoveLikeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *ReportUpdate) Save(ctx context.Context) (int, error) {
	ru.defaults()
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *ReportUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *ReportUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ru *ReportUpdate) defaults() {
	if _, ok := ru.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		ru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ru *ReportUpdate) check() error {
	if v, ok := ru.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := ru.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if v, ok := ru.mutation.Category(); ok {
		if err := report.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Report.category": %w`, err)}
		}
	}
	if v, ok := ru.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if v, ok := ru.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	return nil
}

func (ru *ReportUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := ru.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := ru.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
	}
	if value, ok := ru.mutation.Category(); ok {
		_spec.SetField(report.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := ru.mutation.Location(); ok {
		_spec.SetField(report.FieldLocation, field.TypeString, value)
	}
	if value, ok := ru.mutation.Latitude(); ok {
		_spec.SetField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.AddedLatitude(); ok {
		_spec.AddField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if ru.mutation.LatitudeCleared() {
		_spec.ClearField(report.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := ru.mutation.Longitude(); ok {
		_spec.SetField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.AddedLongitude(); ok {
		_spec.AddField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if ru.mutation.LongitudeCleared() {
		_spec.ClearField(report.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := ru.mutation.Region(); ok {
		_spec.SetField(report.FieldRegion, field.TypeString, value)
	}
	if ru.mutation.RegionCleared() {
		_spec.ClearField(report.FieldRegion, field.TypeString)
	}
	if value, ok := ru.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := ru.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := ru.mutation.Media(); ok {
		_spec.SetField(report.FieldMedia, field.TypeJSON, value)
	}
	if value, ok := ru.mutation.AppendedMedia(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldMedia, value)
		})
	}
	if ru.mutation.MediaCleared() {
		_spec.ClearField(report.FieldMedia, field.TypeJSON)
	}
	if ru.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ru.mutation.ViewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.RemovedViewsIDs(); len(nodes) > 0 && !ru.mutation.ViewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.ViewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ru.mutation.LikesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.RemovedLikesIDs(); len(nodes) > 0 && !ru.mutation.LikesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.LikesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (ruo *ReportUpdateOne) SetUpdatedAt(t time.Time) *ReportUpdateOne {
	ruo.mutation.SetUpdatedAt(t)
	return ruo
}

// SetTitle sets the "title" field.
func (ruo *ReportUpdateOne) SetTitle(s string) *ReportUpdateOne {
	ruo.mutation.SetTitle(s)
	return ruo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableTitle(s *string) *ReportUpdateOne {
	if s != nil {
		ruo.SetTitle(*s)
	}
	return ruo
}

// SetDescription sets the "description" field.
func (ruo *ReportUpdateOne) SetDescription(s string) *ReportUpdateOne {
	ruo.mutation.SetDescription(s)
	return ruo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableDescription(s *string) *ReportUpdateOne {
	if s != nil {
		ruo.SetDescription(*s)
	}
	return ruo
}

// SetCategory sets the "category" field.
func (ruo *ReportUpdateOne) SetCategory(r report.Category) *ReportUpdateOne {
	ruo.mutation.SetCategory(r)
	return ruo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableCategory(r *report.Category) *ReportUpdateOne {
	if r != nil {
		ruo.SetCategory(*r)
	}
	return ruo
}

// SetLocation sets the "location" field.
func (ruo *ReportUpdateOne) SetLocation(s string) *ReportUpdateOne {
	ruo.mutation.SetLocation(s)
	return ruo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableLocation(s *string) *ReportUpdateOne {
	if s != nil {
		ruo.SetLocation(*s)
	}
	return ruo
}

// SetLatitude sets the "latitude" field.
func (ruo *ReportUpdateOne) SetLatitude(f float64) *ReportUpdateOne {
	ruo.mutation.ResetLatitude()
	ruo.mutation.SetLatitude(f)
	return ruo
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableLatitude(f *float64) *ReportUpdateOne {
	if f != nil {
		ruo.SetLatitude(*f)
	}
	return ruo
}

// AddLatitude adds f to the "latitude" field.
func (ruo *ReportUpdateOne) AddLatitude(f float64) *ReportUpdateOne {
	ruo.mutation.AddLatitude(f)
	return ruo
}

// ClearLatitude clears the value of the "latitude" field.
func (ruo *ReportUpdateOne) ClearLatitude() *ReportUpdateOne {
	ruo.mutation.ClearLatitude()
	return ruo
}

// SetLongitude sets the "longitude" field.
func (ruo *ReportUpdateOne) SetLongitude(f float64) *ReportUpdateOne {
	ruo.mutation.ResetLongitude()
	ruo.mutation.SetLongitude(f)
	return ruo
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableLongitude(f *float64) *ReportUpdateOne {
	if f != nil {
		ruo.SetLongitude(*f)
	}
	return ruo
}

// AddLongitude adds f to the "longitude" field.
func (ruo *ReportUpdateOne) AddLongitude(f float64) *ReportUpdateOne {
	ruo.mutation.AddLongitude(f)
	return ruo
}

// ClearLongitude clears the value of the "longitude" field.
func (ruo *ReportUpdateOne) ClearLongitude() *ReportUpdateOne {
	ruo.mutation.ClearLongitude()
	return ruo
}

// SetRegion sets the "region" field.
func (ruo *ReportUpdateOne) SetRegion(s string) *ReportUpdateOne {
	ruo.mutation.SetRegion(s)
	return ruo
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableRegion(s *string) *ReportUpdateOne {
	if s != nil {
		ruo.SetRegion(*s)
	}
	return ruo
}

// ClearRegion clears the value of the "region" field.
func (ruo *ReportUpdateOne) ClearRegion() *ReportUpdateOne {
	ruo.mutation.ClearRegion()
	return ruo
}

// SetPriority sets the "priority" field.
func (ruo *ReportUpdateOne) SetPriority(r report.Priority) *ReportUpdateOne {
	ruo.mutation.SetPriority(r)
	return ruo
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillablePriority(r *report.Priority) *ReportUpdateOne {
	if r != nil {
		ruo.SetPriority(*r)
	}
	return ruo
}

// SetUserID sets the "user_id" field.
func (ruo *ReportUpdateOne) SetUserID(u uuid.UUID) *ReportUpdateOne {
	ruo.mutation.SetUserID(u)
	return ruo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableUserID(u *uuid.UUID) *ReportUpdateOne {
	if u != nil {
		ruo.SetUserID(*u)
	}
	return ruo
}

// ClearUserID clears the value of the "user_id" field.
func (ruo *ReportUpdateOne) ClearUserID() *ReportUpdateOne {
	ruo.mutation.ClearUserID()
	return ruo
}

// SetStatus sets the "status" field.
func (ruo *ReportUpdateOne) SetStatus(r report.Status) *ReportUpdateOne {
	ruo.mutation.SetStatus(r)
	return ruo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableStatus(r *report.Status) *ReportUpdateOne {
	if r != nil {
		ruo.SetStatus(*r)
	}
	return ruo
}

// SetMedia sets the "media" field.
func (ruo *ReportUpdateOne) SetMedia(s []string) *ReportUpdateOne {
	ruo.mutation.SetMedia(s)
	return ruo
}

// AppendMedia appends s to the "media" field.
func (ruo *ReportUpdateOne) AppendMedia(s []string) *ReportUpdateOne {
	ruo.mutation.AppendMedia(s)
	return ruo
}

// ClearMedia clears the value of the "media" field.
func (ruo *ReportUpdateOne) ClearMedia() *ReportUpdateOne {
	ruo.mutation.ClearMedia()
	return ruo
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (ruo *ReportUpdateOne) SetOwnerID(id uuid.UUID) *ReportUpdateOne {
	ruo.mutation.SetOwnerID(id)
	return ruo
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (ruo *ReportUpdateOne) SetNillableOwnerID(id *uuid.UUID) *ReportUpdateOne {
	if id != nil {
		ruo = ruo.SetOwnerID(*id)
	}
	return ruo
}

// SetOwner sets the "owner" edge to the User entity.
func (ruo *ReportUpdateOne) SetOwner(u *User) *ReportUpdateOne {
	return ruo.SetOwnerID(u.ID)
}

// AddViewIDs adds the "views" edge to the ReportView entity by IDs.
func (ruo *ReportUpdateOne) AddViewIDs(ids ...int) *ReportUpdateOne {
	ruo.mutation.AddViewIDs(ids...)
	return ruo
}

// AddViews adds the "views" edges to the ReportView entity.
func (ruo *ReportUpdateOne) AddViews(r ...*ReportView) *ReportUpdateOne {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ruo.AddViewIDs(ids...)
}

// AddLikeIDs adds the "likes" edge to the ReportLike entity by IDs.
func (ruo *ReportUpdateOne) AddLikeIDs(ids ...int) *ReportUpdateOne {
	ruo.mutation.AddLikeIDs(ids...)
	return ruo
}

// AddLikes adds the "likes" edges to the ReportLike entity.
func (ruo *ReportUpdateOne) AddLikes(r ...*ReportLike) *ReportUpdateOne {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ruo.AddLikeIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (ruo *ReportUpdateOne) Mutation() *ReportMutation {
	return ruo.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (ruo *ReportUpdateOne) ClearOwner() *ReportUpdateOne {
	ruo.mutation.ClearOwner()
	return ruo
}

// ClearViews clears all "views" edges to the ReportView entity.
func (ruo *ReportUpdateOne) ClearViews() *ReportUpdateOne {
	ruo.mutation.ClearViews()
	return ruo
}

// RemoveViewIDs removes the "views" edge to ReportView entities by IDs.
func (ruo *ReportUpdateOne) RemoveViewIDs(ids ...int) *ReportUpdateOne {
	ruo.mutation.RemoveViewIDs(ids...)
	return ruo
}

// RemoveViews removes "views" edges to ReportView entities.
func (ruo *ReportUpdateOne) RemoveViews(r ...*ReportView) *ReportUpdateOne {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ruo.RemoveViewIDs(ids...)
}

// ClearLikes clears all "likes" edges to the ReportLike entity.
func (ruo *ReportUpdateOne) ClearLikes() *ReportUpdateOne {
	ruo.mutation.ClearLikes()
	return ruo
}

// RemoveLikeIDs removes the "likes" edge to ReportLike entities by IDs.
func (ruo *ReportUpdateOne) RemoveLikeIDs(ids ...int) *ReportUpdateOne {
	ruo.mutation.RemoveLikeIDs(ids...)
	return ruo
}

// RemoveLikes removes "likes" edges to ReportLike entities.
func (ruo *ReportUpdateOne) RemoveLikes(r ...*ReportLike) *ReportUpdateOne {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ruo.RemoveLikeIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (ruo *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Report entity.
func (ruo *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	ruo.defaults()
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ruo *ReportUpdateOne) defaults() {
	if _, ok := ruo.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		ruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ruo *ReportUpdateOne) check() error {
	if v, ok := ruo.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.Category(); ok {
		if err := report.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Report.category": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	return nil
}

func (ruo *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := ruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := ruo.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Category(); ok {
		_spec.SetField(report.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := ruo.mutation.Location(); ok {
		_spec.SetField(report.FieldLocation, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Latitude(); ok {
		_spec.SetField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.AddedLatitude(); ok {
		_spec.AddField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if ruo.mutation.LatitudeCleared() {
		_spec.ClearField(report.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := ruo.mutation.Longitude(); ok {
		_spec.SetField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.AddedLongitude(); ok {
		_spec.AddField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if ruo.mutation.LongitudeCleared() {
		_spec.ClearField(report.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := ruo.mutation.Region(); ok {
		_spec.SetField(report.FieldRegion, field.TypeString, value)
	}
	if ruo.mutation.RegionCleared() {
		_spec.ClearField(report.FieldRegion, field.TypeString)
	}
	if value, ok := ruo.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := ruo.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := ruo.mutation.Media(); ok {
		_spec.SetField(report.FieldMedia, field.TypeJSON, value)
	}
	if value, ok := ruo.mutation.AppendedMedia(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldMedia, value)
		})
	}
	if ruo.mutation.MediaCleared() {
		_spec.ClearField(report.FieldMedia, field.TypeJSON)
	}
	if ruo.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ruo.mutation.ViewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.RemovedViewsIDs(); len(nodes) > 0 && !ruo.mutation.ViewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.ViewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ruo.mutation.LikesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.RemovedLikesIDs(); len(nodes) > 0 && !ruo.mutation.LikesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.LikesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
