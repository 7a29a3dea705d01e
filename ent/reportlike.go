// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportlike"
	"BalaghAPI/ent/user"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ReportLike is the model entity for the ReportLike schema.
type ReportLike struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportLikeQuery when eager-loading is set.
	Edges        ReportLikeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportLikeEdges holds the relations/edges for other nodes in the graph.
type ReportLikeEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportLikeEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportLikeEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportLike) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportlike.FieldID:
			values[i] = new(sql.NullInt64)
		case reportlike.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case reportlike.FieldReportID, reportlike.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportLike fields.
func (rl *ReportLike) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportlike.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			rl.ID = int(value.Int64)
		case reportlike.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				rl.CreatedAt = value.Time
			}
		case reportlike.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				rl.ReportID = *value
			}
		case reportlike.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				rl.UserID = *value
			}
		default:
			rl.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportLike.
// This includes values selected through modifiers, order, etc.
func (rl *ReportLike) Value(name string) (ent.Value, error) {
	return rl.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the ReportLike entity.
func (rl *ReportLike) QueryReport() *ReportQuery {
	return NewReportLikeClient(rl.config).QueryReport(rl)
}

// QueryUser queries the "user" edge of the ReportLike entity.
func (rl *ReportLike) QueryUser() *UserQuery {
	return NewReportLikeClient(rl.config).QueryUser(rl)
}

// Update returns a builder for updating this ReportLike.
// Note that you need to call ReportLike.Unwrap() before calling this method if this ReportLike
// was returned from a transaction, and the transaction was committed or rolled back.
func (rl *ReportLike) Update() *ReportLikeUpdateOne {
	return NewReportLikeClient(rl.config).UpdateOne(rl)
}

// Unwrap unwraps the ReportLike entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (rl *ReportLike) Unwrap() *ReportLike {
	_tx, ok := rl.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportLike is not a transactional entity")
	}
	rl.config.driver = _tx.drv
	return rl
}

// String implements the fmt.Stringer.
func (rl *ReportLike) String() string {
	var builder strings.Builder
	builder.WriteString("ReportLike(")
	builder.WriteString(fmt.Sprintf("id=%v, ", rl.ID))
	builder.WriteString("created_at=")
	builder.WriteString(rl.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", rl.ReportID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", rl.UserID))
	builder.WriteByte(')')
	return builder.String()
}

// ReportLikes is a parsable slice of ReportLike.
type ReportLikes []*ReportLike
