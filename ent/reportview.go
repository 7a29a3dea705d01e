// Code generated by ent, DO NOT EDIT.

package ent

import (
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportview"
	"BalaghAPI/ent/user"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ReportView is the model entity for the ReportView schema.
type ReportView struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *uuid.UUID `json:"user_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportViewQuery when eager-loading is set.
	Edges        ReportViewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportViewEdges holds the relations/edges for other nodes in the graph.
type ReportViewEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// Viewer holds the value of the viewer edge.
	Viewer *User `json:"viewer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportViewEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// ViewerOrErr returns the Viewer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportViewEdges) ViewerOrErr() (*User, error) {
	if e.Viewer != nil {
		return e.Viewer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "viewer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportView) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportview.FieldUserID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case reportview.FieldID:
			values[i] = new(sql.NullInt64)
		case reportview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case reportview.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportView fields.
func (rv *ReportView) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportview.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			rv.ID = int(value.Int64)
		case reportview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				rv.CreatedAt = value.Time
			}
		case reportview.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				rv.ReportID = *value
			}
		case reportview.FieldUserID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				rv.UserID = new(uuid.UUID)
				*rv.UserID = *value.S.(*uuid.UUID)
			}
		default:
			rv.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportView.
// This includes values selected through modifiers, order, etc.
func (rv *ReportView) Value(name string) (ent.Value, error) {
	return rv.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the ReportView entity.
func (rv *ReportView) QueryReport() *ReportQuery {
	return NewReportViewClient(rv.config).QueryReport(rv)
}

// QueryViewer queries the "viewer" edge of the ReportView entity.
func (rv *ReportView) QueryViewer() *UserQuery {
	return NewReportViewClient(rv.config).QueryViewer(rv)
}

// Update returns a builder for updating this ReportView.
// Note that you need to call ReportView.Unwrap() before calling this method if this ReportView
// was returned from a transaction, and the transaction was committed or rolled back.
func (rv *ReportView) Update() *ReportViewUpdateOne {
	return NewReportViewClient(rv.config).UpdateOne(rv)
}

// Unwrap unwraps the ReportView entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (rv *ReportView) Unwrap() *ReportView {
	_tx, ok := rv.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportView is not a transactional entity")
	}
	rv.config.driver = _tx.drv
	return rv
}

// String implements the fmt.Stringer.
func (rv *ReportView) String() string {
	var builder strings.Builder
	builder.WriteString("ReportView(")
	builder.WriteString(fmt.Sprintf("id=%v, ", rv.ID))
	builder.WriteString("created_at=")
	builder.WriteString(rv.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", rv.ReportID))
	builder.WriteString(", ")
	if v := rv.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReportViews is a parsable slice of ReportView.
type ReportViews []*ReportView
