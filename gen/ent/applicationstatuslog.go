// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
)

// ApplicationStatusLog is the model entity for the ApplicationStatusLog schema.
type ApplicationStatusLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID uuid.UUID `json:"application_id,omitempty"`
	// OldStatus holds the value of the "old_status" field.
	OldStatus string `json:"old_status,omitempty"`
	// NewStatus holds the value of the "new_status" field.
	NewStatus string `json:"new_status,omitempty"`
	// ChangedBy holds the value of the "changed_by" field.
	ChangedBy *string `json:"changed_by,omitempty"`
	// Comments holds the value of the "comments" field.
	Comments *string `json:"comments,omitempty"`
	// ChangedAt holds the value of the "changed_at" field.
	ChangedAt time.Time `json:"changed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicationStatusLogQuery when eager-loading is set.
	Edges        ApplicationStatusLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicationStatusLogEdges holds the relations/edges for other nodes in the graph.
type ApplicationStatusLogEdges struct {
	// Application holds the value of the application edge.
	Application *BursaryApplication `json:"application,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationStatusLogEdges) ApplicationOrErr() (*BursaryApplication, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bursaryapplication.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApplicationStatusLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case applicationstatuslog.FieldOldStatus, applicationstatuslog.FieldNewStatus, applicationstatuslog.FieldChangedBy, applicationstatuslog.FieldComments:
			values[i] = new(sql.NullString)
		case applicationstatuslog.FieldChangedAt:
			values[i] = new(sql.NullTime)
		case applicationstatuslog.FieldID, applicationstatuslog.FieldApplicationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApplicationStatusLog fields.
func (_m *ApplicationStatusLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case applicationstatuslog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case applicationstatuslog.FieldApplicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value != nil {
				_m.ApplicationID = *value
			}
		case applicationstatuslog.FieldOldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_status", values[i])
			} else if value.Valid {
				_m.OldStatus = value.String
			}
		case applicationstatuslog.FieldNewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_status", values[i])
			} else if value.Valid {
				_m.NewStatus = value.String
			}
		case applicationstatuslog.FieldChangedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by", values[i])
			} else if value.Valid {
				_m.ChangedBy = new(string)
				*_m.ChangedBy = value.String
			}
		case applicationstatuslog.FieldComments:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comments", values[i])
			} else if value.Valid {
				_m.Comments = new(string)
				*_m.Comments = value.String
			}
		case applicationstatuslog.FieldChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field changed_at", values[i])
			} else if value.Valid {
				_m.ChangedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApplicationStatusLog.
// This includes values selected through modifiers, order, etc.
func (_m *ApplicationStatusLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplication queries the "application" edge of the ApplicationStatusLog entity.
func (_m *ApplicationStatusLog) QueryApplication() *BursaryApplicationQuery {
	return NewApplicationStatusLogClient(_m.config).QueryApplication(_m)
}

// Update returns a builder for updating this ApplicationStatusLog.
// Note that you need to call ApplicationStatusLog.Unwrap() before calling this method if this ApplicationStatusLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApplicationStatusLog) Update() *ApplicationStatusLogUpdateOne {
	return NewApplicationStatusLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApplicationStatusLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApplicationStatusLog) Unwrap() *ApplicationStatusLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApplicationStatusLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApplicationStatusLog) String() string {
	var builder strings.Builder
	builder.WriteString("ApplicationStatusLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("old_status=")
	builder.WriteString(_m.OldStatus)
	builder.WriteString(", ")
	builder.WriteString("new_status=")
	builder.WriteString(_m.NewStatus)
	builder.WriteString(", ")
	if v := _m.ChangedBy; v != nil {
		builder.WriteString("changed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Comments; v != nil {
		builder.WriteString("comments=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("changed_at=")
	builder.WriteString(_m.ChangedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApplicationStatusLogs is a parsable slice of ApplicationStatusLog.
type ApplicationStatusLogs []*ApplicationStatusLog
