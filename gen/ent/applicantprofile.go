// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
)

// ApplicantProfile is the model entity for the ApplicantProfile schema.
type ApplicantProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// IDNumber holds the value of the "id_number" field.
	IDNumber string `json:"id_number,omitempty"`
	// PhoneNumber holds the value of the "phone_number" field.
	PhoneNumber *string `json:"phone_number,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// DateOfBirth holds the value of the "date_of_birth" field.
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// County holds the value of the "county" field.
	County string `json:"county,omitempty"`
	// SubCounty holds the value of the "sub_county" field.
	SubCounty *string `json:"sub_county,omitempty"`
	// Ward holds the value of the "ward" field.
	Ward *string `json:"ward,omitempty"`
	// Village holds the value of the "village" field.
	Village *string `json:"village,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicantProfileQuery when eager-loading is set.
	Edges        ApplicantProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicantProfileEdges holds the relations/edges for other nodes in the graph.
type ApplicantProfileEdges struct {
	// Applications holds the value of the applications edge.
	Applications []*BursaryApplication `json:"applications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationsOrErr returns the Applications value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicantProfileEdges) ApplicationsOrErr() ([]*BursaryApplication, error) {
	if e.loadedTypes[0] {
		return e.Applications, nil
	}
	return nil, &NotLoadedError{edge: "applications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApplicantProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case applicantprofile.FieldFullName, applicantprofile.FieldIDNumber, applicantprofile.FieldPhoneNumber, applicantprofile.FieldEmail, applicantprofile.FieldCounty, applicantprofile.FieldSubCounty, applicantprofile.FieldWard, applicantprofile.FieldVillage:
			values[i] = new(sql.NullString)
		case applicantprofile.FieldDateOfBirth, applicantprofile.FieldCreatedAt, applicantprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case applicantprofile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApplicantProfile fields.
func (_m *ApplicantProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case applicantprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case applicantprofile.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case applicantprofile.FieldIDNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id_number", values[i])
			} else if value.Valid {
				_m.IDNumber = value.String
			}
		case applicantprofile.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				_m.PhoneNumber = new(string)
				*_m.PhoneNumber = value.String
			}
		case applicantprofile.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case applicantprofile.FieldDateOfBirth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_birth", values[i])
			} else if value.Valid {
				_m.DateOfBirth = new(time.Time)
				*_m.DateOfBirth = value.Time
			}
		case applicantprofile.FieldCounty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field county", values[i])
			} else if value.Valid {
				_m.County = value.String
			}
		case applicantprofile.FieldSubCounty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_county", values[i])
			} else if value.Valid {
				_m.SubCounty = new(string)
				*_m.SubCounty = value.String
			}
		case applicantprofile.FieldWard:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ward", values[i])
			} else if value.Valid {
				_m.Ward = new(string)
				*_m.Ward = value.String
			}
		case applicantprofile.FieldVillage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field village", values[i])
			} else if value.Valid {
				_m.Village = new(string)
				*_m.Village = value.String
			}
		case applicantprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case applicantprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApplicantProfile.
// This includes values selected through modifiers, order, etc.
func (_m *ApplicantProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplications queries the "applications" edge of the ApplicantProfile entity.
func (_m *ApplicantProfile) QueryApplications() *BursaryApplicationQuery {
	return NewApplicantProfileClient(_m.config).QueryApplications(_m)
}

// Update returns a builder for updating this ApplicantProfile.
// Note that you need to call ApplicantProfile.Unwrap() before calling this method if this ApplicantProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApplicantProfile) Update() *ApplicantProfileUpdateOne {
	return NewApplicantProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApplicantProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApplicantProfile) Unwrap() *ApplicantProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApplicantProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApplicantProfile) String() string {
	var builder strings.Builder
	builder.WriteString("ApplicantProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("id_number=")
	builder.WriteString(_m.IDNumber)
	builder.WriteString(", ")
	if v := _m.PhoneNumber; v != nil {
		builder.WriteString("phone_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DateOfBirth; v != nil {
		builder.WriteString("date_of_birth=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("county=")
	builder.WriteString(_m.County)
	builder.WriteString(", ")
	if v := _m.SubCounty; v != nil {
		builder.WriteString("sub_county=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Ward; v != nil {
		builder.WriteString("ward=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Village; v != nil {
		builder.WriteString("village=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApplicantProfiles is a parsable slice of ApplicantProfile.
type ApplicantProfiles []*ApplicantProfile
