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
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
)

// BursaryApplication is the model entity for the BursaryApplication schema.
type BursaryApplication struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// ApplicationNumber holds the value of the "application_number" field.
	ApplicationNumber string `json:"application_number,omitempty"`
	// StudentName holds the value of the "student_name" field.
	StudentName string `json:"student_name,omitempty"`
	// InstitutionName holds the value of the "institution_name" field.
	InstitutionName string `json:"institution_name,omitempty"`
	// EducationLevel holds the value of the "education_level" field.
	EducationLevel *string `json:"education_level,omitempty"`
	// AnnualFamilyIncome holds the value of the "annual_family_income" field.
	AnnualFamilyIncome float64 `json:"annual_family_income,omitempty"`
	// TuitionFee holds the value of the "tuition_fee" field.
	TuitionFee float64 `json:"tuition_fee,omitempty"`
	// AmountRequested holds the value of the "amount_requested" field.
	AmountRequested float64 `json:"amount_requested,omitempty"`
	// NumberOfSiblings holds the value of the "number_of_siblings" field.
	NumberOfSiblings int `json:"number_of_siblings,omitempty"`
	// SiblingsInSchool holds the value of the "siblings_in_school" field.
	SiblingsInSchool int `json:"siblings_in_school,omitempty"`
	// IsOrphan holds the value of the "is_orphan" field.
	IsOrphan bool `json:"is_orphan,omitempty"`
	// HasDisability holds the value of the "has_disability" field.
	HasDisability bool `json:"has_disability,omitempty"`
	// IsSingleParent holds the value of the "is_single_parent" field.
	IsSingleParent bool `json:"is_single_parent,omitempty"`
	// PreviousBursaryRecipient holds the value of the "previous_bursary_recipient" field.
	PreviousBursaryRecipient bool `json:"previous_bursary_recipient,omitempty"`
	// ReasonForApplication holds the value of the "reason_for_application" field.
	ReasonForApplication *string `json:"reason_for_application,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// IsVerified holds the value of the "is_verified" field.
	IsVerified bool `json:"is_verified,omitempty"`
	// VerifiedBy holds the value of the "verified_by" field.
	VerifiedBy *string `json:"verified_by,omitempty"`
	// VerifiedAt holds the value of the "verified_at" field.
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	// IsFlagged holds the value of the "is_flagged" field.
	IsFlagged bool `json:"is_flagged,omitempty"`
	// FlagReason holds the value of the "flag_reason" field.
	FlagReason *string `json:"flag_reason,omitempty"`
	// ReviewerComments holds the value of the "reviewer_comments" field.
	ReviewerComments *string `json:"reviewer_comments,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BursaryApplicationQuery when eager-loading is set.
	Edges        BursaryApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BursaryApplicationEdges holds the relations/edges for other nodes in the graph.
type BursaryApplicationEdges struct {
	// Profile holds the value of the profile edge.
	Profile *ApplicantProfile `json:"profile,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// StatusLogs holds the value of the status_logs edge.
	StatusLogs []*ApplicationStatusLog `json:"status_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BursaryApplicationEdges) ProfileOrErr() (*ApplicantProfile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: applicantprofile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e BursaryApplicationEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// StatusLogsOrErr returns the StatusLogs value or an error if the edge
// was not loaded in eager-loading.
func (e BursaryApplicationEdges) StatusLogsOrErr() ([]*ApplicationStatusLog, error) {
	if e.loadedTypes[2] {
		return e.StatusLogs, nil
	}
	return nil, &NotLoadedError{edge: "status_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BursaryApplication) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bursaryapplication.FieldIsOrphan, bursaryapplication.FieldHasDisability, bursaryapplication.FieldIsSingleParent, bursaryapplication.FieldPreviousBursaryRecipient, bursaryapplication.FieldIsVerified, bursaryapplication.FieldIsFlagged:
			values[i] = new(sql.NullBool)
		case bursaryapplication.FieldAnnualFamilyIncome, bursaryapplication.FieldTuitionFee, bursaryapplication.FieldAmountRequested:
			values[i] = new(sql.NullFloat64)
		case bursaryapplication.FieldNumberOfSiblings, bursaryapplication.FieldSiblingsInSchool:
			values[i] = new(sql.NullInt64)
		case bursaryapplication.FieldApplicationNumber, bursaryapplication.FieldStudentName, bursaryapplication.FieldInstitutionName, bursaryapplication.FieldEducationLevel, bursaryapplication.FieldReasonForApplication, bursaryapplication.FieldStatus, bursaryapplication.FieldVerifiedBy, bursaryapplication.FieldFlagReason, bursaryapplication.FieldReviewerComments:
			values[i] = new(sql.NullString)
		case bursaryapplication.FieldVerifiedAt, bursaryapplication.FieldSubmittedAt, bursaryapplication.FieldReviewedAt, bursaryapplication.FieldCreatedAt, bursaryapplication.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case bursaryapplication.FieldID, bursaryapplication.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BursaryApplication fields.
func (_m *BursaryApplication) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bursaryapplication.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bursaryapplication.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case bursaryapplication.FieldApplicationNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_number", values[i])
			} else if value.Valid {
				_m.ApplicationNumber = value.String
			}
		case bursaryapplication.FieldStudentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_name", values[i])
			} else if value.Valid {
				_m.StudentName = value.String
			}
		case bursaryapplication.FieldInstitutionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field institution_name", values[i])
			} else if value.Valid {
				_m.InstitutionName = value.String
			}
		case bursaryapplication.FieldEducationLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field education_level", values[i])
			} else if value.Valid {
				_m.EducationLevel = new(string)
				*_m.EducationLevel = value.String
			}
		case bursaryapplication.FieldAnnualFamilyIncome:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field annual_family_income", values[i])
			} else if value.Valid {
				_m.AnnualFamilyIncome = value.Float64
			}
		case bursaryapplication.FieldTuitionFee:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tuition_fee", values[i])
			} else if value.Valid {
				_m.TuitionFee = value.Float64
			}
		case bursaryapplication.FieldAmountRequested:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_requested", values[i])
			} else if value.Valid {
				_m.AmountRequested = value.Float64
			}
		case bursaryapplication.FieldNumberOfSiblings:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number_of_siblings", values[i])
			} else if value.Valid {
				_m.NumberOfSiblings = int(value.Int64)
			}
		case bursaryapplication.FieldSiblingsInSchool:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field siblings_in_school", values[i])
			} else if value.Valid {
				_m.SiblingsInSchool = int(value.Int64)
			}
		case bursaryapplication.FieldIsOrphan:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_orphan", values[i])
			} else if value.Valid {
				_m.IsOrphan = value.Bool
			}
		case bursaryapplication.FieldHasDisability:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_disability", values[i])
			} else if value.Valid {
				_m.HasDisability = value.Bool
			}
		case bursaryapplication.FieldIsSingleParent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_single_parent", values[i])
			} else if value.Valid {
				_m.IsSingleParent = value.Bool
			}
		case bursaryapplication.FieldPreviousBursaryRecipient:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field previous_bursary_recipient", values[i])
			} else if value.Valid {
				_m.PreviousBursaryRecipient = value.Bool
			}
		case bursaryapplication.FieldReasonForApplication:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_for_application", values[i])
			} else if value.Valid {
				_m.ReasonForApplication = new(string)
				*_m.ReasonForApplication = value.String
			}
		case bursaryapplication.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case bursaryapplication.FieldIsVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_verified", values[i])
			} else if value.Valid {
				_m.IsVerified = value.Bool
			}
		case bursaryapplication.FieldVerifiedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verified_by", values[i])
			} else if value.Valid {
				_m.VerifiedBy = new(string)
				*_m.VerifiedBy = value.String
			}
		case bursaryapplication.FieldVerifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verified_at", values[i])
			} else if value.Valid {
				_m.VerifiedAt = new(time.Time)
				*_m.VerifiedAt = value.Time
			}
		case bursaryapplication.FieldIsFlagged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_flagged", values[i])
			} else if value.Valid {
				_m.IsFlagged = value.Bool
			}
		case bursaryapplication.FieldFlagReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flag_reason", values[i])
			} else if value.Valid {
				_m.FlagReason = new(string)
				*_m.FlagReason = value.String
			}
		case bursaryapplication.FieldReviewerComments:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_comments", values[i])
			} else if value.Valid {
				_m.ReviewerComments = new(string)
				*_m.ReviewerComments = value.String
			}
		case bursaryapplication.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = value.Time
			}
		case bursaryapplication.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case bursaryapplication.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bursaryapplication.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BursaryApplication.
// This includes values selected through modifiers, order, etc.
func (_m *BursaryApplication) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the BursaryApplication entity.
func (_m *BursaryApplication) QueryProfile() *ApplicantProfileQuery {
	return NewBursaryApplicationClient(_m.config).QueryProfile(_m)
}

// QueryDocuments queries the "documents" edge of the BursaryApplication entity.
func (_m *BursaryApplication) QueryDocuments() *DocumentQuery {
	return NewBursaryApplicationClient(_m.config).QueryDocuments(_m)
}

// QueryStatusLogs queries the "status_logs" edge of the BursaryApplication entity.
func (_m *BursaryApplication) QueryStatusLogs() *ApplicationStatusLogQuery {
	return NewBursaryApplicationClient(_m.config).QueryStatusLogs(_m)
}

// Update returns a builder for updating this BursaryApplication.
// Note that you need to call BursaryApplication.Unwrap() before calling this method if this BursaryApplication
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BursaryApplication) Update() *BursaryApplicationUpdateOne {
	return NewBursaryApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BursaryApplication entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BursaryApplication) Unwrap() *BursaryApplication {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BursaryApplication is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BursaryApplication) String() string {
	var builder strings.Builder
	builder.WriteString("BursaryApplication(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("application_number=")
	builder.WriteString(_m.ApplicationNumber)
	builder.WriteString(", ")
	builder.WriteString("student_name=")
	builder.WriteString(_m.StudentName)
	builder.WriteString(", ")
	builder.WriteString("institution_name=")
	builder.WriteString(_m.InstitutionName)
	builder.WriteString(", ")
	if v := _m.EducationLevel; v != nil {
		builder.WriteString("education_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("annual_family_income=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnnualFamilyIncome))
	builder.WriteString(", ")
	builder.WriteString("tuition_fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.TuitionFee))
	builder.WriteString(", ")
	builder.WriteString("amount_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountRequested))
	builder.WriteString(", ")
	builder.WriteString("number_of_siblings=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumberOfSiblings))
	builder.WriteString(", ")
	builder.WriteString("siblings_in_school=")
	builder.WriteString(fmt.Sprintf("%v", _m.SiblingsInSchool))
	builder.WriteString(", ")
	builder.WriteString("is_orphan=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOrphan))
	builder.WriteString(", ")
	builder.WriteString("has_disability=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasDisability))
	builder.WriteString(", ")
	builder.WriteString("is_single_parent=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSingleParent))
	builder.WriteString(", ")
	builder.WriteString("previous_bursary_recipient=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousBursaryRecipient))
	builder.WriteString(", ")
	if v := _m.ReasonForApplication; v != nil {
		builder.WriteString("reason_for_application=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("is_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVerified))
	builder.WriteString(", ")
	if v := _m.VerifiedBy; v != nil {
		builder.WriteString("verified_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VerifiedAt; v != nil {
		builder.WriteString("verified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_flagged=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFlagged))
	builder.WriteString(", ")
	if v := _m.FlagReason; v != nil {
		builder.WriteString("flag_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReviewerComments; v != nil {
		builder.WriteString("reviewer_comments=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("submitted_at=")
	builder.WriteString(_m.SubmittedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// BursaryApplications is a parsable slice of BursaryApplication.
type BursaryApplications []*BursaryApplication
