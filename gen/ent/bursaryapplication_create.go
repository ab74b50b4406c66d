// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/gen/ent/document"
)

// BursaryApplicationCreate is the builder for creating a BursaryApplication entity.
type BursaryApplicationCreate struct {
	config
	mutation *BursaryApplicationMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *BursaryApplicationCreate) SetProfileID(v uuid.UUID) *BursaryApplicationCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetApplicationNumber sets the "application_number" field.
func (_c *BursaryApplicationCreate) SetApplicationNumber(v string) *BursaryApplicationCreate {
	_c.mutation.SetApplicationNumber(v)
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *BursaryApplicationCreate) SetStudentName(v string) *BursaryApplicationCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetInstitutionName sets the "institution_name" field.
func (_c *BursaryApplicationCreate) SetInstitutionName(v string) *BursaryApplicationCreate {
	_c.mutation.SetInstitutionName(v)
	return _c
}

// SetEducationLevel sets the "education_level" field.
func (_c *BursaryApplicationCreate) SetEducationLevel(v string) *BursaryApplicationCreate {
	_c.mutation.SetEducationLevel(v)
	return _c
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableEducationLevel(v *string) *BursaryApplicationCreate {
	if v != nil {
		_c.SetEducationLevel(*v)
	}
	return _c
}

// SetAnnualFamilyIncome sets the "annual_family_income" field.
func (_c *BursaryApplicationCreate) SetAnnualFamilyIncome(v float64) *BursaryApplicationCreate {
	_c.mutation.SetAnnualFamilyIncome(v)
	return _c
}

// SetTuitionFee sets the "tuition_fee" field.
func (_c *BursaryApplicationCreate) SetTuitionFee(v float64) *BursaryApplicationCreate {
	_c.mutation.SetTuitionFee(v)
	return _c
}

// SetAmountRequested sets the "amount_requested" field.
func (_c *BursaryApplicationCreate) SetAmountRequested(v float64) *BursaryApplicationCreate {
	_c.mutation.SetAmountRequested(v)
	return _c
}

// SetNumberOfSiblings sets the "number_of_siblings" field.
func (_c *BursaryApplicationCreate) SetNumberOfSiblings(v int) *BursaryApplicationCreate {
	_c.mutation.SetNumberOfSiblings(v)
	return _c
}

// SetNillableNumberOfSiblings sets the "number_of_siblings" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableNumberOfSiblings(v *int) *BursaryApplicationCreate {
	if v != nil {
		_c.SetNumberOfSiblings(*v)
	}
	return _c
}

// SetSiblingsInSchool sets the "siblings_in_school" field.
func (_c *BursaryApplicationCreate) SetSiblingsInSchool(v int) *BursaryApplicationCreate {
	_c.mutation.SetSiblingsInSchool(v)
	return _c
}

// SetNillableSiblingsInSchool sets the "siblings_in_school" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableSiblingsInSchool(v *int) *BursaryApplicationCreate {
	if v != nil {
		_c.SetSiblingsInSchool(*v)
	}
	return _c
}

// SetIsOrphan sets the "is_orphan" field.
func (_c *BursaryApplicationCreate) SetIsOrphan(v bool) *BursaryApplicationCreate {
	_c.mutation.SetIsOrphan(v)
	return _c
}

// SetNillableIsOrphan sets the "is_orphan" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableIsOrphan(v *bool) *BursaryApplicationCreate {
	if v != nil {
		_c.SetIsOrphan(*v)
	}
	return _c
}

// SetHasDisability sets the "has_disability" field.
func (_c *BursaryApplicationCreate) SetHasDisability(v bool) *BursaryApplicationCreate {
	_c.mutation.SetHasDisability(v)
	return _c
}

// SetNillableHasDisability sets the "has_disability" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableHasDisability(v *bool) *BursaryApplicationCreate {
	if v != nil {
		_c.SetHasDisability(*v)
	}
	return _c
}

// SetIsSingleParent sets the "is_single_parent" field.
func (_c *BursaryApplicationCreate) SetIsSingleParent(v bool) *BursaryApplicationCreate {
	_c.mutation.SetIsSingleParent(v)
	return _c
}

// SetNillableIsSingleParent sets the "is_single_parent" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableIsSingleParent(v *bool) *BursaryApplicationCreate {
	if v != nil {
		_c.SetIsSingleParent(*v)
	}
	return _c
}

// SetPreviousBursaryRecipient sets the "previous_bursary_recipient" field.
func (_c *BursaryApplicationCreate) SetPreviousBursaryRecipient(v bool) *BursaryApplicationCreate {
	_c.mutation.SetPreviousBursaryRecipient(v)
	return _c
}

// SetNillablePreviousBursaryRecipient sets the "previous_bursary_recipient" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillablePreviousBursaryRecipient(v *bool) *BursaryApplicationCreate {
	if v != nil {
		_c.SetPreviousBursaryRecipient(*v)
	}
	return _c
}

// SetReasonForApplication sets the "reason_for_application" field.
func (_c *BursaryApplicationCreate) SetReasonForApplication(v string) *BursaryApplicationCreate {
	_c.mutation.SetReasonForApplication(v)
	return _c
}

// SetNillableReasonForApplication sets the "reason_for_application" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableReasonForApplication(v *string) *BursaryApplicationCreate {
	if v != nil {
		_c.SetReasonForApplication(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BursaryApplicationCreate) SetStatus(v string) *BursaryApplicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableStatus(v *string) *BursaryApplicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsVerified sets the "is_verified" field.
func (_c *BursaryApplicationCreate) SetIsVerified(v bool) *BursaryApplicationCreate {
	_c.mutation.SetIsVerified(v)
	return _c
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableIsVerified(v *bool) *BursaryApplicationCreate {
	if v != nil {
		_c.SetIsVerified(*v)
	}
	return _c
}

// SetVerifiedBy sets the "verified_by" field.
func (_c *BursaryApplicationCreate) SetVerifiedBy(v string) *BursaryApplicationCreate {
	_c.mutation.SetVerifiedBy(v)
	return _c
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableVerifiedBy(v *string) *BursaryApplicationCreate {
	if v != nil {
		_c.SetVerifiedBy(*v)
	}
	return _c
}

// SetVerifiedAt sets the "verified_at" field.
func (_c *BursaryApplicationCreate) SetVerifiedAt(v time.Time) *BursaryApplicationCreate {
	_c.mutation.SetVerifiedAt(v)
	return _c
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableVerifiedAt(v *time.Time) *BursaryApplicationCreate {
	if v != nil {
		_c.SetVerifiedAt(*v)
	}
	return _c
}

// SetIsFlagged sets the "is_flagged" field.
func (_c *BursaryApplicationCreate) SetIsFlagged(v bool) *BursaryApplicationCreate {
	_c.mutation.SetIsFlagged(v)
	return _c
}

// SetNillableIsFlagged sets the "is_flagged" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableIsFlagged(v *bool) *BursaryApplicationCreate {
	if v != nil {
		_c.SetIsFlagged(*v)
	}
	return _c
}

// SetFlagReason sets the "flag_reason" field.
func (_c *BursaryApplicationCreate) SetFlagReason(v string) *BursaryApplicationCreate {
	_c.mutation.SetFlagReason(v)
	return _c
}

// SetNillableFlagReason sets the "flag_reason" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableFlagReason(v *string) *BursaryApplicationCreate {
	if v != nil {
		_c.SetFlagReason(*v)
	}
	return _c
}

// SetReviewerComments sets the "reviewer_comments" field.
func (_c *BursaryApplicationCreate) SetReviewerComments(v string) *BursaryApplicationCreate {
	_c.mutation.SetReviewerComments(v)
	return _c
}

// SetNillableReviewerComments sets the "reviewer_comments" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableReviewerComments(v *string) *BursaryApplicationCreate {
	if v != nil {
		_c.SetReviewerComments(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *BursaryApplicationCreate) SetSubmittedAt(v time.Time) *BursaryApplicationCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableSubmittedAt(v *time.Time) *BursaryApplicationCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *BursaryApplicationCreate) SetReviewedAt(v time.Time) *BursaryApplicationCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableReviewedAt(v *time.Time) *BursaryApplicationCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BursaryApplicationCreate) SetCreatedAt(v time.Time) *BursaryApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableCreatedAt(v *time.Time) *BursaryApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BursaryApplicationCreate) SetUpdatedAt(v time.Time) *BursaryApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableUpdatedAt(v *time.Time) *BursaryApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BursaryApplicationCreate) SetID(v uuid.UUID) *BursaryApplicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BursaryApplicationCreate) SetNillableID(v *uuid.UUID) *BursaryApplicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the ApplicantProfile entity.
func (_c *BursaryApplicationCreate) SetProfile(v *ApplicantProfile) *BursaryApplicationCreate {
	return _c.SetProfileID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *BursaryApplicationCreate) AddDocumentIDs(ids ...uuid.UUID) *BursaryApplicationCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *BursaryApplicationCreate) AddDocuments(v ...*Document) *BursaryApplicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddStatusLogIDs adds the "status_logs" edge to the ApplicationStatusLog entity by IDs.
func (_c *BursaryApplicationCreate) AddStatusLogIDs(ids ...uuid.UUID) *BursaryApplicationCreate {
	_c.mutation.AddStatusLogIDs(ids...)
	return _c
}

// AddStatusLogs adds the "status_logs" edges to the ApplicationStatusLog entity.
func (_c *BursaryApplicationCreate) AddStatusLogs(v ...*ApplicationStatusLog) *BursaryApplicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusLogIDs(ids...)
}

// Mutation returns the BursaryApplicationMutation object of the builder.
func (_c *BursaryApplicationCreate) Mutation() *BursaryApplicationMutation {
	return _c.mutation
}

// Save creates the BursaryApplication in the database.
func (_c *BursaryApplicationCreate) Save(ctx context.Context) (*BursaryApplication, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BursaryApplicationCreate) SaveX(ctx context.Context) *BursaryApplication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BursaryApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BursaryApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BursaryApplicationCreate) defaults() {
	if _, ok := _c.mutation.NumberOfSiblings(); !ok {
		v := bursaryapplication.DefaultNumberOfSiblings
		_c.mutation.SetNumberOfSiblings(v)
	}
	if _, ok := _c.mutation.SiblingsInSchool(); !ok {
		v := bursaryapplication.DefaultSiblingsInSchool
		_c.mutation.SetSiblingsInSchool(v)
	}
	if _, ok := _c.mutation.IsOrphan(); !ok {
		v := bursaryapplication.DefaultIsOrphan
		_c.mutation.SetIsOrphan(v)
	}
	if _, ok := _c.mutation.HasDisability(); !ok {
		v := bursaryapplication.DefaultHasDisability
		_c.mutation.SetHasDisability(v)
	}
	if _, ok := _c.mutation.IsSingleParent(); !ok {
		v := bursaryapplication.DefaultIsSingleParent
		_c.mutation.SetIsSingleParent(v)
	}
	if _, ok := _c.mutation.PreviousBursaryRecipient(); !ok {
		v := bursaryapplication.DefaultPreviousBursaryRecipient
		_c.mutation.SetPreviousBursaryRecipient(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := bursaryapplication.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		v := bursaryapplication.DefaultIsVerified
		_c.mutation.SetIsVerified(v)
	}
	if _, ok := _c.mutation.IsFlagged(); !ok {
		v := bursaryapplication.DefaultIsFlagged
		_c.mutation.SetIsFlagged(v)
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := bursaryapplication.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bursaryapplication.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bursaryapplication.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bursaryapplication.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BursaryApplicationCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "BursaryApplication.profile_id"`)}
	}
	if _, ok := _c.mutation.ApplicationNumber(); !ok {
		return &ValidationError{Name: "application_number", err: errors.New(`ent: missing required field "BursaryApplication.application_number"`)}
	}
	if v, ok := _c.mutation.ApplicationNumber(); ok {
		if err := bursaryapplication.ApplicationNumberValidator(v); err != nil {
			return &ValidationError{Name: "application_number", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.application_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "BursaryApplication.student_name"`)}
	}
	if v, ok := _c.mutation.StudentName(); ok {
		if err := bursaryapplication.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.student_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InstitutionName(); !ok {
		return &ValidationError{Name: "institution_name", err: errors.New(`ent: missing required field "BursaryApplication.institution_name"`)}
	}
	if v, ok := _c.mutation.InstitutionName(); ok {
		if err := bursaryapplication.InstitutionNameValidator(v); err != nil {
			return &ValidationError{Name: "institution_name", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.institution_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnnualFamilyIncome(); !ok {
		return &ValidationError{Name: "annual_family_income", err: errors.New(`ent: missing required field "BursaryApplication.annual_family_income"`)}
	}
	if v, ok := _c.mutation.AnnualFamilyIncome(); ok {
		if err := bursaryapplication.AnnualFamilyIncomeValidator(v); err != nil {
			return &ValidationError{Name: "annual_family_income", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.annual_family_income": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TuitionFee(); !ok {
		return &ValidationError{Name: "tuition_fee", err: errors.New(`ent: missing required field "BursaryApplication.tuition_fee"`)}
	}
	if v, ok := _c.mutation.TuitionFee(); ok {
		if err := bursaryapplication.TuitionFeeValidator(v); err != nil {
			return &ValidationError{Name: "tuition_fee", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.tuition_fee": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountRequested(); !ok {
		return &ValidationError{Name: "amount_requested", err: errors.New(`ent: missing required field "BursaryApplication.amount_requested"`)}
	}
	if v, ok := _c.mutation.AmountRequested(); ok {
		if err := bursaryapplication.AmountRequestedValidator(v); err != nil {
			return &ValidationError{Name: "amount_requested", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.amount_requested": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumberOfSiblings(); !ok {
		return &ValidationError{Name: "number_of_siblings", err: errors.New(`ent: missing required field "BursaryApplication.number_of_siblings"`)}
	}
	if v, ok := _c.mutation.NumberOfSiblings(); ok {
		if err := bursaryapplication.NumberOfSiblingsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_siblings", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.number_of_siblings": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SiblingsInSchool(); !ok {
		return &ValidationError{Name: "siblings_in_school", err: errors.New(`ent: missing required field "BursaryApplication.siblings_in_school"`)}
	}
	if v, ok := _c.mutation.SiblingsInSchool(); ok {
		if err := bursaryapplication.SiblingsInSchoolValidator(v); err != nil {
			return &ValidationError{Name: "siblings_in_school", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.siblings_in_school": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsOrphan(); !ok {
		return &ValidationError{Name: "is_orphan", err: errors.New(`ent: missing required field "BursaryApplication.is_orphan"`)}
	}
	if _, ok := _c.mutation.HasDisability(); !ok {
		return &ValidationError{Name: "has_disability", err: errors.New(`ent: missing required field "BursaryApplication.has_disability"`)}
	}
	if _, ok := _c.mutation.IsSingleParent(); !ok {
		return &ValidationError{Name: "is_single_parent", err: errors.New(`ent: missing required field "BursaryApplication.is_single_parent"`)}
	}
	if _, ok := _c.mutation.PreviousBursaryRecipient(); !ok {
		return &ValidationError{Name: "previous_bursary_recipient", err: errors.New(`ent: missing required field "BursaryApplication.previous_bursary_recipient"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BursaryApplication.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bursaryapplication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		return &ValidationError{Name: "is_verified", err: errors.New(`ent: missing required field "BursaryApplication.is_verified"`)}
	}
	if _, ok := _c.mutation.IsFlagged(); !ok {
		return &ValidationError{Name: "is_flagged", err: errors.New(`ent: missing required field "BursaryApplication.is_flagged"`)}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "BursaryApplication.submitted_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BursaryApplication.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BursaryApplication.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "BursaryApplication.profile"`)}
	}
	return nil
}

func (_c *BursaryApplicationCreate) sqlSave(ctx context.Context) (*BursaryApplication, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
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
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BursaryApplicationCreate) createSpec() (*BursaryApplication, *sqlgraph.CreateSpec) {
	var (
		_node = &BursaryApplication{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bursaryapplication.Table, sqlgraph.NewFieldSpec(bursaryapplication.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ApplicationNumber(); ok {
		_spec.SetField(bursaryapplication.FieldApplicationNumber, field.TypeString, value)
		_node.ApplicationNumber = value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(bursaryapplication.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.InstitutionName(); ok {
		_spec.SetField(bursaryapplication.FieldInstitutionName, field.TypeString, value)
		_node.InstitutionName = value
	}
	if value, ok := _c.mutation.EducationLevel(); ok {
		_spec.SetField(bursaryapplication.FieldEducationLevel, field.TypeString, value)
		_node.EducationLevel = &value
	}
	if value, ok := _c.mutation.AnnualFamilyIncome(); ok {
		_spec.SetField(bursaryapplication.FieldAnnualFamilyIncome, field.TypeFloat64, value)
		_node.AnnualFamilyIncome = value
	}
	if value, ok := _c.mutation.TuitionFee(); ok {
		_spec.SetField(bursaryapplication.FieldTuitionFee, field.TypeFloat64, value)
		_node.TuitionFee = value
	}
	if value, ok := _c.mutation.AmountRequested(); ok {
		_spec.SetField(bursaryapplication.FieldAmountRequested, field.TypeFloat64, value)
		_node.AmountRequested = value
	}
	if value, ok := _c.mutation.NumberOfSiblings(); ok {
		_spec.SetField(bursaryapplication.FieldNumberOfSiblings, field.TypeInt, value)
		_node.NumberOfSiblings = value
	}
	if value, ok := _c.mutation.SiblingsInSchool(); ok {
		_spec.SetField(bursaryapplication.FieldSiblingsInSchool, field.TypeInt, value)
		_node.SiblingsInSchool = value
	}
	if value, ok := _c.mutation.IsOrphan(); ok {
		_spec.SetField(bursaryapplication.FieldIsOrphan, field.TypeBool, value)
		_node.IsOrphan = value
	}
	if value, ok := _c.mutation.HasDisability(); ok {
		_spec.SetField(bursaryapplication.FieldHasDisability, field.TypeBool, value)
		_node.HasDisability = value
	}
	if value, ok := _c.mutation.IsSingleParent(); ok {
		_spec.SetField(bursaryapplication.FieldIsSingleParent, field.TypeBool, value)
		_node.IsSingleParent = value
	}
	if value, ok := _c.mutation.PreviousBursaryRecipient(); ok {
		_spec.SetField(bursaryapplication.FieldPreviousBursaryRecipient, field.TypeBool, value)
		_node.PreviousBursaryRecipient = value
	}
	if value, ok := _c.mutation.ReasonForApplication(); ok {
		_spec.SetField(bursaryapplication.FieldReasonForApplication, field.TypeString, value)
		_node.ReasonForApplication = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bursaryapplication.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsVerified(); ok {
		_spec.SetField(bursaryapplication.FieldIsVerified, field.TypeBool, value)
		_node.IsVerified = value
	}
	if value, ok := _c.mutation.VerifiedBy(); ok {
		_spec.SetField(bursaryapplication.FieldVerifiedBy, field.TypeString, value)
		_node.VerifiedBy = &value
	}
	if value, ok := _c.mutation.VerifiedAt(); ok {
		_spec.SetField(bursaryapplication.FieldVerifiedAt, field.TypeTime, value)
		_node.VerifiedAt = &value
	}
	if value, ok := _c.mutation.IsFlagged(); ok {
		_spec.SetField(bursaryapplication.FieldIsFlagged, field.TypeBool, value)
		_node.IsFlagged = value
	}
	if value, ok := _c.mutation.FlagReason(); ok {
		_spec.SetField(bursaryapplication.FieldFlagReason, field.TypeString, value)
		_node.FlagReason = &value
	}
	if value, ok := _c.mutation.ReviewerComments(); ok {
		_spec.SetField(bursaryapplication.FieldReviewerComments, field.TypeString, value)
		_node.ReviewerComments = &value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(bursaryapplication.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(bursaryapplication.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bursaryapplication.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bursaryapplication.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bursaryapplication.ProfileTable,
			Columns: []string{bursaryapplication.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicantprofile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bursaryapplication.DocumentsTable,
			Columns: []string{bursaryapplication.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatusLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bursaryapplication.StatusLogsTable,
			Columns: []string{bursaryapplication.StatusLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicationstatuslog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BursaryApplicationCreateBulk is the builder for creating many BursaryApplication entities in bulk.
type BursaryApplicationCreateBulk struct {
	config
	err      error
	builders []*BursaryApplicationCreate
}

// Save creates the BursaryApplication entities in the database.
func (_c *BursaryApplicationCreateBulk) Save(ctx context.Context) ([]*BursaryApplication, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BursaryApplication, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BursaryApplicationMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BursaryApplicationCreateBulk) SaveX(ctx context.Context) []*BursaryApplication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BursaryApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BursaryApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
