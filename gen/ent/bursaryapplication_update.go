// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/gen/ent/document"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// BursaryApplicationUpdate is the builder for updating BursaryApplication entities.
type BursaryApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *BursaryApplicationMutation
}

// Where appends a list predicates to the BursaryApplicationUpdate builder.
func (_u *BursaryApplicationUpdate) Where(ps ...predicate.BursaryApplication) *BursaryApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *BursaryApplicationUpdate) SetProfileID(v uuid.UUID) *BursaryApplicationUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableProfileID(v *uuid.UUID) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *BursaryApplicationUpdate) SetStudentName(v string) *BursaryApplicationUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableStudentName(v *string) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetInstitutionName sets the "institution_name" field.
func (_u *BursaryApplicationUpdate) SetInstitutionName(v string) *BursaryApplicationUpdate {
	_u.mutation.SetInstitutionName(v)
	return _u
}

// SetNillableInstitutionName sets the "institution_name" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableInstitutionName(v *string) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetInstitutionName(*v)
	}
	return _u
}

// SetEducationLevel sets the "education_level" field.
func (_u *BursaryApplicationUpdate) SetEducationLevel(v string) *BursaryApplicationUpdate {
	_u.mutation.SetEducationLevel(v)
	return _u
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableEducationLevel(v *string) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetEducationLevel(*v)
	}
	return _u
}

// ClearEducationLevel clears the value of the "education_level" field.
func (_u *BursaryApplicationUpdate) ClearEducationLevel() *BursaryApplicationUpdate {
	_u.mutation.ClearEducationLevel()
	return _u
}

// SetAnnualFamilyIncome sets the "annual_family_income" field.
func (_u *BursaryApplicationUpdate) SetAnnualFamilyIncome(v float64) *BursaryApplicationUpdate {
	_u.mutation.ResetAnnualFamilyIncome()
	_u.mutation.SetAnnualFamilyIncome(v)
	return _u
}

// SetNillableAnnualFamilyIncome sets the "annual_family_income" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableAnnualFamilyIncome(v *float64) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetAnnualFamilyIncome(*v)
	}
	return _u
}

// AddAnnualFamilyIncome adds value to the "annual_family_income" field.
func (_u *BursaryApplicationUpdate) AddAnnualFamilyIncome(v float64) *BursaryApplicationUpdate {
	_u.mutation.AddAnnualFamilyIncome(v)
	return _u
}

// SetTuitionFee sets the "tuition_fee" field.
func (_u *BursaryApplicationUpdate) SetTuitionFee(v float64) *BursaryApplicationUpdate {
	_u.mutation.ResetTuitionFee()
	_u.mutation.SetTuitionFee(v)
	return _u
}

// SetNillableTuitionFee sets the "tuition_fee" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableTuitionFee(v *float64) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetTuitionFee(*v)
	}
	return _u
}

// AddTuitionFee adds value to the "tuition_fee" field.
func (_u *BursaryApplicationUpdate) AddTuitionFee(v float64) *BursaryApplicationUpdate {
	_u.mutation.AddTuitionFee(v)
	return _u
}

// SetAmountRequested sets the "amount_requested" field.
func (_u *BursaryApplicationUpdate) SetAmountRequested(v float64) *BursaryApplicationUpdate {
	_u.mutation.ResetAmountRequested()
	_u.mutation.SetAmountRequested(v)
	return _u
}

// SetNillableAmountRequested sets the "amount_requested" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableAmountRequested(v *float64) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetAmountRequested(*v)
	}
	return _u
}

// AddAmountRequested adds value to the "amount_requested" field.
func (_u *BursaryApplicationUpdate) AddAmountRequested(v float64) *BursaryApplicationUpdate {
	_u.mutation.AddAmountRequested(v)
	return _u
}

// SetNumberOfSiblings sets the "number_of_siblings" field.
func (_u *BursaryApplicationUpdate) SetNumberOfSiblings(v int) *BursaryApplicationUpdate {
	_u.mutation.ResetNumberOfSiblings()
	_u.mutation.SetNumberOfSiblings(v)
	return _u
}

// SetNillableNumberOfSiblings sets the "number_of_siblings" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableNumberOfSiblings(v *int) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetNumberOfSiblings(*v)
	}
	return _u
}

// AddNumberOfSiblings adds value to the "number_of_siblings" field.
func (_u *BursaryApplicationUpdate) AddNumberOfSiblings(v int) *BursaryApplicationUpdate {
	_u.mutation.AddNumberOfSiblings(v)
	return _u
}

// SetSiblingsInSchool sets the "siblings_in_school" field.
func (_u *BursaryApplicationUpdate) SetSiblingsInSchool(v int) *BursaryApplicationUpdate {
	_u.mutation.ResetSiblingsInSchool()
	_u.mutation.SetSiblingsInSchool(v)
	return _u
}

// SetNillableSiblingsInSchool sets the "siblings_in_school" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableSiblingsInSchool(v *int) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetSiblingsInSchool(*v)
	}
	return _u
}

// AddSiblingsInSchool adds value to the "siblings_in_school" field.
func (_u *BursaryApplicationUpdate) AddSiblingsInSchool(v int) *BursaryApplicationUpdate {
	_u.mutation.AddSiblingsInSchool(v)
	return _u
}

// SetIsOrphan sets the "is_orphan" field.
func (_u *BursaryApplicationUpdate) SetIsOrphan(v bool) *BursaryApplicationUpdate {
	_u.mutation.SetIsOrphan(v)
	return _u
}

// SetNillableIsOrphan sets the "is_orphan" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableIsOrphan(v *bool) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetIsOrphan(*v)
	}
	return _u
}

// SetHasDisability sets the "has_disability" field.
func (_u *BursaryApplicationUpdate) SetHasDisability(v bool) *BursaryApplicationUpdate {
	_u.mutation.SetHasDisability(v)
	return _u
}

// SetNillableHasDisability sets the "has_disability" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableHasDisability(v *bool) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetHasDisability(*v)
	}
	return _u
}

// SetIsSingleParent sets the "is_single_parent" field.
func (_u *BursaryApplicationUpdate) SetIsSingleParent(v bool) *BursaryApplicationUpdate {
	_u.mutation.SetIsSingleParent(v)
	return _u
}

// SetNillableIsSingleParent sets the "is_single_parent" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableIsSingleParent(v *bool) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetIsSingleParent(*v)
	}
	return _u
}

// SetPreviousBursaryRecipient sets the "previous_bursary_recipient" field.
func (_u *BursaryApplicationUpdate) SetPreviousBursaryRecipient(v bool) *BursaryApplicationUpdate {
	_u.mutation.SetPreviousBursaryRecipient(v)
	return _u
}

// SetNillablePreviousBursaryRecipient sets the "previous_bursary_recipient" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillablePreviousBursaryRecipient(v *bool) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetPreviousBursaryRecipient(*v)
	}
	return _u
}

// SetReasonForApplication sets the "reason_for_application" field.
func (_u *BursaryApplicationUpdate) SetReasonForApplication(v string) *BursaryApplicationUpdate {
	_u.mutation.SetReasonForApplication(v)
	return _u
}

// SetNillableReasonForApplication sets the "reason_for_application" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableReasonForApplication(v *string) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetReasonForApplication(*v)
	}
	return _u
}

// ClearReasonForApplication clears the value of the "reason_for_application" field.
func (_u *BursaryApplicationUpdate) ClearReasonForApplication() *BursaryApplicationUpdate {
	_u.mutation.ClearReasonForApplication()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BursaryApplicationUpdate) SetStatus(v string) *BursaryApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableStatus(v *string) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *BursaryApplicationUpdate) SetIsVerified(v bool) *BursaryApplicationUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableIsVerified(v *bool) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetVerifiedBy sets the "verified_by" field.
func (_u *BursaryApplicationUpdate) SetVerifiedBy(v string) *BursaryApplicationUpdate {
	_u.mutation.SetVerifiedBy(v)
	return _u
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableVerifiedBy(v *string) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetVerifiedBy(*v)
	}
	return _u
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (_u *BursaryApplicationUpdate) ClearVerifiedBy() *BursaryApplicationUpdate {
	_u.mutation.ClearVerifiedBy()
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *BursaryApplicationUpdate) SetVerifiedAt(v time.Time) *BursaryApplicationUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableVerifiedAt(v *time.Time) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *BursaryApplicationUpdate) ClearVerifiedAt() *BursaryApplicationUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetIsFlagged sets the "is_flagged" field.
func (_u *BursaryApplicationUpdate) SetIsFlagged(v bool) *BursaryApplicationUpdate {
	_u.mutation.SetIsFlagged(v)
	return _u
}

// SetNillableIsFlagged sets the "is_flagged" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableIsFlagged(v *bool) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetIsFlagged(*v)
	}
	return _u
}

// SetFlagReason sets the "flag_reason" field.
func (_u *BursaryApplicationUpdate) SetFlagReason(v string) *BursaryApplicationUpdate {
	_u.mutation.SetFlagReason(v)
	return _u
}

// SetNillableFlagReason sets the "flag_reason" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableFlagReason(v *string) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetFlagReason(*v)
	}
	return _u
}

// ClearFlagReason clears the value of the "flag_reason" field.
func (_u *BursaryApplicationUpdate) ClearFlagReason() *BursaryApplicationUpdate {
	_u.mutation.ClearFlagReason()
	return _u
}

// SetReviewerComments sets the "reviewer_comments" field.
func (_u *BursaryApplicationUpdate) SetReviewerComments(v string) *BursaryApplicationUpdate {
	_u.mutation.SetReviewerComments(v)
	return _u
}

// SetNillableReviewerComments sets the "reviewer_comments" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableReviewerComments(v *string) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetReviewerComments(*v)
	}
	return _u
}

// ClearReviewerComments clears the value of the "reviewer_comments" field.
func (_u *BursaryApplicationUpdate) ClearReviewerComments() *BursaryApplicationUpdate {
	_u.mutation.ClearReviewerComments()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *BursaryApplicationUpdate) SetReviewedAt(v time.Time) *BursaryApplicationUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableReviewedAt(v *time.Time) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *BursaryApplicationUpdate) ClearReviewedAt() *BursaryApplicationUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BursaryApplicationUpdate) SetCreatedAt(v time.Time) *BursaryApplicationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BursaryApplicationUpdate) SetNillableCreatedAt(v *time.Time) *BursaryApplicationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BursaryApplicationUpdate) SetUpdatedAt(v time.Time) *BursaryApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the ApplicantProfile entity.
func (_u *BursaryApplicationUpdate) SetProfile(v *ApplicantProfile) *BursaryApplicationUpdate {
	return _u.SetProfileID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *BursaryApplicationUpdate) AddDocumentIDs(ids ...uuid.UUID) *BursaryApplicationUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *BursaryApplicationUpdate) AddDocuments(v ...*Document) *BursaryApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddStatusLogIDs adds the "status_logs" edge to the ApplicationStatusLog entity by IDs.
func (_u *BursaryApplicationUpdate) AddStatusLogIDs(ids ...uuid.UUID) *BursaryApplicationUpdate {
	_u.mutation.AddStatusLogIDs(ids...)
	return _u
}

// AddStatusLogs adds the "status_logs" edges to the ApplicationStatusLog entity.
func (_u *BursaryApplicationUpdate) AddStatusLogs(v ...*ApplicationStatusLog) *BursaryApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusLogIDs(ids...)
}

// Mutation returns the BursaryApplicationMutation object of the builder.
func (_u *BursaryApplicationUpdate) Mutation() *BursaryApplicationMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the ApplicantProfile entity.
func (_u *BursaryApplicationUpdate) ClearProfile() *BursaryApplicationUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *BursaryApplicationUpdate) ClearDocuments() *BursaryApplicationUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *BursaryApplicationUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *BursaryApplicationUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *BursaryApplicationUpdate) RemoveDocuments(v ...*Document) *BursaryApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearStatusLogs clears all "status_logs" edges to the ApplicationStatusLog entity.
func (_u *BursaryApplicationUpdate) ClearStatusLogs() *BursaryApplicationUpdate {
	_u.mutation.ClearStatusLogs()
	return _u
}

// RemoveStatusLogIDs removes the "status_logs" edge to ApplicationStatusLog entities by IDs.
func (_u *BursaryApplicationUpdate) RemoveStatusLogIDs(ids ...uuid.UUID) *BursaryApplicationUpdate {
	_u.mutation.RemoveStatusLogIDs(ids...)
	return _u
}

// RemoveStatusLogs removes "status_logs" edges to ApplicationStatusLog entities.
func (_u *BursaryApplicationUpdate) RemoveStatusLogs(v ...*ApplicationStatusLog) *BursaryApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BursaryApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BursaryApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BursaryApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BursaryApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BursaryApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bursaryapplication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BursaryApplicationUpdate) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := bursaryapplication.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstitutionName(); ok {
		if err := bursaryapplication.InstitutionNameValidator(v); err != nil {
			return &ValidationError{Name: "institution_name", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.institution_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnnualFamilyIncome(); ok {
		if err := bursaryapplication.AnnualFamilyIncomeValidator(v); err != nil {
			return &ValidationError{Name: "annual_family_income", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.annual_family_income": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TuitionFee(); ok {
		if err := bursaryapplication.TuitionFeeValidator(v); err != nil {
			return &ValidationError{Name: "tuition_fee", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.tuition_fee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountRequested(); ok {
		if err := bursaryapplication.AmountRequestedValidator(v); err != nil {
			return &ValidationError{Name: "amount_requested", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.amount_requested": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberOfSiblings(); ok {
		if err := bursaryapplication.NumberOfSiblingsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_siblings", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.number_of_siblings": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SiblingsInSchool(); ok {
		if err := bursaryapplication.SiblingsInSchoolValidator(v); err != nil {
			return &ValidationError{Name: "siblings_in_school", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.siblings_in_school": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bursaryapplication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.status": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BursaryApplication.profile"`)
	}
	return nil
}

func (_u *BursaryApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bursaryapplication.Table, bursaryapplication.Columns, sqlgraph.NewFieldSpec(bursaryapplication.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(bursaryapplication.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstitutionName(); ok {
		_spec.SetField(bursaryapplication.FieldInstitutionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EducationLevel(); ok {
		_spec.SetField(bursaryapplication.FieldEducationLevel, field.TypeString, value)
	}
	if _u.mutation.EducationLevelCleared() {
		_spec.ClearField(bursaryapplication.FieldEducationLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AnnualFamilyIncome(); ok {
		_spec.SetField(bursaryapplication.FieldAnnualFamilyIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnnualFamilyIncome(); ok {
		_spec.AddField(bursaryapplication.FieldAnnualFamilyIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TuitionFee(); ok {
		_spec.SetField(bursaryapplication.FieldTuitionFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTuitionFee(); ok {
		_spec.AddField(bursaryapplication.FieldTuitionFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AmountRequested(); ok {
		_spec.SetField(bursaryapplication.FieldAmountRequested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountRequested(); ok {
		_spec.AddField(bursaryapplication.FieldAmountRequested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NumberOfSiblings(); ok {
		_spec.SetField(bursaryapplication.FieldNumberOfSiblings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfSiblings(); ok {
		_spec.AddField(bursaryapplication.FieldNumberOfSiblings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SiblingsInSchool(); ok {
		_spec.SetField(bursaryapplication.FieldSiblingsInSchool, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSiblingsInSchool(); ok {
		_spec.AddField(bursaryapplication.FieldSiblingsInSchool, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsOrphan(); ok {
		_spec.SetField(bursaryapplication.FieldIsOrphan, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasDisability(); ok {
		_spec.SetField(bursaryapplication.FieldHasDisability, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSingleParent(); ok {
		_spec.SetField(bursaryapplication.FieldIsSingleParent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreviousBursaryRecipient(); ok {
		_spec.SetField(bursaryapplication.FieldPreviousBursaryRecipient, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReasonForApplication(); ok {
		_spec.SetField(bursaryapplication.FieldReasonForApplication, field.TypeString, value)
	}
	if _u.mutation.ReasonForApplicationCleared() {
		_spec.ClearField(bursaryapplication.FieldReasonForApplication, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bursaryapplication.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(bursaryapplication.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifiedBy(); ok {
		_spec.SetField(bursaryapplication.FieldVerifiedBy, field.TypeString, value)
	}
	if _u.mutation.VerifiedByCleared() {
		_spec.ClearField(bursaryapplication.FieldVerifiedBy, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(bursaryapplication.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(bursaryapplication.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsFlagged(); ok {
		_spec.SetField(bursaryapplication.FieldIsFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FlagReason(); ok {
		_spec.SetField(bursaryapplication.FieldFlagReason, field.TypeString, value)
	}
	if _u.mutation.FlagReasonCleared() {
		_spec.ClearField(bursaryapplication.FieldFlagReason, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewerComments(); ok {
		_spec.SetField(bursaryapplication.FieldReviewerComments, field.TypeString, value)
	}
	if _u.mutation.ReviewerCommentsCleared() {
		_spec.ClearField(bursaryapplication.FieldReviewerComments, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(bursaryapplication.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(bursaryapplication.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bursaryapplication.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bursaryapplication.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusLogsIDs(); len(nodes) > 0 && !_u.mutation.StatusLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bursaryapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BursaryApplicationUpdateOne is the builder for updating a single BursaryApplication entity.
type BursaryApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BursaryApplicationMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *BursaryApplicationUpdateOne) SetProfileID(v uuid.UUID) *BursaryApplicationUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableProfileID(v *uuid.UUID) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *BursaryApplicationUpdateOne) SetStudentName(v string) *BursaryApplicationUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableStudentName(v *string) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetInstitutionName sets the "institution_name" field.
func (_u *BursaryApplicationUpdateOne) SetInstitutionName(v string) *BursaryApplicationUpdateOne {
	_u.mutation.SetInstitutionName(v)
	return _u
}

// SetNillableInstitutionName sets the "institution_name" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableInstitutionName(v *string) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetInstitutionName(*v)
	}
	return _u
}

// SetEducationLevel sets the "education_level" field.
func (_u *BursaryApplicationUpdateOne) SetEducationLevel(v string) *BursaryApplicationUpdateOne {
	_u.mutation.SetEducationLevel(v)
	return _u
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableEducationLevel(v *string) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetEducationLevel(*v)
	}
	return _u
}

// ClearEducationLevel clears the value of the "education_level" field.
func (_u *BursaryApplicationUpdateOne) ClearEducationLevel() *BursaryApplicationUpdateOne {
	_u.mutation.ClearEducationLevel()
	return _u
}

// SetAnnualFamilyIncome sets the "annual_family_income" field.
func (_u *BursaryApplicationUpdateOne) SetAnnualFamilyIncome(v float64) *BursaryApplicationUpdateOne {
	_u.mutation.ResetAnnualFamilyIncome()
	_u.mutation.SetAnnualFamilyIncome(v)
	return _u
}

// SetNillableAnnualFamilyIncome sets the "annual_family_income" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableAnnualFamilyIncome(v *float64) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetAnnualFamilyIncome(*v)
	}
	return _u
}

// AddAnnualFamilyIncome adds value to the "annual_family_income" field.
func (_u *BursaryApplicationUpdateOne) AddAnnualFamilyIncome(v float64) *BursaryApplicationUpdateOne {
	_u.mutation.AddAnnualFamilyIncome(v)
	return _u
}

// SetTuitionFee sets the "tuition_fee" field.
func (_u *BursaryApplicationUpdateOne) SetTuitionFee(v float64) *BursaryApplicationUpdateOne {
	_u.mutation.ResetTuitionFee()
	_u.mutation.SetTuitionFee(v)
	return _u
}

// SetNillableTuitionFee sets the "tuition_fee" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableTuitionFee(v *float64) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetTuitionFee(*v)
	}
	return _u
}

// AddTuitionFee adds value to the "tuition_fee" field.
func (_u *BursaryApplicationUpdateOne) AddTuitionFee(v float64) *BursaryApplicationUpdateOne {
	_u.mutation.AddTuitionFee(v)
	return _u
}

// SetAmountRequested sets the "amount_requested" field.
func (_u *BursaryApplicationUpdateOne) SetAmountRequested(v float64) *BursaryApplicationUpdateOne {
	_u.mutation.ResetAmountRequested()
	_u.mutation.SetAmountRequested(v)
	return _u
}

// SetNillableAmountRequested sets the "amount_requested" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableAmountRequested(v *float64) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetAmountRequested(*v)
	}
	return _u
}

// AddAmountRequested adds value to the "amount_requested" field.
func (_u *BursaryApplicationUpdateOne) AddAmountRequested(v float64) *BursaryApplicationUpdateOne {
	_u.mutation.AddAmountRequested(v)
	return _u
}

// SetNumberOfSiblings sets the "number_of_siblings" field.
func (_u *BursaryApplicationUpdateOne) SetNumberOfSiblings(v int) *BursaryApplicationUpdateOne {
	_u.mutation.ResetNumberOfSiblings()
	_u.mutation.SetNumberOfSiblings(v)
	return _u
}

// SetNillableNumberOfSiblings sets the "number_of_siblings" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableNumberOfSiblings(v *int) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetNumberOfSiblings(*v)
	}
	return _u
}

// AddNumberOfSiblings adds value to the "number_of_siblings" field.
func (_u *BursaryApplicationUpdateOne) AddNumberOfSiblings(v int) *BursaryApplicationUpdateOne {
	_u.mutation.AddNumberOfSiblings(v)
	return _u
}

// SetSiblingsInSchool sets the "siblings_in_school" field.
func (_u *BursaryApplicationUpdateOne) SetSiblingsInSchool(v int) *BursaryApplicationUpdateOne {
	_u.mutation.ResetSiblingsInSchool()
	_u.mutation.SetSiblingsInSchool(v)
	return _u
}

// SetNillableSiblingsInSchool sets the "siblings_in_school" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableSiblingsInSchool(v *int) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetSiblingsInSchool(*v)
	}
	return _u
}

// AddSiblingsInSchool adds value to the "siblings_in_school" field.
func (_u *BursaryApplicationUpdateOne) AddSiblingsInSchool(v int) *BursaryApplicationUpdateOne {
	_u.mutation.AddSiblingsInSchool(v)
	return _u
}

// SetIsOrphan sets the "is_orphan" field.
func (_u *BursaryApplicationUpdateOne) SetIsOrphan(v bool) *BursaryApplicationUpdateOne {
	_u.mutation.SetIsOrphan(v)
	return _u
}

// SetNillableIsOrphan sets the "is_orphan" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableIsOrphan(v *bool) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetIsOrphan(*v)
	}
	return _u
}

// SetHasDisability sets the "has_disability" field.
func (_u *BursaryApplicationUpdateOne) SetHasDisability(v bool) *BursaryApplicationUpdateOne {
	_u.mutation.SetHasDisability(v)
	return _u
}

// SetNillableHasDisability sets the "has_disability" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableHasDisability(v *bool) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetHasDisability(*v)
	}
	return _u
}

// SetIsSingleParent sets the "is_single_parent" field.
func (_u *BursaryApplicationUpdateOne) SetIsSingleParent(v bool) *BursaryApplicationUpdateOne {
	_u.mutation.SetIsSingleParent(v)
	return _u
}

// SetNillableIsSingleParent sets the "is_single_parent" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableIsSingleParent(v *bool) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetIsSingleParent(*v)
	}
	return _u
}

// SetPreviousBursaryRecipient sets the "previous_bursary_recipient" field.
func (_u *BursaryApplicationUpdateOne) SetPreviousBursaryRecipient(v bool) *BursaryApplicationUpdateOne {
	_u.mutation.SetPreviousBursaryRecipient(v)
	return _u
}

// SetNillablePreviousBursaryRecipient sets the "previous_bursary_recipient" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillablePreviousBursaryRecipient(v *bool) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetPreviousBursaryRecipient(*v)
	}
	return _u
}

// SetReasonForApplication sets the "reason_for_application" field.
func (_u *BursaryApplicationUpdateOne) SetReasonForApplication(v string) *BursaryApplicationUpdateOne {
	_u.mutation.SetReasonForApplication(v)
	return _u
}

// SetNillableReasonForApplication sets the "reason_for_application" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableReasonForApplication(v *string) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetReasonForApplication(*v)
	}
	return _u
}

// ClearReasonForApplication clears the value of the "reason_for_application" field.
func (_u *BursaryApplicationUpdateOne) ClearReasonForApplication() *BursaryApplicationUpdateOne {
	_u.mutation.ClearReasonForApplication()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BursaryApplicationUpdateOne) SetStatus(v string) *BursaryApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableStatus(v *string) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *BursaryApplicationUpdateOne) SetIsVerified(v bool) *BursaryApplicationUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableIsVerified(v *bool) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetVerifiedBy sets the "verified_by" field.
func (_u *BursaryApplicationUpdateOne) SetVerifiedBy(v string) *BursaryApplicationUpdateOne {
	_u.mutation.SetVerifiedBy(v)
	return _u
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableVerifiedBy(v *string) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetVerifiedBy(*v)
	}
	return _u
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (_u *BursaryApplicationUpdateOne) ClearVerifiedBy() *BursaryApplicationUpdateOne {
	_u.mutation.ClearVerifiedBy()
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *BursaryApplicationUpdateOne) SetVerifiedAt(v time.Time) *BursaryApplicationUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableVerifiedAt(v *time.Time) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *BursaryApplicationUpdateOne) ClearVerifiedAt() *BursaryApplicationUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetIsFlagged sets the "is_flagged" field.
func (_u *BursaryApplicationUpdateOne) SetIsFlagged(v bool) *BursaryApplicationUpdateOne {
	_u.mutation.SetIsFlagged(v)
	return _u
}

// SetNillableIsFlagged sets the "is_flagged" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableIsFlagged(v *bool) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetIsFlagged(*v)
	}
	return _u
}

// SetFlagReason sets the "flag_reason" field.
func (_u *BursaryApplicationUpdateOne) SetFlagReason(v string) *BursaryApplicationUpdateOne {
	_u.mutation.SetFlagReason(v)
	return _u
}

// SetNillableFlagReason sets the "flag_reason" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableFlagReason(v *string) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetFlagReason(*v)
	}
	return _u
}

// ClearFlagReason clears the value of the "flag_reason" field.
func (_u *BursaryApplicationUpdateOne) ClearFlagReason() *BursaryApplicationUpdateOne {
	_u.mutation.ClearFlagReason()
	return _u
}

// SetReviewerComments sets the "reviewer_comments" field.
func (_u *BursaryApplicationUpdateOne) SetReviewerComments(v string) *BursaryApplicationUpdateOne {
	_u.mutation.SetReviewerComments(v)
	return _u
}

// SetNillableReviewerComments sets the "reviewer_comments" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableReviewerComments(v *string) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetReviewerComments(*v)
	}
	return _u
}

// ClearReviewerComments clears the value of the "reviewer_comments" field.
func (_u *BursaryApplicationUpdateOne) ClearReviewerComments() *BursaryApplicationUpdateOne {
	_u.mutation.ClearReviewerComments()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *BursaryApplicationUpdateOne) SetReviewedAt(v time.Time) *BursaryApplicationUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableReviewedAt(v *time.Time) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *BursaryApplicationUpdateOne) ClearReviewedAt() *BursaryApplicationUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BursaryApplicationUpdateOne) SetCreatedAt(v time.Time) *BursaryApplicationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BursaryApplicationUpdateOne) SetNillableCreatedAt(v *time.Time) *BursaryApplicationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BursaryApplicationUpdateOne) SetUpdatedAt(v time.Time) *BursaryApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the ApplicantProfile entity.
func (_u *BursaryApplicationUpdateOne) SetProfile(v *ApplicantProfile) *BursaryApplicationUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *BursaryApplicationUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *BursaryApplicationUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *BursaryApplicationUpdateOne) AddDocuments(v ...*Document) *BursaryApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddStatusLogIDs adds the "status_logs" edge to the ApplicationStatusLog entity by IDs.
func (_u *BursaryApplicationUpdateOne) AddStatusLogIDs(ids ...uuid.UUID) *BursaryApplicationUpdateOne {
	_u.mutation.AddStatusLogIDs(ids...)
	return _u
}

// AddStatusLogs adds the "status_logs" edges to the ApplicationStatusLog entity.
func (_u *BursaryApplicationUpdateOne) AddStatusLogs(v ...*ApplicationStatusLog) *BursaryApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusLogIDs(ids...)
}

// Mutation returns the BursaryApplicationMutation object of the builder.
func (_u *BursaryApplicationUpdateOne) Mutation() *BursaryApplicationMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the ApplicantProfile entity.
func (_u *BursaryApplicationUpdateOne) ClearProfile() *BursaryApplicationUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *BursaryApplicationUpdateOne) ClearDocuments() *BursaryApplicationUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *BursaryApplicationUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *BursaryApplicationUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *BursaryApplicationUpdateOne) RemoveDocuments(v ...*Document) *BursaryApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearStatusLogs clears all "status_logs" edges to the ApplicationStatusLog entity.
func (_u *BursaryApplicationUpdateOne) ClearStatusLogs() *BursaryApplicationUpdateOne {
	_u.mutation.ClearStatusLogs()
	return _u
}

// RemoveStatusLogIDs removes the "status_logs" edge to ApplicationStatusLog entities by IDs.
func (_u *BursaryApplicationUpdateOne) RemoveStatusLogIDs(ids ...uuid.UUID) *BursaryApplicationUpdateOne {
	_u.mutation.RemoveStatusLogIDs(ids...)
	return _u
}

// RemoveStatusLogs removes "status_logs" edges to ApplicationStatusLog entities.
func (_u *BursaryApplicationUpdateOne) RemoveStatusLogs(v ...*ApplicationStatusLog) *BursaryApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusLogIDs(ids...)
}

// Where appends a list predicates to the BursaryApplicationUpdate builder.
func (_u *BursaryApplicationUpdateOne) Where(ps ...predicate.BursaryApplication) *BursaryApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BursaryApplicationUpdateOne) Select(field string, fields ...string) *BursaryApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BursaryApplication entity.
func (_u *BursaryApplicationUpdateOne) Save(ctx context.Context) (*BursaryApplication, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BursaryApplicationUpdateOne) SaveX(ctx context.Context) *BursaryApplication {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BursaryApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BursaryApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BursaryApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bursaryapplication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BursaryApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := bursaryapplication.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstitutionName(); ok {
		if err := bursaryapplication.InstitutionNameValidator(v); err != nil {
			return &ValidationError{Name: "institution_name", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.institution_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnnualFamilyIncome(); ok {
		if err := bursaryapplication.AnnualFamilyIncomeValidator(v); err != nil {
			return &ValidationError{Name: "annual_family_income", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.annual_family_income": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TuitionFee(); ok {
		if err := bursaryapplication.TuitionFeeValidator(v); err != nil {
			return &ValidationError{Name: "tuition_fee", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.tuition_fee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountRequested(); ok {
		if err := bursaryapplication.AmountRequestedValidator(v); err != nil {
			return &ValidationError{Name: "amount_requested", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.amount_requested": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberOfSiblings(); ok {
		if err := bursaryapplication.NumberOfSiblingsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_siblings", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.number_of_siblings": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SiblingsInSchool(); ok {
		if err := bursaryapplication.SiblingsInSchoolValidator(v); err != nil {
			return &ValidationError{Name: "siblings_in_school", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.siblings_in_school": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bursaryapplication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BursaryApplication.status": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BursaryApplication.profile"`)
	}
	return nil
}

func (_u *BursaryApplicationUpdateOne) sqlSave(ctx context.Context) (_node *BursaryApplication, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bursaryapplication.Table, bursaryapplication.Columns, sqlgraph.NewFieldSpec(bursaryapplication.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BursaryApplication.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bursaryapplication.FieldID)
		for _, f := range fields {
			if !bursaryapplication.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bursaryapplication.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(bursaryapplication.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstitutionName(); ok {
		_spec.SetField(bursaryapplication.FieldInstitutionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EducationLevel(); ok {
		_spec.SetField(bursaryapplication.FieldEducationLevel, field.TypeString, value)
	}
	if _u.mutation.EducationLevelCleared() {
		_spec.ClearField(bursaryapplication.FieldEducationLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AnnualFamilyIncome(); ok {
		_spec.SetField(bursaryapplication.FieldAnnualFamilyIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnnualFamilyIncome(); ok {
		_spec.AddField(bursaryapplication.FieldAnnualFamilyIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TuitionFee(); ok {
		_spec.SetField(bursaryapplication.FieldTuitionFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTuitionFee(); ok {
		_spec.AddField(bursaryapplication.FieldTuitionFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AmountRequested(); ok {
		_spec.SetField(bursaryapplication.FieldAmountRequested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountRequested(); ok {
		_spec.AddField(bursaryapplication.FieldAmountRequested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NumberOfSiblings(); ok {
		_spec.SetField(bursaryapplication.FieldNumberOfSiblings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfSiblings(); ok {
		_spec.AddField(bursaryapplication.FieldNumberOfSiblings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SiblingsInSchool(); ok {
		_spec.SetField(bursaryapplication.FieldSiblingsInSchool, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSiblingsInSchool(); ok {
		_spec.AddField(bursaryapplication.FieldSiblingsInSchool, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsOrphan(); ok {
		_spec.SetField(bursaryapplication.FieldIsOrphan, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasDisability(); ok {
		_spec.SetField(bursaryapplication.FieldHasDisability, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSingleParent(); ok {
		_spec.SetField(bursaryapplication.FieldIsSingleParent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreviousBursaryRecipient(); ok {
		_spec.SetField(bursaryapplication.FieldPreviousBursaryRecipient, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReasonForApplication(); ok {
		_spec.SetField(bursaryapplication.FieldReasonForApplication, field.TypeString, value)
	}
	if _u.mutation.ReasonForApplicationCleared() {
		_spec.ClearField(bursaryapplication.FieldReasonForApplication, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bursaryapplication.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(bursaryapplication.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifiedBy(); ok {
		_spec.SetField(bursaryapplication.FieldVerifiedBy, field.TypeString, value)
	}
	if _u.mutation.VerifiedByCleared() {
		_spec.ClearField(bursaryapplication.FieldVerifiedBy, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(bursaryapplication.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(bursaryapplication.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsFlagged(); ok {
		_spec.SetField(bursaryapplication.FieldIsFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FlagReason(); ok {
		_spec.SetField(bursaryapplication.FieldFlagReason, field.TypeString, value)
	}
	if _u.mutation.FlagReasonCleared() {
		_spec.ClearField(bursaryapplication.FieldFlagReason, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewerComments(); ok {
		_spec.SetField(bursaryapplication.FieldReviewerComments, field.TypeString, value)
	}
	if _u.mutation.ReviewerCommentsCleared() {
		_spec.ClearField(bursaryapplication.FieldReviewerComments, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(bursaryapplication.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(bursaryapplication.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bursaryapplication.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bursaryapplication.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusLogsIDs(); len(nodes) > 0 && !_u.mutation.StatusLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BursaryApplication{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bursaryapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
