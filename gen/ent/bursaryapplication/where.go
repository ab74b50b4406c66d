// Code generated by ent, DO NOT EDIT.

package bursaryapplication

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldProfileID, v))
}

// ApplicationNumber applies equality check predicate on the "application_number" field. It's identical to ApplicationNumberEQ.
func ApplicationNumber(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldApplicationNumber, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldStudentName, v))
}

// InstitutionName applies equality check predicate on the "institution_name" field. It's identical to InstitutionNameEQ.
func InstitutionName(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldInstitutionName, v))
}

// EducationLevel applies equality check predicate on the "education_level" field. It's identical to EducationLevelEQ.
func EducationLevel(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldEducationLevel, v))
}

// AnnualFamilyIncome applies equality check predicate on the "annual_family_income" field. It's identical to AnnualFamilyIncomeEQ.
func AnnualFamilyIncome(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldAnnualFamilyIncome, v))
}

// TuitionFee applies equality check predicate on the "tuition_fee" field. It's identical to TuitionFeeEQ.
func TuitionFee(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldTuitionFee, v))
}

// AmountRequested applies equality check predicate on the "amount_requested" field. It's identical to AmountRequestedEQ.
func AmountRequested(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldAmountRequested, v))
}

// NumberOfSiblings applies equality check predicate on the "number_of_siblings" field. It's identical to NumberOfSiblingsEQ.
func NumberOfSiblings(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldNumberOfSiblings, v))
}

// SiblingsInSchool applies equality check predicate on the "siblings_in_school" field. It's identical to SiblingsInSchoolEQ.
func SiblingsInSchool(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldSiblingsInSchool, v))
}

// IsOrphan applies equality check predicate on the "is_orphan" field. It's identical to IsOrphanEQ.
func IsOrphan(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldIsOrphan, v))
}

// HasDisability applies equality check predicate on the "has_disability" field. It's identical to HasDisabilityEQ.
func HasDisability(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldHasDisability, v))
}

// IsSingleParent applies equality check predicate on the "is_single_parent" field. It's identical to IsSingleParentEQ.
func IsSingleParent(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldIsSingleParent, v))
}

// PreviousBursaryRecipient applies equality check predicate on the "previous_bursary_recipient" field. It's identical to PreviousBursaryRecipientEQ.
func PreviousBursaryRecipient(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldPreviousBursaryRecipient, v))
}

// ReasonForApplication applies equality check predicate on the "reason_for_application" field. It's identical to ReasonForApplicationEQ.
func ReasonForApplication(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldReasonForApplication, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldStatus, v))
}

// IsVerified applies equality check predicate on the "is_verified" field. It's identical to IsVerifiedEQ.
func IsVerified(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldIsVerified, v))
}

// VerifiedBy applies equality check predicate on the "verified_by" field. It's identical to VerifiedByEQ.
func VerifiedBy(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldVerifiedBy, v))
}

// VerifiedAt applies equality check predicate on the "verified_at" field. It's identical to VerifiedAtEQ.
func VerifiedAt(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldVerifiedAt, v))
}

// IsFlagged applies equality check predicate on the "is_flagged" field. It's identical to IsFlaggedEQ.
func IsFlagged(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldIsFlagged, v))
}

// FlagReason applies equality check predicate on the "flag_reason" field. It's identical to FlagReasonEQ.
func FlagReason(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldFlagReason, v))
}

// ReviewerComments applies equality check predicate on the "reviewer_comments" field. It's identical to ReviewerCommentsEQ.
func ReviewerComments(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldReviewerComments, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldSubmittedAt, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldProfileID, vs...))
}

// ApplicationNumberEQ applies the EQ predicate on the "application_number" field.
func ApplicationNumberEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldApplicationNumber, v))
}

// ApplicationNumberNEQ applies the NEQ predicate on the "application_number" field.
func ApplicationNumberNEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldApplicationNumber, v))
}

// ApplicationNumberIn applies the In predicate on the "application_number" field.
func ApplicationNumberIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldApplicationNumber, vs...))
}

// ApplicationNumberNotIn applies the NotIn predicate on the "application_number" field.
func ApplicationNumberNotIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldApplicationNumber, vs...))
}

// ApplicationNumberGT applies the GT predicate on the "application_number" field.
func ApplicationNumberGT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldApplicationNumber, v))
}

// ApplicationNumberGTE applies the GTE predicate on the "application_number" field.
func ApplicationNumberGTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldApplicationNumber, v))
}

// ApplicationNumberLT applies the LT predicate on the "application_number" field.
func ApplicationNumberLT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldApplicationNumber, v))
}

// ApplicationNumberLTE applies the LTE predicate on the "application_number" field.
func ApplicationNumberLTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldApplicationNumber, v))
}

// ApplicationNumberContains applies the Contains predicate on the "application_number" field.
func ApplicationNumberContains(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContains(FieldApplicationNumber, v))
}

// ApplicationNumberHasPrefix applies the HasPrefix predicate on the "application_number" field.
func ApplicationNumberHasPrefix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasPrefix(FieldApplicationNumber, v))
}

// ApplicationNumberHasSuffix applies the HasSuffix predicate on the "application_number" field.
func ApplicationNumberHasSuffix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasSuffix(FieldApplicationNumber, v))
}

// ApplicationNumberEqualFold applies the EqualFold predicate on the "application_number" field.
func ApplicationNumberEqualFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEqualFold(FieldApplicationNumber, v))
}

// ApplicationNumberContainsFold applies the ContainsFold predicate on the "application_number" field.
func ApplicationNumberContainsFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContainsFold(FieldApplicationNumber, v))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContainsFold(FieldStudentName, v))
}

// InstitutionNameEQ applies the EQ predicate on the "institution_name" field.
func InstitutionNameEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldInstitutionName, v))
}

// InstitutionNameNEQ applies the NEQ predicate on the "institution_name" field.
func InstitutionNameNEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldInstitutionName, v))
}

// InstitutionNameIn applies the In predicate on the "institution_name" field.
func InstitutionNameIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldInstitutionName, vs...))
}

// InstitutionNameNotIn applies the NotIn predicate on the "institution_name" field.
func InstitutionNameNotIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldInstitutionName, vs...))
}

// InstitutionNameGT applies the GT predicate on the "institution_name" field.
func InstitutionNameGT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldInstitutionName, v))
}

// InstitutionNameGTE applies the GTE predicate on the "institution_name" field.
func InstitutionNameGTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldInstitutionName, v))
}

// InstitutionNameLT applies the LT predicate on the "institution_name" field.
func InstitutionNameLT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldInstitutionName, v))
}

// InstitutionNameLTE applies the LTE predicate on the "institution_name" field.
func InstitutionNameLTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldInstitutionName, v))
}

// InstitutionNameContains applies the Contains predicate on the "institution_name" field.
func InstitutionNameContains(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContains(FieldInstitutionName, v))
}

// InstitutionNameHasPrefix applies the HasPrefix predicate on the "institution_name" field.
func InstitutionNameHasPrefix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasPrefix(FieldInstitutionName, v))
}

// InstitutionNameHasSuffix applies the HasSuffix predicate on the "institution_name" field.
func InstitutionNameHasSuffix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasSuffix(FieldInstitutionName, v))
}

// InstitutionNameEqualFold applies the EqualFold predicate on the "institution_name" field.
func InstitutionNameEqualFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEqualFold(FieldInstitutionName, v))
}

// InstitutionNameContainsFold applies the ContainsFold predicate on the "institution_name" field.
func InstitutionNameContainsFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContainsFold(FieldInstitutionName, v))
}

// EducationLevelEQ applies the EQ predicate on the "education_level" field.
func EducationLevelEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldEducationLevel, v))
}

// EducationLevelNEQ applies the NEQ predicate on the "education_level" field.
func EducationLevelNEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldEducationLevel, v))
}

// EducationLevelIn applies the In predicate on the "education_level" field.
func EducationLevelIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldEducationLevel, vs...))
}

// EducationLevelNotIn applies the NotIn predicate on the "education_level" field.
func EducationLevelNotIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldEducationLevel, vs...))
}

// EducationLevelGT applies the GT predicate on the "education_level" field.
func EducationLevelGT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldEducationLevel, v))
}

// EducationLevelGTE applies the GTE predicate on the "education_level" field.
func EducationLevelGTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldEducationLevel, v))
}

// EducationLevelLT applies the LT predicate on the "education_level" field.
func EducationLevelLT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldEducationLevel, v))
}

// EducationLevelLTE applies the LTE predicate on the "education_level" field.
func EducationLevelLTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldEducationLevel, v))
}

// EducationLevelContains applies the Contains predicate on the "education_level" field.
func EducationLevelContains(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContains(FieldEducationLevel, v))
}

// EducationLevelHasPrefix applies the HasPrefix predicate on the "education_level" field.
func EducationLevelHasPrefix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasPrefix(FieldEducationLevel, v))
}

// EducationLevelHasSuffix applies the HasSuffix predicate on the "education_level" field.
func EducationLevelHasSuffix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasSuffix(FieldEducationLevel, v))
}

// EducationLevelIsNil applies the IsNil predicate on the "education_level" field.
func EducationLevelIsNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIsNull(FieldEducationLevel))
}

// EducationLevelNotNil applies the NotNil predicate on the "education_level" field.
func EducationLevelNotNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotNull(FieldEducationLevel))
}

// EducationLevelEqualFold applies the EqualFold predicate on the "education_level" field.
func EducationLevelEqualFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEqualFold(FieldEducationLevel, v))
}

// EducationLevelContainsFold applies the ContainsFold predicate on the "education_level" field.
func EducationLevelContainsFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContainsFold(FieldEducationLevel, v))
}

// AnnualFamilyIncomeEQ applies the EQ predicate on the "annual_family_income" field.
func AnnualFamilyIncomeEQ(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldAnnualFamilyIncome, v))
}

// AnnualFamilyIncomeNEQ applies the NEQ predicate on the "annual_family_income" field.
func AnnualFamilyIncomeNEQ(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldAnnualFamilyIncome, v))
}

// AnnualFamilyIncomeIn applies the In predicate on the "annual_family_income" field.
func AnnualFamilyIncomeIn(vs ...float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldAnnualFamilyIncome, vs...))
}

// AnnualFamilyIncomeNotIn applies the NotIn predicate on the "annual_family_income" field.
func AnnualFamilyIncomeNotIn(vs ...float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldAnnualFamilyIncome, vs...))
}

// AnnualFamilyIncomeGT applies the GT predicate on the "annual_family_income" field.
func AnnualFamilyIncomeGT(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldAnnualFamilyIncome, v))
}

// AnnualFamilyIncomeGTE applies the GTE predicate on the "annual_family_income" field.
func AnnualFamilyIncomeGTE(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldAnnualFamilyIncome, v))
}

// AnnualFamilyIncomeLT applies the LT predicate on the "annual_family_income" field.
func AnnualFamilyIncomeLT(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldAnnualFamilyIncome, v))
}

// AnnualFamilyIncomeLTE applies the LTE predicate on the "annual_family_income" field.
func AnnualFamilyIncomeLTE(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldAnnualFamilyIncome, v))
}

// TuitionFeeEQ applies the EQ predicate on the "tuition_fee" field.
func TuitionFeeEQ(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldTuitionFee, v))
}

// TuitionFeeNEQ applies the NEQ predicate on the "tuition_fee" field.
func TuitionFeeNEQ(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldTuitionFee, v))
}

// TuitionFeeIn applies the In predicate on the "tuition_fee" field.
func TuitionFeeIn(vs ...float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldTuitionFee, vs...))
}

// TuitionFeeNotIn applies the NotIn predicate on the "tuition_fee" field.
func TuitionFeeNotIn(vs ...float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldTuitionFee, vs...))
}

// TuitionFeeGT applies the GT predicate on the "tuition_fee" field.
func TuitionFeeGT(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldTuitionFee, v))
}

// TuitionFeeGTE applies the GTE predicate on the "tuition_fee" field.
func TuitionFeeGTE(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldTuitionFee, v))
}

// TuitionFeeLT applies the LT predicate on the "tuition_fee" field.
func TuitionFeeLT(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldTuitionFee, v))
}

// TuitionFeeLTE applies the LTE predicate on the "tuition_fee" field.
func TuitionFeeLTE(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldTuitionFee, v))
}

// AmountRequestedEQ applies the EQ predicate on the "amount_requested" field.
func AmountRequestedEQ(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldAmountRequested, v))
}

// AmountRequestedNEQ applies the NEQ predicate on the "amount_requested" field.
func AmountRequestedNEQ(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldAmountRequested, v))
}

// AmountRequestedIn applies the In predicate on the "amount_requested" field.
func AmountRequestedIn(vs ...float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldAmountRequested, vs...))
}

// AmountRequestedNotIn applies the NotIn predicate on the "amount_requested" field.
func AmountRequestedNotIn(vs ...float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldAmountRequested, vs...))
}

// AmountRequestedGT applies the GT predicate on the "amount_requested" field.
func AmountRequestedGT(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldAmountRequested, v))
}

// AmountRequestedGTE applies the GTE predicate on the "amount_requested" field.
func AmountRequestedGTE(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldAmountRequested, v))
}

// AmountRequestedLT applies the LT predicate on the "amount_requested" field.
func AmountRequestedLT(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldAmountRequested, v))
}

// AmountRequestedLTE applies the LTE predicate on the "amount_requested" field.
func AmountRequestedLTE(v float64) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldAmountRequested, v))
}

// NumberOfSiblingsEQ applies the EQ predicate on the "number_of_siblings" field.
func NumberOfSiblingsEQ(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldNumberOfSiblings, v))
}

// NumberOfSiblingsNEQ applies the NEQ predicate on the "number_of_siblings" field.
func NumberOfSiblingsNEQ(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldNumberOfSiblings, v))
}

// NumberOfSiblingsIn applies the In predicate on the "number_of_siblings" field.
func NumberOfSiblingsIn(vs ...int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldNumberOfSiblings, vs...))
}

// NumberOfSiblingsNotIn applies the NotIn predicate on the "number_of_siblings" field.
func NumberOfSiblingsNotIn(vs ...int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldNumberOfSiblings, vs...))
}

// NumberOfSiblingsGT applies the GT predicate on the "number_of_siblings" field.
func NumberOfSiblingsGT(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldNumberOfSiblings, v))
}

// NumberOfSiblingsGTE applies the GTE predicate on the "number_of_siblings" field.
func NumberOfSiblingsGTE(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldNumberOfSiblings, v))
}

// NumberOfSiblingsLT applies the LT predicate on the "number_of_siblings" field.
func NumberOfSiblingsLT(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldNumberOfSiblings, v))
}

// NumberOfSiblingsLTE applies the LTE predicate on the "number_of_siblings" field.
func NumberOfSiblingsLTE(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldNumberOfSiblings, v))
}

// SiblingsInSchoolEQ applies the EQ predicate on the "siblings_in_school" field.
func SiblingsInSchoolEQ(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldSiblingsInSchool, v))
}

// SiblingsInSchoolNEQ applies the NEQ predicate on the "siblings_in_school" field.
func SiblingsInSchoolNEQ(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldSiblingsInSchool, v))
}

// SiblingsInSchoolIn applies the In predicate on the "siblings_in_school" field.
func SiblingsInSchoolIn(vs ...int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldSiblingsInSchool, vs...))
}

// SiblingsInSchoolNotIn applies the NotIn predicate on the "siblings_in_school" field.
func SiblingsInSchoolNotIn(vs ...int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldSiblingsInSchool, vs...))
}

// SiblingsInSchoolGT applies the GT predicate on the "siblings_in_school" field.
func SiblingsInSchoolGT(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldSiblingsInSchool, v))
}

// SiblingsInSchoolGTE applies the GTE predicate on the "siblings_in_school" field.
func SiblingsInSchoolGTE(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldSiblingsInSchool, v))
}

// SiblingsInSchoolLT applies the LT predicate on the "siblings_in_school" field.
func SiblingsInSchoolLT(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldSiblingsInSchool, v))
}

// SiblingsInSchoolLTE applies the LTE predicate on the "siblings_in_school" field.
func SiblingsInSchoolLTE(v int) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldSiblingsInSchool, v))
}

// IsOrphanEQ applies the EQ predicate on the "is_orphan" field.
func IsOrphanEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldIsOrphan, v))
}

// IsOrphanNEQ applies the NEQ predicate on the "is_orphan" field.
func IsOrphanNEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldIsOrphan, v))
}

// HasDisabilityEQ applies the EQ predicate on the "has_disability" field.
func HasDisabilityEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldHasDisability, v))
}

// HasDisabilityNEQ applies the NEQ predicate on the "has_disability" field.
func HasDisabilityNEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldHasDisability, v))
}

// IsSingleParentEQ applies the EQ predicate on the "is_single_parent" field.
func IsSingleParentEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldIsSingleParent, v))
}

// IsSingleParentNEQ applies the NEQ predicate on the "is_single_parent" field.
func IsSingleParentNEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldIsSingleParent, v))
}

// PreviousBursaryRecipientEQ applies the EQ predicate on the "previous_bursary_recipient" field.
func PreviousBursaryRecipientEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldPreviousBursaryRecipient, v))
}

// PreviousBursaryRecipientNEQ applies the NEQ predicate on the "previous_bursary_recipient" field.
func PreviousBursaryRecipientNEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldPreviousBursaryRecipient, v))
}

// ReasonForApplicationEQ applies the EQ predicate on the "reason_for_application" field.
func ReasonForApplicationEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldReasonForApplication, v))
}

// ReasonForApplicationNEQ applies the NEQ predicate on the "reason_for_application" field.
func ReasonForApplicationNEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldReasonForApplication, v))
}

// ReasonForApplicationIn applies the In predicate on the "reason_for_application" field.
func ReasonForApplicationIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldReasonForApplication, vs...))
}

// ReasonForApplicationNotIn applies the NotIn predicate on the "reason_for_application" field.
func ReasonForApplicationNotIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldReasonForApplication, vs...))
}

// ReasonForApplicationGT applies the GT predicate on the "reason_for_application" field.
func ReasonForApplicationGT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldReasonForApplication, v))
}

// ReasonForApplicationGTE applies the GTE predicate on the "reason_for_application" field.
func ReasonForApplicationGTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldReasonForApplication, v))
}

// ReasonForApplicationLT applies the LT predicate on the "reason_for_application" field.
func ReasonForApplicationLT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldReasonForApplication, v))
}

// ReasonForApplicationLTE applies the LTE predicate on the "reason_for_application" field.
func ReasonForApplicationLTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldReasonForApplication, v))
}

// ReasonForApplicationContains applies the Contains predicate on the "reason_for_application" field.
func ReasonForApplicationContains(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContains(FieldReasonForApplication, v))
}

// ReasonForApplicationHasPrefix applies the HasPrefix predicate on the "reason_for_application" field.
func ReasonForApplicationHasPrefix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasPrefix(FieldReasonForApplication, v))
}

// ReasonForApplicationHasSuffix applies the HasSuffix predicate on the "reason_for_application" field.
func ReasonForApplicationHasSuffix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasSuffix(FieldReasonForApplication, v))
}

// ReasonForApplicationIsNil applies the IsNil predicate on the "reason_for_application" field.
func ReasonForApplicationIsNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIsNull(FieldReasonForApplication))
}

// ReasonForApplicationNotNil applies the NotNil predicate on the "reason_for_application" field.
func ReasonForApplicationNotNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotNull(FieldReasonForApplication))
}

// ReasonForApplicationEqualFold applies the EqualFold predicate on the "reason_for_application" field.
func ReasonForApplicationEqualFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEqualFold(FieldReasonForApplication, v))
}

// ReasonForApplicationContainsFold applies the ContainsFold predicate on the "reason_for_application" field.
func ReasonForApplicationContainsFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContainsFold(FieldReasonForApplication, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContainsFold(FieldStatus, v))
}

// IsVerifiedEQ applies the EQ predicate on the "is_verified" field.
func IsVerifiedEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldIsVerified, v))
}

// IsVerifiedNEQ applies the NEQ predicate on the "is_verified" field.
func IsVerifiedNEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldIsVerified, v))
}

// VerifiedByEQ applies the EQ predicate on the "verified_by" field.
func VerifiedByEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldVerifiedBy, v))
}

// VerifiedByNEQ applies the NEQ predicate on the "verified_by" field.
func VerifiedByNEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldVerifiedBy, v))
}

// VerifiedByIn applies the In predicate on the "verified_by" field.
func VerifiedByIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldVerifiedBy, vs...))
}

// VerifiedByNotIn applies the NotIn predicate on the "verified_by" field.
func VerifiedByNotIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldVerifiedBy, vs...))
}

// VerifiedByGT applies the GT predicate on the "verified_by" field.
func VerifiedByGT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldVerifiedBy, v))
}

// VerifiedByGTE applies the GTE predicate on the "verified_by" field.
func VerifiedByGTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldVerifiedBy, v))
}

// VerifiedByLT applies the LT predicate on the "verified_by" field.
func VerifiedByLT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldVerifiedBy, v))
}

// VerifiedByLTE applies the LTE predicate on the "verified_by" field.
func VerifiedByLTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldVerifiedBy, v))
}

// VerifiedByContains applies the Contains predicate on the "verified_by" field.
func VerifiedByContains(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContains(FieldVerifiedBy, v))
}

// VerifiedByHasPrefix applies the HasPrefix predicate on the "verified_by" field.
func VerifiedByHasPrefix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasPrefix(FieldVerifiedBy, v))
}

// VerifiedByHasSuffix applies the HasSuffix predicate on the "verified_by" field.
func VerifiedByHasSuffix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasSuffix(FieldVerifiedBy, v))
}

// VerifiedByIsNil applies the IsNil predicate on the "verified_by" field.
func VerifiedByIsNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIsNull(FieldVerifiedBy))
}

// VerifiedByNotNil applies the NotNil predicate on the "verified_by" field.
func VerifiedByNotNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotNull(FieldVerifiedBy))
}

// VerifiedByEqualFold applies the EqualFold predicate on the "verified_by" field.
func VerifiedByEqualFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEqualFold(FieldVerifiedBy, v))
}

// VerifiedByContainsFold applies the ContainsFold predicate on the "verified_by" field.
func VerifiedByContainsFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContainsFold(FieldVerifiedBy, v))
}

// VerifiedAtEQ applies the EQ predicate on the "verified_at" field.
func VerifiedAtEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedAtNEQ applies the NEQ predicate on the "verified_at" field.
func VerifiedAtNEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldVerifiedAt, v))
}

// VerifiedAtIn applies the In predicate on the "verified_at" field.
func VerifiedAtIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldVerifiedAt, vs...))
}

// VerifiedAtNotIn applies the NotIn predicate on the "verified_at" field.
func VerifiedAtNotIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldVerifiedAt, vs...))
}

// VerifiedAtGT applies the GT predicate on the "verified_at" field.
func VerifiedAtGT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldVerifiedAt, v))
}

// VerifiedAtGTE applies the GTE predicate on the "verified_at" field.
func VerifiedAtGTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldVerifiedAt, v))
}

// VerifiedAtLT applies the LT predicate on the "verified_at" field.
func VerifiedAtLT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldVerifiedAt, v))
}

// VerifiedAtLTE applies the LTE predicate on the "verified_at" field.
func VerifiedAtLTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldVerifiedAt, v))
}

// VerifiedAtIsNil applies the IsNil predicate on the "verified_at" field.
func VerifiedAtIsNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIsNull(FieldVerifiedAt))
}

// VerifiedAtNotNil applies the NotNil predicate on the "verified_at" field.
func VerifiedAtNotNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotNull(FieldVerifiedAt))
}

// IsFlaggedEQ applies the EQ predicate on the "is_flagged" field.
func IsFlaggedEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldIsFlagged, v))
}

// IsFlaggedNEQ applies the NEQ predicate on the "is_flagged" field.
func IsFlaggedNEQ(v bool) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldIsFlagged, v))
}

// FlagReasonEQ applies the EQ predicate on the "flag_reason" field.
func FlagReasonEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldFlagReason, v))
}

// FlagReasonNEQ applies the NEQ predicate on the "flag_reason" field.
func FlagReasonNEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldFlagReason, v))
}

// FlagReasonIn applies the In predicate on the "flag_reason" field.
func FlagReasonIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldFlagReason, vs...))
}

// FlagReasonNotIn applies the NotIn predicate on the "flag_reason" field.
func FlagReasonNotIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldFlagReason, vs...))
}

// FlagReasonGT applies the GT predicate on the "flag_reason" field.
func FlagReasonGT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldFlagReason, v))
}

// FlagReasonGTE applies the GTE predicate on the "flag_reason" field.
func FlagReasonGTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldFlagReason, v))
}

// FlagReasonLT applies the LT predicate on the "flag_reason" field.
func FlagReasonLT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldFlagReason, v))
}

// FlagReasonLTE applies the LTE predicate on the "flag_reason" field.
func FlagReasonLTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldFlagReason, v))
}

// FlagReasonContains applies the Contains predicate on the "flag_reason" field.
func FlagReasonContains(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContains(FieldFlagReason, v))
}

// FlagReasonHasPrefix applies the HasPrefix predicate on the "flag_reason" field.
func FlagReasonHasPrefix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasPrefix(FieldFlagReason, v))
}

// FlagReasonHasSuffix applies the HasSuffix predicate on the "flag_reason" field.
func FlagReasonHasSuffix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasSuffix(FieldFlagReason, v))
}

// FlagReasonIsNil applies the IsNil predicate on the "flag_reason" field.
func FlagReasonIsNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIsNull(FieldFlagReason))
}

// FlagReasonNotNil applies the NotNil predicate on the "flag_reason" field.
func FlagReasonNotNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotNull(FieldFlagReason))
}

// FlagReasonEqualFold applies the EqualFold predicate on the "flag_reason" field.
func FlagReasonEqualFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEqualFold(FieldFlagReason, v))
}

// FlagReasonContainsFold applies the ContainsFold predicate on the "flag_reason" field.
func FlagReasonContainsFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContainsFold(FieldFlagReason, v))
}

// ReviewerCommentsEQ applies the EQ predicate on the "reviewer_comments" field.
func ReviewerCommentsEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldReviewerComments, v))
}

// ReviewerCommentsNEQ applies the NEQ predicate on the "reviewer_comments" field.
func ReviewerCommentsNEQ(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldReviewerComments, v))
}

// ReviewerCommentsIn applies the In predicate on the "reviewer_comments" field.
func ReviewerCommentsIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldReviewerComments, vs...))
}

// ReviewerCommentsNotIn applies the NotIn predicate on the "reviewer_comments" field.
func ReviewerCommentsNotIn(vs ...string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldReviewerComments, vs...))
}

// ReviewerCommentsGT applies the GT predicate on the "reviewer_comments" field.
func ReviewerCommentsGT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldReviewerComments, v))
}

// ReviewerCommentsGTE applies the GTE predicate on the "reviewer_comments" field.
func ReviewerCommentsGTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldReviewerComments, v))
}

// ReviewerCommentsLT applies the LT predicate on the "reviewer_comments" field.
func ReviewerCommentsLT(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldReviewerComments, v))
}

// ReviewerCommentsLTE applies the LTE predicate on the "reviewer_comments" field.
func ReviewerCommentsLTE(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldReviewerComments, v))
}

// ReviewerCommentsContains applies the Contains predicate on the "reviewer_comments" field.
func ReviewerCommentsContains(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContains(FieldReviewerComments, v))
}

// ReviewerCommentsHasPrefix applies the HasPrefix predicate on the "reviewer_comments" field.
func ReviewerCommentsHasPrefix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasPrefix(FieldReviewerComments, v))
}

// ReviewerCommentsHasSuffix applies the HasSuffix predicate on the "reviewer_comments" field.
func ReviewerCommentsHasSuffix(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldHasSuffix(FieldReviewerComments, v))
}

// ReviewerCommentsIsNil applies the IsNil predicate on the "reviewer_comments" field.
func ReviewerCommentsIsNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIsNull(FieldReviewerComments))
}

// ReviewerCommentsNotNil applies the NotNil predicate on the "reviewer_comments" field.
func ReviewerCommentsNotNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotNull(FieldReviewerComments))
}

// ReviewerCommentsEqualFold applies the EqualFold predicate on the "reviewer_comments" field.
func ReviewerCommentsEqualFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEqualFold(FieldReviewerComments, v))
}

// ReviewerCommentsContainsFold applies the ContainsFold predicate on the "reviewer_comments" field.
func ReviewerCommentsContainsFold(v string) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldContainsFold(FieldReviewerComments, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldSubmittedAt, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotNull(FieldReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.BursaryApplication {
	return predicate.BursaryApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.ApplicantProfile) predicate.BursaryApplication {
	return predicate.BursaryApplication(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.BursaryApplication {
	return predicate.BursaryApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.BursaryApplication {
	return predicate.BursaryApplication(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatusLogs applies the HasEdge predicate on the "status_logs" edge.
func HasStatusLogs() predicate.BursaryApplication {
	return predicate.BursaryApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatusLogsTable, StatusLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusLogsWith applies the HasEdge predicate on the "status_logs" edge with a given conditions (other predicates).
func HasStatusLogsWith(preds ...predicate.ApplicationStatusLog) predicate.BursaryApplication {
	return predicate.BursaryApplication(func(s *sql.Selector) {
		step := newStatusLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BursaryApplication) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BursaryApplication) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BursaryApplication) predicate.BursaryApplication {
	return predicate.BursaryApplication(sql.NotPredicates(p))
}
