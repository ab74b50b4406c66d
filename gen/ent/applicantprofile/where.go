// Code generated by ent, DO NOT EDIT.

package applicantprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldID, id))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldFullName, v))
}

// IDNumber applies equality check predicate on the "id_number" field. It's identical to IDNumberEQ.
func IDNumber(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldIDNumber, v))
}

// PhoneNumber applies equality check predicate on the "phone_number" field. It's identical to PhoneNumberEQ.
func PhoneNumber(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldPhoneNumber, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldEmail, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldDateOfBirth, v))
}

// County applies equality check predicate on the "county" field. It's identical to CountyEQ.
func County(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldCounty, v))
}

// SubCounty applies equality check predicate on the "sub_county" field. It's identical to SubCountyEQ.
func SubCounty(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldSubCounty, v))
}

// Ward applies equality check predicate on the "ward" field. It's identical to WardEQ.
func Ward(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldWard, v))
}

// Village applies equality check predicate on the "village" field. It's identical to VillageEQ.
func Village(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldVillage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContainsFold(FieldFullName, v))
}

// IDNumberEQ applies the EQ predicate on the "id_number" field.
func IDNumberEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldIDNumber, v))
}

// IDNumberNEQ applies the NEQ predicate on the "id_number" field.
func IDNumberNEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldIDNumber, v))
}

// IDNumberIn applies the In predicate on the "id_number" field.
func IDNumberIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldIDNumber, vs...))
}

// IDNumberNotIn applies the NotIn predicate on the "id_number" field.
func IDNumberNotIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldIDNumber, vs...))
}

// IDNumberGT applies the GT predicate on the "id_number" field.
func IDNumberGT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldIDNumber, v))
}

// IDNumberGTE applies the GTE predicate on the "id_number" field.
func IDNumberGTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldIDNumber, v))
}

// IDNumberLT applies the LT predicate on the "id_number" field.
func IDNumberLT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldIDNumber, v))
}

// IDNumberLTE applies the LTE predicate on the "id_number" field.
func IDNumberLTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldIDNumber, v))
}

// IDNumberContains applies the Contains predicate on the "id_number" field.
func IDNumberContains(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContains(FieldIDNumber, v))
}

// IDNumberHasPrefix applies the HasPrefix predicate on the "id_number" field.
func IDNumberHasPrefix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasPrefix(FieldIDNumber, v))
}

// IDNumberHasSuffix applies the HasSuffix predicate on the "id_number" field.
func IDNumberHasSuffix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasSuffix(FieldIDNumber, v))
}

// IDNumberEqualFold applies the EqualFold predicate on the "id_number" field.
func IDNumberEqualFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEqualFold(FieldIDNumber, v))
}

// IDNumberContainsFold applies the ContainsFold predicate on the "id_number" field.
func IDNumberContainsFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContainsFold(FieldIDNumber, v))
}

// PhoneNumberEQ applies the EQ predicate on the "phone_number" field.
func PhoneNumberEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldPhoneNumber, v))
}

// PhoneNumberNEQ applies the NEQ predicate on the "phone_number" field.
func PhoneNumberNEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldPhoneNumber, v))
}

// PhoneNumberIn applies the In predicate on the "phone_number" field.
func PhoneNumberIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldPhoneNumber, vs...))
}

// PhoneNumberNotIn applies the NotIn predicate on the "phone_number" field.
func PhoneNumberNotIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldPhoneNumber, vs...))
}

// PhoneNumberGT applies the GT predicate on the "phone_number" field.
func PhoneNumberGT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldPhoneNumber, v))
}

// PhoneNumberGTE applies the GTE predicate on the "phone_number" field.
func PhoneNumberGTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldPhoneNumber, v))
}

// PhoneNumberLT applies the LT predicate on the "phone_number" field.
func PhoneNumberLT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldPhoneNumber, v))
}

// PhoneNumberLTE applies the LTE predicate on the "phone_number" field.
func PhoneNumberLTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldPhoneNumber, v))
}

// PhoneNumberContains applies the Contains predicate on the "phone_number" field.
func PhoneNumberContains(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContains(FieldPhoneNumber, v))
}

// PhoneNumberHasPrefix applies the HasPrefix predicate on the "phone_number" field.
func PhoneNumberHasPrefix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasPrefix(FieldPhoneNumber, v))
}

// PhoneNumberHasSuffix applies the HasSuffix predicate on the "phone_number" field.
func PhoneNumberHasSuffix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasSuffix(FieldPhoneNumber, v))
}

// PhoneNumberIsNil applies the IsNil predicate on the "phone_number" field.
func PhoneNumberIsNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIsNull(FieldPhoneNumber))
}

// PhoneNumberNotNil applies the NotNil predicate on the "phone_number" field.
func PhoneNumberNotNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotNull(FieldPhoneNumber))
}

// PhoneNumberEqualFold applies the EqualFold predicate on the "phone_number" field.
func PhoneNumberEqualFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEqualFold(FieldPhoneNumber, v))
}

// PhoneNumberContainsFold applies the ContainsFold predicate on the "phone_number" field.
func PhoneNumberContainsFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContainsFold(FieldPhoneNumber, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContainsFold(FieldEmail, v))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotNull(FieldDateOfBirth))
}

// CountyEQ applies the EQ predicate on the "county" field.
func CountyEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldCounty, v))
}

// CountyNEQ applies the NEQ predicate on the "county" field.
func CountyNEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldCounty, v))
}

// CountyIn applies the In predicate on the "county" field.
func CountyIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldCounty, vs...))
}

// CountyNotIn applies the NotIn predicate on the "county" field.
func CountyNotIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldCounty, vs...))
}

// CountyGT applies the GT predicate on the "county" field.
func CountyGT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldCounty, v))
}

// CountyGTE applies the GTE predicate on the "county" field.
func CountyGTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldCounty, v))
}

// CountyLT applies the LT predicate on the "county" field.
func CountyLT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldCounty, v))
}

// CountyLTE applies the LTE predicate on the "county" field.
func CountyLTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldCounty, v))
}

// CountyContains applies the Contains predicate on the "county" field.
func CountyContains(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContains(FieldCounty, v))
}

// CountyHasPrefix applies the HasPrefix predicate on the "county" field.
func CountyHasPrefix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasPrefix(FieldCounty, v))
}

// CountyHasSuffix applies the HasSuffix predicate on the "county" field.
func CountyHasSuffix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasSuffix(FieldCounty, v))
}

// CountyEqualFold applies the EqualFold predicate on the "county" field.
func CountyEqualFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEqualFold(FieldCounty, v))
}

// CountyContainsFold applies the ContainsFold predicate on the "county" field.
func CountyContainsFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContainsFold(FieldCounty, v))
}

// SubCountyEQ applies the EQ predicate on the "sub_county" field.
func SubCountyEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldSubCounty, v))
}

// SubCountyNEQ applies the NEQ predicate on the "sub_county" field.
func SubCountyNEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldSubCounty, v))
}

// SubCountyIn applies the In predicate on the "sub_county" field.
func SubCountyIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldSubCounty, vs...))
}

// SubCountyNotIn applies the NotIn predicate on the "sub_county" field.
func SubCountyNotIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldSubCounty, vs...))
}

// SubCountyGT applies the GT predicate on the "sub_county" field.
func SubCountyGT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldSubCounty, v))
}

// SubCountyGTE applies the GTE predicate on the "sub_county" field.
func SubCountyGTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldSubCounty, v))
}

// SubCountyLT applies the LT predicate on the "sub_county" field.
func SubCountyLT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldSubCounty, v))
}

// SubCountyLTE applies the LTE predicate on the "sub_county" field.
func SubCountyLTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldSubCounty, v))
}

// SubCountyContains applies the Contains predicate on the "sub_county" field.
func SubCountyContains(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContains(FieldSubCounty, v))
}

// SubCountyHasPrefix applies the HasPrefix predicate on the "sub_county" field.
func SubCountyHasPrefix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasPrefix(FieldSubCounty, v))
}

// SubCountyHasSuffix applies the HasSuffix predicate on the "sub_county" field.
func SubCountyHasSuffix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasSuffix(FieldSubCounty, v))
}

// SubCountyIsNil applies the IsNil predicate on the "sub_county" field.
func SubCountyIsNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIsNull(FieldSubCounty))
}

// SubCountyNotNil applies the NotNil predicate on the "sub_county" field.
func SubCountyNotNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotNull(FieldSubCounty))
}

// SubCountyEqualFold applies the EqualFold predicate on the "sub_county" field.
func SubCountyEqualFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEqualFold(FieldSubCounty, v))
}

// SubCountyContainsFold applies the ContainsFold predicate on the "sub_county" field.
func SubCountyContainsFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContainsFold(FieldSubCounty, v))
}

// WardEQ applies the EQ predicate on the "ward" field.
func WardEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldWard, v))
}

// WardNEQ applies the NEQ predicate on the "ward" field.
func WardNEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldWard, v))
}

// WardIn applies the In predicate on the "ward" field.
func WardIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldWard, vs...))
}

// WardNotIn applies the NotIn predicate on the "ward" field.
func WardNotIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldWard, vs...))
}

// WardGT applies the GT predicate on the "ward" field.
func WardGT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldWard, v))
}

// WardGTE applies the GTE predicate on the "ward" field.
func WardGTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldWard, v))
}

// WardLT applies the LT predicate on the "ward" field.
func WardLT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldWard, v))
}

// WardLTE applies the LTE predicate on the "ward" field.
func WardLTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldWard, v))
}

// WardContains applies the Contains predicate on the "ward" field.
func WardContains(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContains(FieldWard, v))
}

// WardHasPrefix applies the HasPrefix predicate on the "ward" field.
func WardHasPrefix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasPrefix(FieldWard, v))
}

// WardHasSuffix applies the HasSuffix predicate on the "ward" field.
func WardHasSuffix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasSuffix(FieldWard, v))
}

// WardIsNil applies the IsNil predicate on the "ward" field.
func WardIsNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIsNull(FieldWard))
}

// WardNotNil applies the NotNil predicate on the "ward" field.
func WardNotNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotNull(FieldWard))
}

// WardEqualFold applies the EqualFold predicate on the "ward" field.
func WardEqualFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEqualFold(FieldWard, v))
}

// WardContainsFold applies the ContainsFold predicate on the "ward" field.
func WardContainsFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContainsFold(FieldWard, v))
}

// VillageEQ applies the EQ predicate on the "village" field.
func VillageEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldVillage, v))
}

// VillageNEQ applies the NEQ predicate on the "village" field.
func VillageNEQ(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldVillage, v))
}

// VillageIn applies the In predicate on the "village" field.
func VillageIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldVillage, vs...))
}

// VillageNotIn applies the NotIn predicate on the "village" field.
func VillageNotIn(vs ...string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldVillage, vs...))
}

// VillageGT applies the GT predicate on the "village" field.
func VillageGT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldVillage, v))
}

// VillageGTE applies the GTE predicate on the "village" field.
func VillageGTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldVillage, v))
}

// VillageLT applies the LT predicate on the "village" field.
func VillageLT(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldVillage, v))
}

// VillageLTE applies the LTE predicate on the "village" field.
func VillageLTE(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldVillage, v))
}

// VillageContains applies the Contains predicate on the "village" field.
func VillageContains(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContains(FieldVillage, v))
}

// VillageHasPrefix applies the HasPrefix predicate on the "village" field.
func VillageHasPrefix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasPrefix(FieldVillage, v))
}

// VillageHasSuffix applies the HasSuffix predicate on the "village" field.
func VillageHasSuffix(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldHasSuffix(FieldVillage, v))
}

// VillageIsNil applies the IsNil predicate on the "village" field.
func VillageIsNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIsNull(FieldVillage))
}

// VillageNotNil applies the NotNil predicate on the "village" field.
func VillageNotNil() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotNull(FieldVillage))
}

// VillageEqualFold applies the EqualFold predicate on the "village" field.
func VillageEqualFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEqualFold(FieldVillage, v))
}

// VillageContainsFold applies the ContainsFold predicate on the "village" field.
func VillageContainsFold(v string) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldContainsFold(FieldVillage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplications applies the HasEdge predicate on the "applications" edge.
func HasApplications() predicate.ApplicantProfile {
	return predicate.ApplicantProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationsWith applies the HasEdge predicate on the "applications" edge with a given conditions (other predicates).
func HasApplicationsWith(preds ...predicate.BursaryApplication) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(func(s *sql.Selector) {
		step := newApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApplicantProfile) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApplicantProfile) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApplicantProfile) predicate.ApplicantProfile {
	return predicate.ApplicantProfile(sql.NotPredicates(p))
}
