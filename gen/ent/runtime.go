// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/db/ent/schema"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/gen/ent/document"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicantprofileFields := schema.ApplicantProfile{}.Fields()
	_ = applicantprofileFields
	// applicantprofileDescFullName is the schema descriptor for full_name field.
	applicantprofileDescFullName := applicantprofileFields[1].Descriptor()
	// applicantprofile.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	applicantprofile.FullNameValidator = applicantprofileDescFullName.Validators[0].(func(string) error)
	// applicantprofileDescIDNumber is the schema descriptor for id_number field.
	applicantprofileDescIDNumber := applicantprofileFields[2].Descriptor()
	// applicantprofile.IDNumberValidator is a validator for the "id_number" field. It is called by the builders before save.
	applicantprofile.IDNumberValidator = func() func(string) error {
		validators := applicantprofileDescIDNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(id_number string) error {
			for _, fn := range fns {
				if err := fn(id_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// applicantprofileDescCounty is the schema descriptor for county field.
	applicantprofileDescCounty := applicantprofileFields[6].Descriptor()
	// applicantprofile.CountyValidator is a validator for the "county" field. It is called by the builders before save.
	applicantprofile.CountyValidator = applicantprofileDescCounty.Validators[0].(func(string) error)
	// applicantprofileDescCreatedAt is the schema descriptor for created_at field.
	applicantprofileDescCreatedAt := applicantprofileFields[10].Descriptor()
	// applicantprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	applicantprofile.DefaultCreatedAt = applicantprofileDescCreatedAt.Default.(func() time.Time)
	// applicantprofileDescUpdatedAt is the schema descriptor for updated_at field.
	applicantprofileDescUpdatedAt := applicantprofileFields[11].Descriptor()
	// applicantprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	applicantprofile.DefaultUpdatedAt = applicantprofileDescUpdatedAt.Default.(func() time.Time)
	// applicantprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	applicantprofile.UpdateDefaultUpdatedAt = applicantprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicantprofileDescID is the schema descriptor for id field.
	applicantprofileDescID := applicantprofileFields[0].Descriptor()
	// applicantprofile.DefaultID holds the default value on creation for the id field.
	applicantprofile.DefaultID = applicantprofileDescID.Default.(func() uuid.UUID)
	applicationstatuslogFields := schema.ApplicationStatusLog{}.Fields()
	_ = applicationstatuslogFields
	// applicationstatuslogDescOldStatus is the schema descriptor for old_status field.
	applicationstatuslogDescOldStatus := applicationstatuslogFields[2].Descriptor()
	// applicationstatuslog.OldStatusValidator is a validator for the "old_status" field. It is called by the builders before save.
	applicationstatuslog.OldStatusValidator = applicationstatuslogDescOldStatus.Validators[0].(func(string) error)
	// applicationstatuslogDescNewStatus is the schema descriptor for new_status field.
	applicationstatuslogDescNewStatus := applicationstatuslogFields[3].Descriptor()
	// applicationstatuslog.NewStatusValidator is a validator for the "new_status" field. It is called by the builders before save.
	applicationstatuslog.NewStatusValidator = func() func(string) error {
		validators := applicationstatuslogDescNewStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(new_status string) error {
			for _, fn := range fns {
				if err := fn(new_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// applicationstatuslogDescChangedAt is the schema descriptor for changed_at field.
	applicationstatuslogDescChangedAt := applicationstatuslogFields[6].Descriptor()
	// applicationstatuslog.DefaultChangedAt holds the default value on creation for the changed_at field.
	applicationstatuslog.DefaultChangedAt = applicationstatuslogDescChangedAt.Default.(func() time.Time)
	// applicationstatuslogDescID is the schema descriptor for id field.
	applicationstatuslogDescID := applicationstatuslogFields[0].Descriptor()
	// applicationstatuslog.DefaultID holds the default value on creation for the id field.
	applicationstatuslog.DefaultID = applicationstatuslogDescID.Default.(func() uuid.UUID)
	bursaryapplicationFields := schema.BursaryApplication{}.Fields()
	_ = bursaryapplicationFields
	// bursaryapplicationDescApplicationNumber is the schema descriptor for application_number field.
	bursaryapplicationDescApplicationNumber := bursaryapplicationFields[2].Descriptor()
	// bursaryapplication.ApplicationNumberValidator is a validator for the "application_number" field. It is called by the builders before save.
	bursaryapplication.ApplicationNumberValidator = bursaryapplicationDescApplicationNumber.Validators[0].(func(string) error)
	// bursaryapplicationDescStudentName is the schema descriptor for student_name field.
	bursaryapplicationDescStudentName := bursaryapplicationFields[3].Descriptor()
	// bursaryapplication.StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	bursaryapplication.StudentNameValidator = bursaryapplicationDescStudentName.Validators[0].(func(string) error)
	// bursaryapplicationDescInstitutionName is the schema descriptor for institution_name field.
	bursaryapplicationDescInstitutionName := bursaryapplicationFields[4].Descriptor()
	// bursaryapplication.InstitutionNameValidator is a validator for the "institution_name" field. It is called by the builders before save.
	bursaryapplication.InstitutionNameValidator = bursaryapplicationDescInstitutionName.Validators[0].(func(string) error)
	// bursaryapplicationDescAnnualFamilyIncome is the schema descriptor for annual_family_income field.
	bursaryapplicationDescAnnualFamilyIncome := bursaryapplicationFields[6].Descriptor()
	// bursaryapplication.AnnualFamilyIncomeValidator is a validator for the "annual_family_income" field. It is called by the builders before save.
	bursaryapplication.AnnualFamilyIncomeValidator = bursaryapplicationDescAnnualFamilyIncome.Validators[0].(func(float64) error)
	// bursaryapplicationDescTuitionFee is the schema descriptor for tuition_fee field.
	bursaryapplicationDescTuitionFee := bursaryapplicationFields[7].Descriptor()
	// bursaryapplication.TuitionFeeValidator is a validator for the "tuition_fee" field. It is called by the builders before save.
	bursaryapplication.TuitionFeeValidator = bursaryapplicationDescTuitionFee.Validators[0].(func(float64) error)
	// bursaryapplicationDescAmountRequested is the schema descriptor for amount_requested field.
	bursaryapplicationDescAmountRequested := bursaryapplicationFields[8].Descriptor()
	// bursaryapplication.AmountRequestedValidator is a validator for the "amount_requested" field. It is called by the builders before save.
	bursaryapplication.AmountRequestedValidator = bursaryapplicationDescAmountRequested.Validators[0].(func(float64) error)
	// bursaryapplicationDescNumberOfSiblings is the schema descriptor for number_of_siblings field.
	bursaryapplicationDescNumberOfSiblings := bursaryapplicationFields[9].Descriptor()
	// bursaryapplication.DefaultNumberOfSiblings holds the default value on creation for the number_of_siblings field.
	bursaryapplication.DefaultNumberOfSiblings = bursaryapplicationDescNumberOfSiblings.Default.(int)
	// bursaryapplication.NumberOfSiblingsValidator is a validator for the "number_of_siblings" field. It is called by the builders before save.
	bursaryapplication.NumberOfSiblingsValidator = bursaryapplicationDescNumberOfSiblings.Validators[0].(func(int) error)
	// bursaryapplicationDescSiblingsInSchool is the schema descriptor for siblings_in_school field.
	bursaryapplicationDescSiblingsInSchool := bursaryapplicationFields[10].Descriptor()
	// bursaryapplication.DefaultSiblingsInSchool holds the default value on creation for the siblings_in_school field.
	bursaryapplication.DefaultSiblingsInSchool = bursaryapplicationDescSiblingsInSchool.Default.(int)
	// bursaryapplication.SiblingsInSchoolValidator is a validator for the "siblings_in_school" field. It is called by the builders before save.
	bursaryapplication.SiblingsInSchoolValidator = bursaryapplicationDescSiblingsInSchool.Validators[0].(func(int) error)
	// bursaryapplicationDescIsOrphan is the schema descriptor for is_orphan field.
	bursaryapplicationDescIsOrphan := bursaryapplicationFields[11].Descriptor()
	// bursaryapplication.DefaultIsOrphan holds the default value on creation for the is_orphan field.
	bursaryapplication.DefaultIsOrphan = bursaryapplicationDescIsOrphan.Default.(bool)
	// bursaryapplicationDescHasDisability is the schema descriptor for has_disability field.
	bursaryapplicationDescHasDisability := bursaryapplicationFields[12].Descriptor()
	// bursaryapplication.DefaultHasDisability holds the default value on creation for the has_disability field.
	bursaryapplication.DefaultHasDisability = bursaryapplicationDescHasDisability.Default.(bool)
	// bursaryapplicationDescIsSingleParent is the schema descriptor for is_single_parent field.
	bursaryapplicationDescIsSingleParent := bursaryapplicationFields[13].Descriptor()
	// bursaryapplication.DefaultIsSingleParent holds the default value on creation for the is_single_parent field.
	bursaryapplication.DefaultIsSingleParent = bursaryapplicationDescIsSingleParent.Default.(bool)
	// bursaryapplicationDescPreviousBursaryRecipient is the schema descriptor for previous_bursary_recipient field.
	bursaryapplicationDescPreviousBursaryRecipient := bursaryapplicationFields[14].Descriptor()
	// bursaryapplication.DefaultPreviousBursaryRecipient holds the default value on creation for the previous_bursary_recipient field.
	bursaryapplication.DefaultPreviousBursaryRecipient = bursaryapplicationDescPreviousBursaryRecipient.Default.(bool)
	// bursaryapplicationDescStatus is the schema descriptor for status field.
	bursaryapplicationDescStatus := bursaryapplicationFields[16].Descriptor()
	// bursaryapplication.DefaultStatus holds the default value on creation for the status field.
	bursaryapplication.DefaultStatus = bursaryapplicationDescStatus.Default.(string)
	// bursaryapplication.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	bursaryapplication.StatusValidator = bursaryapplicationDescStatus.Validators[0].(func(string) error)
	// bursaryapplicationDescIsVerified is the schema descriptor for is_verified field.
	bursaryapplicationDescIsVerified := bursaryapplicationFields[17].Descriptor()
	// bursaryapplication.DefaultIsVerified holds the default value on creation for the is_verified field.
	bursaryapplication.DefaultIsVerified = bursaryapplicationDescIsVerified.Default.(bool)
	// bursaryapplicationDescIsFlagged is the schema descriptor for is_flagged field.
	bursaryapplicationDescIsFlagged := bursaryapplicationFields[20].Descriptor()
	// bursaryapplication.DefaultIsFlagged holds the default value on creation for the is_flagged field.
	bursaryapplication.DefaultIsFlagged = bursaryapplicationDescIsFlagged.Default.(bool)
	// bursaryapplicationDescSubmittedAt is the schema descriptor for submitted_at field.
	bursaryapplicationDescSubmittedAt := bursaryapplicationFields[23].Descriptor()
	// bursaryapplication.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	bursaryapplication.DefaultSubmittedAt = bursaryapplicationDescSubmittedAt.Default.(func() time.Time)
	// bursaryapplicationDescCreatedAt is the schema descriptor for created_at field.
	bursaryapplicationDescCreatedAt := bursaryapplicationFields[25].Descriptor()
	// bursaryapplication.DefaultCreatedAt holds the default value on creation for the created_at field.
	bursaryapplication.DefaultCreatedAt = bursaryapplicationDescCreatedAt.Default.(func() time.Time)
	// bursaryapplicationDescUpdatedAt is the schema descriptor for updated_at field.
	bursaryapplicationDescUpdatedAt := bursaryapplicationFields[26].Descriptor()
	// bursaryapplication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bursaryapplication.DefaultUpdatedAt = bursaryapplicationDescUpdatedAt.Default.(func() time.Time)
	// bursaryapplication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bursaryapplication.UpdateDefaultUpdatedAt = bursaryapplicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bursaryapplicationDescID is the schema descriptor for id field.
	bursaryapplicationDescID := bursaryapplicationFields[0].Descriptor()
	// bursaryapplication.DefaultID holds the default value on creation for the id field.
	bursaryapplication.DefaultID = bursaryapplicationDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[2].Descriptor()
	// document.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	document.DocumentTypeValidator = func() func(string) error {
		validators := documentDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[3].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[4].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = func() func(string) error {
		validators := documentDescFileExt.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_ext string) error {
			for _, fn := range fns {
				if err := fn(file_ext); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[6].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescIsVerified is the schema descriptor for is_verified field.
	documentDescIsVerified := documentFields[7].Descriptor()
	// document.DefaultIsVerified holds the default value on creation for the is_verified field.
	document.DefaultIsVerified = documentDescIsVerified.Default.(bool)
	// documentDescIsFlagged is the schema descriptor for is_flagged field.
	documentDescIsFlagged := documentFields[8].Descriptor()
	// document.DefaultIsFlagged holds the default value on creation for the is_flagged field.
	document.DefaultIsFlagged = documentDescIsFlagged.Default.(bool)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[11].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
}
