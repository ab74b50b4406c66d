// Code generated by ent, DO NOT EDIT.

package bursaryapplication

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bursaryapplication type in the database.
	Label = "bursary_application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldApplicationNumber holds the string denoting the application_number field in the database.
	FieldApplicationNumber = "application_number"
	// FieldStudentName holds the string denoting the student_name field in the database.
	FieldStudentName = "student_name"
	// FieldInstitutionName holds the string denoting the institution_name field in the database.
	FieldInstitutionName = "institution_name"
	// FieldEducationLevel holds the string denoting the education_level field in the database.
	FieldEducationLevel = "education_level"
	// FieldAnnualFamilyIncome holds the string denoting the annual_family_income field in the database.
	FieldAnnualFamilyIncome = "annual_family_income"
	// FieldTuitionFee holds the string denoting the tuition_fee field in the database.
	FieldTuitionFee = "tuition_fee"
	// FieldAmountRequested holds the string denoting the amount_requested field in the database.
	FieldAmountRequested = "amount_requested"
	// FieldNumberOfSiblings holds the string denoting the number_of_siblings field in the database.
	FieldNumberOfSiblings = "number_of_siblings"
	// FieldSiblingsInSchool holds the string denoting the siblings_in_school field in the database.
	FieldSiblingsInSchool = "siblings_in_school"
	// FieldIsOrphan holds the string denoting the is_orphan field in the database.
	FieldIsOrphan = "is_orphan"
	// FieldHasDisability holds the string denoting the has_disability field in the database.
	FieldHasDisability = "has_disability"
	// FieldIsSingleParent holds the string denoting the is_single_parent field in the database.
	FieldIsSingleParent = "is_single_parent"
	// FieldPreviousBursaryRecipient holds the string denoting the previous_bursary_recipient field in the database.
	FieldPreviousBursaryRecipient = "previous_bursary_recipient"
	// FieldReasonForApplication holds the string denoting the reason_for_application field in the database.
	FieldReasonForApplication = "reason_for_application"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIsVerified holds the string denoting the is_verified field in the database.
	FieldIsVerified = "is_verified"
	// FieldVerifiedBy holds the string denoting the verified_by field in the database.
	FieldVerifiedBy = "verified_by"
	// FieldVerifiedAt holds the string denoting the verified_at field in the database.
	FieldVerifiedAt = "verified_at"
	// FieldIsFlagged holds the string denoting the is_flagged field in the database.
	FieldIsFlagged = "is_flagged"
	// FieldFlagReason holds the string denoting the flag_reason field in the database.
	FieldFlagReason = "flag_reason"
	// FieldReviewerComments holds the string denoting the reviewer_comments field in the database.
	FieldReviewerComments = "reviewer_comments"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeStatusLogs holds the string denoting the status_logs edge name in mutations.
	EdgeStatusLogs = "status_logs"
	// Table holds the table name of the bursaryapplication in the database.
	Table = "bursary_applications"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "bursary_applications"
	// ProfileInverseTable is the table name for the ApplicantProfile entity.
	// It exists in this package in order to avoid circular dependency with the "applicantprofile" package.
	ProfileInverseTable = "applicant_profiles"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "application_id"
	// StatusLogsTable is the table that holds the status_logs relation/edge.
	StatusLogsTable = "application_status_logs"
	// StatusLogsInverseTable is the table name for the ApplicationStatusLog entity.
	// It exists in this package in order to avoid circular dependency with the "applicationstatuslog" package.
	StatusLogsInverseTable = "application_status_logs"
	// StatusLogsColumn is the table column denoting the status_logs relation/edge.
	StatusLogsColumn = "application_id"
)

// Columns holds all SQL columns for bursaryapplication fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldApplicationNumber,
	FieldStudentName,
	FieldInstitutionName,
	FieldEducationLevel,
	FieldAnnualFamilyIncome,
	FieldTuitionFee,
	FieldAmountRequested,
	FieldNumberOfSiblings,
	FieldSiblingsInSchool,
	FieldIsOrphan,
	FieldHasDisability,
	FieldIsSingleParent,
	FieldPreviousBursaryRecipient,
	FieldReasonForApplication,
	FieldStatus,
	FieldIsVerified,
	FieldVerifiedBy,
	FieldVerifiedAt,
	FieldIsFlagged,
	FieldFlagReason,
	FieldReviewerComments,
	FieldSubmittedAt,
	FieldReviewedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ApplicationNumberValidator is a validator for the "application_number" field. It is called by the builders before save.
	ApplicationNumberValidator func(string) error
	// StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	StudentNameValidator func(string) error
	// InstitutionNameValidator is a validator for the "institution_name" field. It is called by the builders before save.
	InstitutionNameValidator func(string) error
	// AnnualFamilyIncomeValidator is a validator for the "annual_family_income" field. It is called by the builders before save.
	AnnualFamilyIncomeValidator func(float64) error
	// TuitionFeeValidator is a validator for the "tuition_fee" field. It is called by the builders before save.
	TuitionFeeValidator func(float64) error
	// AmountRequestedValidator is a validator for the "amount_requested" field. It is called by the builders before save.
	AmountRequestedValidator func(float64) error
	// DefaultNumberOfSiblings holds the default value on creation for the "number_of_siblings" field.
	DefaultNumberOfSiblings int
	// NumberOfSiblingsValidator is a validator for the "number_of_siblings" field. It is called by the builders before save.
	NumberOfSiblingsValidator func(int) error
	// DefaultSiblingsInSchool holds the default value on creation for the "siblings_in_school" field.
	DefaultSiblingsInSchool int
	// SiblingsInSchoolValidator is a validator for the "siblings_in_school" field. It is called by the builders before save.
	SiblingsInSchoolValidator func(int) error
	// DefaultIsOrphan holds the default value on creation for the "is_orphan" field.
	DefaultIsOrphan bool
	// DefaultHasDisability holds the default value on creation for the "has_disability" field.
	DefaultHasDisability bool
	// DefaultIsSingleParent holds the default value on creation for the "is_single_parent" field.
	DefaultIsSingleParent bool
	// DefaultPreviousBursaryRecipient holds the default value on creation for the "previous_bursary_recipient" field.
	DefaultPreviousBursaryRecipient bool
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultIsVerified holds the default value on creation for the "is_verified" field.
	DefaultIsVerified bool
	// DefaultIsFlagged holds the default value on creation for the "is_flagged" field.
	DefaultIsFlagged bool
	// DefaultSubmittedAt holds the default value on creation for the "submitted_at" field.
	DefaultSubmittedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BursaryApplication queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByApplicationNumber orders the results by the application_number field.
func ByApplicationNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationNumber, opts...).ToFunc()
}

// ByStudentName orders the results by the student_name field.
func ByStudentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentName, opts...).ToFunc()
}

// ByInstitutionName orders the results by the institution_name field.
func ByInstitutionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstitutionName, opts...).ToFunc()
}

// ByEducationLevel orders the results by the education_level field.
func ByEducationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEducationLevel, opts...).ToFunc()
}

// ByAnnualFamilyIncome orders the results by the annual_family_income field.
func ByAnnualFamilyIncome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnnualFamilyIncome, opts...).ToFunc()
}

// ByTuitionFee orders the results by the tuition_fee field.
func ByTuitionFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTuitionFee, opts...).ToFunc()
}

// ByAmountRequested orders the results by the amount_requested field.
func ByAmountRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountRequested, opts...).ToFunc()
}

// ByNumberOfSiblings orders the results by the number_of_siblings field.
func ByNumberOfSiblings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberOfSiblings, opts...).ToFunc()
}

// BySiblingsInSchool orders the results by the siblings_in_school field.
func BySiblingsInSchool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiblingsInSchool, opts...).ToFunc()
}

// ByIsOrphan orders the results by the is_orphan field.
func ByIsOrphan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOrphan, opts...).ToFunc()
}

// ByHasDisability orders the results by the has_disability field.
func ByHasDisability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasDisability, opts...).ToFunc()
}

// ByIsSingleParent orders the results by the is_single_parent field.
func ByIsSingleParent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSingleParent, opts...).ToFunc()
}

// ByPreviousBursaryRecipient orders the results by the previous_bursary_recipient field.
func ByPreviousBursaryRecipient(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousBursaryRecipient, opts...).ToFunc()
}

// ByReasonForApplication orders the results by the reason_for_application field.
func ByReasonForApplication(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonForApplication, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIsVerified orders the results by the is_verified field.
func ByIsVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsVerified, opts...).ToFunc()
}

// ByVerifiedBy orders the results by the verified_by field.
func ByVerifiedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedBy, opts...).ToFunc()
}

// ByVerifiedAt orders the results by the verified_at field.
func ByVerifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedAt, opts...).ToFunc()
}

// ByIsFlagged orders the results by the is_flagged field.
func ByIsFlagged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFlagged, opts...).ToFunc()
}

// ByFlagReason orders the results by the flag_reason field.
func ByFlagReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlagReason, opts...).ToFunc()
}

// ByReviewerComments orders the results by the reviewer_comments field.
func ByReviewerComments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewerComments, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStatusLogsCount orders the results by status_logs count.
func ByStatusLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusLogsStep(), opts...)
	}
}

// ByStatusLogs orders the results by status_logs terms.
func ByStatusLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
func newStatusLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusLogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusLogsTable, StatusLogsColumn),
	)
}
