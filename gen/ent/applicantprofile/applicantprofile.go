// Code generated by ent, DO NOT EDIT.

package applicantprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the applicantprofile type in the database.
	Label = "applicant_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldIDNumber holds the string denoting the id_number field in the database.
	FieldIDNumber = "id_number"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldDateOfBirth holds the string denoting the date_of_birth field in the database.
	FieldDateOfBirth = "date_of_birth"
	// FieldCounty holds the string denoting the county field in the database.
	FieldCounty = "county"
	// FieldSubCounty holds the string denoting the sub_county field in the database.
	FieldSubCounty = "sub_county"
	// FieldWard holds the string denoting the ward field in the database.
	FieldWard = "ward"
	// FieldVillage holds the string denoting the village field in the database.
	FieldVillage = "village"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeApplications holds the string denoting the applications edge name in mutations.
	EdgeApplications = "applications"
	// Table holds the table name of the applicantprofile in the database.
	Table = "applicant_profiles"
	// ApplicationsTable is the table that holds the applications relation/edge.
	ApplicationsTable = "bursary_applications"
	// ApplicationsInverseTable is the table name for the BursaryApplication entity.
	// It exists in this package in order to avoid circular dependency with the "bursaryapplication" package.
	ApplicationsInverseTable = "bursary_applications"
	// ApplicationsColumn is the table column denoting the applications relation/edge.
	ApplicationsColumn = "profile_id"
)

// Columns holds all SQL columns for applicantprofile fields.
var Columns = []string{
	FieldID,
	FieldFullName,
	FieldIDNumber,
	FieldPhoneNumber,
	FieldEmail,
	FieldDateOfBirth,
	FieldCounty,
	FieldSubCounty,
	FieldWard,
	FieldVillage,
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
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// IDNumberValidator is a validator for the "id_number" field. It is called by the builders before save.
	IDNumberValidator func(string) error
	// CountyValidator is a validator for the "county" field. It is called by the builders before save.
	CountyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ApplicantProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByIDNumber orders the results by the id_number field.
func ByIDNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIDNumber, opts...).ToFunc()
}

// ByPhoneNumber orders the results by the phone_number field.
func ByPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumber, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByDateOfBirth orders the results by the date_of_birth field.
func ByDateOfBirth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfBirth, opts...).ToFunc()
}

// ByCounty orders the results by the county field.
func ByCounty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounty, opts...).ToFunc()
}

// BySubCounty orders the results by the sub_county field.
func BySubCounty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubCounty, opts...).ToFunc()
}

// ByWard orders the results by the ward field.
func ByWard(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWard, opts...).ToFunc()
}

// ByVillage orders the results by the village field.
func ByVillage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVillage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByApplicationsCount orders the results by applications count.
func ByApplicationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newApplicationsStep(), opts...)
	}
}

// ByApplications orders the results by applications terms.
func ByApplications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newApplicationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
	)
}
