// Code generated by ent, DO NOT EDIT.

package applicationstatuslog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the applicationstatuslog type in the database.
	Label = "application_status_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldOldStatus holds the string denoting the old_status field in the database.
	FieldOldStatus = "old_status"
	// FieldNewStatus holds the string denoting the new_status field in the database.
	FieldNewStatus = "new_status"
	// FieldChangedBy holds the string denoting the changed_by field in the database.
	FieldChangedBy = "changed_by"
	// FieldComments holds the string denoting the comments field in the database.
	FieldComments = "comments"
	// FieldChangedAt holds the string denoting the changed_at field in the database.
	FieldChangedAt = "changed_at"
	// EdgeApplication holds the string denoting the application edge name in mutations.
	EdgeApplication = "application"
	// Table holds the table name of the applicationstatuslog in the database.
	Table = "application_status_logs"
	// ApplicationTable is the table that holds the application relation/edge.
	ApplicationTable = "application_status_logs"
	// ApplicationInverseTable is the table name for the BursaryApplication entity.
	// It exists in this package in order to avoid circular dependency with the "bursaryapplication" package.
	ApplicationInverseTable = "bursary_applications"
	// ApplicationColumn is the table column denoting the application relation/edge.
	ApplicationColumn = "application_id"
)

// Columns holds all SQL columns for applicationstatuslog fields.
var Columns = []string{
	FieldID,
	FieldApplicationID,
	FieldOldStatus,
	FieldNewStatus,
	FieldChangedBy,
	FieldComments,
	FieldChangedAt,
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
	// OldStatusValidator is a validator for the "old_status" field. It is called by the builders before save.
	OldStatusValidator func(string) error
	// NewStatusValidator is a validator for the "new_status" field. It is called by the builders before save.
	NewStatusValidator func(string) error
	// DefaultChangedAt holds the default value on creation for the "changed_at" field.
	DefaultChangedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ApplicationStatusLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// ByOldStatus orders the results by the old_status field.
func ByOldStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldStatus, opts...).ToFunc()
}

// ByNewStatus orders the results by the new_status field.
func ByNewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewStatus, opts...).ToFunc()
}

// ByChangedBy orders the results by the changed_by field.
func ByChangedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangedBy, opts...).ToFunc()
}

// ByComments orders the results by the comments field.
func ByComments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComments, opts...).ToFunc()
}

// ByChangedAt orders the results by the changed_at field.
func ByChangedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangedAt, opts...).ToFunc()
}

// ByApplicationField orders the results by application field.
func ByApplicationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationStep(), sql.OrderByField(field, opts...))
	}
}
func newApplicationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
	)
}
