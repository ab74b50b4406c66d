// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApplicantProfile is the predicate function for applicantprofile builders.
type ApplicantProfile func(*sql.Selector)

// ApplicationStatusLog is the predicate function for applicationstatuslog builders.
type ApplicationStatusLog func(*sql.Selector)

// BursaryApplication is the predicate function for bursaryapplication builders.
type BursaryApplication func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)
