// Code generated by ent, DO NOT EDIT.

package applicationstatuslog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLTE(FieldID, id))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldApplicationID, v))
}

// OldStatus applies equality check predicate on the "old_status" field. It's identical to OldStatusEQ.
func OldStatus(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldOldStatus, v))
}

// NewStatus applies equality check predicate on the "new_status" field. It's identical to NewStatusEQ.
func NewStatus(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldNewStatus, v))
}

// ChangedBy applies equality check predicate on the "changed_by" field. It's identical to ChangedByEQ.
func ChangedBy(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldChangedBy, v))
}

// Comments applies equality check predicate on the "comments" field. It's identical to CommentsEQ.
func Comments(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldComments, v))
}

// ChangedAt applies equality check predicate on the "changed_at" field. It's identical to ChangedAtEQ.
func ChangedAt(v time.Time) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldChangedAt, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...uuid.UUID) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotIn(FieldApplicationID, vs...))
}

// OldStatusEQ applies the EQ predicate on the "old_status" field.
func OldStatusEQ(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldOldStatus, v))
}

// OldStatusNEQ applies the NEQ predicate on the "old_status" field.
func OldStatusNEQ(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNEQ(FieldOldStatus, v))
}

// OldStatusIn applies the In predicate on the "old_status" field.
func OldStatusIn(vs ...string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIn(FieldOldStatus, vs...))
}

// OldStatusNotIn applies the NotIn predicate on the "old_status" field.
func OldStatusNotIn(vs ...string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotIn(FieldOldStatus, vs...))
}

// OldStatusGT applies the GT predicate on the "old_status" field.
func OldStatusGT(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGT(FieldOldStatus, v))
}

// OldStatusGTE applies the GTE predicate on the "old_status" field.
func OldStatusGTE(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGTE(FieldOldStatus, v))
}

// OldStatusLT applies the LT predicate on the "old_status" field.
func OldStatusLT(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLT(FieldOldStatus, v))
}

// OldStatusLTE applies the LTE predicate on the "old_status" field.
func OldStatusLTE(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLTE(FieldOldStatus, v))
}

// OldStatusContains applies the Contains predicate on the "old_status" field.
func OldStatusContains(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldContains(FieldOldStatus, v))
}

// OldStatusHasPrefix applies the HasPrefix predicate on the "old_status" field.
func OldStatusHasPrefix(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldHasPrefix(FieldOldStatus, v))
}

// OldStatusHasSuffix applies the HasSuffix predicate on the "old_status" field.
func OldStatusHasSuffix(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldHasSuffix(FieldOldStatus, v))
}

// OldStatusIsNil applies the IsNil predicate on the "old_status" field.
func OldStatusIsNil() predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIsNull(FieldOldStatus))
}

// OldStatusNotNil applies the NotNil predicate on the "old_status" field.
func OldStatusNotNil() predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotNull(FieldOldStatus))
}

// OldStatusEqualFold applies the EqualFold predicate on the "old_status" field.
func OldStatusEqualFold(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEqualFold(FieldOldStatus, v))
}

// OldStatusContainsFold applies the ContainsFold predicate on the "old_status" field.
func OldStatusContainsFold(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldContainsFold(FieldOldStatus, v))
}

// NewStatusEQ applies the EQ predicate on the "new_status" field.
func NewStatusEQ(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldNewStatus, v))
}

// NewStatusNEQ applies the NEQ predicate on the "new_status" field.
func NewStatusNEQ(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNEQ(FieldNewStatus, v))
}

// NewStatusIn applies the In predicate on the "new_status" field.
func NewStatusIn(vs ...string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIn(FieldNewStatus, vs...))
}

// NewStatusNotIn applies the NotIn predicate on the "new_status" field.
func NewStatusNotIn(vs ...string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotIn(FieldNewStatus, vs...))
}

// NewStatusGT applies the GT predicate on the "new_status" field.
func NewStatusGT(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGT(FieldNewStatus, v))
}

// NewStatusGTE applies the GTE predicate on the "new_status" field.
func NewStatusGTE(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGTE(FieldNewStatus, v))
}

// NewStatusLT applies the LT predicate on the "new_status" field.
func NewStatusLT(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLT(FieldNewStatus, v))
}

// NewStatusLTE applies the LTE predicate on the "new_status" field.
func NewStatusLTE(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLTE(FieldNewStatus, v))
}

// NewStatusContains applies the Contains predicate on the "new_status" field.
func NewStatusContains(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldContains(FieldNewStatus, v))
}

// NewStatusHasPrefix applies the HasPrefix predicate on the "new_status" field.
func NewStatusHasPrefix(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldHasPrefix(FieldNewStatus, v))
}

// NewStatusHasSuffix applies the HasSuffix predicate on the "new_status" field.
func NewStatusHasSuffix(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldHasSuffix(FieldNewStatus, v))
}

// NewStatusEqualFold applies the EqualFold predicate on the "new_status" field.
func NewStatusEqualFold(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEqualFold(FieldNewStatus, v))
}

// NewStatusContainsFold applies the ContainsFold predicate on the "new_status" field.
func NewStatusContainsFold(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldContainsFold(FieldNewStatus, v))
}

// ChangedByEQ applies the EQ predicate on the "changed_by" field.
func ChangedByEQ(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldChangedBy, v))
}

// ChangedByNEQ applies the NEQ predicate on the "changed_by" field.
func ChangedByNEQ(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNEQ(FieldChangedBy, v))
}

// ChangedByIn applies the In predicate on the "changed_by" field.
func ChangedByIn(vs ...string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIn(FieldChangedBy, vs...))
}

// ChangedByNotIn applies the NotIn predicate on the "changed_by" field.
func ChangedByNotIn(vs ...string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotIn(FieldChangedBy, vs...))
}

// ChangedByGT applies the GT predicate on the "changed_by" field.
func ChangedByGT(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGT(FieldChangedBy, v))
}

// ChangedByGTE applies the GTE predicate on the "changed_by" field.
func ChangedByGTE(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGTE(FieldChangedBy, v))
}

// ChangedByLT applies the LT predicate on the "changed_by" field.
func ChangedByLT(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLT(FieldChangedBy, v))
}

// ChangedByLTE applies the LTE predicate on the "changed_by" field.
func ChangedByLTE(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLTE(FieldChangedBy, v))
}

// ChangedByContains applies the Contains predicate on the "changed_by" field.
func ChangedByContains(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldContains(FieldChangedBy, v))
}

// ChangedByHasPrefix applies the HasPrefix predicate on the "changed_by" field.
func ChangedByHasPrefix(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldHasPrefix(FieldChangedBy, v))
}

// ChangedByHasSuffix applies the HasSuffix predicate on the "changed_by" field.
func ChangedByHasSuffix(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldHasSuffix(FieldChangedBy, v))
}

// ChangedByIsNil applies the IsNil predicate on the "changed_by" field.
func ChangedByIsNil() predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIsNull(FieldChangedBy))
}

// ChangedByNotNil applies the NotNil predicate on the "changed_by" field.
func ChangedByNotNil() predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotNull(FieldChangedBy))
}

// ChangedByEqualFold applies the EqualFold predicate on the "changed_by" field.
func ChangedByEqualFold(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEqualFold(FieldChangedBy, v))
}

// ChangedByContainsFold applies the ContainsFold predicate on the "changed_by" field.
func ChangedByContainsFold(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldContainsFold(FieldChangedBy, v))
}

// CommentsEQ applies the EQ predicate on the "comments" field.
func CommentsEQ(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldComments, v))
}

// CommentsNEQ applies the NEQ predicate on the "comments" field.
func CommentsNEQ(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNEQ(FieldComments, v))
}

// CommentsIn applies the In predicate on the "comments" field.
func CommentsIn(vs ...string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIn(FieldComments, vs...))
}

// CommentsNotIn applies the NotIn predicate on the "comments" field.
func CommentsNotIn(vs ...string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotIn(FieldComments, vs...))
}

// CommentsGT applies the GT predicate on the "comments" field.
func CommentsGT(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGT(FieldComments, v))
}

// CommentsGTE applies the GTE predicate on the "comments" field.
func CommentsGTE(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGTE(FieldComments, v))
}

// CommentsLT applies the LT predicate on the "comments" field.
func CommentsLT(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLT(FieldComments, v))
}

// CommentsLTE applies the LTE predicate on the "comments" field.
func CommentsLTE(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLTE(FieldComments, v))
}

// CommentsContains applies the Contains predicate on the "comments" field.
func CommentsContains(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldContains(FieldComments, v))
}

// CommentsHasPrefix applies the HasPrefix predicate on the "comments" field.
func CommentsHasPrefix(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldHasPrefix(FieldComments, v))
}

// CommentsHasSuffix applies the HasSuffix predicate on the "comments" field.
func CommentsHasSuffix(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldHasSuffix(FieldComments, v))
}

// CommentsIsNil applies the IsNil predicate on the "comments" field.
func CommentsIsNil() predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIsNull(FieldComments))
}

// CommentsNotNil applies the NotNil predicate on the "comments" field.
func CommentsNotNil() predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotNull(FieldComments))
}

// CommentsEqualFold applies the EqualFold predicate on the "comments" field.
func CommentsEqualFold(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEqualFold(FieldComments, v))
}

// CommentsContainsFold applies the ContainsFold predicate on the "comments" field.
func CommentsContainsFold(v string) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldContainsFold(FieldComments, v))
}

// ChangedAtEQ applies the EQ predicate on the "changed_at" field.
func ChangedAtEQ(v time.Time) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldEQ(FieldChangedAt, v))
}

// ChangedAtNEQ applies the NEQ predicate on the "changed_at" field.
func ChangedAtNEQ(v time.Time) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNEQ(FieldChangedAt, v))
}

// ChangedAtIn applies the In predicate on the "changed_at" field.
func ChangedAtIn(vs ...time.Time) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldIn(FieldChangedAt, vs...))
}

// ChangedAtNotIn applies the NotIn predicate on the "changed_at" field.
func ChangedAtNotIn(vs ...time.Time) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldNotIn(FieldChangedAt, vs...))
}

// ChangedAtGT applies the GT predicate on the "changed_at" field.
func ChangedAtGT(v time.Time) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGT(FieldChangedAt, v))
}

// ChangedAtGTE applies the GTE predicate on the "changed_at" field.
func ChangedAtGTE(v time.Time) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldGTE(FieldChangedAt, v))
}

// ChangedAtLT applies the LT predicate on the "changed_at" field.
func ChangedAtLT(v time.Time) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLT(FieldChangedAt, v))
}

// ChangedAtLTE applies the LTE predicate on the "changed_at" field.
func ChangedAtLTE(v time.Time) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.FieldLTE(FieldChangedAt, v))
}

// HasApplication applies the HasEdge predicate on the "application" edge.
func HasApplication() predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationWith applies the HasEdge predicate on the "application" edge with a given conditions (other predicates).
func HasApplicationWith(preds ...predicate.BursaryApplication) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(func(s *sql.Selector) {
		step := newApplicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApplicationStatusLog) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApplicationStatusLog) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApplicationStatusLog) predicate.ApplicationStatusLog {
	return predicate.ApplicationStatusLog(sql.NotPredicates(p))
}
