// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// ApplicantProfileDelete is the builder for deleting a ApplicantProfile entity.
type ApplicantProfileDelete struct {
	config
	hooks    []Hook
	mutation *ApplicantProfileMutation
}

// Where appends a list predicates to the ApplicantProfileDelete builder.
func (_d *ApplicantProfileDelete) Where(ps ...predicate.ApplicantProfile) *ApplicantProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApplicantProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicantProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApplicantProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(applicantprofile.Table, sqlgraph.NewFieldSpec(applicantprofile.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ApplicantProfileDeleteOne is the builder for deleting a single ApplicantProfile entity.
type ApplicantProfileDeleteOne struct {
	_d *ApplicantProfileDelete
}

// Where appends a list predicates to the ApplicantProfileDelete builder.
func (_d *ApplicantProfileDeleteOne) Where(ps ...predicate.ApplicantProfile) *ApplicantProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApplicantProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{applicantprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicantProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
