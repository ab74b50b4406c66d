// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// ApplicationStatusLogDelete is the builder for deleting a ApplicationStatusLog entity.
type ApplicationStatusLogDelete struct {
	config
	hooks    []Hook
	mutation *ApplicationStatusLogMutation
}

// Where appends a list predicates to the ApplicationStatusLogDelete builder.
func (_d *ApplicationStatusLogDelete) Where(ps ...predicate.ApplicationStatusLog) *ApplicationStatusLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApplicationStatusLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationStatusLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApplicationStatusLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(applicationstatuslog.Table, sqlgraph.NewFieldSpec(applicationstatuslog.FieldID, field.TypeUUID))
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

// ApplicationStatusLogDeleteOne is the builder for deleting a single ApplicationStatusLog entity.
type ApplicationStatusLogDeleteOne struct {
	_d *ApplicationStatusLogDelete
}

// Where appends a list predicates to the ApplicationStatusLogDelete builder.
func (_d *ApplicationStatusLogDeleteOne) Where(ps ...predicate.ApplicationStatusLog) *ApplicationStatusLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApplicationStatusLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{applicationstatuslog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationStatusLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
