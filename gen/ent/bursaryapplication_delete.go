// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// BursaryApplicationDelete is the builder for deleting a BursaryApplication entity.
type BursaryApplicationDelete struct {
	config
	hooks    []Hook
	mutation *BursaryApplicationMutation
}

// Where appends a list predicates to the BursaryApplicationDelete builder.
func (_d *BursaryApplicationDelete) Where(ps ...predicate.BursaryApplication) *BursaryApplicationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BursaryApplicationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BursaryApplicationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BursaryApplicationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(bursaryapplication.Table, sqlgraph.NewFieldSpec(bursaryapplication.FieldID, field.TypeUUID))
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

// BursaryApplicationDeleteOne is the builder for deleting a single BursaryApplication entity.
type BursaryApplicationDeleteOne struct {
	_d *BursaryApplicationDelete
}

// Where appends a list predicates to the BursaryApplicationDelete builder.
func (_d *BursaryApplicationDeleteOne) Where(ps ...predicate.BursaryApplication) *BursaryApplicationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BursaryApplicationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{bursaryapplication.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BursaryApplicationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
