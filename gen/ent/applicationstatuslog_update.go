// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// ApplicationStatusLogUpdate is the builder for updating ApplicationStatusLog entities.
type ApplicationStatusLogUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationStatusLogMutation
}

// Where appends a list predicates to the ApplicationStatusLogUpdate builder.
func (_u *ApplicationStatusLogUpdate) Where(ps ...predicate.ApplicationStatusLog) *ApplicationStatusLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ApplicationStatusLogMutation object of the builder.
func (_u *ApplicationStatusLogUpdate) Mutation() *ApplicationStatusLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationStatusLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationStatusLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationStatusLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationStatusLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationStatusLogUpdate) check() error {
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApplicationStatusLog.application"`)
	}
	return nil
}

func (_u *ApplicationStatusLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicationstatuslog.Table, applicationstatuslog.Columns, sqlgraph.NewFieldSpec(applicationstatuslog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(applicationstatuslog.FieldOldStatus, field.TypeString)
	}
	if _u.mutation.ChangedByCleared() {
		_spec.ClearField(applicationstatuslog.FieldChangedBy, field.TypeString)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(applicationstatuslog.FieldComments, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationstatuslog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationStatusLogUpdateOne is the builder for updating a single ApplicationStatusLog entity.
type ApplicationStatusLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationStatusLogMutation
}

// Mutation returns the ApplicationStatusLogMutation object of the builder.
func (_u *ApplicationStatusLogUpdateOne) Mutation() *ApplicationStatusLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApplicationStatusLogUpdate builder.
func (_u *ApplicationStatusLogUpdateOne) Where(ps ...predicate.ApplicationStatusLog) *ApplicationStatusLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationStatusLogUpdateOne) Select(field string, fields ...string) *ApplicationStatusLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApplicationStatusLog entity.
func (_u *ApplicationStatusLogUpdateOne) Save(ctx context.Context) (*ApplicationStatusLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationStatusLogUpdateOne) SaveX(ctx context.Context) *ApplicationStatusLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationStatusLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationStatusLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationStatusLogUpdateOne) check() error {
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApplicationStatusLog.application"`)
	}
	return nil
}

func (_u *ApplicationStatusLogUpdateOne) sqlSave(ctx context.Context) (_node *ApplicationStatusLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicationstatuslog.Table, applicationstatuslog.Columns, sqlgraph.NewFieldSpec(applicationstatuslog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApplicationStatusLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicationstatuslog.FieldID)
		for _, f := range fields {
			if !applicationstatuslog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicationstatuslog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(applicationstatuslog.FieldOldStatus, field.TypeString)
	}
	if _u.mutation.ChangedByCleared() {
		_spec.ClearField(applicationstatuslog.FieldChangedBy, field.TypeString)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(applicationstatuslog.FieldComments, field.TypeString)
	}
	_node = &ApplicationStatusLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationstatuslog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
