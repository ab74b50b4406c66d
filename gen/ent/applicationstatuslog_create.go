// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
)

// ApplicationStatusLogCreate is the builder for creating a ApplicationStatusLog entity.
type ApplicationStatusLogCreate struct {
	config
	mutation *ApplicationStatusLogMutation
	hooks    []Hook
}

// SetApplicationID sets the "application_id" field.
func (_c *ApplicationStatusLogCreate) SetApplicationID(v uuid.UUID) *ApplicationStatusLogCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetOldStatus sets the "old_status" field.
func (_c *ApplicationStatusLogCreate) SetOldStatus(v string) *ApplicationStatusLogCreate {
	_c.mutation.SetOldStatus(v)
	return _c
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_c *ApplicationStatusLogCreate) SetNillableOldStatus(v *string) *ApplicationStatusLogCreate {
	if v != nil {
		_c.SetOldStatus(*v)
	}
	return _c
}

// SetNewStatus sets the "new_status" field.
func (_c *ApplicationStatusLogCreate) SetNewStatus(v string) *ApplicationStatusLogCreate {
	_c.mutation.SetNewStatus(v)
	return _c
}

// SetChangedBy sets the "changed_by" field.
func (_c *ApplicationStatusLogCreate) SetChangedBy(v string) *ApplicationStatusLogCreate {
	_c.mutation.SetChangedBy(v)
	return _c
}

// SetNillableChangedBy sets the "changed_by" field if the given value is not nil.
func (_c *ApplicationStatusLogCreate) SetNillableChangedBy(v *string) *ApplicationStatusLogCreate {
	if v != nil {
		_c.SetChangedBy(*v)
	}
	return _c
}

// SetComments sets the "comments" field.
func (_c *ApplicationStatusLogCreate) SetComments(v string) *ApplicationStatusLogCreate {
	_c.mutation.SetComments(v)
	return _c
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_c *ApplicationStatusLogCreate) SetNillableComments(v *string) *ApplicationStatusLogCreate {
	if v != nil {
		_c.SetComments(*v)
	}
	return _c
}

// SetChangedAt sets the "changed_at" field.
func (_c *ApplicationStatusLogCreate) SetChangedAt(v time.Time) *ApplicationStatusLogCreate {
	_c.mutation.SetChangedAt(v)
	return _c
}

// SetNillableChangedAt sets the "changed_at" field if the given value is not nil.
func (_c *ApplicationStatusLogCreate) SetNillableChangedAt(v *time.Time) *ApplicationStatusLogCreate {
	if v != nil {
		_c.SetChangedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationStatusLogCreate) SetID(v uuid.UUID) *ApplicationStatusLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ApplicationStatusLogCreate) SetNillableID(v *uuid.UUID) *ApplicationStatusLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetApplication sets the "application" edge to the BursaryApplication entity.
func (_c *ApplicationStatusLogCreate) SetApplication(v *BursaryApplication) *ApplicationStatusLogCreate {
	return _c.SetApplicationID(v.ID)
}

// Mutation returns the ApplicationStatusLogMutation object of the builder.
func (_c *ApplicationStatusLogCreate) Mutation() *ApplicationStatusLogMutation {
	return _c.mutation
}

// Save creates the ApplicationStatusLog in the database.
func (_c *ApplicationStatusLogCreate) Save(ctx context.Context) (*ApplicationStatusLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationStatusLogCreate) SaveX(ctx context.Context) *ApplicationStatusLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationStatusLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationStatusLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationStatusLogCreate) defaults() {
	if _, ok := _c.mutation.ChangedAt(); !ok {
		v := applicationstatuslog.DefaultChangedAt()
		_c.mutation.SetChangedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := applicationstatuslog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationStatusLogCreate) check() error {
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "ApplicationStatusLog.application_id"`)}
	}
	if v, ok := _c.mutation.OldStatus(); ok {
		if err := applicationstatuslog.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`ent: validator failed for field "ApplicationStatusLog.old_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewStatus(); !ok {
		return &ValidationError{Name: "new_status", err: errors.New(`ent: missing required field "ApplicationStatusLog.new_status"`)}
	}
	if v, ok := _c.mutation.NewStatus(); ok {
		if err := applicationstatuslog.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`ent: validator failed for field "ApplicationStatusLog.new_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChangedAt(); !ok {
		return &ValidationError{Name: "changed_at", err: errors.New(`ent: missing required field "ApplicationStatusLog.changed_at"`)}
	}
	if len(_c.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "ApplicationStatusLog.application"`)}
	}
	return nil
}

func (_c *ApplicationStatusLogCreate) sqlSave(ctx context.Context) (*ApplicationStatusLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApplicationStatusLogCreate) createSpec() (*ApplicationStatusLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ApplicationStatusLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(applicationstatuslog.Table, sqlgraph.NewFieldSpec(applicationstatuslog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OldStatus(); ok {
		_spec.SetField(applicationstatuslog.FieldOldStatus, field.TypeString, value)
		_node.OldStatus = value
	}
	if value, ok := _c.mutation.NewStatus(); ok {
		_spec.SetField(applicationstatuslog.FieldNewStatus, field.TypeString, value)
		_node.NewStatus = value
	}
	if value, ok := _c.mutation.ChangedBy(); ok {
		_spec.SetField(applicationstatuslog.FieldChangedBy, field.TypeString, value)
		_node.ChangedBy = &value
	}
	if value, ok := _c.mutation.Comments(); ok {
		_spec.SetField(applicationstatuslog.FieldComments, field.TypeString, value)
		_node.Comments = &value
	}
	if value, ok := _c.mutation.ChangedAt(); ok {
		_spec.SetField(applicationstatuslog.FieldChangedAt, field.TypeTime, value)
		_node.ChangedAt = value
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   applicationstatuslog.ApplicationTable,
			Columns: []string{applicationstatuslog.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bursaryapplication.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ApplicationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationStatusLogCreateBulk is the builder for creating many ApplicationStatusLog entities in bulk.
type ApplicationStatusLogCreateBulk struct {
	config
	err      error
	builders []*ApplicationStatusLogCreate
}

// Save creates the ApplicationStatusLog entities in the database.
func (_c *ApplicationStatusLogCreateBulk) Save(ctx context.Context) ([]*ApplicationStatusLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApplicationStatusLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationStatusLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ApplicationStatusLogCreateBulk) SaveX(ctx context.Context) []*ApplicationStatusLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationStatusLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationStatusLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
