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
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
)

// ApplicantProfileCreate is the builder for creating a ApplicantProfile entity.
type ApplicantProfileCreate struct {
	config
	mutation *ApplicantProfileMutation
	hooks    []Hook
}

// SetFullName sets the "full_name" field.
func (_c *ApplicantProfileCreate) SetFullName(v string) *ApplicantProfileCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetIDNumber sets the "id_number" field.
func (_c *ApplicantProfileCreate) SetIDNumber(v string) *ApplicantProfileCreate {
	_c.mutation.SetIDNumber(v)
	return _c
}

// SetPhoneNumber sets the "phone_number" field.
func (_c *ApplicantProfileCreate) SetPhoneNumber(v string) *ApplicantProfileCreate {
	_c.mutation.SetPhoneNumber(v)
	return _c
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_c *ApplicantProfileCreate) SetNillablePhoneNumber(v *string) *ApplicantProfileCreate {
	if v != nil {
		_c.SetPhoneNumber(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ApplicantProfileCreate) SetEmail(v string) *ApplicantProfileCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ApplicantProfileCreate) SetNillableEmail(v *string) *ApplicantProfileCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *ApplicantProfileCreate) SetDateOfBirth(v time.Time) *ApplicantProfileCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *ApplicantProfileCreate) SetNillableDateOfBirth(v *time.Time) *ApplicantProfileCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetCounty sets the "county" field.
func (_c *ApplicantProfileCreate) SetCounty(v string) *ApplicantProfileCreate {
	_c.mutation.SetCounty(v)
	return _c
}

// SetSubCounty sets the "sub_county" field.
func (_c *ApplicantProfileCreate) SetSubCounty(v string) *ApplicantProfileCreate {
	_c.mutation.SetSubCounty(v)
	return _c
}

// SetNillableSubCounty sets the "sub_county" field if the given value is not nil.
func (_c *ApplicantProfileCreate) SetNillableSubCounty(v *string) *ApplicantProfileCreate {
	if v != nil {
		_c.SetSubCounty(*v)
	}
	return _c
}

// SetWard sets the "ward" field.
func (_c *ApplicantProfileCreate) SetWard(v string) *ApplicantProfileCreate {
	_c.mutation.SetWard(v)
	return _c
}

// SetNillableWard sets the "ward" field if the given value is not nil.
func (_c *ApplicantProfileCreate) SetNillableWard(v *string) *ApplicantProfileCreate {
	if v != nil {
		_c.SetWard(*v)
	}
	return _c
}

// SetVillage sets the "village" field.
func (_c *ApplicantProfileCreate) SetVillage(v string) *ApplicantProfileCreate {
	_c.mutation.SetVillage(v)
	return _c
}

// SetNillableVillage sets the "village" field if the given value is not nil.
func (_c *ApplicantProfileCreate) SetNillableVillage(v *string) *ApplicantProfileCreate {
	if v != nil {
		_c.SetVillage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicantProfileCreate) SetCreatedAt(v time.Time) *ApplicantProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicantProfileCreate) SetNillableCreatedAt(v *time.Time) *ApplicantProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicantProfileCreate) SetUpdatedAt(v time.Time) *ApplicantProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicantProfileCreate) SetNillableUpdatedAt(v *time.Time) *ApplicantProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicantProfileCreate) SetID(v uuid.UUID) *ApplicantProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ApplicantProfileCreate) SetNillableID(v *uuid.UUID) *ApplicantProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddApplicationIDs adds the "applications" edge to the BursaryApplication entity by IDs.
func (_c *ApplicantProfileCreate) AddApplicationIDs(ids ...uuid.UUID) *ApplicantProfileCreate {
	_c.mutation.AddApplicationIDs(ids...)
	return _c
}

// AddApplications adds the "applications" edges to the BursaryApplication entity.
func (_c *ApplicantProfileCreate) AddApplications(v ...*BursaryApplication) *ApplicantProfileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApplicationIDs(ids...)
}

// Mutation returns the ApplicantProfileMutation object of the builder.
func (_c *ApplicantProfileCreate) Mutation() *ApplicantProfileMutation {
	return _c.mutation
}

// Save creates the ApplicantProfile in the database.
func (_c *ApplicantProfileCreate) Save(ctx context.Context) (*ApplicantProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicantProfileCreate) SaveX(ctx context.Context) *ApplicantProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicantProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicantProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicantProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := applicantprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := applicantprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := applicantprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicantProfileCreate) check() error {
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "ApplicantProfile.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := applicantprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "ApplicantProfile.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IDNumber(); !ok {
		return &ValidationError{Name: "id_number", err: errors.New(`ent: missing required field "ApplicantProfile.id_number"`)}
	}
	if v, ok := _c.mutation.IDNumber(); ok {
		if err := applicantprofile.IDNumberValidator(v); err != nil {
			return &ValidationError{Name: "id_number", err: fmt.Errorf(`ent: validator failed for field "ApplicantProfile.id_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.County(); !ok {
		return &ValidationError{Name: "county", err: errors.New(`ent: missing required field "ApplicantProfile.county"`)}
	}
	if v, ok := _c.mutation.County(); ok {
		if err := applicantprofile.CountyValidator(v); err != nil {
			return &ValidationError{Name: "county", err: fmt.Errorf(`ent: validator failed for field "ApplicantProfile.county": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApplicantProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ApplicantProfile.updated_at"`)}
	}
	return nil
}

func (_c *ApplicantProfileCreate) sqlSave(ctx context.Context) (*ApplicantProfile, error) {
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

func (_c *ApplicantProfileCreate) createSpec() (*ApplicantProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &ApplicantProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(applicantprofile.Table, sqlgraph.NewFieldSpec(applicantprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(applicantprofile.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.IDNumber(); ok {
		_spec.SetField(applicantprofile.FieldIDNumber, field.TypeString, value)
		_node.IDNumber = value
	}
	if value, ok := _c.mutation.PhoneNumber(); ok {
		_spec.SetField(applicantprofile.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(applicantprofile.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(applicantprofile.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.County(); ok {
		_spec.SetField(applicantprofile.FieldCounty, field.TypeString, value)
		_node.County = value
	}
	if value, ok := _c.mutation.SubCounty(); ok {
		_spec.SetField(applicantprofile.FieldSubCounty, field.TypeString, value)
		_node.SubCounty = &value
	}
	if value, ok := _c.mutation.Ward(); ok {
		_spec.SetField(applicantprofile.FieldWard, field.TypeString, value)
		_node.Ward = &value
	}
	if value, ok := _c.mutation.Village(); ok {
		_spec.SetField(applicantprofile.FieldVillage, field.TypeString, value)
		_node.Village = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(applicantprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(applicantprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicantprofile.ApplicationsTable,
			Columns: []string{applicantprofile.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bursaryapplication.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicantProfileCreateBulk is the builder for creating many ApplicantProfile entities in bulk.
type ApplicantProfileCreateBulk struct {
	config
	err      error
	builders []*ApplicantProfileCreate
}

// Save creates the ApplicantProfile entities in the database.
func (_c *ApplicantProfileCreateBulk) Save(ctx context.Context) ([]*ApplicantProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApplicantProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicantProfileMutation)
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
func (_c *ApplicantProfileCreateBulk) SaveX(ctx context.Context) []*ApplicantProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicantProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicantProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
