// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// ApplicantProfileUpdate is the builder for updating ApplicantProfile entities.
type ApplicantProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicantProfileMutation
}

// Where appends a list predicates to the ApplicantProfileUpdate builder.
func (_u *ApplicantProfileUpdate) Where(ps ...predicate.ApplicantProfile) *ApplicantProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ApplicantProfileUpdate) SetFullName(v string) *ApplicantProfileUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillableFullName(v *string) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetIDNumber sets the "id_number" field.
func (_u *ApplicantProfileUpdate) SetIDNumber(v string) *ApplicantProfileUpdate {
	_u.mutation.SetIDNumber(v)
	return _u
}

// SetNillableIDNumber sets the "id_number" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillableIDNumber(v *string) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetIDNumber(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *ApplicantProfileUpdate) SetPhoneNumber(v string) *ApplicantProfileUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillablePhoneNumber(v *string) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *ApplicantProfileUpdate) ClearPhoneNumber() *ApplicantProfileUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ApplicantProfileUpdate) SetEmail(v string) *ApplicantProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillableEmail(v *string) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ApplicantProfileUpdate) ClearEmail() *ApplicantProfileUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *ApplicantProfileUpdate) SetDateOfBirth(v time.Time) *ApplicantProfileUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillableDateOfBirth(v *time.Time) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *ApplicantProfileUpdate) ClearDateOfBirth() *ApplicantProfileUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetCounty sets the "county" field.
func (_u *ApplicantProfileUpdate) SetCounty(v string) *ApplicantProfileUpdate {
	_u.mutation.SetCounty(v)
	return _u
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillableCounty(v *string) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetCounty(*v)
	}
	return _u
}

// SetSubCounty sets the "sub_county" field.
func (_u *ApplicantProfileUpdate) SetSubCounty(v string) *ApplicantProfileUpdate {
	_u.mutation.SetSubCounty(v)
	return _u
}

// SetNillableSubCounty sets the "sub_county" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillableSubCounty(v *string) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetSubCounty(*v)
	}
	return _u
}

// ClearSubCounty clears the value of the "sub_county" field.
func (_u *ApplicantProfileUpdate) ClearSubCounty() *ApplicantProfileUpdate {
	_u.mutation.ClearSubCounty()
	return _u
}

// SetWard sets the "ward" field.
func (_u *ApplicantProfileUpdate) SetWard(v string) *ApplicantProfileUpdate {
	_u.mutation.SetWard(v)
	return _u
}

// SetNillableWard sets the "ward" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillableWard(v *string) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetWard(*v)
	}
	return _u
}

// ClearWard clears the value of the "ward" field.
func (_u *ApplicantProfileUpdate) ClearWard() *ApplicantProfileUpdate {
	_u.mutation.ClearWard()
	return _u
}

// SetVillage sets the "village" field.
func (_u *ApplicantProfileUpdate) SetVillage(v string) *ApplicantProfileUpdate {
	_u.mutation.SetVillage(v)
	return _u
}

// SetNillableVillage sets the "village" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillableVillage(v *string) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetVillage(*v)
	}
	return _u
}

// ClearVillage clears the value of the "village" field.
func (_u *ApplicantProfileUpdate) ClearVillage() *ApplicantProfileUpdate {
	_u.mutation.ClearVillage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicantProfileUpdate) SetCreatedAt(v time.Time) *ApplicantProfileUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicantProfileUpdate) SetNillableCreatedAt(v *time.Time) *ApplicantProfileUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicantProfileUpdate) SetUpdatedAt(v time.Time) *ApplicantProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the BursaryApplication entity by IDs.
func (_u *ApplicantProfileUpdate) AddApplicationIDs(ids ...uuid.UUID) *ApplicantProfileUpdate {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the BursaryApplication entity.
func (_u *ApplicantProfileUpdate) AddApplications(v ...*BursaryApplication) *ApplicantProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the ApplicantProfileMutation object of the builder.
func (_u *ApplicantProfileUpdate) Mutation() *ApplicantProfileMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the BursaryApplication entity.
func (_u *ApplicantProfileUpdate) ClearApplications() *ApplicantProfileUpdate {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to BursaryApplication entities by IDs.
func (_u *ApplicantProfileUpdate) RemoveApplicationIDs(ids ...uuid.UUID) *ApplicantProfileUpdate {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to BursaryApplication entities.
func (_u *ApplicantProfileUpdate) RemoveApplications(v ...*BursaryApplication) *ApplicantProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicantProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicantProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicantProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicantProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicantProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicantprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicantProfileUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := applicantprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "ApplicantProfile.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IDNumber(); ok {
		if err := applicantprofile.IDNumberValidator(v); err != nil {
			return &ValidationError{Name: "id_number", err: fmt.Errorf(`ent: validator failed for field "ApplicantProfile.id_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.County(); ok {
		if err := applicantprofile.CountyValidator(v); err != nil {
			return &ValidationError{Name: "county", err: fmt.Errorf(`ent: validator failed for field "ApplicantProfile.county": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicantProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicantprofile.Table, applicantprofile.Columns, sqlgraph.NewFieldSpec(applicantprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(applicantprofile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IDNumber(); ok {
		_spec.SetField(applicantprofile.FieldIDNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(applicantprofile.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(applicantprofile.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(applicantprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(applicantprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(applicantprofile.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(applicantprofile.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.County(); ok {
		_spec.SetField(applicantprofile.FieldCounty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubCounty(); ok {
		_spec.SetField(applicantprofile.FieldSubCounty, field.TypeString, value)
	}
	if _u.mutation.SubCountyCleared() {
		_spec.ClearField(applicantprofile.FieldSubCounty, field.TypeString)
	}
	if value, ok := _u.mutation.Ward(); ok {
		_spec.SetField(applicantprofile.FieldWard, field.TypeString, value)
	}
	if _u.mutation.WardCleared() {
		_spec.ClearField(applicantprofile.FieldWard, field.TypeString)
	}
	if value, ok := _u.mutation.Village(); ok {
		_spec.SetField(applicantprofile.FieldVillage, field.TypeString, value)
	}
	if _u.mutation.VillageCleared() {
		_spec.ClearField(applicantprofile.FieldVillage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(applicantprofile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicantprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicantprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicantProfileUpdateOne is the builder for updating a single ApplicantProfile entity.
type ApplicantProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicantProfileMutation
}

// SetFullName sets the "full_name" field.
func (_u *ApplicantProfileUpdateOne) SetFullName(v string) *ApplicantProfileUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillableFullName(v *string) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetIDNumber sets the "id_number" field.
func (_u *ApplicantProfileUpdateOne) SetIDNumber(v string) *ApplicantProfileUpdateOne {
	_u.mutation.SetIDNumber(v)
	return _u
}

// SetNillableIDNumber sets the "id_number" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillableIDNumber(v *string) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetIDNumber(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *ApplicantProfileUpdateOne) SetPhoneNumber(v string) *ApplicantProfileUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillablePhoneNumber(v *string) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *ApplicantProfileUpdateOne) ClearPhoneNumber() *ApplicantProfileUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ApplicantProfileUpdateOne) SetEmail(v string) *ApplicantProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillableEmail(v *string) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ApplicantProfileUpdateOne) ClearEmail() *ApplicantProfileUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *ApplicantProfileUpdateOne) SetDateOfBirth(v time.Time) *ApplicantProfileUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillableDateOfBirth(v *time.Time) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *ApplicantProfileUpdateOne) ClearDateOfBirth() *ApplicantProfileUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetCounty sets the "county" field.
func (_u *ApplicantProfileUpdateOne) SetCounty(v string) *ApplicantProfileUpdateOne {
	_u.mutation.SetCounty(v)
	return _u
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillableCounty(v *string) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetCounty(*v)
	}
	return _u
}

// SetSubCounty sets the "sub_county" field.
func (_u *ApplicantProfileUpdateOne) SetSubCounty(v string) *ApplicantProfileUpdateOne {
	_u.mutation.SetSubCounty(v)
	return _u
}

// SetNillableSubCounty sets the "sub_county" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillableSubCounty(v *string) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetSubCounty(*v)
	}
	return _u
}

// ClearSubCounty clears the value of the "sub_county" field.
func (_u *ApplicantProfileUpdateOne) ClearSubCounty() *ApplicantProfileUpdateOne {
	_u.mutation.ClearSubCounty()
	return _u
}

// SetWard sets the "ward" field.
func (_u *ApplicantProfileUpdateOne) SetWard(v string) *ApplicantProfileUpdateOne {
	_u.mutation.SetWard(v)
	return _u
}

// SetNillableWard sets the "ward" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillableWard(v *string) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetWard(*v)
	}
	return _u
}

// ClearWard clears the value of the "ward" field.
func (_u *ApplicantProfileUpdateOne) ClearWard() *ApplicantProfileUpdateOne {
	_u.mutation.ClearWard()
	return _u
}

// SetVillage sets the "village" field.
func (_u *ApplicantProfileUpdateOne) SetVillage(v string) *ApplicantProfileUpdateOne {
	_u.mutation.SetVillage(v)
	return _u
}

// SetNillableVillage sets the "village" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillableVillage(v *string) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetVillage(*v)
	}
	return _u
}

// ClearVillage clears the value of the "village" field.
func (_u *ApplicantProfileUpdateOne) ClearVillage() *ApplicantProfileUpdateOne {
	_u.mutation.ClearVillage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicantProfileUpdateOne) SetCreatedAt(v time.Time) *ApplicantProfileUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicantProfileUpdateOne) SetNillableCreatedAt(v *time.Time) *ApplicantProfileUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicantProfileUpdateOne) SetUpdatedAt(v time.Time) *ApplicantProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the BursaryApplication entity by IDs.
func (_u *ApplicantProfileUpdateOne) AddApplicationIDs(ids ...uuid.UUID) *ApplicantProfileUpdateOne {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the BursaryApplication entity.
func (_u *ApplicantProfileUpdateOne) AddApplications(v ...*BursaryApplication) *ApplicantProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the ApplicantProfileMutation object of the builder.
func (_u *ApplicantProfileUpdateOne) Mutation() *ApplicantProfileMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the BursaryApplication entity.
func (_u *ApplicantProfileUpdateOne) ClearApplications() *ApplicantProfileUpdateOne {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to BursaryApplication entities by IDs.
func (_u *ApplicantProfileUpdateOne) RemoveApplicationIDs(ids ...uuid.UUID) *ApplicantProfileUpdateOne {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to BursaryApplication entities.
func (_u *ApplicantProfileUpdateOne) RemoveApplications(v ...*BursaryApplication) *ApplicantProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the ApplicantProfileUpdate builder.
func (_u *ApplicantProfileUpdateOne) Where(ps ...predicate.ApplicantProfile) *ApplicantProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicantProfileUpdateOne) Select(field string, fields ...string) *ApplicantProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApplicantProfile entity.
func (_u *ApplicantProfileUpdateOne) Save(ctx context.Context) (*ApplicantProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicantProfileUpdateOne) SaveX(ctx context.Context) *ApplicantProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicantProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicantProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicantProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicantprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicantProfileUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := applicantprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "ApplicantProfile.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IDNumber(); ok {
		if err := applicantprofile.IDNumberValidator(v); err != nil {
			return &ValidationError{Name: "id_number", err: fmt.Errorf(`ent: validator failed for field "ApplicantProfile.id_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.County(); ok {
		if err := applicantprofile.CountyValidator(v); err != nil {
			return &ValidationError{Name: "county", err: fmt.Errorf(`ent: validator failed for field "ApplicantProfile.county": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicantProfileUpdateOne) sqlSave(ctx context.Context) (_node *ApplicantProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicantprofile.Table, applicantprofile.Columns, sqlgraph.NewFieldSpec(applicantprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApplicantProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicantprofile.FieldID)
		for _, f := range fields {
			if !applicantprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicantprofile.FieldID {
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
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(applicantprofile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IDNumber(); ok {
		_spec.SetField(applicantprofile.FieldIDNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(applicantprofile.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(applicantprofile.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(applicantprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(applicantprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(applicantprofile.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(applicantprofile.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.County(); ok {
		_spec.SetField(applicantprofile.FieldCounty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubCounty(); ok {
		_spec.SetField(applicantprofile.FieldSubCounty, field.TypeString, value)
	}
	if _u.mutation.SubCountyCleared() {
		_spec.ClearField(applicantprofile.FieldSubCounty, field.TypeString)
	}
	if value, ok := _u.mutation.Ward(); ok {
		_spec.SetField(applicantprofile.FieldWard, field.TypeString, value)
	}
	if _u.mutation.WardCleared() {
		_spec.ClearField(applicantprofile.FieldWard, field.TypeString)
	}
	if value, ok := _u.mutation.Village(); ok {
		_spec.SetField(applicantprofile.FieldVillage, field.TypeString, value)
	}
	if _u.mutation.VillageCleared() {
		_spec.ClearField(applicantprofile.FieldVillage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(applicantprofile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicantprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ApplicantProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicantprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
