// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/gen/ent/document"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplicantProfile     = "ApplicantProfile"
	TypeApplicationStatusLog = "ApplicationStatusLog"
	TypeBursaryApplication   = "BursaryApplication"
	TypeDocument             = "Document"
)

// ApplicantProfileMutation represents an operation that mutates the ApplicantProfile nodes in the graph.
type ApplicantProfileMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	full_name           *string
	id_number           *string
	phone_number        *string
	email               *string
	date_of_birth       *time.Time
	county              *string
	sub_county          *string
	ward                *string
	village             *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	applications        map[uuid.UUID]struct{}
	removedapplications map[uuid.UUID]struct{}
	clearedapplications bool
	done                bool
	oldValue            func(context.Context) (*ApplicantProfile, error)
	predicates          []predicate.ApplicantProfile
}

var _ ent.Mutation = (*ApplicantProfileMutation)(nil)

// applicantprofileOption allows management of the mutation configuration using functional options.
type applicantprofileOption func(*ApplicantProfileMutation)

// newApplicantProfileMutation creates new mutation for the ApplicantProfile entity.
func newApplicantProfileMutation(c config, op Op, opts ...applicantprofileOption) *ApplicantProfileMutation {
	m := &ApplicantProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeApplicantProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicantProfileID sets the ID field of the mutation.
func withApplicantProfileID(id uuid.UUID) applicantprofileOption {
	return func(m *ApplicantProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *ApplicantProfile
		)
		m.oldValue = func(ctx context.Context) (*ApplicantProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApplicantProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplicantProfile sets the old ApplicantProfile of the mutation.
func withApplicantProfile(node *ApplicantProfile) applicantprofileOption {
	return func(m *ApplicantProfileMutation) {
		m.oldValue = func(context.Context) (*ApplicantProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicantProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicantProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApplicantProfile entities.
func (m *ApplicantProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicantProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicantProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApplicantProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFullName sets the "full_name" field.
func (m *ApplicantProfileMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *ApplicantProfileMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *ApplicantProfileMutation) ResetFullName() {
	m.full_name = nil
}

// SetIDNumber sets the "id_number" field.
func (m *ApplicantProfileMutation) SetIDNumber(s string) {
	m.id_number = &s
}

// IDNumber returns the value of the "id_number" field in the mutation.
func (m *ApplicantProfileMutation) IDNumber() (r string, exists bool) {
	v := m.id_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIDNumber returns the old "id_number" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldIDNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIDNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIDNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIDNumber: %w", err)
	}
	return oldValue.IDNumber, nil
}

// ResetIDNumber resets all changes to the "id_number" field.
func (m *ApplicantProfileMutation) ResetIDNumber() {
	m.id_number = nil
}

// SetPhoneNumber sets the "phone_number" field.
func (m *ApplicantProfileMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *ApplicantProfileMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldPhoneNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *ApplicantProfileMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[applicantprofile.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *ApplicantProfileMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[applicantprofile.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *ApplicantProfileMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, applicantprofile.FieldPhoneNumber)
}

// SetEmail sets the "email" field.
func (m *ApplicantProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ApplicantProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ApplicantProfileMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[applicantprofile.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ApplicantProfileMutation) EmailCleared() bool {
	_, ok := m.clearedFields[applicantprofile.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ApplicantProfileMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, applicantprofile.FieldEmail)
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *ApplicantProfileMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *ApplicantProfileMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *ApplicantProfileMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[applicantprofile.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *ApplicantProfileMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[applicantprofile.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *ApplicantProfileMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, applicantprofile.FieldDateOfBirth)
}

// SetCounty sets the "county" field.
func (m *ApplicantProfileMutation) SetCounty(s string) {
	m.county = &s
}

// County returns the value of the "county" field in the mutation.
func (m *ApplicantProfileMutation) County() (r string, exists bool) {
	v := m.county
	if v == nil {
		return
	}
	return *v, true
}

// OldCounty returns the old "county" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldCounty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounty: %w", err)
	}
	return oldValue.County, nil
}

// ResetCounty resets all changes to the "county" field.
func (m *ApplicantProfileMutation) ResetCounty() {
	m.county = nil
}

// SetSubCounty sets the "sub_county" field.
func (m *ApplicantProfileMutation) SetSubCounty(s string) {
	m.sub_county = &s
}

// SubCounty returns the value of the "sub_county" field in the mutation.
func (m *ApplicantProfileMutation) SubCounty() (r string, exists bool) {
	v := m.sub_county
	if v == nil {
		return
	}
	return *v, true
}

// OldSubCounty returns the old "sub_county" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldSubCounty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubCounty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubCounty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubCounty: %w", err)
	}
	return oldValue.SubCounty, nil
}

// ClearSubCounty clears the value of the "sub_county" field.
func (m *ApplicantProfileMutation) ClearSubCounty() {
	m.sub_county = nil
	m.clearedFields[applicantprofile.FieldSubCounty] = struct{}{}
}

// SubCountyCleared returns if the "sub_county" field was cleared in this mutation.
func (m *ApplicantProfileMutation) SubCountyCleared() bool {
	_, ok := m.clearedFields[applicantprofile.FieldSubCounty]
	return ok
}

// ResetSubCounty resets all changes to the "sub_county" field.
func (m *ApplicantProfileMutation) ResetSubCounty() {
	m.sub_county = nil
	delete(m.clearedFields, applicantprofile.FieldSubCounty)
}

// SetWard sets the "ward" field.
func (m *ApplicantProfileMutation) SetWard(s string) {
	m.ward = &s
}

// Ward returns the value of the "ward" field in the mutation.
func (m *ApplicantProfileMutation) Ward() (r string, exists bool) {
	v := m.ward
	if v == nil {
		return
	}
	return *v, true
}

// OldWard returns the old "ward" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldWard(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWard is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWard requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWard: %w", err)
	}
	return oldValue.Ward, nil
}

// ClearWard clears the value of the "ward" field.
func (m *ApplicantProfileMutation) ClearWard() {
	m.ward = nil
	m.clearedFields[applicantprofile.FieldWard] = struct{}{}
}

// WardCleared returns if the "ward" field was cleared in this mutation.
func (m *ApplicantProfileMutation) WardCleared() bool {
	_, ok := m.clearedFields[applicantprofile.FieldWard]
	return ok
}

// ResetWard resets all changes to the "ward" field.
func (m *ApplicantProfileMutation) ResetWard() {
	m.ward = nil
	delete(m.clearedFields, applicantprofile.FieldWard)
}

// SetVillage sets the "village" field.
func (m *ApplicantProfileMutation) SetVillage(s string) {
	m.village = &s
}

// Village returns the value of the "village" field in the mutation.
func (m *ApplicantProfileMutation) Village() (r string, exists bool) {
	v := m.village
	if v == nil {
		return
	}
	return *v, true
}

// OldVillage returns the old "village" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldVillage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVillage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVillage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVillage: %w", err)
	}
	return oldValue.Village, nil
}

// ClearVillage clears the value of the "village" field.
func (m *ApplicantProfileMutation) ClearVillage() {
	m.village = nil
	m.clearedFields[applicantprofile.FieldVillage] = struct{}{}
}

// VillageCleared returns if the "village" field was cleared in this mutation.
func (m *ApplicantProfileMutation) VillageCleared() bool {
	_, ok := m.clearedFields[applicantprofile.FieldVillage]
	return ok
}

// ResetVillage resets all changes to the "village" field.
func (m *ApplicantProfileMutation) ResetVillage() {
	m.village = nil
	delete(m.clearedFields, applicantprofile.FieldVillage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicantProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicantProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicantProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicantProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicantProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ApplicantProfile entity.
// If the ApplicantProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicantProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddApplicationIDs adds the "applications" edge to the BursaryApplication entity by ids.
func (m *ApplicantProfileMutation) AddApplicationIDs(ids ...uuid.UUID) {
	if m.applications == nil {
		m.applications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the BursaryApplication entity.
func (m *ApplicantProfileMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the BursaryApplication entity was cleared.
func (m *ApplicantProfileMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the BursaryApplication entity by IDs.
func (m *ApplicantProfileMutation) RemoveApplicationIDs(ids ...uuid.UUID) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the BursaryApplication entity.
func (m *ApplicantProfileMutation) RemovedApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *ApplicantProfileMutation) ApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *ApplicantProfileMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// Where appends a list predicates to the ApplicantProfileMutation builder.
func (m *ApplicantProfileMutation) Where(ps ...predicate.ApplicantProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicantProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicantProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApplicantProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicantProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicantProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApplicantProfile).
func (m *ApplicantProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicantProfileMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.full_name != nil {
		fields = append(fields, applicantprofile.FieldFullName)
	}
	if m.id_number != nil {
		fields = append(fields, applicantprofile.FieldIDNumber)
	}
	if m.phone_number != nil {
		fields = append(fields, applicantprofile.FieldPhoneNumber)
	}
	if m.email != nil {
		fields = append(fields, applicantprofile.FieldEmail)
	}
	if m.date_of_birth != nil {
		fields = append(fields, applicantprofile.FieldDateOfBirth)
	}
	if m.county != nil {
		fields = append(fields, applicantprofile.FieldCounty)
	}
	if m.sub_county != nil {
		fields = append(fields, applicantprofile.FieldSubCounty)
	}
	if m.ward != nil {
		fields = append(fields, applicantprofile.FieldWard)
	}
	if m.village != nil {
		fields = append(fields, applicantprofile.FieldVillage)
	}
	if m.created_at != nil {
		fields = append(fields, applicantprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, applicantprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicantProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case applicantprofile.FieldFullName:
		return m.FullName()
	case applicantprofile.FieldIDNumber:
		return m.IDNumber()
	case applicantprofile.FieldPhoneNumber:
		return m.PhoneNumber()
	case applicantprofile.FieldEmail:
		return m.Email()
	case applicantprofile.FieldDateOfBirth:
		return m.DateOfBirth()
	case applicantprofile.FieldCounty:
		return m.County()
	case applicantprofile.FieldSubCounty:
		return m.SubCounty()
	case applicantprofile.FieldWard:
		return m.Ward()
	case applicantprofile.FieldVillage:
		return m.Village()
	case applicantprofile.FieldCreatedAt:
		return m.CreatedAt()
	case applicantprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicantProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case applicantprofile.FieldFullName:
		return m.OldFullName(ctx)
	case applicantprofile.FieldIDNumber:
		return m.OldIDNumber(ctx)
	case applicantprofile.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case applicantprofile.FieldEmail:
		return m.OldEmail(ctx)
	case applicantprofile.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case applicantprofile.FieldCounty:
		return m.OldCounty(ctx)
	case applicantprofile.FieldSubCounty:
		return m.OldSubCounty(ctx)
	case applicantprofile.FieldWard:
		return m.OldWard(ctx)
	case applicantprofile.FieldVillage:
		return m.OldVillage(ctx)
	case applicantprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case applicantprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApplicantProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicantProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case applicantprofile.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case applicantprofile.FieldIDNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIDNumber(v)
		return nil
	case applicantprofile.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case applicantprofile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case applicantprofile.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case applicantprofile.FieldCounty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounty(v)
		return nil
	case applicantprofile.FieldSubCounty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubCounty(v)
		return nil
	case applicantprofile.FieldWard:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWard(v)
		return nil
	case applicantprofile.FieldVillage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVillage(v)
		return nil
	case applicantprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case applicantprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApplicantProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicantProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicantProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicantProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApplicantProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicantProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(applicantprofile.FieldPhoneNumber) {
		fields = append(fields, applicantprofile.FieldPhoneNumber)
	}
	if m.FieldCleared(applicantprofile.FieldEmail) {
		fields = append(fields, applicantprofile.FieldEmail)
	}
	if m.FieldCleared(applicantprofile.FieldDateOfBirth) {
		fields = append(fields, applicantprofile.FieldDateOfBirth)
	}
	if m.FieldCleared(applicantprofile.FieldSubCounty) {
		fields = append(fields, applicantprofile.FieldSubCounty)
	}
	if m.FieldCleared(applicantprofile.FieldWard) {
		fields = append(fields, applicantprofile.FieldWard)
	}
	if m.FieldCleared(applicantprofile.FieldVillage) {
		fields = append(fields, applicantprofile.FieldVillage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicantProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicantProfileMutation) ClearField(name string) error {
	switch name {
	case applicantprofile.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	case applicantprofile.FieldEmail:
		m.ClearEmail()
		return nil
	case applicantprofile.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case applicantprofile.FieldSubCounty:
		m.ClearSubCounty()
		return nil
	case applicantprofile.FieldWard:
		m.ClearWard()
		return nil
	case applicantprofile.FieldVillage:
		m.ClearVillage()
		return nil
	}
	return fmt.Errorf("unknown ApplicantProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicantProfileMutation) ResetField(name string) error {
	switch name {
	case applicantprofile.FieldFullName:
		m.ResetFullName()
		return nil
	case applicantprofile.FieldIDNumber:
		m.ResetIDNumber()
		return nil
	case applicantprofile.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case applicantprofile.FieldEmail:
		m.ResetEmail()
		return nil
	case applicantprofile.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case applicantprofile.FieldCounty:
		m.ResetCounty()
		return nil
	case applicantprofile.FieldSubCounty:
		m.ResetSubCounty()
		return nil
	case applicantprofile.FieldWard:
		m.ResetWard()
		return nil
	case applicantprofile.FieldVillage:
		m.ResetVillage()
		return nil
	case applicantprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case applicantprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApplicantProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicantProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.applications != nil {
		edges = append(edges, applicantprofile.EdgeApplications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicantProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case applicantprofile.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicantProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedapplications != nil {
		edges = append(edges, applicantprofile.EdgeApplications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicantProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case applicantprofile.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicantProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplications {
		edges = append(edges, applicantprofile.EdgeApplications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicantProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case applicantprofile.EdgeApplications:
		return m.clearedapplications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicantProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ApplicantProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicantProfileMutation) ResetEdge(name string) error {
	switch name {
	case applicantprofile.EdgeApplications:
		m.ResetApplications()
		return nil
	}
	return fmt.Errorf("unknown ApplicantProfile edge %s", name)
}

// ApplicationStatusLogMutation represents an operation that mutates the ApplicationStatusLog nodes in the graph.
type ApplicationStatusLogMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	old_status         *string
	new_status         *string
	changed_by         *string
	comments           *string
	changed_at         *time.Time
	clearedFields      map[string]struct{}
	application        *uuid.UUID
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*ApplicationStatusLog, error)
	predicates         []predicate.ApplicationStatusLog
}

var _ ent.Mutation = (*ApplicationStatusLogMutation)(nil)

// applicationstatuslogOption allows management of the mutation configuration using functional options.
type applicationstatuslogOption func(*ApplicationStatusLogMutation)

// newApplicationStatusLogMutation creates new mutation for the ApplicationStatusLog entity.
func newApplicationStatusLogMutation(c config, op Op, opts ...applicationstatuslogOption) *ApplicationStatusLogMutation {
	m := &ApplicationStatusLogMutation{
		config:        c,
		op:            op,
		typ:           TypeApplicationStatusLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationStatusLogID sets the ID field of the mutation.
func withApplicationStatusLogID(id uuid.UUID) applicationstatuslogOption {
	return func(m *ApplicationStatusLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ApplicationStatusLog
		)
		m.oldValue = func(ctx context.Context) (*ApplicationStatusLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApplicationStatusLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplicationStatusLog sets the old ApplicationStatusLog of the mutation.
func withApplicationStatusLog(node *ApplicationStatusLog) applicationstatuslogOption {
	return func(m *ApplicationStatusLogMutation) {
		m.oldValue = func(context.Context) (*ApplicationStatusLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationStatusLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationStatusLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApplicationStatusLog entities.
func (m *ApplicationStatusLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationStatusLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationStatusLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApplicationStatusLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *ApplicationStatusLogMutation) SetApplicationID(u uuid.UUID) {
	m.application = &u
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *ApplicationStatusLogMutation) ApplicationID() (r uuid.UUID, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the ApplicationStatusLog entity.
// If the ApplicationStatusLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStatusLogMutation) OldApplicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *ApplicationStatusLogMutation) ResetApplicationID() {
	m.application = nil
}

// SetOldStatus sets the "old_status" field.
func (m *ApplicationStatusLogMutation) SetOldStatus(s string) {
	m.old_status = &s
}

// OldStatus returns the value of the "old_status" field in the mutation.
func (m *ApplicationStatusLogMutation) OldStatus() (r string, exists bool) {
	v := m.old_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOldStatus returns the old "old_status" field's value of the ApplicationStatusLog entity.
// If the ApplicationStatusLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStatusLogMutation) OldOldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldStatus: %w", err)
	}
	return oldValue.OldStatus, nil
}

// ClearOldStatus clears the value of the "old_status" field.
func (m *ApplicationStatusLogMutation) ClearOldStatus() {
	m.old_status = nil
	m.clearedFields[applicationstatuslog.FieldOldStatus] = struct{}{}
}

// OldStatusCleared returns if the "old_status" field was cleared in this mutation.
func (m *ApplicationStatusLogMutation) OldStatusCleared() bool {
	_, ok := m.clearedFields[applicationstatuslog.FieldOldStatus]
	return ok
}

// ResetOldStatus resets all changes to the "old_status" field.
func (m *ApplicationStatusLogMutation) ResetOldStatus() {
	m.old_status = nil
	delete(m.clearedFields, applicationstatuslog.FieldOldStatus)
}

// SetNewStatus sets the "new_status" field.
func (m *ApplicationStatusLogMutation) SetNewStatus(s string) {
	m.new_status = &s
}

// NewStatus returns the value of the "new_status" field in the mutation.
func (m *ApplicationStatusLogMutation) NewStatus() (r string, exists bool) {
	v := m.new_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStatus returns the old "new_status" field's value of the ApplicationStatusLog entity.
// If the ApplicationStatusLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStatusLogMutation) OldNewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStatus: %w", err)
	}
	return oldValue.NewStatus, nil
}

// ResetNewStatus resets all changes to the "new_status" field.
func (m *ApplicationStatusLogMutation) ResetNewStatus() {
	m.new_status = nil
}

// SetChangedBy sets the "changed_by" field.
func (m *ApplicationStatusLogMutation) SetChangedBy(s string) {
	m.changed_by = &s
}

// ChangedBy returns the value of the "changed_by" field in the mutation.
func (m *ApplicationStatusLogMutation) ChangedBy() (r string, exists bool) {
	v := m.changed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedBy returns the old "changed_by" field's value of the ApplicationStatusLog entity.
// If the ApplicationStatusLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStatusLogMutation) OldChangedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedBy: %w", err)
	}
	return oldValue.ChangedBy, nil
}

// ClearChangedBy clears the value of the "changed_by" field.
func (m *ApplicationStatusLogMutation) ClearChangedBy() {
	m.changed_by = nil
	m.clearedFields[applicationstatuslog.FieldChangedBy] = struct{}{}
}

// ChangedByCleared returns if the "changed_by" field was cleared in this mutation.
func (m *ApplicationStatusLogMutation) ChangedByCleared() bool {
	_, ok := m.clearedFields[applicationstatuslog.FieldChangedBy]
	return ok
}

// ResetChangedBy resets all changes to the "changed_by" field.
func (m *ApplicationStatusLogMutation) ResetChangedBy() {
	m.changed_by = nil
	delete(m.clearedFields, applicationstatuslog.FieldChangedBy)
}

// SetComments sets the "comments" field.
func (m *ApplicationStatusLogMutation) SetComments(s string) {
	m.comments = &s
}

// Comments returns the value of the "comments" field in the mutation.
func (m *ApplicationStatusLogMutation) Comments() (r string, exists bool) {
	v := m.comments
	if v == nil {
		return
	}
	return *v, true
}

// OldComments returns the old "comments" field's value of the ApplicationStatusLog entity.
// If the ApplicationStatusLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStatusLogMutation) OldComments(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComments: %w", err)
	}
	return oldValue.Comments, nil
}

// ClearComments clears the value of the "comments" field.
func (m *ApplicationStatusLogMutation) ClearComments() {
	m.comments = nil
	m.clearedFields[applicationstatuslog.FieldComments] = struct{}{}
}

// CommentsCleared returns if the "comments" field was cleared in this mutation.
func (m *ApplicationStatusLogMutation) CommentsCleared() bool {
	_, ok := m.clearedFields[applicationstatuslog.FieldComments]
	return ok
}

// ResetComments resets all changes to the "comments" field.
func (m *ApplicationStatusLogMutation) ResetComments() {
	m.comments = nil
	delete(m.clearedFields, applicationstatuslog.FieldComments)
}

// SetChangedAt sets the "changed_at" field.
func (m *ApplicationStatusLogMutation) SetChangedAt(t time.Time) {
	m.changed_at = &t
}

// ChangedAt returns the value of the "changed_at" field in the mutation.
func (m *ApplicationStatusLogMutation) ChangedAt() (r time.Time, exists bool) {
	v := m.changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedAt returns the old "changed_at" field's value of the ApplicationStatusLog entity.
// If the ApplicationStatusLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStatusLogMutation) OldChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedAt: %w", err)
	}
	return oldValue.ChangedAt, nil
}

// ResetChangedAt resets all changes to the "changed_at" field.
func (m *ApplicationStatusLogMutation) ResetChangedAt() {
	m.changed_at = nil
}

// ClearApplication clears the "application" edge to the BursaryApplication entity.
func (m *ApplicationStatusLogMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[applicationstatuslog.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the BursaryApplication entity was cleared.
func (m *ApplicationStatusLogMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *ApplicationStatusLogMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *ApplicationStatusLogMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the ApplicationStatusLogMutation builder.
func (m *ApplicationStatusLogMutation) Where(ps ...predicate.ApplicationStatusLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationStatusLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationStatusLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApplicationStatusLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationStatusLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationStatusLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApplicationStatusLog).
func (m *ApplicationStatusLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationStatusLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.application != nil {
		fields = append(fields, applicationstatuslog.FieldApplicationID)
	}
	if m.old_status != nil {
		fields = append(fields, applicationstatuslog.FieldOldStatus)
	}
	if m.new_status != nil {
		fields = append(fields, applicationstatuslog.FieldNewStatus)
	}
	if m.changed_by != nil {
		fields = append(fields, applicationstatuslog.FieldChangedBy)
	}
	if m.comments != nil {
		fields = append(fields, applicationstatuslog.FieldComments)
	}
	if m.changed_at != nil {
		fields = append(fields, applicationstatuslog.FieldChangedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationStatusLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case applicationstatuslog.FieldApplicationID:
		return m.ApplicationID()
	case applicationstatuslog.FieldOldStatus:
		return m.OldStatus()
	case applicationstatuslog.FieldNewStatus:
		return m.NewStatus()
	case applicationstatuslog.FieldChangedBy:
		return m.ChangedBy()
	case applicationstatuslog.FieldComments:
		return m.Comments()
	case applicationstatuslog.FieldChangedAt:
		return m.ChangedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationStatusLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case applicationstatuslog.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case applicationstatuslog.FieldOldStatus:
		return m.OldOldStatus(ctx)
	case applicationstatuslog.FieldNewStatus:
		return m.OldNewStatus(ctx)
	case applicationstatuslog.FieldChangedBy:
		return m.OldChangedBy(ctx)
	case applicationstatuslog.FieldComments:
		return m.OldComments(ctx)
	case applicationstatuslog.FieldChangedAt:
		return m.OldChangedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApplicationStatusLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationStatusLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case applicationstatuslog.FieldApplicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case applicationstatuslog.FieldOldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldStatus(v)
		return nil
	case applicationstatuslog.FieldNewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStatus(v)
		return nil
	case applicationstatuslog.FieldChangedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedBy(v)
		return nil
	case applicationstatuslog.FieldComments:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComments(v)
		return nil
	case applicationstatuslog.FieldChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApplicationStatusLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationStatusLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationStatusLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationStatusLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApplicationStatusLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationStatusLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(applicationstatuslog.FieldOldStatus) {
		fields = append(fields, applicationstatuslog.FieldOldStatus)
	}
	if m.FieldCleared(applicationstatuslog.FieldChangedBy) {
		fields = append(fields, applicationstatuslog.FieldChangedBy)
	}
	if m.FieldCleared(applicationstatuslog.FieldComments) {
		fields = append(fields, applicationstatuslog.FieldComments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationStatusLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationStatusLogMutation) ClearField(name string) error {
	switch name {
	case applicationstatuslog.FieldOldStatus:
		m.ClearOldStatus()
		return nil
	case applicationstatuslog.FieldChangedBy:
		m.ClearChangedBy()
		return nil
	case applicationstatuslog.FieldComments:
		m.ClearComments()
		return nil
	}
	return fmt.Errorf("unknown ApplicationStatusLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationStatusLogMutation) ResetField(name string) error {
	switch name {
	case applicationstatuslog.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case applicationstatuslog.FieldOldStatus:
		m.ResetOldStatus()
		return nil
	case applicationstatuslog.FieldNewStatus:
		m.ResetNewStatus()
		return nil
	case applicationstatuslog.FieldChangedBy:
		m.ResetChangedBy()
		return nil
	case applicationstatuslog.FieldComments:
		m.ResetComments()
		return nil
	case applicationstatuslog.FieldChangedAt:
		m.ResetChangedAt()
		return nil
	}
	return fmt.Errorf("unknown ApplicationStatusLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationStatusLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, applicationstatuslog.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationStatusLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case applicationstatuslog.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationStatusLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationStatusLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationStatusLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, applicationstatuslog.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationStatusLogMutation) EdgeCleared(name string) bool {
	switch name {
	case applicationstatuslog.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationStatusLogMutation) ClearEdge(name string) error {
	switch name {
	case applicationstatuslog.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown ApplicationStatusLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationStatusLogMutation) ResetEdge(name string) error {
	switch name {
	case applicationstatuslog.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown ApplicationStatusLog edge %s", name)
}

// BursaryApplicationMutation represents an operation that mutates the BursaryApplication nodes in the graph.
type BursaryApplicationMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	application_number         *string
	student_name               *string
	institution_name           *string
	education_level            *string
	annual_family_income       *float64
	addannual_family_income    *float64
	tuition_fee                *float64
	addtuition_fee             *float64
	amount_requested           *float64
	addamount_requested        *float64
	number_of_siblings         *int
	addnumber_of_siblings      *int
	siblings_in_school         *int
	addsiblings_in_school      *int
	is_orphan                  *bool
	has_disability             *bool
	is_single_parent           *bool
	previous_bursary_recipient *bool
	reason_for_application     *string
	status                     *string
	is_verified                *bool
	verified_by                *string
	verified_at                *time.Time
	is_flagged                 *bool
	flag_reason                *string
	reviewer_comments          *string
	submitted_at               *time.Time
	reviewed_at                *time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	profile                    *uuid.UUID
	clearedprofile             bool
	documents                  map[uuid.UUID]struct{}
	removeddocuments           map[uuid.UUID]struct{}
	cleareddocuments           bool
	status_logs                map[uuid.UUID]struct{}
	removedstatus_logs         map[uuid.UUID]struct{}
	clearedstatus_logs         bool
	done                       bool
	oldValue                   func(context.Context) (*BursaryApplication, error)
	predicates                 []predicate.BursaryApplication
}

var _ ent.Mutation = (*BursaryApplicationMutation)(nil)

// bursaryapplicationOption allows management of the mutation configuration using functional options.
type bursaryapplicationOption func(*BursaryApplicationMutation)

// newBursaryApplicationMutation creates new mutation for the BursaryApplication entity.
func newBursaryApplicationMutation(c config, op Op, opts ...bursaryapplicationOption) *BursaryApplicationMutation {
	m := &BursaryApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeBursaryApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBursaryApplicationID sets the ID field of the mutation.
func withBursaryApplicationID(id uuid.UUID) bursaryapplicationOption {
	return func(m *BursaryApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *BursaryApplication
		)
		m.oldValue = func(ctx context.Context) (*BursaryApplication, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BursaryApplication.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBursaryApplication sets the old BursaryApplication of the mutation.
func withBursaryApplication(node *BursaryApplication) bursaryapplicationOption {
	return func(m *BursaryApplicationMutation) {
		m.oldValue = func(context.Context) (*BursaryApplication, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BursaryApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BursaryApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BursaryApplication entities.
func (m *BursaryApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BursaryApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BursaryApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BursaryApplication.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *BursaryApplicationMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *BursaryApplicationMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *BursaryApplicationMutation) ResetProfileID() {
	m.profile = nil
}

// SetApplicationNumber sets the "application_number" field.
func (m *BursaryApplicationMutation) SetApplicationNumber(s string) {
	m.application_number = &s
}

// ApplicationNumber returns the value of the "application_number" field in the mutation.
func (m *BursaryApplicationMutation) ApplicationNumber() (r string, exists bool) {
	v := m.application_number
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationNumber returns the old "application_number" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldApplicationNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationNumber: %w", err)
	}
	return oldValue.ApplicationNumber, nil
}

// ResetApplicationNumber resets all changes to the "application_number" field.
func (m *BursaryApplicationMutation) ResetApplicationNumber() {
	m.application_number = nil
}

// SetStudentName sets the "student_name" field.
func (m *BursaryApplicationMutation) SetStudentName(s string) {
	m.student_name = &s
}

// StudentName returns the value of the "student_name" field in the mutation.
func (m *BursaryApplicationMutation) StudentName() (r string, exists bool) {
	v := m.student_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentName returns the old "student_name" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldStudentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentName: %w", err)
	}
	return oldValue.StudentName, nil
}

// ResetStudentName resets all changes to the "student_name" field.
func (m *BursaryApplicationMutation) ResetStudentName() {
	m.student_name = nil
}

// SetInstitutionName sets the "institution_name" field.
func (m *BursaryApplicationMutation) SetInstitutionName(s string) {
	m.institution_name = &s
}

// InstitutionName returns the value of the "institution_name" field in the mutation.
func (m *BursaryApplicationMutation) InstitutionName() (r string, exists bool) {
	v := m.institution_name
	if v == nil {
		return
	}
	return *v, true
}

// OldInstitutionName returns the old "institution_name" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldInstitutionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstitutionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstitutionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstitutionName: %w", err)
	}
	return oldValue.InstitutionName, nil
}

// ResetInstitutionName resets all changes to the "institution_name" field.
func (m *BursaryApplicationMutation) ResetInstitutionName() {
	m.institution_name = nil
}

// SetEducationLevel sets the "education_level" field.
func (m *BursaryApplicationMutation) SetEducationLevel(s string) {
	m.education_level = &s
}

// EducationLevel returns the value of the "education_level" field in the mutation.
func (m *BursaryApplicationMutation) EducationLevel() (r string, exists bool) {
	v := m.education_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEducationLevel returns the old "education_level" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldEducationLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEducationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEducationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEducationLevel: %w", err)
	}
	return oldValue.EducationLevel, nil
}

// ClearEducationLevel clears the value of the "education_level" field.
func (m *BursaryApplicationMutation) ClearEducationLevel() {
	m.education_level = nil
	m.clearedFields[bursaryapplication.FieldEducationLevel] = struct{}{}
}

// EducationLevelCleared returns if the "education_level" field was cleared in this mutation.
func (m *BursaryApplicationMutation) EducationLevelCleared() bool {
	_, ok := m.clearedFields[bursaryapplication.FieldEducationLevel]
	return ok
}

// ResetEducationLevel resets all changes to the "education_level" field.
func (m *BursaryApplicationMutation) ResetEducationLevel() {
	m.education_level = nil
	delete(m.clearedFields, bursaryapplication.FieldEducationLevel)
}

// SetAnnualFamilyIncome sets the "annual_family_income" field.
func (m *BursaryApplicationMutation) SetAnnualFamilyIncome(f float64) {
	m.annual_family_income = &f
	m.addannual_family_income = nil
}

// AnnualFamilyIncome returns the value of the "annual_family_income" field in the mutation.
func (m *BursaryApplicationMutation) AnnualFamilyIncome() (r float64, exists bool) {
	v := m.annual_family_income
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnualFamilyIncome returns the old "annual_family_income" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldAnnualFamilyIncome(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnualFamilyIncome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnualFamilyIncome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnualFamilyIncome: %w", err)
	}
	return oldValue.AnnualFamilyIncome, nil
}

// AddAnnualFamilyIncome adds f to the "annual_family_income" field.
func (m *BursaryApplicationMutation) AddAnnualFamilyIncome(f float64) {
	if m.addannual_family_income != nil {
		*m.addannual_family_income += f
	} else {
		m.addannual_family_income = &f
	}
}

// AddedAnnualFamilyIncome returns the value that was added to the "annual_family_income" field in this mutation.
func (m *BursaryApplicationMutation) AddedAnnualFamilyIncome() (r float64, exists bool) {
	v := m.addannual_family_income
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnnualFamilyIncome resets all changes to the "annual_family_income" field.
func (m *BursaryApplicationMutation) ResetAnnualFamilyIncome() {
	m.annual_family_income = nil
	m.addannual_family_income = nil
}

// SetTuitionFee sets the "tuition_fee" field.
func (m *BursaryApplicationMutation) SetTuitionFee(f float64) {
	m.tuition_fee = &f
	m.addtuition_fee = nil
}

// TuitionFee returns the value of the "tuition_fee" field in the mutation.
func (m *BursaryApplicationMutation) TuitionFee() (r float64, exists bool) {
	v := m.tuition_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldTuitionFee returns the old "tuition_fee" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldTuitionFee(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTuitionFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTuitionFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTuitionFee: %w", err)
	}
	return oldValue.TuitionFee, nil
}

// AddTuitionFee adds f to the "tuition_fee" field.
func (m *BursaryApplicationMutation) AddTuitionFee(f float64) {
	if m.addtuition_fee != nil {
		*m.addtuition_fee += f
	} else {
		m.addtuition_fee = &f
	}
}

// AddedTuitionFee returns the value that was added to the "tuition_fee" field in this mutation.
func (m *BursaryApplicationMutation) AddedTuitionFee() (r float64, exists bool) {
	v := m.addtuition_fee
	if v == nil {
		return
	}
	return *v, true
}

// ResetTuitionFee resets all changes to the "tuition_fee" field.
func (m *BursaryApplicationMutation) ResetTuitionFee() {
	m.tuition_fee = nil
	m.addtuition_fee = nil
}

// SetAmountRequested sets the "amount_requested" field.
func (m *BursaryApplicationMutation) SetAmountRequested(f float64) {
	m.amount_requested = &f
	m.addamount_requested = nil
}

// AmountRequested returns the value of the "amount_requested" field in the mutation.
func (m *BursaryApplicationMutation) AmountRequested() (r float64, exists bool) {
	v := m.amount_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountRequested returns the old "amount_requested" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldAmountRequested(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountRequested: %w", err)
	}
	return oldValue.AmountRequested, nil
}

// AddAmountRequested adds f to the "amount_requested" field.
func (m *BursaryApplicationMutation) AddAmountRequested(f float64) {
	if m.addamount_requested != nil {
		*m.addamount_requested += f
	} else {
		m.addamount_requested = &f
	}
}

// AddedAmountRequested returns the value that was added to the "amount_requested" field in this mutation.
func (m *BursaryApplicationMutation) AddedAmountRequested() (r float64, exists bool) {
	v := m.addamount_requested
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountRequested resets all changes to the "amount_requested" field.
func (m *BursaryApplicationMutation) ResetAmountRequested() {
	m.amount_requested = nil
	m.addamount_requested = nil
}

// SetNumberOfSiblings sets the "number_of_siblings" field.
func (m *BursaryApplicationMutation) SetNumberOfSiblings(i int) {
	m.number_of_siblings = &i
	m.addnumber_of_siblings = nil
}

// NumberOfSiblings returns the value of the "number_of_siblings" field in the mutation.
func (m *BursaryApplicationMutation) NumberOfSiblings() (r int, exists bool) {
	v := m.number_of_siblings
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberOfSiblings returns the old "number_of_siblings" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldNumberOfSiblings(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberOfSiblings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberOfSiblings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberOfSiblings: %w", err)
	}
	return oldValue.NumberOfSiblings, nil
}

// AddNumberOfSiblings adds i to the "number_of_siblings" field.
func (m *BursaryApplicationMutation) AddNumberOfSiblings(i int) {
	if m.addnumber_of_siblings != nil {
		*m.addnumber_of_siblings += i
	} else {
		m.addnumber_of_siblings = &i
	}
}

// AddedNumberOfSiblings returns the value that was added to the "number_of_siblings" field in this mutation.
func (m *BursaryApplicationMutation) AddedNumberOfSiblings() (r int, exists bool) {
	v := m.addnumber_of_siblings
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumberOfSiblings resets all changes to the "number_of_siblings" field.
func (m *BursaryApplicationMutation) ResetNumberOfSiblings() {
	m.number_of_siblings = nil
	m.addnumber_of_siblings = nil
}

// SetSiblingsInSchool sets the "siblings_in_school" field.
func (m *BursaryApplicationMutation) SetSiblingsInSchool(i int) {
	m.siblings_in_school = &i
	m.addsiblings_in_school = nil
}

// SiblingsInSchool returns the value of the "siblings_in_school" field in the mutation.
func (m *BursaryApplicationMutation) SiblingsInSchool() (r int, exists bool) {
	v := m.siblings_in_school
	if v == nil {
		return
	}
	return *v, true
}

// OldSiblingsInSchool returns the old "siblings_in_school" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldSiblingsInSchool(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiblingsInSchool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiblingsInSchool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiblingsInSchool: %w", err)
	}
	return oldValue.SiblingsInSchool, nil
}

// AddSiblingsInSchool adds i to the "siblings_in_school" field.
func (m *BursaryApplicationMutation) AddSiblingsInSchool(i int) {
	if m.addsiblings_in_school != nil {
		*m.addsiblings_in_school += i
	} else {
		m.addsiblings_in_school = &i
	}
}

// AddedSiblingsInSchool returns the value that was added to the "siblings_in_school" field in this mutation.
func (m *BursaryApplicationMutation) AddedSiblingsInSchool() (r int, exists bool) {
	v := m.addsiblings_in_school
	if v == nil {
		return
	}
	return *v, true
}

// ResetSiblingsInSchool resets all changes to the "siblings_in_school" field.
func (m *BursaryApplicationMutation) ResetSiblingsInSchool() {
	m.siblings_in_school = nil
	m.addsiblings_in_school = nil
}

// SetIsOrphan sets the "is_orphan" field.
func (m *BursaryApplicationMutation) SetIsOrphan(b bool) {
	m.is_orphan = &b
}

// IsOrphan returns the value of the "is_orphan" field in the mutation.
func (m *BursaryApplicationMutation) IsOrphan() (r bool, exists bool) {
	v := m.is_orphan
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOrphan returns the old "is_orphan" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldIsOrphan(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOrphan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOrphan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOrphan: %w", err)
	}
	return oldValue.IsOrphan, nil
}

// ResetIsOrphan resets all changes to the "is_orphan" field.
func (m *BursaryApplicationMutation) ResetIsOrphan() {
	m.is_orphan = nil
}

// SetHasDisability sets the "has_disability" field.
func (m *BursaryApplicationMutation) SetHasDisability(b bool) {
	m.has_disability = &b
}

// HasDisability returns the value of the "has_disability" field in the mutation.
func (m *BursaryApplicationMutation) HasDisability() (r bool, exists bool) {
	v := m.has_disability
	if v == nil {
		return
	}
	return *v, true
}

// OldHasDisability returns the old "has_disability" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldHasDisability(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasDisability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasDisability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasDisability: %w", err)
	}
	return oldValue.HasDisability, nil
}

// ResetHasDisability resets all changes to the "has_disability" field.
func (m *BursaryApplicationMutation) ResetHasDisability() {
	m.has_disability = nil
}

// SetIsSingleParent sets the "is_single_parent" field.
func (m *BursaryApplicationMutation) SetIsSingleParent(b bool) {
	m.is_single_parent = &b
}

// IsSingleParent returns the value of the "is_single_parent" field in the mutation.
func (m *BursaryApplicationMutation) IsSingleParent() (r bool, exists bool) {
	v := m.is_single_parent
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSingleParent returns the old "is_single_parent" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldIsSingleParent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSingleParent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSingleParent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSingleParent: %w", err)
	}
	return oldValue.IsSingleParent, nil
}

// ResetIsSingleParent resets all changes to the "is_single_parent" field.
func (m *BursaryApplicationMutation) ResetIsSingleParent() {
	m.is_single_parent = nil
}

// SetPreviousBursaryRecipient sets the "previous_bursary_recipient" field.
func (m *BursaryApplicationMutation) SetPreviousBursaryRecipient(b bool) {
	m.previous_bursary_recipient = &b
}

// PreviousBursaryRecipient returns the value of the "previous_bursary_recipient" field in the mutation.
func (m *BursaryApplicationMutation) PreviousBursaryRecipient() (r bool, exists bool) {
	v := m.previous_bursary_recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousBursaryRecipient returns the old "previous_bursary_recipient" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldPreviousBursaryRecipient(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousBursaryRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousBursaryRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousBursaryRecipient: %w", err)
	}
	return oldValue.PreviousBursaryRecipient, nil
}

// ResetPreviousBursaryRecipient resets all changes to the "previous_bursary_recipient" field.
func (m *BursaryApplicationMutation) ResetPreviousBursaryRecipient() {
	m.previous_bursary_recipient = nil
}

// SetReasonForApplication sets the "reason_for_application" field.
func (m *BursaryApplicationMutation) SetReasonForApplication(s string) {
	m.reason_for_application = &s
}

// ReasonForApplication returns the value of the "reason_for_application" field in the mutation.
func (m *BursaryApplicationMutation) ReasonForApplication() (r string, exists bool) {
	v := m.reason_for_application
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonForApplication returns the old "reason_for_application" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldReasonForApplication(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonForApplication is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonForApplication requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonForApplication: %w", err)
	}
	return oldValue.ReasonForApplication, nil
}

// ClearReasonForApplication clears the value of the "reason_for_application" field.
func (m *BursaryApplicationMutation) ClearReasonForApplication() {
	m.reason_for_application = nil
	m.clearedFields[bursaryapplication.FieldReasonForApplication] = struct{}{}
}

// ReasonForApplicationCleared returns if the "reason_for_application" field was cleared in this mutation.
func (m *BursaryApplicationMutation) ReasonForApplicationCleared() bool {
	_, ok := m.clearedFields[bursaryapplication.FieldReasonForApplication]
	return ok
}

// ResetReasonForApplication resets all changes to the "reason_for_application" field.
func (m *BursaryApplicationMutation) ResetReasonForApplication() {
	m.reason_for_application = nil
	delete(m.clearedFields, bursaryapplication.FieldReasonForApplication)
}

// SetStatus sets the "status" field.
func (m *BursaryApplicationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BursaryApplicationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BursaryApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetIsVerified sets the "is_verified" field.
func (m *BursaryApplicationMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *BursaryApplicationMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *BursaryApplicationMutation) ResetIsVerified() {
	m.is_verified = nil
}

// SetVerifiedBy sets the "verified_by" field.
func (m *BursaryApplicationMutation) SetVerifiedBy(s string) {
	m.verified_by = &s
}

// VerifiedBy returns the value of the "verified_by" field in the mutation.
func (m *BursaryApplicationMutation) VerifiedBy() (r string, exists bool) {
	v := m.verified_by
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedBy returns the old "verified_by" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldVerifiedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedBy: %w", err)
	}
	return oldValue.VerifiedBy, nil
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (m *BursaryApplicationMutation) ClearVerifiedBy() {
	m.verified_by = nil
	m.clearedFields[bursaryapplication.FieldVerifiedBy] = struct{}{}
}

// VerifiedByCleared returns if the "verified_by" field was cleared in this mutation.
func (m *BursaryApplicationMutation) VerifiedByCleared() bool {
	_, ok := m.clearedFields[bursaryapplication.FieldVerifiedBy]
	return ok
}

// ResetVerifiedBy resets all changes to the "verified_by" field.
func (m *BursaryApplicationMutation) ResetVerifiedBy() {
	m.verified_by = nil
	delete(m.clearedFields, bursaryapplication.FieldVerifiedBy)
}

// SetVerifiedAt sets the "verified_at" field.
func (m *BursaryApplicationMutation) SetVerifiedAt(t time.Time) {
	m.verified_at = &t
}

// VerifiedAt returns the value of the "verified_at" field in the mutation.
func (m *BursaryApplicationMutation) VerifiedAt() (r time.Time, exists bool) {
	v := m.verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedAt returns the old "verified_at" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedAt: %w", err)
	}
	return oldValue.VerifiedAt, nil
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (m *BursaryApplicationMutation) ClearVerifiedAt() {
	m.verified_at = nil
	m.clearedFields[bursaryapplication.FieldVerifiedAt] = struct{}{}
}

// VerifiedAtCleared returns if the "verified_at" field was cleared in this mutation.
func (m *BursaryApplicationMutation) VerifiedAtCleared() bool {
	_, ok := m.clearedFields[bursaryapplication.FieldVerifiedAt]
	return ok
}

// ResetVerifiedAt resets all changes to the "verified_at" field.
func (m *BursaryApplicationMutation) ResetVerifiedAt() {
	m.verified_at = nil
	delete(m.clearedFields, bursaryapplication.FieldVerifiedAt)
}

// SetIsFlagged sets the "is_flagged" field.
func (m *BursaryApplicationMutation) SetIsFlagged(b bool) {
	m.is_flagged = &b
}

// IsFlagged returns the value of the "is_flagged" field in the mutation.
func (m *BursaryApplicationMutation) IsFlagged() (r bool, exists bool) {
	v := m.is_flagged
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFlagged returns the old "is_flagged" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldIsFlagged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFlagged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFlagged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFlagged: %w", err)
	}
	return oldValue.IsFlagged, nil
}

// ResetIsFlagged resets all changes to the "is_flagged" field.
func (m *BursaryApplicationMutation) ResetIsFlagged() {
	m.is_flagged = nil
}

// SetFlagReason sets the "flag_reason" field.
func (m *BursaryApplicationMutation) SetFlagReason(s string) {
	m.flag_reason = &s
}

// FlagReason returns the value of the "flag_reason" field in the mutation.
func (m *BursaryApplicationMutation) FlagReason() (r string, exists bool) {
	v := m.flag_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFlagReason returns the old "flag_reason" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldFlagReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlagReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlagReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlagReason: %w", err)
	}
	return oldValue.FlagReason, nil
}

// ClearFlagReason clears the value of the "flag_reason" field.
func (m *BursaryApplicationMutation) ClearFlagReason() {
	m.flag_reason = nil
	m.clearedFields[bursaryapplication.FieldFlagReason] = struct{}{}
}

// FlagReasonCleared returns if the "flag_reason" field was cleared in this mutation.
func (m *BursaryApplicationMutation) FlagReasonCleared() bool {
	_, ok := m.clearedFields[bursaryapplication.FieldFlagReason]
	return ok
}

// ResetFlagReason resets all changes to the "flag_reason" field.
func (m *BursaryApplicationMutation) ResetFlagReason() {
	m.flag_reason = nil
	delete(m.clearedFields, bursaryapplication.FieldFlagReason)
}

// SetReviewerComments sets the "reviewer_comments" field.
func (m *BursaryApplicationMutation) SetReviewerComments(s string) {
	m.reviewer_comments = &s
}

// ReviewerComments returns the value of the "reviewer_comments" field in the mutation.
func (m *BursaryApplicationMutation) ReviewerComments() (r string, exists bool) {
	v := m.reviewer_comments
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerComments returns the old "reviewer_comments" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldReviewerComments(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerComments: %w", err)
	}
	return oldValue.ReviewerComments, nil
}

// ClearReviewerComments clears the value of the "reviewer_comments" field.
func (m *BursaryApplicationMutation) ClearReviewerComments() {
	m.reviewer_comments = nil
	m.clearedFields[bursaryapplication.FieldReviewerComments] = struct{}{}
}

// ReviewerCommentsCleared returns if the "reviewer_comments" field was cleared in this mutation.
func (m *BursaryApplicationMutation) ReviewerCommentsCleared() bool {
	_, ok := m.clearedFields[bursaryapplication.FieldReviewerComments]
	return ok
}

// ResetReviewerComments resets all changes to the "reviewer_comments" field.
func (m *BursaryApplicationMutation) ResetReviewerComments() {
	m.reviewer_comments = nil
	delete(m.clearedFields, bursaryapplication.FieldReviewerComments)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *BursaryApplicationMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *BursaryApplicationMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *BursaryApplicationMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *BursaryApplicationMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *BursaryApplicationMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *BursaryApplicationMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[bursaryapplication.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *BursaryApplicationMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[bursaryapplication.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *BursaryApplicationMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, bursaryapplication.FieldReviewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *BursaryApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BursaryApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BursaryApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BursaryApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BursaryApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BursaryApplication entity.
// If the BursaryApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BursaryApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BursaryApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the ApplicantProfile entity.
func (m *BursaryApplicationMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[bursaryapplication.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the ApplicantProfile entity was cleared.
func (m *BursaryApplicationMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *BursaryApplicationMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *BursaryApplicationMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *BursaryApplicationMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *BursaryApplicationMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *BursaryApplicationMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *BursaryApplicationMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *BursaryApplicationMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *BursaryApplicationMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *BursaryApplicationMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddStatusLogIDs adds the "status_logs" edge to the ApplicationStatusLog entity by ids.
func (m *BursaryApplicationMutation) AddStatusLogIDs(ids ...uuid.UUID) {
	if m.status_logs == nil {
		m.status_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.status_logs[ids[i]] = struct{}{}
	}
}

// ClearStatusLogs clears the "status_logs" edge to the ApplicationStatusLog entity.
func (m *BursaryApplicationMutation) ClearStatusLogs() {
	m.clearedstatus_logs = true
}

// StatusLogsCleared reports if the "status_logs" edge to the ApplicationStatusLog entity was cleared.
func (m *BursaryApplicationMutation) StatusLogsCleared() bool {
	return m.clearedstatus_logs
}

// RemoveStatusLogIDs removes the "status_logs" edge to the ApplicationStatusLog entity by IDs.
func (m *BursaryApplicationMutation) RemoveStatusLogIDs(ids ...uuid.UUID) {
	if m.removedstatus_logs == nil {
		m.removedstatus_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.status_logs, ids[i])
		m.removedstatus_logs[ids[i]] = struct{}{}
	}
}

// RemovedStatusLogs returns the removed IDs of the "status_logs" edge to the ApplicationStatusLog entity.
func (m *BursaryApplicationMutation) RemovedStatusLogsIDs() (ids []uuid.UUID) {
	for id := range m.removedstatus_logs {
		ids = append(ids, id)
	}
	return
}

// StatusLogsIDs returns the "status_logs" edge IDs in the mutation.
func (m *BursaryApplicationMutation) StatusLogsIDs() (ids []uuid.UUID) {
	for id := range m.status_logs {
		ids = append(ids, id)
	}
	return
}

// ResetStatusLogs resets all changes to the "status_logs" edge.
func (m *BursaryApplicationMutation) ResetStatusLogs() {
	m.status_logs = nil
	m.clearedstatus_logs = false
	m.removedstatus_logs = nil
}

// Where appends a list predicates to the BursaryApplicationMutation builder.
func (m *BursaryApplicationMutation) Where(ps ...predicate.BursaryApplication) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BursaryApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BursaryApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BursaryApplication, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BursaryApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BursaryApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BursaryApplication).
func (m *BursaryApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BursaryApplicationMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.profile != nil {
		fields = append(fields, bursaryapplication.FieldProfileID)
	}
	if m.application_number != nil {
		fields = append(fields, bursaryapplication.FieldApplicationNumber)
	}
	if m.student_name != nil {
		fields = append(fields, bursaryapplication.FieldStudentName)
	}
	if m.institution_name != nil {
		fields = append(fields, bursaryapplication.FieldInstitutionName)
	}
	if m.education_level != nil {
		fields = append(fields, bursaryapplication.FieldEducationLevel)
	}
	if m.annual_family_income != nil {
		fields = append(fields, bursaryapplication.FieldAnnualFamilyIncome)
	}
	if m.tuition_fee != nil {
		fields = append(fields, bursaryapplication.FieldTuitionFee)
	}
	if m.amount_requested != nil {
		fields = append(fields, bursaryapplication.FieldAmountRequested)
	}
	if m.number_of_siblings != nil {
		fields = append(fields, bursaryapplication.FieldNumberOfSiblings)
	}
	if m.siblings_in_school != nil {
		fields = append(fields, bursaryapplication.FieldSiblingsInSchool)
	}
	if m.is_orphan != nil {
		fields = append(fields, bursaryapplication.FieldIsOrphan)
	}
	if m.has_disability != nil {
		fields = append(fields, bursaryapplication.FieldHasDisability)
	}
	if m.is_single_parent != nil {
		fields = append(fields, bursaryapplication.FieldIsSingleParent)
	}
	if m.previous_bursary_recipient != nil {
		fields = append(fields, bursaryapplication.FieldPreviousBursaryRecipient)
	}
	if m.reason_for_application != nil {
		fields = append(fields, bursaryapplication.FieldReasonForApplication)
	}
	if m.status != nil {
		fields = append(fields, bursaryapplication.FieldStatus)
	}
	if m.is_verified != nil {
		fields = append(fields, bursaryapplication.FieldIsVerified)
	}
	if m.verified_by != nil {
		fields = append(fields, bursaryapplication.FieldVerifiedBy)
	}
	if m.verified_at != nil {
		fields = append(fields, bursaryapplication.FieldVerifiedAt)
	}
	if m.is_flagged != nil {
		fields = append(fields, bursaryapplication.FieldIsFlagged)
	}
	if m.flag_reason != nil {
		fields = append(fields, bursaryapplication.FieldFlagReason)
	}
	if m.reviewer_comments != nil {
		fields = append(fields, bursaryapplication.FieldReviewerComments)
	}
	if m.submitted_at != nil {
		fields = append(fields, bursaryapplication.FieldSubmittedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, bursaryapplication.FieldReviewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, bursaryapplication.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bursaryapplication.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BursaryApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bursaryapplication.FieldProfileID:
		return m.ProfileID()
	case bursaryapplication.FieldApplicationNumber:
		return m.ApplicationNumber()
	case bursaryapplication.FieldStudentName:
		return m.StudentName()
	case bursaryapplication.FieldInstitutionName:
		return m.InstitutionName()
	case bursaryapplication.FieldEducationLevel:
		return m.EducationLevel()
	case bursaryapplication.FieldAnnualFamilyIncome:
		return m.AnnualFamilyIncome()
	case bursaryapplication.FieldTuitionFee:
		return m.TuitionFee()
	case bursaryapplication.FieldAmountRequested:
		return m.AmountRequested()
	case bursaryapplication.FieldNumberOfSiblings:
		return m.NumberOfSiblings()
	case bursaryapplication.FieldSiblingsInSchool:
		return m.SiblingsInSchool()
	case bursaryapplication.FieldIsOrphan:
		return m.IsOrphan()
	case bursaryapplication.FieldHasDisability:
		return m.HasDisability()
	case bursaryapplication.FieldIsSingleParent:
		return m.IsSingleParent()
	case bursaryapplication.FieldPreviousBursaryRecipient:
		return m.PreviousBursaryRecipient()
	case bursaryapplication.FieldReasonForApplication:
		return m.ReasonForApplication()
	case bursaryapplication.FieldStatus:
		return m.Status()
	case bursaryapplication.FieldIsVerified:
		return m.IsVerified()
	case bursaryapplication.FieldVerifiedBy:
		return m.VerifiedBy()
	case bursaryapplication.FieldVerifiedAt:
		return m.VerifiedAt()
	case bursaryapplication.FieldIsFlagged:
		return m.IsFlagged()
	case bursaryapplication.FieldFlagReason:
		return m.FlagReason()
	case bursaryapplication.FieldReviewerComments:
		return m.ReviewerComments()
	case bursaryapplication.FieldSubmittedAt:
		return m.SubmittedAt()
	case bursaryapplication.FieldReviewedAt:
		return m.ReviewedAt()
	case bursaryapplication.FieldCreatedAt:
		return m.CreatedAt()
	case bursaryapplication.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BursaryApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bursaryapplication.FieldProfileID:
		return m.OldProfileID(ctx)
	case bursaryapplication.FieldApplicationNumber:
		return m.OldApplicationNumber(ctx)
	case bursaryapplication.FieldStudentName:
		return m.OldStudentName(ctx)
	case bursaryapplication.FieldInstitutionName:
		return m.OldInstitutionName(ctx)
	case bursaryapplication.FieldEducationLevel:
		return m.OldEducationLevel(ctx)
	case bursaryapplication.FieldAnnualFamilyIncome:
		return m.OldAnnualFamilyIncome(ctx)
	case bursaryapplication.FieldTuitionFee:
		return m.OldTuitionFee(ctx)
	case bursaryapplication.FieldAmountRequested:
		return m.OldAmountRequested(ctx)
	case bursaryapplication.FieldNumberOfSiblings:
		return m.OldNumberOfSiblings(ctx)
	case bursaryapplication.FieldSiblingsInSchool:
		return m.OldSiblingsInSchool(ctx)
	case bursaryapplication.FieldIsOrphan:
		return m.OldIsOrphan(ctx)
	case bursaryapplication.FieldHasDisability:
		return m.OldHasDisability(ctx)
	case bursaryapplication.FieldIsSingleParent:
		return m.OldIsSingleParent(ctx)
	case bursaryapplication.FieldPreviousBursaryRecipient:
		return m.OldPreviousBursaryRecipient(ctx)
	case bursaryapplication.FieldReasonForApplication:
		return m.OldReasonForApplication(ctx)
	case bursaryapplication.FieldStatus:
		return m.OldStatus(ctx)
	case bursaryapplication.FieldIsVerified:
		return m.OldIsVerified(ctx)
	case bursaryapplication.FieldVerifiedBy:
		return m.OldVerifiedBy(ctx)
	case bursaryapplication.FieldVerifiedAt:
		return m.OldVerifiedAt(ctx)
	case bursaryapplication.FieldIsFlagged:
		return m.OldIsFlagged(ctx)
	case bursaryapplication.FieldFlagReason:
		return m.OldFlagReason(ctx)
	case bursaryapplication.FieldReviewerComments:
		return m.OldReviewerComments(ctx)
	case bursaryapplication.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case bursaryapplication.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case bursaryapplication.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bursaryapplication.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BursaryApplication field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BursaryApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bursaryapplication.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case bursaryapplication.FieldApplicationNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationNumber(v)
		return nil
	case bursaryapplication.FieldStudentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentName(v)
		return nil
	case bursaryapplication.FieldInstitutionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstitutionName(v)
		return nil
	case bursaryapplication.FieldEducationLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEducationLevel(v)
		return nil
	case bursaryapplication.FieldAnnualFamilyIncome:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnualFamilyIncome(v)
		return nil
	case bursaryapplication.FieldTuitionFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTuitionFee(v)
		return nil
	case bursaryapplication.FieldAmountRequested:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountRequested(v)
		return nil
	case bursaryapplication.FieldNumberOfSiblings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberOfSiblings(v)
		return nil
	case bursaryapplication.FieldSiblingsInSchool:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiblingsInSchool(v)
		return nil
	case bursaryapplication.FieldIsOrphan:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOrphan(v)
		return nil
	case bursaryapplication.FieldHasDisability:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasDisability(v)
		return nil
	case bursaryapplication.FieldIsSingleParent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSingleParent(v)
		return nil
	case bursaryapplication.FieldPreviousBursaryRecipient:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousBursaryRecipient(v)
		return nil
	case bursaryapplication.FieldReasonForApplication:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonForApplication(v)
		return nil
	case bursaryapplication.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bursaryapplication.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	case bursaryapplication.FieldVerifiedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedBy(v)
		return nil
	case bursaryapplication.FieldVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedAt(v)
		return nil
	case bursaryapplication.FieldIsFlagged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFlagged(v)
		return nil
	case bursaryapplication.FieldFlagReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlagReason(v)
		return nil
	case bursaryapplication.FieldReviewerComments:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerComments(v)
		return nil
	case bursaryapplication.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case bursaryapplication.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case bursaryapplication.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bursaryapplication.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BursaryApplication field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BursaryApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addannual_family_income != nil {
		fields = append(fields, bursaryapplication.FieldAnnualFamilyIncome)
	}
	if m.addtuition_fee != nil {
		fields = append(fields, bursaryapplication.FieldTuitionFee)
	}
	if m.addamount_requested != nil {
		fields = append(fields, bursaryapplication.FieldAmountRequested)
	}
	if m.addnumber_of_siblings != nil {
		fields = append(fields, bursaryapplication.FieldNumberOfSiblings)
	}
	if m.addsiblings_in_school != nil {
		fields = append(fields, bursaryapplication.FieldSiblingsInSchool)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BursaryApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bursaryapplication.FieldAnnualFamilyIncome:
		return m.AddedAnnualFamilyIncome()
	case bursaryapplication.FieldTuitionFee:
		return m.AddedTuitionFee()
	case bursaryapplication.FieldAmountRequested:
		return m.AddedAmountRequested()
	case bursaryapplication.FieldNumberOfSiblings:
		return m.AddedNumberOfSiblings()
	case bursaryapplication.FieldSiblingsInSchool:
		return m.AddedSiblingsInSchool()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BursaryApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bursaryapplication.FieldAnnualFamilyIncome:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnnualFamilyIncome(v)
		return nil
	case bursaryapplication.FieldTuitionFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTuitionFee(v)
		return nil
	case bursaryapplication.FieldAmountRequested:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountRequested(v)
		return nil
	case bursaryapplication.FieldNumberOfSiblings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumberOfSiblings(v)
		return nil
	case bursaryapplication.FieldSiblingsInSchool:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSiblingsInSchool(v)
		return nil
	}
	return fmt.Errorf("unknown BursaryApplication numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BursaryApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bursaryapplication.FieldEducationLevel) {
		fields = append(fields, bursaryapplication.FieldEducationLevel)
	}
	if m.FieldCleared(bursaryapplication.FieldReasonForApplication) {
		fields = append(fields, bursaryapplication.FieldReasonForApplication)
	}
	if m.FieldCleared(bursaryapplication.FieldVerifiedBy) {
		fields = append(fields, bursaryapplication.FieldVerifiedBy)
	}
	if m.FieldCleared(bursaryapplication.FieldVerifiedAt) {
		fields = append(fields, bursaryapplication.FieldVerifiedAt)
	}
	if m.FieldCleared(bursaryapplication.FieldFlagReason) {
		fields = append(fields, bursaryapplication.FieldFlagReason)
	}
	if m.FieldCleared(bursaryapplication.FieldReviewerComments) {
		fields = append(fields, bursaryapplication.FieldReviewerComments)
	}
	if m.FieldCleared(bursaryapplication.FieldReviewedAt) {
		fields = append(fields, bursaryapplication.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BursaryApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BursaryApplicationMutation) ClearField(name string) error {
	switch name {
	case bursaryapplication.FieldEducationLevel:
		m.ClearEducationLevel()
		return nil
	case bursaryapplication.FieldReasonForApplication:
		m.ClearReasonForApplication()
		return nil
	case bursaryapplication.FieldVerifiedBy:
		m.ClearVerifiedBy()
		return nil
	case bursaryapplication.FieldVerifiedAt:
		m.ClearVerifiedAt()
		return nil
	case bursaryapplication.FieldFlagReason:
		m.ClearFlagReason()
		return nil
	case bursaryapplication.FieldReviewerComments:
		m.ClearReviewerComments()
		return nil
	case bursaryapplication.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown BursaryApplication nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BursaryApplicationMutation) ResetField(name string) error {
	switch name {
	case bursaryapplication.FieldProfileID:
		m.ResetProfileID()
		return nil
	case bursaryapplication.FieldApplicationNumber:
		m.ResetApplicationNumber()
		return nil
	case bursaryapplication.FieldStudentName:
		m.ResetStudentName()
		return nil
	case bursaryapplication.FieldInstitutionName:
		m.ResetInstitutionName()
		return nil
	case bursaryapplication.FieldEducationLevel:
		m.ResetEducationLevel()
		return nil
	case bursaryapplication.FieldAnnualFamilyIncome:
		m.ResetAnnualFamilyIncome()
		return nil
	case bursaryapplication.FieldTuitionFee:
		m.ResetTuitionFee()
		return nil
	case bursaryapplication.FieldAmountRequested:
		m.ResetAmountRequested()
		return nil
	case bursaryapplication.FieldNumberOfSiblings:
		m.ResetNumberOfSiblings()
		return nil
	case bursaryapplication.FieldSiblingsInSchool:
		m.ResetSiblingsInSchool()
		return nil
	case bursaryapplication.FieldIsOrphan:
		m.ResetIsOrphan()
		return nil
	case bursaryapplication.FieldHasDisability:
		m.ResetHasDisability()
		return nil
	case bursaryapplication.FieldIsSingleParent:
		m.ResetIsSingleParent()
		return nil
	case bursaryapplication.FieldPreviousBursaryRecipient:
		m.ResetPreviousBursaryRecipient()
		return nil
	case bursaryapplication.FieldReasonForApplication:
		m.ResetReasonForApplication()
		return nil
	case bursaryapplication.FieldStatus:
		m.ResetStatus()
		return nil
	case bursaryapplication.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	case bursaryapplication.FieldVerifiedBy:
		m.ResetVerifiedBy()
		return nil
	case bursaryapplication.FieldVerifiedAt:
		m.ResetVerifiedAt()
		return nil
	case bursaryapplication.FieldIsFlagged:
		m.ResetIsFlagged()
		return nil
	case bursaryapplication.FieldFlagReason:
		m.ResetFlagReason()
		return nil
	case bursaryapplication.FieldReviewerComments:
		m.ResetReviewerComments()
		return nil
	case bursaryapplication.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case bursaryapplication.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case bursaryapplication.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bursaryapplication.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BursaryApplication field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BursaryApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.profile != nil {
		edges = append(edges, bursaryapplication.EdgeProfile)
	}
	if m.documents != nil {
		edges = append(edges, bursaryapplication.EdgeDocuments)
	}
	if m.status_logs != nil {
		edges = append(edges, bursaryapplication.EdgeStatusLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BursaryApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bursaryapplication.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case bursaryapplication.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case bursaryapplication.EdgeStatusLogs:
		ids := make([]ent.Value, 0, len(m.status_logs))
		for id := range m.status_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BursaryApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocuments != nil {
		edges = append(edges, bursaryapplication.EdgeDocuments)
	}
	if m.removedstatus_logs != nil {
		edges = append(edges, bursaryapplication.EdgeStatusLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BursaryApplicationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case bursaryapplication.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case bursaryapplication.EdgeStatusLogs:
		ids := make([]ent.Value, 0, len(m.removedstatus_logs))
		for id := range m.removedstatus_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BursaryApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedprofile {
		edges = append(edges, bursaryapplication.EdgeProfile)
	}
	if m.cleareddocuments {
		edges = append(edges, bursaryapplication.EdgeDocuments)
	}
	if m.clearedstatus_logs {
		edges = append(edges, bursaryapplication.EdgeStatusLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BursaryApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case bursaryapplication.EdgeProfile:
		return m.clearedprofile
	case bursaryapplication.EdgeDocuments:
		return m.cleareddocuments
	case bursaryapplication.EdgeStatusLogs:
		return m.clearedstatus_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BursaryApplicationMutation) ClearEdge(name string) error {
	switch name {
	case bursaryapplication.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown BursaryApplication unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BursaryApplicationMutation) ResetEdge(name string) error {
	switch name {
	case bursaryapplication.EdgeProfile:
		m.ResetProfile()
		return nil
	case bursaryapplication.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case bursaryapplication.EdgeStatusLogs:
		m.ResetStatusLogs()
		return nil
	}
	return fmt.Errorf("unknown BursaryApplication edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	document_type              *string
	source_path                *string
	file_ext                   *string
	description                *string
	status                     *string
	is_verified                *bool
	is_flagged                 *bool
	verification_confidence    *float32
	addverification_confidence *float32
	verification_result        *json.RawMessage
	appendverification_result  json.RawMessage
	uploaded_at                *time.Time
	clearedFields              map[string]struct{}
	application                *uuid.UUID
	clearedapplication         bool
	done                       bool
	oldValue                   func(context.Context) (*Document, error)
	predicates                 []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *DocumentMutation) SetApplicationID(u uuid.UUID) {
	m.application = &u
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *DocumentMutation) ApplicationID() (r uuid.UUID, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldApplicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *DocumentMutation) ResetApplicationID() {
	m.application = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetDescription sets the "description" field.
func (m *DocumentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DocumentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DocumentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[document.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DocumentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[document.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DocumentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, document.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetIsVerified sets the "is_verified" field.
func (m *DocumentMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *DocumentMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *DocumentMutation) ResetIsVerified() {
	m.is_verified = nil
}

// SetIsFlagged sets the "is_flagged" field.
func (m *DocumentMutation) SetIsFlagged(b bool) {
	m.is_flagged = &b
}

// IsFlagged returns the value of the "is_flagged" field in the mutation.
func (m *DocumentMutation) IsFlagged() (r bool, exists bool) {
	v := m.is_flagged
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFlagged returns the old "is_flagged" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIsFlagged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFlagged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFlagged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFlagged: %w", err)
	}
	return oldValue.IsFlagged, nil
}

// ResetIsFlagged resets all changes to the "is_flagged" field.
func (m *DocumentMutation) ResetIsFlagged() {
	m.is_flagged = nil
}

// SetVerificationConfidence sets the "verification_confidence" field.
func (m *DocumentMutation) SetVerificationConfidence(f float32) {
	m.verification_confidence = &f
	m.addverification_confidence = nil
}

// VerificationConfidence returns the value of the "verification_confidence" field in the mutation.
func (m *DocumentMutation) VerificationConfidence() (r float32, exists bool) {
	v := m.verification_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationConfidence returns the old "verification_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVerificationConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationConfidence: %w", err)
	}
	return oldValue.VerificationConfidence, nil
}

// AddVerificationConfidence adds f to the "verification_confidence" field.
func (m *DocumentMutation) AddVerificationConfidence(f float32) {
	if m.addverification_confidence != nil {
		*m.addverification_confidence += f
	} else {
		m.addverification_confidence = &f
	}
}

// AddedVerificationConfidence returns the value that was added to the "verification_confidence" field in this mutation.
func (m *DocumentMutation) AddedVerificationConfidence() (r float32, exists bool) {
	v := m.addverification_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearVerificationConfidence clears the value of the "verification_confidence" field.
func (m *DocumentMutation) ClearVerificationConfidence() {
	m.verification_confidence = nil
	m.addverification_confidence = nil
	m.clearedFields[document.FieldVerificationConfidence] = struct{}{}
}

// VerificationConfidenceCleared returns if the "verification_confidence" field was cleared in this mutation.
func (m *DocumentMutation) VerificationConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldVerificationConfidence]
	return ok
}

// ResetVerificationConfidence resets all changes to the "verification_confidence" field.
func (m *DocumentMutation) ResetVerificationConfidence() {
	m.verification_confidence = nil
	m.addverification_confidence = nil
	delete(m.clearedFields, document.FieldVerificationConfidence)
}

// SetVerificationResult sets the "verification_result" field.
func (m *DocumentMutation) SetVerificationResult(jm json.RawMessage) {
	m.verification_result = &jm
	m.appendverification_result = nil
}

// VerificationResult returns the value of the "verification_result" field in the mutation.
func (m *DocumentMutation) VerificationResult() (r json.RawMessage, exists bool) {
	v := m.verification_result
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationResult returns the old "verification_result" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVerificationResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationResult: %w", err)
	}
	return oldValue.VerificationResult, nil
}

// AppendVerificationResult adds jm to the "verification_result" field.
func (m *DocumentMutation) AppendVerificationResult(jm json.RawMessage) {
	m.appendverification_result = append(m.appendverification_result, jm...)
}

// AppendedVerificationResult returns the list of values that were appended to the "verification_result" field in this mutation.
func (m *DocumentMutation) AppendedVerificationResult() (json.RawMessage, bool) {
	if len(m.appendverification_result) == 0 {
		return nil, false
	}
	return m.appendverification_result, true
}

// ClearVerificationResult clears the value of the "verification_result" field.
func (m *DocumentMutation) ClearVerificationResult() {
	m.verification_result = nil
	m.appendverification_result = nil
	m.clearedFields[document.FieldVerificationResult] = struct{}{}
}

// VerificationResultCleared returns if the "verification_result" field was cleared in this mutation.
func (m *DocumentMutation) VerificationResultCleared() bool {
	_, ok := m.clearedFields[document.FieldVerificationResult]
	return ok
}

// ResetVerificationResult resets all changes to the "verification_result" field.
func (m *DocumentMutation) ResetVerificationResult() {
	m.verification_result = nil
	m.appendverification_result = nil
	delete(m.clearedFields, document.FieldVerificationResult)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearApplication clears the "application" edge to the BursaryApplication entity.
func (m *DocumentMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[document.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the BursaryApplication entity was cleared.
func (m *DocumentMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *DocumentMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.application != nil {
		fields = append(fields, document.FieldApplicationID)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.description != nil {
		fields = append(fields, document.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.is_verified != nil {
		fields = append(fields, document.FieldIsVerified)
	}
	if m.is_flagged != nil {
		fields = append(fields, document.FieldIsFlagged)
	}
	if m.verification_confidence != nil {
		fields = append(fields, document.FieldVerificationConfidence)
	}
	if m.verification_result != nil {
		fields = append(fields, document.FieldVerificationResult)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldApplicationID:
		return m.ApplicationID()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldDescription:
		return m.Description()
	case document.FieldStatus:
		return m.Status()
	case document.FieldIsVerified:
		return m.IsVerified()
	case document.FieldIsFlagged:
		return m.IsFlagged()
	case document.FieldVerificationConfidence:
		return m.VerificationConfidence()
	case document.FieldVerificationResult:
		return m.VerificationResult()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldDescription:
		return m.OldDescription(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldIsVerified:
		return m.OldIsVerified(ctx)
	case document.FieldIsFlagged:
		return m.OldIsFlagged(ctx)
	case document.FieldVerificationConfidence:
		return m.OldVerificationConfidence(ctx)
	case document.FieldVerificationResult:
		return m.OldVerificationResult(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldApplicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	case document.FieldIsFlagged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFlagged(v)
		return nil
	case document.FieldVerificationConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationConfidence(v)
		return nil
	case document.FieldVerificationResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationResult(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addverification_confidence != nil {
		fields = append(fields, document.FieldVerificationConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldVerificationConfidence:
		return m.AddedVerificationConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldVerificationConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVerificationConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldDescription) {
		fields = append(fields, document.FieldDescription)
	}
	if m.FieldCleared(document.FieldVerificationConfidence) {
		fields = append(fields, document.FieldVerificationConfidence)
	}
	if m.FieldCleared(document.FieldVerificationResult) {
		fields = append(fields, document.FieldVerificationResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldDescription:
		m.ClearDescription()
		return nil
	case document.FieldVerificationConfidence:
		m.ClearVerificationConfidence()
		return nil
	case document.FieldVerificationResult:
		m.ClearVerificationResult()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldDescription:
		m.ResetDescription()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	case document.FieldIsFlagged:
		m.ResetIsFlagged()
		return nil
	case document.FieldVerificationConfidence:
		m.ResetVerificationConfidence()
		return nil
	case document.FieldVerificationResult:
		m.ResetVerificationResult()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, document.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, document.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}
