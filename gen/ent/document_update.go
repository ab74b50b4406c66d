// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/gen/ent/document"
	"github.com/mkiplagat/bursary-intake/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *DocumentUpdate) SetApplicationID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableApplicationID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdate) SetDocumentType(v string) *DocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdate) SetSourcePath(v string) *DocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourcePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdate) SetFileExt(v string) *DocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileExt(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DocumentUpdate) SetDescription(v string) *DocumentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDescription(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DocumentUpdate) ClearDescription() *DocumentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *DocumentUpdate) SetIsVerified(v bool) *DocumentUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIsVerified(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetIsFlagged sets the "is_flagged" field.
func (_u *DocumentUpdate) SetIsFlagged(v bool) *DocumentUpdate {
	_u.mutation.SetIsFlagged(v)
	return _u
}

// SetNillableIsFlagged sets the "is_flagged" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIsFlagged(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetIsFlagged(*v)
	}
	return _u
}

// SetVerificationConfidence sets the "verification_confidence" field.
func (_u *DocumentUpdate) SetVerificationConfidence(v float32) *DocumentUpdate {
	_u.mutation.ResetVerificationConfidence()
	_u.mutation.SetVerificationConfidence(v)
	return _u
}

// SetNillableVerificationConfidence sets the "verification_confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableVerificationConfidence(v *float32) *DocumentUpdate {
	if v != nil {
		_u.SetVerificationConfidence(*v)
	}
	return _u
}

// AddVerificationConfidence adds value to the "verification_confidence" field.
func (_u *DocumentUpdate) AddVerificationConfidence(v float32) *DocumentUpdate {
	_u.mutation.AddVerificationConfidence(v)
	return _u
}

// ClearVerificationConfidence clears the value of the "verification_confidence" field.
func (_u *DocumentUpdate) ClearVerificationConfidence() *DocumentUpdate {
	_u.mutation.ClearVerificationConfidence()
	return _u
}

// SetVerificationResult sets the "verification_result" field.
func (_u *DocumentUpdate) SetVerificationResult(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetVerificationResult(v)
	return _u
}

// AppendVerificationResult appends value to the "verification_result" field.
func (_u *DocumentUpdate) AppendVerificationResult(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendVerificationResult(v)
	return _u
}

// ClearVerificationResult clears the value of the "verification_result" field.
func (_u *DocumentUpdate) ClearVerificationResult() *DocumentUpdate {
	_u.mutation.ClearVerificationResult()
	return _u
}

// SetApplication sets the "application" edge to the BursaryApplication entity.
func (_u *DocumentUpdate) SetApplication(v *BursaryApplication) *DocumentUpdate {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the BursaryApplication entity.
func (_u *DocumentUpdate) ClearApplication() *DocumentUpdate {
	_u.mutation.ClearApplication()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.application"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(document.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(document.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(document.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFlagged(); ok {
		_spec.SetField(document.FieldIsFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerificationConfidence(); ok {
		_spec.SetField(document.FieldVerificationConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedVerificationConfidence(); ok {
		_spec.AddField(document.FieldVerificationConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.VerificationConfidenceCleared() {
		_spec.ClearField(document.FieldVerificationConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.VerificationResult(); ok {
		_spec.SetField(document.FieldVerificationResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerificationResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldVerificationResult, value)
		})
	}
	if _u.mutation.VerificationResultCleared() {
		_spec.ClearField(document.FieldVerificationResult, field.TypeJSON)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ApplicationTable,
			Columns: []string{document.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bursaryapplication.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ApplicationTable,
			Columns: []string{document.ApplicationColumn},
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
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetApplicationID sets the "application_id" field.
func (_u *DocumentUpdateOne) SetApplicationID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableApplicationID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdateOne) SetDocumentType(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdateOne) SetSourcePath(v string) *DocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourcePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdateOne) SetFileExt(v string) *DocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileExt(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DocumentUpdateOne) SetDescription(v string) *DocumentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDescription(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DocumentUpdateOne) ClearDescription() *DocumentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *DocumentUpdateOne) SetIsVerified(v bool) *DocumentUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIsVerified(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetIsFlagged sets the "is_flagged" field.
func (_u *DocumentUpdateOne) SetIsFlagged(v bool) *DocumentUpdateOne {
	_u.mutation.SetIsFlagged(v)
	return _u
}

// SetNillableIsFlagged sets the "is_flagged" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIsFlagged(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetIsFlagged(*v)
	}
	return _u
}

// SetVerificationConfidence sets the "verification_confidence" field.
func (_u *DocumentUpdateOne) SetVerificationConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.ResetVerificationConfidence()
	_u.mutation.SetVerificationConfidence(v)
	return _u
}

// SetNillableVerificationConfidence sets the "verification_confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableVerificationConfidence(v *float32) *DocumentUpdateOne {
	if v != nil {
		_u.SetVerificationConfidence(*v)
	}
	return _u
}

// AddVerificationConfidence adds value to the "verification_confidence" field.
func (_u *DocumentUpdateOne) AddVerificationConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.AddVerificationConfidence(v)
	return _u
}

// ClearVerificationConfidence clears the value of the "verification_confidence" field.
func (_u *DocumentUpdateOne) ClearVerificationConfidence() *DocumentUpdateOne {
	_u.mutation.ClearVerificationConfidence()
	return _u
}

// SetVerificationResult sets the "verification_result" field.
func (_u *DocumentUpdateOne) SetVerificationResult(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetVerificationResult(v)
	return _u
}

// AppendVerificationResult appends value to the "verification_result" field.
func (_u *DocumentUpdateOne) AppendVerificationResult(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendVerificationResult(v)
	return _u
}

// ClearVerificationResult clears the value of the "verification_result" field.
func (_u *DocumentUpdateOne) ClearVerificationResult() *DocumentUpdateOne {
	_u.mutation.ClearVerificationResult()
	return _u
}

// SetApplication sets the "application" edge to the BursaryApplication entity.
func (_u *DocumentUpdateOne) SetApplication(v *BursaryApplication) *DocumentUpdateOne {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the BursaryApplication entity.
func (_u *DocumentUpdateOne) ClearApplication() *DocumentUpdateOne {
	_u.mutation.ClearApplication()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.application"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(document.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(document.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(document.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFlagged(); ok {
		_spec.SetField(document.FieldIsFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerificationConfidence(); ok {
		_spec.SetField(document.FieldVerificationConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedVerificationConfidence(); ok {
		_spec.AddField(document.FieldVerificationConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.VerificationConfidenceCleared() {
		_spec.ClearField(document.FieldVerificationConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.VerificationResult(); ok {
		_spec.SetField(document.FieldVerificationResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerificationResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldVerificationResult, value)
		})
	}
	if _u.mutation.VerificationResultCleared() {
		_spec.ClearField(document.FieldVerificationResult, field.TypeJSON)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ApplicationTable,
			Columns: []string{document.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bursaryapplication.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ApplicationTable,
			Columns: []string{document.ApplicationColumn},
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
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
