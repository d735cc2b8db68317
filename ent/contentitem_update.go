// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/lmdrew96/chaoslimba/ent/contentitem"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// ContentItemUpdate is the builder for updating ContentItem entities.
type ContentItemUpdate struct {
	config
	hooks    []Hook
	mutation *ContentItemMutation
}

// Where appends a list predicates to the ContentItemUpdate builder.
func (_u *ContentItemUpdate) Where(ps ...predicate.ContentItem) *ContentItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ContentItemUpdate) SetTitle(v string) *ContentItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableTitle(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ContentItemUpdate) SetBody(v string) *ContentItemUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableBody(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCefrLevel sets the "cefr_level" field.
func (_u *ContentItemUpdate) SetCefrLevel(v string) *ContentItemUpdate {
	_u.mutation.SetCefrLevel(v)
	return _u
}

// SetNillableCefrLevel sets the "cefr_level" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableCefrLevel(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetCefrLevel(*v)
	}
	return _u
}

// SetFeatureKeys sets the "feature_keys" field.
func (_u *ContentItemUpdate) SetFeatureKeys(v []string) *ContentItemUpdate {
	_u.mutation.SetFeatureKeys(v)
	return _u
}

// AppendFeatureKeys appends value to the "feature_keys" field.
func (_u *ContentItemUpdate) AppendFeatureKeys(v []string) *ContentItemUpdate {
	_u.mutation.AppendFeatureKeys(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *ContentItemUpdate) SetTopics(v []string) *ContentItemUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *ContentItemUpdate) AppendTopics(v []string) *ContentItemUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *ContentItemUpdate) ClearTopics() *ContentItemUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetModality sets the "modality" field.
func (_u *ContentItemUpdate) SetModality(v string) *ContentItemUpdate {
	_u.mutation.SetModality(v)
	return _u
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableModality(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetModality(*v)
	}
	return _u
}

// Mutation returns the ContentItemMutation object of the builder.
func (_u *ContentItemUpdate) Mutation() *ContentItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentItemUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := contentitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ContentItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := contentitem.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "ContentItem.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CefrLevel(); ok {
		if err := contentitem.CefrLevelValidator(v); err != nil {
			return &ValidationError{Name: "cefr_level", err: fmt.Errorf(`ent: validator failed for field "ContentItem.cefr_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentitem.Table, contentitem.Columns, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(contentitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contentitem.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.CefrLevel(); ok {
		_spec.SetField(contentitem.FieldCefrLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeatureKeys(); ok {
		_spec.SetField(contentitem.FieldFeatureKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatureKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentitem.FieldFeatureKeys, value)
		})
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(contentitem.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentitem.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(contentitem.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Modality(); ok {
		_spec.SetField(contentitem.FieldModality, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentItemUpdateOne is the builder for updating a single ContentItem entity.
type ContentItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentItemMutation
}

// SetTitle sets the "title" field.
func (_u *ContentItemUpdateOne) SetTitle(v string) *ContentItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableTitle(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ContentItemUpdateOne) SetBody(v string) *ContentItemUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableBody(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCefrLevel sets the "cefr_level" field.
func (_u *ContentItemUpdateOne) SetCefrLevel(v string) *ContentItemUpdateOne {
	_u.mutation.SetCefrLevel(v)
	return _u
}

// SetNillableCefrLevel sets the "cefr_level" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableCefrLevel(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetCefrLevel(*v)
	}
	return _u
}

// SetFeatureKeys sets the "feature_keys" field.
func (_u *ContentItemUpdateOne) SetFeatureKeys(v []string) *ContentItemUpdateOne {
	_u.mutation.SetFeatureKeys(v)
	return _u
}

// AppendFeatureKeys appends value to the "feature_keys" field.
func (_u *ContentItemUpdateOne) AppendFeatureKeys(v []string) *ContentItemUpdateOne {
	_u.mutation.AppendFeatureKeys(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *ContentItemUpdateOne) SetTopics(v []string) *ContentItemUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *ContentItemUpdateOne) AppendTopics(v []string) *ContentItemUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *ContentItemUpdateOne) ClearTopics() *ContentItemUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetModality sets the "modality" field.
func (_u *ContentItemUpdateOne) SetModality(v string) *ContentItemUpdateOne {
	_u.mutation.SetModality(v)
	return _u
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableModality(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetModality(*v)
	}
	return _u
}

// Mutation returns the ContentItemMutation object of the builder.
func (_u *ContentItemUpdateOne) Mutation() *ContentItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentItemUpdate builder.
func (_u *ContentItemUpdateOne) Where(ps ...predicate.ContentItem) *ContentItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentItemUpdateOne) Select(field string, fields ...string) *ContentItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentItem entity.
func (_u *ContentItemUpdateOne) Save(ctx context.Context) (*ContentItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentItemUpdateOne) SaveX(ctx context.Context) *ContentItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentItemUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := contentitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ContentItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := contentitem.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "ContentItem.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CefrLevel(); ok {
		if err := contentitem.CefrLevelValidator(v); err != nil {
			return &ValidationError{Name: "cefr_level", err: fmt.Errorf(`ent: validator failed for field "ContentItem.cefr_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentItemUpdateOne) sqlSave(ctx context.Context) (_node *ContentItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentitem.Table, contentitem.Columns, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentitem.FieldID)
		for _, f := range fields {
			if !contentitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentitem.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(contentitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contentitem.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.CefrLevel(); ok {
		_spec.SetField(contentitem.FieldCefrLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeatureKeys(); ok {
		_spec.SetField(contentitem.FieldFeatureKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatureKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentitem.FieldFeatureKeys, value)
		})
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(contentitem.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentitem.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(contentitem.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Modality(); ok {
		_spec.SetField(contentitem.FieldModality, field.TypeString, value)
	}
	_node = &ContentItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
