// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmdrew96/chaoslimba/ent/grammarfeature"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// GrammarFeatureUpdate is the builder for updating GrammarFeature entities.
type GrammarFeatureUpdate struct {
	config
	hooks    []Hook
	mutation *GrammarFeatureMutation
}

// Where appends a list predicates to the GrammarFeatureUpdate builder.
func (_u *GrammarFeatureUpdate) Where(ps ...predicate.GrammarFeature) *GrammarFeatureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFeatureKey sets the "feature_key" field.
func (_u *GrammarFeatureUpdate) SetFeatureKey(v string) *GrammarFeatureUpdate {
	_u.mutation.SetFeatureKey(v)
	return _u
}

// SetNillableFeatureKey sets the "feature_key" field if the given value is not nil.
func (_u *GrammarFeatureUpdate) SetNillableFeatureKey(v *string) *GrammarFeatureUpdate {
	if v != nil {
		_u.SetFeatureKey(*v)
	}
	return _u
}

// SetFeatureName sets the "feature_name" field.
func (_u *GrammarFeatureUpdate) SetFeatureName(v string) *GrammarFeatureUpdate {
	_u.mutation.SetFeatureName(v)
	return _u
}

// SetNillableFeatureName sets the "feature_name" field if the given value is not nil.
func (_u *GrammarFeatureUpdate) SetNillableFeatureName(v *string) *GrammarFeatureUpdate {
	if v != nil {
		_u.SetFeatureName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *GrammarFeatureUpdate) SetCategory(v string) *GrammarFeatureUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GrammarFeatureUpdate) SetNillableCategory(v *string) *GrammarFeatureUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCefrLevel sets the "cefr_level" field.
func (_u *GrammarFeatureUpdate) SetCefrLevel(v string) *GrammarFeatureUpdate {
	_u.mutation.SetCefrLevel(v)
	return _u
}

// SetNillableCefrLevel sets the "cefr_level" field if the given value is not nil.
func (_u *GrammarFeatureUpdate) SetNillableCefrLevel(v *string) *GrammarFeatureUpdate {
	if v != nil {
		_u.SetCefrLevel(*v)
	}
	return _u
}

// Mutation returns the GrammarFeatureMutation object of the builder.
func (_u *GrammarFeatureUpdate) Mutation() *GrammarFeatureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GrammarFeatureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrammarFeatureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GrammarFeatureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrammarFeatureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrammarFeatureUpdate) check() error {
	if v, ok := _u.mutation.FeatureKey(); ok {
		if err := grammarfeature.FeatureKeyValidator(v); err != nil {
			return &ValidationError{Name: "feature_key", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.feature_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeatureName(); ok {
		if err := grammarfeature.FeatureNameValidator(v); err != nil {
			return &ValidationError{Name: "feature_name", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.feature_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := grammarfeature.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CefrLevel(); ok {
		if err := grammarfeature.CefrLevelValidator(v); err != nil {
			return &ValidationError{Name: "cefr_level", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.cefr_level": %w`, err)}
		}
	}
	return nil
}

func (_u *GrammarFeatureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grammarfeature.Table, grammarfeature.Columns, sqlgraph.NewFieldSpec(grammarfeature.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FeatureKey(); ok {
		_spec.SetField(grammarfeature.FieldFeatureKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeatureName(); ok {
		_spec.SetField(grammarfeature.FieldFeatureName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(grammarfeature.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CefrLevel(); ok {
		_spec.SetField(grammarfeature.FieldCefrLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grammarfeature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GrammarFeatureUpdateOne is the builder for updating a single GrammarFeature entity.
type GrammarFeatureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GrammarFeatureMutation
}

// SetFeatureKey sets the "feature_key" field.
func (_u *GrammarFeatureUpdateOne) SetFeatureKey(v string) *GrammarFeatureUpdateOne {
	_u.mutation.SetFeatureKey(v)
	return _u
}

// SetNillableFeatureKey sets the "feature_key" field if the given value is not nil.
func (_u *GrammarFeatureUpdateOne) SetNillableFeatureKey(v *string) *GrammarFeatureUpdateOne {
	if v != nil {
		_u.SetFeatureKey(*v)
	}
	return _u
}

// SetFeatureName sets the "feature_name" field.
func (_u *GrammarFeatureUpdateOne) SetFeatureName(v string) *GrammarFeatureUpdateOne {
	_u.mutation.SetFeatureName(v)
	return _u
}

// SetNillableFeatureName sets the "feature_name" field if the given value is not nil.
func (_u *GrammarFeatureUpdateOne) SetNillableFeatureName(v *string) *GrammarFeatureUpdateOne {
	if v != nil {
		_u.SetFeatureName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *GrammarFeatureUpdateOne) SetCategory(v string) *GrammarFeatureUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GrammarFeatureUpdateOne) SetNillableCategory(v *string) *GrammarFeatureUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCefrLevel sets the "cefr_level" field.
func (_u *GrammarFeatureUpdateOne) SetCefrLevel(v string) *GrammarFeatureUpdateOne {
	_u.mutation.SetCefrLevel(v)
	return _u
}

// SetNillableCefrLevel sets the "cefr_level" field if the given value is not nil.
func (_u *GrammarFeatureUpdateOne) SetNillableCefrLevel(v *string) *GrammarFeatureUpdateOne {
	if v != nil {
		_u.SetCefrLevel(*v)
	}
	return _u
}

// Mutation returns the GrammarFeatureMutation object of the builder.
func (_u *GrammarFeatureUpdateOne) Mutation() *GrammarFeatureMutation {
	return _u.mutation
}

// Where appends a list predicates to the GrammarFeatureUpdate builder.
func (_u *GrammarFeatureUpdateOne) Where(ps ...predicate.GrammarFeature) *GrammarFeatureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GrammarFeatureUpdateOne) Select(field string, fields ...string) *GrammarFeatureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GrammarFeature entity.
func (_u *GrammarFeatureUpdateOne) Save(ctx context.Context) (*GrammarFeature, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrammarFeatureUpdateOne) SaveX(ctx context.Context) *GrammarFeature {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GrammarFeatureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrammarFeatureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrammarFeatureUpdateOne) check() error {
	if v, ok := _u.mutation.FeatureKey(); ok {
		if err := grammarfeature.FeatureKeyValidator(v); err != nil {
			return &ValidationError{Name: "feature_key", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.feature_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeatureName(); ok {
		if err := grammarfeature.FeatureNameValidator(v); err != nil {
			return &ValidationError{Name: "feature_name", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.feature_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := grammarfeature.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CefrLevel(); ok {
		if err := grammarfeature.CefrLevelValidator(v); err != nil {
			return &ValidationError{Name: "cefr_level", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.cefr_level": %w`, err)}
		}
	}
	return nil
}

func (_u *GrammarFeatureUpdateOne) sqlSave(ctx context.Context) (_node *GrammarFeature, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grammarfeature.Table, grammarfeature.Columns, sqlgraph.NewFieldSpec(grammarfeature.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GrammarFeature.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grammarfeature.FieldID)
		for _, f := range fields {
			if !grammarfeature.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grammarfeature.FieldID {
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
	if value, ok := _u.mutation.FeatureKey(); ok {
		_spec.SetField(grammarfeature.FieldFeatureKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeatureName(); ok {
		_spec.SetField(grammarfeature.FieldFeatureName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(grammarfeature.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CefrLevel(); ok {
		_spec.SetField(grammarfeature.FieldCefrLevel, field.TypeString, value)
	}
	_node = &GrammarFeature{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grammarfeature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
