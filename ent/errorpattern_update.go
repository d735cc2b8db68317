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
	"github.com/lmdrew96/chaoslimba/ent/errorpattern"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// ErrorPatternUpdate is the builder for updating ErrorPattern entities.
type ErrorPatternUpdate struct {
	config
	hooks    []Hook
	mutation *ErrorPatternMutation
}

// Where appends a list predicates to the ErrorPatternUpdate builder.
func (_u *ErrorPatternUpdate) Where(ps ...predicate.ErrorPattern) *ErrorPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ErrorPatternUpdate) SetUserID(v string) *ErrorPatternUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableUserID(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *ErrorPatternUpdate) SetPatternType(v string) *ErrorPatternUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillablePatternType(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ErrorPatternUpdate) SetCategory(v string) *ErrorPatternUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableCategory(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLearnerProduction sets the "learner_production" field.
func (_u *ErrorPatternUpdate) SetLearnerProduction(v string) *ErrorPatternUpdate {
	_u.mutation.SetLearnerProduction(v)
	return _u
}

// SetNillableLearnerProduction sets the "learner_production" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableLearnerProduction(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetLearnerProduction(*v)
	}
	return _u
}

// SetCorrectForm sets the "correct_form" field.
func (_u *ErrorPatternUpdate) SetCorrectForm(v string) *ErrorPatternUpdate {
	_u.mutation.SetCorrectForm(v)
	return _u
}

// SetNillableCorrectForm sets the "correct_form" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableCorrectForm(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetCorrectForm(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ErrorPatternUpdate) SetConfidence(v float64) *ErrorPatternUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableConfidence(v *float64) *ErrorPatternUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ErrorPatternUpdate) AddConfidence(v float64) *ErrorPatternUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ErrorPatternUpdate) SetSeverity(v string) *ErrorPatternUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableSeverity(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetIsFossilizing sets the "is_fossilizing" field.
func (_u *ErrorPatternUpdate) SetIsFossilizing(v bool) *ErrorPatternUpdate {
	_u.mutation.SetIsFossilizing(v)
	return _u
}

// SetNillableIsFossilizing sets the "is_fossilizing" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableIsFossilizing(v *bool) *ErrorPatternUpdate {
	if v != nil {
		_u.SetIsFossilizing(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ErrorPatternUpdate) SetResolvedAt(v time.Time) *ErrorPatternUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableResolvedAt(v *time.Time) *ErrorPatternUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ErrorPatternUpdate) ClearResolvedAt() *ErrorPatternUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ErrorPatternMutation object of the builder.
func (_u *ErrorPatternUpdate) Mutation() *ErrorPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ErrorPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ErrorPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorPatternUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := errorpattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternType(); ok {
		if err := errorpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := errorpattern.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := errorpattern.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ErrorPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorpattern.Table, errorpattern.Columns, sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(errorpattern.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(errorpattern.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(errorpattern.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerProduction(); ok {
		_spec.SetField(errorpattern.FieldLearnerProduction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectForm(); ok {
		_spec.SetField(errorpattern.FieldCorrectForm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(errorpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(errorpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(errorpattern.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsFossilizing(); ok {
		_spec.SetField(errorpattern.FieldIsFossilizing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(errorpattern.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(errorpattern.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ErrorPatternUpdateOne is the builder for updating a single ErrorPattern entity.
type ErrorPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ErrorPatternMutation
}

// SetUserID sets the "user_id" field.
func (_u *ErrorPatternUpdateOne) SetUserID(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableUserID(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *ErrorPatternUpdateOne) SetPatternType(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillablePatternType(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ErrorPatternUpdateOne) SetCategory(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableCategory(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLearnerProduction sets the "learner_production" field.
func (_u *ErrorPatternUpdateOne) SetLearnerProduction(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetLearnerProduction(v)
	return _u
}

// SetNillableLearnerProduction sets the "learner_production" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableLearnerProduction(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetLearnerProduction(*v)
	}
	return _u
}

// SetCorrectForm sets the "correct_form" field.
func (_u *ErrorPatternUpdateOne) SetCorrectForm(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetCorrectForm(v)
	return _u
}

// SetNillableCorrectForm sets the "correct_form" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableCorrectForm(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetCorrectForm(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ErrorPatternUpdateOne) SetConfidence(v float64) *ErrorPatternUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableConfidence(v *float64) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ErrorPatternUpdateOne) AddConfidence(v float64) *ErrorPatternUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ErrorPatternUpdateOne) SetSeverity(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableSeverity(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetIsFossilizing sets the "is_fossilizing" field.
func (_u *ErrorPatternUpdateOne) SetIsFossilizing(v bool) *ErrorPatternUpdateOne {
	_u.mutation.SetIsFossilizing(v)
	return _u
}

// SetNillableIsFossilizing sets the "is_fossilizing" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableIsFossilizing(v *bool) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetIsFossilizing(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ErrorPatternUpdateOne) SetResolvedAt(v time.Time) *ErrorPatternUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableResolvedAt(v *time.Time) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ErrorPatternUpdateOne) ClearResolvedAt() *ErrorPatternUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ErrorPatternMutation object of the builder.
func (_u *ErrorPatternUpdateOne) Mutation() *ErrorPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the ErrorPatternUpdate builder.
func (_u *ErrorPatternUpdateOne) Where(ps ...predicate.ErrorPattern) *ErrorPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ErrorPatternUpdateOne) Select(field string, fields ...string) *ErrorPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ErrorPattern entity.
func (_u *ErrorPatternUpdateOne) Save(ctx context.Context) (*ErrorPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorPatternUpdateOne) SaveX(ctx context.Context) *ErrorPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ErrorPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorPatternUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := errorpattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternType(); ok {
		if err := errorpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := errorpattern.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := errorpattern.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ErrorPatternUpdateOne) sqlSave(ctx context.Context) (_node *ErrorPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorpattern.Table, errorpattern.Columns, sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ErrorPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, errorpattern.FieldID)
		for _, f := range fields {
			if !errorpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != errorpattern.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(errorpattern.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(errorpattern.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(errorpattern.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerProduction(); ok {
		_spec.SetField(errorpattern.FieldLearnerProduction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectForm(); ok {
		_spec.SetField(errorpattern.FieldCorrectForm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(errorpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(errorpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(errorpattern.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsFossilizing(); ok {
		_spec.SetField(errorpattern.FieldIsFossilizing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(errorpattern.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(errorpattern.FieldResolvedAt, field.TypeTime)
	}
	_node = &ErrorPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
