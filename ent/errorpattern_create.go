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
)

// ErrorPatternCreate is the builder for creating a ErrorPattern entity.
type ErrorPatternCreate struct {
	config
	mutation *ErrorPatternMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ErrorPatternCreate) SetUserID(v string) *ErrorPatternCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPatternType sets the "pattern_type" field.
func (_c *ErrorPatternCreate) SetPatternType(v string) *ErrorPatternCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ErrorPatternCreate) SetCategory(v string) *ErrorPatternCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetLearnerProduction sets the "learner_production" field.
func (_c *ErrorPatternCreate) SetLearnerProduction(v string) *ErrorPatternCreate {
	_c.mutation.SetLearnerProduction(v)
	return _c
}

// SetCorrectForm sets the "correct_form" field.
func (_c *ErrorPatternCreate) SetCorrectForm(v string) *ErrorPatternCreate {
	_c.mutation.SetCorrectForm(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ErrorPatternCreate) SetConfidence(v float64) *ErrorPatternCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ErrorPatternCreate) SetSeverity(v string) *ErrorPatternCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetIsFossilizing sets the "is_fossilizing" field.
func (_c *ErrorPatternCreate) SetIsFossilizing(v bool) *ErrorPatternCreate {
	_c.mutation.SetIsFossilizing(v)
	return _c
}

// SetNillableIsFossilizing sets the "is_fossilizing" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableIsFossilizing(v *bool) *ErrorPatternCreate {
	if v != nil {
		_c.SetIsFossilizing(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ErrorPatternCreate) SetCreatedAt(v time.Time) *ErrorPatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableCreatedAt(v *time.Time) *ErrorPatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ErrorPatternCreate) SetResolvedAt(v time.Time) *ErrorPatternCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableResolvedAt(v *time.Time) *ErrorPatternCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// Mutation returns the ErrorPatternMutation object of the builder.
func (_c *ErrorPatternCreate) Mutation() *ErrorPatternMutation {
	return _c.mutation
}

// Save creates the ErrorPattern in the database.
func (_c *ErrorPatternCreate) Save(ctx context.Context) (*ErrorPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ErrorPatternCreate) SaveX(ctx context.Context) *ErrorPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ErrorPatternCreate) defaults() {
	if _, ok := _c.mutation.IsFossilizing(); !ok {
		v := errorpattern.DefaultIsFossilizing
		_c.mutation.SetIsFossilizing(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := errorpattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ErrorPatternCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ErrorPattern.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := errorpattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "ErrorPattern.pattern_type"`)}
	}
	if v, ok := _c.mutation.PatternType(); ok {
		if err := errorpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.pattern_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ErrorPattern.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := errorpattern.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerProduction(); !ok {
		return &ValidationError{Name: "learner_production", err: errors.New(`ent: missing required field "ErrorPattern.learner_production"`)}
	}
	if _, ok := _c.mutation.CorrectForm(); !ok {
		return &ValidationError{Name: "correct_form", err: errors.New(`ent: missing required field "ErrorPattern.correct_form"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ErrorPattern.confidence"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ErrorPattern.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := errorpattern.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsFossilizing(); !ok {
		return &ValidationError{Name: "is_fossilizing", err: errors.New(`ent: missing required field "ErrorPattern.is_fossilizing"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ErrorPattern.created_at"`)}
	}
	return nil
}

func (_c *ErrorPatternCreate) sqlSave(ctx context.Context) (*ErrorPattern, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ErrorPatternCreate) createSpec() (*ErrorPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &ErrorPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(errorpattern.Table, sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(errorpattern.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(errorpattern.FieldPatternType, field.TypeString, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(errorpattern.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.LearnerProduction(); ok {
		_spec.SetField(errorpattern.FieldLearnerProduction, field.TypeString, value)
		_node.LearnerProduction = value
	}
	if value, ok := _c.mutation.CorrectForm(); ok {
		_spec.SetField(errorpattern.FieldCorrectForm, field.TypeString, value)
		_node.CorrectForm = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(errorpattern.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(errorpattern.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.IsFossilizing(); ok {
		_spec.SetField(errorpattern.FieldIsFossilizing, field.TypeBool, value)
		_node.IsFossilizing = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(errorpattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(errorpattern.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ErrorPattern.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ErrorPatternUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ErrorPatternCreate) OnConflict(opts ...sql.ConflictOption) *ErrorPatternUpsertOne {
	_c.conflict = opts
	return &ErrorPatternUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ErrorPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ErrorPatternCreate) OnConflictColumns(columns ...string) *ErrorPatternUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ErrorPatternUpsertOne{
		create: _c,
	}
}

type (
	// ErrorPatternUpsertOne is the builder for "upsert"-ing
	//  one ErrorPattern node.
	ErrorPatternUpsertOne struct {
		create *ErrorPatternCreate
	}

	// ErrorPatternUpsert is the "OnConflict" setter.
	ErrorPatternUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ErrorPatternUpsert) SetUserID(v string) *ErrorPatternUpsert {
	u.Set(errorpattern.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ErrorPatternUpsert) UpdateUserID() *ErrorPatternUpsert {
	u.SetExcluded(errorpattern.FieldUserID)
	return u
}

// SetPatternType sets the "pattern_type" field.
func (u *ErrorPatternUpsert) SetPatternType(v string) *ErrorPatternUpsert {
	u.Set(errorpattern.FieldPatternType, v)
	return u
}

// UpdatePatternType sets the "pattern_type" field to the value that was provided on create.
func (u *ErrorPatternUpsert) UpdatePatternType() *ErrorPatternUpsert {
	u.SetExcluded(errorpattern.FieldPatternType)
	return u
}

// SetCategory sets the "category" field.
func (u *ErrorPatternUpsert) SetCategory(v string) *ErrorPatternUpsert {
	u.Set(errorpattern.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ErrorPatternUpsert) UpdateCategory() *ErrorPatternUpsert {
	u.SetExcluded(errorpattern.FieldCategory)
	return u
}

// SetLearnerProduction sets the "learner_production" field.
func (u *ErrorPatternUpsert) SetLearnerProduction(v string) *ErrorPatternUpsert {
	u.Set(errorpattern.FieldLearnerProduction, v)
	return u
}

// UpdateLearnerProduction sets the "learner_production" field to the value that was provided on create.
func (u *ErrorPatternUpsert) UpdateLearnerProduction() *ErrorPatternUpsert {
	u.SetExcluded(errorpattern.FieldLearnerProduction)
	return u
}

// SetCorrectForm sets the "correct_form" field.
func (u *ErrorPatternUpsert) SetCorrectForm(v string) *ErrorPatternUpsert {
	u.Set(errorpattern.FieldCorrectForm, v)
	return u
}

// UpdateCorrectForm sets the "correct_form" field to the value that was provided on create.
func (u *ErrorPatternUpsert) UpdateCorrectForm() *ErrorPatternUpsert {
	u.SetExcluded(errorpattern.FieldCorrectForm)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *ErrorPatternUpsert) SetConfidence(v float64) *ErrorPatternUpsert {
	u.Set(errorpattern.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ErrorPatternUpsert) UpdateConfidence() *ErrorPatternUpsert {
	u.SetExcluded(errorpattern.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *ErrorPatternUpsert) AddConfidence(v float64) *ErrorPatternUpsert {
	u.Add(errorpattern.FieldConfidence, v)
	return u
}

// SetSeverity sets the "severity" field.
func (u *ErrorPatternUpsert) SetSeverity(v string) *ErrorPatternUpsert {
	u.Set(errorpattern.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *ErrorPatternUpsert) UpdateSeverity() *ErrorPatternUpsert {
	u.SetExcluded(errorpattern.FieldSeverity)
	return u
}

// SetIsFossilizing sets the "is_fossilizing" field.
func (u *ErrorPatternUpsert) SetIsFossilizing(v bool) *ErrorPatternUpsert {
	u.Set(errorpattern.FieldIsFossilizing, v)
	return u
}

// UpdateIsFossilizing sets the "is_fossilizing" field to the value that was provided on create.
func (u *ErrorPatternUpsert) UpdateIsFossilizing() *ErrorPatternUpsert {
	u.SetExcluded(errorpattern.FieldIsFossilizing)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ErrorPatternUpsert) SetResolvedAt(v time.Time) *ErrorPatternUpsert {
	u.Set(errorpattern.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ErrorPatternUpsert) UpdateResolvedAt() *ErrorPatternUpsert {
	u.SetExcluded(errorpattern.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ErrorPatternUpsert) ClearResolvedAt() *ErrorPatternUpsert {
	u.SetNull(errorpattern.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ErrorPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ErrorPatternUpsertOne) UpdateNewValues() *ErrorPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(errorpattern.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ErrorPattern.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ErrorPatternUpsertOne) Ignore() *ErrorPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ErrorPatternUpsertOne) DoNothing() *ErrorPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ErrorPatternCreate.OnConflict
// documentation for more info.
func (u *ErrorPatternUpsertOne) Update(set func(*ErrorPatternUpsert)) *ErrorPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ErrorPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ErrorPatternUpsertOne) SetUserID(v string) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ErrorPatternUpsertOne) UpdateUserID() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateUserID()
	})
}

// SetPatternType sets the "pattern_type" field.
func (u *ErrorPatternUpsertOne) SetPatternType(v string) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetPatternType(v)
	})
}

// UpdatePatternType sets the "pattern_type" field to the value that was provided on create.
func (u *ErrorPatternUpsertOne) UpdatePatternType() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdatePatternType()
	})
}

// SetCategory sets the "category" field.
func (u *ErrorPatternUpsertOne) SetCategory(v string) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ErrorPatternUpsertOne) UpdateCategory() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateCategory()
	})
}

// SetLearnerProduction sets the "learner_production" field.
func (u *ErrorPatternUpsertOne) SetLearnerProduction(v string) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetLearnerProduction(v)
	})
}

// UpdateLearnerProduction sets the "learner_production" field to the value that was provided on create.
func (u *ErrorPatternUpsertOne) UpdateLearnerProduction() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateLearnerProduction()
	})
}

// SetCorrectForm sets the "correct_form" field.
func (u *ErrorPatternUpsertOne) SetCorrectForm(v string) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetCorrectForm(v)
	})
}

// UpdateCorrectForm sets the "correct_form" field to the value that was provided on create.
func (u *ErrorPatternUpsertOne) UpdateCorrectForm() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateCorrectForm()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ErrorPatternUpsertOne) SetConfidence(v float64) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ErrorPatternUpsertOne) AddConfidence(v float64) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ErrorPatternUpsertOne) UpdateConfidence() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateConfidence()
	})
}

// SetSeverity sets the "severity" field.
func (u *ErrorPatternUpsertOne) SetSeverity(v string) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *ErrorPatternUpsertOne) UpdateSeverity() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateSeverity()
	})
}

// SetIsFossilizing sets the "is_fossilizing" field.
func (u *ErrorPatternUpsertOne) SetIsFossilizing(v bool) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetIsFossilizing(v)
	})
}

// UpdateIsFossilizing sets the "is_fossilizing" field to the value that was provided on create.
func (u *ErrorPatternUpsertOne) UpdateIsFossilizing() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateIsFossilizing()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ErrorPatternUpsertOne) SetResolvedAt(v time.Time) *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ErrorPatternUpsertOne) UpdateResolvedAt() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ErrorPatternUpsertOne) ClearResolvedAt() *ErrorPatternUpsertOne {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ErrorPatternUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ErrorPatternCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ErrorPatternUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ErrorPatternUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ErrorPatternUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ErrorPatternCreateBulk is the builder for creating many ErrorPattern entities in bulk.
type ErrorPatternCreateBulk struct {
	config
	err      error
	builders []*ErrorPatternCreate
	conflict []sql.ConflictOption
}

// Save creates the ErrorPattern entities in the database.
func (_c *ErrorPatternCreateBulk) Save(ctx context.Context) ([]*ErrorPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ErrorPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ErrorPatternMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ErrorPatternCreateBulk) SaveX(ctx context.Context) []*ErrorPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ErrorPattern.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ErrorPatternUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ErrorPatternCreateBulk) OnConflict(opts ...sql.ConflictOption) *ErrorPatternUpsertBulk {
	_c.conflict = opts
	return &ErrorPatternUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ErrorPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ErrorPatternCreateBulk) OnConflictColumns(columns ...string) *ErrorPatternUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ErrorPatternUpsertBulk{
		create: _c,
	}
}

// ErrorPatternUpsertBulk is the builder for "upsert"-ing
// a bulk of ErrorPattern nodes.
type ErrorPatternUpsertBulk struct {
	create *ErrorPatternCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ErrorPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ErrorPatternUpsertBulk) UpdateNewValues() *ErrorPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(errorpattern.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ErrorPattern.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ErrorPatternUpsertBulk) Ignore() *ErrorPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ErrorPatternUpsertBulk) DoNothing() *ErrorPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ErrorPatternCreateBulk.OnConflict
// documentation for more info.
func (u *ErrorPatternUpsertBulk) Update(set func(*ErrorPatternUpsert)) *ErrorPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ErrorPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ErrorPatternUpsertBulk) SetUserID(v string) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ErrorPatternUpsertBulk) UpdateUserID() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateUserID()
	})
}

// SetPatternType sets the "pattern_type" field.
func (u *ErrorPatternUpsertBulk) SetPatternType(v string) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetPatternType(v)
	})
}

// UpdatePatternType sets the "pattern_type" field to the value that was provided on create.
func (u *ErrorPatternUpsertBulk) UpdatePatternType() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdatePatternType()
	})
}

// SetCategory sets the "category" field.
func (u *ErrorPatternUpsertBulk) SetCategory(v string) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ErrorPatternUpsertBulk) UpdateCategory() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateCategory()
	})
}

// SetLearnerProduction sets the "learner_production" field.
func (u *ErrorPatternUpsertBulk) SetLearnerProduction(v string) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetLearnerProduction(v)
	})
}

// UpdateLearnerProduction sets the "learner_production" field to the value that was provided on create.
func (u *ErrorPatternUpsertBulk) UpdateLearnerProduction() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateLearnerProduction()
	})
}

// SetCorrectForm sets the "correct_form" field.
func (u *ErrorPatternUpsertBulk) SetCorrectForm(v string) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetCorrectForm(v)
	})
}

// UpdateCorrectForm sets the "correct_form" field to the value that was provided on create.
func (u *ErrorPatternUpsertBulk) UpdateCorrectForm() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateCorrectForm()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ErrorPatternUpsertBulk) SetConfidence(v float64) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ErrorPatternUpsertBulk) AddConfidence(v float64) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ErrorPatternUpsertBulk) UpdateConfidence() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateConfidence()
	})
}

// SetSeverity sets the "severity" field.
func (u *ErrorPatternUpsertBulk) SetSeverity(v string) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *ErrorPatternUpsertBulk) UpdateSeverity() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateSeverity()
	})
}

// SetIsFossilizing sets the "is_fossilizing" field.
func (u *ErrorPatternUpsertBulk) SetIsFossilizing(v bool) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetIsFossilizing(v)
	})
}

// UpdateIsFossilizing sets the "is_fossilizing" field to the value that was provided on create.
func (u *ErrorPatternUpsertBulk) UpdateIsFossilizing() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateIsFossilizing()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ErrorPatternUpsertBulk) SetResolvedAt(v time.Time) *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ErrorPatternUpsertBulk) UpdateResolvedAt() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ErrorPatternUpsertBulk) ClearResolvedAt() *ErrorPatternUpsertBulk {
	return u.Update(func(s *ErrorPatternUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ErrorPatternUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ErrorPatternCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ErrorPatternCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ErrorPatternUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
