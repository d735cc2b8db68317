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
)

// GrammarFeatureCreate is the builder for creating a GrammarFeature entity.
type GrammarFeatureCreate struct {
	config
	mutation *GrammarFeatureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFeatureKey sets the "feature_key" field.
func (_c *GrammarFeatureCreate) SetFeatureKey(v string) *GrammarFeatureCreate {
	_c.mutation.SetFeatureKey(v)
	return _c
}

// SetFeatureName sets the "feature_name" field.
func (_c *GrammarFeatureCreate) SetFeatureName(v string) *GrammarFeatureCreate {
	_c.mutation.SetFeatureName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *GrammarFeatureCreate) SetCategory(v string) *GrammarFeatureCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetCefrLevel sets the "cefr_level" field.
func (_c *GrammarFeatureCreate) SetCefrLevel(v string) *GrammarFeatureCreate {
	_c.mutation.SetCefrLevel(v)
	return _c
}

// Mutation returns the GrammarFeatureMutation object of the builder.
func (_c *GrammarFeatureCreate) Mutation() *GrammarFeatureMutation {
	return _c.mutation
}

// Save creates the GrammarFeature in the database.
func (_c *GrammarFeatureCreate) Save(ctx context.Context) (*GrammarFeature, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GrammarFeatureCreate) SaveX(ctx context.Context) *GrammarFeature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrammarFeatureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrammarFeatureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GrammarFeatureCreate) check() error {
	if _, ok := _c.mutation.FeatureKey(); !ok {
		return &ValidationError{Name: "feature_key", err: errors.New(`ent: missing required field "GrammarFeature.feature_key"`)}
	}
	if v, ok := _c.mutation.FeatureKey(); ok {
		if err := grammarfeature.FeatureKeyValidator(v); err != nil {
			return &ValidationError{Name: "feature_key", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.feature_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeatureName(); !ok {
		return &ValidationError{Name: "feature_name", err: errors.New(`ent: missing required field "GrammarFeature.feature_name"`)}
	}
	if v, ok := _c.mutation.FeatureName(); ok {
		if err := grammarfeature.FeatureNameValidator(v); err != nil {
			return &ValidationError{Name: "feature_name", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.feature_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "GrammarFeature.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := grammarfeature.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CefrLevel(); !ok {
		return &ValidationError{Name: "cefr_level", err: errors.New(`ent: missing required field "GrammarFeature.cefr_level"`)}
	}
	if v, ok := _c.mutation.CefrLevel(); ok {
		if err := grammarfeature.CefrLevelValidator(v); err != nil {
			return &ValidationError{Name: "cefr_level", err: fmt.Errorf(`ent: validator failed for field "GrammarFeature.cefr_level": %w`, err)}
		}
	}
	return nil
}

func (_c *GrammarFeatureCreate) sqlSave(ctx context.Context) (*GrammarFeature, error) {
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

func (_c *GrammarFeatureCreate) createSpec() (*GrammarFeature, *sqlgraph.CreateSpec) {
	var (
		_node = &GrammarFeature{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(grammarfeature.Table, sqlgraph.NewFieldSpec(grammarfeature.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FeatureKey(); ok {
		_spec.SetField(grammarfeature.FieldFeatureKey, field.TypeString, value)
		_node.FeatureKey = value
	}
	if value, ok := _c.mutation.FeatureName(); ok {
		_spec.SetField(grammarfeature.FieldFeatureName, field.TypeString, value)
		_node.FeatureName = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(grammarfeature.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.CefrLevel(); ok {
		_spec.SetField(grammarfeature.FieldCefrLevel, field.TypeString, value)
		_node.CefrLevel = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GrammarFeature.Create().
//		SetFeatureKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GrammarFeatureUpsert) {
//			SetFeatureKey(v+v).
//		}).
//		Exec(ctx)
func (_c *GrammarFeatureCreate) OnConflict(opts ...sql.ConflictOption) *GrammarFeatureUpsertOne {
	_c.conflict = opts
	return &GrammarFeatureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GrammarFeature.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GrammarFeatureCreate) OnConflictColumns(columns ...string) *GrammarFeatureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GrammarFeatureUpsertOne{
		create: _c,
	}
}

type (
	// GrammarFeatureUpsertOne is the builder for "upsert"-ing
	//  one GrammarFeature node.
	GrammarFeatureUpsertOne struct {
		create *GrammarFeatureCreate
	}

	// GrammarFeatureUpsert is the "OnConflict" setter.
	GrammarFeatureUpsert struct {
		*sql.UpdateSet
	}
)

// SetFeatureKey sets the "feature_key" field.
func (u *GrammarFeatureUpsert) SetFeatureKey(v string) *GrammarFeatureUpsert {
	u.Set(grammarfeature.FieldFeatureKey, v)
	return u
}

// UpdateFeatureKey sets the "feature_key" field to the value that was provided on create.
func (u *GrammarFeatureUpsert) UpdateFeatureKey() *GrammarFeatureUpsert {
	u.SetExcluded(grammarfeature.FieldFeatureKey)
	return u
}

// SetFeatureName sets the "feature_name" field.
func (u *GrammarFeatureUpsert) SetFeatureName(v string) *GrammarFeatureUpsert {
	u.Set(grammarfeature.FieldFeatureName, v)
	return u
}

// UpdateFeatureName sets the "feature_name" field to the value that was provided on create.
func (u *GrammarFeatureUpsert) UpdateFeatureName() *GrammarFeatureUpsert {
	u.SetExcluded(grammarfeature.FieldFeatureName)
	return u
}

// SetCategory sets the "category" field.
func (u *GrammarFeatureUpsert) SetCategory(v string) *GrammarFeatureUpsert {
	u.Set(grammarfeature.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *GrammarFeatureUpsert) UpdateCategory() *GrammarFeatureUpsert {
	u.SetExcluded(grammarfeature.FieldCategory)
	return u
}

// SetCefrLevel sets the "cefr_level" field.
func (u *GrammarFeatureUpsert) SetCefrLevel(v string) *GrammarFeatureUpsert {
	u.Set(grammarfeature.FieldCefrLevel, v)
	return u
}

// UpdateCefrLevel sets the "cefr_level" field to the value that was provided on create.
func (u *GrammarFeatureUpsert) UpdateCefrLevel() *GrammarFeatureUpsert {
	u.SetExcluded(grammarfeature.FieldCefrLevel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.GrammarFeature.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GrammarFeatureUpsertOne) UpdateNewValues() *GrammarFeatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GrammarFeature.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GrammarFeatureUpsertOne) Ignore() *GrammarFeatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GrammarFeatureUpsertOne) DoNothing() *GrammarFeatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GrammarFeatureCreate.OnConflict
// documentation for more info.
func (u *GrammarFeatureUpsertOne) Update(set func(*GrammarFeatureUpsert)) *GrammarFeatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GrammarFeatureUpsert{UpdateSet: update})
	}))
	return u
}

// SetFeatureKey sets the "feature_key" field.
func (u *GrammarFeatureUpsertOne) SetFeatureKey(v string) *GrammarFeatureUpsertOne {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.SetFeatureKey(v)
	})
}

// UpdateFeatureKey sets the "feature_key" field to the value that was provided on create.
func (u *GrammarFeatureUpsertOne) UpdateFeatureKey() *GrammarFeatureUpsertOne {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.UpdateFeatureKey()
	})
}

// SetFeatureName sets the "feature_name" field.
func (u *GrammarFeatureUpsertOne) SetFeatureName(v string) *GrammarFeatureUpsertOne {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.SetFeatureName(v)
	})
}

// UpdateFeatureName sets the "feature_name" field to the value that was provided on create.
func (u *GrammarFeatureUpsertOne) UpdateFeatureName() *GrammarFeatureUpsertOne {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.UpdateFeatureName()
	})
}

// SetCategory sets the "category" field.
func (u *GrammarFeatureUpsertOne) SetCategory(v string) *GrammarFeatureUpsertOne {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *GrammarFeatureUpsertOne) UpdateCategory() *GrammarFeatureUpsertOne {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.UpdateCategory()
	})
}

// SetCefrLevel sets the "cefr_level" field.
func (u *GrammarFeatureUpsertOne) SetCefrLevel(v string) *GrammarFeatureUpsertOne {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.SetCefrLevel(v)
	})
}

// UpdateCefrLevel sets the "cefr_level" field to the value that was provided on create.
func (u *GrammarFeatureUpsertOne) UpdateCefrLevel() *GrammarFeatureUpsertOne {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.UpdateCefrLevel()
	})
}

// Exec executes the query.
func (u *GrammarFeatureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GrammarFeatureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GrammarFeatureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GrammarFeatureUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GrammarFeatureUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GrammarFeatureCreateBulk is the builder for creating many GrammarFeature entities in bulk.
type GrammarFeatureCreateBulk struct {
	config
	err      error
	builders []*GrammarFeatureCreate
	conflict []sql.ConflictOption
}

// Save creates the GrammarFeature entities in the database.
func (_c *GrammarFeatureCreateBulk) Save(ctx context.Context) ([]*GrammarFeature, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GrammarFeature, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GrammarFeatureMutation)
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
func (_c *GrammarFeatureCreateBulk) SaveX(ctx context.Context) []*GrammarFeature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrammarFeatureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrammarFeatureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GrammarFeature.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GrammarFeatureUpsert) {
//			SetFeatureKey(v+v).
//		}).
//		Exec(ctx)
func (_c *GrammarFeatureCreateBulk) OnConflict(opts ...sql.ConflictOption) *GrammarFeatureUpsertBulk {
	_c.conflict = opts
	return &GrammarFeatureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GrammarFeature.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GrammarFeatureCreateBulk) OnConflictColumns(columns ...string) *GrammarFeatureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GrammarFeatureUpsertBulk{
		create: _c,
	}
}

// GrammarFeatureUpsertBulk is the builder for "upsert"-ing
// a bulk of GrammarFeature nodes.
type GrammarFeatureUpsertBulk struct {
	create *GrammarFeatureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GrammarFeature.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GrammarFeatureUpsertBulk) UpdateNewValues() *GrammarFeatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GrammarFeature.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GrammarFeatureUpsertBulk) Ignore() *GrammarFeatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GrammarFeatureUpsertBulk) DoNothing() *GrammarFeatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GrammarFeatureCreateBulk.OnConflict
// documentation for more info.
func (u *GrammarFeatureUpsertBulk) Update(set func(*GrammarFeatureUpsert)) *GrammarFeatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GrammarFeatureUpsert{UpdateSet: update})
	}))
	return u
}

// SetFeatureKey sets the "feature_key" field.
func (u *GrammarFeatureUpsertBulk) SetFeatureKey(v string) *GrammarFeatureUpsertBulk {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.SetFeatureKey(v)
	})
}

// UpdateFeatureKey sets the "feature_key" field to the value that was provided on create.
func (u *GrammarFeatureUpsertBulk) UpdateFeatureKey() *GrammarFeatureUpsertBulk {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.UpdateFeatureKey()
	})
}

// SetFeatureName sets the "feature_name" field.
func (u *GrammarFeatureUpsertBulk) SetFeatureName(v string) *GrammarFeatureUpsertBulk {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.SetFeatureName(v)
	})
}

// UpdateFeatureName sets the "feature_name" field to the value that was provided on create.
func (u *GrammarFeatureUpsertBulk) UpdateFeatureName() *GrammarFeatureUpsertBulk {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.UpdateFeatureName()
	})
}

// SetCategory sets the "category" field.
func (u *GrammarFeatureUpsertBulk) SetCategory(v string) *GrammarFeatureUpsertBulk {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *GrammarFeatureUpsertBulk) UpdateCategory() *GrammarFeatureUpsertBulk {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.UpdateCategory()
	})
}

// SetCefrLevel sets the "cefr_level" field.
func (u *GrammarFeatureUpsertBulk) SetCefrLevel(v string) *GrammarFeatureUpsertBulk {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.SetCefrLevel(v)
	})
}

// UpdateCefrLevel sets the "cefr_level" field to the value that was provided on create.
func (u *GrammarFeatureUpsertBulk) UpdateCefrLevel() *GrammarFeatureUpsertBulk {
	return u.Update(func(s *GrammarFeatureUpsert) {
		s.UpdateCefrLevel()
	})
}

// Exec executes the query.
func (u *GrammarFeatureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GrammarFeatureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GrammarFeatureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GrammarFeatureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
