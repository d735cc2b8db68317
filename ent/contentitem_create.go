// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmdrew96/chaoslimba/ent/contentitem"
)

// ContentItemCreate is the builder for creating a ContentItem entity.
type ContentItemCreate struct {
	config
	mutation *ContentItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *ContentItemCreate) SetTitle(v string) *ContentItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *ContentItemCreate) SetBody(v string) *ContentItemCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCefrLevel sets the "cefr_level" field.
func (_c *ContentItemCreate) SetCefrLevel(v string) *ContentItemCreate {
	_c.mutation.SetCefrLevel(v)
	return _c
}

// SetFeatureKeys sets the "feature_keys" field.
func (_c *ContentItemCreate) SetFeatureKeys(v []string) *ContentItemCreate {
	_c.mutation.SetFeatureKeys(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *ContentItemCreate) SetTopics(v []string) *ContentItemCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetModality sets the "modality" field.
func (_c *ContentItemCreate) SetModality(v string) *ContentItemCreate {
	_c.mutation.SetModality(v)
	return _c
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableModality(v *string) *ContentItemCreate {
	if v != nil {
		_c.SetModality(*v)
	}
	return _c
}

// Mutation returns the ContentItemMutation object of the builder.
func (_c *ContentItemCreate) Mutation() *ContentItemMutation {
	return _c.mutation
}

// Save creates the ContentItem in the database.
func (_c *ContentItemCreate) Save(ctx context.Context) (*ContentItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentItemCreate) SaveX(ctx context.Context) *ContentItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentItemCreate) defaults() {
	if _, ok := _c.mutation.Modality(); !ok {
		v := contentitem.DefaultModality
		_c.mutation.SetModality(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentItemCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ContentItem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := contentitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ContentItem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "ContentItem.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := contentitem.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "ContentItem.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CefrLevel(); !ok {
		return &ValidationError{Name: "cefr_level", err: errors.New(`ent: missing required field "ContentItem.cefr_level"`)}
	}
	if v, ok := _c.mutation.CefrLevel(); ok {
		if err := contentitem.CefrLevelValidator(v); err != nil {
			return &ValidationError{Name: "cefr_level", err: fmt.Errorf(`ent: validator failed for field "ContentItem.cefr_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeatureKeys(); !ok {
		return &ValidationError{Name: "feature_keys", err: errors.New(`ent: missing required field "ContentItem.feature_keys"`)}
	}
	if _, ok := _c.mutation.Modality(); !ok {
		return &ValidationError{Name: "modality", err: errors.New(`ent: missing required field "ContentItem.modality"`)}
	}
	return nil
}

func (_c *ContentItemCreate) sqlSave(ctx context.Context) (*ContentItem, error) {
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

func (_c *ContentItemCreate) createSpec() (*ContentItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentitem.Table, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(contentitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(contentitem.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CefrLevel(); ok {
		_spec.SetField(contentitem.FieldCefrLevel, field.TypeString, value)
		_node.CefrLevel = value
	}
	if value, ok := _c.mutation.FeatureKeys(); ok {
		_spec.SetField(contentitem.FieldFeatureKeys, field.TypeJSON, value)
		_node.FeatureKeys = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(contentitem.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.Modality(); ok {
		_spec.SetField(contentitem.FieldModality, field.TypeString, value)
		_node.Modality = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContentItem.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentItemUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentItemCreate) OnConflict(opts ...sql.ConflictOption) *ContentItemUpsertOne {
	_c.conflict = opts
	return &ContentItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContentItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentItemCreate) OnConflictColumns(columns ...string) *ContentItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentItemUpsertOne{
		create: _c,
	}
}

type (
	// ContentItemUpsertOne is the builder for "upsert"-ing
	//  one ContentItem node.
	ContentItemUpsertOne struct {
		create *ContentItemCreate
	}

	// ContentItemUpsert is the "OnConflict" setter.
	ContentItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ContentItemUpsert) SetTitle(v string) *ContentItemUpsert {
	u.Set(contentitem.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ContentItemUpsert) UpdateTitle() *ContentItemUpsert {
	u.SetExcluded(contentitem.FieldTitle)
	return u
}

// SetBody sets the "body" field.
func (u *ContentItemUpsert) SetBody(v string) *ContentItemUpsert {
	u.Set(contentitem.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ContentItemUpsert) UpdateBody() *ContentItemUpsert {
	u.SetExcluded(contentitem.FieldBody)
	return u
}

// SetCefrLevel sets the "cefr_level" field.
func (u *ContentItemUpsert) SetCefrLevel(v string) *ContentItemUpsert {
	u.Set(contentitem.FieldCefrLevel, v)
	return u
}

// UpdateCefrLevel sets the "cefr_level" field to the value that was provided on create.
func (u *ContentItemUpsert) UpdateCefrLevel() *ContentItemUpsert {
	u.SetExcluded(contentitem.FieldCefrLevel)
	return u
}

// SetFeatureKeys sets the "feature_keys" field.
func (u *ContentItemUpsert) SetFeatureKeys(v []string) *ContentItemUpsert {
	u.Set(contentitem.FieldFeatureKeys, v)
	return u
}

// UpdateFeatureKeys sets the "feature_keys" field to the value that was provided on create.
func (u *ContentItemUpsert) UpdateFeatureKeys() *ContentItemUpsert {
	u.SetExcluded(contentitem.FieldFeatureKeys)
	return u
}

// SetTopics sets the "topics" field.
func (u *ContentItemUpsert) SetTopics(v []string) *ContentItemUpsert {
	u.Set(contentitem.FieldTopics, v)
	return u
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *ContentItemUpsert) UpdateTopics() *ContentItemUpsert {
	u.SetExcluded(contentitem.FieldTopics)
	return u
}

// ClearTopics clears the value of the "topics" field.
func (u *ContentItemUpsert) ClearTopics() *ContentItemUpsert {
	u.SetNull(contentitem.FieldTopics)
	return u
}

// SetModality sets the "modality" field.
func (u *ContentItemUpsert) SetModality(v string) *ContentItemUpsert {
	u.Set(contentitem.FieldModality, v)
	return u
}

// UpdateModality sets the "modality" field to the value that was provided on create.
func (u *ContentItemUpsert) UpdateModality() *ContentItemUpsert {
	u.SetExcluded(contentitem.FieldModality)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ContentItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ContentItemUpsertOne) UpdateNewValues() *ContentItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContentItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContentItemUpsertOne) Ignore() *ContentItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentItemUpsertOne) DoNothing() *ContentItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentItemCreate.OnConflict
// documentation for more info.
func (u *ContentItemUpsertOne) Update(set func(*ContentItemUpsert)) *ContentItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ContentItemUpsertOne) SetTitle(v string) *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ContentItemUpsertOne) UpdateTitle() *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *ContentItemUpsertOne) SetBody(v string) *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ContentItemUpsertOne) UpdateBody() *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateBody()
	})
}

// SetCefrLevel sets the "cefr_level" field.
func (u *ContentItemUpsertOne) SetCefrLevel(v string) *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetCefrLevel(v)
	})
}

// UpdateCefrLevel sets the "cefr_level" field to the value that was provided on create.
func (u *ContentItemUpsertOne) UpdateCefrLevel() *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateCefrLevel()
	})
}

// SetFeatureKeys sets the "feature_keys" field.
func (u *ContentItemUpsertOne) SetFeatureKeys(v []string) *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetFeatureKeys(v)
	})
}

// UpdateFeatureKeys sets the "feature_keys" field to the value that was provided on create.
func (u *ContentItemUpsertOne) UpdateFeatureKeys() *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateFeatureKeys()
	})
}

// SetTopics sets the "topics" field.
func (u *ContentItemUpsertOne) SetTopics(v []string) *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetTopics(v)
	})
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *ContentItemUpsertOne) UpdateTopics() *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateTopics()
	})
}

// ClearTopics clears the value of the "topics" field.
func (u *ContentItemUpsertOne) ClearTopics() *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.ClearTopics()
	})
}

// SetModality sets the "modality" field.
func (u *ContentItemUpsertOne) SetModality(v string) *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetModality(v)
	})
}

// UpdateModality sets the "modality" field to the value that was provided on create.
func (u *ContentItemUpsertOne) UpdateModality() *ContentItemUpsertOne {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateModality()
	})
}

// Exec executes the query.
func (u *ContentItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContentItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContentItemUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContentItemUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContentItemCreateBulk is the builder for creating many ContentItem entities in bulk.
type ContentItemCreateBulk struct {
	config
	err      error
	builders []*ContentItemCreate
	conflict []sql.ConflictOption
}

// Save creates the ContentItem entities in the database.
func (_c *ContentItemCreateBulk) Save(ctx context.Context) ([]*ContentItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentItemMutation)
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
func (_c *ContentItemCreateBulk) SaveX(ctx context.Context) []*ContentItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContentItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentItemUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContentItemUpsertBulk {
	_c.conflict = opts
	return &ContentItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContentItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentItemCreateBulk) OnConflictColumns(columns ...string) *ContentItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentItemUpsertBulk{
		create: _c,
	}
}

// ContentItemUpsertBulk is the builder for "upsert"-ing
// a bulk of ContentItem nodes.
type ContentItemUpsertBulk struct {
	create *ContentItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ContentItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ContentItemUpsertBulk) UpdateNewValues() *ContentItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContentItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContentItemUpsertBulk) Ignore() *ContentItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentItemUpsertBulk) DoNothing() *ContentItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentItemCreateBulk.OnConflict
// documentation for more info.
func (u *ContentItemUpsertBulk) Update(set func(*ContentItemUpsert)) *ContentItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ContentItemUpsertBulk) SetTitle(v string) *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ContentItemUpsertBulk) UpdateTitle() *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *ContentItemUpsertBulk) SetBody(v string) *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ContentItemUpsertBulk) UpdateBody() *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateBody()
	})
}

// SetCefrLevel sets the "cefr_level" field.
func (u *ContentItemUpsertBulk) SetCefrLevel(v string) *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetCefrLevel(v)
	})
}

// UpdateCefrLevel sets the "cefr_level" field to the value that was provided on create.
func (u *ContentItemUpsertBulk) UpdateCefrLevel() *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateCefrLevel()
	})
}

// SetFeatureKeys sets the "feature_keys" field.
func (u *ContentItemUpsertBulk) SetFeatureKeys(v []string) *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetFeatureKeys(v)
	})
}

// UpdateFeatureKeys sets the "feature_keys" field to the value that was provided on create.
func (u *ContentItemUpsertBulk) UpdateFeatureKeys() *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateFeatureKeys()
	})
}

// SetTopics sets the "topics" field.
func (u *ContentItemUpsertBulk) SetTopics(v []string) *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetTopics(v)
	})
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *ContentItemUpsertBulk) UpdateTopics() *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateTopics()
	})
}

// ClearTopics clears the value of the "topics" field.
func (u *ContentItemUpsertBulk) ClearTopics() *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.ClearTopics()
	})
}

// SetModality sets the "modality" field.
func (u *ContentItemUpsertBulk) SetModality(v string) *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.SetModality(v)
	})
}

// UpdateModality sets the "modality" field to the value that was provided on create.
func (u *ContentItemUpsertBulk) UpdateModality() *ContentItemUpsertBulk {
	return u.Update(func(s *ContentItemUpsert) {
		s.UpdateModality()
	})
}

// Exec executes the query.
func (u *ContentItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContentItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContentItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
