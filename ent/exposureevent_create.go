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
	"github.com/lmdrew96/chaoslimba/ent/exposureevent"
)

// ExposureEventCreate is the builder for creating a ExposureEvent entity.
type ExposureEventCreate struct {
	config
	mutation *ExposureEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ExposureEventCreate) SetSequence(v int64) *ExposureEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExposureEventCreate) SetTimestamp(v time.Time) *ExposureEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExposureEventCreate) SetNillableTimestamp(v *time.Time) *ExposureEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExposureEventCreate) SetUserID(v string) *ExposureEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFeatureKey sets the "feature_key" field.
func (_c *ExposureEventCreate) SetFeatureKey(v string) *ExposureEventCreate {
	_c.mutation.SetFeatureKey(v)
	return _c
}

// SetExposureType sets the "exposure_type" field.
func (_c *ExposureEventCreate) SetExposureType(v string) *ExposureEventCreate {
	_c.mutation.SetExposureType(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExposureEventCreate) SetSessionID(v string) *ExposureEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetContentID sets the "content_id" field.
func (_c *ExposureEventCreate) SetContentID(v string) *ExposureEventCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_c *ExposureEventCreate) SetNillableContentID(v *string) *ExposureEventCreate {
	if v != nil {
		_c.SetContentID(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *ExposureEventCreate) SetIsCorrect(v bool) *ExposureEventCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *ExposureEventCreate) SetNillableIsCorrect(v *bool) *ExposureEventCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// Mutation returns the ExposureEventMutation object of the builder.
func (_c *ExposureEventCreate) Mutation() *ExposureEventMutation {
	return _c.mutation
}

// Save creates the ExposureEvent in the database.
func (_c *ExposureEventCreate) Save(ctx context.Context) (*ExposureEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExposureEventCreate) SaveX(ctx context.Context) *ExposureEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExposureEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := exposureevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExposureEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExposureEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExposureEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExposureEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := exposureevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeatureKey(); !ok {
		return &ValidationError{Name: "feature_key", err: errors.New(`ent: missing required field "ExposureEvent.feature_key"`)}
	}
	if v, ok := _c.mutation.FeatureKey(); ok {
		if err := exposureevent.FeatureKeyValidator(v); err != nil {
			return &ValidationError{Name: "feature_key", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.feature_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExposureType(); !ok {
		return &ValidationError{Name: "exposure_type", err: errors.New(`ent: missing required field "ExposureEvent.exposure_type"`)}
	}
	if v, ok := _c.mutation.ExposureType(); ok {
		if err := exposureevent.ExposureTypeValidator(v); err != nil {
			return &ValidationError{Name: "exposure_type", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.exposure_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExposureEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := exposureevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_c *ExposureEventCreate) sqlSave(ctx context.Context) (*ExposureEvent, error) {
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

func (_c *ExposureEventCreate) createSpec() (*ExposureEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExposureEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exposureevent.Table, sqlgraph.NewFieldSpec(exposureevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(exposureevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(exposureevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(exposureevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FeatureKey(); ok {
		_spec.SetField(exposureevent.FieldFeatureKey, field.TypeString, value)
		_node.FeatureKey = value
	}
	if value, ok := _c.mutation.ExposureType(); ok {
		_spec.SetField(exposureevent.FieldExposureType, field.TypeString, value)
		_node.ExposureType = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(exposureevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ContentID(); ok {
		_spec.SetField(exposureevent.FieldContentID, field.TypeString, value)
		_node.ContentID = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(exposureevent.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExposureEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureEventCreate) OnConflict(opts ...sql.ConflictOption) *ExposureEventUpsertOne {
	_c.conflict = opts
	return &ExposureEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureEventCreate) OnConflictColumns(columns ...string) *ExposureEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureEventUpsertOne{
		create: _c,
	}
}

type (
	// ExposureEventUpsertOne is the builder for "upsert"-ing
	//  one ExposureEvent node.
	ExposureEventUpsertOne struct {
		create *ExposureEventCreate
	}

	// ExposureEventUpsert is the "OnConflict" setter.
	ExposureEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ExposureEventUpsert) SetUserID(v string) *ExposureEventUpsert {
	u.Set(exposureevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateUserID() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldUserID)
	return u
}

// SetFeatureKey sets the "feature_key" field.
func (u *ExposureEventUpsert) SetFeatureKey(v string) *ExposureEventUpsert {
	u.Set(exposureevent.FieldFeatureKey, v)
	return u
}

// UpdateFeatureKey sets the "feature_key" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateFeatureKey() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldFeatureKey)
	return u
}

// SetExposureType sets the "exposure_type" field.
func (u *ExposureEventUpsert) SetExposureType(v string) *ExposureEventUpsert {
	u.Set(exposureevent.FieldExposureType, v)
	return u
}

// UpdateExposureType sets the "exposure_type" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateExposureType() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldExposureType)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ExposureEventUpsert) SetSessionID(v string) *ExposureEventUpsert {
	u.Set(exposureevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateSessionID() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldSessionID)
	return u
}

// SetContentID sets the "content_id" field.
func (u *ExposureEventUpsert) SetContentID(v string) *ExposureEventUpsert {
	u.Set(exposureevent.FieldContentID, v)
	return u
}

// UpdateContentID sets the "content_id" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateContentID() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldContentID)
	return u
}

// ClearContentID clears the value of the "content_id" field.
func (u *ExposureEventUpsert) ClearContentID() *ExposureEventUpsert {
	u.SetNull(exposureevent.FieldContentID)
	return u
}

// SetIsCorrect sets the "is_correct" field.
func (u *ExposureEventUpsert) SetIsCorrect(v bool) *ExposureEventUpsert {
	u.Set(exposureevent.FieldIsCorrect, v)
	return u
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateIsCorrect() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldIsCorrect)
	return u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (u *ExposureEventUpsert) ClearIsCorrect() *ExposureEventUpsert {
	u.SetNull(exposureevent.FieldIsCorrect)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureEventUpsertOne) UpdateNewValues() *ExposureEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(exposureevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(exposureevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExposureEventUpsertOne) Ignore() *ExposureEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureEventUpsertOne) DoNothing() *ExposureEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureEventCreate.OnConflict
// documentation for more info.
func (u *ExposureEventUpsertOne) Update(set func(*ExposureEventUpsert)) *ExposureEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ExposureEventUpsertOne) SetUserID(v string) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateUserID() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateUserID()
	})
}

// SetFeatureKey sets the "feature_key" field.
func (u *ExposureEventUpsertOne) SetFeatureKey(v string) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetFeatureKey(v)
	})
}

// UpdateFeatureKey sets the "feature_key" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateFeatureKey() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateFeatureKey()
	})
}

// SetExposureType sets the "exposure_type" field.
func (u *ExposureEventUpsertOne) SetExposureType(v string) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetExposureType(v)
	})
}

// UpdateExposureType sets the "exposure_type" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateExposureType() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateExposureType()
	})
}

// SetSessionID sets the "session_id" field.
func (u *ExposureEventUpsertOne) SetSessionID(v string) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateSessionID() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetContentID sets the "content_id" field.
func (u *ExposureEventUpsertOne) SetContentID(v string) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetContentID(v)
	})
}

// UpdateContentID sets the "content_id" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateContentID() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateContentID()
	})
}

// ClearContentID clears the value of the "content_id" field.
func (u *ExposureEventUpsertOne) ClearContentID() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.ClearContentID()
	})
}

// SetIsCorrect sets the "is_correct" field.
func (u *ExposureEventUpsertOne) SetIsCorrect(v bool) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetIsCorrect(v)
	})
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateIsCorrect() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateIsCorrect()
	})
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (u *ExposureEventUpsertOne) ClearIsCorrect() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.ClearIsCorrect()
	})
}

// Exec executes the query.
func (u *ExposureEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExposureEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExposureEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExposureEventCreateBulk is the builder for creating many ExposureEvent entities in bulk.
type ExposureEventCreateBulk struct {
	config
	err      error
	builders []*ExposureEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ExposureEvent entities in the database.
func (_c *ExposureEventCreateBulk) Save(ctx context.Context) ([]*ExposureEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExposureEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExposureEventMutation)
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
func (_c *ExposureEventCreateBulk) SaveX(ctx context.Context) []*ExposureEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExposureEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExposureEventUpsertBulk {
	_c.conflict = opts
	return &ExposureEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureEventCreateBulk) OnConflictColumns(columns ...string) *ExposureEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureEventUpsertBulk{
		create: _c,
	}
}

// ExposureEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ExposureEvent nodes.
type ExposureEventUpsertBulk struct {
	create *ExposureEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureEventUpsertBulk) UpdateNewValues() *ExposureEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(exposureevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(exposureevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExposureEventUpsertBulk) Ignore() *ExposureEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureEventUpsertBulk) DoNothing() *ExposureEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureEventCreateBulk.OnConflict
// documentation for more info.
func (u *ExposureEventUpsertBulk) Update(set func(*ExposureEventUpsert)) *ExposureEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ExposureEventUpsertBulk) SetUserID(v string) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateUserID() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateUserID()
	})
}

// SetFeatureKey sets the "feature_key" field.
func (u *ExposureEventUpsertBulk) SetFeatureKey(v string) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetFeatureKey(v)
	})
}

// UpdateFeatureKey sets the "feature_key" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateFeatureKey() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateFeatureKey()
	})
}

// SetExposureType sets the "exposure_type" field.
func (u *ExposureEventUpsertBulk) SetExposureType(v string) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetExposureType(v)
	})
}

// UpdateExposureType sets the "exposure_type" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateExposureType() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateExposureType()
	})
}

// SetSessionID sets the "session_id" field.
func (u *ExposureEventUpsertBulk) SetSessionID(v string) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateSessionID() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetContentID sets the "content_id" field.
func (u *ExposureEventUpsertBulk) SetContentID(v string) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetContentID(v)
	})
}

// UpdateContentID sets the "content_id" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateContentID() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateContentID()
	})
}

// ClearContentID clears the value of the "content_id" field.
func (u *ExposureEventUpsertBulk) ClearContentID() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.ClearContentID()
	})
}

// SetIsCorrect sets the "is_correct" field.
func (u *ExposureEventUpsertBulk) SetIsCorrect(v bool) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetIsCorrect(v)
	})
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateIsCorrect() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateIsCorrect()
	})
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (u *ExposureEventUpsertBulk) ClearIsCorrect() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.ClearIsCorrect()
	})
}

// Exec executes the query.
func (u *ExposureEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExposureEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
