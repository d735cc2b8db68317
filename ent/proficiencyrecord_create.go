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
	"github.com/lmdrew96/chaoslimba/ent/proficiencyrecord"
)

// ProficiencyRecordCreate is the builder for creating a ProficiencyRecord entity.
type ProficiencyRecordCreate struct {
	config
	mutation *ProficiencyRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ProficiencyRecordCreate) SetSequence(v int64) *ProficiencyRecordCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProficiencyRecordCreate) SetTimestamp(v time.Time) *ProficiencyRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProficiencyRecordCreate) SetNillableTimestamp(v *time.Time) *ProficiencyRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ProficiencyRecordCreate) SetUserID(v string) *ProficiencyRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *ProficiencyRecordCreate) SetOverallScore(v float64) *ProficiencyRecordCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetCefrLevel sets the "cefr_level" field.
func (_c *ProficiencyRecordCreate) SetCefrLevel(v string) *ProficiencyRecordCreate {
	_c.mutation.SetCefrLevel(v)
	return _c
}

// SetListening sets the "listening" field.
func (_c *ProficiencyRecordCreate) SetListening(v float64) *ProficiencyRecordCreate {
	_c.mutation.SetListening(v)
	return _c
}

// SetNillableListening sets the "listening" field if the given value is not nil.
func (_c *ProficiencyRecordCreate) SetNillableListening(v *float64) *ProficiencyRecordCreate {
	if v != nil {
		_c.SetListening(*v)
	}
	return _c
}

// SetReading sets the "reading" field.
func (_c *ProficiencyRecordCreate) SetReading(v float64) *ProficiencyRecordCreate {
	_c.mutation.SetReading(v)
	return _c
}

// SetNillableReading sets the "reading" field if the given value is not nil.
func (_c *ProficiencyRecordCreate) SetNillableReading(v *float64) *ProficiencyRecordCreate {
	if v != nil {
		_c.SetReading(*v)
	}
	return _c
}

// SetSpeaking sets the "speaking" field.
func (_c *ProficiencyRecordCreate) SetSpeaking(v float64) *ProficiencyRecordCreate {
	_c.mutation.SetSpeaking(v)
	return _c
}

// SetNillableSpeaking sets the "speaking" field if the given value is not nil.
func (_c *ProficiencyRecordCreate) SetNillableSpeaking(v *float64) *ProficiencyRecordCreate {
	if v != nil {
		_c.SetSpeaking(*v)
	}
	return _c
}

// SetWriting sets the "writing" field.
func (_c *ProficiencyRecordCreate) SetWriting(v float64) *ProficiencyRecordCreate {
	_c.mutation.SetWriting(v)
	return _c
}

// SetNillableWriting sets the "writing" field if the given value is not nil.
func (_c *ProficiencyRecordCreate) SetNillableWriting(v *float64) *ProficiencyRecordCreate {
	if v != nil {
		_c.SetWriting(*v)
	}
	return _c
}

// Mutation returns the ProficiencyRecordMutation object of the builder.
func (_c *ProficiencyRecordCreate) Mutation() *ProficiencyRecordMutation {
	return _c.mutation
}

// Save creates the ProficiencyRecord in the database.
func (_c *ProficiencyRecordCreate) Save(ctx context.Context) (*ProficiencyRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProficiencyRecordCreate) SaveX(ctx context.Context) *ProficiencyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProficiencyRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProficiencyRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProficiencyRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := proficiencyrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProficiencyRecordCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProficiencyRecord.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProficiencyRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProficiencyRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := proficiencyrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProficiencyRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "ProficiencyRecord.overall_score"`)}
	}
	if _, ok := _c.mutation.CefrLevel(); !ok {
		return &ValidationError{Name: "cefr_level", err: errors.New(`ent: missing required field "ProficiencyRecord.cefr_level"`)}
	}
	if v, ok := _c.mutation.CefrLevel(); ok {
		if err := proficiencyrecord.CefrLevelValidator(v); err != nil {
			return &ValidationError{Name: "cefr_level", err: fmt.Errorf(`ent: validator failed for field "ProficiencyRecord.cefr_level": %w`, err)}
		}
	}
	return nil
}

func (_c *ProficiencyRecordCreate) sqlSave(ctx context.Context) (*ProficiencyRecord, error) {
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

func (_c *ProficiencyRecordCreate) createSpec() (*ProficiencyRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProficiencyRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proficiencyrecord.Table, sqlgraph.NewFieldSpec(proficiencyrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(proficiencyrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(proficiencyrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(proficiencyrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(proficiencyrecord.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.CefrLevel(); ok {
		_spec.SetField(proficiencyrecord.FieldCefrLevel, field.TypeString, value)
		_node.CefrLevel = value
	}
	if value, ok := _c.mutation.Listening(); ok {
		_spec.SetField(proficiencyrecord.FieldListening, field.TypeFloat64, value)
		_node.Listening = &value
	}
	if value, ok := _c.mutation.Reading(); ok {
		_spec.SetField(proficiencyrecord.FieldReading, field.TypeFloat64, value)
		_node.Reading = &value
	}
	if value, ok := _c.mutation.Speaking(); ok {
		_spec.SetField(proficiencyrecord.FieldSpeaking, field.TypeFloat64, value)
		_node.Speaking = &value
	}
	if value, ok := _c.mutation.Writing(); ok {
		_spec.SetField(proficiencyrecord.FieldWriting, field.TypeFloat64, value)
		_node.Writing = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProficiencyRecord.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProficiencyRecordUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ProficiencyRecordCreate) OnConflict(opts ...sql.ConflictOption) *ProficiencyRecordUpsertOne {
	_c.conflict = opts
	return &ProficiencyRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProficiencyRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProficiencyRecordCreate) OnConflictColumns(columns ...string) *ProficiencyRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProficiencyRecordUpsertOne{
		create: _c,
	}
}

type (
	// ProficiencyRecordUpsertOne is the builder for "upsert"-ing
	//  one ProficiencyRecord node.
	ProficiencyRecordUpsertOne struct {
		create *ProficiencyRecordCreate
	}

	// ProficiencyRecordUpsert is the "OnConflict" setter.
	ProficiencyRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ProficiencyRecordUpsert) SetUserID(v string) *ProficiencyRecordUpsert {
	u.Set(proficiencyrecord.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ProficiencyRecordUpsert) UpdateUserID() *ProficiencyRecordUpsert {
	u.SetExcluded(proficiencyrecord.FieldUserID)
	return u
}

// SetOverallScore sets the "overall_score" field.
func (u *ProficiencyRecordUpsert) SetOverallScore(v float64) *ProficiencyRecordUpsert {
	u.Set(proficiencyrecord.FieldOverallScore, v)
	return u
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *ProficiencyRecordUpsert) UpdateOverallScore() *ProficiencyRecordUpsert {
	u.SetExcluded(proficiencyrecord.FieldOverallScore)
	return u
}

// AddOverallScore adds v to the "overall_score" field.
func (u *ProficiencyRecordUpsert) AddOverallScore(v float64) *ProficiencyRecordUpsert {
	u.Add(proficiencyrecord.FieldOverallScore, v)
	return u
}

// SetCefrLevel sets the "cefr_level" field.
func (u *ProficiencyRecordUpsert) SetCefrLevel(v string) *ProficiencyRecordUpsert {
	u.Set(proficiencyrecord.FieldCefrLevel, v)
	return u
}

// UpdateCefrLevel sets the "cefr_level" field to the value that was provided on create.
func (u *ProficiencyRecordUpsert) UpdateCefrLevel() *ProficiencyRecordUpsert {
	u.SetExcluded(proficiencyrecord.FieldCefrLevel)
	return u
}

// SetListening sets the "listening" field.
func (u *ProficiencyRecordUpsert) SetListening(v float64) *ProficiencyRecordUpsert {
	u.Set(proficiencyrecord.FieldListening, v)
	return u
}

// UpdateListening sets the "listening" field to the value that was provided on create.
func (u *ProficiencyRecordUpsert) UpdateListening() *ProficiencyRecordUpsert {
	u.SetExcluded(proficiencyrecord.FieldListening)
	return u
}

// AddListening adds v to the "listening" field.
func (u *ProficiencyRecordUpsert) AddListening(v float64) *ProficiencyRecordUpsert {
	u.Add(proficiencyrecord.FieldListening, v)
	return u
}

// ClearListening clears the value of the "listening" field.
func (u *ProficiencyRecordUpsert) ClearListening() *ProficiencyRecordUpsert {
	u.SetNull(proficiencyrecord.FieldListening)
	return u
}

// SetReading sets the "reading" field.
func (u *ProficiencyRecordUpsert) SetReading(v float64) *ProficiencyRecordUpsert {
	u.Set(proficiencyrecord.FieldReading, v)
	return u
}

// UpdateReading sets the "reading" field to the value that was provided on create.
func (u *ProficiencyRecordUpsert) UpdateReading() *ProficiencyRecordUpsert {
	u.SetExcluded(proficiencyrecord.FieldReading)
	return u
}

// AddReading adds v to the "reading" field.
func (u *ProficiencyRecordUpsert) AddReading(v float64) *ProficiencyRecordUpsert {
	u.Add(proficiencyrecord.FieldReading, v)
	return u
}

// ClearReading clears the value of the "reading" field.
func (u *ProficiencyRecordUpsert) ClearReading() *ProficiencyRecordUpsert {
	u.SetNull(proficiencyrecord.FieldReading)
	return u
}

// SetSpeaking sets the "speaking" field.
func (u *ProficiencyRecordUpsert) SetSpeaking(v float64) *ProficiencyRecordUpsert {
	u.Set(proficiencyrecord.FieldSpeaking, v)
	return u
}

// UpdateSpeaking sets the "speaking" field to the value that was provided on create.
func (u *ProficiencyRecordUpsert) UpdateSpeaking() *ProficiencyRecordUpsert {
	u.SetExcluded(proficiencyrecord.FieldSpeaking)
	return u
}

// AddSpeaking adds v to the "speaking" field.
func (u *ProficiencyRecordUpsert) AddSpeaking(v float64) *ProficiencyRecordUpsert {
	u.Add(proficiencyrecord.FieldSpeaking, v)
	return u
}

// ClearSpeaking clears the value of the "speaking" field.
func (u *ProficiencyRecordUpsert) ClearSpeaking() *ProficiencyRecordUpsert {
	u.SetNull(proficiencyrecord.FieldSpeaking)
	return u
}

// SetWriting sets the "writing" field.
func (u *ProficiencyRecordUpsert) SetWriting(v float64) *ProficiencyRecordUpsert {
	u.Set(proficiencyrecord.FieldWriting, v)
	return u
}

// UpdateWriting sets the "writing" field to the value that was provided on create.
func (u *ProficiencyRecordUpsert) UpdateWriting() *ProficiencyRecordUpsert {
	u.SetExcluded(proficiencyrecord.FieldWriting)
	return u
}

// AddWriting adds v to the "writing" field.
func (u *ProficiencyRecordUpsert) AddWriting(v float64) *ProficiencyRecordUpsert {
	u.Add(proficiencyrecord.FieldWriting, v)
	return u
}

// ClearWriting clears the value of the "writing" field.
func (u *ProficiencyRecordUpsert) ClearWriting() *ProficiencyRecordUpsert {
	u.SetNull(proficiencyrecord.FieldWriting)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ProficiencyRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProficiencyRecordUpsertOne) UpdateNewValues() *ProficiencyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(proficiencyrecord.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(proficiencyrecord.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProficiencyRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProficiencyRecordUpsertOne) Ignore() *ProficiencyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProficiencyRecordUpsertOne) DoNothing() *ProficiencyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProficiencyRecordCreate.OnConflict
// documentation for more info.
func (u *ProficiencyRecordUpsertOne) Update(set func(*ProficiencyRecordUpsert)) *ProficiencyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProficiencyRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ProficiencyRecordUpsertOne) SetUserID(v string) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertOne) UpdateUserID() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *ProficiencyRecordUpsertOne) SetOverallScore(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *ProficiencyRecordUpsertOne) AddOverallScore(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertOne) UpdateOverallScore() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateOverallScore()
	})
}

// SetCefrLevel sets the "cefr_level" field.
func (u *ProficiencyRecordUpsertOne) SetCefrLevel(v string) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetCefrLevel(v)
	})
}

// UpdateCefrLevel sets the "cefr_level" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertOne) UpdateCefrLevel() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateCefrLevel()
	})
}

// SetListening sets the "listening" field.
func (u *ProficiencyRecordUpsertOne) SetListening(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetListening(v)
	})
}

// AddListening adds v to the "listening" field.
func (u *ProficiencyRecordUpsertOne) AddListening(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddListening(v)
	})
}

// UpdateListening sets the "listening" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertOne) UpdateListening() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateListening()
	})
}

// ClearListening clears the value of the "listening" field.
func (u *ProficiencyRecordUpsertOne) ClearListening() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.ClearListening()
	})
}

// SetReading sets the "reading" field.
func (u *ProficiencyRecordUpsertOne) SetReading(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetReading(v)
	})
}

// AddReading adds v to the "reading" field.
func (u *ProficiencyRecordUpsertOne) AddReading(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddReading(v)
	})
}

// UpdateReading sets the "reading" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertOne) UpdateReading() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateReading()
	})
}

// ClearReading clears the value of the "reading" field.
func (u *ProficiencyRecordUpsertOne) ClearReading() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.ClearReading()
	})
}

// SetSpeaking sets the "speaking" field.
func (u *ProficiencyRecordUpsertOne) SetSpeaking(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetSpeaking(v)
	})
}

// AddSpeaking adds v to the "speaking" field.
func (u *ProficiencyRecordUpsertOne) AddSpeaking(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddSpeaking(v)
	})
}

// UpdateSpeaking sets the "speaking" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertOne) UpdateSpeaking() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateSpeaking()
	})
}

// ClearSpeaking clears the value of the "speaking" field.
func (u *ProficiencyRecordUpsertOne) ClearSpeaking() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.ClearSpeaking()
	})
}

// SetWriting sets the "writing" field.
func (u *ProficiencyRecordUpsertOne) SetWriting(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetWriting(v)
	})
}

// AddWriting adds v to the "writing" field.
func (u *ProficiencyRecordUpsertOne) AddWriting(v float64) *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddWriting(v)
	})
}

// UpdateWriting sets the "writing" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertOne) UpdateWriting() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateWriting()
	})
}

// ClearWriting clears the value of the "writing" field.
func (u *ProficiencyRecordUpsertOne) ClearWriting() *ProficiencyRecordUpsertOne {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.ClearWriting()
	})
}

// Exec executes the query.
func (u *ProficiencyRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProficiencyRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProficiencyRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProficiencyRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProficiencyRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProficiencyRecordCreateBulk is the builder for creating many ProficiencyRecord entities in bulk.
type ProficiencyRecordCreateBulk struct {
	config
	err      error
	builders []*ProficiencyRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the ProficiencyRecord entities in the database.
func (_c *ProficiencyRecordCreateBulk) Save(ctx context.Context) ([]*ProficiencyRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProficiencyRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProficiencyRecordMutation)
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
func (_c *ProficiencyRecordCreateBulk) SaveX(ctx context.Context) []*ProficiencyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProficiencyRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProficiencyRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProficiencyRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProficiencyRecordUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ProficiencyRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProficiencyRecordUpsertBulk {
	_c.conflict = opts
	return &ProficiencyRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProficiencyRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProficiencyRecordCreateBulk) OnConflictColumns(columns ...string) *ProficiencyRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProficiencyRecordUpsertBulk{
		create: _c,
	}
}

// ProficiencyRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of ProficiencyRecord nodes.
type ProficiencyRecordUpsertBulk struct {
	create *ProficiencyRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProficiencyRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProficiencyRecordUpsertBulk) UpdateNewValues() *ProficiencyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(proficiencyrecord.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(proficiencyrecord.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProficiencyRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProficiencyRecordUpsertBulk) Ignore() *ProficiencyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProficiencyRecordUpsertBulk) DoNothing() *ProficiencyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProficiencyRecordCreateBulk.OnConflict
// documentation for more info.
func (u *ProficiencyRecordUpsertBulk) Update(set func(*ProficiencyRecordUpsert)) *ProficiencyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProficiencyRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ProficiencyRecordUpsertBulk) SetUserID(v string) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertBulk) UpdateUserID() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *ProficiencyRecordUpsertBulk) SetOverallScore(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *ProficiencyRecordUpsertBulk) AddOverallScore(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertBulk) UpdateOverallScore() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateOverallScore()
	})
}

// SetCefrLevel sets the "cefr_level" field.
func (u *ProficiencyRecordUpsertBulk) SetCefrLevel(v string) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetCefrLevel(v)
	})
}

// UpdateCefrLevel sets the "cefr_level" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertBulk) UpdateCefrLevel() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateCefrLevel()
	})
}

// SetListening sets the "listening" field.
func (u *ProficiencyRecordUpsertBulk) SetListening(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetListening(v)
	})
}

// AddListening adds v to the "listening" field.
func (u *ProficiencyRecordUpsertBulk) AddListening(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddListening(v)
	})
}

// UpdateListening sets the "listening" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertBulk) UpdateListening() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateListening()
	})
}

// ClearListening clears the value of the "listening" field.
func (u *ProficiencyRecordUpsertBulk) ClearListening() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.ClearListening()
	})
}

// SetReading sets the "reading" field.
func (u *ProficiencyRecordUpsertBulk) SetReading(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetReading(v)
	})
}

// AddReading adds v to the "reading" field.
func (u *ProficiencyRecordUpsertBulk) AddReading(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddReading(v)
	})
}

// UpdateReading sets the "reading" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertBulk) UpdateReading() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateReading()
	})
}

// ClearReading clears the value of the "reading" field.
func (u *ProficiencyRecordUpsertBulk) ClearReading() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.ClearReading()
	})
}

// SetSpeaking sets the "speaking" field.
func (u *ProficiencyRecordUpsertBulk) SetSpeaking(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetSpeaking(v)
	})
}

// AddSpeaking adds v to the "speaking" field.
func (u *ProficiencyRecordUpsertBulk) AddSpeaking(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddSpeaking(v)
	})
}

// UpdateSpeaking sets the "speaking" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertBulk) UpdateSpeaking() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateSpeaking()
	})
}

// ClearSpeaking clears the value of the "speaking" field.
func (u *ProficiencyRecordUpsertBulk) ClearSpeaking() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.ClearSpeaking()
	})
}

// SetWriting sets the "writing" field.
func (u *ProficiencyRecordUpsertBulk) SetWriting(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.SetWriting(v)
	})
}

// AddWriting adds v to the "writing" field.
func (u *ProficiencyRecordUpsertBulk) AddWriting(v float64) *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.AddWriting(v)
	})
}

// UpdateWriting sets the "writing" field to the value that was provided on create.
func (u *ProficiencyRecordUpsertBulk) UpdateWriting() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.UpdateWriting()
	})
}

// ClearWriting clears the value of the "writing" field.
func (u *ProficiencyRecordUpsertBulk) ClearWriting() *ProficiencyRecordUpsertBulk {
	return u.Update(func(s *ProficiencyRecordUpsert) {
		s.ClearWriting()
	})
}

// Exec executes the query.
func (u *ProficiencyRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProficiencyRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProficiencyRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProficiencyRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
