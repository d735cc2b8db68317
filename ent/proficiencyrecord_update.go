// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
	"github.com/lmdrew96/chaoslimba/ent/proficiencyrecord"
)

// ProficiencyRecordUpdate is the builder for updating ProficiencyRecord entities.
type ProficiencyRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProficiencyRecordMutation
}

// Where appends a list predicates to the ProficiencyRecordUpdate builder.
func (_u *ProficiencyRecordUpdate) Where(ps ...predicate.ProficiencyRecord) *ProficiencyRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProficiencyRecordUpdate) SetUserID(v string) *ProficiencyRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProficiencyRecordUpdate) SetNillableUserID(v *string) *ProficiencyRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *ProficiencyRecordUpdate) SetOverallScore(v float64) *ProficiencyRecordUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *ProficiencyRecordUpdate) SetNillableOverallScore(v *float64) *ProficiencyRecordUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *ProficiencyRecordUpdate) AddOverallScore(v float64) *ProficiencyRecordUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetCefrLevel sets the "cefr_level" field.
func (_u *ProficiencyRecordUpdate) SetCefrLevel(v string) *ProficiencyRecordUpdate {
	_u.mutation.SetCefrLevel(v)
	return _u
}

// SetNillableCefrLevel sets the "cefr_level" field if the given value is not nil.
func (_u *ProficiencyRecordUpdate) SetNillableCefrLevel(v *string) *ProficiencyRecordUpdate {
	if v != nil {
		_u.SetCefrLevel(*v)
	}
	return _u
}

// SetListening sets the "listening" field.
func (_u *ProficiencyRecordUpdate) SetListening(v float64) *ProficiencyRecordUpdate {
	_u.mutation.ResetListening()
	_u.mutation.SetListening(v)
	return _u
}

// SetNillableListening sets the "listening" field if the given value is not nil.
func (_u *ProficiencyRecordUpdate) SetNillableListening(v *float64) *ProficiencyRecordUpdate {
	if v != nil {
		_u.SetListening(*v)
	}
	return _u
}

// AddListening adds value to the "listening" field.
func (_u *ProficiencyRecordUpdate) AddListening(v float64) *ProficiencyRecordUpdate {
	_u.mutation.AddListening(v)
	return _u
}

// ClearListening clears the value of the "listening" field.
func (_u *ProficiencyRecordUpdate) ClearListening() *ProficiencyRecordUpdate {
	_u.mutation.ClearListening()
	return _u
}

// SetReading sets the "reading" field.
func (_u *ProficiencyRecordUpdate) SetReading(v float64) *ProficiencyRecordUpdate {
	_u.mutation.ResetReading()
	_u.mutation.SetReading(v)
	return _u
}

// SetNillableReading sets the "reading" field if the given value is not nil.
func (_u *ProficiencyRecordUpdate) SetNillableReading(v *float64) *ProficiencyRecordUpdate {
	if v != nil {
		_u.SetReading(*v)
	}
	return _u
}

// AddReading adds value to the "reading" field.
func (_u *ProficiencyRecordUpdate) AddReading(v float64) *ProficiencyRecordUpdate {
	_u.mutation.AddReading(v)
	return _u
}

// ClearReading clears the value of the "reading" field.
func (_u *ProficiencyRecordUpdate) ClearReading() *ProficiencyRecordUpdate {
	_u.mutation.ClearReading()
	return _u
}

// SetSpeaking sets the "speaking" field.
func (_u *ProficiencyRecordUpdate) SetSpeaking(v float64) *ProficiencyRecordUpdate {
	_u.mutation.ResetSpeaking()
	_u.mutation.SetSpeaking(v)
	return _u
}

// SetNillableSpeaking sets the "speaking" field if the given value is not nil.
func (_u *ProficiencyRecordUpdate) SetNillableSpeaking(v *float64) *ProficiencyRecordUpdate {
	if v != nil {
		_u.SetSpeaking(*v)
	}
	return _u
}

// AddSpeaking adds value to the "speaking" field.
func (_u *ProficiencyRecordUpdate) AddSpeaking(v float64) *ProficiencyRecordUpdate {
	_u.mutation.AddSpeaking(v)
	return _u
}

// ClearSpeaking clears the value of the "speaking" field.
func (_u *ProficiencyRecordUpdate) ClearSpeaking() *ProficiencyRecordUpdate {
	_u.mutation.ClearSpeaking()
	return _u
}

// SetWriting sets the "writing" field.
func (_u *ProficiencyRecordUpdate) SetWriting(v float64) *ProficiencyRecordUpdate {
	_u.mutation.ResetWriting()
	_u.mutation.SetWriting(v)
	return _u
}

// SetNillableWriting sets the "writing" field if the given value is not nil.
func (_u *ProficiencyRecordUpdate) SetNillableWriting(v *float64) *ProficiencyRecordUpdate {
	if v != nil {
		_u.SetWriting(*v)
	}
	return _u
}

// AddWriting adds value to the "writing" field.
func (_u *ProficiencyRecordUpdate) AddWriting(v float64) *ProficiencyRecordUpdate {
	_u.mutation.AddWriting(v)
	return _u
}

// ClearWriting clears the value of the "writing" field.
func (_u *ProficiencyRecordUpdate) ClearWriting() *ProficiencyRecordUpdate {
	_u.mutation.ClearWriting()
	return _u
}

// Mutation returns the ProficiencyRecordMutation object of the builder.
func (_u *ProficiencyRecordUpdate) Mutation() *ProficiencyRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProficiencyRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProficiencyRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProficiencyRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProficiencyRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProficiencyRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := proficiencyrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProficiencyRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CefrLevel(); ok {
		if err := proficiencyrecord.CefrLevelValidator(v); err != nil {
			return &ValidationError{Name: "cefr_level", err: fmt.Errorf(`ent: validator failed for field "ProficiencyRecord.cefr_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProficiencyRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proficiencyrecord.Table, proficiencyrecord.Columns, sqlgraph.NewFieldSpec(proficiencyrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(proficiencyrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(proficiencyrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(proficiencyrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CefrLevel(); ok {
		_spec.SetField(proficiencyrecord.FieldCefrLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Listening(); ok {
		_spec.SetField(proficiencyrecord.FieldListening, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedListening(); ok {
		_spec.AddField(proficiencyrecord.FieldListening, field.TypeFloat64, value)
	}
	if _u.mutation.ListeningCleared() {
		_spec.ClearField(proficiencyrecord.FieldListening, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Reading(); ok {
		_spec.SetField(proficiencyrecord.FieldReading, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReading(); ok {
		_spec.AddField(proficiencyrecord.FieldReading, field.TypeFloat64, value)
	}
	if _u.mutation.ReadingCleared() {
		_spec.ClearField(proficiencyrecord.FieldReading, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Speaking(); ok {
		_spec.SetField(proficiencyrecord.FieldSpeaking, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpeaking(); ok {
		_spec.AddField(proficiencyrecord.FieldSpeaking, field.TypeFloat64, value)
	}
	if _u.mutation.SpeakingCleared() {
		_spec.ClearField(proficiencyrecord.FieldSpeaking, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Writing(); ok {
		_spec.SetField(proficiencyrecord.FieldWriting, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWriting(); ok {
		_spec.AddField(proficiencyrecord.FieldWriting, field.TypeFloat64, value)
	}
	if _u.mutation.WritingCleared() {
		_spec.ClearField(proficiencyrecord.FieldWriting, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proficiencyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProficiencyRecordUpdateOne is the builder for updating a single ProficiencyRecord entity.
type ProficiencyRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProficiencyRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProficiencyRecordUpdateOne) SetUserID(v string) *ProficiencyRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProficiencyRecordUpdateOne) SetNillableUserID(v *string) *ProficiencyRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *ProficiencyRecordUpdateOne) SetOverallScore(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *ProficiencyRecordUpdateOne) SetNillableOverallScore(v *float64) *ProficiencyRecordUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *ProficiencyRecordUpdateOne) AddOverallScore(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetCefrLevel sets the "cefr_level" field.
func (_u *ProficiencyRecordUpdateOne) SetCefrLevel(v string) *ProficiencyRecordUpdateOne {
	_u.mutation.SetCefrLevel(v)
	return _u
}

// SetNillableCefrLevel sets the "cefr_level" field if the given value is not nil.
func (_u *ProficiencyRecordUpdateOne) SetNillableCefrLevel(v *string) *ProficiencyRecordUpdateOne {
	if v != nil {
		_u.SetCefrLevel(*v)
	}
	return _u
}

// SetListening sets the "listening" field.
func (_u *ProficiencyRecordUpdateOne) SetListening(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.ResetListening()
	_u.mutation.SetListening(v)
	return _u
}

// SetNillableListening sets the "listening" field if the given value is not nil.
func (_u *ProficiencyRecordUpdateOne) SetNillableListening(v *float64) *ProficiencyRecordUpdateOne {
	if v != nil {
		_u.SetListening(*v)
	}
	return _u
}

// AddListening adds value to the "listening" field.
func (_u *ProficiencyRecordUpdateOne) AddListening(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.AddListening(v)
	return _u
}

// ClearListening clears the value of the "listening" field.
func (_u *ProficiencyRecordUpdateOne) ClearListening() *ProficiencyRecordUpdateOne {
	_u.mutation.ClearListening()
	return _u
}

// SetReading sets the "reading" field.
func (_u *ProficiencyRecordUpdateOne) SetReading(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.ResetReading()
	_u.mutation.SetReading(v)
	return _u
}

// SetNillableReading sets the "reading" field if the given value is not nil.
func (_u *ProficiencyRecordUpdateOne) SetNillableReading(v *float64) *ProficiencyRecordUpdateOne {
	if v != nil {
		_u.SetReading(*v)
	}
	return _u
}

// AddReading adds value to the "reading" field.
func (_u *ProficiencyRecordUpdateOne) AddReading(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.AddReading(v)
	return _u
}

// ClearReading clears the value of the "reading" field.
func (_u *ProficiencyRecordUpdateOne) ClearReading() *ProficiencyRecordUpdateOne {
	_u.mutation.ClearReading()
	return _u
}

// SetSpeaking sets the "speaking" field.
func (_u *ProficiencyRecordUpdateOne) SetSpeaking(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.ResetSpeaking()
	_u.mutation.SetSpeaking(v)
	return _u
}

// SetNillableSpeaking sets the "speaking" field if the given value is not nil.
func (_u *ProficiencyRecordUpdateOne) SetNillableSpeaking(v *float64) *ProficiencyRecordUpdateOne {
	if v != nil {
		_u.SetSpeaking(*v)
	}
	return _u
}

// AddSpeaking adds value to the "speaking" field.
func (_u *ProficiencyRecordUpdateOne) AddSpeaking(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.AddSpeaking(v)
	return _u
}

// ClearSpeaking clears the value of the "speaking" field.
func (_u *ProficiencyRecordUpdateOne) ClearSpeaking() *ProficiencyRecordUpdateOne {
	_u.mutation.ClearSpeaking()
	return _u
}

// SetWriting sets the "writing" field.
func (_u *ProficiencyRecordUpdateOne) SetWriting(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.ResetWriting()
	_u.mutation.SetWriting(v)
	return _u
}

// SetNillableWriting sets the "writing" field if the given value is not nil.
func (_u *ProficiencyRecordUpdateOne) SetNillableWriting(v *float64) *ProficiencyRecordUpdateOne {
	if v != nil {
		_u.SetWriting(*v)
	}
	return _u
}

// AddWriting adds value to the "writing" field.
func (_u *ProficiencyRecordUpdateOne) AddWriting(v float64) *ProficiencyRecordUpdateOne {
	_u.mutation.AddWriting(v)
	return _u
}

// ClearWriting clears the value of the "writing" field.
func (_u *ProficiencyRecordUpdateOne) ClearWriting() *ProficiencyRecordUpdateOne {
	_u.mutation.ClearWriting()
	return _u
}

// Mutation returns the ProficiencyRecordMutation object of the builder.
func (_u *ProficiencyRecordUpdateOne) Mutation() *ProficiencyRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProficiencyRecordUpdate builder.
func (_u *ProficiencyRecordUpdateOne) Where(ps ...predicate.ProficiencyRecord) *ProficiencyRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProficiencyRecordUpdateOne) Select(field string, fields ...string) *ProficiencyRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProficiencyRecord entity.
func (_u *ProficiencyRecordUpdateOne) Save(ctx context.Context) (*ProficiencyRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProficiencyRecordUpdateOne) SaveX(ctx context.Context) *ProficiencyRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProficiencyRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProficiencyRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProficiencyRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := proficiencyrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProficiencyRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CefrLevel(); ok {
		if err := proficiencyrecord.CefrLevelValidator(v); err != nil {
			return &ValidationError{Name: "cefr_level", err: fmt.Errorf(`ent: validator failed for field "ProficiencyRecord.cefr_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProficiencyRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProficiencyRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proficiencyrecord.Table, proficiencyrecord.Columns, sqlgraph.NewFieldSpec(proficiencyrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProficiencyRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proficiencyrecord.FieldID)
		for _, f := range fields {
			if !proficiencyrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proficiencyrecord.FieldID {
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
		_spec.SetField(proficiencyrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(proficiencyrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(proficiencyrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CefrLevel(); ok {
		_spec.SetField(proficiencyrecord.FieldCefrLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Listening(); ok {
		_spec.SetField(proficiencyrecord.FieldListening, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedListening(); ok {
		_spec.AddField(proficiencyrecord.FieldListening, field.TypeFloat64, value)
	}
	if _u.mutation.ListeningCleared() {
		_spec.ClearField(proficiencyrecord.FieldListening, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Reading(); ok {
		_spec.SetField(proficiencyrecord.FieldReading, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReading(); ok {
		_spec.AddField(proficiencyrecord.FieldReading, field.TypeFloat64, value)
	}
	if _u.mutation.ReadingCleared() {
		_spec.ClearField(proficiencyrecord.FieldReading, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Speaking(); ok {
		_spec.SetField(proficiencyrecord.FieldSpeaking, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpeaking(); ok {
		_spec.AddField(proficiencyrecord.FieldSpeaking, field.TypeFloat64, value)
	}
	if _u.mutation.SpeakingCleared() {
		_spec.ClearField(proficiencyrecord.FieldSpeaking, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Writing(); ok {
		_spec.SetField(proficiencyrecord.FieldWriting, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWriting(); ok {
		_spec.AddField(proficiencyrecord.FieldWriting, field.TypeFloat64, value)
	}
	if _u.mutation.WritingCleared() {
		_spec.ClearField(proficiencyrecord.FieldWriting, field.TypeFloat64)
	}
	_node = &ProficiencyRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proficiencyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
