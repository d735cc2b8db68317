// Code generated by ent, DO NOT EDIT.

package exposureevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldUserID, v))
}

// FeatureKey applies equality check predicate on the "feature_key" field. It's identical to FeatureKeyEQ.
func FeatureKey(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldFeatureKey, v))
}

// ExposureType applies equality check predicate on the "exposure_type" field. It's identical to ExposureTypeEQ.
func ExposureType(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldExposureType, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSessionID, v))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldContentID, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldIsCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContainsFold(FieldUserID, v))
}

// FeatureKeyEQ applies the EQ predicate on the "feature_key" field.
func FeatureKeyEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldFeatureKey, v))
}

// FeatureKeyNEQ applies the NEQ predicate on the "feature_key" field.
func FeatureKeyNEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldFeatureKey, v))
}

// FeatureKeyIn applies the In predicate on the "feature_key" field.
func FeatureKeyIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldFeatureKey, vs...))
}

// FeatureKeyNotIn applies the NotIn predicate on the "feature_key" field.
func FeatureKeyNotIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldFeatureKey, vs...))
}

// FeatureKeyGT applies the GT predicate on the "feature_key" field.
func FeatureKeyGT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldFeatureKey, v))
}

// FeatureKeyGTE applies the GTE predicate on the "feature_key" field.
func FeatureKeyGTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldFeatureKey, v))
}

// FeatureKeyLT applies the LT predicate on the "feature_key" field.
func FeatureKeyLT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldFeatureKey, v))
}

// FeatureKeyLTE applies the LTE predicate on the "feature_key" field.
func FeatureKeyLTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldFeatureKey, v))
}

// FeatureKeyContains applies the Contains predicate on the "feature_key" field.
func FeatureKeyContains(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContains(FieldFeatureKey, v))
}

// FeatureKeyHasPrefix applies the HasPrefix predicate on the "feature_key" field.
func FeatureKeyHasPrefix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasPrefix(FieldFeatureKey, v))
}

// FeatureKeyHasSuffix applies the HasSuffix predicate on the "feature_key" field.
func FeatureKeyHasSuffix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasSuffix(FieldFeatureKey, v))
}

// FeatureKeyEqualFold applies the EqualFold predicate on the "feature_key" field.
func FeatureKeyEqualFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEqualFold(FieldFeatureKey, v))
}

// FeatureKeyContainsFold applies the ContainsFold predicate on the "feature_key" field.
func FeatureKeyContainsFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContainsFold(FieldFeatureKey, v))
}

// ExposureTypeEQ applies the EQ predicate on the "exposure_type" field.
func ExposureTypeEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldExposureType, v))
}

// ExposureTypeNEQ applies the NEQ predicate on the "exposure_type" field.
func ExposureTypeNEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldExposureType, v))
}

// ExposureTypeIn applies the In predicate on the "exposure_type" field.
func ExposureTypeIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldExposureType, vs...))
}

// ExposureTypeNotIn applies the NotIn predicate on the "exposure_type" field.
func ExposureTypeNotIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldExposureType, vs...))
}

// ExposureTypeGT applies the GT predicate on the "exposure_type" field.
func ExposureTypeGT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldExposureType, v))
}

// ExposureTypeGTE applies the GTE predicate on the "exposure_type" field.
func ExposureTypeGTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldExposureType, v))
}

// ExposureTypeLT applies the LT predicate on the "exposure_type" field.
func ExposureTypeLT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldExposureType, v))
}

// ExposureTypeLTE applies the LTE predicate on the "exposure_type" field.
func ExposureTypeLTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldExposureType, v))
}

// ExposureTypeContains applies the Contains predicate on the "exposure_type" field.
func ExposureTypeContains(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContains(FieldExposureType, v))
}

// ExposureTypeHasPrefix applies the HasPrefix predicate on the "exposure_type" field.
func ExposureTypeHasPrefix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasPrefix(FieldExposureType, v))
}

// ExposureTypeHasSuffix applies the HasSuffix predicate on the "exposure_type" field.
func ExposureTypeHasSuffix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasSuffix(FieldExposureType, v))
}

// ExposureTypeEqualFold applies the EqualFold predicate on the "exposure_type" field.
func ExposureTypeEqualFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEqualFold(FieldExposureType, v))
}

// ExposureTypeContainsFold applies the ContainsFold predicate on the "exposure_type" field.
func ExposureTypeContainsFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContainsFold(FieldExposureType, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldContentID, v))
}

// ContentIDContains applies the Contains predicate on the "content_id" field.
func ContentIDContains(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContains(FieldContentID, v))
}

// ContentIDHasPrefix applies the HasPrefix predicate on the "content_id" field.
func ContentIDHasPrefix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasPrefix(FieldContentID, v))
}

// ContentIDHasSuffix applies the HasSuffix predicate on the "content_id" field.
func ContentIDHasSuffix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasSuffix(FieldContentID, v))
}

// ContentIDIsNil applies the IsNil predicate on the "content_id" field.
func ContentIDIsNil() predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIsNull(FieldContentID))
}

// ContentIDNotNil applies the NotNil predicate on the "content_id" field.
func ContentIDNotNil() predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotNull(FieldContentID))
}

// ContentIDEqualFold applies the EqualFold predicate on the "content_id" field.
func ContentIDEqualFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEqualFold(FieldContentID, v))
}

// ContentIDContainsFold applies the ContainsFold predicate on the "content_id" field.
func ContentIDContainsFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContainsFold(FieldContentID, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldIsCorrect, v))
}

// IsCorrectIsNil applies the IsNil predicate on the "is_correct" field.
func IsCorrectIsNil() predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIsNull(FieldIsCorrect))
}

// IsCorrectNotNil applies the NotNil predicate on the "is_correct" field.
func IsCorrectNotNil() predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotNull(FieldIsCorrect))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExposureEvent) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExposureEvent) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExposureEvent) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.NotPredicates(p))
}
