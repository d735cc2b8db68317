// Code generated by ent, DO NOT EDIT.

package proficiencyrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldUserID, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldOverallScore, v))
}

// CefrLevel applies equality check predicate on the "cefr_level" field. It's identical to CefrLevelEQ.
func CefrLevel(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldCefrLevel, v))
}

// Listening applies equality check predicate on the "listening" field. It's identical to ListeningEQ.
func Listening(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldListening, v))
}

// Reading applies equality check predicate on the "reading" field. It's identical to ReadingEQ.
func Reading(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldReading, v))
}

// Speaking applies equality check predicate on the "speaking" field. It's identical to SpeakingEQ.
func Speaking(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldSpeaking, v))
}

// Writing applies equality check predicate on the "writing" field. It's identical to WritingEQ.
func Writing(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldWriting, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldContainsFold(FieldUserID, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldOverallScore, v))
}

// CefrLevelEQ applies the EQ predicate on the "cefr_level" field.
func CefrLevelEQ(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldCefrLevel, v))
}

// CefrLevelNEQ applies the NEQ predicate on the "cefr_level" field.
func CefrLevelNEQ(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldCefrLevel, v))
}

// CefrLevelIn applies the In predicate on the "cefr_level" field.
func CefrLevelIn(vs ...string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldCefrLevel, vs...))
}

// CefrLevelNotIn applies the NotIn predicate on the "cefr_level" field.
func CefrLevelNotIn(vs ...string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldCefrLevel, vs...))
}

// CefrLevelGT applies the GT predicate on the "cefr_level" field.
func CefrLevelGT(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldCefrLevel, v))
}

// CefrLevelGTE applies the GTE predicate on the "cefr_level" field.
func CefrLevelGTE(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldCefrLevel, v))
}

// CefrLevelLT applies the LT predicate on the "cefr_level" field.
func CefrLevelLT(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldCefrLevel, v))
}

// CefrLevelLTE applies the LTE predicate on the "cefr_level" field.
func CefrLevelLTE(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldCefrLevel, v))
}

// CefrLevelContains applies the Contains predicate on the "cefr_level" field.
func CefrLevelContains(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldContains(FieldCefrLevel, v))
}

// CefrLevelHasPrefix applies the HasPrefix predicate on the "cefr_level" field.
func CefrLevelHasPrefix(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldHasPrefix(FieldCefrLevel, v))
}

// CefrLevelHasSuffix applies the HasSuffix predicate on the "cefr_level" field.
func CefrLevelHasSuffix(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldHasSuffix(FieldCefrLevel, v))
}

// CefrLevelEqualFold applies the EqualFold predicate on the "cefr_level" field.
func CefrLevelEqualFold(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEqualFold(FieldCefrLevel, v))
}

// CefrLevelContainsFold applies the ContainsFold predicate on the "cefr_level" field.
func CefrLevelContainsFold(v string) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldContainsFold(FieldCefrLevel, v))
}

// ListeningEQ applies the EQ predicate on the "listening" field.
func ListeningEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldListening, v))
}

// ListeningNEQ applies the NEQ predicate on the "listening" field.
func ListeningNEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldListening, v))
}

// ListeningIn applies the In predicate on the "listening" field.
func ListeningIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldListening, vs...))
}

// ListeningNotIn applies the NotIn predicate on the "listening" field.
func ListeningNotIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldListening, vs...))
}

// ListeningGT applies the GT predicate on the "listening" field.
func ListeningGT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldListening, v))
}

// ListeningGTE applies the GTE predicate on the "listening" field.
func ListeningGTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldListening, v))
}

// ListeningLT applies the LT predicate on the "listening" field.
func ListeningLT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldListening, v))
}

// ListeningLTE applies the LTE predicate on the "listening" field.
func ListeningLTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldListening, v))
}

// ListeningIsNil applies the IsNil predicate on the "listening" field.
func ListeningIsNil() predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIsNull(FieldListening))
}

// ListeningNotNil applies the NotNil predicate on the "listening" field.
func ListeningNotNil() predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotNull(FieldListening))
}

// ReadingEQ applies the EQ predicate on the "reading" field.
func ReadingEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldReading, v))
}

// ReadingNEQ applies the NEQ predicate on the "reading" field.
func ReadingNEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldReading, v))
}

// ReadingIn applies the In predicate on the "reading" field.
func ReadingIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldReading, vs...))
}

// ReadingNotIn applies the NotIn predicate on the "reading" field.
func ReadingNotIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldReading, vs...))
}

// ReadingGT applies the GT predicate on the "reading" field.
func ReadingGT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldReading, v))
}

// ReadingGTE applies the GTE predicate on the "reading" field.
func ReadingGTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldReading, v))
}

// ReadingLT applies the LT predicate on the "reading" field.
func ReadingLT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldReading, v))
}

// ReadingLTE applies the LTE predicate on the "reading" field.
func ReadingLTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldReading, v))
}

// ReadingIsNil applies the IsNil predicate on the "reading" field.
func ReadingIsNil() predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIsNull(FieldReading))
}

// ReadingNotNil applies the NotNil predicate on the "reading" field.
func ReadingNotNil() predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotNull(FieldReading))
}

// SpeakingEQ applies the EQ predicate on the "speaking" field.
func SpeakingEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldSpeaking, v))
}

// SpeakingNEQ applies the NEQ predicate on the "speaking" field.
func SpeakingNEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldSpeaking, v))
}

// SpeakingIn applies the In predicate on the "speaking" field.
func SpeakingIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldSpeaking, vs...))
}

// SpeakingNotIn applies the NotIn predicate on the "speaking" field.
func SpeakingNotIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldSpeaking, vs...))
}

// SpeakingGT applies the GT predicate on the "speaking" field.
func SpeakingGT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldSpeaking, v))
}

// SpeakingGTE applies the GTE predicate on the "speaking" field.
func SpeakingGTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldSpeaking, v))
}

// SpeakingLT applies the LT predicate on the "speaking" field.
func SpeakingLT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldSpeaking, v))
}

// SpeakingLTE applies the LTE predicate on the "speaking" field.
func SpeakingLTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldSpeaking, v))
}

// SpeakingIsNil applies the IsNil predicate on the "speaking" field.
func SpeakingIsNil() predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIsNull(FieldSpeaking))
}

// SpeakingNotNil applies the NotNil predicate on the "speaking" field.
func SpeakingNotNil() predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotNull(FieldSpeaking))
}

// WritingEQ applies the EQ predicate on the "writing" field.
func WritingEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldEQ(FieldWriting, v))
}

// WritingNEQ applies the NEQ predicate on the "writing" field.
func WritingNEQ(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNEQ(FieldWriting, v))
}

// WritingIn applies the In predicate on the "writing" field.
func WritingIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIn(FieldWriting, vs...))
}

// WritingNotIn applies the NotIn predicate on the "writing" field.
func WritingNotIn(vs ...float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotIn(FieldWriting, vs...))
}

// WritingGT applies the GT predicate on the "writing" field.
func WritingGT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGT(FieldWriting, v))
}

// WritingGTE applies the GTE predicate on the "writing" field.
func WritingGTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldGTE(FieldWriting, v))
}

// WritingLT applies the LT predicate on the "writing" field.
func WritingLT(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLT(FieldWriting, v))
}

// WritingLTE applies the LTE predicate on the "writing" field.
func WritingLTE(v float64) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldLTE(FieldWriting, v))
}

// WritingIsNil applies the IsNil predicate on the "writing" field.
func WritingIsNil() predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldIsNull(FieldWriting))
}

// WritingNotNil applies the NotNil predicate on the "writing" field.
func WritingNotNil() predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.FieldNotNull(FieldWriting))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProficiencyRecord) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProficiencyRecord) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProficiencyRecord) predicate.ProficiencyRecord {
	return predicate.ProficiencyRecord(sql.NotPredicates(p))
}
