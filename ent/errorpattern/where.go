// Code generated by ent, DO NOT EDIT.

package errorpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldUserID, v))
}

// PatternType applies equality check predicate on the "pattern_type" field. It's identical to PatternTypeEQ.
func PatternType(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldPatternType, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldCategory, v))
}

// LearnerProduction applies equality check predicate on the "learner_production" field. It's identical to LearnerProductionEQ.
func LearnerProduction(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldLearnerProduction, v))
}

// CorrectForm applies equality check predicate on the "correct_form" field. It's identical to CorrectFormEQ.
func CorrectForm(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldCorrectForm, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldConfidence, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldSeverity, v))
}

// IsFossilizing applies equality check predicate on the "is_fossilizing" field. It's identical to IsFossilizingEQ.
func IsFossilizing(v bool) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldIsFossilizing, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldResolvedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldUserID, v))
}

// PatternTypeEQ applies the EQ predicate on the "pattern_type" field.
func PatternTypeEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldPatternType, v))
}

// PatternTypeNEQ applies the NEQ predicate on the "pattern_type" field.
func PatternTypeNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldPatternType, v))
}

// PatternTypeIn applies the In predicate on the "pattern_type" field.
func PatternTypeIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldPatternType, vs...))
}

// PatternTypeNotIn applies the NotIn predicate on the "pattern_type" field.
func PatternTypeNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldPatternType, vs...))
}

// PatternTypeGT applies the GT predicate on the "pattern_type" field.
func PatternTypeGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldPatternType, v))
}

// PatternTypeGTE applies the GTE predicate on the "pattern_type" field.
func PatternTypeGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldPatternType, v))
}

// PatternTypeLT applies the LT predicate on the "pattern_type" field.
func PatternTypeLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldPatternType, v))
}

// PatternTypeLTE applies the LTE predicate on the "pattern_type" field.
func PatternTypeLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldPatternType, v))
}

// PatternTypeContains applies the Contains predicate on the "pattern_type" field.
func PatternTypeContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldPatternType, v))
}

// PatternTypeHasPrefix applies the HasPrefix predicate on the "pattern_type" field.
func PatternTypeHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldPatternType, v))
}

// PatternTypeHasSuffix applies the HasSuffix predicate on the "pattern_type" field.
func PatternTypeHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldPatternType, v))
}

// PatternTypeEqualFold applies the EqualFold predicate on the "pattern_type" field.
func PatternTypeEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldPatternType, v))
}

// PatternTypeContainsFold applies the ContainsFold predicate on the "pattern_type" field.
func PatternTypeContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldPatternType, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldCategory, v))
}

// LearnerProductionEQ applies the EQ predicate on the "learner_production" field.
func LearnerProductionEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldLearnerProduction, v))
}

// LearnerProductionNEQ applies the NEQ predicate on the "learner_production" field.
func LearnerProductionNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldLearnerProduction, v))
}

// LearnerProductionIn applies the In predicate on the "learner_production" field.
func LearnerProductionIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldLearnerProduction, vs...))
}

// LearnerProductionNotIn applies the NotIn predicate on the "learner_production" field.
func LearnerProductionNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldLearnerProduction, vs...))
}

// LearnerProductionGT applies the GT predicate on the "learner_production" field.
func LearnerProductionGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldLearnerProduction, v))
}

// LearnerProductionGTE applies the GTE predicate on the "learner_production" field.
func LearnerProductionGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldLearnerProduction, v))
}

// LearnerProductionLT applies the LT predicate on the "learner_production" field.
func LearnerProductionLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldLearnerProduction, v))
}

// LearnerProductionLTE applies the LTE predicate on the "learner_production" field.
func LearnerProductionLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldLearnerProduction, v))
}

// LearnerProductionContains applies the Contains predicate on the "learner_production" field.
func LearnerProductionContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldLearnerProduction, v))
}

// LearnerProductionHasPrefix applies the HasPrefix predicate on the "learner_production" field.
func LearnerProductionHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldLearnerProduction, v))
}

// LearnerProductionHasSuffix applies the HasSuffix predicate on the "learner_production" field.
func LearnerProductionHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldLearnerProduction, v))
}

// LearnerProductionEqualFold applies the EqualFold predicate on the "learner_production" field.
func LearnerProductionEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldLearnerProduction, v))
}

// LearnerProductionContainsFold applies the ContainsFold predicate on the "learner_production" field.
func LearnerProductionContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldLearnerProduction, v))
}

// CorrectFormEQ applies the EQ predicate on the "correct_form" field.
func CorrectFormEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldCorrectForm, v))
}

// CorrectFormNEQ applies the NEQ predicate on the "correct_form" field.
func CorrectFormNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldCorrectForm, v))
}

// CorrectFormIn applies the In predicate on the "correct_form" field.
func CorrectFormIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldCorrectForm, vs...))
}

// CorrectFormNotIn applies the NotIn predicate on the "correct_form" field.
func CorrectFormNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldCorrectForm, vs...))
}

// CorrectFormGT applies the GT predicate on the "correct_form" field.
func CorrectFormGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldCorrectForm, v))
}

// CorrectFormGTE applies the GTE predicate on the "correct_form" field.
func CorrectFormGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldCorrectForm, v))
}

// CorrectFormLT applies the LT predicate on the "correct_form" field.
func CorrectFormLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldCorrectForm, v))
}

// CorrectFormLTE applies the LTE predicate on the "correct_form" field.
func CorrectFormLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldCorrectForm, v))
}

// CorrectFormContains applies the Contains predicate on the "correct_form" field.
func CorrectFormContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldCorrectForm, v))
}

// CorrectFormHasPrefix applies the HasPrefix predicate on the "correct_form" field.
func CorrectFormHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldCorrectForm, v))
}

// CorrectFormHasSuffix applies the HasSuffix predicate on the "correct_form" field.
func CorrectFormHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldCorrectForm, v))
}

// CorrectFormEqualFold applies the EqualFold predicate on the "correct_form" field.
func CorrectFormEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldCorrectForm, v))
}

// CorrectFormContainsFold applies the ContainsFold predicate on the "correct_form" field.
func CorrectFormContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldCorrectForm, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldConfidence, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldSeverity, v))
}

// IsFossilizingEQ applies the EQ predicate on the "is_fossilizing" field.
func IsFossilizingEQ(v bool) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldIsFossilizing, v))
}

// IsFossilizingNEQ applies the NEQ predicate on the "is_fossilizing" field.
func IsFossilizingNEQ(v bool) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldIsFossilizing, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ErrorPattern) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ErrorPattern) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ErrorPattern) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.NotPredicates(p))
}
