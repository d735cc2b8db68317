// Code generated by ent, DO NOT EDIT.

package grammarfeature

import (
	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLTE(FieldID, id))
}

// FeatureKey applies equality check predicate on the "feature_key" field. It's identical to FeatureKeyEQ.
func FeatureKey(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldFeatureKey, v))
}

// FeatureName applies equality check predicate on the "feature_name" field. It's identical to FeatureNameEQ.
func FeatureName(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldFeatureName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldCategory, v))
}

// CefrLevel applies equality check predicate on the "cefr_level" field. It's identical to CefrLevelEQ.
func CefrLevel(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldCefrLevel, v))
}

// FeatureKeyEQ applies the EQ predicate on the "feature_key" field.
func FeatureKeyEQ(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldFeatureKey, v))
}

// FeatureKeyNEQ applies the NEQ predicate on the "feature_key" field.
func FeatureKeyNEQ(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNEQ(FieldFeatureKey, v))
}

// FeatureKeyIn applies the In predicate on the "feature_key" field.
func FeatureKeyIn(vs ...string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldIn(FieldFeatureKey, vs...))
}

// FeatureKeyNotIn applies the NotIn predicate on the "feature_key" field.
func FeatureKeyNotIn(vs ...string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNotIn(FieldFeatureKey, vs...))
}

// FeatureKeyGT applies the GT predicate on the "feature_key" field.
func FeatureKeyGT(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGT(FieldFeatureKey, v))
}

// FeatureKeyGTE applies the GTE predicate on the "feature_key" field.
func FeatureKeyGTE(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGTE(FieldFeatureKey, v))
}

// FeatureKeyLT applies the LT predicate on the "feature_key" field.
func FeatureKeyLT(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLT(FieldFeatureKey, v))
}

// FeatureKeyLTE applies the LTE predicate on the "feature_key" field.
func FeatureKeyLTE(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLTE(FieldFeatureKey, v))
}

// FeatureKeyContains applies the Contains predicate on the "feature_key" field.
func FeatureKeyContains(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldContains(FieldFeatureKey, v))
}

// FeatureKeyHasPrefix applies the HasPrefix predicate on the "feature_key" field.
func FeatureKeyHasPrefix(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldHasPrefix(FieldFeatureKey, v))
}

// FeatureKeyHasSuffix applies the HasSuffix predicate on the "feature_key" field.
func FeatureKeyHasSuffix(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldHasSuffix(FieldFeatureKey, v))
}

// FeatureKeyEqualFold applies the EqualFold predicate on the "feature_key" field.
func FeatureKeyEqualFold(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEqualFold(FieldFeatureKey, v))
}

// FeatureKeyContainsFold applies the ContainsFold predicate on the "feature_key" field.
func FeatureKeyContainsFold(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldContainsFold(FieldFeatureKey, v))
}

// FeatureNameEQ applies the EQ predicate on the "feature_name" field.
func FeatureNameEQ(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldFeatureName, v))
}

// FeatureNameNEQ applies the NEQ predicate on the "feature_name" field.
func FeatureNameNEQ(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNEQ(FieldFeatureName, v))
}

// FeatureNameIn applies the In predicate on the "feature_name" field.
func FeatureNameIn(vs ...string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldIn(FieldFeatureName, vs...))
}

// FeatureNameNotIn applies the NotIn predicate on the "feature_name" field.
func FeatureNameNotIn(vs ...string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNotIn(FieldFeatureName, vs...))
}

// FeatureNameGT applies the GT predicate on the "feature_name" field.
func FeatureNameGT(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGT(FieldFeatureName, v))
}

// FeatureNameGTE applies the GTE predicate on the "feature_name" field.
func FeatureNameGTE(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGTE(FieldFeatureName, v))
}

// FeatureNameLT applies the LT predicate on the "feature_name" field.
func FeatureNameLT(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLT(FieldFeatureName, v))
}

// FeatureNameLTE applies the LTE predicate on the "feature_name" field.
func FeatureNameLTE(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLTE(FieldFeatureName, v))
}

// FeatureNameContains applies the Contains predicate on the "feature_name" field.
func FeatureNameContains(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldContains(FieldFeatureName, v))
}

// FeatureNameHasPrefix applies the HasPrefix predicate on the "feature_name" field.
func FeatureNameHasPrefix(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldHasPrefix(FieldFeatureName, v))
}

// FeatureNameHasSuffix applies the HasSuffix predicate on the "feature_name" field.
func FeatureNameHasSuffix(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldHasSuffix(FieldFeatureName, v))
}

// FeatureNameEqualFold applies the EqualFold predicate on the "feature_name" field.
func FeatureNameEqualFold(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEqualFold(FieldFeatureName, v))
}

// FeatureNameContainsFold applies the ContainsFold predicate on the "feature_name" field.
func FeatureNameContainsFold(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldContainsFold(FieldFeatureName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldContainsFold(FieldCategory, v))
}

// CefrLevelEQ applies the EQ predicate on the "cefr_level" field.
func CefrLevelEQ(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEQ(FieldCefrLevel, v))
}

// CefrLevelNEQ applies the NEQ predicate on the "cefr_level" field.
func CefrLevelNEQ(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNEQ(FieldCefrLevel, v))
}

// CefrLevelIn applies the In predicate on the "cefr_level" field.
func CefrLevelIn(vs ...string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldIn(FieldCefrLevel, vs...))
}

// CefrLevelNotIn applies the NotIn predicate on the "cefr_level" field.
func CefrLevelNotIn(vs ...string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldNotIn(FieldCefrLevel, vs...))
}

// CefrLevelGT applies the GT predicate on the "cefr_level" field.
func CefrLevelGT(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGT(FieldCefrLevel, v))
}

// CefrLevelGTE applies the GTE predicate on the "cefr_level" field.
func CefrLevelGTE(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldGTE(FieldCefrLevel, v))
}

// CefrLevelLT applies the LT predicate on the "cefr_level" field.
func CefrLevelLT(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLT(FieldCefrLevel, v))
}

// CefrLevelLTE applies the LTE predicate on the "cefr_level" field.
func CefrLevelLTE(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldLTE(FieldCefrLevel, v))
}

// CefrLevelContains applies the Contains predicate on the "cefr_level" field.
func CefrLevelContains(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldContains(FieldCefrLevel, v))
}

// CefrLevelHasPrefix applies the HasPrefix predicate on the "cefr_level" field.
func CefrLevelHasPrefix(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldHasPrefix(FieldCefrLevel, v))
}

// CefrLevelHasSuffix applies the HasSuffix predicate on the "cefr_level" field.
func CefrLevelHasSuffix(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldHasSuffix(FieldCefrLevel, v))
}

// CefrLevelEqualFold applies the EqualFold predicate on the "cefr_level" field.
func CefrLevelEqualFold(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldEqualFold(FieldCefrLevel, v))
}

// CefrLevelContainsFold applies the ContainsFold predicate on the "cefr_level" field.
func CefrLevelContainsFold(v string) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.FieldContainsFold(FieldCefrLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GrammarFeature) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GrammarFeature) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GrammarFeature) predicate.GrammarFeature {
	return predicate.GrammarFeature(sql.NotPredicates(p))
}
