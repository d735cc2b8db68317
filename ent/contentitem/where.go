// Code generated by ent, DO NOT EDIT.

package contentitem

import (
	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldBody, v))
}

// CefrLevel applies equality check predicate on the "cefr_level" field. It's identical to CefrLevelEQ.
func CefrLevel(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldCefrLevel, v))
}

// Modality applies equality check predicate on the "modality" field. It's identical to ModalityEQ.
func Modality(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldModality, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldBody, v))
}

// CefrLevelEQ applies the EQ predicate on the "cefr_level" field.
func CefrLevelEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldCefrLevel, v))
}

// CefrLevelNEQ applies the NEQ predicate on the "cefr_level" field.
func CefrLevelNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldCefrLevel, v))
}

// CefrLevelIn applies the In predicate on the "cefr_level" field.
func CefrLevelIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldCefrLevel, vs...))
}

// CefrLevelNotIn applies the NotIn predicate on the "cefr_level" field.
func CefrLevelNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldCefrLevel, vs...))
}

// CefrLevelGT applies the GT predicate on the "cefr_level" field.
func CefrLevelGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldCefrLevel, v))
}

// CefrLevelGTE applies the GTE predicate on the "cefr_level" field.
func CefrLevelGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldCefrLevel, v))
}

// CefrLevelLT applies the LT predicate on the "cefr_level" field.
func CefrLevelLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldCefrLevel, v))
}

// CefrLevelLTE applies the LTE predicate on the "cefr_level" field.
func CefrLevelLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldCefrLevel, v))
}

// CefrLevelContains applies the Contains predicate on the "cefr_level" field.
func CefrLevelContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldCefrLevel, v))
}

// CefrLevelHasPrefix applies the HasPrefix predicate on the "cefr_level" field.
func CefrLevelHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldCefrLevel, v))
}

// CefrLevelHasSuffix applies the HasSuffix predicate on the "cefr_level" field.
func CefrLevelHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldCefrLevel, v))
}

// CefrLevelEqualFold applies the EqualFold predicate on the "cefr_level" field.
func CefrLevelEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldCefrLevel, v))
}

// CefrLevelContainsFold applies the ContainsFold predicate on the "cefr_level" field.
func CefrLevelContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldCefrLevel, v))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotNull(FieldTopics))
}

// ModalityEQ applies the EQ predicate on the "modality" field.
func ModalityEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEQ(FieldModality, v))
}

// ModalityNEQ applies the NEQ predicate on the "modality" field.
func ModalityNEQ(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNEQ(FieldModality, v))
}

// ModalityIn applies the In predicate on the "modality" field.
func ModalityIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldIn(FieldModality, vs...))
}

// ModalityNotIn applies the NotIn predicate on the "modality" field.
func ModalityNotIn(vs ...string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldNotIn(FieldModality, vs...))
}

// ModalityGT applies the GT predicate on the "modality" field.
func ModalityGT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGT(FieldModality, v))
}

// ModalityGTE applies the GTE predicate on the "modality" field.
func ModalityGTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldGTE(FieldModality, v))
}

// ModalityLT applies the LT predicate on the "modality" field.
func ModalityLT(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLT(FieldModality, v))
}

// ModalityLTE applies the LTE predicate on the "modality" field.
func ModalityLTE(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldLTE(FieldModality, v))
}

// ModalityContains applies the Contains predicate on the "modality" field.
func ModalityContains(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContains(FieldModality, v))
}

// ModalityHasPrefix applies the HasPrefix predicate on the "modality" field.
func ModalityHasPrefix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasPrefix(FieldModality, v))
}

// ModalityHasSuffix applies the HasSuffix predicate on the "modality" field.
func ModalityHasSuffix(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldHasSuffix(FieldModality, v))
}

// ModalityEqualFold applies the EqualFold predicate on the "modality" field.
func ModalityEqualFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldEqualFold(FieldModality, v))
}

// ModalityContainsFold applies the ContainsFold predicate on the "modality" field.
func ModalityContainsFold(v string) predicate.ContentItem {
	return predicate.ContentItem(sql.FieldContainsFold(FieldModality, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentItem) predicate.ContentItem {
	return predicate.ContentItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentItem) predicate.ContentItem {
	return predicate.ContentItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentItem) predicate.ContentItem {
	return predicate.ContentItem(sql.NotPredicates(p))
}
