// Code generated by ent, DO NOT EDIT.

package grammarfeature

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the grammarfeature type in the database.
	Label = "grammar_feature"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFeatureKey holds the string denoting the feature_key field in the database.
	FieldFeatureKey = "feature_key"
	// FieldFeatureName holds the string denoting the feature_name field in the database.
	FieldFeatureName = "feature_name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCefrLevel holds the string denoting the cefr_level field in the database.
	FieldCefrLevel = "cefr_level"
	// Table holds the table name of the grammarfeature in the database.
	Table = "grammar_features"
)

// Columns holds all SQL columns for grammarfeature fields.
var Columns = []string{
	FieldID,
	FieldFeatureKey,
	FieldFeatureName,
	FieldCategory,
	FieldCefrLevel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FeatureKeyValidator is a validator for the "feature_key" field. It is called by the builders before save.
	FeatureKeyValidator func(string) error
	// FeatureNameValidator is a validator for the "feature_name" field. It is called by the builders before save.
	FeatureNameValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// CefrLevelValidator is a validator for the "cefr_level" field. It is called by the builders before save.
	CefrLevelValidator func(string) error
)

// OrderOption defines the ordering options for the GrammarFeature queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFeatureKey orders the results by the feature_key field.
func ByFeatureKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureKey, opts...).ToFunc()
}

// ByFeatureName orders the results by the feature_name field.
func ByFeatureName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCefrLevel orders the results by the cefr_level field.
func ByCefrLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCefrLevel, opts...).ToFunc()
}
