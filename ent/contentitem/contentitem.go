// Code generated by ent, DO NOT EDIT.

package contentitem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contentitem type in the database.
	Label = "content_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldCefrLevel holds the string denoting the cefr_level field in the database.
	FieldCefrLevel = "cefr_level"
	// FieldFeatureKeys holds the string denoting the feature_keys field in the database.
	FieldFeatureKeys = "feature_keys"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldModality holds the string denoting the modality field in the database.
	FieldModality = "modality"
	// Table holds the table name of the contentitem in the database.
	Table = "content_items"
)

// Columns holds all SQL columns for contentitem fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldBody,
	FieldCefrLevel,
	FieldFeatureKeys,
	FieldTopics,
	FieldModality,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// BodyValidator is a validator for the "body" field. It is called by the builders before save.
	BodyValidator func(string) error
	// CefrLevelValidator is a validator for the "cefr_level" field. It is called by the builders before save.
	CefrLevelValidator func(string) error
	// DefaultModality holds the default value on creation for the "modality" field.
	DefaultModality string
)

// OrderOption defines the ordering options for the ContentItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByCefrLevel orders the results by the cefr_level field.
func ByCefrLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCefrLevel, opts...).ToFunc()
}

// ByModality orders the results by the modality field.
func ByModality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModality, opts...).ToFunc()
}
