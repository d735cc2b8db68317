// Code generated by ent, DO NOT EDIT.

package errorpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the errorpattern type in the database.
	Label = "error_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPatternType holds the string denoting the pattern_type field in the database.
	FieldPatternType = "pattern_type"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldLearnerProduction holds the string denoting the learner_production field in the database.
	FieldLearnerProduction = "learner_production"
	// FieldCorrectForm holds the string denoting the correct_form field in the database.
	FieldCorrectForm = "correct_form"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldIsFossilizing holds the string denoting the is_fossilizing field in the database.
	FieldIsFossilizing = "is_fossilizing"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the errorpattern in the database.
	Table = "error_patterns"
)

// Columns holds all SQL columns for errorpattern fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPatternType,
	FieldCategory,
	FieldLearnerProduction,
	FieldCorrectForm,
	FieldConfidence,
	FieldSeverity,
	FieldIsFossilizing,
	FieldCreatedAt,
	FieldResolvedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// PatternTypeValidator is a validator for the "pattern_type" field. It is called by the builders before save.
	PatternTypeValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	SeverityValidator func(string) error
	// DefaultIsFossilizing holds the default value on creation for the "is_fossilizing" field.
	DefaultIsFossilizing bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ErrorPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPatternType orders the results by the pattern_type field.
func ByPatternType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternType, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByLearnerProduction orders the results by the learner_production field.
func ByLearnerProduction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerProduction, opts...).ToFunc()
}

// ByCorrectForm orders the results by the correct_form field.
func ByCorrectForm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectForm, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByIsFossilizing orders the results by the is_fossilizing field.
func ByIsFossilizing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFossilizing, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
