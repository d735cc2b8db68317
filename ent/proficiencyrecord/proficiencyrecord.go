// Code generated by ent, DO NOT EDIT.

package proficiencyrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the proficiencyrecord type in the database.
	Label = "proficiency_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldCefrLevel holds the string denoting the cefr_level field in the database.
	FieldCefrLevel = "cefr_level"
	// FieldListening holds the string denoting the listening field in the database.
	FieldListening = "listening"
	// FieldReading holds the string denoting the reading field in the database.
	FieldReading = "reading"
	// FieldSpeaking holds the string denoting the speaking field in the database.
	FieldSpeaking = "speaking"
	// FieldWriting holds the string denoting the writing field in the database.
	FieldWriting = "writing"
	// Table holds the table name of the proficiencyrecord in the database.
	Table = "proficiency_records"
)

// Columns holds all SQL columns for proficiencyrecord fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldOverallScore,
	FieldCefrLevel,
	FieldListening,
	FieldReading,
	FieldSpeaking,
	FieldWriting,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// CefrLevelValidator is a validator for the "cefr_level" field. It is called by the builders before save.
	CefrLevelValidator func(string) error
)

// OrderOption defines the ordering options for the ProficiencyRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByCefrLevel orders the results by the cefr_level field.
func ByCefrLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCefrLevel, opts...).ToFunc()
}

// ByListening orders the results by the listening field.
func ByListening(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListening, opts...).ToFunc()
}

// ByReading orders the results by the reading field.
func ByReading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReading, opts...).ToFunc()
}

// BySpeaking orders the results by the speaking field.
func BySpeaking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeaking, opts...).ToFunc()
}

// ByWriting orders the results by the writing field.
func ByWriting(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWriting, opts...).ToFunc()
}
