// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/grammarfeature"
)

// GrammarFeature is the model entity for the GrammarFeature schema.
type GrammarFeature struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable key, e.g. definite-article-postposition
	FeatureKey string `json:"feature_key,omitempty"`
	// FeatureName holds the value of the "feature_name" field.
	FeatureName string `json:"feature_name,omitempty"`
	// morphology, syntax, vocabulary, ...
	Category string `json:"category,omitempty"`
	// Level the feature is introduced at: A1..C2
	CefrLevel    string `json:"cefr_level,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GrammarFeature) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case grammarfeature.FieldID:
			values[i] = new(sql.NullInt64)
		case grammarfeature.FieldFeatureKey, grammarfeature.FieldFeatureName, grammarfeature.FieldCategory, grammarfeature.FieldCefrLevel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GrammarFeature fields.
func (_m *GrammarFeature) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case grammarfeature.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case grammarfeature.FieldFeatureKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature_key", values[i])
			} else if value.Valid {
				_m.FeatureKey = value.String
			}
		case grammarfeature.FieldFeatureName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature_name", values[i])
			} else if value.Valid {
				_m.FeatureName = value.String
			}
		case grammarfeature.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case grammarfeature.FieldCefrLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cefr_level", values[i])
			} else if value.Valid {
				_m.CefrLevel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GrammarFeature.
// This includes values selected through modifiers, order, etc.
func (_m *GrammarFeature) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GrammarFeature.
// Note that you need to call GrammarFeature.Unwrap() before calling this method if this GrammarFeature
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GrammarFeature) Update() *GrammarFeatureUpdateOne {
	return NewGrammarFeatureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GrammarFeature entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GrammarFeature) Unwrap() *GrammarFeature {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GrammarFeature is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GrammarFeature) String() string {
	var builder strings.Builder
	builder.WriteString("GrammarFeature(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("feature_key=")
	builder.WriteString(_m.FeatureKey)
	builder.WriteString(", ")
	builder.WriteString("feature_name=")
	builder.WriteString(_m.FeatureName)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("cefr_level=")
	builder.WriteString(_m.CefrLevel)
	builder.WriteByte(')')
	return builder.String()
}

// GrammarFeatures is a parsable slice of GrammarFeature.
type GrammarFeatures []*GrammarFeature
