// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/errorpattern"
)

// ErrorPattern is the model entity for the ErrorPattern schema.
type ErrorPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// grammar, pronunciation, vocabulary, or word_order
	PatternType string `json:"pattern_type,omitempty"`
	// Fine-grained label from the analyzer, e.g. verb-agreement
	Category string `json:"category,omitempty"`
	// What the learner actually said or wrote
	LearnerProduction string `json:"learner_production,omitempty"`
	// The corrected form
	CorrectForm string `json:"correct_form,omitempty"`
	// Analyzer confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// low, medium, or high; derived from confidence
	Severity string `json:"severity,omitempty"`
	// Pattern persists despite repeated correction
	IsFossilizing bool `json:"is_fossilizing,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ErrorPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case errorpattern.FieldIsFossilizing:
			values[i] = new(sql.NullBool)
		case errorpattern.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case errorpattern.FieldID:
			values[i] = new(sql.NullInt64)
		case errorpattern.FieldUserID, errorpattern.FieldPatternType, errorpattern.FieldCategory, errorpattern.FieldLearnerProduction, errorpattern.FieldCorrectForm, errorpattern.FieldSeverity:
			values[i] = new(sql.NullString)
		case errorpattern.FieldCreatedAt, errorpattern.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ErrorPattern fields.
func (_m *ErrorPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case errorpattern.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case errorpattern.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case errorpattern.FieldPatternType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_type", values[i])
			} else if value.Valid {
				_m.PatternType = value.String
			}
		case errorpattern.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case errorpattern.FieldLearnerProduction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_production", values[i])
			} else if value.Valid {
				_m.LearnerProduction = value.String
			}
		case errorpattern.FieldCorrectForm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_form", values[i])
			} else if value.Valid {
				_m.CorrectForm = value.String
			}
		case errorpattern.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case errorpattern.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case errorpattern.FieldIsFossilizing:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_fossilizing", values[i])
			} else if value.Valid {
				_m.IsFossilizing = value.Bool
			}
		case errorpattern.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case errorpattern.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ErrorPattern.
// This includes values selected through modifiers, order, etc.
func (_m *ErrorPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ErrorPattern.
// Note that you need to call ErrorPattern.Unwrap() before calling this method if this ErrorPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ErrorPattern) Update() *ErrorPatternUpdateOne {
	return NewErrorPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ErrorPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ErrorPattern) Unwrap() *ErrorPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ErrorPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ErrorPattern) String() string {
	var builder strings.Builder
	builder.WriteString("ErrorPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("pattern_type=")
	builder.WriteString(_m.PatternType)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("learner_production=")
	builder.WriteString(_m.LearnerProduction)
	builder.WriteString(", ")
	builder.WriteString("correct_form=")
	builder.WriteString(_m.CorrectForm)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("is_fossilizing=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFossilizing))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ErrorPatterns is a parsable slice of ErrorPattern.
type ErrorPatterns []*ErrorPattern
