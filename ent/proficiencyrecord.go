// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/proficiencyrecord"
)

// ProficiencyRecord is the model entity for the ProficiencyRecord schema.
type ProficiencyRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Weighted score in [0,100]
	OverallScore float64 `json:"overall_score,omitempty"`
	// A1 through C2
	CefrLevel string `json:"cefr_level,omitempty"`
	// Listening holds the value of the "listening" field.
	Listening *float64 `json:"listening,omitempty"`
	// Reading holds the value of the "reading" field.
	Reading *float64 `json:"reading,omitempty"`
	// Speaking holds the value of the "speaking" field.
	Speaking *float64 `json:"speaking,omitempty"`
	// Writing holds the value of the "writing" field.
	Writing      *float64 `json:"writing,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProficiencyRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proficiencyrecord.FieldOverallScore, proficiencyrecord.FieldListening, proficiencyrecord.FieldReading, proficiencyrecord.FieldSpeaking, proficiencyrecord.FieldWriting:
			values[i] = new(sql.NullFloat64)
		case proficiencyrecord.FieldID, proficiencyrecord.FieldSequence:
			values[i] = new(sql.NullInt64)
		case proficiencyrecord.FieldUserID, proficiencyrecord.FieldCefrLevel:
			values[i] = new(sql.NullString)
		case proficiencyrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProficiencyRecord fields.
func (_m *ProficiencyRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proficiencyrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case proficiencyrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case proficiencyrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case proficiencyrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case proficiencyrecord.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case proficiencyrecord.FieldCefrLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cefr_level", values[i])
			} else if value.Valid {
				_m.CefrLevel = value.String
			}
		case proficiencyrecord.FieldListening:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field listening", values[i])
			} else if value.Valid {
				_m.Listening = new(float64)
				*_m.Listening = value.Float64
			}
		case proficiencyrecord.FieldReading:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reading", values[i])
			} else if value.Valid {
				_m.Reading = new(float64)
				*_m.Reading = value.Float64
			}
		case proficiencyrecord.FieldSpeaking:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field speaking", values[i])
			} else if value.Valid {
				_m.Speaking = new(float64)
				*_m.Speaking = value.Float64
			}
		case proficiencyrecord.FieldWriting:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field writing", values[i])
			} else if value.Valid {
				_m.Writing = new(float64)
				*_m.Writing = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProficiencyRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ProficiencyRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProficiencyRecord.
// Note that you need to call ProficiencyRecord.Unwrap() before calling this method if this ProficiencyRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProficiencyRecord) Update() *ProficiencyRecordUpdateOne {
	return NewProficiencyRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProficiencyRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProficiencyRecord) Unwrap() *ProficiencyRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProficiencyRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProficiencyRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ProficiencyRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("cefr_level=")
	builder.WriteString(_m.CefrLevel)
	builder.WriteString(", ")
	if v := _m.Listening; v != nil {
		builder.WriteString("listening=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Reading; v != nil {
		builder.WriteString("reading=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Speaking; v != nil {
		builder.WriteString("speaking=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Writing; v != nil {
		builder.WriteString("writing=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ProficiencyRecords is a parsable slice of ProficiencyRecord.
type ProficiencyRecords []*ProficiencyRecord
