// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/exposureevent"
)

// ExposureEvent is the model entity for the ExposureEvent schema.
type ExposureEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Stable user id supplied by the auth layer
	UserID string `json:"user_id,omitempty"`
	// Links to GrammarFeature.feature_key
	FeatureKey string `json:"feature_key,omitempty"`
	// encountered, produced, or corrected
	ExposureType string `json:"exposure_type,omitempty"`
	// Session the exposure happened in
	SessionID string `json:"session_id,omitempty"`
	// Content item that carried the feature, if any
	ContentID string `json:"content_id,omitempty"`
	// nil for encountered, true for produced, false for corrected
	IsCorrect    *bool `json:"is_correct,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExposureEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exposureevent.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case exposureevent.FieldID, exposureevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case exposureevent.FieldUserID, exposureevent.FieldFeatureKey, exposureevent.FieldExposureType, exposureevent.FieldSessionID, exposureevent.FieldContentID:
			values[i] = new(sql.NullString)
		case exposureevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExposureEvent fields.
func (_m *ExposureEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exposureevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case exposureevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case exposureevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case exposureevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case exposureevent.FieldFeatureKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature_key", values[i])
			} else if value.Valid {
				_m.FeatureKey = value.String
			}
		case exposureevent.FieldExposureType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exposure_type", values[i])
			} else if value.Valid {
				_m.ExposureType = value.String
			}
		case exposureevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case exposureevent.FieldContentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value.Valid {
				_m.ContentID = value.String
			}
		case exposureevent.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = new(bool)
				*_m.IsCorrect = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExposureEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExposureEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExposureEvent.
// Note that you need to call ExposureEvent.Unwrap() before calling this method if this ExposureEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExposureEvent) Update() *ExposureEventUpdateOne {
	return NewExposureEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExposureEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExposureEvent) Unwrap() *ExposureEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExposureEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExposureEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExposureEvent(")
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
	builder.WriteString("feature_key=")
	builder.WriteString(_m.FeatureKey)
	builder.WriteString(", ")
	builder.WriteString("exposure_type=")
	builder.WriteString(_m.ExposureType)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("content_id=")
	builder.WriteString(_m.ContentID)
	builder.WriteString(", ")
	if v := _m.IsCorrect; v != nil {
		builder.WriteString("is_correct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExposureEvents is a parsable slice of ExposureEvent.
type ExposureEvents []*ExposureEvent
