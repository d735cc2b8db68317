// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/contentitem"
)

// ContentItem is the model entity for the ContentItem schema.
type ContentItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// CefrLevel holds the value of the "cefr_level" field.
	CefrLevel string `json:"cefr_level,omitempty"`
	// Grammar features this item exercises
	FeatureKeys []string `json:"feature_keys,omitempty"`
	// Main topics, fed to the relevance analyzer as context
	Topics []string `json:"topics,omitempty"`
	// text or speech
	Modality     string `json:"modality,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentitem.FieldFeatureKeys, contentitem.FieldTopics:
			values[i] = new([]byte)
		case contentitem.FieldID:
			values[i] = new(sql.NullInt64)
		case contentitem.FieldTitle, contentitem.FieldBody, contentitem.FieldCefrLevel, contentitem.FieldModality:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentItem fields.
func (_m *ContentItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case contentitem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case contentitem.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case contentitem.FieldCefrLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cefr_level", values[i])
			} else if value.Valid {
				_m.CefrLevel = value.String
			}
		case contentitem.FieldFeatureKeys:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feature_keys", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FeatureKeys); err != nil {
					return fmt.Errorf("unmarshal field feature_keys: %w", err)
				}
			}
		case contentitem.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case contentitem.FieldModality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modality", values[i])
			} else if value.Valid {
				_m.Modality = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentItem.
// This includes values selected through modifiers, order, etc.
func (_m *ContentItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ContentItem.
// Note that you need to call ContentItem.Unwrap() before calling this method if this ContentItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContentItem) Update() *ContentItemUpdateOne {
	return NewContentItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContentItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContentItem) Unwrap() *ContentItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContentItem) String() string {
	var builder strings.Builder
	builder.WriteString("ContentItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("cefr_level=")
	builder.WriteString(_m.CefrLevel)
	builder.WriteString(", ")
	builder.WriteString("feature_keys=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeatureKeys))
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("modality=")
	builder.WriteString(_m.Modality)
	builder.WriteByte(')')
	return builder.String()
}

// ContentItems is a parsable slice of ContentItem.
type ContentItems []*ContentItem
