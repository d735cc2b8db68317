// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContentItemsColumns holds the columns for the "content_items" table.
	ContentItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "cefr_level", Type: field.TypeString},
		{Name: "feature_keys", Type: field.TypeJSON},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "modality", Type: field.TypeString, Default: "text"},
	}
	// ContentItemsTable holds the schema information for the "content_items" table.
	ContentItemsTable = &schema.Table{
		Name:       "content_items",
		Columns:    ContentItemsColumns,
		PrimaryKey: []*schema.Column{ContentItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentitem_cefr_level",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[3]},
			},
		},
	}
	// ErrorPatternsColumns holds the columns for the "error_patterns" table.
	ErrorPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "pattern_type", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "learner_production", Type: field.TypeString},
		{Name: "correct_form", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "severity", Type: field.TypeString},
		{Name: "is_fossilizing", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// ErrorPatternsTable holds the schema information for the "error_patterns" table.
	ErrorPatternsTable = &schema.Table{
		Name:       "error_patterns",
		Columns:    ErrorPatternsColumns,
		PrimaryKey: []*schema.Column{ErrorPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "errorpattern_user_id",
				Unique:  false,
				Columns: []*schema.Column{ErrorPatternsColumns[1]},
			},
			{
				Name:    "errorpattern_user_id_category",
				Unique:  false,
				Columns: []*schema.Column{ErrorPatternsColumns[1], ErrorPatternsColumns[3]},
			},
			{
				Name:    "errorpattern_is_fossilizing",
				Unique:  false,
				Columns: []*schema.Column{ErrorPatternsColumns[8]},
			},
		},
	}
	// ExposureEventsColumns holds the columns for the "exposure_events" table.
	ExposureEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "feature_key", Type: field.TypeString},
		{Name: "exposure_type", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "content_id", Type: field.TypeString, Nullable: true},
		{Name: "is_correct", Type: field.TypeBool, Nullable: true},
	}
	// ExposureEventsTable holds the schema information for the "exposure_events" table.
	ExposureEventsTable = &schema.Table{
		Name:       "exposure_events",
		Columns:    ExposureEventsColumns,
		PrimaryKey: []*schema.Column{ExposureEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exposureevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[1]},
			},
			{
				Name:    "exposureevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[2]},
			},
			{
				Name:    "exposureevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[3]},
			},
			{
				Name:    "exposureevent_feature_key",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[4]},
			},
			{
				Name:    "exposureevent_user_id_feature_key",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[3], ExposureEventsColumns[4]},
			},
		},
	}
	// GrammarFeaturesColumns holds the columns for the "grammar_features" table.
	GrammarFeaturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "feature_key", Type: field.TypeString, Unique: true},
		{Name: "feature_name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "cefr_level", Type: field.TypeString},
	}
	// GrammarFeaturesTable holds the schema information for the "grammar_features" table.
	GrammarFeaturesTable = &schema.Table{
		Name:       "grammar_features",
		Columns:    GrammarFeaturesColumns,
		PrimaryKey: []*schema.Column{GrammarFeaturesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "grammarfeature_cefr_level",
				Unique:  false,
				Columns: []*schema.Column{GrammarFeaturesColumns[4]},
			},
			{
				Name:    "grammarfeature_category",
				Unique:  false,
				Columns: []*schema.Column{GrammarFeaturesColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProficiencyRecordsColumns holds the columns for the "proficiency_records" table.
	ProficiencyRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "cefr_level", Type: field.TypeString},
		{Name: "listening", Type: field.TypeFloat64, Nullable: true},
		{Name: "reading", Type: field.TypeFloat64, Nullable: true},
		{Name: "speaking", Type: field.TypeFloat64, Nullable: true},
		{Name: "writing", Type: field.TypeFloat64, Nullable: true},
	}
	// ProficiencyRecordsTable holds the schema information for the "proficiency_records" table.
	ProficiencyRecordsTable = &schema.Table{
		Name:       "proficiency_records",
		Columns:    ProficiencyRecordsColumns,
		PrimaryKey: []*schema.Column{ProficiencyRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "proficiencyrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProficiencyRecordsColumns[1]},
			},
			{
				Name:    "proficiencyrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProficiencyRecordsColumns[2]},
			},
			{
				Name:    "proficiencyrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProficiencyRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContentItemsTable,
		ErrorPatternsTable,
		ExposureEventsTable,
		GrammarFeaturesTable,
		LlmRequestEventsTable,
		ProficiencyRecordsTable,
	}
)

func init() {
}
