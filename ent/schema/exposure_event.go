package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExposureEvent records that a user encountered, produced, or was corrected
// on a grammar feature. The table is append-only; weakness scores and tier
// state are recomputed from this log.
type ExposureEvent struct {
	ent.Schema
}

func (ExposureEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExposureEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Stable user id supplied by the auth layer"),
		field.String("feature_key").
			NotEmpty().
			Comment("Links to GrammarFeature.feature_key"),
		field.String("exposure_type").
			NotEmpty().
			Comment("encountered, produced, or corrected"),
		field.String("session_id").
			NotEmpty().
			Comment("Session the exposure happened in"),
		field.String("content_id").
			Optional().
			Comment("Content item that carried the feature, if any"),
		field.Bool("is_correct").
			Optional().
			Nillable().
			Comment("nil for encountered, true for produced, false for corrected"),
	}
}

func (ExposureEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("feature_key"),
		index.Fields("user_id", "feature_key"),
	}
}
