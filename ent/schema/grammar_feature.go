package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GrammarFeature is catalog data: one teachable grammar or vocabulary
// feature. Seeded once, read-only to the engine.
type GrammarFeature struct {
	ent.Schema
}

func (GrammarFeature) Fields() []ent.Field {
	return []ent.Field{
		field.String("feature_key").
			NotEmpty().
			Unique().
			Comment("Stable key, e.g. definite-article-postposition"),
		field.String("feature_name").
			NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("morphology, syntax, vocabulary, ..."),
		field.String("cefr_level").
			NotEmpty().
			Comment("Level the feature is introduced at: A1..C2"),
	}
}

func (GrammarFeature) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cefr_level"),
		index.Fields("category"),
	}
}
