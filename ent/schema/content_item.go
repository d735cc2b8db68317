package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentItem is a catalog entry the selector draws from: a reading or
// listening passage tagged with the grammar features it exercises.
type ContentItem struct {
	ent.Schema
}

func (ContentItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.Text("body").
			NotEmpty(),
		field.String("cefr_level").
			NotEmpty(),
		field.Strings("feature_keys").
			Comment("Grammar features this item exercises"),
		field.Strings("topics").
			Optional().
			Comment("Main topics, fed to the relevance analyzer as context"),
		field.String("modality").
			Default("text").
			Comment("text or speech"),
	}
}

func (ContentItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cefr_level"),
	}
}
