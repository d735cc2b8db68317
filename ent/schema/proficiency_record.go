package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProficiencyRecord is a point-in-time proficiency measurement. Records are
// append-only; trend queries order on the mixin timestamp and never mutate.
type ProficiencyRecord struct {
	ent.Schema
}

func (ProficiencyRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProficiencyRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Float("overall_score").
			Comment("Weighted score in [0,100]"),
		field.String("cefr_level").
			NotEmpty().
			Comment("A1 through C2"),
		field.Float("listening").
			Optional().
			Nillable(),
		field.Float("reading").
			Optional().
			Nillable(),
		field.Float("speaking").
			Optional().
			Nillable(),
		field.Float("writing").
			Optional().
			Nillable(),
	}
}

func (ProficiencyRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
