package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ErrorPattern is one normalized learner error extracted from aggregated
// feedback. Rows are immutable after insert except for resolved_at, which
// the challenge targeter sets once the pattern stops recurring.
type ErrorPattern struct {
	ent.Schema
}

func (ErrorPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("pattern_type").
			NotEmpty().
			Comment("grammar, pronunciation, vocabulary, or word_order"),
		field.String("category").
			NotEmpty().
			Comment("Fine-grained label from the analyzer, e.g. verb-agreement"),
		field.String("learner_production").
			Comment("What the learner actually said or wrote"),
		field.String("correct_form").
			Comment("The corrected form"),
		field.Float("confidence").
			Comment("Analyzer confidence in [0,1]"),
		field.String("severity").
			NotEmpty().
			Comment("low, medium, or high; derived from confidence"),
		field.Bool("is_fossilizing").
			Default(false).
			Comment("Pattern persists despite repeated correction"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

func (ErrorPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "category"),
		index.Fields("is_fossilizing"),
	}
}
