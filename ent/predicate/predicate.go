// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContentItem is the predicate function for contentitem builders.
type ContentItem func(*sql.Selector)

// ErrorPattern is the predicate function for errorpattern builders.
type ErrorPattern func(*sql.Selector)

// ExposureEvent is the predicate function for exposureevent builders.
type ExposureEvent func(*sql.Selector)

// GrammarFeature is the predicate function for grammarfeature builders.
type GrammarFeature func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProficiencyRecord is the predicate function for proficiencyrecord builders.
type ProficiencyRecord func(*sql.Selector)
