package analyzer

import "github.com/lmdrew96/chaoslimba/internal/llm"

// GrammarSchema defines the JSON schema for grammar analysis responses.
var GrammarSchema = &llm.Schema{
	Name:        "grammar-analysis",
	Description: "Structural errors found in learner text, with a corrected version and an overall score",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"corrected_text": map[string]any{
				"type":        "string",
				"description": "The learner's text with all errors fixed. Identical to the input when there are no errors.",
			},
			"errors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"grammar", "vocabulary", "word_order"},
							"description": "The class of error",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "The grammar feature involved, e.g. verb_conjugation, noun_gender, preposition",
						},
						"learner_production": map[string]any{
							"type":        "string",
							"description": "The exact span the learner wrote",
						},
						"correct_form": map[string]any{
							"type":        "string",
							"description": "What the span should have been",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One sentence explaining the rule, addressed to the learner",
						},
						"confidence": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     1,
							"description": "How certain this is a real error, 0 to 1",
						},
					},
					"required":             []any{"type", "category", "learner_production", "correct_form", "explanation", "confidence"},
					"additionalProperties": false,
				},
			},
			"grammar_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall grammatical quality from 0 to 100",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Overall confidence in this analysis",
			},
		},
		"required":             []any{"corrected_text", "errors", "grammar_score", "confidence"},
		"additionalProperties": false,
	},
}

// IntonationSchema defines the JSON schema for intonation check responses.
var IntonationSchema = &llm.Schema{
	Name:        "intonation-check",
	Description: "Words whose stress pattern changes meaning in the given transcript",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"warnings": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The word with a problematic stress pattern",
						},
						"expected_meaning": map[string]any{
							"type":        "string",
							"description": "The meaning the expected stress conveys",
						},
						"actual_meaning": map[string]any{
							"type":        "string",
							"description": "The meaning the learner's stress conveys instead",
						},
						"severity": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     1,
							"description": "How badly the meaning shifts, 0 to 1",
						},
					},
					"required":             []any{"word", "expected_meaning", "actual_meaning", "severity"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"warnings"},
		"additionalProperties": false,
	},
}

// RelevanceSchema defines the JSON schema for relevance analysis responses.
var RelevanceSchema = &llm.Schema{
	Name:        "relevance-analysis",
	Description: "Whether learner text addresses the topics of the content it responds to",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"relevance_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "How on-topic the response is, 0 to 100",
			},
			"interpretation": map[string]any{
				"type":        "string",
				"description": "One sentence reading of what the learner was trying to say",
			},
			"topic_analysis": map[string]any{
				"type":        "string",
				"description": "Which of the content topics the response touches and which it misses",
			},
		},
		"required":             []any{"relevance_score", "interpretation", "topic_analysis"},
		"additionalProperties": false,
	},
}

// PronunciationSchema defines the JSON schema for pronunciation scoring
// responses built from a transcript alignment.
var PronunciationSchema = &llm.Schema{
	Name:        "pronunciation-score",
	Description: "Pronunciation quality estimated from a speech transcript aligned against the expected text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Estimated pronunciation quality from 0 to 100",
			},
			"details": map[string]any{
				"type":        "string",
				"description": "Short note on the likely mispronunciations behind the transcript divergences",
			},
		},
		"required":             []any{"score", "details"},
		"additionalProperties": false,
	},
}
