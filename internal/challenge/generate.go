package challenge

import (
	"context"
	"fmt"
	"strings"

	"github.com/lmdrew96/chaoslimba/internal/analyzer"
	"github.com/lmdrew96/chaoslimba/internal/llm"
	"github.com/lmdrew96/chaoslimba/internal/store"
)

// Challenge is one generated exercise for a feature at a tier.
type Challenge struct {
	FeatureKey     string
	Tier           int
	Type           string
	Prompt         string
	Choices        []string
	ExpectedAnswer string
	Hint           string
}

// Evaluation is the judged outcome of a learner's response.
type Evaluation struct {
	Correct           bool
	Score             float64
	Feedback          string
	CorrectedResponse string
}

// Generator produces a challenge for a feature at a tier.
type Generator interface {
	Generate(ctx context.Context, feature *store.Feature, level string, tier int) (*Challenge, error)
}

// Evaluator judges a learner's response to a challenge.
type Evaluator interface {
	Evaluate(ctx context.Context, ch *Challenge, response, level string) (*Evaluation, error)
}

const generateMaxTokens = 2048

const generateSystemPrompt = `You are a language teacher creating one exercise that destabilizes a learner's interlanguage on a single grammar feature.

Rules:
- Tier 1 is recognition: a multiple-choice question with exactly 4 options, exactly one correct. Distractors reflect common learner errors on this feature, not random forms.
- Tier 2 is fill-in-the-blank: a sentence with one blank written as ___, where the feature decides the answer.
- Tier 3 is free production: an open prompt that forces the learner to produce the feature; expected_answer holds one model answer.
- Keep the vocabulary at or below the learner's CEFR level so only the target feature is under pressure.
- Include a short hint for tier 1 and 2. Leave it empty for tier 3.`

const evaluateSystemPrompt = `You are a language teacher judging one learner response to an exercise.

Rules:
- Judge against the target feature only. Spelling slips and vocabulary choices outside the feature do not make a response incorrect.
- For free production, accept any response that uses the feature correctly, not just the model answer.
- Score 0 to 100 for the quality of feature use; correct means the feature itself was used correctly.
- Feedback is one or two sentences addressed to the learner, naming what was right or wrong about the feature use.`

// GenerateSchema defines the JSON schema for challenge generation.
var GenerateSchema = &llm.Schema{
	Name:        "challenge",
	Description: "A single exercise targeting one grammar feature at a difficulty tier",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"recognition", "fill_in_blank", "free_production"},
				"description": "The exercise shape, matching the requested tier",
			},
			"prompt": map[string]any{
				"type":        "string",
				"description": "The exercise text shown to the learner",
			},
			"choices": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Exactly 4 options for recognition. Empty for other types.",
			},
			"expected_answer": map[string]any{
				"type":        "string",
				"description": "The correct answer, or a model answer for free production",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short scaffolding hint. Empty for free production.",
			},
		},
		"required":             []any{"type", "prompt", "choices", "expected_answer", "hint"},
		"additionalProperties": false,
	},
}

// EvaluateSchema defines the JSON schema for challenge evaluation.
var EvaluateSchema = &llm.Schema{
	Name:        "challenge-evaluation",
	Description: "Judgment of one learner response to an exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the target feature was used correctly",
			},
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Quality of feature use, 0 to 100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences for the learner",
			},
			"corrected_response": map[string]any{
				"type":        "string",
				"description": "The learner's response with the feature corrected. Identical when correct.",
			},
		},
		"required":             []any{"correct", "score", "feedback", "corrected_response"},
		"additionalProperties": false,
	},
}

// tierTypes maps tiers to the exercise shape requested from the model.
var tierTypes = map[int]string{
	1: "recognition",
	2: "fill_in_blank",
	3: "free_production",
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
}

// NewGenerator creates a challenge generator backed by the given provider.
func NewGenerator(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: provider}
}

type challengeOutput struct {
	Type           string   `json:"type"`
	Prompt         string   `json:"prompt"`
	Choices        []string `json:"choices"`
	ExpectedAnswer string   `json:"expected_answer"`
	Hint           string   `json:"hint"`
}

func (g *LLMGenerator) Generate(ctx context.Context, feature *store.Feature, level string, tier int) (*Challenge, error) {
	ctx = llm.WithPurpose(ctx, "challenge-gen")

	var b strings.Builder
	fmt.Fprintf(&b, "Feature: %s (%s)\n", feature.FeatureName, feature.FeatureKey)
	fmt.Fprintf(&b, "Category: %s\n", feature.Category)
	fmt.Fprintf(&b, "Learner CEFR level: %s\n", level)
	fmt.Fprintf(&b, "Tier: %d (%s)\n", tier, tierTypes[tier])

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      GenerateSchema,
		MaxTokens:   generateMaxTokens,
		Temperature: 0.7,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("challenge generation failed: %w", err)
	}

	raw, err := analyzer.ParseGenerated[challengeOutput](resp.Content)
	if err != nil {
		return nil, fmt.Errorf("challenge generation failed: %w", err)
	}

	return &Challenge{
		FeatureKey:     feature.FeatureKey,
		Tier:           tier,
		Type:           raw.Type,
		Prompt:         raw.Prompt,
		Choices:        raw.Choices,
		ExpectedAnswer: raw.ExpectedAnswer,
		Hint:           raw.Hint,
	}, nil
}

// LLMEvaluator implements Evaluator using the LLM provider.
type LLMEvaluator struct {
	provider llm.Provider
}

// NewEvaluator creates a challenge evaluator backed by the given provider.
func NewEvaluator(provider llm.Provider) *LLMEvaluator {
	return &LLMEvaluator{provider: provider}
}

type evaluationOutput struct {
	Correct           bool    `json:"correct"`
	Score             float64 `json:"score"`
	Feedback          string  `json:"feedback"`
	CorrectedResponse string  `json:"corrected_response"`
}

func (e *LLMEvaluator) Evaluate(ctx context.Context, ch *Challenge, response, level string) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "challenge-eval")

	var b strings.Builder
	fmt.Fprintf(&b, "Feature: %s\n", ch.FeatureKey)
	fmt.Fprintf(&b, "Exercise type: %s\n", ch.Type)
	fmt.Fprintf(&b, "Exercise: %s\n", ch.Prompt)
	if len(ch.Choices) > 0 {
		fmt.Fprintf(&b, "Choices: %s\n", strings.Join(ch.Choices, " | "))
	}
	fmt.Fprintf(&b, "Expected answer: %s\n", ch.ExpectedAnswer)
	fmt.Fprintf(&b, "Learner CEFR level: %s\n", level)
	fmt.Fprintf(&b, "\nLearner response:\n%s", response)

	req := llm.Request{
		System: evaluateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:    EvaluateSchema,
		MaxTokens: generateMaxTokens,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("challenge evaluation failed: %w", err)
	}

	raw, err := analyzer.ParseGenerated[evaluationOutput](resp.Content)
	if err != nil {
		return nil, fmt.Errorf("challenge evaluation failed: %w", err)
	}

	return &Evaluation{
		Correct:           raw.Correct,
		Score:             raw.Score,
		Feedback:          raw.Feedback,
		CorrectedResponse: raw.CorrectedResponse,
	}, nil
}
