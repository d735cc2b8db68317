package analyzer

import (
	"context"

	"github.com/lmdrew96/chaoslimba/internal/llm"
)

const analysisMaxTokens = 2048

// LLMGrammarAnalyzer implements GrammarAnalyzer using the LLM provider.
type LLMGrammarAnalyzer struct {
	provider llm.Provider
}

// NewGrammarAnalyzer creates a grammar analyzer backed by the given provider.
func NewGrammarAnalyzer(provider llm.Provider) *LLMGrammarAnalyzer {
	return &LLMGrammarAnalyzer{provider: provider}
}

// grammarOutput is the raw LLM response before normalization.
type grammarOutput struct {
	CorrectedText string         `json:"corrected_text"`
	Errors        []GrammarError `json:"errors"`
	GrammarScore  float64        `json:"grammar_score"`
	Confidence    float64        `json:"confidence"`
}

func (a *LLMGrammarAnalyzer) Analyze(ctx context.Context, text string) (*GrammarResult, error) {
	ctx = llm.WithPurpose(ctx, "grammar")

	req := llm.Request{
		System: grammarSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGrammarMessage(text)},
		},
		Schema:    GrammarSchema,
		MaxTokens: analysisMaxTokens,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, &UnavailableError{Kind: KindGrammar, Err: err}
	}

	raw, err := ParseGenerated[grammarOutput](resp.Content)
	if err != nil {
		return nil, &UnavailableError{Kind: KindGrammar, Err: err}
	}

	return &GrammarResult{
		CorrectedText: raw.CorrectedText,
		Errors:        raw.Errors,
		GrammarScore:  clampScore(raw.GrammarScore),
		Confidence:    raw.Confidence,
	}, nil
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
