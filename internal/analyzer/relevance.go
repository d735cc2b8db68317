package analyzer

import (
	"context"

	"github.com/lmdrew96/chaoslimba/internal/llm"
)

// LLMRelevanceAnalyzer implements RelevanceAnalyzer using the LLM provider.
type LLMRelevanceAnalyzer struct {
	provider llm.Provider
}

// NewRelevanceAnalyzer creates a relevance analyzer backed by the given
// provider.
func NewRelevanceAnalyzer(provider llm.Provider) *LLMRelevanceAnalyzer {
	return &LLMRelevanceAnalyzer{provider: provider}
}

type relevanceOutput struct {
	RelevanceScore float64 `json:"relevance_score"`
	Interpretation string  `json:"interpretation"`
	TopicAnalysis  string  `json:"topic_analysis"`
}

func (a *LLMRelevanceAnalyzer) Analyze(ctx context.Context, userText string, contentTopics []string) (*RelevanceResult, error) {
	ctx = llm.WithPurpose(ctx, "relevance")

	req := llm.Request{
		System: relevanceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRelevanceMessage(userText, contentTopics)},
		},
		Schema:    RelevanceSchema,
		MaxTokens: analysisMaxTokens,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, &UnavailableError{Kind: KindRelevance, Err: err}
	}

	raw, err := ParseGenerated[relevanceOutput](resp.Content)
	if err != nil {
		return nil, &UnavailableError{Kind: KindRelevance, Err: err}
	}

	return &RelevanceResult{
		RelevanceScore: clampScore(raw.RelevanceScore),
		Interpretation: raw.Interpretation,
		TopicAnalysis:  raw.TopicAnalysis,
	}, nil
}
