package analyzer

import (
	"context"

	"github.com/lmdrew96/chaoslimba/internal/llm"
)

// LLMIntonationChecker implements IntonationChecker using the LLM provider.
type LLMIntonationChecker struct {
	provider llm.Provider
}

// NewIntonationChecker creates an intonation checker backed by the given
// provider.
func NewIntonationChecker(provider llm.Provider) *LLMIntonationChecker {
	return &LLMIntonationChecker{provider: provider}
}

type intonationOutput struct {
	Warnings []IntonationWarning `json:"warnings"`
}

func (c *LLMIntonationChecker) Check(ctx context.Context, transcript string, stressPatterns []string) (*IntonationResult, error) {
	ctx = llm.WithPurpose(ctx, "intonation")

	req := llm.Request{
		System: intonationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildIntonationMessage(transcript, stressPatterns)},
		},
		Schema:    IntonationSchema,
		MaxTokens: analysisMaxTokens,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, &UnavailableError{Kind: KindIntonation, Err: err}
	}

	raw, err := ParseGenerated[intonationOutput](resp.Content)
	if err != nil {
		return nil, &UnavailableError{Kind: KindIntonation, Err: err}
	}

	return &IntonationResult{Warnings: raw.Warnings}, nil
}
