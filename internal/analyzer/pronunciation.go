package analyzer

import (
	"context"
	"errors"

	"github.com/lmdrew96/chaoslimba/internal/llm"
)

// ErrNoSpeechSignal indicates the input carried neither audio nor a
// transcript, so pronunciation cannot be scored. The aggregator treats
// this as component-unavailable rather than a failure.
var ErrNoSpeechSignal = errors.New("no audio or transcript to score")

// LLMPronunciationScorer implements PronunciationScorer from the speech
// recognizer's transcript. Recognizer divergences from the expected text
// stand in for mispronunciation evidence; raw audio is ignored.
type LLMPronunciationScorer struct {
	provider llm.Provider
}

// NewPronunciationScorer creates a pronunciation scorer backed by the
// given provider.
func NewPronunciationScorer(provider llm.Provider) *LLMPronunciationScorer {
	return &LLMPronunciationScorer{provider: provider}
}

type pronunciationOutput struct {
	Score   float64 `json:"score"`
	Details string  `json:"details"`
}

func (s *LLMPronunciationScorer) Analyze(ctx context.Context, input PronunciationInput) (*PronunciationResult, error) {
	if input.Transcript == "" {
		return nil, &UnavailableError{Kind: KindPronunciation, Err: ErrNoSpeechSignal}
	}

	ctx = llm.WithPurpose(ctx, "pronunciation")

	req := llm.Request{
		System: pronunciationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPronunciationMessage(input.Transcript, input.ExpectedText)},
		},
		Schema:    PronunciationSchema,
		MaxTokens: analysisMaxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &UnavailableError{Kind: KindPronunciation, Err: err}
	}

	raw, err := ParseGenerated[pronunciationOutput](resp.Content)
	if err != nil {
		return nil, &UnavailableError{Kind: KindPronunciation, Err: err}
	}

	return &PronunciationResult{
		Score:   clampScore(raw.Score),
		Details: raw.Details,
	}, nil
}
