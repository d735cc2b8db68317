// Package analyzer defines the collaborator interfaces the feedback
// aggregator fans out to, plus the LLM- and embedding-backed
// implementations of each.
package analyzer

import (
	"context"
	"fmt"
)

// Kind identifies an analyzer slot in the aggregated result.
type Kind string

const (
	KindGrammar       Kind = "grammar"
	KindSemantic      Kind = "semantic"
	KindPronunciation Kind = "pronunciation"
	KindIntonation    Kind = "intonation"
	KindRelevance     Kind = "relevance"
)

// Result is the normalized outcome of one analyzer invocation. Score is
// on [0,100] for scoring kinds; Similarity is on [0,1] for the semantic
// kind. Exactly one of the two is meaningful per kind.
type Result struct {
	Kind         Kind
	Score        float64
	Similarity   float64
	Confidence   float64
	UsedFallback bool
	ErrorDetail  string
}

// GrammarError is a single structured error found in learner text.
type GrammarError struct {
	Type              string  `json:"type"`
	Category          string  `json:"category"`
	LearnerProduction string  `json:"learner_production"`
	CorrectForm       string  `json:"correct_form"`
	Explanation       string  `json:"explanation"`
	Confidence        float64 `json:"confidence"`
}

// GrammarResult is the grammar analyzer's output.
type GrammarResult struct {
	CorrectedText string
	Errors        []GrammarError
	GrammarScore  float64
	Confidence    float64
}

// SemanticResult reports how close the learner's text is to the expected
// meaning. FallbackMethod is set when embeddings were unavailable and a
// lexical comparison was used instead.
type SemanticResult struct {
	Similarity     float64
	SemanticMatch  bool
	FallbackMethod string
}

// PronunciationInput carries the speech signals available for scoring.
// Audio may be empty when only a transcript is available; the LLM-backed
// scorer works from the transcript alignment alone.
type PronunciationInput struct {
	Audio        []byte
	Transcript   string
	ExpectedText string
	Threshold    float64
}

// PronunciationResult is the pronunciation scorer's output.
type PronunciationResult struct {
	Score   float64
	Details string
}

// IntonationWarning flags a word whose stress pattern changes meaning.
type IntonationWarning struct {
	Word            string  `json:"word"`
	ExpectedMeaning string  `json:"expected_meaning"`
	ActualMeaning   string  `json:"actual_meaning"`
	Severity        float64 `json:"severity"`
}

// IntonationResult is the intonation checker's output.
type IntonationResult struct {
	Warnings []IntonationWarning
}

// RelevanceResult reports whether the learner's text stays on topic.
type RelevanceResult struct {
	RelevanceScore float64
	Interpretation string
	TopicAnalysis  string
}

// GrammarAnalyzer finds structural errors in learner text and scores it.
type GrammarAnalyzer interface {
	Analyze(ctx context.Context, text string) (*GrammarResult, error)
}

// SemanticComparator measures meaning-level similarity between the
// learner's text and the expected text.
type SemanticComparator interface {
	Compare(ctx context.Context, userText, expectedText string, threshold float64) (*SemanticResult, error)
}

// PronunciationScorer scores spoken production against the expected text.
type PronunciationScorer interface {
	Analyze(ctx context.Context, input PronunciationInput) (*PronunciationResult, error)
}

// IntonationChecker detects stress-pattern problems in a transcript.
type IntonationChecker interface {
	Check(ctx context.Context, transcript string, stressPatterns []string) (*IntonationResult, error)
}

// RelevanceAnalyzer checks that the learner's text addresses the content
// topics it responds to.
type RelevanceAnalyzer interface {
	Analyze(ctx context.Context, userText string, contentTopics []string) (*RelevanceResult, error)
}

// UnavailableError wraps a failure of a single analyzer. The aggregator
// absorbs it into degraded scoring rather than surfacing it.
type UnavailableError struct {
	Kind Kind
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s analyzer unavailable: %v", e.Kind, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
