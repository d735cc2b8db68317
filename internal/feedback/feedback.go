// Package feedback aggregates analyzer signals into a single scored
// response. Analyzer calls fan out concurrently; failures degrade the
// score with neutral defaults instead of failing the submission, unless
// every signal source is down.
package feedback

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/lmdrew96/chaoslimba/internal/analyzer"
	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/metrics"
)

// Modality distinguishes written from spoken submissions.
type Modality string

const (
	ModalityText   Modality = "text"
	ModalitySpeech Modality = "speech"
)

// Status of one analyzer slot in the aggregated result.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// Input is one learner submission to score.
type Input struct {
	Modality     Modality
	UserText     string
	ExpectedText string

	// Speech signals. Optional even for speech modality; missing signals
	// degrade the relevant components rather than failing the call.
	Audio          []byte
	Transcript     string
	StressPatterns []string

	// ContentTopics enables the relevance check when present.
	ContentTopics []string
}

// ComponentResult reports the outcome of one attempted analyzer.
type ComponentResult struct {
	Status    Status
	LatencyMs int64
}

// Aggregated is the scored response for one submission. Immutable once
// returned.
type Aggregated struct {
	OverallScore     int
	ComponentResults map[analyzer.Kind]ComponentResult
	ErrorPatterns    []ErrorPattern
	ProcessingTimeMs int64

	// CorrectedText is the grammar analyzer's corrected version, empty
	// when grammar analysis failed.
	CorrectedText string

	// Relevance carries the relevance analyzer's output when topics were
	// given and the check succeeded.
	Relevance *analyzer.RelevanceResult
}

// Aggregator fans out to the analyzer set and merges their results.
type Aggregator struct {
	grammar       analyzer.GrammarAnalyzer
	semantic      analyzer.SemanticComparator
	pronunciation analyzer.PronunciationScorer
	intonation    analyzer.IntonationChecker
	relevance     analyzer.RelevanceAnalyzer

	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Analyzers bundles the collaborator set for the aggregator.
// Pronunciation, intonation, and relevance may be nil; the matching
// components are then never attempted.
type Analyzers struct {
	Grammar       analyzer.GrammarAnalyzer
	Semantic      analyzer.SemanticComparator
	Pronunciation analyzer.PronunciationScorer
	Intonation    analyzer.IntonationChecker
	Relevance     analyzer.RelevanceAnalyzer
}

// New creates an Aggregator.
func New(a Analyzers, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Aggregator {
	return &Aggregator{
		grammar:       a.Grammar,
		semantic:      a.Semantic,
		pronunciation: a.Pronunciation,
		intonation:    a.Intonation,
		relevance:     a.Relevance,
		cfg:           cfg,
		logger:        logger,
		metrics:       m,
	}
}

// slot holds one analyzer's outcome. Each goroutine writes only its own
// slot, so the merge after Wait is race free and deterministic.
type slot struct {
	attempted bool
	err       error
	latency   time.Duration

	grammar       *analyzer.GrammarResult
	semantic      *analyzer.SemanticResult
	pronunciation *analyzer.PronunciationResult
	intonation    *analyzer.IntonationResult
	relevance     *analyzer.RelevanceResult
}

// Aggregate scores one submission. It returns *AggregationFailedError
// only when every attempted analyzer failed; any partial failure returns
// a degraded but valid result. No persistence happens here.
func (ag *Aggregator) Aggregate(ctx context.Context, input Input) (*Aggregated, error) {
	start := time.Now()
	timeout := time.Duration(ag.cfg.AnalyzerTimeoutMS) * time.Millisecond

	slots := make(map[analyzer.Kind]*slot)
	var wg sync.WaitGroup

	run := func(kind analyzer.Kind, call func(ctx context.Context, s *slot) error) {
		s := &slot{attempted: true}
		slots[kind] = s
		wg.Add(1)
		go func() {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			callStart := time.Now()
			s.err = call(callCtx, s)
			s.latency = time.Since(callStart)
		}()
	}

	run(analyzer.KindGrammar, func(ctx context.Context, s *slot) error {
		res, err := ag.grammar.Analyze(ctx, input.UserText)
		s.grammar = res
		return err
	})
	run(analyzer.KindSemantic, func(ctx context.Context, s *slot) error {
		res, err := ag.semantic.Compare(ctx, input.UserText, input.ExpectedText, ag.cfg.SemanticThreshold)
		s.semantic = res
		return err
	})

	if input.Modality == ModalitySpeech {
		if ag.pronunciation != nil {
			run(analyzer.KindPronunciation, func(ctx context.Context, s *slot) error {
				res, err := ag.pronunciation.Analyze(ctx, analyzer.PronunciationInput{
					Audio:        input.Audio,
					Transcript:   input.Transcript,
					ExpectedText: input.ExpectedText,
					Threshold:    ag.cfg.SemanticThreshold,
				})
				s.pronunciation = res
				return err
			})
		}
		if ag.intonation != nil {
			run(analyzer.KindIntonation, func(ctx context.Context, s *slot) error {
				if input.Transcript == "" {
					return analyzer.ErrNoSpeechSignal
				}
				res, err := ag.intonation.Check(ctx, input.Transcript, input.StressPatterns)
				s.intonation = res
				return err
			})
		}
	}

	if ag.relevance != nil && len(input.ContentTopics) > 0 {
		run(analyzer.KindRelevance, func(ctx context.Context, s *slot) error {
			res, err := ag.relevance.Analyze(ctx, input.UserText, input.ContentTopics)
			s.relevance = res
			return err
		})
	}

	wg.Wait()

	failed := 0
	for kind, s := range slots {
		if s.err != nil {
			failed++
			ag.metrics.AnalyzerFailures.WithLabelValues(string(kind)).Inc()
			ag.logger.Warn("analyzer failed",
				"kind", kind,
				"latency_ms", s.latency.Milliseconds(),
				"error", s.err)
		}
	}
	if failed == len(slots) {
		return nil, &AggregationFailedError{Attempted: len(slots)}
	}
	if failed > 0 {
		ag.metrics.AggregationsDegraded.Inc()
	}

	result := ag.merge(input, slots)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	ag.metrics.AggregationLatency.Observe(time.Since(start).Seconds())
	return result, nil
}

// merge folds the settled slots into the final result. Deterministic for
// a given set of slot outcomes regardless of completion order.
func (ag *Aggregator) merge(input Input, slots map[analyzer.Kind]*slot) *Aggregated {
	out := &Aggregated{
		ComponentResults: make(map[analyzer.Kind]ComponentResult, len(slots)),
	}

	for kind, s := range slots {
		status := StatusHealthy
		if s.err != nil {
			status = StatusUnhealthy
		} else if kind == analyzer.KindSemantic && s.semantic != nil && s.semantic.FallbackMethod != "" {
			status = StatusDegraded
		}
		out.ComponentResults[kind] = ComponentResult{
			Status:    status,
			LatencyMs: s.latency.Milliseconds(),
		}
	}

	// Neutral defaults keep the formula defined under partial failure.
	grammarScore := ag.cfg.NeutralGrammarScore
	similarity := ag.cfg.NeutralSimilarity
	pronunciationScore := ag.cfg.NeutralPronunciationScore
	intonationScore := ag.cfg.NeutralIntonationScore

	if s := slots[analyzer.KindGrammar]; s != nil && s.err == nil && s.grammar != nil {
		grammarScore = s.grammar.GrammarScore
		out.CorrectedText = s.grammar.CorrectedText
		out.ErrorPatterns = append(out.ErrorPatterns, grammarPatterns(s.grammar.Errors)...)
	}
	if s := slots[analyzer.KindSemantic]; s != nil && s.err == nil && s.semantic != nil {
		similarity = s.semantic.Similarity
	}

	warnings := 0
	if s := slots[analyzer.KindIntonation]; s != nil && s.err == nil && s.intonation != nil {
		warnings = len(s.intonation.Warnings)
		intonationScore = math.Max(0, 100-ag.cfg.IntonationWarningPenalty*float64(warnings))
		out.ErrorPatterns = append(out.ErrorPatterns, intonationPatterns(s.intonation.Warnings)...)
	}
	if s := slots[analyzer.KindPronunciation]; s != nil && s.err == nil && s.pronunciation != nil {
		pronunciationScore = s.pronunciation.Score
	}
	if s := slots[analyzer.KindRelevance]; s != nil && s.err == nil && s.relevance != nil {
		out.Relevance = s.relevance
	}

	var overall float64
	switch input.Modality {
	case ModalitySpeech:
		overall = ag.cfg.SpeechGrammarWeight*grammarScore +
			ag.cfg.SpeechPronunciationWeight*pronunciationScore +
			ag.cfg.SpeechSemanticWeight*similarity*100 +
			ag.cfg.SpeechIntonationWeight*intonationScore
	default:
		overall = ag.cfg.TextGrammarWeight*grammarScore +
			ag.cfg.TextSemanticWeight*similarity*100
	}

	out.OverallScore = clamp(int(math.Round(overall)))
	return out
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
