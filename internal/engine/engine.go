// Package engine wires the store, analyzers, and policy into the
// adaptive feedback surface the web app consumes: aggregate, track,
// select, target, record, and compute-level.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lmdrew96/chaoslimba/internal/analyzer"
	"github.com/lmdrew96/chaoslimba/internal/background"
	"github.com/lmdrew96/chaoslimba/internal/cache"
	"github.com/lmdrew96/chaoslimba/internal/challenge"
	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/content"
	"github.com/lmdrew96/chaoslimba/internal/exposure"
	"github.com/lmdrew96/chaoslimba/internal/feedback"
	"github.com/lmdrew96/chaoslimba/internal/llm"
	"github.com/lmdrew96/chaoslimba/internal/metrics"
	"github.com/lmdrew96/chaoslimba/internal/proficiency"
	"github.com/lmdrew96/chaoslimba/internal/store"
)

// Engine is the facade over the adaptive learning machinery.
type Engine struct {
	store   *store.Store
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	pool    *background.Pool

	aggregator *feedback.Aggregator
	tracker    *exposure.Tracker
	selector   *content.Selector
	targeter   *challenge.Targeter
	scorer     *proficiency.Scorer
	generator  challenge.Generator
	evaluator  challenge.Evaluator
}

// Options configures engine construction. Provider is required for the
// LLM-backed analyzers; Embedder may be nil, degrading the semantic
// comparator to its lexical fallback.
type Options struct {
	Store    *store.Store
	Provider llm.Provider
	Embedder llm.Embedder
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
}

// New assembles an Engine. Call Close when done; it drains pending
// background writes.
func New(opts Options) *Engine {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.NewNop()
	}

	pool := background.NewPool(
		cfg.TrackerQueueSize,
		cfg.TrackerWorkers,
		time.Duration(cfg.AnalyzerTimeoutMS)*time.Millisecond,
		logger, m,
	)

	embeddingCache := cache.NewTTL[[]float32](time.Duration(cfg.EmbeddingCacheTTLSecs)*time.Second, 4096)

	analyzers := feedback.Analyzers{
		Grammar:       analyzer.NewGrammarAnalyzer(opts.Provider),
		Semantic:      analyzer.NewSemanticComparator(opts.Embedder, embeddingCache, logger),
		Pronunciation: analyzer.NewPronunciationScorer(opts.Provider),
		Intonation:    analyzer.NewIntonationChecker(opts.Provider),
		Relevance:     analyzer.NewRelevanceAnalyzer(opts.Provider),
	}

	tracker := exposure.NewTracker(opts.Store.ExposureRepo(), pool, cfg)

	return &Engine{
		store:      opts.Store,
		cfg:        cfg,
		logger:     logger,
		metrics:    m,
		pool:       pool,
		aggregator: feedback.New(analyzers, cfg, logger, m),
		tracker:    tracker,
		selector:   content.NewSelector(opts.Store.ContentRepo(), tracker, cfg, logger, m),
		targeter:   challenge.NewTargeter(opts.Store.ExposureRepo(), opts.Store.FeatureRepo(), opts.Store.ErrorLogRepo(), pool, cfg, logger, m),
		scorer:     proficiency.NewScorer(opts.Store.ProficiencyRepo()),
		generator:  challenge.NewGenerator(opts.Provider),
		evaluator:  challenge.NewEvaluator(opts.Provider),
	}
}

// Close drains background writes. The store is closed by its owner.
func (e *Engine) Close() {
	e.pool.Close()
}

// AggregateParams identifies the learner submission to score.
type AggregateParams struct {
	UserID    string
	SessionID string
	Input     feedback.Input
}

// Aggregate scores one submission and persists its error patterns
// best-effort. A blank SessionID gets a generated one; the used id is
// returned so later tracking calls can correlate.
func (e *Engine) Aggregate(ctx context.Context, params AggregateParams) (*feedback.Aggregated, string, error) {
	if err := validateAggregate(params); err != nil {
		return nil, "", err
	}
	sessionID := params.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result, err := e.aggregator.Aggregate(ctx, params.Input)
	if err != nil {
		return nil, sessionID, err
	}

	e.persistPatterns(params.UserID, result.ErrorPatterns)
	return result, sessionID, nil
}

// persistPatterns writes error patterns to the log in the background,
// flagging fossilization when a category keeps recurring unresolved.
func (e *Engine) persistPatterns(userID string, patterns []feedback.ErrorPattern) {
	for _, p := range patterns {
		data := store.ErrorPatternData{
			UserID:            userID,
			PatternType:       p.Type,
			Category:          p.Category,
			LearnerProduction: p.LearnerProduction,
			CorrectForm:       p.CorrectForm,
			Confidence:        p.Confidence,
			Severity:          p.Severity,
		}
		e.pool.Submit(background.Task{
			Operation: "error_log_append",
			Run: func(ctx context.Context) error {
				count, err := e.store.ErrorLogRepo().CategoryCount(ctx, userID, data.Category)
				if err == nil && count+1 >= e.cfg.FossilizationThreshold {
					data.IsFossilizing = true
				}
				_, err = e.store.ErrorLogRepo().Append(ctx, data)
				return err
			},
		})
	}
}

// Track records feature exposures. Fire-and-forget: validation problems
// are logged, nothing is returned.
func (e *Engine) Track(ctx context.Context, params exposure.Params) {
	if params.UserID == "" {
		e.logger.Warn("track called without user id")
		return
	}
	if params.SessionID == "" {
		params.SessionID = uuid.NewString()
	}
	e.tracker.Track(ctx, params)
}

// SelectNext picks the next content item for the user.
func (e *Engine) SelectNext(ctx context.Context, userID, level string, excludeID int) (*content.Selection, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "userID", Reason: "required"}
	}
	if !validLevel(level) {
		return nil, &ValidationError{Field: "level", Reason: "must be a CEFR level A1-C2"}
	}
	return e.selector.SelectNext(ctx, userID, level, excludeID)
}

// PickTarget chooses the grammar feature to challenge the user on.
func (e *Engine) PickTarget(ctx context.Context, userID, level string) (*challenge.Target, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "userID", Reason: "required"}
	}
	if !validLevel(level) {
		return nil, &ValidationError{Field: "level", Reason: "must be a CEFR level A1-C2"}
	}
	return e.targeter.PickTarget(ctx, userID, level)
}

// RecordOutcome applies a challenge outcome and returns the new tier.
func (e *Engine) RecordOutcome(ctx context.Context, userID, featureKey string, correct bool) (int, error) {
	if userID == "" {
		return 0, &ValidationError{Field: "userID", Reason: "required"}
	}
	if featureKey == "" {
		return 0, &ValidationError{Field: "featureKey", Reason: "required"}
	}
	return e.targeter.RecordOutcome(ctx, userID, featureKey, correct)
}

// ComputeLevel maps skill scores to a CEFR level and appends a
// proficiency record. A failed append is logged and does not affect the
// returned level.
func (e *Engine) ComputeLevel(ctx context.Context, userID string, skills proficiency.Skills, self proficiency.SelfAssessment) (string, float64, error) {
	if userID == "" {
		return "", 0, &ValidationError{Field: "userID", Reason: "required"}
	}
	level, weighted := proficiency.ComputeLevel(skills, self)

	if _, err := e.scorer.Record(ctx, userID, skills, self); err != nil {
		e.metrics.SwallowedWrites.WithLabelValues("proficiency_append").Inc()
		e.logger.Warn("proficiency record append failed", "error", err)
	}
	return level, weighted, nil
}

// NewChallenge picks a target and generates an exercise for it.
func (e *Engine) NewChallenge(ctx context.Context, userID, level string) (*challenge.Target, *challenge.Challenge, error) {
	target, err := e.PickTarget(ctx, userID, level)
	if err != nil {
		return nil, nil, err
	}
	ch, err := e.generator.Generate(ctx, target.Feature, level, target.Tier)
	if err != nil {
		return nil, nil, err
	}
	return target, ch, nil
}

// ScoreChallenge evaluates a response and records the outcome, returning
// the evaluation and the user's new tier on the feature.
func (e *Engine) ScoreChallenge(ctx context.Context, userID, level string, ch *challenge.Challenge, response string) (*challenge.Evaluation, int, error) {
	if response == "" {
		return nil, 0, &ValidationError{Field: "response", Reason: "required"}
	}
	eval, err := e.evaluator.Evaluate(ctx, ch, response, level)
	if err != nil {
		return nil, 0, err
	}
	newTier, err := e.RecordOutcome(ctx, userID, ch.FeatureKey, eval.Correct)
	if err != nil {
		return nil, 0, err
	}
	return eval, newTier, nil
}

// Trend reports the user's proficiency score delta between the two most
// recent records.
func (e *Engine) Trend(ctx context.Context, userID string) (float64, bool, error) {
	return e.scorer.Trend(ctx, userID)
}

func validateAggregate(params AggregateParams) error {
	if params.UserID == "" {
		return &ValidationError{Field: "userID", Reason: "required"}
	}
	if params.Input.UserText == "" {
		return &ValidationError{Field: "userText", Reason: "required"}
	}
	if params.Input.ExpectedText == "" {
		return &ValidationError{Field: "expectedText", Reason: "required"}
	}
	switch params.Input.Modality {
	case feedback.ModalityText, feedback.ModalitySpeech:
	default:
		return &ValidationError{Field: "modality", Reason: "must be text or speech"}
	}
	return nil
}

var cefrLevels = map[string]bool{
	"A1": true, "A2": true, "B1": true, "B2": true, "C1": true, "C2": true,
}

func validLevel(level string) bool {
	return cefrLevels[level]
}
