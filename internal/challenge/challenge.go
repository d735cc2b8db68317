// Package challenge picks which grammar feature to destabilize next and
// runs the per-feature difficulty tier machine. Tier state is derived
// from the exposure log, so it can always be recomputed from history.
package challenge

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/lmdrew96/chaoslimba/internal/background"
	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/exposure"
	"github.com/lmdrew96/chaoslimba/internal/metrics"
	"github.com/lmdrew96/chaoslimba/internal/store"
)

// Tier bounds. Tier 1 is recognition, 2 fill-in-the-blank, 3 free
// production; the mapping to challenge shape lives in the generator.
const (
	MinTier = 1
	MaxTier = 3
)

// Targeting reasons.
const (
	ReasonWeakness = "weakness"
	ReasonNovelty  = "novelty"
	ReasonRotation = "rotation"
)

// NoFeatureError reports an empty feature catalog at the requested level.
type NoFeatureError struct {
	Level string
}

func (e *NoFeatureError) Error() string {
	return fmt.Sprintf("no grammar features available at level %s or below", e.Level)
}

// Target is the feature the learner should be challenged on next.
type Target struct {
	Feature *store.Feature
	Tier    int
	Reason  string
}

// Targeter ranks features by weakness and tracks destabilization tiers.
type Targeter struct {
	exposureRepo store.ExposureRepo
	featureRepo  store.FeatureRepo
	errorLog     store.ErrorLogRepo
	submitter    background.Submitter
	cfg          *config.Config
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

// NewTargeter creates a Targeter.
func NewTargeter(exposureRepo store.ExposureRepo, featureRepo store.FeatureRepo, errorLog store.ErrorLogRepo, submitter background.Submitter, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Targeter {
	return &Targeter{
		exposureRepo: exposureRepo,
		featureRepo:  featureRepo,
		errorLog:     errorLog,
		submitter:    submitter,
		cfg:          cfg,
		logger:       logger,
		metrics:      m,
	}
}

// PickTarget chooses the feature to challenge the user on at the given
// CEFR level. Ranking is by weakness score over features at or below the
// level, tie-broken by least recently practiced, then by key.
func (t *Targeter) PickTarget(ctx context.Context, userID, level string) (*Target, error) {
	features, err := t.featureRepo.UpToLevel(ctx, level)
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		return nil, &NoFeatureError{Level: level}
	}

	stats, err := t.exposureRepo.FeatureStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	ranked := make([]*store.Feature, len(features))
	copy(ranked, features)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := statsFor(stats, ranked[i].FeatureKey), statsFor(stats, ranked[j].FeatureKey)
		wi, wj := exposure.WeaknessScore(si), exposure.WeaknessScore(sj)
		if wi != wj {
			return wi > wj
		}
		if !si.LastPracticed.Equal(sj.LastPracticed) {
			return si.LastPracticed.Before(sj.LastPracticed)
		}
		return ranked[i].FeatureKey < ranked[j].FeatureKey
	})

	pick := ranked[0]
	pickStats := statsFor(stats, pick.FeatureKey)

	reason := ReasonRotation
	switch {
	case exposure.WeaknessScore(pickStats) >= t.cfg.WeaknessThreshold:
		reason = ReasonWeakness
	case pickStats.Encountered+pickStats.Produced+pickStats.Corrected == 0:
		reason = ReasonNovelty
	}

	tier, _, err := t.currentTier(ctx, userID, pick.FeatureKey)
	if err != nil {
		return nil, err
	}

	return &Target{Feature: pick, Tier: tier, Reason: reason}, nil
}

// RecordOutcome applies one challenge outcome: the tier transition and
// the matching exposure event are one logical operation. The returned
// tier reflects the outcome immediately; the event write itself is a
// single best-effort background attempt.
func (t *Targeter) RecordOutcome(ctx context.Context, userID, featureKey string, correct bool) (int, error) {
	tier, consecutive, err := t.currentTier(ctx, userID, featureKey)
	if err != nil {
		return 0, err
	}

	newTier, _ := advance(tier, consecutive, correct, t.cfg.TierAdvanceThreshold)
	if newTier > tier {
		t.metrics.TierTransitions.WithLabelValues("advance").Inc()
		t.resolvePatterns(userID, featureKey)
	} else if newTier < tier {
		t.metrics.TierTransitions.WithLabelValues("regress").Inc()
	}

	exposureType := exposure.TypeProduced
	isCorrect := true
	if !correct {
		exposureType = exposure.TypeCorrected
		isCorrect = false
	}
	data := store.ExposureEventData{
		UserID:       userID,
		FeatureKey:   featureKey,
		ExposureType: exposureType,
		IsCorrect:    &isCorrect,
	}
	t.submitter.Submit(background.Task{
		Operation: "outcome_append",
		Run: func(ctx context.Context) error {
			return t.exposureRepo.Append(ctx, data)
		},
	})

	return newTier, nil
}

// resolvePatterns marks the user's open error patterns in the feature's
// category resolved. A tier advance means the feature is stabilizing, so
// logged errors in its category no longer count toward fossilization.
func (t *Targeter) resolvePatterns(userID, featureKey string) {
	t.submitter.Submit(background.Task{
		Operation: "pattern_resolve",
		Run: func(ctx context.Context) error {
			feature, err := t.featureRepo.ByKey(ctx, featureKey)
			if err != nil {
				return err
			}
			n, err := t.errorLog.ResolveCategory(ctx, userID, feature.Category, time.Now())
			if err != nil {
				return err
			}
			if n > 0 {
				t.logger.Info("resolved error patterns",
					"user_id", userID, "category", feature.Category, "count", n)
			}
			return nil
		},
	})
}

// currentTier replays the produced/corrected history through the tier
// machine.
func (t *Targeter) currentTier(ctx context.Context, userID, featureKey string) (tier, consecutive int, err error) {
	outcomes, err := t.exposureRepo.Outcomes(ctx, userID, featureKey)
	if err != nil {
		return 0, 0, err
	}
	tier, consecutive = ReplayTier(outcomes, t.cfg.TierAdvanceThreshold)
	return tier, consecutive, nil
}

// ReplayTier folds an outcome history into (tier, consecutiveCorrect).
// Start at tier 1. A run of advanceThreshold corrects advances one tier
// (capped at 3) and resets the run; any incorrect regresses one tier
// (floored at 1) and resets the run.
func ReplayTier(outcomes []bool, advanceThreshold int) (tier, consecutive int) {
	tier = MinTier
	for _, correct := range outcomes {
		tier, consecutive = advance(tier, consecutive, correct, advanceThreshold)
	}
	return tier, consecutive
}

// advance applies one outcome to the tier machine.
func advance(tier, consecutive int, correct bool, threshold int) (int, int) {
	if !correct {
		if tier > MinTier {
			tier--
		}
		return tier, 0
	}

	consecutive++
	if consecutive >= threshold {
		if tier < MaxTier {
			tier++
		}
		return tier, 0
	}
	return tier, consecutive
}

// statsFor returns the user's stats for a feature, or a zero-valued
// record for features with no history.
func statsFor(stats map[string]*store.FeatureStats, key string) *store.FeatureStats {
	if s, ok := stats[key]; ok {
		return s
	}
	return &store.FeatureStats{FeatureKey: key}
}
