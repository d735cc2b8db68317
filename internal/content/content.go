// Package content selects the next content item for a learner, biased
// toward their weak grammar features with a smaller bonus for features
// they have never met. Selection is a weighted draw, not a top-1 pick,
// so exploration survives the bias.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"

	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/exposure"
	"github.com/lmdrew96/chaoslimba/internal/metrics"
	"github.com/lmdrew96/chaoslimba/internal/store"
)

// Selection reasons reported to the caller for UI explainability.
const (
	ReasonFirstSession    = "first_session"
	ReasonWeakFeatureBias = "weak_feature_bias"
	ReasonNoveltyBias     = "novelty_bias"
	ReasonFallbackRandom  = "fallback_random"
)

// NoContentError reports an empty candidate pool at every relaxation step.
type NoContentError struct {
	Level string
}

func (e *NoContentError) Error() string {
	return fmt.Sprintf("no content available for level %s or any other", e.Level)
}

// Selection is the outcome of one draw.
type Selection struct {
	Content        *store.ContentItem
	Reason         string
	TargetFeatures []string
	IsFirstSession bool
}

// Selector draws content items for learners.
type Selector struct {
	contentRepo store.ContentRepo
	tracker     *exposure.Tracker
	cfg         *config.Config
	logger      *slog.Logger
	metrics     *metrics.Metrics
	randFloat   func() float64
}

// NewSelector creates a Selector. randFloat defaults to math/rand and is
// injectable for deterministic tests.
func NewSelector(contentRepo store.ContentRepo, tracker *exposure.Tracker, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Selector {
	return &Selector{
		contentRepo: contentRepo,
		tracker:     tracker,
		cfg:         cfg,
		logger:      logger,
		metrics:     m,
		randFloat:   rand.Float64,
	}
}

// SetRand overrides the random source. Tests only.
func (s *Selector) SetRand(f func() float64) {
	s.randFloat = f
}

// SelectNext picks the next content item for the user at the given CEFR
// level, excluding excludeID (0 = none). The pool relaxes from
// level-matched to all levels before giving up with *NoContentError.
func (s *Selector) SelectNext(ctx context.Context, userID, level string, excludeID int) (*Selection, error) {
	pool, relaxed, err := s.candidatePool(ctx, level, excludeID)
	if err != nil {
		return nil, err
	}

	hasHistory, err := s.tracker.HasHistory(ctx, userID)
	if err != nil {
		// A broken history read degrades to a cold-start draw rather than
		// blocking the session.
		s.logger.Warn("exposure history unavailable, selecting uniformly", "error", err)
		hasHistory = false
	}

	if !hasHistory {
		pick := pool[int(s.randFloat()*float64(len(pool)))%len(pool)]
		s.metrics.Selections.WithLabelValues(ReasonFirstSession).Inc()
		return &Selection{
			Content:        pick,
			Reason:         ReasonFirstSession,
			IsFirstSession: true,
		}, nil
	}

	profile, err := s.tracker.ProfileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	weights, targets := s.weigh(pool, profile)
	idx := weightedDraw(weights, s.randFloat())
	pick := pool[idx]

	reason := s.reasonFor(targets[idx], profile, relaxed)
	s.metrics.Selections.WithLabelValues(reason).Inc()

	return &Selection{
		Content:        pick,
		Reason:         reason,
		TargetFeatures: targets[idx],
	}, nil
}

// candidatePool returns eligible items, reporting whether the level
// filter had to be relaxed.
func (s *Selector) candidatePool(ctx context.Context, level string, excludeID int) ([]*store.ContentItem, bool, error) {
	pool, err := s.contentRepo.ByLevel(ctx, level, excludeID)
	if err != nil {
		return nil, false, err
	}
	if len(pool) > 0 {
		return pool, false, nil
	}

	pool, err = s.contentRepo.All(ctx, excludeID)
	if err != nil {
		return nil, false, err
	}
	if len(pool) == 0 {
		return nil, false, &NoContentError{Level: level}
	}
	return pool, true, nil
}

// weigh computes a selection weight per candidate: base 1, plus the weak
// bonus per weak-feature overlap, plus the novelty bonus per
// never-encountered feature. targets[i] holds the features that drove
// candidate i's bonus.
func (s *Selector) weigh(pool []*store.ContentItem, profile *exposure.Profile) (weights []float64, targets [][]string) {
	weights = make([]float64, len(pool))
	targets = make([][]string, len(pool))

	for i, item := range pool {
		w := 1.0
		var driving []string
		for _, key := range item.FeatureKeys {
			switch {
			case profile.Weak[key]:
				w += s.cfg.WeakFeatureBonus
				driving = append(driving, key)
			case !profile.Encountered[key]:
				w += s.cfg.NoveltyBonus
				driving = append(driving, key)
			}
		}
		sort.Strings(driving)
		weights[i] = w
		targets[i] = driving
	}
	return weights, targets
}

// reasonFor labels the draw by what dominated the winner's bonus.
// A relaxed pool is always fallback_random; so is a warm-path winner
// that carried no weak or novelty bonus, since without a bonus the
// draw was effectively uniform.
func (s *Selector) reasonFor(targets []string, profile *exposure.Profile, relaxed bool) string {
	if relaxed {
		return ReasonFallbackRandom
	}
	weak, novel := 0, 0
	for _, key := range targets {
		if profile.Weak[key] {
			weak++
		} else {
			novel++
		}
	}
	switch {
	case weak > 0:
		return ReasonWeakFeatureBias
	case novel > 0:
		return ReasonNoveltyBias
	default:
		return ReasonFallbackRandom
	}
}

// weightedDraw picks an index by cumulative weight against a uniform
// threshold in [0,1).
func weightedDraw(weights []float64, u float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	threshold := u * total

	var cum float64
	for i, w := range weights {
		cum += w
		if threshold < cum {
			return i
		}
	}
	return len(weights) - 1
}
