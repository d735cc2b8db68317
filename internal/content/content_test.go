package content

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lmdrew96/chaoslimba/internal/background"
	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/exposure"
	"github.com/lmdrew96/chaoslimba/internal/metrics"
	"github.com/lmdrew96/chaoslimba/internal/store"
)

type fakeContentRepo struct {
	items []*store.ContentItem
}

func (f *fakeContentRepo) ByLevel(ctx context.Context, level string, excludeID int) ([]*store.ContentItem, error) {
	var out []*store.ContentItem
	for _, it := range f.items {
		if it.CEFRLevel == level && it.ID != excludeID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeContentRepo) All(ctx context.Context, excludeID int) ([]*store.ContentItem, error) {
	var out []*store.ContentItem
	for _, it := range f.items {
		if it.ID != excludeID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeContentRepo) Seed(ctx context.Context, items []*store.ContentItem) error {
	return nil
}

type fakeExposureRepo struct {
	stats map[string]*store.FeatureStats
}

func (f *fakeExposureRepo) Append(ctx context.Context, data store.ExposureEventData) error {
	return nil
}

func (f *fakeExposureRepo) HasHistory(ctx context.Context, userID string) (bool, error) {
	return len(f.stats) > 0, nil
}

func (f *fakeExposureRepo) FeatureStats(ctx context.Context, userID string) (map[string]*store.FeatureStats, error) {
	return f.stats, nil
}

func (f *fakeExposureRepo) Outcomes(ctx context.Context, userID, featureKey string) ([]bool, error) {
	return nil, nil
}

func newSelector(items []*store.ContentItem, stats map[string]*store.FeatureStats) *Selector {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewNop()
	cfg := config.Default()
	tracker := exposure.NewTracker(&fakeExposureRepo{stats: stats}, background.Sync{Logger: logger, Metrics: m}, cfg)
	return NewSelector(&fakeContentRepo{items: items}, tracker, cfg, logger, m)
}

func weakStats(key string) map[string]*store.FeatureStats {
	// 4 corrections out of 1 production: 4/6 ≈ 0.67, well past the threshold.
	return map[string]*store.FeatureStats{
		key: {FeatureKey: key, Produced: 1, Corrected: 4, LastPracticed: time.Now()},
	}
}

func TestSelectNextNoBonusIsFallbackRandom(t *testing.T) {
	// All tagged features are well practiced and not weak, so no candidate
	// carries a bonus and the warm draw is effectively uniform.
	stats := map[string]*store.FeatureStats{
		"gustar": {FeatureKey: "gustar", Produced: 5, LastPracticed: time.Now()},
	}
	s := newSelector([]*store.ContentItem{
		{ID: 1, CEFRLevel: "A2", FeatureKeys: []string{"gustar"}},
		{ID: 2, CEFRLevel: "A2", FeatureKeys: []string{"gustar"}},
	}, stats)

	sel, err := s.SelectNext(context.Background(), "u1", "A2", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Reason != ReasonFallbackRandom {
		t.Errorf("Reason = %q, want fallback_random", sel.Reason)
	}
	if len(sel.TargetFeatures) != 0 {
		t.Errorf("TargetFeatures = %v, want none without a bonus", sel.TargetFeatures)
	}
	if sel.IsFirstSession {
		t.Error("IsFirstSession set for user with history")
	}
}

func TestSelectNextColdStart(t *testing.T) {
	s := newSelector([]*store.ContentItem{
		{ID: 1, CEFRLevel: "A2"},
		{ID: 2, CEFRLevel: "A2"},
	}, nil)

	sel, err := s.SelectNext(context.Background(), "newuser", "A2", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sel.IsFirstSession {
		t.Error("expected IsFirstSession for user without history")
	}
	if sel.Reason != ReasonFirstSession {
		t.Errorf("Reason = %q, want first_session", sel.Reason)
	}
	if sel.Content == nil {
		t.Fatal("no content returned")
	}
}

func TestSelectNextWeakFeatureBias(t *testing.T) {
	s := newSelector([]*store.ContentItem{
		{ID: 1, CEFRLevel: "A2", FeatureKeys: []string{"ser_vs_estar"}},
		{ID: 2, CEFRLevel: "A2", FeatureKeys: []string{"ser_vs_estar"}},
	}, weakStats("ser_vs_estar"))

	sel, err := s.SelectNext(context.Background(), "u1", "A2", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Reason != ReasonWeakFeatureBias {
		t.Errorf("Reason = %q, want weak_feature_bias", sel.Reason)
	}
	if len(sel.TargetFeatures) != 1 || sel.TargetFeatures[0] != "ser_vs_estar" {
		t.Errorf("TargetFeatures = %v", sel.TargetFeatures)
	}
	if sel.IsFirstSession {
		t.Error("IsFirstSession set for user with history")
	}
}

func TestSelectNextExcludesID(t *testing.T) {
	s := newSelector([]*store.ContentItem{
		{ID: 1, CEFRLevel: "A2"},
		{ID: 2, CEFRLevel: "A2"},
	}, nil)

	for i := 0; i < 20; i++ {
		sel, err := s.SelectNext(context.Background(), "u", "A2", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Content.ID == 1 {
			t.Fatal("excluded item was selected")
		}
	}
}

func TestSelectNextRelaxesLevel(t *testing.T) {
	s := newSelector([]*store.ContentItem{
		{ID: 1, CEFRLevel: "B2", FeatureKeys: []string{"subjunctive"}},
	}, weakStats("ser_vs_estar"))

	sel, err := s.SelectNext(context.Background(), "u1", "A1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Content.ID != 1 {
		t.Error("relaxed pool did not yield the only item")
	}
	if sel.Reason != ReasonFallbackRandom {
		t.Errorf("Reason = %q, want fallback_random after relaxation", sel.Reason)
	}
}

func TestSelectNextEmptyPool(t *testing.T) {
	s := newSelector(nil, nil)

	_, err := s.SelectNext(context.Background(), "u1", "A1", 0)
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
	if _, ok := err.(*NoContentError); !ok {
		t.Fatalf("expected *NoContentError, got %T", err)
	}
}

func TestWeightedDrawConvergesToRatio(t *testing.T) {
	// Item 1 carries one weak feature: weight 1 + 2.0 = 3. Item 2: weight 1.
	// Over 10k draws the split should approach 3:1.
	s := newSelector([]*store.ContentItem{
		{ID: 1, CEFRLevel: "A2", FeatureKeys: []string{"ser_vs_estar"}},
		{ID: 2, CEFRLevel: "A2"},
	}, weakStats("ser_vs_estar"))

	rng := rand.New(rand.NewPCG(42, 0))
	s.SetRand(rng.Float64)

	const draws = 10_000
	counts := map[int]int{}
	for i := 0; i < draws; i++ {
		sel, err := s.SelectNext(context.Background(), "u1", "A2", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[sel.Content.ID]++
	}

	// Chi-square against expected 7500/2500, df=1, p=0.01 critical 6.63.
	expected := map[int]float64{1: 0.75 * draws, 2: 0.25 * draws}
	var chi2 float64
	for id, exp := range expected {
		diff := float64(counts[id]) - exp
		chi2 += diff * diff / exp
	}
	if chi2 > 6.63 {
		t.Errorf("chi-square = %.2f (counts %v), draw does not match 3:1 weights", chi2, counts)
	}
}

func TestWeightedDrawBoundaries(t *testing.T) {
	weights := []float64{3, 1}
	if got := weightedDraw(weights, 0); got != 0 {
		t.Errorf("draw at u=0 = %d, want 0", got)
	}
	if got := weightedDraw(weights, 0.74); got != 0 {
		t.Errorf("draw at u=0.74 = %d, want 0", got)
	}
	if got := weightedDraw(weights, 0.76); got != 1 {
		t.Errorf("draw at u=0.76 = %d, want 1", got)
	}
	if got := weightedDraw(weights, 0.999999); got != 1 {
		t.Errorf("draw near u=1 = %d, want 1", got)
	}
}
