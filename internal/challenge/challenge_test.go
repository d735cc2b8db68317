package challenge

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lmdrew96/chaoslimba/internal/background"
	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/metrics"
	"github.com/lmdrew96/chaoslimba/internal/store"
)

type fakeExposureRepo struct {
	events   []store.ExposureEventData
	stats    map[string]*store.FeatureStats
	outcomes map[string][]bool
}

func (f *fakeExposureRepo) Append(ctx context.Context, data store.ExposureEventData) error {
	f.events = append(f.events, data)
	return nil
}

func (f *fakeExposureRepo) HasHistory(ctx context.Context, userID string) (bool, error) {
	return len(f.stats) > 0, nil
}

func (f *fakeExposureRepo) FeatureStats(ctx context.Context, userID string) (map[string]*store.FeatureStats, error) {
	if f.stats == nil {
		return map[string]*store.FeatureStats{}, nil
	}
	return f.stats, nil
}

func (f *fakeExposureRepo) Outcomes(ctx context.Context, userID, featureKey string) ([]bool, error) {
	return f.outcomes[featureKey], nil
}

type fakeFeatureRepo struct {
	features []*store.Feature
}

func (f *fakeFeatureRepo) Seed(ctx context.Context, features []*store.Feature) error { return nil }

func (f *fakeFeatureRepo) ByKey(ctx context.Context, key string) (*store.Feature, error) {
	for _, ft := range f.features {
		if ft.FeatureKey == key {
			return ft, nil
		}
	}
	return nil, &NoFeatureError{}
}

func (f *fakeFeatureRepo) UpToLevel(ctx context.Context, level string) ([]*store.Feature, error) {
	return f.features, nil
}

func (f *fakeFeatureRepo) All(ctx context.Context) ([]*store.Feature, error) {
	return f.features, nil
}

type fakeErrorLogRepo struct {
	resolved []string // "userID/category" per ResolveCategory call
}

func (f *fakeErrorLogRepo) Append(ctx context.Context, data store.ErrorPatternData) (int, error) {
	return 1, nil
}

func (f *fakeErrorLogRepo) ResolveCategory(ctx context.Context, userID, category string, at time.Time) (int, error) {
	f.resolved = append(f.resolved, userID+"/"+category)
	return 1, nil
}

func (f *fakeErrorLogRepo) CategoryCount(ctx context.Context, userID, category string) (int, error) {
	return 0, nil
}

func newTargeter(exposureRepo *fakeExposureRepo, featureRepo *fakeFeatureRepo) *Targeter {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewNop()
	return NewTargeter(exposureRepo, featureRepo, &fakeErrorLogRepo{}, background.Sync{Logger: logger, Metrics: m}, config.Default(), logger, m)
}

func TestReplayTierClampedLow(t *testing.T) {
	// 5 straight incorrects never leave tier 1.
	tier, consecutive := ReplayTier([]bool{false, false, false, false, false}, 2)
	if tier != 1 {
		t.Errorf("tier = %d, want 1", tier)
	}
	if consecutive != 0 {
		t.Errorf("consecutive = %d, want 0", consecutive)
	}
}

func TestReplayTierClampedHigh(t *testing.T) {
	// Enough corrects to cross the threshold four times still caps at 3.
	outcomes := []bool{true, true, true, true, true, true, true, true}
	tier, _ := ReplayTier(outcomes, 2)
	if tier != 3 {
		t.Errorf("tier = %d, want 3", tier)
	}
}

func TestReplayTierAdvanceAndRegress(t *testing.T) {
	cases := []struct {
		name     string
		outcomes []bool
		tier     int
	}{
		{"empty history starts at 1", nil, 1},
		{"one correct stays at 1", []bool{true}, 1},
		{"two corrects advance to 2", []bool{true, true}, 2},
		{"four corrects reach 3", []bool{true, true, true, true}, 3},
		{"incorrect resets the run", []bool{true, false, true}, 1},
		{"regress from 2", []bool{true, true, false}, 1},
		{"advance after regress", []bool{true, true, false, true, true}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier, _ := ReplayTier(tc.outcomes, 2)
			if tier != tc.tier {
				t.Errorf("tier = %d, want %d", tier, tc.tier)
			}
		})
	}
}

func TestRecordOutcomeAdvancesAndEmitsEvent(t *testing.T) {
	repo := &fakeExposureRepo{outcomes: map[string][]bool{
		"ser_vs_estar": {true}, // one correct on record, next correct advances
	}}
	tg := newTargeter(repo, &fakeFeatureRepo{})

	newTier, err := tg.RecordOutcome(context.Background(), "u1", "ser_vs_estar", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newTier != 2 {
		t.Errorf("newTier = %d, want 2", newTier)
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.ExposureType != "produced" || e.IsCorrect == nil || !*e.IsCorrect {
		t.Errorf("event = %+v, want produced/correct", e)
	}
}

func TestRecordOutcomeRegressEmitsCorrected(t *testing.T) {
	repo := &fakeExposureRepo{outcomes: map[string][]bool{
		"gustar": {true, true}, // at tier 2
	}}
	tg := newTargeter(repo, &fakeFeatureRepo{})

	newTier, err := tg.RecordOutcome(context.Background(), "u1", "gustar", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newTier != 1 {
		t.Errorf("newTier = %d, want 1", newTier)
	}
	e := repo.events[0]
	if e.ExposureType != "corrected" || e.IsCorrect == nil || *e.IsCorrect {
		t.Errorf("event = %+v, want corrected/incorrect", e)
	}
}

func TestRecordOutcomeAdvanceResolvesPatterns(t *testing.T) {
	repo := &fakeExposureRepo{outcomes: map[string][]bool{
		"ser_vs_estar": {true},
	}}
	features := &fakeFeatureRepo{features: []*store.Feature{
		{FeatureKey: "ser_vs_estar", Category: "copulas", CEFRLevel: "A1"},
	}}
	errorLog := &fakeErrorLogRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewNop()
	tg := NewTargeter(repo, features, errorLog, background.Sync{Logger: logger, Metrics: m}, config.Default(), logger, m)

	newTier, err := tg.RecordOutcome(context.Background(), "u1", "ser_vs_estar", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newTier != 2 {
		t.Fatalf("newTier = %d, want 2", newTier)
	}
	if len(errorLog.resolved) != 1 || errorLog.resolved[0] != "u1/copulas" {
		t.Errorf("resolved = %v, want one u1/copulas resolution", errorLog.resolved)
	}
}

func TestRecordOutcomeRegressLeavesPatternsOpen(t *testing.T) {
	repo := &fakeExposureRepo{outcomes: map[string][]bool{
		"gustar": {true, true},
	}}
	features := &fakeFeatureRepo{features: []*store.Feature{
		{FeatureKey: "gustar", Category: "verbs", CEFRLevel: "A2"},
	}}
	errorLog := &fakeErrorLogRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewNop()
	tg := NewTargeter(repo, features, errorLog, background.Sync{Logger: logger, Metrics: m}, config.Default(), logger, m)

	if _, err := tg.RecordOutcome(context.Background(), "u1", "gustar", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errorLog.resolved) != 0 {
		t.Errorf("resolved = %v, want none on regress", errorLog.resolved)
	}
}

func TestPickTargetRanksByWeakness(t *testing.T) {
	now := time.Now()
	repo := &fakeExposureRepo{stats: map[string]*store.FeatureStats{
		"weak_one":   {FeatureKey: "weak_one", Produced: 1, Corrected: 4, LastPracticed: now},
		"strong_one": {FeatureKey: "strong_one", Produced: 9, Corrected: 0, LastPracticed: now},
	}}
	features := &fakeFeatureRepo{features: []*store.Feature{
		{FeatureKey: "strong_one", CEFRLevel: "A1"},
		{FeatureKey: "weak_one", CEFRLevel: "A2"},
	}}
	tg := newTargeter(repo, features)

	target, err := tg.PickTarget(context.Background(), "u1", "A2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Feature.FeatureKey != "weak_one" {
		t.Errorf("picked %q, want weak_one", target.Feature.FeatureKey)
	}
	if target.Reason != ReasonWeakness {
		t.Errorf("Reason = %q, want weakness", target.Reason)
	}
	if target.Tier != 1 {
		t.Errorf("Tier = %d, want 1 for no outcome history", target.Tier)
	}
}

func TestPickTargetTieBreaksByLeastRecentlyPracticed(t *testing.T) {
	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := old.AddDate(0, 6, 0)
	repo := &fakeExposureRepo{stats: map[string]*store.FeatureStats{
		"stale": {FeatureKey: "stale", Produced: 5, Corrected: 0, LastPracticed: old},
		"fresh": {FeatureKey: "fresh", Produced: 5, Corrected: 0, LastPracticed: recent},
	}}
	features := &fakeFeatureRepo{features: []*store.Feature{
		{FeatureKey: "fresh", CEFRLevel: "A1"},
		{FeatureKey: "stale", CEFRLevel: "A1"},
	}}
	tg := newTargeter(repo, features)

	target, err := tg.PickTarget(context.Background(), "u1", "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Feature.FeatureKey != "stale" {
		t.Errorf("picked %q, want stale (older practice)", target.Feature.FeatureKey)
	}
}

func TestPickTargetEmptyCatalog(t *testing.T) {
	tg := newTargeter(&fakeExposureRepo{}, &fakeFeatureRepo{})

	_, err := tg.PickTarget(context.Background(), "u1", "A1")
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
	if _, ok := err.(*NoFeatureError); !ok {
		t.Fatalf("expected *NoFeatureError, got %T", err)
	}
}

func TestPickTargetUsesReplayedTier(t *testing.T) {
	repo := &fakeExposureRepo{
		stats: map[string]*store.FeatureStats{
			"weak_one": {FeatureKey: "weak_one", Produced: 1, Corrected: 4},
		},
		outcomes: map[string][]bool{
			"weak_one": {true, true, true, true},
		},
	}
	features := &fakeFeatureRepo{features: []*store.Feature{
		{FeatureKey: "weak_one", CEFRLevel: "A1"},
	}}
	tg := newTargeter(repo, features)

	target, err := tg.PickTarget(context.Background(), "u1", "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Tier != 3 {
		t.Errorf("Tier = %d, want 3 replayed from four corrects", target.Tier)
	}
}
