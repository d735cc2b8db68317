package exposure

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lmdrew96/chaoslimba/internal/background"
	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/metrics"
	"github.com/lmdrew96/chaoslimba/internal/store"
)

// fakeRepo records appends in memory; failAll makes every write fail.
type fakeRepo struct {
	events  []store.ExposureEventData
	stats   map[string]*store.FeatureStats
	failAll bool
}

func (f *fakeRepo) Append(ctx context.Context, data store.ExposureEventData) error {
	if f.failAll {
		return errors.New("store down")
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeRepo) HasHistory(ctx context.Context, userID string) (bool, error) {
	if f.failAll {
		return false, errors.New("store down")
	}
	return len(f.events) > 0 || len(f.stats) > 0, nil
}

func (f *fakeRepo) FeatureStats(ctx context.Context, userID string) (map[string]*store.FeatureStats, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	return f.stats, nil
}

func (f *fakeRepo) Outcomes(ctx context.Context, userID, featureKey string) ([]bool, error) {
	return nil, nil
}

func syncSubmitter() background.Sync {
	return background.Sync{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: metrics.NewNop(),
	}
}

func TestTrackEmitsOneEventPerKeyPerCategory(t *testing.T) {
	repo := &fakeRepo{}
	tr := NewTracker(repo, syncSubmitter(), config.Default())

	tr.Track(context.Background(), Params{
		UserID:      "u1",
		SessionID:   "s1",
		ContentID:   7,
		Encountered: []string{"ser_vs_estar", "gustar"},
		Produced:    []string{"gustar"},
		Corrected:   []string{"ser_vs_estar"},
	})

	if len(repo.events) != 4 {
		t.Fatalf("got %d events, want 4", len(repo.events))
	}

	byType := map[string][]store.ExposureEventData{}
	for _, e := range repo.events {
		byType[e.ExposureType] = append(byType[e.ExposureType], e)
		if e.SessionID != "s1" || e.ContentID != "7" {
			t.Errorf("event missing session or content id: %+v", e)
		}
	}
	if len(byType[TypeEncountered]) != 2 {
		t.Errorf("encountered events = %d, want 2", len(byType[TypeEncountered]))
	}
	for _, e := range byType[TypeEncountered] {
		if e.IsCorrect != nil {
			t.Error("encountered event has non-nil IsCorrect")
		}
	}
	if e := byType[TypeProduced]; len(e) != 1 || e[0].IsCorrect == nil || !*e[0].IsCorrect {
		t.Errorf("produced event wrong: %+v", e)
	}
	if e := byType[TypeCorrected]; len(e) != 1 || e[0].IsCorrect == nil || *e[0].IsCorrect {
		t.Errorf("corrected event wrong: %+v", e)
	}
}

func TestTrackNeverRaisesOnFailingStore(t *testing.T) {
	repo := &fakeRepo{failAll: true}
	tr := NewTracker(repo, syncSubmitter(), config.Default())

	// Must not panic or propagate anything.
	tr.Track(context.Background(), Params{
		UserID:    "u1",
		SessionID: "s1",
		Produced:  []string{"gustar"},
		Corrected: []string{"ser_vs_estar"},
	})
}

func TestWeaknessScore(t *testing.T) {
	cases := []struct {
		name               string
		produced, corrected int
		weak               bool
	}{
		{"never corrected", 10, 0, false},
		{"single correction damped", 0, 1, true},   // 1/2 = 0.5
		{"mostly corrected", 2, 3, true},           // 3/6 = 0.5
		{"mostly produced", 8, 2, false},           // 2/11 ≈ 0.18
		{"boundary", 4, 4, true},                   // 4/9 ≈ 0.44
	}
	cfg := config.Default()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &store.FeatureStats{Produced: tc.produced, Corrected: tc.corrected}
			got := WeaknessScore(s) >= cfg.WeaknessThreshold
			if got != tc.weak {
				t.Errorf("weak = %v (score %v), want %v", got, WeaknessScore(s), tc.weak)
			}
		})
	}
}

func TestWeaknessStableUnderDuplicateAppends(t *testing.T) {
	// Doubling all counts moves the ratio only marginally (the +1 damping
	// shrinks relative to the counts) and never flips a clear case.
	weak := &store.FeatureStats{Produced: 2, Corrected: 3}
	weakDoubled := &store.FeatureStats{Produced: 4, Corrected: 6}
	cfg := config.Default()

	if WeaknessScore(weak) < cfg.WeaknessThreshold {
		t.Fatal("base case should be weak")
	}
	if WeaknessScore(weakDoubled) < cfg.WeaknessThreshold {
		t.Error("doubled counts flipped a weak feature to strong")
	}

	strong := &store.FeatureStats{Produced: 8, Corrected: 2}
	strongDoubled := &store.FeatureStats{Produced: 16, Corrected: 4}
	if WeaknessScore(strong) >= cfg.WeaknessThreshold {
		t.Fatal("base case should be strong")
	}
	if WeaknessScore(strongDoubled) >= cfg.WeaknessThreshold {
		t.Error("doubled counts flipped a strong feature to weak")
	}
}

func TestProfileFor(t *testing.T) {
	practiced := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{stats: map[string]*store.FeatureStats{
		"ser_vs_estar": {FeatureKey: "ser_vs_estar", Produced: 1, Corrected: 4, LastPracticed: practiced},
		"gustar":       {FeatureKey: "gustar", Produced: 9, Corrected: 0, LastPracticed: practiced.Add(time.Hour)},
	}}
	tr := NewTracker(repo, syncSubmitter(), config.Default())

	p, err := tr.ProfileFor(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Weak["ser_vs_estar"] {
		t.Error("ser_vs_estar should be weak (4/6)")
	}
	if p.Weak["gustar"] {
		t.Error("gustar should not be weak (0/10)")
	}

	never := p.NeverEncountered([]string{"gustar", "subjunctive", "ser_vs_estar", "por_vs_para"})
	if len(never) != 2 || never[0] != "por_vs_para" || never[1] != "subjunctive" {
		t.Errorf("NeverEncountered = %v", never)
	}

	order := p.LeastRecentlyPracticed([]string{"gustar", "ser_vs_estar", "subjunctive"})
	if order[0] != "subjunctive" || order[1] != "ser_vs_estar" || order[2] != "gustar" {
		t.Errorf("LeastRecentlyPracticed = %v", order)
	}
}
