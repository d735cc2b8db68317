// Package exposure records which grammar features a learner meets,
// produces, and gets corrected on, and derives weakness signals from
// that log. Tracking is telemetry: it never blocks or fails the
// learning flow.
package exposure

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/lmdrew96/chaoslimba/internal/background"
	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/store"
)

// Exposure types on the event log.
const (
	TypeEncountered = "encountered"
	TypeProduced    = "produced"
	TypeCorrected   = "corrected"
)

// Params describes one tracking call. Each feature key in each list
// becomes one event of the matching type.
type Params struct {
	UserID    string
	SessionID string
	ContentID int
	// Feature keys by exposure category.
	Encountered []string
	Produced    []string
	Corrected   []string
}

// Tracker appends exposure events and answers weakness queries.
type Tracker struct {
	repo      store.ExposureRepo
	submitter background.Submitter
	cfg       *config.Config
}

// NewTracker creates a Tracker. Writes go through the submitter; reads
// hit the repo directly.
func NewTracker(repo store.ExposureRepo, submitter background.Submitter, cfg *config.Config) *Tracker {
	return &Tracker{repo: repo, submitter: submitter, cfg: cfg}
}

// Track records the exposures described by params. It returns
// immediately; persistence is a single best-effort attempt per event,
// with failures logged and counted but never surfaced. Duplicate calls
// append duplicate events, which the weakness ratio tolerates.
func (t *Tracker) Track(ctx context.Context, params Params) {
	t.submitCategory(params, params.Encountered, TypeEncountered, nil)
	t.submitCategory(params, params.Produced, TypeProduced, boolPtr(true))
	t.submitCategory(params, params.Corrected, TypeCorrected, boolPtr(false))
}

func (t *Tracker) submitCategory(params Params, keys []string, exposureType string, isCorrect *bool) {
	for _, key := range keys {
		data := store.ExposureEventData{
			UserID:       params.UserID,
			FeatureKey:   key,
			ExposureType: exposureType,
			SessionID:    params.SessionID,
			IsCorrect:    isCorrect,
		}
		if params.ContentID != 0 {
			data.ContentID = strconv.Itoa(params.ContentID)
		}
		t.submitter.Submit(background.Task{
			Operation: "exposure_append",
			Run: func(ctx context.Context) error {
				return t.repo.Append(ctx, data)
			},
		})
	}
}

// Profile is a user's derived feature standing.
type Profile struct {
	// Weak holds features whose correction ratio crossed the threshold.
	Weak map[string]bool

	// Encountered holds every feature with at least one event.
	Encountered map[string]bool

	// LastPracticed maps features to their most recent produced or
	// corrected timestamp. Zero time means never practiced.
	LastPracticed map[string]time.Time
}

// ProfileFor computes the user's weakness profile from the exposure log.
func (t *Tracker) ProfileFor(ctx context.Context, userID string) (*Profile, error) {
	stats, err := t.repo.FeatureStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Weak:          make(map[string]bool),
		Encountered:   make(map[string]bool),
		LastPracticed: make(map[string]time.Time),
	}
	for key, s := range stats {
		p.Encountered[key] = true
		p.LastPracticed[key] = s.LastPracticed
		if WeaknessScore(s) >= t.cfg.WeaknessThreshold {
			p.Weak[key] = true
		}
	}
	return p, nil
}

// HasHistory reports whether the user has any exposure events.
func (t *Tracker) HasHistory(ctx context.Context, userID string) (bool, error) {
	return t.repo.HasHistory(ctx, userID)
}

// WeaknessScore is the correction ratio for one feature. The +1 in the
// denominator damps single-sample features: one correction alone scores
// 0.5, not 1.0.
func WeaknessScore(s *store.FeatureStats) float64 {
	return float64(s.Corrected) / float64(s.Produced+s.Corrected+1)
}

// NeverEncountered returns the catalog keys absent from the profile,
// sorted for determinism.
func (p *Profile) NeverEncountered(catalogKeys []string) []string {
	var out []string
	for _, key := range catalogKeys {
		if !p.Encountered[key] {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// LeastRecentlyPracticed orders the given keys by ascending last-practice
// time, never-practiced first, ties broken by key for determinism.
func (p *Profile) LeastRecentlyPracticed(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := p.LastPracticed[out[i]], p.LastPracticed[out[j]]
		if ti.Equal(tj) {
			return out[i] < out[j]
		}
		return ti.Before(tj)
	})
	return out
}

func boolPtr(b bool) *bool { return &b }
