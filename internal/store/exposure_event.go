package store

import (
	"context"
	"fmt"

	"github.com/lmdrew96/chaoslimba/ent"
	"github.com/lmdrew96/chaoslimba/ent/exposureevent"
)

// exposureRepo implements ExposureRepo backed by ent and the global
// sequence counter.
type exposureRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *exposureRepo) Append(ctx context.Context, data ExposureEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ExposureEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetFeatureKey(data.FeatureKey).
		SetExposureType(data.ExposureType).
		SetSessionID(data.SessionID)

	if data.ContentID != "" {
		builder = builder.SetContentID(data.ContentID)
	}
	if data.IsCorrect != nil {
		builder = builder.SetIsCorrect(*data.IsCorrect)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save exposure event: %w", err)
	}
	return nil
}

func (r *exposureRepo) HasHistory(ctx context.Context, userID string) (bool, error) {
	exists, err := r.client.ExposureEvent.Query().
		Where(exposureevent.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query exposure history: %w", err)
	}
	return exists, nil
}

func (r *exposureRepo) FeatureStats(ctx context.Context, userID string) (map[string]*FeatureStats, error) {
	events, err := r.client.ExposureEvent.Query().
		Where(exposureevent.UserID(userID)).
		Order(ent.Asc(exposureevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exposure events: %w", err)
	}

	stats := make(map[string]*FeatureStats)
	for _, e := range events {
		fs, ok := stats[e.FeatureKey]
		if !ok {
			fs = &FeatureStats{FeatureKey: e.FeatureKey}
			stats[e.FeatureKey] = fs
		}
		switch e.ExposureType {
		case "encountered":
			fs.Encountered++
		case "produced":
			fs.Produced++
			fs.LastPracticed = e.Timestamp
		case "corrected":
			fs.Corrected++
			fs.LastPracticed = e.Timestamp
		}
	}
	return stats, nil
}

func (r *exposureRepo) Outcomes(ctx context.Context, userID, featureKey string) ([]bool, error) {
	events, err := r.client.ExposureEvent.Query().
		Where(
			exposureevent.UserID(userID),
			exposureevent.FeatureKey(featureKey),
			exposureevent.ExposureTypeIn("produced", "corrected"),
		).
		Order(ent.Asc(exposureevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}

	outcomes := make([]bool, 0, len(events))
	for _, e := range events {
		if e.IsCorrect == nil {
			continue
		}
		outcomes = append(outcomes, *e.IsCorrect)
	}
	return outcomes, nil
}
