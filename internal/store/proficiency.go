package store

import (
	"context"
	"fmt"

	"github.com/lmdrew96/chaoslimba/ent"
	"github.com/lmdrew96/chaoslimba/ent/proficiencyrecord"
)

// proficiencyRepo implements ProficiencyRepo backed by ent and the global
// sequence counter.
type proficiencyRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *proficiencyRepo) Append(ctx context.Context, data ProficiencyRecordData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ProficiencyRecord.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetOverallScore(data.OverallScore).
		SetCefrLevel(data.CEFRLevel)

	if data.Listening != nil {
		builder = builder.SetListening(*data.Listening)
	}
	if data.Reading != nil {
		builder = builder.SetReading(*data.Reading)
	}
	if data.Speaking != nil {
		builder = builder.SetSpeaking(*data.Speaking)
	}
	if data.Writing != nil {
		builder = builder.SetWriting(*data.Writing)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save proficiency record: %w", err)
	}
	return nil
}

func (r *proficiencyRepo) Recent(ctx context.Context, userID string, limit int) ([]*ProficiencyRecord, error) {
	q := r.client.ProficiencyRecord.Query().
		Where(proficiencyrecord.UserID(userID)).
		Order(ent.Desc(proficiencyrecord.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	records, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query proficiency records: %w", err)
	}

	out := make([]*ProficiencyRecord, len(records))
	for i, rec := range records {
		out[i] = &ProficiencyRecord{
			Sequence:     rec.Sequence,
			RecordedAt:   rec.Timestamp,
			UserID:       rec.UserID,
			OverallScore: rec.OverallScore,
			CEFRLevel:    rec.CefrLevel,
			Listening:    rec.Listening,
			Reading:      rec.Reading,
			Speaking:     rec.Speaking,
			Writing:      rec.Writing,
		}
	}
	return out, nil
}
