package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lmdrew96/chaoslimba/ent"
	"github.com/lmdrew96/chaoslimba/ent/errorpattern"
)

// errorLogRepo implements ErrorLogRepo backed by ent.
type errorLogRepo struct {
	client *ent.Client
}

func (r *errorLogRepo) Append(ctx context.Context, data ErrorPatternData) (int, error) {
	ep, err := r.client.ErrorPattern.Create().
		SetUserID(data.UserID).
		SetPatternType(data.PatternType).
		SetCategory(data.Category).
		SetLearnerProduction(data.LearnerProduction).
		SetCorrectForm(data.CorrectForm).
		SetConfidence(data.Confidence).
		SetSeverity(data.Severity).
		SetIsFossilizing(data.IsFossilizing).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save error pattern: %w", err)
	}
	return ep.ID, nil
}

func (r *errorLogRepo) ResolveCategory(ctx context.Context, userID, category string, at time.Time) (int, error) {
	n, err := r.client.ErrorPattern.Update().
		Where(
			errorpattern.UserID(userID),
			errorpattern.Category(category),
			errorpattern.ResolvedAtIsNil(),
		).
		SetResolvedAt(at).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve patterns: %w", err)
	}
	return n, nil
}

func (r *errorLogRepo) CategoryCount(ctx context.Context, userID, category string) (int, error) {
	n, err := r.client.ErrorPattern.Query().
		Where(
			errorpattern.UserID(userID),
			errorpattern.Category(category),
			errorpattern.ResolvedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count patterns: %w", err)
	}
	return n, nil
}
