package store

import (
	"context"
	"fmt"

	"github.com/lmdrew96/chaoslimba/ent"
	"github.com/lmdrew96/chaoslimba/ent/grammarfeature"
)

// cefrRank orders CEFR bands for at-or-below filtering.
var cefrRank = map[string]int{
	"A1": 1, "A2": 2, "B1": 3, "B2": 4, "C1": 5, "C2": 6,
}

// featureRepo implements FeatureRepo backed by ent.
type featureRepo struct {
	client *ent.Client
}

func (r *featureRepo) Seed(ctx context.Context, features []*Feature) error {
	for _, f := range features {
		err := r.client.GrammarFeature.Create().
			SetFeatureKey(f.FeatureKey).
			SetFeatureName(f.FeatureName).
			SetCategory(f.Category).
			SetCefrLevel(f.CEFRLevel).
			OnConflictColumns(grammarfeature.FieldFeatureKey).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed feature %s: %w", f.FeatureKey, err)
		}
	}
	return nil
}

func (r *featureRepo) ByKey(ctx context.Context, key string) (*Feature, error) {
	gf, err := r.client.GrammarFeature.Query().
		Where(grammarfeature.FeatureKey(key)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("query feature %s: %w", key, err)
	}
	return mapFeature(gf), nil
}

func (r *featureRepo) UpToLevel(ctx context.Context, level string) ([]*Feature, error) {
	maxRank, ok := cefrRank[level]
	if !ok {
		return nil, fmt.Errorf("unknown CEFR level %q", level)
	}

	all, err := r.client.GrammarFeature.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}

	var out []*Feature
	for _, gf := range all {
		if rank, ok := cefrRank[gf.CefrLevel]; ok && rank <= maxRank {
			out = append(out, mapFeature(gf))
		}
	}
	return out, nil
}

func (r *featureRepo) All(ctx context.Context) ([]*Feature, error) {
	all, err := r.client.GrammarFeature.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}
	out := make([]*Feature, len(all))
	for i, gf := range all {
		out[i] = mapFeature(gf)
	}
	return out, nil
}

func mapFeature(gf *ent.GrammarFeature) *Feature {
	return &Feature{
		FeatureKey:  gf.FeatureKey,
		FeatureName: gf.FeatureName,
		Category:    gf.Category,
		CEFRLevel:   gf.CefrLevel,
	}
}
