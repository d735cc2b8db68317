package store

import (
	"context"
	"fmt"

	"github.com/lmdrew96/chaoslimba/ent"
	"github.com/lmdrew96/chaoslimba/ent/contentitem"
)

// contentRepo implements ContentRepo backed by ent.
type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) ByLevel(ctx context.Context, level string, excludeID int) ([]*ContentItem, error) {
	q := r.client.ContentItem.Query().
		Where(contentitem.CefrLevel(level))
	if excludeID != 0 {
		q = q.Where(contentitem.IDNEQ(excludeID))
	}
	items, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query content by level: %w", err)
	}
	return mapContentItems(items), nil
}

func (r *contentRepo) All(ctx context.Context, excludeID int) ([]*ContentItem, error) {
	q := r.client.ContentItem.Query()
	if excludeID != 0 {
		q = q.Where(contentitem.IDNEQ(excludeID))
	}
	items, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	return mapContentItems(items), nil
}

func (r *contentRepo) Seed(ctx context.Context, items []*ContentItem) error {
	n, err := r.client.ContentItem.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count content: %w", err)
	}
	if n > 0 {
		return nil
	}

	builders := make([]*ent.ContentItemCreate, len(items))
	for i, it := range items {
		builders[i] = r.client.ContentItem.Create().
			SetTitle(it.Title).
			SetBody(it.Body).
			SetCefrLevel(it.CEFRLevel).
			SetFeatureKeys(it.FeatureKeys).
			SetTopics(it.Topics).
			SetModality(it.Modality)
	}
	if _, err := r.client.ContentItem.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	return nil
}

func mapContentItems(items []*ent.ContentItem) []*ContentItem {
	out := make([]*ContentItem, len(items))
	for i, it := range items {
		out[i] = &ContentItem{
			ID:          it.ID,
			Title:       it.Title,
			Body:        it.Body,
			CEFRLevel:   it.CefrLevel,
			FeatureKeys: it.FeatureKeys,
			Topics:      it.Topics,
			Modality:    it.Modality,
		}
	}
	return out
}
