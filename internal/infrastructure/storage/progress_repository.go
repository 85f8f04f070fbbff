package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"learninghub/internal/domain/progress"
)

type ProgressRepository struct {
	store Store
	log   *slog.Logger
}

func NewProgressRepository(store Store, log *slog.Logger) *ProgressRepository {
	return &ProgressRepository{
		store: store,
		log:   log,
	}
}

func (r *ProgressRepository) Save(ctx context.Context, rec progress.Record) error {
	return setJSON(ctx, r.store, ProgressKey(rec.UserID, rec.VideoID), rec)
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]progress.Record, error) {
	return r.list(ctx, ProgressPrefix+userID+"_")
}

func (r *ProgressRepository) ListAll(ctx context.Context) ([]progress.Record, error) {
	return r.list(ctx, ProgressPrefix)
}

func (r *ProgressRepository) list(ctx context.Context, prefix string) ([]progress.Record, error) {
	entries, err := r.store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("get by prefix %s: %w", prefix, err)
	}

	records := make([]progress.Record, 0, len(entries))
	for _, e := range entries {
		var rec progress.Record
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			r.log.Warn("skip malformed progress record", slog.String("key", e.Key), slog.String("error", err.Error()))
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
