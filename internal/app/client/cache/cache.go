// Package cache локальный кеш прогресса просмотра текущего пользователя.
package cache

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/exp/slog"

	"learninghub/internal/app/client/store"
	"learninghub/internal/domain/progress"
	"learninghub/internal/utils/clock"
)

// ProgressCache contentID -> WatchProgress, целиком хранится под одним ключом
type ProgressCache struct {
	store store.Store
	key   string
	clock clock.Clock
	log   *slog.Logger

	mu      sync.RWMutex
	entries map[string]progress.WatchProgress
}

// New загружает кеш по ключу пользователя. Поврежденные данные отбрасываются.
func New(s store.Store, key string, clk clock.Clock, log *slog.Logger) (*ProgressCache, error) {
	c := &ProgressCache{
		store:   s,
		key:     key,
		clock:   clk,
		log:     log.With(slog.String("component", "progress_cache"), slog.String("key", key)),
		entries: make(map[string]progress.WatchProgress),
	}

	if _, err := store.LoadJSON(s, key, &c.entries, c.log); err != nil {
		return nil, fmt.Errorf("ошибка загрузки кеша прогресса: %w", err)
	}
	if c.entries == nil {
		c.entries = make(map[string]progress.WatchProgress)
	}

	return c, nil
}

func (c *ProgressCache) Key() string {
	return c.key
}

func (c *ProgressCache) Get(contentID string) (progress.WatchProgress, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	wp, ok := c.entries[contentID]
	return wp, ok
}

// Percentage процент просмотра в [0, 100], 0 если записи нет
func (c *ProgressCache) Percentage(contentID string, totalDuration float64) float64 {
	wp, ok := c.Get(contentID)
	if !ok {
		return 0
	}
	return progress.Percentage(wp.WatchedSeconds, totalDuration)
}

// Upsert перезаписывает запись и сохраняет кеш целиком.
// Если сохранить не удалось, в памяти остается прежняя запись.
func (c *ProgressCache) Upsert(contentID string, watchedSeconds, totalDuration float64) (progress.WatchProgress, error) {
	if contentID == "" {
		return progress.WatchProgress{}, progress.ErrInvalidInput
	}
	if !finite(watchedSeconds) || !finite(totalDuration) {
		return progress.WatchProgress{}, fmt.Errorf("%w: позиция %v из %v", progress.ErrInvalidInput, watchedSeconds, totalDuration)
	}

	wp := progress.WatchProgress{
		ContentID:      contentID,
		WatchedSeconds: max(watchedSeconds, 0),
		Completed:      progress.IsCompleted(watchedSeconds, totalDuration),
		LastWatchedAt:  c.clock.Now().UTC(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, had := c.entries[contentID]
	c.entries[contentID] = wp
	if err := store.SaveJSON(c.store, c.key, c.entries); err != nil {
		if had {
			c.entries[contentID] = prev
		} else {
			delete(c.entries, contentID)
		}
		return wp, fmt.Errorf("ошибка сохранения кеша прогресса: %w", err)
	}

	return wp, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Entries все записи, упорядоченные по contentID
func (c *ProgressCache) Entries() []progress.WatchProgress {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]progress.WatchProgress, 0, len(c.entries))
	for _, wp := range c.entries {
		out = append(out, wp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ContentID < out[j].ContentID })

	return out
}

// AveragePercentage средний процент просмотра по списку видео (contentID -> длительность)
func (c *ProgressCache) AveragePercentage(durations map[string]float64) float64 {
	if len(durations) == 0 {
		return 0
	}

	sum := 0.0
	for id, total := range durations {
		sum += c.Percentage(id, total)
	}
	return progress.Round1(sum / float64(len(durations)))
}
