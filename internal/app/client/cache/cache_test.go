package cache

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learninghub/internal/app/client/store"
	"learninghub/internal/domain/progress"
	"learninghub/internal/utils/clock"
	"learninghub/internal/utils/logger"
)

var now = time.Date(2024, time.February, 14, 9, 0, 0, 0, time.UTC)

func newCache(t *testing.T, s store.Store, key string) *ProgressCache {
	t.Helper()
	c, err := New(s, key, clock.NewManual(now), logger.Discard())
	require.NoError(t, err)
	return c
}

func TestProgressCache_Upsert(t *testing.T) {
	tests := []struct {
		name          string
		watched       float64
		total         float64
		wantCompleted bool
		wantPercent   float64
	}{
		{name: "just below threshold", watched: 539, total: 600, wantCompleted: false, wantPercent: 89.8},
		{name: "at threshold", watched: 540, total: 600, wantCompleted: true, wantPercent: 90},
		{name: "550 of 600", watched: 550, total: 600, wantCompleted: true, wantPercent: 91.7},
		{name: "overshoot is clamped", watched: 700, total: 600, wantCompleted: true, wantPercent: 100},
		{name: "zero duration", watched: 10, total: 0, wantCompleted: false, wantPercent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCache(t, store.NewMemory(), "video-progress-21716023")

			wp, err := c.Upsert("basic-1", tt.watched, tt.total)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCompleted, wp.Completed)
			assert.Equal(t, now, wp.LastWatchedAt)
			assert.InDelta(t, tt.wantPercent, c.Percentage("basic-1", tt.total), 1e-9)
		})
	}
}

func TestProgressCache_PercentageMissing(t *testing.T) {
	c := newCache(t, store.NewMemory(), "video-progress-21716023")
	assert.Zero(t, c.Percentage("nope", 600))
}

func TestProgressCache_PersistsAcrossReload(t *testing.T) {
	s := store.NewMemory()

	c := newCache(t, s, "video-progress-21716023")
	_, err := c.Upsert("basic-1", 300, 600)
	require.NoError(t, err)

	reloaded := newCache(t, s, "video-progress-21716023")
	wp, ok := reloaded.Get("basic-1")
	require.True(t, ok)
	assert.Equal(t, 300.0, wp.WatchedSeconds)
}

func TestProgressCache_NamespacedByIdentity(t *testing.T) {
	s := store.NewMemory()

	a := newCache(t, s, "video-progress-21716023")
	_, err := a.Upsert("basic-1", 550, 600)
	require.NoError(t, err)

	b := newCache(t, s, "video-progress-29999999")
	_, ok := b.Get("basic-1")
	assert.False(t, ok)
	assert.Empty(t, b.Entries())
}

func TestProgressCache_CorruptDataIsDropped(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set("video-progress-21716023", []byte("[1,2")))

	c := newCache(t, s, "video-progress-21716023")
	assert.Empty(t, c.Entries())

	_, err := c.Upsert("basic-1", 10, 100)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
}

func TestProgressCache_PartiallyDecodedDataIsDropped(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set("video-progress-21716023",
		[]byte(`{"a":{"videoId":"a","watchedSeconds":5},"b":{"videoId":"b","watchedSeconds":"x"}}`)))

	c := newCache(t, s, "video-progress-21716023")
	assert.Empty(t, c.Entries())
}

func TestProgressCache_NonFinitePositionRejected(t *testing.T) {
	s := store.NewMemory()
	c := newCache(t, s, "video-progress-21716023")

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := c.Upsert("basic-1", v, 600)
		assert.ErrorIs(t, err, progress.ErrInvalidInput)
	}
	_, err := c.Upsert("basic-1", 100, math.NaN())
	assert.ErrorIs(t, err, progress.ErrInvalidInput)

	_, ok := c.Get("basic-1")
	assert.False(t, ok)

	// следующая запись сохраняется как обычно
	_, err = c.Upsert("basic-2", 550, 600)
	require.NoError(t, err)

	reloaded := newCache(t, s, "video-progress-21716023")
	assert.InDelta(t, 91.7, reloaded.Percentage("basic-2", 600), 1e-9)
}

type failingStore struct {
	store.Store
	fail bool
}

func (f *failingStore) Set(key string, value []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Store.Set(key, value)
}

func TestProgressCache_SaveFailureKeepsPreviousEntry(t *testing.T) {
	s := &failingStore{Store: store.NewMemory()}
	c := newCache(t, s, "video-progress-21716023")

	_, err := c.Upsert("basic-1", 100, 600)
	require.NoError(t, err)

	s.fail = true
	_, err = c.Upsert("basic-1", 500, 600)
	require.Error(t, err)
	_, err = c.Upsert("basic-2", 500, 600)
	require.Error(t, err)

	wp, ok := c.Get("basic-1")
	require.True(t, ok)
	assert.Equal(t, 100.0, wp.WatchedSeconds)
	_, ok = c.Get("basic-2")
	assert.False(t, ok)
}

func TestProgressCache_AveragePercentage(t *testing.T) {
	c := newCache(t, store.NewMemory(), "video-progress-21716023")

	_, err := c.Upsert("a", 600, 600)
	require.NoError(t, err)
	_, err = c.Upsert("b", 150, 600)
	require.NoError(t, err)

	avg := c.AveragePercentage(map[string]float64{"a": 600, "b": 600, "c": 300})
	assert.InDelta(t, 41.7, avg, 1e-9)
	assert.Zero(t, c.AveragePercentage(nil))
}
