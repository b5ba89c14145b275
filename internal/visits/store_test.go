package visits

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, now time.Time) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "visits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	s.now = func() time.Time { return now }
	return s
}

func TestStoreStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	s := openTestStore(t, now)
	ctx := context.Background()

	visits := []Visit{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/project/Tide", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "c", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, s.Record(ctx, v))
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalVisits)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitsToday)
	assert.EqualValues(t, 3, stats.VisitsThisWeek)
	require.Len(t, stats.TopPages, 2)
	assert.Equal(t, PageStat{Path: "/", Views: 3}, stats.TopPages[0])
	require.Len(t, stats.RecentVisits, 4)
	assert.Equal(t, "/", stats.RecentVisits[0].Path)
	assert.True(t, stats.RecentVisits[0].Timestamp.Equal(now.Add(-time.Hour)))
}

func TestStoreRecordStampsZeroTime(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := openTestStore(t, now)
	require.NoError(t, s.Record(context.Background(), Visit{HashedIP: "x", Path: "/"}))

	recent, err := s.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, recent[0].Timestamp.Equal(now))
}

func TestStoreCleanup(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	s := openTestStore(t, now)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, Visit{HashedIP: "old", Path: "/", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.Record(ctx, Visit{HashedIP: "new", Path: "/", Timestamp: now.AddDate(0, -1, 0)}))

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].HashedIP)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ")
	assert.Error(t, err)
}

func TestHasher(t *testing.T) {
	h := NewHasherWithSalt("salt")
	a := h.Hash("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.Hash("203.0.113.7"))
	assert.NotEqual(t, a, h.Hash("203.0.113.8"))
	assert.NotEqual(t, a, NewHasherWithSalt("other").Hash("203.0.113.7"))

	random, err := NewHasher()
	require.NoError(t, err)
	assert.Len(t, random.Hash("x"), 16)
}
