package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_Idempotent(t *testing.T) {
	s := openTestStore(t)
	_, err := s.db.Exec(schema)
	assert.NoError(t, err)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestMessages_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	older := &Message{Name: "Ada", Email: "ada@example.com", Body: "hello", ResumeType: "wireless",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	newer := &Message{Name: "Grace", Email: "grace@example.com", Body: "hi there",
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.SaveMessage(ctx, older))
	require.NoError(t, s.SaveMessage(ctx, newer))
	assert.NotEmpty(t, older.ID)
	assert.NotEqual(t, older.ID, newer.ID)

	msgs, err := s.Messages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Grace", msgs[0].Name)
	assert.Equal(t, "Ada", msgs[1].Name)
	assert.Equal(t, "wireless", msgs[1].ResumeType)
	assert.True(t, older.CreatedAt.Equal(msgs[1].CreatedAt))
}

func TestSaveMessage_DefaultsTimestamp(t *testing.T) {
	s := openTestStore(t)
	m := &Message{Name: "n", Email: "e@example.com", Body: "b"}
	before := time.Now().Add(-time.Second)
	require.NoError(t, s.SaveMessage(context.Background(), m))
	assert.True(t, m.CreatedAt.After(before))
}

func TestDeleteMessage(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	m := &Message{Name: "n", Email: "e@example.com", Body: "b"}
	require.NoError(t, s.SaveMessage(ctx, m))

	require.NoError(t, s.DeleteMessage(ctx, m.ID))
	assert.ErrorIs(t, s.DeleteMessage(ctx, m.ID), ErrNotFound)

	msgs, err := s.Messages(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/work", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/", Timestamp: now.Add(-20 * time.Hour)},
		{HashedIP: "c", Path: "/about", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "d", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}
	require.NoError(t, s.SaveMessage(ctx, &Message{Name: "n", Email: "e@example.com", Body: "b"}))

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalVisitors)
	assert.Equal(t, int64(4), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(4), stats.VisitorsThisWeek)
	assert.Equal(t, int64(1), stats.TotalMessages)

	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, PathCount{Path: "/", Views: 3}, stats.TopPaths[0])
	require.Len(t, stats.RecentVisitors, 5)
	assert.Equal(t, "/", stats.RecentVisitors[0].Path)
	assert.Equal(t, "a", stats.RecentVisitors[0].HashedIP)
	assert.Len(t, stats.RecentMessages, 1)
}

func TestPurgeVisitsBefore(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Now()

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "old", Path: "/", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "new", Path: "/", Timestamp: now}))

	n, err := s.PurgeVisitsBefore(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	visits, err := s.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)
}
