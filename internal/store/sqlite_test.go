package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bluepixel/estatechat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteStore_CreateAndGetSession(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	session := &domain.Session{
		SessionID:  "sess-1",
		UserID:     "user-1",
		CreatedAt:  now,
		LastSeenAt: now,
	}
	require.NoError(t, repo.CreateSession(ctx, session))

	got, err := repo.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, now.Unix(), got.CreatedAt.Unix())
}

func TestSQLiteStore_GetUnknownSession(t *testing.T) {
	repo := newTestStore(t)

	got, err := repo.GetSession(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_TouchSession(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	created := time.Now().Add(-time.Hour)
	require.NoError(t, repo.CreateSession(ctx, &domain.Session{
		SessionID:  "sess-1",
		UserID:     "user-1",
		CreatedAt:  created,
		LastSeenAt: created,
	}))

	touched := time.Now().Truncate(time.Second)
	require.NoError(t, repo.TouchSession(ctx, "sess-1", touched))

	got, err := repo.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, touched.Unix(), got.LastSeenAt.Unix())
}

func TestSQLiteStore_CleanupExpiredSessions(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	stale := time.Now().Add(-48 * time.Hour)
	fresh := time.Now()

	require.NoError(t, repo.CreateSession(ctx, &domain.Session{
		SessionID: "old", UserID: "u1", CreatedAt: stale, LastSeenAt: stale,
	}))
	require.NoError(t, repo.CreateSession(ctx, &domain.Session{
		SessionID: "new", UserID: "u2", CreatedAt: fresh, LastSeenAt: fresh,
	}))

	deleted, err := repo.CleanupExpiredSessions(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	gone, err := repo.GetSession(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := repo.GetSession(ctx, "new")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestSQLiteStore_Ping(t *testing.T) {
	repo := newTestStore(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
