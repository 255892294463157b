package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppw/internal/domain"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := h.Close(); err != nil {
			t.Errorf("failed to close history: %v", err)
		}
	})
	return h
}

func TestHistory_RecordAndRecent(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	runs := []domain.RunRecord{
		{ID: "a", Input: "/src/a.js", OutputDir: "/out/", Flow: domain.FlowSinglePass, Status: domain.RunSucceeded, SlotCount: 2, StartedAt: base, Duration: 1500 * time.Millisecond},
		{ID: "b", Input: "/src/b.js", OutputDir: "/out/", Flow: domain.FlowTwoPass, Status: domain.RunFailed, Error: "dependency log missing", StartedAt: base.Add(time.Minute)},
		{ID: "c", Input: "/src/c.js", OutputDir: "/out/", Flow: domain.FlowSinglePass, Status: domain.RunSucceeded, StartedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		require.NoError(t, h.Record(ctx, r))
	}

	got, err := h.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, domain.FlowTwoPass, got[1].Flow)
	assert.Equal(t, domain.RunFailed, got[1].Status)
	assert.Equal(t, "dependency log missing", got[1].Error)
	assert.True(t, got[1].StartedAt.Equal(base.Add(time.Minute)))

	all, err := h.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 2, all[2].SlotCount)
	assert.Equal(t, 1500*time.Millisecond, all[2].Duration)
}

func TestHistory_RecordReplacesSameID(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	rec := domain.RunRecord{ID: "x", Input: "/a.js", Status: domain.RunFailed, StartedAt: time.Now()}
	require.NoError(t, h.Record(ctx, rec))
	rec.Status = domain.RunSucceeded
	require.NoError(t, h.Record(ctx, rec))

	got, err := h.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.RunSucceeded, got[0].Status)
}

func TestHistory_ReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	h, err := OpenHistory(path)
	require.NoError(t, err)
	require.NoError(t, h.Record(ctx, domain.RunRecord{ID: "keep", Input: "/a.js", StartedAt: time.Now()}))
	require.NoError(t, h.Close())

	h, err = OpenHistory(path)
	require.NoError(t, err)
	defer h.Close()

	got, err := h.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].ID)
	assert.Equal(t, path, h.Path())
}

func TestOpenHistory_Pragmas(t *testing.T) {
	h := openTestHistory(t)

	var mode string
	require.NoError(t, h.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, h.db.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/data", "ppw", "history.db"), DefaultPath())
}
