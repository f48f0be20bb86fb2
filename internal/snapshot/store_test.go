package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *FileStore {
	t.Helper()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	store := setupStore(t)
	pausedAt := time.Date(2026, time.June, 15, 12, 30, 0, 0, time.UTC)
	snap := Snapshot{
		RecordID:       "rec-1",
		ActorID:        "alice",
		ProjectID:      "proj-1",
		StartTime:      time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC),
		PauseAccum:     10 * time.Minute,
		PauseStartedAt: &pausedAt,
	}

	require.NoError(t, store.Save("alice", snap))
	loaded, err := store.Load("alice")

	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap.RecordID, loaded.RecordID)
	assert.Equal(t, snap.ProjectID, loaded.ProjectID)
	assert.True(t, snap.StartTime.Equal(loaded.StartTime))
	assert.Equal(t, snap.PauseAccum, loaded.PauseAccum)
	require.NotNil(t, loaded.PauseStartedAt)
	assert.True(t, pausedAt.Equal(*loaded.PauseStartedAt))
}

func TestFileStore_SaveReplacesPrevious(t *testing.T) {
	store := setupStore(t)

	require.NoError(t, store.Save("alice", Snapshot{RecordID: "rec-1", ActorID: "alice"}))
	require.NoError(t, store.Save("alice", Snapshot{RecordID: "rec-2", ActorID: "alice"}))

	loaded, err := store.Load("alice")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "rec-2", loaded.RecordID)
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := setupStore(t)

	loaded, err := store.Load("alice")

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alice.json"), []byte("{not json"), 0644))

	loaded, err := store.Load("alice")

	// Corrupt snapshots are discarded, not surfaced as errors.
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStore_Clear(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Save("alice", Snapshot{RecordID: "rec-1", ActorID: "alice"}))

	require.NoError(t, store.Clear("alice"))

	loaded, err := store.Load("alice")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing again is a no-op.
	assert.NoError(t, store.Clear("alice"))
}

func TestFileStore_IsolatesActors(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Save("alice", Snapshot{RecordID: "rec-1", ActorID: "alice"}))
	require.NoError(t, store.Save("bob", Snapshot{RecordID: "rec-2", ActorID: "bob"}))

	require.NoError(t, store.Clear("alice"))

	loaded, err := store.Load("bob")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "rec-2", loaded.RecordID)
}

func TestNewFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")

	_, err := NewFileStore(dir)

	require.NoError(t, err)
	info, statErr := os.Stat(dir)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
