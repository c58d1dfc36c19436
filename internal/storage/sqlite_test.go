package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Stage: "classic", Score: 70})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("classic")
	require.NoError(t, err)
	assert.Equal(t, 70, high)
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{Stage: "classic", Score: 100, BlocksDestroyed: 8},
		{Stage: "classic", Score: 50},
		{Stage: "classic", Score: 200, Cleared: true, Items: 3, Player: "ann"},
		{Stage: "wall", Score: 500},
	} {
		id, err := store.SaveRun(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	runs, err := store.TopRuns("classic", 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []int{200, 100, 50}, []int{runs[0].Score, runs[1].Score, runs[2].Score})
	assert.True(t, runs[0].Cleared)
	assert.Equal(t, 3, runs[0].Items)
	assert.Equal(t, "ann", runs[0].Player)
	assert.Equal(t, 8, runs[1].BlocksDestroyed)

	all, err := store.TopRuns("", 2)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "wall", all[0].Stage)
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pyramid")
	require.NoError(t, err)
	assert.Equal(t, 0, high)
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(Run{Stage: "classic", Score: 10})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Stage: "wall", Score: 10})
	require.NoError(t, err)

	require.NoError(t, store.ClearRuns("classic"))

	runs, err := store.AllRuns("")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "wall", runs[0].Stage)
}

func TestStageStats(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []Run{
		{Stage: "fortress", Score: 100},
		{Stage: "fortress", Score: 300, Cleared: true},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	stats, err := store.GetStageStats("fortress")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Runs)
	assert.Equal(t, 1, stats.Clears)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.False(t, stats.LastPlayed.IsZero())

	empty, err := store.GetStageStats("none")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Runs)
	assert.True(t, empty.LastPlayed.IsZero())
}

func TestExportCSV(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(Run{Stage: "classic", Score: 40, Player: "bo"})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Stage: "wall", Score: 90, Cleared: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.ExportCSV(&buf, ""))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id,stage,player,score"))

	var parsed []runRecord
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, "bo", parsed[0].Player)
	assert.Equal(t, 90, parsed[1].Score)
	assert.True(t, parsed[1].Cleared)
	_, err = time.Parse(time.RFC3339, parsed[0].CreatedAt)
	assert.NoError(t, err)
}

func TestExportCSVEmpty(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, store.ExportCSV(&buf, "classic"))
	assert.True(t, strings.HasPrefix(buf.String(), "id,stage"))
}

func TestConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.SaveRun(Run{Stage: "classic", Score: i})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	runs, err := store.AllRuns("classic")
	require.NoError(t, err)
	assert.Len(t, runs, 8)
}
