package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-breaker/internal/storage"
)

func updateBoard(m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestRunRows(t *testing.T) {
	created := time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)
	rows := runRows([]storage.Run{
		{Score: 300, BlocksDestroyed: 40, Items: 2, Cleared: true, Player: "ann", CreatedAt: created},
		{Score: 50},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"#1", "300", "40", "2", "CLEARED", "ann", "Mar 04 15:30"}, []string(rows[0]))
	assert.Equal(t, "lost", rows[1][4])
	assert.Equal(t, "-", rows[1][5])
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Run{
		{Stage: "classic", Score: 10},
		{Stage: "classic", Score: 70, Cleared: true},
		{Stage: "wall", Score: 5},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 120, 40)
	require.Len(t, m.runs, 2)
	assert.Equal(t, 70, m.runs[0].Score)
	assert.Contains(t, m.statsLine(), "Runs: 2")
	assert.Contains(t, m.statsLine(), "Cleared: 1")

	m = updateBoard(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.stageCursor)
	require.Len(t, m.runs, 1)
	assert.Equal(t, 5, m.runs[0].Score)
}

func TestScoreboardStageWraps(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24)

	m = updateBoard(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, len(m.stages)-1, m.stageCursor)

	m = updateBoard(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.stageCursor)
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24)
	assert.Empty(t, m.statsLine())
	assert.Contains(t, m.View(), "No runs recorded yet")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := updateBoard(NewScoreboardModel(nil, 100, 30), runeKey('b'))
	assert.True(t, m.IsGoingBack())

	m = updateBoard(NewScoreboardModel(nil, 100, 30), runeKey('q'))
	assert.True(t, m.IsQuitting())
}

func TestShortTitle(t *testing.T) {
	assert.Equal(t, "Classic", shortTitle("Block Breaker: Classic", 12))
	assert.Equal(t, "Fort.", shortTitle("Block Breaker: Fortress", 5))
}
