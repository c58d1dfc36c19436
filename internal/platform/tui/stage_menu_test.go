package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/block-breaker/internal/games/blockbreaker"
	"github.com/vovakirdan/block-breaker/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func updateMenu(m StageMenuModel, msg tea.Msg) (StageMenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(StageMenuModel), cmd
}

func TestStageMenuListsStages(t *testing.T) {
	m := NewStageMenuModel(nil, testRuntime)

	ids := make([]string, len(m.items))
	for i, item := range m.items {
		ids[i] = item.ID
	}
	assert.Equal(t, []string{"classic", "wall", "pyramid", "fortress"}, ids)
	assert.Contains(t, m.View(), "Block Breaker: Classic")
}

func TestStageMenuShowsHighScores(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveRun(storage.Run{Stage: "wall", Score: 120})
	require.NoError(t, err)

	m := NewStageMenuModel(store, testRuntime)
	assert.Equal(t, 0, m.items[0].HighScore)
	assert.Equal(t, 120, m.items[1].HighScore)
	assert.Contains(t, m.View(), " 120")
}

func TestStageMenuSelect(t *testing.T) {
	m := NewStageMenuModel(nil, testRuntime)

	m, _ = updateMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := updateMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, "wall", m.Selected().ID)
	assert.NotNil(t, cmd)
}

func TestStageMenuCursorBounds(t *testing.T) {
	m := NewStageMenuModel(nil, testRuntime)

	m, _ = updateMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for range 10 {
		m, _ = updateMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.items)-1, m.cursor)
}

func TestStageMenuScoreboardAndQuit(t *testing.T) {
	m := NewStageMenuModel(nil, testRuntime)
	m, _ = updateMenu(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsScoreboard())

	m = NewStageMenuModel(nil, testRuntime)
	m, _ = updateMenu(m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestStageMenuResize(t *testing.T) {
	m := NewStageMenuModel(nil, testRuntime)
	m, _ = updateMenu(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "toolong", centerText("toolong", 4))
	assert.True(t, strings.HasPrefix(centerText("♥♥", 6), "  ♥"))
}
