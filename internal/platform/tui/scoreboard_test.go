package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-columns/internal/games/columns"
	"github.com/vovakirdan/tui-columns/internal/storage"
)

func scoreboardFeed(t *testing.T, m ScoreboardModel, msgs ...tea.Msg) ScoreboardModel {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = update(t, next, msg)
	}
	return next.(ScoreboardModel)
}

func TestScoreboardShowsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveRun(storage.RunRecord{GameID: columns.IDCampaign, Score: 840, Level: 3, Cleared: 57, MaxChain: 4})
	require.NoError(t, err)
	_, err = store.SaveRun(storage.RunRecord{GameID: columns.IDEndless, Score: 1290, Cleared: 80, MaxChain: 5})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "Columns (Endless)", "every mode has a tab")
	assert.Contains(t, view, "840")
	assert.Contains(t, view, "Cleared")
	assert.Contains(t, view, "Best level 3")
	assert.NotContains(t, view, "1290")

	m = scoreboardFeed(t, m, tea.KeyMsg{Type: tea.KeyTab})
	view = m.View()
	assert.Contains(t, view, "1290")
	assert.Contains(t, view, "Best chain 5")
	assert.NotContains(t, view, "Best level", "endless runs have no level")

	// Wraps around both ways.
	m = scoreboardFeed(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "840")
	m = scoreboardFeed(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Contains(t, m.View(), "1290")
}

func TestScoreboardEmptyAndBack(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24)
	assert.Contains(t, m.View(), "No scores recorded yet.")
	assert.NotContains(t, m.View(), "Runs")

	m = scoreboardFeed(t, m, keyEsc)
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())

	m = scoreboardFeed(t, NewScoreboardModel(nil, 60, 24), runeKey('q'))
	assert.True(t, m.IsQuitting())
}
