package tui

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-columns/internal/games/columns"
	"github.com/vovakirdan/tui-columns/internal/registry"
)

func modeFeed(t *testing.T, m ColumnsModeModel, msgs ...tea.Msg) ColumnsModeModel {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = update(t, next, msg)
	}
	return next.(ColumnsModeModel)
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestColumnsModeCampaignAndEndless(t *testing.T) {
	m := NewColumnsModeModel(80, 24)
	assert.Nil(t, m.Selected())

	m = modeFeed(t, m, keyEnter)
	require.NotNil(t, m.Selected())
	assert.Equal(t, ColumnsSelection{GameID: columns.IDCampaign}, *m.Selected())

	m = modeFeed(t, NewColumnsModeModel(80, 24), keyDown, keyEnter)
	require.NotNil(t, m.Selected())
	assert.Equal(t, columns.IDEndless, m.Selected().GameID)
}

func TestColumnsModeLevelSelect(t *testing.T) {
	m := modeFeed(t, NewColumnsModeModel(80, 24), keyDown, keyDown, keyEnter)
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "SELECT LEVEL")
	assert.Contains(t, m.View(), "Column Master")

	for range 20 {
		m = modeFeed(t, m, keyDown)
	}
	m = modeFeed(t, m, keyEnter)
	require.NotNil(t, m.Selected())
	assert.Equal(t, ColumnsSelection{GameID: columns.IDCampaign, Level: columns.LevelCount()}, *m.Selected())
}

func TestColumnsModeBack(t *testing.T) {
	// Esc in the level list returns to the mode list.
	m := modeFeed(t, NewColumnsModeModel(80, 24), keyDown, keyDown, keyEnter, keyEsc)
	assert.False(t, m.WantsBack())
	assert.Contains(t, m.View(), "Select game mode:")

	m = modeFeed(t, m, keyEsc)
	assert.True(t, m.WantsBack())
	assert.Nil(t, m.Selected())

	m = modeFeed(t, NewColumnsModeModel(80, 24), runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

// levelAfterReset starts sel and reports the level its first run begins on.
func levelAfterReset(sel ColumnsSelection) (int, error) {
	game, err := sel.Start()
	if err != nil {
		return 0, err
	}
	game.Reset(testConfig())
	return game.(registry.StatsReporter).RunStats().Level, nil
}

func startedLevel(t *testing.T, sel ColumnsSelection) int {
	t.Helper()
	level, err := levelAfterReset(sel)
	require.NoError(t, err)
	return level
}

func TestColumnsSelectionStart(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	game, err := ColumnsSelection{GameID: columns.IDCampaign, Level: 3}.Start()
	require.NoError(t, err)
	assert.Equal(t, columns.IDCampaign, game.ID())
	assert.Equal(t, 3, startedLevel(t, ColumnsSelection{GameID: columns.IDCampaign, Level: 3}))
	assert.Equal(t, 1, startedLevel(t, ColumnsSelection{GameID: columns.IDCampaign}))

	game, err = ColumnsSelection{GameID: columns.IDEndless, Level: 3}.Start()
	require.NoError(t, err)
	assert.Equal(t, columns.IDEndless, game.ID())
	assert.Zero(t, startedLevel(t, ColumnsSelection{GameID: columns.IDEndless, Level: 3}))

	_, err = ColumnsSelection{GameID: "tetris"}.Start()
	assert.Error(t, err)
}

func TestColumnsSelectionStartConcurrent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	const rounds = 100
	levels := make([][2]int, rounds)

	var wg sync.WaitGroup
	for i := range rounds {
		wg.Add(2)
		go func() {
			defer wg.Done()
			levels[i][0], _ = levelAfterReset(ColumnsSelection{GameID: columns.IDCampaign, Level: 5})
		}()
		go func() {
			defer wg.Done()
			levels[i][1], _ = levelAfterReset(ColumnsSelection{GameID: columns.IDCampaign})
		}()
	}
	wg.Wait()

	for i, got := range levels {
		assert.Equal(t, [2]int{5, 1}, got, "round %d", i)
	}
}
