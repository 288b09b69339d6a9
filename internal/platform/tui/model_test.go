package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-columns/internal/core"
	"github.com/vovakirdan/tui-columns/internal/registry"
	"github.com/vovakirdan/tui-columns/internal/storage"
)

// stubGame records what the model asks of it.
type stubGame struct {
	resets  int
	steps   int
	inputs  []core.InputFrame
	resized [2]int
	over    bool
	score   int
	stats   core.RunStats
}

func (g *stubGame) ID() string       { return "stub" }
func (g *stubGame) Title() string    { return "Stub" }
func (g *stubGame) Controls() string { return "none" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func (g *stubGame) RunStats() core.RunStats { return g.stats }

func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

var (
	_ registry.Game          = (*stubGame)(nil)
	_ registry.StatsReporter = (*stubGame)(nil)
	_ registry.Resizer       = (*stubGame)(nil)
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	require.NotNil(t, next)
	return next, cmd
}

func feed(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = update(t, next, msg)
	}
	return next.(Model)
}

func TestModelTickPassesInput(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()
	assert.Equal(t, 1, game.resets)

	feed(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runeKey(' '), TickMsg{}, TickMsg{})

	require.Len(t, game.inputs, 2)
	assert.True(t, game.inputs[0].Has(core.ActionLeft))
	assert.True(t, game.inputs[0].Has(core.ActionDrop))
	assert.Empty(t, game.inputs[1].Actions, "input is cleared after each tick")
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())

	next, cmd := update(t, m, runeKey('q'))
	assert.True(t, next.(Model).IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())

	m = feed(t, m, TickMsg{}, runeKey('b'))
	assert.False(t, m.BackToMenu())

	game.over = true
	m = feed(t, m, TickMsg{}, runeKey('b'))
	assert.True(t, m.BackToMenu())
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m = feed(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, [2]int{100, 30}, game.resized)
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 100, m.screen.Width())
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())

	// Restart is ignored mid-run.
	m = feed(t, m, runeKey('r'), TickMsg{})
	assert.Zero(t, game.resets)

	game.over = true
	m = feed(t, m, TickMsg{}, runeKey('r'), TickMsg{})
	assert.Equal(t, 1, game.resets)
	assert.False(t, m.State().GameOver)
	assert.False(t, m.scoreSaved)
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &stubGame{
		score: 120,
		stats: core.RunStats{Level: 2, Cleared: 12, MaxChain: 3, Pieces: 20},
	}
	m := NewModel(game, store, testConfig())

	m = feed(t, m, TickMsg{})
	game.over = true
	feed(t, m, TickMsg{}, TickMsg{}, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 120, scores[0].Score)
	assert.Equal(t, 2, scores[0].Level)
	assert.Equal(t, 12, scores[0].Cleared)
	assert.Equal(t, 3, scores[0].MaxChain)
	assert.Equal(t, 20, scores[0].Pieces)
}

func TestSaveResultSkipsEmptyRuns(t *testing.T) {
	assert.NoError(t, saveResult(nil, &stubGame{}, 500))

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, saveResult(store, &stubGame{}, 0))
	high, err := store.HighScore("stub")
	require.NoError(t, err)
	assert.Zero(t, high)
}

func TestModelScreenshot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewModel(&stubGame{}, nil, testConfig())

	path, err := m.saveScreenshot()
	require.NoError(t, err)
	assert.Equal(t, screenshotDir(), filepath.Dir(path))
	assert.FileExists(t, path)
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	assert.Contains(t, m.View(), "STUB")
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextWithColor(0, 0, "AB", core.ColorBrightRed)
	s.DrawText(2, 1, "cd")

	out := RenderScreen(s)
	assert.Contains(t, out, "AB")
	assert.Contains(t, out, "cd")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

