package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-columns/internal/core"
	"github.com/vovakirdan/tui-columns/internal/storage"
)

func sessionFeed(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = update(t, next, msg)
	}
	return next.(SessionModel)
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	return NewSessionModel(nil, cfg, "alice")
}

func TestSessionID(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)
	assert.True(t, strings.HasPrefix(a.ID(), "alice-"))
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSessionPlayAndReturnToMenu(t *testing.T) {
	m := newTestSession(t)
	assert.Contains(t, m.View(), "C O L U M N S")

	m = sessionFeed(t, m, keyEnter)
	require.Equal(t, screenMode, m.screen)
	assert.Contains(t, m.View(), "Select game mode:")

	m = sessionFeed(t, m, keyEnter)
	require.Equal(t, screenGame, m.screen)
	assert.Contains(t, m.View(), "NEXT")

	// Back is ignored while the piece is falling.
	m = sessionFeed(t, m, TickMsg{}, runeKey('b'))
	assert.Equal(t, screenGame, m.screen)

	m = sessionFeed(t, m, runeKey('p'), TickMsg{})
	require.True(t, m.game.State().Paused)
	assert.Contains(t, m.View(), "PAUSED")

	m = sessionFeed(t, m, runeKey('b'))
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, MenuChoiceNone, m.menu.Choice())
}

func TestSessionScoreboard(t *testing.T) {
	m := sessionFeed(t, newTestSession(t), tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m = sessionFeed(t, m, keyEsc)
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionModeBackAndQuit(t *testing.T) {
	m := sessionFeed(t, newTestSession(t), keyEnter, keyEsc)
	assert.Equal(t, screenMenu, m.screen)

	m = sessionFeed(t, m, runeKey('q'))
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestSessionTracksResize(t *testing.T) {
	m := sessionFeed(t, newTestSession(t), tea.WindowSizeMsg{Width: 100, Height: 40}, keyEnter, keyEnter)
	require.Equal(t, screenGame, m.screen)
	assert.Equal(t, 100, m.game.config.ScreenW)
	assert.Equal(t, 40, m.game.screen.Height())
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	assert.Equal(t, ":23234", cfg.Address)
	assert.Equal(t, "~/.columns/scores.db", cfg.DBPath)
	assert.Positive(t, cfg.IdleTimeout)
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
		IdleTimeout: time.Minute,
	})
	require.NoError(t, err)
	require.NotNil(t, srv.store)

	_, err = srv.store.SaveRun(storage.RunRecord{GameID: "columns", Score: 10})
	require.NoError(t, err)

	require.NoError(t, srv.Shutdown())

	_, err = srv.store.TopScores("columns", 1)
	assert.Error(t, err, "store is closed after the server drains")
}
