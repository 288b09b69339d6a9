package columns

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-columns/internal/config"
	platformcore "github.com/vovakirdan/tui-columns/internal/core"
	"github.com/vovakirdan/tui-columns/internal/games/columns/core"
	"github.com/vovakirdan/tui-columns/internal/registry"
)

func testRuntime(seed int64) platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// resetForTest resets g with the embedded default config.
func resetForTest(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")
	g.Reset(testRuntime(seed))
	return g
}

// wellFrom builds a default-sized board from its bottom rows.
func wellFrom(t *testing.T, bottom ...string) *Board {
	t.Helper()
	padded := make([]string, 0, 13)
	for range 13 - len(bottom) {
		padded = append(padded, "......")
	}
	return boardFrom(t, append(padded, bottom...)...)
}

func step(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	return g.Step(platformcore.FrameOf(actions...))
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{IDCampaign, IDEndless} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
		assert.NotEmpty(t, g.Controls())
	}
}

func TestGameReset(t *testing.T) {
	g := resetForTest(t, New(), 42)
	snap := g.Snapshot()

	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 1, snap.Level)
	assert.Zero(t, snap.Score)
	assert.Equal(t, core.DirUp, snap.Facing)
	assert.Equal(t, [2]core.GridPosition{core.Pos(3, 11), core.Pos(3, 12)}, snap.Falling)
	assert.Len(t, snap.Board, 13)
	assert.Equal(t, 0, g.board.Count())
	assert.False(t, g.current.Anchor().Equal(g.next.Anchor()))
}

func TestGameDeterminism(t *testing.T) {
	script := make([][]platformcore.Action, 600)
	for i := range script {
		switch i % 37 {
		case 0:
			script[i] = []platformcore.Action{platformcore.ActionLeft}
		case 5:
			script[i] = []platformcore.Action{platformcore.ActionRotateCW}
		case 11:
			script[i] = []platformcore.Action{platformcore.ActionRight, platformcore.ActionRight}
		case 20:
			script[i] = []platformcore.Action{platformcore.ActionDrop}
		case 29:
			script[i] = []platformcore.Action{platformcore.ActionDown}
		}
	}

	run := func() Snapshot {
		g := resetForTest(t, NewEndless(), 12345)
		for _, actions := range script {
			step(g, actions...)
		}
		return g.Snapshot()
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	assert.Positive(t, first.Pieces)
}

func TestGameGravity(t *testing.T) {
	g := resetForTest(t, New(), 1)
	dropEvery := Levels[0].DropEvery

	for range dropEvery - 1 {
		step(g)
	}
	assert.Equal(t, core.Pos(3, 11), g.current.Position())

	step(g)
	assert.Equal(t, core.Pos(3, 10), g.current.Position())
}

func TestGameMoveStopsAtWalls(t *testing.T) {
	g := resetForTest(t, New(), 1)

	for range 10 {
		step(g, platformcore.ActionLeft)
	}
	assert.Equal(t, 0, g.current.Position().X)

	for range 10 {
		step(g, platformcore.ActionRight)
	}
	assert.Equal(t, 5, g.current.Position().X)
}

func TestGameRotateKicksOffWall(t *testing.T) {
	g := resetForTest(t, New(), 1)
	for range 5 {
		step(g, platformcore.ActionRight)
	}
	require.Equal(t, 5, g.current.Position().X)

	step(g, platformcore.ActionRotateCW)

	assert.Equal(t, core.DirRight, g.current.Direction())
	assert.Equal(t, core.Pos(4, 11), g.current.Position())
	assert.Equal(t, core.Pos(5, 11), g.current.OrbitPosition())
}

func TestGameRotateBothWays(t *testing.T) {
	g := resetForTest(t, New(), 1)

	step(g, platformcore.ActionRotateCCW)
	assert.Equal(t, core.DirLeft, g.current.Direction())

	step(g, platformcore.ActionRotateCW)
	step(g, platformcore.ActionRotateCW)
	assert.Equal(t, core.DirRight, g.current.Direction())
}

func TestGameSoftDrop(t *testing.T) {
	g := resetForTest(t, New(), 1)

	step(g, platformcore.ActionDown)

	assert.Equal(t, core.Pos(3, 10), g.current.Position())
	assert.Equal(t, 1, g.score)
}

func TestGameHardDrop(t *testing.T) {
	g := resetForTest(t, New(), 1)
	anchor := core.NewBlock(core.ColorRed, false)
	orbit := core.NewBlock(core.ColorBlue, false)
	g.current = core.NewPiece(anchor, orbit, g.spawnPoint(), core.DirUp)
	next := g.next

	step(g, platformcore.ActionDrop)

	got, ok := g.board.At(core.Pos(3, 0))
	require.True(t, ok)
	assert.True(t, got.Equal(anchor))
	got, ok = g.board.At(core.Pos(3, 1))
	require.True(t, ok)
	assert.True(t, got.Equal(orbit))

	assert.Equal(t, 22, g.score, "11 rows at 2 points")
	assert.Equal(t, 1, g.pieces)
	assert.True(t, g.current.Anchor().Equal(next.Anchor()), "preview piece is promoted")
	assert.Equal(t, g.spawnPoint(), g.current.Position())
}

func TestGameChainScoring(t *testing.T) {
	g := resetForTest(t, New(), 1)
	g.board = wellFrom(t, "RbR...")
	breaker := core.NewBlock(core.ColorRed, true)
	blue := core.NewBlock(core.ColorBlue, false)
	g.current = core.NewPiece(breaker, blue, core.Pos(0, 11), core.DirUp)

	step(g, platformcore.ActionDrop)

	// 10 rows of hard drop, then 2 red at step 1 and 2 blue at step 2.
	assert.Equal(t, 20+2*10*1+2*10*2, g.score)
	assert.Equal(t, 4, g.cleared)
	assert.Equal(t, 2, g.maxChain)
	assert.Equal(t, "..R...", g.Snapshot().Board[12])

	stats := g.RunStats()
	assert.Equal(t, platformcore.RunStats{Level: 1, Cleared: 4, MaxChain: 2, Pieces: 1}, stats)
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	g := resetForTest(t, New(), 1)
	column := make([]string, 12)
	for i := range column {
		column[i] = "...Y.."
	}
	g.board = wellFrom(t, column...)

	g.spawn()

	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	// Input is ignored once the game is over.
	before := g.Snapshot()
	step(g, platformcore.ActionLeft)
	after := g.Snapshot()
	assert.Equal(t, before.Falling, after.Falling)
}

func TestGameLevelClearAndAdvance(t *testing.T) {
	g := resetForTest(t, New(), 1)
	g.levelProgress = Levels[0].Target - 1
	g.board = wellFrom(t, "R.....")
	g.current = core.NewPiece(core.NewBlock(core.ColorRed, true), core.NewBlock(core.ColorGreen, false), core.Pos(0, 11), core.DirUp)

	step(g, platformcore.ActionDrop)

	require.Equal(t, StateLevelCleared, g.Snapshot().State)
	assert.True(t, g.State().Paused)

	for range levelClearDelay {
		step(g)
	}

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 2, snap.Level)
	assert.Zero(t, g.levelProgress)
	assert.Zero(t, g.board.Count(), "new level starts on a fresh board")
	assert.Equal(t, Levels[1].BreakerOdds, g.breakerOdds)
}

func TestGameWinAfterLastLevel(t *testing.T) {
	g := resetForTest(t, New(), 1)
	g.levelIndex = LevelCount() - 1
	g.levelCleared = true
	g.levelClearTicks = levelClearDelay - 1

	res := step(g)

	assert.True(t, res.State.GameOver)
	assert.Equal(t, StateWin, g.Snapshot().State)
}

func TestGamePause(t *testing.T) {
	g := resetForTest(t, New(), 1)

	res := step(g, platformcore.ActionPause)
	require.True(t, res.State.Paused)

	for range 2 * Levels[0].DropEvery {
		step(g, platformcore.ActionLeft)
	}
	assert.Equal(t, core.Pos(3, 11), g.current.Position(), "nothing moves while paused")

	res = step(g, platformcore.ActionPause)
	assert.False(t, res.State.Paused)
}

func TestGameStartLevel(t *testing.T) {
	g := New()
	var _ registry.LevelStarter = g
	g.SetStartLevel(5)
	resetForTest(t, g, 1)
	assert.Equal(t, 5, g.Snapshot().Level)
	assert.Equal(t, Levels[4].DropEvery, g.dropEvery())

	// Start level applies once.
	g.Reset(testRuntime(1))
	assert.Equal(t, 1, g.Snapshot().Level)

	other := resetForTest(t, New(), 1)
	assert.Equal(t, 1, other.Snapshot().Level, "start level belongs to one game")
}

func TestGameStartLevelIgnoredInEndless(t *testing.T) {
	g := NewEndless()
	g.SetStartLevel(5)
	resetForTest(t, g, 1)
	assert.Zero(t, g.Snapshot().Level)
}

func TestGameBadConfigFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	t.Setenv("HOME", t.TempDir())
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime(1))

	assert.Equal(t, config.DefaultColumnsConfig().Board, g.cfg.Board)
	assert.Contains(t, buf.String(), "could not load config")
}

func TestGameFloorKicksLimited(t *testing.T) {
	g := resetForTest(t, New(), 1)
	grounded := func() core.Piece {
		return core.NewPiece(
			core.NewBlock(core.ColorRed, false),
			core.NewBlock(core.ColorBlue, false),
			core.Pos(3, 0), core.DirRight,
		)
	}

	for range maxFloorKicks {
		g.current = grounded()
		step(g, platformcore.ActionRotateCW)
		assert.Equal(t, core.DirDown, g.current.Direction())
		assert.Equal(t, core.Pos(3, 1), g.current.Position(), "kicked up off the floor")
	}

	g.current = grounded()
	step(g, platformcore.ActionRotateCW)
	assert.Equal(t, core.DirRight, g.current.Direction(), "no kicks left for this piece")
	assert.Equal(t, core.Pos(3, 0), g.current.Position())

	// Sideways rotations stay available.
	step(g, platformcore.ActionRotateCCW)
	assert.Equal(t, core.DirUp, g.current.Direction())

	step(g, platformcore.ActionDrop)
	assert.Zero(t, g.floorKicks, "next piece gets fresh kicks")
}

func TestGameEndlessSpeedsUp(t *testing.T) {
	g := resetForTest(t, NewEndless(), 1)

	assert.Equal(t, 45, g.dropEvery())
	g.score = 5000
	assert.Equal(t, 9, g.dropEvery())
	assert.Zero(t, g.Snapshot().Level)
	assert.Zero(t, g.RunStats().Level)
}

func TestGameTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	assert.True(t, step(g).State.Paused)

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestGameResizeKeepsRun(t *testing.T) {
	g := resetForTest(t, New(), 9)
	step(g, platformcore.ActionDrop)
	score := g.State().Score
	require.Positive(t, score)

	var _ registry.Resizer = g
	g.Resize(20, 10)
	assert.True(t, step(g).State.Paused)

	g.Resize(80, 24)
	assert.False(t, g.tooSmall)
	assert.Equal(t, score, g.State().Score)
	assert.Equal(t, 1, g.RunStats().Pieces)
}

func TestGameRender(t *testing.T) {
	g := resetForTest(t, New(), 7)
	g.board = wellFrom(t, "Y.....")
	screen := platformcore.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "COLUMNS")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "Level 1/10")

	// The 28x17 layout is centered in 80x24, the board sits under the HUD.
	originX, originY := (80-28)/2+1, (24-17)/2+hudHeight+1
	cell := screen.GetCell(originX, originY+12)
	assert.Equal(t, squareGlyph, cell.Rune, "bottom-left block")
	assert.Equal(t, platformcore.ColorBrightYellow, cell.Color)
	assert.Equal(t, squareGlyph, screen.Get(originX+1, originY+12), "blocks span two columns")

	anchor := screen.GetCell(originX+3*2, originY+1)
	assert.Equal(t, spriteFor(g.current.Anchor()).glyph, anchor.Rune, "falling anchor at row 11")
}

func TestGameRenderOverlay(t *testing.T) {
	g := resetForTest(t, New(), 7)
	g.paused = true
	screen := platformcore.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.paused = false
	g.gameOver = true
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.False(t, strings.Contains(out, "PAUSED"))
}

func TestCellPixel(t *testing.T) {
	origin := core.Px(1, 1)

	p, ok := cellPixel(origin, 13, core.Pos(0, 0))
	require.True(t, ok)
	assert.Equal(t, core.Px(1, 13), p)

	p, ok = cellPixel(origin, 13, core.Pos(5, 12))
	require.True(t, ok)
	assert.Equal(t, core.Px(11, 1), p)

	_, ok = cellPixel(origin, 13, core.Pos(0, 13))
	assert.False(t, ok)
	_, ok = cellPixel(origin, 13, core.Pos(-1, 0))
	assert.False(t, ok)
}

func TestSpritesCoverEveryBlock(t *testing.T) {
	for _, c := range core.AllColors() {
		for _, breaker := range []bool{false, true} {
			s := spriteFor(core.NewBlock(c, breaker))
			assert.NotEqual(t, missingSprite, s, "%v breaker=%v", c, breaker)
			if breaker {
				assert.Equal(t, polygonGlyph, s.glyph)
			} else {
				assert.Equal(t, squareGlyph, s.glyph)
			}
		}
	}
}
