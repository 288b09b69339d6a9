package columns

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-columns/internal/config"
	platformcore "github.com/vovakirdan/tui-columns/internal/core"
	"github.com/vovakirdan/tui-columns/internal/games/columns/core"
	"github.com/vovakirdan/tui-columns/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game IDs used by the registry and score storage.
const (
	IDCampaign = "columns"
	IDEndless  = "columns_endless"
)

// levelClearDelay is how long the level-clear overlay stays up (2s at 60fps).
const levelClearDelay = 120

// maxFloorKicks caps how often one piece may be kicked upward by a rotation.
const maxFloorKicks = 2

// Game implements the Columns puzzle game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg        config.ColumnsConfig
	difficulty *config.DifficultyManager

	board   *Board
	current core.Piece
	next    core.Piece

	score         int
	cleared       int // Blocks cleared this run
	levelProgress int // Blocks cleared this level
	lastChain     int
	maxChain      int
	pieces        int // Pieces locked this run

	levelIndex  int
	startLevel  int // Applied once by the next Reset
	breakerOdds int
	dropTimer   int
	floorKicks  int

	screenW int
	screenH int

	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Package-level settings read by every Reset.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset, _ = config.ParsePreset(preset)
}

func settings() (string, config.DifficultyPreset) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return configPath, difficultyPreset
}

// SetStartLevel sets the level (1-10) the next campaign Reset starts on.
// 0 means start from the beginning. It applies to this game only.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Columns (Endless)"
	}
	return "Columns"
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑/X: Rotate | Z: Rotate back | ↓: Soft drop | Space: Drop | P: Pause | Q: Quit"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	path, preset := settings()
	cfg, err := config.LoadColumns(path)
	if err != nil {
		log.Warn("could not load config, using defaults", "path", path, "error", err)
		cfg = config.DefaultColumnsConfig()
	}
	if preset != "" {
		config.ApplyColumnsPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.cleared = 0
	g.levelProgress = 0
	g.lastChain = 0
	g.maxChain = 0
	g.pieces = 0
	g.dropTimer = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	g.board = NewBoard(cfg.Board.Width, cfg.Board.Height)

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= LevelCount() {
		g.levelIndex = g.startLevel - 1
	} else {
		g.levelIndex = 0
	}
	g.startLevel = 0
	g.loadLevel()

	g.checkScreenSize()

	g.next = g.drawPiece()
	g.spawn()
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.breakerOdds = g.cfg.Pieces.BreakerOdds
		return
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}
	g.breakerOdds = level.BreakerOdds
}

// checkScreenSize checks if the screen is large enough for board, frame,
// side panel and HUD.
func (g *Game) checkScreenSize() {
	minW, minH := g.layoutSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// spawnPoint is the centre column, one row below the top so the orbiting
// block starts inside the well.
func (g *Game) spawnPoint() core.GridPosition {
	return core.Pos(g.board.Width()/2, g.board.Height()-2)
}

func (g *Game) drawPiece() core.Piece {
	sp := g.spawnPoint()
	return core.RandPieceFrom(g.rng, sp.X, sp.Y, g.breakerOdds)
}

// spawn promotes the preview piece and draws a new preview.
// The game ends when the new piece has no room.
func (g *Game) spawn() {
	g.current = g.next.DupTo(g.spawnPoint(), core.DirUp)
	g.next = g.drawPiece()
	g.dropTimer = 0
	g.floorKicks = 0
	if !g.board.Fits(g.current) {
		g.gameOver = true
	}
}

// dropEvery returns the current gravity interval in ticks.
func (g *Game) dropEvery() int {
	if g.mode == ModeCampaign {
		if level := GetLevel(g.levelIndex); level != nil {
			return level.DropEvery
		}
	}
	return g.difficulty.Interval(g.cfg.Timing.DropEvery, g.cfg.Timing.MinDropEvery, g.score, int(g.tick))
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if g.gameOver || g.won {
		return platformcore.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if g.handleInput(in) {
		return platformcore.StepResult{State: g.State()}
	}

	g.dropTimer++
	if g.dropTimer >= g.dropEvery() {
		g.dropTimer = 0
		if !g.tryMove(core.DirDown) {
			g.lockPiece()
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// handleInput applies one frame of player input.
// Returns true if the piece was locked.
func (g *Game) handleInput(in platformcore.InputFrame) bool {
	if in.Has(platformcore.ActionLeft) {
		g.tryMove(core.DirLeft)
	}
	if in.Has(platformcore.ActionRight) {
		g.tryMove(core.DirRight)
	}
	if in.Has(platformcore.ActionRotateCW) {
		g.tryRotate(g.current.Clockwise())
	}
	if in.Has(platformcore.ActionRotateCCW) {
		g.tryRotate(g.current.AntiClockwise())
	}

	switch {
	case in.Has(platformcore.ActionDrop):
		rows := 0
		for g.tryMove(core.DirDown) {
			rows++
		}
		g.score += 2 * rows * g.cfg.Timing.SoftDropPoints
		g.lockPiece()
		return true
	case in.Has(platformcore.ActionDown):
		g.dropTimer = 0
		if g.tryMove(core.DirDown) {
			g.score += g.cfg.Timing.SoftDropPoints
			return false
		}
		g.lockPiece()
		return true
	}
	return false
}

// tryMove shifts the falling piece if the board allows it.
func (g *Game) tryMove(d core.Direction) bool {
	moved := g.current.Offset(d)
	if !g.board.Fits(moved) {
		return false
	}
	g.current = moved
	return true
}

// tryRotate accepts a rotated piece as is, or kicked left, right or up.
// Up kicks are limited per piece so a grounded piece cannot climb forever.
func (g *Game) tryRotate(rotated core.Piece) bool {
	candidates := [...]core.Piece{
		rotated,
		rotated.Offset(core.DirLeft),
		rotated.Offset(core.DirRight),
	}
	for _, p := range candidates {
		if g.board.Fits(p) {
			g.current = p
			return true
		}
	}

	if g.floorKicks >= maxFloorKicks {
		return false
	}
	if up := rotated.Offset(core.DirUp); g.board.Fits(up) {
		g.current = up
		g.floorKicks++
		return true
	}
	return false
}

// lockPiece lands the falling piece, resolves clears and spawns the next one.
func (g *Game) lockPiece() {
	g.board.Lock(g.current)
	g.pieces++

	res := g.board.Resolve()
	g.applyResolution(res)

	if g.mode == ModeCampaign {
		if level := GetLevel(g.levelIndex); level != nil && g.levelProgress >= level.Target {
			g.levelCleared = true
			g.levelClearTicks = 0
			return
		}
	}

	g.spawn()
}

// applyResolution scores a chain: step n clears pay n times the block points.
func (g *Game) applyResolution(res Resolution) {
	for i, n := range res.Steps {
		g.score += n * g.cfg.Scoring.BlockPoints * (i + 1)
	}
	g.cleared += res.Cleared()
	g.levelProgress += res.Cleared()
	g.lastChain = res.Chain()
	if g.lastChain > g.maxChain {
		g.maxChain = g.lastChain
	}
}

// advanceLevel moves to the next level on a fresh board.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.levelProgress = 0
	g.loadLevel()
	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.next = g.drawPiece()
	g.spawn()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// RunStats reports the run totals saved alongside the score.
// Endless runs report level 0.
func (g *Game) RunStats() platformcore.RunStats {
	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}
	return platformcore.RunStats{
		Level:    level,
		Cleared:  g.cleared,
		MaxChain: g.maxChain,
		Pieces:   g.pieces,
	}
}
