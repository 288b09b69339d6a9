package columns

import (
	"strings"

	"github.com/vovakirdan/tui-columns/internal/games/columns/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures game state for determinism testing and replay.
// Block identities are left out since they are random per process.
type Snapshot struct {
	Tick     uint64
	Mode     string // "campaign" or "endless"
	Level    int    // Current level (1-indexed), 0 for endless
	Score    int
	Cleared  int
	MaxChain int
	Pieces   int
	Board    []string // Rows top first; '.' empty, upper-case plain, lower-case breaker
	Falling  [2]core.GridPosition
	Facing   core.Direction
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	blocks := g.current.Blocks()
	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Level:    level,
		Score:    g.score,
		Cleared:  g.cleared,
		MaxChain: g.maxChain,
		Pieces:   g.pieces,
		Board:    boardRows(g.board),
		Falling:  [2]core.GridPosition{blocks[0].Position(), blocks[1].Position()},
		Facing:   g.current.Direction(),
		State:    state,
	}
}

// boardRows renders the board as text rows, top first.
func boardRows(b *Board) []string {
	out := make([]string, b.Height())
	for y := 0; y < b.Height(); y++ {
		var sb strings.Builder
		for x := 0; x < b.Width(); x++ {
			blk, ok := b.At(core.Pos(x, y))
			if !ok {
				sb.WriteByte('.')
				continue
			}
			letter := strings.ToUpper(blk.Color().String()[:1])
			if blk.Breaker() {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
		}
		out[b.Height()-1-y] = sb.String()
	}
	return out
}
