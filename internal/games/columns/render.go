package columns

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-columns/internal/core"
	"github.com/vovakirdan/tui-columns/internal/games/columns/core"
)

// cellSize is the on-screen size of one board cell. Terminal cells are
// roughly twice as tall as wide, so two columns make a square block.
var cellSize = core.NewDimension(2, 1)

const (
	hudHeight  = 2
	panelWidth = 14 // Gap plus the side panel right of the board
)

// boardFrameSize returns the board size on screen including its frame.
func (g *Game) boardFrameSize() (int, int) {
	w := g.cfg.Board.Width*int(cellSize.Width()) + 2
	h := g.cfg.Board.Height*int(cellSize.Height()) + 2
	return w, h
}

// layoutSize returns the minimum screen size for the full layout.
func (g *Game) layoutSize() (int, int) {
	w, h := g.boardFrameSize()
	return w + panelWidth, h + hudHeight
}

// cellPixel maps a grid position in an area of the given row count to its
// top-left screen position. Grid rows grow upward, screen rows downward.
func cellPixel(origin core.PixelPosition, rows int, pos core.GridPosition) (core.PixelPosition, bool) {
	if pos.X < 0 || pos.Y < 0 || pos.Y >= rows {
		return origin, false
	}
	offset := core.Px(uint32(pos.X)*cellSize.Width(), uint32(rows-1-pos.Y)*cellSize.Height())
	p, err := origin.Add(offset)
	return p, err == nil
}

// drawBlock paints one block sprite over a whole cell.
func drawBlock(dst *platformcore.Screen, origin core.PixelPosition, rows int, pb core.PositionedBlock) {
	p, ok := cellPixel(origin, rows, pb.Position())
	if !ok {
		return
	}
	s := spriteFor(pb.Block())
	for dy := range cellSize.Height() {
		for dx := range cellSize.Width() {
			dst.SetWithColor(int(p.X+dx), int(p.Y+dy), s.glyph, s.color)
		}
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	totalW, totalH := g.layoutSize()
	frameW, frameH := g.boardFrameSize()
	layout := platformcore.CenteredRect(g.screenW, g.screenH, totalW, totalH)
	frame := platformcore.NewRect(layout.X, layout.Y+hudHeight, frameW, frameH)

	g.renderHUD(dst, layout)

	dst.DrawBoxWithColor(frame, platformcore.ColorGray)
	origin := core.Px(uint32(frame.X+1), uint32(frame.Y+1))
	rows := g.board.Height()
	for _, pb := range g.board.Blocks() {
		drawBlock(dst, origin, rows, pb)
	}
	if g.falling() {
		for _, pb := range g.current.Blocks() {
			drawBlock(dst, origin, rows, pb)
		}
	}

	g.renderPanel(dst, frame.Right()+2, frame.Y)
	g.renderOverlays(dst, frame)
}

// falling reports whether a piece is in play.
func (g *Game) falling() bool {
	return !g.gameOver && !g.won && !g.levelCleared
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and level info along the top of area.
func (g *Game) renderHUD(dst *platformcore.Screen, area platformcore.Rect) {
	x, y, width := area.X, area.Y, area.W
	title := "COLUMNS"
	if g.mode == ModeEndless {
		title = "COLUMNS ENDLESS"
	}
	dst.DrawTextWithColor(x+(width-len(title))/2, y, title, platformcore.ColorCyan)

	dst.DrawText(x, y+1, fmt.Sprintf("Score: %d", g.score))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Level %d/%d", g.levelIndex+1, LevelCount())
	} else {
		info = fmt.Sprintf("Speed x%.1f", g.difficulty.Speed(1.0, g.score, int(g.tick)))
	}
	dst.DrawText(platformcore.Max(x, x+width-len(info)), y+1, info)
}

// renderPanel draws the next-piece preview and run stats.
func (g *Game) renderPanel(dst *platformcore.Screen, x, y int) {
	dst.DrawText(x, y, "NEXT")

	box := platformcore.NewRect(x, y+1, int(cellSize.Width())+2, 2*int(cellSize.Height())+2)
	dst.DrawBoxWithColor(box, platformcore.ColorGray)
	if g.falling() {
		origin := core.Px(uint32(box.X+1), uint32(box.Y+1))
		base := g.next.Position()
		for _, pb := range g.next.Blocks() {
			rel := core.Place(pb.Block(), core.Pos(pb.X()-base.X, pb.Y()-base.Y))
			drawBlock(dst, origin, 2, rel)
		}
	}

	line := box.Bottom() + 1
	if g.mode == ModeCampaign {
		if level := GetLevel(g.levelIndex); level != nil {
			dst.DrawText(x, line, level.Name)
			dst.DrawText(x, line+1, fmt.Sprintf("Clear %d/%d", g.levelProgress, level.Target))
			line += 3
		}
	} else {
		dst.DrawText(x, line, fmt.Sprintf("Cleared %d", g.cleared))
		line += 2
	}
	dst.DrawText(x, line, fmt.Sprintf("Chain %d", g.lastChain))
	dst.DrawText(x, line+1, fmt.Sprintf("Best  %d", g.maxChain))
}

// renderOverlays draws game state overlays centered on the board.
func (g *Game) renderOverlays(dst *platformcore.Screen, frame platformcore.Rect) {
	cx, cy := frame.Center()

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "P to resume", "B for menu")
	case g.levelCleared:
		if g.levelIndex >= LevelCount()-1 {
			drawOverlay(dst, cx, cy, "LEVEL CLEAR", "Final level!")
		} else {
			drawOverlay(dst, cx, cy, "LEVEL CLEAR", fmt.Sprintf("Next: %d", g.levelIndex+2))
		}
	case g.won:
		drawOverlay(dst, cx, cy, "YOU WIN!", fmt.Sprintf("Score %d", g.score), "R to restart", "B for menu")
	case g.gameOver:
		drawOverlay(dst, cx, cy, "GAME OVER", fmt.Sprintf("Cleared %d", g.cleared), "R to restart", "B for menu")
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = platformcore.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-utf8.RuneCountInString(line)/2, box.Y+1+i, line)
	}
}
