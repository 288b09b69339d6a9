package columns

import (
	platformcore "github.com/vovakirdan/tui-columns/internal/core"
	"github.com/vovakirdan/tui-columns/internal/games/columns/core"
)

// sprite is the terminal stand-in for a block texture.
type sprite struct {
	glyph rune
	color platformcore.Color
}

const (
	squareGlyph  = '■'
	polygonGlyph = '◆'
)

// sprites maps block texture names to glyphs.
var sprites = map[string]sprite{
	"element_blue_square.png":    {squareGlyph, platformcore.ColorBrightBlue},
	"element_red_square.png":     {squareGlyph, platformcore.ColorBrightRed},
	"element_green_square.png":   {squareGlyph, platformcore.ColorBrightGreen},
	"element_yellow_square.png":  {squareGlyph, platformcore.ColorBrightYellow},
	"element_blue_polygon.png":   {polygonGlyph, platformcore.ColorBrightBlue},
	"element_red_polygon.png":    {polygonGlyph, platformcore.ColorBrightRed},
	"element_green_polygon.png":  {polygonGlyph, platformcore.ColorBrightGreen},
	"element_yellow_polygon.png": {polygonGlyph, platformcore.ColorBrightYellow},
}

var missingSprite = sprite{'?', platformcore.ColorMagenta}

func spriteFor(b core.Block) sprite {
	if s, ok := sprites[b.TextureName()]; ok {
		return s
	}
	return missingSprite
}
