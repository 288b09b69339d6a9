package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Block is a single colored block.
//
// A block's identity is assigned once by NewBlock and never reused.
// Two blocks are the same block only if they share that identity, even
// when color and breaker match; compare with Equal and key maps by ID.
// The zero Block has no identity and stands for "no block".
type Block struct {
	id      uuid.UUID
	color   Color
	breaker bool
}

// NewBlock creates a block with a fresh identity.
// Panics only if the system entropy source is unusable.
func NewBlock(color Color, breaker bool) Block {
	return Block{
		id:      uuid.New(),
		color:   color,
		breaker: breaker,
	}
}

// ID returns the block's identity token.
func (b Block) ID() uuid.UUID { return b.id }

// Color returns the block's color.
func (b Block) Color() Color { return b.color }

// Breaker reports whether the block clears its connected color group.
func (b Block) Breaker() bool { return b.breaker }

// IsZero reports whether b is the zero Block.
func (b Block) IsZero() bool { return b.id == uuid.Nil }

// Equal reports whether b and other are the same block.
func (b Block) Equal(other Block) bool {
	return b.id == other.id
}

// TextureName returns the sprite name for the block's color and kind.
func (b Block) TextureName() string {
	if b.breaker {
		switch b.color {
		case ColorBlue:
			return "element_blue_polygon.png"
		case ColorRed:
			return "element_red_polygon.png"
		case ColorGreen:
			return "element_green_polygon.png"
		case ColorYellow:
			return "element_yellow_polygon.png"
		}
	}
	switch b.color {
	case ColorBlue:
		return "element_blue_square.png"
	case ColorRed:
		return "element_red_square.png"
	case ColorGreen:
		return "element_green_square.png"
	case ColorYellow:
		return "element_yellow_square.png"
	}
	return ""
}

// String returns a short debug representation.
func (b Block) String() string {
	kind := "block"
	if b.breaker {
		kind = "breaker"
	}
	return fmt.Sprintf("%s %s %s", b.color, kind, b.id.String()[:8])
}
