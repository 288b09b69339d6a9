package core

import (
	"fmt"
	"math"
	"math/bits"
)

// GridPosition is a cell on the board grid.
// X increases to the right, Y increases upward (row 0 is the floor).
// Bounds are enforced by the board, not here.
type GridPosition struct {
	X int
	Y int
}

// Pos is a convenience constructor for GridPosition.
func Pos(x, y int) GridPosition {
	return GridPosition{X: x, Y: y}
}

// String returns a string representation of the position.
func (p GridPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset returns the position one step away in the given direction.
func (p GridPosition) Offset(d Direction) GridPosition {
	dx, dy := d.Delta()
	return GridPosition{X: p.X + dx, Y: p.Y + dy}
}

// CheckedOffset is Offset that reports ErrGridOverflow instead of wrapping.
func (p GridPosition) CheckedOffset(d Direction) (GridPosition, error) {
	dx, dy := d.Delta()
	if overflows(p.X, dx) || overflows(p.Y, dy) {
		return p, fmt.Errorf("%w: %v step %v", ErrGridOverflow, p, d)
	}
	return GridPosition{X: p.X + dx, Y: p.Y + dy}, nil
}

// overflows reports whether v+delta leaves the int range for a unit delta.
func overflows(v, delta int) bool {
	return (delta > 0 && v == math.MaxInt) || (delta < 0 && v == math.MinInt)
}

// PixelPosition is an unsigned screen-space coordinate.
// It has no implicit relation to GridPosition.
type PixelPosition struct {
	X uint32
	Y uint32
}

// Px is a convenience constructor for PixelPosition.
func Px(x, y uint32) PixelPosition {
	return PixelPosition{X: x, Y: y}
}

// Add returns the component-wise sum of two pixel positions.
// Returns ErrPixelOverflow if either component would wrap.
func (p PixelPosition) Add(other PixelPosition) (PixelPosition, error) {
	x, carryX := bits.Add32(p.X, other.X, 0)
	y, carryY := bits.Add32(p.Y, other.Y, 0)
	if carryX != 0 || carryY != 0 {
		return p, fmt.Errorf("%w: (%d,%d)+(%d,%d)", ErrPixelOverflow, p.X, p.Y, other.X, other.Y)
	}
	return PixelPosition{X: x, Y: y}, nil
}

// Dimension is a width/height extent, e.g. a sprite or board size.
type Dimension struct {
	W uint32
	H uint32
}

// NewDimension creates a Dimension.
func NewDimension(w, h uint32) Dimension {
	return Dimension{W: w, H: h}
}

// DimensionFromPair creates a Dimension from a {w, h} pair.
func DimensionFromPair(pair [2]uint32) Dimension {
	return NewDimension(pair[0], pair[1])
}

// Width returns the horizontal extent.
func (d Dimension) Width() uint32 { return d.W }

// Height returns the vertical extent.
func (d Dimension) Height() uint32 { return d.H }
