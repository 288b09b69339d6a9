package columns

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-columns/internal/games/columns/core"
)

// Board is the Columns playfield. Row 0 is the floor.
// It owns every placed block and decides what is legal.
type Board struct {
	width  int
	height int
	cells  []core.Block // row-major from the floor, zero Block = empty
}

// NewBoard creates an empty board of width×height cells.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]core.Block, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Size returns the board extent in cells.
func (b *Board) Size() core.Dimension {
	return core.NewDimension(uint32(b.width), uint32(b.height))
}

func (b *Board) index(pos core.GridPosition) int {
	return pos.Y*b.width + pos.X
}

func (b *Board) position(idx int) core.GridPosition {
	return core.Pos(idx%b.width, idx/b.width)
}

// InBounds reports whether pos is a cell of the board.
func (b *Board) InBounds(pos core.GridPosition) bool {
	return pos.X >= 0 && pos.X < b.width && pos.Y >= 0 && pos.Y < b.height
}

// At returns the block at pos, if any.
func (b *Board) At(pos core.GridPosition) (core.Block, bool) {
	if !b.InBounds(pos) {
		return core.Block{}, false
	}
	blk := b.cells[b.index(pos)]
	return blk, !blk.IsZero()
}

// Occupied reports whether pos holds a block. Cells outside the board
// count as occupied so walls and floor block movement.
func (b *Board) Occupied(pos core.GridPosition) bool {
	if !b.InBounds(pos) {
		return true
	}
	return !b.cells[b.index(pos)].IsZero()
}

// Fits reports whether both blocks of the piece sit on empty cells.
func (b *Board) Fits(p core.Piece) bool {
	for _, pb := range p.Blocks() {
		if b.Occupied(pb.Position()) {
			return false
		}
	}
	return true
}

// Put places a block on an empty in-bounds cell.
// Returns false if the cell is outside the board or taken.
func (b *Board) Put(pb core.PositionedBlock) bool {
	if b.Occupied(pb.Position()) {
		return false
	}
	b.cells[b.index(pb.Position())] = pb.Block()
	return true
}

// Lock drops the piece's blocks straight down, lowest first, and places
// them where they come to rest. Blocks outside the board are discarded.
// Returns the blocks at their resting positions.
func (b *Board) Lock(p core.Piece) []core.PositionedBlock {
	landed := make([]core.PositionedBlock, 0, 2)
	for _, pb := range p.Blocks() {
		if !b.InBounds(pb.Position()) {
			continue
		}
		for !b.Occupied(pb.Position().Offset(core.DirDown)) {
			pb = pb.Offset(core.DirDown)
		}
		if b.Put(pb) {
			landed = append(landed, pb)
		}
	}
	return landed
}

// Settle lets floating blocks fall within their column, keeping order.
// Reports whether anything moved.
func (b *Board) Settle() bool {
	moved := false
	for x := 0; x < b.width; x++ {
		floor := 0
		for y := 0; y < b.height; y++ {
			idx := b.index(core.Pos(x, y))
			blk := b.cells[idx]
			if blk.IsZero() {
				continue
			}
			if y != floor {
				b.cells[b.index(core.Pos(x, floor))] = blk
				b.cells[idx] = core.Block{}
				moved = true
			}
			floor++
		}
	}
	return moved
}

// Crash clears every same-colored group that contains a breaker touching
// another block of its color. Returns the cleared blocks in board order.
func (b *Board) Crash() []core.PositionedBlock {
	doomed := intmap.NewSet[int](len(b.cells))

	for idx, blk := range b.cells {
		if blk.IsZero() || !blk.Breaker() || doomed.Has(idx) {
			continue
		}
		if !b.hasSameColorNeighbor(b.position(idx), blk.Color()) {
			continue
		}
		b.floodFill(idx, blk.Color(), doomed)
	}

	if doomed.Len() == 0 {
		return nil
	}

	cleared := make([]core.PositionedBlock, 0, doomed.Len())
	for idx := range b.cells {
		if !doomed.Has(idx) {
			continue
		}
		cleared = append(cleared, core.Place(b.cells[idx], b.position(idx)))
		b.cells[idx] = core.Block{}
	}
	return cleared
}

func (b *Board) hasSameColorNeighbor(pos core.GridPosition, color core.Color) bool {
	for _, d := range core.AllDirections() {
		if blk, ok := b.At(pos.Offset(d)); ok && blk.Color() == color {
			return true
		}
	}
	return false
}

// floodFill adds the connected group of color reachable from start to set.
func (b *Board) floodFill(start int, color core.Color, set *intmap.Set[int]) {
	stack := []int{start}
	set.Add(start)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pos := b.position(idx)
		for _, d := range core.AllDirections() {
			next := pos.Offset(d)
			blk, ok := b.At(next)
			if !ok || blk.Color() != color {
				continue
			}
			ni := b.index(next)
			if set.Has(ni) {
				continue
			}
			set.Add(ni)
			stack = append(stack, ni)
		}
	}
}

// Resolution describes the chain reaction that followed a lock.
type Resolution struct {
	Steps []int // Blocks cleared at each chain step
}

// Cleared returns the total number of blocks cleared.
func (r Resolution) Cleared() int {
	total := 0
	for _, n := range r.Steps {
		total += n
	}
	return total
}

// Chain returns the number of chain steps that cleared something.
func (r Resolution) Chain() int {
	return len(r.Steps)
}

// Resolve settles and crashes until the board is stable.
func (b *Board) Resolve() Resolution {
	var res Resolution
	for {
		b.Settle()
		cleared := b.Crash()
		if len(cleared) == 0 {
			return res
		}
		res.Steps = append(res.Steps, len(cleared))
	}
}

// Blocks returns every placed block in board order, floor first.
func (b *Board) Blocks() []core.PositionedBlock {
	var out []core.PositionedBlock
	for idx, blk := range b.cells {
		if !blk.IsZero() {
			out = append(out, core.Place(blk, b.position(idx)))
		}
	}
	return out
}

// Count returns the number of placed blocks.
func (b *Board) Count() int {
	n := 0
	for _, blk := range b.cells {
		if !blk.IsZero() {
			n++
		}
	}
	return n
}

// StackHeight returns the number of rows up to the highest placed block.
func (b *Board) StackHeight() int {
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			if !b.cells[b.index(core.Pos(x, y))].IsZero() {
				return y + 1
			}
		}
	}
	return 0
}
