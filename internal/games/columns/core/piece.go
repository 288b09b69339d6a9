package core

// Piece is a falling pair: an anchor block and an orbiting block that sits
// one step from the anchor in the piece's facing direction.
// Every transform returns a new Piece carrying the same two blocks.
type Piece struct {
	anchor    Block
	orbit     Block
	direction Direction
	position  GridPosition
}

// NewPiece creates a piece from existing blocks.
func NewPiece(anchor, orbit Block, pos GridPosition, dir Direction) Piece {
	return Piece{
		anchor:    anchor,
		orbit:     orbit,
		direction: dir,
		position:  pos,
	}
}

// RandPiece creates a piece at (x, y) facing Up with two fresh random
// blocks, drawn from the shared source.
func RandPiece(x, y int) Piece {
	return RandPieceFrom(Shared, x, y, DefaultBreakerOdds)
}

// RandPieceFrom creates a piece at (x, y) facing Up with two fresh blocks
// drawn from r. Each block is a breaker with probability 1/breakerOdds.
func RandPieceFrom(r Rand, x, y, breakerOdds int) Piece {
	anchor := NewBlock(RandColorFrom(r), oneIn(r, breakerOdds))
	orbit := NewBlock(RandColorFrom(r), oneIn(r, breakerOdds))
	return NewPiece(anchor, orbit, Pos(x, y), DirUp)
}

func (p Piece) Anchor() Block          { return p.anchor }
func (p Piece) Orbit() Block           { return p.orbit }
func (p Piece) Direction() Direction   { return p.direction }
func (p Piece) Position() GridPosition { return p.position }

// OrbitPosition returns the orbiting block's absolute position.
func (p Piece) OrbitPosition() GridPosition {
	return p.position.Offset(p.direction)
}

// DupTo returns the same piece relocated to pos, facing dir.
func (p Piece) DupTo(pos GridPosition, dir Direction) Piece {
	p.position = pos
	p.direction = dir
	return p
}

// Offset returns the piece moved one step in the given direction.
func (p Piece) Offset(d Direction) Piece {
	p.position = p.position.Offset(d)
	return p
}

// Clockwise returns the piece with its orbiting block turned clockwise.
func (p Piece) Clockwise() Piece {
	p.direction = p.direction.Clockwise()
	return p
}

// AntiClockwise returns the piece with its orbiting block turned anti-clockwise.
func (p Piece) AntiClockwise() Piece {
	p.direction = p.direction.AntiClockwise()
	return p
}

// Blocks returns both blocks with absolute positions, bottom to top.
func (p Piece) Blocks() [2]PositionedBlock {
	return BottomToTop(
		Place(p.anchor, p.position),
		Place(p.orbit, p.OrbitPosition()),
		p.direction,
	)
}

// BottomToTop orders a piece's anchor and orbiting block from bottom to top.
// Only a Down facing puts the orbiting block below the anchor; every other
// facing leaves it above or level, and the anchor comes first.
func BottomToTop(anchor, orbit PositionedBlock, facing Direction) [2]PositionedBlock {
	if facing == DirDown {
		return [2]PositionedBlock{orbit, anchor}
	}
	return [2]PositionedBlock{anchor, orbit}
}
