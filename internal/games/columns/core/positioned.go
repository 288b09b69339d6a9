package core

// PositionedBlock pairs a block with an absolute grid position.
// It is produced from a Piece or by the board, never stored as ground truth.
type PositionedBlock struct {
	block    Block
	position GridPosition
}

// Place creates a PositionedBlock.
func Place(b Block, pos GridPosition) PositionedBlock {
	return PositionedBlock{block: b, position: pos}
}

func (pb PositionedBlock) Block() Block           { return pb.block }
func (pb PositionedBlock) Position() GridPosition { return pb.position }
func (pb PositionedBlock) X() int                 { return pb.position.X }
func (pb PositionedBlock) Y() int                 { return pb.position.Y }
func (pb PositionedBlock) Color() Color           { return pb.block.Color() }
func (pb PositionedBlock) Breaker() bool          { return pb.block.Breaker() }

// Offset returns the same block moved one step in the given direction.
func (pb PositionedBlock) Offset(d Direction) PositionedBlock {
	return PositionedBlock{block: pb.block, position: pb.position.Offset(d)}
}

// Equal reports whether both the block identity and the position match.
func (pb PositionedBlock) Equal(other PositionedBlock) bool {
	return pb.block.Equal(other.block) && pb.position == other.position
}
