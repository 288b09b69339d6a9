package core

// Direction is a facing on the grid. It is also the facing of a piece's
// orbiting block relative to its anchor.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// AllDirections returns the four directions in the fixed order
// Up, Right, Down, Left. Neighbor scans rely on this order.
func AllDirections() [4]Direction {
	return [4]Direction{DirUp, DirRight, DirDown, DirLeft}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the unit (dx, dy) for one step in this direction.
// Up increases Y, Down decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Clockwise returns the next direction turning clockwise.
func (d Direction) Clockwise() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return d
	}
}

// AntiClockwise returns the next direction turning anti-clockwise.
func (d Direction) AntiClockwise() Direction {
	switch d {
	case DirUp:
		return DirLeft
	case DirLeft:
		return DirDown
	case DirDown:
		return DirRight
	case DirRight:
		return DirUp
	default:
		return d
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}
