package components

import "fmt"

// Position is a grid coordinate, or a size when used relative to another
// position. (0, 0) is the bottom-left tile of the map.
type Position struct {
	X, Y int
}

// NewPosition creates a position
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position shifted by the given deltas
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
