package systems

import (
	"ebiten-dungeon/components"
)

// Direction constants for movement
const (
	DirNone = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// MovementSystem moves the avatar across the grid
type MovementSystem struct {
	// Map of action keys to movement directions
	actionKeys map[rune]int
}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	system := &MovementSystem{
		actionKeys: map[rune]int{
			'W': DirUp,
			'A': DirLeft,
			'S': DirDown,
			'D': DirRight,
		},
	}
	return system
}

// DirectionFor returns the direction bound to an action key
func (s *MovementSystem) DirectionFor(action rune) (int, bool) {
	dir, ok := s.actionKeys[action]
	return dir, ok
}

// MoveAvatar moves the avatar one tile in dir if that tile is floor. The tile
// it leaves becomes floor again. It returns the avatar's position after the
// attempt and whether it moved.
func (s *MovementSystem) MoveAvatar(mapComp *components.MapComponent, pos components.Position, dir int) (components.Position, bool) {
	dx, dy := s.getDeltaFromDirection(dir)
	if dx == 0 && dy == 0 {
		return pos, false
	}

	next := pos.Add(dx, dy)
	if mapComp.GetTile(next.X, next.Y) != components.TileFloor {
		return pos, false
	}

	mapComp.SetTile(next.X, next.Y, components.TileAvatar)
	mapComp.SetTile(pos.X, pos.Y, components.TileFloor)
	return next, true
}

// getDeltaFromDirection converts a direction to x,y deltas. Up is +y because
// row 0 is the bottom of the map.
func (s *MovementSystem) getDeltaFromDirection(dir int) (int, int) {
	switch dir {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}
