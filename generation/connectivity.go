package generation

import (
	"errors"
	"fmt"

	"ebiten-dungeon/components"
)

var (
	// ErrDisconnected is returned when some floor cannot be reached from the avatar
	ErrDisconnected = errors.New("world is not connected")

	// ErrNoAvatar is returned when the avatar tile is missing or misplaced
	ErrNoAvatar = errors.New("avatar not found")
)

var cardinalOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// ReachableFrom returns every walkable tile 4-connected to start, start
// included
func ReachableFrom(mapComp *components.MapComponent, start components.Position) map[components.Position]bool {
	seen := make(map[components.Position]bool)
	if !mapComp.IsWalkable(start.X, start.Y) {
		return seen
	}

	queue := []components.Position{start}
	seen[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, offset := range cardinalOffsets {
			next := cur.Add(offset[0], offset[1])
			if seen[next] || !mapComp.IsWalkable(next.X, next.Y) {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return seen
}

// ValidateConnectivity checks that the avatar stands at avatar, that it is
// the only avatar tile, and that every floor tile can be walked to from it
func ValidateConnectivity(mapComp *components.MapComponent, avatar components.Position) error {
	if mapComp.GetTile(avatar.X, avatar.Y) != components.TileAvatar {
		return fmt.Errorf("%w: tile at %v is %v", ErrNoAvatar, avatar, mapComp.GetTile(avatar.X, avatar.Y))
	}
	if n := mapComp.Count(components.TileAvatar); n != 1 {
		return fmt.Errorf("%w: %d avatar tiles on the map", ErrNoAvatar, n)
	}

	reachable := ReachableFrom(mapComp, avatar)
	floors := mapComp.Find(components.TileFloor)
	missing := 0
	for _, p := range floors {
		if !reachable[p] {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%w: %d of %d floor tiles unreachable from %v",
			ErrDisconnected, missing, len(floors), avatar)
	}
	return nil
}
