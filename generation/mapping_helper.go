package generation

import (
	"ebiten-dungeon/components"
)

// neighbourOffsets lists the 8-connected neighbourhood of a tile
var neighbourOffsets = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// HasAdjacentFloor checks whether any of the eight tiles around (x, y) is
// floor. The avatar stands on floor, so it counts too. Neighbours off the
// grid are skipped.
func HasAdjacentFloor(mapComp *components.MapComponent, x, y int) bool {
	for _, offset := range neighbourOffsets {
		adjX, adjY := x+offset[0], y+offset[1]
		if mapComp.IsWalkable(adjX, adjY) {
			return true
		}
	}
	return false
}

// RemoveRedundantWalls turns every wall without a floor neighbour into empty
// space, leaving a one tile wall shell around rooms and hallways. It makes a
// single pass and returns the number of tiles it changed; a second call
// changes nothing.
func RemoveRedundantWalls(mapComp *components.MapComponent) int {
	removed := 0
	for y := 0; y < mapComp.TotalHeight(); y++ {
		for x := 0; x < mapComp.Width; x++ {
			if mapComp.Tiles[y][x] != components.TileWall {
				continue
			}
			if !HasAdjacentFloor(mapComp, x, y) {
				mapComp.Tiles[y][x] = components.TileEmpty
				removed++
			}
		}
	}
	return removed
}

// addTileRow writes length tiles from pos towards the right
func addTileRow(mapComp *components.MapComponent, length int, pos components.Position, kind components.TileKind) {
	for i := 0; i < length; i++ {
		mapComp.SetTile(pos.X+i, pos.Y, kind)
	}
}

// addTileCol writes length tiles from pos upwards
func addTileCol(mapComp *components.MapComponent, length int, pos components.Position, kind components.TileKind) {
	for i := 0; i < length; i++ {
		mapComp.SetTile(pos.X, pos.Y+i, kind)
	}
}

// carveRoom draws the room as a wall ring around a floor interior. Rooms too
// thin to have an interior only get their walls.
func carveRoom(mapComp *components.MapComponent, room Room) {
	pos := room.Pos
	addTileRow(mapComp, room.Width, pos, components.TileWall)
	addTileRow(mapComp, room.Width, pos.Add(0, room.Height-1), components.TileWall)
	addTileCol(mapComp, room.Height, pos, components.TileWall)
	addTileCol(mapComp, room.Height, pos.Add(room.Width-1, 0), components.TileWall)

	if room.Width < 3 || room.Height < 3 {
		return
	}
	for h := 1; h < room.Height-1; h++ {
		addTileRow(mapComp, room.Width-2, pos.Add(1, h), components.TileFloor)
	}
}
