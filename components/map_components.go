package components

import (
	"encoding/binary"
	"image/color"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// TileKind identifies what occupies a single map cell
type TileKind uint8

// Tile types
const (
	TileFloor TileKind = iota
	TileWall
	TileEmpty // Outside the dungeon, neither walkable nor drawn as wall
	TileAvatar
)

var tileNames = map[TileKind]string{
	TileFloor:  "FLOOR",
	TileWall:   "WALL",
	TileEmpty:  "EMPTY",
	TileAvatar: "AVATAR",
}

func (k TileKind) String() string {
	if name, ok := tileNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph       rune        // The character drawn for the tile
	FG          color.Color // Foreground color
	BG          color.Color // Background color (optional)
	Description string      // Text shown when the tile is inspected
}

// NewTileDefinition creates a tile definition using a character code
func NewTileDefinition(glyph rune, fg color.Color, description string) TileDefinition {
	return TileDefinition{
		Glyph:       glyph,
		FG:          fg,
		BG:          color.RGBA{0, 0, 0, 255},
		Description: description,
	}
}

// TileMappingComponent maps tile types to their visual representation
type TileMappingComponent struct {
	Definitions map[TileKind]TileDefinition
}

// NewTileMappingComponent creates a default tile mapping
func NewTileMappingComponent() *TileMappingComponent {
	mapping := &TileMappingComponent{
		Definitions: make(map[TileKind]TileDefinition),
	}
	mapping.Definitions[TileFloor] = NewTileDefinition('.', color.RGBA{128, 192, 128, 255}, "floor")
	mapping.Definitions[TileWall] = NewTileDefinition('#', color.RGBA{216, 128, 128, 255}, "wall")
	mapping.Definitions[TileEmpty] = NewTileDefinition(' ', color.RGBA{0, 0, 0, 255}, "nothing")
	mapping.Definitions[TileAvatar] = NewTileDefinition('@', color.RGBA{255, 255, 255, 255}, "you")
	return mapping
}

// GetTileDefinition returns the visual definition for a given tile type
func (t *TileMappingComponent) GetTileDefinition(kind TileKind) TileDefinition {
	if def, exists := t.Definitions[kind]; exists {
		return def
	}

	// Return a default if the tile type isn't defined
	return TileDefinition{
		Glyph:       '?',
		FG:          color.RGBA{255, 0, 255, 255}, // Magenta for undefined tiles
		Description: "unknown",
	}
}

var defaultMapping = NewTileMappingComponent()

// MapComponent stores the world grid. Height counts only the playable rows;
// HUDRows extra rows sit on top of them for the heads-up strip.
type MapComponent struct {
	Width   int
	Height  int
	HUDRows int
	Tiles   [][]TileKind // Indexed [y][x], y = 0 is the bottom row
}

// NewMapComponent creates a new map with the given playable dimensions
// plus hudRows reserved rows
func NewMapComponent(width, height, hudRows int) *MapComponent {
	if hudRows < 0 {
		hudRows = 0
	}
	m := &MapComponent{
		Width:   width,
		Height:  height,
		HUDRows: hudRows,
		Tiles:   make([][]TileKind, height+hudRows),
	}

	for y := range m.Tiles {
		m.Tiles[y] = make([]TileKind, width)
	}
	m.Fill(TileWall)

	return m
}

// TotalHeight is the number of rows including the HUD strip
func (m *MapComponent) TotalHeight() int {
	return m.Height + m.HUDRows
}

// InBounds reports whether (x, y) is anywhere on the grid, HUD rows included
func (m *MapComponent) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.TotalHeight()
}

// InPlayableArea reports whether (x, y) lies outside the HUD strip
func (m *MapComponent) InPlayableArea(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// GetTile returns the tile at (x, y); anything off the grid reads as empty
func (m *MapComponent) GetTile(x, y int) TileKind {
	if !m.InBounds(x, y) {
		return TileEmpty
	}
	return m.Tiles[y][x]
}

// SetTile sets the tile at the given position
func (m *MapComponent) SetTile(x, y int, kind TileKind) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = kind
	}
}

// Fill overwrites every cell, HUD rows included
func (m *MapComponent) Fill(kind TileKind) {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x] = kind
		}
	}
}

// IsWalkable returns true if the avatar may stand on (x, y)
func (m *MapComponent) IsWalkable(x, y int) bool {
	kind := m.GetTile(x, y)
	return kind == TileFloor || kind == TileAvatar
}

// Count returns how many cells hold the given kind
func (m *MapComponent) Count(kind TileKind) int {
	n := 0
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			if m.Tiles[y][x] == kind {
				n++
			}
		}
	}
	return n
}

// Find returns every position holding the given kind, bottom row first
func (m *MapComponent) Find(kind TileKind) []Position {
	var found []Position
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			if m.Tiles[y][x] == kind {
				found = append(found, Position{X: x, Y: y})
			}
		}
	}
	return found
}

// Describe returns the inspection text for the tile at pos
func (m *MapComponent) Describe(pos Position) string {
	if !m.InBounds(pos.X, pos.Y) {
		return ""
	}
	return defaultMapping.GetTileDefinition(m.Tiles[pos.Y][pos.X]).Description
}

// Clone returns a deep copy of the map
func (m *MapComponent) Clone() *MapComponent {
	c := &MapComponent{
		Width:   m.Width,
		Height:  m.Height,
		HUDRows: m.HUDRows,
		Tiles:   make([][]TileKind, len(m.Tiles)),
	}
	for y := range m.Tiles {
		c.Tiles[y] = append([]TileKind(nil), m.Tiles[y]...)
	}
	return c
}

// Equal reports whether both maps have the same dimensions and tiles
func (m *MapComponent) Equal(other *MapComponent) bool {
	if other == nil || m.Width != other.Width || m.Height != other.Height || m.HUDRows != other.HUDRows {
		return false
	}
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			if m.Tiles[y][x] != other.Tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// Fingerprint hashes the dimensions and every tile. Two maps generated from
// the same seed and configuration share a fingerprint.
func (m *MapComponent) Fingerprint() uint64 {
	d := xxhash.New()

	var header [12]byte
	binary.LittleEndian.PutUint32(header[0:], uint32(m.Width))
	binary.LittleEndian.PutUint32(header[4:], uint32(m.Height))
	binary.LittleEndian.PutUint32(header[8:], uint32(m.HUDRows))
	_, _ = d.Write(header[:])

	row := make([]byte, m.Width)
	for y := range m.Tiles {
		for x, kind := range m.Tiles[y] {
			row[x] = byte(kind)
		}
		_, _ = d.Write(row)
	}
	return d.Sum64()
}

// String renders the map with the default glyphs, top row first so the
// output reads the same way it is drawn on screen
func (m *MapComponent) String() string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.TotalHeight())
	for y := m.TotalHeight() - 1; y >= 0; y-- {
		for x := 0; x < m.Width; x++ {
			b.WriteRune(defaultMapping.GetTileDefinition(m.Tiles[y][x]).Glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
