package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/components"
)

// WorldRenderer draws a world grid tile by tile. Grid row 0 is the bottom
// of the window, so the HUD rows end up at the top.
type WorldRenderer struct {
	glyphs   GlyphDrawer
	mapping  *components.TileMappingComponent
	tileSize int
}

// NewWorldRenderer creates a renderer. A nil glyph drawer falls back to the
// debug font.
func NewWorldRenderer(glyphs GlyphDrawer, tileSize int) *WorldRenderer {
	if glyphs == nil {
		glyphs = NewDebugGlyphs(tileSize)
	}
	return &WorldRenderer{
		glyphs:   glyphs,
		mapping:  components.NewTileMappingComponent(),
		tileSize: tileSize,
	}
}

// Mapping returns the tile mapping used for glyphs and descriptions
func (r *WorldRenderer) Mapping() *components.TileMappingComponent {
	return r.mapping
}

// Draw renders every tile of the grid, HUD rows included
func (r *WorldRenderer) Draw(screen *ebiten.Image, mapComp *components.MapComponent) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	if mapComp == nil {
		return
	}

	total := mapComp.TotalHeight()
	for y := 0; y < total; y++ {
		screenY := total - 1 - y
		for x := 0; x < mapComp.Width; x++ {
			def := r.mapping.GetTileDefinition(mapComp.Tiles[y][x])
			if def.BG != nil {
				vector.DrawFilledRect(screen,
					float32(x*r.tileSize), float32(screenY*r.tileSize),
					float32(r.tileSize), float32(r.tileSize),
					def.BG, false)
			}
			r.glyphs.DrawGlyph(screen, def.Glyph, x, screenY, def.FG)
		}
	}
}

// DrawHUD writes text into the top row of the window
func (r *WorldRenderer) DrawHUD(screen *ebiten.Image, text string) {
	width := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(r.tileSize), color.RGBA{0, 0, 0, 255}, false)
	ebitenutil.DebugPrintAt(screen, text, 4, 0)
}

// TileAt converts a pixel position to grid coordinates
func (r *WorldRenderer) TileAt(mapComp *components.MapComponent, px, py int) components.Position {
	if mapComp == nil || r.tileSize <= 0 {
		return components.NewPosition(-1, -1)
	}
	x := px / r.tileSize
	y := mapComp.TotalHeight() - 1 - py/r.tileSize
	return components.NewPosition(x, y)
}
