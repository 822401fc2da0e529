package screens

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// GlyphDrawer draws one glyph into a tile cell
type GlyphDrawer interface {
	DrawGlyph(target *ebiten.Image, glyph rune, x, y int, clr color.Color)
}

// Tileset draws glyphs from a Code Page 437 sprite sheet
type Tileset struct {
	Image       *ebiten.Image
	TileSize    int
	SrcTileSize int
	Width       int // Number of tiles horizontally in the sheet
	Height      int // Number of tiles vertically in the sheet
}

// NewTileset loads a 16x16 glyph sheet from a PNG file
func NewTileset(filename string, tileSize int) (*Tileset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open tileset: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode tileset %s: %w", filename, err)
	}

	ebitenImage := ebiten.NewImageFromImage(img)
	bounds := ebitenImage.Bounds()
	srcTileSize := bounds.Dx() / 16
	if srcTileSize == 0 {
		return nil, fmt.Errorf("tileset %s is narrower than 16 pixels", filename)
	}

	return &Tileset{
		Image:       ebitenImage,
		TileSize:    tileSize,
		SrcTileSize: srcTileSize,
		Width:       bounds.Dx() / srcTileSize,
		Height:      bounds.Dy() / srcTileSize,
	}, nil
}

// DrawGlyph draws the sheet cell for glyph at tile (x, y), tinted with clr.
// Glyphs outside the sheet are drawn as a magenta '?'.
func (t *Tileset) DrawGlyph(target *ebiten.Image, glyph rune, x, y int, clr color.Color) {
	index := int(glyph)
	tileX, tileY := index%16, index/16
	if tileX >= t.Width || tileY >= t.Height {
		if glyph == '?' {
			return
		}
		t.DrawGlyph(target, '?', x, y, color.RGBA{255, 0, 255, 255})
		return
	}

	sx := tileX * t.SrcTileSize
	sy := tileY * t.SrcTileSize

	op := &ebiten.DrawImageOptions{}
	scale := float64(t.TileSize) / float64(t.SrcTileSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x*t.TileSize), float64(y*t.TileSize))
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}

	rect := image.Rect(sx, sy, sx+t.SrcTileSize, sy+t.SrcTileSize)
	target.DrawImage(t.Image.SubImage(rect).(*ebiten.Image), op)
}

// DebugGlyphs draws glyphs with ebiten's built-in debug font. It needs no
// assets and is used when no tileset is given.
type DebugGlyphs struct {
	TileSize int
	cache    map[rune]*ebiten.Image
}

// NewDebugGlyphs creates a glyph drawer for tiles of tileSize pixels
func NewDebugGlyphs(tileSize int) *DebugGlyphs {
	return &DebugGlyphs{
		TileSize: tileSize,
		cache:    make(map[rune]*ebiten.Image),
	}
}

// DrawGlyph draws glyph at tile (x, y) in clr
func (d *DebugGlyphs) DrawGlyph(target *ebiten.Image, glyph rune, x, y int, clr color.Color) {
	if glyph == ' ' {
		return
	}
	img, ok := d.cache[glyph]
	if !ok {
		img = ebiten.NewImage(d.TileSize, d.TileSize)
		// The debug font is 6x16; centre it horizontally in the cell
		ebitenutil.DebugPrintAt(img, string(glyph), (d.TileSize-6)/2, 0)
		d.cache[glyph] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x*d.TileSize), float64(y*d.TileSize))
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	target.DrawImage(img, op)
}
