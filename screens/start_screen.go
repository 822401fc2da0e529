package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StartScreen is drawn until the first world exists. It lists the commands
// the session understands.
type StartScreen struct {
	*BaseScreen
	title      string
	options    []string
	titleColor color.Color
}

// NewStartScreen creates the title overlay
func NewStartScreen() *StartScreen {
	return &StartScreen{
		BaseScreen: NewBaseScreen(),
		title:      "BSP DUNGEON",
		options: []string{
			"N <digits> S   new world from a seed",
			"L              load the saved world",
			"W A S D        move",
			":Q             save and quit",
			"F1             message log",
		},
		titleColor: color.RGBA{255, 230, 150, 255}, // Gold
	}
}

// Draw renders the title and the command list centred on the screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	centerX := bounds.Dx() / 2
	centerY := bounds.Dy() / 2

	optionSpacing := 20
	startY := centerY - (len(s.options)*optionSpacing)/2

	titleImg := ebiten.NewImage(len(s.title)*6, 16)
	ebitenutil.DebugPrintAt(titleImg, s.title, 0, 0)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(centerX-len(s.title)*6), float64(startY-3*optionSpacing))
	op.ColorScale.ScaleWithColor(s.titleColor)
	screen.DrawImage(titleImg, op)
	titleImg.Deallocate()

	for i, option := range s.options {
		ebitenutil.DebugPrintAt(screen, option, centerX-(len(s.options[0])*6)/2, startY+i*optionSpacing)
	}
}
