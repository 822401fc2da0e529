package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/systems"
)

// DebugScreen shows the session message log in a modal window
type DebugScreen struct {
	*BaseScreen
	messages     *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	frame        color.Color
}

// NewDebugScreen creates a log window over messages
func NewDebugScreen(messages *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(),
		messages:   messages,
		width:      600,
		height:     400,
		background: color.RGBA{0, 0, 0, 230},
		frame:      color.White,
	}
}

// Update scrolls with the arrow keys and closes on Escape or F1
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.messages.Messages)-1 {
		s.scrollOffset++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the log window centred on the screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32((bounds.Dx() - s.width) / 2)
	y := float32((bounds.Dy() - s.height) / 2)
	w, h := float32(s.width), float32(s.height)

	vector.DrawFilledRect(screen, x, y, w, h, s.background, false)
	vector.StrokeRect(screen, x, y, w, h, 2, s.frame, false)
	ebitenutil.DebugPrintAt(screen, "MESSAGE LOG", int(x)+(s.width-11*6)/2, int(y)+4)

	startY := 30
	lineHeight := 16
	maxLines := (s.height - startY - 20) / lineHeight

	lines := s.messages.ColoredMessages(len(s.messages.Messages))
	startIdx := s.scrollOffset
	if startIdx > len(lines)-maxLines {
		startIdx = max(len(lines)-maxLines, 0)
	}

	for i := 0; i < maxLines && startIdx+i < len(lines); i++ {
		msg := lines[startIdx+i]
		lineImg := ebiten.NewImage(s.width-20, lineHeight)
		ebitenutil.DebugPrintAt(lineImg, msg.Text, 0, 0)

		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(msg.GetColor())
		op.GeoM.Translate(float64(x)+10, float64(int(y)+startY+i*lineHeight))
		screen.DrawImage(lineImg, op)
		lineImg.Deallocate()
	}

	ebitenutil.DebugPrintAt(screen, "Up/Down: Scroll  ESC: Close", int(x)+10, int(y)+s.height-20)
}
