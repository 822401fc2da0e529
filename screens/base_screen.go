package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BaseScreen provides the no-op parts of Screen for overlays
type BaseScreen struct {
	width  int
	height int
}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout remembers the outside size and uses it as is
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width = outsideWidth
	s.height = outsideHeight
	return outsideWidth, outsideHeight
}

// GetWidth returns the last laid out width
func (s *BaseScreen) GetWidth() int {
	return s.width
}

// GetHeight returns the last laid out height
func (s *BaseScreen) GetHeight() int {
	return s.height
}
