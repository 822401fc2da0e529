package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrCloseScreen is returned by a screen that wants to be popped
	ErrCloseScreen = errors.New("close screen")
	// ErrQuit is returned when the session is over and the window should close
	ErrQuit = errors.New("quit")
)

// Screen is a state of the viewer that can be pushed onto the screen stack
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack manages a stack of screens. Only the top screen receives
// input; every screen is drawn, bottom first, so overlays sit above the map.
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates an empty screen stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{
		screens: make([]Screen, 0),
	}
}

// Push adds a screen on top of the stack
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the top screen
func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Replace swaps the top screen for another one
func (s *ScreenStack) Replace(screen Screen) {
	s.Pop()
	s.Push(screen)
}

// Peek returns the top screen without removing it
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the number of stacked screens
func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Update updates the top screen. A screen asking to close is popped here.
func (s *ScreenStack) Update() error {
	top := s.Peek()
	if top == nil {
		return nil
	}
	err := top.Update()
	if errors.Is(err, ErrCloseScreen) {
		s.Pop()
		return nil
	}
	return err
}

// Draw draws all screens from bottom to top
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, scr := range s.screens {
		scr.Draw(screen)
	}
}

// Layout uses the bottom screen's layout so overlays share its canvas
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if len(s.screens) > 0 {
		return s.screens[0].Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
