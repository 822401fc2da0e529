package screens

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/engine"
)

// arrowKeys lets the arrow keys stand in for WASD
var arrowKeys = map[ebiten.Key]rune{
	ebiten.KeyArrowUp:    'W',
	ebiten.KeyArrowLeft:  'A',
	ebiten.KeyArrowDown:  'S',
	ebiten.KeyArrowRight: 'D',
}

// GameScreen feeds keyboard input to the session engine and draws its world
type GameScreen struct {
	*BaseScreen
	engine      *engine.Engine
	renderer    *WorldRenderer
	start       *StartScreen
	screenStack *ScreenStack
	logger      *slog.Logger
	keys        []rune
}

// NewGameScreen creates the main screen for a session
func NewGameScreen(e *engine.Engine, renderer *WorldRenderer, logger *slog.Logger) *GameScreen {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameScreen{
		BaseScreen:  NewBaseScreen(),
		engine:      e,
		renderer:    renderer,
		start:       NewStartScreen(),
		screenStack: NewScreenStack(),
		logger:      logger,
	}
}

// Update handles one frame of input
func (s *GameScreen) Update() error {
	if s.screenStack.Len() == 0 && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.screenStack.Push(NewDebugScreen(s.engine.Messages()))
		return nil
	}

	// Modal input first; the world waits while the log is open
	if s.screenStack.Len() > 0 {
		return s.screenStack.Update()
	}

	s.keys = ebiten.AppendInputChars(s.keys[:0])
	for key, action := range arrowKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.keys = append(s.keys, action)
		}
	}

	for _, key := range s.keys {
		if err := s.engine.HandleKey(key); err != nil {
			// The engine has already put the failure in the message log
			s.logger.Warn("key rejected", "key", string(key), "err", err)
			if errors.Is(err, engine.ErrNoSavedWorld) {
				return ErrQuit
			}
		}
		if s.engine.Quitting() {
			return ErrQuit
		}
	}
	return nil
}

// Draw renders the world and the HUD strip, or the start screen when no
// world has been created yet
func (s *GameScreen) Draw(screen *ebiten.Image) {
	world := s.engine.World()
	s.renderer.Draw(screen, world)
	if world == nil {
		s.start.Draw(screen)
	}
	s.renderer.DrawHUD(screen, s.hudText(world))

	if s.screenStack.Len() > 0 {
		s.screenStack.Draw(screen)
	}
}

// hudText shows the seed being typed, or the tile under the mouse next to
// the latest message
func (s *GameScreen) hudText(world *components.MapComponent) string {
	if s.engine.AwaitingSeed() {
		return fmt.Sprintf("Seed: %s_", s.engine.PendingSeed())
	}
	latest := s.engine.Messages().Latest()
	if world == nil {
		return latest
	}

	mx, my := ebiten.CursorPosition()
	description := world.Describe(s.renderer.TileAt(world, mx, my))
	if description == "" {
		return latest
	}
	return fmt.Sprintf("%-10s %s", description, latest)
}

// Layout sizes the canvas to the configured grid, HUD rows included
func (s *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := s.engine.Config()
	return cfg.Width * config.TileSize, (cfg.Height + cfg.HUDRows) * config.TileSize
}
