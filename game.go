package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-dungeon/engine"
	"ebiten-dungeon/screens"
)

// Game implements ebiten.Game on top of a screen stack
type Game struct {
	engine      *engine.Engine
	screenStack *screens.ScreenStack
}

// NewGame creates a viewer for a session
func NewGame(e *engine.Engine, renderer *screens.WorldRenderer) *Game {
	stack := screens.NewScreenStack()
	stack.Push(screens.NewGameScreen(e, renderer, nil))
	return &Game{
		engine:      e,
		screenStack: stack,
	}
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screenStack.Update()
	if errors.Is(err, screens.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenStack.Layout(outsideWidth, outsideHeight)
}
