// Package engine runs a play session from a stream of keys. A session is
// fully described by the keys it was fed, which is what makes saving a
// world as its input record work.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/systems"
)

type inputState int

const (
	stateReady   inputState = iota
	stateSeed               // after N, collecting digits until S
	stateCommand            // after :, waiting for Q
)

// Engine interprets keys:
//
//	N<digits>S  create a world from the seed
//	W A S D     move the avatar up, left, down, right
//	:Q          save the session record and quit
//	L           load the saved record and replay it
type Engine struct {
	ID uuid.UUID

	generator generation.WorldGenerator
	movement  *systems.MovementSystem
	messages  *systems.MessageLog
	store     RecordStore
	logger    *slog.Logger

	world  *components.MapComponent
	layout *generation.Layout
	avatar components.Position
	record strings.Builder

	state    inputState
	seed     int64
	seedText strings.Builder
	quitting bool
}

// NewEngine creates a session that generates worlds with generator and saves
// them to store
func NewEngine(generator generation.WorldGenerator, store RecordStore) *Engine {
	id := uuid.New()
	return &Engine{
		ID:        id,
		generator: generator,
		movement:  systems.NewMovementSystem(),
		messages:  systems.NewMessageLog(100),
		store:     store,
		logger:    slog.Default().With("session", id.String()),
	}
}

// SetLogger replaces the session logger
func (e *Engine) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	e.logger = logger.With("session", e.ID.String())
}

// Config returns the generator settings worlds are built with
func (e *Engine) Config() config.GeneratorConfig {
	return e.generator.Config()
}

// World returns the current grid, nil before the first world is created
func (e *Engine) World() *components.MapComponent {
	return e.world
}

// Layout returns the rooms and hallways of the current world
func (e *Engine) Layout() *generation.Layout {
	return e.layout
}

// Avatar returns the avatar's current position
func (e *Engine) Avatar() components.Position {
	return e.avatar
}

// Record returns the keys that rebuild the current session
func (e *Engine) Record() string {
	return e.record.String()
}

// Messages returns the session message log
func (e *Engine) Messages() *systems.MessageLog {
	return e.messages
}

// Quitting reports whether a save-and-quit command was given
func (e *Engine) Quitting() bool {
	return e.quitting
}

// AwaitingSeed reports whether the engine is collecting seed digits
func (e *Engine) AwaitingSeed() bool {
	return e.state == stateSeed
}

// PendingSeed returns the digits typed so far after N
func (e *Engine) PendingSeed() string {
	return e.seedText.String()
}

// HandleKey processes one key. Keys are case-insensitive.
func (e *Engine) HandleKey(key rune) error {
	key = unicode.ToUpper(key)

	switch e.state {
	case stateSeed:
		switch {
		case key == 'S':
			return e.finishSeed()
		case key >= '0' && key <= '9':
			e.seed = e.seed*10 + int64(key-'0')
			e.seedText.WriteRune(key)
		}
		return nil
	case stateCommand:
		e.state = stateReady
		if key == 'Q' {
			return e.save()
		}
		return nil
	}

	switch key {
	case 'N':
		e.state = stateSeed
		e.seed = 0
		e.seedText.Reset()
	case ':':
		e.state = stateCommand
	case 'L':
		return e.load()
	default:
		if dir, ok := e.movement.DirectionFor(key); ok {
			e.move(key, dir)
		}
	}
	return nil
}

// Interact feeds every key from source. A seed still being typed when the
// source runs dry is used as if S had followed it.
func (e *Engine) Interact(source InputSource) error {
	for source.PossibleNextInput() {
		if err := e.HandleKey(source.GetNextKey()); err != nil {
			return err
		}
	}
	if e.state == stateSeed {
		return e.finishSeed()
	}
	return nil
}

// InteractWithInputString runs the session described by input, for example
// "n123sswwdasd" or "n123sss:q", and returns the resulting grid
func (e *Engine) InteractWithInputString(input string) (*components.MapComponent, error) {
	if err := e.Interact(NewStringInputSource(input)); err != nil {
		return e.world, err
	}
	return e.world, nil
}

func (e *Engine) finishSeed() error {
	e.state = stateReady
	digits := e.seedText.String()
	seed := e.seed

	cfg := e.Config()
	world := components.NewMapComponent(cfg.Width, cfg.Height, cfg.HUDRows)
	layout, err := e.generator.Generate(world, seed)
	if err != nil {
		e.messages.Addf("ERROR: cannot create world: %v", err)
		return fmt.Errorf("create world from seed %s: %w", digits, err)
	}

	e.world = world
	e.layout = layout
	e.avatar = layout.Avatar
	e.record.WriteString("N" + digits + "S")
	e.messages.Addf("New world from seed %d", seed)
	e.logger.Info("world ready", "seed", seed, "rooms", len(layout.Rooms), "avatar", e.avatar.String())
	return nil
}

func (e *Engine) move(key rune, dir int) {
	if e.world == nil {
		return
	}
	// Blocked moves are recorded too; replaying them is harmless
	e.record.WriteRune(key)
	e.avatar, _ = e.movement.MoveAvatar(e.world, e.avatar, dir)
}

func (e *Engine) save() error {
	e.quitting = true
	record := e.record.String()
	if err := e.store.Save(record); err != nil {
		e.messages.Addf("ERROR: save failed: %v", err)
		return fmt.Errorf("save session: %w", err)
	}
	e.messages.Add("World saved")
	e.logger.Info("session saved", "record", record)
	return nil
}

func (e *Engine) load() error {
	record, err := e.store.Load()
	if err != nil {
		if errors.Is(err, ErrNoSavedWorld) {
			e.quitting = true
		}
		e.messages.Addf("ERROR: load failed: %v", err)
		return fmt.Errorf("load session: %w", err)
	}

	e.logger.Info("replaying saved session", "record", record)
	e.record.Reset()
	for _, key := range record {
		if err := e.HandleKey(key); err != nil {
			return fmt.Errorf("replay saved session: %w", err)
		}
	}
	if e.state == stateSeed {
		return e.finishSeed()
	}
	e.messages.Add("World loaded")
	return nil
}
