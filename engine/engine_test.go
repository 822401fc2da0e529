package engine

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/generation"
)

func newTestEngine(store RecordStore) *Engine {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	generator := generation.NewDungeonGenerator(config.Default())
	generator.SetLogger(logger)

	e := NewEngine(generator, store)
	e.SetLogger(logger)
	return e
}

func TestEngine_NewWorldMatchesGenerator(t *testing.T) {
	e := newTestEngine(NewMemoryStore())

	world, err := e.InteractWithInputString("n123s")
	require.NoError(t, err)
	require.NotNil(t, world)

	expected := components.NewMapComponent(config.WorldWidth, config.WorldHeight, config.HUDRows)
	avatar, err := generation.CreateWorld(expected, 123)
	require.NoError(t, err)

	assert.True(t, expected.Equal(world))
	assert.Equal(t, avatar, e.Avatar())
	assert.Equal(t, "N123S", e.Record())
	assert.Equal(t, "New world from seed 123", e.Messages().Latest())
}

func TestEngine_SeedWithoutTerminator(t *testing.T) {
	a := newTestEngine(NewMemoryStore())
	b := newTestEngine(NewMemoryStore())

	worldA, err := a.InteractWithInputString("n77")
	require.NoError(t, err)
	worldB, err := b.InteractWithInputString("N77S")
	require.NoError(t, err)

	assert.True(t, worldA.Equal(worldB))
	assert.Equal(t, "N77S", a.Record())
}

func TestEngine_MovesOnlyOntoFloor(t *testing.T) {
	e := newTestEngine(NewMemoryStore())
	_, err := e.InteractWithInputString("n42s")
	require.NoError(t, err)

	for _, key := range "wasdwwwwddddssssaaaa" {
		before := e.Avatar()
		require.NoError(t, e.HandleKey(key))
		after := e.Avatar()

		assert.Equal(t, components.TileAvatar, e.World().GetTile(after.X, after.Y))
		assert.Equal(t, 1, e.World().Count(components.TileAvatar))
		if before != after {
			assert.Equal(t, components.TileFloor, e.World().GetTile(before.X, before.Y))
		}
	}
	assert.Equal(t, "N42SWASDWWWWDDDDSSSSAAAA", e.Record())
}

func TestEngine_MovesIgnoredWithoutWorld(t *testing.T) {
	e := newTestEngine(NewMemoryStore())
	world, err := e.InteractWithInputString("wasd")

	require.NoError(t, err)
	assert.Nil(t, world)
	assert.Empty(t, e.Record())
}

func TestEngine_SaveAndLoadReplaysSameWorld(t *testing.T) {
	store := NewMemoryStore()

	first := newTestEngine(store)
	_, err := first.InteractWithInputString("n123sss:q")
	require.NoError(t, err)
	assert.True(t, first.Quitting())

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "N123SSS", saved)

	second := newTestEngine(store)
	loaded, err := second.InteractWithInputString("lww")
	require.NoError(t, err)

	straight := newTestEngine(NewMemoryStore())
	expected, err := straight.InteractWithInputString("n123sssww")
	require.NoError(t, err)

	assert.True(t, expected.Equal(loaded))
	assert.Equal(t, straight.Avatar(), second.Avatar())
	assert.Equal(t, straight.Record(), second.Record())
}

func TestEngine_ColonWithoutQ(t *testing.T) {
	store := NewMemoryStore()
	e := newTestEngine(store)

	_, err := e.InteractWithInputString("n5s:xd")
	require.NoError(t, err)

	assert.False(t, e.Quitting())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSavedWorld)
	assert.Equal(t, "N5SD", e.Record(), "the key after : is swallowed")
}

func TestEngine_LoadWithoutSave(t *testing.T) {
	e := newTestEngine(NewMemoryStore())

	_, err := e.InteractWithInputString("l")
	assert.ErrorIs(t, err, ErrNoSavedWorld)
	assert.True(t, e.Quitting())
	assert.Nil(t, e.World())
}

type failingStore struct{}

func (failingStore) Save(string) error      { return errors.New("disk full") }
func (failingStore) Load() (string, error) { return "", errors.New("unreadable") }

func TestEngine_StoreErrors(t *testing.T) {
	e := newTestEngine(failingStore{})

	_, err := e.InteractWithInputString("n1s:q")
	assert.ErrorContains(t, err, "disk full")
	assert.Contains(t, e.Messages().Latest(), "save failed")

	_, err = newTestEngine(failingStore{}).InteractWithInputString("l")
	assert.ErrorContains(t, err, "unreadable")
}

func TestEngine_GenerationError(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 4
	generator := generation.NewDungeonGenerator(cfg)
	generator.SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	e := NewEngine(generator, NewMemoryStore())

	_, err := e.InteractWithInputString("n1s")
	assert.ErrorIs(t, err, config.ErrWorldTooSmall)
	assert.Nil(t, e.World())
	assert.Empty(t, e.Record())
}

func TestEngine_PendingSeed(t *testing.T) {
	e := newTestEngine(NewMemoryStore())

	require.NoError(t, e.HandleKey('n'))
	require.NoError(t, e.HandleKey('4'))
	require.NoError(t, e.HandleKey('x'))
	require.NoError(t, e.HandleKey('2'))

	assert.True(t, e.AwaitingSeed())
	assert.Equal(t, "42", e.PendingSeed())

	require.NoError(t, e.HandleKey('s'))
	assert.False(t, e.AwaitingSeed())
	assert.NotNil(t, e.World())
}

func TestEngine_LoadReplacesSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("N9SD"))

	e := newTestEngine(store)
	_, err := e.InteractWithInputString("n1sw")
	require.NoError(t, err)
	_, err = e.InteractWithInputString("l")
	require.NoError(t, err)

	assert.Equal(t, "N9SD", e.Record())
	assert.Equal(t, "World loaded", e.Messages().Latest())
}
