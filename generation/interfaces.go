package generation

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

// WorldGenerator fills a grid from a seed. The engine depends on this rather
// than on DungeonGenerator so sessions can be driven by other layouts.
type WorldGenerator interface {
	Generate(mapComp *components.MapComponent, seed int64) (*Layout, error)
	Config() config.GeneratorConfig
}

var _ WorldGenerator = (*DungeonGenerator)(nil)
