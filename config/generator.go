package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when Load gets no path
const EnvConfigPath = "DUNGEON_CONFIG"

var (
	// ErrWorldTooSmall is returned when the playable area cannot host a single
	// minimum-size room
	ErrWorldTooSmall = errors.New("world too small")

	// ErrInvalidConfig is returned for settings the generator cannot work with
	ErrInvalidConfig = errors.New("invalid generator config")
)

// GeneratorConfig controls the size of the world and the partitioning limits
type GeneratorConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"` // Playable rows
	HUDRows int `yaml:"hud_rows"`

	// MinRoomSize is the smallest room side and the smallest partition side
	// a split may produce
	MinRoomSize int `yaml:"min_room_size"`

	// The number of split attempts is SplitBudgetBase plus a random draw in
	// [0, SplitBudgetSpread)
	SplitBudgetBase   int `yaml:"split_budget_base"`
	SplitBudgetSpread int `yaml:"split_budget_spread"`
}

// Default returns the configuration used by the game window
func Default() GeneratorConfig {
	return GeneratorConfig{
		Width:             WorldWidth,
		Height:            WorldHeight,
		HUDRows:           HUDRows,
		MinRoomSize:       6,
		SplitBudgetBase:   15,
		SplitBudgetSpread: 10,
	}
}

// Validate checks every setting, including the configured world size
func (c GeneratorConfig) Validate() error {
	if err := c.ValidateSettings(); err != nil {
		return err
	}
	return c.CheckDimensions(c.Width, c.Height)
}

// ValidateSettings checks the settings that do not depend on a particular grid
func (c GeneratorConfig) ValidateSettings() error {
	if c.MinRoomSize < 3 {
		return fmt.Errorf("%w: min_room_size %d leaves no room interior", ErrInvalidConfig, c.MinRoomSize)
	}
	if c.SplitBudgetBase < 0 || c.SplitBudgetSpread <= 0 {
		return fmt.Errorf("%w: split budget %d+[0,%d) is not a valid range",
			ErrInvalidConfig, c.SplitBudgetBase, c.SplitBudgetSpread)
	}
	if c.HUDRows < 0 {
		return fmt.Errorf("%w: hud_rows %d is negative", ErrInvalidConfig, c.HUDRows)
	}
	return nil
}

// CheckDimensions reports ErrWorldTooSmall when a width x height playable area
// cannot hold one room of MinRoomSize
func (c GeneratorConfig) CheckDimensions(width, height int) error {
	if width < c.MinRoomSize || height < c.MinRoomSize {
		return fmt.Errorf("%w: %dx%d playable area, rooms need at least %dx%d",
			ErrWorldTooSmall, width, height, c.MinRoomSize, c.MinRoomSize)
	}
	return nil
}

// Load reads a YAML configuration file on top of Default. With an empty path
// the DUNGEON_CONFIG environment variable is consulted; if that is unset too
// the defaults are returned.
func Load(path string) (GeneratorConfig, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
