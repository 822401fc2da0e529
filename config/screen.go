package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// World dimensions in tiles
	WorldWidth  = 80
	WorldHeight = 49 // Playable rows, the HUD strip sits above them
	HUDRows     = 1

	// Window dimensions in tiles
	ScreenWidth  = WorldWidth
	ScreenHeight = WorldHeight + HUDRows

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
