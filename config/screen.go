package config

// Viewer layout configuration
const (
	// ViewTileSize is the on-screen size of one grid cell in pixels
	ViewTileSize = 24

	// SourceTileSize is the pixel size of one glyph in the CP437 sheet
	SourceTileSize = 12

	// StatusBarHeight is the pixel height reserved under the map for status text
	StatusBarHeight = 32
)

// GetWindowSize returns the window size needed to show a width x height grid
func GetWindowSize(width, height int) (int, int) {
	return width * ViewTileSize, height*ViewTileSize + StatusBarHeight
}
