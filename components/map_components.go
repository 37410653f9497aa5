package components

import (
	"image/color"
	"strings"
)

// MapComponent stores the level grid. Tiles is indexed [y][x].
type MapComponent struct {
	Width  int
	Height int
	Tiles  [][]int
}

// Tile types
const (
	TileFloor = iota
	TileWall
)

// NewMapComponent creates a new map with the given dimensions, filled with walls
func NewMapComponent(width, height int) *MapComponent {
	m := &MapComponent{
		Width:  width,
		Height: height,
		Tiles:  make([][]int, height),
	}

	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]int, width)
		for x := 0; x < width; x++ {
			m.Tiles[y][x] = TileWall
		}
	}

	return m
}

// InBounds reports whether (x, y) lies inside the map
func (m *MapComponent) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWall returns true if the tile at (x, y) is a wall
func (m *MapComponent) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true // Out of bounds is considered a wall
	}
	return m.Tiles[y][x] == TileWall
}

// IsFloor returns true if (x, y) is inside the map and walkable
func (m *MapComponent) IsFloor(x, y int) bool {
	return !m.IsWall(x, y)
}

// SetTile sets the tile at the given position; out-of-bounds writes are dropped
func (m *MapComponent) SetTile(x, y, tileType int) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = tileType
	}
}

// CountTiles returns how many cells hold tileType
func (m *MapComponent) CountTiles(tileType int) int {
	count := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == tileType {
				count++
			}
		}
	}
	return count
}

// String renders the map as rows of "F " / "W " cells
func (m *MapComponent) String() string {
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileFloor {
				b.WriteString("F ")
			} else {
				b.WriteString("W ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune        // CP437 character used when a tileset is loaded
	FG    color.Color // Foreground color
	BG    color.Color // Fill color used without a tileset
}

// TileMappingComponent maps tile types to their visual representation
type TileMappingComponent struct {
	Definitions map[int]TileDefinition
}

// NewTileMappingComponent creates the default floor/wall mapping
func NewTileMappingComponent() *TileMappingComponent {
	return &TileMappingComponent{
		Definitions: map[int]TileDefinition{
			TileFloor: {Glyph: '.', FG: color.RGBA{96, 96, 96, 255}, BG: color.RGBA{40, 32, 24, 255}},
			TileWall:  {Glyph: '#', FG: color.RGBA{160, 160, 160, 255}, BG: color.RGBA{110, 100, 90, 255}},
		},
	}
}

// GetTileDefinition returns the visual definition for a given tile type
func (t *TileMappingComponent) GetTileDefinition(tileType int) TileDefinition {
	if def, exists := t.Definitions[tileType]; exists {
		return def
	}

	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255}, // Magenta for undefined tiles
		BG:    color.RGBA{255, 0, 255, 255},
	}
}
