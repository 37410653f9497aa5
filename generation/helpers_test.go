package generation

import (
	"testing"

	"ebiten-cavegen/components"
)

// mapFromRows builds a map from rows of '.' (floor) and '#' (wall)
func mapFromRows(t *testing.T, rows ...string) *components.MapComponent {
	t.Helper()
	m := components.NewMapComponent(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != m.Width {
			t.Fatalf("row %d has width %d, want %d", y, len(row), m.Width)
		}
		for x, c := range row {
			if c == '.' {
				m.Tiles[y][x] = components.TileFloor
			}
		}
	}
	return m
}

func filledMap(width, height, tile int) *components.MapComponent {
	m := components.NewMapComponent(width, height)
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x] = tile
		}
	}
	return m
}

func seeded(seed int64) *CaveGenerator {
	g := NewCaveGenerator(nil)
	g.SetSeed(seed)
	return g
}

func cloneMap(m *components.MapComponent) *components.MapComponent {
	c := components.NewMapComponent(m.Width, m.Height)
	for y := range m.Tiles {
		copy(c.Tiles[y], m.Tiles[y])
	}
	return c
}
