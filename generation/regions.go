package generation

import (
	"ebiten-cavegen/components"
)

// Region is a maximal 8-connected set of floor tiles. It is a snapshot:
// carving corridors afterwards does not update it.
type Region struct {
	Tiles []Point
}

// Size returns the number of tiles in the region
func (r Region) Size() int {
	return len(r.Tiles)
}

// FindRegions partitions the floor tiles into regions, scanning row-major
// so discovery order is deterministic
func FindRegions(mapComp *components.MapComponent) []Region {
	visited := make([][]bool, mapComp.Height)
	for i := range visited {
		visited[i] = make([]bool, mapComp.Width)
	}

	var regions []Region
	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if !visited[y][x] && mapComp.Tiles[y][x] == components.TileFloor {
				regions = append(regions, floodFill(mapComp, Point{X: x, Y: y}, visited))
			}
		}
	}
	return regions
}

// IsFullyConnected reports whether all floor tiles form at most one region
func IsFullyConnected(mapComp *components.MapComponent) bool {
	return len(FindRegions(mapComp)) <= 1
}

// floodFill collects every floor tile 8-connected to start using an
// explicit stack, marking each one visited
func floodFill(mapComp *components.MapComponent, start Point, visited [][]bool) Region {
	region := Region{Tiles: []Point{start}}
	visited[start.Y][start.X] = true
	stack := []Point{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := current.X+dx, current.Y+dy
				if !mapComp.InBounds(nx, ny) || visited[ny][nx] || mapComp.Tiles[ny][nx] != components.TileFloor {
					continue
				}
				visited[ny][nx] = true
				next := Point{X: nx, Y: ny}
				region.Tiles = append(region.Tiles, next)
				stack = append(stack, next)
			}
		}
	}

	return region
}
