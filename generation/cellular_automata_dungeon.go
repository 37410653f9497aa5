package generation

import (
	"fmt"

	"ebiten-cavegen/components"
)

// Cells with at least this many wall neighbours become walls, the rest floor
const wallNeighbourThreshold = 4

// GenerateGrid creates a width x height map where each cell is
// independently a wall with probability wallProbability
func (g *CaveGenerator) GenerateGrid(width, height int, wallProbability float64) (*components.MapComponent, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !(wallProbability >= 0 && wallProbability <= 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidProbability, wallProbability)
	}

	// Starts as solid wall, so only floor cells are written
	mapComp := components.NewMapComponent(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.rng.Float64() >= wallProbability {
				mapComp.SetTile(x, y, components.TileFloor)
			}
		}
	}
	return mapComp, nil
}

// SmoothCave applies the cellular automata rule iterations times and
// returns the map. Every pass reads only the previous pass.
func (g *CaveGenerator) SmoothCave(mapComp *components.MapComponent, iterations int) (*components.MapComponent, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}

	next := make([][]int, mapComp.Height)
	for y := range next {
		next[y] = make([]int, mapComp.Width)
	}

	for i := 0; i < iterations; i++ {
		for y := 0; y < mapComp.Height; y++ {
			for x := 0; x < mapComp.Width; x++ {
				if countAdjacentWalls(mapComp, x, y) >= wallNeighbourThreshold {
					next[y][x] = components.TileWall
				} else {
					next[y][x] = components.TileFloor
				}
			}
		}
		mapComp.Tiles, next = next, mapComp.Tiles
	}

	return mapComp, nil
}

// countAdjacentWalls counts the walls among the 8 neighbours of (x, y).
// Positions off the map count as walls.
func countAdjacentWalls(mapComp *components.MapComponent, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if mapComp.IsWall(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}
