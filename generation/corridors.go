package generation

import (
	"fmt"

	"ebiten-cavegen/components"
)

// ConnectRegions carves a corridor between each consecutive pair of
// regions, chaining region 0 to 1, 1 to 2 and so on. It returns the number
// of corridors carved. An empty region breaks the chain and fails with
// ErrEmptyRegion.
func (g *CaveGenerator) ConnectRegions(mapComp *components.MapComponent, regions []Region) (int, error) {
	carved := 0
	for i := 1; i < len(regions); i++ {
		from, to, ok := closestPair(regions[i-1], regions[i])
		if !ok {
			return carved, fmt.Errorf("connecting region %d to %d: %w", i-1, i, ErrEmptyRegion)
		}
		if err := g.carveCorridor(mapComp, from, to); err != nil {
			return carved, fmt.Errorf("connecting region %d to %d: %w", i-1, i, err)
		}
		carved++
	}
	return carved, nil
}

// closestPair finds the tiles of a and b with the smallest squared
// distance. The first pair found wins ties.
func closestPair(a, b Region) (Point, Point, bool) {
	var bestA, bestB Point
	bestDistance := -1

	for _, tileA := range a.Tiles {
		for _, tileB := range b.Tiles {
			dx, dy := tileA.X-tileB.X, tileA.Y-tileB.Y
			distance := dx*dx + dy*dy
			if bestDistance < 0 || distance < bestDistance {
				bestDistance = distance
				bestA, bestB = tileA, tileB
			}
		}
	}

	return bestA, bestB, bestDistance >= 0
}

// stepBudget returns how many walk steps a carve from a to b may take
func (g *CaveGenerator) stepBudget(a, b Point) int {
	if g.corridorStepBudget > 0 {
		return g.corridorStepBudget
	}
	return 4*(abs(b.X-a.X)+abs(b.Y-a.Y)) + 64
}

// carveCorridor walks from start to target, each step flipping a coin to
// move one tile along X or along Y towards the target, and paints a 3x3
// floor brush around every tile it visits
func (g *CaveGenerator) carveCorridor(mapComp *components.MapComponent, start, target Point) error {
	budget := g.stepBudget(start, target)
	current := start

	for steps := 0; current != target; steps++ {
		if steps >= budget {
			if !g.corridorFallback {
				return fmt.Errorf("%w: %v to %v stopped at %v after %d steps",
					ErrCorridorCarveTimeout, start, target, current, steps)
			}
			g.logMessage(fmt.Sprintf("Corridor %v to %v hit its step budget, finishing straight", start, target))
			carveStraight(mapComp, current, target)
			return nil
		}

		if g.rng.Intn(2) == 0 {
			current.X += sign(target.X - current.X)
		} else {
			current.Y += sign(target.Y - current.Y)
		}
		current.X = clamp(current.X, 0, mapComp.Width-1)
		current.Y = clamp(current.Y, 0, mapComp.Height-1)

		paintBrush(mapComp, current)
	}

	return nil
}

// carveStraight finishes a corridor along X first, then Y
func carveStraight(mapComp *components.MapComponent, current, target Point) {
	for current.X != target.X {
		current.X += sign(target.X - current.X)
		paintBrush(mapComp, current)
	}
	for current.Y != target.Y {
		current.Y += sign(target.Y - current.Y)
		paintBrush(mapComp, current)
	}
}

// paintBrush turns p and its 8 neighbours into floor. Each neighbour is
// clamped to the map on its own, so the brush flattens against the border.
func paintBrush(mapComp *components.MapComponent, p Point) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x := clamp(p.X+dx, 0, mapComp.Width-1)
			y := clamp(p.Y+dy, 0, mapComp.Height-1)
			mapComp.SetTile(x, y, components.TileFloor)
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
