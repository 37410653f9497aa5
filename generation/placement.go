package generation

import (
	"fmt"
	"math"

	"ebiten-cavegen/components"
	"ebiten-cavegen/data"
)

const defaultPlacementAttemptFactor = 8

// WorldPosition is a location in world units (see components.PositionComponent)
type WorldPosition struct {
	X, Y, Z float64
}

// PlacementSite is an accepted point of interest and the team assigned to it
type PlacementSite struct {
	Point
	Index int
	Team  data.TeamTemplate
	World WorldPosition
}

// PlacementOptions controls site placement
type PlacementOptions struct {
	MinSeparation float64 // Minimum distance between any two sites, in tiles
	TileSize      float64 // World units per tile
	SiteHeight    float64 // Fixed world Y of every site
	AttemptFactor int     // Attempt budget is AttemptFactor * width * height * len(teams)
}

// TileToWorld converts a grid cell to the world position of its centre
func TileToWorld(p Point, tileSize, height float64) WorldPosition {
	return WorldPosition{
		X: float64(p.X)*tileSize + tileSize/2,
		Y: height,
		Z: -float64(p.Y)*tileSize - tileSize/2,
	}
}

// PlaceSites picks one fully open floor tile per team by rejection
// sampling. Sites are at least opts.MinSeparation tiles apart and teams are
// assigned in input order.
func (g *CaveGenerator) PlaceSites(mapComp *components.MapComponent, teams []data.TeamTemplate, opts PlacementOptions) ([]PlacementSite, error) {
	if !(opts.MinSeparation > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSeparation, opts.MinSeparation)
	}
	if !(opts.TileSize > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTileSize, opts.TileSize)
	}
	if len(teams) == 0 {
		return nil, nil
	}

	factor := opts.AttemptFactor
	if factor <= 0 {
		factor = defaultPlacementAttemptFactor
	}
	maxAttempts := factor * mapComp.Width * mapComp.Height * len(teams)

	sites := make([]PlacementSite, 0, len(teams))
	for attempts := 0; len(sites) < len(teams); attempts++ {
		if attempts >= maxAttempts {
			return nil, fmt.Errorf("%w: placed %d of %d sites in %d attempts",
				ErrPlacementInfeasible, len(sites), len(teams), attempts)
		}

		p := Point{X: g.rng.Intn(mapComp.Width), Y: g.rng.Intn(mapComp.Height)}
		if !isOpenSquare(mapComp, p) || !farFromAll(p, sites, opts.MinSeparation) {
			continue
		}

		sites = append(sites, PlacementSite{
			Point: p,
			Index: len(sites),
			Team:  teams[len(sites)],
			World: TileToWorld(p, opts.TileSize, opts.SiteHeight),
		})
	}

	return sites, nil
}

// isOpenSquare reports whether p and all 8 neighbours are floor
func isOpenSquare(mapComp *components.MapComponent, p Point) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if mapComp.IsWall(p.X+dx, p.Y+dy) {
				return false
			}
		}
	}
	return true
}

func farFromAll(p Point, sites []PlacementSite, minSeparation float64) bool {
	for _, site := range sites {
		if math.Hypot(float64(p.X-site.X), float64(p.Y-site.Y)) < minSeparation {
			return false
		}
	}
	return true
}
