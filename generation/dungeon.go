package generation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"ebiten-cavegen/components"
	"ebiten-cavegen/config"
	"ebiten-cavegen/data"
)

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// Level is the finished output of one generation run
type Level struct {
	ID        uuid.UUID
	Seed      int64
	Map       *components.MapComponent
	Regions   []Region // Snapshot taken before corridors were carved
	Corridors int
	Sites     []PlacementSite
}

// WallCells returns every wall coordinate in row-major order
func (l *Level) WallCells() []Point {
	var walls []Point
	for y := 0; y < l.Map.Height; y++ {
		for x := 0; x < l.Map.Width; x++ {
			if l.Map.Tiles[y][x] == components.TileWall {
				walls = append(walls, Point{X: x, Y: y})
			}
		}
	}
	return walls
}

// CaveGenerator runs the cave pipeline. It owns its random source and is
// not safe for concurrent use.
type CaveGenerator struct {
	rng        *rand.Rand
	seed       int64
	logMessage func(string)

	corridorStepBudget int
	corridorFallback   bool
}

// NewCaveGenerator creates a generator seeded from the clock. logFunc may be nil.
func NewCaveGenerator(logFunc func(string)) *CaveGenerator {
	if logFunc == nil {
		logFunc = func(string) {}
	}
	g := &CaveGenerator{logMessage: logFunc}
	g.SetSeed(time.Now().UnixNano())
	return g
}

// SetSeed allows setting a specific seed for reproducible levels
func (g *CaveGenerator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed the current random source was created from
func (g *CaveGenerator) Seed() int64 {
	return g.seed
}

// SetCorridorLimits sets the per-carve step budget (0 derives it from the
// endpoint distance) and whether an over-budget carve falls back to a
// straight path instead of failing.
func (g *CaveGenerator) SetCorridorLimits(stepBudget int, fallback bool) {
	g.corridorStepBudget = stepBudget
	g.corridorFallback = fallback
}

// ValidateConfig checks a level configuration before any work is done
func ValidateConfig(cfg config.LevelConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if math.IsNaN(cfg.WallProbability) || cfg.WallProbability < 0 || cfg.WallProbability > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, cfg.WallProbability)
	}
	if cfg.SmoothingIterations < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, cfg.SmoothingIterations)
	}
	if !(cfg.TileSize > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidTileSize, cfg.TileSize)
	}
	if !(cfg.MinSeparation > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSeparation, cfg.MinSeparation)
	}
	return nil
}

// Generate builds a complete level: noise, smoothing, region detection,
// corridor carving and site placement, in that order. One site is placed
// per team. Nothing is returned on failure.
func (g *CaveGenerator) Generate(cfg config.LevelConfig, teams []data.TeamTemplate) (*Level, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Seed != nil {
		g.SetSeed(*cfg.Seed)
	}
	g.SetCorridorLimits(cfg.CorridorStepBudget, cfg.CorridorFallback)

	level := &Level{ID: uuid.New(), Seed: g.seed}
	g.logMessage(fmt.Sprintf("Generating level %s (seed %d, %dx%d)", level.ID, level.Seed, cfg.Width, cfg.Height))

	mapComp, err := g.GenerateGrid(cfg.Width, cfg.Height, cfg.WallProbability)
	if err != nil {
		return nil, err
	}

	mapComp, err = g.SmoothCave(mapComp, cfg.SmoothingIterations)
	if err != nil {
		return nil, err
	}
	g.logMessage(fmt.Sprintf("Smoothed %d times: %d floor tiles", cfg.SmoothingIterations, mapComp.CountTiles(components.TileFloor)))

	level.Regions = FindRegions(mapComp)
	largest := 0
	for _, region := range level.Regions {
		largest = max(largest, region.Size())
	}
	g.logMessage(fmt.Sprintf("Found %d regions, largest %d tiles", len(level.Regions), largest))

	level.Corridors, err = g.ConnectRegions(mapComp, level.Regions)
	if err != nil {
		return nil, err
	}
	g.logMessage(fmt.Sprintf("Carved %d corridors", level.Corridors))

	level.Sites, err = g.PlaceSites(mapComp, teams, PlacementOptions{
		MinSeparation: cfg.MinSeparation,
		TileSize:      cfg.TileSize,
		SiteHeight:    cfg.SiteHeight,
		AttemptFactor: cfg.PlacementAttemptFactor,
	})
	if err != nil {
		return nil, err
	}
	g.logMessage(fmt.Sprintf("Placed %d sites", len(level.Sites)))

	level.Map = mapComp
	return level, nil
}
