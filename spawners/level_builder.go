package spawners

import (
	"errors"
	"fmt"

	"ebiten-cavegen/config"
	"ebiten-cavegen/data"
	"ebiten-cavegen/ecs"
	"ebiten-cavegen/generation"
)

// LoadTeams returns the teams from dir, or the built-in teams when dir is empty
func LoadTeams(dir string) ([]data.TeamTemplate, error) {
	if dir == "" {
		return data.DefaultTeams(), nil
	}
	manager := data.NewTeamManager()
	if err := manager.LoadTeamsFromDirectory(dir); err != nil {
		return nil, err
	}
	return manager.Ordered(), nil
}

// retryable reports whether a fresh seed might let generation succeed
func retryable(err error) bool {
	return errors.Is(err, generation.ErrPlacementInfeasible) || errors.Is(err, generation.ErrCorridorCarveTimeout)
}

// BuildLevel generates a level and spawns it into a new ECS world. When the
// config has no fixed seed, unlucky layouts are retried with new seeds up to
// retries more times. logFunc may be nil.
func BuildLevel(cfg config.LevelConfig, teams []data.TeamTemplate, retries int, logFunc func(string)) (*generation.Level, *ecs.World, error) {
	if logFunc == nil {
		logFunc = func(string) {}
	}

	var (
		level *generation.Level
		err   error
	)
	for attempt := 0; ; attempt++ {
		level, err = generation.NewCaveGenerator(logFunc).Generate(cfg, teams)
		if err == nil {
			break
		}
		if cfg.Seed != nil || attempt >= retries || !retryable(err) {
			return nil, nil, err
		}
		logFunc(fmt.Sprintf("Generation attempt %d failed: %v", attempt+1, err))
	}

	world := ecs.NewWorld()
	if _, err := NewEntitySpawner(world, cfg.TileSize, logFunc).SpawnLevel(level); err != nil {
		return nil, nil, err
	}
	return level, world, nil
}
