package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LevelConfig holds every tunable of one level build
type LevelConfig struct {
	Width               int     `json:"width"`
	Height              int     `json:"height"`
	WallProbability     float64 `json:"wall_probability"`
	SmoothingIterations int     `json:"smoothing_iterations"`

	// TileSize converts grid cells to world units for the spawners
	TileSize float64 `json:"tile_size"`
	// SiteHeight is the fixed world Y of every placement site
	SiteHeight float64 `json:"site_height"`
	// MinSeparation is the minimum distance between sites, in tiles
	MinSeparation float64 `json:"min_separation"`

	// CorridorStepBudget caps one carve; 0 derives it from the endpoint distance
	CorridorStepBudget int `json:"corridor_step_budget,omitempty"`
	// CorridorFallback finishes an over-budget carve with a straight path instead of failing
	CorridorFallback bool `json:"corridor_fallback,omitempty"`
	// PlacementAttemptFactor scales the placement attempt budget (area * sites * factor)
	PlacementAttemptFactor int `json:"placement_attempt_factor"`

	FloorTileIndex int `json:"floor_tile_index"`
	WallTileIndex  int `json:"wall_tile_index"`

	// Seed makes generation reproducible when set
	Seed *int64 `json:"seed,omitempty"`
	// TeamsDir is a directory of team JSON files; empty uses the built-in teams
	TeamsDir string `json:"teams_dir,omitempty"`
}

// DefaultLevelConfig returns the stock level settings
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Width:                  36,
		Height:                 20,
		WallProbability:        0.4,
		SmoothingIterations:    5,
		TileSize:               128,
		SiteHeight:             230,
		MinSeparation:          300.0 / 128.0,
		PlacementAttemptFactor: 8,
		FloorTileIndex:         0,
		WallTileIndex:          1,
	}
}

// SeparationWorld returns MinSeparation in world units
func (c LevelConfig) SeparationWorld() float64 {
	return c.MinSeparation * c.TileSize
}

// LoadLevelConfig loads a LevelConfig from a JSON file.
// Fields omitted from the file keep their default values.
func LoadLevelConfig(path string) (LevelConfig, error) {
	cfg := DefaultLevelConfig()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return cfg, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
