package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevelConfig(t *testing.T) {
	cfg := DefaultLevelConfig()
	assert.Equal(t, 36, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, 0.4, cfg.WallProbability)
	assert.Equal(t, 5, cfg.SmoothingIterations)
	assert.InDelta(t, 300.0, cfg.SeparationWorld(), 1e-9)
	assert.Nil(t, cfg.Seed)
}

func TestLoadLevelConfig_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 60, "seed": 42, "corridor_fallback": true}`), 0o644))

	cfg, err := LoadLevelConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, 0.4, cfg.WallProbability)
	assert.True(t, cfg.CorridorFallback)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
}

func TestLoadLevelConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{name: "wrong extension", file: "level.yaml", body: "width: 3", wantErr: "must have .json extension"},
		{name: "missing", file: "absent.json", wantErr: "failed to stat config file"},
		{name: "bad json", file: "bad.json", body: `{"width": "wide"}`, wantErr: "failed to parse config file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if tc.body != "" {
				require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
			}
			_, err := LoadLevelConfig(path)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestGetWindowSize(t *testing.T) {
	w, h := GetWindowSize(10, 5)
	assert.Equal(t, 10*ViewTileSize, w)
	assert.Equal(t, 5*ViewTileSize+StatusBarHeight, h)
}
