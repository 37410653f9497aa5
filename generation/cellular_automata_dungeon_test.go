package generation

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-cavegen/components"
)

func TestGenerateGrid_InvalidInput(t *testing.T) {
	g := seeded(1)

	tests := []struct {
		name          string
		width, height int
		probability   float64
		wantErr       error
	}{
		{"zero width", 0, 5, 0.4, ErrInvalidDimensions},
		{"negative height", 5, -1, 0.4, ErrInvalidDimensions},
		{"probability below zero", 5, 5, -0.1, ErrInvalidProbability},
		{"probability above one", 5, 5, 1.1, ErrInvalidProbability},
		{"probability NaN", 5, 5, math.NaN(), ErrInvalidProbability},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := g.GenerateGrid(tc.width, tc.height, tc.probability)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, m)
		})
	}
}

func TestGenerateGrid_ExtremeProbabilities(t *testing.T) {
	g := seeded(7)

	floor, err := g.GenerateGrid(10, 10, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 100, floor.CountTiles(components.TileFloor))

	wall, err := g.GenerateGrid(10, 10, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 100, wall.CountTiles(components.TileWall))
}

func TestGenerateGrid_SameSeedSameGrid(t *testing.T) {
	a, err := seeded(99).GenerateGrid(36, 20, 0.4)
	require.NoError(t, err)
	b, err := seeded(99).GenerateGrid(36, 20, 0.4)
	require.NoError(t, err)

	if diff := cmp.Diff(a.Tiles, b.Tiles); diff != "" {
		t.Errorf("grids differ (-a +b):\n%s", diff)
	}
}

func TestCountAdjacentWalls_BorderCountsAsWall(t *testing.T) {
	m := filledMap(3, 3, components.TileFloor)

	assert.Equal(t, 0, countAdjacentWalls(m, 1, 1))
	assert.Equal(t, 5, countAdjacentWalls(m, 0, 0))
	assert.Equal(t, 3, countAdjacentWalls(m, 1, 0))
	assert.Equal(t, 8, countAdjacentWalls(m, -5, -5), "far outside the map")

	m.Tiles[1][1] = components.TileWall
	assert.Equal(t, 0, countAdjacentWalls(m, 1, 1), "centre cell is not its own neighbour")
	assert.Equal(t, 6, countAdjacentWalls(m, 0, 0))
}

func TestSmoothCave_Rule(t *testing.T) {
	m := mapFromRows(t,
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)

	got, err := seeded(1).SmoothCave(m, 1)
	require.NoError(t, err)

	// The lone pillar has no wall neighbours and opens up; every other
	// interior cell sees at least four walls.
	want := mapFromRows(t,
		"#####",
		"#####",
		"##.##",
		"#####",
		"#####",
	)
	if diff := cmp.Diff(want.Tiles, got.Tiles); diff != "" {
		t.Errorf("smoothed grid mismatch (-want +got):\n%s", diff)
	}
}

func TestSmoothCave_ReadsPreviousPassOnly(t *testing.T) {
	// In-place updates would let the first converted cell influence its
	// neighbours within the same pass.
	rows := []string{
		"....",
		"....",
		"....",
		"....",
	}
	got, err := seeded(1).SmoothCave(mapFromRows(t, rows...), 1)
	require.NoError(t, err)

	want := mapFromRows(t,
		"#..#",
		"....",
		"....",
		"#..#",
	)
	if diff := cmp.Diff(want.Tiles, got.Tiles); diff != "" {
		t.Errorf("smoothed grid mismatch (-want +got):\n%s", diff)
	}
}

func TestSmoothCave_DegenerateBorders(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 6}, {6, 1}} {
		m := filledMap(dims[0], dims[1], components.TileFloor)
		got, err := seeded(3).SmoothCave(m, 3)
		require.NoError(t, err)
		assert.Equal(t, dims[0]*dims[1], got.CountTiles(components.TileWall), "%dx%d", dims[0], dims[1])
	}
}

func TestSmoothCave_StableGridUnchanged(t *testing.T) {
	m := filledMap(8, 6, components.TileWall)
	before := cloneMap(m)

	got, err := seeded(5).SmoothCave(m, 4)
	require.NoError(t, err)
	if diff := cmp.Diff(before.Tiles, got.Tiles); diff != "" {
		t.Errorf("stable grid changed (-before +after):\n%s", diff)
	}
}

func TestSmoothCave_ZeroAndNegativeIterations(t *testing.T) {
	m := mapFromRows(t, "..#", "#..")
	before := cloneMap(m)

	got, err := seeded(1).SmoothCave(m, 0)
	require.NoError(t, err)
	assert.Equal(t, before.Tiles, got.Tiles)

	_, err = seeded(1).SmoothCave(m, -1)
	assert.ErrorIs(t, err, ErrInvalidIterations)
}
