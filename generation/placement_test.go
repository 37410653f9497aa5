package generation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-cavegen/components"
	"ebiten-cavegen/data"
)

func testOptions(separation float64) PlacementOptions {
	return PlacementOptions{MinSeparation: separation, TileSize: 128, SiteHeight: 230}
}

func TestPlaceSites_OpenFloor(t *testing.T) {
	m := filledMap(12, 12, components.TileFloor)
	teams := data.DefaultTeams()

	sites, err := seeded(11).PlaceSites(m, teams, testOptions(3))
	require.NoError(t, err)
	require.Len(t, sites, len(teams))

	for i, site := range sites {
		assert.Equal(t, i, site.Index)
		assert.Equal(t, teams[i], site.Team)
		assert.True(t, isOpenSquare(m, site.Point), "site %v not enclosed by floor", site.Point)
		assert.Equal(t, TileToWorld(site.Point, 128, 230), site.World)
		for _, other := range sites[i+1:] {
			d := math.Hypot(float64(site.X-other.X), float64(site.Y-other.Y))
			assert.GreaterOrEqual(t, d, 3.0)
		}
	}
}

func TestPlaceSites_NeverOnBorder(t *testing.T) {
	m := filledMap(3, 3, components.TileFloor)
	sites, err := seeded(5).PlaceSites(m, data.DefaultTeams()[:1], testOptions(1))
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, Point{1, 1}, sites[0].Point)
}

func TestPlaceSites_Infeasible(t *testing.T) {
	t.Run("all wall", func(t *testing.T) {
		_, err := seeded(1).PlaceSites(filledMap(10, 10, components.TileWall), data.DefaultTeams(), testOptions(1))
		assert.ErrorIs(t, err, ErrPlacementInfeasible)
	})

	t.Run("only one open square", func(t *testing.T) {
		_, err := seeded(1).PlaceSites(filledMap(3, 3, components.TileFloor), data.DefaultTeams()[:2], testOptions(1))
		assert.ErrorIs(t, err, ErrPlacementInfeasible)
	})

	t.Run("separation too large", func(t *testing.T) {
		_, err := seeded(1).PlaceSites(filledMap(8, 8, components.TileFloor), data.DefaultTeams()[:2], testOptions(20))
		assert.ErrorIs(t, err, ErrPlacementInfeasible)
	})
}

func TestPlaceSites_InvalidOptions(t *testing.T) {
	m := filledMap(5, 5, components.TileFloor)

	_, err := seeded(1).PlaceSites(m, data.DefaultTeams(), testOptions(0))
	assert.ErrorIs(t, err, ErrInvalidSeparation)

	_, err = seeded(1).PlaceSites(m, data.DefaultTeams(), PlacementOptions{MinSeparation: 1})
	assert.ErrorIs(t, err, ErrInvalidTileSize)
}

func TestPlaceSites_NoTeams(t *testing.T) {
	sites, err := seeded(1).PlaceSites(filledMap(5, 5, components.TileWall), nil, testOptions(1))
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestTileToWorld(t *testing.T) {
	assert.Equal(t, WorldPosition{X: 320, Y: 230, Z: -448}, TileToWorld(Point{2, 3}, 128, 230))
	assert.Equal(t, WorldPosition{X: 64, Y: 0, Z: -64}, TileToWorld(Point{0, 0}, 128, 0))
}
