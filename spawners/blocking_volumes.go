package spawners

import (
	"ebiten-cavegen/components"
	"ebiten-cavegen/generation"
)

// Placement of the blocking box relative to its wall tile, in world units
const (
	blockingOffsetX = 20
	blockingOffsetZ = 40
	blockingY       = 50
)

// BlockingVolume is an invisible box that stops movement over one wall tile
type BlockingVolume struct {
	Tile     generation.Point
	Position components.PositionComponent
	Scale    [3]float64
}

// BlockingVolumes returns one volume per wall tile, in row-major order
func BlockingVolumes(mapComp *components.MapComponent, tileSize float64) []BlockingVolume {
	var volumes []BlockingVolume
	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if mapComp.Tiles[y][x] != components.TileWall {
				continue
			}
			volumes = append(volumes, BlockingVolume{
				Tile: generation.Point{X: x, Y: y},
				Position: components.PositionComponent{
					X: float64(x)*tileSize + tileSize + blockingOffsetX,
					Y: blockingY,
					Z: -float64(y)*tileSize - tileSize + blockingOffsetZ,
				},
				Scale: [3]float64{0.5, 2, 0.5},
			})
		}
	}
	return volumes
}
