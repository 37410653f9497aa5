package systems

import (
	"encoding/json"
	"fmt"
	"os"

	"ebiten-cavegen/components"
)

// TileLayer is the map as tile indices for a tile-map renderer
type TileLayer struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Cells  []int `json:"cells"` // Row-major, Cells[y*Width+x]
}

// BuildTileLayer maps floor tiles to floorIndex and walls to wallIndex
func BuildTileLayer(mapComp *components.MapComponent, floorIndex, wallIndex int) TileLayer {
	layer := TileLayer{
		Width:  mapComp.Width,
		Height: mapComp.Height,
		Cells:  make([]int, 0, mapComp.Width*mapComp.Height),
	}
	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if mapComp.Tiles[y][x] == components.TileFloor {
				layer.Cells = append(layer.Cells, floorIndex)
			} else {
				layer.Cells = append(layer.Cells, wallIndex)
			}
		}
	}
	return layer
}

// WriteFile saves the layer as JSON
func (l TileLayer) WriteFile(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tile layer: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write tile layer: %w", err)
	}
	return nil
}
