package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-cavegen/components"
	"ebiten-cavegen/config"
	"ebiten-cavegen/generation"
)

// Marker colours for placement sites, cycled by site index
var siteColors = []color.RGBA{
	{230, 57, 70, 255},
	{69, 123, 157, 255},
	{255, 183, 3, 255},
	{42, 157, 143, 255},
}

// RenderSystem draws a generated level
type RenderSystem struct {
	tileset *Tileset // Optional; flat colours are used without one
	mapping *components.TileMappingComponent
}

// NewRenderSystem creates a render system. tileset may be nil.
func NewRenderSystem(tileset *Tileset) *RenderSystem {
	return &RenderSystem{
		tileset: tileset,
		mapping: components.NewTileMappingComponent(),
	}
}

// SiteColor returns the marker colour for the i-th site
func SiteColor(i int) color.RGBA {
	return siteColors[i%len(siteColors)]
}

// Draw renders the map and its sites
func (s *RenderSystem) Draw(screen *ebiten.Image, level *generation.Level) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	if level == nil || level.Map == nil {
		return
	}

	size := float32(config.ViewTileSize)
	for y := 0; y < level.Map.Height; y++ {
		for x := 0; x < level.Map.Width; x++ {
			def := s.mapping.GetTileDefinition(level.Map.Tiles[y][x])
			vector.DrawFilledRect(screen, float32(x)*size, float32(y)*size, size, size, def.BG, false)
			if s.tileset != nil {
				s.tileset.DrawGlyph(screen, def.Glyph, x, y, def.FG)
			}
		}
	}

	for _, site := range level.Sites {
		cx := (float32(site.X) + 0.5) * size
		cy := (float32(site.Y) + 0.5) * size
		vector.DrawFilledCircle(screen, cx, cy, size*0.4, SiteColor(site.Index), true)
	}
}
