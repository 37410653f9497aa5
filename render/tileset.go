package render

import (
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-cavegen/config"
)

// Tileset handles loading and drawing a CP437 glyph sheet
type Tileset struct {
	Image    *ebiten.Image
	TileSize int // On-screen tile size in pixels
	Width    int // Number of tiles horizontally in the sheet
	Height   int // Number of tiles vertically in the sheet
}

// NewTileset loads a tileset from a PNG file
func NewTileset(filename string, tileSize int) (*Tileset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	ebitenImage := ebiten.NewImageFromImage(img)
	bounds := ebitenImage.Bounds()

	return &Tileset{
		Image:    ebitenImage,
		TileSize: tileSize,
		Width:    bounds.Dx() / config.SourceTileSize,
		Height:   bounds.Dy() / config.SourceTileSize,
	}, nil
}

// GlyphCoords returns the sheet position of a CP437 character
func GlyphCoords(char rune) (int, int) {
	index := int(char)
	return index % 16, index / 16
}

// DrawGlyph draws one character tinted with clr at grid cell (x, y)
func (t *Tileset) DrawGlyph(target *ebiten.Image, char rune, x, y int, clr color.Color) {
	tileX, tileY := GlyphCoords(char)
	if tileX >= t.Width || tileY >= t.Height {
		tileX, tileY = GlyphCoords('?')
	}

	sx := tileX * config.SourceTileSize
	sy := tileY * config.SourceTileSize

	op := &ebiten.DrawImageOptions{}
	scale := float64(t.TileSize) / float64(config.SourceTileSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x*t.TileSize), float64(y*t.TileSize))
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}

	rect := image.Rect(sx, sy, sx+config.SourceTileSize, sy+config.SourceTileSize)
	target.DrawImage(t.Image.SubImage(rect).(*ebiten.Image), op)
}
