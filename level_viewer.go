package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-cavegen/config"
	"ebiten-cavegen/data"
	"ebiten-cavegen/generation"
	"ebiten-cavegen/render"
	"ebiten-cavegen/spawners"
	"ebiten-cavegen/systems"
)

// LevelViewer implements ebiten.Game to show generated levels.
// R builds a new level, Escape quits.
type LevelViewer struct {
	cfg          config.LevelConfig
	teams        []data.TeamTemplate
	retries      int
	renderSystem *render.RenderSystem
	level        *generation.Level
	status       string
}

// NewLevelViewer creates a viewer and builds the first level
func NewLevelViewer(cfg config.LevelConfig, teams []data.TeamTemplate, retries int, tileset *render.Tileset) *LevelViewer {
	v := &LevelViewer{
		cfg:          cfg,
		teams:        teams,
		retries:      retries,
		renderSystem: render.NewRenderSystem(tileset),
	}
	v.regenerate()
	return v
}

func (v *LevelViewer) regenerate() {
	messageLog := systems.GetMessageLog()
	messageLog.Clear()
	level, _, err := spawners.BuildLevel(v.cfg, v.teams, v.retries, messageLog.Add)
	if err != nil {
		v.status = fmt.Sprintf("Generation failed: %v", err)
		return
	}
	v.level = level
	v.status = fmt.Sprintf("Seed %d  regions %d  corridors %d  sites %d  [R] regenerate  [Esc] quit",
		level.Seed, len(level.Regions), level.Corridors, len(level.Sites))
}

// Update handles input
func (v *LevelViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// A fixed seed would rebuild the same level
		v.cfg.Seed = nil
		v.regenerate()
	}
	return nil
}

// Draw draws the level and the status line
func (v *LevelViewer) Draw(screen *ebiten.Image) {
	v.renderSystem.Draw(screen, v.level)
	ebitenutil.DebugPrintAt(screen, v.status, 4, v.cfg.Height*config.ViewTileSize+8)
}

// Layout implements ebiten.Game's Layout.
func (v *LevelViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetWindowSize(v.cfg.Width, v.cfg.Height)
}
