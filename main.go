package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-cavegen/config"
	"ebiten-cavegen/render"
	"ebiten-cavegen/spawners"
	"ebiten-cavegen/systems"
)

func main() {
	configPath := flag.String("config", "", "level config JSON file (defaults when empty)")
	teamsDir := flag.String("teams", "", "directory of team JSON files (built-in teams when empty)")
	seed := flag.Int64("seed", 0, "generation seed (picked from the clock when unset)")
	retries := flag.Int("retries", 5, "extra attempts with new seeds when a random layout is unusable")
	layerPath := flag.String("layer", "", "write the tile layer as JSON to this file")
	view := flag.Bool("view", false, "open the level viewer instead of printing the grid")
	tilesetPath := flag.String("tileset", "", "CP437 12x12 PNG glyph sheet for the viewer")
	flag.Parse()

	cfg := config.DefaultLevelConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadLevelConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if explicit := config.FlagSeed(flag.CommandLine, seed); explicit != nil {
		cfg.Seed = explicit
	}
	if *teamsDir != "" {
		cfg.TeamsDir = *teamsDir
	}

	teams, err := spawners.LoadTeams(cfg.TeamsDir)
	if err != nil {
		log.Fatal(err)
	}

	messageLog := systems.GetMessageLog()
	messageLog.Echo = os.Stderr

	if *view {
		var tileset *render.Tileset
		if *tilesetPath != "" {
			if tileset, err = render.NewTileset(*tilesetPath, config.ViewTileSize); err != nil {
				log.Fatal(err)
			}
		}
		viewer := NewLevelViewer(cfg, teams, *retries, tileset)
		ebiten.SetWindowSize(config.GetWindowSize(cfg.Width, cfg.Height))
		ebiten.SetWindowTitle("Cave Level Generator")
		if err := ebiten.RunGame(viewer); err != nil {
			log.Fatal(err)
		}
		return
	}

	level, _, err := spawners.BuildLevel(cfg, teams, *retries, messageLog.Add)
	if err != nil {
		fmt.Fprintf(os.Stderr, "level generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(level.Map.String())
	fmt.Printf("%d sites at least %.0f world units apart\n", len(level.Sites), cfg.SeparationWorld())
	for _, site := range level.Sites {
		fmt.Printf("site %d %-16s tile (%d, %d) world (%.0f, %.0f, %.0f)\n",
			site.Index, site.Team.Label, site.X, site.Y, site.World.X, site.World.Y, site.World.Z)
	}

	if *layerPath != "" {
		layer := systems.BuildTileLayer(level.Map, cfg.FloorTileIndex, cfg.WallTileIndex)
		if err := layer.WriteFile(*layerPath); err != nil {
			log.Fatal(err)
		}
		messageLog.Addf("Wrote %dx%d tile layer to %s", layer.Width, layer.Height, *layerPath)
	}
}
