package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-dungeon/config"
	"ebiten-dungeon/engine"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/screens"
)

func main() {
	seed := flag.Int64("seed", -1, "create a world from this seed at startup")
	replay := flag.String("replay", "", "key record to replay at startup, e.g. n123sww")
	configPath := flag.String("config", "", "generator config file (YAML)")
	tilesetPath := flag.String("tileset", "", "16x16 glyph sheet PNG; the debug font is used when empty")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	verbose := flag.Bool("v", false, "log generation details")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	generator := generation.NewDungeonGenerator(cfg)
	generator.SetLogger(logger)
	session := engine.NewEngine(generator, engine.NewMemoryStore())
	session.SetLogger(logger)

	switch {
	case *replay != "":
		if _, err := session.InteractWithInputString(*replay); err != nil {
			log.Fatal(err)
		}
	case *seed >= 0:
		if _, err := session.InteractWithInputString(fmt.Sprintf("n%ds", *seed)); err != nil {
			log.Fatal(err)
		}
	}

	var glyphs screens.GlyphDrawer
	if *tilesetPath != "" {
		tileset, err := screens.NewTileset(*tilesetPath, config.TileSize)
		if err != nil {
			log.Fatal(err)
		}
		glyphs = tileset
	}

	game := NewGame(session, screens.NewWorldRenderer(glyphs, config.TileSize))
	ebiten.SetWindowSize(cfg.Width*config.TileSize, (cfg.Height+cfg.HUDRows)*config.TileSize)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetWindowTitle("BSP Dungeon")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	// The record is the whole save; print it so the session can be resumed
	// with -replay
	if record := session.Record(); record != "" {
		fmt.Println(record)
	}
}
