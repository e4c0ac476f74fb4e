package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wallhop/internal/application/game"
	"github.com/younwookim/wallhop/internal/application/scene/playing"
	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
	"github.com/younwookim/wallhop/internal/infrastructure/device"
)

// loadLevel loads a Tiled level when levelName is set, else a JSON stage
func loadLevel(loader *config.Loader, stageName, levelName string) (*entity.Level, error) {
	var (
		stageCfg *config.StageConfig
		err      error
	)
	if levelName != "" {
		stageCfg, err = loader.LoadLevel(levelName)
	} else {
		stageCfg, err = loader.LoadStage(stageName)
	}
	if err != nil {
		return nil, err
	}
	return system.LoadStage(stageCfg), nil
}

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "demo", "Stage JSON to play (configs/stages/<name>.json)")
	levelFlag := flag.String("level", "", "Tiled level to play instead of a stage (configs/levels/<name>.tmx)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or .mpk for msgpack)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the final state")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, err := loadLevel(loader, *stageFlag, *levelFlag)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	log.Printf("Loaded %q: %d boxes (%d lethal), spawn (%.1f, %.1f)",
		level.Name, len(level.Boxes), level.LethalCount(), level.Spawn.X(), level.Spawn.Y())

	if *replayFlag != "" {
		result, err := runReplay(cfg.Physics, level, *replayFlag)
		if err != nil {
			log.Fatalf("Failed to run replay: %v", err)
		}
		fmt.Println(result)
		return
	}

	poller := device.NewPoller(device.EbitenSource{}, cfg.Input)
	g := game.New(playing.New(cfg, level, poller, *recordFlag), cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Physics.Display.ScreenWidth*cfg.Physics.Display.Scale,
		cfg.Physics.Display.ScreenHeight*cfg.Physics.Display.Scale)
	ebiten.SetWindowTitle("Wallhop")
	ebiten.SetTPS(cfg.Physics.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game exited with error: %v", err)
	}
}
