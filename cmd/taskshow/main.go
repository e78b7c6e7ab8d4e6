package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/taskshow/internal/application/game"
	"github.com/younwookim/taskshow/internal/application/scene"
	"github.com/younwookim/taskshow/internal/application/scene/menu"
	"github.com/younwookim/taskshow/internal/application/system"
	"github.com/younwookim/taskshow/internal/infrastructure/assets"
	"github.com/younwookim/taskshow/internal/infrastructure/config"
	"github.com/younwookim/taskshow/internal/ui"
)

func loadConfig(dir string) (*config.AppConfig, error) {
	if dir != "" {
		log.Printf("[Config] loading from %s", dir)
		return config.NewLoader(dir).LoadApp()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] loading embedded configs")
	return config.NewFSLoader(fsys, "configs").LoadApp()
}

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded copy")
	forceFPS := flag.Bool("fps", false, "Always show the FPS readout")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *forceFPS {
		cfg.Display.ShowFPS = true
	}

	fonts, err := assets.LoadFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	cache := assets.NewCache(fonts)
	defer cache.Dispose()

	input := system.NewInputSystem(&system.EbitenPointer{})
	env := &scene.Env{
		Assets: cache,
		Input:  input,
		Config: cfg,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	newMenu := func(env *scene.Env) scene.Scene { return menu.New(env) }
	manager := game.NewManager(env, menu.Label, newMenu)
	manager.Resize(float64(cfg.Display.Width), float64(cfg.Display.Height))
	manager.GoToMenu()

	var fps *ui.FPSCounter
	if cfg.Display.ShowFPS {
		fps = ui.NewFPSCounter(fonts)
	}
	g := game.New(manager, input, fps, cfg.Display)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.TPS)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
