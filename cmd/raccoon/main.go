package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/raccoon/internal/assets"
	"chosenoffset.com/raccoon/internal/config"
	"chosenoffset.com/raccoon/internal/game"
	"chosenoffset.com/raccoon/internal/overlay"
	ebitenrender "chosenoffset.com/raccoon/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "data/raccoon.yaml", "path to the YAML config")
	assetRoot := flag.String("assets", "", "asset root directory (overrides the config)")
	screenWidth := flag.Int("width", 1280, "initial window width")
	screenHeight := flag.Int("height", 800, "initial window height")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *assetRoot != "" {
		cfg.Assets.Root = *assetRoot
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	images := assets.NewCache(loader, renderer, cfg.Assets.Root)
	if cfg.Assets.AssetMap != "" {
		m, err := assets.LoadAssetMap(filepath.Join(cfg.Assets.Root, cfg.Assets.AssetMap))
		if err != nil {
			log.Printf("Warning: %v", err)
		} else {
			log.Printf("Loaded asset map with %d entries", len(m))
			images.SetAssetMap(m)
		}
	}

	spotlightShaderSrc, err := os.ReadFile("shaders/spotlight.kage")
	if err != nil {
		log.Printf("Warning: Failed to load spotlight shader: %v", err)
	}

	gameManager := game.NewManager(cfg, renderer, inputMgr, images, *screenWidth, *screenHeight)
	gameManager.SetShaderSource(spotlightShaderSrc)
	gameManager.SetLinkOpener(overlay.NewBrowserOpener(cfg.Assets.Root))
	gameManager.Start(context.Background())

	// Set up the window
	engine.SetWindowSize(*screenWidth, *screenHeight)
	engine.SetWindowTitle("Raccoon House")
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
