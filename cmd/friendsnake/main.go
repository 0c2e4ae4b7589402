package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nickelinvasion/snake-game/internal/assets"
	"github.com/nickelinvasion/snake-game/internal/config"
	"github.com/nickelinvasion/snake-game/internal/game"
)

// glfw calls must come from the main thread.
func init() { runtime.LockOSThread() }

func main() {
	logger := log.New(os.Stderr, "[snake] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config_error err=%v", err)
	}
	logger.Printf("starting seed=%d window=%dx%d", cfg.Seed, cfg.WindowWidth, cfg.WindowHeight)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AssetAddr != "" {
		var network assets.Fetcher = assets.DirFetcher{FS: os.DirFS(cfg.AssetDir)}
		if cfg.AssetUpstream != "" {
			network = assets.HTTPFetcher{Base: cfg.AssetUpstream}
		}
		cache := assets.NewCache(assets.CacheName)
		go func() {
			if err := assets.Serve(ctx, cfg.AssetAddr, cache, network, assets.DefaultManifest); err != nil {
				logger.Printf("asset_server_error addr=%s err=%v", cfg.AssetAddr, err)
			}
		}()
	}

	game.RunDesktop(ctx, cfg, logger)
}
