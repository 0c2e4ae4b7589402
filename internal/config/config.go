// Package config loads runtime settings from the environment and optional
// .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Window defaults.
const (
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 640
)

// Audio defaults.
const (
	DefaultMusicVolume = 0.14
	DefaultSFXVolume   = 0.58
)

const DefaultAssetDir = "web"

// Config holds settings for one run of the game.
type Config struct {
	Seed         uint64
	WindowWidth  int
	WindowHeight int

	Muted       bool
	MusicVolume float64
	SFXVolume   float64

	AssetAddr     string // empty disables the asset server
	AssetDir      string
	AssetUpstream string // optional base URL for cache misses
}

// Load reads the given .env files (default ".env"; missing files are
// skipped) and then the SNAKE_* environment variables. Variables already set
// in the environment win over .env values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Seed:          uint64(time.Now().UnixNano()),
		WindowWidth:   DefaultWindowWidth,
		WindowHeight:  DefaultWindowHeight,
		MusicVolume:   DefaultMusicVolume,
		SFXVolume:     DefaultSFXVolume,
		AssetAddr:     os.Getenv("SNAKE_ASSET_ADDR"),
		AssetDir:      DefaultAssetDir,
		AssetUpstream: os.Getenv("SNAKE_ASSET_UPSTREAM"),
	}
	if v := os.Getenv("SNAKE_ASSET_DIR"); v != "" {
		cfg.AssetDir = v
	}

	var err error
	if cfg.Seed, err = envUint("SNAKE_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.WindowWidth, err = envSize("SNAKE_WINDOW_WIDTH", cfg.WindowWidth); err != nil {
		return Config{}, err
	}
	if cfg.WindowHeight, err = envSize("SNAKE_WINDOW_HEIGHT", cfg.WindowHeight); err != nil {
		return Config{}, err
	}
	if cfg.Muted, err = envBool("SNAKE_MUTED", false); err != nil {
		return Config{}, err
	}
	if cfg.MusicVolume, err = envVolume("SNAKE_MUSIC_VOLUME", cfg.MusicVolume); err != nil {
		return Config{}, err
	}
	if cfg.SFXVolume, err = envVolume("SNAKE_SFX_VOLUME", cfg.SFXVolume); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envUint(key string, def uint64) (uint64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envSize(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, v)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envVolume(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%s: volume %v outside [0,1]", key, v)
	}
	return v, nil
}
