// Package game is the desktop shell: a glfw window driving the engine's
// frame clock, keyboard and mouse input, the GL renderer and sound.
package game

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/nickelinvasion/snake-game/internal/audio"
	"github.com/nickelinvasion/snake-game/internal/config"
	"github.com/nickelinvasion/snake-game/internal/engine"
	"github.com/nickelinvasion/snake-game/internal/hooks"
	"github.com/nickelinvasion/snake-game/internal/scene"
)

// clock converts glfw's seconds into the engine's monotonic timestamp.
func clock() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

// playSide is the square play area that fits the framebuffer.
func playSide(fbW, fbH int) int {
	if fbH < fbW {
		return fbH
	}
	return fbW
}

// RunDesktop opens the window and runs the game until the window closes or
// ctx is cancelled.
func RunDesktop(ctx context.Context, cfg config.Config, logger *log.Logger) {
	runtime.LockOSThread()

	window, err := initWindow(cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	sound, err := audio.New(audio.Options{
		MusicVolume: cfg.MusicVolume,
		SFXVolume:   cfg.SFXVolume,
		Muted:       cfg.Muted,
		Seed:        cfg.Seed,
	})
	if err != nil {
		logger.Printf("audio_init_failed err=%v (continuing without sound)", err)
		sound = nil
	}
	defer sound.Close()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	bus := engine.NewEventBus()
	eng := engine.New(engine.NewRand(cfg.Seed), bus)
	hud := NewHUD(window)
	hooks.Wire(bus, eng, hud, sound, logger)

	input := NewInput()
	fbW, fbH := window.GetFramebufferSize()
	side := playSide(fbW, fbH)
	eng.Reset(side, side)

	var buf []float32
	for !window.ShouldClose() {
		glfw.PollEvents()
		now := clock()

		if ctx.Err() != nil || window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		w, h := window.GetFramebufferSize()
		if w <= 0 || h <= 0 {
			continue
		}
		if w != fbW || h != fbH {
			fbW, fbH = w, h
			side = playSide(fbW, fbH)
			eng.Reset(side, side)
		}

		if dir, ok := input.Steer(window); ok {
			eng.Steer(dir)
		}
		if dir, ok := input.Swipe(window); ok {
			eng.Steer(dir)
		}
		if input.JustPressed(window, glfw.KeySpace) {
			eng.Boost()
		}
		if input.JustPressed(window, glfw.KeyP) {
			eng.TogglePause(now)
		}
		if input.JustPressed(window, glfw.KeyM) {
			sound.SetMuted(!sound.Muted())
			hud.Invalidate()
		}
		if input.JustPressed(window, glfw.KeyR) && eng.State() == engine.StateGameOver {
			eng.Reset(side, side)
		}

		eng.Advance(now)

		snap := eng.Snapshot()
		hud.Render(snap, sound.Muted())

		rend.BeginFrame(fbW, fbH)
		buf = scene.Build(snap, scene.Fit(snap.Grid, fbW, fbH), buf)
		rend.DrawSprites(buf, fbW, fbH)
		window.SwapBuffers()
	}
}
