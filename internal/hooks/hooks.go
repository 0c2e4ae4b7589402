// Package hooks connects engine events to the title-bar HUD, sound and log.
package hooks

import (
	"log"

	"github.com/nickelinvasion/snake-game/internal/audio/synth"
	"github.com/nickelinvasion/snake-game/internal/engine"
)

// Sound is the part of the audio system the hooks drive.
type Sound interface {
	Play(synth.Sound)
	Pause()
	Resume()
}

// Display is redrawn lazily; Invalidate marks it stale.
type Display interface {
	Invalidate()
}

// Wire subscribes the HUD, sound and log handlers on bus. Music is paused
// while the game is paused or over and resumes on resume or reset.
func Wire(bus *engine.EventBus, eng *engine.Engine, hud Display, sound Sound, logger *log.Logger) {
	for _, t := range []engine.EventType{
		engine.EventReset,
		engine.EventScoreChanged,
		engine.EventSpeedChanged,
		engine.EventGameOver,
		engine.EventPaused,
		engine.EventResumed,
	} {
		bus.Subscribe(t, func(engine.Event) { hud.Invalidate() })
	}

	bus.Subscribe(engine.EventFoodEaten, func(engine.Event) { sound.Play(synth.SoundEat) })
	bus.Subscribe(engine.EventPowerupCollected, func(ev engine.Event) {
		sound.Play(synth.SoundPowerup)
		logger.Printf("powerup session=%s kind=%s speed=%.1f", eng.SessionID(), ev.Powerup, ev.Speed)
	})
	bus.Subscribe(engine.EventPaused, func(engine.Event) {
		sound.Pause()
		sound.Play(synth.SoundClick)
	})
	bus.Subscribe(engine.EventResumed, func(engine.Event) {
		sound.Resume()
		sound.Play(synth.SoundClick)
	})
	bus.Subscribe(engine.EventReset, func(engine.Event) {
		sound.Resume()
		g := eng.Grid()
		logger.Printf("session_start session=%s grid=%dx%d tile=%d", eng.SessionID(), g.Cols, g.Rows, g.Tile)
	})
	bus.Subscribe(engine.EventGameOver, func(ev engine.Event) {
		sound.Pause()
		sound.Play(synth.SoundGameOver)
		logger.Printf("game_over session=%s score=%d length=%d", eng.SessionID(), ev.Score, eng.Len())
	})
}
