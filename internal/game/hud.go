package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/nickelinvasion/snake-game/internal/engine"
	"github.com/nickelinvasion/snake-game/internal/scene"
)

// HUD shows score, speed and status in the window title bar. Events mark
// it dirty; the frame loop redraws it at most once per frame.
type HUD struct {
	window *glfw.Window
	dirty  bool
	last   string
}

func NewHUD(window *glfw.Window) *HUD {
	return &HUD{window: window, dirty: true}
}

func (h *HUD) Invalidate() { h.dirty = true }

func (h *HUD) Render(snap engine.Snapshot, muted bool) {
	if !h.dirty {
		return
	}
	h.dirty = false
	title := scene.Title(snap, muted)
	if title == h.last {
		return
	}
	h.last = title
	h.window.SetTitle(title)
}
