package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/nickelinvasion/snake-game/internal/engine"
)

type Input struct {
	prevKeys map[glfw.Key]bool

	dragging     bool
	dragX, dragY float64
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

var steerKeys = []struct {
	key glfw.Key
	dir engine.Direction
}{
	{glfw.KeyUp, engine.Up},
	{glfw.KeyW, engine.Up},
	{glfw.KeyDown, engine.Down},
	{glfw.KeyS, engine.Down},
	{glfw.KeyLeft, engine.Left},
	{glfw.KeyA, engine.Left},
	{glfw.KeyRight, engine.Right},
	{glfw.KeyD, engine.Right},
}

// Steer returns the direction of a steering key pressed this frame. When
// several are pressed at once the last in table order wins.
func (in *Input) Steer(window *glfw.Window) (engine.Direction, bool) {
	var dir engine.Direction
	ok := false
	for _, sk := range steerKeys {
		if in.JustPressed(window, sk.key) {
			dir, ok = sk.dir, true
		}
	}
	return dir, ok
}

// Swipe tracks a left-button drag and reports its direction on release.
// Drags shorter than the swipe threshold are ignored.
func (in *Input) Swipe(window *glfw.Window) (engine.Direction, bool) {
	down := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	x, y := window.GetCursorPos()
	switch {
	case down && !in.dragging:
		in.dragging = true
		in.dragX, in.dragY = x, y
	case !down && in.dragging:
		in.dragging = false
		return engine.SwipeDirection(x-in.dragX, y-in.dragY)
	}
	return engine.Direction{}, false
}
