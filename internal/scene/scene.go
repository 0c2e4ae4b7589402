// Package scene turns engine snapshots into sprite buffers for the renderer.
// It has no GL dependency so the layout can be tested headless.
package scene

import "github.com/nickelinvasion/snake-game/internal/engine"

// Sprite buffer layout: [x, y, size, r, g, b, a, shape] per sprite.
const SpriteFloats = 8

// Sprite shapes, read by the fragment shader.
const (
	ShapeSquare  = 0
	ShapeCircle  = 1
	ShapeOutline = 2
)

// Alpha levels.
const (
	gridAlpha      = 0.02
	obstacleShadow = 0.2
	dimLevel       = 150 // body colour scale while paused or after game over
)

// Layout places the grid on a framebuffer.
type Layout struct {
	Tile             float32 // pixels per cell
	OriginX, OriginY float32 // top-left of the grid in framebuffer pixels
	Cols, Rows       int
}

// Fit scales the grid to the largest whole-pixel tile that fits the
// framebuffer and centres it.
func Fit(g engine.Grid, fbW, fbH int) Layout {
	cols, rows := g.Cols, g.Rows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	tile := fbW / cols
	if t := fbH / rows; t < tile {
		tile = t
	}
	if tile < 1 {
		tile = 1
	}
	return Layout{
		Tile:    float32(tile),
		OriginX: float32((fbW - tile*cols) / 2),
		OriginY: float32((fbH - tile*rows) / 2),
		Cols:    cols,
		Rows:    rows,
	}
}

// Center returns the framebuffer position of the centre of c.
func (l Layout) Center(c engine.Cell) (x, y float32) {
	return l.OriginX + (float32(c.X)+0.5)*l.Tile, l.OriginY + (float32(c.Y)+0.5)*l.Tile
}

// Width and Height are the grid's size in framebuffer pixels.
func (l Layout) Width() float32  { return float32(l.Cols) * l.Tile }
func (l Layout) Height() float32 { return float32(l.Rows) * l.Tile }

func appendSprite(buf []float32, l Layout, c engine.Cell, size float32, col RGB, a float32, shape int) []float32 {
	x, y := l.Center(c)
	r, g, b := col.Floats()
	return append(buf, x, y, size, r, g, b, a, float32(shape))
}

// Build appends the sprites for snap to buf (reusing its storage) in draw
// order: grid, obstacles, powerups, food, snake body, head.
func Build(snap engine.Snapshot, l Layout, buf []float32) []float32 {
	buf = buf[:0]
	t := l.Tile

	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; x++ {
			buf = appendSprite(buf, l, engine.Cell{X: x, Y: y}, t, Palette.GridLine, gridAlpha, ShapeOutline)
		}
	}

	for _, o := range snap.Obstacles {
		buf = appendSprite(buf, l, o, t-2, Palette.Obstacle, 1, ShapeSquare)
		buf = appendSprite(buf, l, o, t-6, RGB{}, obstacleShadow, ShapeSquare)
	}

	for _, p := range snap.Powerups {
		buf = appendSprite(buf, l, p.Cell, t*2/3, PowerupColor(p.Kind), 1, ShapeCircle)
	}

	if snap.HasFood {
		buf = appendSprite(buf, l, snap.Food, t*2/2.6, Palette.Food, 1, ShapeCircle)
	}

	body, head := Palette.Snake, Palette.Head
	switch snap.State {
	case engine.StatePaused:
		body, head = body.Mul(dimLevel), head.Mul(dimLevel)
	case engine.StateGameOver:
		body, head = body.Mul(dimLevel), Palette.GameOverTint
	}
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		buf = appendSprite(buf, l, snap.Snake[i], t-2, body, 1, ShapeSquare)
	}
	if len(snap.Snake) > 0 {
		buf = appendSprite(buf, l, snap.Snake[0], t-2, head, 1, ShapeSquare)
	}
	return buf
}
