package scene

import (
	"testing"

	"github.com/nickelinvasion/snake-game/internal/engine"
)

func TestFitCentresGrid(t *testing.T) {
	l := Fit(engine.Grid{Cols: 30, Rows: 30, Tile: 21}, 800, 600)

	if l.Tile != 20 {
		t.Fatalf("Expected tile 20, got %v", l.Tile)
	}
	if l.OriginX != 100 || l.OriginY != 0 {
		t.Errorf("Expected origin (100,0), got (%v,%v)", l.OriginX, l.OriginY)
	}
	if l.Width() != 600 || l.Height() != 600 {
		t.Errorf("Expected 600x600 play area, got %vx%v", l.Width(), l.Height())
	}
	x, y := l.Center(engine.Cell{X: 0, Y: 29})
	if x != 110 || y != 590 {
		t.Errorf("Expected centre (110,590), got (%v,%v)", x, y)
	}
}

func TestFitNeverReturnsZeroTile(t *testing.T) {
	l := Fit(engine.Grid{Cols: 100, Rows: 100}, 10, 10)
	if l.Tile < 1 {
		t.Errorf("Expected tile of at least 1, got %v", l.Tile)
	}
}

func sprites(buf []float32) [][]float32 {
	var out [][]float32
	for i := 0; i+SpriteFloats <= len(buf); i += SpriteFloats {
		out = append(out, buf[i:i+SpriteFloats])
	}
	return out
}

func TestBuildDrawOrderAndCounts(t *testing.T) {
	snap := engine.Snapshot{
		Grid:      engine.Grid{Cols: 4, Rows: 3, Tile: 10},
		Snake:     []engine.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}},
		Food:      engine.Cell{X: 3, Y: 2},
		HasFood:   true,
		Obstacles: []engine.Cell{{X: 0, Y: 0}},
		Powerups:  []engine.Powerup{{Cell: engine.Cell{X: 3, Y: 0}, Kind: engine.PowerupSpeed}},
		State:     engine.StateRunning,
	}
	l := Fit(snap.Grid, 40, 30)
	sp := sprites(Build(snap, l, nil))

	want := 4*3 + 2 + 1 + 1 + 2
	if len(sp) != want {
		t.Fatalf("Expected %d sprites, got %d", want, len(sp))
	}
	for _, s := range sp[:12] {
		if s[7] != ShapeOutline {
			t.Fatalf("Expected grid outlines first, got shape %v", s[7])
		}
	}
	pw := sp[14]
	r, g, b := Palette.PowerSpeed.Floats()
	if pw[7] != ShapeCircle || pw[3] != r || pw[4] != g || pw[5] != b {
		t.Errorf("Expected a speed-coloured circle, got %v", pw)
	}
	food := sp[15]
	if food[0] != 35 || food[1] != 25 {
		t.Errorf("Expected food at (35,25), got (%v,%v)", food[0], food[1])
	}
	head := sp[len(sp)-1]
	hr, hg, hb := Palette.Head.Floats()
	if head[0] != 25 || head[1] != 15 || head[3] != hr || head[4] != hg || head[5] != hb {
		t.Errorf("Expected head drawn last at (25,15) in head colour, got %v", head)
	}
}

func TestBuildOmitsAbsentFoodAndDimsWhenStopped(t *testing.T) {
	snap := engine.Snapshot{
		Grid:  engine.Grid{Cols: 2, Rows: 2},
		Snake: []engine.Cell{{X: 0, Y: 0}},
		State: engine.StateGameOver,
	}
	buf := make([]float32, 0, 64)
	sp := sprites(Build(snap, Fit(snap.Grid, 20, 20), buf))

	if len(sp) != 4+1 {
		t.Fatalf("Expected grid plus head only, got %d sprites", len(sp))
	}
	r, g, b := Palette.GameOverTint.Floats()
	if sp[4][3] != r || sp[4][4] != g || sp[4][5] != b {
		t.Errorf("Expected game-over tinted head, got %v", sp[4][3:6])
	}
}

func TestBuildSnakeColoursByState(t *testing.T) {
	tests := []struct {
		state      engine.State
		body, head RGB
	}{
		{engine.StateRunning, Palette.Snake, Palette.Head},
		{engine.StatePaused, Palette.Snake.Mul(dimLevel), Palette.Head.Mul(dimLevel)},
		{engine.StateGameOver, Palette.Snake.Mul(dimLevel), Palette.GameOverTint},
	}
	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			snap := engine.Snapshot{
				Grid:  engine.Grid{Cols: 3, Rows: 1},
				Snake: []engine.Cell{{X: 2, Y: 0}, {X: 1, Y: 0}},
				State: tc.state,
			}
			sp := sprites(Build(snap, Fit(snap.Grid, 30, 10), nil))
			body, head := sp[len(sp)-2], sp[len(sp)-1]

			br, bg, bb := tc.body.Floats()
			if body[3] != br || body[4] != bg || body[5] != bb {
				t.Errorf("Expected body colour %v, got %v", tc.body, body[3:6])
			}
			hr, hg, hb := tc.head.Floats()
			if head[3] != hr || head[4] != hg || head[5] != hb {
				t.Errorf("Expected head colour %v, got %v", tc.head, head[3:6])
			}
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		snap  engine.Snapshot
		muted bool
		want  string
	}{
		{
			name: "running",
			snap: engine.Snapshot{Score: 30, Speed: 6, Multiplier: 1, State: engine.StateRunning},
			want: "Friends Snake | Score: 30 | Speed: 6.0",
		},
		{
			name:  "boosted and muted",
			snap:  engine.Snapshot{Score: 10, Speed: 12, Multiplier: 2, State: engine.StateRunning},
			muted: true,
			want:  "Friends Snake | Score: 10 | Speed: 12.0 | x2 | muted",
		},
		{
			name: "paused",
			snap: engine.Snapshot{Speed: 3, Multiplier: 0.5, State: engine.StatePaused},
			want: "Friends Snake | Score: 0 | Speed: 3.0 | x0.5 | PAUSED (P to resume)",
		},
		{
			name: "game over",
			snap: engine.Snapshot{Score: 120, Speed: 6, Multiplier: 1, State: engine.StateGameOver},
			want: "Friends Snake | Game Over — Score: 120. Press R to play again.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Title(tc.snap, tc.muted); got != tc.want {
				t.Errorf("Title() = %q, want %q", got, tc.want)
			}
		})
	}
}
