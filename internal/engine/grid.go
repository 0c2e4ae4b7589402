package engine

// Cell is a grid coordinate (column, row), 0-indexed.
type Cell struct {
	X, Y int
}

// Direction is a unit step on the grid.
type Direction struct {
	X, Y int
}

var (
	Right = Direction{X: 1, Y: 0}
	Left  = Direction{X: -1, Y: 0}
	Down  = Direction{X: 0, Y: 1}
	Up    = Direction{X: 0, Y: -1}
)

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	return (abs(d.X) == 1 && d.Y == 0) || (d.X == 0 && abs(d.Y) == 1)
}

func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// Opposes reports whether d is the exact reverse of o.
func (d Direction) Opposes(o Direction) bool {
	return d == o.Reverse()
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return "none"
}

// Grid is the play field. It is toroidal: stepping off one edge re-enters
// on the opposite edge.
type Grid struct {
	Cols, Rows int
	Tile       int // pixels per cell on the canvas the grid was derived from
}

// GridForCanvas derives tile size and grid dimensions from a canvas size.
func GridForCanvas(width, height int) Grid {
	side := width
	if height < side {
		side = height
	}
	tile := side / TilesAcross
	if tile < MinTile {
		tile = MinTile
	}
	g := Grid{Cols: width / tile, Rows: height / tile, Tile: tile}
	if g.Cols < 1 {
		g.Cols = 1
	}
	if g.Rows < 1 {
		g.Rows = 1
	}
	return g
}

func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Cols && c.Y < g.Rows
}

// Wrap folds c back onto the grid modulo its dimensions.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: floorMod(c.X, g.Cols), Y: floorMod(c.Y, g.Rows)}
}

// Step returns the cell one move from c in direction d, wrapped.
func (g Grid) Step(c Cell, d Direction) Cell {
	return g.Wrap(Cell{X: c.X + d.X, Y: c.Y + d.Y})
}

func (g Grid) Center() Cell {
	return Cell{X: g.Cols / 2, Y: g.Rows / 2}
}

// SwipeDirection maps a pointer drag to a direction. The dominant axis wins
// and its magnitude must exceed SwipeThreshold.
func SwipeDirection(dx, dy float64) (Direction, bool) {
	if absF(dx) > absF(dy) {
		switch {
		case dx > SwipeThreshold:
			return Right, true
		case dx < -SwipeThreshold:
			return Left, true
		}
		return Direction{}, false
	}
	switch {
	case dy > SwipeThreshold:
		return Down, true
	case dy < -SwipeThreshold:
		return Up, true
	}
	return Direction{}, false
}
