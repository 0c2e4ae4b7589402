package engine

import "github.com/google/uuid"

// Snapshot is a render-ready copy of the engine state. It shares no memory
// with the engine.
type Snapshot struct {
	SessionID  uuid.UUID
	Ticks      uint64
	Grid       Grid
	Snake      []Cell
	Direction  Direction
	Food       Cell
	HasFood    bool
	Obstacles  []Cell
	Powerups   []Powerup
	Score      int
	Speed      float64
	Multiplier float64
	State      State
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		SessionID:  e.sessionID,
		Ticks:      e.ticks,
		Grid:       e.grid,
		Snake:      append([]Cell(nil), e.snake...),
		Direction:  e.dir,
		Food:       e.food,
		HasFood:    e.hasFood,
		Obstacles:  append([]Cell(nil), e.obstacles...),
		Powerups:   append([]Powerup(nil), e.powerups...),
		Score:      e.score,
		Speed:      e.Speed(),
		Multiplier: e.Multiplier(),
		State:      e.state,
	}
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}
