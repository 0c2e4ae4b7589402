package engine

import (
	"time"

	"github.com/google/uuid"
)

// Engine owns all game state for one play field. Reset, Tick, ApplyPowerup
// and the input/pause operations are its only mutators; callers drive it
// from a single goroutine.
type Engine struct {
	grid      Grid
	snake     []Cell // head at index 0
	dir       Direction
	pending   Direction
	food      Cell
	hasFood   bool
	obstacles []Cell
	powerups  []Powerup
	score     int
	effects   effects
	state     State

	// Frame clock.
	now          time.Duration
	lastFrame    time.Duration
	clockStarted bool
	tickAcc      time.Duration

	sessionID uuid.UUID
	ticks     uint64

	rng Source
	bus *EventBus
}

// New returns an engine with no play field. Call Reset before use.
// bus may be nil.
func New(rng Source, bus *EventBus) *Engine {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	return &Engine{
		rng:   rng,
		bus:   bus,
		state: StateGameOver,
		snake: []Cell{{}},
		grid:  Grid{Cols: 1, Rows: 1, Tile: MinTile},
	}
}

// Reset starts a new session on a canvas of the given pixel size.
func (e *Engine) Reset(width, height int) {
	e.grid = GridForCanvas(width, height)
	e.snake = []Cell{e.grid.Center()}
	e.dir = Right
	e.pending = Right
	e.score = 0
	e.effects = e.effects[:0]
	e.state = StateRunning
	e.tickAcc = 0
	e.clockStarted = false
	e.ticks = 0
	e.sessionID = uuid.New()

	e.placeObstacles(ObstacleCount)
	e.powerups = e.powerups[:0]
	e.placeFood()

	e.emit(EventReset)
	e.emit(EventScoreChanged)
	e.emit(EventSpeedChanged)
}

func (e *Engine) randCell() Cell {
	return Cell{X: e.rng.Intn(e.grid.Cols), Y: e.rng.Intn(e.grid.Rows)}
}

// isEmpty reports whether c is on the grid and free of snake, obstacles and
// powerups. Food is not considered.
func (e *Engine) isEmpty(c Cell) bool {
	if !e.grid.Contains(c) {
		return false
	}
	return !containsCell(e.snake, c) && !containsCell(e.obstacles, c) && e.powerupAt(c) < 0
}

// findEmpty samples up to trials random cells and returns the first empty one.
func (e *Engine) findEmpty(trials int) (Cell, bool) {
	for i := 0; i < trials; i++ {
		c := e.randCell()
		if e.isEmpty(c) {
			return c, true
		}
	}
	return Cell{}, false
}

func (e *Engine) placeObstacles(n int) {
	e.obstacles = e.obstacles[:0]
	for i := 0; i < n; i++ {
		if c, ok := e.findEmpty(ObstacleTrials); ok {
			e.obstacles = append(e.obstacles, c)
		}
	}
}

// placeFood moves the food to a random empty cell, or leaves it absent when
// FoodTrials samples all miss.
func (e *Engine) placeFood() {
	e.food, e.hasFood = e.findEmpty(FoodTrials)
}

func (e *Engine) spawnPowerup() {
	kind := PowerupKind(e.rng.Intn(int(PowerupKindCount)))
	c, ok := e.findEmpty(PowerupTrials)
	if !ok {
		return
	}
	e.powerups = append(e.powerups, Powerup{Cell: c, Kind: kind, Duration: kind.Duration()})
}

// Tick advances the simulation by one discrete step. It is a no-op unless
// the engine is running.
func (e *Engine) Tick() {
	if e.state != StateRunning {
		return
	}
	e.dir = e.pending
	head := e.grid.Step(e.snake[0], e.dir)

	if containsCell(e.snake, head) || containsCell(e.obstacles, head) {
		e.state = StateGameOver
		e.emit(EventGameOver)
		return
	}

	e.snake = append(e.snake, Cell{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = head
	e.ticks++

	if e.hasFood && head == e.food {
		e.score += FoodScore
		e.placeFood()
		if e.rng.Float64() < PowerupSpawnChance {
			e.spawnPowerup()
		}
		e.emit(EventFoodEaten)
		e.emit(EventScoreChanged)
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	if i := e.powerupAt(head); i >= 0 {
		kind := e.powerups[i].Kind
		e.powerups = append(e.powerups[:i], e.powerups[i+1:]...)
		e.ApplyPowerup(kind)
	}
}

// ApplyPowerup applies kind's effect immediately.
func (e *Engine) ApplyPowerup(kind PowerupKind) {
	switch kind {
	case PowerupSpeed:
		e.addEffect(SpeedMultiplier, SpeedDuration)
	case PowerupGrow:
		tail := e.snake[len(e.snake)-1]
		for i := 0; i < GrowSegments; i++ {
			e.snake = append(e.snake, tail)
		}
	case PowerupSlow:
		e.addEffect(SlowMultiplier, SlowDuration)
	default:
		return
	}
	e.bus.Emit(Event{Type: EventPowerupCollected, Score: e.score, Speed: e.Speed(), Powerup: kind})
	e.emit(EventSpeedChanged)
}

// Boost is the transient input boost: double speed for BoostDuration,
// taking precedence over older effects while it lasts. It is ignored unless
// the engine is running.
func (e *Engine) Boost() {
	if e.state != StateRunning {
		return
	}
	e.addEffect(BoostMultiplier, BoostDuration)
	e.emit(EventSpeedChanged)
}

func (e *Engine) addEffect(mult float64, d time.Duration) {
	e.effects = append(e.effects, effect{multiplier: mult, expires: e.now + d})
}

// Steer queues dir for the next tick. A direction that exactly reverses the
// committed direction is rejected.
func (e *Engine) Steer(dir Direction) bool {
	if !dir.Valid() || dir.Opposes(e.dir) {
		return false
	}
	e.pending = dir
	return true
}

// Advance is the frame clock entry point. now is a monotonic timestamp; the
// first call only establishes the time base. It expires timed effects, then
// runs as many ticks as the elapsed time covers and returns that count.
// While paused it only expires effects, which keep counting in wall time.
func (e *Engine) Advance(now time.Duration) int {
	if e.state == StatePaused {
		e.now = now
		e.expireEffects()
		return 0
	}
	if e.state != StateRunning {
		return 0
	}
	if !e.clockStarted {
		e.lastFrame = now
		e.clockStarted = true
	}
	dt := now - e.lastFrame
	e.lastFrame = now
	e.now = now
	e.expireEffects()

	e.tickAcc += dt
	interval := e.Interval()
	n := 0
	for e.tickAcc > interval && e.state == StateRunning {
		e.tickAcc -= interval
		e.Tick()
		n++
	}
	return n
}

func (e *Engine) expireEffects() {
	before := e.effects.multiplier()
	e.effects = e.effects.expire(e.now)
	if e.effects.multiplier() != before {
		e.emit(EventSpeedChanged)
	}
}

// Pause suspends ticking. Accumulated tick time and effect expiries are kept.
func (e *Engine) Pause(now time.Duration) {
	if e.state != StateRunning {
		return
	}
	e.now = now
	e.state = StatePaused
	e.emit(EventPaused)
}

// Resume restarts ticking and rebases the frame clock on now, so the time
// spent paused is not simulated.
func (e *Engine) Resume(now time.Duration) {
	if e.state != StatePaused {
		return
	}
	e.state = StateRunning
	e.lastFrame = now
	e.clockStarted = true
	e.now = now
	e.emit(EventResumed)
	e.expireEffects()
}

// TogglePause switches between running and paused; it does nothing after
// game over.
func (e *Engine) TogglePause(now time.Duration) {
	switch e.state {
	case StateRunning:
		e.Pause(now)
	case StatePaused:
		e.Resume(now)
	}
}

// Speed is the effective ticks per second.
func (e *Engine) Speed() float64 {
	return BaseSpeed * e.effects.multiplier()
}

// Multiplier is the speed factor of the newest unexpired timed effect, or 1.
func (e *Engine) Multiplier() float64 {
	return e.effects.multiplier()
}

// Interval is the simulated time per tick at the current speed.
func (e *Engine) Interval() time.Duration {
	return time.Duration(float64(time.Second) / e.Speed())
}

func (e *Engine) State() State         { return e.state }
func (e *Engine) Running() bool        { return e.state == StateRunning }
func (e *Engine) Score() int           { return e.score }
func (e *Engine) Grid() Grid           { return e.grid }
func (e *Engine) Head() Cell           { return e.snake[0] }
func (e *Engine) Len() int             { return len(e.snake) }
func (e *Engine) Direction() Direction { return e.dir }
func (e *Engine) Pending() Direction   { return e.pending }
func (e *Engine) SessionID() uuid.UUID { return e.sessionID }

// Food returns the food cell, or false when no food is on the grid.
func (e *Engine) Food() (Cell, bool) {
	return e.food, e.hasFood
}

func (e *Engine) powerupAt(c Cell) int {
	for i := range e.powerups {
		if e.powerups[i].Cell == c {
			return i
		}
	}
	return -1
}

func (e *Engine) emit(t EventType) {
	e.bus.Emit(Event{Type: t, Score: e.score, Speed: e.Speed()})
}

func containsCell(cells []Cell, c Cell) bool {
	for _, o := range cells {
		if o == c {
			return true
		}
	}
	return false
}
