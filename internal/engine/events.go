package engine

type EventType int

const (
	EventReset EventType = iota
	EventScoreChanged
	EventSpeedChanged
	EventFoodEaten
	EventPowerupCollected
	EventGameOver
	EventPaused
	EventResumed
)

func (t EventType) String() string {
	switch t {
	case EventReset:
		return "reset"
	case EventScoreChanged:
		return "score"
	case EventSpeedChanged:
		return "speed"
	case EventFoodEaten:
		return "food"
	case EventPowerupCollected:
		return "powerup"
	case EventGameOver:
		return "game_over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	}
	return "unknown"
}

// Event carries the state a side-effect hook needs. Fields not relevant to
// the event type are zero.
type Event struct {
	Type    EventType
	Score   int
	Speed   float64 // effective ticks per second
	Powerup PowerupKind
}

type EventHandler func(Event)

// EventBus dispatches engine events synchronously on the caller's goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
