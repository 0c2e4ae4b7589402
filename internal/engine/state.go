package engine

type State int

const (
	StateRunning  State = iota
	StatePaused         // user toggled; resumable
	StateGameOver       // fatal collision; only Reset leaves it
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}
