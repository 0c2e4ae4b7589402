package scene

import (
	"fmt"
	"strings"

	"github.com/nickelinvasion/snake-game/internal/engine"
)

const gameName = "Friends Snake"

// Title is the heads-up line shown in the window title bar.
func Title(snap engine.Snapshot, muted bool) string {
	if snap.State == engine.StateGameOver {
		return fmt.Sprintf("%s | Game Over — Score: %d. Press R to play again.", gameName, snap.Score)
	}

	parts := []string{
		gameName,
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Speed: %.1f", snap.Speed),
	}
	if snap.Multiplier != 1 {
		parts = append(parts, fmt.Sprintf("x%g", snap.Multiplier))
	}
	if snap.State == engine.StatePaused {
		parts = append(parts, "PAUSED (P to resume)")
	}
	if muted {
		parts = append(parts, "muted")
	}
	return strings.Join(parts, " | ")
}
