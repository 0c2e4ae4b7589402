package engine

import "time"

type PowerupKind int

const (
	PowerupSpeed PowerupKind = iota
	PowerupGrow
	PowerupSlow

	PowerupKindCount // must stay last
)

func (k PowerupKind) String() string {
	switch k {
	case PowerupSpeed:
		return "speed"
	case PowerupGrow:
		return "grow"
	case PowerupSlow:
		return "slow"
	}
	return "unknown"
}

// Duration is how long the kind's effect lasts once picked up. Grow is
// instant and returns 0.
func (k PowerupKind) Duration() time.Duration {
	switch k {
	case PowerupSpeed:
		return SpeedDuration
	case PowerupSlow:
		return SlowDuration
	}
	return 0
}

// Powerup is a pickup lying on the grid.
type Powerup struct {
	Cell
	Kind     PowerupKind
	Duration time.Duration
}

// effect is a timed speed multiplier.
type effect struct {
	multiplier float64
	expires    time.Duration
}

// effects is ordered by application time. The newest unexpired effect
// decides the multiplier; expiring an effect only removes that effect.
type effects []effect

func (es effects) multiplier() float64 {
	if len(es) == 0 {
		return 1
	}
	return es[len(es)-1].multiplier
}

// expire drops every effect whose expiry is at or before now.
func (es effects) expire(now time.Duration) effects {
	kept := es[:0]
	for _, e := range es {
		if e.expires > now {
			kept = append(kept, e)
		}
	}
	return kept
}
