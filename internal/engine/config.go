package engine

import "time"

// Grid derivation.
const (
	TilesAcross = 30 // tile = min(width, height) / TilesAcross
	MinTile     = 1
)

// Speed.
const (
	BaseSpeed = 6.0 // ticks per second at multiplier 1
)

// Placement.
const (
	ObstacleCount  = 10
	ObstacleTrials = 1 // per obstacle; exhausted obstacles are skipped
	FoodTrials     = 100
	PowerupTrials  = 50
)

// Scoring and spawning.
const (
	FoodScore          = 10
	PowerupSpawnChance = 0.35
	GrowSegments       = 3
)

// Timed effects.
const (
	SpeedMultiplier = 2.0
	SpeedDuration   = 5000 * time.Millisecond
	SlowMultiplier  = 0.5
	SlowDuration    = 6000 * time.Millisecond
	BoostMultiplier = 2.0
	BoostDuration   = 300 * time.Millisecond
)

// Input.
const SwipeThreshold = 10.0 // pixels
