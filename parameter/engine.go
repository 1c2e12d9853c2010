package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SchedulerTickInterval is the base scheduler tick; input is sampled every tick
	SchedulerTickInterval = 10 * time.Millisecond

	// MovementInterval is the fixed step of the movement/eating/growth loop
	MovementInterval = 200 * time.Millisecond

	// FoodSpawnInterval is the fixed step of the food spawner, independent of movement
	FoodSpawnInterval = 2 * time.Second

	// RestartDelay is the stall between a terminal collision and the fresh snake
	RestartDelay = 1 * time.Second

	// MaxCatchUpSteps bounds fixed steps fired by a single scheduler update
	// Prevents a spiral after the process was suspended
	MaxCatchUpSteps = 5
)

// Event queue
const (
	// EventQueueCapacity is the initial capacity of the per-tick event queue
	EventQueueCapacity = 16
)
