package status

import "sync/atomic"

// Metric keys published by the simulation
const (
	KeyEaten         = "snake.eaten"
	KeyLength        = "snake.length"
	KeyFoodActive    = "food.active"
	KeyFoodSpawned   = "food.spawned"
	KeyEpisodes      = "episode.count"
	KeyEpisodeID     = "episode.id"
	KeyMovementTicks = "engine.movement_ticks"
	KeyFoodTicks     = "engine.food_ticks"
	KeySchedulerTick = "engine.scheduler_ticks"
)

// Registry is the central metrics facade
// Systems cache pointers during init; update loops write directly to atomics
// Values are observational, simulation logic never reads them back
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}
