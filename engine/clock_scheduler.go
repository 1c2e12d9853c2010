package engine

import (
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/snake/status"
)

// System is one stage of a fixed step
type System interface {
	Update(ctx *GameContext)
}

// EpisodeGate advances timed episode transitions at the start of every scheduler tick
type EpisodeGate interface {
	Advance(ctx *GameContext)
}

// Intervals configures the two fixed-rate loops
type Intervals struct {
	Movement time.Duration
	Food     time.Duration
	// MaxCatchUp bounds fixed steps per loop in one update, excess backlog is dropped
	MaxCatchUp int
}

// Validate rejects non-positive intervals
func (iv Intervals) Validate() error {
	if iv.Movement <= 0 {
		return errors.Errorf("movement interval must be positive, got %v", iv.Movement)
	}
	if iv.Food <= 0 {
		return errors.Errorf("food interval must be positive, got %v", iv.Food)
	}
	if iv.MaxCatchUp <= 0 {
		return errors.Errorf("catch-up bound must be positive, got %d", iv.MaxCatchUp)
	}
	return nil
}

// ClockScheduler drives the simulation from one scheduler tick
// Two accumulators gate the movement and food loops at their own cadence
// Both are stalled and zeroed while the episode is not running
type ClockScheduler struct {
	ctx       *GameContext
	clock     TimeProvider
	gate      EpisodeGate
	router    *Router[*GameContext]
	intervals Intervals

	movementSystems []System
	foodSystems     []System

	lastUpdate  time.Time
	movementAcc time.Duration
	foodAcc     time.Duration

	// Cached metric pointers
	statTicks    *atomic.Int64
	statMovement *atomic.Int64
	statFood     *atomic.Int64
}

// NewClockScheduler creates a scheduler starting at the clock's current time
func NewClockScheduler(ctx *GameContext, clock TimeProvider, gate EpisodeGate, intervals Intervals) (*ClockScheduler, error) {
	if err := intervals.Validate(); err != nil {
		return nil, errors.Wrap(err, "clock scheduler")
	}

	cs := &ClockScheduler{
		ctx:          ctx,
		clock:        clock,
		gate:         gate,
		router:       NewRouter[*GameContext](ctx.Events),
		intervals:    intervals,
		lastUpdate:   clock.Now(),
		statTicks:    ctx.Status.Ints.Get(status.KeySchedulerTick),
		statMovement: ctx.Status.Ints.Get(status.KeyMovementTicks),
		statFood:     ctx.Status.Ints.Get(status.KeyFoodTicks),
	}
	ctx.Now = cs.lastUpdate
	return cs, nil
}

// RegisterEventHandler adds an event handler to router, must be called before the first Update
func (cs *ClockScheduler) RegisterEventHandler(handler Handler[*GameContext]) {
	cs.router.Register(handler)
}

// SetMovementSystems sets the ordered stages of a movement step
func (cs *ClockScheduler) SetMovementSystems(systems ...System) {
	cs.movementSystems = systems
}

// SetFoodSystems sets the ordered stages of a food step
func (cs *ClockScheduler) SetFoodSystems(systems ...System) {
	cs.foodSystems = systems
}

// Update runs one scheduler tick
// Never blocks; the restart delay is a deadline checked by the gate
func (cs *ClockScheduler) Update() {
	now := cs.clock.Now()
	dt := now.Sub(cs.lastUpdate)
	if dt < 0 {
		dt = 0
	}
	cs.lastUpdate = now
	cs.ctx.Now = now
	cs.statTicks.Add(1)

	wasRunning := cs.ctx.Phase == PhaseRunning
	cs.gate.Advance(cs.ctx)
	cs.router.DispatchAll(cs.ctx)

	// A snake spawned in this update starts with empty accumulators
	if !wasRunning || cs.ctx.Phase != PhaseRunning {
		cs.stall()
		return
	}

	cs.movementAcc += dt
	cs.foodAcc += dt

	cs.movementAcc = cs.runFixed(cs.movementAcc, cs.intervals.Movement, cs.movementSystems, cs.statMovement)
	if cs.ctx.Phase != PhaseRunning {
		cs.stall()
		return
	}

	cs.foodAcc = cs.runFixed(cs.foodAcc, cs.intervals.Food, cs.foodSystems, cs.statFood)
	if cs.ctx.Phase != PhaseRunning {
		cs.stall()
	}
}

// Pending returns the current accumulator values
func (cs *ClockScheduler) Pending() (movement, food time.Duration) {
	return cs.movementAcc, cs.foodAcc
}

func (cs *ClockScheduler) stall() {
	cs.movementAcc = 0
	cs.foodAcc = 0
}

// runFixed fires systems once per whole interval in acc and returns the remainder
func (cs *ClockScheduler) runFixed(acc, interval time.Duration, systems []System, stat *atomic.Int64) time.Duration {
	steps := 0
	for acc >= interval {
		if steps == cs.intervals.MaxCatchUp {
			return acc % interval
		}
		acc -= interval
		steps++

		cs.step(systems)
		stat.Add(1)

		if cs.ctx.Phase != PhaseRunning {
			return 0
		}
	}
	return acc
}

// step runs one fixed step: systems in order, then event dispatch
func (cs *ClockScheduler) step(systems []System) {
	cs.ctx.beginTick()
	for _, s := range systems {
		s.Update(cs.ctx)
		if cs.ctx.TickHalted() {
			break
		}
	}
	cs.router.DispatchAll(cs.ctx)
}
