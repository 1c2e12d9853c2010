package engine

import (
	"time"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/status"
)

// EpisodePhase is the state of the episode controller
type EpisodePhase uint8

const (
	// PhaseRunning ticks movement and food normally
	PhaseRunning EpisodePhase = iota
	// PhaseEnding holds an empty board until the restart deadline
	PhaseEnding
	// PhaseRestarting spawns the fresh snake, transient within one update
	PhaseRestarting
)

func (p EpisodePhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEnding:
		return "ending"
	case PhaseRestarting:
		return "restarting"
	}
	return "unknown"
}

// GameContext is the single mutable simulation state passed through every step
// Owned by the simulation goroutine; only Input may be written from elsewhere
type GameContext struct {
	Arena  core.Arena
	Snake  *components.Snake // nil outside an episode
	Food   *components.Food
	Input  *InputBuffer
	Events *EventQueue
	Status *status.Registry

	// Phase is written by the episode controller only
	Phase     EpisodePhase
	EpisodeID string

	// Now is the scheduler time of the current update
	Now time.Time

	lastTail    core.Position
	hasLastTail bool
	halted      bool
}

// NewGameContext creates an empty board with no snake
func NewGameContext(arena core.Arena, reg *status.Registry) *GameContext {
	return &GameContext{
		Arena:  arena,
		Food:   components.NewFood(),
		Input:  NewInputBuffer(),
		Events: NewEventQueue(),
		Status: reg,
		Phase:  PhaseEnding,
	}
}

// MustSnake returns the live snake, panics when there is none
// A missing snake during a movement tick is a scheduling bug, not a game state
func (ctx *GameContext) MustSnake() *components.Snake {
	if ctx.Snake == nil {
		panic("engine: no snake in play")
	}
	return ctx.Snake
}

// SetLastTail records the pre-move tail of the current tick
func (ctx *GameContext) SetLastTail(p core.Position) {
	ctx.lastTail = p
	ctx.hasLastTail = true
}

// LastTail returns the tail recorded by the last movement step
// Panics if no movement step ran in this episode
func (ctx *GameContext) LastTail() core.Position {
	if !ctx.hasLastTail {
		panic("engine: growth before any movement step")
	}
	return ctx.lastTail
}

// ClearLastTail forgets the recorded tail, used when the board is cleared
func (ctx *GameContext) ClearLastTail() {
	ctx.lastTail = core.Position{}
	ctx.hasLastTail = false
}

// HaltTick stops the remaining systems of the current fixed step
func (ctx *GameContext) HaltTick() {
	ctx.halted = true
}

// TickHalted reports whether the current fixed step was halted
func (ctx *GameContext) TickHalted() bool {
	return ctx.halted
}

func (ctx *GameContext) beginTick() {
	ctx.halted = false
}
