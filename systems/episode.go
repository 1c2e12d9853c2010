package systems

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/status"
)

// EpisodeController owns the Running -> Ending -> Restarting -> Running cycle
//
// Ending clears the board at once and holds it empty until the restart deadline
// The wait is a deadline checked every scheduler tick, the scheduler never blocks
type EpisodeController struct {
	restartDelay time.Duration
	spawn        SnakeFactory
	newID        func() string

	deadline time.Time

	statEpisodes  *atomic.Int64
	statEpisodeID *status.AtomicString
	statLength    *atomic.Int64
	statFood      *atomic.Int64
}

// NewEpisodeController creates a controller spawning snakes with spawn
func NewEpisodeController(restartDelay time.Duration, spawn SnakeFactory, reg *status.Registry) *EpisodeController {
	return &EpisodeController{
		restartDelay:  restartDelay,
		spawn:         spawn,
		newID:         uuid.NewString,
		statEpisodes:  reg.Ints.Get(status.KeyEpisodes),
		statEpisodeID: reg.Strings.Get(status.KeyEpisodeID),
		statLength:    reg.Ints.Get(status.KeyLength),
		statFood:      reg.Ints.Get(status.KeyFoodActive),
	}
}

// Start begins the first episode
func (ec *EpisodeController) Start(ctx *engine.GameContext) {
	ec.restart(ctx)
}

// EventTypes implements engine.Handler
func (ec *EpisodeController) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventGameOver}
}

// HandleEvent enters Ending on a terminal collision
func (ec *EpisodeController) HandleEvent(ctx *engine.GameContext, ev engine.GameEvent) {
	if ev.Type != engine.EventGameOver || ctx.Phase != engine.PhaseRunning {
		return
	}

	length := 0
	if ctx.Snake != nil {
		length = ctx.Snake.Len()
	}
	log.Printf("[episode] game over id=%s at=%v length=%d food=%d", ctx.EpisodeID, ev.Position, length, ctx.Food.Len())

	ctx.Phase = engine.PhaseEnding
	ctx.Food.Clear()
	ctx.Snake = nil
	ctx.ClearLastTail()
	ec.statLength.Store(0)
	ec.statFood.Store(0)
	ec.deadline = ctx.Now.Add(ec.restartDelay)
}

// Advance implements engine.EpisodeGate
func (ec *EpisodeController) Advance(ctx *engine.GameContext) {
	if ctx.Phase != engine.PhaseEnding || ctx.Now.Before(ec.deadline) {
		return
	}
	ctx.Phase = engine.PhaseRestarting
	ec.restart(ctx)
}

// Deadline returns the pending restart time, zero outside Ending
func (ec *EpisodeController) Deadline(ctx *engine.GameContext) time.Time {
	if ctx.Phase != engine.PhaseEnding {
		return time.Time{}
	}
	return ec.deadline
}

func (ec *EpisodeController) restart(ctx *engine.GameContext) {
	ctx.Snake = ec.spawn(ctx.Arena)
	ctx.ClearLastTail()
	ctx.EpisodeID = ec.newID()
	ctx.Phase = engine.PhaseRunning
	ec.deadline = time.Time{}

	ec.statEpisodes.Add(1)
	ec.statEpisodeID.Store(ctx.EpisodeID)
	ec.statLength.Store(int64(ctx.Snake.Len()))

	ctx.Events.Push(engine.GameEvent{Type: engine.EventEpisodeStarted, Position: ctx.Snake.Head()})
	log.Printf("[episode] start id=%s head=%v dir=%v", ctx.EpisodeID, ctx.Snake.Head(), ctx.Snake.Direction())
}
