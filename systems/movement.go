package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/status"
)

// MovementSystem samples the input buffer and advances the snake one cell
// First stage of a movement step
type MovementSystem struct {
	statLength *atomic.Int64
}

// NewMovementSystem creates a movement system
func NewMovementSystem(reg *status.Registry) *MovementSystem {
	return &MovementSystem{
		statLength: reg.Ints.Get(status.KeyLength),
	}
}

// Update runs the movement step
// An empty buffer keeps the current heading
func (s *MovementSystem) Update(ctx *engine.GameContext) {
	snake := ctx.MustSnake()

	dir, ok := ctx.Input.Read()
	if !ok {
		dir = snake.Direction()
	}

	out := snake.Advance(dir)
	ctx.SetLastTail(out.LastTail)

	if out.Result == components.MoveGameOver {
		ctx.Events.Push(engine.GameEvent{Type: engine.EventGameOver, Position: out.Head})
		ctx.HaltTick()
		return
	}

	s.statLength.Store(int64(snake.Len()))
}
