package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/status"
)

// GrowthSystem drains the growth signals of the current step
// Every signal appends one segment at the tail recorded by this step's movement
type GrowthSystem struct {
	statLength *atomic.Int64
}

// NewGrowthSystem creates a growth system
func NewGrowthSystem(reg *status.Registry) *GrowthSystem {
	return &GrowthSystem{
		statLength: reg.Ints.Get(status.KeyLength),
	}
}

// Update applies all pending growth signals
func (s *GrowthSystem) Update(ctx *engine.GameContext) {
	n := ctx.Events.Take(engine.EventGrowth)
	if n == 0 {
		return
	}

	snake := ctx.MustSnake()
	tail := ctx.LastTail()
	for i := 0; i < n; i++ {
		snake.Grow(tail)
	}
	s.statLength.Store(int64(snake.Len()))
}
