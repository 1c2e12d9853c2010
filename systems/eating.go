package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/status"
)

// EatingSystem consumes food under the head and raises growth signals
// Runs after movement, before growth
type EatingSystem struct {
	statEaten *atomic.Int64
	statFood  *atomic.Int64
}

// NewEatingSystem creates an eating system
func NewEatingSystem(reg *status.Registry) *EatingSystem {
	return &EatingSystem{
		statEaten: reg.Ints.Get(status.KeyEaten),
		statFood:  reg.Ints.Get(status.KeyFoodActive),
	}
}

// Update removes every food item on the head cell
// Each removed item counts once and raises one growth signal
func (s *EatingSystem) Update(ctx *engine.GameContext) {
	head := ctx.MustSnake().Head()

	n := ctx.Food.EatAt(head)
	for i := 0; i < n; i++ {
		s.statEaten.Add(1)
		ctx.Events.Push(engine.GameEvent{Type: engine.EventGrowth, Position: head})
		ctx.Events.Push(engine.GameEvent{Type: engine.EventFoodEaten, Position: head})
	}
	if n > 0 {
		s.statFood.Store(int64(ctx.Food.Len()))
	}
}
