package systems

import (
	"fmt"
	"testing"
	"time"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/parameter"
	"github.com/lixenwraith/snake/status"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// testSim bundles a fully wired simulation driven by a mock clock
type testSim struct {
	ctx        *engine.GameContext
	cs         *engine.ClockScheduler
	clock      *engine.MockTimeProvider
	controller *EpisodeController
}

func newTestSim(t *testing.T, seed uint64) *testSim {
	t.Helper()

	clock := engine.NewMockTimeProvider(epoch)
	reg := status.NewRegistry()
	ctx := engine.NewGameContext(core.NewArena(parameter.ArenaWidth, parameter.ArenaHeight), reg)
	ctx.Now = clock.Now()

	controller := NewEpisodeController(parameter.RestartDelay, NewStartingSnake, reg)
	ids := 0
	controller.newID = func() string {
		ids++
		return fmt.Sprintf("episode-%d", ids)
	}
	controller.Start(ctx)

	cs, err := engine.NewClockScheduler(ctx, clock, controller, engine.Intervals{
		Movement:   parameter.MovementInterval,
		Food:       parameter.FoodSpawnInterval,
		MaxCatchUp: parameter.MaxCatchUpSteps,
	})
	if err != nil {
		t.Fatalf("NewClockScheduler failed: %v", err)
	}
	Install(cs, ctx, NewFoodSpawner(seed), controller)

	return &testSim{ctx: ctx, cs: cs, clock: clock, controller: controller}
}

// moveTick advances exactly one movement interval
func (s *testSim) moveTick() {
	s.clock.Advance(parameter.MovementInterval)
	s.cs.Update()
}

// run advances d in 10ms scheduler ticks
func (s *testSim) run(d time.Duration) {
	const step = 10 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		s.clock.Advance(step)
		s.cs.Update()
	}
}

func (s *testSim) setSnake(dir core.Direction, segments ...core.Position) {
	s.ctx.Snake = components.NewSnake(s.ctx.Arena, dir, segments...)
}

func (s *testSim) eaten() int64 {
	return s.ctx.Status.Ints.Get(status.KeyEaten).Load()
}
