package systems

import (
	"github.com/lixenwraith/snake/engine"
)

// Install wires the fixed-step pipeline into the scheduler
// Movement step order is movement, eating, growth; food runs on its own clock
func Install(cs *engine.ClockScheduler, ctx *engine.GameContext, spawner *FoodSpawner, controller *EpisodeController) {
	cs.SetMovementSystems(
		NewMovementSystem(ctx.Status),
		NewEatingSystem(ctx.Status),
		NewGrowthSystem(ctx.Status),
	)
	cs.SetFoodSystems(NewFoodSpawnSystem(spawner, ctx.Status))
	cs.RegisterEventHandler(controller)
}
