package systems

import (
	"log"
	"sync/atomic"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/status"
)

// FoodSpawner draws food cells by rejection sampling
// Only snake cells are rejected, food may land on existing food
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner with a deterministic seed
func NewFoodSpawner(seed uint64) *FoodSpawner {
	return &FoodSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn returns a uniformly random cell not in occupied
// ok is false only when occupied covers the whole arena
func (fs *FoodSpawner) Spawn(arena core.Arena, occupied []core.Position) (core.Position, bool) {
	if len(occupied) >= arena.CellCount() && coveredCells(arena, occupied) >= arena.CellCount() {
		return core.Position{}, false
	}

	for {
		p := core.Position{
			X: fs.rng.Intn(arena.Width),
			Y: fs.rng.Intn(arena.Height),
		}
		if !core.ContainsPosition(occupied, p) {
			return p, true
		}
	}
}

func coveredCells(arena core.Arena, occupied []core.Position) int {
	seen := make(map[core.Position]struct{}, len(occupied))
	for _, p := range occupied {
		if arena.Contains(p) {
			seen[p] = struct{}{}
		}
	}
	return len(seen)
}

// FoodSpawnSystem adds one food item per food step, without any cap
// Uneaten food accumulates over a long episode
type FoodSpawnSystem struct {
	spawner *FoodSpawner

	statSpawned *atomic.Int64
	statActive  *atomic.Int64
}

// NewFoodSpawnSystem creates the food step
func NewFoodSpawnSystem(spawner *FoodSpawner, reg *status.Registry) *FoodSpawnSystem {
	return &FoodSpawnSystem{
		spawner:     spawner,
		statSpawned: reg.Ints.Get(status.KeyFoodSpawned),
		statActive:  reg.Ints.Get(status.KeyFoodActive),
	}
}

// Update places one food item off the snake
func (s *FoodSpawnSystem) Update(ctx *engine.GameContext) {
	var occupied []core.Position
	if ctx.Snake != nil {
		occupied = ctx.Snake.Segments()
	}

	p, ok := s.spawner.Spawn(ctx.Arena, occupied)
	if !ok {
		log.Printf("[food] arena full, spawn skipped length=%d", len(occupied))
		return
	}

	ctx.Food.Add(p)
	s.statSpawned.Add(1)
	s.statActive.Store(int64(ctx.Food.Len()))
	ctx.Events.Push(engine.GameEvent{Type: engine.EventFoodSpawned, Position: p})
}
