package engine

import (
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
	"github.com/lixenwraith/snake/status"
)

// Cell is one drawable item of the projection
type Cell struct {
	Position core.Position
	// Size is the fraction of a grid cell the item covers
	Size float64
}

// Snapshot is the read-only projection consumed by the presentation layer
type Snapshot struct {
	Arena     core.Arena
	Segments  []Cell // head first
	Food      []Cell
	Phase     EpisodePhase
	Terminal  bool // true while the episode is over and the board is held
	Eaten     int64
	Episodes  int64
	EpisodeID string
}

// Snapshot builds a detached projection of the current state
func (ctx *GameContext) Snapshot() Snapshot {
	snap := Snapshot{
		Arena:     ctx.Arena,
		Phase:     ctx.Phase,
		Terminal:  ctx.Phase != PhaseRunning,
		EpisodeID: ctx.EpisodeID,
	}

	if ctx.Snake != nil {
		segs := ctx.Snake.Segments()
		snap.Segments = make([]Cell, len(segs))
		for i, p := range segs {
			size := parameter.SnakeSegmentSize
			if i == 0 {
				size = parameter.SnakeHeadSize
			}
			snap.Segments[i] = Cell{Position: p, Size: size}
		}
	}

	food := ctx.Food.Positions()
	snap.Food = make([]Cell, len(food))
	for i, p := range food {
		snap.Food[i] = Cell{Position: p, Size: parameter.FoodSize}
	}

	if ctx.Status != nil {
		snap.Eaten = ctx.Status.Ints.Get(status.KeyEaten).Load()
		snap.Episodes = ctx.Status.Ints.Get(status.KeyEpisodes).Load()
	}
	return snap
}
