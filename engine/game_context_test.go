package engine

import (
	"testing"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/status"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestGameContextInvariants(t *testing.T) {
	ctx := NewGameContext(core.NewArena(15, 15), status.NewRegistry())

	expectPanic(t, "MustSnake without snake", func() { ctx.MustSnake() })
	expectPanic(t, "LastTail before movement", func() { ctx.LastTail() })

	ctx.SetLastTail(core.Position{X: 3, Y: 2})
	if ctx.LastTail() != (core.Position{X: 3, Y: 2}) {
		t.Errorf("Expected (3,2), got %v", ctx.LastTail())
	}
	ctx.ClearLastTail()
	expectPanic(t, "LastTail after clear", func() { ctx.LastTail() })
}

func TestGameContextHaltResetsPerTick(t *testing.T) {
	ctx := NewGameContext(core.NewArena(15, 15), status.NewRegistry())
	ctx.HaltTick()
	if !ctx.TickHalted() {
		t.Fatal("Expected halted tick")
	}
	ctx.beginTick()
	if ctx.TickHalted() {
		t.Error("Expected halt cleared at tick start")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	ctx := NewGameContext(core.NewArena(15, 15), status.NewRegistry())
	ctx.Phase = PhaseRunning
	ctx.Snake = components.NewSnake(ctx.Arena, core.DirLeft, core.Position{X: 3, Y: 3}, core.Position{X: 3, Y: 2})
	ctx.Food.Add(core.Position{X: 1, Y: 1})

	snap := ctx.Snapshot()
	snap.Segments[0].Position = core.Position{X: 9, Y: 9}
	snap.Food[0].Position = core.Position{X: 9, Y: 9}

	if ctx.Snake.Head() != (core.Position{X: 3, Y: 3}) {
		t.Error("Snapshot shares segment storage with the snake")
	}
	if ctx.Food.Positions()[0] != (core.Position{X: 1, Y: 1}) {
		t.Error("Snapshot shares storage with the food set")
	}
}

func TestNewGameContextStartsOutsideEpisode(t *testing.T) {
	ctx := NewGameContext(core.NewArena(15, 15), status.NewRegistry())
	if ctx.Phase == PhaseRunning {
		t.Error("Expected no running episode before the controller starts one")
	}
	if ctx.Snapshot().Terminal != true {
		t.Error("Expected terminal snapshot without a snake")
	}
}
