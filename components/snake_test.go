package components

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/snake/core"
)

func arena15() core.Arena {
	return core.NewArena(15, 15)
}

// TestAdvanceStartingSnake covers the canonical spawn moving one step with no new input
func TestAdvanceStartingSnake(t *testing.T) {
	s := NewSnake(arena15(), core.DirLeft, core.Position{X: 3, Y: 3}, core.Position{X: 3, Y: 2})

	out := s.Advance(s.Direction())

	if out.Result != MoveMoved {
		t.Fatalf("Expected MoveMoved, got %v", out.Result)
	}
	want := []core.Position{{X: 2, Y: 3}, {X: 3, Y: 3}}
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected segments %v, got %v", want, got)
	}
	if out.LastTail != (core.Position{X: 3, Y: 2}) {
		t.Errorf("Expected last tail (3,2), got %v", out.LastTail)
	}
}

func TestAdvanceWrapsAtLeftEdge(t *testing.T) {
	s := NewSnake(arena15(), core.DirLeft, core.Position{X: 0, Y: 3}, core.Position{X: 1, Y: 3})

	out := s.Advance(core.DirLeft)

	if out.Result != MoveMoved {
		t.Fatalf("Expected MoveMoved, got %v", out.Result)
	}
	if s.Head() != (core.Position{X: 14, Y: 3}) {
		t.Errorf("Expected head (14,3), got %v", s.Head())
	}
}

func TestAdvanceRejectsReversal(t *testing.T) {
	s := NewSnake(arena15(), core.DirRight, core.Position{X: 5, Y: 5}, core.Position{X: 4, Y: 5}, core.Position{X: 3, Y: 5})

	out := s.Advance(core.DirLeft)

	if out.Result != MoveMoved {
		t.Fatalf("Expected reversal to be ignored, got %v", out.Result)
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Expected direction right, got %v", s.Direction())
	}
	if s.Head() != (core.Position{X: 6, Y: 5}) {
		t.Errorf("Expected head (6,5), got %v", s.Head())
	}
}

func TestAdvanceRejectsReversalForSingleSegment(t *testing.T) {
	s := NewSnake(arena15(), core.DirUp, core.Position{X: 5, Y: 5})

	s.Advance(core.DirDown)

	if s.Direction() != core.DirUp {
		t.Errorf("Expected direction up, got %v", s.Direction())
	}
	if s.Head() != (core.Position{X: 5, Y: 6}) {
		t.Errorf("Expected head (5,6), got %v", s.Head())
	}
}

func TestAdvanceAcceptsTurn(t *testing.T) {
	s := NewSnake(arena15(), core.DirLeft, core.Position{X: 3, Y: 3}, core.Position{X: 3, Y: 2})

	s.Advance(core.DirUp)

	if s.Direction() != core.DirUp {
		t.Errorf("Expected direction up, got %v", s.Direction())
	}
	if s.Head() != (core.Position{X: 3, Y: 4}) {
		t.Errorf("Expected head (3,4), got %v", s.Head())
	}
}

func TestAdvanceShiftsChain(t *testing.T) {
	initial := []core.Position{{X: 7, Y: 7}, {X: 7, Y: 6}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 5}}
	s := NewSnake(arena15(), core.DirUp, initial...)

	out := s.Advance(core.DirUp)

	if out.Result != MoveMoved {
		t.Fatalf("Expected MoveMoved, got %v", out.Result)
	}
	got := s.Segments()
	if len(got) != len(initial) {
		t.Fatalf("Expected length %d, got %d", len(initial), len(got))
	}
	if got[0] != (core.Position{X: 7, Y: 8}) {
		t.Errorf("Expected head (7,8), got %v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i] != initial[i-1] {
			t.Errorf("Segment %d: expected %v, got %v", i, initial[i-1], got[i])
		}
	}
	if out.LastTail != initial[len(initial)-1] {
		t.Errorf("Expected last tail %v, got %v", initial[len(initial)-1], out.LastTail)
	}
}

func TestAdvanceSelfCollisionLeavesChainUntouched(t *testing.T) {
	initial := []core.Position{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}
	// Facing Left so that Up is a legal turn straight into the neck
	s := NewSnake(arena15(), core.DirLeft, initial...)
	out := s.Advance(core.DirUp)

	if out.Result != MoveGameOver {
		t.Fatalf("Expected MoveGameOver, got %v", out.Result)
	}
	if out.Head != (core.Position{X: 5, Y: 6}) {
		t.Errorf("Expected colliding head (5,6), got %v", out.Head)
	}
	if got := s.Segments(); !reflect.DeepEqual(got, initial) {
		t.Errorf("Expected segments unchanged %v, got %v", initial, got)
	}
}

func TestAdvanceIntoPreMoveTailCollides(t *testing.T) {
	// A 2x2 loop: the head steps onto the cell the tail is about to vacate
	initial := []core.Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	s := NewSnake(arena15(), core.DirLeft, initial...)

	out := s.Advance(core.DirUp)

	if out.Result != MoveGameOver {
		t.Errorf("Expected MoveGameOver when entering the pre-move tail, got %v", out.Result)
	}
}

func TestGrowAppendsRecordedTail(t *testing.T) {
	s := NewSnake(arena15(), core.DirLeft, core.Position{X: 3, Y: 3}, core.Position{X: 3, Y: 2})

	out := s.Advance(core.DirLeft)
	s.Grow(out.LastTail)

	want := []core.Position{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}}
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected segments %v, got %v", want, got)
	}
	if s.Tail() != (core.Position{X: 3, Y: 2}) {
		t.Errorf("Expected tail to be the pre-move tail (3,2), got %v", s.Tail())
	}
}

func TestSegmentsReturnsCopy(t *testing.T) {
	s := NewSnake(arena15(), core.DirLeft, core.Position{X: 3, Y: 3}, core.Position{X: 3, Y: 2})
	segs := s.Segments()
	segs[0] = core.Position{X: 9, Y: 9}
	if s.Head() != (core.Position{X: 3, Y: 3}) {
		t.Error("Segments() leaked internal storage")
	}
}

func TestNewSnakeInvariants(t *testing.T) {
	tests := []struct {
		name     string
		segments []core.Position
	}{
		{"empty", nil},
		{"duplicate", []core.Position{{X: 1, Y: 1}, {X: 1, Y: 1}}},
		{"outside", []core.Position{{X: 15, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			NewSnake(arena15(), core.DirUp, tt.segments...)
		})
	}
}
