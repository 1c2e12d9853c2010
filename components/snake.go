package components

import (
	"github.com/lixenwraith/snake/core"
)

// MoveResult classifies one movement step
type MoveResult uint8

const (
	// MoveMoved means the chain shifted and the head took the new cell
	MoveMoved MoveResult = iota
	// MoveGameOver means the new head hit the pre-move body, nothing mutated
	MoveGameOver
)

func (r MoveResult) String() string {
	if r == MoveGameOver {
		return "game_over"
	}
	return "moved"
}

// MoveOutcome reports a single Advance
type MoveOutcome struct {
	Result MoveResult
	// Head is the computed head cell; on MoveGameOver it is the colliding cell
	Head core.Position
	// LastTail is the tail cell before this step, consumed by growth
	LastTail core.Position
}

// Snake is an ordered chain of cells, index 0 is the head
// Not safe for concurrent use, owned by the simulation goroutine
type Snake struct {
	arena     core.Arena
	segments  []core.Position
	direction core.Direction
}

// NewSnake builds a chain from head to tail facing dir
// Panics when segments is empty, repeats a cell, or leaves the arena
func NewSnake(arena core.Arena, dir core.Direction, segments ...core.Position) *Snake {
	if len(segments) == 0 {
		panic("components: snake needs at least one segment")
	}
	for i, p := range segments {
		if !arena.Contains(p) {
			panic("components: snake segment outside arena")
		}
		if core.ContainsPosition(segments[:i], p) {
			panic("components: snake segments must be distinct")
		}
	}

	s := &Snake{
		arena:     arena,
		segments:  make([]core.Position, len(segments), len(segments)+8),
		direction: dir,
	}
	copy(s.segments, segments)
	return s
}

// Advance runs one movement step with the buffered heading
//  1. A heading opposite to the current one is ignored
//  2. The head steps one cell with wraparound
//  3. The pre-move tail is recorded
//  4. A head landing on any pre-move cell, tail included, ends the episode
//  5. Otherwise every segment takes the pre-move cell of the one ahead of it
func (s *Snake) Advance(buffered core.Direction) MoveOutcome {
	if buffered != s.direction.Opposite() {
		s.direction = buffered
	}

	newHead := s.arena.Step(s.segments[0], s.direction)
	outcome := MoveOutcome{
		Head:     newHead,
		LastTail: s.segments[len(s.segments)-1],
	}

	if core.ContainsPosition(s.segments, newHead) {
		outcome.Result = MoveGameOver
		return outcome
	}

	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = newHead
	outcome.Result = MoveMoved
	return outcome
}

// Grow appends one segment at p to the tail end
// p is expected to be the tail cell recorded before the current shift
func (s *Snake) Grow(p core.Position) {
	s.segments = append(s.segments, p)
}

// Head returns the head cell
func (s *Snake) Head() core.Position {
	return s.segments[0]
}

// Tail returns the last cell of the chain
func (s *Snake) Tail() core.Position {
	return s.segments[len(s.segments)-1]
}

// Direction returns the current heading
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.segments)
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p core.Position) bool {
	return core.ContainsPosition(s.segments, p)
}

// Segments returns a copy of the chain, head first
func (s *Snake) Segments() []core.Position {
	out := make([]core.Position, len(s.segments))
	copy(out, s.segments)
	return out
}
