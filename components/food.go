package components

import (
	"github.com/lixenwraith/snake/core"
)

// Food is the multiset of active food cells
// Duplicates are allowed, the spawner only keeps food off the snake
type Food struct {
	items []core.Position
}

// NewFood creates an empty food set
func NewFood() *Food {
	return &Food{items: make([]core.Position, 0, 8)}
}

// Add places one food item at p
func (f *Food) Add(p core.Position) {
	f.items = append(f.items, p)
}

// EatAt removes every item on p and returns how many were removed
func (f *Food) EatAt(p core.Position) int {
	kept := f.items[:0]
	eaten := 0
	for _, q := range f.items {
		if q == p {
			eaten++
			continue
		}
		kept = append(kept, q)
	}
	f.items = kept
	return eaten
}

// Clear removes all food
func (f *Food) Clear() {
	f.items = f.items[:0]
}

// Len returns the number of active items
func (f *Food) Len() int {
	return len(f.items)
}

// Positions returns a copy of the active cells in spawn order
func (f *Food) Positions() []core.Position {
	out := make([]core.Position, len(f.items))
	copy(out, f.items)
	return out
}
