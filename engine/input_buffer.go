package engine

import (
	"sync"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/input"
)

// InputBuffer holds the most recent directional press
// Reads do not consume, so a single press steers every following tick until replaced
// No reversal filtering here, the snake rejects illegal reversals itself
type InputBuffer struct {
	mu        sync.Mutex
	direction core.Direction
	set       bool
}

// NewInputBuffer returns an empty buffer
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{}
}

// Set overwrites the buffered direction unconditionally
func (b *InputBuffer) Set(d core.Direction) {
	b.mu.Lock()
	b.direction = d
	b.set = true
	b.mu.Unlock()
}

// Read returns the buffered direction, ok is false until the first press
func (b *InputBuffer) Read() (core.Direction, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.direction, b.set
}

// Apply feeds a key transition, only arrow press edges reach the buffer
// Returns true when the buffer was written
func (b *InputBuffer) Apply(ev input.KeyEvent) bool {
	d, ok := ev.Direction()
	if !ok {
		return false
	}
	b.Set(d)
	return true
}
