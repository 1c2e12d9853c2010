package core

// Arena is the fixed-size toroidal grid the simulation runs on
// Coordinates wrap independently on each axis
type Arena struct {
	Width, Height int
}

// NewArena panics on non-positive dimensions, a zero arena has no valid cell
func NewArena(width, height int) Arena {
	if width <= 0 || height <= 0 {
		panic("core: arena dimensions must be positive")
	}
	return Arena{Width: width, Height: height}
}

// Step moves p one cell in dir with wraparound
// Stepping below 0 yields dimension-1, stepping at or past the dimension yields 0
func (a Arena) Step(p Position, dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{
		X: wrap(p.X+dx, a.Width),
		Y: wrap(p.Y+dy, a.Height),
	}
}

// Wrap folds an arbitrary coordinate pair into the arena
func (a Arena) Wrap(p Position) Position {
	return Position{X: wrap(p.X, a.Width), Y: wrap(p.Y, a.Height)}
}

// Contains reports whether p lies inside the arena without wrapping
func (a Arena) Contains(p Position) bool {
	return p.X >= 0 && p.X < a.Width && p.Y >= 0 && p.Y < a.Height
}

// CellCount returns the total number of cells
func (a Arena) CellCount() int {
	return a.Width * a.Height
}

func wrap(v, dim int) int {
	v %= dim
	if v < 0 {
		v += dim
	}
	return v
}
