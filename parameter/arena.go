package parameter

// Arena dimensions in cells
const (
	ArenaWidth  = 15
	ArenaHeight = 15
)
