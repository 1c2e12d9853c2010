package parameter

// Layout
const (
	// CellWidth is the number of terminal columns per arena cell (terminal cells are ~2:1)
	CellWidth = 2

	// BorderSize is the frame thickness around the arena
	BorderSize = 1

	// StatusLines is the number of lines reserved under the arena
	StatusLines = 1
)

// Palette (RGB hex)
const (
	ColorBackground  = 0x000000
	ColorBorder      = 0x5F5F87
	ColorSnakeHead   = 0xFFFFFF
	ColorSnakeTail   = 0x808080
	ColorFood        = 0xFF0000
	ColorStatus      = 0xAFAFAF
	ColorStatusEnded = 0xFF5F5F
)

// Status bar text
const (
	StatusTitle     = " snake "
	StatusEnding    = " GAME OVER "
	TooSmallMessage = "terminal too small"
)
