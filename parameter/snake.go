package parameter

// Snake spawn layout, head first
// Body sits one cell below the head (+y is up), facing Left
const (
	SnakeStartHeadX = 3
	SnakeStartHeadY = 3
	SnakeStartBodyX = 3
	SnakeStartBodyY = 2
)

// Projection sizes as a fraction of one cell
const (
	SnakeHeadSize    = 0.8
	SnakeSegmentSize = 0.6
	FoodSize         = 0.4
)
