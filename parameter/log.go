package parameter

// Debug logging
const (
	LogDir      = "logs"
	LogFileName = "snake.log"

	// MaxLogSize triggers rotation of the existing log on startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
