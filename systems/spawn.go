package systems

import (
	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// SnakeFactory builds the snake of a new episode
type SnakeFactory func(arena core.Arena) *components.Snake

// NewStartingSnake builds the canonical two-segment snake facing Left
// Start cells are wrapped so small arenas still get a valid layout
func NewStartingSnake(arena core.Arena) *components.Snake {
	head := arena.Wrap(core.Position{X: parameter.SnakeStartHeadX, Y: parameter.SnakeStartHeadY})
	body := arena.Wrap(core.Position{X: parameter.SnakeStartBodyX, Y: parameter.SnakeStartBodyY})
	if head == body {
		return components.NewSnake(arena, core.DirLeft, head)
	}
	return components.NewSnake(arena, core.DirLeft, head, body)
}
