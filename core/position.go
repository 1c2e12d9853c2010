package core

import "fmt"

// Position is an arena cell coordinate, +y is up
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ContainsPosition reports whether p is in positions
func ContainsPosition(positions []Position, p Position) bool {
	for _, q := range positions {
		if q == p {
			return true
		}
	}
	return false
}
