package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/core"
)

// Key identifies a physical key relevant to the game
type Key uint8

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyQuit // Ctrl-C or 'q'
)

// KeyState is the transition edge of a key event
type KeyState uint8

const (
	Pressed KeyState = iota
	Released
)

// KeyEvent is one discrete key transition
type KeyEvent struct {
	Key   Key
	State KeyState
}

// Direction maps an arrow press to a heading
// Releases and non-arrow keys report ok=false
func (ev KeyEvent) Direction() (core.Direction, bool) {
	if ev.State != Pressed {
		return 0, false
	}
	switch ev.Key {
	case KeyUp:
		return core.DirUp, true
	case KeyDown:
		return core.DirDown, true
	case KeyLeft:
		return core.DirLeft, true
	case KeyRight:
		return core.DirRight, true
	}
	return 0, false
}

// IsQuit reports whether the event asks the front end to exit
func (ev KeyEvent) IsQuit() bool {
	return ev.State == Pressed && (ev.Key == KeyEscape || ev.Key == KeyQuit)
}

// FromTcell translates a tcell key event
// tcell only reports presses, so every translated event is a press edge
func FromTcell(ev *tcell.EventKey) KeyEvent {
	return translate(ev.Key(), ev.Rune())
}

func translate(k tcell.Key, r rune) KeyEvent {
	out := KeyEvent{Key: KeyOther, State: Pressed}
	switch k {
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyCtrlC:
		out.Key = KeyQuit
	case tcell.KeyRune:
		if r == 'q' {
			out.Key = KeyQuit
		}
	}
	return out
}

var keyNames = [...]string{
	KeyOther:  "other",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyEscape: "escape",
	KeyQuit:   "quit",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "invalid"
}
