package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/parameter"
)

const (
	glyphHead   = '█'
	glyphBody   = '▓'
	glyphFood   = '●'
	glyphBorder = '░'
)

// Frame is the screen placement of the arena
type Frame struct {
	X, Y          int // top-left of the border
	Width, Height int // outer size, border and status line included
}

// Layout centers the arena on a screen of the given size
// Returns ok=false when the screen cannot hold it
func Layout(arena core.Arena, screenW, screenH int) (Frame, bool) {
	w := arena.Width*parameter.CellWidth + 2*parameter.BorderSize
	h := arena.Height + 2*parameter.BorderSize + parameter.StatusLines
	if w > screenW || h > screenH {
		return Frame{}, false
	}
	return Frame{
		X:      (screenW - w) / 2,
		Y:      (screenH - h) / 2,
		Width:  w,
		Height: h,
	}, true
}

// Renderer draws snapshots onto a terminal surface
type Renderer struct {
	surface    Surface
	monochrome bool
}

// NewRenderer creates a renderer; monochrome drops all RGB styling
func NewRenderer(surface Surface, monochrome bool) *Renderer {
	return &Renderer{surface: surface, monochrome: monochrome}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.surface.Clear()
	sw, sh := r.surface.Size()

	frame, ok := Layout(snap.Arena, sw, sh)
	if !ok {
		r.drawTooSmall(sw, sh)
		r.surface.Show()
		return
	}

	r.drawBorder(frame)

	for _, f := range snap.Food {
		r.drawCell(frame, snap.Arena, f.Position, glyphFor(f.Size), r.style(RgbFood))
	}

	// Tail first so the head wins when growth stacks segments
	n := len(snap.Segments)
	for i := n - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		r.drawCell(frame, snap.Arena, seg.Position, glyphFor(seg.Size), r.style(SegmentColor(i, n)))
	}

	r.drawStatus(frame, snap)
	r.surface.Show()
}

// CellOrigin maps an arena position to the screen column and row of its left half
// Arena +y is up, screen rows grow downward
func CellOrigin(frame Frame, arena core.Arena, p core.Position) (int, int) {
	col := frame.X + parameter.BorderSize + p.X*parameter.CellWidth
	row := frame.Y + parameter.BorderSize + (arena.Height - 1 - p.Y)
	return col, row
}

func glyphFor(size float64) rune {
	switch {
	case size >= parameter.SnakeHeadSize:
		return glyphHead
	case size >= parameter.SnakeSegmentSize:
		return glyphBody
	default:
		return glyphFood
	}
}

func (r *Renderer) style(fg tcell.Color) tcell.Style {
	if r.monochrome {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg).Background(RgbBackground)
}

func (r *Renderer) drawCell(frame Frame, arena core.Arena, p core.Position, glyph rune, st tcell.Style) {
	col, row := CellOrigin(frame, arena, p)
	second := glyph
	if glyph == glyphFood {
		second = ' '
	}
	r.surface.SetContent(col, row, glyph, nil, st)
	for c := 1; c < parameter.CellWidth; c++ {
		r.surface.SetContent(col+c, row, second, nil, st)
	}
}

func (r *Renderer) drawBorder(frame Frame) {
	st := r.style(RgbBorder)
	bottom := frame.Y + frame.Height - parameter.StatusLines - 1
	right := frame.X + frame.Width - 1
	for x := frame.X; x <= right; x++ {
		r.surface.SetContent(x, frame.Y, glyphBorder, nil, st)
		r.surface.SetContent(x, bottom, glyphBorder, nil, st)
	}
	for y := frame.Y + 1; y < bottom; y++ {
		r.surface.SetContent(frame.X, y, glyphBorder, nil, st)
		r.surface.SetContent(right, y, glyphBorder, nil, st)
	}
}

// StatusText formats the status line for a snapshot
func StatusText(snap engine.Snapshot) string {
	text := fmt.Sprintf("%slen %d  eaten %d  episode %d", parameter.StatusTitle, len(snap.Segments), snap.Eaten, snap.Episodes)
	if snap.Terminal {
		text += parameter.StatusEnding
	}
	return text
}

func (r *Renderer) drawStatus(frame Frame, snap engine.Snapshot) {
	fg := RgbStatus
	if snap.Terminal {
		fg = RgbStatusEnded
	}
	text := runewidth.Truncate(StatusText(snap), frame.Width, "…")
	r.putString(frame.X, frame.Y+frame.Height-1, text, r.style(fg))
}

func (r *Renderer) drawTooSmall(sw, sh int) {
	if sh <= 0 || sw <= 0 {
		return
	}
	text := runewidth.Truncate(parameter.TooSmallMessage, sw, "")
	x := (sw - runewidth.StringWidth(text)) / 2
	r.putString(x, sh/2, text, r.style(RgbStatusEnded))
}

// putString writes text advancing by display width
func (r *Renderer) putString(x, y int, text string, st tcell.Style) {
	for _, ch := range text {
		r.surface.SetContent(x, y, ch, nil, st)
		x += runewidth.RuneWidth(ch)
	}
}
