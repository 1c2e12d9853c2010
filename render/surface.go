package render

import "github.com/gdamore/tcell/v2"

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	Size() (int, int)
	Clear()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Show()
}

var _ Surface = tcell.Screen(nil)
