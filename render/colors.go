package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snake/parameter"
)

var (
	RgbBackground  = hexColor(parameter.ColorBackground)
	RgbBorder      = hexColor(parameter.ColorBorder)
	RgbFood        = hexColor(parameter.ColorFood)
	RgbStatus      = hexColor(parameter.ColorStatus)
	RgbStatusEnded = hexColor(parameter.ColorStatusEnded)

	headColor = hexColorful(parameter.ColorSnakeHead)
	tailColor = hexColorful(parameter.ColorSnakeTail)
)

func hexColorful(hex uint32) colorful.Color {
	return colorful.Color{
		R: float64((hex>>16)&0xFF) / 255,
		G: float64((hex>>8)&0xFF) / 255,
		B: float64(hex&0xFF) / 255,
	}
}

func hexColor(hex uint32) tcell.Color {
	return tcell.NewHexColor(int32(hex))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// SegmentColor returns the body color of segment i in a snake of length n
// Head is brightest, tail dimmest, blended in Lab space
func SegmentColor(i, n int) tcell.Color {
	if n <= 1 {
		return toTcell(headColor)
	}
	t := float64(i) / float64(n-1)
	return toTcell(headColor.BlendLab(tailColor, t))
}
