package gfx

import (
	"image"
	"image/color"

	"github.com/ushitora-anqou/sdlbringup/constant"
)

type Canvas interface {
	SetDrawColor(c color.RGBA)
	FillRect(r image.Rectangle)
	Clear()
	Present()
}

// DrawTriple draws red, green and blue squares side by side from (x, y).
func DrawTriple(c Canvas, x, y int) {
	for i, col := range []color.RGBA{constant.COLOR_RED, constant.COLOR_GREEN, constant.COLOR_BLUE} {
		c.SetDrawColor(col)
		off := x + i*constant.RECT_SIZE
		c.FillRect(image.Rect(off, y, off+constant.RECT_SIZE, y+constant.RECT_SIZE))
	}
}
