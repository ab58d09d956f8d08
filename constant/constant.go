package constant

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	BUTTON_CYCLE_MODE, BUTTON_EXIT   = 0x00, 0x01
	BUTTON_TOGGLE_SIZE, BUTTON_AUDIO = 0x02, 0x03
	JOYSTICK_INDEX                   = 0
	RECT_SIZE                        = 64
	TRIPLE_WIDTH                     = RECT_SIZE * 3
	TARGET_FPS                       = 60
)

var (
	COLOR_CLEAR      = colornames.Black
	COLOR_BACKGROUND = color.RGBA{0x6f, 0x6f, 0x6f, 0xff}
	COLOR_RED        = colornames.Red
	COLOR_GREEN      = colornames.Lime
	COLOR_BLUE       = colornames.Blue
)
