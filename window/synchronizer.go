package window

import "github.com/veandco/go-sdl2/sdl"

// SDLClock feeds loop.TimeSynchronizer from SDL's millisecond ticks.
type SDLClock struct{}

func (SDLClock) Ticks() int64 {
	return int64(sdl.GetTicks()) * 1000
}

func (SDLClock) Delay(us int64) {
	sdl.Delay(uint32(us / 1000))
}
