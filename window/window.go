package window

import (
	"github.com/ushitora-anqou/sdlbringup/audio"
	"github.com/ushitora-anqou/sdlbringup/loop"
	"github.com/ushitora-anqou/sdlbringup/modes"
)

var (
	_ loop.Window      = (*SDLWindow)(nil)
	_ loop.EventSource = (*SDLWindow)(nil)
	_ modes.Source     = (*SDLWindow)(nil)
	_ audio.Output     = (*SDLAudioOutput)(nil)
	_ loop.Clock       = SDLClock{}
)
