package loop

import (
	"image"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/ushitora-anqou/sdlbringup/audio"
	"github.com/ushitora-anqou/sdlbringup/config"
	"github.com/ushitora-anqou/sdlbringup/constant"
	"github.com/ushitora-anqou/sdlbringup/gfx"
	"github.com/ushitora-anqou/sdlbringup/joypad"
	"github.com/ushitora-anqou/sdlbringup/modes"
)

type State int

const (
	Running State = iota
	PlayingAudio
	Done
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case PlayingAudio:
		return "playing-audio"
	case Done:
		return "done"
	}
	return "unknown"
}

type Info struct {
	WindowW, WindowH     int
	RendererW, RendererH int
	Mode                 modes.Mode
}

type Window interface {
	gfx.Canvas
	Size() (int, int)
	SetSize(w, h int)
	SetDisplayMode(m modes.Mode) error
	Describe() (Info, error)
}

type Pacer interface {
	MaySleep()
}

type Loop struct {
	conf      *config.Config
	log       zerolog.Logger
	wind      Window
	modes     *modes.Table
	player    *audio.Player
	joypad    *joypad.Joypad
	pacer     Pacer
	assetPath string
	state     State
	offset    int
}

func New(conf *config.Config, log zerolog.Logger, wind Window, table *modes.Table, player *audio.Player, basePath string) *Loop {
	return &Loop{
		conf:      conf,
		log:       log,
		wind:      wind,
		modes:     table,
		player:    player,
		joypad:    joypad.NewJoypad(constant.JOYSTICK_INDEX),
		assetPath: filepath.Join(basePath, conf.Audio.Asset),
		state:     Running,
	}
}

// SetPacer installs a frame synchronizer run after every presented frame.
func (l *Loop) SetPacer(p Pacer) {
	l.pacer = p
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Offset() int {
	return l.offset
}

func (l *Loop) Run(src EventSource) {
	for l.Step(src.PollEvents()) {
	}
}

// Step dispatches one batch of events, renders one frame and reports
// whether the loop should keep going.
func (l *Loop) Step(events []Event) bool {
	for _, ev := range events {
		l.Handle(ev)
	}
	if l.state == PlayingAudio && !l.player.Update() {
		l.state = Running
	}
	l.Frame()
	if l.pacer != nil {
		l.pacer.MaySleep()
	}
	return l.state != Done
}

// Handle dispatches a single event. Events arriving after the exit button
// are ignored.
func (l *Loop) Handle(ev Event) {
	if l.state == Done {
		return
	}

	switch ev := ev.(type) {
	case AxisMotion:
		l.log.Info().Int("joystick", ev.Device).Int("axis", ev.Axis).Int("value", ev.Value).Msg("axis motion")

	case ButtonDown:
		l.log.Info().Int("joystick", ev.Device).Int("button", ev.Button).Msg("button down")
		action, ok := l.joypad.Lookup(ev.Device, ev.Button)
		if !ok {
			return
		}
		switch action {
		case joypad.ActionCycleMode:
			l.cycleMode()
			l.PrintInfo()
		case joypad.ActionToggleSize:
			l.toggleSize()
			l.PrintInfo()
		case joypad.ActionAudioTest:
			l.audioTest()
		case joypad.ActionExit:
			l.log.Info().Msg("exit requested")
			l.state = Done
		}
	}
}

func (l *Loop) Frame() {
	wind := l.wind
	w, h := wind.Size()

	wind.SetDrawColor(constant.COLOR_CLEAR)
	wind.Clear()

	wind.SetDrawColor(constant.COLOR_BACKGROUND)
	wind.FillRect(image.Rect(0, 0, w, h))

	gfx.DrawTriple(wind, l.offset, 0)
	gfx.DrawTriple(wind, l.offset, h-constant.RECT_SIZE)

	wind.Present()

	l.offset++
	if l.offset >= w-constant.TRIPLE_WIDTH {
		l.offset = 0
	}
}

// Shutdown waits for a clip still in flight to finish; playback can't be
// cancelled.
func (l *Loop) Shutdown() {
	l.player.Wait()
}

func (l *Loop) PrintInfo() {
	info, err := l.wind.Describe()
	if err != nil {
		l.log.Error().Err(err).Msg("couldn't query display info")
		return
	}
	l.log.Info().Int("w", info.WindowW).Int("h", info.WindowH).Msg("window size")
	l.log.Info().Int("w", info.RendererW).Int("h", info.RendererH).Msg("renderer size")
	l.log.Info().Stringer("mode", info.Mode).Msg("display mode")
}

func (l *Loop) cycleMode() {
	err := l.modes.Cycle(l.wind.SetDisplayMode)
	if err != nil {
		l.log.Error().Err(err).Msg("couldn't set display mode")
	}
}

func (l *Loop) toggleSize() {
	size := l.conf.Primary()
	if w, _ := l.wind.Size(); w == size.Width {
		size = l.conf.Alternate()
	}
	l.wind.SetSize(size.Width, size.Height)
}

func (l *Loop) audioTest() {
	if err := l.player.Play(l.assetPath); err != nil {
		l.log.Error().Err(err).Msg("audio test failed")
		return
	}
	l.state = PlayingAudio
}
