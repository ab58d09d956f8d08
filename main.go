package main

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/ushitora-anqou/sdlbringup/audio"
	"github.com/ushitora-anqou/sdlbringup/config"
	"github.com/ushitora-anqou/sdlbringup/constant"
	"github.com/ushitora-anqou/sdlbringup/loop"
	"github.com/ushitora-anqou/sdlbringup/modes"
	"github.com/ushitora-anqou/sdlbringup/util"
	"github.com/ushitora-anqou/sdlbringup/window"
)

func init() {
	// SDL video and event calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func run() int {
	conf, err := config.Load()
	if err != nil {
		log := util.NewLogger(os.Stderr)
		log.Error().Err(err).Msg("config")
		return -1
	}
	log := util.NewLogger(os.Stderr)
	log.Info().Msg("Hello, world")

	if err := window.SDLInitialize(); err != nil {
		log.Error().Err(err).Msg("SDL_Init")
		return -1
	}
	defer window.SDLQuit()

	wind, err := window.NewSDLWindow(conf)
	if err != nil {
		log.Error().Err(err).Msg("couldn't create the window")
		return -1
	}
	defer wind.Destroy()

	table := modes.NewTable()
	player := audio.NewPlayer(window.NewSDLAudioOutput(), conf.Audio.PollInterval, log)
	app := loop.New(conf, log, wind, table, player, window.BasePath())
	app.PrintInfo()

	skip := func(i int, err error) {
		log.Error().Err(err).Int("index", i).Msg("couldn't read display mode")
	}
	if err := table.Populate(wind, conf.Display.Index, skip); err != nil {
		log.Error().Err(err).Msg("couldn't enumerate display modes")
		return -1
	}
	logModes(log, table)

	for i := 0; i < conf.Joystick.Count; i++ {
		if err := wind.OpenJoystick(i); err != nil {
			log.Error().Err(err).Msg("couldn't open joystick")
		}
	}

	if !wind.VSync() {
		log.Info().Int("fps", constant.TARGET_FPS).Msg("vsync unavailable, pacing frames on a timer")
		app.SetPacer(loop.NewTimeSynchronizer(window.SDLClock{}, constant.TARGET_FPS))
	}

	app.Run(wind)
	app.Shutdown()
	return 0
}

func logModes(log zerolog.Logger, table *modes.Table) {
	for i, mode := range table.Modes() {
		log.Info().Int("index", i).Int("hz", mode.RefreshRate).Stringer("mode", mode).Msg("found display mode")
	}
	log.Info().Int("count", table.Len()).Msg("display modes")
}

func main() {
	os.Exit(run())
}
