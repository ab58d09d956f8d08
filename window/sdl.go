package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ushitora-anqou/sdlbringup/config"
	"github.com/ushitora-anqou/sdlbringup/loop"
	"github.com/ushitora-anqou/sdlbringup/modes"
	"github.com/veandco/go-sdl2/sdl"
)

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_JOYSTICK)
}

func SDLQuit() {
	sdl.Quit()
}

// BasePath is the directory holding the executable.
func BasePath() string {
	return sdl.GetBasePath()
}

type SDLWindow struct {
	window    *sdl.Window
	renderer  *sdl.Renderer
	joysticks []*sdl.Joystick
	display   int
	vsync     bool
}

func NewSDLWindow(conf *config.Config) (*SDLWindow, error) {
	window, err := sdl.CreateWindow(
		conf.Window.Title,
		0,
		0,
		int32(conf.Window.Width),
		int32(conf.Window.Height),
		0,
	)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateWindow: %w", err)
	}

	renderer, vsync, err := createRenderer(window)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("SDL_CreateRenderer: %w", err)
	}

	return &SDLWindow{
		window:   window,
		renderer: renderer,
		display:  conf.Display.Index,
		vsync:    vsync,
	}, nil
}

// createRenderer asks for a vsynced accelerated renderer and falls back to
// an unsynced one. The bool reports whether presenting waits for vblank.
func createRenderer(window *sdl.Window) (*sdl.Renderer, bool, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
		if err != nil {
			return nil, false, err
		}
		return renderer, false, nil
	}

	// Some drivers accept the flag without honouring it.
	info, err := renderer.GetInfo()
	if err != nil {
		return renderer, false, nil
	}
	return renderer, info.Flags&sdl.RENDERER_PRESENTVSYNC != 0, nil
}

// VSync reports whether Present is paced by the display.
func (wind *SDLWindow) VSync() bool {
	return wind.vsync
}

// Destroy releases the joysticks, the renderer and the window, in that order.
func (wind *SDLWindow) Destroy() {
	for _, js := range wind.joysticks {
		js.Close()
	}
	wind.joysticks = nil
	wind.renderer.Destroy()
	wind.window.Destroy()
}

func (wind *SDLWindow) OpenJoystick(index int) error {
	js := sdl.JoystickOpen(index)
	if js == nil {
		return fmt.Errorf("SDL_JoystickOpen(%d): %w", index, sdl.GetError())
	}
	wind.joysticks = append(wind.joysticks, js)
	return nil
}

func (wind *SDLWindow) PollEvents() []loop.Event {
	var events []loop.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.JoyAxisEvent:
			events = append(events, loop.AxisMotion{
				Device: int(ev.Which),
				Axis:   int(ev.Axis),
				Value:  int(ev.Value),
			})
		case *sdl.JoyButtonEvent:
			if ev.Type == sdl.JOYBUTTONDOWN {
				events = append(events, loop.ButtonDown{
					Device: int(ev.Which),
					Button: int(ev.Button),
				})
			}
		}
	}
	return events
}

func (wind *SDLWindow) SetDrawColor(c color.RGBA) {
	wind.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (wind *SDLWindow) FillRect(r image.Rectangle) {
	wind.renderer.FillRect(&sdl.Rect{
		X: int32(r.Min.X),
		Y: int32(r.Min.Y),
		W: int32(r.Dx()),
		H: int32(r.Dy()),
	})
}

func (wind *SDLWindow) Clear() {
	wind.renderer.Clear()
}

func (wind *SDLWindow) Present() {
	wind.renderer.Present()
}

func (wind *SDLWindow) Size() (int, int) {
	w, h := wind.window.GetSize()
	return int(w), int(h)
}

func (wind *SDLWindow) SetSize(w, h int) {
	wind.window.SetSize(int32(w), int32(h))
}

func (wind *SDLWindow) SetDisplayMode(m modes.Mode) error {
	mode := sdl.DisplayMode{
		Format:      m.Format,
		W:           int32(m.W),
		H:           int32(m.H),
		RefreshRate: int32(m.RefreshRate),
	}
	if err := wind.window.SetDisplayMode(&mode); err != nil {
		return fmt.Errorf("SDL_SetWindowDisplayMode(%v): %w", m, err)
	}
	return nil
}

func (wind *SDLWindow) NumDisplayModes(display int) (int, error) {
	return sdl.GetNumDisplayModes(display)
}

func (wind *SDLWindow) DisplayMode(display, index int) (modes.Mode, error) {
	mode, err := sdl.GetDisplayMode(display, index)
	if err != nil {
		return modes.Mode{}, err
	}
	return toMode(mode), nil
}

func (wind *SDLWindow) Describe() (loop.Info, error) {
	var info loop.Info
	info.WindowW, info.WindowH = wind.Size()

	w, h, err := wind.renderer.GetOutputSize()
	if err != nil {
		return info, fmt.Errorf("SDL_GetRendererOutputSize: %w", err)
	}
	info.RendererW, info.RendererH = int(w), int(h)

	mode, err := sdl.GetCurrentDisplayMode(wind.display)
	if err != nil {
		return info, fmt.Errorf("SDL_GetCurrentDisplayMode: %w", err)
	}
	info.Mode = toMode(mode)
	return info, nil
}

func toMode(mode sdl.DisplayMode) modes.Mode {
	return modes.Mode{
		W:            int(mode.W),
		H:            int(mode.H),
		Format:       mode.Format,
		RefreshRate:  int(mode.RefreshRate),
		BitsPerPixel: int(sdl.BITSPERPIXEL(mode.Format)),
		FormatName:   sdl.GetPixelFormatName(uint(mode.Format)),
	}
}
