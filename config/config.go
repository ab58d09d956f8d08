package config

import (
	"fmt"
	"time"

	"github.com/kkyr/fig"
)

type Size struct {
	Width  int
	Height int
}

type Config struct {
	Window struct {
		Title     string `default:"sdl2_gles2"`
		Width     int    `default:"1920"`
		Height    int    `default:"1080"`
		AltWidth  int    `default:"1280"`
		AltHeight int    `default:"720"`
	}
	Display struct {
		Index int
	}
	Joystick struct {
		Count int `default:"1"`
	}
	Audio struct {
		Asset        string        `default:"test.wav"`
		PollInterval time.Duration `default:"100ms"`
	}
}

// Load fills the built-in defaults. No file or environment is consulted.
func Load() (*Config, error) {
	var conf Config
	if err := fig.Load(&conf, fig.IgnoreFile()); err != nil {
		return nil, fmt.Errorf("Failed to load config: %w", err)
	}
	if conf.Window.Width <= 0 || conf.Window.Height <= 0 || conf.Window.AltWidth <= 0 || conf.Window.AltHeight <= 0 {
		return nil, fmt.Errorf("Invalid window presets: %dx%d, %dx%d",
			conf.Window.Width, conf.Window.Height, conf.Window.AltWidth, conf.Window.AltHeight)
	}
	return &conf, nil
}

func (c *Config) Primary() Size {
	return Size{c.Window.Width, c.Window.Height}
}

func (c *Config) Alternate() Size {
	return Size{c.Window.AltWidth, c.Window.AltHeight}
}
