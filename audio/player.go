package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

var ErrBusy = errors.New("Playback already in progress")

// Output is an audio device pulling samples from a Cursor on its own thread.
type Output interface {
	Open(want Format, src *Cursor) (Format, error)
	Start()
	Close()
}

type Player struct {
	out      Output
	log      zerolog.Logger
	interval time.Duration
	clip     *Clip
	cursor   *Cursor
	name     string
}

func NewPlayer(out Output, interval time.Duration, log zerolog.Logger) *Player {
	return &Player{
		out:      out,
		log:      log,
		interval: interval,
	}
}

// Play loads the clip at path and starts streaming it. It returns as soon
// as the device is running; use Update or Wait to observe completion.
func (p *Player) Play(path string) error {
	if p.cursor != nil {
		return ErrBusy
	}

	clip, err := Load(path)
	if err != nil {
		return fmt.Errorf("Failed to load %s: %w", path, err)
	}

	cursor := NewCursor(clip.Data)
	got, err := p.out.Open(clip.Format, cursor)
	if err != nil {
		return fmt.Errorf("Couldn't open audio: %w", err)
	}

	p.log.Info().
		Int("chan", clip.Format.Channels).
		Int("hz", clip.Format.SampleRate).
		Int("samples", clip.Format.Samples).
		Msg("wav_spec")
	p.log.Info().
		Int("chan", got.Channels).
		Int("hz", got.SampleRate).
		Int("samples", got.Samples).
		Msg("got_spec")

	p.clip = clip
	p.cursor = cursor
	p.name = path
	p.log.Info().Str("path", path).Msg("playing")
	p.out.Start()
	return nil
}

func (p *Player) Playing() bool {
	return p.cursor != nil
}

// Update releases the device once the clip is exhausted and reports whether
// playback is still in progress.
func (p *Player) Update() bool {
	if p.cursor == nil {
		return false
	}
	if !p.cursor.Done() {
		return true
	}
	p.finish()
	return false
}

// Wait blocks, polling at the configured interval, until playback ends.
// It returns at once when nothing is playing.
func (p *Player) Wait() {
	for p.Update() {
		time.Sleep(p.interval)
	}
}

func (p *Player) finish() {
	p.out.Close()
	p.log.Info().Str("path", p.name).Int("bytes", p.cursor.Position()).Msg("played")
	p.clip = nil
	p.cursor = nil
	p.name = ""
}
