package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
	defaultSamples = 4096
)

var ErrInvalidWav = errors.New("Not a RIFF/WAVE file")

type Encoding int

const (
	EncodingPCM Encoding = iota
	EncodingFloat
)

func (e Encoding) String() string {
	if e == EncodingFloat {
		return "float"
	}
	return "pcm"
}

type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Encoding   Encoding
	Samples    int
}

func (f Format) Validate() error {
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return fmt.Errorf("Invalid format: %d hz, %d chan", f.SampleRate, f.Channels)
	}
	switch {
	case f.Encoding == EncodingPCM && (f.BitDepth == 8 || f.BitDepth == 16 || f.BitDepth == 32):
		return nil
	case f.Encoding == EncodingFloat && f.BitDepth == 32:
		return nil
	}
	return fmt.Errorf("Unsupported sample layout: %d bits %s", f.BitDepth, f.Encoding)
}

// Clip is a fully decoded waveform ready to be streamed to a device.
type Clip struct {
	Format Format
	Data   []byte
}

func Load(path string) (*Clip, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	dec := wav.NewDecoder(file)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWav
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("Failed to find PCM data: %w", err)
	}

	format := Format{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Samples:    defaultSamples,
	}
	switch dec.WavAudioFormat {
	case wavFormatPCM:
		format.Encoding = EncodingPCM
	case wavFormatFloat:
		format.Encoding = EncodingFloat
	default:
		return nil, fmt.Errorf("Unsupported WAVE format tag: 0x%x", dec.WavAudioFormat)
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	data := make([]byte, dec.PCMSize)
	if _, err := io.ReadFull(dec.PCMChunk, data); err != nil {
		return nil, fmt.Errorf("Failed to read PCM data: %w", err)
	}

	return &Clip{format, data}, nil
}
