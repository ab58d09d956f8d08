package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeWav(t *testing.T, dir string, frames, bitDepth, channels int) string {
	t.Helper()
	path := filepath.Join(dir, "test.wav")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer file.Close()

	enc := wav.NewEncoder(file, 8000, bitDepth, channels, wavFormatPCM)
	data := make([]int, frames*channels)
	for i := range data {
		data[i] = i % 100
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	table := []struct {
		frames, bitDepth, channels, size int
	}{
		{500, 16, 1, 1000},
		{250, 16, 2, 1000},
		{100, 8, 1, 100},
	}

	for _, entry := range table {
		path := writeWav(t, t.TempDir(), entry.frames, entry.bitDepth, entry.channels)
		clip, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(clip.Data) != entry.size {
			t.Fatalf("Load: (got: %v bytes) (expected: %v)", len(clip.Data), entry.size)
		}
		f := clip.Format
		if f.SampleRate != 8000 || f.Channels != entry.channels || f.BitDepth != entry.bitDepth || f.Encoding != EncodingPCM {
			t.Fatalf("Load: unexpected format %+v", f)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "test.wav"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load: (got: %v) (expected: %v)", err, os.ErrNotExist)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.wav")
	if err := os.WriteFile(path, []byte("this is not a riff file at all"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted a malformed file")
	}
}

func TestLoadUnsupported(t *testing.T) {
	path := writeWav(t, t.TempDir(), 100, 24, 1)
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted 24-bit samples")
	}
}

func TestFormatValidate(t *testing.T) {
	table := []struct {
		format Format
		ok     bool
	}{
		{Format{SampleRate: 44100, Channels: 2, BitDepth: 16}, true},
		{Format{SampleRate: 44100, Channels: 1, BitDepth: 8}, true},
		{Format{SampleRate: 48000, Channels: 2, BitDepth: 32, Encoding: EncodingFloat}, true},
		{Format{SampleRate: 48000, Channels: 2, BitDepth: 64, Encoding: EncodingFloat}, false},
		{Format{SampleRate: 0, Channels: 2, BitDepth: 16}, false},
		{Format{SampleRate: 44100, Channels: 0, BitDepth: 16}, false},
	}
	for _, entry := range table {
		err := entry.format.Validate()
		if (err == nil) != entry.ok {
			t.Fatalf("Validate(%+v): (got: %v) (expected ok: %v)", entry.format, err, entry.ok)
		}
	}
}
