package window

// typedef unsigned char Uint8;
// void OnAudioPlayback(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/ushitora-anqou/sdlbringup/audio"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLAudioOutput streams an audio.Cursor through an SDL audio device. The
// device thread pulls from the cursor in OnAudioPlayback.
type SDLAudioOutput struct {
	device   sdl.AudioDeviceID
	userdata unsafe.Pointer
}

func NewSDLAudioOutput() *SDLAudioOutput {
	return &SDLAudioOutput{}
}

func (out *SDLAudioOutput) Open(want audio.Format, src *audio.Cursor) (audio.Format, error) {
	if out.userdata != nil {
		return audio.Format{}, fmt.Errorf("Audio device already open")
	}
	format, err := toSDLAudioFormat(want)
	if err != nil {
		return audio.Format{}, err
	}

	userdata := pointer.Save(src)
	var obtained sdl.AudioSpec
	device, err := sdl.OpenAudioDevice(
		"",
		false,
		&sdl.AudioSpec{
			Freq:     int32(want.SampleRate),
			Format:   format,
			Channels: uint8(want.Channels),
			Samples:  uint16(want.Samples),
			Callback: sdl.AudioCallback(C.OnAudioPlayback),
			UserData: userdata,
		},
		&obtained,
		0,
	)
	if err != nil {
		pointer.Unref(userdata)
		return audio.Format{}, err
	}
	out.device = device
	out.userdata = userdata

	got := audio.Format{
		SampleRate: int(obtained.Freq),
		Channels:   int(obtained.Channels),
		BitDepth:   int(obtained.Format.BitSize()),
		Samples:    int(obtained.Samples),
	}
	if obtained.Format.IsFloat() {
		got.Encoding = audio.EncodingFloat
	}
	return got, nil
}

func (out *SDLAudioOutput) Start() {
	sdl.PauseAudioDevice(out.device, false)
}

// Close stops the device. SDL waits for a running callback to return, so
// the cursor handle can be released afterwards.
func (out *SDLAudioOutput) Close() {
	if out.userdata == nil {
		return
	}
	sdl.CloseAudioDevice(out.device)
	pointer.Unref(out.userdata)
	out.device = 0
	out.userdata = nil
}

func toSDLAudioFormat(f audio.Format) (sdl.AudioFormat, error) {
	switch {
	case f.Encoding == audio.EncodingFloat && f.BitDepth == 32:
		return sdl.AUDIO_F32LSB, nil
	case f.Encoding == audio.EncodingPCM && f.BitDepth == 8:
		return sdl.AUDIO_U8, nil
	case f.Encoding == audio.EncodingPCM && f.BitDepth == 16:
		return sdl.AUDIO_S16LSB, nil
	case f.Encoding == audio.EncodingPCM && f.BitDepth == 32:
		return sdl.AUDIO_S32LSB, nil
	}
	return 0, fmt.Errorf("Unsupported audio format: %d bits %s", f.BitDepth, f.Encoding)
}

//export OnAudioPlayback
func OnAudioPlayback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(stream)), int(length))
	src := pointer.Restore(userdata).(*audio.Cursor)
	src.Fill(buf)
}
