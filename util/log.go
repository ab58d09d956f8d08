package util

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the logger writing plain text lines to the debug sink.
func NewLogger(sink io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        sink,
		NoColor:    true,
		TimeFormat: "15:04:05.000",
	}
	output.FormatMessage = func(i interface{}) string {
		if i == nil {
			return ""
		}
		return fmt.Sprintf("%v", i)
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
