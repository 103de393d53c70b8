// Package logging builds the zerolog logger used by the pathlab CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnknownOutput indicates an Output other than stdout or stderr.
var ErrUnknownOutput = errors.New("logging: unknown output")

// Config selects level, format and destination.
type Config struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// Format is "json" or "console"; anything else means json.
	Format string
	// Output is "stdout" or "stderr"; empty means stderr.
	Output string
}

// New returns a logger for cfg.
func New(cfg Config) (zerolog.Logger, error) {
	var out io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrUnknownOutput, cfg.Output)
	}

	return NewWithWriter(cfg, out)
}

// NewWithWriter is New with an explicit destination; cfg.Output is ignored.
// The level applies to the returned logger only.
func NewWithWriter(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
		}
		level = l
	}

	if strings.ToLower(cfg.Format) == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
