// Package logging configures the process-wide zerolog logger and hands out
// per-component children.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Init sets the global level and switches to human-readable console output.
// An unknown level falls back to info and is reported once initialised.
func Init(level string) {
	InitWithWriter(level, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	mu.Lock()
	root = zerolog.New(w).With().Timestamp().Logger()
	mu.Unlock()

	if err != nil {
		l := New("logging")
		l.Warn().Str("level", level).Msg("unknown log level, using info")
	}
}

// New returns a logger tagged with the given component name.
func New(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", component).Logger()
}

// Disable silences every logger created afterwards.
func Disable() {
	mu.Lock()
	root = zerolog.Nop()
	mu.Unlock()
}
