package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("debug", &buf)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	log := New("rooms")
	log.Info().Int("room", 3).Msg("entered")

	out := buf.String()
	if !strings.Contains(out, `"component":"rooms"`) {
		t.Errorf("log output = %q, want component field", out)
	}
	if !strings.Contains(out, `"room":3`) {
		t.Errorf("log output = %q, want room field", out)
	}
}

func TestInit_UnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("chatty", &buf)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("GlobalLevel() = %v, want info", got)
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Errorf("log output = %q, want warning about level", buf.String())
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("warn", &buf)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	l := New("test")
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info message written at warn level: %q", buf.String())
	}
}

func TestDisable_SilencesNewLoggers(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("debug", &buf)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Disable()
	l := New("quiet")
	l.Error().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("log output after Disable = %q, want none", buf.String())
	}
}
