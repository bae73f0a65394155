package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Str("label", "tiger").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %s", out)
	}
	if !strings.Contains(out, `"label":"tiger"`) || !strings.Contains(out, "shown") {
		t.Errorf("warn message missing fields: %s", out)
	}
	if !strings.Contains(out, `"time":`) {
		t.Errorf("timestamp missing: %s", out)
	}
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "chatty")

	log.Debug().Msg("debug line")
	log.Info().Msg("info line")

	out := buf.String()
	if strings.Contains(out, "debug line") {
		t.Errorf("debug written with fallback level: %s", out)
	}
	if !strings.Contains(out, "info line") {
		t.Errorf("info missing with fallback level: %s", out)
	}
}
