package log

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestWithComponentFields(t *testing.T) {
	var buf bytes.Buffer
	Reset()
	Configure(Config{Level: "debug", Output: &buf, Service: "test"})
	t.Cleanup(Reset)

	l := WithComponent("engine")
	l.Debug().Int("cycle", 3).Msg("sorted")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not json: %v (%q)", err, buf.String())
	}
	if entry["component"] != "engine" {
		t.Errorf("expected component engine, got %v", entry["component"])
	}
	if entry["service"] != "test" {
		t.Errorf("expected service test, got %v", entry["service"])
	}
	if entry["cycle"] != float64(3) {
		t.Errorf("expected cycle 3, got %v", entry["cycle"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Reset()
	Configure(Config{Level: "warn", Output: &buf})
	t.Cleanup(Reset)

	l := Base()
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info entry written at warn level: %q", buf.String())
	}
	l.Warn().Msg("shown")
	if buf.Len() == 0 {
		t.Error("warn entry was not written")
	}
}

func TestConfigureFirstCallWins(t *testing.T) {
	var first, second bytes.Buffer
	Reset()
	Configure(Config{Output: &first})
	Configure(Config{Output: &second})
	t.Cleanup(Reset)

	l := Base()
	l.Info().Msg("hello")
	if first.Len() == 0 || second.Len() != 0 {
		t.Errorf("expected only the first writer to receive output")
	}
}
