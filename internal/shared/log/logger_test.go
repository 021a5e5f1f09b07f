package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConfig struct {
	values   map[string]string
	onChange []func()
}

func (s *stubConfig) GetString(key string) string { return s.values[key] }
func (s *stubConfig) GetInt(string) int { return 0 }
func (s *stubConfig) GetBool(string) bool { return false }
func (s *stubConfig) GetDuration(string) time.Duration { return 0 }
func (s *stubConfig) GetStringSlice(string) []string { return nil }
func (s *stubConfig) IsSet(key string) bool { _, ok := s.values[key]; return ok }
func (s *stubConfig) WatchChanges() {}
func (s *stubConfig) OnChange(fn func()) { s.onChange = append(s.onChange, fn) }
func (s *stubConfig) StopWatching() {}
func (s *stubConfig) Source() string { return "yaml" }

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), "input %q", input)
	}
}

func TestNewJSONLogger_WritesServiceAndUTCTime(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)

	logger := newJSONLogger(&buf, "passhash-api", level)
	logger.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "passhash-api", entry["service"])
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])

	ts, ok := entry["time"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestFollowLevel_AppliesReloadedLevel(t *testing.T) {
	cfg := &stubConfig{values: map[string]string{"logging.level": "info"}}
	level := NewLevel(cfg)

	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "", level)
	FollowLevel(cfg, level, logger)

	logger.Debug("suppressed")
	assert.Empty(t, buf.String())

	cfg.values["logging.level"] = "debug"
	for _, fn := range cfg.onChange {
		fn()
	}
	assert.Equal(t, slog.LevelDebug, level.Level())

	buf.Reset()
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
