package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(name string, out *bytes.Buffer) *LoggerConfig {
	return &LoggerConfig{
		Encoding: "json",
		Level:    "info",
		Logger:   name,
		out:      out,
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_WritesCategoriesAndExtras(t *testing.T) {
	for _, name := range []string{"zap", "zerolog"} {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewLogger(newTestConfig(name, buf))

			logger.Error(Playback, PlayError, "Error: connection refused", map[ExtraKey]any{
				ActivationID: "a-1",
				Source:       "tui",
			})
			require.NoError(t, logger.Sync())

			entries := decodeLines(t, buf)
			require.Len(t, entries, 1)

			entry := entries[0]
			assert.Equal(t, "Playback", entry["Category"])
			assert.Equal(t, "PlayError", entry["SubCategory"])
			assert.Equal(t, "a-1", entry["ActivationID"])
			assert.Equal(t, "tui", entry["Source"])
			assert.Equal(t, appName, entry["AppName"])
		})
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	for _, name := range []string{"zap", "zerolog"} {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewLogger(newTestConfig(name, buf))

			logger.Debug(General, Startup, "hidden", nil)
			logger.Info(General, Startup, "shown", nil)
			require.NoError(t, logger.Sync())

			entries := decodeLines(t, buf)
			require.Len(t, entries, 1)
		})
	}
}

func TestNewLogger_UnsupportedPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewLogger(&LoggerConfig{Logger: "logrus"})
	})
}

func TestPrepareLogInfo_DoesNotMutateInput(t *testing.T) {
	extra := map[ExtraKey]any{Source: "stdin"}

	params := prepareLogInfo(Remote, Press, extra)

	assert.Len(t, extra, 1)
	assert.Equal(t, Remote, params["Category"])
	assert.Equal(t, Press, params["SubCategory"])
	assert.Equal(t, "stdin", params[Source])
}
