package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "tui", cfg.Surface)
	assert.Equal(t, "http://localhost:8000", cfg.Player.BaseURL)
	assert.Equal(t, "/play", cfg.Player.Path)
	assert.Equal(t, "playButton", cfg.Button.ID)
	assert.Equal(t, "0.0.0.0:8090", cfg.Remote.Addr())
	assert.False(t, cfg.Remote.Debug)
	assert.Equal(t, "zap", cfg.Logger.Logger)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "otlp", cfg.Tracing.Exporter)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
surface: remote
player:
  base_url: http://speaker.local:8000
button:
  id: lobbyButton
remote:
  port: 9000
logger:
  logger: zerolog
  level: debug
tracing:
  enabled: true
  exporter: jaeger
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "remote", cfg.Surface)
	assert.Equal(t, "http://speaker.local:8000", cfg.Player.BaseURL)
	assert.Equal(t, "/play", cfg.Player.Path)
	assert.Equal(t, "lobbyButton", cfg.Button.ID)
	assert.Equal(t, 9000, cfg.Remote.Port)
	assert.Equal(t, "zerolog", cfg.Logger.Logger)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "jaeger", cfg.Tracing.Exporter)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
player:
  base_url: http://speaker.local:8000
`)
	t.Setenv("PLAYER_BASE_URL", "http://10.0.0.5:8000")
	t.Setenv("SURFACE", "STDIN")
	t.Setenv("REMOTE_PORT", "9100")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:8000", cfg.Player.BaseURL)
	assert.Equal(t, "stdin", cfg.Surface)
	assert.Equal(t, 9100, cfg.Remote.Port)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"relative base url", "player:\n  base_url: /play\n", ErrInvalidBaseURL},
		{"unsupported scheme", "player:\n  base_url: ftp://host\n", ErrInvalidBaseURL},
		{"unknown surface", "surface: gui\n", ErrInvalidSurface},
		{"unknown logger", "logger:\n  logger: logrus\n", ErrInvalidLogger},
		{"unknown exporter", "tracing:\n  exporter: zipkin\n", ErrInvalidExporter},
		{"unknown level", "logger:\n  level: verbose\n", ErrInvalidLevel},
		{"port too large", "remote:\n  port: 70000\n", ErrInvalidPort},
		{"port zero", "remote:\n  port: 0\n", ErrInvalidPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_EnvPortOutOfRange(t *testing.T) {
	for _, port := range []string{"70000", "-1", "http"} {
		t.Run(port, func(t *testing.T) {
			t.Setenv("REMOTE_PORT", port)

			_, err := Load("")
			assert.ErrorIs(t, err, ErrInvalidPort)
		})
	}
}

func TestLoad_EnvLevelRejected(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "trace")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDetermineConfigPath(t *testing.T) {
	assert.Equal(t, "/explicit.yaml", DetermineConfigPath("/explicit.yaml"))

	t.Setenv("PLAYBUTTON_CONFIG", "/from-env.yaml")
	assert.Equal(t, "/from-env.yaml", DetermineConfigPath(""))
}
