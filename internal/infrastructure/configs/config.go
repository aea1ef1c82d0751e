package configs

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/hilthontt/playbutton/internal/infrastructure/env"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrInvalidBaseURL  = errors.New("player.base_url must be an absolute http(s) url")
	ErrInvalidSurface  = errors.New("surface must be one of: tui, remote, stdin")
	ErrInvalidLogger   = errors.New("logger.logger must be one of: zap, zerolog")
	ErrInvalidExporter = errors.New("tracing.exporter must be one of: otlp, jaeger")
	ErrInvalidLevel    = errors.New("logger.level must be one of: debug, info, warn, error, fatal")
	ErrInvalidPort     = errors.New("remote.port must be between 1 and 65535")
)

var (
	surfaces  = []string{"tui", "remote", "stdin"}
	loggers   = []string{"zap", "zerolog"}
	levels    = []string{"debug", "info", "warn", "error", "fatal"}
	exporters = []string{"otlp", "jaeger"}
)

type Config struct {
	Surface string        `koanf:"surface"`
	Player  PlayerConfig  `koanf:"player"`
	Button  ButtonConfig  `koanf:"button"`
	Remote  RemoteConfig  `koanf:"remote"`
	Logger  LoggerConfig  `koanf:"logger"`
	Tracing TracingConfig `koanf:"tracing"`
}

type PlayerConfig struct {
	BaseURL   string `koanf:"base_url"`
	Path      string `koanf:"path"`
	UserAgent string `koanf:"user_agent"`
	Debug     bool   `koanf:"debug"`
}

type ButtonConfig struct {
	ID string `koanf:"id"`
}

type RemoteConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	// Debug mounts pprof and expvar under /debug.
	Debug bool `koanf:"debug"`
}

type LoggerConfig struct {
	Logger   string `koanf:"logger"`
	Level    string `koanf:"level"`
	Encoding string `koanf:"encoding"`
	FilePath string `koanf:"file_path"`
}

type TracingConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
	Environment string `koanf:"environment"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load from YAML file if it exists
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Apply defaults and environment variable overrides
	applyDefaults(k)
	applyEnvOverrides(k)

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Player.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Player.BaseURL)
	}
	if !slices.Contains(surfaces, c.Surface) {
		return fmt.Errorf("%w: %q", ErrInvalidSurface, c.Surface)
	}
	if c.Remote.Port < 1 || c.Remote.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Remote.Port)
	}
	if !slices.Contains(loggers, c.Logger.Logger) {
		return fmt.Errorf("%w: %q", ErrInvalidLogger, c.Logger.Logger)
	}
	if !slices.Contains(levels, c.Logger.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Logger.Level)
	}
	if !slices.Contains(exporters, c.Tracing.Exporter) {
		return fmt.Errorf("%w: %q", ErrInvalidExporter, c.Tracing.Exporter)
	}
	return nil
}

// Addr is the listen address of the remote surface.
func (r RemoteConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func applyDefaults(k *koanf.Koanf) {
	setDefault(k, "surface", "tui")

	// Player defaults
	setDefault(k, "player.base_url", "http://localhost:8000")
	setDefault(k, "player.path", "/play")
	setDefault(k, "player.user_agent", "playbutton")
	setDefault(k, "player.debug", false)

	setDefault(k, "button.id", "playButton")

	// Remote defaults
	setDefault(k, "remote.host", "0.0.0.0")
	setDefault(k, "remote.port", 8090)
	setDefault(k, "remote.debug", false)

	// Logger defaults
	setDefault(k, "logger.logger", "zap")
	setDefault(k, "logger.level", "info")
	setDefault(k, "logger.encoding", "console")
	setDefault(k, "logger.file_path", "")

	// Tracing defaults
	setDefault(k, "tracing.enabled", false)
	setDefault(k, "tracing.exporter", "otlp")
	setDefault(k, "tracing.endpoint", "http://localhost:4318")
	setDefault(k, "tracing.service_name", "playbutton")
	setDefault(k, "tracing.environment", "development")
}

func applyEnvOverrides(k *koanf.Koanf) {
	if surface := env.GetString("SURFACE", ""); surface != "" {
		k.Set("surface", strings.ToLower(surface))
	}

	// Player config from env
	if baseURL := env.GetString("PLAYER_BASE_URL", ""); baseURL != "" {
		k.Set("player.base_url", baseURL)
	}
	if path := env.GetString("PLAYER_PATH", ""); path != "" {
		k.Set("player.path", path)
	}
	if id := env.GetString("BUTTON_ID", ""); id != "" {
		k.Set("button.id", id)
	}

	// Remote config from env
	if host := env.GetString("REMOTE_HOST", ""); host != "" {
		k.Set("remote.host", host)
	}
	if _, ok := os.LookupEnv("REMOTE_PORT"); ok {
		k.Set("remote.port", env.GetInt("REMOTE_PORT", 0))
	}
	if _, ok := os.LookupEnv("REMOTE_DEBUG"); ok {
		k.Set("remote.debug", env.GetBool("REMOTE_DEBUG", false))
	}

	// Logger config from env
	if logger := env.GetString("LOGGER_LOGGER", ""); logger != "" {
		k.Set("logger.logger", logger)
	}
	if level := env.GetString("LOGGER_LEVEL", ""); level != "" {
		k.Set("logger.level", level)
	}
	if encoding := env.GetString("LOGGER_ENCODING", ""); encoding != "" {
		k.Set("logger.encoding", encoding)
	}
	if filePath := env.GetString("LOGGER_FILE_PATH", ""); filePath != "" {
		k.Set("logger.file_path", filePath)
	}

	// Tracing config from env
	if _, ok := os.LookupEnv("TRACING_ENABLED"); ok {
		k.Set("tracing.enabled", env.GetBool("TRACING_ENABLED", false))
	}
	if exporter := env.GetString("TRACING_EXPORTER", ""); exporter != "" {
		k.Set("tracing.exporter", exporter)
	}
	if endpoint := env.GetString("TRACING_ENDPOINT", ""); endpoint != "" {
		k.Set("tracing.endpoint", endpoint)
	}
	if environment := env.GetString("ENVIRONMENT", ""); environment != "" {
		k.Set("tracing.environment", environment)
	}
}

// setDefault only sets the value if the key doesn't already exist
func setDefault(k *koanf.Koanf, key string, value interface{}) {
	if !k.Exists(key) {
		k.Set(key, value)
	}
}
