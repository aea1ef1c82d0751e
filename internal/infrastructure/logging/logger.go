package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hilthontt/playbutton/internal/infrastructure/env"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	appName     = "playbutton"
	logFileName = "playbutton.log"
)

type Logger interface {
	Init()
	Sync() error

	Debug(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Debugf(template string, args ...any)

	Info(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Infof(template string, args ...any)

	Warn(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Warnf(template string, args ...any)

	Error(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Errorf(template string, args ...any)

	Fatal(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Fatalf(template string, args ...any)
}

type LoggerConfig struct {
	// FilePath is a directory; empty means stderr.
	FilePath string
	Encoding string
	Level    string
	Logger   string

	// MaxSizeMB, MaxBackups and MaxAgeDays drive lumberjack rotation.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	out io.Writer
}

func NewDefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		FilePath:   env.GetString("LOGGER_FILE_PATH", ""),
		Encoding:   env.GetString("LOGGER_ENCODING", "console"),
		Level:      env.GetString("LOGGER_LEVEL", "info"),
		Logger:     env.GetString("LOGGER_LOGGER", "zap"),
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

func NewLogger(cfg *LoggerConfig) Logger {
	switch cfg.Logger {
	case "zap":
		return newZapLogger(cfg)
	case "zerolog":
		return newZeroLogger(cfg)
	}

	panic("logger not supported: supported loggers: [zap, zerolog]")
}

func (cfg *LoggerConfig) writer() io.Writer {
	if cfg.out != nil {
		return cfg.out
	}

	if cfg.FilePath == "" {
		return os.Stderr
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.FilePath, logFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}
