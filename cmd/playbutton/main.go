package main

import (
	"context"
	"expvar"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/hilthontt/playbutton/internal/application/clickhandler"
	"github.com/hilthontt/playbutton/internal/domain"
	"github.com/hilthontt/playbutton/internal/infrastructure/configs"
	"github.com/hilthontt/playbutton/internal/infrastructure/httpclient"
	"github.com/hilthontt/playbutton/internal/infrastructure/logging"
	"github.com/hilthontt/playbutton/internal/infrastructure/player"
	"github.com/hilthontt/playbutton/internal/infrastructure/sinks"
	"github.com/hilthontt/playbutton/internal/infrastructure/tracing"
	"github.com/hilthontt/playbutton/internal/infrastructure/ws"
	"github.com/hilthontt/playbutton/internal/presentation/api"
	"github.com/hilthontt/playbutton/internal/presentation/console"
	healthHandler "github.com/hilthontt/playbutton/internal/presentation/handler/health"
	pressHandler "github.com/hilthontt/playbutton/internal/presentation/handler/press"
	"github.com/hilthontt/playbutton/internal/presentation/tui"
)

const defaultTUILogDir = "./logs"

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	surface := flag.String("surface", "", "control surface: tui, remote or stdin")
	debug := flag.Bool("debug", false, "debug logging and request/response dumps")
	flag.Parse()

	cfg, err := configs.Load(configs.DetermineConfigPath(*configPath))
	if err != nil {
		log.Fatal(err)
	}

	if *surface != "" {
		cfg.Surface = *surface
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}
	if *debug {
		cfg.Logger.Level = "debug"
		cfg.Player.Debug = true
		cfg.Remote.Debug = true
	}

	// the terminal belongs to bubbletea, so logs go to a file
	if cfg.Surface == "tui" && cfg.Logger.FilePath == "" {
		cfg.Logger.FilePath = defaultTUILogDir
	}

	loggerConfig := logging.NewDefaultConfig()
	loggerConfig.Logger = cfg.Logger.Logger
	loggerConfig.Level = cfg.Logger.Level
	loggerConfig.Encoding = cfg.Logger.Encoding
	loggerConfig.FilePath = cfg.Logger.FilePath

	logger := logging.NewLogger(loggerConfig)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal(logging.General, logging.Shutdown, err.Error(), map[logging.ExtraKey]any{
			logging.Surface: cfg.Surface,
		})
	}
}

func run(cfg *configs.Config, logger logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.InitTracer(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Environment: cfg.Tracing.Environment,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn(logging.General, logging.Shutdown, "tracer shutdown failed", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
		}
	}()

	opts := []player.Option{
		player.WithBaseURL(cfg.Player.BaseURL),
		player.WithPath(cfg.Player.Path),
		player.WithUserAgent(cfg.Player.UserAgent),
		player.WithHTTPDoer(httpclient.New(httpclient.DefaultConfig())),
	}
	if cfg.Player.Debug {
		opts = append(opts, player.WithDebugLog(logger))
	}

	client, err := player.NewClient(opts...)
	if err != nil {
		return fmt.Errorf("build player client: %w", err)
	}

	button, err := domain.NewButton(cfg.Button.ID)
	if err != nil {
		return err
	}

	handler, err := clickhandler.Bind(ctx, button, client, newSinks(cfg, logger))
	if err != nil {
		return fmt.Errorf("bind %s: %w", button.ID(), err)
	}

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	logger.Info(logging.General, logging.Startup, "play button bound", map[logging.ExtraKey]any{
		logging.ButtonID: button.ID(),
		logging.Surface:  cfg.Surface,
		logging.Path:     client.Endpoint(),
	})

	switch cfg.Surface {
	case "tui":
		err = tui.Run(ctx, button)
	case "remote":
		manager := ws.NewManager()
		app := api.NewApplication(
			cfg.Remote,
			pressHandler.NewHandler(button, manager, logger),
			healthHandler.NewHandler(api.NewStatus(button, manager)),
			manager,
			logger,
		)
		err = app.Run(ctx, app.Mount())
	case "stdin":
		err = console.Run(ctx, os.Stdin, button)
	default:
		err = configs.ErrInvalidSurface
	}

	// let requests already on the wire reach their sinks
	handler.Wait()

	logger.Info(logging.General, logging.Shutdown, "play button stopped", map[logging.ExtraKey]any{
		logging.ButtonID: button.ID(),
		logging.Surface:  cfg.Surface,
	})

	return err
}

// newSinks mirrors outcomes to stdout/stderr for the stdin surface. Log sinks
// are added there only when logs go to a file, otherwise every line would be
// printed twice.
func newSinks(cfg *configs.Config, logger logging.Logger) domain.Sinks {
	logSinks := sinks.NewLogSinks(logger)
	if cfg.Surface != "stdin" {
		return logSinks
	}

	std := sinks.NewWriterSinks(os.Stdout, os.Stderr)
	if cfg.Logger.FilePath == "" {
		return std
	}
	return sinks.Tee(std, logSinks)
}
