package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hilthontt/playbutton/internal/infrastructure/configs"
	"github.com/hilthontt/playbutton/internal/infrastructure/json"
	"github.com/hilthontt/playbutton/internal/infrastructure/logging"
	"github.com/hilthontt/playbutton/internal/infrastructure/ws"
	healthHandler "github.com/hilthontt/playbutton/internal/presentation/handler/health"
	pressHandler "github.com/hilthontt/playbutton/internal/presentation/handler/press"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 5 * time.Second

type Application struct {
	config        configs.RemoteConfig
	pressHandler  *pressHandler.Handler
	healthHandler *healthHandler.Handler
	wsManager     *ws.Manager
	logger        logging.Logger
}

func NewApplication(
	config configs.RemoteConfig,
	pressHandler *pressHandler.Handler,
	healthHandler *healthHandler.Handler,
	wsManager *ws.Manager,
	logger logging.Logger,
) *Application {
	return &Application{
		config:        config,
		pressHandler:  pressHandler,
		healthHandler: healthHandler,
		wsManager:     wsManager,
		logger:        logger,
	}
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(app.enableCors)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) { json.WriteNotFound(w) })
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) { json.WriteMethodNotAllowed(w) })

	r.Route("/api", func(r chi.Router) {
		r.Post("/press", app.pressHandler.PressHandler)
		r.Get("/ws", app.pressHandler.WebsocketHandler)

		r.Get("/health", app.healthHandler.GetHealth)
		r.Get("/healthz", app.healthHandler.GetHealth)
	})

	if app.config.Debug {
		r.Mount("/debug", middleware.Profiler())
	}

	return otelhttp.NewHandler(r, "playbutton.remote")
}

// Run serves until ctx is cancelled, then shuts down gracefully and closes
// open websocket clients. Nothing presses the button through the remote
// surface after Run returns.
func (app *Application) Run(ctx context.Context, mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.Addr(),
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error, 1)

	go func() {
		<-ctx.Done()

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		app.logger.Info(logging.General, logging.Shutdown, "remote is stopping", map[logging.ExtraKey]any{
			logging.Addr: srv.Addr,
		})

		// Shutdown does not track hijacked connections, so websockets are
		// closed once the listener is gone
		err := srv.Shutdown(sctx)
		app.wsManager.CloseAll("server shutting down")
		shutdown <- err
	}()

	app.logger.Info(logging.General, logging.Startup, "remote has started", map[logging.ExtraKey]any{
		logging.Addr: srv.Addr,
	})

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Info(logging.General, logging.Shutdown, "remote has stopped", map[logging.ExtraKey]any{
		logging.Addr: srv.Addr,
	})

	return nil
}
