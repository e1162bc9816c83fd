package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
)

type App struct {
	logger   *slog.Logger
	router   *mux.Router
	ws       *config.WebSocket
	defaults mines.GameParams
	limits   config.GameLimits
	origins  []string
}

func New(logger *slog.Logger) *App {
	app := &App{
		logger: logger,
		router: mux.NewRouter(),
	}

	return app
}

// Configure reads the environment and mounts the routes.
func (a *App) Configure() error {
	ws, err := config.NewWebSocket()
	if err != nil {
		return fmt.Errorf("unable to read ws config: %w", err)
	}
	a.ws = ws

	limits, err := config.NewGameLimits()
	if err != nil {
		return err
	}
	a.limits = *limits

	defaults, err := config.NewGameDefaults()
	if err != nil {
		return err
	}
	if err := limits.Check(*defaults); err != nil {
		return fmt.Errorf("default game params exceed limits: %w", err)
	}
	a.defaults = *defaults

	a.origins = config.AllowedOrigins()

	a.loadRoutes()

	return nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(a.origins...),
		middleware.Logging(a.logger),
	)
}

func (a *App) Start(ctx context.Context) error {
	if err := a.Configure(); err != nil {
		return err
	}

	port := config.Port()
	server := &http.Server{
		Addr:        port,
		Handler:     a.Handler(),
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Info("server listening", slog.String("addr", port))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
