// Package server initializes and runs the directory service: it selects the
// storage backend, seeds sample users, serves the HTTP API and shuts down
// gracefully on SIGINT, SIGTERM or SIGQUIT.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/artmarket/internal/credentials"
	"github.com/dmitrijs2005/artmarket/internal/logging"
	"github.com/dmitrijs2005/artmarket/internal/seed"
	"github.com/dmitrijs2005/artmarket/internal/server/config"
	"github.com/dmitrijs2005/artmarket/internal/server/httpapi"
	"github.com/dmitrijs2005/artmarket/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/artmarket/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *users.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	verifier, err := credentials.New(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	rm, err := repomanager.New(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), verifier, logger)
	if c.SeedUsers {
		if err := us.Seed(ctx, seed.Users()); err != nil {
			_ = rm.Close()
			return nil, fmt.Errorf("seed users: %w", err)
		}
	}

	return &App{config: c, logger: logger, repos: rm, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "in_memory", app.config.DatabaseDSN == "")

	app.initSignalHandler(cancelFunc)

	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.config.CORSOrigin, app.logger, app.userService)
	err := s.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.repos.Close(); cerr != nil {
		app.logger.Error(ctx, "close storage failed", "error", cerr)
	}
	return err
}
