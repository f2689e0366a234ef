// Package server wires the avarich server together: storage, services,
// tracing and the HTTP API, plus signal-driven graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/avarich/internal/logging"
	"github.com/dmitrijs2005/avarich/internal/server/config"
	"github.com/dmitrijs2005/avarich/internal/server/httpapi"
	"github.com/dmitrijs2005/avarich/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/avarich/internal/server/services"
	"github.com/dmitrijs2005/avarich/internal/telemetry"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	userService *services.UserService
}

// newRepositoryManager is a seam for tests.
var newRepositoryManager = repomanager.NewRepositoryManager

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	rm, err := newRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	us := services.NewUserService(rm, c, logger)

	return &App{config: c, logger: logger, repomanager: rm, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger, app.userService, app.config.CORSOrigin)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	shutdownTracing := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: "avarich-server",
		Endpoint:    app.config.OTLPEndpoint,
		Insecure:    true,
	}, app.logger)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	shutdownCtx := context.WithoutCancel(ctx)
	if err := shutdownTracing(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "tracer shutdown error", "error", err)
	}
	if err := app.repomanager.Close(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}
	app.logger.Info(shutdownCtx, "App stopped")
}
