// Package server initializes and runs the application: it wires the
// configuration, storage, services and the HTTP endpoint, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aivanovs/taskkeeper/internal/logging"
	"github.com/aivanovs/taskkeeper/internal/server/config"
	"github.com/aivanovs/taskkeeper/internal/server/httpapi"
	"github.com/aivanovs/taskkeeper/internal/server/storage"
	"github.com/aivanovs/taskkeeper/internal/server/tasks"
	"github.com/aivanovs/taskkeeper/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       storage.RepositoryManager
	userService *users.Service
	taskService *tasks.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := storage.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), c)
	ts := tasks.NewService(rm.Tasks())

	return &App{config: c, logger: logger, repos: rm, userService: us, taskService: ts}, nil
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

	s, err := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.taskService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	// A migration failure is logged, not fatal: the server starts anyway and
	// requests answer 500 until the database becomes reachable.
	if err := app.repos.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migration error, serving without confirmed schema", "error", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
