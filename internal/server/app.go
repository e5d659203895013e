// Package server initializes and runs the admin panel backend.
// It opens the database, applies migrations, wires the services and
// serves the HTTP API until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/adminpanel/internal/logging"
	"github.com/dmitrijs2005/adminpanel/internal/server/api"
	"github.com/dmitrijs2005/adminpanel/internal/server/config"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
	"github.com/dmitrijs2005/adminpanel/internal/server/services"
	"github.com/dmitrijs2005/adminpanel/internal/server/storage"
)

const pingTimeout = 5 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	closeLogger func() error
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	services    api.Services
}

// OpenDB opens a pgx-backed pool and checks that the server answers.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, closeLogger, err := logging.New(logging.Options{
		Backend: c.LogBackend,
		Level:   c.LogLevel,
		File:    c.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := OpenDB(ctx, c.DatabaseDSN)
	if err != nil {
		_ = closeLogger()
		return nil, err
	}

	m := repomanager.NewPostgresRepositoryManager()

	if !c.SkipMigrations {
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			_ = closeLogger()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	avatars, err := storage.NewAvatarStore(ctx, c)
	if err != nil {
		_ = db.Close()
		_ = closeLogger()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	svc := api.Services{
		Auth:      services.NewAuthService(db, m, c),
		Tables:    services.NewTableService(db, m, schema.DefaultRegistry(), c),
		Employees: services.NewEmployeeService(db, m),
		Users:     services.NewUserService(db, m),
		Menu:      services.NewMenuService(db, m),
		Profile:   services.NewProfileService(db, m, avatars),
		Dashboard: services.NewDashboardService(db, m),
	}

	return &App{
		config:      c,
		logger:      logger,
		closeLogger: closeLogger,
		db:          db,
		repomanager: m,
		services:    svc,
	}, nil
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
	s := api.NewHTTPServer(app.config.EndpointAddr, app.logger, app.services)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a signal arrives or ctx is cancelled, then releases the
// database and the logger.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
	_ = app.closeLogger()
}
