// Package server initializes and runs the main application server.
// It wires the storage backends, session store, and services, handles
// graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/config"
	"github.com/dmitrijs2005/passvault/internal/server/httpapi"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/passvault/internal/server/services"
	"github.com/dmitrijs2005/passvault/internal/server/session"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	httpServer   *httpapi.Server
	sessionStore session.Store
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	var db *sql.DB
	var rm repomanager.RepositoryManager

	if cfg.DatabaseDSN == "" {
		logger.Warn(ctx, "no database DSN configured, using in-memory repositories")
		rm = repomanager.NewMemoryRepositoryManager()
	} else {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	var store session.Store
	if cfg.RedisAddr == "" {
		store = session.NewMemoryStore()
	} else {
		var err error
		store, err = session.NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("redis init error: %w", err)
		}
	}

	us := services.NewUserService(db, rm, cfg)
	ss := services.NewSaltService(db, rm, logger)
	es := services.NewEntryService(db, rm)

	sm := session.NewManager(store, us, ss, cfg.SessionTTL, logger)

	hs := httpapi.NewServer(cfg.EndpointAddr, logger, sm, us, ss, es)

	return &App{config: cfg, logger: logger, db: db, httpServer: hs, sessionStore: store}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	// the memory session store gets a background sweeper; expiry is still
	// enforced lazily at validate time, this only reclaims memory
	if ms, ok := app.sessionStore.(*session.MemoryStore); ok {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ms.Run(ctx, time.Minute)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}
}
