// Package server initializes and runs the friendsdir API server.
// It opens the database, applies migrations, seeds the admin account,
// handles graceful shutdown and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/friendsdir/internal/dbx"
	"github.com/dmitrijs2005/friendsdir/internal/logging"
	"github.com/dmitrijs2005/friendsdir/internal/server/auth"
	"github.com/dmitrijs2005/friendsdir/internal/server/config"
	"github.com/dmitrijs2005/friendsdir/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/friendsdir/internal/server/rest"
	"github.com/dmitrijs2005/friendsdir/internal/server/services"
	"github.com/dmitrijs2005/friendsdir/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *storage.DB
	server *rest.Server
}

// NewApp connects to the database, brings the schema up to date and builds
// the HTTP server. Log lines go to out.
func NewApp(ctx context.Context, c *config.Config, out io.Writer) (*App, error) {
	logger := logging.NewJSON(out, c.LogLevel)

	db, err := storage.Open(ctx, c.DatabaseDriver, c.DatabaseDSN, logger, dbx.DefaultConnectOptions)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewGormRepositoryManager(db)
	if err := rm.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	seed := services.AdminSeed{Name: c.AdminName, Email: c.AdminEmail, Password: c.AdminPassword}
	if err := services.EnsureAdmin(ctx, rm, seed, c.BcryptCost, logger.With("module", "bootstrap")); err != nil {
		_ = db.Close()
		return nil, err
	}

	tokens := auth.NewTokens(c.SecretKey, c.TokenValidityDuration)
	as := services.NewAuthService(rm, tokens, c.BcryptCost, logger)
	us := services.NewUserService(rm, c.BcryptCost, c.ResetPassword, logger)
	fs := services.NewFriendService(rm, logger)

	srv := rest.NewServer(c.EndpointAddr, c.ShutdownTimeout, logger, as, us, fs, rm)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
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
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server stopped", "error", err)
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled or a termination signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddr, "driver", app.config.DatabaseDriver)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
