package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/hikekeeper/internal/client/client"
	"github.com/dmitrijs2005/hikekeeper/internal/client/config"
	"github.com/dmitrijs2005/hikekeeper/internal/client/services"
)

// App bundles the services one command invocation works with.
type App struct {
	config   *config.Config
	auth     services.AuthService
	profiles services.ProfileService
	hikes    services.HikeService
	db       *sqlx.DB
}

// AppFactory builds an App from the resolved configuration.
type AppFactory func(ctx context.Context, cfg *config.Config) (*App, error)

// NewApp opens the local database, dials the server and wires the services.
// The connection is lazy, so commands that only touch the outbox work offline.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("local db init error: %w", err)
	}

	c, err := client.NewHikeKeeperClientService(cfg.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("client init error: %w", err)
	}

	return &App{
		config:   cfg,
		auth:     services.NewAuthService(c, db),
		profiles: services.NewProfileService(c, db),
		hikes:    services.NewHikeService(c, db),
		db:       db,
	}, nil
}

// Close releases the connection and the local database.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.auth != nil {
		errs = append(errs, a.auth.Close(ctx))
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}
