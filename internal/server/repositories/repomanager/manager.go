// Package repomanager vends repository implementations for the configured
// storage backend and owns the underlying connection.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/trails"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/users"
)

// Repositories groups the stores bound to one connection or unit of work.
type Repositories interface {
	Users() users.Repository
	Profiles() profiles.Repository
	Trails() trails.Repository
}

type RepositoryManager interface {
	Repositories

	// RunMigrations prepares the schema (tables, indexes) of the backend.
	RunMigrations(ctx context.Context) error

	// WithinTx runs fn with repositories that commit or roll back together.
	// Backends without transactions call fn directly.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
