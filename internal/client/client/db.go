package client

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/hikekeeper/internal/client/migrations"
	"github.com/dmitrijs2005/hikekeeper/internal/client/repositories/hikes"
	"github.com/dmitrijs2005/hikekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hikekeeper/internal/dbx"
	"github.com/dmitrijs2005/hikekeeper/internal/filex"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Metadata metadata.Repository
	Hikes    hikes.Repository
}

// NewRepositories binds the local repositories to db, which may be the
// database itself or a transaction.
func NewRepositories(db dbx.DBTX) *Repositories {
	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		Hikes:    hikes.NewSQLiteRepository(db),
	}
}

func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	// Set the database dialect
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db.DB, ".")
}

// InitDatabase opens the SQLite file at dsn, creating its directory if
// needed, and applies migrations.
func InitDatabase(ctx context.Context, dsn string) (*sqlx.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
