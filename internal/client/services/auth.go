// Package services contains application services for the hikectl client.
// This file defines the authentication service: register, login, logout,
// liveness check, and the locally stored session.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/hikekeeper/internal/client/client"
	"github.com/dmitrijs2005/hikekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hikekeeper/internal/dbx"
)

// ErrNotLoggedIn is returned by calls that need a session when none is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register / Login: authenticate against the server and persist the session.
//   - Logout: forget the local session. Recorded hikes are kept.
//   - Session: return the user name of the stored session.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, userName string, password []byte) error
	Login(ctx context.Context, userName string, password []byte) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client
// and a local SQL database for the session.
type authService struct {
	client client.Client
	db     *sqlx.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sqlx.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// Register creates a new account on the server and stores its session.
func (a *authService) Register(ctx context.Context, userName string, password []byte) error {
	token, err := a.client.Register(ctx, userName, string(password))
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	if err := a.saveSession(ctx, userName, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// Login authenticates against the server and stores the session.
func (a *authService) Login(ctx context.Context, userName string, password []byte) error {
	token, err := a.client.Login(ctx, userName, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, userName, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// saveSession persists the user name and access token in a single
// transaction.
func (a *authService) saveSession(ctx context.Context, userName, token string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		metadataRepo := metadata.NewSQLiteRepository(tx)
		if err := metadataRepo.Set(ctx, metadata.KeyUserName, []byte(userName)); err != nil {
			return err
		}
		return metadataRepo.Set(ctx, metadata.KeyAccessToken, []byte(token))
	})
}

func (a *authService) Logout(ctx context.Context) error {
	metadataRepo := a.getMetadataRepo()

	if err := metadataRepo.Delete(ctx, metadata.KeyAccessToken); err != nil {
		return err
	}
	a.client.SetAccessToken("")
	return metadataRepo.Delete(ctx, metadata.KeyUserName)
}

func (a *authService) Session(ctx context.Context) (string, error) {
	metadataRepo := a.getMetadataRepo()

	token, err := metadata.GetString(ctx, metadataRepo, metadata.KeyAccessToken)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return metadata.GetString(ctx, metadataRepo, metadata.KeyUserName)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// authorize loads the stored access token into c.
func authorize(ctx context.Context, repo metadata.Repository, c client.Client) error {
	token, err := metadata.GetString(ctx, repo, metadata.KeyAccessToken)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNotLoggedIn
	}
	c.SetAccessToken(token)
	return nil
}
