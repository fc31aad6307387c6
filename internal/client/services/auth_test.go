package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hikekeeper/internal/client/client"
	"github.com/dmitrijs2005/hikekeeper/internal/client/repositories/metadata"
)

func TestLogin_StoresSession(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{Token: "tok-1"}
	svc := NewAuthService(fc, db)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "hiker", []byte("secret1")))

	name, err := svc.Session(ctx)
	require.NoError(t, err)
	require.Equal(t, "hiker", name)

	tok, err := metadata.GetString(ctx, metadata.NewSQLiteRepository(db), metadata.KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)
}

func TestRegister_StoresSession(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(&fakeClient{Token: "tok-2"}, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "walker", []byte("secret1")))

	name, err := svc.Session(ctx)
	require.NoError(t, err)
	require.Equal(t, "walker", name)
}

func TestLogin_ErrorKeepsNoSession(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(&fakeClient{LoginErr: client.ErrUnauthorized}, db)
	ctx := context.Background()

	err := svc.Login(ctx, "hiker", []byte("bad"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.ErrorContains(t, err, "login error")

	_, err = svc.Session(ctx)
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestRegister_PropagatesConflict(t *testing.T) {
	svc := NewAuthService(&fakeClient{RegisterErr: client.ErrConflict}, setupDB(t))

	err := svc.Register(context.Background(), "hiker", []byte("secret1"))
	require.ErrorIs(t, err, client.ErrConflict)
}

func TestLogout_ClearsSession(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{Token: "tok"}
	svc := NewAuthService(fc, db)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "hiker", []byte("secret1")))
	require.NoError(t, svc.Logout(ctx))

	_, err := svc.Session(ctx)
	require.ErrorIs(t, err, ErrNotLoggedIn)
	require.Empty(t, fc.AccessToken)

	// logging out twice is fine
	require.NoError(t, svc.Logout(ctx))
}

func TestPingAndClose(t *testing.T) {
	fc := &fakeClient{PingErr: client.ErrUnavailable, CloseErr: errors.New("close")}
	svc := NewAuthService(fc, setupDB(t))

	require.ErrorIs(t, svc.Ping(context.Background()), client.ErrUnavailable)
	require.Error(t, svc.Close(context.Background()))
	require.True(t, fc.Closed)
}
