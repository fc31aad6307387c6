package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hikekeeper/internal/client/client"
	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
)

// ---- helpers ----

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ---- fake client ----

// fakeClient implements client.Client for unit tests of the services.
type fakeClient struct {
	CloseErr    error
	RegisterErr error
	LoginErr    error
	PingErr     error
	Token       string

	Profile    *models.Profile
	ProfileErr error
	SaveErr    error

	Remote    []models.Hike
	RemoteErr error

	// RecordErrs maps trail ids to errors returned by RecordHike.
	RecordErrs map[string]error
	Known      map[string]bool

	// captured
	AccessToken string
	Recorded    []string
	Saved       *models.ProfileUpdate
	Closed      bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error {
	f.Closed = true
	return f.CloseErr
}

func (f *fakeClient) SetAccessToken(token string) { f.AccessToken = token }

func (f *fakeClient) Register(ctx context.Context, userName, password string) (string, error) {
	if f.RegisterErr != nil {
		return "", f.RegisterErr
	}
	return f.Token, nil
}

func (f *fakeClient) Login(ctx context.Context, userName, password string) (string, error) {
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.Token, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	return f.Profile, f.ProfileErr
}

func (f *fakeClient) SaveProfile(ctx context.Context, u models.ProfileUpdate) error {
	f.Saved = &u
	return f.SaveErr
}

func (f *fakeClient) ListHikes(ctx context.Context) ([]models.Hike, error) {
	return f.Remote, f.RemoteErr
}

func (f *fakeClient) RecordHike(ctx context.Context, h models.Hike) (models.RecordOutcome, error) {
	f.Recorded = append(f.Recorded, h.TrailID)
	if err := f.RecordErrs[h.TrailID]; err != nil {
		return "", err
	}
	if f.Known == nil {
		f.Known = map[string]bool{}
	}
	if f.Known[h.TrailID] {
		return models.RecordUpdated, nil
	}
	f.Known[h.TrailID] = true
	return models.RecordInserted, nil
}
