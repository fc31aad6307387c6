package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/logging"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/services"
)

const testToken = "good-token"

type fakeUsers struct {
	registerErr error
	loginErr    error
}

func (f *fakeUsers) Register(ctx context.Context, userName, password string) (string, error) {
	if f.registerErr != nil {
		return "", f.registerErr
	}
	return testToken, nil
}

func (f *fakeUsers) Login(ctx context.Context, userName, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return testToken, nil
}

func (f *fakeUsers) Authorize(ctx context.Context, token string) (string, error) {
	if token != testToken {
		return "", common.ErrUnauthorized
	}
	return "user-1", nil
}

type fakeProfiles struct {
	profile *models.Profile
	getErr  error
	saveErr error
	saved   *services.ProfileInput
	ownerID string
}

func (f *fakeProfiles) Get(ctx context.Context, ownerID string) (*models.Profile, error) {
	f.ownerID = ownerID
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeProfiles) Save(ctx context.Context, ownerID string, in services.ProfileInput) error {
	f.ownerID = ownerID
	f.saved = &in
	return f.saveErr
}

type fakeTrails struct {
	hikes    []models.HikeRecord
	listErr  error
	outcome  services.Outcome
	recErr   error
	trackURL string
	trackErr error

	ownerID string
	trailID string
	fields  models.HikeFields
}

func (f *fakeTrails) RecordHike(ctx context.Context, ownerID, trailID string, fields models.HikeFields) (services.Outcome, error) {
	f.ownerID, f.trailID, f.fields = ownerID, trailID, fields
	return f.outcome, f.recErr
}

func (f *fakeTrails) ListHikes(ctx context.Context, ownerID string) ([]models.HikeRecord, error) {
	f.ownerID = ownerID
	return f.hikes, f.listErr
}

func (f *fakeTrails) TrackURL(ctx context.Context, ownerID, trailID string) (string, error) {
	f.ownerID, f.trailID = ownerID, trailID
	return f.trackURL, f.trackErr
}

type fixture struct {
	users    *fakeUsers
	profiles *fakeProfiles
	trails   *fakeTrails
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{users: &fakeUsers{}, profiles: &fakeProfiles{}, trails: &fakeTrails{}}
	h := NewHandler(f.users, f.profiles, f.trails, nil, logging.Nop())
	f.handler = NewRouter(h, RouterOptions{})
	return f
}

// do runs one request against handler; token is sent as a bearer token when
// not empty.
func do(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", common.BearerScheme+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v\nbody=%s", err, rec.Body.String())
	}
	return out
}

type panickingTrails struct{ *fakeTrails }

func (panickingTrails) ListHikes(ctx context.Context, ownerID string) ([]models.HikeRecord, error) {
	panic("boom")
}

func nopLogger() logging.Logger { return logging.Nop() }
