package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hikekeeper/internal/logging"
	"github.com/dmitrijs2005/hikekeeper/internal/server/config"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hikekeeper/internal/server/services"
)

func newMemoryRouter(t *testing.T) http.Handler {
	t.Helper()

	m := repomanager.NewMemoryRepositoryManager()
	cfg := &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour, PasswordHashCost: 4}
	h := NewHandler(
		services.NewUserService(m, cfg, logging.Nop()),
		services.NewProfileService(m, cfg, logging.Nop()),
		services.NewTrailService(m, nil, logging.Nop()),
		nil,
		logging.Nop(),
	)
	return NewRouter(h, RouterOptions{})
}

func TestEndToEnd_HikeSync(t *testing.T) {
	router := newMemoryRouter(t)

	rec := do(t, router, http.MethodPost, "/api/register", "", credentialsRequest{UserName: "Hiker", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode[authResponse](t, rec).Token
	require.NotEmpty(t, token)

	rec = do(t, router, http.MethodGet, "/api/trails", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/trails/t-1", token, `{"distance_m":100,"points_json":"[]"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[recordHikeResponse](t, rec).Inserted)

	rec = do(t, router, http.MethodPut, "/api/trails/t-1", token, `{"distance_m":250,"points_json":"[]"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[recordHikeResponse](t, rec).Updated)

	rec = do(t, router, http.MethodGet, "/api/trails", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hikes := decode[[]models.HikeRecord](t, rec)
	require.Len(t, hikes, 1)
	assert.Equal(t, "t-1", hikes[0].TrailID)
	assert.Equal(t, 250.0, hikes[0].DistanceM)
	assert.False(t, hikes[0].UpdatedAt.Before(hikes[0].CreatedAt))

	rec = do(t, router, http.MethodPost, "/api/login", "", credentialsRequest{UserName: "hiker", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEndToEnd_PointsKeepTheirForm(t *testing.T) {
	router := newMemoryRouter(t)

	rec := do(t, router, http.MethodPost, "/api/register", "", credentialsRequest{UserName: "tracker", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[authResponse](t, rec).Token

	rec = do(t, router, http.MethodPut, "/api/trails/as-array", token, `{"points_json":[{"lat":1,"lng":2}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, http.MethodPut, "/api/trails/as-string", token, `{"points_json":"[{\"lat\":1,\"lng\":2}]"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/trails", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hikes []struct {
		TrailID    string          `json:"trailId"`
		PointsJSON json.RawMessage `json:"points_json"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hikes))
	require.Len(t, hikes, 2)
	assert.Equal(t, "as-array", hikes[0].TrailID)
	assert.Equal(t, `[{"lat":1,"lng":2}]`, string(hikes[0].PointsJSON))
	assert.Equal(t, "as-string", hikes[1].TrailID)
	assert.Equal(t, `"[{\"lat\":1,\"lng\":2}]"`, string(hikes[1].PointsJSON))

	rec = do(t, router, http.MethodPut, "/api/trails/as-array", token, `{"points_json":"[]"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, http.MethodGet, "/api/trails", token, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hikes))
	assert.Equal(t, `"[]"`, string(hikes[0].PointsJSON))
}

func TestEndToEnd_LongPasswordRejected(t *testing.T) {
	router := newMemoryRouter(t)
	long := strings.Repeat("p", 80)

	rec := do(t, router, http.MethodPost, "/api/register", "", credentialsRequest{UserName: "hiker", Password: long})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"Password must be at most 72 bytes."}, decode[validationResponse](t, rec).Errors)

	rec = do(t, router, http.MethodPost, "/api/register", "", credentialsRequest{UserName: "hiker", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[authResponse](t, rec).Token

	rec = do(t, router, http.MethodPut, "/api/profile/save", token, map[string]any{"password": long})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestEndToEnd_Profile(t *testing.T) {
	router := newMemoryRouter(t)

	rec := do(t, router, http.MethodPost, "/api/register", "", credentialsRequest{UserName: "walker", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[authResponse](t, rec).Token

	rec = do(t, router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[map[string]any](t, rec)
	assert.Equal(t, "registered", p["mode"])
	assert.Nil(t, p["height"])
	assert.Contains(t, p, "height")

	rec = do(t, router, http.MethodPut, "/api/profile/save", token, `{"heightFeetNum":5,"heightInchesNum":11,"weightNum":75,"isMetric":true,"isPace":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	p = decode[map[string]any](t, rec)
	assert.Equal(t, "metric", p["unit"])
	assert.Equal(t, "speed", p["timePreference"])
	assert.NotNil(t, p["height"])

	rec = do(t, router, http.MethodPost, "/api/register", "", credentialsRequest{UserName: "WALKER", Password: "secret1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Account with userName already registered", decode[errorResponse](t, rec).Error)
}
