package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/services"
	"github.com/dmitrijs2005/hikekeeper/internal/server/validation"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestPing(t *testing.T) {
	f := newFixture(t)

	rec := do(t, f.handler, http.MethodGet, "/api/ping", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestRegister(t *testing.T) {
	f := newFixture(t)

	rec := do(t, f.handler, http.MethodPost, "/api/register", "", credentialsRequest{UserName: "hiker", Password: "secret1"})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[authResponse](t, rec)
	assert.Equal(t, "User registered successfully", got.Message)
	assert.Equal(t, testToken, got.Token)
}

func TestRegister_ValidationErrors(t *testing.T) {
	f := newFixture(t)
	f.users.registerErr = &validation.Error{Problems: []string{
		"userName needs to be at least 3 characters.",
		"Password needs to be at least 6 characters.",
	}}

	rec := do(t, f.handler, http.MethodPost, "/api/register", "", credentialsRequest{UserName: "ab", Password: "123"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	newGoldie(t).Assert(t, "register_validation", rec.Body.Bytes())
}

func TestRegister_Taken(t *testing.T) {
	f := newFixture(t)
	f.users.registerErr = fmt.Errorf("create user: %w", common.ErrAlreadyExists)

	rec := do(t, f.handler, http.MethodPost, "/api/register", "", credentialsRequest{UserName: "hiker", Password: "secret1"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Account with userName already registered", decode[errorResponse](t, rec).Error)
}

func TestRegister_MalformedBody(t *testing.T) {
	f := newFixture(t)

	rec := do(t, f.handler, http.MethodPost, "/api/register", "", "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Invalid request body."}, decode[validationResponse](t, rec).Errors)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "bad credentials", err: common.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "storage down", err: common.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.users.loginErr = tt.err

			rec := do(t, f.handler, http.MethodPost, "/api/login", "", credentialsRequest{UserName: "hiker", Password: "secret1"})

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, "User logged in successfully", decode[authResponse](t, rec).Message)
			}
		})
	}
}

func TestAuthRequired(t *testing.T) {
	f := newFixture(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/profile"},
		{http.MethodPut, "/api/profile/save"},
		{http.MethodGet, "/api/trails"},
		{http.MethodPut, "/api/trails/t-1"},
		{http.MethodGet, "/api/trails/t-1/track"},
	}

	for _, p := range paths {
		rec := do(t, f.handler, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, p.path)

		rec = do(t, f.handler, p.method, p.path, "forged", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, p.path)
	}
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	height := int64(1778)
	unit := models.UnitImperial
	f.profiles.profile = &models.Profile{
		ID:         "user-1",
		UserName:   "hiker",
		Mode:       models.ModeRegistered,
		HeightMm:   &height,
		Unit:       &unit,
		CreatedAt:  time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC),
		LastActive: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
	}

	rec := do(t, f.handler, http.MethodGet, "/api/profile", testToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", f.profiles.ownerID)
	newGoldie(t).Assert(t, "profile", rec.Body.Bytes())
}

func TestGetProfile_NotFound(t *testing.T) {
	f := newFixture(t)
	f.profiles.getErr = common.ErrNotFound

	rec := do(t, f.handler, http.MethodGet, "/api/profile", testToken, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode[errorResponse](t, rec).Error)
}

func TestSaveProfile(t *testing.T) {
	f := newFixture(t)

	body := `{"password":null,"heightFeetNum":5,"heightInchesNum":10,"weightNum":null,"isMetric":false,"isPace":true}`
	rec := do(t, f.handler, http.MethodPut, "/api/profile/save", testToken, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile updated successfully", decode[messageResponse](t, rec).Message)

	require.NotNil(t, f.profiles.saved)
	in := f.profiles.saved
	assert.Nil(t, in.Password)
	require.NotNil(t, in.HeightFeet)
	assert.Equal(t, 5.0, *in.HeightFeet)
	require.NotNil(t, in.HeightInches)
	assert.Equal(t, 10.0, *in.HeightInches)
	assert.Nil(t, in.Weight)
	assert.False(t, in.IsMetric)
	assert.True(t, in.IsPace)
}

func TestSaveProfile_AbsentFieldsAreNull(t *testing.T) {
	f := newFixture(t)

	rec := do(t, f.handler, http.MethodPut, "/api/profile/save", testToken, `{"password":"newsecret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	in := f.profiles.saved
	require.NotNil(t, in.Password)
	assert.Equal(t, "newsecret", *in.Password)
	assert.Nil(t, in.HeightFeet)
	assert.Nil(t, in.Weight)
}

func TestSaveProfile_Validation(t *testing.T) {
	f := newFixture(t)
	f.profiles.saveErr = &validation.Error{Problems: []string{"At least one field must be provided to update."}}

	rec := do(t, f.handler, http.MethodPut, "/api/profile/save", testToken, `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"At least one field must be provided to update."}, decode[validationResponse](t, rec).Errors)
}

func TestListHikes(t *testing.T) {
	f := newFixture(t)
	stamp := time.Date(2025, 6, 1, 9, 5, 0, 0, time.UTC)
	f.trails.hikes = []models.HikeRecord{{
		TrailID:    "t-1",
		StartedAt:  time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC),
		EndedAt:    time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		DistanceM:  8000.5,
		DurationS:  5400,
		PointsJSON: "[[1,2]]",
		CreatedAt:  stamp,
		UpdatedAt:  stamp,
	}}

	rec := do(t, f.handler, http.MethodGet, "/api/trails", testToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	newGoldie(t).Assert(t, "trails", rec.Body.Bytes())
}

func TestListHikes_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "no log", err: common.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: "Trails do not exist"},
		{name: "storage", err: fmt.Errorf("%w: get: boom", common.ErrStorageUnavailable), wantStatus: http.StatusServiceUnavailable, wantMsg: "Storage unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.trails.listErr = tt.err

			rec := do(t, f.handler, http.MethodGet, "/api/trails", testToken, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decode[errorResponse](t, rec).Error)
		})
	}
}

func TestRecordHike(t *testing.T) {
	tests := []struct {
		name       string
		outcome    services.Outcome
		wantStatus int
		golden     string
	}{
		{name: "inserted", outcome: services.OutcomeInserted, wantStatus: http.StatusOK, golden: "record_inserted"},
		{name: "updated", outcome: services.OutcomeUpdated, wantStatus: http.StatusOK, golden: "record_updated"},
		{name: "not found", outcome: services.OutcomeNotFound, wantStatus: http.StatusNotFound, golden: "record_not_found"},
	}

	body := `{"started_at":"2025-06-01T07:30:00Z","ended_at":"2025-06-01T09:00:00Z","distance_m":8000.5,"duration_s":5400,"points_json":"[[1,2]]"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.trails.outcome = tt.outcome

			rec := do(t, f.handler, http.MethodPut, "/api/trails/t-1", testToken, body)

			require.Equal(t, tt.wantStatus, rec.Code)
			newGoldie(t).Assert(t, tt.golden, rec.Body.Bytes())

			assert.Equal(t, "user-1", f.trails.ownerID)
			assert.Equal(t, "t-1", f.trails.trailID)
			assert.Equal(t, 8000.5, f.trails.fields.DistanceM)
			assert.Equal(t, "[[1,2]]", f.trails.fields.PointsJSON)
			assert.False(t, f.trails.fields.PointsRaw)
			assert.True(t, f.trails.fields.StartedAt.Equal(time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC)))
		})
	}
}

func TestRecordHike_RawPoints(t *testing.T) {
	f := newFixture(t)
	f.trails.outcome = services.OutcomeInserted

	rec := do(t, f.handler, http.MethodPut, "/api/trails/t-1", testToken, `{"points_json":[ [1,2], [3,4] ]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[[1,2],[3,4]]", f.trails.fields.PointsJSON)
	assert.True(t, f.trails.fields.PointsRaw)
}

func TestListHikes_RawPointsUnquoted(t *testing.T) {
	f := newFixture(t)
	f.trails.hikes = []models.HikeRecord{
		{TrailID: "raw", PointsJSON: `[{"lat":1,"lng":2}]`, PointsRaw: true},
		{TrailID: "text", PointsJSON: `[{"lat":1,"lng":2}]`},
		{TrailID: "empty"},
	}

	rec := do(t, f.handler, http.MethodGet, "/api/trails", testToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.JSONEq(t, `[{"lat":1,"lng":2}]`, string(got[0]["points_json"]))
	assert.Equal(t, `"[{\"lat\":1,\"lng\":2}]"`, string(got[1]["points_json"]))
	assert.Equal(t, `""`, string(got[2]["points_json"]))
}

func TestSplitPoints(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantRaw bool
	}{
		{name: "absent", in: "", want: ""},
		{name: "null", in: "null", want: ""},
		{name: "string", in: `"[[1,2]]"`, want: "[[1,2]]"},
		{name: "array", in: ` [ [1, 2] ] `, want: "[[1,2]]", wantRaw: true},
		{name: "object", in: `{"type": "LineString"}`, want: `{"type":"LineString"}`, wantRaw: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, raw := splitPoints(json.RawMessage(tt.in))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRaw, raw)
		})
	}
}

func TestRecordHike_StorageUnavailable(t *testing.T) {
	f := newFixture(t)
	f.trails.recErr = fmt.Errorf("%w: append: boom", common.ErrStorageUnavailable)

	rec := do(t, f.handler, http.MethodPut, "/api/trails/t-1", testToken, `{}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTrackURL(t *testing.T) {
	f := newFixture(t)
	f.trails.trackURL = "http://s3.local/tracks/user-1/t-1.json?X-Amz-Expires=900"

	rec := do(t, f.handler, http.MethodGet, "/api/trails/t-1/track", testToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, f.trails.trackURL, decode[trackResponse](t, rec).URL)
	assert.Equal(t, "t-1", f.trails.trailID)

	f.trails.trackErr = common.ErrNotFound
	rec = do(t, f.handler, http.MethodGet, "/api/trails/t-1/track", testToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t)

	rec := do(t, f.handler, http.MethodGet, "/api/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decode[errorResponse](t, rec).Error)
}
