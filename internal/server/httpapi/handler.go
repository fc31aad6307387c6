package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/nullable"

	"github.com/dmitrijs2005/hikekeeper/internal/logging"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/services"
)

type userService interface {
	Register(ctx context.Context, userName, password string) (string, error)
	Login(ctx context.Context, userName, password string) (string, error)
	Authorize(ctx context.Context, token string) (string, error)
}

type profileService interface {
	Get(ctx context.Context, ownerID string) (*models.Profile, error)
	Save(ctx context.Context, ownerID string, in services.ProfileInput) error
}

type trailService interface {
	RecordHike(ctx context.Context, ownerID, trailID string, fields models.HikeFields) (services.Outcome, error)
	ListHikes(ctx context.Context, ownerID string) ([]models.HikeRecord, error)
	TrackURL(ctx context.Context, ownerID, trailID string) (string, error)
}

// Handler serves the JSON API consumed by the mobile and web clients.
type Handler struct {
	users    userService
	profiles profileService
	trails   trailService
	icons    *IconProxy
	logger   logging.Logger
}

func NewHandler(us userService, ps profileService, ts trailService, icons *IconProxy, logger logging.Logger) *Handler {
	return &Handler{users: us, profiles: ps, trails: ts, icons: icons, logger: logger}
}

type credentialsRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type profileResponse struct {
	ID             string                    `json:"_id"`
	UserName       string                    `json:"userName"`
	Mode           string                    `json:"mode"`
	Height         nullable.Nullable[int64]  `json:"height"`
	Weight         nullable.Nullable[int64]  `json:"weight"`
	Unit           nullable.Nullable[string] `json:"unit"`
	TimePreference nullable.Nullable[string] `json:"timePreference"`
	CreatedAt      time.Time                 `json:"createdAt"`
	LastActive     time.Time                 `json:"lastActive"`
}

// saveProfileRequest distinguishes explicit nulls from values; absent fields
// are treated as null.
type saveProfileRequest struct {
	Password        nullable.Nullable[string]  `json:"password"`
	HeightFeetNum   nullable.Nullable[float64] `json:"heightFeetNum"`
	HeightInchesNum nullable.Nullable[float64] `json:"heightInchesNum"`
	WeightNum       nullable.Nullable[float64] `json:"weightNum"`
	IsMetric        bool                       `json:"isMetric"`
	IsPace          bool                       `json:"isPace"`
}

type hikeRequest struct {
	StartedAt  time.Time       `json:"started_at"`
	EndedAt    time.Time       `json:"ended_at"`
	DistanceM  float64         `json:"distance_m"`
	DurationS  float64         `json:"duration_s"`
	PointsJSON json.RawMessage `json:"points_json"`
}

// hikeResponse writes points_json back in the form it was recorded in.
type hikeResponse struct {
	TrailID    string          `json:"trailId"`
	StartedAt  time.Time       `json:"started_at"`
	EndedAt    time.Time       `json:"ended_at"`
	DistanceM  float64         `json:"distance_m"`
	DurationS  float64         `json:"duration_s"`
	PointsJSON json.RawMessage `json:"points_json"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type recordHikeResponse struct {
	Inserted bool `json:"inserted,omitempty"`
	Updated  bool `json:"updated,omitempty"`
}

type trackResponse struct {
	URL string `json:"url"`
}

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.users.Register(r.Context(), req.UserName, req.Password)
	if err != nil {
		h.logger.Warn(r.Context(), "registration failed", "error", err)
		writeServiceError(w, err, "Not found")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Message: "User registered successfully", Token: token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.users.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		writeServiceError(w, err, "Not found")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Message: "User logged in successfully", Token: token})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	p, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req saveProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.profiles.Save(r.Context(), userID, services.ProfileInput{
		Password:     valueOrNil(req.Password),
		HeightFeet:   valueOrNil(req.HeightFeetNum),
		HeightInches: valueOrNil(req.HeightInchesNum),
		Weight:       valueOrNil(req.WeightNum),
		IsMetric:     req.IsMetric,
		IsPace:       req.IsPace,
	})
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Profile updated successfully"})
}

func (h *Handler) ListHikes(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	hikes, err := h.trails.ListHikes(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Trails do not exist")
		return
	}

	out := make([]hikeResponse, 0, len(hikes))
	for _, hk := range hikes {
		out = append(out, toHikeResponse(hk))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) RecordHike(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	trailID := chi.URLParam(r, "trailID")

	var req hikeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	points, raw := splitPoints(req.PointsJSON)
	outcome, err := h.trails.RecordHike(r.Context(), userID, trailID, models.HikeFields{
		StartedAt:  req.StartedAt,
		EndedAt:    req.EndedAt,
		DistanceM:  req.DistanceM,
		DurationS:  req.DurationS,
		PointsJSON: points,
		PointsRaw:  raw,
	})
	if err != nil {
		writeServiceError(w, err, "Hike not found for update.")
		return
	}

	switch outcome {
	case services.OutcomeInserted:
		writeJSON(w, http.StatusOK, recordHikeResponse{Inserted: true})
	case services.OutcomeUpdated:
		writeJSON(w, http.StatusOK, recordHikeResponse{Updated: true})
	default:
		writeError(w, http.StatusNotFound, "Hike not found for update.")
	}
}

func (h *Handler) TrackURL(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	u, err := h.trails.TrackURL(r.Context(), userID, chi.URLParam(r, "trailID"))
	if err != nil {
		writeServiceError(w, err, "Track not found")
		return
	}

	writeJSON(w, http.StatusOK, trackResponse{URL: u})
}

func toProfileResponse(p *models.Profile) profileResponse {
	out := profileResponse{
		ID:             p.ID,
		UserName:       p.UserName,
		Mode:           p.Mode,
		Height:         nullableOf(p.HeightMm),
		Weight:         nullableOf(p.WeightGrams),
		Unit:           nullable.NewNullNullable[string](),
		TimePreference: nullable.NewNullNullable[string](),
		CreatedAt:      p.CreatedAt,
		LastActive:     p.LastActive,
	}
	if p.Unit != nil {
		out.Unit.Set(string(*p.Unit))
	}
	if p.TimePreference != nil {
		out.TimePreference.Set(string(*p.TimePreference))
	}
	return out
}

func nullableOf[T any](p *T) nullable.Nullable[T] {
	if p == nil {
		return nullable.NewNullNullable[T]()
	}
	return nullable.NewNullableWithValue(*p)
}

func valueOrNil[T any](n nullable.Nullable[T]) *T {
	v, err := n.Get()
	if err != nil {
		return nil
	}
	return &v
}

// splitPoints accepts the recorded path either as a JSON string or as a
// JSON value. A string is stored unquoted; any other value is stored as
// compact JSON and reported raw.
func splitPoints(in json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(in)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, false
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed), true
	}
	return buf.String(), true
}

// joinPoints is the inverse of splitPoints.
func joinPoints(points string, raw bool) json.RawMessage {
	if raw && json.Valid([]byte(points)) {
		return json.RawMessage(points)
	}
	quoted, _ := json.Marshal(points)
	return quoted
}

func toHikeResponse(h models.HikeRecord) hikeResponse {
	return hikeResponse{
		TrailID:    h.TrailID,
		StartedAt:  h.StartedAt,
		EndedAt:    h.EndedAt,
		DistanceM:  h.DistanceM,
		DurationS:  h.DurationS,
		PointsJSON: joinPoints(h.PointsJSON, h.PointsRaw),
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

const maxBodyBytes = 4 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, validationResponse{Errors: []string{"Invalid request body."}})
		return false
	}
	return true
}
