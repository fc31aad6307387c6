package models

import "time"

// HikeFields are the client-supplied attributes of a hike.
//
// PointsJSON is opaque to the server. PointsRaw is set when the client sent
// the points as a JSON value (array or object) instead of a JSON string;
// PointsJSON then holds that value's encoding and is written back unquoted.
type HikeFields struct {
	StartedAt  time.Time `json:"started_at" bson:"started_at"`
	EndedAt    time.Time `json:"ended_at" bson:"ended_at"`
	DistanceM  float64   `json:"distance_m" bson:"distance_m"`
	DurationS  float64   `json:"duration_s" bson:"duration_s"`
	PointsJSON string    `json:"points_json" bson:"points_json"`
	PointsRaw  bool      `json:"points_raw,omitempty" bson:"points_raw,omitempty"`
}

// HikeRecord is one hike inside a TrailLog. TrailID is unique within the
// log; CreatedAt is set once on insert and never overwritten.
type HikeRecord struct {
	TrailID    string    `json:"trailId" bson:"trailId"`
	StartedAt  time.Time `json:"started_at" bson:"started_at"`
	EndedAt    time.Time `json:"ended_at" bson:"ended_at"`
	DistanceM  float64   `json:"distance_m" bson:"distance_m"`
	DurationS  float64   `json:"duration_s" bson:"duration_s"`
	PointsJSON string    `json:"points_json" bson:"points_json"`
	PointsRaw  bool      `json:"points_raw,omitempty" bson:"points_raw,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// NewHikeRecord builds a record for first insertion at now.
func NewHikeRecord(trailID string, f HikeFields, now time.Time) HikeRecord {
	h := HikeRecord{TrailID: trailID, CreatedAt: now}
	h.Apply(f, now)
	return h
}

// Apply overwrites the client fields and stamps UpdatedAt.
func (h *HikeRecord) Apply(f HikeFields, now time.Time) {
	h.StartedAt = f.StartedAt
	h.EndedAt = f.EndedAt
	h.DistanceM = f.DistanceM
	h.DurationS = f.DurationS
	h.PointsJSON = f.PointsJSON
	h.PointsRaw = f.PointsRaw
	h.UpdatedAt = now
}

// Fields returns the client-supplied part of the record.
func (h HikeRecord) Fields() HikeFields {
	return HikeFields{
		StartedAt:  h.StartedAt,
		EndedAt:    h.EndedAt,
		DistanceM:  h.DistanceM,
		DurationS:  h.DurationS,
		PointsJSON: h.PointsJSON,
		PointsRaw:  h.PointsRaw,
	}
}

// TrailLog is the per-account container of hikes, keyed by the account id.
type TrailLog struct {
	OwnerID string       `bson:"_id"`
	Hikes   []HikeRecord `bson:"hikes"`
}
