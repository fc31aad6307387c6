// Package models defines client-side data models used by the hikectl CLI.
package models

import "time"

// SyncStatus tracks a locally recorded hike through the outbox.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
)

// Hike is a hike recorded on this device. TrailID is the client-chosen key
// sent to the server; recording the same TrailID again replaces the local
// copy and queues it for another push.
type Hike struct {
	TrailID    string     `json:"trailId"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    time.Time  `json:"ended_at"`
	DistanceM  float64    `json:"distance_m"`
	DurationS  float64    `json:"duration_s"`
	PointsJSON string     `json:"points_json"`
	Status     SyncStatus `json:"status"`
	LastError  string     `json:"last_error,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Profile is the account profile as shown by the CLI. Height is in
// millimetres and Weight in grams.
type Profile struct {
	ID             string    `json:"_id"`
	UserName       string    `json:"userName"`
	Mode           string    `json:"mode"`
	Height         *int64    `json:"height"`
	Weight         *int64    `json:"weight"`
	Unit           *string   `json:"unit"`
	TimePreference *string   `json:"timePreference"`
	CreatedAt      time.Time `json:"createdAt"`
	LastActive     time.Time `json:"lastActive"`
}

// ProfileUpdate carries the fields of a profile save. Nil pointers are sent
// as null and clear the stored value.
type ProfileUpdate struct {
	Password     *string
	HeightFeet   *float64
	HeightInches *float64
	Weight       *float64
	IsMetric     bool
	IsPace       bool
}

// RecordOutcome is the server's answer to pushing one hike.
type RecordOutcome string

const (
	RecordInserted RecordOutcome = "inserted"
	RecordUpdated  RecordOutcome = "updated"
)
