package models

import "time"

// ModeRegistered is the mode every profile starts with.
const ModeRegistered = "registered"

type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

type TimePreference string

const (
	TimePreferencePace  TimePreference = "pace"
	TimePreferenceSpeed TimePreference = "speed"
)

// Profile holds per-account display settings and body measurements.
// Measurement fields are nil until the user saves them.
type Profile struct {
	ID             string          `db:"id" bson:"_id"`
	UserName       string          `db:"username" bson:"userName"`
	Mode           string          `db:"mode" bson:"mode"`
	HeightMm       *int64          `db:"height_mm" bson:"height"`
	WeightGrams    *int64          `db:"weight_g" bson:"weight"`
	Unit           *Unit           `db:"unit" bson:"unit"`
	TimePreference *TimePreference `db:"time_preference" bson:"timePreference"`
	CreatedAt      time.Time       `db:"created_at" bson:"createdAt"`
	LastActive     time.Time       `db:"last_active" bson:"lastActive"`
}

// NewProfile returns the profile created alongside a fresh account.
func NewProfile(u *User) *Profile {
	return &Profile{
		ID:         u.ID,
		UserName:   u.UserName,
		Mode:       ModeRegistered,
		CreatedAt:  u.CreatedAt,
		LastActive: u.CreatedAt,
	}
}

// Measurements is the full set of fields overwritten by a profile save.
type Measurements struct {
	HeightMm       *int64
	WeightGrams    *int64
	Unit           Unit
	TimePreference TimePreference
}
