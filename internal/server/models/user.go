package models

import "time"

// User is a registered account. UserName is stored case-folded.
type User struct {
	ID           string    `db:"id" bson:"_id"`
	UserName     string    `db:"username" bson:"userName"`
	PasswordHash string    `db:"password_hash" bson:"password"`
	CreatedAt    time.Time `db:"created_at" bson:"createdAt"`
}
