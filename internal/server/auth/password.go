package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost matches the work factor existing accounts were hashed with.
const DefaultHashCost = 10

// dummyHash is compared against when the account does not exist, so an
// unknown user name costs as much as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hikekeeper-dummy-password"), DefaultHashCost)

// HashPassword returns the bcrypt hash of password at the given cost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultHashCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnCompare performs a comparison against a fixed hash and discards the
// result.
func BurnCompare(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
