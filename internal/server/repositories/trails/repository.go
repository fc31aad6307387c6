// Package trails stores per-account trail logs. Every operation touches a
// single TrailLog document, and each write is one atomic statement against
// it: the store's single-document atomicity is what keeps trailId unique
// inside a log.
package trails

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
)

type Repository interface {
	// AppendIfAbsent creates the owner's log when missing and appends hike
	// unless an element with hike.TrailID is already present. It reports
	// whether the log was structurally modified. Losing a concurrent
	// insert race is reported as (false, nil).
	AppendIfAbsent(ctx context.Context, ownerID string, hike models.HikeRecord) (bool, error)

	// UpdateMatching overwrites the client fields of the element with
	// trailID and sets its UpdatedAt to now, leaving CreatedAt untouched.
	// It reports whether such an element was found.
	UpdateMatching(ctx context.Context, ownerID, trailID string, fields models.HikeFields, now time.Time) (bool, error)

	// Get returns the owner's log or common.ErrNotFound.
	Get(ctx context.Context, ownerID string) (*models.TrailLog, error)
}
