// Package hikes is the local outbox of hikes recorded on this device.
package hikes

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
)

var ErrNotFound = errors.New("hike not found")

type Repository interface {
	// Save inserts or replaces a hike and marks it pending.
	Save(ctx context.Context, h *models.Hike) error
	Get(ctx context.Context, trailID string) (*models.Hike, error)
	// List returns all hikes ordered by start time.
	List(ctx context.Context) ([]models.Hike, error)
	// ListPending returns hikes that still need to be pushed, including
	// ones whose last push failed.
	ListPending(ctx context.Context) ([]models.Hike, error)
	MarkSynced(ctx context.Context, trailID string, at time.Time) error
	MarkFailed(ctx context.Context, trailID string, reason string, at time.Time) error
}
