// Package profiles stores per-account profiles keyed by account id.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Profile) error
	Get(ctx context.Context, id string) (*models.Profile, error)
	// UpdateMeasurements overwrites every measurement field, including
	// clearing the ones passed as nil. It returns common.ErrNotFound when
	// no profile exists for id.
	UpdateMeasurements(ctx context.Context, id string, m models.Measurements) error
}
