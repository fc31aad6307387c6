package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/hikekeeper/internal/client/client"
	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
	"github.com/dmitrijs2005/hikekeeper/internal/client/repositories/hikes"
	"github.com/dmitrijs2005/hikekeeper/internal/client/repositories/metadata"
)

var ErrTrailIDRequired = errors.New("trail id is required")

// SyncFailure describes a hike the server refused.
type SyncFailure struct {
	TrailID string `json:"trailId"`
	Reason  string `json:"reason"`
}

// SyncReport summarizes one push of the outbox.
type SyncReport struct {
	Inserted int           `json:"inserted"`
	Updated  int           `json:"updated"`
	Failed   []SyncFailure `json:"failed"`
}

// HikeService records hikes into the local outbox and pushes them to the
// server. Pushing is safe to repeat: the server treats a known TrailID as an
// update.
type HikeService interface {
	Record(ctx context.Context, h models.Hike) error
	ListLocal(ctx context.Context) ([]models.Hike, error)
	ListRemote(ctx context.Context) ([]models.Hike, error)
	Sync(ctx context.Context) (SyncReport, error)
}

type hikeService struct {
	client client.Client
	db     *sqlx.DB
	now    func() time.Time
}

func NewHikeService(client client.Client, db *sqlx.DB) HikeService {
	return &hikeService{client: client, db: db, now: time.Now}
}

func (s *hikeService) getHikesRepo() hikes.Repository {
	return hikes.NewSQLiteRepository(s.db)
}

func (s *hikeService) Record(ctx context.Context, h models.Hike) error {
	h.TrailID = strings.TrimSpace(h.TrailID)
	if h.TrailID == "" {
		return ErrTrailIDRequired
	}
	h.UpdatedAt = s.now().UTC()

	return s.getHikesRepo().Save(ctx, &h)
}

func (s *hikeService) ListLocal(ctx context.Context) ([]models.Hike, error) {
	return s.getHikesRepo().List(ctx)
}

// ListRemote returns the hikes stored on the server. An account that never
// synced a hike has no trail log yet, which is reported as an empty list.
func (s *hikeService) ListRemote(ctx context.Context) ([]models.Hike, error) {
	if err := authorize(ctx, metadata.NewSQLiteRepository(s.db), s.client); err != nil {
		return nil, err
	}

	list, err := s.client.ListHikes(ctx)
	if errors.Is(err, client.ErrNotFound) {
		return []models.Hike{}, nil
	}
	return list, err
}

// Sync pushes every pending hike. Hikes the server rejects are marked failed
// and skipped; losing the server or the session stops the run and leaves the
// remaining hikes pending.
func (s *hikeService) Sync(ctx context.Context) (SyncReport, error) {
	report := SyncReport{Failed: []SyncFailure{}}

	if err := authorize(ctx, metadata.NewSQLiteRepository(s.db), s.client); err != nil {
		return report, err
	}

	repo := s.getHikesRepo()
	pending, err := repo.ListPending(ctx)
	if err != nil {
		return report, err
	}

	for _, h := range pending {
		outcome, err := s.client.RecordHike(ctx, h)
		if err != nil {
			if errors.Is(err, client.ErrUnavailable) || errors.Is(err, client.ErrUnauthorized) {
				return report, fmt.Errorf("sync %s: %w", h.TrailID, err)
			}
			if err := repo.MarkFailed(ctx, h.TrailID, err.Error(), s.now().UTC()); err != nil {
				return report, err
			}
			report.Failed = append(report.Failed, SyncFailure{TrailID: h.TrailID, Reason: err.Error()})
			continue
		}

		if err := repo.MarkSynced(ctx, h.TrailID, s.now().UTC()); err != nil {
			return report, err
		}
		switch outcome {
		case models.RecordInserted:
			report.Inserted++
		case models.RecordUpdated:
			report.Updated++
		}
	}

	return report, nil
}
