package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/logging"
	"github.com/dmitrijs2005/hikekeeper/internal/server/archive"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hikekeeper/internal/server/validation"
)

// Outcome is the result of RecordHike.
type Outcome int

const (
	OutcomeInserted Outcome = iota + 1
	OutcomeUpdated
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeUpdated:
		return "updated"
	case OutcomeNotFound:
		return "notFound"
	default:
		return "unknown"
	}
}

// TrailService keeps every account's trail log free of duplicate trailIds
// while letting clients re-send hikes freely. It holds no locks; each write
// is a single atomic operation on the owner's log in the store.
type TrailService struct {
	repos   repomanager.Repositories
	archive archive.TrackArchive
	clock   Clock
	logger  logging.Logger
}

// NewTrailService builds the service. archive may be nil.
func NewTrailService(repos repomanager.Repositories, a archive.TrackArchive, logger logging.Logger) *TrailService {
	return &TrailService{
		repos:   repos,
		archive: a,
		clock:   SystemClock,
		logger:  logger.With("module", "trails"),
	}
}

// RecordHike upserts the hike identified by trailID into the owner's log.
//
// A first attempt appends the hike if no element carries trailID (creating
// the log if needed). When nothing was appended an element with trailID
// exists, or a concurrent caller just added it, so the second attempt
// overwrites its fields in place. OutcomeNotFound means neither attempt
// touched the log.
//
// Storage failures match common.ErrStorageUnavailable and are not retried.
func (s *TrailService) RecordHike(ctx context.Context, ownerID, trailID string, fields models.HikeFields) (Outcome, error) {
	if strings.TrimSpace(trailID) == "" {
		return 0, &validation.Error{Problems: []string{"trailId is required."}}
	}

	now := s.clock.Now().UTC().Truncate(time.Millisecond)

	inserted, err := s.insertIfAbsent(ctx, ownerID, trailID, fields, now)
	if err != nil {
		return 0, s.storageError(ctx, "append hike", err)
	}
	if inserted {
		s.archiveTrack(ctx, ownerID, trailID, fields)
		return OutcomeInserted, nil
	}

	updated, err := s.updateExisting(ctx, ownerID, trailID, fields, now)
	if err != nil {
		return 0, s.storageError(ctx, "update hike", err)
	}
	if !updated {
		s.logger.Warn(ctx, "hike neither appended nor updated", "userId", ownerID, "trailId", trailID)
		return OutcomeNotFound, nil
	}

	s.archiveTrack(ctx, ownerID, trailID, fields)
	return OutcomeUpdated, nil
}

func (s *TrailService) insertIfAbsent(ctx context.Context, ownerID, trailID string, fields models.HikeFields, now time.Time) (bool, error) {
	return s.repos.Trails().AppendIfAbsent(ctx, ownerID, models.NewHikeRecord(trailID, fields, now))
}

func (s *TrailService) updateExisting(ctx context.Context, ownerID, trailID string, fields models.HikeFields, now time.Time) (bool, error) {
	return s.repos.Trails().UpdateMatching(ctx, ownerID, trailID, fields, now)
}

// ListHikes returns the owner's hikes in log order, or common.ErrNotFound
// when the owner has never recorded one.
func (s *TrailService) ListHikes(ctx context.Context, ownerID string) ([]models.HikeRecord, error) {
	log, err := s.repos.Trails().Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, s.storageError(ctx, "get trail log", err)
	}

	if log.Hikes == nil {
		return []models.HikeRecord{}, nil
	}
	return log.Hikes, nil
}

// TrackURL returns a temporary download link for the archived track of
// one of the owner's hikes. It fails with common.ErrNotFound when the
// archive is disabled or the hike does not exist.
func (s *TrailService) TrackURL(ctx context.Context, ownerID, trailID string) (string, error) {
	if s.archive == nil {
		return "", common.ErrNotFound
	}

	hikes, err := s.ListHikes(ctx, ownerID)
	if err != nil {
		return "", err
	}

	for _, h := range hikes {
		if h.TrailID != trailID {
			continue
		}
		url, err := s.archive.PresignGet(ctx, ownerID, trailID)
		if err != nil {
			s.logger.Error(ctx, "presign track failed", "userId", ownerID, "trailId", trailID, "error", err)
			return "", fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
		}
		return url, nil
	}

	return "", common.ErrNotFound
}

// archiveTrack copies the points to the archive after the log write. The
// copy is best effort and unordered: concurrent writers of one trail may
// leave the archive holding the points of the writer whose upload landed
// last rather than those of the committed record.
func (s *TrailService) archiveTrack(ctx context.Context, ownerID, trailID string, fields models.HikeFields) {
	if s.archive == nil || fields.PointsJSON == "" {
		return
	}
	if err := s.archive.Store(ctx, ownerID, trailID, fields.PointsJSON); err != nil {
		s.logger.Warn(ctx, "track archive failed", "userId", ownerID, "trailId", trailID, "error", err)
	}
}

func (s *TrailService) storageError(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, op+" failed", "error", err)
	return fmt.Errorf("%w: %s: %w", common.ErrStorageUnavailable, op, err)
}
