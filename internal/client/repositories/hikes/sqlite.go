package hikes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
	"github.com/dmitrijs2005/hikekeeper/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// hikeRow mirrors the hikes table. Times are stored as unix milliseconds.
type hikeRow struct {
	TrailID     string  `db:"trail_id"`
	StartedAtMs int64   `db:"started_at_ms"`
	EndedAtMs   int64   `db:"ended_at_ms"`
	DistanceM   float64 `db:"distance_m"`
	DurationS   float64 `db:"duration_s"`
	PointsJSON  string  `db:"points_json"`
	Status      string  `db:"status"`
	LastError   string  `db:"last_error"`
	UpdatedAtMs int64   `db:"updated_at_ms"`
}

func (r hikeRow) toModel() models.Hike {
	return models.Hike{
		TrailID:    r.TrailID,
		StartedAt:  time.UnixMilli(r.StartedAtMs).UTC(),
		EndedAt:    time.UnixMilli(r.EndedAtMs).UTC(),
		DistanceM:  r.DistanceM,
		DurationS:  r.DurationS,
		PointsJSON: r.PointsJSON,
		Status:     models.SyncStatus(r.Status),
		LastError:  r.LastError,
		UpdatedAt:  time.UnixMilli(r.UpdatedAtMs).UTC(),
	}
}

const selectHikes = `SELECT trail_id, started_at_ms, ended_at_ms, distance_m, duration_s,
	points_json, status, last_error, updated_at_ms FROM hikes`

func (r *SQLiteRepository) Save(ctx context.Context, h *models.Hike) error {
	query := `INSERT INTO hikes (trail_id, started_at_ms, ended_at_ms, distance_m, duration_s,
			points_json, status, last_error, updated_at_ms)
		VALUES (?, ?, ?, ?, ?, ?, 'pending', '', ?)
		ON CONFLICT(trail_id) DO UPDATE SET
			started_at_ms = excluded.started_at_ms,
			ended_at_ms   = excluded.ended_at_ms,
			distance_m    = excluded.distance_m,
			duration_s    = excluded.duration_s,
			points_json   = excluded.points_json,
			status        = 'pending',
			last_error    = '',
			updated_at_ms = excluded.updated_at_ms`

	_, err := r.db.ExecContext(ctx, query,
		h.TrailID, h.StartedAt.UnixMilli(), h.EndedAt.UnixMilli(), h.DistanceM, h.DurationS,
		h.PointsJSON, h.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save hike: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, trailID string) (*models.Hike, error) {
	var row hikeRow
	err := sqlx.GetContext(ctx, r.db, &row, selectHikes+` WHERE trail_id = ?`, trailID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hike: %w", err)
	}
	h := row.toModel()
	return &h, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Hike, error) {
	return r.selectMany(ctx, selectHikes+` ORDER BY started_at_ms, trail_id`)
}

func (r *SQLiteRepository) ListPending(ctx context.Context) ([]models.Hike, error) {
	return r.selectMany(ctx, selectHikes+` WHERE status <> 'synced' ORDER BY updated_at_ms, trail_id`)
}

func (r *SQLiteRepository) selectMany(ctx context.Context, query string) ([]models.Hike, error) {
	var rows []hikeRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to select hikes: %w", err)
	}

	result := make([]models.Hike, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toModel())
	}
	return result, nil
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, trailID string, at time.Time) error {
	return r.setStatus(ctx, trailID, models.SyncSynced, "", at)
}

func (r *SQLiteRepository) MarkFailed(ctx context.Context, trailID string, reason string, at time.Time) error {
	return r.setStatus(ctx, trailID, models.SyncFailed, reason, at)
}

func (r *SQLiteRepository) setStatus(ctx context.Context, trailID string, status models.SyncStatus, reason string, at time.Time) error {
	query := `UPDATE hikes SET status = ?, last_error = ?, updated_at_ms = ? WHERE trail_id = ?`
	result, err := r.db.ExecContext(ctx, query, string(status), reason, at.UnixMilli(), trailID)
	if err != nil {
		return fmt.Errorf("failed to update hike status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected != 1 {
		return ErrNotFound
	}
	return nil
}
