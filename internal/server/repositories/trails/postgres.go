package trails

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/dbx"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
)

// PostgresRepository keeps one trail_logs row per owner with the hikes in a
// JSONB array. Both writes are single statements, so the row lock taken by
// Postgres serializes concurrent writers of the same log.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// hikePatch is merged over the stored element on update. It has no
// trailId or created_at so those keep their stored values.
type hikePatch struct {
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
	DistanceM  float64   `json:"distance_m"`
	DurationS  float64   `json:"duration_s"`
	PointsJSON string    `json:"points_json"`
	PointsRaw  bool      `json:"points_raw"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *PostgresRepository) AppendIfAbsent(ctx context.Context, ownerID string, hike models.HikeRecord) (bool, error) {
	query :=
		`INSERT INTO trail_logs (owner_id, hikes)
		 VALUES ($1, jsonb_build_array($2::jsonb))
		 ON CONFLICT (owner_id) DO UPDATE
		 SET hikes = trail_logs.hikes || jsonb_build_array($2::jsonb)
		 WHERE NOT trail_logs.hikes @> jsonb_build_array(jsonb_build_object('trailId', $3::text))
		 `

	doc, err := json.Marshal(hike)
	if err != nil {
		return false, fmt.Errorf("encode hike: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, ownerID, string(doc), hike.TrailID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n == 1, nil
}

func (r *PostgresRepository) UpdateMatching(ctx context.Context, ownerID, trailID string, fields models.HikeFields, now time.Time) (bool, error) {
	query :=
		`UPDATE trail_logs
		 SET hikes = (
		     SELECT jsonb_agg(CASE WHEN elem->>'trailId' = $2 THEN elem || $3::jsonb ELSE elem END ORDER BY idx)
		     FROM jsonb_array_elements(hikes) WITH ORDINALITY AS t(elem, idx)
		 )
		 WHERE owner_id = $1
		   AND hikes @> jsonb_build_array(jsonb_build_object('trailId', $2::text))
		 `

	patch, err := json.Marshal(hikePatch{
		StartedAt:  fields.StartedAt,
		EndedAt:    fields.EndedAt,
		DistanceM:  fields.DistanceM,
		DurationS:  fields.DurationS,
		PointsJSON: fields.PointsJSON,
		PointsRaw:  fields.PointsRaw,
		UpdatedAt:  now,
	})
	if err != nil {
		return false, fmt.Errorf("encode hike: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, ownerID, trailID, string(patch))
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n == 1, nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID string) (*models.TrailLog, error) {
	query :=
		`SELECT owner_id, hikes FROM trail_logs
		 WHERE owner_id = $1
		 `

	var row struct {
		OwnerID string `db:"owner_id"`
		Hikes   []byte `db:"hikes"`
	}
	err := sqlx.GetContext(ctx, r.db, &row, query, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	log := &models.TrailLog{OwnerID: row.OwnerID}
	if err := json.Unmarshal(row.Hikes, &log.Hikes); err != nil {
		return nil, fmt.Errorf("decode hikes: %w", err)
	}

	return log, nil
}
