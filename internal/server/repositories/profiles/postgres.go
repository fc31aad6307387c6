package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/dbx"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) error {
	query :=
		`INSERT INTO profiles (id, username, mode, height_mm, weight_g, unit, time_preference, created_at, last_active)
		 VALUES (:id, :username, :mode, :height_mm, :weight_g, :unit, :time_preference, :created_at, :last_active)
		 `

	_, err := sqlx.NamedExecContext(ctx, r.db, query, p)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Profile, error) {
	query :=
		`SELECT id, username, mode, height_mm, weight_g, unit, time_preference, created_at, last_active
		 FROM profiles
		 WHERE id = $1
		 `

	p := &models.Profile{}
	err := sqlx.GetContext(ctx, r.db, p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) UpdateMeasurements(ctx context.Context, id string, m models.Measurements) error {
	query :=
		`UPDATE profiles
		 SET height_mm = $2, weight_g = $3, unit = $4, time_preference = $5
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, m.HeightMm, m.WeightGrams, string(m.Unit), string(m.TimePreference))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}
