package services

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/hikekeeper/internal/client/client"
	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
	"github.com/dmitrijs2005/hikekeeper/internal/client/repositories/metadata"
)

type ProfileService interface {
	Show(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, u models.ProfileUpdate) error
}

type profileService struct {
	client client.Client
	db     *sqlx.DB
}

func NewProfileService(client client.Client, db *sqlx.DB) ProfileService {
	return &profileService{client: client, db: db}
}

func (s *profileService) Show(ctx context.Context) (*models.Profile, error) {
	if err := authorize(ctx, metadata.NewSQLiteRepository(s.db), s.client); err != nil {
		return nil, err
	}
	return s.client.GetProfile(ctx)
}

func (s *profileService) Save(ctx context.Context, u models.ProfileUpdate) error {
	if err := authorize(ctx, metadata.NewSQLiteRepository(s.db), s.client); err != nil {
		return err
	}
	return s.client.SaveProfile(ctx, u)
}
