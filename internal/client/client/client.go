package client

import (
	"context"

	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
)

type Client interface {
	Close() error
	SetAccessToken(token string)
	Register(ctx context.Context, userName, password string) (string, error)
	Login(ctx context.Context, userName, password string) (string, error)
	Ping(ctx context.Context) error
	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, u models.ProfileUpdate) error
	ListHikes(ctx context.Context) ([]models.Hike, error)
	RecordHike(ctx context.Context, h models.Hike) (models.RecordOutcome, error)
}
