package users

import (
	"context"

	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
)

// Repository is the credential store. User names are expected to be
// normalized by the caller.
type Repository interface {
	// Create stores a new account or returns common.ErrAlreadyExists when
	// the user name is taken.
	Create(ctx context.Context, user *models.User) error
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}
