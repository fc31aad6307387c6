// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and token verification.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/logging"
	"github.com/dmitrijs2005/hikekeeper/internal/server/auth"
	"github.com/dmitrijs2005/hikekeeper/internal/server/config"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hikekeeper/internal/server/validation"
)

// UserService provides authentication-related operations:
//   - Register: create the account and its empty profile, mint a token
//   - Login: verify credentials and mint a token
//   - Authorize: resolve a token to the account id
type UserService struct {
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	hashCost                    int
	clock                       Clock
	logger                      logging.Logger
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		hashCost:                    cfg.PasswordHashCost,
		clock:                       SystemClock,
		logger:                      logger.With("module", "users"),
	}
}

// NormalizeUserName returns the stored form of a user name. Lookups and
// uniqueness are case-insensitive.
func NormalizeUserName(userName string) string {
	return cases.Fold().String(strings.TrimSpace(userName))
}

// Register creates the account and its profile in one unit of work and
// returns an access token. A taken user name yields common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, userName, password string) (string, error) {
	if err := validation.Registration(userName, password); err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(password, s.hashCost)
	if err != nil {
		return "", common.ErrInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		UserName:     NormalizeUserName(userName),
		PasswordHash: hash,
		CreatedAt:    s.clock.Now().UTC().Truncate(time.Millisecond),
	}

	err = s.repomanager.WithinTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if err := repos.Users().Create(ctx, user); err != nil {
			return err
		}
		return repos.Profiles().Create(ctx, models.NewProfile(user))
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return "", common.ErrAlreadyExists
		}
		s.logger.Error(ctx, "registration failed", "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	s.logger.Info(ctx, "user registered", "userId", user.ID)
	return s.generateAccessToken(user)
}

// Login verifies the password and returns a new access token. Unknown
// accounts and wrong passwords both yield common.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, userName, password string) (string, error) {
	if err := validation.Login(userName, password); err != nil {
		return "", err
	}

	user, err := s.repomanager.Users().GetByUserName(ctx, NormalizeUserName(userName))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			auth.BurnCompare(password)
			return "", common.ErrUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return "", common.ErrInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrUnauthorized
	}

	return s.generateAccessToken(user)
}

// Authorize resolves an access token to the account id it was issued for.
// The returned error matches common.ErrUnauthorized and also the specific
// token error (common.ErrTokenExpired or common.ErrInvalidToken).
func (s *UserService) Authorize(ctx context.Context, token string) (string, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}
	return userID, nil
}

func (s *UserService) generateAccessToken(u *models.User) (string, error) {
	token, err := auth.GenerateToken(u.ID, u.UserName, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}
