package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/logging"
	"github.com/dmitrijs2005/hikekeeper/internal/server/auth"
	"github.com/dmitrijs2005/hikekeeper/internal/server/config"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hikekeeper/internal/server/validation"
	"github.com/dmitrijs2005/hikekeeper/internal/units"
)

// ProfileInput is a profile save request as sent by clients. Height comes
// as feet plus inches, weight in kilograms when IsMetric is set and pounds
// otherwise. Nil measurements clear the stored value.
type ProfileInput struct {
	Password     *string
	HeightFeet   *float64
	HeightInches *float64
	Weight       *float64
	IsMetric     bool
	IsPace       bool
}

// Measurements converts the input to stored units.
func (in ProfileInput) Measurements() models.Measurements {
	m := models.Measurements{
		Unit:           models.UnitImperial,
		TimePreference: models.TimePreferenceSpeed,
	}
	if in.IsMetric {
		m.Unit = models.UnitMetric
	}
	if in.IsPace {
		m.TimePreference = models.TimePreferencePace
	}

	if in.HeightFeet != nil || in.HeightInches != nil {
		var feet, inches float64
		if in.HeightFeet != nil {
			feet = *in.HeightFeet
		}
		if in.HeightInches != nil {
			inches = *in.HeightInches
		}
		mm := units.FeetInchesToMm(feet, inches)
		m.HeightMm = &mm
	}

	if in.Weight != nil {
		g := units.WeightToGrams(*in.Weight, in.IsMetric)
		m.WeightGrams = &g
	}

	return m
}

// ProfileService reads and saves per-account profiles.
type ProfileService struct {
	repomanager repomanager.RepositoryManager
	hashCost    int
	logger      logging.Logger
}

func NewProfileService(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *ProfileService {
	return &ProfileService{
		repomanager: m,
		hashCost:    cfg.PasswordHashCost,
		logger:      logger.With("module", "profiles"),
	}
}

// Get returns the profile of an existing account.
func (s *ProfileService) Get(ctx context.Context, ownerID string) (*models.Profile, error) {
	if err := s.ensureAccount(ctx, ownerID); err != nil {
		return nil, err
	}

	p, err := s.repomanager.Profiles().Get(ctx, ownerID)
	if err != nil {
		return nil, s.translate(ctx, "profile lookup failed", err)
	}
	return p, nil
}

// Save overwrites every measurement field and then, when a non-blank
// password is supplied, replaces the credential. The two writes are not
// atomic: a failed credential update leaves the new measurements in place.
func (s *ProfileService) Save(ctx context.Context, ownerID string, in ProfileInput) error {
	if err := validation.Profile(validation.ProfileUpdate{
		Password:     in.Password,
		HeightFeet:   in.HeightFeet,
		HeightInches: in.HeightInches,
		Weight:       in.Weight,
	}); err != nil {
		return err
	}

	if err := s.ensureAccount(ctx, ownerID); err != nil {
		return err
	}

	if err := s.repomanager.Profiles().UpdateMeasurements(ctx, ownerID, in.Measurements()); err != nil {
		return s.translate(ctx, "profile update failed", err)
	}

	if in.Password == nil || strings.TrimSpace(*in.Password) == "" {
		return nil
	}

	hash, err := auth.HashPassword(*in.Password, s.hashCost)
	if err != nil {
		return common.ErrInternal
	}

	if err := s.repomanager.Users().UpdatePasswordHash(ctx, ownerID, hash); err != nil {
		s.logger.Warn(ctx, "profile saved but password update failed", "userId", ownerID, "error", err)
		return s.translate(ctx, "password update failed", err)
	}

	return nil
}

func (s *ProfileService) ensureAccount(ctx context.Context, ownerID string) error {
	if _, err := s.repomanager.Users().GetByID(ctx, ownerID); err != nil {
		return s.translate(ctx, "user lookup failed", err)
	}
	return nil
}

// translate passes common.ErrNotFound through and reports every other
// repository failure as common.ErrStorageUnavailable.
func (s *ProfileService) translate(ctx context.Context, msg string, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrNotFound
	}
	s.logger.Error(ctx, msg, "error", err)
	return fmt.Errorf("%w: %s: %w", common.ErrStorageUnavailable, msg, err)
}
