package services

import (
	"context"

	"promanager_backend/internal/models"
	"promanager_backend/internal/repositories"
	"promanager_backend/internal/services/dto"
	"promanager_backend/pkg/apperrors"
)

type PreferencesService interface {
	Create(ctx context.Context, userID string, req *dto.PreferencesRequest) error
	Update(ctx context.Context, userID string, req *dto.PreferencesRequest) error
	Fetch(ctx context.Context, userID string) (*models.Preferences, error)
}

type PreferencesServiceImpl struct {
	prefsRepo repositories.PreferencesRepository
}

func NewPreferencesService(prefsRepo repositories.PreferencesRepository) PreferencesService {
	return &PreferencesServiceImpl{prefsRepo: prefsRepo}
}

func (s *PreferencesServiceImpl) Create(ctx context.Context, userID string, req *dto.PreferencesRequest) error {
	prefs := &models.Preferences{
		UserID:   userID,
		Theme:    req.Theme,
		Language: req.Language,
	}
	if err := s.prefsRepo.Create(ctx, prefs); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *PreferencesServiceImpl) Update(ctx context.Context, userID string, req *dto.PreferencesRequest) error {
	prefs := &models.Preferences{
		UserID:   userID,
		Theme:    req.Theme,
		Language: req.Language,
	}
	rows, err := s.prefsRepo.Update(ctx, prefs)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if rows == 0 {
		return apperrors.PreferencesNotFound()
	}
	return nil
}

func (s *PreferencesServiceImpl) Fetch(ctx context.Context, userID string) (*models.Preferences, error) {
	prefs, err := s.prefsRepo.FindByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPreferencesNotFound) {
			return nil, apperrors.PreferencesNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	return prefs, nil
}
