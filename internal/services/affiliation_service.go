package services

import (
	"context"

	"promanager_backend/internal/logger"
	"promanager_backend/internal/models"
	"promanager_backend/internal/repositories"
	"promanager_backend/internal/services/dto"
	"promanager_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AffiliationService interface {
	Create(ctx context.Context, req *dto.CreateAffiliationRequest) (*models.Affiliation, error)
	FetchAll(ctx context.Context) ([]models.Affiliation, error)
	FetchUserAffiliations(ctx context.Context, userID string, role Role) ([]models.Affiliation, error)
	End(ctx context.Context, applicationID string) error
	// Terminate atomically removes the affiliation and marks the originating
	// application terminated in one transaction.
	Terminate(ctx context.Context, applicationID string) error
}

type AffiliationServiceImpl struct {
	db      *gorm.DB
	affRepo repositories.AffiliationRepository
}

func NewAffiliationService(db *gorm.DB, affRepo repositories.AffiliationRepository) AffiliationService {
	return &AffiliationServiceImpl{db: db, affRepo: affRepo}
}

// Create inserts the affiliation row as-is. It deliberately does not check
// that the referenced application exists or is accepted: the legacy client
// sequences accept-then-affiliate itself, and this endpoint keeps that
// contract. The guarded path is ApplicationService.Accept.
func (s *AffiliationServiceImpl) Create(ctx context.Context, req *dto.CreateAffiliationRequest) (*models.Affiliation, error) {
	aff := &models.Affiliation{
		ApplicationID: req.ApplicationID,
		CoachID:       req.CoachID,
		AthleteID:     req.AthleteID,
	}

	if err := s.affRepo.Create(ctx, aff); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "affiliation created", "application_id", aff.ApplicationID)
	return aff, nil
}

func (s *AffiliationServiceImpl) FetchAll(ctx context.Context) ([]models.Affiliation, error) {
	affs, err := s.affRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if len(affs) == 0 {
		return nil, apperrors.NoAffiliationsFound()
	}
	return affs, nil
}

func (s *AffiliationServiceImpl) FetchUserAffiliations(ctx context.Context, userID string, role Role) ([]models.Affiliation, error) {
	var affs []models.Affiliation
	var err error

	switch role {
	case RoleCoach:
		affs, err = s.affRepo.FindByCoach(ctx, userID)
	case RoleAthlete:
		affs, err = s.affRepo.FindByAthlete(ctx, userID)
	default:
		affs, err = s.affRepo.FindByCoach(ctx, userID)
		if err == nil && len(affs) == 0 {
			affs, err = s.affRepo.FindByAthlete(ctx, userID)
		}
	}
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if len(affs) == 0 {
		return nil, apperrors.UserHasNoAffiliations()
	}
	return affs, nil
}

// End deletes the affiliation row only. Deleting an already-deleted
// affiliation is a failure, not an idempotent success.
func (s *AffiliationServiceImpl) End(ctx context.Context, applicationID string) error {
	rows, err := s.affRepo.Delete(ctx, applicationID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if rows == 0 {
		return apperrors.AffiliationDeleteFailed()
	}
	return nil
}

func (s *AffiliationServiceImpl) Terminate(ctx context.Context, applicationID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Affiliation{}, "application_id = ?", applicationID)
		if result.Error != nil {
			return apperrors.DatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.AffiliationDeleteFailed()
		}

		// The application row may already be gone (the unused delete endpoint);
		// a zero-row status update is fine here.
		if err := tx.Model(&models.Application{}).
			Where("application_id = ?", applicationID).
			Update("status", models.ApplicationStatusTerminated).Error; err != nil {
			return apperrors.DatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.CtxInfo(ctx, "affiliation terminated", "application_id", applicationID)
	return nil
}
