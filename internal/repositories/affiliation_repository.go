package repositories

import (
	"context"
	"errors"

	"promanager_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAffiliationNotFound = errors.New("affiliation not found")

type AffiliationRepository interface {
	// Create inserts without verifying the referenced application. The legacy
	// create endpoint has no such guard; the transactional accept path does.
	Create(ctx context.Context, aff *models.Affiliation) error
	FindByID(ctx context.Context, applicationID string) (*models.Affiliation, error)
	FindAll(ctx context.Context) ([]models.Affiliation, error)
	FindByCoach(ctx context.Context, coachID string) ([]models.Affiliation, error)
	FindByAthlete(ctx context.Context, athleteID string) ([]models.Affiliation, error)
	Delete(ctx context.Context, applicationID string) (int64, error)
}

type AffiliationRepositoryImpl struct {
	db *gorm.DB
}

func NewAffiliationRepository(db *gorm.DB) AffiliationRepository {
	return &AffiliationRepositoryImpl{db: db}
}

func (r *AffiliationRepositoryImpl) Create(ctx context.Context, aff *models.Affiliation) error {
	return r.db.WithContext(ctx).Create(aff).Error
}

func (r *AffiliationRepositoryImpl) FindByID(ctx context.Context, applicationID string) (*models.Affiliation, error) {
	var aff models.Affiliation
	err := r.db.WithContext(ctx).First(&aff, "application_id = ?", applicationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffiliationNotFound
		}
		return nil, err
	}
	return &aff, nil
}

func (r *AffiliationRepositoryImpl) FindAll(ctx context.Context) ([]models.Affiliation, error) {
	var affs []models.Affiliation
	if err := r.db.WithContext(ctx).Find(&affs).Error; err != nil {
		return nil, err
	}
	return affs, nil
}

func (r *AffiliationRepositoryImpl) FindByCoach(ctx context.Context, coachID string) ([]models.Affiliation, error) {
	var affs []models.Affiliation
	if err := r.db.WithContext(ctx).Where("coach_id = ?", coachID).Find(&affs).Error; err != nil {
		return nil, err
	}
	return affs, nil
}

func (r *AffiliationRepositoryImpl) FindByAthlete(ctx context.Context, athleteID string) ([]models.Affiliation, error) {
	var affs []models.Affiliation
	if err := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID).Find(&affs).Error; err != nil {
		return nil, err
	}
	return affs, nil
}

func (r *AffiliationRepositoryImpl) Delete(ctx context.Context, applicationID string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Affiliation{}, "application_id = ?", applicationID)
	return result.RowsAffected, result.Error
}
