package repositories

import (
	"context"
	"errors"

	"promanager_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, applicationID string) (*models.Application, error)
	// FindByCoachAndID scopes the lookup to a coach, matching the legacy
	// two-segment fetch endpoint.
	FindByCoachAndID(ctx context.Context, coachID, applicationID string) (*models.Application, error)
	FindAll(ctx context.Context) ([]models.Application, error)
	FindByCoach(ctx context.Context, coachID string) ([]models.Application, error)
	FindByAthlete(ctx context.Context, athleteID string) ([]models.Application, error)
	// UpdateStatus overwrites the status unconditionally and reports rows affected.
	UpdateStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) (int64, error)
	Delete(ctx context.Context, applicationID string) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, applicationID string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).First(&app, "application_id = ?", applicationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByCoachAndID(ctx context.Context, coachID, applicationID string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Where("coach_id = ? AND application_id = ?", coachID, applicationID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindAll(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) FindByCoach(ctx context.Context, coachID string) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).Where("coach_id = ?", coachID).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) FindByAthlete(ctx context.Context, athleteID string) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("application_id = ?", applicationID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *ApplicationRepositoryImpl) Delete(ctx context.Context, applicationID string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Application{}, "application_id = ?", applicationID)
	return result.RowsAffected, result.Error
}
