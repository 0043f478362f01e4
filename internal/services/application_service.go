package services

import (
	"context"

	"promanager_backend/internal/logger"
	"promanager_backend/internal/models"
	"promanager_backend/internal/repositories"
	"promanager_backend/internal/services/dto"
	"promanager_backend/pkg/apperrors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Role narrows the user-scoped lookups. Empty means "guess": try the coach
// column first, then the athlete column, like the original id-keyed endpoint.
type Role string

const (
	RoleUnknown Role = ""
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

type ApplicationService interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	SetStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) error
	FetchAll(ctx context.Context) ([]models.Application, error)
	FetchUserApplications(ctx context.Context, userID string, role Role) ([]models.Application, error)
	FetchApplication(ctx context.Context, coachID, applicationID string) (*models.Application, error)
	Delete(ctx context.Context, applicationID string) error
	// Accept atomically marks the application accepted and creates the
	// affiliation in one transaction. Safe to retry.
	Accept(ctx context.Context, applicationID string) (*models.Affiliation, error)
}

type ApplicationServiceImpl struct {
	db      *gorm.DB
	appRepo repositories.ApplicationRepository
}

func NewApplicationService(db *gorm.DB, appRepo repositories.ApplicationRepository) ApplicationService {
	return &ApplicationServiceImpl{db: db, appRepo: appRepo}
}

func (s *ApplicationServiceImpl) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	app := &models.Application{
		ApplicationID:         req.ApplicationID,
		CoachID:               req.CoachID,
		AthleteID:             req.AthleteID,
		Description:           req.Description,
		DateTimeOfApplication: req.DateTimeOfApplication,
		Status:                models.ApplicationStatus(req.Status),
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "application created",
		"application_id", app.ApplicationID,
		"coach_id", app.CoachID,
		"athlete_id", app.AthleteID,
	)
	return app, nil
}

// SetStatus overwrites the status with the caller-supplied string. Any value
// replaces any other; transition legality is the caller's problem on this
// legacy path.
func (s *ApplicationServiceImpl) SetStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) error {
	rows, err := s.appRepo.UpdateStatus(ctx, req.ApplicationID, models.ApplicationStatus(req.Status))
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if rows == 0 {
		return apperrors.ApplicationStatusUpdateFailed()
	}
	return nil
}

func (s *ApplicationServiceImpl) FetchAll(ctx context.Context) ([]models.Application, error) {
	apps, err := s.appRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if len(apps) == 0 {
		return nil, apperrors.NoApplicationsFound()
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) FetchUserApplications(ctx context.Context, userID string, role Role) ([]models.Application, error) {
	var apps []models.Application
	var err error

	switch role {
	case RoleCoach:
		apps, err = s.appRepo.FindByCoach(ctx, userID)
	case RoleAthlete:
		apps, err = s.appRepo.FindByAthlete(ctx, userID)
	default:
		// Dual role-guess: coach column first, athlete on empty result.
		apps, err = s.appRepo.FindByCoach(ctx, userID)
		if err == nil && len(apps) == 0 {
			apps, err = s.appRepo.FindByAthlete(ctx, userID)
		}
	}
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if len(apps) == 0 {
		return nil, apperrors.UserHasNoApplications()
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) FetchApplication(ctx context.Context, coachID, applicationID string) (*models.Application, error) {
	app, err := s.appRepo.FindByCoachAndID(ctx, coachID, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ApplicationNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) Delete(ctx context.Context, applicationID string) error {
	rows, err := s.appRepo.Delete(ctx, applicationID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if rows == 0 {
		return apperrors.ApplicationDeleteFailed()
	}
	return nil
}

func (s *ApplicationServiceImpl) Accept(ctx context.Context, applicationID string) (*models.Affiliation, error) {
	var affiliation models.Affiliation

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app models.Application
		if err := tx.First(&app, "application_id = ?", applicationID).Error; err != nil {
			if apperrors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ApplicationNotFound()
			}
			return apperrors.DatabaseError(err)
		}

		if err := tx.Model(&app).Update("status", models.ApplicationStatusAccepted).Error; err != nil {
			return apperrors.DatabaseError(err)
		}

		affiliation = models.Affiliation{
			ApplicationID: app.ApplicationID,
			CoachID:       app.CoachID,
			AthleteID:     app.AthleteID,
		}
		// Retrying an accept must not create a second row for the same key.
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&affiliation).Error; err != nil {
			return apperrors.DatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "application accepted", "application_id", applicationID)
	return &affiliation, nil
}
