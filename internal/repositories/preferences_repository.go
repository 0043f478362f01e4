package repositories

import (
	"context"
	"errors"

	"promanager_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

type PreferencesRepository interface {
	Create(ctx context.Context, prefs *models.Preferences) error
	FindByUserID(ctx context.Context, userID string) (*models.Preferences, error)
	Update(ctx context.Context, prefs *models.Preferences) (int64, error)
}

type PreferencesRepositoryImpl struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &PreferencesRepositoryImpl{db: db}
}

func (r *PreferencesRepositoryImpl) Create(ctx context.Context, prefs *models.Preferences) error {
	return r.db.WithContext(ctx).Create(prefs).Error
}

func (r *PreferencesRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*models.Preferences, error) {
	var prefs models.Preferences
	err := r.db.WithContext(ctx).First(&prefs, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferencesNotFound
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *PreferencesRepositoryImpl) Update(ctx context.Context, prefs *models.Preferences) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Preferences{}).
		Where("user_id = ?", prefs.UserID).
		Updates(map[string]interface{}{"theme": prefs.Theme, "language": prefs.Language})
	return result.RowsAffected, result.Error
}
