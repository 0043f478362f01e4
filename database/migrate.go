package database

import (
	"promanager_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the four tables. The original service issued
// CREATE TABLE IF NOT EXISTS on first connect; AutoMigrate is the equivalent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Application{},
		&models.Affiliation{},
		&models.Preferences{},
	)
}
