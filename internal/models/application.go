package models

import "time"

// Application is a hire request from an athlete to a coach. The id is built
// client-side (coach id + random int + athlete id) and serves as primary key.
type Application struct {
	ApplicationID         string            `gorm:"column:application_id;primaryKey;size:50" json:"applicationId"`
	CoachID               string            `gorm:"size:50;not null;index" json:"coachId"`
	AthleteID             string            `gorm:"size:50;not null;index" json:"athleteId"`
	Description           string            `gorm:"type:text;not null" json:"description"`
	DateTimeOfApplication time.Time         `gorm:"not null" json:"dateTimeOfApplication"`
	Status                ApplicationStatus `gorm:"size:50;not null" json:"status"`
}
