package models

// Affiliation is the ongoing coach-athlete relationship created when an
// application is accepted. It shares its primary key with that application.
type Affiliation struct {
	ApplicationID string `gorm:"column:application_id;primaryKey;size:50" json:"applicationId"`
	CoachID       string `gorm:"size:50;not null;index" json:"coachId"`
	AthleteID     string `gorm:"size:50;not null;index" json:"athleteId"`
}
