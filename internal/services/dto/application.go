package dto

import "time"

// CreateApplicationRequest mirrors the client payload: the applicationId and
// status both come from the caller.
type CreateApplicationRequest struct {
	ApplicationID         string    `json:"applicationId" binding:"required"`
	CoachID               string    `json:"coachId" binding:"required"`
	AthleteID             string    `json:"athleteId" binding:"required"`
	Description           string    `json:"description" binding:"required"`
	DateTimeOfApplication time.Time `json:"dateTimeOfApplication" binding:"required"`
	Status                string    `json:"status" binding:"required"`
}

// UpdateApplicationStatusRequest overwrites the status with whatever string
// the caller sends. No transition validation happens on this path.
type UpdateApplicationStatusRequest struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// CreateAffiliationRequest is the legacy affiliation insert, issued by the
// coach client right after a status update to "accepted".
type CreateAffiliationRequest struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	CoachID       string `json:"coachId" binding:"required"`
	AthleteID     string `json:"athleteId" binding:"required"`
}
