package dto

type PreferencesRequest struct {
	Theme    string `json:"theme" binding:"required" validate:"notblank"`
	Language string `json:"language" binding:"required" validate:"notblank"`
}
