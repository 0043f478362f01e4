package models

const (
	DefaultTheme    = "dark"
	DefaultLanguage = "eng"
)

type Preferences struct {
	UserID   string `gorm:"column:user_id;primaryKey;size:50" json:"userId"`
	Theme    string `gorm:"size:20;not null" json:"theme"`
	Language string `gorm:"size:20;not null" json:"language"`
}
