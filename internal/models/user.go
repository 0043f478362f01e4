package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:50" json:"id"`
	Username     string    `gorm:"size:50;not null" json:"username"`
	Firstname    string    `gorm:"size:50;not null" json:"firstname"`
	Lastname     string    `gorm:"size:50;not null" json:"lastname"`
	Age          int       `gorm:"not null" json:"age"`
	Gender       string    `gorm:"size:20;not null" json:"gender"`
	Email        string    `gorm:"size:50;not null;index" json:"email"`
	Phone        string    `gorm:"size:50;not null" json:"phone"`
	PasswordHash string    `gorm:"column:password;size:256;not null" json:"-"`
	IsCoach      bool      `gorm:"not null" json:"isCoach"`
	ImageBase64  string    `gorm:"type:text;not null" json:"imageBase64"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Sanitized returns the profile view sent to clients. The password hash never
// leaves the server even in hashed form.
func (u *User) Sanitized() map[string]interface{} {
	return map[string]interface{}{
		"id":          u.ID,
		"username":    u.Username,
		"firstname":   u.Firstname,
		"lastname":    u.Lastname,
		"age":         u.Age,
		"gender":      u.Gender,
		"email":       u.Email,
		"phone":       u.Phone,
		"isCoach":     u.IsCoach,
		"imageBase64": u.ImageBase64,
	}
}
