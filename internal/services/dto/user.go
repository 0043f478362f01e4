package dto

// RegisterRequest carries every field the registration screen collects.
// All fields are required, matching the mobile client contract.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Firstname   string `json:"firstname" binding:"required"`
	Lastname    string `json:"lastname" binding:"required"`
	Age         int    `json:"age" binding:"required,gt=0"`
	Gender      string `json:"gender" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Password    string `json:"password" binding:"required"`
	ImageBase64 string `json:"imageBase64" binding:"required"`
	IsCoach     *bool  `json:"isCoach" binding:"required"`
}

// LoginRequest authenticates by email or username.
type LoginRequest struct {
	Authentication string `json:"authentication" binding:"required"`
	Password       string `json:"password" binding:"required"`
}

// UpdateUserRequest is a partial update; empty fields are left untouched.
type UpdateUserRequest struct {
	Username    *string `json:"username,omitempty"`
	Firstname   *string `json:"firstname,omitempty"`
	Lastname    *string `json:"lastname,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	Password    *string `json:"password,omitempty"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
}

// IsEmpty reports whether no usable change was submitted.
func (r *UpdateUserRequest) IsEmpty() bool {
	if r.Age != nil && *r.Age > 0 {
		return false
	}
	for _, s := range []*string{r.Username, r.Firstname, r.Lastname, r.Gender, r.Email, r.Phone, r.Password, r.ImageBase64} {
		if s != nil && *s != "" {
			return false
		}
	}
	return true
}

// RecoveryRequest asks the server to mail a recovery code. The code itself is
// generated by the client, kept for compatibility with the original flow.
type RecoveryRequest struct {
	Email        string `json:"email" binding:"required,email"`
	RecoveryCode string `json:"recoveryCode" binding:"required" validate:"notblank"`
}

// UpdatePasswordRequest resets the password by email, unauthenticated,
// as the final step of the recovery flow.
type UpdatePasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse wraps a freshly signed JWT.
type TokenResponse struct {
	Token string `json:"token"`
}
