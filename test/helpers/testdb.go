package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"promanager_backend/internal/auth"
	"promanager_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user directly, hashing the raw password placed in
// PasswordHash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.ID == "" {
		id, err := auth.GenerateID(15)
		require.NoError(t, err)
		user.ID = id
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	require.NoError(t, err)
	user.PasswordHash = string(hashed)

	require.NoError(t, db.Create(user).Error, "failed to create test user %s", user.Email)
}

// CreateAndLoginUser creates a user and logs in through the API, returning
// the bearer token and the stored user.
func CreateAndLoginUser(t *testing.T, ts *TestServer, isCoach bool) (string, *models.User) {
	suffix := time.Now().UnixNano()
	user := &models.User{
		Username:     fmt.Sprintf("user_%d", suffix),
		Firstname:    "Test",
		Lastname:     "User",
		Age:          25,
		Gender:       "female",
		Email:        fmt.Sprintf("user_%d@test.com", suffix),
		Phone:        "+77001234567",
		PasswordHash: "password123",
		IsCoach:      isCoach,
		ImageBase64:  "aW1n",
	}
	CreateUser(t, ts.DB, user)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/user/login", "", map[string]string{
		"authentication": user.Email,
		"password":       "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: "+body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateTestApplication inserts an application row directly.
func CreateTestApplication(t *testing.T, db *gorm.DB, coachID, athleteID string, status models.ApplicationStatus) models.Application {
	application := models.Application{
		ApplicationID:         fmt.Sprintf("%s%d%s", coachID, time.Now().UnixNano()%1_000_000, athleteID),
		CoachID:               coachID,
		AthleteID:             athleteID,
		Description:           "Test application",
		DateTimeOfApplication: time.Now().UTC(),
		Status:                status,
	}
	require.NoError(t, db.Create(&application).Error)
	return application
}

// CreateTestAffiliation inserts an affiliation row directly.
func CreateTestAffiliation(t *testing.T, db *gorm.DB, applicationID, coachID, athleteID string) models.Affiliation {
	affiliation := models.Affiliation{
		ApplicationID: applicationID,
		CoachID:       coachID,
		AthleteID:     athleteID,
	}
	require.NoError(t, db.Create(&affiliation).Error)
	return affiliation
}
