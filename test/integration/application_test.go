package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"promanager_backend/internal/models"
	"promanager_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createApplicationPayload(coachID, athleteID string) map[string]interface{} {
	return map[string]interface{}{
		"applicationId":         fmt.Sprintf("%s%d%s", coachID, time.Now().UnixNano()%1_000_000, athleteID),
		"coachId":               coachID,
		"athleteId":             athleteID,
		"description":           "Looking for a sprint coach",
		"dateTimeOfApplication": time.Now().UTC().Format(time.RFC3339),
		"status":                "pending",
	}
}

func TestCreateAndFetchApplication(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, athlete := helpers.CreateAndLoginUser(t, ts, false)
	_, coach := helpers.CreateAndLoginUser(t, ts, true)

	payload := createApplicationPayload(coach.ID, athlete.ID)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/application/create", token, payload)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	applicationID := payload["applicationId"].(string)

	// Scoped fetch by athlete id: athlete column matched on the second guess.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/application/"+athlete.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listResp struct {
		Applications []models.Application `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listResp))
	require.Len(t, listResp.Applications, 1)
	assert.Equal(t, applicationID, listResp.Applications[0].ApplicationID)
	assert.Equal(t, models.ApplicationStatusPending, listResp.Applications[0].Status)

	// Single fetch scoped to the coach side.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/application/"+coach.ID+"/"+applicationID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestFetchUserApplicationsEmptyIs404(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, user := helpers.CreateAndLoginUser(t, ts, false)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/application/"+user.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "User doesnt have any applications!")
}

func TestFetchUserApplicationsExplicitRole(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, coach := helpers.CreateAndLoginUser(t, ts, true)
	_, athlete := helpers.CreateAndLoginUser(t, ts, false)
	helpers.CreateTestApplication(t, ts.DB, coach.ID, athlete.ID, models.ApplicationStatusPending)

	// Pinned to the athlete column, the coach id matches nothing.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/application/"+coach.ID+"?role=athlete", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/application/"+coach.ID+"?role=coach", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestLegacyStatusUpdateAcceptsAnyString(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, coach := helpers.CreateAndLoginUser(t, ts, true)
	_, athlete := helpers.CreateAndLoginUser(t, ts, false)
	app := helpers.CreateTestApplication(t, ts.DB, coach.ID, athlete.ID, models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/application/update", token, map[string]string{
		"applicationId": app.ApplicationID,
		"status":        "on-hold",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Status updated successfully!")

	var stored models.Application
	require.NoError(t, ts.DB.First(&stored, "application_id = ?", app.ApplicationID).Error)
	assert.Equal(t, models.ApplicationStatus("on-hold"), stored.Status)
}

func TestStatusUpdateMissingApplicationIs404(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, true)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/application/update", token, map[string]string{
		"applicationId": "does-not-exist",
		"status":        "accepted",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestDeleteApplication(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, coach := helpers.CreateAndLoginUser(t, ts, true)
	_, athlete := helpers.CreateAndLoginUser(t, ts, false)
	app := helpers.CreateTestApplication(t, ts.DB, coach.ID, athlete.ID, models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/application/"+app.ApplicationID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Second delete affects zero rows.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/application/"+app.ApplicationID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAcceptCreatesAffiliationAtomically(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, coach := helpers.CreateAndLoginUser(t, ts, true)
	_, athlete := helpers.CreateAndLoginUser(t, ts, false)
	app := helpers.CreateTestApplication(t, ts.DB, coach.ID, athlete.ID, models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/application/"+app.ApplicationID+"/accept", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stored models.Application
	require.NoError(t, ts.DB.First(&stored, "application_id = ?", app.ApplicationID).Error)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)

	var count int64
	ts.DB.Model(&models.Affiliation{}).Where("application_id = ?", app.ApplicationID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAcceptIsIdempotent(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, coach := helpers.CreateAndLoginUser(t, ts, true)
	_, athlete := helpers.CreateAndLoginUser(t, ts, false)
	app := helpers.CreateTestApplication(t, ts.DB, coach.ID, athlete.ID, models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/application/"+app.ApplicationID+"/accept", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	res, body = ts.SendRequest(t, http.MethodPost, "/api/application/"+app.ApplicationID+"/accept", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Affiliation{}).Where("application_id = ?", app.ApplicationID).Count(&count)
	assert.Equal(t, int64(1), count, "repeat accept leaves a single affiliation")
}

func TestAcceptMissingApplicationIs404(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, true)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/application/does-not-exist/accept", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestFetchAllApplications(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, coach := helpers.CreateAndLoginUser(t, ts, true)
	_, athlete := helpers.CreateAndLoginUser(t, ts, false)
	helpers.CreateTestApplication(t, ts.DB, coach.ID, athlete.ID, models.ApplicationStatusPending)
	helpers.CreateTestApplication(t, ts.DB, coach.ID, athlete.ID, models.ApplicationStatusAccepted)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/application/all", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listResp struct {
		Applications []models.Application `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listResp))
	assert.Len(t, listResp.Applications, 2)
}
