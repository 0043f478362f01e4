package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"promanager_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{"code": code, "message": message},
	})
}

func TestLoginStoresToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/login":
			json.NewEncoder(w).Encode(map[string]string{"token": "jwt-abc"})
		case "/api/user/profile":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]interface{}{"user": models.User{ID: "u1"}})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, err := c.Login(context.Background(), "jess", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)

	user, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Bearer jwt-abc", gotAuth)
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid password!")
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "jess", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, "Invalid password!", apiErr.Message)
}

func TestFetchUserApplicationsMaps404ToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User doesnt have any applications!")
	}))
	defer srv.Close()

	c := New(srv.URL)
	apps, err := c.FetchUserApplications(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.NotNil(t, apps)
}

func TestFetchUserApplicationsPassesRole(t *testing.T) {
	var gotRole string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = r.URL.Query().Get("role")
		json.NewEncoder(w).Encode(map[string]interface{}{"applications": []models.Application{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.FetchUserApplications(context.Background(), "u1", "coach")
	require.NoError(t, err)
	assert.Equal(t, "coach", gotRole)
}

func TestFetchUserAffiliationsMaps404ToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User doesn't have any affiliations!")
	}))
	defer srv.Close()

	c := New(srv.URL)
	affs, err := c.FetchUserAffiliations(context.Background(), "u1", "athlete")
	require.NoError(t, err)
	assert.Empty(t, affs)
}

func TestNon404ErrorIsNotSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Internal server error!")
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.FetchUserApplications(context.Background(), "u1", "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestAcceptAndAffiliatePartialFailure(t *testing.T) {
	var statusUpdated bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/application/update":
			statusUpdated = true
			json.NewEncoder(w).Encode(map[string]string{"message": "Status updated successfully!"})
		case "/api/affiliation/create":
			writeError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Internal server error!")
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.AcceptAndAffiliate(context.Background(), "app1", "coach1", "athlete1")

	require.Error(t, err)
	assert.True(t, statusUpdated, "first call must have gone through before the failure")
	assert.Contains(t, err.Error(), "status updated but affiliation create failed")
}

func TestTerminateAffiliationPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/application/update":
			json.NewEncoder(w).Encode(map[string]string{"message": "Status updated successfully!"})
		case strings.HasPrefix(r.URL.Path, "/api/affiliation/") && r.Method == http.MethodDelete:
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Failed to delete affiliation!")
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.TerminateAffiliation(context.Background(), "app1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status updated but affiliation delete failed")
}

func TestEnsurePreferencesCreatesDefaultsOn404(t *testing.T) {
	var created map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Preferences not found!")
		case http.MethodPost:
			json.NewDecoder(r.Body).Decode(&created)
			json.NewEncoder(w).Encode(map[string]string{"status": "success"})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	prefs, err := c.EnsurePreferences(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs.Theme)
	assert.Equal(t, "eng", prefs.Language)
	assert.Equal(t, "dark", created["theme"])
	assert.Equal(t, "eng", created["language"])
}

func TestEnsurePreferencesReturnsExisting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"preferences": models.Preferences{UserID: "u1", Theme: "light", Language: "kz"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	prefs, err := c.EnsurePreferences(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "light", prefs.Theme)
}

func TestRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.httpClient.Timeout = 50 * time.Millisecond

	_, err := c.FetchAllApplications(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "timeouts are transport errors, not APIErrors")
}

func TestNewApplicationIDFormat(t *testing.T) {
	id := NewApplicationID("coachX", "athleteY")
	assert.True(t, strings.HasPrefix(id, "coachX"))
	assert.True(t, strings.HasSuffix(id, "athleteY"))
	assert.Greater(t, len(id), len("coachX")+len("athleteY"))
}

func TestSortApplications(t *testing.T) {
	apps := []models.Application{
		{ApplicationID: "t", Status: models.ApplicationStatusTerminated},
		{ApplicationID: "a1", Status: models.ApplicationStatusAccepted},
		{ApplicationID: "p1", Status: models.ApplicationStatusPending},
		{ApplicationID: "r", Status: models.ApplicationStatusRejected},
		{ApplicationID: "p2", Status: models.ApplicationStatusPending},
		{ApplicationID: "c", Status: models.ApplicationStatusCancelled},
	}

	SortApplications(apps)

	var order []string
	for _, a := range apps {
		order = append(order, a.ApplicationID)
	}
	assert.Equal(t, []string{"p1", "p2", "a1", "r", "c", "t"}, order)
}

func TestPage(t *testing.T) {
	apps := make([]models.Application, 12)
	for i := range apps {
		apps[i].ApplicationID = string(rune('a' + i))
	}

	assert.Len(t, Page(apps, 0), 5)
	assert.Len(t, Page(apps, 1), 5)
	assert.Len(t, Page(apps, 2), 2)
	assert.Empty(t, Page(apps, 3))
	assert.Empty(t, Page(apps, -1))
	assert.Equal(t, apps[5].ApplicationID, Page(apps, 1)[0].ApplicationID)
}
