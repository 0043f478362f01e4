package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	appErr := New(CodeNotFound, "user", "User not found!", http.StatusNotFound)
	assert.Equal(t, "[user:NOT_FOUND] User not found!", appErr.Error())

	wrapped := Wrap(errors.New("boom"), CodeDatabaseError, "database", "Internal server error!", http.StatusInternalServerError)
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := DatabaseError(cause)

	assert.True(t, errors.Is(appErr, cause))

	var target *AppError
	require.True(t, errors.As(appErr, &target))
	assert.Equal(t, CodeDatabaseError, target.Code)
	assert.Equal(t, http.StatusInternalServerError, target.HTTPCode)
}

func TestAppErrorMarshalJSONHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("secret detail"), CodeInternalError, "system", "Internal server error!", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "INTERNAL_ERROR", decoded["code"])
	assert.Equal(t, "Internal server error!", decoded["message"])
	assert.NotContains(t, string(raw), "secret detail")
	assert.NotContains(t, decoded, "HTTPCode")
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	details := map[string]string{"email": "Must be a valid email address"}
	appErr := ValidationError(details)

	assert.Equal(t, CodeValidationFailed, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}

func TestFactoryStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("nope").HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("nope").HTTPCode)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("user", "gone").HTTPCode)
	assert.Equal(t, "user", NewNotFoundError("user", "gone").Domain)
}

func TestDomainFactoriesKeepClientWording(t *testing.T) {
	assert.Equal(t, "User doesnt have any applications!", UserHasNoApplications().Message)
	assert.Equal(t, "Invalid password!", ErrInvalidCredentials.Message)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusNotFound, AffiliationDeleteFailed().HTTPCode)
}
