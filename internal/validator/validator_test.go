package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Code  string `json:"code" validate:"notblank"`
	Age   int    `json:"age" validate:"gt=0"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{
		Email: "user@example.com",
		Name:  "Jess",
		Code:  "X1",
		Age:   30,
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{Email: "not-an-email", Name: "", Code: "ok", Age: 1})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["name"])
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestNotblankRejectsWhitespace(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{Email: "user@example.com", Name: "Jess", Code: "   ", Age: 1})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must not be blank", vErr.Errors["code"])
}

func TestGtMessage(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{Email: "user@example.com", Name: "Jess", Code: "ok", Age: 0})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be greater than 0", vErr.Errors["age"])
}
