package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateUserRequestIsEmpty(t *testing.T) {
	assert.True(t, (&UpdateUserRequest{}).IsEmpty())
	assert.True(t, (&UpdateUserRequest{Username: strPtr("")}).IsEmpty())
	assert.True(t, (&UpdateUserRequest{Age: intPtr(0)}).IsEmpty())

	assert.False(t, (&UpdateUserRequest{Username: strPtr("newname")}).IsEmpty())
	assert.False(t, (&UpdateUserRequest{Age: intPtr(30)}).IsEmpty())
	assert.False(t, (&UpdateUserRequest{Password: strPtr("secret123")}).IsEmpty())
}
