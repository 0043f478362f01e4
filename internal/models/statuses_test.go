package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityOfKnownStatuses(t *testing.T) {
	assert.Equal(t, 0, PriorityOf(ApplicationStatusPending))
	assert.Equal(t, 1, PriorityOf(ApplicationStatusAccepted))
	assert.Equal(t, 2, PriorityOf(ApplicationStatusRejected))
	assert.Equal(t, 3, PriorityOf(ApplicationStatusCancelled))
	assert.Equal(t, 4, PriorityOf(ApplicationStatusTerminated))
}

func TestPriorityOfUnknownStatusSortsLast(t *testing.T) {
	assert.Equal(t, len(StatusPriority), PriorityOf(ApplicationStatus("on-hold")))
	assert.Greater(t, PriorityOf("on-hold"), PriorityOf(ApplicationStatusTerminated))
}

func TestUserSanitizedOmitsPassword(t *testing.T) {
	u := &User{ID: "u1", Username: "jess", PasswordHash: "$2a$10$hash"}
	view := u.Sanitized()

	assert.Equal(t, "u1", view["id"])
	assert.NotContains(t, view, "password")
	assert.NotContains(t, view, "passwordHash")
}
