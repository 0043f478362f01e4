package apperrors

import "net/http"

// Domain error factories. Message strings are part of the client contract:
// mobile builds in the field surface them verbatim, so keep the wording stable.

// --- user ---

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "user", "Invalid password!", http.StatusUnauthorized)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "user", "A user with this email already exists!", http.StatusBadRequest)
)

func UserNotFound() *AppError {
	return NewNotFoundError("user", "No user with this id in database!")
}

func UserNotFoundByName() *AppError {
	return New(CodeNotFound, "user", "User not found", http.StatusUnauthorized)
}

func NoUsersFound() *AppError {
	return NewNotFoundError("user", "No users found!")
}

func EmailNotFound() *AppError {
	return NewNotFoundError("user", "Email not found.")
}

func NoUserWithEmail() *AppError {
	return NewNotFoundError("user", "No user with this email exists!")
}

func NoChangesSubmitted() *AppError {
	return NewBadRequestError("No changes were submitted!")
}

// --- application ---

func ApplicationNotFound() *AppError {
	return NewNotFoundError("application", "Application not found!")
}

func NoApplicationsFound() *AppError {
	return NewNotFoundError("application", "No applications found!")
}

func UserHasNoApplications() *AppError {
	return NewNotFoundError("application", "User doesnt have any applications!")
}

func ApplicationDeleteFailed() *AppError {
	return NewNotFoundError("application", "Failed to delete application!")
}

func ApplicationStatusUpdateFailed() *AppError {
	return NewNotFoundError("application", "Failed to update status!")
}

// --- affiliation ---

func NoAffiliationsFound() *AppError {
	return NewNotFoundError("affiliation", "No affiliations found!")
}

func UserHasNoAffiliations() *AppError {
	return NewNotFoundError("affiliation", "User doesn't have any affiliations!")
}

func AffiliationDeleteFailed() *AppError {
	return NewNotFoundError("affiliation", "Failed to delete affiliation!")
}

// --- preferences ---

func PreferencesNotFound() *AppError {
	return NewNotFoundError("preferences", "Preferences not found!")
}
