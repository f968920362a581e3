package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for common business-logic and
domain errors. Repositories return their own sentinel errors; services
translate them into these.
*/

// =========================================================================
// Factory functions (wrap repository errors)
// =========================================================================

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate error into a 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict is the general conflict factory (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// =========================================================================
// Factory functions (fresh errors)
// =========================================================================

// ErrInvalidOperation builds a 400 for operations the domain forbids.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus builds a 400 for status values or transitions the
// domain does not allow.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Predefined variables (frequent, static errors)
// =========================================================================

// ErrInvalidUserRole is returned when an operation is not available to
// the caller's role.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrCannotModifySelf is returned when an admin targets their own account.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// ErrInsufficientPermissions is returned when a non-admin attempts an
// admin-only action.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Uploads & files ---

// ErrFileTooLarge: upload exceeds the per-request size limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType: MIME type is not allowed for this upload.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Jobs & applications ---

// ErrAlreadyApplied: the seeker has already applied to this job.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrJobAlreadySaved: the job is already bookmarked by this user.
var ErrJobAlreadySaved = New(
	CodeAlreadyExists,
	"saved_job",
	"Job is already saved",
	http.StatusConflict,
)

// --- Auth & user status ---

// ErrEmailAlreadyExists: email is already registered.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials: wrong email or password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken: invalid or expired token (access, refresh, verify).
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserDeactivated: the account was deactivated by an admin.
var ErrUserDeactivated = New(
	CodeForbidden,
	"auth",
	"Your account has been deactivated",
	http.StatusForbidden,
)

// ErrTooManyRequests: rate limit hit for this client.
var ErrTooManyRequests = New(
	CodeRateLimited,
	"auth",
	"Too many requests, slow down",
	http.StatusTooManyRequests,
)

// --- Profiles & reviews ---

// ErrProfileNotPublic: the profile owner disabled public visibility.
var ErrProfileNotPublic = New(
	CodeForbidden,
	"profile",
	"This profile is private",
	http.StatusForbidden,
)

// ErrAlreadyReviewed: one review per user per company.
var ErrAlreadyReviewed = New(
	CodeAlreadyExists,
	"review",
	"You have already reviewed this company",
	http.StatusConflict,
)

// --- Job alerts ---

// ErrDuplicateAlert: an alert with the same title already exists.
var ErrDuplicateAlert = New(
	CodeAlreadyExists,
	"job_alert",
	"A job alert with this title already exists",
	http.StatusConflict,
)

// --- External services ---

// ErrAIUnavailable: the analysis backend is not configured or failed.
var ErrAIUnavailable = New(
	CodeExternalServiceError,
	"ai",
	"AI service is unavailable",
	http.StatusServiceUnavailable,
)
