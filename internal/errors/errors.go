package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAccessDenied is returned on any role or ownership mismatch.
	ErrAccessDenied = errors.New("Access denied")
	// ErrPendingApproval is returned when an unapproved employer attempts a privileged write.
	ErrPendingApproval = errors.New("Your account is pending approval to post jobs")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User not found")
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("Job not found")
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = errors.New("Application not found")
	// ErrBookmarkNotFound is returned when a bookmark is not found.
	ErrBookmarkNotFound = errors.New("Bookmark not found")
	// ErrCompanyNotFound is returned when a company profile is not found.
	ErrCompanyNotFound = errors.New("Company not found")
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("User already exists")
	// ErrAlreadyApplied is returned on a duplicate application for the same job.
	ErrAlreadyApplied = errors.New("Already applied for this job")
	// ErrAlreadyBookmarked is returned on a duplicate bookmark for the same job.
	ErrAlreadyBookmarked = errors.New("Job already bookmarked")
	// ErrNotAnEmployer is returned when approving a user whose role is not employer.
	ErrNotAnEmployer = errors.New("User is not an employer")
	// ErrInvalidRole is returned when a role value is outside the known set.
	ErrInvalidRole = errors.New("Invalid role")
	// ErrInvalidJobType is returned when a job type value is outside the known set.
	ErrInvalidJobType = errors.New("Invalid job type")
	// ErrInvalidStatus is returned when an application status value is outside the known set.
	ErrInvalidStatus = errors.New("Invalid application status")
	// ErrInvalidCompanySize is returned when a company size bucket is outside the known set.
	ErrInvalidCompanySize = errors.New("Invalid company size")
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Msg: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse to
// a generic 500 with no internal detail leaked.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrPendingApproval):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrJobNotFound),
		errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrBookmarkNotFound),
		errors.Is(err, ErrCompanyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUserExists),
		errors.Is(err, ErrAlreadyApplied),
		errors.Is(err, ErrAlreadyBookmarked),
		errors.Is(err, ErrNotAnEmployer),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidJobType),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidCompanySize):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server error")
	}
}
