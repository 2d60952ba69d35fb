package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotConfigured means no validation rules or template exist for a
	// project; the commit is allowed through.
	ErrNotConfigured = errors.New("project is not configured for validation")

	// ErrInvalidIssueID means the candidate value is not a well-formed
	// issue identifier.
	ErrInvalidIssueID = errors.New("not a valid issue id")
	// ErrTrackerUnavailable wraps transport or protocol failures while
	// querying the issue tracker.
	ErrTrackerUnavailable = errors.New("issue tracker unavailable")

	ErrRunNotFound = errors.New("validation run not found")
)
