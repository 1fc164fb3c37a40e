package services

import "errors"

var (
	// ErrManagerNotFound is returned when a manager name is not in managers.json
	ErrManagerNotFound = errors.New("manager not found")

	// ErrSourceUnsupported is returned for an unknown data source, or an
	// operation the configured source cannot perform
	ErrSourceUnsupported = errors.New("data source not supported")

	// ErrInvalidCredentials is returned when an admin login fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminDisabled is returned when no admin password is configured
	ErrAdminDisabled = errors.New("admin access is not configured")

	// ErrMailerDisabled is returned when ballots are sent without an SMTP server
	ErrMailerDisabled = errors.New("ballot mail is not configured")
)

// LoadFailureMessage is the only detail shown to visitors when league data cannot be loaded
const LoadFailureMessage = "Failed to load league history data. Please try again later."
