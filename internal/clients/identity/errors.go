package identity

import "fmt"

// IdentityError is a custom error type for identity errors
type IdentityError string

// Error implements the error interface
func (e IdentityError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    IdentityError = "config cannot be nil"
	ErrMissingGuild IdentityError = "guild ID cannot be empty"
	ErrNotLinked    IdentityError = "user not linked"
	ErrNotInGroup   IdentityError = "user is not in the group"
	ErrNoUsername   IdentityError = "linked account has no username"
)

// StatusError is returned for unexpected HTTP statuses
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status %d for %s", e.StatusCode, e.URL)
}
