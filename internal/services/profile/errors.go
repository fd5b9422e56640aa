package profile

// ProfileError is a custom error type for profile errors
type ProfileError string

// Error implements the error interface
func (e ProfileError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput         ProfileError = "input cannot be nil"
	ErrNilConfig        ProfileError = "config cannot be nil"
	ErrNilRecordStore   ProfileError = "record store cannot be nil"
	ErrNilIdentity      ProfileError = "identity client cannot be nil"
	ErrMissingUser      ProfileError = "discord ID cannot be empty"
	ErrNoAccounts       ProfileError = "no accounts data found"
	ErrActivityNotFound ProfileError = "no activity data found"
)
