package messaging

// MessagingError is a custom error type for messaging errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput      MessagingError = "input cannot be nil"
	ErrUnknownPreset MessagingError = "unknown preset"
	ErrMissingPreset MessagingError = "preset name cannot be empty"
)
