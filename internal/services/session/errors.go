package session

// SessionError is a custom error type for session errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionAlreadyActive     SessionError = "a session is already active"
	ErrNoActiveSession          SessionError = "no active session"
	ErrScheduledSessionNotFound SessionError = "scheduled session not found"
	ErrAnnouncementUnavailable  SessionError = "session announcement channel unavailable"
	ErrEventCreationFailed      SessionError = "failed to create session event"
	ErrSessionInPast            SessionError = "cannot schedule a session in the past"
	ErrInvalidSchedule          SessionError = "invalid session schedule"
	ErrInvalidWindow            SessionError = "session must end after it starts"
	ErrNilInput                 SessionError = "input cannot be nil"
	ErrNilConfig                SessionError = "config cannot be nil"
	ErrNilPlatform              SessionError = "platform cannot be nil"
	ErrNilClock                 SessionError = "clock cannot be nil"
	ErrNilUUID                  SessionError = "uuid generator cannot be nil"
	ErrNilHost                  SessionError = "host cannot be nil"
	ErrMissingGuild             SessionError = "guild ID cannot be empty"
)
