package ticket

// TicketError is a custom error type for ticket errors
type TicketError string

// Error implements the error interface
func (e TicketError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTicketAlreadyOpen TicketError = "user already has an open ticket"
	ErrUserBlacklisted   TicketError = "user is blacklisted from opening tickets"
	ErrTicketNotFound    TicketError = "ticket not found"
	ErrAlreadyClaimed    TicketError = "ticket has already been claimed"
	ErrReasonRequired    TicketError = "a reason is required"
	ErrReasonTooLong     TicketError = "reason is too long"
	ErrInvalidName       TicketError = "ticket name must contain letters, digits or dashes"
	ErrChannelCreation   TicketError = "failed to create ticket channel"
	ErrNilInput          TicketError = "input cannot be nil"
	ErrNilConfig         TicketError = "config cannot be nil"
	ErrNilPlatform       TicketError = "platform cannot be nil"
	ErrNilRepository     TicketError = "repository cannot be nil"
	ErrNilClock          TicketError = "clock cannot be nil"
	ErrNilUUID           TicketError = "uuid generator cannot be nil"
	ErrNilMember         TicketError = "member cannot be nil"
	ErrMissingGuild      TicketError = "guild ID cannot be empty"
	ErrMissingChannel    TicketError = "channel ID cannot be empty"
)
