package ticket

import (
	"time"

	"github.com/KirkDiggler/waterstone/internal/common/clock"
	"github.com/KirkDiggler/waterstone/internal/common/uuid"
	"github.com/KirkDiggler/waterstone/internal/models"
	ticketRepo "github.com/KirkDiggler/waterstone/internal/repositories/ticket"
)

const (
	// MaxReasonLength is the limit of the reason entered when opening
	MaxReasonLength = 500

	// DefaultCloseDelay is how long a closed ticket stays before deletion
	DefaultCloseDelay = 3 * time.Second

	// DefaultCloseReason is used when staff close without a reason
	DefaultCloseReason = "No reason provided"

	// ChannelPrefix starts every ticket channel name
	ChannelPrefix = "ticket-"
)

// Config holds the dependencies of the ticket service
type Config struct {
	Platform   Platform
	Repository ticketRepo.Repository
	Clock      clock.Clock
	UUID       uuid.UUID

	// CloseDelay defaults to DefaultCloseDelay
	CloseDelay time.Duration
}

type CheckEligibilityInput struct {
	GuildID string
	UserID  string
}

type CheckEligibilityOutput struct {
	// Existing is the user's open ticket when ErrTicketAlreadyOpen is returned
	Existing *models.Ticket
}

type OpenTicketInput struct {
	GuildID string
	Owner   *models.Member
	Reason  string
}

type OpenTicketOutput struct {
	Ticket *models.Ticket
}

type CloseTicketInput struct {
	GuildID   string
	ChannelID string
	ClosedBy  *models.Member
	Reason    string
}

type CloseTicketOutput struct {
	// Ticket is synthesized from the channel when no record exists
	Ticket     *models.Ticket
	Reason     string
	Transcript []byte
}

type AddMemberInput struct {
	ChannelID string
	UserID    string
}

type AddMemberOutput struct {
}

type RemoveMemberInput struct {
	ChannelID string
	UserID    string
}

type RemoveMemberOutput struct {
}

type ClaimTicketInput struct {
	ChannelID string
	Staff     *models.Member
}

type ClaimTicketOutput struct {
	Ticket *models.Ticket
}

type RenameTicketInput struct {
	ChannelID string
	Name      string
}

type RenameTicketOutput struct {
	Name string
}

type SetBlacklistedInput struct {
	GuildID     string
	UserID      string
	Blacklisted bool
}

type SetBlacklistedOutput struct {
	Changed bool
}

type GetTicketInput struct {
	ChannelID string
}

type GetTicketOutput struct {
	Ticket *models.Ticket
}
