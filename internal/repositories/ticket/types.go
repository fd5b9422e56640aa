package ticket

import "github.com/KirkDiggler/waterstone/internal/models"

type SaveTicketInput struct {
	Ticket *models.Ticket
}

type GetTicketInput struct {
	ChannelID string
}

type GetOpenTicketInput struct {
	GuildID string
	OwnerID string
}

type DeleteTicketInput struct {
	ChannelID string
}

type SetBlacklistedInput struct {
	GuildID     string
	UserID      string
	Blacklisted bool
}

type SetBlacklistedOutput struct {
	// Changed is false when the user already had the requested state
	Changed bool
}

type IsBlacklistedInput struct {
	GuildID string
	UserID  string
}

type IsBlacklistedOutput struct {
	Blacklisted bool
}
