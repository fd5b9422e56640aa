package models

import (
	"time"
)

// Ticket represents an open support ticket channel
type Ticket struct {
	// ID is the unique identifier for the ticket
	ID string

	// GuildID is the Discord server the ticket belongs to
	GuildID string

	// ChannelID is the private ticket channel
	ChannelID string

	// OwnerID is the user who opened the ticket
	OwnerID string

	// OwnerName is the username of the ticket owner
	OwnerName string

	// Reason is the text entered when opening the ticket
	Reason string

	// OpenedAt is when the ticket was opened
	OpenedAt time.Time

	// ClaimedBy is the staff user ID that claimed the ticket
	ClaimedBy string

	// ClaimedByName is the username of the claiming staff member
	ClaimedByName string
}

// IsClaimed reports whether a staff member has claimed the ticket
func (t *Ticket) IsClaimed() bool {
	return t.ClaimedBy != ""
}

// TranscriptMessage is one line of a ticket transcript
type TranscriptMessage struct {
	AuthorName string
	Content    string
	Timestamp  time.Time
	Embeds     int
	Files      []string
}
