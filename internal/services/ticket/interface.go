package ticket

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go github.com/KirkDiggler/waterstone/internal/services/ticket Platform

import (
	"context"

	"github.com/KirkDiggler/waterstone/internal/models"
)

// Service defines the interface for the support ticket workflow
type Service interface {
	// CheckEligibility reports whether a user may open a ticket
	CheckEligibility(ctx context.Context, input *CheckEligibilityInput) (*CheckEligibilityOutput, error)

	// OpenTicket creates the private ticket channel and records it
	OpenTicket(ctx context.Context, input *OpenTicketInput) (*OpenTicketOutput, error)

	// CloseTicket archives the transcript and deletes the channel
	CloseTicket(ctx context.Context, input *CloseTicketInput) (*CloseTicketOutput, error)

	// AddMember grants a user access to the ticket
	AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error)

	// RemoveMember revokes a user's access to the ticket
	RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error)

	// ClaimTicket assigns the ticket to a staff member
	ClaimTicket(ctx context.Context, input *ClaimTicketInput) (*ClaimTicketOutput, error)

	// RenameTicket renames the ticket channel
	RenameTicket(ctx context.Context, input *RenameTicketInput) (*RenameTicketOutput, error)

	// SetBlacklisted bans or unbans a user from opening tickets
	SetBlacklisted(ctx context.Context, input *SetBlacklistedInput) (*SetBlacklistedOutput, error)

	// GetTicket returns the ticket recorded for a channel
	GetTicket(ctx context.Context, input *GetTicketInput) (*GetTicketOutput, error)
}

// Platform is the chat platform surface tickets depend on
type Platform interface {
	// CreateTicketChannel creates the private channel and returns its ID
	CreateTicketChannel(ctx context.Context, guildID string, owner *models.Member, name, reason string) (string, error)

	// PingStaff notifies the staff role in the channel
	PingStaff(ctx context.Context, channelID string) error

	// PostWelcome posts the opening embeds for the ticket
	PostWelcome(ctx context.Context, ticket *models.Ticket) error

	// AllowMember grants a user access to the channel
	AllowMember(ctx context.Context, channelID, userID string) error

	// RemoveMember deletes a user's permission overwrite
	RemoveMember(ctx context.Context, channelID, userID string) error

	// SetTopic changes the channel topic
	SetTopic(ctx context.Context, channelID, topic string) error

	// RenameChannel changes the channel name
	RenameChannel(ctx context.Context, channelID, name string) error

	// FetchHistory returns the channel's messages oldest first
	FetchHistory(ctx context.Context, channelID string) ([]*models.TranscriptMessage, error)

	// UploadTranscript posts the transcript file to the transcript channel
	UploadTranscript(ctx context.Context, ticket *models.Ticket, closedBy *models.Member, reason string, transcript []byte) error

	// DeleteChannel removes the channel
	DeleteChannel(ctx context.Context, channelID, reason string) error
}
