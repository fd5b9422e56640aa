package ticket

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/waterstone/internal/repositories/ticket Repository

import (
	"context"

	"github.com/KirkDiggler/waterstone/internal/models"
)

// Repository defines the interface for ticket persistence
type Repository interface {
	// SaveTicket persists a ticket and indexes it by owner
	SaveTicket(ctx context.Context, input *SaveTicketInput) error

	// GetTicket retrieves a ticket by its channel
	GetTicket(ctx context.Context, input *GetTicketInput) (*models.Ticket, error)

	// GetOpenTicket retrieves the open ticket of an owner
	GetOpenTicket(ctx context.Context, input *GetOpenTicketInput) (*models.Ticket, error)

	// DeleteTicket removes a ticket and its owner index
	DeleteTicket(ctx context.Context, input *DeleteTicketInput) error

	// SetBlacklisted adds or removes a user from the guild's blacklist
	SetBlacklisted(ctx context.Context, input *SetBlacklistedInput) (*SetBlacklistedOutput, error)

	// IsBlacklisted reports whether a user may not open tickets
	IsBlacklisted(ctx context.Context, input *IsBlacklistedInput) (*IsBlacklistedOutput, error)
}
