package identity

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/waterstone/internal/clients/identity Client

import (
	"context"

	"github.com/KirkDiggler/waterstone/internal/models"
)

// Client resolves Discord users to their linked Roblox accounts
type Client interface {
	// GetUser returns the linked account of a Discord user
	GetUser(ctx context.Context, discordID string) (*models.LinkedAccount, error)

	// GetPrimaryGroup returns the user's role in the configured group
	GetPrimaryGroup(ctx context.Context, discordID string) (*models.GroupMembership, error)

	// GetRank returns the user's role name in the configured group
	GetRank(ctx context.Context, discordID string) (string, error)

	// GetUsername returns the linked Roblox username
	GetUsername(ctx context.Context, discordID string) (string, error)

	// UpdateUser asks the linking service to refresh the user's roles
	UpdateUser(ctx context.Context, discordID string) error
}
