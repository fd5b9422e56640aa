package profile

import "context"

// Service defines the interface for profile and activity lookups
type Service interface {
	// GetProfile combines the linked account with the stored account record
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// GetActivity returns the staff activity counters of a user
	GetActivity(ctx context.Context, input *GetActivityInput) (*GetActivityOutput, error)
}
