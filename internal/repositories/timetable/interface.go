package timetable

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/waterstone/internal/repositories/timetable Repository

import (
	"context"
)

// Repository mirrors timetable claims outside the process
type Repository interface {
	// SaveSlot stores or replaces a claimed slot
	SaveSlot(ctx context.Context, input *SaveSlotInput) error

	// DeleteSlot removes a claimed slot
	DeleteSlot(ctx context.Context, input *DeleteSlotInput) error

	// ResetGuild removes every claim of a guild
	ResetGuild(ctx context.Context, input *ResetGuildInput) error

	// ListSlots returns every claim of a guild
	ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error)

	// ListGuilds returns the guilds that have mirrored state
	ListGuilds(ctx context.Context, input *ListGuildsInput) (*ListGuildsOutput, error)

	// SaveBoardMessage records the message ID of the rendered timetable
	SaveBoardMessage(ctx context.Context, input *SaveBoardMessageInput) error

	// GetBoardMessage returns the message ID of the rendered timetable
	GetBoardMessage(ctx context.Context, input *GetBoardMessageInput) (*GetBoardMessageOutput, error)
}
