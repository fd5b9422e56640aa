package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRandomFact returns a random fact for the bot info card
	GetRandomFact(ctx context.Context, input *GetRandomFactInput) (*GetRandomFactOutput, error)

	// GetBotInfo returns the static bot info fields with a random fact
	GetBotInfo(ctx context.Context, input *GetBotInfoInput) (*GetBotInfoOutput, error)

	// GetPreset looks up a named send preset
	GetPreset(ctx context.Context, input *GetPresetInput) (*GetPresetOutput, error)

	// ListPresets returns the preset names in sorted order
	ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error)

	// NextStatus returns the next custom status in the rotation
	NextStatus(ctx context.Context, input *NextStatusInput) (*NextStatusOutput, error)
}
