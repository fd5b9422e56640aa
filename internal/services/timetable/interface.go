package timetable

import "context"

// Service defines the interface for timetable operations
type Service interface {
	// ParseClaim parses a free-text claim without touching state
	ParseClaim(ctx context.Context, input *ParseClaimInput) (*ParseClaimOutput, error)

	// ProcessClaim parses a claim and commits it if the slot is free
	ProcessClaim(ctx context.Context, input *ProcessClaimInput) (*ProcessClaimOutput, error)

	// ClaimSlot stores a claim, overwriting any existing one
	ClaimSlot(ctx context.Context, input *ClaimSlotInput) (*ClaimSlotOutput, error)

	// UnclaimSlot removes a claim and reports whether it existed
	UnclaimSlot(ctx context.Context, input *UnclaimSlotInput) (*UnclaimSlotOutput, error)

	// IsSlotAvailable reports whether a slot has no claim
	IsSlotAvailable(ctx context.Context, input *IsSlotAvailableInput) (*IsSlotAvailableOutput, error)

	// ResetTimetable clears every claim of a guild
	ResetTimetable(ctx context.Context, input *ResetTimetableInput) (*ResetTimetableOutput, error)

	// EditSlot is the administrative overwrite path
	EditSlot(ctx context.Context, input *EditSlotInput) (*EditSlotOutput, error)

	// GetBoard returns the layout with current claims for rendering
	GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error)

	// SetBoardMessage remembers the rendered board message of a guild
	SetBoardMessage(ctx context.Context, input *SetBoardMessageInput) (*SetBoardMessageOutput, error)

	// GetBoardMessage returns the rendered board message of a guild
	GetBoardMessage(ctx context.Context, input *GetBoardMessageInput) (*GetBoardMessageOutput, error)

	// Restore reloads mirrored claims into memory
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)
}
