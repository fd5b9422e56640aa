package timetable

import "github.com/KirkDiggler/waterstone/internal/models"

type SaveSlotInput struct {
	GuildID string
	Slot    *models.TimetableSlot
}

type DeleteSlotInput struct {
	GuildID   string
	Period    string
	YearGroup string
}

type ResetGuildInput struct {
	GuildID string
}

type ListSlotsInput struct {
	GuildID string
}

type ListSlotsOutput struct {
	Slots []*models.TimetableSlot
}

type ListGuildsInput struct {
}

type ListGuildsOutput struct {
	GuildIDs []string
}

type SaveBoardMessageInput struct {
	GuildID   string
	MessageID string
}

type GetBoardMessageInput struct {
	GuildID string
}

type GetBoardMessageOutput struct {
	// MessageID is empty when no board has been posted
	MessageID string
}
