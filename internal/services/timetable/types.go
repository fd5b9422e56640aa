package timetable

import (
	"github.com/KirkDiggler/waterstone/internal/models"
	timetableRepo "github.com/KirkDiggler/waterstone/internal/repositories/timetable"
)

// ClaimOutcome is the result of processing a free-text claim
type ClaimOutcome string

const (
	// ClaimOutcomeParseFailure means the message did not follow the claim format
	ClaimOutcomeParseFailure ClaimOutcome = "parse_failure"

	// ClaimOutcomeUnavailable means the slot is already claimed
	ClaimOutcomeUnavailable ClaimOutcome = "unavailable"

	// ClaimOutcomeClaimed means the claim was committed
	ClaimOutcomeClaimed ClaimOutcome = "claimed"
)

// Config holds configuration for the timetable service
type Config struct {
	// Repository mirrors claims to Redis. Nil keeps state in memory only.
	Repository timetableRepo.Repository
}

type ParseClaimInput struct {
	Raw string
}

type ParseClaimOutput struct {
	Claim *models.ClaimRequest
}

type ProcessClaimInput struct {
	GuildID string
	Raw     string

	// Claimant is the mention stored as the slot's staff
	Claimant string
}

type ProcessClaimOutput struct {
	Outcome ClaimOutcome

	// Claim is set unless the outcome is a parse failure
	Claim *models.ClaimRequest

	// ParseError explains a parse failure
	ParseError error

	// Existing is the claim that blocked an unavailable outcome
	Existing *models.TimetableSlot
}

type ClaimSlotInput struct {
	GuildID   string
	Period    string
	YearGroup string
	Staff     string
	Room      string
	Subject   string
}

type ClaimSlotOutput struct {
	Slot *models.TimetableSlot
}

type UnclaimSlotInput struct {
	GuildID   string
	Period    string
	YearGroup string
}

type UnclaimSlotOutput struct {
	Removed bool
}

type IsSlotAvailableInput struct {
	GuildID   string
	Period    string
	YearGroup string
}

type IsSlotAvailableOutput struct {
	Available bool
}

type ResetTimetableInput struct {
	GuildID string
}

type ResetTimetableOutput struct {
	Cleared int
}

type EditSlotInput struct {
	GuildID string

	// Period and YearGroup accept any form the claim grammar accepts
	Period    string
	YearGroup string
	Staff     string
	Subject   string

	// Room is ignored for the pastoral year groups
	Room string
}

type EditSlotOutput struct {
	Slot     *models.TimetableSlot
	Replaced bool
}

type GetBoardInput struct {
	GuildID string
}

// BoardCell is one year group row of a board period
type BoardCell struct {
	YearGroup string

	// Slot is nil when unclaimed
	Slot *models.TimetableSlot
}

// BoardPeriod is one period of the board in display order
type BoardPeriod struct {
	Period string
	Cells  []*BoardCell
}

type GetBoardOutput struct {
	Periods []*BoardPeriod
	Claimed int
}

type SetBoardMessageInput struct {
	GuildID   string
	MessageID string
}

type SetBoardMessageOutput struct {
}

type GetBoardMessageInput struct {
	GuildID string
}

type GetBoardMessageOutput struct {
	MessageID string
}

type RestoreInput struct {
}

type RestoreOutput struct {
	Guilds int
	Slots  int
}
