package timetable

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/waterstone/internal/models"
	timetableRepo "github.com/KirkDiggler/waterstone/internal/repositories/timetable"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("timetable")

// service implements the Service interface. The in-memory maps are
// authoritative; the repository only mirrors them.
type service struct {
	repo timetableRepo.Repository

	// writes serializes each mutation with its mirror write so the
	// mirror sees them in the same order as memory
	writes sync.Mutex

	mu     sync.Mutex
	slots  map[string]map[string]*models.TimetableSlot
	boards map[string]string
}

// New creates a new timetable service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return &service{
		repo:   cfg.Repository,
		slots:  make(map[string]map[string]*models.TimetableSlot),
		boards: make(map[string]string),
	}, nil
}

// ParseClaim parses a free-text claim
func (s *service) ParseClaim(ctx context.Context, input *ParseClaimInput) (*ParseClaimOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	claim, err := Parse(input.Raw)
	if err != nil {
		return nil, err
	}

	return &ParseClaimOutput{
		Claim: claim,
	}, nil
}

// ProcessClaim parses, checks availability and commits a claim
func (s *service) ProcessClaim(ctx context.Context, input *ProcessClaimInput) (*ProcessClaimOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}
	if input.Claimant == "" {
		return nil, ErrNilClaimant
	}

	claim, err := Parse(input.Raw)
	if err != nil {
		log.Debugf("claim in guild %s did not parse: %v", input.GuildID, err)
		return &ProcessClaimOutput{
			Outcome:    ClaimOutcomeParseFailure,
			ParseError: err,
		}, nil
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	s.mu.Lock()
	key := models.SlotKey(claim.Period, claim.YearGroup)
	if existing, ok := s.slots[input.GuildID][key]; ok {
		s.mu.Unlock()
		copied := *existing
		return &ProcessClaimOutput{
			Outcome:  ClaimOutcomeUnavailable,
			Claim:    claim,
			Existing: &copied,
		}, nil
	}
	slot := &models.TimetableSlot{
		Period:    claim.Period,
		YearGroup: claim.YearGroup,
		Staff:     input.Claimant,
		Room:      claim.Room,
		Subject:   claim.Subject,
	}
	s.store(input.GuildID, slot)
	s.mu.Unlock()

	log.Infof("%s claimed %s in guild %s", input.Claimant, key, input.GuildID)
	s.mirrorSave(ctx, input.GuildID, slot)

	return &ProcessClaimOutput{
		Outcome: ClaimOutcomeClaimed,
		Claim:   claim,
	}, nil
}

// ClaimSlot is an unconditional upsert of canonical values
func (s *service) ClaimSlot(ctx context.Context, input *ClaimSlotInput) (*ClaimSlotOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	period, ok := NormalizePeriod(input.Period)
	if !ok {
		return nil, ErrInvalidPeriod
	}
	yearGroup, ok := NormalizeYearGroup(input.YearGroup)
	if !ok {
		return nil, ErrInvalidYearGroup
	}
	if !IsValidSlot(period, yearGroup) {
		return nil, ErrUnknownSlot
	}

	slot := &models.TimetableSlot{
		Period:    period,
		YearGroup: yearGroup,
		Staff:     input.Staff,
		Room:      input.Room,
		Subject:   input.Subject,
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	s.mu.Lock()
	s.store(input.GuildID, slot)
	s.mu.Unlock()

	s.mirrorSave(ctx, input.GuildID, slot)

	copied := *slot
	return &ClaimSlotOutput{
		Slot: &copied,
	}, nil
}

// UnclaimSlot removes a claim if present
func (s *service) UnclaimSlot(ctx context.Context, input *UnclaimSlotInput) (*UnclaimSlotOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	key := models.SlotKey(input.Period, input.YearGroup)

	s.writes.Lock()
	defer s.writes.Unlock()

	s.mu.Lock()
	_, ok := s.slots[input.GuildID][key]
	if ok {
		delete(s.slots[input.GuildID], key)
	}
	s.mu.Unlock()

	if !ok {
		return &UnclaimSlotOutput{}, nil
	}

	if s.repo != nil {
		err := s.repo.DeleteSlot(ctx, &timetableRepo.DeleteSlotInput{
			GuildID:   input.GuildID,
			Period:    input.Period,
			YearGroup: input.YearGroup,
		})
		if err != nil {
			log.Warningf("failed to mirror unclaim of %s in guild %s: %v", key, input.GuildID, err)
		}
	}

	return &UnclaimSlotOutput{
		Removed: true,
	}, nil
}

// IsSlotAvailable reports whether the slot has no claim
func (s *service) IsSlotAvailable(ctx context.Context, input *IsSlotAvailableInput) (*IsSlotAvailableOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	s.mu.Lock()
	_, ok := s.slots[input.GuildID][models.SlotKey(input.Period, input.YearGroup)]
	s.mu.Unlock()

	return &IsSlotAvailableOutput{
		Available: !ok,
	}, nil
}

// ResetTimetable clears all claims of a guild
func (s *service) ResetTimetable(ctx context.Context, input *ResetTimetableInput) (*ResetTimetableOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	s.mu.Lock()
	cleared := len(s.slots[input.GuildID])
	delete(s.slots, input.GuildID)
	s.mu.Unlock()

	if s.repo != nil {
		err := s.repo.ResetGuild(ctx, &timetableRepo.ResetGuildInput{
			GuildID: input.GuildID,
		})
		if err != nil {
			log.Warningf("failed to mirror reset of guild %s: %v", input.GuildID, err)
		}
	}

	log.Infof("timetable of guild %s reset, %d claims cleared", input.GuildID, cleared)

	return &ResetTimetableOutput{
		Cleared: cleared,
	}, nil
}

// EditSlot normalizes the slot, fills automatic rooms and overwrites
func (s *service) EditSlot(ctx context.Context, input *EditSlotInput) (*EditSlotOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}
	if input.Staff == "" {
		return nil, ErrNilClaimant
	}

	period, ok := NormalizePeriod(input.Period)
	if !ok {
		return nil, ErrInvalidPeriod
	}
	yearGroup, ok := NormalizeYearGroup(input.YearGroup)
	if !ok {
		return nil, ErrInvalidYearGroup
	}
	if !IsValidSlot(period, yearGroup) {
		return nil, ErrUnknownSlot
	}

	slot := &models.TimetableSlot{
		Period:    period,
		YearGroup: yearGroup,
		Staff:     input.Staff,
		Room:      input.Room,
		Subject:   input.Subject,
	}
	if room, ok := AutoRoom(yearGroup); ok {
		slot.Room = room
		slot.Subject = yearGroup
	} else if slot.Room == "" {
		return nil, ErrRoomRequired
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	s.mu.Lock()
	_, replaced := s.slots[input.GuildID][slot.Key()]
	s.store(input.GuildID, slot)
	s.mu.Unlock()

	s.mirrorSave(ctx, input.GuildID, slot)

	copied := *slot
	return &EditSlotOutput{
		Slot:     &copied,
		Replaced: replaced,
	}, nil
}

// GetBoard returns the layout in display order with current claims
func (s *service) GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	output := &GetBoardOutput{}
	claims := s.slots[input.GuildID]
	for _, period := range layout {
		bp := &BoardPeriod{Period: period.Period}
		for _, yearGroup := range period.YearGroups {
			cell := &BoardCell{YearGroup: yearGroup}
			if slot, ok := claims[models.SlotKey(period.Period, yearGroup)]; ok {
				copied := *slot
				cell.Slot = &copied
				output.Claimed++
			}
			bp.Cells = append(bp.Cells, cell)
		}
		output.Periods = append(output.Periods, bp)
	}

	return output, nil
}

// SetBoardMessage remembers the board message, clearing it when empty
func (s *service) SetBoardMessage(ctx context.Context, input *SetBoardMessageInput) (*SetBoardMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	s.mu.Lock()
	if input.MessageID == "" {
		delete(s.boards, input.GuildID)
	} else {
		s.boards[input.GuildID] = input.MessageID
	}
	s.mu.Unlock()

	if s.repo != nil {
		err := s.repo.SaveBoardMessage(ctx, &timetableRepo.SaveBoardMessageInput{
			GuildID:   input.GuildID,
			MessageID: input.MessageID,
		})
		if err != nil {
			log.Warningf("failed to mirror board message of guild %s: %v", input.GuildID, err)
		}
	}

	return &SetBoardMessageOutput{}, nil
}

// GetBoardMessage returns the remembered board message
func (s *service) GetBoardMessage(ctx context.Context, input *GetBoardMessageInput) (*GetBoardMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetBoardMessageOutput{
		MessageID: s.boards[input.GuildID],
	}, nil
}

// Restore loads mirrored claims and board messages. Entries that are no
// longer part of the layout are skipped.
func (s *service) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	if s.repo == nil {
		return &RestoreOutput{}, nil
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	guilds, err := s.repo.ListGuilds(ctx, &timetableRepo.ListGuildsInput{})
	if err != nil {
		return nil, err
	}

	output := &RestoreOutput{}
	for _, guildID := range guilds.GuildIDs {
		slots, err := s.repo.ListSlots(ctx, &timetableRepo.ListSlotsInput{
			GuildID: guildID,
		})
		if err != nil {
			return nil, err
		}
		board, err := s.repo.GetBoardMessage(ctx, &timetableRepo.GetBoardMessageInput{
			GuildID: guildID,
		})
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		for _, slot := range slots.Slots {
			if !IsValidSlot(slot.Period, slot.YearGroup) {
				log.Warningf("skipping unknown slot %s in guild %s", slot.Key(), guildID)
				continue
			}
			s.store(guildID, slot)
			output.Slots++
		}
		if board.MessageID != "" {
			s.boards[guildID] = board.MessageID
		}
		s.mu.Unlock()
		output.Guilds++
	}

	log.Infof("restored %d claims across %d guilds", output.Slots, output.Guilds)
	return output, nil
}

// store must be called with mu held
func (s *service) store(guildID string, slot *models.TimetableSlot) {
	claims, ok := s.slots[guildID]
	if !ok {
		claims = make(map[string]*models.TimetableSlot)
		s.slots[guildID] = claims
	}
	copied := *slot
	claims[slot.Key()] = &copied
}

func (s *service) mirrorSave(ctx context.Context, guildID string, slot *models.TimetableSlot) {
	if s.repo == nil {
		return
	}
	err := s.repo.SaveSlot(ctx, &timetableRepo.SaveSlotInput{
		GuildID: guildID,
		Slot:    slot,
	})
	if err != nil {
		log.Warningf("failed to mirror claim of %s in guild %s: %v", slot.Key(), guildID, err)
	}
}

// IsParseFailure reports whether err came from the claim grammar
func IsParseFailure(err error) bool {
	return errors.Is(err, ErrMalformedClaim)
}
