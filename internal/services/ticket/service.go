package ticket

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/waterstone/internal/common/clock"
	"github.com/KirkDiggler/waterstone/internal/common/uuid"
	"github.com/KirkDiggler/waterstone/internal/models"
	ticketRepo "github.com/KirkDiggler/waterstone/internal/repositories/ticket"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("ticket")

// service implements the Service interface
type service struct {
	platform   Platform
	repo       ticketRepo.Repository
	clock      clock.Clock
	uuid       uuid.UUID
	closeDelay time.Duration

	// openMu serializes eligibility checks with channel creation
	openMu sync.Mutex
}

// New creates a new ticket service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	closeDelay := cfg.CloseDelay
	if closeDelay == 0 {
		closeDelay = DefaultCloseDelay
	}

	return &service{
		platform:   cfg.Platform,
		repo:       cfg.Repository,
		clock:      cfg.Clock,
		uuid:       cfg.UUID,
		closeDelay: closeDelay,
	}, nil
}

// CheckEligibility refuses users with an open ticket or on the blacklist
func (s *service) CheckEligibility(ctx context.Context, input *CheckEligibilityInput) (*CheckEligibilityOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	existing, err := s.repo.GetOpenTicket(ctx, &ticketRepo.GetOpenTicketInput{
		GuildID: input.GuildID,
		OwnerID: input.UserID,
	})
	if err == nil {
		return &CheckEligibilityOutput{Existing: existing}, ErrTicketAlreadyOpen
	}
	if !errors.Is(err, ticketRepo.ErrTicketNotFound) {
		return nil, err
	}

	status, err := s.repo.IsBlacklisted(ctx, &ticketRepo.IsBlacklistedInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, err
	}
	if status.Blacklisted {
		return &CheckEligibilityOutput{}, ErrUserBlacklisted
	}

	return &CheckEligibilityOutput{}, nil
}

// OpenTicket creates the channel, greets the owner and records the ticket
func (s *service) OpenTicket(ctx context.Context, input *OpenTicketInput) (*OpenTicketOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Owner == nil {
		return nil, ErrNilMember
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	if len([]rune(reason)) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}

	s.openMu.Lock()
	defer s.openMu.Unlock()

	if _, err := s.CheckEligibility(ctx, &CheckEligibilityInput{
		GuildID: input.GuildID,
		UserID:  input.Owner.ID,
	}); err != nil {
		return nil, err
	}

	name, err := ChannelName(input.Owner.Username)
	if err != nil {
		name = ChannelPrefix + input.Owner.ID
	}

	channelID, err := s.platform.CreateTicketChannel(ctx, input.GuildID, input.Owner, name, reason)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChannelCreation, err)
	}

	ticket := &models.Ticket{
		ID:        s.uuid.NewUUID(),
		GuildID:   input.GuildID,
		ChannelID: channelID,
		OwnerID:   input.Owner.ID,
		OwnerName: input.Owner.Username,
		Reason:    reason,
		OpenedAt:  s.clock.Now(),
	}

	if err := s.repo.SaveTicket(ctx, &ticketRepo.SaveTicketInput{Ticket: ticket}); err != nil {
		// An unrecorded channel can never be closed through the bot
		if delErr := s.platform.DeleteChannel(ctx, channelID, "Ticket could not be recorded"); delErr != nil {
			log.Warningf("failed to remove unrecorded ticket channel %s: %v", channelID, delErr)
		}
		return nil, err
	}

	if err := s.platform.PingStaff(ctx, channelID); err != nil {
		log.Warningf("failed to ping staff in ticket %s: %v", channelID, err)
	}
	if err := s.platform.PostWelcome(ctx, ticket); err != nil {
		log.Warningf("failed to post welcome in ticket %s: %v", channelID, err)
	}

	log.Infof("ticket %s opened by %s in channel %s", ticket.ID, ticket.OwnerID, channelID)

	return &OpenTicketOutput{
		Ticket: ticket,
	}, nil
}

// CloseTicket uploads the transcript, forgets the ticket and deletes the
// channel once the grace period has passed. Channels without a record are
// still closed.
func (s *service) CloseTicket(ctx context.Context, input *CloseTicketInput) (*CloseTicketOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}
	if input.ClosedBy == nil {
		return nil, ErrNilMember
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = DefaultCloseReason
	}

	ticket, err := s.repo.GetTicket(ctx, &ticketRepo.GetTicketInput{ChannelID: input.ChannelID})
	switch {
	case errors.Is(err, ticketRepo.ErrTicketNotFound):
		ticket = &models.Ticket{GuildID: input.GuildID, ChannelID: input.ChannelID}
	case err != nil:
		return nil, err
	}

	messages, err := s.platform.FetchHistory(ctx, input.ChannelID)
	if err != nil {
		log.Warningf("failed to fetch history of ticket %s: %v", input.ChannelID, err)
	}
	transcript := BuildTranscript(ticket, input.ClosedBy, reason, s.clock.Now(), messages)

	if err := s.platform.UploadTranscript(ctx, ticket, input.ClosedBy, reason, transcript); err != nil {
		log.Warningf("failed to upload transcript of ticket %s: %v", input.ChannelID, err)
	}

	if ticket.ID != "" {
		err := s.repo.DeleteTicket(ctx, &ticketRepo.DeleteTicketInput{ChannelID: input.ChannelID})
		if err != nil && !errors.Is(err, ticketRepo.ErrTicketNotFound) {
			return nil, err
		}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.closeDelay):
	}

	deleteReason := fmt.Sprintf("Ticket closed by %s - %s", input.ClosedBy.Username, reason)
	if err := s.platform.DeleteChannel(ctx, input.ChannelID, deleteReason); err != nil {
		return nil, fmt.Errorf("failed to delete ticket channel: %w", err)
	}

	log.Infof("ticket in channel %s closed by %s", input.ChannelID, input.ClosedBy.ID)

	return &CloseTicketOutput{
		Ticket:     ticket,
		Reason:     reason,
		Transcript: transcript,
	}, nil
}

// AddMember grants a user access to the ticket channel
func (s *service) AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	if err := s.platform.AllowMember(ctx, input.ChannelID, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &AddMemberOutput{}, nil
}

// RemoveMember deletes a user's overwrite on the ticket channel
func (s *service) RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	if err := s.platform.RemoveMember(ctx, input.ChannelID, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	return &RemoveMemberOutput{}, nil
}

// ClaimTicket records the claiming staff member and updates the topic
func (s *service) ClaimTicket(ctx context.Context, input *ClaimTicketInput) (*ClaimTicketOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Staff == nil {
		return nil, ErrNilMember
	}

	ticket, err := s.repo.GetTicket(ctx, &ticketRepo.GetTicketInput{ChannelID: input.ChannelID})
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	if ticket.IsClaimed() {
		return &ClaimTicketOutput{Ticket: ticket}, ErrAlreadyClaimed
	}

	ticket.ClaimedBy = input.Staff.ID
	ticket.ClaimedByName = input.Staff.Username
	if err := s.repo.SaveTicket(ctx, &ticketRepo.SaveTicketInput{Ticket: ticket}); err != nil {
		return nil, err
	}

	if err := s.platform.SetTopic(ctx, ticket.ChannelID, "Claimed by: "+input.Staff.Username); err != nil {
		log.Warningf("failed to update topic of ticket %s: %v", ticket.ChannelID, err)
	}

	return &ClaimTicketOutput{
		Ticket: ticket,
	}, nil
}

// RenameTicket sanitizes the name and renames the channel
func (s *service) RenameTicket(ctx context.Context, input *RenameTicketInput) (*RenameTicketOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	name, err := ChannelName(input.Name)
	if err != nil {
		return nil, err
	}

	if err := s.platform.RenameChannel(ctx, input.ChannelID, name); err != nil {
		return nil, fmt.Errorf("failed to rename ticket: %w", err)
	}

	return &RenameTicketOutput{
		Name: name,
	}, nil
}

// SetBlacklisted updates the guild's ticket blacklist
func (s *service) SetBlacklisted(ctx context.Context, input *SetBlacklistedInput) (*SetBlacklistedOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuild
	}

	output, err := s.repo.SetBlacklisted(ctx, &ticketRepo.SetBlacklistedInput{
		GuildID:     input.GuildID,
		UserID:      input.UserID,
		Blacklisted: input.Blacklisted,
	})
	if err != nil {
		return nil, err
	}

	log.Infof("ticket blacklist for %s in guild %s set to %t", input.UserID, input.GuildID, input.Blacklisted)

	return &SetBlacklistedOutput{
		Changed: output.Changed,
	}, nil
}

// GetTicket returns the recorded ticket of a channel
func (s *service) GetTicket(ctx context.Context, input *GetTicketInput) (*GetTicketOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	ticket, err := s.repo.GetTicket(ctx, &ticketRepo.GetTicketInput{ChannelID: input.ChannelID})
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	return &GetTicketOutput{
		Ticket: ticket,
	}, nil
}
