package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/waterstone/internal/services/ticket"
	"github.com/bwmarrin/discordgo"
)

// Ticket component and modal IDs
const (
	ButtonCreateTicket = "create_ticket_button"
	ModalTicketReason  = "ticket_reason_modal"
	InputTicketReason  = "ticket_reason"

	ticketReasonMaxLength = ticket.MaxReasonLength
)

const ticketMemberPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionAttachFiles |
	discordgo.PermissionEmbedLinks |
	discordgo.PermissionReadMessageHistory

const panelScanLimit = 100

// TicketCommand handles the /ticket command and the ticket panel
type TicketCommand struct {
	BaseCommand
	ticketService    ticket.Service
	permissions      *Permissions
	ticketChannelID  string
	ticketCategoryID string
}

// NewTicketCommand creates a new ticket command handler
func NewTicketCommand(ticketService ticket.Service, permissions *Permissions, ticketChannelID, ticketCategoryID string) *TicketCommand {
	userOpt := func(description string) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: description,
			Required:    true,
		}}
	}

	return &TicketCommand{
		BaseCommand: BaseCommand{
			Name:        "ticket",
			Description: "Ticket management commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "close",
					Description: "Close the current ticket",
					Options: []*discordgo.ApplicationCommandOption{{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "reason",
						Description: "Reason for closing the ticket",
					}},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a user to the ticket",
					Options:     userOpt("The user to add"),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a user from the ticket",
					Options:     userOpt("The user to remove"),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "claim",
					Description: "Claim the current ticket",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rename",
					Description: "Rename the current ticket",
					Options: []*discordgo.ApplicationCommandOption{{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "new_name",
						Description: "The new name for the ticket (without 'ticket-' prefix)",
						Required:    true,
					}},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "blacklist",
					Description: "Stop a user from opening tickets",
					Options:     userOpt("The user to blacklist"),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unblacklist",
					Description: "Allow a user to open tickets again",
					Options:     userOpt("The user to unblacklist"),
				},
			},
		},
		ticketService:    ticketService,
		permissions:      permissions,
		ticketChannelID:  ticketChannelID,
		ticketCategoryID: ticketCategoryID,
	}
}

// Components maps the panel button to its handler
func (c *TicketCommand) Components() map[string]ButtonHandler {
	return map[string]ButtonHandler{
		ButtonCreateTicket: c.handleCreateButton,
	}
}

// Modals maps the reason modal to its handler
func (c *TicketCommand) Modals() map[string]ButtonHandler {
	return map[string]ButtonHandler{
		ModalTicketReason: c.handleReasonModal,
	}
}

// Handle processes a Discord interaction for the ticket command
func (c *TicketCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	name, options := subcommand(i)

	if !c.isTicketChannel(s, i.ChannelID) {
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "This command can only be used in ticket channels!"), true)
	}
	if !c.permissions.IsTicketStaff(i.Member) {
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "You don't have permission to manage tickets!"), true)
	}

	switch name {
	case "close":
		return c.handleClose(s, i, options)
	case "add":
		return c.handleAdd(s, i, options)
	case "remove":
		return c.handleRemove(s, i, options)
	case "claim":
		return c.handleClaim(s, i)
	case "rename":
		return c.handleRename(s, i, options)
	case "blacklist":
		return c.handleBlacklist(s, i, options, true)
	case "unblacklist":
		return c.handleBlacklist(s, i, options, false)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *TicketCommand) handleCreateButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.ticketService.CheckEligibility(ctx, &ticket.CheckEligibilityInput{
		GuildID: i.GuildID,
		UserID:  userID(i),
	})
	switch {
	case errors.Is(err, ticket.ErrTicketAlreadyOpen):
		return RespondWithEmbed(s, i, renderSupport(emojiCross,
			fmt.Sprintf("You already have an open ticket: <#%s>", output.Existing.ChannelID)), true)
	case errors.Is(err, ticket.ErrUserBlacklisted):
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "You are not allowed to open tickets."), true)
	case err != nil:
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "Failed to check your tickets. Please try again."), true)
	}

	return RespondWithModal(s, i, renderTicketReasonModal())
}

func (c *TicketCommand) handleReasonModal(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	reason := modalValue(i.ModalSubmitData(), InputTicketReason)

	if err := DeferResponse(s, i, true); err != nil {
		return err
	}

	ctx := context.Background()
	output, err := c.ticketService.OpenTicket(ctx, &ticket.OpenTicketInput{
		GuildID: i.GuildID,
		Owner:   invoker(i),
		Reason:  reason,
	})
	if err != nil {
		return FollowupWithEmbed(s, i, renderSupport(emojiWarning, openFailure(err)), true)
	}

	return FollowupWithEmbed(s, i, renderSupport(emojiTick,
		fmt.Sprintf("Your ticket has been created: <#%s>", output.Ticket.ChannelID)), true)
}

func openFailure(err error) string {
	switch {
	case errors.Is(err, ticket.ErrTicketAlreadyOpen):
		return "You already have an open ticket."
	case errors.Is(err, ticket.ErrUserBlacklisted):
		return "You are not allowed to open tickets."
	case errors.Is(err, ticket.ErrReasonRequired):
		return "Please give a reason for your ticket."
	case errors.Is(err, ticket.ErrReasonTooLong):
		return fmt.Sprintf("Your reason must be at most %d characters.", ticket.MaxReasonLength)
	default:
		return "Failed to create ticket. Please contact an administrator."
	}
}

func (c *TicketCommand) handleClose(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	closedBy := invoker(i)
	reason := stringOption(options, "reason")
	if reason == "" {
		reason = ticket.DefaultCloseReason
	}

	if err := RespondWithEmbed(s, i, renderTicketClosing(closedBy, reason), false); err != nil {
		return err
	}

	ctx := context.Background()
	_, err := c.ticketService.CloseTicket(ctx, &ticket.CloseTicketInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		ClosedBy:  closedBy,
		Reason:    reason,
	})
	if err != nil {
		log.Warningf("failed to close ticket %s: %v", i.ChannelID, err)
		return FollowupWithEmbed(s, i, renderSupport(emojiCross, "Failed to close the ticket. Please try again."), true)
	}

	return nil
}

func (c *TicketCommand) handleAdd(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	member := userOption(i, options, "user")
	if member == nil {
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "Please choose a user."), true)
	}

	ctx := context.Background()
	_, err := c.ticketService.AddMember(ctx, &ticket.AddMemberInput{ChannelID: i.ChannelID, UserID: member.ID})
	if err != nil {
		return RespondWithEmbed(s, i, renderSupport(emojiCross, fmt.Sprintf("Failed to add %s to the ticket.", member.Mention())), true)
	}

	return RespondWithEmbed(s, i, renderSupport(emojiPeople,
		fmt.Sprintf("%s has been added to this ticket by %s", member.Mention(), invoker(i).Mention())), false)
}

func (c *TicketCommand) handleRemove(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	member := userOption(i, options, "user")
	if member == nil {
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "Please choose a user."), true)
	}

	ctx := context.Background()
	_, err := c.ticketService.RemoveMember(ctx, &ticket.RemoveMemberInput{ChannelID: i.ChannelID, UserID: member.ID})
	if err != nil {
		return RespondWithEmbed(s, i, renderSupport(emojiCross, fmt.Sprintf("Failed to remove %s from the ticket.", member.Mention())), true)
	}

	return RespondWithEmbed(s, i, renderSupport(emojiPeople,
		fmt.Sprintf("%s has been removed from this ticket by %s", member.Mention(), invoker(i).Mention())), false)
}

func (c *TicketCommand) handleClaim(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	staff := invoker(i)

	ctx := context.Background()
	_, err := c.ticketService.ClaimTicket(ctx, &ticket.ClaimTicketInput{ChannelID: i.ChannelID, Staff: staff})
	switch {
	case errors.Is(err, ticket.ErrAlreadyClaimed):
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "This ticket has already been claimed!"), true)
	case errors.Is(err, ticket.ErrTicketNotFound):
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "This ticket has no record and cannot be claimed."), true)
	case err != nil:
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "Failed to claim the ticket."), true)
	}

	return RespondWithEmbed(s, i, renderSupport(emojiPeople,
		fmt.Sprintf("This ticket has been claimed by %s", staff.Mention())), false)
}

func (c *TicketCommand) handleRename(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	output, err := c.ticketService.RenameTicket(ctx, &ticket.RenameTicketInput{
		ChannelID: i.ChannelID,
		Name:      stringOption(options, "new_name"),
	})
	switch {
	case errors.Is(err, ticket.ErrInvalidName):
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "Ticket names may only use letters, numbers and dashes."), true)
	case err != nil:
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "Failed to rename the ticket."), true)
	}

	return RespondWithEmbed(s, i, renderSupport(emojiPeople,
		fmt.Sprintf("Ticket renamed to `%s` by %s", output.Name, invoker(i).Mention())), false)
}

func (c *TicketCommand) handleBlacklist(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption, blacklisted bool) error {
	member := userOption(i, options, "user")
	if member == nil {
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "Please choose a user."), true)
	}

	ctx := context.Background()
	output, err := c.ticketService.SetBlacklisted(ctx, &ticket.SetBlacklistedInput{
		GuildID:     i.GuildID,
		UserID:      member.ID,
		Blacklisted: blacklisted,
	})
	if err != nil {
		return RespondWithEmbed(s, i, renderSupport(emojiCross, "Failed to update the blacklist."), true)
	}

	return RespondWithEmbed(s, i, renderSupport(emojiPeople, blacklistMessage(member.Mention(), blacklisted, output.Changed)), true)
}

func blacklistMessage(mention string, blacklisted, changed bool) string {
	switch {
	case blacklisted && changed:
		return fmt.Sprintf("%s can no longer open tickets.", mention)
	case blacklisted:
		return fmt.Sprintf("%s is already blacklisted.", mention)
	case changed:
		return fmt.Sprintf("%s can open tickets again.", mention)
	default:
		return fmt.Sprintf("%s is not blacklisted.", mention)
	}
}

// isTicketChannel reports whether the channel sits in the ticket category
func (c *TicketCommand) isTicketChannel(s *discordgo.Session, channelID string) bool {
	if c.ticketCategoryID == "" {
		return false
	}

	channel, err := s.State.Channel(channelID)
	if err != nil {
		channel, err = s.Channel(channelID)
		if err != nil {
			log.Warningf("failed to look up channel %s: %v", channelID, err)
			return false
		}
	}

	return channel.ParentID == c.ticketCategoryID
}

// EnsurePanel posts the ticket panel unless a recent bot message already has it
func (c *TicketCommand) EnsurePanel(ctx context.Context, s *discordgo.Session) error {
	if c.ticketChannelID == "" {
		return nil
	}

	messages, err := s.ChannelMessages(c.ticketChannelID, panelScanLimit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to scan ticket channel: %w", err)
	}
	if hasPanel(messages, s.State.User.ID) {
		log.Debugf("ticket panel already present")
		return nil
	}

	if _, err := s.ChannelMessageSendComplex(c.ticketChannelID, renderTicketPanel(), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post ticket panel: %w", err)
	}

	log.Infof("ticket panel posted in %s", c.ticketChannelID)
	return nil
}

func hasPanel(messages []*discordgo.Message, botID string) bool {
	for _, msg := range messages {
		if msg.Author == nil || msg.Author.ID != botID || len(msg.Embeds) == 0 {
			continue
		}
		if msg.Embeds[0].Title == supportTitle {
			return true
		}
	}
	return false
}

// modalValue returns the value of a text input in a submitted modal
func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			input, ok := inner.(*discordgo.TextInput)
			if ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
