package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/waterstone/internal/services/timetable"
	"github.com/bwmarrin/discordgo"
)

const (
	purgeLimit = 100

	formatReplyLifetime  = 30 * time.Second
	successReplyLifetime = 15 * time.Second
)

var errNoBoardChannel = errors.New("timetable channel is not configured")

// TimetableCommand handles the /timetable command and claim messages
type TimetableCommand struct {
	BaseCommand
	timetableService  timetable.Service
	claimingChannelID string
	boardChannelID    string
}

// NewTimetableCommand creates a new timetable command handler
func NewTimetableCommand(timetableService timetable.Service, claimingChannelID, boardChannelID string) *TimetableCommand {
	admin := int64(discordgo.PermissionAdministrator)

	return &TimetableCommand{
		BaseCommand: BaseCommand{
			Name:                     "timetable",
			Description:              "Timetable management commands",
			DefaultMemberPermissions: &admin,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset the entire timetable",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Edit a timetable slot",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "The staff member to assign to this slot",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "period",
							Description: "The period (e.g., Period 1, P1, Break, Lunch)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "subject",
							Description: "The subject being taught (or Reflection/Pastoral)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "year",
							Description: "The year group (e.g., Year 7, Y7, Reflection, Pastoral)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "room",
							Description: "The room number (auto-filled for Reflection/Pastoral)",
						},
					},
				},
			},
		},
		timetableService:  timetableService,
		claimingChannelID: claimingChannelID,
		boardChannelID:    boardChannelID,
	}
}

// Handle processes a Discord interaction for the timetable command
func (c *TimetableCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	name, options := subcommand(i)
	switch name {
	case "reset":
		return c.handleReset(s, i)
	case "edit":
		return c.handleEdit(s, i, options)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *TimetableCommand) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := DeferResponse(s, i, true); err != nil {
		return err
	}

	ctx := context.Background()
	output, err := c.timetableService.ResetTimetable(ctx, &timetable.ResetTimetableInput{GuildID: i.GuildID})
	if err != nil {
		return FollowupWithEmbed(s, i, renderError("Error", fmt.Sprintf("An error occurred: %v", err)), true)
	}

	c.purgeBoardChannel(ctx, s)
	if err := c.refreshBoard(ctx, s, i.GuildID); err != nil {
		log.Warningf("failed to post timetable after reset: %v", err)
	}

	log.Infof("timetable of guild %s reset by %s, %d claims cleared", i.GuildID, userID(i), output.Cleared)

	return FollowupWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Timetable Reset",
		Description: "The timetable has been successfully reset. All slots are now unclaimed.",
		Color:       colorGreen,
	}, true)
}

func (c *TimetableCommand) handleEdit(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	staff := userOption(i, options, "user")
	if staff == nil {
		return RespondWithError(s, i, "Invalid Input", "Please choose a staff member.")
	}

	if err := DeferResponse(s, i, true); err != nil {
		return err
	}

	ctx := context.Background()
	output, err := c.timetableService.EditSlot(ctx, &timetable.EditSlotInput{
		GuildID:   i.GuildID,
		Period:    stringOption(options, "period"),
		YearGroup: stringOption(options, "year"),
		Staff:     staff.Mention(),
		Subject:   stringOption(options, "subject"),
		Room:      stringOption(options, "room"),
	})
	if err != nil {
		title, description := editFailure(err)
		return FollowupWithEmbed(s, i, renderError(title, description), true)
	}

	if err := c.refreshBoard(ctx, s, i.GuildID); err != nil {
		log.Warningf("failed to refresh timetable after edit: %v", err)
	}

	return FollowupWithEmbed(s, i, renderSlotEdited(output), true)
}

func editFailure(err error) (string, string) {
	switch {
	case errors.Is(err, timetable.ErrRoomRequired):
		return "Room Required", "Please provide a room number for regular lessons (Year 7/8)."
	case errors.Is(err, timetable.ErrInvalidPeriod), errors.Is(err, timetable.ErrInvalidYearGroup), errors.Is(err, timetable.ErrUnknownSlot):
		return "Invalid Input", "Please provide a valid period and year group.\n\n" +
			"**Periods:** Period 1-4, Break, Lunch\n" +
			"**Year Groups:** Year 7, Year 8, Reflection, Pastoral, Reception"
	default:
		return "Error", fmt.Sprintf("An error occurred: %v", err)
	}
}

// HandleMessage runs a chat claim posted in the claiming channel
func (c *TimetableCommand) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if c.claimingChannelID == "" || m.ChannelID != c.claimingChannelID {
		return
	}

	ctx := context.Background()
	output, err := c.timetableService.ProcessClaim(ctx, &timetable.ProcessClaimInput{
		GuildID:  m.GuildID,
		Raw:      m.Content,
		Claimant: m.Author.Mention(),
	})
	if err != nil {
		log.Warningf("failed to process claim %s: %v", m.ID, err)
		return
	}

	switch output.Outcome {
	case timetable.ClaimOutcomeParseFailure:
		log.Debugf("claim %s rejected: %v", m.ID, output.ParseError)
		c.react(s, m.Message, reactionCross)
		c.notify(s, m.Message, renderClaimFormat(), formatReplyLifetime)
	case timetable.ClaimOutcomeUnavailable:
		c.react(s, m.Message, reactionCross)
		c.notify(s, m.Message, renderClaimTaken(), formatReplyLifetime)
	case timetable.ClaimOutcomeClaimed:
		if err := c.refreshBoard(ctx, s, m.GuildID); err != nil {
			log.Warningf("claim %s stored but timetable not updated: %v", m.ID, err)
			c.react(s, m.Message, reactionWarning)
			return
		}
		c.react(s, m.Message, reactionTick)
		c.notify(s, m.Message, renderClaimSuccess(output.Claim), successReplyLifetime)
	}
}

// refreshBoard edits the board message in place or posts a new one
func (c *TimetableCommand) refreshBoard(ctx context.Context, s *discordgo.Session, guildID string) error {
	if c.boardChannelID == "" {
		return errNoBoardChannel
	}

	board, err := c.timetableService.GetBoard(ctx, &timetable.GetBoardInput{GuildID: guildID})
	if err != nil {
		return err
	}
	embed := renderBoard(board)

	current, err := c.timetableService.GetBoardMessage(ctx, &timetable.GetBoardMessageInput{GuildID: guildID})
	if err != nil {
		return err
	}
	if current.MessageID != "" {
		_, err := s.ChannelMessageEditEmbed(c.boardChannelID, current.MessageID, embed, discordgo.WithContext(ctx))
		if err == nil {
			return nil
		}
		log.Debugf("timetable message %s not editable, posting a new one: %v", current.MessageID, err)
	}

	msg, err := s.ChannelMessageSendEmbed(c.boardChannelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return err
	}

	_, err = c.timetableService.SetBoardMessage(ctx, &timetable.SetBoardMessageInput{
		GuildID:   guildID,
		MessageID: msg.ID,
	})
	return err
}

// purgeBoardChannel clears the board channel before a reset repost
func (c *TimetableCommand) purgeBoardChannel(ctx context.Context, s *discordgo.Session) {
	if c.boardChannelID == "" {
		return
	}

	messages, err := s.ChannelMessages(c.boardChannelID, purgeLimit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		log.Warningf("failed to list timetable channel messages: %v", err)
		return
	}

	for _, msg := range messages {
		if err := s.ChannelMessageDelete(c.boardChannelID, msg.ID, discordgo.WithContext(ctx)); err != nil {
			log.Warningf("failed to delete timetable channel message %s: %v", msg.ID, err)
		}
	}
}

func (c *TimetableCommand) react(s *discordgo.Session, m *discordgo.Message, emoji string) {
	if err := s.MessageReactionAdd(m.ChannelID, m.ID, emoji); err != nil {
		log.Warningf("failed to react to claim %s: %v", m.ID, err)
	}
}

// notify DMs the claimant and falls back to a short-lived reply
func (c *TimetableCommand) notify(s *discordgo.Session, m *discordgo.Message, embed *discordgo.MessageEmbed, lifetime time.Duration) {
	channel, err := s.UserChannelCreate(m.Author.ID)
	if err == nil {
		if _, err = s.ChannelMessageSendEmbed(channel.ID, embed); err == nil {
			return
		}
	}
	log.Debugf("cannot DM %s, replying instead: %v", m.Author.ID, err)

	reply, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:    []*discordgo.MessageEmbed{embed},
		Reference: m.Reference(),
	})
	if err != nil {
		log.Warningf("failed to reply to claim %s: %v", m.ID, err)
		return
	}

	time.AfterFunc(lifetime, func() {
		if err := s.ChannelMessageDelete(reply.ChannelID, reply.ID); err != nil {
			log.Debugf("failed to delete claim reply %s: %v", reply.ID, err)
		}
	})
}
