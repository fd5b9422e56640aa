package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/waterstone/internal/common/clock"
	"github.com/KirkDiggler/waterstone/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// SessionCommand handles the /session command
type SessionCommand struct {
	BaseCommand
	sessionService session.Service
	permissions    *Permissions
	clock          clock.Clock
}

// NewSessionCommand creates a new session command handler
func NewSessionCommand(sessionService session.Service, permissions *Permissions, clk clock.Clock) *SessionCommand {
	return &SessionCommand{
		BaseCommand: BaseCommand{
			Name:        "session",
			Description: "Session management commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a school session now",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "end_time",
							Description: "End time in HH:MM format (24-hour, UTC, e.g., 16:00)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "schedule",
					Description: "Schedule a school session",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "date",
							Description: "Date in DD/MM/YYYY format (e.g., 25/12/2024)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "start_time",
							Description: "Start time in HH:MM format (24-hour, e.g., 14:30)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "end_time",
							Description: "End time in HH:MM format (24-hour, e.g., 16:00)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "title",
							Description: "Custom title for the session (optional)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Cancel the current School session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel-scheduled",
					Description: "Cancel a scheduled session",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "event_id",
							Description: "The server event ID shown by /session status",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the active and scheduled sessions",
				},
			},
		},
		sessionService: sessionService,
		permissions:    permissions,
		clock:          clk,
	}
}

// Handle processes a Discord interaction for the session command
func (c *SessionCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !c.permissions.HasPermittedRole(i.Member) {
		return RespondWithError(s, i, "Permission Denied", "You don't have permission to use this command!")
	}

	name, options := subcommand(i)
	switch name {
	case "start":
		return c.handleStart(s, i, options)
	case "schedule":
		return c.handleSchedule(s, i, options)
	case "cancel":
		return c.handleCancel(s, i)
	case "cancel-scheduled":
		return c.handleCancelScheduled(s, i, options)
	case "status":
		return c.handleStatus(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *SessionCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	start, end, err := session.ParseStartWindow(stringOption(options, "end_time"), c.clock.Now())
	if err != nil {
		return RespondWithError(s, i, "Invalid Format", "Please use HH:MM for the end time (24-hour).\nExample: 16:00")
	}

	if err := DeferResponse(s, i, true); err != nil {
		return err
	}

	ctx := context.Background()
	output, err := c.sessionService.StartSession(ctx, &session.StartSessionInput{
		GuildID:   i.GuildID,
		Host:      invoker(i),
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		title, description := sessionFailure(err)
		return FollowupWithEmbed(s, i, renderError(title, description), true)
	}

	return FollowupWithEmbed(s, i, renderSessionStarted(output.Session), true)
}

func (c *SessionCommand) handleSchedule(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	start, end, err := session.ParseScheduleWindow(
		stringOption(options, "date"),
		stringOption(options, "start_time"),
		stringOption(options, "end_time"),
		c.clock.Now(),
	)
	if err != nil {
		title, description := sessionFailure(err)
		return RespondWithError(s, i, title, description)
	}

	if err := DeferResponse(s, i, true); err != nil {
		return err
	}

	ctx := context.Background()
	output, err := c.sessionService.ScheduleSession(ctx, &session.ScheduleSessionInput{
		GuildID:   i.GuildID,
		Host:      invoker(i),
		StartTime: start,
		EndTime:   end,
		Title:     stringOption(options, "title"),
	})
	if err != nil {
		title, description := sessionFailure(err)
		return FollowupWithEmbed(s, i, renderError(title, description), true)
	}

	return FollowupWithEmbed(s, i, renderSessionScheduled(output.Session), true)
}

func (c *SessionCommand) handleCancel(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := DeferResponse(s, i, true); err != nil {
		return err
	}

	ctx := context.Background()
	output, err := c.sessionService.CancelActiveSession(ctx, &session.CancelActiveSessionInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		title, description := sessionFailure(err)
		return FollowupWithEmbed(s, i, renderError(title, description), true)
	}

	return FollowupWithEmbed(s, i, renderSessionCancelled(output.Session), true)
}

func (c *SessionCommand) handleCancelScheduled(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if err := DeferResponse(s, i, true); err != nil {
		return err
	}

	ctx := context.Background()
	output, err := c.sessionService.CancelScheduledSession(ctx, &session.CancelScheduledSessionInput{
		GuildID: i.GuildID,
		EventID: stringOption(options, "event_id"),
	})
	if err != nil {
		title, description := sessionFailure(err)
		return FollowupWithEmbed(s, i, renderError(title, description), true)
	}

	return FollowupWithEmbed(s, i, renderScheduledCancelled(output.Session), true)
}

func (c *SessionCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	active, err := c.sessionService.GetActiveSession(ctx, &session.GetActiveSessionInput{GuildID: i.GuildID})
	if err != nil {
		return RespondWithError(s, i, "Error", fmt.Sprintf("An error occurred: %v", err))
	}

	scheduled, err := c.sessionService.GetScheduledSessions(ctx, &session.GetScheduledSessionsInput{GuildID: i.GuildID})
	if err != nil {
		return RespondWithError(s, i, "Error", fmt.Sprintf("An error occurred: %v", err))
	}

	return RespondWithEmbed(s, i, renderSessionStatus(active.Session, scheduled.Sessions), true)
}

// sessionFailure maps session errors onto the title and text shown to staff
func sessionFailure(err error) (string, string) {
	switch {
	case errors.Is(err, session.ErrSessionInPast):
		return "Invalid Time", "Cannot schedule a session in the past!"
	case errors.Is(err, session.ErrInvalidSchedule), errors.Is(err, session.ErrInvalidWindow):
		return "Invalid Format", "Please use DD/MM/YYYY for date and HH:MM for time (24-hour).\nExample: 25/12/2024 14:30"
	case errors.Is(err, session.ErrSessionAlreadyActive):
		return "Error", "There is already an active session!"
	case errors.Is(err, session.ErrNoActiveSession):
		return "Error", "There is no active session to cancel!"
	case errors.Is(err, session.ErrScheduledSessionNotFound):
		return "Error", "No scheduled session exists for that event."
	case errors.Is(err, session.ErrAnnouncementUnavailable):
		return "Error", "The session channel could not be reached. Please try again."
	case errors.Is(err, session.ErrEventCreationFailed):
		return "Error", "Failed to schedule the session. Please try again."
	default:
		return "Error", fmt.Sprintf("An error occurred: %v", err)
	}
}
