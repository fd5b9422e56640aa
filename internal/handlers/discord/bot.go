package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/waterstone/internal/common/clock"
	"github.com/KirkDiggler/waterstone/internal/services/diagnostics"
	"github.com/KirkDiggler/waterstone/internal/services/messaging"
	"github.com/KirkDiggler/waterstone/internal/services/profile"
	"github.com/KirkDiggler/waterstone/internal/services/session"
	"github.com/KirkDiggler/waterstone/internal/services/ticket"
	"github.com/KirkDiggler/waterstone/internal/services/timetable"
	"github.com/bwmarrin/discordgo"
	"github.com/op/go-logging"
	"github.com/robfig/cron/v3"
)

var log = logging.MustGetLogger("discord")

const (
	// Intents the bot identifies with
	Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsDirectMessages

	readyTimeout = 30 * time.Second
	tickTimeout  = 20 * time.Second
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	components map[string]ButtonHandler
	modals     map[string]ButtonHandler

	sessionService   session.Service
	messagingService messaging.Service
	timetable        *TimetableCommand
	tickets          *TicketCommand
	permissions      *Permissions

	// cron is created with the bot and only started once the gateway is ready
	cron      *cron.Cron
	readyOnce sync.Once
	config    *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened discordgo session
	Session *discordgo.Session

	// Application ID for the bot, falls back to the session user
	ApplicationID string

	// GuildID scopes command registration and the member count
	GuildID string

	SessionService     session.Service
	TimetableService   timetable.Service
	TicketService      ticket.Service
	DiagnosticsService diagnostics.Service
	MessagingService   messaging.Service

	// ProfileService is optional; without it /profile and /activity reply unavailable
	ProfileService profile.Service

	Permissions *Permissions
	Clock       clock.Clock

	// Channels
	TimetableClaimingID string
	TimetableChannelID  string
	TicketChannelID     string
	TicketCategoryID    string
	SendChannelID       string

	SessionPollInterval    time.Duration
	StatusRotationInterval time.Duration
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.SessionService == nil || cfg.TimetableService == nil || cfg.TicketService == nil {
		return nil, errors.New("session, timetable and ticket services are required")
	}

	if cfg.DiagnosticsService == nil || cfg.MessagingService == nil {
		return nil, errors.New("diagnostics and messaging services are required")
	}

	if cfg.Permissions == nil {
		return nil, errors.New("permissions cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.SessionPollInterval <= 0 || cfg.StatusRotationInterval <= 0 {
		return nil, errors.New("poll and rotation intervals must be positive")
	}

	bot := &Bot{
		session:          cfg.Session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		components:       make(map[string]ButtonHandler),
		modals:           make(map[string]ButtonHandler),
		sessionService:   cfg.SessionService,
		messagingService: cfg.MessagingService,
		permissions:      cfg.Permissions,
		cron:             cron.New(),
		config:           cfg,
	}

	bot.timetable = NewTimetableCommand(cfg.TimetableService, cfg.TimetableClaimingID, cfg.TimetableChannelID)
	bot.tickets = NewTicketCommand(cfg.TicketService, cfg.Permissions, cfg.TicketChannelID, cfg.TicketCategoryID)

	for _, cmd := range []CommandHandler{
		NewSessionCommand(cfg.SessionService, cfg.Permissions, cfg.Clock),
		bot.timetable,
		bot.tickets,
		NewProfileCommand(cfg.ProfileService),
		NewActivityCommand(cfg.ProfileService),
		NewBotInfoCommand(cfg.MessagingService),
		NewDiagnoseCommand(cfg.DiagnosticsService, cfg.Permissions),
		NewSendCommand(cfg.MessagingService, cfg.Permissions, cfg.SendChannelID),
	} {
		bot.addCommand(cmd)
	}

	cfg.Session.Identify.Intents = Intents

	// Register the gateway handlers
	cfg.Session.AddHandler(bot.handleReady)
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessage)

	return bot, nil
}

func (b *Bot) addCommand(cmd CommandHandler) {
	b.commands[cmd.GetName()] = cmd

	provider, ok := cmd.(ComponentProvider)
	if !ok {
		return
	}
	for id, handler := range provider.Components() {
		b.components[id] = handler
	}
	for id, handler := range provider.Modals() {
		b.modals[id] = handler
	}
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	b.loadOwner()

	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	log.Infof("Bot is now running with %d commands", len(b.commandIDs))
	return nil
}

// loadOwner makes the application owner a developer
func (b *Bot) loadOwner() {
	app, err := b.session.Application("@me")
	if err != nil {
		log.Warningf("failed to load application owner: %v", err)
		return
	}
	if app.Owner != nil {
		b.permissions.OwnerID = app.Owner.ID
	}
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	<-b.cron.Stop().Done()

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warningf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Debugf("Deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		log.Debugf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Debugf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Infof("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleReady starts the background jobs the first time the gateway is ready
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Infof("logged in as %s", r.User.Username)

	b.readyOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), readyTimeout)
		defer cancel()

		if err := b.tickets.EnsurePanel(ctx, s); err != nil {
			log.Warningf("ticket panel check failed: %v", err)
		}

		restored, err := b.config.TimetableService.Restore(ctx, &timetable.RestoreInput{})
		if err != nil {
			log.Warningf("failed to restore timetable: %v", err)
		} else if restored.Slots > 0 {
			log.Infof("restored %d timetable slots across %d guilds", restored.Slots, restored.Guilds)
		}

		if err := b.startJobs(); err != nil {
			log.Errorf("failed to start background jobs: %v", err)
		}
	})
}

// startJobs schedules the session reconciliation and presence rotation
func (b *Bot) startJobs() error {
	if _, err := b.cron.AddFunc(every(b.config.SessionPollInterval), b.reconcileSessions); err != nil {
		return fmt.Errorf("failed to schedule session reconciliation: %w", err)
	}
	if _, err := b.cron.AddFunc(every(b.config.StatusRotationInterval), b.rotateStatus); err != nil {
		return fmt.Errorf("failed to schedule status rotation: %w", err)
	}

	b.cron.Start()
	b.rotateStatus()
	return nil
}

func every(d time.Duration) string {
	return "@every " + d.String()
}

func (b *Bot) reconcileSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	output, err := b.sessionService.Reconcile(ctx, &session.ReconcileInput{})
	if err != nil {
		log.Warningf("session reconciliation failed: %v", err)
		return
	}

	for _, sess := range output.Ended {
		log.Infof("session %s ended on schedule in guild %s", sess.ID, sess.GuildID)
	}
	for _, sess := range output.Promoted {
		log.Infof("scheduled session %s started in guild %s", sess.ID, sess.GuildID)
	}
	for _, dropped := range output.Dropped {
		log.Warningf("scheduled session %s dropped: %s", dropped.Session.ID, dropped.Reason)
	}
}

func (b *Bot) rotateStatus() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	output, err := b.messagingService.NextStatus(ctx, &messaging.NextStatusInput{MemberCount: b.memberCount()})
	if err != nil {
		log.Warningf("failed to pick next status: %v", err)
		return
	}

	if err := b.session.UpdateCustomStatus(output.Status); err != nil {
		log.Debugf("failed to update status: %v", err)
	}
}

func (b *Bot) memberCount() int {
	if b.config.GuildID == "" {
		return 0
	}

	guild, err := b.session.State.Guild(b.config.GuildID)
	if err != nil {
		return 0
	}
	return guild.MemberCount
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Errorf("Error handling command %s: %v", name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if h, ok := b.components[customID]; ok {
			if err := h(s, i); err != nil {
				log.Errorf("Error handling component %s: %v", customID, err)
			}
		}
	case discordgo.InteractionModalSubmit:
		customID := i.ModalSubmitData().CustomID
		if h, ok := b.modals[customID]; ok {
			if err := h(s, i); err != nil {
				log.Errorf("Error handling modal %s: %v", customID, err)
			}
		}
	}
}

// handleMessage routes channel messages to the timetable claim intake
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.timetable.HandleMessage(s, m)
}
