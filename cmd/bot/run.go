package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/waterstone/internal/common/clock"
	"github.com/KirkDiggler/waterstone/internal/common/uuid"
	"github.com/KirkDiggler/waterstone/internal/config"
	"github.com/KirkDiggler/waterstone/internal/handlers/discord"
	"github.com/KirkDiggler/waterstone/internal/handlers/health"
	ticketRepo "github.com/KirkDiggler/waterstone/internal/repositories/ticket"
	timetableRepo "github.com/KirkDiggler/waterstone/internal/repositories/timetable"
	"github.com/KirkDiggler/waterstone/internal/services/diagnostics"
	"github.com/KirkDiggler/waterstone/internal/services/messaging"
	"github.com/KirkDiggler/waterstone/internal/services/profile"
	"github.com/KirkDiggler/waterstone/internal/services/session"
	"github.com/KirkDiggler/waterstone/internal/services/ticket"
	"github.com/KirkDiggler/waterstone/internal/services/timetable"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and serve commands until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// Initialize repositories
	tickets, err := ticketRepo.NewRedis(&ticketRepo.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create ticket repository: %w", err)
	}

	timetableMirror, err := timetableRepo.NewRedis(&timetableRepo.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create timetable repository: %w", err)
	}

	records, err := newRecordStore(cfg)
	if err != nil {
		return err
	}

	linker, err := newIdentity(cfg)
	if err != nil {
		return err
	}

	dg, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	platform, err := discord.NewPlatform(&discord.PlatformConfig{
		Session:            dg,
		PermittedRoleID:    cfg.PermittedRoleID,
		SessionChannelID:   cfg.SessionChannelID,
		TicketCategoryID:   cfg.TicketCategoryID,
		TicketTranscriptID: cfg.TicketTranscriptID,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord platform: %w", err)
	}

	clk := clock.New()
	ids := uuid.New()

	// Initialize services
	sessionSvc, err := session.New(&session.Config{
		Platform: platform,
		Clock:    clk,
		UUID:     ids,
	})
	if err != nil {
		return fmt.Errorf("failed to create session service: %w", err)
	}

	timetableSvc, err := timetable.New(&timetable.Config{Repository: timetableMirror})
	if err != nil {
		return fmt.Errorf("failed to create timetable service: %w", err)
	}

	ticketSvc, err := ticket.New(&ticket.Config{
		Platform:   platform,
		Repository: tickets,
		Clock:      clk,
		UUID:       ids,
	})
	if err != nil {
		return fmt.Errorf("failed to create ticket service: %w", err)
	}

	var profileSvc profile.Service
	if records != nil && linker != nil {
		svc, err := profile.New(&profile.Config{
			RecordStore:        records,
			Identity:           linker,
			StaffRankThreshold: cfg.StaffRankThreshold,
		})
		if err != nil {
			return fmt.Errorf("failed to create profile service: %w", err)
		}
		profileSvc = svc
	}

	content, err := messaging.LoadContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Content: content})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	gateway := discord.NewGateway(dg, cfg.GuildID)
	diagnosticsSvc, err := diagnostics.New(&diagnostics.Config{
		Checks: []diagnostics.Check{
			diagnostics.BotStatusCheck(gateway),
			diagnostics.DiscordConnectionCheck(gateway),
			diagnostics.RecordStoreCheck(records),
			diagnostics.RedisCheck(redisClient),
			diagnostics.CommandsSyncedCheck(gateway),
			diagnostics.GuildConnectivityCheck(gateway),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create diagnostics service: %w", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:            dg,
		ApplicationID:      cfg.ApplicationID,
		GuildID:            cfg.GuildID,
		SessionService:     sessionSvc,
		TimetableService:   timetableSvc,
		TicketService:      ticketSvc,
		DiagnosticsService: diagnosticsSvc,
		MessagingService:   messagingSvc,
		ProfileService:     profileSvc,
		Permissions: &discord.Permissions{
			PermittedRoleID: cfg.PermittedRoleID,
			DeveloperIDs:    cfg.DeveloperIDs,
		},
		Clock:                  clk,
		TimetableClaimingID:    cfg.TimetableClaimingID,
		TimetableChannelID:     cfg.TimetableChannelID,
		TicketChannelID:        cfg.TicketChannelID,
		TicketCategoryID:       cfg.TicketCategoryID,
		SendChannelID:          cfg.SendChannelID,
		SessionPollInterval:    cfg.SessionPollInterval,
		StatusRotationInterval: cfg.StatusRotationInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	healthErr := make(chan error, 1)
	if cfg.HealthAddr != "" {
		go func() {
			healthErr <- health.Start(ctx, health.StartOpts{Diagnostics: diagnosticsSvc, Addr: cfg.HealthAddr})
		}()
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sc:
		log.Infof("received %s, shutting down", sig)
	case err := <-healthErr:
		if err != nil {
			log.Errorf("health server stopped: %v", err)
		}
	}
	cancel()

	if err := bot.Stop(); err != nil {
		log.Warningf("Error stopping bot: %v", err)
	}

	log.Info("Bot has been shut down")
	return nil
}
