package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/waterstone/internal/services/diagnostics"
	"github.com/KirkDiggler/waterstone/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// BotInfoCommand handles the public /botinfo command
type BotInfoCommand struct {
	BaseCommand
	messagingService messaging.Service
}

// NewBotInfoCommand creates a new botinfo command handler
func NewBotInfoCommand(messagingService messaging.Service) *BotInfoCommand {
	return &BotInfoCommand{
		BaseCommand: BaseCommand{
			Name:        "botinfo",
			Description: "Show information about the Waterstone bot",
		},
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the botinfo command
func (c *BotInfoCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.messagingService.GetBotInfo(context.Background(), &messaging.GetBotInfoInput{})
	if err != nil {
		return RespondWithError(s, i, "Error", "Failed to load bot information.")
	}

	return RespondWithEmbed(s, i, renderBotInfo(output), false)
}

// DiagnoseCommand handles the developer-only /diagnose command
type DiagnoseCommand struct {
	BaseCommand
	diagnosticsService diagnostics.Service
	permissions        *Permissions
}

// NewDiagnoseCommand creates a new diagnose command handler
func NewDiagnoseCommand(diagnosticsService diagnostics.Service, permissions *Permissions) *DiagnoseCommand {
	return &DiagnoseCommand{
		BaseCommand: BaseCommand{
			Name:        "diagnose",
			Description: "Run the Waterstone service checks",
		},
		diagnosticsService: diagnosticsService,
		permissions:        permissions,
	}
}

// Handle processes a Discord interaction for the diagnose command
func (c *DiagnoseCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !c.permissions.IsDeveloper(userID(i)) {
		return RespondWithError(s, i, "Permission Denied", "Only Waterstone developers can run diagnostics.")
	}

	if err := DeferResponse(s, i, true); err != nil {
		return err
	}

	output, err := c.diagnosticsService.Run(context.Background(), &diagnostics.RunInput{})
	if err != nil {
		return FollowupWithEmbed(s, i, renderError("Diagnostics Failed", err.Error()), true)
	}

	return FollowupWithEmbed(s, i, renderDiagnostics(output), true)
}

// SendCommand handles the developer-only /send command
type SendCommand struct {
	BaseCommand
	messagingService messaging.Service
	permissions      *Permissions
	sendChannelID    string
}

// NewSendCommand creates a new send command handler
func NewSendCommand(messagingService messaging.Service, permissions *Permissions, sendChannelID string) *SendCommand {
	return &SendCommand{
		BaseCommand: BaseCommand{
			Name:        "send",
			Description: "Send a preset announcement",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "preset",
					Description: "The preset to send (e.g. CHRISTMAS)",
					Required:    true,
				},
			},
		},
		messagingService: messagingService,
		permissions:      permissions,
		sendChannelID:    sendChannelID,
	}
}

// Handle processes a Discord interaction for the send command
func (c *SendCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !c.permissions.IsDeveloper(userID(i)) {
		return RespondWithError(s, i, "Permission Denied", "Only Waterstone developers can send presets.")
	}
	if c.sendChannelID == "" {
		return RespondWithError(s, i, "Not Configured", "No send channel is configured.")
	}

	ctx := context.Background()
	_, options := subcommand(i)
	name := stringOption(options, "preset")

	output, err := c.messagingService.GetPreset(ctx, &messaging.GetPresetInput{Name: name})
	switch {
	case errors.Is(err, messaging.ErrUnknownPreset):
		return RespondWithError(s, i, "Unknown Preset", c.unknownPreset(ctx, name))
	case err != nil:
		return RespondWithError(s, i, "Error", "Please provide a preset name.")
	}

	if _, err := s.ChannelMessageSendComplex(c.sendChannelID, renderPreset(output.Preset), discordgo.WithContext(ctx)); err != nil {
		log.Warningf("failed to send preset %s: %v", output.Name, err)
		return RespondWithError(s, i, "Send Failed", "Failed to send the preset.")
	}

	log.Infof("preset %s sent to %s by %s", output.Name, c.sendChannelID, userID(i))
	return RespondWithEmbed(s, i, renderNotice("Preset Sent",
		fmt.Sprintf("**%s** has been sent to <#%s>.", output.Name, c.sendChannelID)), true)
}

func (c *SendCommand) unknownPreset(ctx context.Context, name string) string {
	msg := fmt.Sprintf("There is no preset called `%s`.", name)

	list, err := c.messagingService.ListPresets(ctx, &messaging.ListPresetsInput{})
	if err != nil || len(list.Names) == 0 {
		return msg
	}

	return msg + " Available presets: " + strings.Join(list.Names, ", ")
}
