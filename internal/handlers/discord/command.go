package discord

import (
	"github.com/KirkDiggler/waterstone/internal/models"
	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// ButtonHandler defines a function type for handling component and modal interactions
type ButtonHandler func(s *discordgo.Session, i *discordgo.InteractionCreate) error

// ComponentProvider is implemented by commands that own buttons or modals
type ComponentProvider interface {
	// Components maps custom IDs of buttons to their handlers
	Components() map[string]ButtonHandler

	// Modals maps custom IDs of modals to their handlers
	Modals() map[string]ButtonHandler
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption

	// DefaultMemberPermissions hides the command from members without them
	DefaultMemberPermissions *int64
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     c.Name,
		Description:              c.Description,
		Options:                  c.Options,
		DefaultMemberPermissions: c.DefaultMemberPermissions,
	}
}

// RespondWithEmbed sends an embed response to an interaction
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithError sends an ephemeral error response to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, title, errorMessage string) error {
	return RespondWithEmbed(s, i, renderError(title, errorMessage), true)
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithModal opens a modal in response to an interaction
func RespondWithModal(s *discordgo.Session, i *discordgo.InteractionCreate, modal *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: modal,
	})
}

// DeferResponse acknowledges an interaction whose work takes a while
func DeferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}

	return s.InteractionRespond(i.Interaction, resp)
}

// FollowupWithEmbed sends an embed after a deferred response
func FollowupWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) error {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	_, err := s.FollowupMessageCreate(i.Interaction, true, params)
	return err
}

// subcommand returns the invoked subcommand and its options keyed by name
func subcommand(i *discordgo.InteractionCreate) (string, map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return "", nil
	}

	sub := data.Options[0]
	if sub.Type != discordgo.ApplicationCommandOptionSubCommand {
		return "", optionMap(data.Options)
	}

	return sub.Name, optionMap(sub.Options)
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// stringOption returns the string value of an option or "" when it was omitted
func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

// userOption resolves a user option from the interaction's resolved data
func userOption(i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) *models.Member {
	opt, ok := options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionUser {
		return nil
	}

	userID, _ := opt.Value.(string)
	if userID == "" {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Resolved == nil {
		return &models.Member{ID: userID, Username: userID, DisplayName: userID}
	}

	user := data.Resolved.Users[userID]
	member := data.Resolved.Members[userID]
	if user != nil && member != nil {
		member.User = user
		return toMember(member)
	}
	if user != nil {
		return toMember(&discordgo.Member{User: user})
	}

	return &models.Member{ID: userID, Username: userID, DisplayName: userID}
}

// invoker returns the member who triggered the interaction
func invoker(i *discordgo.InteractionCreate) *models.Member {
	if i.Member != nil {
		return toMember(i.Member)
	}
	if i.User != nil {
		return toMember(&discordgo.Member{User: i.User})
	}
	return &models.Member{}
}

// toMember converts a discordgo member into the services' member model
func toMember(m *discordgo.Member) *models.Member {
	member := &models.Member{
		RoleIDs: m.Roles,
	}
	if m.User != nil {
		member.ID = m.User.ID
		member.Username = m.User.Username
		member.DisplayName = m.User.Username
		if m.User.GlobalName != "" {
			member.DisplayName = m.User.GlobalName
		}
		member.AvatarURL = m.User.AvatarURL("")
	}
	if m.Nick != "" {
		member.DisplayName = m.Nick
	}

	return member
}
