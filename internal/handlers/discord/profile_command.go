package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/waterstone/internal/services/profile"
	"github.com/bwmarrin/discordgo"
)

// ProfileCommand handles the /profile command
type ProfileCommand struct {
	BaseCommand
	profileService profile.Service
}

// NewProfileCommand creates a new profile command handler.
// A nil service makes the command reply that profiles are unavailable.
func NewProfileCommand(profileService profile.Service) *ProfileCommand {
	return &ProfileCommand{
		BaseCommand: BaseCommand{
			Name:        "profile",
			Description: "Show a student or staff profile",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to look up (defaults to you)",
				},
			},
		},
		profileService: profileService,
	}
}

// Handle processes a Discord interaction for the profile command
func (c *ProfileCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if c.profileService == nil {
		return RespondWithError(s, i, "Unavailable", "Profiles are not available right now.")
	}

	_, options := subcommand(i)
	target := userOption(i, options, "user")
	if target == nil {
		target = invoker(i)
	}

	if err := DeferResponse(s, i, false); err != nil {
		return err
	}

	ctx := context.Background()
	output, err := c.profileService.GetProfile(ctx, &profile.GetProfileInput{DiscordID: target.ID})
	if err != nil {
		log.Warningf("failed to load profile for %s: %v", target.ID, err)
		return FollowupWithEmbed(s, i, renderError("Profile Error", profileFailure(err)), true)
	}

	return FollowupWithEmbed(s, i, renderProfile(output.Profile, target.Username, target.AvatarURL), false)
}

func profileFailure(err error) string {
	switch {
	case errors.Is(err, profile.ErrMissingUser):
		return "Please choose a user."
	default:
		return "Failed to load the profile. Please try again later."
	}
}

// ActivityCommand handles /activity
type ActivityCommand struct {
	BaseCommand
	profileService profile.Service
}

// NewActivityCommand creates a new activity command handler
func NewActivityCommand(profileService profile.Service) *ActivityCommand {
	return &ActivityCommand{
		BaseCommand: BaseCommand{
			Name:        "activity",
			Description: "Show staff activity",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The staff member to look up (defaults to you)",
				},
			},
		},
		profileService: profileService,
	}
}

// Handle processes a Discord interaction for the activity command
func (c *ActivityCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if c.profileService == nil {
		return RespondWithError(s, i, "Unavailable", "Activity is not available right now.")
	}

	_, options := subcommand(i)
	target := userOption(i, options, "user")
	if target == nil {
		target = invoker(i)
	}

	if err := DeferResponse(s, i, false); err != nil {
		return err
	}

	ctx := context.Background()
	output, err := c.profileService.GetActivity(ctx, &profile.GetActivityInput{DiscordID: target.ID})
	switch {
	case errors.Is(err, profile.ErrActivityNotFound), errors.Is(err, profile.ErrNoAccounts):
		return FollowupWithEmbed(s, i, renderError("Not Found", "No activity record was found for this user."), true)
	case err != nil:
		log.Warningf("failed to load activity for %s: %v", target.ID, err)
		return FollowupWithEmbed(s, i, renderError("Activity Error", "Failed to load activity. Please try again later."), true)
	}

	return FollowupWithEmbed(s, i, renderActivity(output.Activity), false)
}
