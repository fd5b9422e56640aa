package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/waterstone/internal/models"
	"github.com/KirkDiggler/waterstone/internal/services/diagnostics"
	"github.com/KirkDiggler/waterstone/internal/services/messaging"
	"github.com/KirkDiggler/waterstone/internal/services/timetable"
	"github.com/bwmarrin/discordgo"
)

// Custom emojis of the Waterstone server
const (
	emojiTick    = "<:Tick:1446847553365737554>"
	emojiCross   = "<:Cross:1446847583510331392>"
	emojiWarning = "<:Warning:1446849251853471764>"
	emojiPeople  = "<:People:1446847702804598886>"

	// Reaction form of the emojis above
	reactionTick    = "Tick:1446847553365737554"
	reactionCross   = "Cross:1446847583510331392"
	reactionWarning = "Warning:1446849251853471764"
)

const (
	colorRed   = 0xe74c3c
	colorGreen = 0x2ecc71

	dividerImage = "https://media.discordapp.net/attachments/1353870922712354900/1437239861802303628/WSALine.png"

	supportTitle  = "Waterstone Support"
	boardTitle    = "Staff Timetable"
	eventLocation = "Waterstone School"
)

func divider() *discordgo.MessageEmbedImage {
	return &discordgo.MessageEmbedImage{URL: dividerImage}
}

func shortTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:t>", t.Unix())
}

func fullTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:F>", t.Unix())
}

func hostMention(sess *models.Session) string {
	if sess.Host == nil {
		return "Unknown"
	}
	return sess.Host.Mention()
}

// renderError builds the red failure embed shown to the invoking user
func renderError(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       emojiCross + "  " + title,
		Description: description,
		Color:       colorRed,
	}
}

// renderNotice builds a plain informational embed
func renderNotice(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Image:       divider(),
	}
}

// renderSessionAnnouncement builds the announcement for the given lifecycle step
func renderSessionAnnouncement(sess *models.Session, kind models.AnnouncementKind) *discordgo.MessageEmbed {
	var title, intro string
	end := sess.EndTime

	switch kind {
	case models.AnnouncementEnded:
		title = "Waterstone Session Ending"
		intro = "Our session has now ended, thank you to everyone who attended. See you next time!"
	case models.AnnouncementCancelled:
		title = "Waterstone Session Cancelled"
		intro = "Our session was cancelled, we're sorry for any inconveniences caused. Our next session will be hopefully active and engaging."
		if !sess.CancelledAt.IsZero() {
			end = sess.CancelledAt
		}
	default:
		title = "Waterstone Session Starting"
		intro = "Our session has now started on our school premises. We are so excited to see you on our campus! If you have any questions, please find our session host."
	}

	return &discordgo.MessageEmbed{
		Title: title,
		Description: fmt.Sprintf("%s\n\n**Host**: %s\n**Start Time**: %s\n**End Time**: %s",
			intro, hostMention(sess), shortTime(sess.StartTime), shortTime(end)),
		Image: divider(),
	}
}

func renderSessionStarted(sess *models.Session) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Session Started",
		Description: fmt.Sprintf("You have successfully started a session with the following information:\n\n**Host**: %s\n**Start Time**: %s\n**End Time**: %s",
			hostMention(sess), shortTime(sess.StartTime), shortTime(sess.EndTime)),
		Color: colorGreen,
		Image: divider(),
	}
}

func renderSessionScheduled(sess *models.Session) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Session Scheduled",
		Description: fmt.Sprintf("You have successfully scheduled a session with the following information:\n\n**Title**: %s\n**Host**: %s\n**Start Time**: %s\n**End Time**: %s\n\nA server event has been created and the session will start automatically at the scheduled time!",
			sess.Title, hostMention(sess), fullTime(sess.StartTime), fullTime(sess.EndTime)),
		Color: colorGreen,
		Image: divider(),
	}
}

func renderSessionCancelled(sess *models.Session) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Session Cancelled",
		Description: fmt.Sprintf("You have successfully cancelled the session with the following information:\n\n**Host**: %s\n**Start Time**: %s\n**End Time**: %s",
			hostMention(sess), shortTime(sess.StartTime), shortTime(sess.CancelledAt)),
		Image: divider(),
	}
}

func renderScheduledCancelled(sess *models.Session) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Scheduled Session Cancelled",
		Description: fmt.Sprintf("The scheduled session **%s** on %s has been cancelled and its server event removed.",
			sess.Title, fullTime(sess.StartTime)),
		Image: divider(),
	}
}

// renderSessionStatus lists the active session and the scheduled ones
func renderSessionStatus(active *models.Session, scheduled []*models.Session) *discordgo.MessageEmbed {
	var b strings.Builder

	b.WriteString("**Active Session**\n")
	if active == nil {
		b.WriteString("None\n")
	} else {
		fmt.Fprintf(&b, "%s from %s to %s\n", hostMention(active), shortTime(active.StartTime), shortTime(active.EndTime))
	}

	b.WriteString("\n**Scheduled Sessions**\n")
	if len(scheduled) == 0 {
		b.WriteString("None")
	}
	for _, sess := range scheduled {
		fmt.Fprintf(&b, "%s by %s on %s (event `%s`)\n", sess.Title, hostMention(sess), fullTime(sess.StartTime), sess.EventID)
	}

	return &discordgo.MessageEmbed{
		Title:       "Session Status",
		Description: strings.TrimRight(b.String(), "\n"),
		Image:       divider(),
	}
}

// renderBoard renders the staff timetable in layout order
func renderBoard(board *timetable.GetBoardOutput) *discordgo.MessageEmbed {
	parts := make([]string, 0, len(board.Periods)*6)
	for _, period := range board.Periods {
		parts = append(parts, fmt.Sprintf("**%s**", period.Period))
		for _, cell := range period.Cells {
			if cell.Slot == nil {
				parts = append(parts, fmt.Sprintf("%s: **Unclaimed**", cell.YearGroup))
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s - **%s**", cell.YearGroup, cell.Slot.Staff, cell.Slot.Room))
		}
		parts = append(parts, "")
	}

	return &discordgo.MessageEmbed{
		Title:       boardTitle,
		Description: strings.TrimRight(strings.Join(parts, "\n"), "\n"),
		Image:       divider(),
	}
}

func renderClaimFormat() *discordgo.MessageEmbed {
	return renderNotice("Error while claiming slot",
		"You aren't using the correct format when trying to claim a slot, please look at the following examples for guidance.\n\n"+
			"**Lessons:**\n```Period 1\nMaths\nYear 7\nF07```\n"+
			"**Reflection/Pastoral/Reception:**\n```Period 1\nReflection```")
}

func renderClaimTaken() *discordgo.MessageEmbed {
	return renderNotice("Error while claiming slot",
		"We were unable to allocate you this slot, this slot has already been taken by another member of staff. Please claim another free slot.")
}

func renderClaimSuccess(claim *models.ClaimRequest) *discordgo.MessageEmbed {
	return renderNotice("Successfully Claimed",
		fmt.Sprintf("You have successfully claimed **%s**, **%s** in **%s**. Please make sure you attend session and arrive to your designated area.",
			claim.YearGroup, claim.Period, claim.Room))
}

func renderSlotEdited(output *timetable.EditSlotOutput) *discordgo.MessageEmbed {
	action := "assigned"
	if output.Replaced {
		action = "updated"
	}
	slot := output.Slot

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Slot %s", strings.ToUpper(action[:1])+action[1:]),
		Description: fmt.Sprintf("Successfully %s **%s** during **%s** to %s.\n\n**Subject:** %s\n**Room:** %s",
			action, slot.YearGroup, slot.Period, slot.Staff, slot.Subject, slot.Room),
		Color: colorGreen,
	}
}

func renderTicketPanel() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title: supportTitle,
			Description: "At Waterstone, we want to cater to all of our members by offering a wide variety of support. " +
				"If you need to speak to a member of our Leadership Team, please open a ticket below.\n\n" +
				"**Before opening a ticket, be aware of these things**;\n" +
				"- Abusing the system will result into being moderated.\n" +
				"- Please allow 24-48 hours for our team to process your enquiry.\n" +
				"- Failure to respond to the ticket after a certain time will result in closure.",
			Image: divider(),
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Create Ticket",
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonCreateTicket,
					},
				},
			},
		},
	}
}

func renderTicketWelcome(ticket *models.Ticket) []*discordgo.MessageEmbed {
	return []*discordgo.MessageEmbed{
		{
			Title: supportTitle,
			Description: "Thank you for opening a ticket, a member of our Leadership Team will speak to you momentarily. " +
				"We advise you to follow our ticket rules when waiting for a response.\n\n" +
				"**Some things to remember**;\n" +
				"- Abusing the system will result into being moderated.\n" +
				"- Please allow 24-48 hours for our team to process your enquiry.\n" +
				"- Failure to respond to the ticket after a certain time will result in closure.",
			Image: divider(),
		},
		{
			Description: fmt.Sprintf("**Reason**: %s\n**Opened by**: <@%s>", ticket.Reason, ticket.OwnerID),
			Image:       divider(),
		},
	}
}

func renderTicketReasonModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: ModalTicketReason,
		Title:    "Create Support Ticket",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    InputTicketReason,
						Label:       "Reason for ticket",
						Style:       discordgo.TextInputParagraph,
						Placeholder: "Please describe your issue or question.",
						Required:    true,
						MaxLength:   ticketReasonMaxLength,
					},
				},
			},
		},
	}
}

// renderSupport builds the embeds used for ticket replies
func renderSupport(emoji, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       emoji + "  " + supportTitle,
		Description: description,
	}
}

func renderTicketClosing(closedBy *models.Member, reason string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       emojiPeople + "  " + supportTitle,
		Description: "Generating transcript and closing ticket...",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reason", Value: reason},
			{Name: "Closed By", Value: closedBy.Mention(), Inline: true},
		},
	}
}

func renderTranscript(ticket *models.Ticket, closedBy *models.Member, reason string) *discordgo.MessageEmbed {
	owner := "Unknown"
	if ticket.OwnerID != "" {
		owner = fmt.Sprintf("<@%s>", ticket.OwnerID)
	}

	return &discordgo.MessageEmbed{
		Title: "Ticket Transcript",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Ticket", Value: fmt.Sprintf("`%s`", ticket.ChannelID), Inline: true},
			{Name: "Opened By", Value: owner, Inline: true},
			{Name: "Closed By", Value: closedBy.Mention(), Inline: true},
			{Name: "Reason", Value: reason},
		},
	}
}

func renderProfile(profile *models.Profile, discordUsername, avatarURL string) *discordgo.MessageEmbed {
	title := "Student Profile"
	if profile.IsStaff {
		title = "Staff Profile"
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**Roleplay Name**\n```%s```", profile.RoleplayName),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Roblox Username", Value: fmt.Sprintf("`%s`", profile.RobloxUsername), Inline: true},
			{Name: "Discord Username", Value: fmt.Sprintf("`%s`", discordUsername), Inline: true},
			{Name: "Rank", Value: fmt.Sprintf("`%s`", profile.Rank), Inline: true},
			{Name: "Account Status", Value: profile.AccountStatus, Inline: true},
			{Name: "Negative Points", Value: "N/A", Inline: true},
			{Name: "Positive Points", Value: "N/A", Inline: true},
		},
		Image: divider(),
	}
	if avatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: avatarURL}
	}

	return embed
}

func renderActivity(activity *models.Activity) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Staff Activity",
		Description: fmt.Sprintf("```%s```", activity.RoleplayName),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total Sessions", Value: fmt.Sprintf("`%d`", activity.TotalSessions), Inline: true},
			{Name: "Total Minutes", Value: fmt.Sprintf("`%d`", activity.TotalMinutes), Inline: true},
			{Name: "Total Messages", Value: fmt.Sprintf("`%d`", activity.TotalMessages), Inline: true},
		},
		Image: divider(),
	}
}

func renderBotInfo(info *messaging.GetBotInfoOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Bot Information",
		Description: "All information linking to the Waterstone Bot is listed below this message. Information & data may change at any time.",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Waterstone Developers", Value: info.Developers, Inline: true},
			{Name: "Waterstone Server Location", Value: info.Location, Inline: true},
			{Name: "Random Fact", Value: fmt.Sprintf("```%s```", info.Fact)},
		},
	}
}

func renderDiagnostics(output *diagnostics.RunOutput) *discordgo.MessageEmbed {
	var b strings.Builder
	b.WriteString("Waterstone Services check complete.\n\n")
	for _, result := range output.Results {
		emoji := emojiCross
		if result.Passed {
			emoji = emojiTick
		}
		fmt.Fprintf(&b, "**%s**\n%s\n\n", result.Name, emoji)
	}

	return &discordgo.MessageEmbed{
		Title:       "Bot Diagnoses",
		Description: strings.TrimRight(b.String(), "\n"),
		Image:       divider(),
	}
}

// renderPreset turns a send preset into a channel message
func renderPreset(preset *messaging.Preset) *discordgo.MessageSend {
	send := &discordgo.MessageSend{
		Content: preset.Content,
	}
	for _, image := range preset.Images {
		send.Embeds = append(send.Embeds, &discordgo.MessageEmbed{
			Image: &discordgo.MessageEmbedImage{URL: image},
		})
	}
	if strings.Contains(preset.Content, "@everyone") {
		send.AllowedMentions = &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeEveryone},
		}
	}

	return send
}
