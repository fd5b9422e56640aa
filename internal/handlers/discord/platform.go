package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/waterstone/internal/models"
	"github.com/bwmarrin/discordgo"
)

const historyPageSize = 100

var (
	errNoSessionChannel    = errors.New("session channel is not configured")
	errNoTranscriptChannel = errors.New("transcript channel is not configured")
	errNoBotUser           = errors.New("bot user is not known yet")
)

// PlatformConfig holds the channels and roles the platform adapter uses
type PlatformConfig struct {
	Session *discordgo.Session

	PermittedRoleID    string
	SessionChannelID   string
	TicketCategoryID   string
	TicketTranscriptID string
}

// Platform carries the session and ticket services' side effects to Discord
type Platform struct {
	session *discordgo.Session
	config  *PlatformConfig
}

// NewPlatform creates the Discord platform adapter
func NewPlatform(cfg *PlatformConfig) (*Platform, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	return &Platform{
		session: cfg.Session,
		config:  cfg,
	}, nil
}

// Announce posts the session announcement and returns its message ID
func (p *Platform) Announce(ctx context.Context, sess *models.Session, kind models.AnnouncementKind) (string, error) {
	if p.config.SessionChannelID == "" {
		return "", errNoSessionChannel
	}

	msg, err := p.session.ChannelMessageSendEmbed(p.config.SessionChannelID,
		renderSessionAnnouncement(sess, kind), discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}

	return msg.ID, nil
}

// EditAnnouncement replaces the session announcement in place
func (p *Platform) EditAnnouncement(ctx context.Context, sess *models.Session, kind models.AnnouncementKind) error {
	if p.config.SessionChannelID == "" {
		return errNoSessionChannel
	}
	if sess.AnnouncementID == "" {
		return errors.New("session has no announcement")
	}

	_, err := p.session.ChannelMessageEditEmbed(p.config.SessionChannelID, sess.AnnouncementID,
		renderSessionAnnouncement(sess, kind), discordgo.WithContext(ctx))
	return err
}

// CreateEvent creates the guild scheduled event backing a scheduled session
func (p *Platform) CreateEvent(ctx context.Context, sess *models.Session) (string, error) {
	start := sess.StartTime
	end := sess.EndTime

	event, err := p.session.GuildScheduledEventCreate(sess.GuildID, &discordgo.GuildScheduledEventParams{
		Name:               sess.Title,
		Description:        fmt.Sprintf("Hosted by %s", sess.Host.DisplayName),
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: eventLocation},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}

	return event.ID, nil
}

// DeleteEvent removes a guild scheduled event
func (p *Platform) DeleteEvent(ctx context.Context, guildID, eventID string) error {
	return p.session.GuildScheduledEventDelete(guildID, eventID, discordgo.WithContext(ctx))
}

// GetMember resolves a guild member
func (p *Platform) GetMember(ctx context.Context, guildID, userID string) (*models.Member, error) {
	member, err := p.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return toMember(member), nil
}

// CreateTicketChannel creates the private ticket channel in the ticket category
func (p *Platform) CreateTicketChannel(ctx context.Context, guildID string, owner *models.Member, name, reason string) (string, error) {
	if p.session.State == nil || p.session.State.User == nil {
		return "", errNoBotUser
	}

	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    owner.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketMemberPermissions,
		},
		{
			ID:    p.session.State.User.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketMemberPermissions | discordgo.PermissionManageChannels | discordgo.PermissionManageMessages,
		},
	}
	if p.config.PermittedRoleID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    p.config.PermittedRoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: ticketMemberPermissions | discordgo.PermissionManageMessages,
		})
	}

	channel, err := p.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                owner.Mention(),
		ParentID:             p.config.TicketCategoryID,
		PermissionOverwrites: overwrites,
	},
		discordgo.WithAuditLogReason(fmt.Sprintf("Ticket created by %s - %s", owner.Username, reason)),
		discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}

	return channel.ID, nil
}

// PingStaff mentions the permitted role and deletes the ping right away
func (p *Platform) PingStaff(ctx context.Context, channelID string) error {
	if p.config.PermittedRoleID == "" {
		return nil
	}

	msg, err := p.session.ChannelMessageSend(channelID, fmt.Sprintf("<@&%s>", p.config.PermittedRoleID), discordgo.WithContext(ctx))
	if err != nil {
		return err
	}

	return p.session.ChannelMessageDelete(channelID, msg.ID, discordgo.WithContext(ctx))
}

// PostWelcome posts the welcome embeds into a new ticket
func (p *Platform) PostWelcome(ctx context.Context, ticket *models.Ticket) error {
	_, err := p.session.ChannelMessageSendComplex(ticket.ChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>", ticket.OwnerID),
		Embeds:  renderTicketWelcome(ticket),
	}, discordgo.WithContext(ctx))
	return err
}

// AllowMember grants a user access to a ticket channel
func (p *Platform) AllowMember(ctx context.Context, channelID, userID string) error {
	return p.session.ChannelPermissionSet(channelID, userID, discordgo.PermissionOverwriteTypeMember,
		ticketMemberPermissions, 0, discordgo.WithContext(ctx))
}

// RemoveMember drops a user's access overwrite from a ticket channel
func (p *Platform) RemoveMember(ctx context.Context, channelID, userID string) error {
	return p.session.ChannelPermissionDelete(channelID, userID, discordgo.WithContext(ctx))
}

// SetTopic changes the channel topic
func (p *Platform) SetTopic(ctx context.Context, channelID, topic string) error {
	_, err := p.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Topic: topic}, discordgo.WithContext(ctx))
	return err
}

// RenameChannel changes the channel name
func (p *Platform) RenameChannel(ctx context.Context, channelID, name string) error {
	_, err := p.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx))
	return err
}

// FetchHistory pages through the whole channel and returns it oldest first
func (p *Platform) FetchHistory(ctx context.Context, channelID string) ([]*models.TranscriptMessage, error) {
	var history []*discordgo.Message
	before := ""

	for {
		page, err := p.session.ChannelMessages(channelID, historyPageSize, before, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		history = append(history, page...)
		if len(page) < historyPageSize {
			break
		}
		before = page[len(page)-1].ID
	}

	messages := make([]*models.TranscriptMessage, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		messages = append(messages, toTranscriptMessage(history[i]))
	}

	return messages, nil
}

// UploadTranscript posts the transcript file to the transcript channel
func (p *Platform) UploadTranscript(ctx context.Context, ticket *models.Ticket, closedBy *models.Member, reason string, transcript []byte) error {
	if p.config.TicketTranscriptID == "" {
		return errNoTranscriptChannel
	}

	_, err := p.session.ChannelMessageSendComplex(p.config.TicketTranscriptID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{renderTranscript(ticket, closedBy, reason)},
		Files: []*discordgo.File{{
			Name:        fmt.Sprintf("transcript-%s.txt", ticket.ChannelID),
			ContentType: "text/plain",
			Reader:      bytes.NewReader(transcript),
		}},
	}, discordgo.WithContext(ctx))
	return err
}

// DeleteChannel deletes a ticket channel with an audit log reason
func (p *Platform) DeleteChannel(ctx context.Context, channelID, reason string) error {
	_, err := p.session.ChannelDelete(channelID, discordgo.WithAuditLogReason(reason), discordgo.WithContext(ctx))
	return err
}

func toTranscriptMessage(m *discordgo.Message) *models.TranscriptMessage {
	msg := &models.TranscriptMessage{
		AuthorName: "Unknown",
		Content:    m.Content,
		Timestamp:  m.Timestamp,
		Embeds:     len(m.Embeds),
	}
	if m.Author != nil {
		msg.AuthorName = m.Author.Username
	}
	for _, attachment := range m.Attachments {
		msg.Files = append(msg.Files, attachment.Filename)
	}

	return msg
}
