package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Permissions answers who may run staff and developer commands
type Permissions struct {
	// PermittedRoleID is the staff role
	PermittedRoleID string

	// DeveloperIDs may run the developer commands
	DeveloperIDs []string

	// OwnerID is the application owner, also treated as a developer
	OwnerID string
}

// HasPermittedRole reports whether the member holds the staff role
func (p *Permissions) HasPermittedRole(member *discordgo.Member) bool {
	if member == nil || p.PermittedRoleID == "" {
		return false
	}
	for _, role := range member.Roles {
		if role == p.PermittedRoleID {
			return true
		}
	}
	return false
}

// IsTicketStaff allows the staff role and anyone who can manage channels
func (p *Permissions) IsTicketStaff(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if p.HasPermittedRole(member) {
		return true
	}
	return member.Permissions&(discordgo.PermissionManageChannels|discordgo.PermissionAdministrator) != 0
}

// IsDeveloper reports whether the user may run the developer commands
func (p *Permissions) IsDeveloper(userID string) bool {
	if userID == "" {
		return false
	}
	if p.OwnerID != "" && userID == p.OwnerID {
		return true
	}
	for _, id := range p.DeveloperIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func userID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
