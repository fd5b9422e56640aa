package models

import "fmt"

// Member is a guild member as seen by the services
type Member struct {
	// ID is the Discord user ID
	ID string

	// Username is the account username
	Username string

	// DisplayName is the nickname if set, otherwise the username
	DisplayName string

	// AvatarURL is the member's avatar
	AvatarURL string

	// RoleIDs are the roles the member holds in the guild
	RoleIDs []string
}

// Mention returns the Discord mention for the member
func (m *Member) Mention() string {
	return fmt.Sprintf("<@%s>", m.ID)
}

// HasRole reports whether the member holds the role
func (m *Member) HasRole(roleID string) bool {
	if roleID == "" {
		return false
	}
	for _, id := range m.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}
