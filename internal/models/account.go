package models

// Account is a student or staff record held in the external record store
type Account struct {
	DiscordID       string `json:"discord_id"`
	RoleplayName    string `json:"roleplay_name"`
	AccountStatus   string `json:"account_status"`
	UserBlacklisted bool   `json:"user_blacklisted"`
	TotalSessions   int    `json:"total_sessions"`
	TotalMinutes    int    `json:"total_minutes"`
	TotalMessages   int    `json:"total_messages"`
}

// LinkedAccount is the game account linked to a Discord user
type LinkedAccount struct {
	// RobloxID is the linked Roblox user ID
	RobloxID string

	// Username is the Roblox username
	Username string

	// DisplayName is the Roblox display name
	DisplayName string

	// Groups are the Roblox groups the account belongs to
	Groups []GroupMembership
}

// GroupMembership is a Roblox group role held by an account
type GroupMembership struct {
	GroupID   string
	GroupName string
	RoleName  string
	Rank      int
}

// Profile is the combined view rendered by the profile command
type Profile struct {
	RobloxID       string
	RobloxUsername string
	Rank           string
	RankNumber     int
	AccountStatus  string
	RoleplayName   string
	IsStaff        bool
}

// Activity is the staff activity summary from the record store
type Activity struct {
	RoleplayName  string
	TotalSessions int
	TotalMinutes  int
	TotalMessages int
}
