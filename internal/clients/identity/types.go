package identity

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	DefaultBaseURL   = "https://api.blox.link/v4"
	DefaultUsersURL  = "https://users.roblox.com"
	DefaultGroupsURL = "https://groups.roblox.com"
	DefaultTimeout   = 10 * time.Second
)

// Config holds configuration for the identity client
type Config struct {
	APIKey  string
	GuildID string

	// GroupID is the Roblox group whose rank is reported
	GroupID string

	BaseURL   string
	UsersURL  string
	GroupsURL string
	Timeout   time.Duration

	HTTPClient *http.Client
}

type linkResponse struct {
	RobloxID       string `json:"robloxID"`
	RobloxUsername string `json:"robloxUsername"`
	Resolved       struct {
		Roblox *robloxUser `json:"roblox"`
		Groups []groupRole `json:"groups"`
	} `json:"resolved"`
}

type robloxUser struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Groups      []groupRole `json:"groups"`
}

type groupRole struct {
	Group struct {
		ID   json.Number `json:"id"`
		Name string      `json:"name"`
	} `json:"group"`
	Role struct {
		Name string `json:"name"`
		Rank int    `json:"rank"`
	} `json:"role"`
}

type groupRolesResponse struct {
	Data []groupRole `json:"data"`
}
