package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/waterstone/internal/models"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("identity")

// client implements the Client interface against the Bloxlink v4 API, falling
// back to the public Roblox APIs when the link response is unresolved
type client struct {
	apiKey     string
	guildID    string
	groupID    string
	baseURL    string
	usersURL   string
	groupsURL  string
	timeout    time.Duration
	httpClient *http.Client
}

// New creates a new identity client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GuildID == "" {
		return nil, ErrMissingGuild
	}

	c := &client{
		apiKey:     cfg.APIKey,
		guildID:    cfg.GuildID,
		groupID:    cfg.GroupID,
		baseURL:    orDefault(cfg.BaseURL, DefaultBaseURL),
		usersURL:   orDefault(cfg.UsersURL, DefaultUsersURL),
		groupsURL:  orDefault(cfg.GroupsURL, DefaultGroupsURL),
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
	}
	if c.timeout == 0 {
		c.timeout = DefaultTimeout
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return strings.TrimRight(v, "/")
}

// send issues the request and decodes a 200 response into out. It returns the
// status code so callers can branch on 404.
func (c *client) send(ctx context.Context, method, url string, authorized bool, out interface{}) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	if authorized {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode %s: %w", url, err)
		}
	}
	return resp.StatusCode, nil
}

// GetUser resolves the linked Roblox account of a Discord user
func (c *client) GetUser(ctx context.Context, discordID string) (*models.LinkedAccount, error) {
	url := fmt.Sprintf("%s/public/guilds/%s/discord-to-roblox/%s", c.baseURL, c.guildID, discordID)

	var link linkResponse
	status, err := c.send(ctx, http.MethodGet, url, true, &link)
	if status == http.StatusNotFound {
		return nil, ErrNotLinked
	}
	if err != nil {
		return nil, err
	}
	if link.RobloxID == "" {
		return nil, ErrNotLinked
	}

	account := &models.LinkedAccount{
		RobloxID: link.RobloxID,
		Username: link.RobloxUsername,
	}

	roles := link.Resolved.Groups
	if link.Resolved.Roblox != nil {
		if link.Resolved.Roblox.Name != "" {
			account.Username = link.Resolved.Roblox.Name
		}
		account.DisplayName = link.Resolved.Roblox.DisplayName
		if len(link.Resolved.Roblox.Groups) > 0 {
			roles = link.Resolved.Roblox.Groups
		}
	} else if len(roles) == 0 {
		c.resolveFromRoblox(ctx, account)
		return account, nil
	}

	account.Groups = memberships(roles)
	return account, nil
}

// resolveFromRoblox fills the username and groups from the public Roblox
// APIs. Failures leave the fields empty.
func (c *client) resolveFromRoblox(ctx context.Context, account *models.LinkedAccount) {
	var user robloxUser
	if _, err := c.send(ctx, http.MethodGet, fmt.Sprintf("%s/v1/users/%s", c.usersURL, account.RobloxID), false, &user); err != nil {
		log.Warningf("failed to resolve roblox user %s: %v", account.RobloxID, err)
		return
	}
	if user.Name != "" {
		account.Username = user.Name
	}
	account.DisplayName = user.DisplayName

	var roles groupRolesResponse
	if _, err := c.send(ctx, http.MethodGet, fmt.Sprintf("%s/v1/users/%s/groups/roles", c.groupsURL, account.RobloxID), false, &roles); err != nil {
		log.Warningf("failed to resolve groups of roblox user %s: %v", account.RobloxID, err)
		return
	}
	account.Groups = memberships(roles.Data)
}

func memberships(roles []groupRole) []models.GroupMembership {
	out := make([]models.GroupMembership, 0, len(roles))
	for _, r := range roles {
		out = append(out, models.GroupMembership{
			GroupID:   r.Group.ID.String(),
			GroupName: r.Group.Name,
			RoleName:  r.Role.Name,
			Rank:      r.Role.Rank,
		})
	}
	return out
}

// GetPrimaryGroup returns the user's membership in the configured group
func (c *client) GetPrimaryGroup(ctx context.Context, discordID string) (*models.GroupMembership, error) {
	account, err := c.GetUser(ctx, discordID)
	if err != nil {
		return nil, err
	}

	for _, group := range account.Groups {
		if group.GroupID == c.groupID {
			g := group
			return &g, nil
		}
	}
	return nil, ErrNotInGroup
}

// GetRank returns the user's role name in the configured group
func (c *client) GetRank(ctx context.Context, discordID string) (string, error) {
	group, err := c.GetPrimaryGroup(ctx, discordID)
	if err != nil {
		return "", err
	}
	return group.RoleName, nil
}

// GetUsername returns the linked Roblox username
func (c *client) GetUsername(ctx context.Context, discordID string) (string, error) {
	account, err := c.GetUser(ctx, discordID)
	if err != nil {
		return "", err
	}
	if account.Username == "" {
		return "", ErrNoUsername
	}
	return account.Username, nil
}

// UpdateUser triggers a role refresh for the user
func (c *client) UpdateUser(ctx context.Context, discordID string) error {
	url := fmt.Sprintf("%s/public/guilds/%s/update-user/%s", c.baseURL, c.guildID, discordID)
	status, err := c.send(ctx, http.MethodPatch, url, true, nil)
	if status == http.StatusNotFound {
		return ErrNotLinked
	}
	return err
}

// IsNotLinked reports whether err means the user has no linked account
func IsNotLinked(err error) bool {
	return errors.Is(err, ErrNotLinked)
}
