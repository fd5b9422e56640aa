package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Gateway reports the connection state of a discordgo session to the diagnostics checks
type Gateway struct {
	session *discordgo.Session
	guildID string
}

// NewGateway wraps a session. guildID scopes the command count; empty means global.
func NewGateway(session *discordgo.Session, guildID string) *Gateway {
	return &Gateway{session: session, guildID: guildID}
}

// Ready reports whether the gateway has identified
func (g *Gateway) Ready() bool {
	return g.session != nil && g.session.DataReady && g.session.State != nil && g.session.State.User != nil
}

// HeartbeatLatency is the last heartbeat round trip
func (g *Gateway) HeartbeatLatency() time.Duration {
	if g.session == nil {
		return 0
	}
	return g.session.HeartbeatLatency()
}

// CommandCount returns the number of registered application commands
func (g *Gateway) CommandCount(ctx context.Context) (int, error) {
	if !g.Ready() {
		return 0, nil
	}

	commands, err := g.session.ApplicationCommands(g.session.State.User.ID, g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	return len(commands), nil
}

// GuildCount returns the number of guilds in the state cache
func (g *Gateway) GuildCount() int {
	if g.session == nil || g.session.State == nil {
		return 0
	}

	g.session.State.RLock()
	defer g.session.State.RUnlock()
	return len(g.session.State.Guilds)
}
