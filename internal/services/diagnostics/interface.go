package diagnostics

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/KirkDiggler/waterstone/internal/services/diagnostics Gateway

import (
	"context"
	"time"
)

// Service runs the configured health checks
type Service interface {
	// Run executes every check in order and reports each result
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Gateway exposes the chat connection state the gateway checks inspect
type Gateway interface {
	// Ready reports whether the gateway session is open and identified
	Ready() bool

	// HeartbeatLatency is the last measured heartbeat round trip
	HeartbeatLatency() time.Duration

	// CommandCount returns the number of registered application commands
	CommandCount(ctx context.Context) (int, error)

	// GuildCount returns the number of guilds the bot is in
	GuildCount() int
}
