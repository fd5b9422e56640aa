package diagnostics

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/waterstone/internal/clients/recordstore"
	"github.com/redis/go-redis/v9"
)

// MaxHeartbeatLatency is the upper bound of a healthy gateway connection
const MaxHeartbeatLatency = time.Second

// BotStatusCheck passes while the gateway session is open
func BotStatusCheck(gateway Gateway) Check {
	return Check{
		Name: CheckBotStatus,
		Run: func(ctx context.Context) error {
			if gateway == nil || !gateway.Ready() {
				return ErrBotNotReady
			}
			return nil
		},
	}
}

// DiscordConnectionCheck passes when the heartbeat latency is in (0, 1s)
func DiscordConnectionCheck(gateway Gateway) Check {
	return Check{
		Name: CheckDiscordConnection,
		Run: func(ctx context.Context) error {
			if gateway == nil {
				return ErrNotConfigured
			}
			latency := gateway.HeartbeatLatency()
			if latency <= 0 || latency >= MaxHeartbeatLatency {
				return fmt.Errorf("%w: %s", ErrLatencyOutOfRange, latency)
			}
			return nil
		},
	}
}

// RecordStoreCheck writes and reads back a probe record
func RecordStoreCheck(client recordstore.Client) Check {
	return Check{
		Name: CheckFirebase,
		Run: func(ctx context.Context) error {
			if client == nil {
				return ErrNotConfigured
			}
			return client.TestConnection(ctx)
		},
	}
}

// RedisCheck pings the Redis server
func RedisCheck(client redis.Cmdable) Check {
	return Check{
		Name: CheckRedis,
		Run: func(ctx context.Context) error {
			if client == nil {
				return ErrNotConfigured
			}
			return client.Ping(ctx).Err()
		},
	}
}

// CommandsSyncedCheck passes when at least one command is registered
func CommandsSyncedCheck(gateway Gateway) Check {
	return Check{
		Name: CheckCommandsSynced,
		Run: func(ctx context.Context) error {
			if gateway == nil {
				return ErrNotConfigured
			}
			count, err := gateway.CommandCount(ctx)
			if err != nil {
				return err
			}
			if count == 0 {
				return ErrNoCommands
			}
			return nil
		},
	}
}

// GuildConnectivityCheck passes when the bot is in at least one guild
func GuildConnectivityCheck(gateway Gateway) Check {
	return Check{
		Name: CheckGuildConnectivity,
		Run: func(ctx context.Context) error {
			if gateway == nil {
				return ErrNotConfigured
			}
			if gateway.GuildCount() == 0 {
				return ErrNoGuilds
			}
			return nil
		},
	}
}
