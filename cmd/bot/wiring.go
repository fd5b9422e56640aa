package main

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/waterstone/internal/clients/identity"
	"github.com/KirkDiggler/waterstone/internal/clients/recordstore"
	"github.com/KirkDiggler/waterstone/internal/common/logger"
	"github.com/KirkDiggler/waterstone/internal/config"
	"github.com/op/go-logging"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("main")

const pingTimeout = 5 * time.Second

// loadConfig reads the config named by --config and installs the log backend
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if err := logger.Setup(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// connectRedis opens the client and verifies the server answers
func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}

// newRecordStore returns nil when no database URL is configured
func newRecordStore(cfg *config.Config) (recordstore.Client, error) {
	if cfg.FirebaseDatabaseURL == "" {
		log.Warning("firebase_database_url is not set, profiles and activity are disabled")
		return nil, nil
	}

	client, err := recordstore.New(&recordstore.Config{
		BaseURL: cfg.FirebaseDatabaseURL,
		Secret:  cfg.FirebaseSecret,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create record store client: %w", err)
	}
	return client, nil
}

// newIdentity returns nil when no Bloxlink key is configured
func newIdentity(cfg *config.Config) (identity.Client, error) {
	if cfg.BloxlinkAPIKey == "" {
		log.Warning("bloxlink_api_key is not set, profiles are disabled")
		return nil, nil
	}

	client, err := identity.New(&identity.Config{
		APIKey:  cfg.BloxlinkAPIKey,
		GuildID: cfg.GuildID,
		GroupID: cfg.RobloxGroupID,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}
	return client, nil
}
