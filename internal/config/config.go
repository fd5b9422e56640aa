// Package config loads bot configuration from .env, an optional YAML file and
// the environment. Environment variables take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the top-level bot configuration
type Config struct {
	// Bot information
	DiscordBotToken string `mapstructure:"discord_bot_token"`
	ApplicationID   string `mapstructure:"application_id"`
	Version         string `mapstructure:"version"`

	// Identity linking
	BloxlinkAPIKey string `mapstructure:"bloxlink_api_key"`
	RobloxGroupID  string `mapstructure:"roblox_group_id"`

	// Record store
	FirebaseDatabaseURL string `mapstructure:"firebase_database_url"`
	FirebaseSecret      string `mapstructure:"firebase_secret"`

	// Server information
	GuildID         string `mapstructure:"guild_id"`
	PermittedRoleID string `mapstructure:"permitted_role_id"`

	// Channels
	SessionChannelID    string `mapstructure:"session_channel_id"`
	TimetableClaimingID string `mapstructure:"timetable_claiming_id"`
	TimetableChannelID  string `mapstructure:"timetable_channel_id"`
	TicketChannelID     string `mapstructure:"ticket_channel_id"`
	TicketTranscriptID  string `mapstructure:"ticket_transcript_id"`
	TicketCategoryID    string `mapstructure:"ticket_category_id"`
	SendChannelID       string `mapstructure:"send_channel_id"`

	// Developers allowed to run diagnose and send
	DeveloperIDs []string `mapstructure:"developer_ids"`

	// Redis
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`

	// Runtime
	ContentFile            string        `mapstructure:"content_file"`
	HealthAddr             string        `mapstructure:"health_addr"`
	LogLevel               string        `mapstructure:"log_level"`
	StaffRankThreshold     int           `mapstructure:"staff_rank_threshold"`
	SessionPollInterval    time.Duration `mapstructure:"session_poll_interval"`
	StatusRotationInterval time.Duration `mapstructure:"status_rotation_interval"`
	HTTPTimeout            time.Duration `mapstructure:"http_timeout"`
}

var requiredFields = []string{
	"discord_bot_token",
	"guild_id",
	"permitted_role_id",
}

// field: default value
var defaults = map[string]interface{}{
	"application_id":           "",
	"version":                  "dev",
	"bloxlink_api_key":         "",
	"roblox_group_id":          "",
	"firebase_database_url":    "",
	"firebase_secret":          "",
	"session_channel_id":       "",
	"timetable_claiming_id":    "",
	"timetable_channel_id":     "",
	"ticket_channel_id":        "",
	"ticket_transcript_id":     "",
	"ticket_category_id":       "",
	"send_channel_id":          "",
	"developer_ids":            "",
	"redis_addr":               "localhost:6379",
	"redis_password":           "",
	"content_file":             "content.yaml",
	"health_addr":              ":8080",
	"log_level":                "INFO",
	"staff_rank_threshold":     25,
	"session_poll_interval":    "30s",
	"status_rotation_interval": "10s",
	"http_timeout":             "10s",
}

// Load reads .env (if present), the optional YAML file at path and the
// environment, and returns a validated Config.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for _, key := range requiredFields {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.DeveloperIDs = nil
	for _, raw := range v.GetStringSlice("developer_ids") {
		cfg.DeveloperIDs = append(cfg.DeveloperIDs, splitIDs(raw)...)
	}

	if err := cfg.validate(v); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks that all required fields are present and consistent
func (c *Config) validate(v *viper.Viper) error {
	var errs []string
	for _, key := range requiredFields {
		if strings.TrimSpace(v.GetString(key)) == "" {
			errs = append(errs, fmt.Sprintf("%s is required", key))
		}
	}
	if c.SessionPollInterval <= 0 {
		errs = append(errs, "session_poll_interval must be positive")
	}
	if c.StatusRotationInterval <= 0 {
		errs = append(errs, "status_rotation_interval must be positive")
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, "http_timeout must be positive")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// IsDeveloper reports whether the user ID is listed in developer_ids
func (c *Config) IsDeveloper(userID string) bool {
	for _, id := range c.DeveloperIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
