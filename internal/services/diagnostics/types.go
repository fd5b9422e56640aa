package diagnostics

import (
	"context"
	"time"
)

// DefaultCheckTimeout bounds a single check
const DefaultCheckTimeout = 5 * time.Second

// Check names
const (
	CheckBotStatus         = "Bot Status"
	CheckDiscordConnection = "Discord Connection"
	CheckFirebase          = "Firebase Connection"
	CheckRedis             = "Redis Connection"
	CheckCommandsSynced    = "Commands Synced"
	CheckGuildConnectivity = "Guild Connectivity"
)

// CheckFunc returns nil when the checked component is healthy
type CheckFunc func(ctx context.Context) error

// Check is a named health check
type Check struct {
	Name string
	Run  CheckFunc
}

// Config holds the checks in display order
type Config struct {
	Checks []Check

	// Timeout defaults to DefaultCheckTimeout
	Timeout time.Duration
}

type RunInput struct{}

// Result is the outcome of a single check
type Result struct {
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

type RunOutput struct {
	Results []*Result `json:"results"`

	// Healthy is true when every check passed
	Healthy bool `json:"healthy"`
}
