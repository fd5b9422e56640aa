package diagnostics

// DiagnosticsError is a custom error type for failed checks
type DiagnosticsError string

// Error implements the error interface
func (e DiagnosticsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         DiagnosticsError = "config cannot be nil"
	ErrNotConfigured     DiagnosticsError = "dependency is not configured"
	ErrBotNotReady       DiagnosticsError = "bot is not connected"
	ErrLatencyOutOfRange DiagnosticsError = "heartbeat latency out of range"
	ErrNoCommands        DiagnosticsError = "no application commands registered"
	ErrNoGuilds          DiagnosticsError = "bot is not in any guild"
)
