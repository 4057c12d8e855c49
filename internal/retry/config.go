// Package retry provides shared retry utilities for Azure OpenAI calls.
package retry

import "time"

// RequestTimeout is the default per-request timeout.
const RequestTimeout = 3 * time.Minute

// Config controls retry behavior for one call.
type Config struct {
	// MaxAttempts includes the initial attempt.
	MaxAttempts int

	// MinWait is the initial backoff interval.
	MinWait time.Duration

	// MaxWait caps the backoff interval.
	MaxWait time.Duration
}

// Predefined retry configurations.
var (
	Conservative = Config{MaxAttempts: 3, MinWait: 2 * time.Second, MaxWait: 30 * time.Second}
	Moderate     = Config{MaxAttempts: 4, MinWait: 3 * time.Second, MaxWait: 45 * time.Second}
	Aggressive   = Config{MaxAttempts: 6, MinWait: 5 * time.Second, MaxWait: 60 * time.Second}
)

// Profile returns the named configuration, defaulting to Conservative for
// unrecognized names.
func Profile(name string) Config {
	switch name {
	case "moderate":
		return Moderate
	case "aggressive":
		return Aggressive
	default:
		return Conservative
	}
}
