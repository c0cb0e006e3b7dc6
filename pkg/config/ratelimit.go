package config

import (
	"log/slog"
	"time"
)

// RateLimitConfig holds the token bucket settings for per-client request
// limiting. RPS is the sustained refill rate; Burst is the bucket depth.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int

	// IdleEviction is how long an idle client keeps its bucket before
	// the limiter forgets it.
	IdleEviction time.Duration
}

// Default token bucket settings. Ten sustained requests per second with
// a burst of thirty absorbs mobile clients refreshing a feed without
// letting one address monopolize the server.
const (
	DefaultRateLimitRPS   = 10
	DefaultRateLimitBurst = 30
)

// DefaultIdleEviction is how long an idle client keeps its bucket when
// RATELIMIT_IDLE_EVICTION is unset.
const DefaultIdleEviction = 10 * time.Minute

// LoadRateLimitConfig loads rate limiting configuration from environment
// variables. Invalid values log a warning and fall back to the default
// instead of failing startup.
//
// Environment variables:
//   - RATELIMIT_ENABLED: Enable/disable rate limiting (default: true)
//   - RATELIMIT_RPS: Sustained requests per second per client (default: 10)
//   - RATELIMIT_BURST: Bucket depth per client (default: 30)
//   - RATELIMIT_IDLE_EVICTION: Idle bucket lifetime (default: 10m)
func LoadRateLimitConfig() *RateLimitConfig {
	config := &RateLimitConfig{}

	config.Enabled = GetEnvBool("RATELIMIT_ENABLED", true)

	rps := GetEnvInt("RATELIMIT_RPS", DefaultRateLimitRPS)
	if rps <= 0 {
		slog.Warn("invalid RATELIMIT_RPS, using default",
			slog.Int("value", rps),
			slog.Int("default", DefaultRateLimitRPS))
		rps = DefaultRateLimitRPS
	}
	config.RPS = float64(rps)

	burst := GetEnvInt("RATELIMIT_BURST", DefaultRateLimitBurst)
	if burst <= 0 {
		slog.Warn("invalid RATELIMIT_BURST, using default",
			slog.Int("value", burst),
			slog.Int("default", DefaultRateLimitBurst))
		burst = DefaultRateLimitBurst
	}
	config.Burst = burst

	// An eviction shorter than a minute churns the bucket map for nothing;
	// longer than a day just hoards memory for clients that left.
	idle := GetEnvDuration("RATELIMIT_IDLE_EVICTION", DefaultIdleEviction)
	if err := ValidateDurationRange(idle, 1*time.Minute, 24*time.Hour); err != nil {
		slog.Warn("invalid RATELIMIT_IDLE_EVICTION, using default",
			slog.String("value", idle.String()),
			slog.String("default", DefaultIdleEviction.String()),
			slog.String("error", err.Error()))
		idle = DefaultIdleEviction
	}
	config.IdleEviction = idle

	return config
}
