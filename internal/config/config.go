// Package config handles configuration for the Intuvia demo app, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the demo.
//
// Fields:
//   - DatabaseDSN: slot-store location; a postgres:// URL or a SQLite file path.
//   - SessionValidityDuration: how long a session lives after login.
//   - ResetTokenValidityDuration: how long a reset token stays usable.
//   - SimulatedNetworkDelay: artificial latency for the fake SSO/Google calls.
//   - ResetBaseURL: base of the reset link handed back by a forgot-password request.
type Config struct {
	DatabaseDSN                string
	SessionValidityDuration    time.Duration
	ResetTokenValidityDuration time.Duration
	SimulatedNetworkDelay      time.Duration
	ResetBaseURL               string
}

// LoadDefaults populates Config with the demo defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "intuvia.db"
	c.SessionValidityDuration = 24 * time.Hour
	c.ResetTokenValidityDuration = 30 * time.Minute
	c.SimulatedNetworkDelay = 1500 * time.Millisecond
	c.ResetBaseURL = "https://intuvia.example/reset-password"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
