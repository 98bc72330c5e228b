package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/intuvia/internal/flagx"
	"github.com/dmitrijs2005/intuvia/internal/timex"
)

// JsonConfig is the DTO used when reading JSON configuration files. Interval
// fields use timex.Duration, which accepts both strings such as "30m" and
// integer nanoseconds. After unmarshalling, values are copied into the
// runtime Config.
type JsonConfig struct {
	DatabaseDSN                string         `json:"database_dsn"`
	SessionValidityDuration    timex.Duration `json:"session_validity_duration"`
	ResetTokenValidityDuration timex.Duration `json:"reset_token_validity_duration"`
	SimulatedNetworkDelay      timex.Duration `json:"simulated_network_delay"`
	ResetBaseURL               string         `json:"reset_base_url"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is named, nothing
// happens. An unreadable or malformed file panics: the demo cannot start with
// a half-applied config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.DatabaseDSN = c.DatabaseDSN
	config.SessionValidityDuration = c.SessionValidityDuration.Duration
	config.ResetTokenValidityDuration = c.ResetTokenValidityDuration.Duration
	config.SimulatedNetworkDelay = c.SimulatedNetworkDelay.Duration
	config.ResetBaseURL = c.ResetBaseURL
}
