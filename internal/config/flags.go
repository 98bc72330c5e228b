package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/intuvia/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   slot-store DSN (postgres:// URL or SQLite file path)
//	-t int      session validity, minutes
//	-k int      reset token validity, minutes
//	-n int      simulated network delay, milliseconds
//	-u string   reset link base URL
//
// Args are pre-filtered with flagx.FilterArgs so flags owned by other
// components do not collide. Duration flags are plain integers converted to
// time.Duration afterwards.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-k", "-n", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "slot store DSN")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes)")
	resetValidity := fs.Int("k", int(config.ResetTokenValidityDuration.Minutes()), "reset token validity (in minutes)")
	simulatedDelay := fs.Int("n", int(config.SimulatedNetworkDelay.Milliseconds()), "simulated network delay (in milliseconds)")

	fs.StringVar(&config.ResetBaseURL, "u", config.ResetBaseURL, "reset link base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
	config.ResetTokenValidityDuration = time.Duration(*resetValidity) * time.Minute
	config.SimulatedNetworkDelay = time.Duration(*simulatedDelay) * time.Millisecond
}
