// Package config handles application configuration and setup
package config

import (
	"os"

	"github.com/retroenv/retrogolib/log"
)

// OffsetsEnv names the environment variable that points to the BN4 offset
// table file when no -offsets flag is given.
const OffsetsEnv = "BNDATA_OFFSETS"

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// OffsetsFile returns the offset table file to load, the explicit name takes
// precedence over the environment. An empty result means no table is
// configured.
func OffsetsFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(OffsetsEnv)
}
