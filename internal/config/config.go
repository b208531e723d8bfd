// Package config resolves CLI configuration from the environment. There are
// no config files or layered sources; a handful of HDKEY_* variables with
// flag overrides covers everything the tool needs.
package config

import (
	"fmt"

	"github/chapool/wallet-sdk/internal/util"
)

// ModuleName is the reverse-notation identifier of this module
const ModuleName = "chapool.wallet-sdk.hdkey"

// The following vars are automatically injected via -ldflags
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Config holds all env-resolved settings for the hdkey CLI
type Config struct {
	// DefaultPathPrefix is prepended by commands that take an account index
	// instead of a full derivation path
	DefaultPathPrefix string

	Logger LoggerConfig
}

// LoggerConfig holds log output settings
type LoggerConfig struct {
	Level              string
	PrettyPrintConsole bool
}

// DefaultConfigFromEnv returns the CLI config resolved from HDKEY_* ENV
// variables with built-in defaults
func DefaultConfigFromEnv() Config {
	return Config{
		DefaultPathPrefix: util.GetEnv("HDKEY_DEFAULT_PATH_PREFIX", "m/44'/60'/0'/0"),
		Logger: LoggerConfig{
			Level:              util.GetEnv("HDKEY_LOGGER_LEVEL", "info"),
			PrettyPrintConsole: util.GetEnvAsBool("HDKEY_LOGGER_PRETTY_PRINT_CONSOLE", true),
		},
	}
}

// GetFormattedBuildArgs returns the build args formatted as
// "<Commit> (<BuildDate>)"
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v (%v)", Commit, BuildDate)
}
