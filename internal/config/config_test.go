package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github/chapool/wallet-sdk/internal/config"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	cfg := config.DefaultConfigFromEnv()

	assert.Equal(t, "m/44'/60'/0'/0", cfg.DefaultPathPrefix)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Logger.PrettyPrintConsole)
}

func TestDefaultConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("HDKEY_DEFAULT_PATH_PREFIX", "m/44'/1'/0'/0")
	t.Setenv("HDKEY_LOGGER_LEVEL", "debug")
	t.Setenv("HDKEY_LOGGER_PRETTY_PRINT_CONSOLE", "false")

	cfg := config.DefaultConfigFromEnv()

	assert.Equal(t, "m/44'/1'/0'/0", cfg.DefaultPathPrefix)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.False(t, cfg.Logger.PrettyPrintConsole)
}

func TestGetFormattedBuildArgs(t *testing.T) {
	assert.Equal(t, "unknown (unknown)", config.GetFormattedBuildArgs())
}
