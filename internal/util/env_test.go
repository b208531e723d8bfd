package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github/chapool/wallet-sdk/internal/util"
)

func TestGetEnv(t *testing.T) {
	assert.Equal(t, "fallback", util.GetEnv("HDKEY_TEST_UNSET", "fallback"))

	t.Setenv("HDKEY_TEST_SET", "value")
	assert.Equal(t, "value", util.GetEnv("HDKEY_TEST_SET", "fallback"))

	t.Setenv("HDKEY_TEST_EMPTY", "")
	assert.Equal(t, "", util.GetEnv("HDKEY_TEST_EMPTY", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	assert.Equal(t, 42, util.GetEnvAsInt("HDKEY_TEST_UNSET", 42))

	t.Setenv("HDKEY_TEST_INT", "7")
	assert.Equal(t, 7, util.GetEnvAsInt("HDKEY_TEST_INT", 42))

	t.Setenv("HDKEY_TEST_INT_BAD", "not a number")
	assert.Equal(t, 42, util.GetEnvAsInt("HDKEY_TEST_INT_BAD", 42))
}

func TestGetEnvAsBool(t *testing.T) {
	assert.True(t, util.GetEnvAsBool("HDKEY_TEST_UNSET", true))

	t.Setenv("HDKEY_TEST_BOOL", "false")
	assert.False(t, util.GetEnvAsBool("HDKEY_TEST_BOOL", true))

	t.Setenv("HDKEY_TEST_BOOL", "1")
	assert.True(t, util.GetEnvAsBool("HDKEY_TEST_BOOL", false))

	t.Setenv("HDKEY_TEST_BOOL_BAD", "maybe")
	assert.True(t, util.GetEnvAsBool("HDKEY_TEST_BOOL_BAD", true))
}
