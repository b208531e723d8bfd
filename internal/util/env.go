package util

import (
	"os"
	"strconv"
)

// GetEnv returns the ENV variable at key or defaultVal if unset
func GetEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// GetEnvAsInt returns the ENV variable at key parsed as int or defaultVal if
// unset or unparsable
func GetEnvAsInt(key string, defaultVal int) int {
	strVal := GetEnv(key, "")

	if val, err := strconv.Atoi(strVal); err == nil {
		return val
	}
	return defaultVal
}

// GetEnvAsBool returns the ENV variable at key parsed as bool or defaultVal
// if unset or unparsable
func GetEnvAsBool(key string, defaultVal bool) bool {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseBool(strVal); err == nil {
		return val
	}
	return defaultVal
}
