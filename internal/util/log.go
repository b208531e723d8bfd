package util

import (
	"github.com/rs/zerolog"
)

// LogLevelFromString returns the zerolog level for s, falling back to info
// on anything unparsable
func LogLevelFromString(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
