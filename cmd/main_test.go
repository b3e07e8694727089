package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	testCases := []struct {
		name     string
		env      string
		level    string
		expected log.Level
	}{
		{"development default", "development", "", log.DebugLevel},
		{"production default", "production", "", log.ErrorLevel},
		{"other environments", "staging", "", log.InfoLevel},
		{"explicit level wins", "production", "debug", log.DebugLevel},
		{"invalid level keeps the default", "production", "loud", log.ErrorLevel},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			t.Setenv("LOG_LEVEL", tt.level)
			assert.Equal(t, tt.expected, logLevel())
		})
	}
}
