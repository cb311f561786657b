//go:build !integration

package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		logPretty string
		wantLevel zerolog.Level
	}{
		{
			name:      "defaults to info when nothing is set",
			logLevel:  "",
			logPretty: "",
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "honors LOG_LEVEL debug",
			logLevel:  "debug",
			logPretty: "",
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "pretty output keeps the configured level",
			logLevel:  "warn",
			logPretty: "true",
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "LOG_PRETTY false stays on JSON output",
			logLevel:  "error",
			logPretty: "false",
			wantLevel: zerolog.ErrorLevel,
		},
		{
			name:      "unknown level falls back to info",
			logLevel:  "shouting",
			logPretty: "",
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv restores the previous value when the test ends.
			if tt.logLevel != "" {
				t.Setenv("LOG_LEVEL", tt.logLevel)
			}
			if tt.logPretty != "" {
				t.Setenv("LOG_PRETTY", tt.logPretty)
			}

			InitializeLogger()

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestInitializeLogger_Idempotent(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	InitializeLogger()
	first := zerolog.GlobalLevel()
	InitializeLogger()

	assert.Equal(t, first, zerolog.GlobalLevel())
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
