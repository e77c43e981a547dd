package cli

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, exit, err := Parse([]string{"-texts", "fr.yaml", "-log-level", "DEBUG", "meals.yaml"}, out)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, &Config{
		MealsFile: "meals.yaml",
		TextsFile: "fr.yaml",
		LogLevel:  "debug",
		LogFormat: "text",
	}, cfg)
	assert.Empty(t, out.String())
}

func TestParse_Defaults(t *testing.T) {
	cfg, _, err := Parse([]string{"meals.toml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, &Config{MealsFile: "meals.toml", LogLevel: "warn", LogFormat: "text"}, cfg)
}

func TestParse_Check(t *testing.T) {
	cfg, _, err := Parse([]string{"-check", "meals.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, cfg.Check)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), Usage)
	assert.Contains(t, out.String(), "-log-format")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no argument", nil, Usage},
		{"two arguments", []string{"a.yaml", "b.yaml"}, Usage},
		{"unknown flag", []string{"-nope", "a.yaml"}, "flag provided but not defined: -nope"},
		{"bad log format", []string{"-log-format", "xml", "a.yaml"}, "invalid log-format: must be 'text' or 'json'"},
		{"bad log level", []string{"-log-level", "loud", "a.yaml"}, "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, exit, err := Parse(tt.args, &bytes.Buffer{})
			assert.False(t, exit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 1, exitErr.Code)
			assert.Equal(t, tt.msg, exitErr.Message)
		})
	}
}

func TestNewLogger(t *testing.T) {
	out := &bytes.Buffer{}

	logger := NewLogger(&Config{LogLevel: "info", LogFormat: "json"}, out)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))

	logger.Info("hello", "meals", 2)
	assert.Contains(t, out.String(), `"msg":"hello"`)
	assert.Contains(t, out.String(), `"meals":2`)

	out.Reset()
	logger = NewLogger(&Config{LogLevel: "warn", LogFormat: "text"}, out)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "msg=shown")
}
