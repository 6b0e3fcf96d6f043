package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnv, "")
	assert.False(t, DebugEnabled())

	t.Setenv(DebugEnv, "1")
	assert.True(t, DebugEnabled())
}

func TestNew_JSON(t *testing.T) {
	t.Setenv(DebugEnv, "")
	var buf bytes.Buffer

	logger, err := New("info", &buf, false)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("component", "test").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	t.Setenv(DebugEnv, "")
	var buf bytes.Buffer

	logger, err := New("warn", &buf, true)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("careful")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "careful")
	assert.Contains(t, buf.String(), "WRN")
}

func TestNew_DebugOverride(t *testing.T) {
	t.Setenv(DebugEnv, "1")

	logger, err := New("error", &bytes.Buffer{}, false)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	logger, err = New("trace", &bytes.Buffer{}, false)
	require.NoError(t, err)
	assert.Equal(t, zerolog.TraceLevel, logger.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", &bytes.Buffer{}, false)
	assert.Error(t, err)
}
