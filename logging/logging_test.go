package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"Error":   slog.LevelError,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseLevel("verbose")
	assert.Error(t, err)
}

func TestConfigureWriter(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer
	require.NoError(t, ConfigureWriter(LevelWarn, &buf))
	slog.Info("hidden")
	slog.Warn("shown", "nodes", 12)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown nodes=12")
	assert.Error(t, ConfigureWriter("loud", &buf))
}
