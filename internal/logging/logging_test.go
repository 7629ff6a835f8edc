package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level    string
		format   string
		expected zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel},
		{"info", "json", zapcore.InfoLevel},
		{"warn", "json", zapcore.WarnLevel},
		{"error", "console", zapcore.ErrorLevel},
		{"", "json", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.expected))
			if tt.expected > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.expected-1))
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var out bytes.Buffer
	logger := NewWithWriter("info", "json", &out)
	logger.Debug("hidden")
	logger.Info("audio received", zap.Int("bytes", 42))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "audio received", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 42, entry["bytes"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewWithWriterConsole(t *testing.T) {
	var out bytes.Buffer
	logger := NewWithWriter("debug", "console", &out)
	logger.Debug("connected")
	require.NoError(t, logger.Sync())
	assert.Contains(t, out.String(), "connected")
}
