package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hekmon/fishtts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fishtts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, fishtts.DefaultURL, cfg.TTS.URL)
	assert.Equal(t, 1.0, cfg.TTS.Speed)
	assert.Equal(t, 10000, cfg.TTS.ReadTimeout)
	assert.Equal(t, []string{"unauthorized"}, cfg.TTS.UnauthorizedMarkers)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
tts:
  api_key: file-key
  voice: voice-from-file
  format: pcm
  sample_rate: 16000
  chunk_size: 120
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.TTS.APIKey)
	assert.Equal(t, "voice-from-file", cfg.TTS.Voice)
	assert.Equal(t, "pcm", cfg.TTS.Format)
	assert.Equal(t, 16000, cfg.TTS.SampleRate)
	assert.Equal(t, 120, cfg.TTS.ChunkSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// untouched keys keep their defaults
	assert.Equal(t, fishtts.DefaultURL, cfg.TTS.URL)
	assert.Equal(t, fishtts.DefaultLatency, cfg.TTS.Latency)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "tts:\n  voice: voice-from-file\n")
	t.Setenv("FISHTTS_VOICE", "voice-from-env")
	t.Setenv("FISHTTS_URL", "ws://localhost:8080/v1/tts/live")
	t.Setenv("FISHTTS_SPEED", "1.25")
	t.Setenv("FISHTTS_DEBUG", "true")
	t.Setenv("FISHTTS_READ_TIMEOUT_MS", "2500")
	t.Setenv("FISHTTS_UNAUTHORIZED_MARKERS", " unauthorized , invalid api key ,")
	t.Setenv("FISHTTS_CHUNK_SIZE", "not-a-number")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "voice-from-env", cfg.TTS.Voice)
	assert.Equal(t, "ws://localhost:8080/v1/tts/live", cfg.TTS.URL)
	assert.Equal(t, 1.25, cfg.TTS.Speed)
	assert.True(t, cfg.TTS.Debug)
	assert.Equal(t, 2500, cfg.TTS.ReadTimeout)
	assert.Equal(t, []string{"unauthorized", "invalid api key"}, cfg.TTS.UnauthorizedMarkers)
	assert.Equal(t, 0, cfg.TTS.ChunkSize)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"http scheme", "tts:\n  url: https://api.fish.audio/v1/tts/live\n"},
		{"zero speed", "tts:\n  speed: 0\n"},
		{"negative sample rate", "tts:\n  sample_rate: -1\n"},
		{"negative chunk size", "tts:\n  chunk_size: -5\n"},
		{"zero read timeout", "tts:\n  read_timeout_ms: 0\n"},
		{"bad log format", "log:\n  format: xml\n"},
		{"bad log level", "log:\n  level: verbose\n"},
		{"empty namespace", "metrics:\n  namespace: \"\"\n"},
		{"invalid yaml", "tts: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClientConfig(t *testing.T) {
	cfg := Default()
	cfg.TTS.APIKey = "key"
	cfg.TTS.Voice = "voice-1"
	cfg.TTS.Volume = -3
	cfg.TTS.ReadTimeout = 1500

	clientConfig := cfg.ClientConfig()
	assert.Equal(t, "key", clientConfig.APIKey)
	assert.Equal(t, "voice-1", clientConfig.Voice)
	assert.Equal(t, &fishtts.Prosody{Speed: 1.0, Volume: -3}, clientConfig.Prosody)
	assert.Equal(t, 1500*time.Millisecond, clientConfig.ReadTimeout)
	assert.Equal(t, 10*time.Second, clientConfig.HandshakeTimeout)

	_, err := fishtts.NewClient(clientConfig)
	assert.NoError(t, err)
}
