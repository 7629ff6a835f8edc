package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hekmon/fishtts"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "FISHTTS_"

type TTSConfig struct {
	URL                 string   `yaml:"url"`
	APIKey              string   `yaml:"api_key"`
	Voice               string   `yaml:"voice"`
	Latency             string   `yaml:"latency"`
	Format              string   `yaml:"format"`
	SampleRate          int      `yaml:"sample_rate"`
	Speed               float64  `yaml:"speed"`
	Volume              float64  `yaml:"volume"`
	Debug               bool     `yaml:"debug"`
	ReadTimeout         int      `yaml:"read_timeout_ms"`
	HandshakeTimeout    int      `yaml:"handshake_timeout_ms"`
	ChunkSize           int      `yaml:"chunk_size"`
	ChunksPerSecond     float64  `yaml:"chunks_per_second"`
	UnauthorizedMarkers []string `yaml:"unauthorized_markers"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

type Config struct {
	TTS     TTSConfig     `yaml:"tts"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

func Default() Config {
	return Config{
		TTS: TTSConfig{
			URL:                 fishtts.DefaultURL,
			Latency:             fishtts.DefaultLatency,
			Format:              fishtts.DefaultFormat,
			Speed:               1.0,
			Volume:              0,
			ReadTimeout:         int(fishtts.DefaultReadTimeout / time.Millisecond),
			HandshakeTimeout:    int(fishtts.DefaultHandshakeTimeout / time.Millisecond),
			UnauthorizedMarkers: append([]string(nil), fishtts.DefaultUnauthorizedMarkers...),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Namespace: "fishtts",
		},
	}
}

// Load reads the optional YAML file at path on top of the defaults, then
// applies the FISHTTS_* environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file not found: %w", err)
			}
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.TTS.URL, EnvPrefix+"URL")
	overrideString(&cfg.TTS.APIKey, EnvPrefix+"API_KEY")
	overrideString(&cfg.TTS.Voice, EnvPrefix+"VOICE")
	overrideString(&cfg.TTS.Latency, EnvPrefix+"LATENCY")
	overrideString(&cfg.TTS.Format, EnvPrefix+"FORMAT")
	overrideInt(&cfg.TTS.SampleRate, EnvPrefix+"SAMPLE_RATE")
	overrideFloat(&cfg.TTS.Speed, EnvPrefix+"SPEED")
	overrideFloat(&cfg.TTS.Volume, EnvPrefix+"VOLUME")
	overrideBool(&cfg.TTS.Debug, EnvPrefix+"DEBUG")
	overrideInt(&cfg.TTS.ReadTimeout, EnvPrefix+"READ_TIMEOUT_MS")
	overrideInt(&cfg.TTS.HandshakeTimeout, EnvPrefix+"HANDSHAKE_TIMEOUT_MS")
	overrideInt(&cfg.TTS.ChunkSize, EnvPrefix+"CHUNK_SIZE")
	overrideFloat(&cfg.TTS.ChunksPerSecond, EnvPrefix+"CHUNKS_PER_SECOND")
	overrideStringSlice(&cfg.TTS.UnauthorizedMarkers, EnvPrefix+"UNAUTHORIZED_MARKERS")
	overrideString(&cfg.Log.Level, EnvPrefix+"LOG_LEVEL")
	overrideString(&cfg.Log.Format, EnvPrefix+"LOG_FORMAT")
	overrideString(&cfg.Metrics.Namespace, EnvPrefix+"METRICS_NAMESPACE")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func overrideBool(target *bool, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			*target = parsed
		}
	}
}

func overrideFloat(target *float64, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			*target = parsed
		}
	}
}

func overrideStringSlice(target *[]string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		var trimmed []string
		for _, p := range strings.Split(value, ",") {
			if s := strings.TrimSpace(p); s != "" {
				trimmed = append(trimmed, s)
			}
		}
		if len(trimmed) > 0 {
			*target = trimmed
		}
	}
}

func validate(cfg Config) error {
	if cfg.TTS.URL == "" {
		return errors.New("tts.url must not be empty")
	}
	if !strings.HasPrefix(cfg.TTS.URL, "ws://") && !strings.HasPrefix(cfg.TTS.URL, "wss://") {
		return errors.New("tts.url must use the ws or wss scheme")
	}
	if cfg.TTS.Speed <= 0 {
		return errors.New("tts.speed must be positive")
	}
	if cfg.TTS.SampleRate < 0 {
		return errors.New("tts.sample_rate must be >= 0")
	}
	if cfg.TTS.ReadTimeout <= 0 {
		return errors.New("tts.read_timeout_ms must be positive")
	}
	if cfg.TTS.HandshakeTimeout <= 0 {
		return errors.New("tts.handshake_timeout_ms must be positive")
	}
	if cfg.TTS.ChunkSize < 0 {
		return errors.New("tts.chunk_size must be >= 0")
	}
	if cfg.TTS.ChunksPerSecond < 0 {
		return errors.New("tts.chunks_per_second must be >= 0")
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return errors.New("log.format must be one of console|json")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of debug|info|warn|error")
	}
	if cfg.Metrics.Namespace == "" {
		return errors.New("metrics.namespace must not be empty")
	}
	// voice is checked by the client itself so that validation reports it
	return nil
}

// ClientConfig converts the tts section into the library configuration.
func (cfg Config) ClientConfig() *fishtts.Config {
	return &fishtts.Config{
		URL:        cfg.TTS.URL,
		APIKey:     cfg.TTS.APIKey,
		Voice:      cfg.TTS.Voice,
		Latency:    cfg.TTS.Latency,
		Format:     cfg.TTS.Format,
		SampleRate: cfg.TTS.SampleRate,
		Prosody: &fishtts.Prosody{
			Speed:  cfg.TTS.Speed,
			Volume: cfg.TTS.Volume,
		},
		Debug:               cfg.TTS.Debug,
		ReadTimeout:         time.Duration(cfg.TTS.ReadTimeout) * time.Millisecond,
		HandshakeTimeout:    time.Duration(cfg.TTS.HandshakeTimeout) * time.Millisecond,
		ChunkSize:           cfg.TTS.ChunkSize,
		ChunksPerSecond:     cfg.TTS.ChunksPerSecond,
		UnauthorizedMarkers: cfg.TTS.UnauthorizedMarkers,
	}
}
