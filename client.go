package fishtts

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"
)

const (
	DefaultURL              = "wss://api.fish.audio/v1/tts/live"
	DefaultLatency          = "normal"
	DefaultFormat           = "opus"
	DefaultReadTimeout      = 10 * time.Second
	DefaultHandshakeTimeout = 10 * time.Second
	// audio frames can be much larger than the websocket library default read limit
	maxFrameSize = 16 << 20
)

var (
	SupportedLatencies = []string{"normal", "balanced"}
	SupportedFormats   = []string{"opus", "mp3", "wav", "pcm"}
	// DefaultUnauthorizedMarkers are matched case-insensitively against the
	// message of server log events.
	DefaultUnauthorizedMarkers = []string{"unauthorized"}
)

type Config struct {
	URL    string
	APIKey string // optional, no Authorization header when empty
	Voice  string // reference_id of the voice model
	// Synthesis request
	Latency    string
	Format     string
	Prosody    *Prosody // nil means speed 1.0 and volume 0
	SampleRate int      // 0 lets the server pick
	Debug      bool
	// Session behavior
	ReadTimeout         time.Duration // bound on the wait for each server event
	HandshakeTimeout    time.Duration
	ChunkSize           int     // max runes per text event, 0 sends the text at once
	ChunksPerSecond     float64 // text events pacing, 0 disables it
	UnauthorizedMarkers []string
	// Observability
	Logger  *zap.Logger
	Metrics *Metrics
	OnAudio func(size int) // called for every audio chunk received
}

func NewClient(config *Config) (client *Client, err error) {
	if config == nil {
		err = newSessionError(ErrInvalidInput, nil, "missing configuration")
		return
	}
	if strings.TrimSpace(config.Voice) == "" {
		err = newSessionError(ErrInvalidInput, nil, "voice is required")
		return
	}
	// Create the client
	client = &Client{
		start: StartEvent{
			Type: EventTypeStart,
			Request: StartRequest{
				Text:        "",
				Latency:     config.Latency,
				Format:      config.Format,
				Prosody:     Prosody{Speed: 1.0, Volume: 0},
				ReferenceID: config.Voice,
				SampleRate:  config.SampleRate,
			},
			Debug: config.Debug,
		},
		header:              make(http.Header),
		readTimeout:         config.ReadTimeout,
		handshakeTimeout:    config.HandshakeTimeout,
		chunkSize:           config.ChunkSize,
		chunksPerSecond:     config.ChunksPerSecond,
		unauthorizedMarkers: config.UnauthorizedMarkers,
		logger:              config.Logger,
		metrics:             config.Metrics,
		onAudio:             config.OnAudio,
		dial:                dialWebsocket,
	}
	// Prepare the URL
	if client.url, err = url.Parse(config.URL); err != nil {
		client = nil
		err = newSessionError(ErrInvalidInput, err, "failed to parse the URL")
		return
	}
	if client.url.Scheme != "ws" && client.url.Scheme != "wss" {
		client = nil
		err = newSessionError(ErrInvalidInput, nil, "URL scheme must be ws or wss, got %q", config.URL)
		return
	}
	// Credentials are only sent when configured
	if config.APIKey != "" {
		client.header.Set("Authorization", "Bearer "+config.APIKey)
	}
	// Apply defaults and validate the request
	if client.start.Request.Latency == "" {
		client.start.Request.Latency = DefaultLatency
	}
	if !slices.Contains(SupportedLatencies, client.start.Request.Latency) {
		client = nil
		err = newSessionError(ErrInvalidInput, nil, "unsupported latency %q", config.Latency)
		return
	}
	if client.start.Request.Format == "" {
		client.start.Request.Format = DefaultFormat
	}
	if !slices.Contains(SupportedFormats, client.start.Request.Format) {
		client = nil
		err = newSessionError(ErrInvalidInput, nil, "unsupported audio format %q", config.Format)
		return
	}
	if config.Prosody != nil {
		client.start.Request.Prosody = *config.Prosody
	}
	if client.start.Request.Prosody.Speed <= 0 || config.SampleRate < 0 || config.ChunkSize < 0 || config.ChunksPerSecond < 0 {
		client = nil
		err = newSessionError(ErrInvalidInput, nil, "speed, sample rate, chunk size and chunks per second must not be negative")
		return
	}
	if client.readTimeout <= 0 {
		client.readTimeout = DefaultReadTimeout
	}
	if client.handshakeTimeout <= 0 {
		client.handshakeTimeout = DefaultHandshakeTimeout
	}
	if len(client.unauthorizedMarkers) == 0 {
		client.unauthorizedMarkers = DefaultUnauthorizedMarkers
	}
	if client.logger == nil {
		client.logger = zap.NewNop()
	}
	client.logger = client.logger.With(
		zap.String("component", "fishtts"),
		zap.String("host", client.url.Host),
		zap.String("voice", config.Voice),
	)
	// Preparations done
	return
}

// Client runs sessions against one endpoint with one set of parameters. It
// holds no connection itself: every call opens and closes its own, so a
// Client can be shared by concurrent callers.
type Client struct {
	url                 *url.URL
	header              http.Header
	start               StartEvent
	readTimeout         time.Duration
	handshakeTimeout    time.Duration
	chunkSize           int
	chunksPerSecond     float64
	unauthorizedMarkers []string
	logger              *zap.Logger
	metrics             *Metrics
	onAudio             func(int)
	dial                dialFunc
}

// Synthesize converts text to audio over a dedicated session and returns the
// audio bytes in the configured format. Synthesis is all or nothing: partial
// audio is dropped on failure.
func (client *Client) Synthesize(ctx context.Context, text string) (audio []byte, err error) {
	started := time.Now()
	defer func() {
		client.metrics.observeSession(operationSynthesize, started, err)
	}()
	if text == "" {
		err = newSessionError(ErrInvalidInput, nil, "text is empty")
		return
	}
	s, err := client.openSession(ctx, operationSynthesize)
	if err != nil {
		return
	}
	defer func() {
		s.close(err)
	}()
	if audio, err = s.synthesize(ctx, text); err != nil {
		audio = nil
		s.logger.Warn("synthesis failed", zap.Error(err))
		return
	}
	s.logger.Info("synthesis completed",
		zap.Int("text_length", len(text)),
		zap.Int("audio_bytes", len(audio)),
		zap.Duration("duration", time.Since(started)),
	)
	return
}

// Validate performs the session handshake without requesting any audio and
// reports whether the server accepted it.
func (client *Client) Validate(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		client.metrics.observeSession(operationValidate, started, err)
	}()
	s, err := client.openSession(ctx, operationValidate)
	if err != nil {
		return
	}
	defer func() {
		s.close(err)
	}()
	if err = s.validate(ctx); err != nil {
		s.logger.Warn("validation failed", zap.Error(err))
		return
	}
	s.logger.Info("validation succeeded", zap.Duration("duration", time.Since(started)))
	return
}

func (client *Client) isUnauthorized(message string) bool {
	message = strings.ToLower(message)
	for _, marker := range client.unauthorizedMarkers {
		if marker != "" && strings.Contains(message, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// Synthesize is a one shot helper building a client from config.
func Synthesize(ctx context.Context, config *Config, text string) (audio []byte, err error) {
	client, err := NewClient(config)
	if err != nil {
		observeInvalidConfig(config, operationSynthesize, err)
		return
	}
	return client.Synthesize(ctx, text)
}

// Validate is a one shot helper building a client from config. An empty voice
// fails before any connection is attempted.
func Validate(ctx context.Context, config *Config) (err error) {
	client, err := NewClient(config)
	if err != nil {
		observeInvalidConfig(config, operationValidate, err)
		return
	}
	return client.Validate(ctx)
}

func observeInvalidConfig(config *Config, operation string, err error) {
	if config != nil {
		config.Metrics.observeSession(operation, time.Now(), err)
	}
}

// ValidationResult is the outcome of a validation ready to be shown in a
// setup form.
type ValidationResult struct {
	Valid  bool
	Kind   string // see ErrorKindLabel
	Reason string // one display string per kind
	Detail string
}

func ValidationResultFor(err error) (result ValidationResult) {
	result.Kind = ErrorKindLabel(err)
	if err == nil {
		result.Valid = true
		return
	}
	result.Detail = err.Error()
	switch result.Kind {
	case "invalid_input":
		result.Reason = "Invalid configuration, check the URL and the voice"
	case "authentication":
		result.Reason = "Authentication failed, check the API key"
	case "server":
		result.Reason = "The server rejected the session"
	case "timeout":
		result.Reason = "The server did not answer in time"
	case "connection":
		result.Reason = "Cannot connect to the server"
	default:
		result.Reason = "Unknown error"
	}
	return
}

type wsConn interface {
	Read(ctx context.Context) (websocket.MessageType, []byte, error)
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Close(code websocket.StatusCode, reason string) error
	CloseNow() error
}

type dialFunc func(ctx context.Context, endpoint string, header http.Header) (wsConn, error)

func dialWebsocket(ctx context.Context, endpoint string, header http.Header) (wsConn, error) {
	conn, _, err := websocket.Dial(ctx, endpoint, &websocket.DialOptions{
		HTTPHeader: header,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dial websocket: %w", err)
	}
	conn.SetReadLimit(maxFrameSize)
	return conn, nil
}
