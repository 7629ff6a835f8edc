package fishtts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"
)

func encodeMap(t *testing.T, m map[string]any) []byte {
	t.Helper()
	payload, err := msgp.AppendIntf(nil, m)
	require.NoError(t, err)
	return payload
}

func decodeMapPayload(t *testing.T, payload []byte) map[string]any {
	t.Helper()
	v, rest, err := msgp.ReadIntfBytes(payload)
	require.NoError(t, err)
	require.Empty(t, rest)
	m, ok := v.(map[string]any)
	require.True(t, ok, "payload is not a map: %T", v)
	return m
}

func TestStartEventWireShape(t *testing.T) {
	client, err := NewClient(&Config{URL: DefaultURL, Voice: "voice-42"})
	require.NoError(t, err)
	start := client.start
	payload, err := start.MarshalMsg(nil)
	require.NoError(t, err)

	m := decodeMapPayload(t, payload)
	assert.Equal(t, "start", m["event"])
	assert.NotContains(t, m, "debug")
	request, ok := m["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "", request["text"])
	assert.Equal(t, "normal", request["latency"])
	assert.Equal(t, "opus", request["format"])
	assert.Equal(t, "voice-42", request["reference_id"])
	assert.NotContains(t, request, "sample_rate")
	prosody, ok := request["prosody"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1.0, prosody["speed"])
	assert.Equal(t, 0.0, prosody["volume"])
}

func TestClientEventsWireShape(t *testing.T) {
	payload, err := (&TextEvent{Type: EventTypeText, Text: "hello"}).MarshalMsg(nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"event": "text", "text": "hello"}, decodeMapPayload(t, payload))

	payload, err = (&EventHeader{Type: EventTypeFlush}).MarshalMsg(nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"event": "flush"}, decodeMapPayload(t, payload))
}

func TestDecodeServerEvents(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		expected Event
	}{
		{
			name:     "audio",
			payload:  map[string]any{"event": "audio", "audio": []byte("ab"), "time": 1.5},
			expected: &AudioEvent{Type: EventTypeAudio, Audio: []byte("ab")},
		},
		{
			name:     "log",
			payload:  map[string]any{"event": "log", "message": "Unauthorized"},
			expected: &LogEvent{Type: EventTypeLog, Message: "Unauthorized"},
		},
		{
			name:     "finish with error",
			payload:  map[string]any{"event": "finish", "reason": "error", "message": "boom"},
			expected: &FinishEvent{Type: EventTypeFinish, Reason: "error", Message: "boom"},
		},
		{
			name:     "finish without message",
			payload:  map[string]any{"event": "finish", "reason": "stop"},
			expected: &FinishEvent{Type: EventTypeFinish, Reason: "stop"},
		},
		{
			name:     "stop",
			payload:  map[string]any{"event": "stop"},
			expected: &EventHeader{Type: EventTypeStop},
		},
		{
			name:     "unknown",
			payload:  map[string]any{"event": "metrics", "latency_ms": 12},
			expected: &EventHeader{Type: "metrics"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := DecodeEvent(encodeMap(t, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, event)
		})
	}
}

func TestDecodeIntegerProsody(t *testing.T) {
	payload := encodeMap(t, map[string]any{
		"event": "start",
		"request": map[string]any{
			"text":         "",
			"latency":      "normal",
			"format":       "opus",
			"prosody":      map[string]any{"speed": 1.0, "volume": 0},
			"reference_id": "voice",
		},
		"debug": true,
	})
	event, err := DecodeEvent(payload)
	require.NoError(t, err)
	start, ok := event.(*StartEvent)
	require.True(t, ok)
	assert.True(t, start.Debug)
	assert.Equal(t, Prosody{Speed: 1.0, Volume: 0}, start.Request.Prosody)
	assert.Equal(t, "voice", start.Request.ReferenceID)
}

func TestStartEventOptionalFields(t *testing.T) {
	start := StartEvent{
		Type: EventTypeStart,
		Request: StartRequest{
			Latency:     "balanced",
			Format:      "pcm",
			Prosody:     Prosody{Speed: 1.5, Volume: -2},
			ReferenceID: "voice",
			SampleRate:  16000,
		},
		Debug: true,
	}
	payload, err := start.MarshalMsg(nil)
	require.NoError(t, err)
	m := decodeMapPayload(t, payload)
	assert.Equal(t, true, m["debug"])
	request := m["request"].(map[string]any)
	assert.EqualValues(t, 16000, request["sample_rate"])

	event, err := DecodeEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, &start, event)
}

func TestProsodyStreamDecodesIntegers(t *testing.T) {
	var buf bytes.Buffer
	writer := msgp.NewWriter(&buf)
	require.NoError(t, writer.WriteMapHeader(3))
	require.NoError(t, writer.WriteString("speed"))
	require.NoError(t, writer.WriteInt(2))
	require.NoError(t, writer.WriteString("volume"))
	require.NoError(t, writer.WriteFloat32(-1.5))
	require.NoError(t, writer.WriteString("pitch"))
	require.NoError(t, writer.WriteString("high"))
	require.NoError(t, writer.Flush())

	var prosody Prosody
	require.NoError(t, prosody.DecodeMsg(msgp.NewReader(&buf)))
	assert.Equal(t, Prosody{Speed: 2, Volume: -1.5}, prosody)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := DecodeEvent([]byte{0xc1})
	assert.Error(t, err)

	_, err = DecodeEvent(encodeMap(t, map[string]any{"event": "audio", "audio": 42}))
	assert.Error(t, err)

	_, err = DecodeEvent(encodeMap(t, map[string]any{"event": 7}))
	assert.Error(t, err)
}

func TestQuickDebugSummarizesAudio(t *testing.T) {
	out := QuickDebug(encodeMap(t, map[string]any{"event": "audio", "audio": make([]byte, 2048)}))
	assert.Contains(t, out, `"event": "audio"`)
	assert.Contains(t, out, "<2048 bytes>")
	assert.NotContains(t, out, `\u003c`)
}
