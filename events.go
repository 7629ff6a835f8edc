//go:generate msgp

package fishtts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tinylib/msgp/msgp"
)

// Message types for the Fish.audio live TTS WebSocket protocol.
// Every event travels as a single MessagePack map keyed by "event".

type EventType string

const (
	// Sent by the client
	EventTypeStart EventType = "start"
	EventTypeText  EventType = "text"
	EventTypeFlush EventType = "flush"
	// Received from the server
	EventTypeAudio  EventType = "audio"
	EventTypeLog    EventType = "log"
	EventTypeStop   EventType = "stop"
	EventTypeFinish EventType = "finish"
)

const (
	FinishReasonStop  = "stop"
	FinishReasonError = "error"
)

type Event interface {
	msgp.Marshaler
	msgp.Unmarshaler
	EventType() EventType
}

type EventHeader struct {
	Type EventType `msg:"event"`
}

func (eh EventHeader) EventType() EventType {
	return eh.Type
}

type StartEvent struct {
	Type    EventType    `msg:"event"`
	Request StartRequest `msg:"request"`
	Debug   bool         `msg:"debug,omitempty"`
}

func (se StartEvent) EventType() EventType {
	return se.Type
}

// StartRequest is the synthesis request carried by the start event. Text is
// always empty: the actual text follows in text events.
type StartRequest struct {
	Text        string  `msg:"text"`
	Latency     string  `msg:"latency"`
	Format      string  `msg:"format"`
	Prosody     Prosody `msg:"prosody"`
	ReferenceID string  `msg:"reference_id"`
	SampleRate  int     `msg:"sample_rate,omitempty"`
}

//msgp:ignore Prosody

// Prosody has a lenient hand written codec, see events_codec.go.
type Prosody struct {
	Speed  float64 `msg:"speed"`
	Volume float64 `msg:"volume"`
}

type TextEvent struct {
	Type EventType `msg:"event"`
	Text string    `msg:"text"`
}

func (te TextEvent) EventType() EventType {
	return te.Type
}

type AudioEvent struct {
	Type  EventType `msg:"event"`
	Audio []byte    `msg:"audio"`
}

func (ae AudioEvent) EventType() EventType {
	return ae.Type
}

type LogEvent struct {
	Type    EventType `msg:"event"`
	Message string    `msg:"message"`
}

func (le LogEvent) EventType() EventType {
	return le.Type
}

type FinishEvent struct {
	Type    EventType `msg:"event"`
	Reason  string    `msg:"reason"`
	Message string    `msg:"message,omitempty"`
}

func (fe FinishEvent) EventType() EventType {
	return fe.Type
}

func (fe FinishEvent) Failed() bool {
	return fe.Reason == FinishReasonError
}

// DecodeEvent reads the event header of a raw frame and unmarshals the full
// payload into the matching variant. Unknown event types are returned as a
// bare EventHeader.
func DecodeEvent(payload []byte) (event Event, err error) {
	var header EventHeader
	if _, err = header.UnmarshalMsg(payload); err != nil {
		err = fmt.Errorf("failed to unmarshal the event header: %w", err)
		return
	}
	switch header.Type {
	case EventTypeAudio:
		event = new(AudioEvent)
	case EventTypeLog:
		event = new(LogEvent)
	case EventTypeFinish:
		event = new(FinishEvent)
	case EventTypeText:
		event = new(TextEvent)
	case EventTypeStart:
		event = new(StartEvent)
	default:
		// stop, flush and unknown types do not carry extra fields
		return &header, nil
	}
	if _, err = event.UnmarshalMsg(payload); err != nil {
		err = fmt.Errorf("failed to unmarshal the %q event: %w", header.Type, err)
		event = nil
		return
	}
	return
}

// QuickDebug renders a raw MessagePack frame as indented JSON for logging.
func QuickDebug(msgpackData []byte) string {
	r := msgp.NewReader(bytes.NewReader(msgpackData))
	v, _ := r.ReadIntf()
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(sanitizeForJSON(v))
	return strings.TrimSuffix(out.String(), "\n")
}

// binary payloads (audio) are summarized instead of being base64 dumped
func sanitizeForJSON(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = sanitizeForJSON(value)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, value := range typed {
			out[i] = sanitizeForJSON(value)
		}
		return out
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(typed))
	default:
		return v
	}
}
