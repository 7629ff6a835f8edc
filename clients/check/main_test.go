package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/hekmon/fishtts"
	"github.com/stretchr/testify/assert"
)

// answeringServer accepts one session and answers its start event with a log.
func answeringServer(t *testing.T, message string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if _, _, err = conn.Read(ctx); err != nil {
			return
		}
		payload, err := (&fishtts.LogEvent{Type: fishtts.EventTypeLog, Message: message}).MarshalMsg(nil)
		if err != nil {
			return
		}
		if err = conn.Write(ctx, websocket.MessageBinary, payload); err != nil {
			return
		}
		for {
			if _, _, err = conn.Read(ctx); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		expected int
	}{
		{
			name:     "valid parameters",
			args:     func(t *testing.T) []string { return []string{"-server", answeringServer(t, "ready"), "-voice", "voice-1"} },
			expected: 0,
		},
		{
			name:     "rejected key",
			args:     func(t *testing.T) []string { return []string{"-server", answeringServer(t, "Unauthorized"), "-voice", "voice-1"} },
			expected: 2,
		},
		{
			name:     "missing voice",
			args:     func(t *testing.T) []string { return []string{"-server", "ws://127.0.0.1:1/v1/tts/live"} },
			expected: 2,
		},
		{
			name:     "missing config file",
			args:     func(t *testing.T) []string { return []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")} },
			expected: 1,
		},
		{
			name:     "unknown flag",
			args:     func(t *testing.T) []string { return []string{"-nope"} },
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FISHTTS_LOG_LEVEL", "error")
			t.Setenv("FISHTTS_VOICE", "")
			assert.Equal(t, tt.expected, run(tt.args(t)))
		})
	}
}
