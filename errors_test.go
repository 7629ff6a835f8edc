package fishtts

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionErrorMatching(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("wrapped: %w", newSessionError(ErrConnection, cause, "failed to connect"))

	assert.ErrorIs(t, err, ErrConnection)
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, ErrTimeout))
	var se *SessionError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "connection error: failed to connect: dial tcp: connection refused", se.Error())
}

func TestContextError(t *testing.T) {
	err := contextError(context.DeadlineExceeded, "event read")
	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	err = contextError(context.Canceled, "event read")
	assert.ErrorIs(t, err, ErrConnection)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidationResultFor(t *testing.T) {
	tests := []struct {
		err    error
		kind   string
		reason string
	}{
		{nil, "ok", ""},
		{newSessionError(ErrInvalidInput, nil, "voice is required"), "invalid_input", "Invalid configuration, check the URL and the voice"},
		{newSessionError(ErrAuthentication, nil, "Unauthorized"), "authentication", "Authentication failed, check the API key"},
		{newSessionError(ErrServer, nil, "boom"), "server", "The server rejected the session"},
		{newSessionError(ErrTimeout, nil, "late"), "timeout", "The server did not answer in time"},
		{newSessionError(ErrConnection, nil, "refused"), "connection", "Cannot connect to the server"},
		{errors.New("other"), "unknown", "Unknown error"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			result := ValidationResultFor(tt.err)
			assert.Equal(t, tt.err == nil, result.Valid)
			assert.Equal(t, tt.kind, result.Kind)
			assert.Equal(t, tt.reason, result.Reason)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), result.Detail)
			}
		})
	}
}
