package fishtts

import (
	"context"
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by a session wraps exactly one of them.
var (
	ErrConnection     = errors.New("connection error")
	ErrAuthentication = errors.New("authentication error")
	ErrServer         = errors.New("server error")
	ErrTimeout        = errors.New("timeout")
	ErrInvalidInput   = errors.New("invalid input")
)

type SessionError struct {
	Kind    error
	Message string
	Cause   error
}

func (se *SessionError) Error() string {
	switch {
	case se.Message != "" && se.Cause != nil:
		return fmt.Sprintf("%s: %s: %s", se.Kind, se.Message, se.Cause)
	case se.Message != "":
		return fmt.Sprintf("%s: %s", se.Kind, se.Message)
	case se.Cause != nil:
		return fmt.Sprintf("%s: %s", se.Kind, se.Cause)
	default:
		return se.Kind.Error()
	}
}

func (se *SessionError) Unwrap() []error {
	if se.Cause == nil {
		return []error{se.Kind}
	}
	return []error{se.Kind, se.Cause}
}

func newSessionError(kind error, cause error, format string, args ...any) *SessionError {
	return &SessionError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// contextError maps a context failure: an expired deadline is a timeout, a
// cancellation is reported as a connection error still matching context.Canceled.
func contextError(err error, step string) *SessionError {
	if errors.Is(err, context.DeadlineExceeded) {
		return newSessionError(ErrTimeout, err, "%s did not complete in time", step)
	}
	return newSessionError(ErrConnection, err, "%s interrupted", step)
}

// ErrorKindLabel returns a short stable name for the kind of err, suitable
// as a metric label.
func ErrorKindLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrAuthentication):
		return "authentication"
	case errors.Is(err, ErrServer):
		return "server"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrConnection):
		return "connection"
	default:
		return "unknown"
	}
}
