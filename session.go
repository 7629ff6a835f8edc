package fishtts

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// session owns a single websocket connection for one synthesis or one
// validation handshake.
type session struct {
	client    *Client
	id        string
	logger    *zap.Logger
	conn      wsConn
	closeOnce sync.Once
	started   atomic.Bool // start event sent
	finished  atomic.Bool // terminal event received
	// synthesis only
	flushed    chan struct{} // closed once the flush event is sent
	stopWriter context.CancelFunc
}

func (client *Client) openSession(ctx context.Context, operation string) (s *session, err error) {
	s = &session{
		client: client,
		id:     uuid.NewString(),
	}
	s.logger = client.logger.With(
		zap.String("session_id", s.id),
		zap.String("operation", operation),
	)
	// Prepare the websocket client
	dialCtx, cancel := context.WithTimeout(ctx, client.handshakeTimeout)
	defer cancel()
	if s.conn, err = client.dial(dialCtx, client.url.String(), client.header.Clone()); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = contextError(ctxErr, "websocket handshake")
		} else {
			err = newSessionError(ErrConnection, err, "failed to connect to %s", client.url.Redacted())
		}
		s.logger.Warn("connection failed", zap.Error(err))
		s = nil
		return
	}
	s.logger.Debug("connected")
	return
}

// close releases the connection exactly once. The close code reflects how the
// session ended.
func (s *session) close(err error) {
	s.closeOnce.Do(func() {
		var closeErr error
		switch {
		case err == nil:
			closeErr = s.conn.Close(websocket.StatusNormalClosure, "")
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrTimeout):
			// do not wait on an unresponsive peer for the closing handshake
			closeErr = s.conn.CloseNow()
		default:
			closeErr = s.conn.Close(websocket.StatusInternalError, "")
		}
		if closeErr != nil {
			// the server often closes first once it has sent the terminal event
			s.logger.Debug("connection close reported an error", zap.Error(closeErr))
		}
	})
}

func (s *session) synthesize(ctx context.Context, text string) (audio []byte, err error) {
	if err = s.sendStart(ctx); err != nil {
		return
	}
	// Text goes out while audio may already be coming back
	var chunks [][]byte
	s.flushed = make(chan struct{})
	workers, workersCtx := errgroup.WithContext(ctx)
	writerCtx, stopWriter := context.WithCancel(workersCtx)
	defer stopWriter()
	s.stopWriter = stopWriter
	workers.Go(func() (werr error) {
		if werr = s.writer(writerCtx, text); werr != nil && s.finished.Load() {
			// server already ended the session, nothing left to send
			s.logger.Debug("writer stopped after the terminal event", zap.Error(werr))
			werr = nil
		}
		return
	})
	workers.Go(func() (rerr error) {
		chunks, rerr = s.reader(workersCtx)
		return
	})
	if err = workers.Wait(); err != nil {
		return
	}
	audio = bytes.Join(chunks, nil)
	return
}

func (s *session) validate(ctx context.Context) (err error) {
	if err = s.sendStart(ctx); err != nil {
		return
	}
	// The first answer is enough to know if the handshake was accepted
	event, err := s.readEvent(ctx)
	if err != nil {
		return
	}
	s.logger.Debug("validation response received", zap.String("event", string(event.EventType())))
	switch typed := event.(type) {
	case *LogEvent:
		err = s.handleLog(typed)
	case *FinishEvent:
		if typed.Failed() {
			err = s.serverFailure(typed)
		}
	}
	return
}

func (s *session) writer(ctx context.Context, text string) (err error) {
	var limiter *rate.Limiter
	if s.client.chunksPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.client.chunksPerSecond), 1)
	}
	for _, chunk := range splitText(text, s.client.chunkSize) {
		if limiter != nil {
			if err = limiter.Wait(ctx); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					err = contextError(ctxErr, "text pacing")
				} else {
					err = newSessionError(ErrTimeout, err, "text pacing would exceed the deadline")
				}
				return
			}
		}
		if err = s.send(ctx, &TextEvent{
			Type: EventTypeText,
			Text: chunk,
		}); err != nil {
			return
		}
	}
	// No more text: ask the server to emit everything it has buffered
	if err = s.send(ctx, &EventHeader{Type: EventTypeFlush}); err != nil {
		return
	}
	close(s.flushed)
	return
}

func (s *session) sendStart(ctx context.Context) (err error) {
	if !s.started.CompareAndSwap(false, true) {
		return newSessionError(ErrInvalidInput, nil, "session already started")
	}
	start := s.client.start
	return s.send(ctx, &start)
}

func (s *session) send(ctx context.Context, event Event) (err error) {
	if event.EventType() != EventTypeStart && !s.started.Load() {
		return newSessionError(ErrInvalidInput, nil, "%s event sent before the start event", event.EventType())
	}
	var payload []byte
	if payload, err = event.MarshalMsg(nil); err != nil {
		return newSessionError(ErrInvalidInput, err, "failed to marshal the %s event", event.EventType())
	}
	if err = s.conn.Write(ctx, websocket.MessageBinary, payload); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return contextError(ctxErr, "event write")
		}
		return newSessionError(ErrConnection, err, "failed to write the %s event into the websocket connection", event.EventType())
	}
	s.logger.Debug("event sent",
		zap.String("event", string(event.EventType())),
		zap.Int("size", len(payload)),
	)
	return
}

// reader collects audio until a terminal event.
func (s *session) reader(ctx context.Context) (chunks [][]byte, err error) {
	var event Event
	for {
		if event, err = s.readEvent(ctx); err != nil {
			return nil, err
		}
		switch typed := event.(type) {
		case *AudioEvent:
			chunks = append(chunks, typed.Audio)
			s.client.metrics.addAudio(len(typed.Audio))
			if s.client.onAudio != nil {
				s.client.onAudio(len(typed.Audio))
			}
		case *LogEvent:
			if err = s.handleLog(typed); err != nil {
				return nil, err
			}
		case *FinishEvent:
			if typed.Failed() {
				return nil, s.serverFailure(typed)
			}
			s.terminate(event)
			return chunks, nil
		default:
			if event.EventType() == EventTypeStop {
				s.terminate(event)
				return chunks, nil
			}
			s.logger.Debug("ignoring unexpected event", zap.String("event", string(event.EventType())))
		}
	}
}

func (s *session) terminate(event Event) {
	if s.finished.CompareAndSwap(false, true) {
		s.logger.Debug("terminal event received", zap.String("event", string(event.EventType())))
	}
	// remaining text is useless now
	if s.stopWriter != nil {
		s.stopWriter()
	}
}

func (s *session) readEvent(ctx context.Context) (event Event, err error) {
	readCtx, cancel := s.readContext(ctx)
	defer cancel()
	// Read a message on the websocket connection
	msgType, payload, err := s.conn.Read(readCtx)
	if err != nil {
		switch {
		case ctx.Err() != nil:
			err = contextError(ctx.Err(), "event read")
		case readCtx.Err() != nil:
			err = newSessionError(ErrTimeout, context.Cause(readCtx), "no event received within %s", s.client.readTimeout)
		case websocket.CloseStatus(err) != -1:
			err = newSessionError(ErrConnection, err, "connection closed before the end of the session")
		default:
			err = newSessionError(ErrConnection, err, "failed to read from the websocket connection")
		}
		return
	}
	switch msgType {
	case websocket.MessageBinary, websocket.MessageText:
		// both carry a message pack payload
	default:
		err = newSessionError(ErrServer, nil, "unexpected websocket message type: %d", msgType)
		return
	}
	if event, err = DecodeEvent(payload); err != nil {
		s.logger.Debug("undecodable frame", zap.String("frame", QuickDebug(payload)))
		err = newSessionError(ErrServer, err, "malformed event")
		return
	}
	if ce := s.logger.Check(zap.DebugLevel, "event received"); ce != nil && event.EventType() != EventTypeAudio {
		ce.Write(zap.String("event", string(event.EventType())), zap.String("frame", QuickDebug(payload)))
	}
	return
}

// readContext bounds a single read by the read timeout. While text is still
// being sent, the server may legitimately wait for the flush: the bound then
// starts when the flush goes out.
func (s *session) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.flushed == nil {
		return context.WithTimeout(ctx, s.client.readTimeout)
	}
	select {
	case <-s.flushed:
		return context.WithTimeout(ctx, s.client.readTimeout)
	default:
	}
	readCtx, cancel := context.WithCancelCause(ctx)
	go func() {
		select {
		case <-s.flushed:
		case <-readCtx.Done():
			return
		}
		timer := time.NewTimer(s.client.readTimeout)
		defer timer.Stop()
		select {
		case <-timer.C:
			cancel(context.DeadlineExceeded)
		case <-readCtx.Done():
		}
	}()
	return readCtx, func() { cancel(nil) }
}

func (s *session) handleLog(event *LogEvent) error {
	s.client.metrics.addServerLog()
	if s.client.isUnauthorized(event.Message) {
		return newSessionError(ErrAuthentication, nil, "%s", event.Message)
	}
	s.logger.Info("server log", zap.String("message", event.Message))
	return nil
}

func (s *session) serverFailure(event *FinishEvent) error {
	if event.Message == "" {
		return newSessionError(ErrServer, nil, "session finished with an error")
	}
	return newSessionError(ErrServer, nil, "%s", event.Message)
}
