package eventsink

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultSocketIOEvent is the socket.io event name fired events are emitted under.
const DefaultSocketIOEvent = "graphflow:event"

// SocketIO emits every fired event to a socket.io server.
type SocketIO struct {
	event      string
	emit       func(event string, payload map[string]any)
	disconnect func()
}

func newSocketIO(event string, emit func(string, map[string]any), disconnect func()) *SocketIO {
	if event == "" {
		event = DefaultSocketIOEvent
	}
	return &SocketIO{event: event, emit: emit, disconnect: disconnect}
}

// DialSocketIO connects to rawURL over websocket and waits for the
// connection to be acknowledged. The URL path selects the socket.io path and
// namespace is the socket.io namespace ("/" when empty).
func DialSocketIO(ctx context.Context, rawURL, namespace, event string) (*SocketIO, error) {
	logger := ctxlog.FromContext(ctx).With("sink", "socketio", "url", rawURL)
	logger.Debug("Connecting event sink...")

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if namespace == "" {
		namespace = "/"
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)
	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("📡 Event sink connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(15 * time.Second):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after 15s waiting for socket.io connection")
	}

	return newSocketIO(event,
		func(ev string, payload map[string]any) { io.Emit(ev, payload) },
		func() { io.Disconnect() },
	), nil
}

// Publish emits e as a JSON-like object.
func (s *SocketIO) Publish(ctx context.Context, e Event) {
	s.emit(s.event, map[string]any{
		"run_id":   e.RunID,
		"instance": e.Instance,
		"template": e.Template,
		"event":    e.Event,
		"targets":  e.Targets,
		"at":       e.At.Format(time.RFC3339Nano),
	})
}

// Close disconnects from the server.
func (s *SocketIO) Close() error {
	s.disconnect()
	return nil
}
