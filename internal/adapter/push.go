package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/gorilla/websocket"
)

const (
	pushPath        = "/ws"
	pushEventBuffer = 8
	closeWait       = time.Second
)

type websocketPushChannel struct {
	url    string
	dialer *websocket.Dialer
	logger *logger.Logger
}

// NewWebsocketPushChannel builds a [PushChannel] for the /ws route of
// cfg.ServerURL; http and https map to ws and wss.
func NewWebsocketPushChannel(cfg config.ClientAdapter, logger *logger.Logger) (PushChannel, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path += pushPath

	return &websocketPushChannel{
		url: u.String(),
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}, nil
}

// Connect implements [PushChannel]. The token is sent as a bearer header.
func (p *websocketPushChannel) Connect(ctx context.Context, token string) (PushStream, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	ws, resp, err := p.dialer.DialContext(ctx, p.url, header)
	if err != nil {
		if resp != nil && errors.Is(err, websocket.ErrBadHandshake) {
			body, _ := io.ReadAll(resp.Body)
			return nil, newStatusError(resp.StatusCode, body)
		}
		return nil, fmt.Errorf("%w: push handshake: %w", ErrUnreachable, err)
	}

	stream := &wsStream{
		ws:     ws,
		events: make(chan models.PushEvent, pushEventBuffer),
		done:   make(chan struct{}),
		logger: p.logger,
	}
	go stream.readLoop()

	return stream, nil
}

type wsStream struct {
	ws     *websocket.Conn
	events chan models.PushEvent
	done   chan struct{}

	closeOnce sync.Once
	closeErr  error

	logger *logger.Logger
}

func (s *wsStream) Events() <-chan models.PushEvent {
	return s.events
}

// readLoop is the only reader of s.ws. Pings from the server are answered by
// the default ping handler while reading.
func (s *wsStream) readLoop() {
	defer close(s.events)

	for {
		var event models.PushEvent
		if err := s.ws.ReadJSON(&event); err != nil {
			// policy violation: the server closed the socket at token expiry
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.ClosePolicyViolation) {
				s.logger.Debug().Err(err).Msg("push channel read ended")
			}
			return
		}

		select {
		case s.events <- event:
		case <-s.done:
			return
		}
	}
}

func (s *wsStream) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeWait))
		s.closeErr = s.ws.Close()
	})
	return s.closeErr
}
