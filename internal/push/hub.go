// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package push is the server side of the session push channel.
//
// A single [Hub] goroutine owns the registry of open websocket connections,
// indexed by user id and by token id. Every connection has one writer
// goroutine fed through a buffered channel and one reader goroutine that
// only watches for the peer going away. Invalidation events close the
// connection after delivery.
package push

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/metrics"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16

	maxMessageSize = 512
)

// ErrHubClosed is returned when a connection is offered to a stopped hub.
var ErrHubClosed = errors.New("push hub is closed")

type userEvent struct {
	userID int64
	event  models.PushEvent
}

// Hub implements service.SessionNotifier and workers.Worker.
type Hub struct {
	register   chan *conn
	unregister chan *conn
	notify     chan userEvent
	disconnect chan string
	count      chan chan int

	// owned by the Run goroutine
	byUser  map[int64]map[*conn]struct{}
	byToken map[string]map[*conn]struct{}

	upgrader websocket.Upgrader
	done     chan struct{}
	logger   *logger.Logger
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		register:   make(chan *conn),
		unregister: make(chan *conn),
		notify:     make(chan userEvent),
		disconnect: make(chan string),
		count:      make(chan chan int),
		byUser:     make(map[int64]map[*conn]struct{}),
		byToken:    make(map[string]map[*conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the terminal client sends no Origin; browsers are not served
			CheckOrigin: func(*http.Request) bool { return true },
		},
		done:   make(chan struct{}),
		logger: logger,
	}
}

func (h *Hub) Name() string {
	return "push-hub"
}

// Run owns the connection registry until ctx is done, then closes every
// connection.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.all() {
				h.drop(c)
			}
			return nil

		case c := <-h.register:
			h.add(c)
			c.enqueue(models.NewPushEvent(models.EventConnected, c.userID, ""))

		case c := <-h.unregister:
			h.drop(c)

		case ue := <-h.notify:
			for c := range h.byUser[ue.userID] {
				h.deliver(c, ue.event)
			}

		case jti := <-h.disconnect:
			for c := range h.byToken[jti] {
				h.deliver(c, models.NewPushEvent(models.EventForcedLogout, c.userID, ""))
			}

		case reply := <-h.count:
			n := 0
			for _, conns := range h.byUser {
				n += len(conns)
			}
			reply <- n
		}
	}
}

// NotifyUser sends event to every connection of userID. Invalidation
// events close the connections after delivery.
func (h *Hub) NotifyUser(ctx context.Context, userID int64, event models.PushEvent) {
	select {
	case h.notify <- userEvent{userID: userID, event: event}:
	case <-ctx.Done():
	case <-h.done:
	}
}

// DisconnectToken closes the connections authenticated with token jti.
func (h *Hub) DisconnectToken(ctx context.Context, jti string) {
	select {
	case h.disconnect <- jti:
	case <-ctx.Done():
	case <-h.done:
	}
}

// Connections returns the number of open connections.
func (h *Hub) Connections(ctx context.Context) int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
	case <-ctx.Done():
		return 0
	case <-h.done:
		return 0
	}
	return <-reply
}

func (h *Hub) add(c *conn) {
	if h.byUser[c.userID] == nil {
		h.byUser[c.userID] = make(map[*conn]struct{})
	}
	h.byUser[c.userID][c] = struct{}{}

	if h.byToken[c.jti] == nil {
		h.byToken[c.jti] = make(map[*conn]struct{})
	}
	h.byToken[c.jti][c] = struct{}{}

	metrics.PushConnections.Inc()
}

// deliver queues event on c and drops c when the event ends the session or
// the peer cannot keep up.
func (h *Hub) deliver(c *conn, event models.PushEvent) {
	if !c.enqueue(event) {
		h.logger.Warn().Int64("user_id", c.userID).Msg("push send buffer full, dropping connection")
		h.drop(c)
		return
	}
	if event.IsInvalidation() {
		h.drop(c)
	}
}

// drop removes c from the registry and closes its send channel; the writer
// then sends a close frame. Dropping twice is a no-op.
func (h *Hub) drop(c *conn) {
	if _, ok := h.byUser[c.userID][c]; !ok {
		return
	}

	delete(h.byUser[c.userID], c)
	if len(h.byUser[c.userID]) == 0 {
		delete(h.byUser, c.userID)
	}
	delete(h.byToken[c.jti], c)
	if len(h.byToken[c.jti]) == 0 {
		delete(h.byToken, c.jti)
	}

	close(c.send)
	metrics.PushConnections.Dec()
}

func (h *Hub) all() map[*conn]struct{} {
	all := make(map[*conn]struct{})
	for _, conns := range h.byUser {
		for c := range conns {
			all[c] = struct{}{}
		}
	}
	return all
}
