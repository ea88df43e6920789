package push

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-job-board/models"
	"github.com/gorilla/websocket"
)

// CloseTokenExpired is the close code sent when the connection's token
// expires.
const CloseTokenExpired = websocket.ClosePolicyViolation

type conn struct {
	ws   *websocket.Conn
	send chan models.PushEvent

	userID    int64
	jti       string
	expiresAt time.Time
}

// enqueue never blocks; false means the buffer is full.
func (c *conn) enqueue(event models.PushEvent) bool {
	select {
	case c.send <- event:
		return true
	default:
		return false
	}
}

// ServeWS upgrades an authorized request and attaches the connection to
// the hub. principal must come from a successful authorization.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, principal models.Principal) error {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		return err
	}

	c := &conn{
		ws:        ws,
		send:      make(chan models.PushEvent, sendBuffer),
		userID:    principal.User.UserID,
		jti:       principal.Token.ID,
		expiresAt: principal.Token.ExpiresAt,
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = ws.Close()
		return ErrHubClosed
	}

	go h.writePump(c)
	go h.readPump(c)
	return nil
}

// writePump is the only writer of c.ws. It pings the peer and closes the
// socket once the hub closes c.send. At token expiry the socket is closed
// with [CloseTokenExpired]: expiry is not an invalidation, the client is
// expected to refresh and reconnect.
func (h *Hub) writePump(c *conn) {
	ping := time.NewTicker(pingPeriod)
	expiry := time.NewTimer(time.Until(c.expiresAt))
	defer func() {
		ping.Stop()
		expiry.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteJSON(event); err != nil {
				h.logger.Debug().Err(err).Int64("user_id", c.userID).Msg("push write failed")
				h.leave(c)
				return
			}

		case <-expiry.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(CloseTokenExpired, "token is expired"))
			h.leave(c)
			return

		case <-ping.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.leave(c)
				return
			}
		}
	}
}

// readPump discards client messages and unregisters c when the peer goes
// away.
func (h *Hub) readPump(c *conn) {
	defer h.leave(c)

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) leave(c *conn) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
