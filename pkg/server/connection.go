package server

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pipopa/reversi-server/pkg/game"
	"github.com/pipopa/reversi-server/pkg/messages"
)

const (
	// heartbeatInterval is how often pings are sent.
	heartbeatInterval = 5 * time.Second
	// clientTimeout drops a connection without a pong for this long.
	clientTimeout = 10 * time.Second
)

// Connection is one client session: the WebSocket plus its outbound
// queue. ReadPump parses inbound text commands and funnels them into the
// hub; WritePump drains the send channel.
type Connection struct {
	ID string

	// room the session last created or joined; only the ReadPump
	// goroutine touches it.
	room string

	ws      *websocket.Conn
	hub     *Hub
	send    chan []byte
	writeMu sync.Mutex

	logger *zap.Logger
}

// NewConnection allocates the session id up front so no command of this
// session can race its own registration.
func NewConnection(ws *websocket.Conn, hub *Hub, logger *zap.Logger) *Connection {
	return &Connection{
		ID:     hub.registry.Connect(),
		ws:     ws,
		hub:    hub,
		send:   make(chan []byte, 256),
		logger: logger,
	}
}

// ReadPump handles inbound messages from the client until the socket
// closes, then queues the disconnect.
func (c *Connection) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.ws.Close()
	}()

	c.ws.SetReadDeadline(time.Now().Add(clientTimeout))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(clientTimeout))
	})

	for {
		msgType, msg, err := c.ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("read error", zap.Error(err))
			}
			break
		}

		// We only handle text
		if msgType == websocket.TextMessage {
			c.handleLine(string(msg))
		}
	}
}

// handleLine parses one text line and routes the resulting command.
// Parse failures are answered directly; they never reach the hub.
func (c *Connection) handleLine(line string) {
	cmd, err := messages.Parse(line)
	if err != nil {
		c.sendText(fmt.Sprintf("!!! %v", err))
		return
	}
	if cmd == nil {
		// plain text is a no-op
		return
	}

	switch cmd := cmd.(type) {
	case messages.MakeRoom:
		c.room = cmd.Room
		c.hub.Submit(c, cmd)

	case messages.Join:
		c.room = cmd.Room
		c.sendText("joined")
		c.hub.Submit(c, cmd)

	case messages.Move:
		cmd.Room = c.room
		c.hub.Submit(c, cmd)

	case messages.ListRooms:
		// request/response round trip through the hub loop
		cmd.Reply = make(chan []game.Summary, 1)
		c.hub.Submit(c, cmd)
		c.SendJSON(<-cmd.Reply)

	default:
		c.hub.Submit(c, cmd)
	}
}

// WritePump drains the send channel onto the socket and keeps the
// connection alive with periodic pings.
func (c *Connection) WritePump() {
	ticker := time.NewTicker(heartbeatInterval)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.writeMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.writeMessage(websocket.TextMessage, message); err != nil {
				c.logger.Debug("write error", zap.Error(err))
				return
			}

		case <-ticker.C:
			if err := c.writeMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Connection) writeMessage(msgType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteMessage(msgType, data)
}

// SendJSON marshals v and queues it without blocking; a full buffer drops
// the message, matching the registry's best-effort contract.
func (c *Connection) SendJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("marshal error", zap.Error(err))
		return
	}

	select {
	case c.send <- data:
	default:
		c.logger.Warn("send buffer full, dropping message", zap.String("session_id", c.ID))
	}
}

func (c *Connection) sendText(s string) {
	select {
	case c.send <- []byte(s):
	default:
		c.logger.Warn("send buffer full, dropping message", zap.String("session_id", c.ID))
	}
}
