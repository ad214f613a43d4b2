package server

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pipopa/reversi-server/internal/apperror"
	"github.com/pipopa/reversi-server/pkg/game"
	"github.com/pipopa/reversi-server/pkg/messages"
	"github.com/pipopa/reversi-server/pkg/reversi"
)

// inbound couples a parsed command with the session that sent it.
type inbound struct {
	conn *Connection
	cmd  messages.Command
}

// Hub is the single serialized command processor. The one goroutine
// running Run owns the registry and the room directory; every mutation
// flows through the hub's channels, so neither needs a lock.
type Hub struct {
	registry  *Registry
	directory *game.Directory

	register   chan *Connection
	unregister chan *Connection
	inbound    chan inbound
	done       chan struct{}

	logger *zap.Logger
}

// NewHub creates a hub owning the given registry and directory.
func NewHub(registry *Registry, directory *game.Directory, logger *zap.Logger) *Hub {
	return &Hub{
		registry:   registry,
		directory:  directory,
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		inbound:    make(chan inbound),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processes lifecycle events and commands one at a time until
// Shutdown. Each handler runs to completion before the next command is
// dequeued, which makes every room and game transition atomic.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.registry.Bind(conn.ID, conn)

		case conn := <-h.unregister:
			h.disconnect(conn)

		case msg := <-h.inbound:
			h.handleCommand(msg.conn, msg.cmd)

		case <-h.done:
			return
		}
	}
}

// Register queues a new connection for binding.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister queues a disconnect. Broadcasts still in flight to the
// session are dropped by the registry's best-effort delivery.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// Submit queues one parsed command from a connection.
func (h *Hub) Submit(conn *Connection, cmd messages.Command) {
	h.inbound <- inbound{conn: conn, cmd: cmd}
}

// Shutdown stops the processing loop.
func (h *Hub) Shutdown() {
	close(h.done)
}

func (h *Hub) disconnect(conn *Connection) {
	if !h.registry.Unbind(conn.ID) {
		return
	}
	h.directory.Leave(conn.ID)
	if conn.send != nil {
		close(conn.send)
	}
}

func (h *Hub) handleCommand(conn *Connection, cmd messages.Command) {
	switch c := cmd.(type) {
	case messages.MakeRoom:
		if err := h.directory.MakeRoom(c.Room, conn.ID, c.Name, c.Color); err != nil {
			h.registry.Send(conn.ID, messages.NewError(err))
		}

	case messages.Join:
		h.handleJoin(conn, c)

	case messages.Move:
		h.handleMove(conn, c)

	case messages.ListRooms:
		if c.Reply != nil {
			c.Reply <- h.directory.Rooms()
		}

	default:
		h.logger.Warn("unhandled command", zap.String("session_id", conn.ID))
	}
}

func (h *Hub) handleJoin(conn *Connection, c messages.Join) {
	blackID, whiteID, err := h.directory.Join(c.Room, conn.ID, c.Name)
	if err != nil {
		h.registry.Send(conn.ID, messages.NewError(err))
		return
	}

	h.registry.Send(blackID, messages.NewGameStart(reversi.Black))
	h.registry.Send(whiteID, messages.NewGameStart(reversi.White))
}

func (h *Hub) handleMove(conn *Connection, c messages.Move) {
	room, ok := h.directory.Room(c.Room)
	if !ok {
		h.registry.Send(conn.ID, messages.NewError(fmt.Errorf("%w: %s", apperror.ErrRoomNotFound, c.Room)))
		return
	}

	if err := room.Game.Place(c.Move); err != nil {
		h.logger.Debug("move rejected",
			zap.String("room", c.Room),
			zap.String("session_id", conn.ID),
			zap.Error(err))
		h.registry.Send(conn.ID, messages.NewError(err))
		return
	}

	if !room.Game.Over {
		room.Game.ChangeTurn()
	}

	if room.Game.Over {
		h.broadcast(c.Room, messages.NewGameOver(room.Game), "")
		return
	}
	h.broadcast(c.Room, messages.NewGame(room.Game), "")
}

// broadcast sends the message to every session in the room, optionally
// skipping one id.
func (h *Hub) broadcast(roomName string, msg messages.Outbound, skipID string) {
	room, ok := h.directory.Room(roomName)
	if !ok {
		return
	}
	for id := range room.Sessions {
		if id == skipID {
			continue
		}
		h.registry.Send(id, msg)
	}
}
