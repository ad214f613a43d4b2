package game

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pipopa/reversi-server/internal/apperror"
	"github.com/pipopa/reversi-server/pkg/reversi"
)

// Directory owns every room, keyed by name.
type Directory struct {
	rooms  map[string]*Room
	logger *zap.Logger
}

// NewDirectory creates an empty room directory.
func NewDirectory(logger *zap.Logger) *Directory {
	return &Directory{
		rooms:  make(map[string]*Room),
		logger: logger,
	}
}

// MakeRoom creates a room with the owner seated as player1. The owner may
// pick a color up front; the joiner gets the opposite one.
func (d *Directory) MakeRoom(name, ownerID, ownerName string, color *reversi.Color) error {
	if _, ok := d.rooms[name]; ok {
		d.logger.Warn("room already exists", zap.String("room", name))
		return fmt.Errorf("%w: %s", apperror.ErrRoomAlreadyExists, name)
	}

	room := newRoom()
	room.Sessions[ownerID] = struct{}{}
	room.Player1 = &Player{ID: ownerID, Name: ownerName, Color: color}
	d.rooms[name] = room

	d.logger.Info("room created",
		zap.String("room", name),
		zap.String("owner", ownerName))

	return nil
}

// Join seats the joiner as player2, assigns both colors and starts the
// game. A session belongs to one room at a time, so the joiner is evicted
// from every other room first. Returns the session ids seated as Black
// and White so the caller can notify each player of their color.
func (d *Directory) Join(name, joinerID, joinerName string) (blackID, whiteID string, err error) {
	room, ok := d.rooms[name]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", apperror.ErrRoomNotFound, name)
	}
	if room.Player2 != nil {
		return "", "", fmt.Errorf("%w: %s", apperror.ErrRoomFull, name)
	}

	d.evict(joinerID, name)

	room.Sessions[joinerID] = struct{}{}
	room.Player2 = &Player{ID: joinerID, Name: joinerName}

	if room.Player1.Color != nil {
		opp := room.Player1.Color.Opp()
		room.Player2.Color = &opp
	} else {
		black, white := reversi.Black, reversi.White
		room.Player1.Color = &black
		room.Player2.Color = &white
	}

	blackID, whiteID = room.Player1.ID, room.Player2.ID
	if *room.Player1.Color != reversi.Black {
		blackID, whiteID = whiteID, blackID
	}

	room.Game.Start()
	d.logger.Info("player joined",
		zap.String("room", name),
		zap.String("player", joinerName))

	return blackID, whiteID, nil
}

// Leave removes the session from every room and clears any player slot it
// held. Rooms left without a session are deleted. Idempotent: unknown ids
// are a no-op.
func (d *Directory) Leave(sessionID string) {
	d.evict(sessionID, "")
}

// evict is Leave with one room exempted, used while joining so the target
// room is untouched. Room names are never empty, so an empty except
// matches nothing.
func (d *Directory) evict(sessionID, except string) {
	for name, room := range d.rooms {
		if name == except {
			continue
		}
		delete(room.Sessions, sessionID)
		if room.Player1 != nil && room.Player1.ID == sessionID {
			room.Player1 = nil
		}
		if room.Player2 != nil && room.Player2.ID == sessionID {
			room.Player2 = nil
		}
		if len(room.Sessions) == 0 {
			delete(d.rooms, name)
			d.logger.Info("room removed", zap.String("room", name))
		}
	}
}

// Room returns the named room, if present.
func (d *Directory) Room(name string) (*Room, bool) {
	room, ok := d.rooms[name]
	return room, ok
}

// Rooms returns a name-sorted snapshot of every room for discovery.
func (d *Directory) Rooms() []Summary {
	names := make([]string, 0, len(d.rooms))
	for name := range d.rooms {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]Summary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, d.rooms[name].summary(name))
	}

	return summaries
}
