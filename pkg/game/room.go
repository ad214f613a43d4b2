// Package game owns the rooms that pair two players with one reversi
// engine instance. The directory and every room in it belong to the hub
// loop; all access is serialized there, so nothing here locks.
package game

import "github.com/pipopa/reversi-server/pkg/reversi"

// Player is one seat in a room. Color stays nil until the room fills up.
type Player struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Color *reversi.Color `json:"color,omitempty"`
}

// Room pairs up to two players with one game. Sessions holds every
// connection currently subscribed to the room's broadcasts.
type Room struct {
	Sessions map[string]struct{}
	Game     *reversi.Game
	Player1  *Player
	Player2  *Player
}

func newRoom() *Room {
	return &Room{
		Sessions: make(map[string]struct{}),
		Game:     reversi.New(),
	}
}

// Summary is the public view of a room returned by discovery.
type Summary struct {
	Name    string  `json:"name"`
	Player1 *Player `json:"player1"`
	Player2 *Player `json:"player2"`
}

func (r *Room) summary(name string) Summary {
	s := Summary{Name: name}
	if r.Player1 != nil {
		p := *r.Player1
		s.Player1 = &p
	}
	if r.Player2 != nil {
		p := *r.Player2
		s.Player2 = &p
	}
	return s
}
