package messages

import "github.com/pipopa/reversi-server/pkg/reversi"

// Kind enumerates the outbound envelope kinds.
type Kind string

// Envelope kinds
const (
	KindGame      Kind = "Game"
	KindGameStart Kind = "GameStart"
	KindGameOver  Kind = "GameOver"
	KindTurn      Kind = "Turn"
	KindMove      Kind = "Move"
	KindError     Kind = "Error"
)

// Outbound is the envelope wrapped around every server-initiated message.
// The body is keyed by the variant name, e.g.
//
//	{"kind":"GameStart","body":{"GameStart":"Black"}}
type Outbound struct {
	Kind Kind         `json:"kind"`
	Body map[Kind]any `json:"body,omitempty"`
}

// GameState is the client-facing snapshot of a game: the 64 cell labels
// in row-major order plus the color to move.
type GameState struct {
	Board []string      `json:"board"`
	Turn  reversi.Color `json:"turn"`
}

// Snapshot captures the current board and turn of a game.
func Snapshot(g *reversi.Game) GameState {
	return GameState{Board: g.Board.Labels(), Turn: g.Turn}
}

// NewGameStart tells one player which color they were assigned.
func NewGameStart(c reversi.Color) Outbound {
	return Outbound{Kind: KindGameStart, Body: map[Kind]any{KindGameStart: c}}
}

// NewGame carries the authoritative state broadcast after a move.
func NewGame(g *reversi.Game) Outbound {
	return Outbound{Kind: KindGame, Body: map[Kind]any{KindGame: Snapshot(g)}}
}

// NewGameOver carries the final snapshot and the winner, null on a tie.
func NewGameOver(g *reversi.Game) Outbound {
	return Outbound{Kind: KindGameOver, Body: map[Kind]any{KindGameOver: [2]any{Snapshot(g), g.Winner()}}}
}

// NewTurn announces the color to move.
func NewTurn(c reversi.Color) Outbound {
	return Outbound{Kind: KindTurn, Body: map[Kind]any{KindTurn: c}}
}

// NewMove echoes a single move.
func NewMove(m reversi.Move) Outbound {
	return Outbound{Kind: KindMove, Body: map[Kind]any{KindMove: m}}
}

// NewError reports a per-command failure to the offending session.
func NewError(err error) Outbound {
	return Outbound{Kind: KindError, Body: map[Kind]any{KindError: err.Error()}}
}
