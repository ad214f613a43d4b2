// Package messages defines the client protocol: the inbound text commands
// and the outbound JSON envelope.
package messages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pipopa/reversi-server/internal/apperror"
	"github.com/pipopa/reversi-server/pkg/game"
	"github.com/pipopa/reversi-server/pkg/reversi"
)

// Command is a parsed inbound client command. The hub dispatches the
// concrete variants with a type switch.
type Command interface {
	isCommand()
}

// MakeRoom creates a room. Color is nil when the creator did not pick one.
type MakeRoom struct {
	Room  string
	Name  string
	Color *reversi.Color
}

// Join seats the sender in an existing room.
type Join struct {
	Room string
	Name string
}

// Move places a piece in the sender's current room. Room is filled in by
// the connection, not the parser; clients only send color and coordinates.
type Move struct {
	Room string
	Move reversi.Move
}

// ListRooms requests a snapshot of every room. Reply must be buffered so
// the hub never blocks answering it.
type ListRooms struct {
	Reply chan []game.Summary
}

func (MakeRoom) isCommand()  {}
func (Join) isCommand()      {}
func (Move) isCommand()      {}
func (ListRooms) isCommand() {}

// Parse turns one text line into a command. Only lines starting with '/'
// are commands; for anything else it returns (nil, nil) and the caller
// ignores the line.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return nil, nil
	}

	parts := strings.SplitN(line, " ", 4)
	switch parts[0] {
	case "/listRooms":
		return ListRooms{}, nil

	case "/makeRoom":
		if len(parts) < 3 || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("%w: room and player name are required", apperror.ErrMalformedCommand)
		}
		cmd := MakeRoom{Room: parts[1], Name: parts[2]}
		if len(parts) == 4 {
			color, err := reversi.ParseColor(parts[3])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", apperror.ErrMalformedCommand, err)
			}
			cmd.Color = &color
		}
		return cmd, nil

	case "/join":
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("%w: room and player name are required", apperror.ErrMalformedCommand)
		}
		return Join{Room: parts[1], Name: parts[2]}, nil

	case "/move":
		if len(parts) != 4 {
			return nil, fmt.Errorf("%w: color, x and y are required", apperror.ErrMalformedCommand)
		}
		color, err := reversi.ParseColor(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperror.ErrMalformedCommand, err)
		}
		x, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%w: x must be an integer", apperror.ErrMalformedCommand)
		}
		y, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: y must be an integer", apperror.ErrMalformedCommand)
		}
		if x < 0 || x >= reversi.BoardSize || y < 0 || y >= reversi.BoardSize {
			return nil, fmt.Errorf("%w: coordinates must be in [0, %d)", apperror.ErrMalformedCommand, reversi.BoardSize)
		}
		return Move{Move: reversi.Move{X: x, Y: y, Color: color}}, nil

	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, line)
	}
}
