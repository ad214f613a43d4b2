package reversi

import (
	"fmt"

	"github.com/pipopa/reversi-server/internal/apperror"
)

// directions are the eight unit steps scans walk along.
var directions = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Move is a single placement attempt by the given color.
type Move struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Color Color `json:"color"`
}

// Game holds the full state of one match.
type Game struct {
	Board   Board
	Turn    Color
	Started bool
	Over    bool

	// pass is set while the color to move has no legal cell; a second
	// consecutive pass ends the game.
	pass bool
}

// New returns a game in the standard opening position: four center
// pieces, Black to move, the four legal opening cells marked available.
func New() *Game {
	g := &Game{Turn: Black}
	g.Board.set(3, 3, CellWhite)
	g.Board.set(4, 4, CellWhite)
	g.Board.set(4, 3, CellBlack)
	g.Board.set(3, 4, CellBlack)
	g.updateAvailable()

	return g
}

// Start marks the game as started. Moves are rejected until then.
func (g *Game) Start() {
	g.Started = true
}

// Place applies a move: puts the piece down and flips every captured run.
// Available cells are not recomputed here; call ChangeTurn afterwards
// unless the game ended.
func (g *Game) Place(m Move) error {
	if !g.Started {
		return apperror.ErrGameNotStarted
	}
	if m.Color != g.Turn {
		return fmt.Errorf("%w: %s to move", apperror.ErrWrongTurn, g.Turn)
	}
	if !inBounds(m.X, m.Y) || g.Board.At(m.X, m.Y) != CellAvailable {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellNotAvailable, m.X, m.Y)
	}

	g.Board.set(m.X, m.Y, cellFor(m.Color))
	g.flipFrom(m.X, m.Y)

	return nil
}

// ChangeTurn hands the move to the other color and recomputes the
// available cells, which may auto-pass or end the game.
func (g *Game) ChangeTurn() {
	g.Turn = g.Turn.Opp()
	g.updateAvailable()
}

// Winner returns the color holding strictly more pieces, or nil on a tie.
// Defined only once the game is over.
func (g *Game) Winner() *Color {
	if !g.Over {
		return nil
	}

	n := g.Board.Count()
	switch {
	case n.Black > n.White:
		c := Black
		return &c
	case n.White > n.Black:
		c := White
		return &c
	default:
		return nil
	}
}

// updateAvailable re-marks every non-piece cell for the color to move.
// With no legal cell left the turn auto-passes; a second consecutive
// empty turn ends the game.
func (g *Game) updateAvailable() {
	available := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if g.Board.At(x, y).IsPiece() {
				continue
			}
			if g.canPlace(x, y, g.Turn) {
				g.Board.set(x, y, CellAvailable)
				available++
			} else {
				g.Board.set(x, y, CellEmpty)
			}
		}
	}

	if available == 0 {
		if g.pass {
			g.Over = true
			return
		}
		g.pass = true
		g.ChangeTurn()
		return
	}

	g.pass = false
}

// canPlace reports whether a piece of color c at (x, y) would capture at
// least one opposing run in some direction.
func (g *Game) canPlace(x, y int, c Color) bool {
	for _, d := range directions {
		nx, ny := x+d[0], y+d[1]
		run := 0
		for inBounds(nx, ny) {
			piece, ok := g.Board.At(nx, ny).Piece()
			if !ok {
				break
			}
			if piece == c {
				if run > 0 {
					return true
				}
				break
			}
			run++
			nx += d[0]
			ny += d[1]
		}
	}

	return false
}

// flipFrom flips every opposing run around (x, y) that terminates at a
// piece of the mover's color. Each direction is a bounded scan of at most
// eight steps; a run ending at an empty cell or the board edge stays as
// it is.
func (g *Game) flipFrom(x, y int) {
	for _, d := range directions {
		nx, ny := x+d[0], y+d[1]
		run := 0
		closed := false
		for inBounds(nx, ny) {
			piece, ok := g.Board.At(nx, ny).Piece()
			if !ok {
				break
			}
			if piece == g.Turn {
				closed = run > 0
				break
			}
			run++
			nx += d[0]
			ny += d[1]
		}
		if !closed {
			continue
		}
		for ; run > 0; run-- {
			nx -= d[0]
			ny -= d[1]
			g.Board.set(nx, ny, cellFor(g.Turn))
		}
	}
}
