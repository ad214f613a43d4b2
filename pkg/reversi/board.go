package reversi

// BoardSize is the width of the square board.
const BoardSize = 8

// Cell is one board square: empty, a legal target for the color to move,
// or occupied by a piece.
type Cell int8

// Cell states
const (
	CellEmpty Cell = iota
	CellAvailable
	CellBlack
	CellWhite
)

func cellFor(c Color) Cell {
	if c == Black {
		return CellBlack
	}

	return CellWhite
}

// IsPiece reports whether the cell holds a piece of either color.
func (c Cell) IsPiece() bool {
	return c == CellBlack || c == CellWhite
}

// Piece returns the color of the piece occupying the cell, if any.
func (c Cell) Piece() (Color, bool) {
	switch c {
	case CellBlack:
		return Black, true
	case CellWhite:
		return White, true
	default:
		return "", false
	}
}

// String returns the label cells are serialized with.
func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "black"
	case CellWhite:
		return "white"
	case CellAvailable:
		return "available"
	default:
		return "empty"
	}
}

// Board is the 8x8 grid, stored row-major.
type Board [BoardSize * BoardSize]Cell

// At returns the cell at (x, y). Coordinates must be in [0, 8).
func (b *Board) At(x, y int) Cell {
	return b[y*BoardSize+x]
}

func (b *Board) set(x, y int, c Cell) {
	b[y*BoardSize+x] = c
}

// Counts is the per-state cell tally of a board. The four fields always
// sum to 64.
type Counts struct {
	Black     int
	White     int
	Available int
	Empty     int
}

// Count tallies every cell on the board.
func (b *Board) Count() Counts {
	var n Counts
	for _, c := range b {
		switch c {
		case CellBlack:
			n.Black++
		case CellWhite:
			n.White++
		case CellAvailable:
			n.Available++
		default:
			n.Empty++
		}
	}

	return n
}

// Labels returns the 64 cell labels in row-major order, the form the
// board is serialized in.
func (b *Board) Labels() []string {
	labels := make([]string, len(b))
	for i, c := range b {
		labels[i] = c.String()
	}

	return labels
}

func inBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}
