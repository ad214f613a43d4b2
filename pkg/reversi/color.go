// Package reversi implements the Reversi (Othello) rules engine: board
// representation, legal-move computation, capture logic and game-over
// detection. It performs no I/O and expects a single owner.
package reversi

import (
	"fmt"
	"strings"
)

// Color represents a piece color. The values double as the wire labels.
type Color string

// Possible piece colors
const (
	Black Color = "Black"
	White Color = "White"
)

// Opp returns the opposite color for the given color.
func (c Color) Opp() Color {
	if c == Black {
		return White
	}

	return Black
}

// ParseColor parses a case-insensitive color name.
func ParseColor(s string) (Color, error) {
	switch strings.ToUpper(s) {
	case "BLACK":
		return Black, nil
	case "WHITE":
		return White, nil
	default:
		return "", fmt.Errorf("invalid color %q", s)
	}
}
