package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Random playouts exercise the two board invariants: the cell tallies
// always sum to 64, and every cell marked available captures at least one
// piece when played.
func TestGame_RandomPlayoutInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New()
		g.Start()

		for !g.Over {
			avail := availableCells(g)
			require.NotEmpty(t, avail, "a live game always has a legal move")

			cell := avail[rapid.IntRange(0, len(avail)-1).Draw(t, "cell")]
			mover := g.Turn
			before := g.Board.Count()

			require.NoError(t, g.Place(Move{X: cell[0], Y: cell[1], Color: mover}))

			after := g.Board.Count()
			moverGain := after.Black - before.Black
			opponentLoss := before.White - after.White
			if mover == White {
				moverGain = after.White - before.White
				opponentLoss = before.Black - after.Black
			}

			require.Equal(t, 64, after.Black+after.White+after.Available+after.Empty)
			require.Equal(t, before.Black+before.White+1, after.Black+after.White,
				"exactly one piece enters the board per move")
			require.GreaterOrEqual(t, moverGain, 2,
				"an available cell flips at least one piece")
			require.Equal(t, moverGain-1, opponentLoss)

			if !g.Over {
				g.ChangeTurn()
			}

			n := g.Board.Count()
			require.Equal(t, 64, n.Black+n.White+n.Available+n.Empty)
		}

		// winner agrees with the final tally
		n := g.Board.Count()
		winner := g.Winner()
		switch {
		case n.Black > n.White:
			require.NotNil(t, winner)
			require.Equal(t, Black, *winner)
		case n.White > n.Black:
			require.NotNil(t, winner)
			require.Equal(t, White, *winner)
		default:
			require.Nil(t, winner)
		}
	})
}
