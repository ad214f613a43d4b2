package messages

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipopa/reversi-server/pkg/reversi"
)

func TestNewGameStart_Encoding(t *testing.T) {
	data, err := json.Marshal(NewGameStart(reversi.Black))

	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"GameStart","body":{"GameStart":"Black"}}`, string(data))
}

func TestNewGame_Encoding(t *testing.T) {
	g := reversi.New()

	data, err := json.Marshal(NewGame(g))
	require.NoError(t, err)

	var decoded struct {
		Kind string `json:"kind"`
		Body struct {
			Game GameState `json:"Game"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Game", decoded.Kind)
	assert.Equal(t, reversi.Black, decoded.Body.Game.Turn)
	require.Len(t, decoded.Body.Game.Board, 64)
	assert.Equal(t, "white", decoded.Body.Game.Board[3*reversi.BoardSize+3])
	assert.Equal(t, "black", decoded.Body.Game.Board[3*reversi.BoardSize+4])
}

func TestNewGameOver_Encoding(t *testing.T) {
	// not over yet, winner serializes as null
	g := reversi.New()

	data, err := json.Marshal(NewGameOver(g))
	require.NoError(t, err)

	var decoded struct {
		Kind string            `json:"kind"`
		Body map[string][2]any `json:"body"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "GameOver", decoded.Kind)
	pair, ok := decoded.Body["GameOver"]
	require.True(t, ok)
	assert.Nil(t, pair[1])
}

func TestNewError_Encoding(t *testing.T) {
	data, err := json.Marshal(NewError(errors.New("room is full")))

	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Error","body":{"Error":"room is full"}}`, string(data))
}

func TestNewTurnAndMove_Encoding(t *testing.T) {
	data, err := json.Marshal(NewTurn(reversi.White))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Turn","body":{"Turn":"White"}}`, string(data))

	data, err = json.Marshal(NewMove(reversi.Move{X: 2, Y: 3, Color: reversi.Black}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Move","body":{"Move":{"x":2,"y":3,"color":"Black"}}}`, string(data))
}
