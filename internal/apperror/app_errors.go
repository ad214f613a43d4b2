// Package apperror defines the sentinel errors shared across the server.
package apperror

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room is full")
	ErrRoomAlreadyExists = errors.New("room already exists")
	ErrGameNotStarted    = errors.New("game is not started")
	ErrWrongTurn         = errors.New("it's not your turn")
	ErrCellNotAvailable  = errors.New("cell is not available")
	ErrMalformedCommand  = errors.New("malformed command")
	ErrUnknownCommand    = errors.New("unknown command")
)
