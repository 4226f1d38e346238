package apperror

import "errors"

var (
	ErrConfiguration   = errors.New("invalid board configuration")
	ErrInvalidMove     = errors.New("invalid move")
	ErrIndexOutOfRange = errors.New("tile index out of range")
	ErrInvalidChip     = errors.New("invalid chip")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrInputClosed     = errors.New("input closed")
	ErrGameNotSetUp    = errors.New("game is not set up")
	ErrGameFinished    = errors.New("game is already finished")
)
