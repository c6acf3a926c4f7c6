package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate is out of the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrRoundAlreadyOver  = errors.New("round is already over")
	ErrEmptyPlayerName   = errors.New("player name is empty")
	ErrSessionNotFound   = errors.New("session not found")
)
