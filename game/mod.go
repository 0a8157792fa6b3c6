package game

import "errors"

const (
	BOARD_SIZE = 5
	NUM_PIECES = 14 // Standard layout, 7 per color
)

var (
	// ErrInvalidArgument is wrapped by every precondition failure of the engine.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalMove is returned when a direction is not among the piece's valid moves.
	ErrIllegalMove = errors.New("illegal move")
)

// PositionListener is notified synchronously after a piece has moved.
type PositionListener func(piece int, from, to Position)
