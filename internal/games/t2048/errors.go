package t2048

import "errors"

var (
	// ErrOccupiedCell means two tiles claimed the same coordinate. A correct
	// resolver never produces it.
	ErrOccupiedCell = errors.New("t2048: cell already occupied")

	// ErrOutOfBounds means a tile was placed outside the grid.
	ErrOutOfBounds = errors.New("t2048: cell out of bounds")

	// ErrBoardFull is returned when no empty cell is left for a spawn.
	ErrBoardFull = errors.New("t2048: board is full")

	// ErrInvalidDirection is returned for input outside the four moves.
	ErrInvalidDirection = errors.New("t2048: invalid direction")

	// ErrMoveInProgress is returned when a move is started while another
	// one is still animating.
	ErrMoveInProgress = errors.New("t2048: move in progress")

	// ErrStalled means a move did not converge within its pass budget.
	ErrStalled = errors.New("t2048: move did not converge")
)
