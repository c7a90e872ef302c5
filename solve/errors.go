package solve

import "errors"

// Sentinel errors for Solve and FindRoute input validation.
var (
	// ErrBoardNil indicates a nil *board.Board was supplied.
	ErrBoardNil = errors.New("solve: board is nil")

	// ErrInvalidRobot indicates goalRobot is outside the initial state.
	ErrInvalidRobot = errors.New("solve: goal robot index out of range")

	// ErrDuplicatePositions indicates two robots share a starting cell.
	ErrDuplicatePositions = errors.New("solve: two robots share a starting position")

	// ErrOutOfBounds indicates a starting position or goal cell lies
	// outside the board.
	ErrOutOfBounds = errors.New("solve: position out of bounds")

	// ErrOptionViolation indicates an Option was given an invalid argument.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)
