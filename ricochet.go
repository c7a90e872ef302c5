package ricochet

import (
	"github.com/katalvlaran/ricochet/board"
	"github.com/katalvlaran/ricochet/solve"
	"github.com/katalvlaran/ricochet/state"
)

// Solve finds a shortest sequence of slides bringing robot goalRobot to
// goalCell on b, starting from initial. See solve.Solve for the full
// contract.
func Solve(b *board.Board, initial state.State, goalRobot int, goalCell board.Position, opts ...solve.Option) (solve.Solution, error) {
	return solve.Solve(b, initial, goalRobot, goalCell, opts...)
}

// FindRoute finds a shortest sequence of slides bringing a single robot
// from start to end on b, with no other robots present. See
// solve.FindRoute for the full contract.
func FindRoute(b *board.Board, start, end board.Position, opts ...solve.Option) (solve.Route, error) {
	return solve.FindRoute(b, start, end, opts...)
}

// BoardWidth returns the compile-time default board width.
func BoardWidth() int { return board.Width }

// MaxMoves returns the compile-time default move cap M.
func MaxMoves() int { return board.MaxMoves }

// RobotCount returns the compile-time default robot count.
func RobotCount() int { return board.RobotCount }
