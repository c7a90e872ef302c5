package solve

import (
	"fmt"

	"github.com/katalvlaran/ricochet/board"
	"github.com/katalvlaran/ricochet/state"
)

// Solve finds a shortest sequence of slides bringing robot goalRobot to
// goalCell, starting from initial, subject to the other robots'
// occupancy. It returns Solution{Length: 0} if the robot already
// occupies goalCell, and Solution{Length: -1} if no sequence of at most
// Options.MaxMoves moves reaches it.
//
// Solve validates its input before searching: b must be non-nil,
// goalRobot must index into initial, no two robots may share a starting
// cell, and every position (starting or goal) must lie on the board.
func Solve(b *board.Board, initial state.State, goalRobot int, goalCell board.Position, opts ...Option) (Solution, error) {
	if b == nil {
		return Solution{}, ErrBoardNil
	}
	if goalRobot < 0 || goalRobot >= len(initial) {
		return Solution{}, fmt.Errorf("%w: %d", ErrInvalidRobot, goalRobot)
	}
	if err := validatePositions(b, initial, goalCell); err != nil {
		return Solution{}, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Solution{}, o.err
	}

	if initial[goalRobot] == goalCell {
		return Solution{Length: 0}, nil
	}

	w := newWalker(b, initial, goalRobot, goalCell, o)
	moves, found := w.run(initial)
	if !found {
		return Solution{Length: -1}, nil
	}
	return Solution{Moves: moves, Length: len(moves)}, nil
}

// validatePositions rejects a malformed starting state or goal cell:
// duplicate robot positions, or any position outside the board.
func validatePositions(b *board.Board, initial state.State, goalCell board.Position) error {
	seen := make(map[board.Position]bool, len(initial))
	for _, p := range initial {
		if !b.InBounds(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if seen[p] {
			return ErrDuplicatePositions
		}
		seen[p] = true
	}
	if !b.InBounds(goalCell) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, goalCell)
	}
	return nil
}
