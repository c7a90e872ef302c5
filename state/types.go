package state

import "github.com/katalvlaran/ricochet/board"

// State is an ordered, identity-preserving tuple of robot positions:
// State[i] is always robot i's position. The multi-robot engine in
// package solve uses states of length board.RobotCount; the single-robot
// engine reuses the same type and encoding with states of length 1.
type State []board.Position

// With returns a copy of s with robot's position replaced by pos.
func (s State) With(robot int, pos board.Position) State {
	next := make(State, len(s))
	copy(next, s)
	next[robot] = pos
	return next
}
