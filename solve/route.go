package solve

import (
	"fmt"

	"github.com/katalvlaran/ricochet/board"
	"github.com/katalvlaran/ricochet/state"
)

// FindRoute finds a shortest sequence of slides bringing a single robot
// from start to end, with no other robots on the board. It reuses the
// same walker as Solve, specialized to a state of length 1, so the two
// entry points cannot diverge in move-generation semantics.
func FindRoute(b *board.Board, start, end board.Position, opts ...Option) (Route, error) {
	if b == nil {
		return Route{}, ErrBoardNil
	}
	if !b.InBounds(start) {
		return Route{}, fmt.Errorf("%w: %v", ErrOutOfBounds, start)
	}
	if !b.InBounds(end) {
		return Route{}, fmt.Errorf("%w: %v", ErrOutOfBounds, end)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Route{}, o.err
	}

	if start == end {
		return Route{Length: 0}, nil
	}

	initial := state.State{start}
	w := newWalker(b, initial, 0, end, o)
	moves, found := w.run(initial)
	if !found {
		return Route{Length: -1}, nil
	}

	dirs := make([]board.Direction, len(moves))
	for i, m := range moves {
		dirs[i] = directionOf(m.Start, m.End)
	}
	return Route{Dirs: dirs, Length: len(dirs)}, nil
}

// directionOf returns the cardinal direction of the slide from start to
// end; start and end are assumed to differ in exactly one coordinate.
func directionOf(start, end board.Position) board.Direction {
	switch {
	case end.Y < start.Y:
		return board.North
	case end.Y > start.Y:
		return board.South
	case end.X > start.X:
		return board.East
	default:
		return board.West
	}
}
