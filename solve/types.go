package solve

import (
	"fmt"

	"github.com/katalvlaran/ricochet/board"
	"github.com/katalvlaran/ricochet/state"
)

// Solution is the outcome of Solve: an ordered list of Moves of minimum
// length, or the sentinel "no solution" (Length == -1).
type Solution struct {
	Moves  []board.Move
	Length int
}

// Route is the outcome of FindRoute: an ordered list of directions, or
// the sentinel "no solution" (Length == -1).
type Route struct {
	Dirs   []board.Direction
	Length int
}

// Option configures Solve and FindRoute via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds the parameters and hook that customize a search.
type Options struct {
	// MaxMoves is the move cap M; the search never returns a Solution or
	// Route longer than this. Defaults to board.MaxMoves.
	MaxMoves int

	// OnExpand is called once per dequeued state, before its neighbors
	// are generated. Purely observational: it cannot abort the search,
	// since the only built-in bound is MaxMoves.
	OnExpand func(s state.State, depth int)

	err error
}

// DefaultOptions returns Options with MaxMoves set to board.MaxMoves and
// a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		MaxMoves: board.MaxMoves,
		OnExpand: func(state.State, int) {},
	}
}

// WithMaxMoves overrides the move cap M. m must be non-negative;
// a negative value records ErrOptionViolation.
func WithMaxMoves(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: MaxMoves cannot be negative (%d)", ErrOptionViolation, m)
			return
		}
		o.MaxMoves = m
	}
}

// WithOnExpand registers a callback invoked once per dequeued state.
func WithOnExpand(fn func(s state.State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
