package solve

import (
	"github.com/katalvlaran/ricochet/board"
	"github.com/katalvlaran/ricochet/slide"
	"github.com/katalvlaran/ricochet/state"
)

// queueItem pairs a state with its depth (move count from the initial
// state) and its packed encoding, computed once at enqueue time.
type queueItem struct {
	st    state.State
	key   uint64
	depth int
}

// parentLink records, for a non-initial state, the state it was reached
// from and the move that produced it.
type parentLink struct {
	prevKey uint64
	move    board.Move
}

// walker owns the mutable search state shared by Solve and FindRoute.
type walker struct {
	b         *board.Board
	opts      Options
	goalRobot int
	goalCell  board.Position

	queue   []queueItem
	visited state.VisitedSet
	parent  map[uint64]parentLink
}

// newWalker prepares a walker over initial, ready to run.
func newWalker(b *board.Board, initial state.State, goalRobot int, goalCell board.Position, opts Options) *walker {
	return &walker{
		b:         b,
		opts:      opts,
		goalRobot: goalRobot,
		goalCell:  goalCell,
		visited:   state.NewVisitedSet(64),
		parent:    make(map[uint64]parentLink, 64),
	}
}

// run drives the level-synchronous breadth-first search from initial
// until the goal is reached or the queue is exhausted. It returns the
// reconstructed moves and true on success, or nil and false if no
// sequence of at most opts.MaxMoves moves reaches the goal.
func (w *walker) run(initial state.State) ([]board.Move, bool) {
	startKey := state.Encode(initial)
	w.visited.Insert(startKey)
	w.queue = append(w.queue, queueItem{st: initial, key: startKey, depth: 0})

	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnExpand(item.st, item.depth)

		if item.depth >= w.opts.MaxMoves {
			continue
		}
		if key, ok := w.expand(item); ok {
			return w.reconstruct(key), true
		}
	}
	return nil, false
}

// expand generates every neighbor of item.st (one slide per robot per
// direction), enqueuing each unseen state. It returns the key of a
// neighbor satisfying the goal and true as soon as one is found.
func (w *walker) expand(item queueItem) (uint64, bool) {
	for r := range item.st {
		from := item.st[r]
		occ := withoutSelf(item.st, r)
		for _, dir := range board.Directions {
			stop := slide.NextStop(w.b, occ, from, dir)
			if stop == from {
				continue
			}
			next := item.st.With(r, stop)
			key := state.Encode(next)
			if w.visited.Seen(key) {
				continue
			}
			w.visited.Insert(key)
			w.parent[key] = parentLink{
				prevKey: item.key,
				move:    board.Move{Robot: r, Start: from, End: stop},
			}
			if r == w.goalRobot && stop == w.goalCell {
				return key, true
			}
			w.queue = append(w.queue, queueItem{st: next, key: key, depth: item.depth + 1})
		}
	}
	return 0, false
}

// reconstruct walks parent links from goalKey back to the initial state
// and returns the moves in start-to-goal order.
func (w *walker) reconstruct(goalKey uint64) []board.Move {
	var moves []board.Move
	for key := goalKey; ; {
		link, ok := w.parent[key]
		if !ok {
			break
		}
		moves = append(moves, link.move)
		key = link.prevKey
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// withoutSelf returns the positions of every robot in st except self,
// for use as the occupancy passed to the slide oracle.
func withoutSelf(st state.State, self int) slide.Occupancy {
	occ := make(slide.Occupancy, 0, len(st)-1)
	for i, p := range st {
		if i != self {
			occ = append(occ, p)
		}
	}
	return occ
}
