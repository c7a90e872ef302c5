package ricochet_test

import (
	"testing"

	"github.com/katalvlaran/ricochet"
	"github.com/katalvlaran/ricochet/board"
	"github.com/katalvlaran/ricochet/state"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	t.Parallel()

	require.Equal(t, 16, ricochet.BoardWidth())
	require.Equal(t, 20, ricochet.MaxMoves())
	require.Equal(t, 4, ricochet.RobotCount())
}

// S1: empty board, corner to corner.
func TestSolve_S1_CornerToCorner(t *testing.T) {
	t.Parallel()

	b := board.New(board.Width)
	initial := state.State{{X: 0, Y: 0}, {X: 15, Y: 1}, {X: 15, Y: 2}, {X: 15, Y: 3}}
	sol, err := ricochet.Solve(b, initial, 0, board.Position{X: 15, Y: 15})
	require.NoError(t, err)
	require.Equal(t, 2, sol.Length)
}

// S2: already at goal.
func TestSolve_S2_AlreadyAtGoal(t *testing.T) {
	t.Parallel()

	b := board.New(board.Width)
	initial := state.State{{X: 0, Y: 0}, {X: 15, Y: 1}, {X: 15, Y: 2}, {X: 15, Y: 3}}
	sol, err := ricochet.Solve(b, initial, 0, board.Position{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 0, sol.Length)
}

// S6: a robot starts on the cell it is meant to reach.
func TestSolve_S6_TargetAtopRobot(t *testing.T) {
	t.Parallel()

	b := board.New(board.Width)
	initial := state.State{{X: 9, Y: 9}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}
	sol, err := ricochet.Solve(b, initial, 0, board.Position{X: 9, Y: 9})
	require.NoError(t, err)
	require.Equal(t, 0, sol.Length)
}

// Testable property 6: border invariance — a slide never leaves the grid.
func TestProperty_BorderInvariance(t *testing.T) {
	t.Parallel()

	b := board.New(board.Width)
	initial := state.State{{X: 0, Y: 0}, {X: 15, Y: 1}, {X: 15, Y: 2}, {X: 15, Y: 3}}
	sol, err := ricochet.Solve(b, initial, 0, board.Position{X: 15, Y: 15})
	require.NoError(t, err)

	cur := initial
	for _, m := range sol.Moves {
		cur = cur.With(m.Robot, m.End)
		for _, p := range cur {
			require.True(t, b.InBounds(p))
		}
	}
}

// Testable property 7: determinism — repeated calls with identical
// inputs return identical outputs.
func TestProperty_Determinism(t *testing.T) {
	t.Parallel()

	b := board.New(board.Width)
	initial := state.State{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}

	first, err := ricochet.Solve(b, initial, 0, board.Position{X: 10, Y: 10})
	require.NoError(t, err)
	second, err := ricochet.Solve(b, initial, 0, board.Position{X: 10, Y: 10})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// Testable property 1 (optimality), checked by exhaustive
// iterative-deepening search on a small board against Solve's result.
func TestProperty_Optimality_SmallBoard(t *testing.T) {
	t.Parallel()

	b := board.New(4)
	initial := state.State{{X: 0, Y: 0}, {X: 3, Y: 3}}
	goal := board.Position{X: 3, Y: 0}

	sol, err := ricochet.Solve(b, initial, 0, goal)
	require.NoError(t, err)
	require.NotEqual(t, -1, sol.Length)

	best := iterativeDeepening(b, initial, 0, goal, sol.Length)
	require.Equal(t, sol.Length, best, "no shorter plan exists than the one Solve found")
}

// iterativeDeepening returns the shallowest depth at which initial's
// goalRobot can reach goalCell, searched exhaustively up to limit moves.
// Used only to cross-check Solve's optimality on small state spaces.
func iterativeDeepening(b *board.Board, initial state.State, goalRobot int, goalCell board.Position, limit int) int {
	for depth := 0; depth <= limit; depth++ {
		if dfs(b, initial, goalRobot, goalCell, depth) {
			return depth
		}
	}
	return -1
}

func dfs(b *board.Board, st state.State, goalRobot int, goalCell board.Position, budget int) bool {
	if st[goalRobot] == goalCell {
		return true
	}
	if budget == 0 {
		return false
	}
	for r := range st {
		from := st[r]
		occ := occupancyExcept(st, r)
		for _, dir := range board.Directions {
			stop := nextStop(b, occ, from, dir)
			if stop == from {
				continue
			}
			if dfs(b, st.With(r, stop), goalRobot, goalCell, budget-1) {
				return true
			}
		}
	}
	return false
}

func occupancyExcept(st state.State, self int) []board.Position {
	out := make([]board.Position, 0, len(st)-1)
	for i, p := range st {
		if i != self {
			out = append(out, p)
		}
	}
	return out
}

func nextStop(b *board.Board, occ []board.Position, from board.Position, dir board.Direction) board.Position {
	dx, dy := dir.Delta()
	cur := from
	for {
		if b.Blocked(cur, dir) {
			return cur
		}
		next := board.Position{X: cur.X + dx, Y: cur.Y + dy}
		blocked := false
		for _, p := range occ {
			if p == next {
				blocked = true
				break
			}
		}
		if blocked {
			return cur
		}
		cur = next
	}
}
