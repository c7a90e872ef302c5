package solve_test

import (
	"testing"

	"github.com/katalvlaran/ricochet/board"
	"github.com/katalvlaran/ricochet/solve"
	"github.com/katalvlaran/ricochet/state"
	"github.com/stretchr/testify/require"
)

// S1: empty board, corner to corner.
func TestFindRoute_CornerToCorner(t *testing.T) {
	t.Parallel()

	b := board.New(board.Width)
	route, err := solve.FindRoute(b, board.Position{X: 0, Y: 0}, board.Position{X: 15, Y: 15})
	require.NoError(t, err)
	require.Equal(t, 2, route.Length)
}

// S2 (single-robot variant): already at goal.
func TestFindRoute_AlreadyAtGoal(t *testing.T) {
	t.Parallel()

	b := board.New(board.Width)
	route, err := solve.FindRoute(b, board.Position{X: 0, Y: 0}, board.Position{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 0, route.Length)
	require.Empty(t, route.Dirs)
}

func TestFindRoute_StoppedByWall(t *testing.T) {
	t.Parallel()

	b := board.New(board.Width)
	b.SetVertWall(5, 0)
	route, err := solve.FindRoute(b, board.Position{X: 0, Y: 0}, board.Position{X: 4, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 1, route.Length)
	require.Equal(t, []board.Direction{board.East}, route.Dirs)
}

func TestFindRoute_Unreachable(t *testing.T) {
	t.Parallel()

	// A fully sealed interior cell, (3,3), cannot be entered by a slide.
	b := board.New(8)
	b.SetHorzWall(3, 3)
	b.SetHorzWall(3, 4)
	b.SetVertWall(3, 3)
	b.SetVertWall(4, 3)
	route, err := solve.FindRoute(b, board.Position{X: 0, Y: 0}, board.Position{X: 3, Y: 3}, solve.WithMaxMoves(4))
	require.NoError(t, err)
	require.Equal(t, -1, route.Length)
}

// Testable property 8: single-robot ⊆ multi-robot, with decoys placed so
// as not to obstruct the canonical shortest route.
func TestFindRoute_MatchesSolveWithDecoys(t *testing.T) {
	t.Parallel()

	b := board.New(board.Width)
	route, err := solve.FindRoute(b, board.Position{X: 0, Y: 0}, board.Position{X: 15, Y: 15})
	require.NoError(t, err)

	decoys := state.State{
		{X: 0, Y: 0},
		{X: 5, Y: 9},
		{X: 6, Y: 9},
		{X: 7, Y: 9},
	}
	sol, err := solve.Solve(b, decoys, 0, board.Position{X: 15, Y: 15})
	require.NoError(t, err)
	require.Equal(t, route.Length, sol.Length)
}
