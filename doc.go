// Package ricochet is a shortest-move-sequence solver for the
// Ricochet-Robots family of sliding puzzles: on a square grid with
// interior walls, robots slide in cardinal directions until stopped by a
// wall or another robot, and the goal is to land a designated robot on a
// designated target cell in as few moves as possible.
//
// 🚀 What is ricochet?
//
//	A small, dependency-free search core that brings together:
//
//	  • board    — the grid, its walls, and ASCII-form ingestion
//	  • slide    — the sliding-move physics (the "slide oracle")
//	  • state    — robot-configuration encoding and the BFS visited set
//	  • solve    — the BFS engines: multi-robot Solve and single-robot FindRoute
//	  • quadrant — rotating and composing four 8×8 quadrants into one board
//
// ✨ Why choose ricochet?
//
//   - Exhaustive          — breadth-first search guarantees a shortest
//     solution, not merely a good one.
//   - Deterministic       — identical inputs always produce identical
//     outputs; enumeration order is fixed by robot index then direction.
//   - Pure Go             — no cgo, no rendering, no persistence.
//
// Quick example:
//
//	b := board.New(board.Width)
//	start := state.State{{0, 0}, {4, 5}, {0, 2}, {0, 3}}
//	sol, err := ricochet.Solve(b, start, 0, board.Position{X: 3, Y: 0})
//
// Dive into SPEC_FULL.md and DESIGN.md for the full component map and the
// reasoning behind every design decision.
package ricochet
