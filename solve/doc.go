// Package solve implements the two breadth-first search engines: Solve,
// over full multi-robot configurations, and FindRoute, over a single
// robot's position. Both share one walker so they cannot diverge in
// move-generation or reconstruction semantics.
//
// What:
//
//   - Solve finds a shortest sequence of robot slides bringing a chosen
//     robot to a goal cell, searching level by level and stopping at the
//     first configuration satisfying the goal.
//   - FindRoute specializes the same search to a single robot with no
//     other occupants, returning a direction sequence instead of Moves.
//   - Options configure the move cap and an optional expansion hook.
//
// Why:
//
//   - Breadth-first search over the packed state encoding (package
//     state) guarantees a shortest solution without any heuristic.
//
// Complexity:
//
//   - Solve:     O(reachable states × 4 robots × 4 directions), bounded
//     by (Width²)^RobotCount reachable states and the move cap.
//   - FindRoute: the same bound with RobotCount == 1.
//
// Errors:
//
//   - ErrBoardNil            — a nil *board.Board was supplied.
//   - ErrInvalidRobot        — goalRobot is outside the initial state.
//   - ErrDuplicatePositions  — two robots share a starting cell.
//   - ErrOutOfBounds         — a starting position or goal cell is off the board.
//   - ErrOptionViolation     — an Option was given an invalid argument.
//
// See SPEC_FULL.md §4.D, §4.E, §4.F.
package solve
