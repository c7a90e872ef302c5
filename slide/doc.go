// Package slide implements the sliding-move physics shared by both search
// engines in package solve: given a board, the other robots' positions,
// a starting cell, and a direction, find the cell a robot comes to rest
// on.
//
// What:
//
//   - NextStop walks one cell at a time in the given direction until a
//     wall or another robot's Occupancy entry stops it.
//
// Why:
//
//   - A single, allocation-free oracle keeps the multi-robot and
//     single-robot search engines from diverging in move-generation
//     semantics.
//
// Complexity:
//
//   - NextStop: O(Width) per call, O(1) extra memory.
//
// See SPEC_FULL.md §4.B.
package slide
