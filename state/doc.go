// Package state defines a robot configuration (State), its packed
// integer encoding, and the visited-set used to deduplicate states during
// breadth-first search.
//
// What:
//
//   - State is an ordered tuple of robot positions, identity-preserving
//     (State[i] is always robot i's position).
//   - Encode packs a State into a uint64 key.
//   - VisitedSet records which encoded keys the search has already
//     reached.
//
// Why:
//
//   - Packing positions into a single integer lets the BFS engine in
//     package solve dedupe states with integer-map lookups instead of
//     struct or slice comparisons.
//
// Complexity:
//
//   - Encode: O(board.RobotCount).
//   - VisitedSet.Insert / Seen: O(1) amortized.
//
// See SPEC_FULL.md §4.C.
package state
