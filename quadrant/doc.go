// Package quadrant rotates and composes four 8×8 board fragments into a
// single 16×16 board.Board, mirroring how physical Ricochet Robots tiles
// are assembled from four quadrant boards.
//
// What:
//
//   - Quadrant holds an 8×8 fragment's own wall bit-planes and targets,
//     in quadrant-local coordinates.
//   - Rotate turns a Quadrant by a multiple of 90°, transforming both its
//     wall planes and its targets; applying it four times is the identity.
//   - Compose ORs four (already rotated) quadrants' wall bits into one
//     16×16 board.Board, translating each quadrant's targets into its
//     corner of the full board.
//
// Why:
//
//   - Real boards are built this way; expressing it as a small,
//     independently testable package keeps the rotation arithmetic out
//     of the board and solve packages.
//
// Complexity:
//
//   - Rotate:  O(Width²) for an 8-wide quadrant.
//   - Compose: O(Width²) for the resulting 16-wide board.
//
// See SPEC_FULL.md §4.H.
package quadrant
