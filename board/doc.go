// Package board defines the fixed-size grid, its wall bit-planes, and the
// ASCII ingestion format for a Ricochet-Robots-style puzzle.
//
// What:
//
//   - Board wraps two wall bit-planes (horizontal and vertical) over a
//     Width×Width grid, answering Blocked(pos, dir) in O(1).
//   - The outer border is fully walled on every Board returned by New,
//     Parse, or quadrant.Compose; callers never need to range-check a
//     Position after consulting Blocked on such a Board.
//   - Parse reads the textual (2W+1)×(3W+1) board form described in the
//     project's external-interface contract, including target labels.
//
// Why:
//
//   - A flat, precomputed wall representation keeps the slide oracle
//     (package slide) and the BFS engine (package solve) allocation-free
//     per query.
//
// Complexity:
//
//   - Blocked: O(1).
//   - New:     O(Width).
//   - Parse:   O(Width²).
//
// Errors:
//
//   - ErrInvalidWidth     — width is not positive.
//   - ErrMissingBorder    — the outer border is not fully walled.
//   - ErrRowCount         — the textual form has the wrong number of rows.
//   - ErrColumnCount      — a row has the wrong number of columns.
//   - ErrWallChar         — an unexpected character in a wall position.
//   - ErrTargetLabel      — a target label uses an unknown symbol or color.
//
// See SPEC_FULL.md §4.A and §4.G for the full contract.
package board
