package board

import "errors"

// Sentinel errors for board construction and ingestion.
var (
	// ErrInvalidWidth indicates a non-positive board width was requested.
	ErrInvalidWidth = errors.New("board: width must be positive")

	// ErrMissingBorder indicates the outer border is not fully walled.
	ErrMissingBorder = errors.New("board: outer border must be fully walled")

	// ErrRowCount indicates the textual board form has the wrong number of rows.
	ErrRowCount = errors.New("board: wrong number of rows")

	// ErrColumnCount indicates a row has the wrong number of columns.
	ErrColumnCount = errors.New("board: wrong number of columns")

	// ErrWallChar indicates an unexpected character at a wall position.
	ErrWallChar = errors.New("board: unexpected wall character")

	// ErrTargetLabel indicates a target label uses an unknown symbol or color.
	ErrTargetLabel = errors.New("board: unrecognized target label")
)
