package board

import (
	"bufio"
	"fmt"
	"io"
)

// Parse reads the textual board form: 2W+1 lines of 3W+1 columns each.
// Even rows carry '+' corner marks at columns 0, 3, 6, … and either "--"
// (wall) or two spaces between them. Odd rows carry '|' or ' ' at columns
// 0, 3, 6, … and an optional two-character target label at columns
// 3x+1, 3x+2. W is inferred from the number of lines read.
//
// Parse reports ErrRowCount, ErrColumnCount, ErrWallChar, or ErrTargetLabel
// (each wrapping the 0-based offending row) for malformed input, and
// ErrMissingBorder if the parsed board's outer border is not fully walled.
func Parse(r io.Reader) (*Board, []Target, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, nil, err
	}
	if len(lines)%2 == 0 || len(lines) < 3 {
		return nil, nil, fmt.Errorf("%w: got %d lines", ErrRowCount, len(lines))
	}
	width := (len(lines) - 1) / 2
	wantCols := 3*width + 1

	b := newBlank(width)
	var targets []Target

	for row, line := range lines {
		if len(line) != wantCols {
			return nil, nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrColumnCount, row, len(line), wantCols)
		}
		if row%2 == 0 {
			if err := parseHorzRow(b, line, row, width); err != nil {
				return nil, nil, err
			}
			continue
		}
		rowTargets, err := parseCellRow(b, line, row, width)
		if err != nil {
			return nil, nil, err
		}
		targets = append(targets, rowTargets...)
	}

	if err := b.Validate(); err != nil {
		return nil, nil, err
	}
	return b, targets, nil
}

// readLines splits r into lines, stripping a single trailing '\r' from
// each (so Windows-style line endings parse the same as Unix ones).
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("board: reading textual form: %w", err)
	}
	return lines, nil
}

// parseHorzRow reads an even row: corner marks at columns 0, 3, 6, … and
// a two-character wall segment between each pair. y = row/2 indexes the
// horizontal wall plane directly.
func parseHorzRow(b *Board, line string, row, width int) error {
	y := row / 2
	for x := 0; x < width; x++ {
		seg := line[3*x+1 : 3*x+3]
		switch seg {
		case "--":
			b.SetHorzWall(x, y)
		case "  ":
			// no wall
		default:
			return fmt.Errorf("%w: row %d, cell %d: %q", ErrWallChar, row, x, seg)
		}
	}
	return nil
}

// parseCellRow reads an odd row: a vertical-wall marker at columns
// 0, 3, 6, … and an optional two-character target label at the two
// columns following each marker except the last. y = (row-1)/2 indexes
// the vertical wall plane and the cell row directly.
func parseCellRow(b *Board, line string, row, width int) ([]Target, error) {
	y := (row - 1) / 2
	var targets []Target
	for x := 0; x <= width; x++ {
		switch line[3*x] {
		case '|':
			b.SetVertWall(x, y)
		case ' ':
			// no wall
		default:
			return nil, fmt.Errorf("%w: row %d, cell %d: %q", ErrWallChar, row, x, string(line[3*x]))
		}
		if x == width {
			break
		}
		label := line[3*x+1 : 3*x+3]
		if label == "  " {
			continue
		}
		t, err := parseTargetLabel(label, Position{X: x, Y: y})
		if err != nil {
			return nil, fmt.Errorf("%w: row %d, cell %d", err, row, x)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func parseTargetLabel(label string, cell Position) (Target, error) {
	sym := TargetSymbol(label[0])
	switch sym {
	case SymbolBox, SymbolPyramid, SymbolMoon, SymbolSaturn, SymbolUFO:
	default:
		return Target{}, fmt.Errorf("%w: symbol %q", ErrTargetLabel, string(label[0]))
	}
	col := TargetColor(label[1])
	switch col {
	case ColorWhite, ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorWild:
	default:
		return Target{}, fmt.Errorf("%w: color %q", ErrTargetLabel, string(label[1]))
	}
	return Target{Cell: cell, Symbol: sym, Color: col}, nil
}
