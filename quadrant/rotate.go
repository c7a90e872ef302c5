package quadrant

import "github.com/katalvlaran/ricochet/board"

// Rotate turns q clockwise by rot quarter-turns. Wall planes swap roles
// each quarter-turn (a vertical wall becomes a horizontal wall and vice
// versa); targets move with the cell-anchored coordinate flip
// (x, y) → (Width-1-y, x). Rotating four times returns q unchanged.
func Rotate(q Quadrant, rot Rotation) Quadrant {
	turns := int(rot) % 4
	if turns < 0 {
		turns += 4
	}
	for i := 0; i < turns; i++ {
		q = rotateOnce(q)
	}
	return q
}

// rotateOnce applies a single 90° clockwise turn.
func rotateOnce(q Quadrant) Quadrant {
	const w = Width

	newHorz := make([][]bool, w+1)
	for y := range newHorz {
		newHorz[y] = make([]bool, w)
	}
	newVert := make([][]bool, w)
	for y := range newVert {
		newVert[y] = make([]bool, w+1)
	}

	// Old vertical walls become new horizontal walls:
	// old (x, y) → new (nx, ny) = (w-1-y, x).
	for y := 0; y < w; y++ {
		for x := 0; x <= w; x++ {
			if !q.VertWalls[y][x] {
				continue
			}
			nx, ny := w-1-y, x
			newHorz[ny][nx] = true
		}
	}

	// Old horizontal walls become new vertical walls:
	// old (x, y) → new (nx, ny) = (w-y, x).
	for y := 0; y <= w; y++ {
		for x := 0; x < w; x++ {
			if !q.HorzWalls[y][x] {
				continue
			}
			nx, ny := w-y, x
			newVert[ny][nx] = true
		}
	}

	newTargets := make([]board.Target, len(q.Targets))
	for i, t := range q.Targets {
		newTargets[i] = board.Target{
			Cell:   rotateCell(t.Cell, w),
			Symbol: t.Symbol,
			Color:  t.Color,
		}
	}

	return Quadrant{HorzWalls: newHorz, VertWalls: newVert, Targets: newTargets}
}

// rotateCell applies the cell-anchored coordinate flip for a w-wide
// quadrant: (x, y) → (w-1-y, x).
func rotateCell(p board.Position, w int) board.Position {
	return board.Position{X: w - 1 - p.Y, Y: p.X}
}
