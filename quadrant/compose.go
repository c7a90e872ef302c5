package quadrant

import "github.com/katalvlaran/ricochet/board"

// Compose ORs four already-rotated quadrants' wall bits into a single
// board.Width-wide board.Board, placing nw, ne, sw, se at the top-left,
// top-right, bottom-left, and bottom-right 8×8 corners respectively, and
// translating each quadrant's targets into its corner's offset.
//
// Compose returns board.ErrMissingBorder if the assembled board's outer
// border is not fully walled — each input Quadrant's own outer edge that
// falls on the full board's border must already carry a wall bit for
// this to succeed (New, and any Quadrant produced by Rotate from one,
// satisfies this).
func Compose(nw, ne, sw, se Quadrant) (*board.Board, []board.Target, error) {
	b := board.NewBlank(board.Width)
	var targets []board.Target

	for _, pair := range []struct {
		q      Quadrant
		corner Corner
	}{
		{nw, NorthWest},
		{ne, NorthEast},
		{sw, SouthWest},
		{se, SouthEast},
	} {
		placeWalls(b, pair.q, pair.corner)
		targets = append(targets, translateTargets(pair.q, pair.corner)...)
	}

	if err := b.Validate(); err != nil {
		return nil, nil, err
	}
	return b, targets, nil
}

// placeWalls ORs q's wall bits into b at corner's offset.
func placeWalls(b *board.Board, q Quadrant, corner Corner) {
	dx, dy := corner.offset()
	for y := 0; y <= Width; y++ {
		for x := 0; x < Width; x++ {
			if q.HorzWalls[y][x] {
				b.SetHorzWall(dx+x, dy+y)
			}
		}
	}
	for y := 0; y < Width; y++ {
		for x := 0; x <= Width; x++ {
			if q.VertWalls[y][x] {
				b.SetVertWall(dx+x, dy+y)
			}
		}
	}
}

// translateTargets shifts q's targets into corner's offset on the full board.
func translateTargets(q Quadrant, corner Corner) []board.Target {
	dx, dy := corner.offset()
	out := make([]board.Target, len(q.Targets))
	for i, t := range q.Targets {
		out[i] = board.Target{
			Cell:   board.Position{X: t.Cell.X + dx, Y: t.Cell.Y + dy},
			Symbol: t.Symbol,
			Color:  t.Color,
		}
	}
	return out
}
