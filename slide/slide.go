package slide

import "github.com/katalvlaran/ricochet/board"

// NextStop returns the cell the robot currently at from comes to rest on
// if it slides in direction dir, given the board's walls and the other
// robots' positions in occ (which must not include from itself). Pass an
// empty Occupancy for the single-robot case, where only walls can stop
// the slide.
//
// If from is already blocked from moving at all (dir is walled off
// immediately), NextStop returns from unchanged — callers use this to
// recognize a no-op move and skip it.
func NextStop(b *board.Board, occ Occupancy, from board.Position, dir board.Direction) board.Position {
	dx, dy := dir.Delta()
	cur := from
	for {
		if b.Blocked(cur, dir) {
			return cur
		}
		next := board.Position{X: cur.X + dx, Y: cur.Y + dy}
		if occ.Blocked(next) {
			return cur
		}
		cur = next
	}
}
