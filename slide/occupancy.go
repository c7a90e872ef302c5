package slide

import "github.com/katalvlaran/ricochet/board"

// Occupancy is the set of cells currently holding a robot other than the
// one being moved, scanned linearly by NextStop. Callers build it fresh
// per slide (see solve's withoutSelf), leaving the moving robot's own
// cell out so it never blocks itself. A small array beats any index
// structure at board.RobotCount's size (4): building and probing a map
// or a bitset costs more than comparing at most 4 positions.
type Occupancy []board.Position

// Blocked reports whether any position in occ occupies pos.
func (occ Occupancy) Blocked(pos board.Position) bool {
	for _, p := range occ {
		if p == pos {
			return true
		}
	}
	return false
}
