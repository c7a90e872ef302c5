package state

import (
	"math/bits"

	"github.com/katalvlaran/ricochet/board"
)

// coordBits is the number of bits needed to represent one coordinate of
// a board.Width-wide board: ceil(log2(board.Width)).
const coordBits = 4 // bits.Len(uint(board.Width-1)), board.Width == 16

func init() {
	if want := bits.Len(uint(board.Width - 1)); want != coordBits {
		panic("state: coordBits out of sync with board.Width")
	}
}

// robotBits is the number of bits used to encode one robot's position:
// an X field and a Y field, each coordBits wide.
const robotBits = 2 * coordBits

// Encode packs s into a uint64 key: robot i's (x, y) occupies bits
// [i*robotBits, (i+1)*robotBits). The result stays a uint64 rather than
// a uint32 so a larger board or robot count configured through the same
// constants does not silently truncate.
func Encode(s State) uint64 {
	var key uint64
	for i, pos := range s {
		packed := uint64(pos.X)<<coordBits | uint64(pos.Y)
		key |= packed << uint(i*robotBits)
	}
	return key
}
