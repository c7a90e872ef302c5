package board

// Board is a square grid of side Width with two wall bit-planes. Walls can
// be added (SetHorzWall, SetVertWall) but never removed; callers in
// package solve never mutate a Board during a search.
type Board struct {
	width int
	horz  bitset // horz.get(y*width+x) — wall on top edge of cell (x,y); y ∈ [0,width]
	vert  bitset // vert.get(y*(width+1)+x) — wall on left edge of cell (x,y); x ∈ [0,width]
}

// New returns a Board of the given width with only the outer border
// walled — the "empty board" used throughout spec scenarios S1–S3.
// It panics if width is not positive; New is used only with compile-time
// constants in this module, unlike Parse, which validates caller-supplied
// text and returns an error instead.
func New(width int) *Board {
	if width <= 0 {
		panic(ErrInvalidWidth)
	}
	b := newBlank(width)
	b.sealBorder()
	return b
}

// newBlank returns a Board with both wall planes entirely clear — used
// internally by Parse and by package quadrant's Compose, which populate
// every wall bit themselves and then validate the result.
func newBlank(width int) *Board {
	return &Board{
		width: width,
		horz:  newBitset((width + 1) * width),
		vert:  newBitset(width * (width + 1)),
	}
}

// NewBlank returns a Board with both wall planes entirely clear, for
// callers outside this package that populate every wall bit themselves
// and then call Validate — package quadrant's Compose is the one example.
func NewBlank(width int) *Board {
	return newBlank(width)
}

// sealBorder sets every border wall bit: the top and bottom rows of the
// horizontal plane, and the left and right columns of the vertical plane.
func (b *Board) sealBorder() {
	for x := 0; x < b.width; x++ {
		b.horz.set(b.horzIndex(0, x))
		b.horz.set(b.horzIndex(b.width, x))
	}
	for y := 0; y < b.width; y++ {
		b.vert.set(b.vertIndex(y, 0))
		b.vert.set(b.vertIndex(y, b.width))
	}
}

func (b *Board) horzIndex(y, x int) int { return y*b.width + x }
func (b *Board) vertIndex(y, x int) int { return y*(b.width+1) + x }

// Width returns the board's side length.
func (b *Board) Width() int { return b.width }

// SetHorzWall adds a horizontal wall on the top edge of cell (x, y),
// equivalently between (x, y-1) and (x, y). y ranges over [0, Width()];
// x ranges over [0, Width()). Safe to call more than once for the same
// edge — walls are only ever added.
func (b *Board) SetHorzWall(x, y int) {
	b.horz.set(b.horzIndex(y, x))
}

// SetVertWall adds a vertical wall on the left edge of cell (x, y),
// equivalently between (x-1, y) and (x, y). x ranges over [0, Width()];
// y ranges over [0, Width()). Safe to call more than once for the same edge.
func (b *Board) SetVertWall(x, y int) {
	b.vert.set(b.vertIndex(y, x))
}

// hasHorzWall reports the raw horizontal-plane bit at (x, y); used by
// Blocked and by Validate's border check.
func (b *Board) hasHorzWall(x, y int) bool { return b.horz.get(b.horzIndex(y, x)) }

// hasVertWall reports the raw vertical-plane bit at (x, y); used by
// Blocked and by Validate's border check.
func (b *Board) hasVertWall(x, y int) bool { return b.vert.get(b.vertIndex(y, x)) }

// Blocked reports whether there is a wall immediately beyond pos in
// direction dir. pos is assumed to be a valid in-bounds cell (0 ≤ X, Y <
// Width()); because the outer border is always fully walled, Blocked
// never needs pos's neighbor to be range-checked by the caller.
func (b *Board) Blocked(pos Position, dir Direction) bool {
	switch dir {
	case North:
		return b.hasHorzWall(pos.X, pos.Y)
	case South:
		return b.hasHorzWall(pos.X, pos.Y+1)
	case West:
		return b.hasVertWall(pos.X, pos.Y)
	case East:
		return b.hasVertWall(pos.X+1, pos.Y)
	default:
		return true
	}
}

// InBounds reports whether pos lies within [0, Width()) × [0, Width()).
func (b *Board) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < b.width && pos.Y >= 0 && pos.Y < b.width
}

// Validate checks the outer-border invariant spec.md §3 requires: every
// border edge must be walled. Parse and quadrant.Compose call this after
// populating a Board from external data; New always satisfies it by
// construction and never needs to call Validate.
func (b *Board) Validate() error {
	for x := 0; x < b.width; x++ {
		if !b.hasHorzWall(x, 0) || !b.hasHorzWall(x, b.width) {
			return ErrMissingBorder
		}
	}
	for y := 0; y < b.width; y++ {
		if !b.hasVertWall(0, y) || !b.hasVertWall(b.width, y) {
			return ErrMissingBorder
		}
	}
	return nil
}
