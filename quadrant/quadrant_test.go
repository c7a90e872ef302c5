package quadrant_test

import (
	"testing"

	"github.com/katalvlaran/ricochet/board"
	"github.com/katalvlaran/ricochet/quadrant"
	"github.com/stretchr/testify/require"
)

func TestRotate_FourTurnsIsIdentity(t *testing.T) {
	t.Parallel()

	q := quadrant.New()
	q.VertWalls[2][5] = true // an asymmetric interior wall
	q.HorzWalls[6][1] = true
	q.Targets = []board.Target{{Cell: board.Position{X: 3, Y: 1}, Symbol: board.SymbolMoon, Color: board.ColorGreen}}

	got := quadrant.Rotate(q, quadrant.Rot0)
	for i := 0; i < 4; i++ {
		got = quadrant.Rotate(got, quadrant.Rot90)
	}
	require.Equal(t, q, got)
}

func TestRotate_Rot180TwiceIsRot360(t *testing.T) {
	t.Parallel()

	q := quadrant.New()
	q.VertWalls[0][4] = true

	once := quadrant.Rotate(q, quadrant.Rot180)
	twice := quadrant.Rotate(once, quadrant.Rot180)
	require.Equal(t, q, twice)
}

func TestRotate_MovesATargetCorrectly(t *testing.T) {
	t.Parallel()

	q := quadrant.New()
	q.Targets = []board.Target{{Cell: board.Position{X: 0, Y: 0}, Symbol: board.SymbolBox, Color: board.ColorRed}}

	rotated := quadrant.Rotate(q, quadrant.Rot90)
	require.Len(t, rotated.Targets, 1)
	require.Equal(t, board.Position{X: quadrant.Width - 1, Y: 0}, rotated.Targets[0].Cell)
}

func TestCompose_ProducesValidBoard(t *testing.T) {
	t.Parallel()

	nw := quadrant.New()
	ne := quadrant.New()
	sw := quadrant.New()
	se := quadrant.New()

	b, targets, err := quadrant.Compose(nw, ne, sw, se)
	require.NoError(t, err)
	require.NoError(t, b.Validate())
	require.Equal(t, board.Width, b.Width())
	require.Empty(t, targets)
}

func TestCompose_TranslatesTargetsToTheirCorner(t *testing.T) {
	t.Parallel()

	se := quadrant.New()
	se.Targets = []board.Target{{Cell: board.Position{X: 2, Y: 3}, Symbol: board.SymbolUFO, Color: board.ColorBlue}}

	_, targets, err := quadrant.Compose(quadrant.New(), quadrant.New(), quadrant.New(), se)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Equal(t, board.Position{X: quadrant.Width + 2, Y: quadrant.Width + 3}, targets[0].Cell)
}

func TestCompose_MissingBorderIsRejected(t *testing.T) {
	t.Parallel()

	nw := quadrant.New()
	nw.HorzWalls[0][0] = false // break the outer border

	_, _, err := quadrant.Compose(nw, quadrant.New(), quadrant.New(), quadrant.New())
	require.ErrorIs(t, err, board.ErrMissingBorder)
}
