package qm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdbarlow/qmin/internal/qm"
)

func TestMinimumCover_Empty(t *testing.T) {
	assert.Nil(t, qm.MinimumCover(nil, nil))
}

func TestMinimumCover_TiebreakPicksLexicographicallySmallestSequence(t *testing.T) {
	p0 := qm.NewCube([]qm.Tri{qm.Zero, qm.Zero}, 2)
	p1 := qm.NewCube([]qm.Tri{qm.Zero, qm.One}, 2)
	p2 := qm.NewCube([]qm.Tri{qm.One, qm.Zero}, 2)
	p3 := qm.NewCube([]qm.Tri{qm.One, qm.One}, 2)

	residual := []qm.ChartRow{
		{Target: p0, Covers: []qm.Cube{p0, p1}},
		{Target: p1, Covers: []qm.Cube{p1, p2}},
		{Target: p2, Covers: []qm.Cube{p2, p3}},
	}

	cover := qm.MinimumCover(residual, []qm.Cube{p0, p1, p2, p3})
	require.Len(t, cover, 2)

	var got []string
	for _, c := range cover {
		got = append(got, c.String())
	}
	// {p1,p3} is the cheapest cover tied with {p0,p2} and {p1,p2}; p3's
	// tuple (1,1) sorts first under Cube.Compare, so it wins the
	// lexicographic tiebreak.
	assert.Equal(t, []string{"11", "01"}, got)
}

func TestMinimumCover_SinglePrimeSuffices(t *testing.T) {
	p0 := qm.NewCube([]qm.Tri{qm.One, qm.DontCare}, 2)
	target := qm.NewCube([]qm.Tri{qm.One, qm.Zero}, 2)

	residual := []qm.ChartRow{{Target: target, Covers: []qm.Cube{p0}}}
	cover := qm.MinimumCover(residual, []qm.Cube{p0})
	require.Len(t, cover, 1)
	assert.Equal(t, "1-", cover[0].String())
}
