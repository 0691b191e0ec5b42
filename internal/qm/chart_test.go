package qm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdbarlow/qmin/internal/qm"
)

func TestBuildChart_Majority3(t *testing.T) {
	table := majority3Table()
	primes := qm.PrimeImplicants(table)
	chart := qm.BuildChart(table, primes)

	// Four ON rows, one chart row each.
	require.Len(t, chart, 4)
	for _, row := range chart {
		assert.NotEmpty(t, row.Covers)
	}
}

func TestEssentials_Majority3(t *testing.T) {
	table := majority3Table()
	primes := qm.PrimeImplicants(table)
	chart := qm.BuildChart(table, primes)
	essentials, residual := qm.Essentials(chart)

	// Each of the three two-variable primes is the sole cover of one
	// minterm (011, 101 and 110 respectively), so all three are
	// essential and the fourth minterm (111) is struck out for free.
	var got []string
	for _, e := range essentials {
		got = append(got, e.String())
	}
	assert.ElementsMatch(t, []string{"11-", "1-1", "-11"}, got)
	assert.Empty(t, residual)
}

func TestEssentials_SingleCoverIsEssential(t *testing.T) {
	table := qm.Table{
		{In: []qm.Tri{qm.One, qm.Zero}, Out: qm.One},
		{In: []qm.Tri{qm.Zero, qm.Zero}, Out: qm.Zero},
		{In: []qm.Tri{qm.Zero, qm.One}, Out: qm.Zero},
		{In: []qm.Tri{qm.One, qm.One}, Out: qm.Zero},
	}
	primes := qm.PrimeImplicants(table)
	chart := qm.BuildChart(table, primes)
	essentials, residual := qm.Essentials(chart)

	require.Len(t, essentials, 1)
	assert.Equal(t, "10", essentials[0].String())
	assert.Empty(t, residual)
}
