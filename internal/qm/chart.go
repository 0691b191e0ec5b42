package qm

import "sort"

// ChartRow is one line of the prime-implicant coverage chart: an ON
// target (output exactly 1) and the primes covering it.
type ChartRow struct {
	Target Cube
	Covers []Cube
}

// BuildChart lists, for every ON minterm of the canonical table, the
// primes that cover it (Target.Implies(prime)). An ON row already
// bearing "-" positions is expanded to its constituent minterms first,
// each getting its own chart row, since no single prime is guaranteed to
// imply the row as a whole even when primes cover every minterm in it.
func BuildChart(t Table, primes []Cube) []ChartRow {
	n := 0
	if len(t) > 0 {
		n = len(t[0].In)
	}
	var chart []ChartRow
	for _, row := range t {
		if row.Out != One {
			continue
		}
		for _, target := range expandMinterms(NewCube(row.In, n)) {
			var covers []Cube
			for _, p := range primes {
				if target.Implies(p) {
					covers = append(covers, p)
				}
			}
			chart = append(chart, ChartRow{Target: target, Covers: covers})
		}
	}
	sort.Slice(chart, func(i, j int) bool { return chart[i].Target.Compare(chart[j].Target) < 0 })
	return chart
}

// Essentials extracts the prime implicants that are the sole cover of at
// least one chart row, and returns the residual chart with
// essential-covered rows struck out.
func Essentials(chart []ChartRow) (essentials []Cube, residual []ChartRow) {
	essentialSet := make(map[Cube]bool)
	for _, row := range chart {
		if len(row.Covers) == 1 {
			essentialSet[row.Covers[0]] = true
		}
	}
	for e := range essentialSet {
		essentials = append(essentials, e)
	}
	sort.Slice(essentials, func(i, j int) bool { return essentials[i].Compare(essentials[j]) < 0 })

	for _, row := range chart {
		covered := false
		for _, c := range row.Covers {
			if essentialSet[c] {
				covered = true
				break
			}
		}
		if !covered {
			residual = append(residual, row)
		}
	}
	return essentials, residual
}
