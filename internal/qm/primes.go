package qm

import "sort"

// PrimeImplicants computes every prime implicant of the ON-set union the
// DC-set of a canonical table by the Quine-McCluskey iterative merge,
// trying every pair of live cubes in each round. Rows are expanded
// to minterm granularity before the first round even if the caller (or
// canonicalize's subsumption pass) already expresses a row with "-"
// positions, so a row spanning several minterms can't be absorbed whole
// by a merge that only covers some of them.
func PrimeImplicants(t Table) []Cube {
	if len(t) == 0 {
		return nil
	}
	n := len(t[0].In)

	current := make(map[Cube]bool)
	for _, row := range t {
		if row.Out == Zero {
			continue
		}
		for _, m := range expandMinterms(NewCube(row.In, n)) {
			current[m] = true
		}
	}
	if len(current) == 0 {
		return nil
	}

	primeSet := make(map[Cube]bool)
	for len(current) > 0 {
		list := make([]Cube, 0, len(current))
		for c := range current {
			list = append(list, c)
		}

		merged := make(map[Cube]bool)
		used := make(map[Cube]bool)
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if m, ok := combine(list[i], list[j]); ok {
					merged[m] = true
					used[list[i]] = true
					used[list[j]] = true
				}
			}
		}

		for _, c := range list {
			if !used[c] {
				primeSet[c] = true
			}
		}
		current = merged
	}

	primes := make([]Cube, 0, len(primeSet))
	for c := range primeSet {
		primes = append(primes, c)
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i].Compare(primes[j]) < 0 })
	return primes
}
