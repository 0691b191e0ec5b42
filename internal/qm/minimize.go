package qm

import "sort"

// Minimize runs the full pipeline — canonicalize, generate primes, chart,
// extract essentials, search the residual cover — and returns a sorted,
// deduplicated list of tri-value tuples forming a minimum sum-of-products
// cover of raw. Canonicalize is the only step that can fail.
func Minimize(raw Table) ([]Cube, error) {
	canon, err := Canonicalize(raw)
	if err != nil {
		return nil, err
	}
	if len(canon) == 0 {
		return nil, nil
	}

	primes := PrimeImplicants(canon)
	if len(primes) == 0 {
		return nil, nil
	}

	chart := BuildChart(canon, primes)
	if len(chart) == 0 {
		return nil, nil
	}

	essentials, residual := Essentials(chart)
	chosen := MinimumCover(residual, primes)

	seen := make(map[Cube]bool)
	var result []Cube
	for _, c := range essentials {
		if !seen[c] {
			seen[c] = true
			result = append(result, c)
		}
	}
	for _, c := range chosen {
		if !seen[c] {
			seen[c] = true
			result = append(result, c)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Compare(result[j]) < 0 })
	return result, nil
}
