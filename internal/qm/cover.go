package qm

import (
	"sort"
	"strconv"
	"strings"
)

// MinimumCover solves the residual chart's unate covering problem
// exhaustively: grow a frontier of prime subsets by one member at a time
// and stop at the first cardinality where a cover exists, breaking ties
// by lexicographic order of the sorted cube tuple.
func MinimumCover(residual []ChartRow, primes []Cube) []Cube {
	if len(residual) == 0 {
		return nil
	}

	pool := poolOf(residual)
	if len(pool) == 0 {
		return nil
	}

	frontier := make([][]int, len(pool))
	for i := range pool {
		frontier[i] = []int{i}
	}

	for {
		var candidates [][]int
		for _, subset := range frontier {
			if coversAll(subset, pool, residual) {
				candidates = append(candidates, subset)
			}
		}
		if len(candidates) > 0 {
			return bestCover(candidates, pool)
		}

		seen := make(map[string]bool)
		var next [][]int
		for _, subset := range frontier {
			for p := range pool {
				if containsInt(subset, p) {
					continue
				}
				grown := append(append([]int{}, subset...), p)
				sort.Ints(grown)
				key := intsKey(grown)
				if seen[key] {
					continue
				}
				seen[key] = true
				next = append(next, grown)
			}
		}
		if len(next) == 0 {
			// No further growth possible; pool itself must already cover
			// (it is the union of every prime in the residual chart).
			return cubesOf(frontier[0], pool)
		}
		frontier = next
	}
}

// poolOf collects the distinct primes appearing anywhere in the residual
// chart, sorted for determinism.
func poolOf(residual []ChartRow) []Cube {
	seen := make(map[Cube]bool)
	var pool []Cube
	for _, row := range residual {
		for _, c := range row.Covers {
			if !seen[c] {
				seen[c] = true
				pool = append(pool, c)
			}
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].Compare(pool[j]) < 0 })
	return pool
}

func coversAll(subset []int, pool []Cube, residual []ChartRow) bool {
	for _, row := range residual {
		hit := false
		for _, idx := range subset {
			for _, c := range row.Covers {
				if c.Equal(pool[idx]) {
					hit = true
					break
				}
			}
			if hit {
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// bestCover picks the candidate whose sorted cube sequence is
// lexicographically smallest under Cube.Compare.
func bestCover(candidates [][]int, pool []Cube) []Cube {
	best := cubesOf(candidates[0], pool)
	for _, cand := range candidates[1:] {
		cubes := cubesOf(cand, pool)
		if lessSequence(cubes, best) {
			best = cubes
		}
	}
	return best
}

func cubesOf(idx []int, pool []Cube) []Cube {
	out := make([]Cube, len(idx))
	for i, p := range idx {
		out[i] = pool[p]
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

func lessSequence(a, b []Cube) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c < 0
		}
	}
	return len(a) < len(b)
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func intsKey(s []int) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
