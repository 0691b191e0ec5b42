package qm

import (
	"fmt"
	"sort"
)

// Row is one entry of a caller-supplied or canonicalized truth table: an
// N-length tri-value input tuple and its tri-value output.
type Row struct {
	In  []Tri
	Out Tri
}

// Table is a truth table as a list of rows. A canonical Table (the return
// of Canonicalize) has uniform row length, values interned to {0,1,-},
// no conflicting overlaps, and covers the full 2^N input space.
type Table []Row

// Canonicalize validates raw and returns the equivalent canonical table:
// values interned, subsumed rows removed, gaps filled with don't-care,
// and inconsistency rejected. Canonicalize is the only step of the
// minimization pipeline that can fail.
func Canonicalize(raw Table) (Table, error) {
	if len(raw) == 0 {
		return Table{}, nil
	}

	n := len(raw[0].In)
	cubes := make([]Cube, len(raw))
	outs := make([]Tri, len(raw))
	for i, row := range raw {
		if len(row.In) != n {
			return nil, newArgError(DifferentLength,
				fmt.Sprintf("row %d has %d inputs, expected %d", i, len(row.In), n))
		}
		for pos, t := range row.In {
			if !t.Valid() {
				return nil, newArgError(BadValue,
					fmt.Sprintf("row %d position %d: unexpected value %v", i, pos, t))
			}
		}
		if !row.Out.Valid() {
			return nil, newArgError(BadValue,
				fmt.Sprintf("row %d: unexpected output value %v", i, row.Out))
		}
		cubes[i] = NewCube(row.In, n)
		outs[i] = row.Out
	}

	if err := checkConsistency(cubes, outs); err != nil {
		return nil, err
	}

	removed := make([]bool, len(cubes))
	for changed := true; changed; {
		changed = false
		for i := range cubes {
			if removed[i] {
				continue
			}
			for j := range cubes {
				if i == j || removed[j] {
					continue
				}
				if cubes[i].Implies(cubes[j]) && !cubes[i].Equal(cubes[j]) {
					if outs[i] == outs[j] || outs[i] == DontCare {
						removed[i] = true
						changed = true
						break
					}
				}
			}
		}
	}
	// Equal cubes imply each other both ways; keep exactly one, preferring
	// a defined output over a don't-care if the two disagree.
	for i := range cubes {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(cubes); j++ {
			if removed[j] || !cubes[i].Equal(cubes[j]) {
				continue
			}
			if outs[i] == DontCare && outs[j] != DontCare {
				removed[i] = true
				break
			}
			removed[j] = true
		}
	}

	var survivors []Row
	var survivorCubes []Cube
	for i, c := range cubes {
		if removed[i] {
			continue
		}
		survivors = append(survivors, Row{In: c.Tuple(), Out: outs[i]})
		survivorCubes = append(survivorCubes, c)
	}

	survivors = append(survivors, fillDontCares(survivorCubes, n)...)

	sort.Slice(survivors, func(i, j int) bool {
		a := NewCube(survivors[i].In, n)
		b := NewCube(survivors[j].In, n)
		return a.Compare(b) < 0
	})

	return Table(survivors), nil
}

// checkConsistency rejects any pair of overlapping cubes that specify
// different defined outputs, independent of whether either implies the
// other.
func checkConsistency(cubes []Cube, outs []Tri) error {
	for i := 0; i < len(cubes); i++ {
		if outs[i] == DontCare {
			continue
		}
		for j := i + 1; j < len(cubes); j++ {
			if outs[j] == DontCare || outs[i] == outs[j] {
				continue
			}
			if overlaps(cubes[i], cubes[j]) {
				return newArgError(Inconsistent,
					fmt.Sprintf("rows %d and %d overlap with conflicting outputs", i, j))
			}
		}
	}
	return nil
}

// overlaps reports whether two cubes share at least one minterm.
func overlaps(a, b Cube) bool {
	shared := a.Mask & b.Mask
	return a.Value&shared == b.Value&shared
}

// fillDontCares returns new minterm-granularity rows, output don't-care,
// for every point of the 2^n input space not already covered by cubes.
func fillDontCares(cubes []Cube, n int) []Row {
	var out []Row
	total := uint64(1) << uint(n)
	for m := uint64(0); m < total; m++ {
		minterm := Cube{Value: m, Mask: fullMask(n), N: n}
		covered := false
		for _, c := range cubes {
			if minterm.Implies(c) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, Row{In: minterm.Tuple(), Out: DontCare})
		}
	}
	return out
}
