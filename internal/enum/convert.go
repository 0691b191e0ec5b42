package enum

import "github.com/mdbarlow/qmin/internal/qm"

// ToQMRows adapts enumerator rows into qm.EnumRow, the narrow view the
// formula printers need. The conversion is a relabeling only; no
// enumerator state leaks into qm.
func ToQMRows(rows []Row) []qm.EnumRow {
	out := make([]qm.EnumRow, len(rows))
	for i, r := range rows {
		out[i] = qm.EnumRow{
			Observed: r.Observed,
			Output:   r.Output,
			Order:    r.Order,
		}
	}
	return out
}

// ToTable converts the enumerator's rows into a qm.Table ready for
// Canonicalize/Minimize, using names' registry order as each row's
// input position. A variable never observed on a given row is left as
// a don't-care at that position, which is exactly the reading
// Canonicalize already gives an absent literal.
func ToTable(rows []Row, names []string) qm.Table {
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}

	table := make(qm.Table, len(rows))
	for i, r := range rows {
		in := make([]qm.Tri, len(names))
		for j := range in {
			in[j] = qm.DontCare
		}
		for name, val := range r.Observed {
			if idx, ok := index[name]; ok {
				in[idx] = qm.TriFromBool(val)
			}
		}
		table[i] = qm.Row{In: in, Out: qm.TriFromBool(r.Output)}
	}
	return table
}
