package qmconfig

import (
	"github.com/pkg/errors"

	"github.com/mdbarlow/qmin/internal/qm"
)

// ToTable converts a TableSpec's YAML rows into a qm.Table, validating
// that every row's input tuple matches the declared variable count.
func (t TableSpec) ToTable() (qm.Table, error) {
	table := make(qm.Table, len(t.Rows))
	for i, row := range t.Rows {
		if len(row.In) != len(t.Vars) {
			return nil, errors.Errorf("qmconfig: table %q row %d has %d inputs, expected %d",
				t.Name, i, len(row.In), len(t.Vars))
		}
		in := make([]qm.Tri, len(row.In))
		for pos, v := range row.In {
			tri, err := qm.ParseTri(v)
			if err != nil {
				return nil, errors.Wrapf(err, "qmconfig: table %q row %d position %d", t.Name, i, pos)
			}
			in[pos] = tri
		}
		out, err := qm.ParseTri(row.Out)
		if err != nil {
			return nil, errors.Wrapf(err, "qmconfig: table %q row %d output", t.Name, i)
		}
		table[i] = qm.Row{In: in, Out: out}
	}
	return table, nil
}
