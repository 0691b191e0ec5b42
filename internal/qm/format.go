package qm

import "strings"

// EnumRow is the minimal view format.go needs of an enumerator row: the
// assignment actually observed on one predicate invocation, its output,
// and the order in which that invocation newly bound its variables
// (variables already bound by the resumed plan are not listed).
type EnumRow struct {
	Observed map[string]bool
	Output   bool
	Order    []string
}

// DNF renders a disjunctive normal form over the enumerator's raw rows:
// one term per row whose output is true, literals ordered by first
// global observation (allNames), terms in row order.
func DNF(allNames []string, rows []EnumRow) string {
	return rawFormula(allNames, rows, true, " | ", false)
}

// CNF renders a conjunctive normal form over the enumerator's raw rows:
// one clause per row whose output is false, literals inverted relative
// to DNF, multi-literal clauses parenthesized.
func CNF(allNames []string, rows []EnumRow) string {
	return rawFormula(allNames, rows, false, " & ", true)
}

func rawFormula(allNames []string, rows []EnumRow, polarity bool, joiner string, cnf bool) string {
	var terms []string
	for _, row := range rows {
		if row.Output != polarity {
			continue
		}
		var lits []string
		for _, name := range allNames {
			val, ok := row.Observed[name]
			if !ok {
				continue
			}
			lits = append(lits, literal(name, val, cnf))
		}
		terms = append(terms, joinTerm(lits, cnf))
	}
	if len(terms) == 0 {
		if polarity {
			return "false"
		}
		return "true"
	}
	return strings.Join(terms, joiner)
}

func literal(name string, val bool, invert bool) string {
	pos := val
	if invert {
		pos = !val
	}
	if pos {
		return name
	}
	return "!" + name
}

func joinTerm(lits []string, parenthesizeIfMulti bool) string {
	if len(lits) == 0 {
		return "true"
	}
	if parenthesizeIfMulti && len(lits) > 1 {
		return "(" + strings.Join(lits, " | ") + ")"
	}
	return strings.Join(lits, "&")
}

// ToEnumRows adapts a canonical Table into the row view DNF/CNF expect,
// for callers minimizing an explicit table rather than an enumerator
// run. Don't-care rows carry no truth value and are dropped; defined
// positions become Observed entries keyed by names[pos].
func (t Table) ToEnumRows(names []string) []EnumRow {
	var rows []EnumRow
	for _, r := range t {
		if r.Out == DontCare {
			continue
		}
		observed := make(map[string]bool)
		for pos, v := range r.In {
			if v == DontCare || pos >= len(names) {
				continue
			}
			observed[names[pos]] = v == One
		}
		rows = append(rows, EnumRow{Observed: observed, Output: r.Out == One})
	}
	return rows
}

// MinimalFormula renders QM's minimum cover: one term per cube with a
// literal per 1/0 position (0 prefixed with "!"), joined by "&"; terms
// joined by " | ". A single all-dash term prints as "true"; no terms
// prints as "false".
func MinimalFormula(names []string, cubes []Cube) string {
	if len(cubes) == 0 {
		return "false"
	}
	terms := make([]string, len(cubes))
	for i, c := range cubes {
		var lits []string
		for pos := 0; pos < c.N && pos < len(names); pos++ {
			switch c.At(pos) {
			case One:
				lits = append(lits, names[pos])
			case Zero:
				lits = append(lits, "!"+names[pos])
			}
		}
		terms[i] = joinTerm(lits, false)
	}
	return strings.Join(terms, " | ")
}
