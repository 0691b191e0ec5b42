package expr

import "github.com/mdbarlow/qmin/internal/enum"

// ToPredicate adapts a parsed Program into an enum.Predicate, so it can
// be driven straight through internal/enum.Enumerate.
func (prog *Program) ToPredicate() enum.Predicate {
	return func(r enum.Reader) bool {
		return prog.Eval(r)
	}
}
