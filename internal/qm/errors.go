package qm

import "github.com/pkg/errors"

// ErrorKind distinguishes the failure modes Canonicalize can report. All
// of them surface as a single ArgumentError family.
type ErrorKind int

const (
	// DifferentLength: a table row's tuple length disagrees with the
	// first-seen length.
	DifferentLength ErrorKind = iota
	// BadValue: an input or output value falls outside {0, 1, "-"} and
	// its accepted synonyms.
	BadValue
	// Inconsistent: two overlapping cubes specify distinct defined
	// outputs.
	Inconsistent
)

func (k ErrorKind) String() string {
	switch k {
	case DifferentLength:
		return "different input length"
	case BadValue:
		return "unexpected value"
	case Inconsistent:
		return "inconsistent table"
	default:
		return "argument error"
	}
}

// ArgumentError is the single error family Canonicalize raises.
type ArgumentError struct {
	Kind ErrorKind
	msg  string
}

func (e *ArgumentError) Error() string {
	return e.msg
}

func newArgError(kind ErrorKind, msg string) error {
	return errors.WithStack(&ArgumentError{Kind: kind, msg: msg})
}

// AsArgumentError recovers the *ArgumentError wrapped (possibly several
// layers deep, via github.com/pkg/errors) in err.
func AsArgumentError(err error) (*ArgumentError, bool) {
	var ae *ArgumentError
	ok := errors.As(err, &ae)
	return ae, ok
}
