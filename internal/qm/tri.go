package qm

import (
	"fmt"
	"strings"
)

// Tri is a tri-value logic symbol: a variable is true, false, or absent
// from a term ("don't-care" when it labels an output).
type Tri int8

const (
	Zero     Tri = 0
	One      Tri = 1
	DontCare Tri = -1
)

// Dash is an alias for DontCare matching the conventional "-" notation.
const Dash = DontCare

// Valid reports whether t is one of the three accepted tri-value symbols.
func (t Tri) Valid() bool {
	return t == Zero || t == One || t == DontCare
}

func (t Tri) String() string {
	switch t {
	case Zero:
		return "0"
	case One:
		return "1"
	case DontCare:
		return "-"
	default:
		return fmt.Sprintf("Tri(%d)", int8(t))
	}
}

// TriFromBool interns a boolean into a Tri.
func TriFromBool(b bool) Tri {
	if b {
		return One
	}
	return Zero
}

// ParseTri accepts the synonyms documented by the external contract:
// bool, the integers 0/1, and the strings "0", "1", "-", "x", "dc",
// "true", "false" (case-insensitive) for don't-care and the booleans.
func ParseTri(v any) (Tri, error) {
	switch x := v.(type) {
	case Tri:
		if !x.Valid() {
			return 0, fmt.Errorf("qm: unexpected tri value %d", int8(x))
		}
		return x, nil
	case bool:
		return TriFromBool(x), nil
	case int:
		return triFromInt(x)
	case int8:
		return triFromInt(int(x))
	case int64:
		return triFromInt(int(x))
	case float64:
		return triFromInt(int(x))
	case string:
		return triFromString(x)
	default:
		return 0, fmt.Errorf("qm: unexpected value type %T", v)
	}
}

func triFromInt(n int) (Tri, error) {
	switch n {
	case 0:
		return Zero, nil
	case 1:
		return One, nil
	case -1:
		return DontCare, nil
	default:
		return 0, fmt.Errorf("qm: unexpected integer value %d", n)
	}
}

func triFromString(s string) (Tri, error) {
	switch strings.ToLower(s) {
	case "0", "false":
		return Zero, nil
	case "1", "true":
		return One, nil
	case "-", "x", "dc", "don't-care", "dontcare":
		return DontCare, nil
	default:
		return 0, fmt.Errorf("qm: unexpected value %q", s)
	}
}
