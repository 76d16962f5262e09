// Package ordering provides the three-way comparison result used by the
// min/max family of iterator operations.
package ordering

import "cmp"

// Ordering is the result of comparing two values.
type Ordering int

const (
	// Less means the left operand sorts before the right one.
	Less Ordering = -1
	// Equal means both operands sort at the same position.
	Equal Ordering = 0
	// Greater means the left operand sorts after the right one.
	Greater Ordering = 1
)

// Compare compares two ordered values.
// NaN sorts before every other float, matching cmp.Compare.
func Compare[T cmp.Ordered](a, b T) Ordering {
	return Ordering(cmp.Compare(a, b))
}

// FromInt normalizes any three-way integer (strings.Compare, bytes.Compare, ...)
// into an Ordering.
func FromInt(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering { return -o }

// Then returns o unless it is Equal, in which case other decides.
func (o Ordering) Then(other Ordering) Ordering {
	if o != Equal {
		return o
	}
	return other
}

func (o Ordering) IsLt() bool { return o == Less }
func (o Ordering) IsLe() bool { return o != Greater }
func (o Ordering) IsEq() bool { return o == Equal }
func (o Ordering) IsNe() bool { return o != Equal }
func (o Ordering) IsGt() bool { return o == Greater }
func (o Ordering) IsGe() bool { return o != Less }

// String returns the variant name.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(invalid)"
	}
}
