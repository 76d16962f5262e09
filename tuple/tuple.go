// Package tuple holds the pair type produced by zip, enumerate and unzip.
package tuple

import "fmt"

// Pair is an ordered two-element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// New creates a Pair.
func New[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both elements.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a pair with the elements exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
