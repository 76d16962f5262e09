package iterator

import "github.com/kbukum/seqkit/option"

// Peekable is an iterator with one value of lookahead.
type Peekable[T any] struct {
	source Source[T]
	peeked option.Option[T]
	held   bool
}

// Next returns the peeked value if there is one, otherwise pulls from the source.
func (p *Peekable[T]) Next() (T, bool) {
	if p.held {
		p.held = false
		return p.peeked.Get()
	}
	return p.source.Next()
}

// Peek returns the next value without consuming it.
func (p *Peekable[T]) Peek() option.Option[T] {
	if !p.held {
		p.peeked = option.FromPair(p.source.Next())
		p.held = true
	}
	return p.peeked
}

// NextIf consumes and returns the next value only if it satisfies pred.
func (p *Peekable[T]) NextIf(pred func(T) bool) option.Option[T] {
	next := p.Peek()
	if next.IsSomeAnd(pred) {
		p.held = false
		return next
	}
	return option.None[T]()
}

// Iter returns p as a chainable Iterator.
func (p *Peekable[T]) Iter() *Iterator[T] {
	return From[T](p)
}
