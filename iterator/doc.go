// Package iterator provides lazy, pull-based sequences and their combinators.
//
// An Iterator wraps a single Source. No work happens until a terminal such as
// Collect, Fold or Find pulls values; each stage pulls from the previous stage
// on demand and holds at most one element in flight. Once a Source reports done
// the Iterator stays done.
//
// Adapters that keep the element type are methods; adapters that change it
// are package functions, because Go methods cannot introduce type parameters:
//
//	evens := iterator.FromSlice([]int{1, 2, 3, 4}).Filter(func(n int) bool { return n%2 == 0 })
//	labels := iterator.Map(evens, strconv.Itoa).Collect() // ["2", "4"]
//
// option.Option and result.Result expose Iter() views that satisfy Source, so
// they plug directly into From, Chain and FlatMap.
//
// Iterators are single-owner values and are not safe for concurrent use.
// See package asynciter for the context-aware variant.
package iterator
