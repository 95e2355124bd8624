// Package clist implements a small immutable sequence with O(1) prepend and
// O(1) concatenation, flattened into a slice only on demand. It backs
// Message's expected-label set, where many values are built along
// backtracking paths that are discarded unread, and the ones that do survive
// are walked exactly once to render an error.
package clist

// List is an immutable sequence of T. The zero value is not valid; use Nil.
type List[T any] struct {
	len  int
	walk func(yield func(T))
}

// Nil returns the empty list.
func Nil[T any]() List[T] {
	return List[T]{walk: func(func(T)) {}}
}

// One returns a single-element list.
func One[T any](v T) List[T] {
	return List[T]{len: 1, walk: func(yield func(T)) { yield(v) }}
}

// Cons prepends v to l, in O(1).
func (l List[T]) Cons(v T) List[T] {
	rest := l.walk
	return List[T]{
		len: l.len + 1,
		walk: func(yield func(T)) {
			yield(v)
			rest(yield)
		},
	}
}

// Concat appends other after l, in O(1).
func (l List[T]) Concat(other List[T]) List[T] {
	a, b := l.walk, other.walk
	return List[T]{
		len: l.len + other.len,
		walk: func(yield func(T)) {
			a(yield)
			b(yield)
		},
	}
}

// Len returns the number of elements, in O(1).
func (l List[T]) Len() int { return l.len }

// ToSlice walks the list once and materializes it in order.
func (l List[T]) ToSlice() []T {
	out := make([]T, 0, l.len)
	l.walk(func(v T) { out = append(out, v) })
	return out
}
