package eda

import "cmp"

// Set is a set of comparable values.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet returns a set containing the given elements.
func NewSet[T cmp.Ordered](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add adds x to s.
func (s Set[T]) Add(x T) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s Set[T]) Contains(x T) bool {
	_, ok := s[x]
	return ok
}
