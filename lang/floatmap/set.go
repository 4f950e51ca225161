package floatmap

import (
	"fmt"

	"github.com/mna/ordfloat/lang/ordered"
	"golang.org/x/exp/constraints"
)

// A Set is a set of ordered floats.
type Set[T constraints.Float] struct {
	m *Map[T, struct{}]
}

// NewSet returns a set with initial capacity for at least size items.
func NewSet[T constraints.Float](size int) *Set[T] {
	return &Set[T]{m: NewMap[T, struct{}](size)}
}

func (s *Set[T]) String() string { return fmt.Sprintf("floatset(%p)", s) }
func (s *Set[T]) Len() int       { return s.m.Len() }

// Add adds f to the set and reports whether it was not already present.
func (s *Set[T]) Add(f ordered.Float[T]) bool {
	if s.m.Has(f) {
		return false
	}
	s.m.Put(f, struct{}{})
	return true
}

func (s *Set[T]) Has(f ordered.Float[T]) bool    { return s.m.Has(f) }
func (s *Set[T]) Remove(f ordered.Float[T]) bool { return s.m.Delete(f) }

// Values returns the elements of the set in ascending order.
func (s *Set[T]) Values() []ordered.Float[T] {
	return s.m.Keys()
}
