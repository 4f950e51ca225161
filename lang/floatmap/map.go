// Package floatmap implements hash maps and sets keyed by ordered floats.
//
// Keys follow the equality of ordered.Float: all NaNs are the same key, and
// so are +0 and -0. The first value inserted for a key is the one kept as
// representative, subsequent equal keys only update the associated value.
package floatmap

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/ordfloat/lang/ordered"
	"golang.org/x/exp/constraints"
)

// A Map is a hash map keyed by ordered floats. If you know the exact final
// number of entries, it is more efficient to provide it to NewMap. The zero
// value is not usable, use NewMap.
type Map[T constraints.Float, V any] struct {
	m *swiss.Map[uint64, entry[T, V]]
}

type entry[T constraints.Float, V any] struct {
	key ordered.Float[T]
	val V
}

// NewMap returns a map with initial capacity for at least size items.
func NewMap[T constraints.Float, V any](size int) *Map[T, V] {
	m := swiss.NewMap[uint64, entry[T, V]](uint32(size))
	return &Map[T, V]{m: m}
}

func (m *Map[T, V]) String() string { return fmt.Sprintf("floatmap(%p)", m) }

// Len returns the number of keys in the map.
func (m *Map[T, V]) Len() int { return m.m.Count() }

// Get returns the value associated with k.
func (m *Map[T, V]) Get(k ordered.Float[T]) (V, bool) {
	e, ok := m.m.Get(k.Key())
	return e.val, ok
}

// Has reports whether k is in the map.
func (m *Map[T, V]) Has(k ordered.Float[T]) bool {
	return m.m.Has(k.Key())
}

// Put associates v with k. If an equal key is already present, only its
// value is replaced.
func (m *Map[T, V]) Put(k ordered.Float[T], v V) {
	hk := k.Key()
	if e, ok := m.m.Get(hk); ok {
		k = e.key
	}
	m.m.Put(hk, entry[T, V]{key: k, val: v})
}

// Delete removes k from the map and reports whether it was present.
func (m *Map[T, V]) Delete(k ordered.Float[T]) bool {
	return m.m.Delete(k.Key())
}

// Iter calls fn for each key and value in the map, in unspecified order,
// until fn returns true.
func (m *Map[T, V]) Iter(fn func(k ordered.Float[T], v V) (stop bool)) {
	m.m.Iter(func(_ uint64, e entry[T, V]) bool {
		return fn(e.key, e.val)
	})
}

// Keys returns the keys of the map in ascending order.
func (m *Map[T, V]) Keys() []ordered.Float[T] {
	keys := make([]ordered.Float[T], 0, m.Len())
	m.m.Iter(func(_ uint64, e entry[T, V]) bool {
		keys = append(keys, e.key)
		return false
	})
	ordered.Sort(keys)
	return keys
}
