package ordered

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/dolthub/maphash"
	"golang.org/x/exp/constraints"
)

// Float wraps a floating point number so that it can be used as a map key,
// a set element or a sort key. It behaves like the wrapped value except that
// NaN is equal to any other NaN and sorts below all other values, including
// -Inf. Positive and negative zero are equal, as they are natively.
//
// The zero value is positive zero.
type Float[T constraints.Float] struct {
	v T
}

type (
	// F32 is the ordered wrapper for 32-bit floats.
	F32 = Float[float32]
	// F64 is the ordered wrapper for 64-bit floats.
	F64 = Float[float64]
)

var (
	_ fmt.Stringer               = F64{}
	_ fmt.Formatter              = F64{}
	_ encoding.BinaryMarshaler   = F64{}
	_ encoding.BinaryUnmarshaler = (*F64)(nil)
)

// Canonical bit patterns used as the key of the NaN and zero equivalence
// classes.
const (
	nanKey32 = 0x7fc00000
	nanKey64 = 0x7ff8000000000000
	zeroKey  = 0
)

// hasher is seeded once per process, like Go's own maps.
var hasher = maphash.NewHasher[uint64]()

// New wraps v.
func New[T constraints.Float](v T) Float[T] {
	return Float[T]{v: v}
}

// Value returns the wrapped value, unchanged.
func (f Float[T]) Value() T { return f.v }

// IsNaN reports whether f wraps a NaN, regardless of its sign or payload.
func (f Float[T]) IsNaN() bool { return f.v != f.v }

// Equal reports whether f and g are equal: either both are NaN, or they
// compare equal natively.
func (f Float[T]) Equal(g Float[T]) bool {
	if f.IsNaN() && g.IsNaN() {
		return true
	}
	return f.v == g.v
}

// Cmp returns negative if f < g, positive if f > g and zero if they are
// equal. It is defined for every pair of values.
func (f Float[T]) Cmp(g Float[T]) int {
	return floatCmp(f.v, g.v)
}

// Less reports whether f sorts before g.
func (f Float[T]) Less(g Float[T]) bool {
	return floatCmp(f.v, g.v) < 0
}

// Compare is Cmp as a function, suitable for slices.SortFunc and the like.
func Compare[T constraints.Float](a, b Float[T]) int {
	return floatCmp(a.v, b.v)
}

// floatCmp performs a three-valued comparison on floats, which are totally
// ordered with NaN < -Inf.
func floatCmp[T constraints.Float](x, y T) int {
	if x < y {
		return -1
	} else if x > y {
		return +1
	} else if x == y {
		return 0
	}

	// At least one operand is NaN.
	if x == x {
		return +1 // y is NaN
	} else if y == y {
		return -1 // x is NaN
	}
	return 0 // both NaN
}

// Key returns the canonical bit pattern of f: the quiet NaN bits for any NaN,
// zero for both signed zeros and the raw bits otherwise. Two values are Equal
// if and only if their keys are the same, so the key can be used directly as
// a Go map key.
func (f Float[T]) Key() uint64 {
	switch {
	case f.IsNaN():
		if is32[T]() {
			return nanKey32
		}
		return nanKey64
	case f.v == 0:
		return zeroKey
	}
	return bitsOf(f.v)
}

// Hash returns a hash of f consistent with Equal. The hash is only stable
// for the lifetime of the process.
func (f Float[T]) Hash() uint64 {
	return hasher.Hash(f.Key())
}

// String returns the native formatting of the wrapped value.
func (f Float[T]) String() string {
	return fmt.Sprint(f.v)
}

// Format implements fmt.Formatter by formatting the wrapped value with the
// same verb and flags.
func (f Float[T]) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), f.v)
}

// MarshalBinary encodes the raw bits of the wrapped value in big-endian
// order, on 4 or 8 bytes depending on its width.
func (f Float[T]) MarshalBinary() ([]byte, error) {
	if is32[T]() {
		return binary.BigEndian.AppendUint32(nil, uint32(bitsOf(f.v))), nil
	}
	return binary.BigEndian.AppendUint64(nil, bitsOf(f.v)), nil
}

// UnmarshalBinary decodes the encoding produced by MarshalBinary.
func (f *Float[T]) UnmarshalBinary(b []byte) error {
	n := int(unsafe.Sizeof(f.v))
	if len(b) != n {
		return fmt.Errorf("ordered: invalid binary length for %d-bit float: %d", n*8, len(b))
	}
	if n == 4 {
		f.v = T(math.Float32frombits(binary.BigEndian.Uint32(b)))
	} else {
		f.v = T(math.Float64frombits(binary.BigEndian.Uint64(b)))
	}
	return nil
}

func is32[T constraints.Float]() bool {
	var v T
	return unsafe.Sizeof(v) == 4
}

// bitsOf returns the IEEE-754 representation of v. Conversions are to the
// same width, so NaN payloads are preserved.
func bitsOf[T constraints.Float](v T) uint64 {
	if unsafe.Sizeof(v) == 4 {
		return uint64(math.Float32bits(float32(v)))
	}
	return math.Float64bits(float64(v))
}
