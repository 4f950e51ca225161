package floatmap_test

import (
	"math"
	"testing"

	"github.com/mna/ordfloat/lang/floatmap"
	"github.com/mna/ordfloat/lang/ordered"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOfNaNs(t *testing.T) {
	s := floatmap.NewSet[float64](0)
	assert.True(t, s.Add(ordered.New(math.Float64frombits(0x7ff8000000000000))))
	assert.False(t, s.Add(ordered.New(math.Float64frombits(0xfff8000000000123))))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(ordered.New(math.NaN())))

	s32 := floatmap.NewSet[float32](2)
	s32.Add(ordered.New(float32(math.NaN())))
	s32.Add(ordered.New(math.Float32frombits(0xffc00001)))
	assert.Equal(t, 1, s32.Len())
}

func TestSetSignedZero(t *testing.T) {
	s := floatmap.NewSet[float64](0)
	negZero := ordered.New(math.Copysign(0, -1))
	require.True(t, s.Add(negZero))
	assert.False(t, s.Add(ordered.New(0.0)))
	assert.True(t, s.Has(ordered.New(0.0)))

	vals := s.Values()
	require.Len(t, vals, 1)
	assert.True(t, math.Signbit(vals[0].Value()), "first inserted zero is kept")

	assert.True(t, s.Remove(ordered.New(0.0)))
	assert.False(t, s.Has(negZero))
	assert.Equal(t, 0, s.Len())
}

func TestSetValuesSorted(t *testing.T) {
	s := floatmap.NewSet[float64](8)
	for _, v := range []float64{1, math.NaN(), math.Copysign(0, -1), 0, -1, math.Inf(1), math.Inf(-1), 1} {
		s.Add(ordered.New(v))
	}
	vals := s.Values()
	require.Len(t, vals, 6)
	assert.True(t, vals[0].IsNaN())
	got := ordered.Unwrap(vals[1:])
	assert.Equal(t, []float64{math.Inf(-1), -1, 0, 1, math.Inf(1)}, got)
}

func TestMap(t *testing.T) {
	m := floatmap.NewMap[float32, string](0)
	m.Put(ordered.New(math.Float32frombits(0x7fc00000)), "nan")
	m.Put(ordered.New(float32(1.5)), "one and a half")
	m.Put(ordered.New(math.Float32frombits(0xffc00042)), "other nan")
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get(ordered.New(float32(math.NaN())))
	require.True(t, ok)
	assert.Equal(t, "other nan", v)

	_, ok = m.Get(ordered.New(float32(2)))
	assert.False(t, ok)

	keys := m.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, uint32(0x7fc00000), math.Float32bits(keys[0].Value()), "first inserted NaN is kept")
	assert.Equal(t, float32(1.5), keys[1].Value())

	var n int
	m.Iter(func(k ordered.F32, v string) bool {
		n++
		assert.True(t, k.IsNaN() || k.Value() == 1.5)
		return false
	})
	assert.Equal(t, 2, n)

	n = 0
	m.Iter(func(ordered.F32, string) bool {
		n++
		return true
	})
	assert.Equal(t, 1, n)

	assert.True(t, m.Delete(ordered.New(float32(math.NaN()))))
	assert.False(t, m.Delete(ordered.New(float32(math.NaN()))))
	assert.False(t, m.Has(ordered.New(float32(math.NaN()))))
	assert.Equal(t, 1, m.Len())
}

func TestMapCount(t *testing.T) {
	m := floatmap.NewMap[float64, int](0)
	for _, v := range []float64{0, math.Copysign(0, -1), math.NaN(), -math.NaN(), 2, 2, 3} {
		k := ordered.New(v)
		n, _ := m.Get(k)
		m.Put(k, n+1)
	}

	keys := m.Keys()
	require.Len(t, keys, 4)
	counts := make([]int, len(keys))
	for i, k := range keys {
		counts[i], _ = m.Get(k)
	}
	assert.Equal(t, []int{2, 2, 2, 1}, counts)
	assert.True(t, keys[0].IsNaN())
	assert.False(t, math.Signbit(keys[1].Value()))
}
