package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	km := New[Distance, Kilo](int64(3))

	m := Convert[One](km)
	var _ Quantity[Distance, One, int64] = m
	assert.Equal(t, int64(3000), m.Value())

	mm := Convert[Milli](km)
	assert.Equal(t, int64(3000000), mm.Value())

	assert.Equal(t, km, Convert[Kilo](mm))
	assert.Equal(t, km, Convert[Kilo](km))
}

func TestConvertTruncatesToCoarserInteger(t *testing.T) {
	assert.Equal(t, int64(1), Convert[Kilo](New[Distance, One](int64(1999))).Value())
	assert.Equal(t, int64(-1), Convert[Kilo](New[Distance, One](int64(-1999))).Value())
}

func TestConvertFloat(t *testing.T) {
	g := Convert[One](New[Mass, Kilo](0.25))
	assert.Equal(t, 250.0, g.Value())

	us := Convert[Micro](New[Time, Milli](1.5))
	assert.InDelta(t, 1500.0, us.Value(), 1e-9)
}

func TestConvertFloatRoundTrip(t *testing.T) {
	for _, v := range []float64{1.234, -0.5, 42, 1e-6} {
		km := New[Distance, Kilo](v)
		back := Convert[Kilo](Convert[Nano](km))
		assert.InDelta(t, v, back.Value(), 1e-12, "round trip of %g km", v)
	}
}

func TestConvertComposite(t *testing.T) {
	v := Div(New[Distance, Kilo](int64(36)), New[Time, One](int64(1)))

	mps := Convert[One](v)
	var _ Quantity[Velocity, One, int64] = mps
	assert.Equal(t, int64(36000), mps.Value())

	assert.True(t, Equal(v, mps))
}

func TestConvertPreservesEquality(t *testing.T) {
	for _, v := range []int64{0, 1, 7, 1000, -42} {
		q := New[Current, Milli](v)
		assert.True(t, Equal(q, Convert[Micro](q)))
		assert.True(t, Equal(q, Convert[Nano](q)))
	}
}
