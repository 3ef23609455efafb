package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantica/units/pkg/units"
	"github.com/quantica/units/pkg/units/f"
	"github.com/quantica/units/pkg/units/i"
)

func TestCatalogAliases(t *testing.T) {
	var km i.Kilometer = i.Kilometers(5)
	var m units.Quantity[units.Distance, units.One, int64] = i.Meters(5000)

	assert.True(t, units.Equal(km, m))
	assert.Equal(t, "5 km", km.String())
	assert.Equal(t, "1.5 kg", f.Kilograms(1.5).String())
}

func TestKilogramIsKiloGram(t *testing.T) {
	assert.True(t, units.Equal(i.Kilograms(1), i.Grams(1000)))
	assert.Equal(t, i.Kilograms(2), units.Convert[units.Kilo](i.Grams(2000)))
}

func TestMixedScaleProducts(t *testing.T) {
	want := units.New[units.Prod[units.Prod[units.Distance, units.Time], units.Mass], units.Kilo](int64(100))

	a := units.Mul(units.Mul(i.Meters(100), i.Seconds(1)), i.Kilograms(1))
	b := units.Mul(units.Mul(i.Meters(100), i.Seconds(1)), i.Grams(1000))

	assert.True(t, units.Equal(a, want))
	assert.True(t, units.Equal(b, want))
}

func TestDerivedAliases(t *testing.T) {
	v := units.Div(f.Kilometers(90), f.Seconds(3600))

	var _ units.Quantity[units.Velocity, units.Per[units.Kilo, units.One], float64] = v
	assert.InDelta(t, 25.0, units.Convert[units.One](v).Value(), 1e-12)

	a := units.Div(units.Convert[units.One](v), f.Seconds(5))
	var _ units.Quantity[units.Acceleration, units.Per[units.One, units.One], float64] = a
	assert.InDelta(t, 5.0, a.Value(), 1e-12)

	force := units.Mul(f.Kilograms(2), a)
	var _ units.Quantity[units.Force, units.Times[units.Kilo, units.Per[units.One, units.One]], float64] = force
	assert.InDelta(t, 10.0, units.Convert[units.One](force).Value()/1000, 1e-12)
}

func TestOrderingAcrossPrefixes(t *testing.T) {
	durations := []i.Nanosecond{
		units.Convert[units.Nano](i.Microseconds(3)),
		units.Convert[units.Nano](i.Milliseconds(1)),
		i.Nanoseconds(2999),
	}
	assert.True(t, units.Less(durations[2], i.Microseconds(3)))
	assert.True(t, units.Greater(durations[1], i.Microseconds(999)))
	assert.True(t, units.Equal(durations[0], i.Microseconds(3)))
}
