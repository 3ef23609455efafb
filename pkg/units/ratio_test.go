package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicErr returns the error fn panics with, or nil
func panicErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestNewRatio(t *testing.T) {
	tests := []struct {
		num, den int64
		want     Ratio
	}{
		{1000, 1, Ratio{1000, 1}},
		{10, 100, Ratio{1, 10}},
		{6, -4, Ratio{-3, 2}},
		{-6, -4, Ratio{3, 2}},
		{0, 7, Ratio{0, 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewRatio(tt.num, tt.den))
	}
}

func TestNewRatioZeroDenominator(t *testing.T) {
	err := panicErr(func() { NewRatio(1, 0) })
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

// fiveSevenths and twoThirds are scales outside the decimal prefixes
type fiveSevenths struct{}

func (fiveSevenths) Ratio() Ratio { return Ratio{5, 7} }

type twoThirds struct{}

func (twoThirds) Ratio() Ratio { return Ratio{2, 3} }

func TestRatioMulDivNonDecimal(t *testing.T) {
	a, b := fiveSevenths{}.Ratio(), twoThirds{}.Ratio()

	assert.Equal(t, Ratio{10, 21}, a.Mul(b))
	assert.Equal(t, Ratio{15, 14}, a.Div(b))
	assert.Equal(t, Ratio{10, 21}, Times[fiveSevenths, twoThirds]{}.Ratio())
	assert.Equal(t, Ratio{15, 14}, Per[fiveSevenths, twoThirds]{}.Ratio())
}

func TestRatioMul(t *testing.T) {
	kilo, milli := Kilo{}.Ratio(), Milli{}.Ratio()

	assert.Equal(t, Ratio{1, 1}, kilo.Mul(milli))
	assert.Equal(t, Ratio{1000000, 1}, kilo.Mul(kilo))
	assert.Equal(t, Ratio{1, 1000000}, milli.Mul(milli))
	assert.Equal(t, Ratio{3, 4}, Ratio{3, 2}.Mul(Ratio{1, 2}))
}

func TestRatioMulCrossReduces(t *testing.T) {
	exa, atto := Exa{}.Ratio(), Atto{}.Ratio()

	assert.Equal(t, Ratio{1, 1}, exa.Mul(atto))

	// 2^62 * 3 overflows before reduction
	wide := Ratio{1 << 62, 3}
	assert.Equal(t, Ratio{1, 1}, wide.Mul(Ratio{3, 1 << 62}))
	assert.Equal(t, Ratio{1 << 62, 1}, wide.Mul(Ratio{3, 1}))
}

func TestRatioMulOverflow(t *testing.T) {
	exa := Exa{}.Ratio()

	_, err := exa.MulChecked(exa)
	assert.ErrorIs(t, err, ErrScaleOverflow)

	err = panicErr(func() { exa.Mul(exa) })
	assert.ErrorIs(t, err, ErrScaleOverflow)

	_, err = Atto{}.Ratio().MulChecked(Atto{}.Ratio())
	assert.ErrorIs(t, err, ErrScaleOverflow)
}

func TestRatioDiv(t *testing.T) {
	kilo, milli := Kilo{}.Ratio(), Milli{}.Ratio()

	assert.Equal(t, Ratio{1000000, 1}, kilo.Div(milli))
	assert.Equal(t, Ratio{1, 1000000}, milli.Div(kilo))
	assert.Equal(t, Ratio{1, 1}, kilo.Div(kilo))
	assert.Equal(t, Ratio{-2, 3}, Ratio{2, 1}.Div(Ratio{-3, 1}))

	_, err := kilo.DivChecked(Ratio{0, 1})
	assert.ErrorIs(t, err, ErrZeroDenominator)

	_, err = Exa{}.Ratio().DivChecked(Atto{}.Ratio())
	assert.ErrorIs(t, err, ErrScaleOverflow)
}

func TestRatioCompare(t *testing.T) {
	assert.True(t, Ratio{1, 2}.Equal(Ratio{2, 4}))
	assert.False(t, Ratio{1, 2}.Equal(Ratio{1, 3}))
	assert.Equal(t, -1, Ratio{1, 3}.Cmp(Ratio{1, 2}))
	assert.Equal(t, 1, Ratio{1, 1}.Cmp(Ratio{999, 1000}))
	assert.Equal(t, 0, Ratio{-1, 2}.Cmp(Ratio{1, -2}))

	err := panicErr(func() { Ratio{1, 0}.Cmp(Ratio{1, 1}) })
	assert.True(t, errors.Is(err, ErrZeroDenominator))
}

func TestRatioPredicates(t *testing.T) {
	assert.True(t, One{}.Ratio().IsOne())
	assert.True(t, Ratio{3, 3}.IsOne())
	assert.False(t, Ratio{0, 0}.IsOne())
	assert.False(t, Kilo{}.Ratio().IsOne())

	assert.True(t, Milli{}.Ratio().Valid())
	assert.False(t, Ratio{0, 1}.Valid())
	assert.False(t, Ratio{-1, 1}.Valid())
	assert.False(t, Ratio{1, 0}.Valid())
}

func TestRatioFormatting(t *testing.T) {
	assert.Equal(t, "1000/1", Kilo{}.Ratio().String())
	assert.Equal(t, "1/1000", Milli{}.Ratio().String())
	assert.InDelta(t, 0.001, Milli{}.Ratio().Float64(), 1e-18)
	assert.Equal(t, 1e18, Exa{}.Ratio().Float64())
}

func TestPrefixRatiosAreReduced(t *testing.T) {
	prefixes := []Scale{Atto{}, Femto{}, Pico{}, Nano{}, Micro{}, Milli{}, Centi{}, Deci{},
		Deca{}, Hecto{}, Kilo{}, Mega{}, Giga{}, Tera{}, Peta{}, Exa{}}

	prev := Ratio{0, 1}
	for _, p := range prefixes {
		r := p.Ratio()
		require.True(t, r.Valid(), "%T", p)
		assert.Equal(t, NewRatio(r.Num, r.Den), r, "%T is not in lowest terms", p)
		assert.Equal(t, 1, r.Cmp(prev), "%T is not larger than the previous prefix", p)
		prev = r
	}
}

func TestCompositeScales(t *testing.T) {
	assert.Equal(t, Ratio{1000, 1}, Times[Kilo, One]{}.Ratio())
	assert.Equal(t, Ratio{1, 1}, Times[Kilo, Milli]{}.Ratio())
	assert.Equal(t, Ratio{1000000, 1}, Per[Kilo, Milli]{}.Ratio())
	assert.Equal(t, Ratio{1, 1000}, Per[One, Kilo]{}.Ratio())
	assert.Equal(t, Ratio{1, 1}, Per[Times[Kilo, Milli], One]{}.Ratio())

	assert.Equal(t, Ratio{1000, 1}, crossRatio[Kilo, One]())
	assert.Equal(t, Ratio{1, 1000000}, crossRatio[Milli, Kilo]())
}
