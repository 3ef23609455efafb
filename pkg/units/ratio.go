package units

import (
	"fmt"
	"math"
	"math/big"
)

// Ratio is a scale factor Num/Den relative to the SI base unit of a
// dimension. Ratios produced by this package are always in lowest terms
// with a positive denominator.
type Ratio struct {
	Num int64
	Den int64
}

// NewRatio returns num/den in lowest terms. It panics with
// ErrZeroDenominator when den is 0.
func NewRatio(num, den int64) Ratio {
	r, err := reduce(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

func reduce(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, fmt.Errorf("%w: %d/%d", ErrZeroDenominator, num, den)
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := GCD(num, den); g > 1 {
		num, den = num/g, den/g
	}
	return Ratio{Num: num, Den: den}, nil
}

// Mul returns r*o in lowest terms. It panics with ErrScaleOverflow when the
// reduced product does not fit in an int64.
func (r Ratio) Mul(o Ratio) Ratio {
	p, err := r.MulChecked(o)
	if err != nil {
		panic(err)
	}
	return p
}

// Div returns r/o in lowest terms. It panics with ErrScaleOverflow when the
// reduced quotient does not fit in an int64, and with ErrZeroDenominator
// when o is zero.
func (r Ratio) Div(o Ratio) Ratio {
	q, err := r.DivChecked(o)
	if err != nil {
		panic(err)
	}
	return q
}

// MulChecked is Mul with the failure returned instead of raised.
//
// Operands are reduced crosswise before multiplying, so the product of two
// reduced ratios is itself reduced and only overflows when the exact result
// is not representable.
func (r Ratio) MulChecked(o Ratio) (Ratio, error) {
	a, err := reduce(r.Num, r.Den)
	if err != nil {
		return Ratio{}, err
	}
	b, err := reduce(o.Num, o.Den)
	if err != nil {
		return Ratio{}, err
	}

	g1 := GCD(a.Num, b.Den)
	g2 := GCD(b.Num, a.Den)

	num, ok := mulInt64(a.Num/g1, b.Num/g2)
	if !ok {
		return Ratio{}, fmt.Errorf("%w: %s * %s", ErrScaleOverflow, a, b)
	}
	den, ok := mulInt64(a.Den/g2, b.Den/g1)
	if !ok {
		return Ratio{}, fmt.Errorf("%w: %s * %s", ErrScaleOverflow, a, b)
	}
	return reduce(num, den)
}

// DivChecked is Div with the failure returned instead of raised.
func (r Ratio) DivChecked(o Ratio) (Ratio, error) {
	inv, err := o.InverseChecked()
	if err != nil {
		return Ratio{}, err
	}
	return r.MulChecked(inv)
}

// InverseChecked returns Den/Num, or ErrZeroDenominator when r is zero.
func (r Ratio) InverseChecked() (Ratio, error) {
	return reduce(r.Den, r.Num)
}

// Equal reports whether r and o denote the same rational number.
// Unreduced ratios are normalized first.
func (r Ratio) Equal(o Ratio) bool {
	return r.Cmp(o) == 0
}

// Cmp compares r and o and returns -1, 0 or +1.
func (r Ratio) Cmp(o Ratio) int {
	return r.rat().Cmp(o.rat())
}

// IsOne reports whether r is the unit ratio 1/1.
func (r Ratio) IsOne() bool {
	return r.Num != 0 && r.Num == r.Den
}

// Valid reports whether r can serve as a scale: both terms positive.
func (r Ratio) Valid() bool {
	return r.Num > 0 && r.Den > 0
}

// Float64 returns the nearest float64 to r.
func (r Ratio) Float64() float64 {
	f, _ := r.rat().Float64()
	return f
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func (r Ratio) rat() *big.Rat {
	if r.Den == 0 {
		panic(fmt.Errorf("%w: %d/%d", ErrZeroDenominator, r.Num, r.Den))
	}
	return new(big.Rat).SetFrac64(r.Num, r.Den)
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}
