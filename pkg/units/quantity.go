package units

// Quantity is a value of storage type T measured in a unit of dimension D
// at scale S. D and S are zero-size markers: a Quantity is exactly as large
// as a T and is copied by value.
type Quantity[D Dimension, S Scale, T Number] struct {
	value T
}

// New tags v with dimension D and scale S. T is inferred from v:
//
//	d := units.New[units.Distance, units.Kilo](2.5)
func New[D Dimension, S Scale, T Number](v T) Quantity[D, S, T] {
	return Quantity[D, S, T]{value: v}
}

// Value returns the stored number, expressed in the quantity's own scale.
func (q Quantity[D, S, T]) Value() T {
	return q.value
}

// Scale returns the numerator and denominator of the quantity's scale.
func (q Quantity[D, S, T]) Scale() (num, den int64) {
	r := q.Ratio()
	return r.Num, r.Den
}

// Ratio returns the quantity's scale relative to the SI base unit.
func (Quantity[D, S, T]) Ratio() Ratio {
	var s S
	return s.Ratio()
}

// Dimension returns the exponent vector named by D.
func (Quantity[D, S, T]) Dimension() Vector {
	var d D
	return d.Vector()
}

// Add returns q+o. Both operands must share dimension, scale and storage;
// any difference is rejected by the compiler. Use Convert to align scales.
func (q Quantity[D, S, T]) Add(o Quantity[D, S, T]) Quantity[D, S, T] {
	return Quantity[D, S, T]{value: q.value + o.value}
}

// Sub returns q-o under the same rules as Add.
func (q Quantity[D, S, T]) Sub(o Quantity[D, S, T]) Quantity[D, S, T] {
	return Quantity[D, S, T]{value: q.value - o.value}
}

// MulScalar returns q scaled by the bare number k. Dimension and scale are
// unchanged.
func (q Quantity[D, S, T]) MulScalar(k T) Quantity[D, S, T] {
	return Quantity[D, S, T]{value: q.value * k}
}

// DivScalar returns q divided by the bare number k. A zero k follows T's
// native division semantics.
func (q Quantity[D, S, T]) DivScalar(k T) Quantity[D, S, T] {
	return Quantity[D, S, T]{value: q.value / k}
}

// Neg returns -q.
func (q Quantity[D, S, T]) Neg() Quantity[D, S, T] {
	return Quantity[D, S, T]{value: -q.value}
}

// Abs returns |q|.
func (q Quantity[D, S, T]) Abs() Quantity[D, S, T] {
	if q.value < 0 {
		return q.Neg()
	}
	return q
}

// IsZero reports whether the stored value is zero.
func (q Quantity[D, S, T]) IsZero() bool {
	return q.value == 0
}

// AddAssign adds o to q in place and returns q.
func (q *Quantity[D, S, T]) AddAssign(o Quantity[D, S, T]) *Quantity[D, S, T] {
	q.value += o.value
	return q
}

// SubAssign subtracts o from q in place and returns q.
func (q *Quantity[D, S, T]) SubAssign(o Quantity[D, S, T]) *Quantity[D, S, T] {
	q.value -= o.value
	return q
}

// MulAssign multiplies q by k in place and returns q.
func (q *Quantity[D, S, T]) MulAssign(k T) *Quantity[D, S, T] {
	q.value *= k
	return q
}

// DivAssign divides q by k in place and returns q.
func (q *Quantity[D, S, T]) DivAssign(k T) *Quantity[D, S, T] {
	q.value /= k
	return q
}
