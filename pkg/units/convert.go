package units

// Convert re-expresses q at scale To. Only the scale may change; the
// dimension and storage type are fixed by the signature:
//
//	m := units.Convert[units.One](km)
//
// With N/D the ratio From/To the new value is q*N/D, multiplied before
// dividing. The factor is current over target, not target over current:
// only this direction keeps Equal(q, Convert[To](q)) true, which is what
// the cross-scale comparisons assume. Integer storage truncates when the result is not a whole number
// of the target unit; converting to a finer scale and back is exact.
func Convert[To Scale, D Dimension, From Scale, T Number](q Quantity[D, From, T]) Quantity[D, To, T] {
	x := crossRatio[From, To]()
	return Quantity[D, To, T]{value: q.value * T(x.Num) / T(x.Den)}
}
