package units

// Mul returns a*b. Dimension exponents add and scale ratios multiply, both
// at the type level; the value is the plain product in T.
func Mul[D1, D2 Dimension, S1, S2 Scale, T Number](a Quantity[D1, S1, T], b Quantity[D2, S2, T]) Quantity[Prod[D1, D2], Times[S1, S2], T] {
	return Quantity[Prod[D1, D2], Times[S1, S2], T]{value: a.value * b.value}
}

// Div returns a/b with dimension Quot[D1, D2] and scale Per[S1, S2].
//
// A zero divisor is not checked: float storage yields ±Inf or NaN and
// integer storage panics with the runtime's division by zero, exactly as the
// bare T operation would.
func Div[D1, D2 Dimension, S1, S2 Scale, T Number](a Quantity[D1, S1, T], b Quantity[D2, S2, T]) Quantity[Quot[D1, D2], Per[S1, S2], T] {
	return Quantity[Quot[D1, D2], Per[S1, S2], T]{value: a.value / b.value}
}

// Commute reorders the factors of a product dimension.
func Commute[A, B Dimension, S Scale, T Number](q Quantity[Prod[A, B], S, T]) Quantity[Prod[B, A], S, T] {
	return Quantity[Prod[B, A], S, T]{value: q.value}
}

// AssocLeft regroups A·(B·C) as (A·B)·C.
func AssocLeft[A, B, C Dimension, S Scale, T Number](q Quantity[Prod[A, Prod[B, C]], S, T]) Quantity[Prod[Prod[A, B], C], S, T] {
	return Quantity[Prod[Prod[A, B], C], S, T]{value: q.value}
}

// AssocRight regroups (A·B)·C as A·(B·C).
func AssocRight[A, B, C Dimension, S Scale, T Number](q Quantity[Prod[Prod[A, B], C], S, T]) Quantity[Prod[A, Prod[B, C]], S, T] {
	return Quantity[Prod[A, Prod[B, C]], S, T]{value: q.value}
}
