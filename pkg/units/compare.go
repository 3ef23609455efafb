package units

// Comparisons accept any two scales of the same dimension and storage type.
// With (N, D) the ratio S1/S2, a is compared with b as a*N against b*D, so
// integer storage stays exact. Products that overflow T follow T's native
// arithmetic.

func crossTerms[D Dimension, S1, S2 Scale, T Number](a Quantity[D, S1, T], b Quantity[D, S2, T]) (T, T) {
	x := crossRatio[S1, S2]()
	return a.value * T(x.Num), b.value * T(x.Den)
}

// Equal reports whether a and b denote the same physical amount.
func Equal[D Dimension, S1, S2 Scale, T Number](a Quantity[D, S1, T], b Quantity[D, S2, T]) bool {
	l, r := crossTerms(a, b)
	return l == r
}

// NotEqual is the negation of Equal.
func NotEqual[D Dimension, S1, S2 Scale, T Number](a Quantity[D, S1, T], b Quantity[D, S2, T]) bool {
	l, r := crossTerms(a, b)
	return l != r
}

// Less reports whether a is smaller than b.
func Less[D Dimension, S1, S2 Scale, T Number](a Quantity[D, S1, T], b Quantity[D, S2, T]) bool {
	l, r := crossTerms(a, b)
	return l < r
}

// LessEqual reports whether a is smaller than or equal to b.
func LessEqual[D Dimension, S1, S2 Scale, T Number](a Quantity[D, S1, T], b Quantity[D, S2, T]) bool {
	l, r := crossTerms(a, b)
	return l <= r
}

// Greater reports whether a is larger than b.
func Greater[D Dimension, S1, S2 Scale, T Number](a Quantity[D, S1, T], b Quantity[D, S2, T]) bool {
	l, r := crossTerms(a, b)
	return l > r
}

// GreaterEqual reports whether a is larger than or equal to b.
func GreaterEqual[D Dimension, S1, S2 Scale, T Number](a Quantity[D, S1, T], b Quantity[D, S2, T]) bool {
	l, r := crossTerms(a, b)
	return l >= r
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
// NaN operands compare as equal to everything; use Equal to detect them.
func Compare[D Dimension, S1, S2 Scale, T Number](a Quantity[D, S1, T], b Quantity[D, S2, T]) int {
	l, r := crossTerms(a, b)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}
