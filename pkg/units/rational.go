package units

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// GCD returns the non-negative greatest common divisor of m and n using
// Euclid's algorithm. GCD(0, 0) is 0.
func GCD[T constraints.Signed](m, n T) T {
	m, n = abs(m), abs(n)
	for n != 0 {
		m, n = n, m%n
	}
	return m
}

// LCM returns the non-negative least common multiple of m and n, or 0 when
// either operand is 0.
func LCM[T constraints.Signed](m, n T) T {
	if m == 0 || n == 0 {
		return 0
	}
	return abs(m) / GCD(m, n) * abs(n)
}
