package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		m, n, want int64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{-12, 18, 6},
		{12, -18, 6},
		{-12, -18, 6},
		{17, 13, 1},
		{1000000000000000000, 1000, 1000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.m, tt.n), "GCD(%d, %d)", tt.m, tt.n)
	}
}

func TestGCDIdempotent(t *testing.T) {
	pairs := [][2]int64{{12, -18}, {0, 0}, {-7, 0}, {17, 13}, {1 << 40, 6}}
	for _, p := range pairs {
		g := GCD(p[0], p[1])
		assert.Equal(t, g, GCD(g, 0), "GCD(GCD(%d, %d), 0)", p[0], p[1])
		assert.Equal(t, g, GCD(g, g), "GCD(GCD(%d, %d), itself)", p[0], p[1])
	}
}

func TestGCDSmallIntegers(t *testing.T) {
	assert.Equal(t, int8(4), GCD(int8(-8), int8(12)))
	assert.Equal(t, int32(1), GCD(int32(math.MaxInt32), int32(2)))
}

func TestLCM(t *testing.T) {
	tests := []struct {
		m, n, want int64
	}{
		{4, 6, 12},
		{6, 4, 12},
		{0, 6, 0},
		{6, 0, 0},
		{-4, 6, 12},
		{7, 7, 7},
		{1, 1000, 1000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LCM(tt.m, tt.n), "LCM(%d, %d)", tt.m, tt.n)
	}
}

func TestGCDLCMProduct(t *testing.T) {
	for m := int64(1); m <= 30; m++ {
		for n := int64(1); n <= 30; n++ {
			g, l := GCD(m, n), LCM(m, n)
			assert.Equal(t, m*n, g*l)
			assert.Zero(t, m%g)
			assert.Zero(t, l%n)
		}
	}
}
