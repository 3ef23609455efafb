package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"meter", "metre", 2},
		{"Kilometer", "Kilometers", 1},
		{"µg", "ug", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevenshteinDistance(tt.a, tt.b))
			assert.Equal(t, tt.expected, LevenshteinDistance(tt.b, tt.a))
		})
	}
}

func TestFindSimilar(t *testing.T) {
	candidates := []string{"Meter", "Kilometer", "Millimeter", "Second", "Gram"}

	tests := []struct {
		name     string
		target   string
		opts     *FuzzyMatchOptions
		expected []string
	}{
		{"exact", "Meter", nil, []string{"Meter"}},
		{"british spelling", "kilometre", nil, []string{"Kilometer"}},
		{"case insensitive", "gram", nil, []string{"Gram"}},
		{"case sensitive", "gram", &FuzzyMatchOptions{MaxDistance: 0, CaseSensitive: true}, []string{"Gram"}},
		{"nearest first", "Metre", nil, []string{"Meter"}},
		{"too far", "Parsec", nil, []string{}},
		{"limit", "m", &FuzzyMatchOptions{MaxDistance: 10, MaxSuggestions: 2}, []string{"Gram", "Meter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindSimilar(tt.target, candidates, tt.opts))
		})
	}
}

func TestFindBestMatch(t *testing.T) {
	candidates := []string{"Second", "Meter"}
	assert.Equal(t, "Second", FindBestMatch("secnd", candidates, nil))
	assert.Equal(t, "", FindBestMatch("Ampere", candidates, nil))
}
