package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantica/units/pkg/units"
)

func TestTokenize(t *testing.T) {
	tokens, err := tokenize("(Mass * Distance)/Time2")
	require.NoError(t, err)

	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	assert.Equal(t, []TokenType{
		TOKEN_LPAREN, TOKEN_IDENT, TOKEN_STAR, TOKEN_IDENT, TOKEN_RPAREN, TOKEN_SLASH, TOKEN_IDENT, TOKEN_EOF,
	}, types)
	assert.Equal(t, "Time2", tokens[6].Lexeme)
	assert.Equal(t, 18, tokens[6].Offset)

	_, err = tokenize("Mass + Time")
	assert.ErrorIs(t, err, ErrBadExpression)
}

func TestParseExpr(t *testing.T) {
	tests := []struct {
		src    string
		str    string
		goType string
	}{
		{"Distance", "Distance", "units.Distance"},
		{"Distance / Time", "(Distance / Time)", "units.Quot[units.Distance, units.Time]"},
		{"Mass * Distance / Time", "((Mass * Distance) / Time)", "units.Quot[units.Prod[units.Mass, units.Distance], units.Time]"},
		{"Mass * (Distance / Time)", "(Mass * (Distance / Time))", "units.Prod[units.Mass, units.Quot[units.Distance, units.Time]]"},
		{"((Angle))", "Angle", "units.Angle"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := ParseExpr(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.str, e.String())
			assert.Equal(t, tt.goType, e.GoType("units."))
		})
	}
}

func TestParseExprErrors(t *testing.T) {
	for _, src := range []string{"", "Distance /", "* Time", "(Mass", "Mass)", "Mass Time", "Mass - Time"} {
		t.Run(src, func(t *testing.T) {
			_, err := ParseExpr(src)
			assert.ErrorIs(t, err, ErrBadExpression)
		})
	}
}

func TestEval(t *testing.T) {
	lookup := func(name string) (units.Vector, bool) {
		switch name {
		case "Distance":
			return units.Unit(units.AxisDistance), true
		case "Time":
			return units.Unit(units.AxisTime), true
		case "Mass":
			return units.Unit(units.AxisMass), true
		}
		return units.Vector{}, false
	}

	e, err := ParseExpr("Mass * Distance / Time / Time")
	require.NoError(t, err)
	v, err := Eval(e, lookup)
	require.NoError(t, err)
	assert.Equal(t, units.Vector{-2, 1, 0, 0, 0, 0, 1}, v)

	e, err = ParseExpr("Distance / Mass")
	require.NoError(t, err)
	v, err = Eval(e, lookup)
	require.NoError(t, err)
	assert.Equal(t, units.Vector{0, 1, 0, 0, 0, 0, 1}, v)

	e, err = ParseExpr("Distance / Parsec")
	require.NoError(t, err)
	_, err = Eval(e, lookup)
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestDivisors(t *testing.T) {
	e, err := ParseExpr("(Mass / Volume) * (Distance / (Time * Time))")
	require.NoError(t, err)

	var got []string
	for _, d := range Divisors(e) {
		got = append(got, d.String())
	}
	assert.Equal(t, []string{"Volume", "(Time * Time)"}, got)

	ident, err := ParseExpr("Mass")
	require.NoError(t, err)
	assert.Empty(t, Divisors(ident))
}
