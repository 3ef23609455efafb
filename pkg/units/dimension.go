package units

import (
	"strconv"
	"strings"
)

// Axis indexes one of the seven base dimensions inside a Vector.
type Axis int

const (
	AxisTime Axis = iota
	AxisDistance
	AxisLuminance
	AxisTemperature
	AxisAngle
	AxisCurrent
	AxisMass

	// NumAxes is the length of a Vector.
	NumAxes = 7
)

var axisNames = [NumAxes]string{
	"time", "distance", "luminance", "temperature", "angle", "current", "mass",
}

// symbols follow the base unit of each axis; mass is based on the gram.
var axisSymbols = [NumAxes]string{"s", "m", "cd", "K", "rad", "A", "g"}

func (a Axis) String() string {
	if a < 0 || int(a) >= NumAxes {
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
	return axisNames[a]
}

// Symbol returns the SI symbol of the axis' base unit.
func (a Axis) Symbol() string {
	if a < 0 || int(a) >= NumAxes {
		return "?"
	}
	return axisSymbols[a]
}

// ParseAxis maps a lower-case axis name ("time", "mass", ...) to its Axis.
func ParseAxis(name string) (Axis, bool) {
	for i, n := range axisNames {
		if n == strings.ToLower(name) {
			return Axis(i), true
		}
	}
	return 0, false
}

// Vector holds the exponent of every base axis, ordered
// (Time, Distance, Luminance, Temperature, Angle, Current, Mass).
type Vector [NumAxes]int32

// Unit returns the vector with exponent 1 on axis a and 0 elsewhere.
func Unit(a Axis) Vector {
	var v Vector
	v[a] = 1
	return v
}

// Mul combines the dimensions of a product: exponents add.
func (v Vector) Mul(o Vector) Vector {
	var r Vector
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// Div combines the dimensions of a quotient v/o. Time and Distance
// exponents subtract; Luminance, Temperature, Angle, Current and Mass
// exponents add. Every Quot marker uses this rule.
func (v Vector) Div(o Vector) Vector {
	var r Vector
	for i := range v {
		if Axis(i) <= AxisDistance {
			r[i] = v[i] - o[i]
		} else {
			r[i] = v[i] + o[i]
		}
	}
	return r
}

// DivUniform subtracts every exponent of o from v.
func (v Vector) DivUniform(o Vector) Vector {
	var r Vector
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Equal reports whether v and o have identical exponents.
func (v Vector) Equal(o Vector) bool {
	return v == o
}

// IsDimensionless reports whether every exponent is zero.
func (v Vector) IsDimensionless() bool {
	return v == Vector{}
}

// String renders v as a product of base symbols, e.g. "m·s^-2·g".
// A dimensionless vector renders as "1".
func (v Vector) String() string {
	var parts []string
	for i, e := range v {
		switch e {
		case 0:
			continue
		case 1:
			parts = append(parts, axisSymbols[i])
		default:
			parts = append(parts, axisSymbols[i]+"^"+strconv.Itoa(int(e)))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

// Dimension is implemented by zero-size marker types that name a Vector at
// the type level. Two quantities are compatible only when their markers are
// the same type.
type Dimension interface {
	Vector() Vector
}

type (
	// Dimensionless is the empty dimension.
	Dimensionless struct{}
	Time          struct{}
	Distance      struct{}
	Luminance     struct{}
	Temperature   struct{}
	Angle         struct{}
	Current       struct{}
	Mass          struct{}
)

func (Dimensionless) Vector() Vector { return Vector{} }
func (Time) Vector() Vector          { return Unit(AxisTime) }
func (Distance) Vector() Vector      { return Unit(AxisDistance) }
func (Luminance) Vector() Vector     { return Unit(AxisLuminance) }
func (Temperature) Vector() Vector   { return Unit(AxisTemperature) }
func (Angle) Vector() Vector         { return Unit(AxisAngle) }
func (Current) Vector() Vector       { return Unit(AxisCurrent) }
func (Mass) Vector() Vector          { return Unit(AxisMass) }

// Prod is the dimension of a product of A and B quantities.
type Prod[A, B Dimension] struct{}

func (Prod[A, B]) Vector() Vector {
	var a A
	var b B
	return a.Vector().Mul(b.Vector())
}

// Quot is the dimension of an A quantity divided by a B quantity.
type Quot[A, B Dimension] struct{}

func (Quot[A, B]) Vector() Vector {
	var a A
	var b B
	return a.Vector().Div(b.Vector())
}
