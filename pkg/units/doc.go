// Package units implements typed physical quantities whose dimension and
// scale are checked by the Go compiler.
//
// A Quantity carries two phantom type parameters next to its numeric
// storage type:
//
//   - D, a Dimension marker naming the exponents of the seven base axes
//     (Time, Distance, Luminance, Temperature, Angle, Current, Mass).
//   - S, a Scale marker naming a rational factor relative to the SI base
//     unit of that dimension (Kilo is 1000/1, Milli is 1/1000).
//
// Markers are zero-size types, so a Quantity occupies exactly the space of
// its value. Composite markers derive new tags from existing ones:
// Mul(a, b) yields a Quantity[Prod[D1, D2], Times[S1, S2], T] and Div yields
// Quot and Per. Add and Sub are methods whose argument must have the very
// same type as the receiver, which makes adding a length to a time a build
// error. Comparisons accept different scales of the same dimension and are
// computed by cross-multiplication.
//
// Two quantities are compatible only when their Dimension marker types are
// identical, not merely when their vectors are equal. Div(Mul(m, m), m) has
// the vector of Distance but the type Quot[Prod[Distance, Distance],
// Distance], so it cannot be added to or compared with m. Commute,
// AssocLeft and AssocRight rewrite product markers into an equivalent
// shape; Vector reports the exponents when the types differ.
//
// Division of dimensions subtracts the Time and Distance exponents and adds
// the remaining five; see Vector.Div.
//
// Named units (Meter, Kilogram, ...) live in the generated storage packages
// i (int64) and f (float64). Regenerate them with:
//
//	go generate ./pkg/units
package units

//go:generate go run github.com/quantica/units/cmd/unitgen generate --config ../../unitgen.yaml
