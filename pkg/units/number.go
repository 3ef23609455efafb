package units

import "golang.org/x/exp/constraints"

// Number is the set of storage types a Quantity may hold: every built-in
// integer and floating point type. bool is not a member.
type Number interface {
	constraints.Integer | constraints.Float
}
